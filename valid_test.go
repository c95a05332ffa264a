// Copyright (C) 2024 Michael J. Fromberger. All Rights Reserved.

package jtok

import "testing"

// The two-token shapes cannot be produced by the object grammar, so this test
// assembles arenas by hand to pin down the structural check.
func TestIsValidShapes(t *testing.T) {
	build := func(toks ...Token) *Arena {
		ar := NewArena(len(toks) + 1)
		copy(ar.pool, toks)
		ar.next = len(toks)
		return ar
	}

	tests := []struct {
		desc string
		ar   *Arena
		want bool
	}{
		{"empty arena", NewArena(4), false},
		{"empty object", build(Token{Type: Object}), true},
		{"root not an object", build(Token{Type: Array}, Token{Type: String}), false},
		{"lone array member", build(Token{Type: Object}, Token{Type: Array, Parent: 0}), true},
		{"lone string member", build(Token{Type: Object}, Token{Type: String, Parent: 0}), false},
		{"lone primitive member", build(Token{Type: Object}, Token{Type: Primitive, Parent: 0}), false},
		{"keyed member", build(
			Token{Type: Object, Size: 1},
			Token{Type: String, Size: 1, Parent: 0},
			Token{Type: Primitive, Parent: 1},
		), true},
		{"primitive where key belongs", build(
			Token{Type: Object, Size: 1},
			Token{Type: Primitive, Parent: 0},
			Token{Type: Primitive, Parent: 1},
		), false},
	}
	for _, test := range tests {
		if got := test.ar.IsValid(); got != test.want {
			t.Errorf("%s: IsValid is %v, want %v", test.desc, got, test.want)
		}
	}
}
