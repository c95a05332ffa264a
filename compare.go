// Copyright (C) 2024 Michael J. Fromberger. All Rights Reserved.

package jtok

import "go4.org/mem"

// TextEquals reports whether the raw span of the token at index i equals
// want. By convention a nil want and an arena with no backing source compare
// equal: both denote an absent text. This relaxation is deliberate and is
// relied upon by callers that probe optional fields.
func (a *Arena) TextEquals(i int, want []byte) bool {
	if a.src == nil || want == nil {
		return a.src == nil && want == nil
	}
	return mem.B(want).Equal(mem.B(a.Text(i)))
}

// CopyText copies the raw span of the token at index i into dst, truncating
// at len(dst). It reports the number of bytes copied, with ok == false when
// the arena has no backing source to copy from.
func (a *Arena) CopyText(dst []byte, i int) (n int, ok bool) {
	if a.src == nil {
		return 0, false
	}
	return copy(dst, a.Text(i)), true
}

// FindKey returns the index of the first key of the object at index obj whose
// raw text equals key, walking the key sibling chain in source order.
// It reports ok == false if obj is not an object or has no such key.
func (a *Arena) FindKey(obj int, key []byte) (idx int, ok bool) {
	t := a.Token(obj)
	if t.Type != Object || t.Size == 0 {
		return 0, false
	}
	// A non-empty object's first key directly follows it in the pool.
	for k := obj + 1; ; {
		if a.TextEquals(k, key) {
			return k, true
		}
		next := a.Token(k).Sibling
		if next == NoSibling {
			return 0, false
		}
		k = next
	}
}

// Equal reports whether the token at index i of a is structurally equal to
// the token at index j of b. Tokens of different types are never equal.
// Strings and primitives compare by their raw byte spans. Arrays compare
// element-wise in order. Objects compare order-insensitively: each member of
// one must have a member with equal key text and equal value somewhere in the
// other, regardless of position in the sibling chain.
func Equal(a *Arena, i int, b *Arena, j int) bool {
	ta, tb := a.Token(i), b.Token(j)
	if ta.Type != tb.Type {
		return false
	}
	switch ta.Type {
	case String, Primitive:
		return mem.B(a.Text(i)).Equal(mem.B(b.Text(j)))
	case Array:
		return arrayEqual(a, i, b, j)
	case Object:
		return objectEqual(a, i, b, j)
	}
	return false
}

func arrayEqual(a *Arena, i int, b *Arena, j int) bool {
	ta, tb := a.Token(i), b.Token(j)
	if ta.Size != tb.Size {
		return false
	}
	// A non-empty aggregate's first child directly follows it in the pool.
	ea, eb := i+1, j+1
	for n := 0; n < ta.Size; n++ {
		if !Equal(a, ea, b, eb) {
			return false
		}
		ea, eb = a.Token(ea).Sibling, b.Token(eb).Sibling
		if ea == NoSibling || eb == NoSibling {
			return n == ta.Size-1
		}
	}
	return true
}

func objectEqual(a *Arena, i int, b *Arena, j int) bool {
	ta, tb := a.Token(i), b.Token(j)
	if ta.Size != tb.Size {
		return false
	}
	if ta.Size == 0 {
		return true // two empty objects are trivially equal
	}
	ka := i + 1
	for n := 0; n < ta.Size; n++ {
		if !objectHasMember(b, j, a, ka) {
			return false
		}
		if n < ta.Size-1 {
			ka = a.Token(ka).Sibling
			if ka == NoSibling {
				return false
			}
		}
	}
	return true
}

// objectHasMember reports whether the object at index obj of b has a member
// whose key text and value both equal the member keyed at index ka of a.
// JSON objects have no duplicate keys, so the first matching key is
// authoritative: if its value differs, the objects cannot be equal.
func objectHasMember(b *Arena, obj int, a *Arena, ka int) bool {
	keyText := a.Text(ka)
	for kb := obj + 1; ; {
		if mem.B(b.Text(kb)).Equal(mem.B(keyText)) {
			// The value of a key is the token directly after it.
			return Equal(a, ka+1, b, kb+1)
		}
		next := b.Token(kb).Sibling
		if next == NoSibling {
			return false
		}
		kb = next
	}
}
