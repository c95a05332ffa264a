// Copyright (C) 2024 Michael J. Fromberger. All Rights Reserved.

package cursor_test

import (
	"testing"

	"github.com/creachadair/jtok"
	"github.com/creachadair/jtok/cursor"
)

const testDoc = `{"motors":[{"pwm":128},{"pwm":255}],"fw":"1.2.3","limits":{"min":0,"max":4096}}`

func mustArena(t *testing.T) *jtok.Arena {
	t.Helper()
	ar := jtok.NewArena(32)
	if err := jtok.Parse([]byte(testDoc), ar); err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	return ar
}

func TestCursorDown(t *testing.T) {
	ar := mustArena(t)

	tests := []struct {
		path []any
		want string
	}{
		{[]any{"fw"}, "1.2.3"},
		{[]any{"motors", 0, "pwm"}, "128"},
		{[]any{"motors", 1, "pwm"}, "255"},
		{[]any{"motors", -1, "pwm"}, "255"},
		{[]any{"motors", -2, "pwm"}, "128"},
		{[]any{"limits", "max"}, "4096"},
		{[]any{}, testDoc},
	}
	for _, test := range tests {
		c := cursor.New(ar).Down(test.path...)
		if err := c.Err(); err != nil {
			t.Errorf("Down %+v failed: %v", test.path, err)
			continue
		}
		if got := string(c.Text()); got != test.want {
			t.Errorf("Down %+v: got %#q, want %#q", test.path, got, test.want)
		}
	}
}

func TestCursorDownErrors(t *testing.T) {
	ar := mustArena(t)

	tests := [][]any{
		{"nonesuch"},               // no such key
		{"fw", "deeper"},           // descend through a string
		{"motors", 2},              // index out of range
		{"motors", -3},             // negative index out of range
		{"limits", 0},              // object is not an array
		{"motors", 0, "pwm", "x"},  // descend through a primitive
		{"motors", "pwm"},          // key lookup in an array
		{"motors", 1.5},            // invalid path element type
	}
	for _, path := range tests {
		if c := cursor.New(ar).Down(path...); c.Err() == nil {
			t.Errorf("Down %+v: no error, cursor at %d (%#q)", path, c.Index(), c.Text())
		}
	}
}

func TestCursorSteps(t *testing.T) {
	ar := mustArena(t)

	// Walk key by key along the root's sibling chain.
	c := cursor.New(ar).FirstChild()
	var keys []string
	for c.Err() == nil {
		keys = append(keys, string(c.Text()))
		c.NextSibling()
	}
	want := []string{"motors", "fw", "limits"}
	if len(keys) != len(want) {
		t.Fatalf("Got keys %+q, want %+q", keys, want)
	}
	for i, k := range want {
		if keys[i] != k {
			t.Errorf("Key %d: got %q, want %q", i, keys[i], k)
		}
	}

	// Up inverts FirstChild and Value.
	c = cursor.New(ar).Find("limits").Value().Find("min")
	if err := c.Err(); err != nil {
		t.Fatalf("Traversal failed: %v", err)
	}
	if got := c.Up().Up().Index(); got != 0 || c.Err() != nil {
		t.Errorf("Up.Up: got index %d (err %v), want 0", got, c.Err())
	}
	if c := cursor.New(ar).Up(); c.Err() == nil {
		t.Error("Up from the root: no error")
	}
}

func TestCursorErrorSticks(t *testing.T) {
	ar := mustArena(t)

	// After a failed step, further movement is a no-op and the first error is
	// the one reported.
	c := cursor.New(ar).Find("nonesuch")
	werr := c.Err()
	if werr == nil {
		t.Fatal("Find(nonesuch): no error")
	}
	if c.Value().FirstChild().NextSibling(); c.Err() != werr {
		t.Errorf("After chained moves: got error %v, want %v", c.Err(), werr)
	}

	c.Reset()
	if c.Err() != nil || c.Index() != 0 {
		t.Errorf("After Reset: index %d, err %v; want 0, nil", c.Index(), c.Err())
	}
}

func TestCursorAt(t *testing.T) {
	ar := mustArena(t)

	// Carve out the limits subobject and traverse relative to it.
	sub := cursor.New(ar).Find("limits").Value()
	if err := sub.Err(); err != nil {
		t.Fatalf("Traversal failed: %v", err)
	}
	c := cursor.At(ar, sub.Index()).Down("max")
	if err := c.Err(); err != nil {
		t.Fatalf("Down(max) failed: %v", err)
	}
	if got := string(c.Text()); got != "4096" {
		t.Errorf("Text: got %#q, want %#q", got, "4096")
	}
	c.Reset()
	if got := c.Index(); got != sub.Index() {
		t.Errorf("Reset index: got %d, want %d", got, sub.Index())
	}
}
