// Copyright (C) 2024 Michael J. Fromberger. All Rights Reserved.

// Package cursor implements traversal over the token graph of a parsed
// arena. A cursor tracks a token index and advances along the structural
// links the parser recorded: from a key to its value, into an aggregate's
// first child, and along sibling chains.
package cursor

import (
	"fmt"

	"github.com/creachadair/jtok"
)

// A Cursor is a movable pointer into the token graph of an arena. Traversal
// methods record an error on the cursor instead of returning it, and become
// no-ops once an error is set, so calls can be chained; use Err to recover
// the error.
type Cursor struct {
	ar  *jtok.Arena
	org int // index of origin, for Reset
	idx int // index of current token
	err error
}

// New constructs a cursor positioned at the document root of ar.
func New(ar *jtok.Arena) *Cursor { return &Cursor{ar: ar} }

// At constructs a cursor positioned at token index idx of ar.
func At(ar *jtok.Arena, idx int) *Cursor { return &Cursor{ar: ar, org: idx, idx: idx} }

// Arena returns the arena c traverses.
func (c *Cursor) Arena() *jtok.Arena { return c.ar }

// Index reports the index of the token under the cursor.
func (c *Cursor) Index() int { return c.idx }

// Token returns the token under the cursor.
func (c *Cursor) Token() jtok.Token { return c.ar.Token(c.idx) }

// Text returns the raw (undecoded) span of the token under the cursor.
func (c *Cursor) Text() []byte { return c.ar.Text(c.idx) }

// Err reports the error from the most recent traversal operation, if any.
func (c *Cursor) Err() error { return c.err }

// Reset returns c to its origin and clears its error.
func (c *Cursor) Reset() { c.idx = c.org; c.err = nil }

// Value moves the cursor from an object key to that key's value.
func (c *Cursor) Value() *Cursor {
	if c.err != nil {
		return c
	}
	if !c.Token().IsKey() {
		return c.setErrorf("token %d is not a key", c.idx)
	}
	c.idx++ // a key's value directly follows it in the pool
	return c
}

// FirstChild moves the cursor into the first child of the object or array
// under it.
func (c *Cursor) FirstChild() *Cursor {
	if c.err != nil {
		return c
	}
	switch t := c.Token(); {
	case t.Type != jtok.Object && t.Type != jtok.Array:
		return c.setErrorf("token %d is not an aggregate", c.idx)
	case t.Size == 0:
		return c.setErrorf("%v at %d is empty", t.Type, c.idx)
	}
	c.idx++ // a non-empty aggregate's first child directly follows it
	return c
}

// NextSibling moves the cursor to the next key or element at the same
// nesting level.
func (c *Cursor) NextSibling() *Cursor {
	if c.err != nil {
		return c
	}
	s := c.Token().Sibling
	if s == jtok.NoSibling {
		return c.setErrorf("token %d has no next sibling", c.idx)
	}
	c.idx = s
	return c
}

// Up moves the cursor to the parent of the token under it.
func (c *Cursor) Up() *Cursor {
	if c.err != nil {
		return c
	}
	p := c.Token().Parent
	if p == jtok.NoParent {
		return c.setErrorf("token %d is the root", c.idx)
	}
	c.idx = p
	return c
}

// Find moves the cursor to the key of the object under it whose text equals
// key.
func (c *Cursor) Find(key string) *Cursor {
	if c.err != nil {
		return c
	}
	idx, ok := c.ar.FindKey(c.idx, []byte(key))
	if !ok {
		return c.setErrorf("key %q not found", key)
	}
	c.idx = idx
	return c
}

// Nth moves the cursor to the nth element of the array under it. Negative
// indices count backward from the end (-1 is last, -2 second last).
func (c *Cursor) Nth(n int) *Cursor {
	if c.err != nil {
		return c
	}
	t := c.Token()
	if t.Type != jtok.Array {
		return c.setErrorf("token %d is not an array", c.idx)
	}
	i := n
	if i < 0 {
		i += t.Size
	}
	if i < 0 || i >= t.Size {
		return c.setErrorf("array index %d out of bounds (n=%d)", n, t.Size)
	}
	c.idx++
	for ; i > 0; i-- {
		c.idx = c.ar.Token(c.idx).Sibling
	}
	return c
}

// Down traverses a sequential path into the structure under the cursor,
// where path elements are either strings (denoting object keys, resolving to
// the member's value) or integers (denoting offsets into arrays, negative
// counting from the end). If the path cannot be completely consumed,
// traversal stops and an error is recorded.
func (c *Cursor) Down(path ...any) *Cursor {
	c.err = nil // reset error
	for _, elt := range path {
		switch t := elt.(type) {
		case string:
			c.Find(t).Value()
		case int:
			c.Nth(t)
		default:
			return c.setErrorf("invalid path element %T", elt)
		}
		if c.err != nil {
			return c
		}
	}
	return c
}

func (c *Cursor) setErrorf(msg string, args ...any) *Cursor {
	c.err = fmt.Errorf(msg, args...)
	return c
}
