// Copyright (C) 2024 Michael J. Fromberger. All Rights Reserved.

package jtok

import "fmt"

// An Arena is a fixed-capacity pool of tokens that doubles as the parse tree
// for one document. The pool is append-only while a parse is in progress; a
// token, once written, is never relocated or freed individually. Reset is the
// only reclamation, and it recycles the whole pool.
//
// An Arena is not safe for concurrent use. The caller must ensure at most one
// parse or traversal mutates it at a time.
type Arena struct {
	src  []byte  // source of the most recent parse; nil before first parse
	pool []Token // fixed backing storage
	next int     // index of the next unused slot
}

// NewArena constructs an arena with storage for capacity tokens, allocated
// once up front. Parsing into the arena performs no further allocation.
func NewArena(capacity int) *Arena {
	if capacity < 0 {
		capacity = 0
	}
	return &Arena{pool: make([]Token, capacity)}
}

// Bind constructs an arena over caller-owned token storage. The arena takes
// exclusive use of pool until the caller discards the arena; this supports
// placing the pool in static or stack storage.
func Bind(pool []Token) *Arena { return &Arena{pool: pool} }

// Reset discards all parsed tokens and the source binding, making the full
// capacity of the arena available to a new parse.
func (a *Arena) Reset() {
	for i := 0; i < a.next; i++ {
		a.pool[i] = Token{}
	}
	a.next = 0
	a.src = nil
}

// Len reports the number of tokens parsed into a.
func (a *Arena) Len() int { return a.next }

// Cap reports the total token capacity of a.
func (a *Arena) Cap() int { return len(a.pool) }

// Source returns the source buffer of the most recent parse, or nil.
func (a *Arena) Source() []byte { return a.src }

// Token returns the token at index i. It panics if i is out of range of the
// parsed tokens, like a slice index.
func (a *Arena) Token(i int) Token {
	if i < 0 || i >= a.next {
		panic(fmt.Sprintf("token index %d out of range (n=%d)", i, a.next))
	}
	return a.pool[i]
}

// Tokens returns a view of the parsed prefix of the pool. The slice shares
// storage with the arena and is invalidated by Reset or a new parse.
func (a *Arena) Tokens() []Token { return a.pool[:a.next] }

// Text returns the raw (undecoded) source span of the token at index i, or
// nil if the arena has no source or the token's span is not yet assigned.
// The slice aliases the source buffer.
func (a *Arena) Text(i int) []byte {
	t := a.Token(i)
	if a.src == nil || t.End < t.Start {
		return nil
	}
	return a.src[t.Start:t.End]
}

// IsValid reports whether the parsed contents of a have the structural shape
// of a complete document: the root is an object, and its first member starts
// with a key, or is a lone array for the two-token form {[...]}. Parse can
// succeed syntactically on degenerate inputs, so callers should check IsValid
// before semantic use of the arena.
func (a *Arena) IsValid() bool {
	if a.next < 1 || a.pool[0].Type != Object {
		return false
	}
	switch a.next {
	case 1: // the empty object {}
		return true
	case 2:
		// Cannot have {"key"} with no value, but {[]} is well formed.
		return a.pool[1].Type == Array
	}
	return a.pool[1].Type == String
}

// alloc returns the index of the next unused slot, or ok == false when the
// pool is exhausted.
func (a *Arena) alloc() (int, bool) {
	if a.next >= len(a.pool) {
		return 0, false
	}
	i := a.next
	a.next++
	return i, true
}
