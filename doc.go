// Copyright (C) 2024 Michael J. Fromberger. All Rights Reserved.

// Package jtok implements a single-pass JSON parser over a fixed-capacity
// token pool, intended for workloads that must bound memory up front.
//
// # Arenas
//
// All parse results live in an Arena, a flat pool of Token values allocated
// once and reused across parses. A token never holds a pointer: structure is
// encoded as indices into the pool, so tokens are cheap to copy and remain
// valid when the arena is moved. Construct an arena with a token budget and
// parse into it:
//
//	ar := jtok.NewArena(64)
//	if err := jtok.Parse(data, ar); err != nil {
//	   log.Fatalf("Parse failed: %v", err)
//	}
//
// Callers that manage their own storage can wrap an existing slice instead:
//
//	pool := make([]jtok.Token, 64) // or a static array
//	ar := jtok.Bind(pool)
//
// Parsing never allocates. If the document needs more tokens than the pool
// holds, Parse fails with ErrNoMemory; it never grows the pool.
//
// # Structure
//
// A document must be a single JSON object. Token 0 is that object; each
// aggregate's first child immediately follows it in the pool, and same-level
// keys or elements are chained through their Sibling index. An object key is
// a String token whose Size records whether its value has been assigned.
//
// After a successful parse, run [Arena.IsValid] before trusting the shape of
// the result, then walk the pool by index, or use the cursor subpackage:
//
//	if !ar.IsValid() {
//	   log.Fatal("degenerate document")
//	}
//	c := cursor.New(ar).Down("motors", 0, "pwm")
//
// # Errors
//
// Parse reports failures as a *ParseError wrapping one sentinel per violated
// grammar rule, so callers can distinguish, say, a truncated document
// (ErrPartialToken) from a key without a value (ErrKeyNoValue):
//
//	if err := jtok.Parse(data, ar); errors.Is(err, jtok.ErrNoMemory) {
//	   // the document exceeded the token budget
//	}
//
// Any error aborts the parse; there is no partial-success mode. Tokens
// written before the failure point are preserved for diagnosis only.
package jtok
