// Copyright (C) 2024 Michael J. Fromberger. All Rights Reserved.

package jtok

import (
	"errors"
	"fmt"
)

// Sentinel errors reported by Parse. Each corresponds to one violated rule of
// the grammar, at the most specific position the parser can attribute it to,
// and is wrapped in a *ParseError carrying the source offset.
var (
	ErrNoInput  = errors.New("no input")         // source buffer nil or empty
	ErrNilArena = errors.New("nil token arena")  // no arena supplied
	ErrNoMemory = errors.New("out of tokens")    // token pool exhausted
	ErrTooDeep  = errors.New("nesting too deep") // exceeded MaxDepth

	ErrInvalidChar      = errors.New("invalid character")
	ErrPartialToken     = errors.New("unterminated token")
	ErrInvalidStart     = errors.New("invalid start delimiter")
	ErrInvalidEnd       = errors.New("invalid end delimiter")
	ErrNonObject        = errors.New("value is not an object")
	ErrNonArray         = errors.New("value is not an array")
	ErrObjectParent     = errors.New("invalid parent for object")
	ErrInvalidParent    = errors.New("invalid parent for value")
	ErrObjectNoKey      = errors.New("object member has no key")
	ErrEmptyKey         = errors.New("empty object key")
	ErrKeyNoValue       = errors.New("key has no value")
	ErrKeyMultipleVal   = errors.New("multiple values for key")
	ErrValueNoColon     = errors.New("no colon after key")
	ErrValueNoComma     = errors.New("no comma between values")
	ErrCommaNoKey       = errors.New("comma without preceding key")
	ErrStrayComma       = errors.New("stray trailing comma")
	ErrArraySeparator   = errors.New("misplaced array separator")
	ErrMixedArray       = errors.New("mixed element types in array")
	ErrInvalidPrimitive = errors.New("invalid primitive literal")
)

// ParseError is the concrete type of errors reported by Parse for faults
// found while scanning. Pos is the byte offset in the source buffer where the
// fault was detected; for pool exhaustion and depth overflow it is the
// position of the token that overran the limit, preserved for diagnosis.
type ParseError struct {
	Pos int
	Err error
}

// Error satisfies the error interface.
func (e *ParseError) Error() string {
	return fmt.Sprintf("at offset %d: %v", e.Pos, e.Err)
}

// Unwrap supports error wrapping.
func (e *ParseError) Unwrap() error { return e.Err }
