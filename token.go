// Copyright (C) 2024 Michael J. Fromberger. All Rights Reserved.

package jtok

// Type is the type of a token in the parsed document.
type Type byte

// Constants defining the valid Type values.
const (
	Unassigned Type = iota // unparsed pool slot
	Object                 // object "{...}"
	Array                  // array "[...]"
	String                 // quoted string
	Primitive              // number, true, false or null
)

var typeStr = [...]string{
	Unassigned: "unassigned",
	Object:     "object",
	Array:      "array",
	String:     "string",
	Primitive:  "primitive",
}

func (t Type) String() string {
	v := int(t)
	if v >= len(typeStr) {
		return typeStr[Unassigned]
	}
	return typeStr[v]
}

// Sentinel index values used in the structural links of a Token.
const (
	NoParent  = -1 // the token is the document root
	NoSibling = -1 // the token is the last key or element at its level

	noChild = -1 // internal: no completed child at the current level
	noEnd   = -1 // internal: aggregate still open, closing delimiter not found
)

// A Span describes a contiguous span of a source input.
type Span struct {
	Pos int // the start offset, 0-based
	End int // the end offset, 0-based (noninclusive)
}

// A Token is one parsed syntactic unit. Tokens are plain values: they carry
// byte offsets into the source buffer and indices into the arena they were
// parsed into, never pointers. All methods that need the source text or the
// pool take the Arena alongside the token's index.
type Token struct {
	Type    Type
	Start   int // start offset of the raw span, 0-based
	End     int // end offset of the raw span, noninclusive
	Size    int // children for aggregates; value-assigned count for keys
	Parent  int // index of the enclosing aggregate, or NoParent
	Sibling int // index of the next same-level token, or NoSibling
}

// Span returns the raw source span of t.
func (t Token) Span() Span { return Span{Pos: t.Start, End: t.End} }

// Len reports the length in bytes of the raw span of t.
// A token whose end is not yet assigned has length 0.
func (t Token) Len() int {
	if t.End < t.Start {
		return 0
	}
	return t.End - t.Start
}

// IsKey reports whether t is an object key: a String token whose value has
// been assigned.
func (t Token) IsKey() bool { return t.Type == String && t.Size == 1 }
