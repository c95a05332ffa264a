// Copyright (C) 2024 Michael J. Fromberger. All Rights Reserved.

package jtok

import (
	"github.com/creachadair/jtok/internal/escape"

	"go4.org/mem"
)

// Unescape decodes the escape sequences in text, the raw span of a String
// token as stored by the parser (without enclosing quotation marks), and
// returns the decoded bytes.
//
// Invalid escapes are replaced by the Unicode replacement rune. Unescape
// reports an error for an incomplete escape sequence, which cannot occur in
// a span produced by a successful parse.
func Unescape(text []byte) ([]byte, error) { return escape.Unescape(mem.B(text)) }
