// Copyright (C) 2024 Michael J. Fromberger. All Rights Reserved.

// Package escape decodes the escape sequences of raw JSON string spans.
package escape

import (
	"errors"
	"unicode/utf16"
	"unicode/utf8"

	"go4.org/mem"
)

// Unescape decodes the escape sequences in src, the raw contents of a JSON
// string with the enclosing quotation marks already removed.
//
// Invalid escapes decode to the Unicode replacement rune; an incomplete
// escape sequence at the end of the input is an error.
func Unescape(src mem.RO) ([]byte, error) {
	i := mem.IndexByte(src, '\\')
	if i < 0 {
		return mem.Append(nil, src), nil
	}
	dec := make([]byte, 0, src.Len())
	for {
		dec = mem.Append(dec, src.SliceTo(i))
		src = src.SliceFrom(i + 1)
		if src.Len() == 0 {
			return nil, errors.New("incomplete escape sequence")
		}
		ch := src.At(0)
		src = src.SliceFrom(1)
		switch ch {
		case '"', '\\', '/':
			dec = append(dec, ch)
		case 'b':
			dec = append(dec, '\b')
		case 'f':
			dec = append(dec, '\f')
		case 'n':
			dec = append(dec, '\n')
		case 'r':
			dec = append(dec, '\r')
		case 't':
			dec = append(dec, '\t')
		case 'u':
			if src.Len() < 4 {
				return nil, errors.New("incomplete Unicode escape")
			}
			r := rune(utf8.RuneError)
			if v, ok := parseHex4(src.SliceTo(4)); ok {
				r = v
			}
			src = src.SliceFrom(4)
			if utf16.IsSurrogate(r) {
				// A high surrogate must be completed by a low surrogate in an
				// immediately following \u escape; anything else is replaced.
				hi := r
				r = utf8.RuneError
				if src.Len() >= 6 && src.At(0) == '\\' && src.At(1) == 'u' {
					if lo, ok := parseHex4(src.Slice(2, 6)); ok {
						if c := utf16.DecodeRune(hi, lo); c != utf8.RuneError {
							r, src = c, src.SliceFrom(6)
						}
					}
				}
			}
			dec = utf8.AppendRune(dec, r)
		default:
			dec = utf8.AppendRune(dec, utf8.RuneError)
		}

		// Blit everything up to the next escape, or the rest of the input if
		// no escapes remain.
		i = mem.IndexByte(src, '\\')
		if i < 0 {
			return mem.Append(dec, src), nil
		}
	}
}

// parseHex4 decodes exactly four hexadecimal digits.
func parseHex4(data mem.RO) (rune, bool) {
	var v rune
	for i := 0; i < 4; i++ {
		b := data.At(i)
		v <<= 4
		switch {
		case '0' <= b && b <= '9':
			v += rune(b - '0')
		case 'a' <= b && b <= 'f':
			v += rune(b-'a') + 10
		case 'A' <= b && b <= 'F':
			v += rune(b-'A') + 10
		default:
			return 0, false
		}
	}
	return v, true
}
