// Copyright (C) 2024 Michael J. Fromberger. All Rights Reserved.

package jtok

import "go4.org/mem"

// parseString consumes one quoted string whose opening quote is at p.pos and
// appends a String token for it. The token's span excludes the quotes and
// keeps the raw source bytes; escape sequences are validated but not
// expanded. On successful return p.pos is at the closing quote.
func (p *parser) parseString() error {
	start := p.pos
	if p.src[p.pos] != '"' {
		return p.errAt(p.pos, ErrInvalidStart)
	}
	p.pos++
	for p.pos < len(p.src) && p.src[p.pos] != 0 {
		switch ch := p.src[p.pos]; {
		case ch == '"':
			idx, ok := p.ar.alloc()
			if !ok {
				return p.errAt(p.pos, ErrNoMemory)
			}
			p.fill(idx, String, start+1, p.pos)
			return nil
		case ch == '\\':
			if err := p.scanEscape(); err != nil {
				return err
			}
		case ch < ' ':
			// Unescaped control characters are not permitted in strings.
			return p.errAt(p.pos, ErrInvalidChar)
		}
		p.pos++
	}
	p.pos = start
	return p.errAt(start, ErrPartialToken)
}

// scanEscape validates the escape sequence whose backslash is at p.pos,
// leaving p.pos on the escape's final character.
func (p *parser) scanEscape() error {
	start := p.pos
	p.pos++
	if p.pos >= len(p.src) || p.src[p.pos] == 0 {
		p.pos = start
		return p.errAt(start, ErrPartialToken)
	}
	switch p.src[p.pos] {
	case '"', '\\', '/', 'b', 'f', 'n', 'r', 't':
		return nil
	case 'u':
		for i := 0; i < 4; i++ {
			p.pos++
			if p.pos >= len(p.src) || p.src[p.pos] == 0 {
				p.pos = start
				return p.errAt(start, ErrPartialToken)
			}
			if !isHexDigit(p.src[p.pos]) {
				return p.errAt(p.pos, ErrInvalidChar)
			}
		}
		return nil
	}
	return p.errAt(p.pos, ErrInvalidChar)
}

// parsePrimitive consumes a maximal run of primitive characters starting at
// p.pos, validates it as a number or one of the constants true, false and
// null, and appends a Primitive token. On successful return p.pos is on the
// last character of the literal, so the enclosing scanner's advance lands on
// the structural delimiter that terminated it.
func (p *parser) parsePrimitive() error {
	start := p.pos
scan:
	for p.pos < len(p.src) {
		switch p.src[p.pos] {
		case 0, '\t', '\r', '\n', ' ', ',', ']', '}':
			break scan
		}
		if p.src[p.pos] < ' ' || p.src[p.pos] >= 0x7f {
			p.pos = start
			return p.errAt(start, ErrInvalidPrimitive)
		}
		p.pos++
	}
	if !validPrimitive(p.src[start:p.pos]) {
		p.pos = start
		return p.errAt(start, ErrInvalidPrimitive)
	}
	idx, ok := p.ar.alloc()
	if !ok {
		return p.errAt(start, ErrNoMemory)
	}
	p.fill(idx, Primitive, start, p.pos)
	p.pos--
	return nil
}

func validPrimitive(text []byte) bool {
	if len(text) == 0 {
		return false
	}
	lit := mem.B(text)
	if lit.EqualString("true") || lit.EqualString("false") || lit.EqualString("null") {
		return true
	}
	return validNumber(text)
}

// validNumber reports whether text is a JSON number: an optional minus sign,
// an integer part with no redundant leading zero, and optional fraction and
// exponent parts.
func validNumber(text []byte) bool {
	i := 0
	if text[i] == '-' {
		i++
	}
	n := 0
	for i < len(text) && isDigit(text[i]) {
		i++
		n++
	}
	if n == 0 || hasExtraLeadingZeroes(text) {
		return false
	}
	if i < len(text) && text[i] == '.' {
		i++
		n = 0
		for i < len(text) && isDigit(text[i]) {
			i++
			n++
		}
		if n == 0 {
			return false
		}
	}
	if i < len(text) && (text[i] == 'e' || text[i] == 'E') {
		i++
		if i < len(text) && (text[i] == '+' || text[i] == '-') {
			i++
		}
		n = 0
		for i < len(text) && isDigit(text[i]) {
			i++
			n++
		}
		if n == 0 {
			return false
		}
	}
	return i == len(text)
}

func isSpace(ch byte) bool {
	return ch == ' ' || ch == '\r' || ch == '\n' || ch == '\t'
}

func isDigit(ch byte) bool { return '0' <= ch && ch <= '9' }

func isHexDigit(ch byte) bool {
	return (ch >= '0' && ch <= '9') || (ch >= 'a' && ch <= 'f') || (ch >= 'A' && ch <= 'F')
}

// hasExtraLeadingZeroes reports whether the representation of a number in
// buf has redundant leading zeroes, which JSON does not permit.
//
// OK: 0, 0.1, -1.0, -0.1 are all OK.
// Bad: -01, 01.2, -01.0, 00.1.
func hasExtraLeadingZeroes(buf []byte) bool {
	if buf[0] == '-' {
		buf = buf[1:] // skip leading sign
	}
	if len(buf) != 0 && buf[0] == '0' {
		// A leading zero is OK if it's the only digit of the integer part.
		return len(buf) > 1 && buf[1] != '.' && buf[1] != 'e' && buf[1] != 'E'
	}
	return false
}
