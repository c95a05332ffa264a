// Copyright (C) 2024 Michael J. Fromberger. All Rights Reserved.

package jtok

// MaxDepth is the maximum nesting depth of aggregate values the parser will
// enter. The state machine recurses once per nested object or array, so the
// bound caps stack growth on small-stack targets. Exceeding it fails with
// ErrTooDeep regardless of remaining arena capacity.
const MaxDepth = 100

// Parse parses a single JSON document from src into ar. The document must be
// an object, possibly preceded by whitespace. A NUL byte terminates the input
// so NUL-padded buffers parse cleanly.
//
// On failure the returned error is a *ParseError, except for the argument
// checks (nil input, nil arena, zero capacity) which are rejected before any
// scanning begins. Tokens written before a failure remain in the arena for
// diagnosis, but their contents are otherwise unspecified; callers must not
// use them semantically.
func Parse(src []byte, ar *Arena) error {
	if len(src) == 0 {
		return ErrNoInput
	} else if ar == nil {
		return ErrNilArena
	} else if ar.Cap() < 1 {
		return ErrNoMemory
	}
	ar.Reset()
	ar.src = src

	p := &parser{src: src, ar: ar, super: NoParent, lastChild: noChild}
	for p.pos < len(src) && isSpace(src[p.pos]) {
		p.pos++
	}
	if p.pos >= len(src) || src[p.pos] == 0 {
		return p.errAt(p.pos, ErrNonObject)
	}
	return p.parseObject(0)
}

// The states of the object and array machines: the class of character the
// grammar expects at the current position.
type expectState byte

const (
	expectKey expectState = iota
	expectColon
	expectValue
	expectComma
)

// A parser is the transient state of one Parse call. The superior index
// tracks the aggregate or key currently accepting children; it is restored
// from each token's own Parent link on ':' and ',' and at aggregate close,
// rather than through an explicit stack.
type parser struct {
	src       []byte
	ar        *Arena
	pos       int // scan cursor into src
	super     int // index of the token accepting children, or NoParent
	lastChild int // most recently completed sibling at this level, or noChild
}

func (p *parser) errAt(pos int, err error) error { return &ParseError{Pos: pos, Err: err} }

// fill initializes pool slot i as a child of the current superior token.
func (p *parser) fill(i int, typ Type, start, end int) {
	p.ar.pool[i] = Token{Type: typ, Start: start, End: end, Parent: p.super, Sibling: NoSibling}
}

// parseObject consumes one object, from its opening brace through its
// matching close. On entry p.pos is at '{'; on successful return p.pos is at
// the matching '}' and the superior index has been restored to the object's
// parent.
func (p *parser) parseObject(depth int) error {
	if depth >= MaxDepth {
		return p.errAt(p.pos, ErrTooDeep)
	}
	start := p.pos
	if p.src[p.pos] != '{' {
		return p.errAt(p.pos, ErrNonObject)
	}
	if p.super != NoParent {
		// A nested object hangs off a key awaiting its value, or an array.
		parent := p.ar.pool[p.super]
		if parent.Type != Array && !(parent.Type == String && parent.Size == 0) {
			return p.errAt(p.pos, ErrObjectParent)
		}
	}
	obj, ok := p.ar.alloc()
	if !ok {
		// Keep p.pos so the caller can see which token exhausted the pool.
		return p.errAt(p.pos, ErrNoMemory)
	}
	p.fill(obj, Object, p.pos, noEnd)
	p.super = obj
	p.pos++
	p.lastChild = noChild

	expect := expectKey
	for ; p.pos < len(p.src) && p.src[p.pos] != 0; p.pos++ {
		switch ch := p.src[p.pos]; ch {
		case '{', '[':
			switch expect {
			case expectKey:
				return p.errAt(p.pos, ErrObjectNoKey)
			case expectColon:
				return p.errAt(p.pos, ErrValueNoColon)
			case expectValue:
				key := p.super // the key that owns the nested aggregate
				var err error
				if ch == '{' {
					err = p.parseObject(depth + 1)
				} else {
					err = p.parseArray(depth + 1)
				}
				if err != nil {
					return err
				}
				p.ar.pool[key].Size++
				p.super = key
				p.lastChild = key
				expect = expectComma
			default:
				return p.errAt(p.pos, ErrValueNoComma)
			}

		case '}':
			switch expect {
			case expectKey:
				if p.ar.pool[obj].Size != 0 {
					// A comma promised another member: {"a":1,}
					return p.errAt(p.pos, ErrStrayComma)
				}
				// Empty object.
				p.ar.pool[obj].End = p.pos + 1
				p.super = p.ar.pool[obj].Parent
				return nil
			case expectComma:
				p.ar.pool[obj].End = p.pos + 1
				p.super = p.ar.pool[obj].Parent
				// The final member has no sibling key.
				if p.lastChild != noChild {
					p.ar.pool[p.lastChild].Sibling = NoSibling
				}
				p.lastChild = noChild
				return nil
			default: // expectColon, expectValue
				return p.errAt(p.pos, ErrKeyNoValue)
			}

		case ']':
			return p.errAt(p.pos, ErrInvalidEnd)

		case '"':
			switch expect {
			case expectKey:
				if p.ar.pool[p.super].Type != Object {
					return p.errAt(p.pos, ErrInvalidParent)
				}
				if err := p.parseString(); err != nil {
					return err
				}
				key := p.ar.next - 1
				if p.ar.pool[key].Len() == 0 {
					return p.errAt(p.ar.pool[key].Start, ErrEmptyKey)
				}
				if p.lastChild != noChild {
					p.ar.pool[p.lastChild].Sibling = key
				}
				p.lastChild = key
				p.ar.pool[p.super].Size++
				expect = expectColon
			case expectValue:
				key := p.super
				if p.ar.pool[key].Type != String {
					return p.errAt(p.pos, ErrInvalidParent)
				}
				if p.ar.pool[key].Size != 0 {
					// An object key can have only one value.
					return p.errAt(p.pos, ErrKeyMultipleVal)
				}
				if err := p.parseString(); err != nil {
					return err
				}
				p.ar.pool[key].Size++
				expect = expectComma
			case expectColon:
				return p.errAt(p.pos, ErrValueNoColon)
			default:
				return p.errAt(p.pos, ErrValueNoComma)
			}

		case '\t', '\r', '\n', ' ':
			continue

		case ':':
			if expect != expectColon {
				return p.errAt(p.pos, ErrInvalidChar)
			}
			expect = expectValue
			// The key just parsed becomes the superior, so the value scan
			// attaches under it.
			p.super = p.ar.next - 1

		case ',':
			if expect != expectComma {
				return p.errAt(p.pos, ErrCommaNoKey)
			}
			expect = expectKey
			// Pop from the completed key back to its owning object.
			p.super = p.ar.pool[p.super].Parent

		case '+', '-', '0', '1', '2', '3', '4', '5', '6', '7', '8', '9', 't', 'f', 'n':
			switch expect {
			case expectValue:
				key := p.super
				switch t := p.ar.pool[key]; {
				case t.Type == Object:
					// Bare primitives cannot be keys; they are not quoted.
					return p.errAt(p.pos, ErrInvalidChar)
				case t.Type == String && t.Size != 0:
					return p.errAt(p.pos, ErrKeyMultipleVal)
				case t.Type == String:
					// A key awaiting its value.
				default:
					return p.errAt(p.pos, ErrInvalidParent)
				}
				if err := p.parsePrimitive(); err != nil {
					return err
				}
				p.ar.pool[key].Size++
				expect = expectComma
			case expectKey:
				return p.errAt(p.pos, ErrObjectNoKey)
			case expectColon:
				return p.errAt(p.pos, ErrValueNoColon)
			default:
				return p.errAt(p.pos, ErrValueNoComma)
			}

		default:
			return p.errAt(p.pos, ErrInvalidChar)
		}
	}

	// Ran out of input without finding the matching close brace.
	p.pos = start
	return p.errAt(start, ErrPartialToken)
}

// parseArray consumes one array, from its opening bracket through its
// matching close, with the same bookkeeping as parseObject but over elements
// instead of members. All elements of an array must share one token type.
func (p *parser) parseArray(depth int) error {
	if depth >= MaxDepth {
		return p.errAt(p.pos, ErrTooDeep)
	}
	start := p.pos
	if p.src[p.pos] != '[' {
		return p.errAt(p.pos, ErrNonArray)
	}
	arr, ok := p.ar.alloc()
	if !ok {
		return p.errAt(p.pos, ErrNoMemory)
	}
	p.fill(arr, Array, p.pos, noEnd)
	p.super = arr
	p.pos++
	p.lastChild = noChild

	elem := Unassigned // the element type shared by the whole array
	expect := expectValue
	for ; p.pos < len(p.src) && p.src[p.pos] != 0; p.pos++ {
		switch ch := p.src[p.pos]; ch {
		case '{', '[':
			if expect != expectValue {
				return p.errAt(p.pos, ErrValueNoComma)
			}
			idx := p.ar.next // the aggregate's slot, once allocated
			prev := p.lastChild
			var err error
			if ch == '{' {
				err = p.parseObject(depth + 1)
			} else {
				err = p.parseArray(depth + 1)
			}
			if err != nil {
				return err
			}
			p.super = arr
			p.lastChild = prev
			if err := p.linkElement(arr, idx, &elem); err != nil {
				return err
			}
			expect = expectComma

		case ']':
			if expect == expectValue && p.ar.pool[arr].Size != 0 {
				return p.errAt(p.pos, ErrStrayComma) // e.g. [1,]
			}
			p.ar.pool[arr].End = p.pos + 1
			p.super = p.ar.pool[arr].Parent
			if p.lastChild != noChild {
				p.ar.pool[p.lastChild].Sibling = NoSibling
			}
			p.lastChild = noChild
			return nil

		case '}':
			return p.errAt(p.pos, ErrInvalidEnd)

		case '"':
			if expect != expectValue {
				return p.errAt(p.pos, ErrValueNoComma)
			}
			idx := p.ar.next
			if err := p.parseString(); err != nil {
				return err
			}
			if err := p.linkElement(arr, idx, &elem); err != nil {
				return err
			}
			expect = expectComma

		case '\t', '\r', '\n', ' ':
			continue

		case ',':
			if expect != expectComma {
				return p.errAt(p.pos, ErrArraySeparator)
			}
			expect = expectValue

		case ':':
			return p.errAt(p.pos, ErrInvalidChar)

		case '+', '-', '0', '1', '2', '3', '4', '5', '6', '7', '8', '9', 't', 'f', 'n':
			if expect != expectValue {
				return p.errAt(p.pos, ErrValueNoComma)
			}
			idx := p.ar.next
			if err := p.parsePrimitive(); err != nil {
				return err
			}
			if err := p.linkElement(arr, idx, &elem); err != nil {
				return err
			}
			expect = expectComma

		default:
			return p.errAt(p.pos, ErrInvalidChar)
		}
	}

	p.pos = start
	return p.errAt(start, ErrPartialToken)
}

// linkElement appends the completed element at idx to the sibling chain of
// array arr, and records or checks the array's shared element type.
func (p *parser) linkElement(arr, idx int, elem *Type) error {
	t := p.ar.pool[idx].Type
	if *elem == Unassigned {
		*elem = t
	} else if *elem != t {
		return p.errAt(p.ar.pool[idx].Start, ErrMixedArray)
	}
	if p.lastChild != noChild {
		p.ar.pool[p.lastChild].Sibling = idx
	}
	p.lastChild = idx
	p.ar.pool[arr].Size++
	return nil
}
