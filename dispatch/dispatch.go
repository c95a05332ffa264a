// Copyright (C) 2024 Michael J. Fromberger. All Rights Reserved.

// Package dispatch routes a parsed document to a handler registered for its
// top-level key.
//
// A document of the form {"command": ...} is matched by its first key
// against a table of handlers, and the matching handler is invoked with a
// cursor positioned at that key. Lookup and handler failures are reported as
// distinct types so callers can tell them apart from the syntax failures
// reported by jtok.Parse.
package dispatch

import (
	"errors"
	"fmt"

	"github.com/creachadair/jtok"
	"github.com/creachadair/jtok/cursor"
)

// A Handler processes one dispatched document. The cursor is positioned at
// the matched top-level key; a handler typically advances to the key's value
// and reads its arguments from there.
type Handler func(*cursor.Cursor) error

// ErrInvalidDocument is reported by Dispatch when the arena does not pass
// its structural shape check.
var ErrInvalidDocument = errors.New("invalid document structure")

// A Table maps top-level document keys to handlers. The zero value is not
// ready for use; construct tables with NewTable.
type Table struct {
	m map[string]Handler
}

// NewTable constructs an empty dispatch table.
func NewTable() *Table { return &Table{m: make(map[string]Handler)} }

// Bind registers h as the handler for documents whose first key is key,
// replacing any existing registration for that key.
func (t *Table) Bind(key string, h Handler) { t.m[key] = h }

// Dispatch routes the parsed document in ar to the handler registered for
// its first top-level key. It reports ErrInvalidDocument if the arena fails
// its shape check, an *UnknownKeyError if no handler is registered for the
// key, and a *HandlerError wrapping the handler's failure otherwise.
func (t *Table) Dispatch(ar *jtok.Arena) error {
	if !ar.IsValid() {
		return ErrInvalidDocument
	}
	c := cursor.New(ar).FirstChild()
	if c.Err() != nil {
		return ErrInvalidDocument
	}
	key, err := jtok.Unescape(c.Text())
	if err != nil {
		return ErrInvalidDocument
	}
	h, ok := t.m[string(key)]
	if !ok {
		return &UnknownKeyError{Key: string(key)}
	}
	if err := h(c); err != nil {
		return &HandlerError{Key: string(key), err: err}
	}
	return nil
}

// UnknownKeyError is reported by Dispatch when no handler is registered for
// the document's top-level key.
type UnknownKeyError struct{ Key string }

func (e *UnknownKeyError) Error() string { return fmt.Sprintf("no handler for key %q", e.Key) }

// HandlerError wraps a failure reported by a matched handler.
type HandlerError struct {
	Key string
	err error
}

func (e *HandlerError) Error() string { return fmt.Sprintf("handler %q: %v", e.Key, e.err) }

// Unwrap supports error wrapping.
func (e *HandlerError) Unwrap() error { return e.err }
