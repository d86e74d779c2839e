// Package cursor reads protocol tokens from an in-memory byte slice
// without copying. A Cursor tracks a position inside a borrowed slice;
// every token it returns is a sub-slice of that slice, valid for as
// long as the caller keeps the underlying memory alive.
package cursor

import (
	"bytes"
	"strconv"

	"respio/util/str"
)

var crlf = []byte("\r\n")

// Cursor is a position-tracked view over a byte slice. The slice is
// borrowed and never written to. The position only moves forward, and
// only on a successful read, except for ReadSize and ReadInteger which
// document their own rule. A Cursor must not be shared between
// goroutines.
type Cursor struct {
	buf []byte
	pos int
}

// New creates a Cursor positioned at the start of buf.
func New(buf []byte) *Cursor {
	return &Cursor{buf: buf}
}

// Position returns the number of bytes already read.
func (c *Cursor) Position() int {
	return c.pos
}

// Remaining returns the number of unread bytes.
func (c *Cursor) Remaining() int {
	return len(c.buf) - c.pos
}

// ReadByte returns the byte at the current position and moves past it.
// At the end of the slice it returns IncompleteError and the position
// stays put. ReadByte satisfies io.ByteReader.
func (c *Cursor) ReadByte() (byte, error) {
	if c.pos >= len(c.buf) {
		return 0, IncompleteError
	}
	b := c.buf[c.pos]
	c.pos++
	return b, nil
}

// ReadSlice returns the next n bytes as a sub-slice and moves past
// them. If fewer than n bytes remain it returns IncompleteError and the
// position stays put. A negative n, or one large enough to overflow the
// position, is a caller bug and panics: lengths are expected to come
// from already-validated protocol fields.
func (c *Cursor) ReadSlice(n int) ([]byte, error) {
	if n < 0 {
		panic("negative slice length")
	}
	end := c.pos + n
	if end < c.pos {
		panic("slice length overflow")
	}
	if end > len(c.buf) {
		return nil, IncompleteError
	}
	s := c.buf[c.pos:end]
	c.pos = end
	return s, nil
}

// ReadLine returns the bytes before the next \r\n and moves the
// position just past the \n. A lone \r or \n does not terminate a line.
// If no \r\n exists in the remaining bytes, ReadLine returns an
// UnterminatedError carrying the number of bytes scanned and the
// position stays put, so the caller can buffer more input and retry.
func (c *Cursor) ReadLine() ([]byte, error) {
	rem := c.buf[c.pos:]
	i := bytes.Index(rem, crlf)
	if i < 0 {
		return nil, UnterminatedError(len(rem))
	}
	c.pos += i + 2
	return rem[:i], nil
}

// ReadSize reads a \r\n-terminated line and parses it as an ASCII
// decimal uint64. A ReadLine failure is returned unchanged. If the line
// is not a plain digit run (empty, signs, non-digits, overflow) the
// result is SizeError, and the position has already moved past the
// line: the line read commits before the number is validated.
func (c *Cursor) ReadSize() (uint64, error) {
	line, err := c.ReadLine()
	if err != nil {
		return 0, err
	}
	n, err := strconv.ParseUint(str.BytesToString(line), 10, 64)
	if err != nil {
		return 0, SizeError
	}
	return n, nil
}

// ReadInteger reads a \r\n-terminated line and parses it as an ASCII
// decimal int64 with one optional leading minus. No leading plus, no
// whitespace. Malformed lines return IntegerError with the same
// position-already-advanced behavior as ReadSize.
func (c *Cursor) ReadInteger() (int64, error) {
	line, err := c.ReadLine()
	if err != nil {
		return 0, err
	}
	if len(line) > 0 && line[0] == '+' {
		return 0, IntegerError
	}
	n, err := strconv.ParseInt(str.BytesToString(line), 10, 64)
	if err != nil {
		return 0, IntegerError
	}
	return n, nil
}
