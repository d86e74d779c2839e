package cursor

import (
	"errors"
	"fmt"
)

var (
	IncompleteError = errors.New("incomplete")
	IntegerError    = errors.New("could not parse integer")
	SizeError       = errors.New("could not parse size")
)

// UnterminatedError reports a line read that found no \r\n terminator.
// The value is the number of bytes scanned before giving up.
type UnterminatedError int

func (e UnterminatedError) Error() string {
	return fmt.Sprintf("unterminated line of %d bytes so far", int(e))
}

// NotEnoughData tells whether err only means more input is needed.
// UnterminatedError and IncompleteError both clear up once the caller
// buffers more bytes and retries; IntegerError and SizeError never do,
// the payload itself is malformed.
func NotEnoughData(err error) bool {
	var unterminated UnterminatedError
	return errors.Is(err, IncompleteError) || errors.As(err, &unterminated)
}
