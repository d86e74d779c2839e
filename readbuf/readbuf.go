// Package readbuf buffers bytes read from an io.Reader ahead of
// parsing. It is close to a bufio.Reader, except that callers may ask
// for more data to be filled in even while the buffer still holds
// unread bytes, and they decide themselves how much of the buffered
// region counts as consumed.
package readbuf

import (
	"errors"
	"io"
)

// DefaultBufferSize is the store size used by New.
const DefaultBufferSize = 4096

// minFreeSpace is the tail slack below which Fill compacts the store
// before reading.
const minFreeSpace = 512

// ErrNoProgress is returned by Fill when the source reports a
// zero-length read with no error, so a stalled source is never a
// silent no-op.
var ErrNoProgress = errors.New("no bytes read from source")

// ReadBuf is a fixed-capacity read buffer. buf[start:end] always holds
// exactly the bytes that were read but not yet consumed; everything
// outside that window is garbage. The store never grows, Fill reclaims
// consumed space by shifting the window to the front instead. Not safe
// for concurrent use.
type ReadBuf struct {
	buf   []byte
	start int
	end   int
}

// New creates a ReadBuf with DefaultBufferSize capacity.
func New() *ReadBuf {
	return NewSize(DefaultBufferSize)
}

// NewSize creates a ReadBuf with the given capacity.
func NewSize(capacity int) *ReadBuf {
	return &ReadBuf{buf: make([]byte, capacity)}
}

// Fill reads once from r into the free tail of the store and returns
// how many bytes arrived. When tail space runs low the unconsumed
// window is first shifted down to the front, so consumed space is
// reclaimed without ever dropping unread bytes. Bytes supplied by r are
// recorded even when r also returns an error; the error itself is
// passed through unchanged. A read of zero bytes with no error returns
// ErrNoProgress. When the unconsumed window already fills the whole
// store there is no room to read into, and Fill keeps reporting
// ErrNoProgress until the caller consumes something.
func (b *ReadBuf) Fill(r io.Reader) (int, error) {
	if len(b.buf)-b.end < minFreeSpace {
		// 压缩buffer，将未消费的数据移到头部，回收已消费的空间
		copy(b.buf, b.buf[b.start:b.end])
		b.end -= b.start
		b.start = 0
	}
	n, err := r.Read(b.buf[b.end:])
	if n > 0 {
		b.end += n
	}
	if err != nil {
		return n, err
	}
	if n == 0 {
		return 0, ErrNoProgress
	}
	return n, nil
}

// Bytes returns the currently buffered, unconsumed region. The slice
// aliases the store: it is valid until the next Fill, Consume or Reset.
func (b *ReadBuf) Bytes() []byte {
	return b.buf[b.start:b.end]
}

// Consume marks amount bytes at the front of the buffered region as
// processed; a later Fill may reclaim their space. Consuming more than
// Len() bytes is a caller bug and panics.
func (b *ReadBuf) Consume(amount int) {
	if amount < 0 || amount > b.end-b.start {
		panic("not enough bytes to consume")
	}
	b.start += amount
}

// Len returns the number of buffered, unconsumed bytes.
func (b *ReadBuf) Len() int {
	return b.end - b.start
}

// Cap returns the size of the store.
func (b *ReadBuf) Cap() int {
	return len(b.buf)
}

// Reset drops everything buffered, consumed or not.
func (b *ReadBuf) Reset() {
	b.start, b.end = 0, 0
}
