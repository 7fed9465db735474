package bytebuffer

import "github.com/pkg/errors"

// ByteBuffer is a growable byte slice with a read cursor
//
// writes always append, reads start at the cursor and move it forward only
// when asked to. A ByteBuffer is not safe for concurrent use
type ByteBuffer struct {
	pos    int
	buffer []byte
}

var _ Buffer = (*ByteBuffer)(nil)

// NewByteBuffer creates a new empty ByteBuffer that can hold n bytes before
// it has to grow
func NewByteBuffer(n int) *ByteBuffer {
	if n < 0 {
		n = 0
	}

	return &ByteBuffer{
		pos:    0,
		buffer: make([]byte, 0, n),
	}
}

// NewByteBufferSlice creates a new ByteBuffer holding a copy of the passed
// slice, with the cursor at its start
func NewByteBufferSlice(data []byte) *ByteBuffer {
	b := NewByteBuffer(len(data))
	b.buffer = append(b.buffer, data...)
	return b
}

// Pos returns the current read position of the ByteBuffer
func (b *ByteBuffer) Pos() int { return b.pos }

// SetPos moves the read position, anywhere from the start to the end of the
// written data
func (b *ByteBuffer) SetPos(position int) error {
	if position < 0 || position > len(b.buffer) {
		return errors.Wrapf(ErrRangeOutOfBounds, "set position %d, length %d", position, len(b.buffer))
	}

	b.pos = position
	return nil
}

// MustSetPos will try to set the read position and panic on error
func (b *ByteBuffer) MustSetPos(position int) {
	if err := b.SetPos(position); err != nil {
		panic(err)
	}
}

// Skip advances the read position by n bytes
func (b *ByteBuffer) Skip(n int) error {
	if n < 0 || n > b.Remaining() {
		return errors.Wrapf(ErrRangeOutOfBounds, "skip %d at %d, remaining %d", n, b.pos, b.Remaining())
	}

	b.pos += n
	return nil
}

// Len returns the number of bytes written, including the ones already read
func (b *ByteBuffer) Len() int { return len(b.buffer) }

// Cap returns the number of bytes the ByteBuffer can hold without growing
func (b *ByteBuffer) Cap() int { return cap(b.buffer) }

// Remaining returns the number of bytes not read yet
func (b *ByteBuffer) Remaining() int { return len(b.buffer) - b.pos }

// Bytes returns a copy of everything written, regardless of the read position
func (b *ByteBuffer) Bytes() []byte {
	return append([]byte(nil), b.buffer...)
}

// RemainingBytes returns a copy of the bytes not read yet
func (b *ByteBuffer) RemainingBytes() []byte {
	return append([]byte(nil), b.buffer[b.pos:]...)
}

// DeleteRange removes length bytes starting at start
//
// a read position before the range is kept, one after it moves back by
// length and one inside it lands on start. Deleting a prefix that was already
// read therefore leaves the cursor on the same unread byte
func (b *ByteBuffer) DeleteRange(start, length int) error {
	if start < 0 || start > len(b.buffer) || length < 0 || length > len(b.buffer)-start {
		return errors.Wrapf(ErrRangeOutOfBounds, "delete %d bytes at %d, length %d", length, start, len(b.buffer))
	}

	end := start + length
	b.buffer = append(b.buffer[:start], b.buffer[end:]...)

	switch {
	case b.pos >= end:
		b.pos -= length
	case b.pos > start:
		b.pos = start
	}

	return nil
}

// Clear empties the ByteBuffer and resets the read position, keeping the
// allocated storage for reuse
func (b *ByteBuffer) Clear() {
	b.buffer = b.buffer[:0]
	b.pos = 0
}

// Close releases the storage of the ByteBuffer
//
// it can be called any number of times, a closed ByteBuffer behaves like a
// new empty one
func (b *ByteBuffer) Close() error {
	b.buffer = nil
	b.pos = 0
	return nil
}

// grow extends the storage by n bytes and returns the new tail for the caller
// to fill
func (b *ByteBuffer) grow(n int) []byte {
	l := len(b.buffer)
	if cap(b.buffer)-l < n {
		c := 2*cap(b.buffer) + n
		nb := make([]byte, l, c)
		copy(nb, b.buffer)
		b.buffer = nb
	}

	b.buffer = b.buffer[:l+n]
	return b.buffer[l:]
}
