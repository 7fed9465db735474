package bytebuffer

import "github.com/pkg/errors"

// errors returned by ByteBuffer, always wrapped with the operation and the
// cursor position, use errors.Cause to compare
var (
	// ErrUnderrun is returned when a read finds no unread bytes at all
	ErrUnderrun = errors.New("buffer underrun")

	// ErrTruncatedRead is returned when some bytes remain, but fewer than the
	// value being read needs
	ErrTruncatedRead = errors.New("truncated read")

	// ErrInvalidEncoding is returned for strings with a negative length prefix
	// or a body that is not valid utf-8
	ErrInvalidEncoding = errors.New("invalid encoding")

	// ErrRangeOutOfBounds is returned when a position or range lies outside the
	// buffer
	ErrRangeOutOfBounds = errors.New("range out of bounds")
)

// IsUnderrun reports whether err means the buffer does not hold a complete
// value yet, either because nothing is left or because the value is cut short
func IsUnderrun(err error) bool {
	switch errors.Cause(err) {
	case ErrUnderrun, ErrTruncatedRead:
		return true
	}
	return false
}
