package intbitset

import (
	"errors"
	"fmt"
)

var (
	// ErrInfinite is returned when an operation has no finite answer on a
	// co-finite set (population count, maximum element, finite conversions).
	ErrInfinite = errors.New("intbitset: undefined for infinite set")

	// ErrEmpty is returned when an operation needs at least one member.
	ErrEmpty = errors.New("intbitset: set is empty")

	// ErrUnsupportedCompression is returned for an unknown dump codec tag.
	ErrUnsupportedCompression = errors.New("intbitset: unsupported compression")
)

// IndexOutOfRangeError indicates an element outside [0, MaxElement].
type IndexOutOfRangeError struct {
	Index int
}

func (e *IndexOutOfRangeError) Error() string {
	return fmt.Sprintf("intbitset: index %d out of range [0, %d]", e.Index, MaxElement)
}

// InvalidBufferError indicates a malformed serialized buffer.
//
// The underlying error (if any) can be accessed via errors.Unwrap.
type InvalidBufferError struct {
	Length int
	Reason string
	cause  error
}

func (e *InvalidBufferError) Error() string {
	return fmt.Sprintf("intbitset: invalid buffer of %d bytes: %s", e.Length, e.Reason)
}

func (e *InvalidBufferError) Unwrap() error { return e.cause }

func checkIndex(e int) error {
	if e < 0 || e > MaxElement {
		return &IndexOutOfRangeError{Index: e}
	}
	return nil
}
