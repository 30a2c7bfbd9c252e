package intbitset

import (
	"encoding/binary"

	"github.com/hupe1980/intbitset/internal/words"
)

// Buffer format
//
// A serialized set is a sequence of 64-bit words in native byte order.
// Every word but the last is literal storage (word i holds elements
// [64i, 64i+64)); the last word is the fill pattern, all zeros for a
// finite set or all ones for a co-finite set. Buffers are therefore only
// portable between hosts of the same endianness.

// Bytes serializes the set's significant words followed by the fill word.
func (b *BitSet) Bytes() []byte {
	n := b.Size()
	buf := make([]byte, (n+1)*WordBytes)
	for i := 0; i < n; i++ {
		binary.NativeEndian.PutUint64(buf[i*WordBytes:], b.word(i))
	}
	binary.NativeEndian.PutUint64(buf[n*WordBytes:], b.fillWord())
	return buf
}

// MarshalBinary implements encoding.BinaryMarshaler.
func (b *BitSet) MarshalBinary() ([]byte, error) {
	return b.Bytes(), nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (b *BitSet) UnmarshalBinary(data []byte) error {
	return b.ResetFromBuffer(data)
}

// FromBuffer creates a set from a buffer produced by Bytes.
func FromBuffer(buf []byte, opts ...Option) (*BitSet, error) {
	b := NewUnallocated(opts...)
	if err := b.ResetFromBuffer(buf); err != nil {
		return nil, err
	}
	return b, nil
}

// ResetFromBuffer replaces the content of b with the set serialized in
// buf. On error b is left unchanged.
func (b *BitSet) ResetFromBuffer(buf []byte) error {
	ws, fill, err := decodeBuffer(buf)
	b.recordDecode(len(buf), err)
	if err != nil {
		return err
	}

	b.words = ws
	b.fill = fill
	b.state = allocated
	b.invalidate()
	return nil
}

func (b *BitSet) recordDecode(length int, err error) {
	o := b.options()
	o.logger.LogDecode(length, err)
	o.metricsCollector.RecordDecode(length, err)
}

func decodeBuffer(buf []byte) ([]uint64, bool, error) {
	if len(buf) == 0 {
		return nil, false, &InvalidBufferError{Length: 0, Reason: "empty"}
	}
	if len(buf)%WordBytes != 0 {
		return nil, false, &InvalidBufferError{Length: len(buf), Reason: "length is not a multiple of the word size"}
	}

	n := len(buf)/WordBytes - 1
	if n > maxWords {
		return nil, false, &InvalidBufferError{Length: len(buf), Reason: "too many words"}
	}

	var fill bool
	switch binary.NativeEndian.Uint64(buf[n*WordBytes:]) {
	case 0:
	case words.Full:
		fill = true
	default:
		return nil, false, &InvalidBufferError{Length: len(buf), Reason: "last word is not a fill pattern"}
	}

	ws := make([]uint64, max(n, 1))
	if n == 0 {
		ws[0] = words.FillWord(fill)
	}
	for i := 0; i < n; i++ {
		ws[i] = binary.NativeEndian.Uint64(buf[i*WordBytes:])
	}
	return ws, fill, nil
}
