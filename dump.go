package intbitset

import (
	"errors"
	"fmt"

	"github.com/hupe1980/intbitset/internal/codec"
)

// Compression selects the algorithm for compressed dumps.
type Compression uint8

const (
	CompressionNone = Compression(codec.None)
	CompressionZlib = Compression(codec.Zlib)
	CompressionZstd = Compression(codec.Zstd)
	CompressionLZ4  = Compression(codec.LZ4)
)

func (c Compression) String() string {
	return codec.Type(c).String()
}

// Dump serializes the set and compresses it with c. The result starts
// with a one-byte tag naming the compression, followed by the payload.
func (b *BitSet) Dump(c Compression) ([]byte, error) {
	payload, err := codec.Compress(codec.Type(c), b.Bytes())
	if err != nil {
		if errors.Is(err, codec.ErrUnknownType) {
			return nil, fmt.Errorf("%w: %s", ErrUnsupportedCompression, c)
		}
		return nil, err
	}

	out := make([]byte, 1+len(payload))
	out[0] = byte(c)
	copy(out[1:], payload)
	return out, nil
}

// Load creates a set from the output of Dump.
func Load(data []byte, opts ...Option) (*BitSet, error) {
	b := NewUnallocated(opts...)
	if err := b.ResetFromDump(data); err != nil {
		return nil, err
	}
	return b, nil
}

// ResetFromDump replaces the content of b with the set in a Dump output.
// On error b is left unchanged.
func (b *BitSet) ResetFromDump(data []byte) error {
	if len(data) == 0 {
		err := &InvalidBufferError{Length: 0, Reason: "empty dump"}
		b.recordDecode(0, err)
		return err
	}
	return b.resetFromCompressed(Compression(data[0]), data[1:])
}

// FastDump serializes the set as a zlib stream of the raw buffer.
func (b *BitSet) FastDump() ([]byte, error) {
	return codec.Compress(codec.Zlib, b.Bytes())
}

// FastLoad creates a set from the output of FastDump.
func FastLoad(data []byte, opts ...Option) (*BitSet, error) {
	b := NewUnallocated(opts...)
	if err := b.resetFromCompressed(CompressionZlib, data); err != nil {
		return nil, err
	}
	return b, nil
}

func (b *BitSet) resetFromCompressed(c Compression, payload []byte) error {
	raw, err := codec.Decompress(codec.Type(c), payload)
	if err != nil {
		if errors.Is(err, codec.ErrUnknownType) {
			err = fmt.Errorf("%w: %s", ErrUnsupportedCompression, c)
		} else {
			err = &InvalidBufferError{Length: len(payload), Reason: c.String() + " payload", cause: err}
		}
		b.recordDecode(len(payload), err)
		return err
	}
	return b.ResetFromBuffer(raw)
}
