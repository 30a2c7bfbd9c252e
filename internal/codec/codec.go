package codec

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/klauspost/compress/zlib"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// Type identifies a compression algorithm.
type Type uint8

const (
	// None stores data as-is.
	None Type = 0
	// Zlib uses the zlib stream format.
	Zlib Type = 1
	// Zstd uses zstd frames (better ratio, good for cold data).
	Zstd Type = 2
	// LZ4 uses LZ4 blocks (fast, good for hot data).
	LZ4 Type = 3
)

// MaxDecodedSize bounds the decompressed size of any payload.
// It covers the largest raw buffer a set can serialize to.
const MaxDecodedSize = (1<<31/64 + 2) * 8

// ErrUnknownType is returned for an unsupported compression type.
var ErrUnknownType = errors.New("codec: unknown compression type")

// ErrTooLarge is returned when a payload decodes beyond MaxDecodedSize.
var ErrTooLarge = errors.New("codec: decoded payload too large")

func (t Type) String() string {
	switch t {
	case None:
		return "none"
	case Zlib:
		return "zlib"
	case Zstd:
		return "zstd"
	case LZ4:
		return "lz4"
	default:
		return fmt.Sprintf("codec(%d)", uint8(t))
	}
}

// ZSTD encoder/decoder pools for efficiency
var (
	zstdEncoderPool sync.Pool
	zstdDecoderPool sync.Pool
)

func getZstdEncoder() (*zstd.Encoder, error) {
	if v := zstdEncoderPool.Get(); v != nil {
		return v.(*zstd.Encoder), nil
	}
	return zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
}

func putZstdEncoder(enc *zstd.Encoder) {
	zstdEncoderPool.Put(enc)
}

func getZstdDecoder() (*zstd.Decoder, error) {
	if v := zstdDecoderPool.Get(); v != nil {
		return v.(*zstd.Decoder), nil
	}
	return zstd.NewReader(nil, zstd.WithDecoderMaxMemory(MaxDecodedSize))
}

func putZstdDecoder(dec *zstd.Decoder) {
	zstdDecoderPool.Put(dec)
}

// Compress compresses data with the given algorithm.
func Compress(t Type, data []byte) ([]byte, error) {
	switch t {
	case None:
		out := make([]byte, len(data))
		copy(out, data)
		return out, nil
	case Zlib:
		return compressZlib(data)
	case Zstd:
		enc, err := getZstdEncoder()
		if err != nil {
			return nil, err
		}
		defer putZstdEncoder(enc)
		return enc.EncodeAll(data, nil), nil
	case LZ4:
		return compressLZ4(data)
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownType, uint8(t))
	}
}

// Decompress reverses Compress.
func Decompress(t Type, data []byte) ([]byte, error) {
	switch t {
	case None:
		out := make([]byte, len(data))
		copy(out, data)
		return out, nil
	case Zlib:
		return decompressZlib(data)
	case Zstd:
		dec, err := getZstdDecoder()
		if err != nil {
			return nil, err
		}
		defer putZstdDecoder(dec)
		decoded, err := dec.DecodeAll(data, nil)
		if err != nil {
			return nil, fmt.Errorf("codec: zstd: %w", err)
		}
		return decoded, nil
	case LZ4:
		return decompressLZ4(data)
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownType, uint8(t))
	}
}

func compressZlib(data []byte) ([]byte, error) {
	var buf bytes.Buffer
	zw := zlib.NewWriter(&buf)
	if _, err := zw.Write(data); err != nil {
		return nil, err
	}
	if err := zw.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func decompressZlib(data []byte) ([]byte, error) {
	zr, err := zlib.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("codec: zlib: %w", err)
	}
	defer zr.Close()

	out, err := io.ReadAll(io.LimitReader(zr, MaxDecodedSize+1))
	if err != nil {
		return nil, fmt.Errorf("codec: zlib: %w", err)
	}
	if len(out) > MaxDecodedSize {
		return nil, ErrTooLarge
	}
	return out, nil
}

// lz4 header: [UncompressedSize uint32][CompressedSize uint32][Data...]
// If CompressedSize == 0, the block is stored uncompressed.
const lz4HeaderSize = 8

func compressLZ4(data []byte) ([]byte, error) {
	compressed := make([]byte, lz4HeaderSize+lz4.CompressBlockBound(len(data)))

	n, err := lz4.CompressBlock(data, compressed[lz4HeaderSize:], nil)
	if err != nil {
		return nil, err
	}

	binary.LittleEndian.PutUint32(compressed[0:], uint32(len(data)))
	if n == 0 || n >= len(data) {
		// Incompressible: store raw
		binary.LittleEndian.PutUint32(compressed[4:], 0)
		out := compressed[:lz4HeaderSize+len(data)]
		copy(out[lz4HeaderSize:], data)
		return out, nil
	}

	binary.LittleEndian.PutUint32(compressed[4:], uint32(n))
	return compressed[:lz4HeaderSize+n], nil
}

func decompressLZ4(data []byte) ([]byte, error) {
	if len(data) < lz4HeaderSize {
		return nil, errors.New("codec: lz4 block too small for header")
	}

	uncompressedSize := binary.LittleEndian.Uint32(data[0:])
	compressedSize := binary.LittleEndian.Uint32(data[4:])
	if uint64(uncompressedSize) > MaxDecodedSize {
		return nil, ErrTooLarge
	}
	payload := data[lz4HeaderSize:]

	if compressedSize == 0 {
		if uint64(len(payload)) != uint64(uncompressedSize) {
			return nil, errors.New("codec: lz4 stored block size mismatch")
		}
		out := make([]byte, uncompressedSize)
		copy(out, payload)
		return out, nil
	}

	if uint64(len(payload)) != uint64(compressedSize) {
		return nil, errors.New("codec: lz4 compressed block size mismatch")
	}

	result := make([]byte, uncompressedSize)
	n, err := lz4.UncompressBlock(payload, result)
	if err != nil {
		return nil, fmt.Errorf("codec: lz4: %w", err)
	}
	if uint32(n) != uncompressedSize {
		return nil, errors.New("codec: lz4 decompressed size mismatch")
	}
	return result, nil
}
