package codec

import (
	"bytes"
	"encoding/binary"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sparseBuffer(words int, seed int64) []byte {
	r := rand.New(rand.NewSource(seed))
	buf := make([]byte, words*8)
	for i := 0; i < words; i += 17 {
		binary.LittleEndian.PutUint64(buf[i*8:], r.Uint64())
	}
	return buf
}

func TestRoundTrip(t *testing.T) {
	inputs := map[string][]byte{
		"sparse":  sparseBuffer(4096, 1),
		"small":   {1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
		"all-one": bytes.Repeat([]byte{0xFF}, 1024),
	}

	for _, typ := range []Type{None, Zlib, Zstd, LZ4} {
		for name, in := range inputs {
			t.Run(typ.String()+"/"+name, func(t *testing.T) {
				out, err := Compress(typ, in)
				require.NoError(t, err)

				got, err := Decompress(typ, out)
				require.NoError(t, err)
				assert.Equal(t, in, got)
			})
		}
	}
}

func TestCompressShrinksSparseInput(t *testing.T) {
	in := sparseBuffer(8192, 2)
	for _, typ := range []Type{Zlib, Zstd, LZ4} {
		out, err := Compress(typ, in)
		require.NoError(t, err)
		assert.Less(t, len(out), len(in), typ.String())
	}
}

func TestLZ4StoresIncompressible(t *testing.T) {
	r := rand.New(rand.NewSource(3))
	in := make([]byte, 64)
	r.Read(in)

	out, err := Compress(LZ4, in)
	require.NoError(t, err)
	assert.Equal(t, uint32(0), binary.LittleEndian.Uint32(out[4:]))

	got, err := Decompress(LZ4, out)
	require.NoError(t, err)
	assert.Equal(t, in, got)
}

func TestDecompressErrors(t *testing.T) {
	t.Run("unknown type", func(t *testing.T) {
		_, err := Decompress(Type(9), []byte{1})
		assert.ErrorIs(t, err, ErrUnknownType)
		_, err = Compress(Type(9), []byte{1})
		assert.ErrorIs(t, err, ErrUnknownType)
	})

	t.Run("lz4 short header", func(t *testing.T) {
		_, err := Decompress(LZ4, []byte{1, 2, 3})
		assert.Error(t, err)
	})

	t.Run("lz4 oversized header", func(t *testing.T) {
		hdr := make([]byte, 8)
		binary.LittleEndian.PutUint32(hdr[0:], ^uint32(0))
		binary.LittleEndian.PutUint32(hdr[4:], 1)
		_, err := Decompress(LZ4, hdr)
		assert.ErrorIs(t, err, ErrTooLarge)
	})

	t.Run("zlib garbage", func(t *testing.T) {
		_, err := Decompress(Zlib, []byte("not zlib"))
		assert.Error(t, err)
	})

	t.Run("zstd garbage", func(t *testing.T) {
		_, err := Decompress(Zstd, []byte("not zstd at all"))
		assert.Error(t, err)
	})
}

func TestTypeString(t *testing.T) {
	assert.Equal(t, "zlib", Zlib.String())
	assert.Equal(t, "codec(42)", Type(42).String())
}
