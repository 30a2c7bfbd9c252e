package intbitset

import (
	"bytes"
	"compress/zlib"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/intbitset/testutil"
)

func TestDumpLoad(t *testing.T) {
	rng := testutil.NewRNG(11)
	finite := mustFromSlice(t, rng.ZipfElements(500, 100_000, 1.2)...)
	co := Full()
	for _, e := range rng.RunElements(3, 200, 20_000) {
		require.NoError(t, co.Delete(e))
	}

	for _, c := range []Compression{CompressionNone, CompressionZlib, CompressionZstd, CompressionLZ4} {
		for name, s := range map[string]*BitSet{"finite": finite, "co-finite": co, "empty": New()} {
			t.Run(c.String()+"/"+name, func(t *testing.T) {
				data, err := s.Dump(c)
				require.NoError(t, err)
				assert.Equal(t, byte(c), data[0])

				got, err := Load(data)
				require.NoError(t, err)
				assert.True(t, got.Equal(s))
			})
		}
	}
}

func TestDumpCompresses(t *testing.T) {
	s := New()
	for e := 0; e < 50_000; e += 2 {
		require.NoError(t, s.Add(e))
	}
	raw := len(s.Bytes())

	for _, c := range []Compression{CompressionZlib, CompressionZstd, CompressionLZ4} {
		data, err := s.Dump(c)
		require.NoError(t, err)
		assert.Less(t, len(data), raw/4, c.String())
	}
}

func TestFastDumpIsZlib(t *testing.T) {
	s := mustFromSlice(t, 1, 2, 3, 7000)

	data, err := s.FastDump()
	require.NoError(t, err)

	zr, err := zlib.NewReader(bytes.NewReader(data))
	require.NoError(t, err)
	raw, err := io.ReadAll(zr)
	require.NoError(t, err)
	assert.Equal(t, s.Bytes(), raw)

	got, err := FastLoad(data)
	require.NoError(t, err)
	assert.True(t, got.Equal(s))
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(nil)
	var ib *InvalidBufferError
	assert.ErrorAs(t, err, &ib)

	_, err = Load([]byte{42, 0, 0})
	assert.ErrorIs(t, err, ErrUnsupportedCompression)

	_, err = mustFromSlice(t, 1).Dump(Compression(9))
	assert.ErrorIs(t, err, ErrUnsupportedCompression)

	for _, c := range []Compression{CompressionZlib, CompressionZstd, CompressionLZ4} {
		_, err = Load(append([]byte{byte(c)}, "not a payload"...))
		require.ErrorAs(t, err, &ib, c.String())
		assert.Error(t, ib.Unwrap(), c.String())
	}

	// A valid stream holding a malformed buffer
	_, err = Load([]byte{byte(CompressionNone), 1, 2, 3})
	require.ErrorAs(t, err, &ib)
	assert.Equal(t, 3, ib.Length)

	_, err = FastLoad([]byte("junk"))
	assert.ErrorAs(t, err, &ib)
}

func TestResetFromDumpKeepsSetOnError(t *testing.T) {
	s := mustFromSlice(t, 5)
	require.Error(t, s.ResetFromDump([]byte{byte(CompressionZstd), 1, 2}))
	assert.Equal(t, []int{5}, elements(t, s))
}

func TestCompressionString(t *testing.T) {
	assert.Equal(t, "none", CompressionNone.String())
	assert.Equal(t, "zlib", CompressionZlib.String())
	assert.Equal(t, "zstd", CompressionZstd.String())
	assert.Equal(t, "lz4", CompressionLZ4.String())
}
