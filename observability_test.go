package intbitset

import (
	"bytes"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBufferLogger(level slog.Level) (*Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	return NewLogger(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: level})), &buf
}

func TestLoggerResize(t *testing.T) {
	l, buf := newBufferLogger(slog.LevelDebug)
	s := New(WithLogger(l.WithName("titles")))
	require.NoError(t, s.Add(500))

	out := buf.String()
	assert.Contains(t, out, "bitset resized")
	assert.Contains(t, out, "set=titles")
	assert.Contains(t, out, "old_words=1")
}

func TestLoggerResizeSkippedAboveDebug(t *testing.T) {
	l, buf := newBufferLogger(slog.LevelInfo)
	s := New(WithLogger(l))
	require.NoError(t, s.Add(500))
	assert.Empty(t, buf.String())
}

func TestLoggerDecodeFailure(t *testing.T) {
	l, buf := newBufferLogger(slog.LevelInfo)
	_, err := FromBuffer(make([]byte, 5), WithLogger(l))
	require.Error(t, err)

	out := buf.String()
	assert.Contains(t, out, "bitset decode failed")
	assert.Contains(t, out, "bytes=5")
}

func TestNoopLogger(t *testing.T) {
	l := NoopLogger()
	assert.NotPanics(t, func() {
		l.LogResize(1, 2)
		l.LogDecode(8, errors.New("boom"))
	})
	assert.NotNil(t, NewLogger(nil))
	assert.NotNil(t, NewJSONLogger(slog.LevelWarn))
	assert.NotNil(t, NewTextLogger(slog.LevelWarn))
}

func TestBasicMetricsCollector(t *testing.T) {
	mc := &BasicMetricsCollector{}
	opt := WithMetricsCollector(mc)

	s := New(opt)
	require.NoError(t, s.Add(1000))
	s.UnionWith(mustFromSlice(t, 1))
	_ = Xor(s, s)
	_ = Subtract(s, s)

	_, err := FromBuffer(s.Bytes(), opt)
	require.NoError(t, err)
	_, err = FromBuffer([]byte{1}, opt)
	require.Error(t, err)

	stats := mc.GetStats()
	assert.Equal(t, int64(1), stats.ResizeCount)
	assert.Equal(t, int64(16), stats.ResizeWords)
	assert.Equal(t, int64(3), stats.OpCount)
	assert.Equal(t, int64(1), stats.UnionCount)
	assert.Equal(t, int64(1), stats.XorCount)
	assert.Equal(t, int64(1), stats.SubtractCount)
	assert.Equal(t, int64(1), stats.InPlaceCount)
	assert.Equal(t, int64(2), stats.DecodeCount)
	assert.Equal(t, int64(1), stats.DecodeErrors)
	assert.Equal(t, int64(len(s.Bytes())+1), stats.DecodeBytes)
}

func TestOpString(t *testing.T) {
	assert.Equal(t, "union", OpUnion.String())
	assert.Equal(t, "xor", OpXor.String())
	assert.Equal(t, "intersection", OpIntersection.String())
	assert.Equal(t, "subtract", OpSubtract.String())
	assert.Equal(t, "unknown", Op(99).String())
}

func TestErrors(t *testing.T) {
	err := checkIndex(-3)
	assert.EqualError(t, err, "intbitset: index -3 out of range [0, 2147483647]")
	assert.NoError(t, checkIndex(0))
	assert.NoError(t, checkIndex(MaxElement))

	cause := errors.New("truncated")
	ib := &InvalidBufferError{Length: 12, Reason: "zstd payload", cause: cause}
	assert.EqualError(t, ib, "intbitset: invalid buffer of 12 bytes: zstd payload")
	assert.ErrorIs(t, ib, cause)
}
