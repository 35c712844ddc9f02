package codec

import (
	"bytes"
	"errors"
	"io"
	"runtime"
	"testing"

	"github.com/ib-77/either3/pkg/either"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"lukechampine.com/uint128"
)

type u8OrU128 = either.Either[uint8, uint128.Uint128]

func TestEither_RoundTrip(t *testing.T) {
	t.Parallel()

	c := Either(Uint8(), Uint128())

	l := either.Left[uint8, uint128.Uint128](42)
	r := either.Right[uint8](uint128.From64(1234567))

	lb, err := Marshal(c, l)
	require.NoError(t, err)
	rb, err := Marshal(c, r)
	require.NoError(t, err)

	l2, err := Unmarshal(c, lb)
	require.NoError(t, err)
	r2, err := Unmarshal(c, rb)
	require.NoError(t, err)

	assert.Equal(t, l, l2)
	assert.Equal(t, r, r2)
}

func TestEither_Layout(t *testing.T) {
	t.Parallel()

	c := Either(Uint8(), Uint128())

	lb, err := Marshal(c, either.Left[uint8, uint128.Uint128](42))
	require.NoError(t, err)
	assert.Equal(t, []byte{TagLeft, 42}, lb)

	rb, err := Marshal(c, u8OrU128(either.Right[uint8](uint128.From64(1234567))))
	require.NoError(t, err)
	want := append([]byte{TagRight, 0x87, 0xd6, 0x12}, make([]byte, 13)...)
	assert.Equal(t, want, rb)
}

func TestEither_Nested(t *testing.T) {
	t.Parallel()

	inner := Either(String(), Bool())
	c := Either(inner, Int64())

	values := []either.Either[either.Either[string, bool], int64]{
		either.Left[either.Either[string, bool], int64](either.Left[string, bool]("héllo")),
		either.Left[either.Either[string, bool], int64](either.Right[string](true)),
		either.Right[either.Either[string, bool]](int64(-9)),
	}

	var buf bytes.Buffer
	for _, v := range values {
		require.NoError(t, c.Encode(&buf, v))
	}
	for _, want := range values {
		got, err := c.Decode(&buf)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
	_, err := c.Decode(&buf)
	assert.ErrorIs(t, err, io.EOF)
}

func TestEither_InvalidTag(t *testing.T) {
	t.Parallel()

	_, err := Unmarshal(Either(Uint8(), Uint8()), []byte{2, 1})
	assert.ErrorIs(t, err, ErrInvalidTag)
}

func TestEither_ShortPayload(t *testing.T) {
	t.Parallel()

	_, err := Unmarshal(Either(Uint8(), Uint64()), []byte{TagRight, 1, 2})
	assert.ErrorIs(t, err, io.ErrUnexpectedEOF)
}

func TestEither_EmptyPayloadIsTruncated(t *testing.T) {
	t.Parallel()

	_, err := Unmarshal(Either(Uint8(), Uint8()), []byte{TagLeft})
	assert.ErrorIs(t, err, io.ErrUnexpectedEOF)

	_, err = Unmarshal(Either(Uint8(), String()), []byte{TagRight})
	assert.ErrorIs(t, err, io.ErrUnexpectedEOF)
}

// not parallel: it measures allocations of the whole process
func TestBytes_HugePrefixShortInput(t *testing.T) {
	input := []byte{TagRight, 0xff, 0xff, 0xff, 0x7f, 'a', 'b'}

	var before, after runtime.MemStats
	runtime.ReadMemStats(&before)
	_, err := Unmarshal(Either(Uint8(), Bytes()), input)
	runtime.ReadMemStats(&after)

	assert.ErrorIs(t, err, io.ErrUnexpectedEOF)
	assert.Less(t, after.TotalAlloc-before.TotalAlloc, uint64(1<<20))

	_, err = Unmarshal(String(), []byte{0xff, 0xff, 0xff, 0xff})
	assert.ErrorIs(t, err, io.ErrUnexpectedEOF)
}

func TestUnmarshal_TrailingBytes(t *testing.T) {
	t.Parallel()

	_, err := Unmarshal(Either(Uint8(), Uint8()), []byte{TagLeft, 1, 0xff})
	assert.ErrorIs(t, err, ErrTrailingBytes)
}

func TestPrimitives_RoundTrip(t *testing.T) {
	t.Parallel()

	roundTrip(t, Bool(), true)
	roundTrip(t, Uint16(), uint16(0xbeef))
	roundTrip(t, Uint32(), uint32(0xdeadbeef))
	roundTrip(t, Uint64(), uint64(1)<<63)
	roundTrip(t, Int64(), int64(-1))
	roundTrip(t, Uint128(), uint128.Max)
	roundTrip(t, Bytes(), []byte{0, 1, 2})
	roundTrip(t, String(), "either")

	b, err := Marshal(String(), "ab")
	require.NoError(t, err)
	assert.Equal(t, []byte{2, 0, 0, 0, 'a', 'b'}, b)

	_, err = Unmarshal(Bool(), []byte{3})
	assert.ErrorIs(t, err, ErrInvalidBool)
}

type failingWriter struct {
	err error
}

func (f failingWriter) Write([]byte) (int, error) {
	return 0, f.err
}

func TestEncode_WriterErrorUnchanged(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")
	err := Either(Uint8(), Uint8()).Encode(failingWriter{err: boom}, either.Left[uint8, uint8](1))
	assert.Same(t, boom, err)
}

func roundTrip[T any](t *testing.T, c Codec[T], v T) {
	t.Helper()

	b, err := Marshal(c, v)
	require.NoError(t, err)
	got, err := Unmarshal(c, b)
	require.NoError(t, err)
	assert.Equal(t, v, got)
}
