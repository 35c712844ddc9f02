package codec

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"

	"lukechampine.com/uint128"
)

// Fixed-width integers are little-endian; strings and byte slices carry a
// uint32 little-endian length prefix.

var ErrInvalidBool = errors.New("codec: invalid bool byte")

type funcCodec[T any] struct {
	encode func(w io.Writer, v T) error
	decode func(r io.Reader) (T, error)
}

func (c funcCodec[T]) Encode(w io.Writer, v T) error {
	return c.encode(w, v)
}

func (c funcCodec[T]) Decode(r io.Reader) (T, error) {
	return c.decode(r)
}

// Func builds a Codec out of a pair of functions.
func Func[T any](encode func(w io.Writer, v T) error, decode func(r io.Reader) (T, error)) Codec[T] {
	return funcCodec[T]{encode: encode, decode: decode}
}

func fixed[T any](size int, put func([]byte, T), get func([]byte) T) Codec[T] {
	return Func(
		func(w io.Writer, v T) error {
			b := make([]byte, size)
			put(b, v)
			_, err := w.Write(b)
			return err
		},
		func(r io.Reader) (T, error) {
			b := make([]byte, size)
			if _, err := io.ReadFull(r, b); err != nil {
				var zero T
				return zero, err
			}
			return get(b), nil
		})
}

func Bool() Codec[bool] {
	return Func(
		func(w io.Writer, v bool) error {
			b := byte(0)
			if v {
				b = 1
			}
			_, err := w.Write([]byte{b})
			return err
		},
		func(r io.Reader) (bool, error) {
			var b [1]byte
			if _, err := io.ReadFull(r, b[:]); err != nil {
				return false, err
			}
			switch b[0] {
			case 0:
				return false, nil
			case 1:
				return true, nil
			}
			return false, fmt.Errorf("%w: %d", ErrInvalidBool, b[0])
		})
}

func Uint8() Codec[uint8] {
	return fixed(1,
		func(b []byte, v uint8) { b[0] = v },
		func(b []byte) uint8 { return b[0] })
}

func Uint16() Codec[uint16] {
	return fixed(2, binary.LittleEndian.PutUint16, binary.LittleEndian.Uint16)
}

func Uint32() Codec[uint32] {
	return fixed(4, binary.LittleEndian.PutUint32, binary.LittleEndian.Uint32)
}

func Uint64() Codec[uint64] {
	return fixed(8, binary.LittleEndian.PutUint64, binary.LittleEndian.Uint64)
}

func Int64() Codec[int64] {
	return fixed(8,
		func(b []byte, v int64) { binary.LittleEndian.PutUint64(b, uint64(v)) },
		func(b []byte) int64 { return int64(binary.LittleEndian.Uint64(b)) })
}

func Uint128() Codec[uint128.Uint128] {
	return fixed(16, func(b []byte, v uint128.Uint128) { v.PutBytes(b) }, uint128.FromBytes)
}

func Bytes() Codec[[]byte] {
	length := Uint32()
	return Func(
		func(w io.Writer, v []byte) error {
			if uint64(len(v)) > math.MaxUint32 {
				return fmt.Errorf("codec: %d bytes exceed the length prefix", len(v))
			}
			if err := length.Encode(w, uint32(len(v))); err != nil {
				return err
			}
			_, err := w.Write(v)
			return err
		},
		func(r io.Reader) ([]byte, error) {
			n, err := length.Decode(r)
			if err != nil {
				return nil, err
			}
			// the prefix is untrusted, so the buffer grows with the bytes
			// actually read instead of being sized from n up front
			var buf bytes.Buffer
			if _, err := io.CopyN(&buf, r, int64(n)); err != nil {
				if err == io.EOF {
					err = io.ErrUnexpectedEOF
				}
				return nil, err
			}
			return buf.Bytes(), nil
		})
}

func String() Codec[string] {
	raw := Bytes()
	return Func(
		func(w io.Writer, v string) error {
			return raw.Encode(w, []byte(v))
		},
		func(r io.Reader) (string, error) {
			b, err := raw.Decode(r)
			return string(b), err
		})
}
