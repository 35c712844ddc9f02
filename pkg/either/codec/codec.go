package codec

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/ib-77/either3/pkg/either"
)

// Codec writes and reads one value of T in a binary form.
type Codec[T any] interface {
	Encode(w io.Writer, v T) error
	Decode(r io.Reader) (T, error)
}

const (
	TagLeft  byte = 0
	TagRight byte = 1
)

var (
	ErrInvalidTag    = errors.New("codec: invalid either tag")
	ErrTrailingBytes = errors.New("codec: trailing bytes after value")
)

type eitherCodec[L, R any] struct {
	left  Codec[L]
	right Codec[R]
}

// Either encodes an Either as one tag byte, TagLeft or TagRight, followed by
// the payload written by the codec for that side.
func Either[L, R any](left Codec[L], right Codec[R]) Codec[either.Either[L, R]] {
	return eitherCodec[L, R]{left: left, right: right}
}

func (c eitherCodec[L, R]) Encode(w io.Writer, v either.Either[L, R]) error {
	if l, ok := v.Left(); ok {
		if _, err := w.Write([]byte{TagLeft}); err != nil {
			return err
		}
		return c.left.Encode(w, l)
	}
	r, _ := v.Right()
	if _, err := w.Write([]byte{TagRight}); err != nil {
		return err
	}
	return c.right.Encode(w, r)
}

func (c eitherCodec[L, R]) Decode(r io.Reader) (either.Either[L, R], error) {
	var tag [1]byte
	if _, err := io.ReadFull(r, tag[:]); err != nil {
		return either.Either[L, R]{}, err
	}
	switch tag[0] {
	case TagLeft:
		l, err := c.left.Decode(r)
		if err != nil {
			return either.Either[L, R]{}, payloadErr(err)
		}
		return either.Left[L, R](l), nil
	case TagRight:
		v, err := c.right.Decode(r)
		if err != nil {
			return either.Either[L, R]{}, payloadErr(err)
		}
		return either.Right[L](v), nil
	}
	return either.Either[L, R]{}, fmt.Errorf("%w: %d", ErrInvalidTag, tag[0])
}

// payloadErr reports a payload that ends right after its tag as truncated
// rather than as a clean end of stream.
func payloadErr(err error) error {
	if err == io.EOF {
		return io.ErrUnexpectedEOF
	}
	return err
}

func Marshal[T any](c Codec[T], v T) ([]byte, error) {
	var buf bytes.Buffer
	if err := c.Encode(&buf, v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Unmarshal decodes a single value that must use all of data.
func Unmarshal[T any](c Codec[T], data []byte) (T, error) {
	r := bytes.NewReader(data)
	v, err := c.Decode(r)
	if err != nil {
		var zero T
		return zero, err
	}
	if r.Len() != 0 {
		var zero T
		return zero, fmt.Errorf("%w: %d", ErrTrailingBytes, r.Len())
	}
	return v, nil
}
