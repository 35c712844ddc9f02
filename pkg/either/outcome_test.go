package either

import (
	"context"
	"errors"
	"strconv"
	"testing"

	"github.com/ib-77/either3/pkg/either/outcome"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromOutcome(t *testing.T) {
	t.Parallel()

	r := FromOutcome[int](outcome.Success(5))
	assert.Equal(t, Right[error](5), r)

	boom := errors.New("boom")
	l := FromOutcome[int](outcome.Failure[int](boom))
	err, ok := l.Left()
	require.True(t, ok)
	assert.Same(t, boom, err)

	c := FromOutcome[int](outcome.Cancel[int](context.Canceled))
	assert.True(t, c.IsLeft())
}

func TestToOutcome(t *testing.T) {
	t.Parallel()

	o := ToOutcome(Right[error]("done"))
	require.True(t, o.IsSuccess())
	assert.Equal(t, "done", o.Value())

	boom := errors.New("boom")
	f := ToOutcome(Left[error, string](boom))
	assert.True(t, f.IsFailure())
	assert.False(t, f.IsCancel())
	assert.Same(t, boom, f.Err())

	c := ToOutcome(Left[error, string](context.DeadlineExceeded))
	assert.True(t, c.IsCancel())
	assert.ErrorIs(t, c.Err(), context.DeadlineExceeded)
}

func TestOutcome_RoundTrip(t *testing.T) {
	t.Parallel()

	for _, e := range []Either[error, int]{
		Right[error](1),
		Left[error, int](errors.New("x")),
	} {
		assert.Equal(t, e, FromOutcome[int](ToOutcome(e)))
	}
}

func TestPair(t *testing.T) {
	t.Parallel()

	n, err := strconv.Atoi("12")
	r := FromPair(n, err)
	v, err := ToPair(r)
	require.NoError(t, err)
	assert.Equal(t, 12, v)

	n, err = strconv.Atoi("twelve")
	l := FromPair(n, err)
	assert.True(t, l.IsLeft())
	v, err = ToPair(l)
	assert.Zero(t, v)
	var numErr *strconv.NumError
	assert.ErrorAs(t, err, &numErr)
}

type pathErr struct{}

func (*pathErr) Error() string { return "path" }

func TestNilLeft_StaysFailure(t *testing.T) {
	t.Parallel()

	v, err := ToPair(Left[error, int](nil))
	assert.Zero(t, v)
	assert.ErrorIs(t, err, ErrNilLeft)

	o := ToOutcome(Left[error, int](nil))
	assert.False(t, o.IsSuccess())
	assert.ErrorIs(t, o.Err(), ErrNilLeft)

	var typedNil *pathErr
	_, err = ToPair(Left[*pathErr, int](typedNil))
	assert.ErrorIs(t, err, ErrNilLeft)
}
