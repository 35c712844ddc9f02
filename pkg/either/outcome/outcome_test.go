package outcome

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSuccess(t *testing.T) {
	t.Parallel()

	before := time.Now().UTC()
	o := Success(10)

	assert.True(t, o.IsSuccess())
	assert.False(t, o.IsFailure())
	assert.False(t, o.IsCancel())
	assert.Equal(t, Succeeded, o.State())
	assert.Equal(t, 10, o.Value())
	assert.NoError(t, o.Err())
	assert.NotEqual(t, uuid.Nil, o.Id())
	assert.Equal(t, time.UTC, o.CreatedAt().Location())
	assert.False(t, o.CreatedAt().Before(before))

	v, err := o.Get()
	require.NoError(t, err)
	assert.Equal(t, 10, v)
}

func TestFailureAndCancel(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")
	f := Failure[string](boom)
	assert.True(t, f.IsFailure())
	assert.False(t, f.IsCancel())
	assert.Equal(t, "failure", f.State().String())
	v, err := f.Get()
	assert.Empty(t, v)
	assert.Same(t, boom, err)

	c := Cancel[string](context.Canceled)
	assert.True(t, c.IsFailure())
	assert.True(t, c.IsCancel())
	assert.Equal(t, "cancel", c.State().String())
}

func TestOf(t *testing.T) {
	t.Parallel()

	assert.True(t, Of(1, nil).IsSuccess())
	assert.Equal(t, Failed, Of(0, errors.New("x")).State())
	assert.Equal(t, Cancelled, Of(0, fmt.Errorf("stage: %w", context.DeadlineExceeded)).State())

	var typedNil *customErr
	assert.True(t, Of(2, error(typedNil)).IsSuccess())
}

func TestIds_Unique(t *testing.T) {
	t.Parallel()

	seen := map[uuid.UUID]bool{}
	for i := 0; i < 100; i++ {
		id := Success(i).Id()
		require.False(t, seen[id])
		seen[id] = true
	}
}

type customErr struct{}

func (*customErr) Error() string { return "custom" }
