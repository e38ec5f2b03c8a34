package errors

import (
	"context"
	"errors"
	"fmt"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DanishNasarudin/wvpac-pathfinder/dijkstra"
	"github.com/DanishNasarudin/wvpac-pathfinder/internal/snapshotio"
	"github.com/DanishNasarudin/wvpac-pathfinder/venue"
)

func TestNew(t *testing.T) {
	err := New(ErrCodeInvalidInput, "bad value: %s", "x")
	assert.Equal(t, ErrCodeInvalidInput, err.Code)
	assert.Equal(t, "INVALID_INPUT: bad value: x", err.Error())
	assert.Equal(t, "bad value: x", UserMessage(err))
}

func TestWrap(t *testing.T) {
	cause := errors.New("underlying error")
	err := Wrap(ErrCodeInternal, cause, "failed")

	assert.Same(t, cause, errors.Unwrap(err))
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "failed: underlying error", UserMessage(err))
}

func TestIs(t *testing.T) {
	wrapped := fmt.Errorf("outer: %w", New(ErrCodeNotFound, "floor 3"))
	assert.True(t, Is(wrapped, ErrCodeNotFound))
	assert.False(t, Is(wrapped, ErrCodeInternal))
	assert.False(t, Is(errors.New("plain"), ErrCodeNotFound))
	assert.Equal(t, Code(""), GetCode(errors.New("plain")))
	assert.Equal(t, "plain", UserMessage(errors.New("plain")))
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Code
	}{
		{"coded", New(ErrCodeNotFound, "x"), ErrCodeNotFound},
		{"canceled", fmt.Errorf("router: %w", context.Canceled), ErrCodeCanceled},
		{"missing file", fmt.Errorf("open: %w", os.ErrNotExist), ErrCodeFileNotFound},
		{"format", snapshotio.ErrUnknownFormat, ErrCodeInvalidFormat},
		{"strategy", dijkstra.ErrUnknownStrategy, ErrCodeInvalidFormat},
		{"empty points", dijkstra.ErrEmptyPoints, ErrCodeInvalidSnapshot},
		{"duplicate", fmt.Errorf("%w: id 3", venue.ErrDuplicatePoint), ErrCodeInvalidSnapshot},
		{"other", errors.New("boom"), ErrCodeInternal},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(tt.err)
			require.NotNil(t, got)
			assert.Equal(t, tt.want, got.Code)
			assert.ErrorIs(t, got, tt.err)
		})
	}

	assert.Nil(t, Classify(nil))
}
