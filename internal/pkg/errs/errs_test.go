//go:build unit

package errs_test

import (
	"errors"
	"testing"

	"loyalty-rewards/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrap(t *testing.T) {
	t.Run("nil stays nil", func(t *testing.T) {
		assert.NoError(t, errs.Wrap(nil, "context"))
		assert.NoError(t, errs.Wrapf(nil, "context %d", 1))
	})

	t.Run("wrapped sentinel is still matched", func(t *testing.T) {
		sentinel := errs.New("customer not found")
		wrapped := errs.Wrapf(sentinel, "lookup customer %d", 7)

		require.Error(t, wrapped)
		assert.True(t, errors.Is(wrapped, sentinel))
		assert.True(t, errs.Is(wrapped, sentinel))
		assert.Equal(t, "lookup customer 7: customer not found", wrapped.Error())
	})
}

func TestMark(t *testing.T) {
	marker := errs.New("data error")

	assert.Equal(t, marker, errs.Mark(nil, marker))

	marked := errs.Mark(errs.New("negative amount"), marker)
	assert.True(t, errs.Is(marked, marker))
	assert.True(t, errs.Is(errs.Wrap(marked, "invalid transaction 3"), marker))
	assert.False(t, errs.Is(errs.New("negative amount"), marker))
	assert.Equal(t, "negative amount", marked.Error())
}

func TestExtractStackLines(t *testing.T) {
	assert.Nil(t, errs.ExtractStackLines(nil, 5))

	lines := errs.ExtractStackLines(errs.New("boom"), 3)
	assert.LessOrEqual(t, len(lines), 3)
	assert.Equal(t, "boom", lines[0])
}
