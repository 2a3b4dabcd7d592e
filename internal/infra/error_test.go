//go:build unit

package infra_test

import (
	"errors"
	"fmt"
	"testing"

	"loyalty-rewards/internal/infra"

	"github.com/stretchr/testify/assert"
)

func TestWrapRepoErr(t *testing.T) {
	t.Run("keeps kind and cause", func(t *testing.T) {
		err := infra.WrapRepoErr(nil, infra.KindDBFailure, "failed to find customer", assert.AnError)

		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
		assert.False(t, infra.IsKind(err, infra.KindInvalidData))
		assert.True(t, errors.Is(err, assert.AnError))
		assert.Contains(t, err.Error(), "DB_FAILURE: failed to find customer")
	})

	t.Run("without cause", func(t *testing.T) {
		err := infra.WrapRepoErr(nil, infra.KindInvalidData, "negative amount", nil)

		assert.True(t, infra.IsKind(err, infra.KindInvalidData))
		assert.Equal(t, "INVALID_DATA: negative amount", err.Error())
	})

	t.Run("kind survives further wrapping", func(t *testing.T) {
		err := fmt.Errorf("lookup: %w", infra.WrapRepoErr(nil, infra.KindDBFailure, "boom", nil))

		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})

	t.Run("plain errors have no kind", func(t *testing.T) {
		assert.False(t, infra.IsKind(assert.AnError, infra.KindDBFailure))
	})
}
