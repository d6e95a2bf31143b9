package guard_test

import (
	"errors"
	"testing"

	"dispatch/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructorGuard_Validate(t *testing.T) {
	t.Run("constructed_guard_returns_nil", func(t *testing.T) {
		g := guard.NewConstructorGuard()

		require.NoError(t, g.Validate(errors.New("not constructed")))
		require.NoError(t, g.Validate(nil))
	})

	t.Run("zero_value_guard_returns_custom_error", func(t *testing.T) {
		var g guard.ConstructorGuard // zero value
		expectedError := errors.New("entity not constructed")

		err := g.Validate(expectedError)

		require.Error(t, err)
		assert.Equal(t, expectedError, err)
	})

	t.Run("zero_value_guard_returns_default_error_when_nil", func(t *testing.T) {
		var g guard.ConstructorGuard // zero value

		err := g.Validate(nil)

		require.Error(t, err)
		assert.Equal(t, guard.ErrDefaultConstructorGuard, err)
	})
}

// TestConstructorGuardEmbedded exercises the guard the way commands and
// value objects embed it.
func TestConstructorGuardEmbedded(t *testing.T) {
	type patch struct {
		field string
		guard guard.ConstructorGuard
	}

	errNotConstructed := errors.New("patch must be created via newPatch")

	newPatch := func(field string) patch {
		return patch{field: field, guard: guard.NewConstructorGuard()}
	}

	t.Run("constructed_object_validates", func(t *testing.T) {
		p := newPatch("status")
		require.NoError(t, p.guard.Validate(errNotConstructed))
	})

	t.Run("zero_value_object_fails_validation", func(t *testing.T) {
		var p patch
		require.ErrorIs(t, p.guard.Validate(errNotConstructed), errNotConstructed)
	})
}
