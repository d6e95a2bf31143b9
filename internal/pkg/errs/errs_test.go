package errs_test

import (
	"errors"
	"testing"

	"dispatch/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectNotFoundError(t *testing.T) {
	t.Run("without cause", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("packageId", "42")

		assert.Equal(t, "packageId", err.ParamName)
		assert.Equal(t, "42", err.ID)
		require.NoError(t, err.Cause)
		assert.Equal(t, "object not found: 42", err.Error())
		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})

	t.Run("with cause", func(t *testing.T) {
		cause := errors.New("connection reset")
		err := errs.NewObjectNotFoundErrorWithCause("userId", "7", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"object not found: param is: userId, ID is: 7 (cause: connection reset)",
			err.Error())
		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})
}

func TestValueIsInvalidError(t *testing.T) {
	t.Run("without cause", func(t *testing.T) {
		err := errs.NewValueIsInvalidError("status")

		assert.Equal(t, "value is invalid: status", err.Error())
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("with cause", func(t *testing.T) {
		cause := errors.New("unknown value")
		err := errs.NewValueIsInvalidErrorWithCause("status", cause)

		assert.Equal(t, "value is invalid: status (cause: unknown value)", err.Error())
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestValueIsOutOfRangeError(t *testing.T) {
	t.Run("formats bounds", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("quantity", -3, 0, 10000)

		assert.Equal(t, -3, err.Value)
		assert.Equal(t, 0, err.Min)
		assert.Equal(t, 10000, err.Max)
		assert.Equal(t,
			"value is invalid: -3 is quantity, min value is 0, max value is 10000",
			err.Error())
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("sanitizes newlines in value", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("address", "line1\nline2", 0, 10)

		assert.Contains(t, err.Error(), "line1 line2")
		assert.NotContains(t, err.Error(), "\n")
	})
}

func TestValueIsRequiredError(t *testing.T) {
	err := errs.NewValueIsRequiredError("clientname")

	assert.Equal(t, "value is required: clientname", err.Error())
	require.ErrorIs(t, err, errs.ErrValueIsRequired)

	cause := errors.New("field absent")
	withCause := errs.NewValueIsRequiredErrorWithCause("clientname", cause)
	assert.Equal(t, "value is required: clientname (cause: field absent)", withCause.Error())
}

func TestVersionIsInvalidError(t *testing.T) {
	cause := errors.New("marker corrupted")
	err := errs.NewVersionIsInvalidError("version", cause)

	assert.Equal(t, "version is invalid: version (cause: marker corrupted)", err.Error())
	require.ErrorIs(t, err, errs.ErrVersionIsInvalid)
}

func TestSentinelErrors(t *testing.T) {
	assert.Equal(t, "object not found", errs.ErrObjectNotFound.Error())
	assert.Equal(t, "value is invalid", errs.ErrValueIsInvalid.Error())
	assert.Equal(t, "value is out of range", errs.ErrValueIsOutOfRange.Error())
	assert.Equal(t, "value is required", errs.ErrValueIsRequired.Error())
	assert.Equal(t, "version is invalid", errs.ErrVersionIsInvalid.Error())
}
