package parcel_test

import (
	"testing"

	"dispatch/internal/core/domain/model/parcel"
	"dispatch/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_Validate(t *testing.T) {
	t.Run("valid statuses", func(t *testing.T) {
		for _, status := range []parcel.Status{parcel.Pending, parcel.Active, parcel.Inactive} {
			require.NoError(t, status.Validate())
		}
	})

	t.Run("invalid statuses", func(t *testing.T) {
		for _, status := range []parcel.Status{parcel.Unknown, parcel.Status(99), parcel.Status(-1)} {
			require.ErrorIs(t, status.Validate(), errs.ErrValueIsInvalid)
		}
	})
}

func TestStatus_String(t *testing.T) {
	assert.Equal(t, "pending", parcel.Pending.String())
	assert.Equal(t, "active", parcel.Active.String())
	assert.Equal(t, "inactive", parcel.Inactive.String())
	assert.Equal(t, "unknown", parcel.Unknown.String())
	assert.Equal(t, "unknown", parcel.Status(42).String())
}

func TestStatusFromString(t *testing.T) {
	t.Run("parses known values", func(t *testing.T) {
		cases := map[string]parcel.Status{
			"pending":  parcel.Pending,
			"active":   parcel.Active,
			"inactive": parcel.Inactive,
		}

		for input, expected := range cases {
			status, err := parcel.StatusFromString(input)
			require.NoError(t, err)
			assert.Equal(t, expected, status)
		}
	})

	t.Run("rejects unknown values", func(t *testing.T) {
		for _, input := range []string{"", "unknown", "delivered", "ACTIVE"} {
			_, err := parcel.StatusFromString(input)
			require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		}
	})
}
