package kernel

import (
	"dispatch/internal/pkg/errs"

	"github.com/google/uuid"
)

// ErrTrackingCodeIsNotConstructed indicates a TrackingCode that was not produced
// by NewTrackingCode or TrackingCodeFromString. The zero value is invalid.
var ErrTrackingCodeIsNotConstructed = errs.NewValueIsRequiredError(
	"TrackingCode must be created via NewTrackingCode or TrackingCodeFromString",
)

// TrackingCode is the value object identifying a package towards clients.
// It is generated by the server when a package is created and never changes
// afterwards, independent of the row's numeric primary key.
//
// TrackingCode is immutable and safe for concurrent use.
type TrackingCode struct {
	id uuid.UUID
}

// NewTrackingCode generates a fresh random tracking code.
func NewTrackingCode() TrackingCode {
	return TrackingCode{id: uuid.New()}
}

// TrackingCodeFromString parses a tracking code from its canonical string form.
// Used when restoring packages from persistence.
func TrackingCodeFromString(value string) (TrackingCode, error) {
	parsed, err := uuid.Parse(value)
	if err != nil {
		return TrackingCode{}, errs.NewValueIsInvalidErrorWithCause("trackingCode", err)
	}

	return TrackingCode{id: parsed}, nil
}

// Validate reports whether the tracking code was properly constructed.
func (c TrackingCode) Validate() error {
	if c.id == uuid.Nil {
		return ErrTrackingCodeIsNotConstructed
	}

	return nil
}

// IsEqual compares two tracking codes for identity.
func (c TrackingCode) IsEqual(other TrackingCode) bool {
	return c.id == other.id
}

// String returns the canonical string representation.
func (c TrackingCode) String() string {
	return c.id.String()
}
