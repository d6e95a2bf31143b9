// Package guard implements the constructor-guard pattern used by
// commands, queries, and value objects: a struct embeds a
// ConstructorGuard and its Validate method rejects any instance that
// was not produced by the designated constructor. This keeps zero-value
// structs from slipping past invariant checks.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when the caller
// passes a nil error for an unconstructed object, so that validation
// never silently succeeds.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks whether its enclosing struct was built through
// a constructor. The zero value always fails validation.
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard that passes validation.
// Constructors embed the result into the object they build.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil for properly constructed objects. For zero-value
// guards it returns the provided error, or ErrDefaultConstructorGuard
// when the provided error is nil.
func (g ConstructorGuard) Validate(err error) error {
	if g.isConstructed {
		return nil
	}

	if err == nil {
		return ErrDefaultConstructorGuard
	}

	return err
}
