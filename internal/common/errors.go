// Package common defines shared constants and sentinel errors used across
// the homeboard client. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// ErrUnauthenticated is returned by gateway calls when no session token
	// is held; the network is never touched in that case.
	ErrUnauthenticated = errors.New("not authenticated")

	// ErrNotFound is returned when a record, folder or collection item
	// cannot be resolved by id.
	ErrNotFound = errors.New("not found")

	// ErrNameRequired is returned when a required name field is empty.
	ErrNameRequired = errors.New("name is required")

	// ErrPasswordMismatch is returned when the new password and its
	// confirmation differ.
	ErrPasswordMismatch = errors.New("passwords do not match")
)
