package apperrors

import "errors"

// Common errors
var (
	// ErrResourceNotFound is the shared sentinel for lookups that matched no
	// rows. Repositories alias it per entity so callers can match either way.
	ErrResourceNotFound = errors.New("resource not found")
)

// Is returns whether target (or any error in errList) matches err.
func Is(err, target error, errList ...error) bool {
	if errors.Is(err, target) {
		return true
	}

	for _, e := range errList {
		if errors.Is(err, e) {
			return true
		}
	}

	return false
}
