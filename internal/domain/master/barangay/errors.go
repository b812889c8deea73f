package barangay

import "errors"

var (
	ErrBarangayNotFound = errors.New("barangay not found")
)
