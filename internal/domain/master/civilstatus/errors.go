package civilstatus

import "errors"

var (
	ErrCivilStatusNotFound = errors.New("civil status not found")
)
