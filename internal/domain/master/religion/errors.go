package religion

import "errors"

var (
	ErrReligionNotFound = errors.New("religion not found")
)
