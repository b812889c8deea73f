package jobtitle

import "errors"

var (
	ErrJobTitleNotFound   = errors.New("job title not found")
	ErrJobTitleNameExists = errors.New("job title with this name already exists")
)
