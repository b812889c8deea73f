package province

import "errors"

var (
	ErrProvinceNotFound   = errors.New("province not found")
	ErrProvinceNameExists = errors.New("province with this name already exists")
)
