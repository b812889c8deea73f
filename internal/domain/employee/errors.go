package employee

import "errors"

var (
	ErrEmployeeNotFound   = errors.New("employee not found")
	ErrEmployeeInactive   = errors.New("employee is inactive")
	ErrEmployeeCodeExists = errors.New("employee code already exists")
	ErrEducationNotFound  = errors.New("education record not found")
	ErrTrainingNotFound   = errors.New("training certificate not found")
	ErrExperienceNotFound = errors.New("work experience not found")
	ErrNothingToUpdate    = errors.New("no fields to update")
)
