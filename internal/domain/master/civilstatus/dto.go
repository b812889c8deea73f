package civilstatus

import (
	"time"

	"github.com/bayanihr/hr201-backend-go/internal/pkg/validator"
)

type CivilStatus struct {
	ID        string
	Name      string
	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

type CivilStatusResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	IsActive bool   `json:"is_active"`
}

func ToResponse(c CivilStatus) CivilStatusResponse {
	return CivilStatusResponse{ID: c.ID, Name: c.Name, IsActive: c.IsActive}
}

type CreateCivilStatusRequest struct {
	Name string `json:"name"`
}

func (r *CreateCivilStatusRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}
	if len(r.Name) > 50 {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name must not exceed 50 characters",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateCivilStatusRequest struct {
	ID   string  `json:"-"`
	Name *string `json:"name,omitempty"`
}

func (r *UpdateCivilStatusRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "id is required",
		})
	}
	if r.Name != nil && validator.IsEmpty(*r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name must not be empty",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
