package province

import (
	"time"

	"github.com/bayanihr/hr201-backend-go/internal/pkg/validator"
)

type Province struct {
	ID        string
	Name      string
	Region    *string
	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

type ProvinceResponse struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Region   *string `json:"region,omitempty"`
	IsActive bool    `json:"is_active"`
}

func ToResponse(p Province) ProvinceResponse {
	return ProvinceResponse{ID: p.ID, Name: p.Name, Region: p.Region, IsActive: p.IsActive}
}

type CreateProvinceRequest struct {
	Name   string  `json:"name"`
	Region *string `json:"region,omitempty"`
}

func (r *CreateProvinceRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}
	if len(r.Name) > 100 {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name must not exceed 100 characters",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateProvinceRequest struct {
	ID     string  `json:"-"`
	Name   *string `json:"name,omitempty"`
	Region *string `json:"region,omitempty"`
}

func (r *UpdateProvinceRequest) Validate() error {
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
