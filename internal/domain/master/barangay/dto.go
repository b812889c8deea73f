package barangay

import (
	"time"

	"github.com/bayanihr/hr201-backend-go/internal/pkg/validator"
)

type Barangay struct {
	ID         string
	ProvinceID string
	Name       string
	City       *string
	IsActive   bool
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

type BarangayResponse struct {
	ID         string  `json:"id"`
	ProvinceID string  `json:"province_id"`
	Name       string  `json:"name"`
	City       *string `json:"city,omitempty"`
	IsActive   bool    `json:"is_active"`
}

func ToResponse(b Barangay) BarangayResponse {
	return BarangayResponse{ID: b.ID, ProvinceID: b.ProvinceID, Name: b.Name, City: b.City, IsActive: b.IsActive}
}

type CreateBarangayRequest struct {
	ProvinceID string  `json:"province_id"`
	Name       string  `json:"name"`
	City       *string `json:"city,omitempty"`
}

func (r *CreateBarangayRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ProvinceID) {
		errs = append(errs, validator.ValidationError{
			Field:   "province_id",
			Message: "province_id is required",
		})
	}
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

type UpdateBarangayRequest struct {
	ID         string  `json:"-"`
	ProvinceID *string `json:"province_id,omitempty"`
	Name       *string `json:"name,omitempty"`
	City       *string `json:"city,omitempty"`
}

func (r *UpdateBarangayRequest) Validate() error {
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
	if r.ProvinceID != nil && validator.IsEmpty(*r.ProvinceID) {
		errs = append(errs, validator.ValidationError{
			Field:   "province_id",
			Message: "province_id must not be empty",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
