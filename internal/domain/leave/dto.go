package leave

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/bayanihr/hr201-backend-go/internal/pkg/validator"
)

type CreateLeaveTypeRequest struct {
	Name        string  `json:"leave_type_name"`
	Code        *string `json:"leave_type_code,omitempty"`
	Description *string `json:"leave_type_description,omitempty"`
}

func (r *CreateLeaveTypeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "leave_type_name",
			Message: "leave_type_name is required",
		})
	}
	if len(r.Name) > 255 {
		errs = append(errs, validator.ValidationError{
			Field:   "leave_type_name",
			Message: "leave_type_name must not exceed 255 characters",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateLeaveTypeRequest struct {
	ID          string  `json:"-"`
	Name        *string `json:"leave_type_name,omitempty"`
	Code        *string `json:"leave_type_code,omitempty"`
	Description *string `json:"leave_type_description,omitempty"`
}

func (r *UpdateLeaveTypeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "leave_type_id",
			Message: "leave_type_id is required",
		})
	}
	if r.Name != nil {
		if validator.IsEmpty(*r.Name) {
			errs = append(errs, validator.ValidationError{
				Field:   "leave_type_name",
				Message: "leave_type_name must not be empty",
			})
		}
		if len(*r.Name) > 255 {
			errs = append(errs, validator.ValidationError{
				Field:   "leave_type_name",
				Message: "leave_type_name must not exceed 255 characters",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type CreateLeavePolicyRequest struct {
	LeaveTypeID     string   `json:"leave_type_id"`
	MinTenureMonths int      `json:"min_tenure_months"`
	AllowedStatuses []string `json:"allowed_statuses,omitempty"`
	AnnualCredit    float64  `json:"annual_credit"`
}

func (r *CreateLeavePolicyRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.LeaveTypeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "leave_type_id",
			Message: "leave_type_id is required",
		})
	}
	if r.MinTenureMonths < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "min_tenure_months",
			Message: "min_tenure_months must not be negative",
		})
	}
	if r.AnnualCredit < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "annual_credit",
			Message: "annual_credit must not be negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateLeavePolicyRequest struct {
	ID              string   `json:"-"`
	MinTenureMonths *int     `json:"min_tenure_months,omitempty"`
	AllowedStatuses []string `json:"allowed_statuses,omitempty"`
	AnnualCredit    *float64 `json:"annual_credit,omitempty"`
}

type CreateLeaveBalanceRequest struct {
	EmployeeID  string  `json:"employee_id"`
	LeaveTypeID string  `json:"leave_type_id"`
	Year        int     `json:"year"`
	Remaining   float64 `json:"remaining"`
}

func (r *CreateLeaveBalanceRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}
	if validator.IsEmpty(r.LeaveTypeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "leave_type_id",
			Message: "leave_type_id is required",
		})
	}
	if r.Year <= 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "year",
			Message: "year must be a positive integer",
		})
	}
	if r.Remaining < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "remaining",
			Message: "remaining must not be negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type CreateHolidayRequest struct {
	Name string `json:"name"`
	Date string `json:"date"`
}

func (r *CreateHolidayRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}
	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be a valid YYYY-MM-DD date",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateHolidayRequest struct {
	ID   string  `json:"-"`
	Name *string `json:"name,omitempty"`
	Date *string `json:"date,omitempty"`
}

func (r *UpdateHolidayRequest) Validate() error {
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
	if r.Date != nil {
		if _, ok := validator.IsValidDate(*r.Date); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "date",
				Message: "date must be a valid YYYY-MM-DD date",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// CreateLeaveRequestCommand is the caller's input for filing a leave
// request. LeaveType carries the type name; TotalDays, when supplied,
// overrides the calculated day count (half-day values included).
type CreateLeaveRequestCommand struct {
	EmployeeID string   `json:"employee_id"`
	LeaveType  string   `json:"leave_type"`
	StartDate  string   `json:"start_date"`
	EndDate    string   `json:"end_date"`
	TotalDays  *float64 `json:"total_days,omitempty"`
	IsHalfDay  *bool    `json:"is_half_day,omitempty"`
	Reason     *string  `json:"reason,omitempty"`
}

func (r *CreateLeaveRequestCommand) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}
	if validator.IsEmpty(r.LeaveType) {
		errs = append(errs, validator.ValidationError{
			Field:   "leave_type",
			Message: "leave_type is required",
		})
	}
	if _, ok := validator.IsValidDate(r.StartDate); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date must be a valid YYYY-MM-DD date",
		})
	}
	if _, ok := validator.IsValidDate(r.EndDate); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must be a valid YYYY-MM-DD date",
		})
	}
	if r.TotalDays != nil && *r.TotalDays <= 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "total_days",
			Message: "total_days must be positive",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// UpdateLeaveRequestCommand mutates a pending request. Nil fields are
// left untouched.
type UpdateLeaveRequestCommand struct {
	ID        string   `json:"-"`
	LeaveType *string  `json:"leave_type,omitempty"`
	StartDate *string  `json:"start_date,omitempty"`
	EndDate   *string  `json:"end_date,omitempty"`
	TotalDays *float64 `json:"total_days,omitempty"`
	IsHalfDay *bool    `json:"is_half_day,omitempty"`
	Reason    *string  `json:"reason,omitempty"`
}

func (r *UpdateLeaveRequestCommand) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "id is required",
		})
	}
	if r.StartDate != nil {
		if _, ok := validator.IsValidDate(*r.StartDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "start_date",
				Message: "start_date must be a valid YYYY-MM-DD date",
			})
		}
	}
	if r.EndDate != nil {
		if _, ok := validator.IsValidDate(*r.EndDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "end_date",
				Message: "end_date must be a valid YYYY-MM-DD date",
			})
		}
	}
	if (r.StartDate == nil) != (r.EndDate == nil) {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date and end_date must be supplied together",
		})
	}
	if r.TotalDays != nil && *r.TotalDays <= 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "total_days",
			Message: "total_days must be positive",
		})
	}
	if r.LeaveType != nil && validator.IsEmpty(*r.LeaveType) {
		errs = append(errs, validator.ValidationError{
			Field:   "leave_type",
			Message: "leave_type must not be empty",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

func (r *UpdateLeaveRequestCommand) IsEmpty() bool {
	return r.LeaveType == nil && r.StartDate == nil && r.EndDate == nil &&
		r.TotalDays == nil && r.IsHalfDay == nil && r.Reason == nil
}

type ApproveRequestRequest struct {
	RequestID string  `json:"request_id"`
	Remarks   *string `json:"remarks,omitempty"`
}

func (r *ApproveRequestRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.RequestID) {
		errs = append(errs, validator.ValidationError{
			Field:   "request_id",
			Message: "request_id is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type RejectRequestRequest struct {
	RequestID string `json:"request_id"`
	Remarks   string `json:"remarks"`
}

func (r *RejectRequestRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.RequestID) {
		errs = append(errs, validator.ValidationError{
			Field:   "request_id",
			Message: "request_id is required",
		})
	}
	if validator.IsEmpty(r.Remarks) {
		errs = append(errs, validator.ValidationError{
			Field:   "remarks",
			Message: "remarks is required when rejecting",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type LeaveRequestResponse struct {
	ID           string     `json:"id"`
	EmployeeID   string     `json:"employee_id"`
	EmployeeName *string    `json:"employee_name,omitempty"`
	LeaveTypeID  string     `json:"leave_type_id"`
	LeaveType    string     `json:"leave_type"`
	StartDate    string     `json:"start_date"`
	EndDate      string     `json:"end_date"`
	TotalDays    string     `json:"total_days"`
	Reason       *string    `json:"reason,omitempty"`
	BalanceID    string     `json:"balance_id"`
	Status       string     `json:"status"`
	ApprovalBy   *string    `json:"approval_by,omitempty"`
	ApprovalDate *time.Time `json:"approval_date,omitempty"`
	Remarks      *string    `json:"remarks,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

func ToRequestResponse(r LeaveRequest) LeaveRequestResponse {
	return LeaveRequestResponse{
		ID:           r.ID,
		EmployeeID:   r.EmployeeID,
		EmployeeName: r.EmployeeName,
		LeaveTypeID:  r.LeaveTypeID,
		LeaveType:    r.LeaveType,
		StartDate:    r.StartDate.Key(),
		EndDate:      r.EndDate.Key(),
		TotalDays:    r.TotalDays.String(),
		Reason:       r.Reason,
		BalanceID:    r.BalanceID,
		Status:       string(r.Status),
		ApprovalBy:   r.ApprovalBy,
		ApprovalDate: r.ApprovalDate,
		Remarks:      r.Remarks,
		CreatedAt:    r.CreatedAt,
		UpdatedAt:    r.UpdatedAt,
	}
}

type LeaveTypeResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"leave_type_name"`
	Code        *string `json:"leave_type_code,omitempty"`
	Description *string `json:"leave_type_description,omitempty"`
	IsActive    bool    `json:"is_active"`
}

func ToTypeResponse(t LeaveType) LeaveTypeResponse {
	return LeaveTypeResponse{
		ID:          t.ID,
		Name:        t.Name,
		Code:        t.Code,
		Description: t.Description,
		IsActive:    t.IsActive,
	}
}

type LeavePolicyResponse struct {
	ID              string   `json:"id"`
	LeaveTypeID     string   `json:"leave_type_id"`
	MinTenureMonths int      `json:"min_tenure_months"`
	AllowedStatuses []string `json:"allowed_statuses,omitempty"`
	AnnualCredit    string   `json:"annual_credit"`
	IsActive        bool     `json:"is_active"`
}

func ToPolicyResponse(p LeavePolicy) LeavePolicyResponse {
	return LeavePolicyResponse{
		ID:              p.ID,
		LeaveTypeID:     p.LeaveTypeID,
		MinTenureMonths: p.MinTenureMonths,
		AllowedStatuses: p.AllowedStatuses,
		AnnualCredit:    p.AnnualCredit.String(),
		IsActive:        p.IsActive,
	}
}

type HolidayResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Date string `json:"date"`
}

func ToHolidayResponse(h Holiday) HolidayResponse {
	return HolidayResponse{
		ID:   h.ID,
		Name: h.Name,
		Date: h.Date.Key(),
	}
}

type LeaveBalanceResponse struct {
	ID          string `json:"id"`
	EmployeeID  string `json:"employee_id"`
	LeaveTypeID string `json:"leave_type_id"`
	Year        int    `json:"year"`
	Remaining   string `json:"remaining"`
	Status      string `json:"status"`
}

func ToBalanceResponse(b LeaveBalance) LeaveBalanceResponse {
	return LeaveBalanceResponse{
		ID:          b.ID,
		EmployeeID:  b.EmployeeID,
		LeaveTypeID: b.LeaveTypeID,
		Year:        b.Year,
		Remaining:   b.Remaining.String(),
		Status:      string(b.Status),
	}
}

// HalfDay is the fractional day count of a half-day request.
var HalfDay = decimal.NewFromFloat(0.5)
