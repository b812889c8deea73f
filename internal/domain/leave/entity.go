package leave

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/bayanihr/hr201-backend-go/internal/domain/employee"
	"github.com/bayanihr/hr201-backend-go/internal/pkg/calendar"
)

// LeaveType entity
type LeaveType struct {
	ID          string
	Name        string
	Code        *string
	Description *string
	IsActive    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// LeavePolicy governs eligibility for one leave type. At most one policy
// per leave type is active at a time.
type LeavePolicy struct {
	ID              string
	LeaveTypeID     string
	MinTenureMonths int
	AllowedStatuses []string // employment statuses; empty means any
	AnnualCredit    decimal.Decimal
	IsActive        bool
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// EligibilityResult is the outcome of a policy check.
type EligibilityResult struct {
	Eligible bool
	Reason   string
}

// Evaluate checks a policy against an employee's hire date and employment
// status as of the requested start date.
func (p LeavePolicy) Evaluate(hireDate calendar.Date, status employee.EmploymentStatus, startDate calendar.Date) EligibilityResult {
	if !status.Employed() {
		return EligibilityResult{Reason: "employee is no longer employed"}
	}

	if len(p.AllowedStatuses) > 0 {
		allowed := false
		for _, s := range p.AllowedStatuses {
			if s == string(status) {
				allowed = true
				break
			}
		}
		if !allowed {
			return EligibilityResult{Reason: "employment status " + string(status) + " is not covered by this leave policy"}
		}
	}

	if p.MinTenureMonths > 0 {
		if tenureMonths(hireDate, startDate) < p.MinTenureMonths {
			return EligibilityResult{Reason: fmt.Sprintf("minimum tenure of %d month(s) not yet reached", p.MinTenureMonths)}
		}
	}

	return EligibilityResult{Eligible: true}
}

func tenureMonths(hireDate, asOf calendar.Date) int {
	months := (asOf.Year-hireDate.Year)*12 + int(asOf.Month) - int(hireDate.Month)
	if asOf.Day < hireDate.Day {
		months--
	}
	if months < 0 {
		months = 0
	}
	return months
}

type BalanceStatus string

const (
	BalanceStatusOpen   BalanceStatus = "open"
	BalanceStatusClosed BalanceStatus = "closed"
)

// LeaveBalance is the remaining allotment for one employee, leave type and
// year. The validator only reads it; consumption is a conditional decrement
// performed by the repository.
type LeaveBalance struct {
	ID          string
	EmployeeID  string
	LeaveTypeID string
	Year        int
	Remaining   decimal.Decimal
	Status      BalanceStatus
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type RequestStatus string

const (
	RequestStatusPending   RequestStatus = "pending"
	RequestStatusApproved  RequestStatus = "approved"
	RequestStatusRejected  RequestStatus = "rejected"
	RequestStatusCancelled RequestStatus = "cancelled"
)

// LeaveRequest entity. Only pending requests are mutable; approval,
// rejection and cancellation are terminal transitions.
type LeaveRequest struct {
	ID          string
	EmployeeID  string
	LeaveTypeID string
	LeaveType   string // denormalized type name
	StartDate   calendar.Date
	EndDate     calendar.Date
	TotalDays   decimal.Decimal
	Reason      *string
	BalanceID   string
	Status      RequestStatus
	ApprovalBy   *string
	ApprovalDate *time.Time
	Remarks      *string
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time

	// Joined for responses
	EmployeeName *string
}

// Holiday marks a non-business calendar date.
type Holiday struct {
	ID        string
	Name      string
	Date      calendar.Date
	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
