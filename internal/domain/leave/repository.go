package leave

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/bayanihr/hr201-backend-go/internal/pkg/calendar"
)

// LeaveTypeRepository - interface for leave_types table
type LeaveTypeRepository interface {
	Create(ctx context.Context, leaveType LeaveType) (LeaveType, error)
	GetByID(ctx context.Context, id string) (LeaveType, error)
	GetByName(ctx context.Context, name string) (LeaveType, error)
	List(ctx context.Context, includeInactive bool) ([]LeaveType, error)
	Update(ctx context.Context, req UpdateLeaveTypeRequest) error
	SoftDelete(ctx context.Context, id string) error
}

// LeavePolicyRepository - interface for leave_policies table
type LeavePolicyRepository interface {
	Create(ctx context.Context, policy LeavePolicy) (LeavePolicy, error)
	GetByID(ctx context.Context, id string) (LeavePolicy, error)
	GetActiveByLeaveType(ctx context.Context, leaveTypeID string) (LeavePolicy, error)
	List(ctx context.Context, includeInactive bool) ([]LeavePolicy, error)
	Update(ctx context.Context, req UpdateLeavePolicyRequest) error
	SoftDelete(ctx context.Context, id string) error
}

// LeaveBalanceRepository - interface for leave_balances table.
// Consume and Restore are conditional updates so balance mutation never
// relies on read-then-write from the business layer.
type LeaveBalanceRepository interface {
	Create(ctx context.Context, balance LeaveBalance) (LeaveBalance, error)
	GetByID(ctx context.Context, id string) (LeaveBalance, error)
	GetByEmployeeTypeYear(ctx context.Context, employeeID, leaveTypeID string, year int) (LeaveBalance, error)
	ListByEmployee(ctx context.Context, employeeID string, year int) ([]LeaveBalance, error)
	// Consume decrements remaining by days only when the balance is open
	// and sufficient; returns ErrInsufficientBalance otherwise.
	Consume(ctx context.Context, balanceID string, days decimal.Decimal) error
	// Restore re-credits days onto an open balance.
	Restore(ctx context.Context, balanceID string, days decimal.Decimal) error
	Close(ctx context.Context, balanceID string) error
}

// LeaveRequestFilter narrows request listings.
type LeaveRequestFilter struct {
	EmployeeID  *string
	LeaveTypeID *string
	Status      *string
	StartDate   *calendar.Date
	EndDate     *calendar.Date
	Page        int
	Limit       int
}

// LeaveRequestRepository - interface for leave_requests table
type LeaveRequestRepository interface {
	Create(ctx context.Context, request LeaveRequest) (LeaveRequest, error)
	GetByID(ctx context.Context, id string) (LeaveRequest, error)
	List(ctx context.Context, filter LeaveRequestFilter) ([]LeaveRequest, int64, error)
	// FindOverlapping returns pending or approved requests for the
	// employee whose ranges intersect [start, end]. excludeID omits the
	// request being updated so it cannot conflict with itself.
	FindOverlapping(ctx context.Context, employeeID string, start, end calendar.Date, excludeID *string) ([]LeaveRequest, error)
	Update(ctx context.Context, req UpdateLeaveRequestRow) error
	UpdateStatus(ctx context.Context, id string, status RequestStatus, approvalBy *string, remarks *string) error
	SoftDelete(ctx context.Context, id string) error
}

// UpdateLeaveRequestRow carries the nullable column set for a partial
// leave_requests update.
type UpdateLeaveRequestRow struct {
	ID          string
	LeaveTypeID *string
	LeaveType   *string
	StartDate   *calendar.Date
	EndDate     *calendar.Date
	TotalDays   *decimal.Decimal
	Reason      *string
	BalanceID   *string
}

// HolidayRepository - interface for holidays table
type HolidayRepository interface {
	Create(ctx context.Context, holiday Holiday) (Holiday, error)
	GetByID(ctx context.Context, id string) (Holiday, error)
	// ListByRange returns active holidays whose date falls within
	// [start, end] inclusive.
	ListByRange(ctx context.Context, start, end calendar.Date) ([]Holiday, error)
	ListByYear(ctx context.Context, year int) ([]Holiday, error)
	Update(ctx context.Context, req UpdateHolidayRequest) error
	SoftDelete(ctx context.Context, id string) error
}
