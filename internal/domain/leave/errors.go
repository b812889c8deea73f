package leave

import "errors"

var (
	ErrLeaveTypeNotFound    = errors.New("Leave type not found")
	ErrLeaveTypeInactive    = errors.New("Leave type is inactive")
	ErrLeaveTypeNameExists  = errors.New("Leave type with this name already exists")
	ErrPolicyNotFound       = errors.New("No active leave policy for this leave type")
	ErrNotEligible          = errors.New("Employee is not eligible for this leave")
	ErrBalanceNotFound      = errors.New("Leave balance not found")
	ErrBalanceClosed        = errors.New("Leave balance is closed")
	ErrInsufficientBalance  = errors.New("Insufficient leave balance")
	ErrOverlappingRequest   = errors.New("Leave request overlaps with existing request(s)")
	ErrLeaveRequestNotFound = errors.New("Leave request not found")
	ErrRequestNotPending    = errors.New("Only pending leave requests can be modified")
	ErrInvalidDateRange     = errors.New("Invalid date range")
	ErrStartBeforeToday     = errors.New("Start date cannot be before today")
	ErrHolidayOnlyPeriod    = errors.New("Requested period consists entirely of holidays")
	ErrHalfDayDateMismatch  = errors.New("Half-day leave must start and end on the same date")
	ErrNothingToUpdate      = errors.New("No fields to update")
	ErrHolidayNotFound      = errors.New("Holiday not found")
	ErrHolidayDateExists    = errors.New("A holiday already exists on this date")
)
