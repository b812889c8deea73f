package leave

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/bayanihr/hr201-backend-go/internal/domain/audit"
	"github.com/bayanihr/hr201-backend-go/internal/domain/employee"
	"github.com/bayanihr/hr201-backend-go/internal/domain/leave"
	"github.com/bayanihr/hr201-backend-go/internal/pkg/calendar"
	"github.com/bayanihr/hr201-backend-go/internal/pkg/database"
)

// RequestService validates and mutates the leave request lifecycle.
// Every write runs in one transaction and produces exactly one activity
// log entry, success or failure.
type RequestService struct {
	employees employee.EmployeeRepository
	types     leave.LeaveTypeRepository
	policies  leave.LeavePolicyRepository
	balances  leave.LeaveBalanceRepository
	requests  leave.LeaveRequestRepository
	holidays  leave.HolidayRepository
	audits    audit.Repository
	tx        database.Transactor
	logger    *slog.Logger

	// today is swapped in tests to pin the clock.
	today func() calendar.Date
}

func NewRequestService(
	employees employee.EmployeeRepository,
	types leave.LeaveTypeRepository,
	policies leave.LeavePolicyRepository,
	balances leave.LeaveBalanceRepository,
	requests leave.LeaveRequestRepository,
	holidays leave.HolidayRepository,
	audits audit.Repository,
	tx database.Transactor,
	logger *slog.Logger,
) *RequestService {
	return &RequestService{
		employees: employees,
		types:     types,
		policies:  policies,
		balances:  balances,
		requests:  requests,
		holidays:  holidays,
		audits:    audits,
		tx:        tx,
		logger:    logger,
		today:     calendar.Today,
	}
}

// validatePeriod is the one date validation path shared by create and
// update.
func (s *RequestService) validatePeriod(start, end calendar.Date, halfDay bool) error {
	if end.Before(start) {
		return leave.ErrInvalidDateRange
	}
	if start.Before(s.today()) {
		return leave.ErrStartBeforeToday
	}
	if halfDay && !start.Equal(end) {
		return leave.ErrHalfDayDateMismatch
	}
	return nil
}

// chargeableDays resolves the day count for [start, end]: calendar days
// minus holidays, 0.5 for a half day. A period made up entirely of
// holidays is rejected.
func (s *RequestService) chargeableDays(ctx context.Context, start, end calendar.Date, halfDay bool, override *float64) (decimal.Decimal, error) {
	holidays, err := s.holidays.ListByRange(ctx, start, end)
	if err != nil {
		return decimal.Decimal{}, err
	}

	if HolidaysWithin(start, end, holidays) >= CalendarDays(start, end) {
		return decimal.Decimal{}, leave.ErrHolidayOnlyPeriod
	}
	if halfDay {
		return leave.HalfDay, nil
	}
	if override != nil {
		return decimal.NewFromFloat(*override), nil
	}
	return TotalDays(start, end, holidays), nil
}

// checkBalance finds the employee's balance for the leave type and the
// start year and verifies it can cover the requested days.
func (s *RequestService) checkBalance(ctx context.Context, employeeID, leaveTypeID string, year int, days decimal.Decimal) (leave.LeaveBalance, error) {
	balance, err := s.balances.GetByEmployeeTypeYear(ctx, employeeID, leaveTypeID, year)
	if err != nil {
		return leave.LeaveBalance{}, err
	}
	if balance.Status != leave.BalanceStatusOpen {
		return leave.LeaveBalance{}, leave.ErrBalanceClosed
	}
	if balance.Remaining.LessThan(days) {
		return leave.LeaveBalance{}, fmt.Errorf("%w: %s day(s) remaining, %s requested",
			leave.ErrInsufficientBalance, balance.Remaining, days)
	}
	return balance, nil
}

// resolveLeaveType looks the type up by name and checks the employee
// against its active policy.
func (s *RequestService) resolveLeaveType(ctx context.Context, name string, emp employee.Employee, start calendar.Date) (leave.LeaveType, error) {
	leaveType, err := s.types.GetByName(ctx, name)
	if err != nil {
		return leave.LeaveType{}, err
	}
	if !leaveType.IsActive {
		return leave.LeaveType{}, leave.ErrLeaveTypeInactive
	}

	policy, err := s.policies.GetActiveByLeaveType(ctx, leaveType.ID)
	if err != nil {
		return leave.LeaveType{}, err
	}
	if result := policy.Evaluate(emp.HireDate, emp.EmploymentStatus, start); !result.Eligible {
		return leave.LeaveType{}, fmt.Errorf("%w: %s", leave.ErrNotEligible, result.Reason)
	}
	return leaveType, nil
}

func (s *RequestService) checkOverlap(ctx context.Context, employeeID string, start, end calendar.Date, excludeID *string) error {
	overlapping, err := s.requests.FindOverlapping(ctx, employeeID, start, end, excludeID)
	if err != nil {
		return err
	}
	if len(overlapping) > 0 {
		conflicts := make([]string, 0, len(overlapping))
		for _, req := range overlapping {
			conflicts = append(conflicts, fmt.Sprintf("%s (%s - %s)", req.LeaveType, req.StartDate.Key(), req.EndDate.Key()))
		}
		return fmt.Errorf("%w: %s", leave.ErrOverlappingRequest, strings.Join(conflicts, ", "))
	}
	return nil
}

func (s *RequestService) recordOutcome(ctx context.Context, action, entityID, successMsg string, err error) {
	entry := audit.Outcome(ctx, action, "leave_request", entityID, successMsg, err)
	if recErr := s.audits.Record(ctx, entry); recErr != nil {
		s.logger.ErrorContext(ctx, "failed to record activity log",
			"action", action, "entity_id", entityID, "error", recErr)
	}
}

// CreateRequest files a pending leave request after the full validation
// chain: period, employee, leave type, policy eligibility, holidays,
// balance sufficiency and overlap.
func (s *RequestService) CreateRequest(ctx context.Context, cmd leave.CreateLeaveRequestCommand) (leave.LeaveRequest, error) {
	const action = "leave.request.create"

	created, err := s.createRequest(ctx, cmd)
	if err != nil {
		s.recordOutcome(ctx, action, "", "", err)
		return leave.LeaveRequest{}, err
	}
	return created, nil
}

func (s *RequestService) createRequest(ctx context.Context, cmd leave.CreateLeaveRequestCommand) (leave.LeaveRequest, error) {
	if err := cmd.Validate(); err != nil {
		return leave.LeaveRequest{}, err
	}

	start, err := calendar.ParseDate(cmd.StartDate)
	if err != nil {
		return leave.LeaveRequest{}, err
	}
	end, err := calendar.ParseDate(cmd.EndDate)
	if err != nil {
		return leave.LeaveRequest{}, err
	}
	halfDay := cmd.IsHalfDay != nil && *cmd.IsHalfDay

	if err := s.validatePeriod(start, end, halfDay); err != nil {
		return leave.LeaveRequest{}, err
	}

	var created leave.LeaveRequest
	err = s.tx.InTx(ctx, "leave.request.create", func(ctx context.Context) error {
		emp, err := s.employees.GetByID(ctx, cmd.EmployeeID)
		if err != nil {
			return err
		}
		if !emp.IsActive {
			return employee.ErrEmployeeInactive
		}

		leaveType, err := s.resolveLeaveType(ctx, cmd.LeaveType, emp, start)
		if err != nil {
			return err
		}

		totalDays, err := s.chargeableDays(ctx, start, end, halfDay, cmd.TotalDays)
		if err != nil {
			return err
		}

		balance, err := s.checkBalance(ctx, emp.ID, leaveType.ID, start.Year, totalDays)
		if err != nil {
			return err
		}

		if err := s.checkOverlap(ctx, emp.ID, start, end, nil); err != nil {
			return err
		}

		created, err = s.requests.Create(ctx, leave.LeaveRequest{
			EmployeeID:  emp.ID,
			LeaveTypeID: leaveType.ID,
			LeaveType:   leaveType.Name,
			StartDate:   start,
			EndDate:     end,
			TotalDays:   totalDays,
			Reason:      cmd.Reason,
			BalanceID:   balance.ID,
		})
		if err != nil {
			return err
		}

		return s.audits.Record(ctx, audit.Outcome(ctx,
			"leave.request.create", "leave_request", created.ID,
			"leave request filed for "+created.StartDate.Key()+" to "+created.EndDate.Key(), nil))
	})
	if err != nil {
		return leave.LeaveRequest{}, err
	}
	return created, nil
}

// UpdateRequest mutates a pending request. Dates, leave type, day count
// and reason may change; validation re-runs only for the fields the
// command touches, with the request itself excluded from overlap
// detection. Untouched fields keep their filed values.
func (s *RequestService) UpdateRequest(ctx context.Context, cmd leave.UpdateLeaveRequestCommand) (leave.LeaveRequest, error) {
	const action = "leave.request.update"

	updated, err := s.updateRequest(ctx, cmd)
	if err != nil {
		s.recordOutcome(ctx, action, cmd.ID, "", err)
		return leave.LeaveRequest{}, err
	}
	return updated, nil
}

func (s *RequestService) updateRequest(ctx context.Context, cmd leave.UpdateLeaveRequestCommand) (leave.LeaveRequest, error) {
	if err := cmd.Validate(); err != nil {
		return leave.LeaveRequest{}, err
	}
	if cmd.IsEmpty() {
		return leave.LeaveRequest{}, leave.ErrNothingToUpdate
	}

	var updated leave.LeaveRequest
	err := s.tx.InTx(ctx, "leave.request.update", func(ctx context.Context) error {
		existing, err := s.requests.GetByID(ctx, cmd.ID)
		if err != nil {
			return err
		}
		if existing.Status != leave.RequestStatusPending {
			return leave.ErrRequestNotPending
		}

		emp, err := s.employees.GetByID(ctx, existing.EmployeeID)
		if err != nil {
			return err
		}
		if !emp.IsActive {
			return employee.ErrEmployeeInactive
		}

		datesChanged := cmd.StartDate != nil
		start, end := existing.StartDate, existing.EndDate
		if datesChanged {
			if start, err = calendar.ParseDate(*cmd.StartDate); err != nil {
				return err
			}
			if end, err = calendar.ParseDate(*cmd.EndDate); err != nil {
				return err
			}
		}

		halfDay := existing.TotalDays.Equal(leave.HalfDay)
		if cmd.IsHalfDay != nil {
			halfDay = *cmd.IsHalfDay
		}

		// Untouched dates were validated at filing; re-run the period
		// checks only against what this command changes.
		if datesChanged {
			if err := s.validatePeriod(start, end, halfDay); err != nil {
				return err
			}
		} else if cmd.IsHalfDay != nil && halfDay && !start.Equal(end) {
			return leave.ErrHalfDayDateMismatch
		}

		leaveTypeID := existing.LeaveTypeID
		leaveTypeName := existing.LeaveType
		if cmd.LeaveType != nil {
			leaveType, err := s.resolveLeaveType(ctx, *cmd.LeaveType, emp, start)
			if err != nil {
				return err
			}
			leaveTypeID = leaveType.ID
			leaveTypeName = leaveType.Name
		}

		totalDays := existing.TotalDays
		if datesChanged || cmd.IsHalfDay != nil {
			if totalDays, err = s.chargeableDays(ctx, start, end, halfDay, cmd.TotalDays); err != nil {
				return err
			}
		} else if cmd.TotalDays != nil {
			totalDays = decimal.NewFromFloat(*cmd.TotalDays)
		}

		row := leave.UpdateLeaveRequestRow{
			ID:     existing.ID,
			Reason: cmd.Reason,
		}
		if datesChanged {
			row.StartDate = &start
			row.EndDate = &end
		}
		if cmd.LeaveType != nil {
			row.LeaveTypeID = &leaveTypeID
			row.LeaveType = &leaveTypeName
		}
		if !totalDays.Equal(existing.TotalDays) {
			row.TotalDays = &totalDays
		}

		if row.TotalDays != nil || leaveTypeID != existing.LeaveTypeID {
			balance, err := s.checkBalance(ctx, emp.ID, leaveTypeID, start.Year, totalDays)
			if err != nil {
				return err
			}
			row.BalanceID = &balance.ID
		}

		if datesChanged {
			if err := s.checkOverlap(ctx, emp.ID, start, end, &existing.ID); err != nil {
				return err
			}
		}

		if err := s.requests.Update(ctx, row); err != nil {
			return err
		}

		if updated, err = s.requests.GetByID(ctx, existing.ID); err != nil {
			return err
		}

		return s.audits.Record(ctx, audit.Outcome(ctx,
			"leave.request.update", "leave_request", existing.ID,
			"leave request updated to "+start.Key()+" to "+end.Key(), nil))
	})
	if err != nil {
		return leave.LeaveRequest{}, err
	}
	return updated, nil
}

func (s *RequestService) GetRequest(ctx context.Context, id string) (leave.LeaveRequest, error) {
	return s.requests.GetByID(ctx, id)
}

func (s *RequestService) ListRequests(ctx context.Context, filter leave.LeaveRequestFilter) ([]leave.LeaveRequest, int64, error) {
	return s.requests.List(ctx, filter)
}

// ApproveRequest moves a pending request to approved and consumes the
// balance with a conditional decrement, so a stale sufficiency check can
// never overdraw it.
func (s *RequestService) ApproveRequest(ctx context.Context, req leave.ApproveRequestRequest) (leave.LeaveRequest, error) {
	const action = "leave.request.approve"

	approved, err := s.approveRequest(ctx, req)
	if err != nil {
		s.recordOutcome(ctx, action, req.RequestID, "", err)
		return leave.LeaveRequest{}, err
	}
	return approved, nil
}

func (s *RequestService) approveRequest(ctx context.Context, req leave.ApproveRequestRequest) (leave.LeaveRequest, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveRequest{}, err
	}

	var approved leave.LeaveRequest
	err := s.tx.InTx(ctx, "leave.request.approve", func(ctx context.Context) error {
		existing, err := s.requests.GetByID(ctx, req.RequestID)
		if err != nil {
			return err
		}
		if existing.Status != leave.RequestStatusPending {
			return leave.ErrRequestNotPending
		}

		if err := s.balances.Consume(ctx, existing.BalanceID, existing.TotalDays); err != nil {
			return err
		}

		approver := approverID(ctx)
		if err := s.requests.UpdateStatus(ctx, existing.ID, leave.RequestStatusApproved, approver, req.Remarks); err != nil {
			return err
		}

		if approved, err = s.requests.GetByID(ctx, existing.ID); err != nil {
			return err
		}

		return s.audits.Record(ctx, audit.Outcome(ctx,
			"leave.request.approve", "leave_request", existing.ID,
			"leave request approved, "+existing.TotalDays.String()+" day(s) consumed", nil))
	})
	if err != nil {
		return leave.LeaveRequest{}, err
	}
	return approved, nil
}

// RejectRequest moves a pending request to rejected. The balance is
// untouched because nothing was consumed at filing.
func (s *RequestService) RejectRequest(ctx context.Context, req leave.RejectRequestRequest) (leave.LeaveRequest, error) {
	const action = "leave.request.reject"

	rejected, err := s.rejectRequest(ctx, req)
	if err != nil {
		s.recordOutcome(ctx, action, req.RequestID, "", err)
		return leave.LeaveRequest{}, err
	}
	return rejected, nil
}

func (s *RequestService) rejectRequest(ctx context.Context, req leave.RejectRequestRequest) (leave.LeaveRequest, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveRequest{}, err
	}

	var rejected leave.LeaveRequest
	err := s.tx.InTx(ctx, "leave.request.reject", func(ctx context.Context) error {
		existing, err := s.requests.GetByID(ctx, req.RequestID)
		if err != nil {
			return err
		}
		if existing.Status != leave.RequestStatusPending {
			return leave.ErrRequestNotPending
		}

		approver := approverID(ctx)
		if err := s.requests.UpdateStatus(ctx, existing.ID, leave.RequestStatusRejected, approver, &req.Remarks); err != nil {
			return err
		}

		if rejected, err = s.requests.GetByID(ctx, existing.ID); err != nil {
			return err
		}

		return s.audits.Record(ctx, audit.Outcome(ctx,
			"leave.request.reject", "leave_request", existing.ID,
			"leave request rejected", nil))
	})
	if err != nil {
		return leave.LeaveRequest{}, err
	}
	return rejected, nil
}

// CancelRequest cancels a pending or approved request. Cancelling an
// approved request restores the consumed days.
func (s *RequestService) CancelRequest(ctx context.Context, id string, remarks *string) (leave.LeaveRequest, error) {
	const action = "leave.request.cancel"

	cancelled, err := s.cancelRequest(ctx, id, remarks)
	if err != nil {
		s.recordOutcome(ctx, action, id, "", err)
		return leave.LeaveRequest{}, err
	}
	return cancelled, nil
}

func (s *RequestService) cancelRequest(ctx context.Context, id string, remarks *string) (leave.LeaveRequest, error) {
	var cancelled leave.LeaveRequest
	err := s.tx.InTx(ctx, "leave.request.cancel", func(ctx context.Context) error {
		existing, err := s.requests.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if existing.Status != leave.RequestStatusPending && existing.Status != leave.RequestStatusApproved {
			return leave.ErrRequestNotPending
		}

		if existing.Status == leave.RequestStatusApproved {
			if err := s.balances.Restore(ctx, existing.BalanceID, existing.TotalDays); err != nil {
				return err
			}
		}

		approver := approverID(ctx)
		if err := s.requests.UpdateStatus(ctx, existing.ID, leave.RequestStatusCancelled, approver, remarks); err != nil {
			return err
		}

		if cancelled, err = s.requests.GetByID(ctx, existing.ID); err != nil {
			return err
		}

		return s.audits.Record(ctx, audit.Outcome(ctx,
			"leave.request.cancel", "leave_request", existing.ID,
			"leave request cancelled", nil))
	})
	if err != nil {
		return leave.LeaveRequest{}, err
	}
	return cancelled, nil
}

// approverID pulls the acting user out of the audit context; system
// actions leave approval_by empty.
func approverID(ctx context.Context) *string {
	actor := audit.ActorFromContext(ctx)
	if actor.Kind == audit.ActorKindUser && actor.UserID != "" {
		return &actor.UserID
	}
	return nil
}
