package leave

import (
	"context"
	"log/slog"

	"github.com/shopspring/decimal"

	"github.com/bayanihr/hr201-backend-go/internal/domain/audit"
	"github.com/bayanihr/hr201-backend-go/internal/domain/employee"
	"github.com/bayanihr/hr201-backend-go/internal/domain/leave"
	"github.com/bayanihr/hr201-backend-go/internal/pkg/calendar"
	"github.com/bayanihr/hr201-backend-go/internal/pkg/database"
)

// AdminService manages the reference data the request lifecycle depends
// on: leave types, policies, balances and holidays.
type AdminService struct {
	employees employee.EmployeeRepository
	types     leave.LeaveTypeRepository
	policies  leave.LeavePolicyRepository
	balances  leave.LeaveBalanceRepository
	holidays  leave.HolidayRepository
	audits    audit.Repository
	tx        database.Transactor
	logger    *slog.Logger
}

func NewAdminService(
	employees employee.EmployeeRepository,
	types leave.LeaveTypeRepository,
	policies leave.LeavePolicyRepository,
	balances leave.LeaveBalanceRepository,
	holidays leave.HolidayRepository,
	audits audit.Repository,
	tx database.Transactor,
	logger *slog.Logger,
) *AdminService {
	return &AdminService{
		employees: employees,
		types:     types,
		policies:  policies,
		balances:  balances,
		holidays:  holidays,
		audits:    audits,
		tx:        tx,
		logger:    logger,
	}
}

func (s *AdminService) record(ctx context.Context, action, entityType, entityID, successMsg string, err error) {
	entry := audit.Outcome(ctx, action, entityType, entityID, successMsg, err)
	if recErr := s.audits.Record(ctx, entry); recErr != nil {
		s.logger.ErrorContext(ctx, "failed to record activity log",
			"action", action, "entity_id", entityID, "error", recErr)
	}
}

func (s *AdminService) CreateLeaveType(ctx context.Context, req leave.CreateLeaveTypeRequest) (leave.LeaveType, error) {
	const action = "leave.type.create"

	if err := req.Validate(); err != nil {
		s.record(ctx, action, "leave_type", "", "", err)
		return leave.LeaveType{}, err
	}

	var created leave.LeaveType
	err := s.tx.InTx(ctx, action, func(ctx context.Context) error {
		var err error
		created, err = s.types.Create(ctx, leave.LeaveType{
			Name:        req.Name,
			Code:        req.Code,
			Description: req.Description,
		})
		if err != nil {
			return err
		}
		return s.audits.Record(ctx, audit.Outcome(ctx, action, "leave_type", created.ID,
			"leave type "+created.Name+" created", nil))
	})
	if err != nil {
		s.record(ctx, action, "leave_type", "", "", err)
		return leave.LeaveType{}, err
	}
	return created, nil
}

func (s *AdminService) UpdateLeaveType(ctx context.Context, req leave.UpdateLeaveTypeRequest) error {
	const action = "leave.type.update"

	if err := req.Validate(); err != nil {
		s.record(ctx, action, "leave_type", req.ID, "", err)
		return err
	}

	err := s.tx.InTx(ctx, action, func(ctx context.Context) error {
		if err := s.types.Update(ctx, req); err != nil {
			return err
		}
		return s.audits.Record(ctx, audit.Outcome(ctx, action, "leave_type", req.ID,
			"leave type updated", nil))
	})
	if err != nil {
		s.record(ctx, action, "leave_type", req.ID, "", err)
	}
	return err
}

func (s *AdminService) GetLeaveType(ctx context.Context, id string) (leave.LeaveType, error) {
	return s.types.GetByID(ctx, id)
}

func (s *AdminService) ListLeaveTypes(ctx context.Context, includeInactive bool) ([]leave.LeaveType, error) {
	return s.types.List(ctx, includeInactive)
}

func (s *AdminService) DeleteLeaveType(ctx context.Context, id string) error {
	const action = "leave.type.delete"

	err := s.tx.InTx(ctx, action, func(ctx context.Context) error {
		if err := s.types.SoftDelete(ctx, id); err != nil {
			return err
		}
		return s.audits.Record(ctx, audit.Outcome(ctx, action, "leave_type", id,
			"leave type deactivated", nil))
	})
	if err != nil {
		s.record(ctx, action, "leave_type", id, "", err)
	}
	return err
}

func (s *AdminService) CreateLeavePolicy(ctx context.Context, req leave.CreateLeavePolicyRequest) (leave.LeavePolicy, error) {
	const action = "leave.policy.create"

	if err := req.Validate(); err != nil {
		s.record(ctx, action, "leave_policy", "", "", err)
		return leave.LeavePolicy{}, err
	}

	var created leave.LeavePolicy
	err := s.tx.InTx(ctx, action, func(ctx context.Context) error {
		leaveType, err := s.types.GetByID(ctx, req.LeaveTypeID)
		if err != nil {
			return err
		}
		if !leaveType.IsActive {
			return leave.ErrLeaveTypeInactive
		}

		// A new active policy supersedes the previous one.
		if previous, err := s.policies.GetActiveByLeaveType(ctx, leaveType.ID); err == nil {
			if err := s.policies.SoftDelete(ctx, previous.ID); err != nil {
				return err
			}
		}

		created, err = s.policies.Create(ctx, leave.LeavePolicy{
			LeaveTypeID:     leaveType.ID,
			MinTenureMonths: req.MinTenureMonths,
			AllowedStatuses: req.AllowedStatuses,
			AnnualCredit:    decimal.NewFromFloat(req.AnnualCredit),
		})
		if err != nil {
			return err
		}
		return s.audits.Record(ctx, audit.Outcome(ctx, action, "leave_policy", created.ID,
			"leave policy created for type "+leaveType.Name, nil))
	})
	if err != nil {
		s.record(ctx, action, "leave_policy", "", "", err)
		return leave.LeavePolicy{}, err
	}
	return created, nil
}

func (s *AdminService) UpdateLeavePolicy(ctx context.Context, req leave.UpdateLeavePolicyRequest) error {
	const action = "leave.policy.update"

	err := s.tx.InTx(ctx, action, func(ctx context.Context) error {
		if err := s.policies.Update(ctx, req); err != nil {
			return err
		}
		return s.audits.Record(ctx, audit.Outcome(ctx, action, "leave_policy", req.ID,
			"leave policy updated", nil))
	})
	if err != nil {
		s.record(ctx, action, "leave_policy", req.ID, "", err)
	}
	return err
}

func (s *AdminService) ListLeavePolicies(ctx context.Context, includeInactive bool) ([]leave.LeavePolicy, error) {
	return s.policies.List(ctx, includeInactive)
}

func (s *AdminService) DeleteLeavePolicy(ctx context.Context, id string) error {
	const action = "leave.policy.delete"

	err := s.tx.InTx(ctx, action, func(ctx context.Context) error {
		if err := s.policies.SoftDelete(ctx, id); err != nil {
			return err
		}
		return s.audits.Record(ctx, audit.Outcome(ctx, action, "leave_policy", id,
			"leave policy deactivated", nil))
	})
	if err != nil {
		s.record(ctx, action, "leave_policy", id, "", err)
	}
	return err
}

// CreateBalance opens a yearly allotment for an employee and leave type.
// Remaining defaults to the active policy's annual credit when the
// request leaves it at zero.
func (s *AdminService) CreateBalance(ctx context.Context, req leave.CreateLeaveBalanceRequest) (leave.LeaveBalance, error) {
	const action = "leave.balance.create"

	if err := req.Validate(); err != nil {
		s.record(ctx, action, "leave_balance", "", "", err)
		return leave.LeaveBalance{}, err
	}

	var created leave.LeaveBalance
	err := s.tx.InTx(ctx, action, func(ctx context.Context) error {
		emp, err := s.employees.GetByID(ctx, req.EmployeeID)
		if err != nil {
			return err
		}
		if !emp.IsActive {
			return employee.ErrEmployeeInactive
		}

		leaveType, err := s.types.GetByID(ctx, req.LeaveTypeID)
		if err != nil {
			return err
		}
		if !leaveType.IsActive {
			return leave.ErrLeaveTypeInactive
		}

		remaining := decimal.NewFromFloat(req.Remaining)
		if remaining.IsZero() {
			if policy, err := s.policies.GetActiveByLeaveType(ctx, leaveType.ID); err == nil {
				remaining = policy.AnnualCredit
			}
		}

		created, err = s.balances.Create(ctx, leave.LeaveBalance{
			EmployeeID:  emp.ID,
			LeaveTypeID: leaveType.ID,
			Year:        req.Year,
			Remaining:   remaining,
		})
		if err != nil {
			return err
		}
		return s.audits.Record(ctx, audit.Outcome(ctx, action, "leave_balance", created.ID,
			"leave balance opened with "+created.Remaining.String()+" day(s)", nil))
	})
	if err != nil {
		s.record(ctx, action, "leave_balance", "", "", err)
		return leave.LeaveBalance{}, err
	}
	return created, nil
}

func (s *AdminService) GetBalance(ctx context.Context, id string) (leave.LeaveBalance, error) {
	return s.balances.GetByID(ctx, id)
}

func (s *AdminService) ListBalances(ctx context.Context, employeeID string, year int) ([]leave.LeaveBalance, error) {
	return s.balances.ListByEmployee(ctx, employeeID, year)
}

// CloseBalance ends a balance, typically at year rollover. Closed
// balances reject all consumption and restoration.
func (s *AdminService) CloseBalance(ctx context.Context, id string) error {
	const action = "leave.balance.close"

	err := s.tx.InTx(ctx, action, func(ctx context.Context) error {
		if err := s.balances.Close(ctx, id); err != nil {
			return err
		}
		return s.audits.Record(ctx, audit.Outcome(ctx, action, "leave_balance", id,
			"leave balance closed", nil))
	})
	if err != nil {
		s.record(ctx, action, "leave_balance", id, "", err)
	}
	return err
}

func (s *AdminService) CreateHoliday(ctx context.Context, req leave.CreateHolidayRequest) (leave.Holiday, error) {
	const action = "holiday.create"

	if err := req.Validate(); err != nil {
		s.record(ctx, action, "holiday", "", "", err)
		return leave.Holiday{}, err
	}
	date, err := calendar.ParseDate(req.Date)
	if err != nil {
		s.record(ctx, action, "holiday", "", "", err)
		return leave.Holiday{}, err
	}

	var created leave.Holiday
	err = s.tx.InTx(ctx, action, func(ctx context.Context) error {
		created, err = s.holidays.Create(ctx, leave.Holiday{Name: req.Name, Date: date})
		if err != nil {
			return err
		}
		return s.audits.Record(ctx, audit.Outcome(ctx, action, "holiday", created.ID,
			"holiday "+created.Name+" added on "+created.Date.Key(), nil))
	})
	if err != nil {
		s.record(ctx, action, "holiday", "", "", err)
		return leave.Holiday{}, err
	}
	return created, nil
}

func (s *AdminService) UpdateHoliday(ctx context.Context, req leave.UpdateHolidayRequest) error {
	const action = "holiday.update"

	if err := req.Validate(); err != nil {
		s.record(ctx, action, "holiday", req.ID, "", err)
		return err
	}

	err := s.tx.InTx(ctx, action, func(ctx context.Context) error {
		if err := s.holidays.Update(ctx, req); err != nil {
			return err
		}
		return s.audits.Record(ctx, audit.Outcome(ctx, action, "holiday", req.ID,
			"holiday updated", nil))
	})
	if err != nil {
		s.record(ctx, action, "holiday", req.ID, "", err)
	}
	return err
}

func (s *AdminService) ListHolidays(ctx context.Context, year int) ([]leave.Holiday, error) {
	return s.holidays.ListByYear(ctx, year)
}

func (s *AdminService) DeleteHoliday(ctx context.Context, id string) error {
	const action = "holiday.delete"

	err := s.tx.InTx(ctx, action, func(ctx context.Context) error {
		if err := s.holidays.SoftDelete(ctx, id); err != nil {
			return err
		}
		return s.audits.Record(ctx, audit.Outcome(ctx, action, "holiday", id,
			"holiday removed", nil))
	})
	if err != nil {
		s.record(ctx, action, "holiday", id, "", err)
	}
	return err
}
