package leave

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bayanihr/hr201-backend-go/internal/domain/employee"
	"github.com/bayanihr/hr201-backend-go/internal/domain/leave"
	"github.com/bayanihr/hr201-backend-go/internal/pkg/calendar"
)

type requestFixture struct {
	employees *fakeEmployeeRepo
	types     *fakeLeaveTypeRepo
	policies  *fakeLeavePolicyRepo
	balances  *fakeLeaveBalanceRepo
	requests  *fakeLeaveRequestRepo
	holidays  *fakeHolidayRepo
	audits    *recordingAuditRepo
	svc       *RequestService
}

// newRequestFixture wires a service over fakes with a happy-path
// default: an active regular employee hired in 2020, an active
// "Vacation Leave" type with an eligible policy, an open 10-day
// balance, no holidays and no overlapping requests. Today is pinned
// to 2025-06-01.
func newRequestFixture() *requestFixture {
	f := &requestFixture{
		employees: &fakeEmployeeRepo{},
		types:     &fakeLeaveTypeRepo{},
		policies:  &fakeLeavePolicyRepo{},
		balances:  &fakeLeaveBalanceRepo{},
		requests:  &fakeLeaveRequestRepo{},
		holidays:  &fakeHolidayRepo{},
		audits:    &recordingAuditRepo{},
	}

	f.employees.getByID = func(_ context.Context, id string) (employee.Employee, error) {
		return employee.Employee{
			ID:               id,
			FirstName:        "Maria",
			LastName:         "Santos",
			HireDate:         calendar.MustParse("2020-01-15"),
			EmploymentStatus: employee.EmploymentStatusRegular,
			IsActive:         true,
		}, nil
	}
	f.types.getByName = func(_ context.Context, name string) (leave.LeaveType, error) {
		return leave.LeaveType{ID: "type-1", Name: name, IsActive: true}, nil
	}
	f.policies.getActiveByLeaveType = func(_ context.Context, leaveTypeID string) (leave.LeavePolicy, error) {
		return leave.LeavePolicy{
			ID:              "policy-1",
			LeaveTypeID:     leaveTypeID,
			MinTenureMonths: 6,
			AnnualCredit:    decimal.NewFromInt(15),
			IsActive:        true,
		}, nil
	}
	f.balances.getByEmployeeTypeYear = func(_ context.Context, employeeID, leaveTypeID string, year int) (leave.LeaveBalance, error) {
		return leave.LeaveBalance{
			ID:          "bal-1",
			EmployeeID:  employeeID,
			LeaveTypeID: leaveTypeID,
			Year:        year,
			Remaining:   decimal.NewFromInt(10),
			Status:      leave.BalanceStatusOpen,
		}, nil
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	f.svc = NewRequestService(f.employees, f.types, f.policies, f.balances,
		f.requests, f.holidays, f.audits, noopTx{}, logger)
	f.svc.today = func() calendar.Date { return calendar.MustParse("2025-06-01") }
	return f
}

func validCreateCommand() leave.CreateLeaveRequestCommand {
	return leave.CreateLeaveRequestCommand{
		EmployeeID: "emp-1",
		LeaveType:  "Vacation Leave",
		StartDate:  "2025-06-02",
		EndDate:    "2025-06-06",
	}
}

func TestCreateRequestFullWeek(t *testing.T) {
	f := newRequestFixture()

	created, err := f.svc.CreateRequest(context.Background(), validCreateCommand())
	require.NoError(t, err)

	assert.Equal(t, leave.RequestStatusPending, created.Status)
	assert.True(t, created.TotalDays.Equal(decimal.NewFromInt(5)),
		"Mon-Fri should charge 5 days, got %s", created.TotalDays)
	assert.Equal(t, "bal-1", created.BalanceID)
	assert.Equal(t, "type-1", created.LeaveTypeID)

	require.Len(t, f.audits.entries, 1)
	assert.True(t, f.audits.entries[0].Success)
	assert.Equal(t, "leave.request.create", f.audits.entries[0].Action)
}

func TestCreateRequestHolidayReducesDays(t *testing.T) {
	f := newRequestFixture()
	f.holidays.listByRange = func(_ context.Context, start, end calendar.Date) ([]leave.Holiday, error) {
		return []leave.Holiday{{Name: "Independence Day", Date: calendar.MustParse("2025-06-04")}}, nil
	}

	created, err := f.svc.CreateRequest(context.Background(), validCreateCommand())
	require.NoError(t, err)
	assert.True(t, created.TotalDays.Equal(decimal.NewFromInt(4)),
		"holiday inside the range should not be charged, got %s", created.TotalDays)
}

func TestCreateRequestHalfDay(t *testing.T) {
	f := newRequestFixture()
	halfDay := true

	cmd := validCreateCommand()
	cmd.StartDate, cmd.EndDate = "2025-06-02", "2025-06-02"
	cmd.IsHalfDay = &halfDay

	created, err := f.svc.CreateRequest(context.Background(), cmd)
	require.NoError(t, err)
	assert.True(t, created.TotalDays.Equal(leave.HalfDay))
}

func TestCreateRequestHalfDayDateMismatch(t *testing.T) {
	f := newRequestFixture()
	halfDay := true

	cmd := validCreateCommand()
	cmd.IsHalfDay = &halfDay

	_, err := f.svc.CreateRequest(context.Background(), cmd)
	assert.ErrorIs(t, err, leave.ErrHalfDayDateMismatch)
}

func TestCreateRequestStartBeforeToday(t *testing.T) {
	f := newRequestFixture()

	cmd := validCreateCommand()
	cmd.StartDate = "2025-05-30"

	_, err := f.svc.CreateRequest(context.Background(), cmd)
	require.ErrorIs(t, err, leave.ErrStartBeforeToday)
	assert.EqualError(t, err, "Start date cannot be before today")
}

func TestCreateRequestStartingTodayAllowed(t *testing.T) {
	f := newRequestFixture()

	cmd := validCreateCommand()
	cmd.StartDate, cmd.EndDate = "2025-06-01", "2025-06-01"

	_, err := f.svc.CreateRequest(context.Background(), cmd)
	assert.NoError(t, err)
}

func TestCreateRequestEndBeforeStart(t *testing.T) {
	f := newRequestFixture()

	cmd := validCreateCommand()
	cmd.StartDate, cmd.EndDate = "2025-06-06", "2025-06-02"

	_, err := f.svc.CreateRequest(context.Background(), cmd)
	assert.ErrorIs(t, err, leave.ErrInvalidDateRange)
}

func TestCreateRequestHolidayOnlyPeriod(t *testing.T) {
	f := newRequestFixture()
	f.holidays.listByRange = func(_ context.Context, start, end calendar.Date) ([]leave.Holiday, error) {
		return []leave.Holiday{
			{Name: "Holiday A", Date: calendar.MustParse("2025-06-02")},
			{Name: "Holiday B", Date: calendar.MustParse("2025-06-03")},
		}, nil
	}

	cmd := validCreateCommand()
	cmd.StartDate, cmd.EndDate = "2025-06-02", "2025-06-03"

	_, err := f.svc.CreateRequest(context.Background(), cmd)
	assert.ErrorIs(t, err, leave.ErrHolidayOnlyPeriod)
}

func TestCreateRequestBalanceExactlyCovers(t *testing.T) {
	f := newRequestFixture()
	f.balances.getByEmployeeTypeYear = func(_ context.Context, employeeID, leaveTypeID string, year int) (leave.LeaveBalance, error) {
		return leave.LeaveBalance{
			ID: "bal-1", EmployeeID: employeeID, LeaveTypeID: leaveTypeID, Year: year,
			Remaining: decimal.NewFromInt(5),
			Status:    leave.BalanceStatusOpen,
		}, nil
	}

	_, err := f.svc.CreateRequest(context.Background(), validCreateCommand())
	assert.NoError(t, err, "remaining equal to requested must pass")
}

func TestCreateRequestInsufficientBalance(t *testing.T) {
	f := newRequestFixture()
	f.balances.getByEmployeeTypeYear = func(_ context.Context, employeeID, leaveTypeID string, year int) (leave.LeaveBalance, error) {
		return leave.LeaveBalance{
			ID: "bal-1", EmployeeID: employeeID, LeaveTypeID: leaveTypeID, Year: year,
			Remaining: decimal.RequireFromString("4.99"),
			Status:    leave.BalanceStatusOpen,
		}, nil
	}

	_, err := f.svc.CreateRequest(context.Background(), validCreateCommand())
	assert.ErrorIs(t, err, leave.ErrInsufficientBalance)
	assert.Contains(t, err.Error(), "4.99 day(s) remaining, 5 requested")
}

func TestCreateRequestClosedBalance(t *testing.T) {
	f := newRequestFixture()
	f.balances.getByEmployeeTypeYear = func(_ context.Context, employeeID, leaveTypeID string, year int) (leave.LeaveBalance, error) {
		return leave.LeaveBalance{
			ID: "bal-1", Remaining: decimal.NewFromInt(10),
			Status: leave.BalanceStatusClosed,
		}, nil
	}

	_, err := f.svc.CreateRequest(context.Background(), validCreateCommand())
	assert.ErrorIs(t, err, leave.ErrBalanceClosed)
}

func TestCreateRequestOverlap(t *testing.T) {
	f := newRequestFixture()
	f.requests.findOverlapping = func(_ context.Context, employeeID string, start, end calendar.Date, excludeID *string) ([]leave.LeaveRequest, error) {
		return []leave.LeaveRequest{{
			ID:        "other",
			LeaveType: "Sick Leave",
			StartDate: calendar.MustParse("2025-06-04"),
			EndDate:   calendar.MustParse("2025-06-05"),
		}}, nil
	}

	_, err := f.svc.CreateRequest(context.Background(), validCreateCommand())
	assert.ErrorIs(t, err, leave.ErrOverlappingRequest)
	assert.Contains(t, err.Error(), "Sick Leave (2025-06-04 - 2025-06-05)")
}

func TestCreateRequestNotEligible(t *testing.T) {
	f := newRequestFixture()
	f.employees.getByID = func(_ context.Context, id string) (employee.Employee, error) {
		return employee.Employee{
			ID:               id,
			HireDate:         calendar.MustParse("2025-03-01"),
			EmploymentStatus: employee.EmploymentStatusProbationary,
			IsActive:         true,
		}, nil
	}

	_, err := f.svc.CreateRequest(context.Background(), validCreateCommand())
	assert.ErrorIs(t, err, leave.ErrNotEligible)
}

func TestCreateRequestInactiveEmployee(t *testing.T) {
	f := newRequestFixture()
	f.employees.getByID = func(_ context.Context, id string) (employee.Employee, error) {
		return employee.Employee{ID: id, IsActive: false}, nil
	}

	_, err := f.svc.CreateRequest(context.Background(), validCreateCommand())
	assert.ErrorIs(t, err, employee.ErrEmployeeInactive)
}

func TestCreateRequestInactiveLeaveType(t *testing.T) {
	f := newRequestFixture()
	f.types.getByName = func(_ context.Context, name string) (leave.LeaveType, error) {
		return leave.LeaveType{ID: "type-1", Name: name, IsActive: false}, nil
	}

	_, err := f.svc.CreateRequest(context.Background(), validCreateCommand())
	assert.ErrorIs(t, err, leave.ErrLeaveTypeInactive)
}

func TestCreateRequestFailureAuditedOnce(t *testing.T) {
	f := newRequestFixture()

	cmd := validCreateCommand()
	cmd.StartDate = "2025-05-30"

	_, err := f.svc.CreateRequest(context.Background(), cmd)
	require.Error(t, err)

	require.Len(t, f.audits.entries, 1)
	entry := f.audits.entries[0]
	assert.False(t, entry.Success)
	assert.Equal(t, "Start date cannot be before today", entry.Message)
}

func pendingRequest() leave.LeaveRequest {
	return leave.LeaveRequest{
		ID:          "req-1",
		EmployeeID:  "emp-1",
		LeaveTypeID: "type-1",
		LeaveType:   "Vacation Leave",
		StartDate:   calendar.MustParse("2025-06-02"),
		EndDate:     calendar.MustParse("2025-06-06"),
		TotalDays:   decimal.NewFromInt(5),
		BalanceID:   "bal-1",
		Status:      leave.RequestStatusPending,
		IsActive:    true,
	}
}

func TestUpdateRequestExcludesSelfFromOverlap(t *testing.T) {
	f := newRequestFixture()
	f.requests.getByID = func(_ context.Context, id string) (leave.LeaveRequest, error) {
		return pendingRequest(), nil
	}

	var sawExclude *string
	f.requests.findOverlapping = func(_ context.Context, employeeID string, start, end calendar.Date, excludeID *string) ([]leave.LeaveRequest, error) {
		sawExclude = excludeID
		return nil, nil
	}

	start, end := "2025-06-03", "2025-06-05"
	_, err := f.svc.UpdateRequest(context.Background(), leave.UpdateLeaveRequestCommand{
		ID: "req-1", StartDate: &start, EndDate: &end,
	})
	require.NoError(t, err)
	require.NotNil(t, sawExclude, "update must exclude the request itself")
	assert.Equal(t, "req-1", *sawExclude)
}

func TestUpdateRequestSharesDateValidation(t *testing.T) {
	f := newRequestFixture()
	f.requests.getByID = func(_ context.Context, id string) (leave.LeaveRequest, error) {
		return pendingRequest(), nil
	}

	start, end := "2025-05-30", "2025-06-05"
	_, err := f.svc.UpdateRequest(context.Background(), leave.UpdateLeaveRequestCommand{
		ID: "req-1", StartDate: &start, EndDate: &end,
	})
	require.ErrorIs(t, err, leave.ErrStartBeforeToday)
	assert.EqualError(t, err, "Start date cannot be before today")
}

func TestUpdateRequestReasonOnlyKeepsTotalDays(t *testing.T) {
	f := newRequestFixture()
	f.requests.getByID = func(_ context.Context, id string) (leave.LeaveRequest, error) {
		req := pendingRequest()
		req.TotalDays = decimal.NewFromInt(2)
		return req, nil
	}
	f.holidays.listByRange = func(context.Context, calendar.Date, calendar.Date) ([]leave.Holiday, error) {
		t.Fatal("reason-only update must not recalculate days")
		return nil, nil
	}
	f.balances.getByEmployeeTypeYear = func(context.Context, string, string, int) (leave.LeaveBalance, error) {
		t.Fatal("reason-only update must not re-check the balance")
		return leave.LeaveBalance{}, nil
	}

	var saw leave.UpdateLeaveRequestRow
	f.requests.update = func(_ context.Context, row leave.UpdateLeaveRequestRow) error {
		saw = row
		return nil
	}

	reason := "family matter"
	_, err := f.svc.UpdateRequest(context.Background(), leave.UpdateLeaveRequestCommand{
		ID: "req-1", Reason: &reason,
	})
	require.NoError(t, err)
	assert.Nil(t, saw.TotalDays, "filed day count must survive a reason-only edit")
	assert.Nil(t, saw.StartDate)
	assert.Nil(t, saw.EndDate)
	assert.Nil(t, saw.BalanceID)
	require.NotNil(t, saw.Reason)
	assert.Equal(t, "family matter", *saw.Reason)
}

func TestUpdateRequestReasonOnlyAfterStartDateArrived(t *testing.T) {
	f := newRequestFixture()
	f.requests.getByID = func(_ context.Context, id string) (leave.LeaveRequest, error) {
		req := pendingRequest()
		req.StartDate = calendar.MustParse("2025-05-28")
		req.EndDate = calendar.MustParse("2025-05-30")
		return req, nil
	}

	reason := "updated justification"
	_, err := f.svc.UpdateRequest(context.Background(), leave.UpdateLeaveRequestCommand{
		ID: "req-1", Reason: &reason,
	})
	assert.NoError(t, err, "untouched dates are not re-validated against today")
}

func TestUpdateRequestTotalDaysOnlyReChecksBalance(t *testing.T) {
	f := newRequestFixture()
	f.requests.getByID = func(_ context.Context, id string) (leave.LeaveRequest, error) {
		return pendingRequest(), nil
	}

	var checkedDays decimal.Decimal
	f.balances.getByEmployeeTypeYear = func(_ context.Context, employeeID, leaveTypeID string, year int) (leave.LeaveBalance, error) {
		return leave.LeaveBalance{
			ID: "bal-1", EmployeeID: employeeID, LeaveTypeID: leaveTypeID, Year: year,
			Remaining: decimal.NewFromInt(10),
			Status:    leave.BalanceStatusOpen,
		}, nil
	}
	var saw leave.UpdateLeaveRequestRow
	f.requests.update = func(_ context.Context, row leave.UpdateLeaveRequestRow) error {
		saw = row
		if row.TotalDays != nil {
			checkedDays = *row.TotalDays
		}
		return nil
	}

	days := 3.0
	_, err := f.svc.UpdateRequest(context.Background(), leave.UpdateLeaveRequestCommand{
		ID: "req-1", TotalDays: &days,
	})
	require.NoError(t, err)
	require.NotNil(t, saw.TotalDays)
	assert.True(t, checkedDays.Equal(decimal.NewFromInt(3)))
	require.NotNil(t, saw.BalanceID)
	assert.Equal(t, "bal-1", *saw.BalanceID)
	assert.Nil(t, saw.StartDate)
}

func TestUpdateRequestNoFields(t *testing.T) {
	f := newRequestFixture()
	f.requests.getByID = func(_ context.Context, id string) (leave.LeaveRequest, error) {
		t.Fatal("an empty update must be rejected before any read")
		return leave.LeaveRequest{}, nil
	}

	_, err := f.svc.UpdateRequest(context.Background(), leave.UpdateLeaveRequestCommand{ID: "req-1"})
	assert.ErrorIs(t, err, leave.ErrNothingToUpdate)
}

func TestUpdateRequestNotPending(t *testing.T) {
	f := newRequestFixture()
	f.requests.getByID = func(_ context.Context, id string) (leave.LeaveRequest, error) {
		req := pendingRequest()
		req.Status = leave.RequestStatusApproved
		return req, nil
	}

	reason := "changed my mind"
	_, err := f.svc.UpdateRequest(context.Background(), leave.UpdateLeaveRequestCommand{
		ID: "req-1", Reason: &reason,
	})
	assert.ErrorIs(t, err, leave.ErrRequestNotPending)
}

func TestApproveRequestConsumesBalance(t *testing.T) {
	f := newRequestFixture()
	f.requests.getByID = func(_ context.Context, id string) (leave.LeaveRequest, error) {
		return pendingRequest(), nil
	}

	var consumedID string
	var consumedDays decimal.Decimal
	f.balances.consume = func(_ context.Context, balanceID string, days decimal.Decimal) error {
		consumedID = balanceID
		consumedDays = days
		return nil
	}

	_, err := f.svc.ApproveRequest(context.Background(), leave.ApproveRequestRequest{RequestID: "req-1"})
	require.NoError(t, err)
	assert.Equal(t, "bal-1", consumedID)
	assert.True(t, consumedDays.Equal(decimal.NewFromInt(5)))
}

func TestApproveRequestInsufficientAtApproval(t *testing.T) {
	f := newRequestFixture()
	f.requests.getByID = func(_ context.Context, id string) (leave.LeaveRequest, error) {
		return pendingRequest(), nil
	}
	f.balances.consume = func(_ context.Context, _ string, _ decimal.Decimal) error {
		return leave.ErrInsufficientBalance
	}

	_, err := f.svc.ApproveRequest(context.Background(), leave.ApproveRequestRequest{RequestID: "req-1"})
	assert.ErrorIs(t, err, leave.ErrInsufficientBalance)
}

func TestRejectRequestLeavesBalanceAlone(t *testing.T) {
	f := newRequestFixture()
	f.requests.getByID = func(_ context.Context, id string) (leave.LeaveRequest, error) {
		return pendingRequest(), nil
	}
	f.balances.consume = func(_ context.Context, _ string, _ decimal.Decimal) error {
		t.Fatal("reject must not consume the balance")
		return nil
	}
	f.balances.restore = func(_ context.Context, _ string, _ decimal.Decimal) error {
		t.Fatal("reject must not restore the balance")
		return nil
	}

	_, err := f.svc.RejectRequest(context.Background(), leave.RejectRequestRequest{
		RequestID: "req-1", Remarks: "coverage conflict",
	})
	assert.NoError(t, err)
}

func TestRejectRequestRequiresRemarks(t *testing.T) {
	f := newRequestFixture()

	_, err := f.svc.RejectRequest(context.Background(), leave.RejectRequestRequest{RequestID: "req-1"})
	assert.Error(t, err)
}

func TestCancelApprovedRequestRestoresBalance(t *testing.T) {
	f := newRequestFixture()
	f.requests.getByID = func(_ context.Context, id string) (leave.LeaveRequest, error) {
		req := pendingRequest()
		req.Status = leave.RequestStatusApproved
		return req, nil
	}

	var restoredID string
	var restoredDays decimal.Decimal
	f.balances.restore = func(_ context.Context, balanceID string, days decimal.Decimal) error {
		restoredID = balanceID
		restoredDays = days
		return nil
	}

	_, err := f.svc.CancelRequest(context.Background(), "req-1", nil)
	require.NoError(t, err)
	assert.Equal(t, "bal-1", restoredID)
	assert.True(t, restoredDays.Equal(decimal.NewFromInt(5)))
}

func TestCancelPendingRequestSkipsRestore(t *testing.T) {
	f := newRequestFixture()
	f.requests.getByID = func(_ context.Context, id string) (leave.LeaveRequest, error) {
		return pendingRequest(), nil
	}
	f.balances.restore = func(_ context.Context, _ string, _ decimal.Decimal) error {
		t.Fatal("cancelling a pending request must not restore anything")
		return nil
	}

	_, err := f.svc.CancelRequest(context.Background(), "req-1", nil)
	assert.NoError(t, err)
}

func TestCancelRejectedRequestFails(t *testing.T) {
	f := newRequestFixture()
	f.requests.getByID = func(_ context.Context, id string) (leave.LeaveRequest, error) {
		req := pendingRequest()
		req.Status = leave.RequestStatusRejected
		return req, nil
	}

	_, err := f.svc.CancelRequest(context.Background(), "req-1", nil)
	assert.ErrorIs(t, err, leave.ErrRequestNotPending)
}
