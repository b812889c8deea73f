package leave

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/bayanihr/hr201-backend-go/internal/domain/audit"
	"github.com/bayanihr/hr201-backend-go/internal/domain/employee"
	"github.com/bayanihr/hr201-backend-go/internal/domain/leave"
	"github.com/bayanihr/hr201-backend-go/internal/pkg/calendar"
)

// noopTx runs the unit of work without a database.
type noopTx struct{}

func (noopTx) InTx(ctx context.Context, _ string, fn func(context.Context) error) error {
	return fn(ctx)
}

// recordingAuditRepo captures every activity-log entry.
type recordingAuditRepo struct {
	entries []audit.Entry
}

func (r *recordingAuditRepo) Record(_ context.Context, entry audit.Entry) error {
	r.entries = append(r.entries, entry)
	return nil
}

func (r *recordingAuditRepo) List(context.Context, audit.Filter, int, int) ([]audit.Entry, int64, error) {
	return r.entries, int64(len(r.entries)), nil
}

type fakeEmployeeRepo struct {
	getByID func(ctx context.Context, id string) (employee.Employee, error)
}

func (f *fakeEmployeeRepo) Create(context.Context, employee.Employee) (employee.Employee, error) {
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (f *fakeEmployeeRepo) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	if f.getByID == nil {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return f.getByID(ctx, id)
}

func (f *fakeEmployeeRepo) GetByCode(context.Context, string) (employee.Employee, error) {
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (f *fakeEmployeeRepo) List(context.Context, employee.ListEmployeesFilter) ([]employee.Employee, int64, error) {
	return nil, 0, nil
}

func (f *fakeEmployeeRepo) Update(context.Context, employee.UpdateEmployeeRequest) error {
	return employee.ErrEmployeeNotFound
}

func (f *fakeEmployeeRepo) SoftDelete(context.Context, string) error {
	return employee.ErrEmployeeNotFound
}

type fakeLeaveTypeRepo struct {
	getByName func(ctx context.Context, name string) (leave.LeaveType, error)
	getByID   func(ctx context.Context, id string) (leave.LeaveType, error)
}

func (f *fakeLeaveTypeRepo) Create(context.Context, leave.LeaveType) (leave.LeaveType, error) {
	return leave.LeaveType{}, leave.ErrLeaveTypeNotFound
}

func (f *fakeLeaveTypeRepo) GetByID(ctx context.Context, id string) (leave.LeaveType, error) {
	if f.getByID == nil {
		return leave.LeaveType{}, leave.ErrLeaveTypeNotFound
	}
	return f.getByID(ctx, id)
}

func (f *fakeLeaveTypeRepo) GetByName(ctx context.Context, name string) (leave.LeaveType, error) {
	if f.getByName == nil {
		return leave.LeaveType{}, leave.ErrLeaveTypeNotFound
	}
	return f.getByName(ctx, name)
}

func (f *fakeLeaveTypeRepo) List(context.Context, bool) ([]leave.LeaveType, error) {
	return nil, nil
}

func (f *fakeLeaveTypeRepo) Update(context.Context, leave.UpdateLeaveTypeRequest) error {
	return leave.ErrLeaveTypeNotFound
}

func (f *fakeLeaveTypeRepo) SoftDelete(context.Context, string) error {
	return leave.ErrLeaveTypeNotFound
}

type fakeLeavePolicyRepo struct {
	getActiveByLeaveType func(ctx context.Context, leaveTypeID string) (leave.LeavePolicy, error)
}

func (f *fakeLeavePolicyRepo) Create(context.Context, leave.LeavePolicy) (leave.LeavePolicy, error) {
	return leave.LeavePolicy{}, leave.ErrPolicyNotFound
}

func (f *fakeLeavePolicyRepo) GetByID(context.Context, string) (leave.LeavePolicy, error) {
	return leave.LeavePolicy{}, leave.ErrPolicyNotFound
}

func (f *fakeLeavePolicyRepo) GetActiveByLeaveType(ctx context.Context, leaveTypeID string) (leave.LeavePolicy, error) {
	if f.getActiveByLeaveType == nil {
		return leave.LeavePolicy{}, leave.ErrPolicyNotFound
	}
	return f.getActiveByLeaveType(ctx, leaveTypeID)
}

func (f *fakeLeavePolicyRepo) List(context.Context, bool) ([]leave.LeavePolicy, error) {
	return nil, nil
}

func (f *fakeLeavePolicyRepo) Update(context.Context, leave.UpdateLeavePolicyRequest) error {
	return leave.ErrPolicyNotFound
}

func (f *fakeLeavePolicyRepo) SoftDelete(context.Context, string) error {
	return leave.ErrPolicyNotFound
}

type fakeLeaveBalanceRepo struct {
	getByEmployeeTypeYear func(ctx context.Context, employeeID, leaveTypeID string, year int) (leave.LeaveBalance, error)
	consume               func(ctx context.Context, balanceID string, days decimal.Decimal) error
	restore               func(ctx context.Context, balanceID string, days decimal.Decimal) error
}

func (f *fakeLeaveBalanceRepo) Create(context.Context, leave.LeaveBalance) (leave.LeaveBalance, error) {
	return leave.LeaveBalance{}, leave.ErrBalanceNotFound
}

func (f *fakeLeaveBalanceRepo) GetByID(context.Context, string) (leave.LeaveBalance, error) {
	return leave.LeaveBalance{}, leave.ErrBalanceNotFound
}

func (f *fakeLeaveBalanceRepo) GetByEmployeeTypeYear(ctx context.Context, employeeID, leaveTypeID string, year int) (leave.LeaveBalance, error) {
	if f.getByEmployeeTypeYear == nil {
		return leave.LeaveBalance{}, leave.ErrBalanceNotFound
	}
	return f.getByEmployeeTypeYear(ctx, employeeID, leaveTypeID, year)
}

func (f *fakeLeaveBalanceRepo) ListByEmployee(context.Context, string, int) ([]leave.LeaveBalance, error) {
	return nil, nil
}

func (f *fakeLeaveBalanceRepo) Consume(ctx context.Context, balanceID string, days decimal.Decimal) error {
	if f.consume == nil {
		return leave.ErrBalanceNotFound
	}
	return f.consume(ctx, balanceID, days)
}

func (f *fakeLeaveBalanceRepo) Restore(ctx context.Context, balanceID string, days decimal.Decimal) error {
	if f.restore == nil {
		return leave.ErrBalanceNotFound
	}
	return f.restore(ctx, balanceID, days)
}

func (f *fakeLeaveBalanceRepo) Close(context.Context, string) error {
	return leave.ErrBalanceNotFound
}

type fakeLeaveRequestRepo struct {
	create          func(ctx context.Context, request leave.LeaveRequest) (leave.LeaveRequest, error)
	getByID         func(ctx context.Context, id string) (leave.LeaveRequest, error)
	findOverlapping func(ctx context.Context, employeeID string, start, end calendar.Date, excludeID *string) ([]leave.LeaveRequest, error)
	update          func(ctx context.Context, req leave.UpdateLeaveRequestRow) error
	updateStatus    func(ctx context.Context, id string, status leave.RequestStatus, approvalBy *string, remarks *string) error
}

func (f *fakeLeaveRequestRepo) Create(ctx context.Context, request leave.LeaveRequest) (leave.LeaveRequest, error) {
	if f.create == nil {
		request.ID = "req-1"
		request.Status = leave.RequestStatusPending
		return request, nil
	}
	return f.create(ctx, request)
}

func (f *fakeLeaveRequestRepo) GetByID(ctx context.Context, id string) (leave.LeaveRequest, error) {
	if f.getByID == nil {
		return leave.LeaveRequest{}, leave.ErrLeaveRequestNotFound
	}
	return f.getByID(ctx, id)
}

func (f *fakeLeaveRequestRepo) List(context.Context, leave.LeaveRequestFilter) ([]leave.LeaveRequest, int64, error) {
	return nil, 0, nil
}

func (f *fakeLeaveRequestRepo) FindOverlapping(ctx context.Context, employeeID string, start, end calendar.Date, excludeID *string) ([]leave.LeaveRequest, error) {
	if f.findOverlapping == nil {
		return nil, nil
	}
	return f.findOverlapping(ctx, employeeID, start, end, excludeID)
}

func (f *fakeLeaveRequestRepo) Update(ctx context.Context, req leave.UpdateLeaveRequestRow) error {
	if f.update == nil {
		return nil
	}
	return f.update(ctx, req)
}

func (f *fakeLeaveRequestRepo) UpdateStatus(ctx context.Context, id string, status leave.RequestStatus, approvalBy *string, remarks *string) error {
	if f.updateStatus == nil {
		return nil
	}
	return f.updateStatus(ctx, id, status, approvalBy, remarks)
}

func (f *fakeLeaveRequestRepo) SoftDelete(context.Context, string) error {
	return leave.ErrLeaveRequestNotFound
}

type fakeHolidayRepo struct {
	listByRange func(ctx context.Context, start, end calendar.Date) ([]leave.Holiday, error)
}

func (f *fakeHolidayRepo) Create(context.Context, leave.Holiday) (leave.Holiday, error) {
	return leave.Holiday{}, leave.ErrHolidayNotFound
}

func (f *fakeHolidayRepo) GetByID(context.Context, string) (leave.Holiday, error) {
	return leave.Holiday{}, leave.ErrHolidayNotFound
}

func (f *fakeHolidayRepo) ListByRange(ctx context.Context, start, end calendar.Date) ([]leave.Holiday, error) {
	if f.listByRange == nil {
		return nil, nil
	}
	return f.listByRange(ctx, start, end)
}

func (f *fakeHolidayRepo) ListByYear(context.Context, int) ([]leave.Holiday, error) {
	return nil, nil
}

func (f *fakeHolidayRepo) Update(context.Context, leave.UpdateHolidayRequest) error {
	return leave.ErrHolidayNotFound
}

func (f *fakeHolidayRepo) SoftDelete(context.Context, string) error {
	return leave.ErrHolidayNotFound
}
