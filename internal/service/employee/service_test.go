package employee

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bayanihr/hr201-backend-go/internal/domain/audit"
	"github.com/bayanihr/hr201-backend-go/internal/domain/employee"
	"github.com/bayanihr/hr201-backend-go/internal/pkg/calendar"
	"github.com/bayanihr/hr201-backend-go/internal/pkg/validator"
)

type noopTx struct{}

func (noopTx) InTx(ctx context.Context, _ string, fn func(context.Context) error) error {
	return fn(ctx)
}

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
	create    func(ctx context.Context, emp employee.Employee) (employee.Employee, error)
	getByID   func(ctx context.Context, id string) (employee.Employee, error)
	getByCode func(ctx context.Context, code string) (employee.Employee, error)
	update    func(ctx context.Context, req employee.UpdateEmployeeRequest) error
}

func (f *fakeEmployeeRepo) Create(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	if f.create == nil {
		emp.ID = "emp-1"
		emp.IsActive = true
		return emp, nil
	}
	return f.create(ctx, emp)
}

func (f *fakeEmployeeRepo) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	if f.getByID == nil {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return f.getByID(ctx, id)
}

func (f *fakeEmployeeRepo) GetByCode(ctx context.Context, code string) (employee.Employee, error) {
	if f.getByCode == nil {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return f.getByCode(ctx, code)
}

func (f *fakeEmployeeRepo) List(context.Context, employee.ListEmployeesFilter) ([]employee.Employee, int64, error) {
	return nil, 0, nil
}

func (f *fakeEmployeeRepo) Update(ctx context.Context, req employee.UpdateEmployeeRequest) error {
	if f.update == nil {
		return nil
	}
	return f.update(ctx, req)
}

func (f *fakeEmployeeRepo) SoftDelete(context.Context, string) error {
	return nil
}

type fakeEducationRepo struct {
	create func(ctx context.Context, rec employee.EducationRecord) (employee.EducationRecord, error)
}

func (f *fakeEducationRepo) Create(ctx context.Context, rec employee.EducationRecord) (employee.EducationRecord, error) {
	if f.create == nil {
		rec.ID = "edu-1"
		return rec, nil
	}
	return f.create(ctx, rec)
}

func (f *fakeEducationRepo) GetByID(context.Context, string) (employee.EducationRecord, error) {
	return employee.EducationRecord{}, employee.ErrEducationNotFound
}

func (f *fakeEducationRepo) ListByEmployee(context.Context, string) ([]employee.EducationRecord, error) {
	return nil, nil
}

func (f *fakeEducationRepo) Update(context.Context, employee.UpdateEducationRequest) error {
	return nil
}

func (f *fakeEducationRepo) SoftDelete(context.Context, string) error {
	return nil
}

type fakeTrainingRepo struct{}

func (fakeTrainingRepo) Create(_ context.Context, rec employee.TrainingCertificate) (employee.TrainingCertificate, error) {
	rec.ID = "trn-1"
	return rec, nil
}

func (fakeTrainingRepo) GetByID(context.Context, string) (employee.TrainingCertificate, error) {
	return employee.TrainingCertificate{}, employee.ErrTrainingNotFound
}

func (fakeTrainingRepo) ListByEmployee(context.Context, string) ([]employee.TrainingCertificate, error) {
	return nil, nil
}

func (fakeTrainingRepo) Update(context.Context, employee.UpdateTrainingRequest) error {
	return nil
}

func (fakeTrainingRepo) SoftDelete(context.Context, string) error {
	return nil
}

type fakeExperienceRepo struct{}

func (fakeExperienceRepo) Create(_ context.Context, rec employee.WorkExperience) (employee.WorkExperience, error) {
	rec.ID = "exp-1"
	return rec, nil
}

func (fakeExperienceRepo) GetByID(context.Context, string) (employee.WorkExperience, error) {
	return employee.WorkExperience{}, employee.ErrExperienceNotFound
}

func (fakeExperienceRepo) ListByEmployee(context.Context, string) ([]employee.WorkExperience, error) {
	return nil, nil
}

func (fakeExperienceRepo) Update(context.Context, employee.UpdateWorkExperienceRequest) error {
	return nil
}

func (fakeExperienceRepo) SoftDelete(context.Context, string) error {
	return nil
}

type fixture struct {
	employees *fakeEmployeeRepo
	audits    *recordingAuditRepo
	svc       *Service
}

func newFixture() *fixture {
	f := &fixture{
		employees: &fakeEmployeeRepo{},
		audits:    &recordingAuditRepo{},
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	f.svc = NewService(f.employees, &fakeEducationRepo{}, fakeTrainingRepo{},
		fakeExperienceRepo{}, f.audits, noopTx{}, logger)
	return f
}

func activeEmployee(id string) employee.Employee {
	return employee.Employee{
		ID:               id,
		EmployeeCode:     "2020-0001",
		FirstName:        "Jose",
		LastName:         "Rizal",
		HireDate:         calendar.MustParse("2020-01-15"),
		EmploymentStatus: employee.EmploymentStatusRegular,
		IsActive:         true,
	}
}

func validCreateRequest() employee.CreateEmployeeRequest {
	return employee.CreateEmployeeRequest{
		EmployeeCode:     "2024-0042",
		FirstName:        "Juan",
		LastName:         "Dela Cruz",
		Gender:           "male",
		HireDate:         "2024-03-01",
		EmploymentStatus: "probationary",
	}
}

func TestCreateEmployee(t *testing.T) {
	f := newFixture()

	created, err := f.svc.CreateEmployee(context.Background(), validCreateRequest())
	require.NoError(t, err)

	assert.Equal(t, "emp-1", created.ID)
	assert.Equal(t, "2024-0042", created.EmployeeCode)
	assert.Equal(t, calendar.MustParse("2024-03-01"), created.HireDate)

	require.Len(t, f.audits.entries, 1)
	assert.True(t, f.audits.entries[0].Success)
	assert.Equal(t, "employee.create", f.audits.entries[0].Action)
}

func TestCreateEmployeeDuplicateCode(t *testing.T) {
	f := newFixture()
	f.employees.getByCode = func(_ context.Context, code string) (employee.Employee, error) {
		return activeEmployee("emp-9"), nil
	}

	_, err := f.svc.CreateEmployee(context.Background(), validCreateRequest())
	assert.ErrorIs(t, err, employee.ErrEmployeeCodeExists)
}

func TestCreateEmployeeInvalidCode(t *testing.T) {
	f := newFixture()

	req := validCreateRequest()
	req.EmployeeCode = "A-42"

	_, err := f.svc.CreateEmployee(context.Background(), req)
	require.Error(t, err)

	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Equal(t, "employee_code", verrs[0].Field)
}

func TestUpdateEmployeeNothingToUpdate(t *testing.T) {
	f := newFixture()

	err := f.svc.UpdateEmployee(context.Background(), employee.UpdateEmployeeRequest{ID: "emp-1"})
	assert.ErrorIs(t, err, employee.ErrNothingToUpdate)
}

func TestUpdateEmployeeInactive(t *testing.T) {
	f := newFixture()
	f.employees.getByID = func(_ context.Context, id string) (employee.Employee, error) {
		emp := activeEmployee(id)
		emp.IsActive = false
		return emp, nil
	}

	name := "Updated"
	err := f.svc.UpdateEmployee(context.Background(), employee.UpdateEmployeeRequest{
		ID: "emp-1", FirstName: &name,
	})
	assert.ErrorIs(t, err, employee.ErrEmployeeInactive)
}

func TestAddEducationRequiresActiveEmployee(t *testing.T) {
	f := newFixture()

	_, err := f.svc.AddEducation(context.Background(), employee.CreateEducationRequest{
		EmployeeID: "missing",
		School:     "University of the Philippines",
		Level:      "college",
	})
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)

	require.Len(t, f.audits.entries, 1)
	assert.False(t, f.audits.entries[0].Success)
}

func TestAddEducation(t *testing.T) {
	f := newFixture()
	f.employees.getByID = func(_ context.Context, id string) (employee.Employee, error) {
		return activeEmployee(id), nil
	}

	created, err := f.svc.AddEducation(context.Background(), employee.CreateEducationRequest{
		EmployeeID: "emp-1",
		School:     "University of the Philippines",
		Level:      "college",
	})
	require.NoError(t, err)
	assert.Equal(t, "edu-1", created.ID)
}

func TestAddTrainingDateOrder(t *testing.T) {
	f := newFixture()
	f.employees.getByID = func(_ context.Context, id string) (employee.Employee, error) {
		return activeEmployee(id), nil
	}

	_, err := f.svc.AddTraining(context.Background(), employee.CreateTrainingRequest{
		EmployeeID: "emp-1",
		Title:      "First Aid",
		DateFrom:   "2024-05-10",
		DateTo:     "2024-05-01",
	})
	require.Error(t, err)

	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Equal(t, "date_to", verrs[0].Field)
}
