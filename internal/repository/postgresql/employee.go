package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/bayanihr/hr201-backend-go/internal/domain/employee"
	"github.com/bayanihr/hr201-backend-go/internal/pkg/calendar"
	"github.com/bayanihr/hr201-backend-go/internal/pkg/database"
)

type employeeRepositoryImpl struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepositoryImpl{db: db}
}

const employeeColumns = `
	id, employee_code, first_name, middle_name, last_name, suffix, gender,
	birth_date, civil_status_id, religion_id, province_id, barangay_id,
	address_line, phone_number, email, job_title_id, hire_date,
	employment_status, is_active, created_at, updated_at
`

func scanEmployee(row pgx.Row) (employee.Employee, error) {
	var e employee.Employee
	var birthDate *time.Time
	var hireDate time.Time

	err := row.Scan(
		&e.ID, &e.EmployeeCode, &e.FirstName, &e.MiddleName, &e.LastName,
		&e.Suffix, &e.Gender, &birthDate, &e.CivilStatusID, &e.ReligionID,
		&e.ProvinceID, &e.BarangayID, &e.AddressLine, &e.PhoneNumber,
		&e.Email, &e.JobTitleID, &hireDate, &e.EmploymentStatus,
		&e.IsActive, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		return employee.Employee{}, err
	}

	e.HireDate = calendar.FromTime(hireDate)
	if birthDate != nil {
		d := calendar.FromTime(*birthDate)
		e.BirthDate = &d
	}
	return e, nil
}

func (r *employeeRepositoryImpl) Create(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	q := database.GetQuerier(ctx, r.db)

	var birthDate *time.Time
	if emp.BirthDate != nil {
		t := emp.BirthDate.Time()
		birthDate = &t
	}

	query := `
		INSERT INTO employees (
			id, employee_code, first_name, middle_name, last_name, suffix, gender,
			birth_date, civil_status_id, religion_id, province_id, barangay_id,
			address_line, phone_number, email, job_title_id, hire_date,
			employment_status, is_active, created_at, updated_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7,
			$8, $9, $10, $11, $12,
			$13, $14, $15, $16, $17,
			$18, TRUE, NOW(), NOW()
		) RETURNING id, created_at, updated_at
	`

	emp.ID = uuid.Must(uuid.NewV7()).String()
	err := q.QueryRow(ctx, query,
		emp.ID, emp.EmployeeCode, emp.FirstName, emp.MiddleName, emp.LastName,
		emp.Suffix, emp.Gender, birthDate, emp.CivilStatusID, emp.ReligionID,
		emp.ProvinceID, emp.BarangayID, emp.AddressLine, emp.PhoneNumber,
		emp.Email, emp.JobTitleID, emp.HireDate.Time(), emp.EmploymentStatus,
	).Scan(&emp.ID, &emp.CreatedAt, &emp.UpdatedAt)
	if err != nil {
		return employee.Employee{}, fmt.Errorf("failed to insert employee: %w", err)
	}

	emp.IsActive = true
	return emp, nil
}

func (r *employeeRepositoryImpl) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	q := database.GetQuerier(ctx, r.db)

	query := `SELECT ` + employeeColumns + ` FROM employees WHERE id = $1`
	emp, err := scanEmployee(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, err
	}
	return emp, nil
}

func (r *employeeRepositoryImpl) GetByCode(ctx context.Context, code string) (employee.Employee, error) {
	q := database.GetQuerier(ctx, r.db)

	query := `SELECT ` + employeeColumns + ` FROM employees WHERE employee_code = $1`
	emp, err := scanEmployee(q.QueryRow(ctx, query, code))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, err
	}
	return emp, nil
}

func (r *employeeRepositoryImpl) List(ctx context.Context, filter employee.ListEmployeesFilter) ([]employee.Employee, int64, error) {
	q := database.GetQuerier(ctx, r.db)

	whereClauses := []string{"1=1"}
	args := []interface{}{}
	argIdx := 1

	if !filter.IncludeInactive {
		whereClauses = append(whereClauses, "is_active = TRUE")
	}
	if filter.Name != nil && *filter.Name != "" {
		whereClauses = append(whereClauses, fmt.Sprintf("(first_name || ' ' || last_name) ILIKE $%d", argIdx))
		args = append(args, "%"+*filter.Name+"%")
		argIdx++
	}
	if filter.EmploymentStatus != nil && *filter.EmploymentStatus != "" {
		whereClauses = append(whereClauses, fmt.Sprintf("employment_status = $%d", argIdx))
		args = append(args, *filter.EmploymentStatus)
		argIdx++
	}

	whereClause := strings.Join(whereClauses, " AND ")

	countQuery := "SELECT COUNT(*) FROM employees WHERE " + whereClause
	var total int64
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count employees: %w", err)
	}

	if filter.Page == 0 {
		filter.Page = 1
	}
	if filter.Limit == 0 {
		filter.Limit = 20
	}
	offset := (filter.Page - 1) * filter.Limit

	query := fmt.Sprintf(`SELECT %s FROM employees WHERE %s ORDER BY last_name, first_name LIMIT $%d OFFSET $%d`,
		employeeColumns, whereClause, argIdx, argIdx+1)
	args = append(args, filter.Limit, offset)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query employees: %w", err)
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		emp, err := scanEmployee(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan employee: %w", err)
		}
		employees = append(employees, emp)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("rows iteration error: %w", err)
	}

	return employees, total, nil
}

func (r *employeeRepositoryImpl) Update(ctx context.Context, req employee.UpdateEmployeeRequest) error {
	q := database.GetQuerier(ctx, r.db)

	updates := make([]string, 0)
	args := make([]interface{}, 0)
	argIdx := 1

	appendSet := func(column string, value interface{}) {
		updates = append(updates, fmt.Sprintf("%s = $%d", column, argIdx))
		args = append(args, value)
		argIdx++
	}

	if req.FirstName != nil {
		appendSet("first_name", *req.FirstName)
	}
	if req.MiddleName != nil {
		appendSet("middle_name", *req.MiddleName)
	}
	if req.LastName != nil {
		appendSet("last_name", *req.LastName)
	}
	if req.Suffix != nil {
		appendSet("suffix", *req.Suffix)
	}
	if req.Gender != nil {
		appendSet("gender", *req.Gender)
	}
	if req.BirthDate != nil {
		d, err := calendar.ParseDate(*req.BirthDate)
		if err != nil {
			return err
		}
		appendSet("birth_date", d.Time())
	}
	if req.CivilStatusID != nil {
		appendSet("civil_status_id", *req.CivilStatusID)
	}
	if req.ReligionID != nil {
		appendSet("religion_id", *req.ReligionID)
	}
	if req.ProvinceID != nil {
		appendSet("province_id", *req.ProvinceID)
	}
	if req.BarangayID != nil {
		appendSet("barangay_id", *req.BarangayID)
	}
	if req.AddressLine != nil {
		appendSet("address_line", *req.AddressLine)
	}
	if req.PhoneNumber != nil {
		appendSet("phone_number", *req.PhoneNumber)
	}
	if req.Email != nil {
		appendSet("email", *req.Email)
	}
	if req.JobTitleID != nil {
		appendSet("job_title_id", *req.JobTitleID)
	}
	if req.EmploymentStatus != nil {
		appendSet("employment_status", *req.EmploymentStatus)
	}

	if len(updates) == 0 {
		return employee.ErrNothingToUpdate
	}

	updates = append(updates, fmt.Sprintf("updated_at = $%d", argIdx))
	args = append(args, time.Now())
	argIdx++
	args = append(args, req.ID)

	sql := "UPDATE employees SET " + strings.Join(updates, ", ") + fmt.Sprintf(" WHERE id = $%d RETURNING id", argIdx)

	var updatedID string
	if err := q.QueryRow(ctx, sql, args...).Scan(&updatedID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.ErrEmployeeNotFound
		}
		return fmt.Errorf("failed to update employee %s: %w", req.ID, err)
	}
	return nil
}

func (r *employeeRepositoryImpl) SoftDelete(ctx context.Context, id string) error {
	q := database.GetQuerier(ctx, r.db)

	commandTag, err := q.Exec(ctx, `
		UPDATE employees SET is_active = FALSE, updated_at = NOW()
		WHERE id = $1 AND is_active = TRUE
	`, id)
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() != 1 {
		return employee.ErrEmployeeNotFound
	}
	return nil
}
