package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/bayanihr/hr201-backend-go/internal/domain/employee"
	"github.com/bayanihr/hr201-backend-go/internal/pkg/calendar"
	"github.com/bayanihr/hr201-backend-go/internal/pkg/database"
)

type workExperienceRepositoryImpl struct {
	db *database.DB
}

func NewWorkExperienceRepository(db *database.DB) employee.WorkExperienceRepository {
	return &workExperienceRepositoryImpl{db: db}
}

func scanWorkExperience(row pgx.Row) (employee.WorkExperience, error) {
	var rec employee.WorkExperience
	var from time.Time
	var to *time.Time

	err := row.Scan(&rec.ID, &rec.EmployeeID, &rec.Company, &rec.Position,
		&from, &to, &rec.Salary, &rec.IsActive, &rec.CreatedAt, &rec.UpdatedAt)
	if err != nil {
		return employee.WorkExperience{}, err
	}

	rec.DateFrom = calendar.FromTime(from)
	if to != nil {
		d := calendar.FromTime(*to)
		rec.DateTo = &d
	}
	return rec, nil
}

func (r *workExperienceRepositoryImpl) Create(ctx context.Context, rec employee.WorkExperience) (employee.WorkExperience, error) {
	q := database.GetQuerier(ctx, r.db)

	var dateTo *time.Time
	if rec.DateTo != nil {
		t := rec.DateTo.Time()
		dateTo = &t
	}

	rec.ID = uuid.Must(uuid.NewV7()).String()
	err := q.QueryRow(ctx, `
		INSERT INTO employee_work_experiences (id, employee_id, company, position, date_from, date_to, salary, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, TRUE, NOW(), NOW())
		RETURNING created_at, updated_at
	`, rec.ID, rec.EmployeeID, rec.Company, rec.Position,
		rec.DateFrom.Time(), dateTo, rec.Salary).
		Scan(&rec.CreatedAt, &rec.UpdatedAt)
	if err != nil {
		return employee.WorkExperience{}, fmt.Errorf("failed to insert work experience: %w", err)
	}

	rec.IsActive = true
	return rec, nil
}

func (r *workExperienceRepositoryImpl) GetByID(ctx context.Context, id string) (employee.WorkExperience, error) {
	q := database.GetQuerier(ctx, r.db)

	rec, err := scanWorkExperience(q.QueryRow(ctx, `
		SELECT id, employee_id, company, position, date_from, date_to, salary, is_active, created_at, updated_at
		FROM employee_work_experiences WHERE id = $1
	`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.WorkExperience{}, employee.ErrExperienceNotFound
		}
		return employee.WorkExperience{}, err
	}
	return rec, nil
}

func (r *workExperienceRepositoryImpl) ListByEmployee(ctx context.Context, employeeID string) ([]employee.WorkExperience, error) {
	q := database.GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `
		SELECT id, employee_id, company, position, date_from, date_to, salary, is_active, created_at, updated_at
		FROM employee_work_experiences
		WHERE employee_id = $1 AND is_active = TRUE
		ORDER BY date_from DESC
	`, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to query work experiences: %w", err)
	}
	defer rows.Close()

	var records []employee.WorkExperience
	for rows.Next() {
		rec, err := scanWorkExperience(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

func (r *workExperienceRepositoryImpl) Update(ctx context.Context, req employee.UpdateWorkExperienceRequest) error {
	q := database.GetQuerier(ctx, r.db)

	updates := make([]string, 0)
	args := make([]interface{}, 0)
	argIdx := 1

	appendSet := func(column string, value interface{}) {
		updates = append(updates, fmt.Sprintf("%s = $%d", column, argIdx))
		args = append(args, value)
		argIdx++
	}

	if req.Company != nil {
		appendSet("company", *req.Company)
	}
	if req.Position != nil {
		appendSet("position", *req.Position)
	}
	if req.DateFrom != nil {
		d, err := calendar.ParseDate(*req.DateFrom)
		if err != nil {
			return err
		}
		appendSet("date_from", d.Time())
	}
	if req.DateTo != nil {
		d, err := calendar.ParseDate(*req.DateTo)
		if err != nil {
			return err
		}
		appendSet("date_to", d.Time())
	}
	if req.Salary != nil {
		amount, err := decimal.NewFromString(*req.Salary)
		if err != nil {
			return err
		}
		appendSet("salary", amount)
	}

	if len(updates) == 0 {
		return employee.ErrNothingToUpdate
	}

	updates = append(updates, fmt.Sprintf("updated_at = $%d", argIdx))
	args = append(args, time.Now())
	argIdx++
	args = append(args, req.ID)

	sql := "UPDATE employee_work_experiences SET " + strings.Join(updates, ", ") +
		fmt.Sprintf(" WHERE id = $%d AND is_active = TRUE", argIdx)

	commandTag, err := q.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("failed to update work experience %s: %w", req.ID, err)
	}
	if commandTag.RowsAffected() != 1 {
		return employee.ErrExperienceNotFound
	}
	return nil
}

func (r *workExperienceRepositoryImpl) SoftDelete(ctx context.Context, id string) error {
	q := database.GetQuerier(ctx, r.db)

	commandTag, err := q.Exec(ctx, `
		UPDATE employee_work_experiences SET is_active = FALSE, updated_at = NOW()
		WHERE id = $1 AND is_active = TRUE
	`, id)
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() != 1 {
		return employee.ErrExperienceNotFound
	}
	return nil
}
