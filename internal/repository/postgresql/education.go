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
	"github.com/bayanihr/hr201-backend-go/internal/pkg/database"
)

type educationRepositoryImpl struct {
	db *database.DB
}

func NewEducationRepository(db *database.DB) employee.EducationRepository {
	return &educationRepositoryImpl{db: db}
}

func (r *educationRepositoryImpl) Create(ctx context.Context, rec employee.EducationRecord) (employee.EducationRecord, error) {
	q := database.GetQuerier(ctx, r.db)

	rec.ID = uuid.Must(uuid.NewV7()).String()
	err := q.QueryRow(ctx, `
		INSERT INTO employee_educations (id, employee_id, school, level, course, year_graduated, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, TRUE, NOW(), NOW())
		RETURNING created_at, updated_at
	`, rec.ID, rec.EmployeeID, rec.School, rec.Level, rec.Course, rec.YearGraduated).
		Scan(&rec.CreatedAt, &rec.UpdatedAt)
	if err != nil {
		return employee.EducationRecord{}, fmt.Errorf("failed to insert education record: %w", err)
	}

	rec.IsActive = true
	return rec, nil
}

func (r *educationRepositoryImpl) GetByID(ctx context.Context, id string) (employee.EducationRecord, error) {
	q := database.GetQuerier(ctx, r.db)

	var rec employee.EducationRecord
	err := q.QueryRow(ctx, `
		SELECT id, employee_id, school, level, course, year_graduated, is_active, created_at, updated_at
		FROM employee_educations WHERE id = $1
	`, id).Scan(&rec.ID, &rec.EmployeeID, &rec.School, &rec.Level, &rec.Course,
		&rec.YearGraduated, &rec.IsActive, &rec.CreatedAt, &rec.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.EducationRecord{}, employee.ErrEducationNotFound
		}
		return employee.EducationRecord{}, err
	}
	return rec, nil
}

func (r *educationRepositoryImpl) ListByEmployee(ctx context.Context, employeeID string) ([]employee.EducationRecord, error) {
	q := database.GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `
		SELECT id, employee_id, school, level, course, year_graduated, is_active, created_at, updated_at
		FROM employee_educations
		WHERE employee_id = $1 AND is_active = TRUE
		ORDER BY year_graduated DESC NULLS LAST, created_at
	`, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to query education records: %w", err)
	}
	defer rows.Close()

	var records []employee.EducationRecord
	for rows.Next() {
		var rec employee.EducationRecord
		if err := rows.Scan(&rec.ID, &rec.EmployeeID, &rec.School, &rec.Level, &rec.Course,
			&rec.YearGraduated, &rec.IsActive, &rec.CreatedAt, &rec.UpdatedAt); err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

func (r *educationRepositoryImpl) Update(ctx context.Context, req employee.UpdateEducationRequest) error {
	q := database.GetQuerier(ctx, r.db)

	updates := make([]string, 0)
	args := make([]interface{}, 0)
	argIdx := 1

	appendSet := func(column string, value interface{}) {
		updates = append(updates, fmt.Sprintf("%s = $%d", column, argIdx))
		args = append(args, value)
		argIdx++
	}

	if req.School != nil {
		appendSet("school", *req.School)
	}
	if req.Level != nil {
		appendSet("level", *req.Level)
	}
	if req.Course != nil {
		appendSet("course", *req.Course)
	}
	if req.YearGraduated != nil {
		appendSet("year_graduated", *req.YearGraduated)
	}

	if len(updates) == 0 {
		return employee.ErrNothingToUpdate
	}

	updates = append(updates, fmt.Sprintf("updated_at = $%d", argIdx))
	args = append(args, time.Now())
	argIdx++
	args = append(args, req.ID)

	sql := "UPDATE employee_educations SET " + strings.Join(updates, ", ") +
		fmt.Sprintf(" WHERE id = $%d AND is_active = TRUE", argIdx)

	commandTag, err := q.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("failed to update education record %s: %w", req.ID, err)
	}
	if commandTag.RowsAffected() != 1 {
		return employee.ErrEducationNotFound
	}
	return nil
}

func (r *educationRepositoryImpl) SoftDelete(ctx context.Context, id string) error {
	q := database.GetQuerier(ctx, r.db)

	commandTag, err := q.Exec(ctx, `
		UPDATE employee_educations SET is_active = FALSE, updated_at = NOW()
		WHERE id = $1 AND is_active = TRUE
	`, id)
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() != 1 {
		return employee.ErrEducationNotFound
	}
	return nil
}
