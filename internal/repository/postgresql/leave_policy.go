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

	"github.com/bayanihr/hr201-backend-go/internal/domain/leave"
	"github.com/bayanihr/hr201-backend-go/internal/pkg/database"
)

type leavePolicyRepositoryImpl struct {
	db *database.DB
}

func NewLeavePolicyRepository(db *database.DB) leave.LeavePolicyRepository {
	return &leavePolicyRepositoryImpl{db: db}
}

func scanLeavePolicy(row pgx.Row) (leave.LeavePolicy, error) {
	var p leave.LeavePolicy
	err := row.Scan(&p.ID, &p.LeaveTypeID, &p.MinTenureMonths, &p.AllowedStatuses,
		&p.AnnualCredit, &p.IsActive, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return leave.LeavePolicy{}, err
	}
	return p, nil
}

func (r *leavePolicyRepositoryImpl) Create(ctx context.Context, policy leave.LeavePolicy) (leave.LeavePolicy, error) {
	q := database.GetQuerier(ctx, r.db)

	policy.ID = uuid.Must(uuid.NewV7()).String()
	err := q.QueryRow(ctx, `
		INSERT INTO leave_policies (id, leave_type_id, min_tenure_months, allowed_statuses, annual_credit, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, TRUE, NOW(), NOW())
		RETURNING created_at, updated_at
	`, policy.ID, policy.LeaveTypeID, policy.MinTenureMonths,
		policy.AllowedStatuses, policy.AnnualCredit).
		Scan(&policy.CreatedAt, &policy.UpdatedAt)
	if err != nil {
		return leave.LeavePolicy{}, fmt.Errorf("failed to insert leave policy: %w", err)
	}

	policy.IsActive = true
	return policy, nil
}

func (r *leavePolicyRepositoryImpl) GetByID(ctx context.Context, id string) (leave.LeavePolicy, error) {
	q := database.GetQuerier(ctx, r.db)

	policy, err := scanLeavePolicy(q.QueryRow(ctx, `
		SELECT id, leave_type_id, min_tenure_months, allowed_statuses, annual_credit, is_active, created_at, updated_at
		FROM leave_policies WHERE id = $1
	`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return leave.LeavePolicy{}, leave.ErrPolicyNotFound
		}
		return leave.LeavePolicy{}, err
	}
	return policy, nil
}

func (r *leavePolicyRepositoryImpl) GetActiveByLeaveType(ctx context.Context, leaveTypeID string) (leave.LeavePolicy, error) {
	q := database.GetQuerier(ctx, r.db)

	policy, err := scanLeavePolicy(q.QueryRow(ctx, `
		SELECT id, leave_type_id, min_tenure_months, allowed_statuses, annual_credit, is_active, created_at, updated_at
		FROM leave_policies
		WHERE leave_type_id = $1 AND is_active = TRUE
		ORDER BY created_at DESC
		LIMIT 1
	`, leaveTypeID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return leave.LeavePolicy{}, leave.ErrPolicyNotFound
		}
		return leave.LeavePolicy{}, err
	}
	return policy, nil
}

func (r *leavePolicyRepositoryImpl) List(ctx context.Context, includeInactive bool) ([]leave.LeavePolicy, error) {
	q := database.GetQuerier(ctx, r.db)

	query := `
		SELECT id, leave_type_id, min_tenure_months, allowed_statuses, annual_credit, is_active, created_at, updated_at
		FROM leave_policies`
	if !includeInactive {
		query += ` WHERE is_active = TRUE`
	}
	query += ` ORDER BY created_at`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query leave policies: %w", err)
	}
	defer rows.Close()

	var policies []leave.LeavePolicy
	for rows.Next() {
		policy, err := scanLeavePolicy(rows)
		if err != nil {
			return nil, err
		}
		policies = append(policies, policy)
	}
	return policies, rows.Err()
}

func (r *leavePolicyRepositoryImpl) Update(ctx context.Context, req leave.UpdateLeavePolicyRequest) error {
	q := database.GetQuerier(ctx, r.db)

	updates := make([]string, 0)
	args := make([]interface{}, 0)
	argIdx := 1

	if req.MinTenureMonths != nil {
		updates = append(updates, fmt.Sprintf("min_tenure_months = $%d", argIdx))
		args = append(args, *req.MinTenureMonths)
		argIdx++
	}
	if req.AllowedStatuses != nil {
		updates = append(updates, fmt.Sprintf("allowed_statuses = $%d", argIdx))
		args = append(args, req.AllowedStatuses)
		argIdx++
	}
	if req.AnnualCredit != nil {
		updates = append(updates, fmt.Sprintf("annual_credit = $%d", argIdx))
		args = append(args, decimal.NewFromFloat(*req.AnnualCredit))
		argIdx++
	}
	if len(updates) == 0 {
		return leave.ErrNothingToUpdate
	}

	updates = append(updates, fmt.Sprintf("updated_at = $%d", argIdx))
	args = append(args, time.Now())
	argIdx++
	args = append(args, req.ID)

	sql := "UPDATE leave_policies SET " + strings.Join(updates, ", ") +
		fmt.Sprintf(" WHERE id = $%d AND is_active = TRUE", argIdx)

	commandTag, err := q.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("failed to update leave policy %s: %w", req.ID, err)
	}
	if commandTag.RowsAffected() != 1 {
		return leave.ErrPolicyNotFound
	}
	return nil
}

func (r *leavePolicyRepositoryImpl) SoftDelete(ctx context.Context, id string) error {
	q := database.GetQuerier(ctx, r.db)

	commandTag, err := q.Exec(ctx, `
		UPDATE leave_policies SET is_active = FALSE, updated_at = NOW()
		WHERE id = $1 AND is_active = TRUE
	`, id)
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() != 1 {
		return leave.ErrPolicyNotFound
	}
	return nil
}
