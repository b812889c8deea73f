package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/bayanihr/hr201-backend-go/internal/domain/leave"
	"github.com/bayanihr/hr201-backend-go/internal/pkg/database"
)

type leaveBalanceRepositoryImpl struct {
	db *database.DB
}

func NewLeaveBalanceRepository(db *database.DB) leave.LeaveBalanceRepository {
	return &leaveBalanceRepositoryImpl{db: db}
}

func scanLeaveBalance(row pgx.Row) (leave.LeaveBalance, error) {
	var b leave.LeaveBalance
	err := row.Scan(&b.ID, &b.EmployeeID, &b.LeaveTypeID, &b.Year,
		&b.Remaining, &b.Status, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		return leave.LeaveBalance{}, err
	}
	return b, nil
}

func (r *leaveBalanceRepositoryImpl) Create(ctx context.Context, balance leave.LeaveBalance) (leave.LeaveBalance, error) {
	q := database.GetQuerier(ctx, r.db)

	balance.ID = uuid.Must(uuid.NewV7()).String()
	balance.Status = leave.BalanceStatusOpen
	err := q.QueryRow(ctx, `
		INSERT INTO leave_balances (id, employee_id, leave_type_id, year, remaining, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())
		RETURNING created_at, updated_at
	`, balance.ID, balance.EmployeeID, balance.LeaveTypeID, balance.Year,
		balance.Remaining, balance.Status).
		Scan(&balance.CreatedAt, &balance.UpdatedAt)
	if err != nil {
		return leave.LeaveBalance{}, fmt.Errorf("failed to insert leave balance: %w", err)
	}
	return balance, nil
}

func (r *leaveBalanceRepositoryImpl) GetByID(ctx context.Context, id string) (leave.LeaveBalance, error) {
	q := database.GetQuerier(ctx, r.db)

	balance, err := scanLeaveBalance(q.QueryRow(ctx, `
		SELECT id, employee_id, leave_type_id, year, remaining, status, created_at, updated_at
		FROM leave_balances WHERE id = $1
	`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return leave.LeaveBalance{}, leave.ErrBalanceNotFound
		}
		return leave.LeaveBalance{}, err
	}
	return balance, nil
}

func (r *leaveBalanceRepositoryImpl) GetByEmployeeTypeYear(ctx context.Context, employeeID, leaveTypeID string, year int) (leave.LeaveBalance, error) {
	q := database.GetQuerier(ctx, r.db)

	balance, err := scanLeaveBalance(q.QueryRow(ctx, `
		SELECT id, employee_id, leave_type_id, year, remaining, status, created_at, updated_at
		FROM leave_balances
		WHERE employee_id = $1 AND leave_type_id = $2 AND year = $3
	`, employeeID, leaveTypeID, year))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return leave.LeaveBalance{}, leave.ErrBalanceNotFound
		}
		return leave.LeaveBalance{}, err
	}
	return balance, nil
}

func (r *leaveBalanceRepositoryImpl) ListByEmployee(ctx context.Context, employeeID string, year int) ([]leave.LeaveBalance, error) {
	q := database.GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `
		SELECT id, employee_id, leave_type_id, year, remaining, status, created_at, updated_at
		FROM leave_balances
		WHERE employee_id = $1 AND year = $2
		ORDER BY leave_type_id
	`, employeeID, year)
	if err != nil {
		return nil, fmt.Errorf("failed to query leave balances: %w", err)
	}
	defer rows.Close()

	var balances []leave.LeaveBalance
	for rows.Next() {
		balance, err := scanLeaveBalance(rows)
		if err != nil {
			return nil, err
		}
		balances = append(balances, balance)
	}
	return balances, rows.Err()
}

// Consume is a single conditional UPDATE so concurrent requests cannot
// both pass a read-then-write sufficiency check.
func (r *leaveBalanceRepositoryImpl) Consume(ctx context.Context, balanceID string, days decimal.Decimal) error {
	q := database.GetQuerier(ctx, r.db)

	commandTag, err := q.Exec(ctx, `
		UPDATE leave_balances
		SET remaining = remaining - $2, updated_at = NOW()
		WHERE id = $1 AND status = $3 AND remaining >= $2
	`, balanceID, days, leave.BalanceStatusOpen)
	if err != nil {
		return fmt.Errorf("failed to consume leave balance %s: %w", balanceID, err)
	}
	if commandTag.RowsAffected() == 1 {
		return nil
	}

	// Distinguish why the conditional update matched nothing.
	balance, err := r.GetByID(ctx, balanceID)
	if err != nil {
		return err
	}
	if balance.Status != leave.BalanceStatusOpen {
		return leave.ErrBalanceClosed
	}
	return leave.ErrInsufficientBalance
}

func (r *leaveBalanceRepositoryImpl) Restore(ctx context.Context, balanceID string, days decimal.Decimal) error {
	q := database.GetQuerier(ctx, r.db)

	commandTag, err := q.Exec(ctx, `
		UPDATE leave_balances
		SET remaining = remaining + $2, updated_at = NOW()
		WHERE id = $1 AND status = $3
	`, balanceID, days, leave.BalanceStatusOpen)
	if err != nil {
		return fmt.Errorf("failed to restore leave balance %s: %w", balanceID, err)
	}
	if commandTag.RowsAffected() == 1 {
		return nil
	}

	balance, err := r.GetByID(ctx, balanceID)
	if err != nil {
		return err
	}
	if balance.Status != leave.BalanceStatusOpen {
		return leave.ErrBalanceClosed
	}
	return leave.ErrBalanceNotFound
}

func (r *leaveBalanceRepositoryImpl) Close(ctx context.Context, balanceID string) error {
	q := database.GetQuerier(ctx, r.db)

	commandTag, err := q.Exec(ctx, `
		UPDATE leave_balances SET status = $2, updated_at = NOW()
		WHERE id = $1 AND status = $3
	`, balanceID, leave.BalanceStatusClosed, leave.BalanceStatusOpen)
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() != 1 {
		return leave.ErrBalanceNotFound
	}
	return nil
}
