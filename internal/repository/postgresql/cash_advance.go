package postgresql

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/bayanihr/hrms-backend-go/internal/domain/cashadvance"
	"github.com/bayanihr/hrms-backend-go/internal/pkg/database"
)

const cashAdvanceColumns = `c.id, c.employee_id, c.amount, c.remaining_balance, c.reason,
		c.status, c.approved_by, c.approved_at, c.created_at, c.updated_at, e.full_name`

type cashAdvanceRepositoryImpl struct {
	db *database.DB
}

func NewCashAdvanceRepository(db *database.DB) cashadvance.Repository {
	return &cashAdvanceRepositoryImpl{db: db}
}

func scanCashAdvance(row pgx.Row) (cashadvance.Request, error) {
	var req cashadvance.Request
	err := row.Scan(
		&req.ID, &req.EmployeeID, &req.Amount, &req.RemainingBalance, &req.Reason,
		&req.Status, &req.ApprovedBy, &req.ApprovedAt, &req.CreatedAt, &req.UpdatedAt,
		&req.EmployeeName,
	)
	return req, err
}

// Create implements cashadvance.Repository.
func (c *cashAdvanceRepositoryImpl) Create(ctx context.Context, req cashadvance.Request) (cashadvance.Request, error) {
	q := GetQuerier(ctx, c.db)

	query := `
		INSERT INTO cash_advances (employee_id, amount, remaining_balance, reason, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, employee_id, amount, remaining_balance, reason, status,
			approved_by, approved_at, created_at, updated_at
	`

	var created cashadvance.Request
	err := q.QueryRow(ctx, query,
		req.EmployeeID, req.Amount, req.RemainingBalance, req.Reason, req.Status,
	).Scan(
		&created.ID, &created.EmployeeID, &created.Amount, &created.RemainingBalance,
		&created.Reason, &created.Status, &created.ApprovedBy, &created.ApprovedAt,
		&created.CreatedAt, &created.UpdatedAt,
	)
	if err != nil {
		return cashadvance.Request{}, fmt.Errorf("failed to create cash advance: %w", err)
	}

	return created, nil
}

// GetByID implements cashadvance.Repository.
func (c *cashAdvanceRepositoryImpl) GetByID(ctx context.Context, id string) (cashadvance.Request, error) {
	q := GetQuerier(ctx, c.db)

	query := `
		SELECT ` + cashAdvanceColumns + `
		FROM cash_advances c
		JOIN employees e ON e.id = c.employee_id
		WHERE c.id = $1
	`

	req, err := scanCashAdvance(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return cashadvance.Request{}, cashadvance.ErrRequestNotFound
		}
		return cashadvance.Request{}, fmt.Errorf("failed to get cash advance: %w", err)
	}

	return req, nil
}

// GetOpenByEmployee implements cashadvance.Repository.
func (c *cashAdvanceRepositoryImpl) GetOpenByEmployee(ctx context.Context, employeeID string) (cashadvance.Request, error) {
	q := GetQuerier(ctx, c.db)

	query := `
		SELECT ` + cashAdvanceColumns + `
		FROM cash_advances c
		JOIN employees e ON e.id = c.employee_id
		WHERE c.employee_id = $1 AND c.status = $2 AND c.remaining_balance > 0
		ORDER BY c.approved_at ASC
		LIMIT 1
	`

	req, err := scanCashAdvance(q.QueryRow(ctx, query, employeeID, cashadvance.StatusApproved))
	if err != nil {
		if err == pgx.ErrNoRows {
			return cashadvance.Request{}, cashadvance.ErrRequestNotFound
		}
		return cashadvance.Request{}, fmt.Errorf("failed to get open cash advance: %w", err)
	}

	return req, nil
}

// Update implements cashadvance.Repository.
func (c *cashAdvanceRepositoryImpl) Update(ctx context.Context, req cashadvance.Request) error {
	q := GetQuerier(ctx, c.db)

	query := `
		UPDATE cash_advances
		SET remaining_balance = $1, status = $2, approved_by = $3, approved_at = $4, updated_at = NOW()
		WHERE id = $5
	`

	tag, err := q.Exec(ctx, query,
		req.RemainingBalance, req.Status, req.ApprovedBy, req.ApprovedAt, req.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update cash advance: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return cashadvance.ErrRequestNotFound
	}

	return nil
}

// DecrementBalance implements cashadvance.Repository. The status flips to
// settled in the same statement when the balance reaches zero.
func (c *cashAdvanceRepositoryImpl) DecrementBalance(ctx context.Context, id string, amount decimal.Decimal) (cashadvance.Request, error) {
	q := GetQuerier(ctx, c.db)

	query := `
		UPDATE cash_advances
		SET remaining_balance = remaining_balance - $1,
			status = CASE WHEN remaining_balance - $1 <= 0 THEN 'settled' ELSE status END,
			updated_at = NOW()
		WHERE id = $2 AND remaining_balance >= $1
		RETURNING id, employee_id, amount, remaining_balance, reason, status,
			approved_by, approved_at, created_at, updated_at
	`

	var updated cashadvance.Request
	err := q.QueryRow(ctx, query, amount, id).Scan(
		&updated.ID, &updated.EmployeeID, &updated.Amount, &updated.RemainingBalance,
		&updated.Reason, &updated.Status, &updated.ApprovedBy, &updated.ApprovedAt,
		&updated.CreatedAt, &updated.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return cashadvance.Request{}, cashadvance.ErrInsufficientBalance
		}
		return cashadvance.Request{}, fmt.Errorf("failed to decrement cash advance balance: %w", err)
	}

	return updated, nil
}

// List implements cashadvance.Repository.
func (c *cashAdvanceRepositoryImpl) List(ctx context.Context, filter cashadvance.Filter) ([]cashadvance.Request, int64, error) {
	q := GetQuerier(ctx, c.db)

	conditions := []string{"1=1"}
	args := []interface{}{}
	argIdx := 1

	if filter.EmployeeID != nil && *filter.EmployeeID != "" {
		conditions = append(conditions, fmt.Sprintf("c.employee_id = $%d", argIdx))
		args = append(args, *filter.EmployeeID)
		argIdx++
	}
	if filter.Status != nil && *filter.Status != "" {
		conditions = append(conditions, fmt.Sprintf("c.status = $%d", argIdx))
		args = append(args, *filter.Status)
		argIdx++
	}

	where := "WHERE " + strings.Join(conditions, " AND ")

	var total int64
	countQuery := `SELECT COUNT(*) FROM cash_advances c ` + where
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count cash advances: %w", err)
	}

	query := fmt.Sprintf(`
		SELECT %s
		FROM cash_advances c
		JOIN employees e ON e.id = c.employee_id
		%s
		ORDER BY c.created_at DESC
		LIMIT $%d OFFSET $%d
	`, cashAdvanceColumns, where, argIdx, argIdx+1)
	args = append(args, filter.Limit, (filter.Page-1)*filter.Limit)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var requests []cashadvance.Request
	for rows.Next() {
		req, err := scanCashAdvance(rows)
		if err != nil {
			return nil, 0, err
		}
		requests = append(requests, req)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	return requests, total, nil
}
