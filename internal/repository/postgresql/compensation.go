package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/bayanihr/hrms-backend-go/internal/domain/compensation"
	"github.com/bayanihr/hrms-backend-go/internal/pkg/database"
)

type compensationRepositoryImpl struct {
	db *database.DB
}

func NewCompensationRepository(db *database.DB) compensation.Repository {
	return &compensationRepositoryImpl{db: db}
}

// ========== TAX TITLES ==========

func (c *compensationRepositoryImpl) CreateTaxTitle(ctx context.Context, title compensation.TaxTitle) (compensation.TaxTitle, error) {
	q := GetQuerier(ctx, c.db)

	query := `
		INSERT INTO tax_titles (name, type, rate, is_active)
		VALUES ($1, $2, $3, $4)
		RETURNING id, name, type, rate, is_active, created_at, updated_at
	`

	var created compensation.TaxTitle
	err := q.QueryRow(ctx, query, title.Name, title.Type, title.Rate, title.IsActive).Scan(
		&created.ID, &created.Name, &created.Type, &created.Rate,
		&created.IsActive, &created.CreatedAt, &created.UpdatedAt,
	)
	if err != nil {
		return compensation.TaxTitle{}, fmt.Errorf("failed to create tax title: %w", err)
	}

	return created, nil
}

func (c *compensationRepositoryImpl) GetTaxTitleByID(ctx context.Context, id string) (compensation.TaxTitle, error) {
	q := GetQuerier(ctx, c.db)

	query := `SELECT id, name, type, rate, is_active, created_at, updated_at FROM tax_titles WHERE id = $1`

	var title compensation.TaxTitle
	err := q.QueryRow(ctx, query, id).Scan(
		&title.ID, &title.Name, &title.Type, &title.Rate,
		&title.IsActive, &title.CreatedAt, &title.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return compensation.TaxTitle{}, compensation.ErrTaxTitleNotFound
		}
		return compensation.TaxTitle{}, fmt.Errorf("failed to get tax title: %w", err)
	}

	return title, nil
}

func (c *compensationRepositoryImpl) ListTaxTitles(ctx context.Context, activeOnly bool) ([]compensation.TaxTitle, error) {
	q := GetQuerier(ctx, c.db)

	query := `SELECT id, name, type, rate, is_active, created_at, updated_at FROM tax_titles`
	if activeOnly {
		query += ` WHERE is_active`
	}
	query += ` ORDER BY name ASC`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var titles []compensation.TaxTitle
	for rows.Next() {
		var t compensation.TaxTitle
		if err := rows.Scan(&t.ID, &t.Name, &t.Type, &t.Rate, &t.IsActive, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, err
		}
		titles = append(titles, t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return titles, nil
}

func (c *compensationRepositoryImpl) SetTaxTitleActive(ctx context.Context, id string, active bool) error {
	q := GetQuerier(ctx, c.db)

	tag, err := q.Exec(ctx, `UPDATE tax_titles SET is_active = $1, updated_at = NOW() WHERE id = $2`, active, id)
	if err != nil {
		return fmt.Errorf("failed to update tax title: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return compensation.ErrTaxTitleNotFound
	}

	return nil
}

// ========== DEDUCTION TITLES ==========

func (c *compensationRepositoryImpl) CreateDeductionTitle(ctx context.Context, title compensation.DeductionTitle) (compensation.DeductionTitle, error) {
	q := GetQuerier(ctx, c.db)

	query := `
		INSERT INTO deduction_titles (name, amount, is_active)
		VALUES ($1, $2, $3)
		RETURNING id, name, amount, is_active, created_at, updated_at
	`

	var created compensation.DeductionTitle
	err := q.QueryRow(ctx, query, title.Name, title.Amount, title.IsActive).Scan(
		&created.ID, &created.Name, &created.Amount,
		&created.IsActive, &created.CreatedAt, &created.UpdatedAt,
	)
	if err != nil {
		return compensation.DeductionTitle{}, fmt.Errorf("failed to create deduction title: %w", err)
	}

	return created, nil
}

func (c *compensationRepositoryImpl) ListDeductionTitles(ctx context.Context, activeOnly bool) ([]compensation.DeductionTitle, error) {
	q := GetQuerier(ctx, c.db)

	query := `SELECT id, name, amount, is_active, created_at, updated_at FROM deduction_titles`
	if activeOnly {
		query += ` WHERE is_active`
	}
	query += ` ORDER BY name ASC`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var titles []compensation.DeductionTitle
	for rows.Next() {
		var t compensation.DeductionTitle
		if err := rows.Scan(&t.ID, &t.Name, &t.Amount, &t.IsActive, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, err
		}
		titles = append(titles, t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return titles, nil
}

func (c *compensationRepositoryImpl) SetDeductionTitleActive(ctx context.Context, id string, active bool) error {
	q := GetQuerier(ctx, c.db)

	tag, err := q.Exec(ctx, `UPDATE deduction_titles SET is_active = $1, updated_at = NOW() WHERE id = $2`, active, id)
	if err != nil {
		return fmt.Errorf("failed to update deduction title: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return compensation.ErrDeductionTitleNotFound
	}

	return nil
}

// ========== BENEFITS ==========

func (c *compensationRepositoryImpl) CreateBenefit(ctx context.Context, benefit compensation.Benefit) (compensation.Benefit, error) {
	q := GetQuerier(ctx, c.db)

	query := `
		INSERT INTO benefits (name, amount, is_active)
		VALUES ($1, $2, $3)
		RETURNING id, name, amount, is_active, created_at, updated_at
	`

	var created compensation.Benefit
	err := q.QueryRow(ctx, query, benefit.Name, benefit.Amount, benefit.IsActive).Scan(
		&created.ID, &created.Name, &created.Amount,
		&created.IsActive, &created.CreatedAt, &created.UpdatedAt,
	)
	if err != nil {
		return compensation.Benefit{}, fmt.Errorf("failed to create benefit: %w", err)
	}

	return created, nil
}

func (c *compensationRepositoryImpl) ListBenefits(ctx context.Context, activeOnly bool) ([]compensation.Benefit, error) {
	q := GetQuerier(ctx, c.db)

	query := `SELECT id, name, amount, is_active, created_at, updated_at FROM benefits`
	if activeOnly {
		query += ` WHERE is_active`
	}
	query += ` ORDER BY name ASC`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var benefits []compensation.Benefit
	for rows.Next() {
		var b compensation.Benefit
		if err := rows.Scan(&b.ID, &b.Name, &b.Amount, &b.IsActive, &b.CreatedAt, &b.UpdatedAt); err != nil {
			return nil, err
		}
		benefits = append(benefits, b)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return benefits, nil
}

func (c *compensationRepositoryImpl) SetBenefitActive(ctx context.Context, id string, active bool) error {
	q := GetQuerier(ctx, c.db)

	tag, err := q.Exec(ctx, `UPDATE benefits SET is_active = $1, updated_at = NOW() WHERE id = $2`, active, id)
	if err != nil {
		return fmt.Errorf("failed to update benefit: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return compensation.ErrBenefitNotFound
	}

	return nil
}

// ========== ASSIGNMENTS ==========

func (c *compensationRepositoryImpl) AssignTax(ctx context.Context, a compensation.TaxAssignment) (compensation.TaxAssignment, error) {
	q := GetQuerier(ctx, c.db)

	query := `
		INSERT INTO employee_tax_assignments (employee_id, tax_title_id, custom_rate, is_active)
		VALUES ($1, $2, $3, $4)
		RETURNING id, employee_id, tax_title_id, custom_rate, is_active, created_at, updated_at
	`

	var created compensation.TaxAssignment
	err := q.QueryRow(ctx, query, a.EmployeeID, a.TaxTitleID, a.CustomRate, a.IsActive).Scan(
		&created.ID, &created.EmployeeID, &created.TaxTitleID, &created.CustomRate,
		&created.IsActive, &created.CreatedAt, &created.UpdatedAt,
	)
	if err != nil {
		return compensation.TaxAssignment{}, fmt.Errorf("failed to assign tax title: %w", err)
	}

	return created, nil
}

func (c *compensationRepositoryImpl) AssignDeduction(ctx context.Context, a compensation.DeductionAssignment) (compensation.DeductionAssignment, error) {
	q := GetQuerier(ctx, c.db)

	query := `
		INSERT INTO employee_deduction_assignments (employee_id, deduction_title_id, custom_amount, is_active)
		VALUES ($1, $2, $3, $4)
		RETURNING id, employee_id, deduction_title_id, custom_amount, is_active, created_at, updated_at
	`

	var created compensation.DeductionAssignment
	err := q.QueryRow(ctx, query, a.EmployeeID, a.DeductionTitleID, a.CustomAmount, a.IsActive).Scan(
		&created.ID, &created.EmployeeID, &created.DeductionTitleID, &created.CustomAmount,
		&created.IsActive, &created.CreatedAt, &created.UpdatedAt,
	)
	if err != nil {
		return compensation.DeductionAssignment{}, fmt.Errorf("failed to assign deduction title: %w", err)
	}

	return created, nil
}

func (c *compensationRepositoryImpl) AssignBenefit(ctx context.Context, a compensation.BenefitAssignment) (compensation.BenefitAssignment, error) {
	q := GetQuerier(ctx, c.db)

	query := `
		INSERT INTO employee_benefit_assignments (employee_id, benefit_id, custom_amount, is_active)
		VALUES ($1, $2, $3, $4)
		RETURNING id, employee_id, benefit_id, custom_amount, is_active, created_at, updated_at
	`

	var created compensation.BenefitAssignment
	err := q.QueryRow(ctx, query, a.EmployeeID, a.BenefitID, a.CustomAmount, a.IsActive).Scan(
		&created.ID, &created.EmployeeID, &created.BenefitID, &created.CustomAmount,
		&created.IsActive, &created.CreatedAt, &created.UpdatedAt,
	)
	if err != nil {
		return compensation.BenefitAssignment{}, fmt.Errorf("failed to assign benefit: %w", err)
	}

	return created, nil
}

func (c *compensationRepositoryImpl) GetEmployeeTaxAssignments(ctx context.Context, employeeID string, activeOnly bool) ([]compensation.TaxAssignment, error) {
	q := GetQuerier(ctx, c.db)

	query := `
		SELECT a.id, a.employee_id, a.tax_title_id, a.custom_rate, a.is_active, a.created_at, a.updated_at,
			t.id, t.name, t.type, t.rate, t.is_active, t.created_at, t.updated_at
		FROM employee_tax_assignments a
		JOIN tax_titles t ON t.id = a.tax_title_id
		WHERE a.employee_id = $1
	`
	if activeOnly {
		query += ` AND a.is_active AND t.is_active`
	}

	rows, err := q.Query(ctx, query, employeeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var assignments []compensation.TaxAssignment
	for rows.Next() {
		var a compensation.TaxAssignment
		var t compensation.TaxTitle
		err := rows.Scan(
			&a.ID, &a.EmployeeID, &a.TaxTitleID, &a.CustomRate, &a.IsActive, &a.CreatedAt, &a.UpdatedAt,
			&t.ID, &t.Name, &t.Type, &t.Rate, &t.IsActive, &t.CreatedAt, &t.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		a.Title = &t
		assignments = append(assignments, a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return assignments, nil
}

func (c *compensationRepositoryImpl) GetEmployeeDeductionAssignments(ctx context.Context, employeeID string, activeOnly bool) ([]compensation.DeductionAssignment, error) {
	q := GetQuerier(ctx, c.db)

	query := `
		SELECT a.id, a.employee_id, a.deduction_title_id, a.custom_amount, a.is_active, a.created_at, a.updated_at,
			t.id, t.name, t.amount, t.is_active, t.created_at, t.updated_at
		FROM employee_deduction_assignments a
		JOIN deduction_titles t ON t.id = a.deduction_title_id
		WHERE a.employee_id = $1
	`
	if activeOnly {
		query += ` AND a.is_active AND t.is_active`
	}

	rows, err := q.Query(ctx, query, employeeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var assignments []compensation.DeductionAssignment
	for rows.Next() {
		var a compensation.DeductionAssignment
		var t compensation.DeductionTitle
		err := rows.Scan(
			&a.ID, &a.EmployeeID, &a.DeductionTitleID, &a.CustomAmount, &a.IsActive, &a.CreatedAt, &a.UpdatedAt,
			&t.ID, &t.Name, &t.Amount, &t.IsActive, &t.CreatedAt, &t.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		a.Title = &t
		assignments = append(assignments, a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return assignments, nil
}

func (c *compensationRepositoryImpl) GetEmployeeBenefitAssignments(ctx context.Context, employeeID string, activeOnly bool) ([]compensation.BenefitAssignment, error) {
	q := GetQuerier(ctx, c.db)

	query := `
		SELECT a.id, a.employee_id, a.benefit_id, a.custom_amount, a.is_active, a.created_at, a.updated_at,
			b.id, b.name, b.amount, b.is_active, b.created_at, b.updated_at
		FROM employee_benefit_assignments a
		JOIN benefits b ON b.id = a.benefit_id
		WHERE a.employee_id = $1
	`
	if activeOnly {
		query += ` AND a.is_active AND b.is_active`
	}

	rows, err := q.Query(ctx, query, employeeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var assignments []compensation.BenefitAssignment
	for rows.Next() {
		var a compensation.BenefitAssignment
		var b compensation.Benefit
		err := rows.Scan(
			&a.ID, &a.EmployeeID, &a.BenefitID, &a.CustomAmount, &a.IsActive, &a.CreatedAt, &a.UpdatedAt,
			&b.ID, &b.Name, &b.Amount, &b.IsActive, &b.CreatedAt, &b.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		a.Benefit = &b
		assignments = append(assignments, a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return assignments, nil
}

func (c *compensationRepositoryImpl) RemoveTaxAssignment(ctx context.Context, id string) error {
	q := GetQuerier(ctx, c.db)

	tag, err := q.Exec(ctx, `DELETE FROM employee_tax_assignments WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to remove tax assignment: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return compensation.ErrAssignmentNotFound
	}

	return nil
}

func (c *compensationRepositoryImpl) RemoveDeductionAssignment(ctx context.Context, id string) error {
	q := GetQuerier(ctx, c.db)

	tag, err := q.Exec(ctx, `DELETE FROM employee_deduction_assignments WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to remove deduction assignment: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return compensation.ErrAssignmentNotFound
	}

	return nil
}

func (c *compensationRepositoryImpl) RemoveBenefitAssignment(ctx context.Context, id string) error {
	q := GetQuerier(ctx, c.db)

	tag, err := q.Exec(ctx, `DELETE FROM employee_benefit_assignments WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to remove benefit assignment: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return compensation.ErrAssignmentNotFound
	}

	return nil
}
