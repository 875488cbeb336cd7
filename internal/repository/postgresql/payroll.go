package postgresql

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/bayanihr/hrms-backend-go/internal/domain/payroll"
	"github.com/bayanihr/hrms-backend-go/internal/pkg/database"
)

type payrollRepository struct {
	db *database.DB
}

func NewPayrollRepository(db *database.DB) payroll.Repository {
	return &payrollRepository{db: db}
}

// ========== PERIODS ==========

func (r *payrollRepository) CreatePeriod(ctx context.Context, period payroll.Period) (payroll.Period, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT EXISTS(
			SELECT 1 FROM payroll_periods
			WHERE period_start <= $1 AND period_end >= $2
		)
	`

	var overlaps bool
	if err := q.QueryRow(ctx, query, period.PeriodEnd, period.PeriodStart).Scan(&overlaps); err != nil {
		return payroll.Period{}, fmt.Errorf("failed to check period overlap: %w", err)
	}
	if overlaps {
		return payroll.Period{}, payroll.ErrPeriodOverlaps
	}

	query = `
		INSERT INTO payroll_periods (name, period_start, period_end)
		VALUES ($1, $2, $3)
		RETURNING id, name, period_start, period_end, created_at, updated_at
	`

	var created payroll.Period
	err := q.QueryRow(ctx, query, period.Name, period.PeriodStart, period.PeriodEnd).Scan(
		&created.ID, &created.Name, &created.PeriodStart, &created.PeriodEnd,
		&created.CreatedAt, &created.UpdatedAt,
	)
	if err != nil {
		return payroll.Period{}, fmt.Errorf("failed to create payroll period: %w", err)
	}

	return created, nil
}

func (r *payrollRepository) GetPeriodByID(ctx context.Context, id string) (payroll.Period, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, period_start, period_end, created_at, updated_at
		FROM payroll_periods
		WHERE id = $1
	`

	var period payroll.Period
	err := q.QueryRow(ctx, query, id).Scan(
		&period.ID, &period.Name, &period.PeriodStart, &period.PeriodEnd,
		&period.CreatedAt, &period.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return payroll.Period{}, payroll.ErrPeriodNotFound
		}
		return payroll.Period{}, fmt.Errorf("failed to get payroll period: %w", err)
	}

	return period, nil
}

func (r *payrollRepository) ListPeriods(ctx context.Context) ([]payroll.Period, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, period_start, period_end, created_at, updated_at
		FROM payroll_periods
		ORDER BY period_start DESC
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var periods []payroll.Period
	for rows.Next() {
		var p payroll.Period
		if err := rows.Scan(&p.ID, &p.Name, &p.PeriodStart, &p.PeriodEnd, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, err
		}
		periods = append(periods, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return periods, nil
}

// ========== RECORDS ==========

const payrollRecordColumns = `p.id, p.employee_id, p.period_id,
		p.basic_salary, p.overtime_pay, p.holiday_pay, p.allowances, p.gross_pay,
		p.sss_deduction, p.philhealth_deduction, p.pagibig_deduction, p.tax_deduction,
		p.late_deduction, p.undertime_deduction, p.cash_advance_deduction,
		p.other_deductions, p.total_deductions, p.net_pay,
		p.sss_msc, p.sss_regular_ss_employee, p.sss_regular_ss_employer, p.sss_regular_ss_total,
		p.sss_mpf_employee, p.sss_mpf_employer, p.sss_mpf_total,
		p.sss_ec_contribution, p.sss_employer_total, p.sss_total_remittance,
		p.philhealth_mbs, p.philhealth_employer_contribution, p.philhealth_total_contribution,
		p.pagibig_salary_base, p.pagibig_employer_contribution, p.pagibig_total_contribution,
		p.status, p.processed_at, p.paid_at, p.created_at, p.updated_at,
		e.full_name, e.employee_code, pp.name`

const payrollRecordJoins = `
		FROM payroll_records p
		JOIN employees e ON e.id = p.employee_id
		JOIN payroll_periods pp ON pp.id = p.period_id`

func scanPayrollRecord(row pgx.Row) (payroll.Record, error) {
	var rec payroll.Record
	err := row.Scan(
		&rec.ID, &rec.EmployeeID, &rec.PeriodID,
		&rec.BasicSalary, &rec.OvertimePay, &rec.HolidayPay, &rec.Allowances, &rec.GrossPay,
		&rec.SSSDeduction, &rec.PhilHealthDeduction, &rec.PagIbigDeduction, &rec.TaxDeduction,
		&rec.LateDeduction, &rec.UndertimeDeduction, &rec.CashAdvanceDeduction,
		&rec.OtherDeductions, &rec.TotalDeductions, &rec.NetPay,
		&rec.SSSMSC, &rec.SSSRegularEmployee, &rec.SSSRegularEmployer, &rec.SSSRegularTotal,
		&rec.SSSMPFEmployee, &rec.SSSMPFEmployer, &rec.SSSMPFTotal,
		&rec.SSSECContribution, &rec.SSSEmployerTotal, &rec.SSSTotalRemittance,
		&rec.PhilHealthMBS, &rec.PhilHealthEmployer, &rec.PhilHealthTotal,
		&rec.PagIbigSalaryBase, &rec.PagIbigEmployer, &rec.PagIbigTotal,
		&rec.Status, &rec.ProcessedAt, &rec.PaidAt, &rec.CreatedAt, &rec.UpdatedAt,
		&rec.EmployeeName, &rec.EmployeeCode, &rec.PeriodName,
	)
	return rec, err
}

func (r *payrollRepository) CreateRecord(ctx context.Context, record payroll.Record) (payroll.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO payroll_records (
			employee_id, period_id,
			basic_salary, overtime_pay, holiday_pay, allowances, gross_pay,
			sss_deduction, philhealth_deduction, pagibig_deduction, tax_deduction,
			late_deduction, undertime_deduction, cash_advance_deduction,
			other_deductions, total_deductions, net_pay,
			sss_msc, sss_regular_ss_employee, sss_regular_ss_employer, sss_regular_ss_total,
			sss_mpf_employee, sss_mpf_employer, sss_mpf_total,
			sss_ec_contribution, sss_employer_total, sss_total_remittance,
			philhealth_mbs, philhealth_employer_contribution, philhealth_total_contribution,
			pagibig_salary_base, pagibig_employer_contribution, pagibig_total_contribution,
			status
		) VALUES (
			$1, $2,
			$3, $4, $5, $6, $7,
			$8, $9, $10, $11,
			$12, $13, $14,
			$15, $16, $17,
			$18, $19, $20, $21,
			$22, $23, $24,
			$25, $26, $27,
			$28, $29, $30,
			$31, $32, $33,
			$34
		)
		RETURNING id, created_at, updated_at
	`

	created := record
	err := q.QueryRow(ctx, query,
		record.EmployeeID, record.PeriodID,
		record.BasicSalary, record.OvertimePay, record.HolidayPay, record.Allowances, record.GrossPay,
		record.SSSDeduction, record.PhilHealthDeduction, record.PagIbigDeduction, record.TaxDeduction,
		record.LateDeduction, record.UndertimeDeduction, record.CashAdvanceDeduction,
		record.OtherDeductions, record.TotalDeductions, record.NetPay,
		record.SSSMSC, record.SSSRegularEmployee, record.SSSRegularEmployer, record.SSSRegularTotal,
		record.SSSMPFEmployee, record.SSSMPFEmployer, record.SSSMPFTotal,
		record.SSSECContribution, record.SSSEmployerTotal, record.SSSTotalRemittance,
		record.PhilHealthMBS, record.PhilHealthEmployer, record.PhilHealthTotal,
		record.PagIbigSalaryBase, record.PagIbigEmployer, record.PagIbigTotal,
		record.Status,
	).Scan(&created.ID, &created.CreatedAt, &created.UpdatedAt)
	if err != nil {
		return payroll.Record{}, fmt.Errorf("failed to create payroll record: %w", err)
	}

	return created, nil
}

func (r *payrollRepository) GetRecordByID(ctx context.Context, id string) (payroll.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + payrollRecordColumns + payrollRecordJoins + ` WHERE p.id = $1`

	rec, err := scanPayrollRecord(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return payroll.Record{}, payroll.ErrRecordNotFound
		}
		return payroll.Record{}, fmt.Errorf("failed to get payroll record: %w", err)
	}

	return rec, nil
}

func (r *payrollRepository) GetRecordByEmployeePeriod(ctx context.Context, employeeID, periodID string) (payroll.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + payrollRecordColumns + payrollRecordJoins + ` WHERE p.employee_id = $1 AND p.period_id = $2`

	rec, err := scanPayrollRecord(q.QueryRow(ctx, query, employeeID, periodID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return payroll.Record{}, payroll.ErrRecordNotFound
		}
		return payroll.Record{}, fmt.Errorf("failed to get payroll record for employee and period: %w", err)
	}

	return rec, nil
}

func (r *payrollRepository) ListRecords(ctx context.Context, filter payroll.Filter) ([]payroll.Record, int64, error) {
	q := GetQuerier(ctx, r.db)

	conditions := []string{"1=1"}
	args := []interface{}{}
	argIdx := 1

	if filter.PeriodID != nil && *filter.PeriodID != "" {
		conditions = append(conditions, fmt.Sprintf("p.period_id = $%d", argIdx))
		args = append(args, *filter.PeriodID)
		argIdx++
	}
	if filter.EmployeeID != nil && *filter.EmployeeID != "" {
		conditions = append(conditions, fmt.Sprintf("p.employee_id = $%d", argIdx))
		args = append(args, *filter.EmployeeID)
		argIdx++
	}
	if filter.Status != nil && *filter.Status != "" {
		conditions = append(conditions, fmt.Sprintf("p.status = $%d", argIdx))
		args = append(args, *filter.Status)
		argIdx++
	}

	where := "WHERE " + strings.Join(conditions, " AND ")

	var total int64
	countQuery := `SELECT COUNT(*) FROM payroll_records p ` + where
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count payroll records: %w", err)
	}

	sortBy := "e.full_name"
	if filter.SortBy == "net_pay" {
		sortBy = "p.net_pay"
	}
	sortOrder := "ASC"
	if strings.EqualFold(filter.SortOrder, "desc") {
		sortOrder = "DESC"
	}

	query := fmt.Sprintf(`
		SELECT %s %s
		%s
		ORDER BY %s %s
		LIMIT $%d OFFSET $%d
	`, payrollRecordColumns, payrollRecordJoins, where, sortBy, sortOrder, argIdx, argIdx+1)
	args = append(args, filter.Limit, (filter.Page-1)*filter.Limit)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	records, err := collectPayrollRecords(rows)
	if err != nil {
		return nil, 0, err
	}

	return records, total, nil
}

func (r *payrollRepository) ListRecordsByPeriod(ctx context.Context, periodID string) ([]payroll.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + payrollRecordColumns + payrollRecordJoins + ` WHERE p.period_id = $1 ORDER BY e.full_name ASC`

	rows, err := q.Query(ctx, query, periodID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectPayrollRecords(rows)
}

func (r *payrollRepository) UpdateStatus(ctx context.Context, record payroll.Record) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE payroll_records
		SET status = $1, processed_at = $2, paid_at = $3, updated_at = NOW()
		WHERE id = $4
	`

	tag, err := q.Exec(ctx, query, record.Status, record.ProcessedAt, record.PaidAt, record.ID)
	if err != nil {
		return fmt.Errorf("failed to update payroll record status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return payroll.ErrRecordNotFound
	}

	return nil
}

func (r *payrollRepository) DeleteRecord(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM payroll_records WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete payroll record: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return payroll.ErrRecordNotFound
	}

	return nil
}

func (r *payrollRepository) GetSummary(ctx context.Context, periodID string) (payroll.SummaryResponse, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT
			COUNT(*),
			COALESCE(SUM(gross_pay), 0),
			COALESCE(SUM(total_deductions), 0),
			COALESCE(SUM(net_pay), 0),
			COALESCE(SUM(sss_total_remittance), 0),
			COALESCE(SUM(philhealth_total_contribution), 0),
			COALESCE(SUM(pagibig_total_contribution), 0),
			COUNT(*) FILTER (WHERE status = 'draft'),
			COUNT(*) FILTER (WHERE status = 'pending'),
			COUNT(*) FILTER (WHERE status = 'processed'),
			COUNT(*) FILTER (WHERE status = 'paid')
		FROM payroll_records
		WHERE period_id = $1
	`

	summary := payroll.SummaryResponse{PeriodID: periodID}
	err := q.QueryRow(ctx, query, periodID).Scan(
		&summary.TotalEmployees,
		&summary.TotalGrossPay,
		&summary.TotalDeductions,
		&summary.TotalNetPay,
		&summary.TotalSSSRemittance,
		&summary.TotalPhilHealth,
		&summary.TotalPagIbig,
		&summary.DraftCount,
		&summary.PendingCount,
		&summary.ProcessedCount,
		&summary.PaidCount,
	)
	if err != nil {
		return payroll.SummaryResponse{}, fmt.Errorf("failed to get payroll summary: %w", err)
	}

	return summary, nil
}

func collectPayrollRecords(rows pgx.Rows) ([]payroll.Record, error) {
	var records []payroll.Record
	for rows.Next() {
		rec, err := scanPayrollRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return records, nil
}
