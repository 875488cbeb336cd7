package export

import (
	"bytes"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"github.com/bayanihr/hrms-backend-go/internal/domain/payroll"
)

var registerHeaders = []string{
	"Employee Code", "Employee Name", "Status",
	"Basic Salary", "Overtime Pay", "Holiday Pay", "Allowances", "Gross Pay",
	"SSS (EE)", "PhilHealth (EE)", "Pag-IBIG (EE)", "Tax",
	"Late", "Undertime", "Cash Advance", "Other Deductions",
	"Total Deductions", "Net Pay",
	"SSS MSC", "SSS (ER)", "SSS EC", "SSS Remittance",
	"PhilHealth (ER)", "Pag-IBIG (ER)",
}

// BuildRegister renders a period's records as a payroll register workbook,
// one row per employee with a totals row at the bottom.
func BuildRegister(period payroll.Period, records []payroll.Record) ([]byte, error) {
	f := excelize.NewFile()
	sheet := "Payroll Register"
	f.SetSheetName("Sheet1", sheet)

	f.SetCellValue(sheet, "A1", fmt.Sprintf("Payroll Register - %s (%s - %s)",
		period.Name,
		period.PeriodStart.Format("2006-01-02"),
		period.PeriodEnd.Format("2006-01-02"),
	))

	for i, header := range registerHeaders {
		cell, err := excelize.CoordinatesToCellName(i+1, 3)
		if err != nil {
			return nil, err
		}
		f.SetCellValue(sheet, cell, header)
	}

	for rowIdx, rec := range records {
		code := ""
		if rec.EmployeeCode != nil {
			code = *rec.EmployeeCode
		}
		name := rec.EmployeeID
		if rec.EmployeeName != nil {
			name = *rec.EmployeeName
		}

		values := []interface{}{
			code, name, string(rec.Status),
			toFloat(rec.BasicSalary), toFloat(rec.OvertimePay), toFloat(rec.HolidayPay),
			toFloat(rec.Allowances), toFloat(rec.GrossPay),
			toFloat(rec.SSSDeduction), toFloat(rec.PhilHealthDeduction),
			toFloat(rec.PagIbigDeduction), toFloat(rec.TaxDeduction),
			toFloat(rec.LateDeduction), toFloat(rec.UndertimeDeduction),
			toFloat(rec.CashAdvanceDeduction), toFloat(rec.OtherDeductions),
			toFloat(rec.TotalDeductions), toFloat(rec.NetPay),
			toFloat(rec.SSSMSC), toFloat(rec.SSSEmployerTotal),
			toFloat(rec.SSSECContribution), toFloat(rec.SSSTotalRemittance),
			toFloat(rec.PhilHealthEmployer), toFloat(rec.PagIbigEmployer),
		}

		for colIdx, v := range values {
			cell, err := excelize.CoordinatesToCellName(colIdx+1, rowIdx+4)
			if err != nil {
				return nil, err
			}
			f.SetCellValue(sheet, cell, v)
		}
	}

	// Totals row with SUM formulas over the numeric columns.
	totalRow := len(records) + 4
	f.SetCellValue(sheet, fmt.Sprintf("B%d", totalRow), "TOTAL")
	for col := 4; col <= len(registerHeaders); col++ {
		colName, err := excelize.ColumnNumberToName(col)
		if err != nil {
			return nil, err
		}
		if col == 19 { // SSS MSC is a bracket value, summing it is meaningless
			continue
		}
		formula := fmt.Sprintf("SUM(%s4:%s%d)", colName, colName, totalRow-1)
		if err := f.SetCellFormula(sheet, fmt.Sprintf("%s%d", colName, totalRow), formula); err != nil {
			return nil, err
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("failed to write register workbook: %w", err)
	}

	return buf.Bytes(), nil
}

func toFloat(d decimal.Decimal) float64 {
	return d.InexactFloat64()
}
