package payslip

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf/v2"
	"github.com/shopspring/decimal"

	"github.com/bayanihr/hrms-backend-go/internal/domain/payroll"
)

// Build renders one payroll record as a single-page A4 payslip.
func Build(record payroll.Record, period payroll.Period) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Payslip", false)
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(0, 10, "PAYSLIP")
	pdf.Ln(8)

	pdf.SetFont("Arial", "", 10)
	pdf.Cell(0, 6, fmt.Sprintf("Pay Period: %s (%s - %s)",
		period.Name,
		period.PeriodStart.Format("Jan 2, 2006"),
		period.PeriodEnd.Format("Jan 2, 2006"),
	))
	pdf.Ln(6)

	name := record.EmployeeID
	if record.EmployeeName != nil {
		name = *record.EmployeeName
	}
	pdf.Cell(0, 6, "Employee: "+name)
	if record.EmployeeCode != nil {
		pdf.Ln(5)
		pdf.Cell(0, 6, "Employee Code: "+*record.EmployeeCode)
	}
	pdf.Ln(10)

	sectionHeader(pdf, "Earnings")
	amountRow(pdf, "Basic Salary", record.BasicSalary)
	amountRow(pdf, "Overtime Pay", record.OvertimePay)
	amountRow(pdf, "Holiday Pay", record.HolidayPay)
	amountRow(pdf, "Allowances", record.Allowances)
	totalRow(pdf, "Gross Pay", record.GrossPay)
	pdf.Ln(4)

	sectionHeader(pdf, "Deductions")
	amountRow(pdf, "SSS Contribution", record.SSSDeduction)
	amountRow(pdf, "PhilHealth Contribution", record.PhilHealthDeduction)
	amountRow(pdf, "Pag-IBIG Contribution", record.PagIbigDeduction)
	amountRow(pdf, "Withholding Tax", record.TaxDeduction)
	amountRow(pdf, "Late", record.LateDeduction)
	amountRow(pdf, "Undertime", record.UndertimeDeduction)
	amountRow(pdf, "Cash Advance", record.CashAdvanceDeduction)
	amountRow(pdf, "Other Deductions", record.OtherDeductions)
	totalRow(pdf, "Total Deductions", record.TotalDeductions)
	pdf.Ln(4)

	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(120, 8, "NET PAY", "T", 0, "L", false, 0, "")
	pdf.CellFormat(50, 8, formatAmount(record.NetPay), "T", 1, "R", false, 0, "")
	pdf.Ln(6)

	sectionHeader(pdf, "Employer Remittance Detail")
	amountRow(pdf, "SSS Regular SS (ER)", record.SSSRegularEmployer)
	amountRow(pdf, "SSS MPF (ER)", record.SSSMPFEmployer)
	amountRow(pdf, "SSS EC", record.SSSECContribution)
	amountRow(pdf, "SSS Total Remittance", record.SSSTotalRemittance)
	amountRow(pdf, "PhilHealth (ER)", record.PhilHealthEmployer)
	amountRow(pdf, "Pag-IBIG (ER)", record.PagIbigEmployer)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render payslip: %w", err)
	}

	return buf.Bytes(), nil
}

func sectionHeader(pdf *gofpdf.Fpdf, title string) {
	pdf.SetFont("Arial", "B", 11)
	pdf.CellFormat(170, 7, title, "B", 1, "L", false, 0, "")
	pdf.SetFont("Arial", "", 10)
}

func amountRow(pdf *gofpdf.Fpdf, label string, amount decimal.Decimal) {
	pdf.CellFormat(120, 6, label, "", 0, "L", false, 0, "")
	pdf.CellFormat(50, 6, formatAmount(amount), "", 1, "R", false, 0, "")
}

func totalRow(pdf *gofpdf.Fpdf, label string, amount decimal.Decimal) {
	pdf.SetFont("Arial", "B", 10)
	pdf.CellFormat(120, 6, label, "T", 0, "L", false, 0, "")
	pdf.CellFormat(50, 6, formatAmount(amount), "T", 1, "R", false, 0, "")
	pdf.SetFont("Arial", "", 10)
}

func formatAmount(amount decimal.Decimal) string {
	return "PHP " + amount.StringFixed(2)
}
