package service

import (
	"fmt"

	"github.com/jung-kurt/gofpdf/v2"

	"github.com/Jaspa-lSingh/Shiftwise/internal/repository/postgres/payroll"
)

// PayslipPDF renders one processed payroll row as a PDF payslip and returns
// the file name.
func PayslipPDF(detail payroll.HistoryResponse) (string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 18)
	pdf.Cell(0, 12, "Payslip")
	pdf.Ln(16)

	stringValue := func(s *string) string {
		if s == nil {
			return ""
		}
		return *s
	}
	floatValue := func(f *float64) float64 {
		if f == nil {
			return 0
		}
		return *f
	}

	period := ""
	if detail.StartDate != nil && detail.EndDate != nil {
		period = fmt.Sprintf("%s to %s", detail.StartDate.String(), detail.EndDate.String())
	}

	pdf.SetFont("Arial", "", 12)
	rows := [][2]string{
		{"Employee", stringValue(detail.EmployeeName)},
		{"Email", stringValue(detail.EmployeeEmail)},
		{"Pay period", period},
		{"Worked hours", fmt.Sprintf("%.2f", floatValue(detail.WorkedHours))},
		{"Base salary", fmt.Sprintf("%.2f", floatValue(detail.BaseSalary))},
		{"Overtime pay", fmt.Sprintf("%.2f", floatValue(detail.OvertimePay))},
		{"Deductions", fmt.Sprintf("%.2f", floatValue(detail.Deductions))},
	}
	for _, row := range rows {
		pdf.CellFormat(50, 8, row[0], "", 0, "L", false, 0, "")
		pdf.CellFormat(0, 8, row[1], "", 1, "L", false, 0, "")
	}

	pdf.Ln(4)
	pdf.SetFont("Arial", "B", 13)
	pdf.CellFormat(50, 9, "Net salary", "T", 0, "L", false, 0, "")
	pdf.CellFormat(0, 9, fmt.Sprintf("%.2f", floatValue(detail.NetSalary)), "T", 1, "L", false, 0, "")

	fileName := fmt.Sprintf("payslip-%d.pdf", detail.ID)
	if err := pdf.OutputFileAndClose(fileName); err != nil {
		return "", fmt.Errorf("error saving payslip: %w", err)
	}

	return fileName, nil
}
