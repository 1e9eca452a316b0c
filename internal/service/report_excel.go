package service

import (
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/Jaspa-lSingh/Shiftwise/internal/repository/postgres/attendance"
)

// AttendanceReportExcel writes attendance rows to a new xlsx file and
// returns its name.
func AttendanceReportExcel(list []attendance.GetListResponse) (string, error) {
	f := excelize.NewFile()
	sheet := "Sheet1"

	headers := []string{"ID", "Shift Date", "Employee", "Email", "Clock In", "Clock In Location", "Clock Out", "Clock Out Location", "Total Hours"}
	for i, header := range headers {
		cell := fmt.Sprintf("%c1", 'A'+i)
		f.SetCellValue(sheet, cell, header)
	}

	timeValue := func(t *time.Time) string {
		if t == nil {
			return ""
		}
		return t.Format("2006-01-02 15:04:05")
	}
	stringValue := func(s *string) string {
		if s == nil {
			return ""
		}
		return *s
	}

	rowNum := 2
	for _, entry := range list {
		f.SetCellValue(sheet, fmt.Sprintf("A%d", rowNum), entry.ID)
		if entry.ShiftDate != nil {
			f.SetCellValue(sheet, fmt.Sprintf("B%d", rowNum), entry.ShiftDate.String())
		}
		f.SetCellValue(sheet, fmt.Sprintf("C%d", rowNum), stringValue(entry.EmployeeName))
		f.SetCellValue(sheet, fmt.Sprintf("D%d", rowNum), stringValue(entry.EmployeeEmail))
		f.SetCellValue(sheet, fmt.Sprintf("E%d", rowNum), timeValue(entry.ClockInTime))
		f.SetCellValue(sheet, fmt.Sprintf("F%d", rowNum), stringValue(entry.ClockInLocation))
		f.SetCellValue(sheet, fmt.Sprintf("G%d", rowNum), timeValue(entry.ClockOutTime))
		f.SetCellValue(sheet, fmt.Sprintf("H%d", rowNum), stringValue(entry.ClockOutLocation))
		if entry.TotalHours != nil {
			f.SetCellValue(sheet, fmt.Sprintf("I%d", rowNum), *entry.TotalHours)
		}
		rowNum++
	}

	fileName := fmt.Sprintf("attendance-report-%s.xlsx", time.Now().Format("2006-01-02-150405"))
	if err := f.SaveAs(fileName); err != nil {
		return "", fmt.Errorf("error saving file: %w", err)
	}

	return fileName, nil
}
