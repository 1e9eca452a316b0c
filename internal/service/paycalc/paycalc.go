// Package paycalc holds the payroll arithmetic: a weekly base salary covers
// the standard 40 hours, anything above is paid at 1.5x the derived hourly
// rate.
package paycalc

import "math"

// StandardWeekHours is the number of hours the base salary pays for.
const StandardWeekHours = 40.0

// OvertimeMultiplier is applied to the hourly rate for hours beyond the
// standard week.
const OvertimeMultiplier = 1.5

// Result is the salary breakdown for one employee over one payroll period.
type Result struct {
	BaseSalary  float64
	OvertimePay float64
	Deductions  float64
	NetSalary   float64
}

// Salary computes the pay for workedHours against a weekly base salary.
// Under the standard week the base is prorated; beyond it the full base is
// paid plus overtime. Deductions are not modeled yet.
func Salary(baseSalary, workedHours float64) Result {
	if workedHours < 0 {
		workedHours = 0
	}

	if workedHours <= StandardWeekHours {
		return Result{
			BaseSalary: baseSalary,
			NetSalary:  Round2(baseSalary * workedHours / StandardWeekHours),
		}
	}

	overtimeHours := workedHours - StandardWeekHours
	overtimeRate := baseSalary / StandardWeekHours * OvertimeMultiplier
	overtimePay := Round2(overtimeHours * overtimeRate)

	return Result{
		BaseSalary:  baseSalary,
		OvertimePay: overtimePay,
		NetSalary:   Round2(baseSalary + overtimePay),
	}
}

// Round2 rounds to two decimal places, the precision payroll figures are
// stored with.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
