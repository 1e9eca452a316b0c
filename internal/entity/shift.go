package entity

import (
	"github.com/uptrace/bun"
)

// Shift statuses. A shift starts out pending; the employee can confirm or
// cancel it, the admin can confirm or cancel it. confirmed and cancelled are
// terminal for employee-initiated changes.
const (
	ShiftPending           = "pending"
	ShiftEmployeeConfirmed = "employee_confirmed"
	ShiftConfirmed         = "confirmed"
	ShiftCancelled         = "cancelled"
)

type Shift struct {
	bun.BaseModel `bun:"table:shifts"`

	BasicEntity
	Date       *string `json:"date" bun:"date"`
	StartTime  *string `json:"start_time" bun:"start_time"`
	EndTime    *string `json:"end_time" bun:"end_time"`
	EmployeeID *int    `json:"employee" bun:"employee_id"`
	Location   *string `json:"location" bun:"location"`
	Status     *string `json:"status" bun:"status"`
}

var shiftTransitions = map[string][]string{
	ShiftPending:           {ShiftEmployeeConfirmed, ShiftConfirmed, ShiftCancelled},
	ShiftEmployeeConfirmed: {ShiftConfirmed, ShiftCancelled},
}

// CanTransitionShift reports whether a status change is legal at all.
func CanTransitionShift(from, to string) bool {
	for _, next := range shiftTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// EmployeeCanSetShiftStatus restricts the transition set further to the two
// actions an employee may take on their own shift.
func EmployeeCanSetShiftStatus(from, to string) bool {
	if to != ShiftEmployeeConfirmed && to != ShiftCancelled {
		return false
	}
	return CanTransitionShift(from, to)
}

// IsTerminalShiftStatus reports whether no employee-initiated transition is
// possible anymore.
func IsTerminalShiftStatus(status string) bool {
	return status == ShiftConfirmed || status == ShiftCancelled
}

// ValidShiftStatus reports whether s is one of the four known statuses.
func ValidShiftStatus(s string) bool {
	switch s {
	case ShiftPending, ShiftEmployeeConfirmed, ShiftConfirmed, ShiftCancelled:
		return true
	}
	return false
}
