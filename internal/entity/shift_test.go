package entity

import "testing"

func TestCanTransitionShift(t *testing.T) {
	tests := []struct {
		from, to string
		want     bool
	}{
		{ShiftPending, ShiftEmployeeConfirmed, true},
		{ShiftPending, ShiftConfirmed, true},
		{ShiftPending, ShiftCancelled, true},
		{ShiftEmployeeConfirmed, ShiftConfirmed, true},
		{ShiftEmployeeConfirmed, ShiftCancelled, true},

		{ShiftConfirmed, ShiftEmployeeConfirmed, false},
		{ShiftConfirmed, ShiftCancelled, false},
		{ShiftCancelled, ShiftPending, false},
		{ShiftCancelled, ShiftEmployeeConfirmed, false},
		{ShiftEmployeeConfirmed, ShiftPending, false},
		{ShiftPending, ShiftPending, false},
	}

	for _, tt := range tests {
		if got := CanTransitionShift(tt.from, tt.to); got != tt.want {
			t.Errorf("CanTransitionShift(%q, %q) = %v, want %v", tt.from, tt.to, got, tt.want)
		}
	}
}

func TestEmployeeCanSetShiftStatus(t *testing.T) {
	tests := []struct {
		from, to string
		want     bool
	}{
		{ShiftPending, ShiftEmployeeConfirmed, true},
		{ShiftPending, ShiftCancelled, true},
		{ShiftEmployeeConfirmed, ShiftCancelled, true},

		// admin-only transition
		{ShiftPending, ShiftConfirmed, false},
		{ShiftEmployeeConfirmed, ShiftConfirmed, false},
		// terminal states block everything employee-initiated
		{ShiftConfirmed, ShiftCancelled, false},
		{ShiftCancelled, ShiftEmployeeConfirmed, false},
	}

	for _, tt := range tests {
		if got := EmployeeCanSetShiftStatus(tt.from, tt.to); got != tt.want {
			t.Errorf("EmployeeCanSetShiftStatus(%q, %q) = %v, want %v", tt.from, tt.to, got, tt.want)
		}
	}
}

func TestIsTerminalShiftStatus(t *testing.T) {
	for status, want := range map[string]bool{
		ShiftPending:           false,
		ShiftEmployeeConfirmed: false,
		ShiftConfirmed:         true,
		ShiftCancelled:         true,
	} {
		if got := IsTerminalShiftStatus(status); got != want {
			t.Errorf("IsTerminalShiftStatus(%q) = %v, want %v", status, got, want)
		}
	}
}
