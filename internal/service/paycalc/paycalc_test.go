package paycalc

import "testing"

func TestSalary(t *testing.T) {
	tests := []struct {
		name        string
		base, hours float64
		want        Result
	}{
		{
			name: "full standard week",
			base: 800, hours: 40,
			want: Result{BaseSalary: 800, NetSalary: 800},
		},
		{
			name: "half week is prorated",
			base: 800, hours: 20,
			want: Result{BaseSalary: 800, NetSalary: 400},
		},
		{
			name: "no hours no pay",
			base: 800, hours: 0,
			want: Result{BaseSalary: 800, NetSalary: 0},
		},
		{
			name: "two hours of overtime at 1.5x",
			base: 800, hours: 42,
			// hourly rate 20, overtime rate 30, 2h -> 60
			want: Result{BaseSalary: 800, OvertimePay: 60, NetSalary: 860},
		},
		{
			name: "negative hours clamp to zero",
			base: 800, hours: -5,
			want: Result{BaseSalary: 800, NetSalary: 0},
		},
		{
			name: "fractional result rounds to cents",
			base: 1000, hours: 13.33,
			want: Result{BaseSalary: 1000, NetSalary: 333.25},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Salary(tt.base, tt.hours)
			if got != tt.want {
				t.Errorf("Salary(%v, %v) = %+v, want %+v", tt.base, tt.hours, got, tt.want)
			}
		})
	}
}

func TestRound2(t *testing.T) {
	for in, want := range map[float64]float64{
		0.125:   0.13, // rounds half away from zero
		60.0:    60.0,
		333.254: 333.25,
		-1.236:  -1.24,
	} {
		if got := Round2(in); got != want {
			t.Errorf("Round2(%v) = %v, want %v", in, got, want)
		}
	}
}
