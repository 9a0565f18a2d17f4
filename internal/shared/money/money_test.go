package money

import "testing"

func TestToMinorUnits(t *testing.T) {
	tests := []struct {
		name   string
		amount float64
		want   int64
	}{
		{"Whole dollars", 12.0, 1200},
		{"Exact cents", 12.34, 1234},
		{"Rounds half up", 12.345, 1235},
		{"Rounds down below half", 12.344, 1234},
		{"One cent", 0.01, 1},
		{"Zero", 0, 0},
		{"Large amount", 99999.99, 9999999},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ToMinorUnits(tt.amount); got != tt.want {
				t.Errorf("ToMinorUnits(%v) = %d, want %d", tt.amount, got, tt.want)
			}
		})
	}
}

func TestFormatMinorUnits(t *testing.T) {
	tests := []struct {
		name   string
		amount int64
		want   string
	}{
		{"Whole dollars", 1200, "12.00"},
		{"With cents", 1235, "12.35"},
		{"Single cent", 1, "0.01"},
		{"Zero", 0, "0.00"},
		{"Large amount", 9999999, "99999.99"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatMinorUnits(tt.amount); got != tt.want {
				t.Errorf("FormatMinorUnits(%d) = %q, want %q", tt.amount, got, tt.want)
			}
		})
	}
}
