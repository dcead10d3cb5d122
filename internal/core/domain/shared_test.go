package domain

import "testing"

func TestValidateID(t *testing.T) {
	tests := []struct {
		name string
		id   string
		want bool
	}{
		{"valid 24-char hex", "aabbccddee112233aabbccdd", true},
		{"empty string", "", false},
		{"too short", "aabbcc", false},
		{"too long", "aabbccddee112233aabbccddd", false},
		{"exactly 23 chars", "aabbccddee112233aabbccd", false},
		{"exactly 25 chars", "aabbccddee112233aabbccdde", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ValidateID(tt.id); got != tt.want {
				t.Errorf("ValidateID(%q) = %v, want %v", tt.id, got, tt.want)
			}
		})
	}
}

func TestNewAmountFromFloat(t *testing.T) {
	tests := []struct {
		name  string
		value float64
		want  Amount
	}{
		{"whole units", 1000, 100000},
		{"two decimals", 10.50, 1050},
		{"rounds up", 10.005, 1001},
		{"rounds half away from zero", 0.125, 13},
		{"float noise collapses", 0.1 + 0.2, 30},
		{"zero", 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NewAmountFromFloat(tt.value); got != tt.want {
				t.Errorf("NewAmountFromFloat(%v) = %d, want %d", tt.value, got, tt.want)
			}
		})
	}
}

func TestAmount_ApproxEqual(t *testing.T) {
	tests := []struct {
		name string
		a, b Amount
		want bool
	}{
		{"identical", 100000, 100000, true},
		{"one cent apart", 100000, 100001, true},
		{"one cent below", 100000, 99999, true},
		{"two cents apart", 100000, 100002, false},
		{"far apart", 100000, 200000, false},
		{"both zero", 0, 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.ApproxEqual(tt.b); got != tt.want {
				t.Errorf("(%d).ApproxEqual(%d) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestAmount_ToFloat(t *testing.T) {
	tests := []struct {
		name string
		a    Amount
		want float64
	}{
		{"whole units", 100000, 1000},
		{"with cents", 1050, 10.5},
		{"zero", 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.ToFloat(); got != tt.want {
				t.Errorf("(%d).ToFloat() = %v, want %v", tt.a, got, tt.want)
			}
		})
	}
}

func TestAmount_Multiply(t *testing.T) {
	tests := []struct {
		name string
		a    Amount
		b    int
		want Amount
	}{
		{"simple multiply", 100, 3, 300},
		{"multiply by zero", 500, 0, 0},
		{"multiply by one", 2999, 1, 2999},
		{"zero amount", 0, 10, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Multiply(tt.b); got != tt.want {
				t.Errorf("(%d).Multiply(%d) = %d, want %d", tt.a, tt.b, got, tt.want)
			}
		})
	}
}
