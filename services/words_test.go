package services

import "testing"

func TestAmountInWords(t *testing.T) {
	tests := []struct {
		name   string
		input  float64
		expect string
	}{
		{"zero", 0, "Zero Only"},
		{"single digit", 7, "Seven Only"},
		{"teens", 13, "Thirteen Only"},
		{"tens", 40, "Forty Only"},
		{"compound tens", 42, "Forty Two Only"},
		{"hundreds", 320, "Three Hundred Twenty Only"},
		{"round hundred", 500, "Five Hundred Only"},
		{"thousands", 1234, "One Thousand Two Hundred Thirty Four Only"},
		{"millions", 2_000_001, "Two Million One Only"},
		{"billions", 1_000_000_000, "One Billion Only"},
		{"rounds cents up", 99.6, "One Hundred Only"},
		{"rounds cents down", 99.4, "Ninety Nine Only"},
		{"negative", -15, "Minus Fifteen Only"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AmountInWords(tt.input)
			if got != tt.expect {
				t.Errorf("AmountInWords(%v) = %q, want %q", tt.input, got, tt.expect)
			}
		})
	}
}
