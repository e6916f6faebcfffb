package format

import (
	"testing"
	"time"
)

func TestFormatExecutionDuration(t *testing.T) {
	t.Parallel()
	tests := []struct {
		in   time.Duration
		want string
	}{
		{0, "0\u00b5s"},
		{750 * time.Microsecond, "750\u00b5s"},
		{12 * time.Millisecond, "12ms"},
		{999 * time.Millisecond, "999ms"},
		{1500 * time.Millisecond, "1.5s"},
		{2 * time.Minute, "2m0s"},
	}
	for _, tt := range tests {
		if got := FormatExecutionDuration(tt.in); got != tt.want {
			t.Errorf("FormatExecutionDuration(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatCoins(t *testing.T) {
	t.Parallel()
	tests := []struct {
		in   []int
		want string
	}{
		{nil, "[]"},
		{[]int{5}, "[5]"},
		{[]int{1, 3, 4}, "[1, 3, 4]"},
	}
	for _, tt := range tests {
		if got := FormatCoins(tt.in); got != tt.want {
			t.Errorf("FormatCoins(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatNumber(t *testing.T) {
	t.Parallel()
	tests := []struct {
		in   uint64
		want string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1,000"},
		{46, "46"},
		{123456, "123,456"},
		{1234567, "1,234,567"},
	}
	for _, tt := range tests {
		if got := FormatNumber(tt.in); got != tt.want {
			t.Errorf("FormatNumber(%d) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
