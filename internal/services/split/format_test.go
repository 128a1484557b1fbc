package split_test

import (
	"math"
	"testing"

	"bluechips/internal/services/split"
)

func TestFormatFixed(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{25, "25.00"},
		{0, "0.00"},
		{math.Copysign(0, -1), "0.00"},
		{1.5, "1.50"},
		{0.125, "0.13"},
		{-0.125, "-0.13"},
		{2.675, "2.67"}, // stored as 2.67499999...
		{1.005, "1.00"},
		{33.333333333333336, "33.33"},
		{66.66666666666667, "66.67"},
		{-0.001, "-0.00"},
		{1234567.891, "1234567.89"},
		{math.NaN(), "NaN"},
		{math.Inf(1), "Infinity"},
		{math.Inf(-1), "-Infinity"},
	}
	for _, tc := range cases {
		if got := split.FormatFixed(tc.in, ""); got != tc.want {
			t.Fatalf("FormatFixed(%v): want %q, got %q", tc.in, tc.want, got)
		}
	}
}

func TestFormatFixed_Marker(t *testing.T) {
	if got := split.FormatFixed(math.NaN(), "-"); got != "-" {
		t.Fatalf("want marker, got %q", got)
	}
	if got := split.FormatFixed(math.Inf(1), "n/a"); got != "n/a" {
		t.Fatalf("want marker, got %q", got)
	}
	if got := split.FormatFixed(3, "n/a"); got != "3.00" {
		t.Fatalf("marker must not affect finite values, got %q", got)
	}
}

func TestParseAmount(t *testing.T) {
	cases := []struct {
		in   string
		want float64
	}{
		{"100", 100},
		{" 12.5 ", 12.5},
		{"", 0},
		{"  ", 0},
		{"1e3", 1000},
		{"-2.5E-1", -0.25},
		{".5", 0.5},
		{"5.", 5},
		{"+7", 7},
		{"010", 10},
		{"0x10", 16},
		{"0B101", 5},
		{"0o17", 15},
		{"Infinity", math.Inf(1)},
		{"-Infinity", math.Inf(-1)},
		{"1e400", math.Inf(1)},
	}
	for _, tc := range cases {
		if got := split.ParseAmount(tc.in); got != tc.want {
			t.Fatalf("ParseAmount(%q): want %v, got %v", tc.in, tc.want, got)
		}
	}
	for _, in := range []string{
		"abc", "12abc", "1,000", ".", "1e", "--1",
		"inf", "infinity", "NaN", "nan", "0x1p4", "1_000", "-0x10", "0x", "0xg", "0x_1",
	} {
		if got := split.ParseAmount(in); !math.IsNaN(got) {
			t.Fatalf("ParseAmount(%q): want NaN, got %v", in, got)
		}
	}
}
