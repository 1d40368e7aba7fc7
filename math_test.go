package aoc

import "testing"

func TestCountDigits(t *testing.T) {
	tests := []struct {
		n    int
		want int
	}{
		{0, 1},
		{9, 1},
		{10, 2},
		{2024, 4},
		{253000, 6},
		{-17, 2},
	}
	for _, tt := range tests {
		if got := CountDigits(tt.n); got != tt.want {
			t.Errorf("CountDigits(%d) = %d, want %d", tt.n, got, tt.want)
		}
	}
}

func TestSplitDigits(t *testing.T) {
	tests := []struct {
		n, at       int
		left, right int
	}{
		{1234, 2, 12, 34},
		{1000, 2, 10, 0},
		{253000, 3, 253, 0},
		{17, 1, 1, 7},
	}
	for _, tt := range tests {
		l, r := SplitDigits(tt.n, tt.at)
		if l != tt.left || r != tt.right {
			t.Errorf("SplitDigits(%d, %d) = %d, %d; want %d, %d", tt.n, tt.at, l, r, tt.left, tt.right)
		}
	}
}

func TestFields(t *testing.T) {
	got := Fields(" 125 17\n")
	if len(got) != 2 || got[0] != 125 || got[1] != 17 {
		t.Errorf("Fields = %v", got)
	}
	if got := Sum(got...); got != 142 {
		t.Errorf("Sum = %d", got)
	}
	if got := AbsDiff(3, 10); got != 7 {
		t.Errorf("AbsDiff = %d", got)
	}
}

func TestGCDLCM(t *testing.T) {
	tests := []struct {
		a, b     int
		gcd, lcm int
	}{
		{12, 18, 6, 36},
		{101, 103, 1, 10403},
		{-4, 6, 2, 12},
		{7, 7, 7, 7},
	}
	for _, tt := range tests {
		if got := GCD(tt.a, tt.b); got != tt.gcd {
			t.Errorf("GCD(%d, %d) = %d, want %d", tt.a, tt.b, got, tt.gcd)
		}
		if got := AbsDiff(LCM(tt.a, tt.b), 0); got != tt.lcm {
			t.Errorf("LCM(%d, %d) = %d, want %d", tt.a, tt.b, got, tt.lcm)
		}
	}
	if got := LCM(2, 3, 4); got != 12 {
		t.Errorf("LCM(2, 3, 4) = %d, want 12", got)
	}
}

func TestTrimPrefix(t *testing.T) {
	if got := TrimPrefix("Register A: 729", "Register A: "); got != "729" {
		t.Errorf("TrimPrefix = %q", got)
	}
}
