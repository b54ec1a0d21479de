package util

import (
	"testing"
	"time"
)

func TestFormatDuration(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		duration time.Duration
		expected string
	}{
		{name: "under one minute", duration: 45 * time.Second, expected: "45s"},
		{name: "rounded second to minute", duration: 59*time.Second + 500*time.Millisecond, expected: "1m0s"},
		{name: "minutes and seconds", duration: 2*time.Minute + 30*time.Second, expected: "2m30s"},
		{name: "hours and minutes", duration: time.Hour + 30*time.Minute, expected: "1h30m"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := FormatDuration(tt.duration); got != tt.expected {
				t.Fatalf("FormatDuration(%s) = %s, want %s", tt.duration, got, tt.expected)
			}
		})
	}
}

func TestCeilDays(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		duration time.Duration
		expected int
	}{
		{name: "negative duration clamps to zero", duration: -time.Hour, expected: 0},
		{name: "zero duration", duration: 0, expected: 0},
		{name: "partial day rounds up", duration: time.Hour, expected: 1},
		{name: "exact day", duration: 24 * time.Hour, expected: 1},
		{name: "just over a day rounds up", duration: 24*time.Hour + time.Minute, expected: 2},
		{name: "five days", duration: 5 * 24 * time.Hour, expected: 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := CeilDays(tt.duration); got != tt.expected {
				t.Fatalf("CeilDays(%s) = %d, want %d", tt.duration, got, tt.expected)
			}
		})
	}
}
