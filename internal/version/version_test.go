package version

import (
	"strings"
	"testing"
)

// Тесты меняют пакетные переменные, поэтому идут последовательно.

func setBuildDate(t *testing.T, date string) {
	t.Helper()
	old := BuildDate
	t.Cleanup(func() { BuildDate = old })
	BuildDate = date
}

func TestCalculateBuildID(t *testing.T) {
	tests := []struct {
		name      string
		date      string
		expected  int
		wantError bool
	}{
		{
			name:     "epoch date",
			date:     "2026-01-01",
			expected: 0,
		},
		{
			name:     "next day after epoch",
			date:     "2026-01-02",
			expected: 1,
		},
		{
			name:     "one year later",
			date:     "2027-01-01",
			expected: 365,
		},
		{
			name:     "date with leap years included",
			date:     "2032-01-01",
			expected: 2191,
		},
		{
			name:      "invalid format",
			date:      "invalid",
			wantError: true,
		},
		{
			name:      "empty date",
			date:      "",
			wantError: true,
		},
		{
			name:      "before epoch",
			date:      "2025-12-31",
			wantError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setBuildDate(t, tt.date)

			got, err := CalculateBuildID()

			if tt.wantError {
				if err == nil {
					t.Fatalf("expected error, got nil (id=%d)", got)
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if got != tt.expected {
				t.Errorf("CalculateBuildID() = %d, want %d", got, tt.expected)
			}
		})
	}
}

func TestString(t *testing.T) {
	setBuildDate(t, "2026-01-11")

	s := String()
	if !strings.Contains(s, "build 10 (2026-01-11)") {
		t.Errorf("String() = %q, want build 10", s)
	}
	if !strings.HasPrefix(s, AppName+" v"+Version) {
		t.Errorf("String() = %q, want prefix %q", s, AppName+" v"+Version)
	}

	setBuildDate(t, "")
	if s := String(); !strings.Contains(s, "build unknown") {
		t.Errorf("String() = %q, want unknown build", s)
	}
	if Info().Calculated {
		t.Error("Info().Calculated must be false without BuildDate")
	}
}
