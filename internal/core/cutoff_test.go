package core_test

import (
	"testing"
	"time"

	"ledger-reports/internal/core"
)

func TestResolveCutoff(t *testing.T) {
	now := time.Date(2025, 6, 15, 10, 30, 0, 0, time.UTC)

	tests := []struct {
		name string
		year int
		want time.Time
	}{
		{
			name: "closed year resolves to its December 31",
			year: 2023,
			want: time.Date(2023, 12, 31, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "previous year resolves to its December 31",
			year: 2024,
			want: time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "current year resolves to today",
			year: 2025,
			want: now,
		},
		{
			name: "future year resolves to today",
			year: 2030,
			want: now,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := core.ResolveCutoff(tt.year, now)
			if !got.Equal(tt.want) {
				t.Errorf("ResolveCutoff(%d) = %v, want %v", tt.year, got, tt.want)
			}
		})
	}
}
