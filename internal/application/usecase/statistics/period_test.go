package statistics

import (
	"testing"
	"time"
)

func TestDayBounds(t *testing.T) {
	loc := time.UTC
	noon := time.Date(2024, time.July, 15, 12, 34, 56, 0, loc)

	start, end := DayBounds(noon, loc)

	wantStart := time.Date(2024, time.July, 15, 0, 0, 0, 0, loc).UnixMilli()
	if start != wantStart {
		t.Errorf("start = %d, want %d", start, wantStart)
	}
	wantEnd := time.Date(2024, time.July, 16, 0, 0, 0, 0, loc).UnixMilli() - 1
	if end != wantEnd {
		t.Errorf("end = %d, want %d", end, wantEnd)
	}
}

func TestMonthBounds(t *testing.T) {
	loc := time.UTC

	t.Run("ordinary month", func(t *testing.T) {
		start, end := MonthBounds(2024, 7, loc)
		if got := time.UnixMilli(start).In(loc); got.Day() != 1 || got.Month() != time.July {
			t.Errorf("start = %s, want July 1", got)
		}
		if got := time.UnixMilli(end).In(loc); got.Day() != 31 || got.Month() != time.July {
			t.Errorf("end = %s, want July 31", got)
		}
	})

	t.Run("december rolls into the next year", func(t *testing.T) {
		_, end := MonthBounds(2024, 12, loc)
		got := time.UnixMilli(end + 1).In(loc)
		if got.Year() != 2025 || got.Month() != time.January {
			t.Errorf("millisecond after end = %s, want 2025-01-01", got)
		}
	})

	t.Run("adjacent months do not overlap", func(t *testing.T) {
		_, junEnd := MonthBounds(2024, 6, loc)
		julStart, _ := MonthBounds(2024, 7, loc)
		if junEnd+1 != julStart {
			t.Errorf("june end %d and july start %d are not adjacent", junEnd, julStart)
		}
	})
}

func TestYearBounds(t *testing.T) {
	loc := time.UTC
	start, end := YearBounds(2024, loc)

	if got := time.UnixMilli(start).In(loc); got.Year() != 2024 || got.Month() != time.January || got.Day() != 1 {
		t.Errorf("start = %s, want 2024-01-01", got)
	}
	if got := time.UnixMilli(end).In(loc); got.Year() != 2024 || got.Month() != time.December || got.Day() != 31 {
		t.Errorf("end = %s, want 2024-12-31", got)
	}
}

func TestDaysInMonth(t *testing.T) {
	tests := []struct {
		year  int
		month int
		want  int
	}{
		{2024, 1, 31},
		{2024, 2, 29}, // leap year
		{2023, 2, 28},
		{2024, 4, 30},
		{2024, 12, 31},
	}

	for _, tt := range tests {
		if got := DaysInMonth(tt.year, tt.month); got != tt.want {
			t.Errorf("DaysInMonth(%d, %d) = %d, want %d", tt.year, tt.month, got, tt.want)
		}
	}
}
