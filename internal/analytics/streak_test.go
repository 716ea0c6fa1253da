package analytics_test

import (
	"testing"
	"time"

	"github.com/shiftwell-app/backend/internal/analytics"
	"github.com/shiftwell-app/backend/internal/models"
)

func shiftsOnDays(days ...time.Time) []models.Shift {
	shifts := make([]models.Shift, 0, len(days))
	for _, day := range days {
		shifts = append(shifts, shiftOn(day, preMood(3, 3, 3), nil))
	}
	return shifts
}

func TestStreaksEmptyHistory(t *testing.T) {
	current, longest := analytics.Streaks(nil, today)
	if current != 0 || longest != 0 {
		t.Fatalf("expected 0/0 for empty history, got %d/%d", current, longest)
	}
}

func TestStreaksTodayOnly(t *testing.T) {
	current, longest := analytics.Streaks(shiftsOnDays(today), today)
	if current != 1 {
		t.Fatalf("a single active day today should count as streak 1, got %d", current)
	}
	if longest != 1 {
		t.Fatalf("longest = %d, want 1", longest)
	}
}

func TestStreaksFiveConsecutiveDaysEndingToday(t *testing.T) {
	shifts := shiftsOnDays(today, daysAgo(1), daysAgo(2), daysAgo(3), daysAgo(4))
	current, longest := analytics.Streaks(shifts, today)
	if current != 5 {
		t.Fatalf("current = %d, want 5", current)
	}
	if longest != 5 {
		t.Fatalf("longest = %d, want 5", longest)
	}
}

func TestStreaksGraceWindow(t *testing.T) {
	// Active yesterday and the six days before, but not yet today.
	shifts := shiftsOnDays(daysAgo(1), daysAgo(2), daysAgo(3), daysAgo(4), daysAgo(5), daysAgo(6), daysAgo(7))
	current, _ := analytics.Streaks(shifts, today)
	if current != 7 {
		t.Fatalf("grace window should preserve the streak: current = %d, want 7", current)
	}
}

func TestStreaksResetAfterFullMissedDay(t *testing.T) {
	// Last activity two days ago: the grace window does not reach that far.
	shifts := shiftsOnDays(daysAgo(2), daysAgo(3), daysAgo(4))
	current, longest := analytics.Streaks(shifts, today)
	if current != 0 {
		t.Fatalf("current = %d, want 0 after a fully missed day", current)
	}
	if longest != 3 {
		t.Fatalf("longest = %d, want 3", longest)
	}
}

func TestStreaksLongestIsHistoricalRun(t *testing.T) {
	// A 4-day run two weeks back beats the current 2-day streak.
	shifts := shiftsOnDays(
		today, daysAgo(1),
		daysAgo(14), daysAgo(15), daysAgo(16), daysAgo(17),
	)
	current, longest := analytics.Streaks(shifts, today)
	if current != 2 {
		t.Fatalf("current = %d, want 2", current)
	}
	if longest != 4 {
		t.Fatalf("longest = %d, want 4", longest)
	}
}

func TestStreaksGapBreaksRun(t *testing.T) {
	shifts := shiftsOnDays(today, daysAgo(1), daysAgo(3))
	current, longest := analytics.Streaks(shifts, today)
	if current != 2 {
		t.Fatalf("current = %d, want 2: the gap at -2 must stop the walk", current)
	}
	if longest != 2 {
		t.Fatalf("longest = %d, want 2", longest)
	}
}

func TestStreaksDuplicateShiftsOneDay(t *testing.T) {
	// Two shifts on the same day still count as one active day.
	shifts := append(shiftsOnDays(today, today), shiftsOnDays(daysAgo(1))...)
	current, _ := analytics.Streaks(shifts, today)
	if current != 2 {
		t.Fatalf("current = %d, want 2", current)
	}
}

func TestStreaksMoodlessShiftIsInactive(t *testing.T) {
	shifts := []models.Shift{
		shiftOn(today, nil, nil),
		shiftOn(daysAgo(1), preMood(3, 3, 3), nil),
	}
	current, _ := analytics.Streaks(shifts, today)
	if current != 1 {
		t.Fatalf("a shift without any mood must not count as active: current = %d, want 1", current)
	}
}

func TestStreaksLongestNeverBelowCurrent(t *testing.T) {
	histories := [][]models.Shift{
		nil,
		shiftsOnDays(today),
		shiftsOnDays(today, daysAgo(1), daysAgo(2)),
		shiftsOnDays(daysAgo(1), daysAgo(5), daysAgo(6)),
	}
	for _, shifts := range histories {
		current, longest := analytics.Streaks(shifts, today)
		if longest < current {
			t.Fatalf("longest (%d) < current (%d)", longest, current)
		}
	}
}
