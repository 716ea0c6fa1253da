package analytics_test

import (
	"testing"

	"github.com/shiftwell-app/backend/internal/analytics"
)

func contains(earned []analytics.AchievementID, id analytics.AchievementID) bool {
	for _, e := range earned {
		if e == id {
			return true
		}
	}
	return false
}

func TestEvaluateAchievementsEmptyCounters(t *testing.T) {
	earned := analytics.EvaluateAchievements(analytics.Counters{})
	if len(earned) != 0 {
		t.Fatalf("expected no achievements for zero counters, got %v", earned)
	}
}

func TestEvaluateAchievementsThresholds(t *testing.T) {
	tests := []struct {
		name     string
		counters analytics.Counters
		want     analytics.AchievementID
		absent   bool
	}{
		{"first check-in at 1", analytics.Counters{TotalCheckIns: 1}, analytics.AchievementFirstCheckIn, false},
		{"ten check-ins below threshold", analytics.Counters{TotalCheckIns: 9}, analytics.AchievementTenCheckIns, true},
		{"ten check-ins at threshold", analytics.Counters{TotalCheckIns: 10}, analytics.AchievementTenCheckIns, false},
		{"fifty check-ins", analytics.Counters{TotalCheckIns: 50}, analytics.AchievementFiftyCheckIns, false},
		{"week streak", analytics.Counters{LongestStreak: 7}, analytics.AchievementWeekStreak, false},
		{"month streak below", analytics.Counters{LongestStreak: 29}, analytics.AchievementMonthStreak, true},
		{"month streak", analytics.Counters{LongestStreak: 30}, analytics.AchievementMonthStreak, false},
		{"five journals", analytics.Counters{JournalEntries: 5}, analytics.AchievementFiveJournals, false},
		{"twenty journals", analytics.Counters{JournalEntries: 20}, analytics.AchievementTwentyJournals, false},
		{"pride collector", analytics.Counters{HighlightedEntries: 5}, analytics.AchievementPrideCollector, false},
		{"full circle at 9", analytics.Counters{FullShiftDays: 9}, analytics.AchievementFullCircle, true},
		{"full circle at 10", analytics.Counters{FullShiftDays: 10}, analytics.AchievementFullCircle, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			earned := analytics.EvaluateAchievements(tt.counters)
			if got := contains(earned, tt.want); got == tt.absent {
				t.Fatalf("%s: presence of %q = %v, want %v", tt.name, tt.want, got, !tt.absent)
			}
		})
	}
}

func TestBalancedWeekRequiresSevenCheckIns(t *testing.T) {
	earned := analytics.EvaluateAchievements(analytics.Counters{BalancedWeek: true, TotalCheckIns: 6})
	if contains(earned, analytics.AchievementBalancedWeek) {
		t.Fatal("balanced week must not fire below 7 total check-ins")
	}

	earned = analytics.EvaluateAchievements(analytics.Counters{BalancedWeek: true, TotalCheckIns: 7})
	if !contains(earned, analytics.AchievementBalancedWeek) {
		t.Fatal("balanced week should fire at 7 check-ins with a balanced window")
	}
}

// Raising one counter never removes an achievement earned from others.
func TestEvaluateAchievementsMonotonic(t *testing.T) {
	base := analytics.Counters{
		TotalCheckIns:  9,
		LongestStreak:  7,
		JournalEntries: 5,
	}
	before := analytics.EvaluateAchievements(base)

	base.TotalCheckIns = 10
	after := analytics.EvaluateAchievements(base)

	if !contains(after, analytics.AchievementTenCheckIns) {
		t.Fatal("ten check-ins should appear when the counter reaches 10")
	}
	for _, id := range before {
		if !contains(after, id) {
			t.Fatalf("achievement %q disappeared after a counter increase", id)
		}
	}
}
