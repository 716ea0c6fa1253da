package analytics_test

import (
	"context"
	"math"
	"reflect"
	"testing"

	"github.com/google/uuid"
	"github.com/shiftwell-app/backend/internal/analytics"
	"github.com/shiftwell-app/backend/internal/models"
)

func TestComputeEmptyHistory(t *testing.T) {
	engine := analytics.NewEngineWithClock(&fixtureRepo{}, fixedClock)
	summary := engine.Compute(context.Background(), uuid.New())

	if summary.CurrentStreak != 0 || summary.LongestStreak != 0 {
		t.Fatalf("streaks = %d/%d, want 0/0", summary.CurrentStreak, summary.LongestStreak)
	}
	if summary.TotalCheckIns != 0 || summary.TotalCheckOuts != 0 {
		t.Fatalf("counts = %d/%d, want 0/0", summary.TotalCheckIns, summary.TotalCheckOuts)
	}
	if summary.AveragePreMood != 0 || summary.AveragePostMood != 0 || summary.MoodImprovementPercent != 0 {
		t.Fatalf("averages must be 0.0 for empty history, got %v/%v/%v",
			summary.AveragePreMood, summary.AveragePostMood, summary.MoodImprovementPercent)
	}
	if len(summary.EarnedAchievements) != 0 {
		t.Fatalf("expected no achievements, got %v", summary.EarnedAchievements)
	}
	if len(summary.Insights) != 1 || summary.Insights[0].Polarity != analytics.PolarityNeutral {
		t.Fatalf("expected exactly the need-more-data insight, got %v", summary.Insights)
	}
	if len(summary.WeeklyTrend) != analytics.TrendDays {
		t.Fatalf("trend length = %d, want %d", len(summary.WeeklyTrend), analytics.TrendDays)
	}
	if len(summary.ComparisonSeries) != 0 {
		t.Fatalf("expected empty comparison series, got %d points", len(summary.ComparisonSeries))
	}
}

func TestComputeDeterministic(t *testing.T) {
	repo := &fixtureRepo{
		shifts: []models.Shift{
			shiftOn(today, preMood(4, 2, 5), postMood(2, 2, 4)),
			shiftOn(daysAgo(1), preMood(3, 3, 3), postMood(3, 3, 3)),
			shiftOn(daysAgo(2), preMood(2, 4, 2), nil),
			shiftOn(daysAgo(4), nil, postMood(4, 4, 2)),
			shiftOn(daysAgo(5), preMood(5, 1, 5), postMood(1, 1, 5)),
		},
		entries: []models.JournalEntry{
			journalOn(today, "made it through"),
			journalOn(daysAgo(1)),
		},
	}
	engine := analytics.NewEngineWithClock(repo, fixedClock)

	first := engine.Compute(context.Background(), uuid.New())
	second := engine.Compute(context.Background(), uuid.New())
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("unchanged snapshot must yield identical results:\nfirst:  %+v\nsecond: %+v", first, second)
	}
}

func TestComputeLongestAtLeastCurrent(t *testing.T) {
	repo := &fixtureRepo{
		shifts: []models.Shift{
			shiftOn(today, preMood(3, 3, 3), nil),
			shiftOn(daysAgo(1), preMood(3, 3, 3), nil),
			shiftOn(daysAgo(3), preMood(3, 3, 3), nil),
		},
	}
	engine := analytics.NewEngineWithClock(repo, fixedClock)
	summary := engine.Compute(context.Background(), uuid.New())
	if summary.LongestStreak < summary.CurrentStreak {
		t.Fatalf("longest (%d) < current (%d)", summary.LongestStreak, summary.CurrentStreak)
	}
}

func TestComputeFullCircleScenario(t *testing.T) {
	// 11 shifts, 10 fully captured.
	var shifts []models.Shift
	for i := 0; i < 10; i++ {
		shifts = append(shifts, shiftOn(daysAgo(i), preMood(3, 3, 3), postMood(3, 3, 3)))
	}
	shifts = append(shifts, shiftOn(daysAgo(10), preMood(3, 3, 3), nil))

	engine := analytics.NewEngineWithClock(&fixtureRepo{shifts: shifts}, fixedClock)
	summary := engine.Compute(context.Background(), uuid.New())
	if !containsAchievement(summary, analytics.AchievementFullCircle) {
		t.Fatalf("full circle expected with 10 complete shifts, got %v", summary.EarnedAchievements)
	}

	// With only 9 complete shifts it must be absent.
	shifts[9].PostMood = nil
	shifts[9].PostMoodID = nil
	summary = engine.Compute(context.Background(), uuid.New())
	if containsAchievement(summary, analytics.AchievementFullCircle) {
		t.Fatal("full circle must not fire with 9 complete shifts")
	}
}

func TestComputeAveragesAndImprovement(t *testing.T) {
	repo := &fixtureRepo{
		shifts: []models.Shift{
			// pre 3.0, post 4.0 on each of 5 days.
			shiftOn(daysAgo(0), preMood(3, 3, 3), postMood(2, 2, 4)),
			shiftOn(daysAgo(1), preMood(3, 3, 3), postMood(2, 2, 4)),
			shiftOn(daysAgo(2), preMood(3, 3, 3), postMood(2, 2, 4)),
			shiftOn(daysAgo(3), preMood(3, 3, 3), postMood(2, 2, 4)),
			shiftOn(daysAgo(4), preMood(3, 3, 3), postMood(2, 2, 4)),
		},
	}
	engine := analytics.NewEngineWithClock(repo, fixedClock)
	summary := engine.Compute(context.Background(), uuid.New())

	if math.Abs(summary.AveragePreMood-3.0) > 1e-9 {
		t.Fatalf("avg pre = %v, want 3.0", summary.AveragePreMood)
	}
	if math.Abs(summary.AveragePostMood-4.0) > 1e-9 {
		t.Fatalf("avg post = %v, want 4.0", summary.AveragePostMood)
	}
	want := (4.0 - 3.0) / 3.0 * 100
	if math.Abs(summary.MoodImprovementPercent-want) > 1e-9 {
		t.Fatalf("improvement = %v, want %v", summary.MoodImprovementPercent, want)
	}
	if summary.TotalCheckIns != 5 || summary.TotalCheckOuts != 5 {
		t.Fatalf("counts = %d/%d, want 5/5", summary.TotalCheckIns, summary.TotalCheckOuts)
	}
}

func TestComputeFetchFailureDegradesToEmpty(t *testing.T) {
	engine := analytics.NewEngineWithClock(&fixtureRepo{fail: true}, fixedClock)
	summary := engine.Compute(context.Background(), uuid.New())
	if summary.TotalCheckIns != 0 || len(summary.Insights) != 1 {
		t.Fatalf("a failed fetch must degrade to the empty-history summary, got %+v", summary)
	}
}

func TestComputeJournalCounters(t *testing.T) {
	repo := &fixtureRepo{
		entries: []models.JournalEntry{
			journalOn(daysAgo(0), "nailed the handover"),
			journalOn(daysAgo(1), "stayed calm"),
			journalOn(daysAgo(2), "helped a colleague"),
			journalOn(daysAgo(3), "good night shift"),
			journalOn(daysAgo(4), "made someone laugh"),
			journalOn(daysAgo(5)),
		},
	}
	engine := analytics.NewEngineWithClock(repo, fixedClock)
	summary := engine.Compute(context.Background(), uuid.New())

	if !containsAchievement(summary, analytics.AchievementFiveJournals) {
		t.Fatalf("five journals expected with 6 entries, got %v", summary.EarnedAchievements)
	}
	if !containsAchievement(summary, analytics.AchievementPrideCollector) {
		t.Fatalf("pride collector expected with 5 highlighted entries, got %v", summary.EarnedAchievements)
	}
}

func containsAchievement(summary *analytics.Summary, id analytics.AchievementID) bool {
	for _, earned := range summary.EarnedAchievements {
		if earned == id {
			return true
		}
	}
	return false
}
