package analytics_test

import (
	"math"
	"testing"

	"github.com/shiftwell-app/backend/internal/analytics"
	"github.com/shiftwell-app/backend/internal/models"
)

func TestWeeklyTrendShape(t *testing.T) {
	trend := analytics.WeeklyTrend(nil, today)
	if len(trend) != analytics.TrendDays {
		t.Fatalf("trend length = %d, want %d", len(trend), analytics.TrendDays)
	}
	if !trend[0].Date.Equal(daysAgo(6)) {
		t.Fatalf("trend should start 6 days back, got %v", trend[0].Date)
	}
	if !trend[6].Date.Equal(today) {
		t.Fatalf("trend should end today, got %v", trend[6].Date)
	}
	for _, point := range trend {
		if point.PreScore != nil || point.PostScore != nil {
			t.Fatalf("empty history must produce nil sides, got %+v", point)
		}
	}
}

func TestWeeklyTrendNilVersusValue(t *testing.T) {
	shifts := []models.Shift{
		shiftOn(today, preMood(5, 1, 5), nil),
		shiftOn(daysAgo(2), nil, postMood(1, 1, 5)),
	}
	trend := analytics.WeeklyTrend(shifts, today)

	last := trend[6]
	if last.PreScore == nil || math.Abs(*last.PreScore-5.0) > 1e-9 {
		t.Fatalf("today's pre score = %v, want 5.0", last.PreScore)
	}
	if last.PostScore != nil {
		t.Fatal("today has no post capture; the side must be nil, not 0")
	}

	mid := trend[4]
	if mid.PostScore == nil || math.Abs(*mid.PostScore-5.0) > 1e-9 {
		t.Fatalf("post score two days back = %v, want 5.0", mid.PostScore)
	}
	if mid.PreScore != nil {
		t.Fatal("missing pre capture must be nil")
	}
}

func TestWeeklyTrendAveragesSameDay(t *testing.T) {
	shifts := []models.Shift{
		shiftOn(today, preMood(5, 1, 5), nil),
		shiftOn(today, preMood(1, 5, 1), nil),
	}
	trend := analytics.WeeklyTrend(shifts, today)
	got := trend[6].PreScore
	if got == nil || math.Abs(*got-3.0) > 1e-9 {
		t.Fatalf("same-day scores should average: got %v, want 3.0", got)
	}
}

func TestWeeklyTrendExcludesMalformedCapture(t *testing.T) {
	// A capture missing required fields scores 0; it must not appear as a
	// real zero in the chart.
	shifts := []models.Shift{
		shiftOn(today, &models.Mood{IsPreShift: true, Energy: 4}, nil),
	}
	trend := analytics.WeeklyTrend(shifts, today)
	if trend[6].PreScore != nil {
		t.Fatalf("malformed capture must be excluded, got %v", *trend[6].PreScore)
	}
}

func TestComparisonSeriesPairsOnly(t *testing.T) {
	shifts := []models.Shift{
		shiftOn(daysAgo(0), preMood(3, 3, 3), postMood(1, 1, 5)),
		shiftOn(daysAgo(1), preMood(3, 3, 3), nil),
		shiftOn(daysAgo(2), nil, postMood(3, 3, 3)),
	}
	series := analytics.ComparisonSeries(shifts, analytics.ComparisonLimit)
	if len(series) != 1 {
		t.Fatalf("only fully-captured shifts qualify: got %d points", len(series))
	}
	if math.Abs(series[0].Improvement-2.0) > 1e-9 {
		t.Fatalf("improvement = %v, want 2.0", series[0].Improvement)
	}
}

func TestComparisonSeriesLimitAndOrder(t *testing.T) {
	var shifts []models.Shift
	for i := 0; i < 15; i++ {
		shifts = append(shifts, shiftOn(daysAgo(i), preMood(3, 3, 3), postMood(3, 3, 3)))
	}
	series := analytics.ComparisonSeries(shifts, analytics.ComparisonLimit)
	if len(series) != analytics.ComparisonLimit {
		t.Fatalf("series length = %d, want %d", len(series), analytics.ComparisonLimit)
	}
	// Most recent 10, chronological: oldest point is 9 days back.
	if !series[0].Date.Equal(daysAgo(9)) {
		t.Fatalf("first point = %v, want %v", series[0].Date, daysAgo(9))
	}
	for i := 1; i < len(series); i++ {
		if !series[i].Date.After(series[i-1].Date) {
			t.Fatalf("series must be chronological, got %v before %v", series[i-1].Date, series[i].Date)
		}
	}
}
