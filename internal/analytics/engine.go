package analytics

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shiftwell-app/backend/internal/models"
)

// Repository is the read-only snapshot source the engine computes over.
// Implementations must return internally consistent collections: both fetches
// of a single compute cycle should reflect the same point in time.
type Repository interface {
	FetchShifts(ctx context.Context, userID uuid.UUID) ([]models.Shift, error)
	FetchJournalEntries(ctx context.Context, userID uuid.UUID) ([]models.JournalEntry, error)
}

// Engine derives wellbeing statistics from a user's raw shift, mood and
// journal history. It is stateless between calls and never mutates or
// persists anything: every compute cycle fetches one snapshot and transforms
// it into a fresh Summary.
type Engine struct {
	repo Repository
	now  func() time.Time
}

func NewEngine(repo Repository) *Engine {
	return &Engine{repo: repo, now: time.Now}
}

// NewEngineWithClock builds an engine with an injected clock, so tests can
// pin "today" to an arbitrary value.
func NewEngineWithClock(repo Repository, now func() time.Time) *Engine {
	return &Engine{repo: repo, now: now}
}

// Summary is the immutable result of one compute cycle.
type Summary struct {
	CurrentStreak          int             `json:"current_streak"`
	LongestStreak          int             `json:"longest_streak"`
	TotalCheckIns          int             `json:"total_check_ins"`
	TotalCheckOuts         int             `json:"total_check_outs"`
	AveragePreMood         float64         `json:"average_pre_mood"`
	AveragePostMood        float64         `json:"average_post_mood"`
	MoodImprovementPercent float64         `json:"mood_improvement_percent"`
	EarnedAchievements     []AchievementID `json:"earned_achievements"`
	Insights               []Insight       `json:"insights"`
	WeeklyTrend            []DayPoint      `json:"weekly_trend"`
	ComparisonSeries       []PairedPoint   `json:"comparison_series"`
}

// Compute runs one full compute cycle for a user. A failed fetch degrades to
// an empty collection rather than propagating the fault, so the worst outcome
// is a sparse or zero-valued summary.
func (e *Engine) Compute(ctx context.Context, userID uuid.UUID) *Summary {
	shifts, err := e.repo.FetchShifts(ctx, userID)
	if err != nil {
		slog.Warn("fetching shifts failed, computing over empty history", "user_id", userID, "error", err)
		shifts = nil
	}

	entries, err := e.repo.FetchJournalEntries(ctx, userID)
	if err != nil {
		slog.Warn("fetching journal entries failed, computing over empty history", "user_id", userID, "error", err)
		entries = nil
	}

	return e.compute(shifts, entries)
}

func (e *Engine) compute(shifts []models.Shift, entries []models.JournalEntry) *Summary {
	today := startOfDay(e.now())

	current, longest := Streaks(shifts, today)

	avgPre := averageScore(shifts, preSide)
	avgPost := averageScore(shifts, postSide)

	improvement := 0.0
	if avgPre > 0 {
		improvement = (avgPost - avgPre) / avgPre * 100
	}

	counters := Counters{
		TotalCheckIns:      countMoods(shifts, preSide),
		TotalCheckOuts:     countMoods(shifts, postSide),
		LongestStreak:      longest,
		JournalEntries:     len(entries),
		HighlightedEntries: countHighlighted(entries),
		FullShiftDays:      countComplete(shifts),
		BalancedWeek:       isBalancedWeek(shifts, today),
	}

	return &Summary{
		CurrentStreak:          current,
		LongestStreak:          longest,
		TotalCheckIns:          counters.TotalCheckIns,
		TotalCheckOuts:         counters.TotalCheckOuts,
		AveragePreMood:         avgPre,
		AveragePostMood:        avgPost,
		MoodImprovementPercent: improvement,
		EarnedAchievements:     EvaluateAchievements(counters),
		Insights: GenerateInsights(InsightData{
			Shifts:                 shifts,
			Entries:                entries,
			AveragePreMood:         avgPre,
			AveragePostMood:        avgPost,
			MoodImprovementPercent: improvement,
			CurrentStreak:          current,
		}),
		WeeklyTrend:      WeeklyTrend(shifts, today),
		ComparisonSeries: ComparisonSeries(shifts, ComparisonLimit),
	}
}

// moodSide selects which capture of a shift a computation looks at.
type moodSide int

const (
	preSide moodSide = iota
	postSide
)

// mood returns the shift's capture for the given side, or nil.
func (side moodSide) mood(s *models.Shift) *models.Mood {
	if side == preSide {
		return s.PreMood
	}
	return s.PostMood
}

// score returns the shift's score for the given side and whether the capture
// exists with all required fields. Malformed captures report ok=false so they
// are excluded from aggregation instead of dragging averages toward zero.
func (side moodSide) score(s *models.Shift) (float64, bool) {
	m := side.mood(s)
	if m == nil {
		return 0, false
	}
	if side == preSide {
		if !m.HasPreShiftData() {
			return 0, false
		}
		return m.PreShiftScore(), true
	}
	if !m.HasPostShiftData() {
		return 0, false
	}
	return m.PostShiftScore(), true
}

func countMoods(shifts []models.Shift, side moodSide) int {
	count := 0
	for i := range shifts {
		if side.mood(&shifts[i]) != nil {
			count++
		}
	}
	return count
}

func countComplete(shifts []models.Shift) int {
	count := 0
	for i := range shifts {
		if shifts[i].IsComplete() {
			count++
		}
	}
	return count
}

func countHighlighted(entries []models.JournalEntry) int {
	count := 0
	for i := range entries {
		if entries[i].HasHighlights() {
			count++
		}
	}
	return count
}

// averageScore computes the mean score over shifts that have a well-formed
// capture on the given side, or 0 when none do.
func averageScore(shifts []models.Shift, side moodSide) float64 {
	sum := 0.0
	count := 0
	for i := range shifts {
		if score, ok := side.score(&shifts[i]); ok {
			sum += score
			count++
		}
	}
	if count == 0 {
		return 0
	}
	return sum / float64(count)
}

// isBalancedWeek reports whether every score captured in the trailing 7
// calendar days stayed at or above 2.0.
func isBalancedWeek(shifts []models.Shift, today time.Time) bool {
	windowStart := today.AddDate(0, 0, -6)
	for i := range shifts {
		day := shifts[i].Day()
		if day.Before(windowStart) || day.After(today) {
			continue
		}
		for _, side := range []moodSide{preSide, postSide} {
			if score, ok := side.score(&shifts[i]); ok && score < 2.0 {
				return false
			}
		}
	}
	return true
}

func startOfDay(t time.Time) time.Time {
	return t.UTC().Truncate(24 * time.Hour)
}
