package analytics

import (
	"fmt"
	"time"

	"github.com/shiftwell-app/backend/internal/models"
)

// InsightPolarity tags an insight as good news, a flag, or neither.
type InsightPolarity string

const (
	PolarityPositive InsightPolarity = "positive"
	PolarityWarning  InsightPolarity = "warning"
	PolarityNeutral  InsightPolarity = "neutral"
)

// Insight is an ephemeral, human-readable observation about the user's mood
// and journaling patterns. Insights are never persisted; callers redisplay
// them by recomputation.
type Insight struct {
	Icon        string          `json:"icon"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Polarity    InsightPolarity `json:"polarity"`
}

// MinShiftsForInsights gates pattern detection on a minimum sample size.
const MinShiftsForInsights = 5

// InsightData is the input to one insight generation pass.
type InsightData struct {
	Shifts                 []models.Shift
	Entries                []models.JournalEntry
	AveragePreMood         float64
	AveragePostMood        float64
	MoodImprovementPercent float64
	CurrentStreak          int
}

type insightRule func(InsightData) *Insight

// insightRules is the ordered heuristic table. Rules are non-exclusive:
// several can fire in one pass, in table order.
var insightRules = []insightRule{
	moodImprovementInsight,
	stabilityInsight,
	highStressInsight,
	journalingCorrelationInsight,
	lowEnergyInsight,
}

// GenerateInsights evaluates the heuristic table over the history. With fewer
// than MinShiftsForInsights shifts it emits exactly one neutral "need more
// data" insight and stops.
func GenerateInsights(data InsightData) []Insight {
	if len(data.Shifts) < MinShiftsForInsights {
		return []Insight{{
			Icon:        "📊",
			Title:       "Keep logging",
			Description: fmt.Sprintf("Log at least %d shifts to unlock personalized insights about your wellbeing.", MinShiftsForInsights),
			Polarity:    PolarityNeutral,
		}}
	}

	insights := make([]Insight, 0, len(insightRules))
	for _, rule := range insightRules {
		if insight := rule(data); insight != nil {
			insights = append(insights, *insight)
		}
	}
	return insights
}

func moodImprovementInsight(data InsightData) *Insight {
	switch {
	case data.MoodImprovementPercent > 10:
		return &Insight{
			Icon:        "📈",
			Title:       "Work lifts your mood",
			Description: fmt.Sprintf("Your post-shift mood averages %.0f%% higher than before work.", data.MoodImprovementPercent),
			Polarity:    PolarityPositive,
		}
	case data.MoodImprovementPercent < -10:
		return &Insight{
			Icon:        "📉",
			Title:       "Shifts are weighing on you",
			Description: fmt.Sprintf("Your post-shift mood averages %.0f%% lower than before work. Consider what drains you most during shifts.", -data.MoodImprovementPercent),
			Polarity:    PolarityWarning,
		}
	}
	return nil
}

func stabilityInsight(data InsightData) *Insight {
	if data.CurrentStreak < 3 {
		return nil
	}
	return &Insight{
		Icon:        "🔥",
		Title:       "Consistent check-ins",
		Description: fmt.Sprintf("You've checked in %d days in a row. Regular tracking makes your trends more reliable.", data.CurrentStreak),
		Polarity:    PolarityPositive,
	}
}

func highStressInsight(data InsightData) *Insight {
	total := len(data.Shifts)
	stressed := 0
	for i := range data.Shifts {
		pre := data.Shifts[i].PreMood
		if pre != nil && pre.HasPreShiftData() && pre.Stress >= 4 {
			stressed++
		}
	}
	if total < MinShiftsForInsights || stressed*3 <= total {
		return nil
	}
	return &Insight{
		Icon:        "⚠️",
		Title:       "High stress before work",
		Description: fmt.Sprintf("You reported high stress before %d of your %d shifts. A short pre-shift wind-down routine could help.", stressed, total),
		Polarity:    PolarityWarning,
	}
}

// journalingCorrelationInsight compares post-shift scores on journaled days
// against non-journaled days. It only speaks with at least 3 journaled and 1
// non-journaled qualifying shift.
func journalingCorrelationInsight(data InsightData) *Insight {
	journaledDays := make(map[time.Time]bool)
	for i := range data.Entries {
		journaledDays[data.Entries[i].Day()] = true
	}

	var journaledSum, plainSum float64
	var journaledCount, plainCount int
	for i := range data.Shifts {
		score, ok := postSide.score(&data.Shifts[i])
		if !ok {
			continue
		}
		if journaledDays[data.Shifts[i].Day()] {
			journaledSum += score
			journaledCount++
		} else {
			plainSum += score
			plainCount++
		}
	}

	if journaledCount < 3 || plainCount < 1 {
		return nil
	}

	diff := journaledSum/float64(journaledCount) - plainSum/float64(plainCount)
	if diff <= 0.5 {
		return nil
	}
	return &Insight{
		Icon:        "✍️",
		Title:       "Journaling helps",
		Description: fmt.Sprintf("Your post-shift mood averages %.1f points higher on days you journal.", diff),
		Polarity:    PolarityPositive,
	}
}

func lowEnergyInsight(data InsightData) *Insight {
	total := len(data.Shifts)
	lowEnergy := 0
	for i := range data.Shifts {
		pre := data.Shifts[i].PreMood
		if pre != nil && pre.HasPreShiftData() && pre.Energy <= 2 {
			lowEnergy++
		}
	}
	if total < MinShiftsForInsights || lowEnergy*2 <= total {
		return nil
	}
	return &Insight{
		Icon:        "🪫",
		Title:       "Running on empty",
		Description: fmt.Sprintf("You started %d of your %d shifts low on energy. Your rest between shifts may not be enough.", lowEnergy, total),
		Polarity:    PolarityWarning,
	}
}
