package analytics

import (
	"sort"
	"time"

	"github.com/shiftwell-app/backend/internal/models"
)

const (
	// TrendDays is the width of the rolling weekly trend window.
	TrendDays = 7
	// ComparisonLimit caps the before/after comparison at the most recent N
	// fully-captured shifts.
	ComparisonLimit = 10
)

// DayPoint is one day of the weekly trend. A nil side means no qualifying
// capture exists for that day; 0 is a real (if extreme) score and must stay
// visually distinguishable from missing data.
type DayPoint struct {
	Date      time.Time `json:"date"`
	PreScore  *float64  `json:"pre_score"`
	PostScore *float64  `json:"post_score"`
}

// PairedPoint is one before/after pair in the comparison series.
type PairedPoint struct {
	Date        time.Time `json:"date"`
	PreScore    float64   `json:"pre_score"`
	PostScore   float64   `json:"post_score"`
	Improvement float64   `json:"improvement"`
}

// WeeklyTrend computes the mean pre and post score for each of the 7 calendar
// days ending today, inclusive.
func WeeklyTrend(shifts []models.Shift, today time.Time) []DayPoint {
	trend := make([]DayPoint, 0, TrendDays)
	for offset := TrendDays - 1; offset >= 0; offset-- {
		day := today.AddDate(0, 0, -offset)
		trend = append(trend, DayPoint{
			Date:      day,
			PreScore:  dayAverage(shifts, day, preSide),
			PostScore: dayAverage(shifts, day, postSide),
		})
	}
	return trend
}

func dayAverage(shifts []models.Shift, day time.Time, side moodSide) *float64 {
	sum := 0.0
	count := 0
	for i := range shifts {
		if !shifts[i].Day().Equal(day) {
			continue
		}
		if score, ok := side.score(&shifts[i]); ok {
			sum += score
			count++
		}
	}
	if count == 0 {
		return nil
	}
	avg := sum / float64(count)
	return &avg
}

// ComparisonSeries pairs pre and post scores for the most recent limit shifts
// that have both captures, returned in chronological order for display.
func ComparisonSeries(shifts []models.Shift, limit int) []PairedPoint {
	paired := make([]models.Shift, 0, len(shifts))
	for i := range shifts {
		if _, ok := preSide.score(&shifts[i]); !ok {
			continue
		}
		if _, ok := postSide.score(&shifts[i]); !ok {
			continue
		}
		paired = append(paired, shifts[i])
	}

	sort.Slice(paired, func(i, j int) bool { return paired[i].Date.After(paired[j].Date) })
	if len(paired) > limit {
		paired = paired[:limit]
	}

	series := make([]PairedPoint, 0, len(paired))
	for i := len(paired) - 1; i >= 0; i-- {
		pre, _ := preSide.score(&paired[i])
		post, _ := postSide.score(&paired[i])
		series = append(series, PairedPoint{
			Date:        paired[i].Date,
			PreScore:    pre,
			PostScore:   post,
			Improvement: post - pre,
		})
	}
	return series
}
