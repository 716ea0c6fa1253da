package analytics

import (
	"sort"
	"time"

	"github.com/shiftwell-app/backend/internal/models"
)

// Streaks computes the current and longest consecutive-day streaks of mood
// activity. A day is active when at least one shift on it carries a mood
// capture, pre or post.
//
// The current streak tolerates a single missing day: a user who has not
// checked in yet today, but was active yesterday, still sees their
// accumulated streak. It only resets once a full calendar day passes with no
// activity at all.
func Streaks(shifts []models.Shift, today time.Time) (current, longest int) {
	active := activeDays(shifts)
	current = currentStreak(active, today)
	longest = longestStreak(active, current)
	return current, longest
}

// activeDays reduces the shift history to the set of distinct calendar days
// with at least one mood capture.
func activeDays(shifts []models.Shift) map[time.Time]bool {
	active := make(map[time.Time]bool)
	for i := range shifts {
		if shifts[i].HasMood() {
			active[shifts[i].Day()] = true
		}
	}
	return active
}

func currentStreak(active map[time.Time]bool, today time.Time) int {
	cursor := today
	if !active[cursor] {
		// One-day grace window: fall back to yesterday before giving up.
		cursor = cursor.AddDate(0, 0, -1)
		if !active[cursor] {
			return 0
		}
	}

	streak := 0
	for active[cursor] {
		streak++
		cursor = cursor.AddDate(0, 0, -1)
	}
	return streak
}

// longestStreak walks the distinct active days newest-first, tracking run
// lengths of consecutive days. The in-progress streak is included in the
// comparison so that a current streak that is also the longest is reported
// correctly.
func longestStreak(active map[time.Time]bool, current int) int {
	days := make([]time.Time, 0, len(active))
	for day := range active {
		days = append(days, day)
	}
	sort.Slice(days, func(i, j int) bool { return days[i].After(days[j]) })

	longest := current
	run := 0
	for i, day := range days {
		if i > 0 && !days[i-1].AddDate(0, 0, -1).Equal(day) {
			run = 0
		}
		run++
		if run > longest {
			longest = run
		}
	}
	return longest
}
