package analytics

// AchievementID identifies one unlockable achievement.
type AchievementID string

const (
	AchievementFirstCheckIn   AchievementID = "first_check_in"
	AchievementTenCheckIns    AchievementID = "ten_check_ins"
	AchievementFiftyCheckIns  AchievementID = "fifty_check_ins"
	AchievementWeekStreak     AchievementID = "week_streak"
	AchievementMonthStreak    AchievementID = "month_streak"
	AchievementBalancedWeek   AchievementID = "balanced_week"
	AchievementFiveJournals   AchievementID = "five_journals"
	AchievementTwentyJournals AchievementID = "twenty_journals"
	AchievementPrideCollector AchievementID = "pride_collector"
	AchievementFullCircle     AchievementID = "full_circle"
)

// Counters are the aggregate totals achievements are evaluated against.
type Counters struct {
	TotalCheckIns      int
	TotalCheckOuts     int
	LongestStreak      int
	JournalEntries     int
	HighlightedEntries int
	FullShiftDays      int
	BalancedWeek       bool
}

type achievementRule struct {
	ID     AchievementID
	Earned func(Counters) bool
}

// achievementRules is the full unlock table. Rules are independent threshold
// checks, so any number can fire at once; the table order fixes the order of
// the returned set.
var achievementRules = []achievementRule{
	{AchievementFirstCheckIn, func(c Counters) bool { return c.TotalCheckIns >= 1 }},
	{AchievementTenCheckIns, func(c Counters) bool { return c.TotalCheckIns >= 10 }},
	{AchievementFiftyCheckIns, func(c Counters) bool { return c.TotalCheckIns >= 50 }},
	{AchievementWeekStreak, func(c Counters) bool { return c.LongestStreak >= 7 }},
	{AchievementMonthStreak, func(c Counters) bool { return c.LongestStreak >= 30 }},
	{AchievementBalancedWeek, func(c Counters) bool { return c.BalancedWeek && c.TotalCheckIns >= 7 }},
	{AchievementFiveJournals, func(c Counters) bool { return c.JournalEntries >= 5 }},
	{AchievementTwentyJournals, func(c Counters) bool { return c.JournalEntries >= 20 }},
	{AchievementPrideCollector, func(c Counters) bool { return c.HighlightedEntries >= 5 }},
	{AchievementFullCircle, func(c Counters) bool { return c.FullShiftDays >= 10 }},
}

// EvaluateAchievements derives the earned achievement set from the current
// counters. Nothing is stored: the set is recomputed fresh on every cycle, so
// earning is idempotent and re-derivable from history at any time.
func EvaluateAchievements(c Counters) []AchievementID {
	earned := make([]AchievementID, 0, len(achievementRules))
	for _, rule := range achievementRules {
		if rule.Earned(c) {
			earned = append(earned, rule.ID)
		}
	}
	return earned
}
