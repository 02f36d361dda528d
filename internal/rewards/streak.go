package rewards

// streakMilestones are the early streak lengths that pay a bonus. Beyond the
// last one, every multiple of 5 pays.
var streakMilestones = []int{3, 5, 10, 15, 20}

// NextStreakMilestone returns the next milestone above the current streak length.
func NextStreakMilestone(current int) int {
	for _, m := range streakMilestones {
		if m > current {
			return m
		}
	}
	return ((current / 5) + 1) * 5
}

// IsStreakMilestone reports whether streak is exactly a milestone.
func IsStreakMilestone(streak int) bool {
	if streak <= 0 {
		return false
	}
	return NextStreakMilestone(streak-1) == streak
}
