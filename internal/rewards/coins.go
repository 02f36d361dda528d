package rewards

import "fmt"

const (
	// CoinsPerActivity is paid for every completed activity.
	CoinsPerActivity = 5

	// StreakBonus is paid when a session lands exactly on a streak milestone.
	StreakBonus = 10
)

// Award is the coin payout for one session.
type Award struct {
	Coins       int
	Tier        Tier
	StreakBonus bool
	Reason      string
}

// ForSession computes the coins earned by a session. streak is the subject
// streak after the session has been applied.
func ForSession(accuracy float64, activities, streak int) Award {
	activities = max(activities, 0)
	tier := SessionTier(accuracy)

	a := Award{
		Coins: activities*CoinsPerActivity + tier.Bonus(),
		Tier:  tier,
	}
	a.Reason = fmt.Sprintf("%d activities, %s session", activities, tier.DisplayName())

	if IsStreakMilestone(streak) {
		a.Coins += StreakBonus
		a.StreakBonus = true
		a.Reason += fmt.Sprintf(", %d-session streak!", streak)
	}
	return a
}
