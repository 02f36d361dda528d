package rewards

// Tier grades a session by accuracy for the coin bonus.
type Tier string

const (
	TierBronze   Tier = "bronze"
	TierSilver   Tier = "silver"
	TierGold     Tier = "gold"
	TierPlatinum Tier = "platinum"
)

// DisplayName returns a human-readable label for the tier.
func (t Tier) DisplayName() string {
	switch t {
	case TierBronze:
		return "Bronze"
	case TierSilver:
		return "Silver"
	case TierGold:
		return "Gold"
	case TierPlatinum:
		return "Platinum"
	default:
		return string(t)
	}
}

// Bonus returns the coin bonus for the tier.
func (t Tier) Bonus() int {
	switch t {
	case TierPlatinum:
		return 10
	case TierGold:
		return 6
	case TierSilver:
		return 3
	default:
		return 1
	}
}

// SessionTier returns the tier for a session accuracy percentage.
func SessionTier(accuracy float64) Tier {
	switch {
	case accuracy >= 90:
		return TierPlatinum
	case accuracy >= 75:
		return TierGold
	case accuracy >= 50:
		return TierSilver
	default:
		return TierBronze
	}
}
