package rewards

import (
	"strings"
	"testing"
)

func TestNextStreakMilestone(t *testing.T) {
	tests := []struct {
		current int
		want    int
	}{
		{0, 3},
		{2, 3},
		{3, 5},
		{4, 5},
		{5, 10},
		{9, 10},
		{10, 15},
		{15, 20},
		{19, 20},
		{20, 25},
		{24, 25},
		{25, 30},
	}

	for _, tt := range tests {
		got := NextStreakMilestone(tt.current)
		if got != tt.want {
			t.Errorf("NextStreakMilestone(%d) = %d, want %d", tt.current, got, tt.want)
		}
	}
}

func TestIsStreakMilestone(t *testing.T) {
	yes := []int{3, 5, 10, 15, 20, 25, 30}
	no := []int{-1, 0, 1, 2, 4, 6, 11, 21, 26}
	for _, s := range yes {
		if !IsStreakMilestone(s) {
			t.Errorf("IsStreakMilestone(%d) = false, want true", s)
		}
	}
	for _, s := range no {
		if IsStreakMilestone(s) {
			t.Errorf("IsStreakMilestone(%d) = true, want false", s)
		}
	}
}

func TestSessionTier(t *testing.T) {
	tests := []struct {
		accuracy float64
		want     Tier
	}{
		{0, TierBronze},
		{49.9, TierBronze},
		{50, TierSilver},
		{74.9, TierSilver},
		{75, TierGold},
		{89.9, TierGold},
		{90, TierPlatinum},
		{100, TierPlatinum},
	}
	for _, tt := range tests {
		if got := SessionTier(tt.accuracy); got != tt.want {
			t.Errorf("SessionTier(%.1f) = %q, want %q", tt.accuracy, got, tt.want)
		}
	}
}

func TestForSession(t *testing.T) {
	tests := []struct {
		name       string
		accuracy   float64
		activities int
		streak     int
		wantCoins  int
		wantBonus  bool
	}{
		{"poor session", 20, 1, 0, 5 + 1, false},
		{"gold session", 80, 2, 1, 10 + 6, false},
		{"platinum on milestone", 95, 1, 3, 5 + 10 + StreakBonus, true},
		{"negative activities clamp", 60, -4, 0, 3, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := ForSession(tt.accuracy, tt.activities, tt.streak)
			if a.Coins != tt.wantCoins {
				t.Errorf("Coins = %d, want %d", a.Coins, tt.wantCoins)
			}
			if a.StreakBonus != tt.wantBonus {
				t.Errorf("StreakBonus = %v, want %v", a.StreakBonus, tt.wantBonus)
			}
			if tt.wantBonus && !strings.Contains(a.Reason, "streak") {
				t.Errorf("Reason %q should mention the streak", a.Reason)
			}
		})
	}
}
