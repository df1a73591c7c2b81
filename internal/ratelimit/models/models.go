// Package models holds the API key tiers and quota decisions.
package models

import "time"

// Tier names the daily request budget of an API key.
type Tier string

const (
	TierDefault   Tier = "default"
	TierBronze    Tier = "bronze"
	TierSilver    Tier = "silver"
	TierGold      Tier = "gold"
	TierUnlimited Tier = "unlimited"
)

var dailyLimits = map[Tier]int{
	TierDefault:   500,
	TierBronze:    5_000,
	TierSilver:    25_000,
	TierGold:      50_000,
	TierUnlimited: 1_000_000_000,
}

// DailyLimit returns the tier's request budget per UTC day. Tiers outside the
// table, e.g. "inactive" or "suspended", have none.
func (t Tier) DailyLimit() (int, bool) {
	limit, ok := dailyLimits[t]
	return limit, ok
}

func (t Tier) String() string {
	return string(t)
}

// Profile is an API key holder.
type Profile struct {
	APIKey string
	Tier   Tier
}

// Result is the outcome of a quota check.
type Result struct {
	Allowed    bool
	Tier       Tier
	Limit      int
	Remaining  int
	ResetAt    time.Time
	RetryAfter int // seconds, only set when not allowed
}

// DayWindow returns the UTC day containing t and the instant it ends.
func DayWindow(t time.Time) (day string, end time.Time) {
	u := t.UTC()
	start := time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
	return start.Format(time.DateOnly), start.AddDate(0, 0, 1)
}
