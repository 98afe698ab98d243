package node

import "time"

// UrgencyTier describes how soon a node expires.
type UrgencyTier string

const (
	UrgencyExpired  UrgencyTier = "expired"
	UrgencyLongTerm UrgencyTier = "long_term"
	UrgencyCritical UrgencyTier = "critical"
	UrgencyWarning  UrgencyTier = "warning"
	UrgencyNormal   UrgencyTier = "normal"
)

// Expiry thresholds in days.
const (
	// LongTermDays is a heuristic "effectively never" cutoff, not a calendar
	// count of 100 years.
	LongTermDays    = 36500
	CriticalMaxDays = 7
	WarningMaxDays  = 15
)

const day = 24 * time.Hour

// Urgency is the classification of an expiry relative to a point in time.
type Urgency struct {
	DaysRemaining int         `json:"days_remaining"`
	Tier          UrgencyTier `json:"tier"`
	Tone          Tone        `json:"tone"`
}

// DaysUntil returns ceil((expiry-now)/24h). The result is negative once
// expiry has passed.
func DaysUntil(expiry, now time.Time) int {
	d := expiry.Sub(now)
	days := d / day
	// Integer division truncates toward zero, which is already the ceiling
	// for negative durations.
	if d%day > 0 {
		days++
	}
	return int(days)
}

// ClassifyExpiry returns the urgency of expiry as seen at now.
func ClassifyExpiry(expiry, now time.Time) Urgency {
	days := DaysUntil(expiry, now)
	return Urgency{
		DaysRemaining: days,
		Tier:          tierForDays(days),
		Tone:          toneForDays(days),
	}
}

func tierForDays(days int) UrgencyTier {
	switch {
	case days <= 0:
		return UrgencyExpired
	case days > LongTermDays:
		return UrgencyLongTerm
	case days <= CriticalMaxDays:
		return UrgencyCritical
	case days <= WarningMaxDays:
		return UrgencyWarning
	default:
		return UrgencyNormal
	}
}

// toneForDays only looks at the color bands; long-term expiries land in
// ToneNormal like any other distant date.
func toneForDays(days int) Tone {
	switch {
	case days <= CriticalMaxDays:
		return ToneCritical
	case days <= WarningMaxDays:
		return ToneWarning
	default:
		return ToneNormal
	}
}

// ExpiryBadge returns the urgency badge for a node, or nil when the badge is
// hidden: nodes without a price or without a parseable expiry show none.
func ExpiryBadge(m Metadata, now time.Time) *Urgency {
	if m.Price == PriceNotForSale {
		return nil
	}
	expiry, ok := m.Expiry()
	if !ok {
		return nil
	}
	u := ClassifyExpiry(expiry, now)
	return &u
}
