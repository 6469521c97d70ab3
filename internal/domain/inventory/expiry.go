package inventory

import (
	"sort"
	"time"
)

// Urgency bands for expiry classification. Business rules, kept as named
// constants so the thresholds stay in one place.
const (
	// UrgentWithinDays marks ingredients that should be used first; the
	// recommendation flow flags anything at or below this offset.
	UrgentWithinDays = 3
	// SoonWithinDays marks ingredients approaching expiry.
	SoonWithinDays = 7
)

// ExpiryBand classifies an expiry day offset for display and sorting
type ExpiryBand string

const (
	BandExpired ExpiryBand = "expired"
	BandToday   ExpiryBand = "today"
	BandUrgent  ExpiryBand = "urgent"
	BandSoon    ExpiryBand = "soon"
	BandSafe    ExpiryBand = "safe"
)

// DaysUntil returns the signed calendar-day offset from now to expiry:
// ceil((expiry - now) / 1 day) with both dates truncated to local midnight.
// Zero means "expires today"; negative means expired that many days ago.
func DaysUntil(expiry, now time.Time) int {
	e := midnight(expiry)
	n := midnight(now)
	// Count whole days between local midnights. AddDate handles DST
	// transitions where a day is not exactly 24 hours.
	days := 0
	switch {
	case e.After(n):
		for d := n; d.Before(e); d = d.AddDate(0, 0, 1) {
			days++
		}
	case n.After(e):
		for d := e; d.Before(n); d = d.AddDate(0, 0, 1) {
			days--
		}
	}
	return days
}

// Classify maps a day offset onto its urgency band
func Classify(days int) ExpiryBand {
	switch {
	case days < 0:
		return BandExpired
	case days == 0:
		return BandToday
	case days <= UrgentWithinDays:
		return BandUrgent
	case days <= SoonWithinDays:
		return BandSoon
	default:
		return BandSafe
	}
}

// SortByExpiry orders ingredients ascending by day offset so the most
// urgent items surface first. The sort is stable: items with equal
// offsets keep their existing relative order.
func SortByExpiry(ingredients []*Ingredient, now time.Time) {
	sort.SliceStable(ingredients, func(a, b int) bool {
		return ingredients[a].DaysUntilExpiry(now) < ingredients[b].DaysUntilExpiry(now)
	})
}

func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
