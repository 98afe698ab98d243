package card

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/rileyhilliard/nodeboard/internal/i18n"
	"github.com/rileyhilliard/nodeboard/internal/node"
)

// FormatBytes formats a byte count with binary units (e.g. "1.5 GiB").
// Negative counts render as "0 B".
func FormatBytes(n int64) string {
	if n < 0 {
		n = 0
	}
	return humanize.IBytes(uint64(n))
}

// FormatRate formats a bytes-per-second rate.
func FormatRate(bytesPerSec int64) string {
	return FormatBytes(bytesPerSec) + "/s"
}

// FormatPercent formats a percentage with one decimal place.
func FormatPercent(p float64) string {
	return strconv.FormatFloat(p, 'f', 1, 64) + "%"
}

// CycleText returns the localized period of a billing cycle, e.g. "month"
// or "45 days".
func CycleText(loc i18n.Localizer, p node.BillingPeriod) string {
	if p.Category == node.BillingCustom {
		return fmt.Sprintf("%d %s", p.Days, loc.T("nodeCard.time_day", nil))
	}
	return loc.T("common."+string(p.Category), nil)
}

// PriceText returns the price badge text, or "" when the node is not for
// sale.
func PriceText(loc i18n.Localizer, p node.Price) string {
	if !p.Visible {
		return ""
	}
	if p.Free {
		return loc.T("common.free", nil)
	}
	return fmt.Sprintf("%s%d/%s", p.Currency, p.Amount, CycleText(loc, p.Period))
}

// ExpiryText returns the expiry badge text.
func ExpiryText(loc i18n.Localizer, u node.Urgency) string {
	switch u.Tier {
	case node.UrgencyExpired:
		return loc.T("common.expired", nil)
	case node.UrgencyLongTerm:
		return loc.T("common.long_term", nil)
	default:
		return loc.T("common.expired_in", map[string]any{"days": u.DaysRemaining})
	}
}

// RegionFlag turns a two-letter region code into its flag emoji. Anything
// that is not two ASCII letters is returned unchanged.
func RegionFlag(region string) string {
	code := strings.ToUpper(strings.TrimSpace(region))
	if len(code) != 2 {
		return region
	}
	var b strings.Builder
	for _, r := range code {
		if r < 'A' || r > 'Z' {
			return region
		}
		b.WriteRune(0x1F1E6 + (r - 'A'))
	}
	return b.String()
}
