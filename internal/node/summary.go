package node

import (
	"strings"
	"time"
)

const detailsRoutePrefix = "/instance/"

// DetailsRoute is the route a card navigates to when activated.
func DetailsRoute(uuid string) string {
	return detailsRoutePrefix + uuid
}

// ParseDetailsRoute extracts the uuid from a route built by DetailsRoute.
func ParseDetailsRoute(route string) (uuid string, ok bool) {
	uuid, ok = strings.CutPrefix(route, detailsRoutePrefix)
	if !ok || uuid == "" || strings.Contains(uuid, "/") {
		return "", false
	}
	return uuid, true
}

// Summary is everything a card displays that is derived rather than stored.
// It is rebuilt on every render.
type Summary struct {
	UUID         string       `json:"uuid"`
	Name         string       `json:"name"`
	Reported     bool         `json:"reported"`
	CPUPercent   float64      `json:"cpu_percent"`
	MemPercent   float64      `json:"mem_percent"`
	DiskPercent  float64      `json:"disk_percent"`
	Load1        float64      `json:"load1"`
	HighUsage    bool         `json:"high_usage"`
	Price        Price        `json:"price"`
	Expiry       *Urgency     `json:"expiry,omitempty"`
	Traffic      TrafficQuota `json:"traffic"`
	Tags         []Tag        `json:"tags,omitempty"`
	NetUpRate    int64        `json:"net_up_rate"`
	NetDownRate  int64        `json:"net_down_rate"`
	Message      string       `json:"message,omitempty"`
	DetailsRoute string       `json:"details_route"`
}

// Summarize derives a Summary. live may be nil when the node never
// reported; a zero record is used in its place.
func Summarize(meta Metadata, live *Telemetry, now time.Time) Summary {
	t := live.OrZero()

	memPct := UsagePercent(t.RAM.Used, meta.MemTotal)
	diskPct := UsagePercent(t.Disk.Used, meta.DiskTotal)

	return Summary{
		UUID:         meta.UUID,
		Name:         meta.Name,
		Reported:     live != nil,
		CPUPercent:   t.CPU.Usage,
		MemPercent:   memPct,
		DiskPercent:  diskPct,
		Load1:        t.Load1(),
		HighUsage:    HasHighUsage(t.CPU.Usage, memPct, diskPct),
		Price:        PriceOf(meta),
		Expiry:       ExpiryBadge(meta, now),
		Traffic:      CalculateTrafficQuota(t.Network.TotalUp, t.Network.TotalDown, meta.TrafficLimit, meta.TrafficLimitType),
		Tags:         ParseTags(meta.Tags),
		NetUpRate:    t.Network.Up,
		NetDownRate:  t.Network.Down,
		Message:      t.Message,
		DetailsRoute: DetailsRoute(meta.UUID),
	}
}
