package node

import (
	"strings"
	"time"
)

// DefaultCurrency is shown in front of prices when a node has no currency set.
const DefaultCurrency = "￥"

// Special price values.
const (
	PriceNotForSale = 0
	PriceFree       = -1
)

// TrafficLimitType selects which counters count against a traffic quota.
type TrafficLimitType string

const (
	TrafficLimitUnset TrafficLimitType = ""
	TrafficLimitUp    TrafficLimitType = "up"
	TrafficLimitDown  TrafficLimitType = "down"
	TrafficLimitSum   TrafficLimitType = "sum"
)

// ParseTrafficLimitType normalizes a quota policy name. Unknown values map to
// TrafficLimitUnset so the quota section simply doesn't render.
func ParseTrafficLimitType(s string) TrafficLimitType {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "up", "upload", "upload_only":
		return TrafficLimitUp
	case "down", "download", "download_only":
		return TrafficLimitDown
	case "sum", "both", "sum_both":
		return TrafficLimitSum
	default:
		return TrafficLimitUnset
	}
}

// Metadata is the static description of a monitored node.
type Metadata struct {
	UUID             string           `yaml:"uuid" json:"uuid"`
	Name             string           `yaml:"name" json:"name"`
	Region           string           `yaml:"region" json:"region"`
	OS               string           `yaml:"os" json:"os"`
	Arch             string           `yaml:"arch" json:"arch"`
	Price            int              `yaml:"price" json:"price"`
	Currency         string           `yaml:"currency" json:"currency"`
	BillingCycle     int              `yaml:"billing_cycle" json:"billing_cycle"`
	ExpiredAt        string           `yaml:"expired_at" json:"expired_at"`
	Tags             string           `yaml:"tags" json:"tags"`
	MemTotal         int64            `yaml:"mem_total" json:"mem_total"`
	DiskTotal        int64            `yaml:"disk_total" json:"disk_total"`
	TrafficLimit     int64            `yaml:"traffic_limit" json:"traffic_limit"`
	TrafficLimitType TrafficLimitType `yaml:"traffic_limit_type" json:"traffic_limit_type"`
}

// Expiry parses ExpiredAt. ok is false when it is empty or not a valid
// RFC3339 timestamp (a plain YYYY-MM-DD date is accepted too).
func (m Metadata) Expiry() (t time.Time, ok bool) {
	s := strings.TrimSpace(m.ExpiredAt)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range []string{time.RFC3339Nano, time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// HasExpiryString reports whether an expiry was supplied at all, parseable or not.
func (m Metadata) HasExpiryString() bool {
	return strings.TrimSpace(m.ExpiredAt) != ""
}

// CurrencySymbol returns the node's currency or DefaultCurrency.
func (m Metadata) CurrencySymbol() string {
	if m.Currency == "" {
		return DefaultCurrency
	}
	return m.Currency
}

// Telemetry is the most recent live report from a node.
type Telemetry struct {
	CPU     CPUReport     `yaml:"cpu" json:"cpu"`
	RAM     UsageReport   `yaml:"ram" json:"ram"`
	Disk    UsageReport   `yaml:"disk" json:"disk"`
	Load    *LoadAverage  `yaml:"load" json:"load,omitempty"`
	Network NetworkReport `yaml:"network" json:"network"`
	Message string        `yaml:"message" json:"message,omitempty"`
}

// CPUReport carries CPU utilisation in percent.
type CPUReport struct {
	Usage float64 `yaml:"usage" json:"usage"`
}

// UsageReport carries used bytes for a capacity-bounded resource.
type UsageReport struct {
	Used int64 `yaml:"used" json:"used"`
}

// LoadAverage is the classic 1/5/15 minute load.
type LoadAverage struct {
	Load1  float64 `yaml:"load1" json:"load1"`
	Load5  float64 `yaml:"load5" json:"load5"`
	Load15 float64 `yaml:"load15" json:"load15"`
}

// NetworkReport holds instantaneous rates and cumulative counters.
type NetworkReport struct {
	Up        int64 `yaml:"up" json:"up"`
	Down      int64 `yaml:"down" json:"down"`
	TotalUp   int64 `yaml:"totalUp" json:"totalUp"`
	TotalDown int64 `yaml:"totalDown" json:"totalDown"`
}

// OrZero returns t, or a zero-valued report when t is nil.
func (t *Telemetry) OrZero() Telemetry {
	if t == nil {
		return Telemetry{}
	}
	return *t
}

// Load1 returns the 1-minute load, or 0 when no load was reported.
func (t Telemetry) Load1() float64 {
	if t.Load == nil {
		return 0
	}
	return t.Load.Load1
}
