package node

// Traffic quota tone thresholds, in percent of the limit.
const (
	TrafficCriticalPercent = 90.0
	TrafficWarningPercent  = 70.0
	TrafficElevatedPercent = 50.0
)

// TrafficQuota is the quota consumption of a node.
type TrafficQuota struct {
	// Limited is true when the quota section should render at all.
	Limited   bool             `json:"limited"`
	Policy    TrafficLimitType `json:"policy,omitempty"`
	UsedBytes int64            `json:"used_bytes"`
	Limit     int64            `json:"limit"`
	Percent   float64          `json:"percent"`
	Tone      Tone             `json:"tone"`
	TotalUp   int64            `json:"total_up"`
	TotalDown int64            `json:"total_down"`
}

// TrafficUsage combines the cumulative counters according to policy. An
// unset policy counts both directions.
func TrafficUsage(totalUp, totalDown int64, policy TrafficLimitType) int64 {
	switch policy {
	case TrafficLimitUp:
		return totalUp
	case TrafficLimitDown:
		return totalDown
	default:
		return totalUp + totalDown
	}
}

// TrafficPercent returns 100*used/limit. It is 0 for a non-positive limit
// and is not clamped above 100.
func TrafficPercent(totalUp, totalDown, limit int64, policy TrafficLimitType) float64 {
	if limit <= 0 {
		return 0
	}
	return float64(TrafficUsage(totalUp, totalDown, policy)) * 100 / float64(limit)
}

// TrafficTone bands a quota percentage, checked from the highest band down.
func TrafficTone(percent float64) Tone {
	switch {
	case percent > TrafficCriticalPercent:
		return ToneCritical
	case percent > TrafficWarningPercent:
		return ToneWarning
	case percent > TrafficElevatedPercent:
		return ToneElevated
	default:
		return ToneNormal
	}
}

// CalculateTrafficQuota derives the quota section for the given counters.
func CalculateTrafficQuota(totalUp, totalDown, limit int64, policy TrafficLimitType) TrafficQuota {
	q := TrafficQuota{
		Limited:   limit > 0 && policy != TrafficLimitUnset,
		Policy:    policy,
		Limit:     limit,
		TotalUp:   totalUp,
		TotalDown: totalDown,
	}
	if !q.Limited {
		q.Percent = 0
		q.UsedBytes = totalUp + totalDown
		q.Tone = ToneNormal
		return q
	}
	q.UsedBytes = TrafficUsage(totalUp, totalDown, policy)
	q.Percent = TrafficPercent(totalUp, totalDown, limit, policy)
	q.Tone = TrafficTone(q.Percent)
	return q
}
