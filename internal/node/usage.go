package node

// HighUsageThreshold is the strict bound above which a resource counts as high.
const HighUsageThreshold = 80.0

// LoadCriticalThreshold marks the 1-minute load as critical. It is shown in
// the card but never feeds HasHighUsage.
const LoadCriticalThreshold = 4.0

// UsagePercent returns used/total in percent, or 0 when total is not positive.
// Negative usage counts as zero.
func UsagePercent(used, total int64) float64 {
	if total <= 0 || used <= 0 {
		return 0
	}
	return float64(used) / float64(total) * 100
}

// HasHighUsage reports whether any of CPU, memory or disk is above
// HighUsageThreshold.
func HasHighUsage(cpuPercent, memPercent, diskPercent float64) bool {
	return cpuPercent > HighUsageThreshold ||
		memPercent > HighUsageThreshold ||
		diskPercent > HighUsageThreshold
}

// UsageTone colors a single resource percentage.
func UsageTone(percent float64) Tone {
	if percent > HighUsageThreshold {
		return ToneCritical
	}
	return ToneNormal
}

// LoadTone colors the 1-minute load.
func LoadTone(load1 float64) Tone {
	if load1 > LoadCriticalThreshold {
		return ToneCritical
	}
	return ToneNormal
}
