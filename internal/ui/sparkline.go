package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Sparkline block characters representing 8 vertical levels (lowest to highest).
const sparklineBlocks = "▁▂▃▄▅▆▇█"

var sparklineBlockRunes = []rune(sparklineBlocks)

// RenderSparkline draws the most recent width values scaled between their
// own min and max. The color follows the last value:
//   - below 60: green
//   - 60 to 80: yellow
//   - 80 and up: red
func RenderSparkline(data []float64, width int) string {
	if len(data) == 0 || width <= 0 {
		return ""
	}
	data = lastN(data, width)

	minVal, maxVal := data[0], data[0]
	for _, v := range data {
		if v < minVal {
			minVal = v
		}
		if v > maxVal {
			maxVal = v
		}
	}
	return renderBlocks(data, minVal, maxVal)
}

// RenderPercentSparkline is RenderSparkline on a fixed 0-100 scale, so a
// steady 5% line stays low instead of filling the middle.
func RenderPercentSparkline(data []float64, width int) string {
	if len(data) == 0 || width <= 0 {
		return ""
	}
	return renderBlocks(lastN(data, width), 0, 100)
}

func lastN(data []float64, n int) []float64 {
	if len(data) > n {
		return data[len(data)-n:]
	}
	return data
}

func renderBlocks(data []float64, minVal, maxVal float64) string {
	var sb strings.Builder
	sb.Grow(len(data) * 3)

	numLevels := len(sparklineBlockRunes)
	valueRange := maxVal - minVal

	for _, v := range data {
		level := numLevels / 2
		if valueRange != 0 {
			normalized := (v - minVal) / valueRange
			level = int(normalized * float64(numLevels-1))
			if level < 0 {
				level = 0
			} else if level >= numLevels {
				level = numLevels - 1
			}
		}
		sb.WriteRune(sparklineBlockRunes[level])
	}

	color := getThresholdColor(data[len(data)-1])
	return lipgloss.NewStyle().Foreground(color).Render(sb.String())
}

// getThresholdColor returns a color based on percentage thresholds.
func getThresholdColor(percent float64) lipgloss.Color {
	switch {
	case percent >= 80:
		return ColorError
	case percent >= 60:
		return ColorWarning
	default:
		return ColorSuccess
	}
}
