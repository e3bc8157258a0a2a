// Package timecode renders video playback positions for display.
package timecode

import (
	"fmt"
	"math"
)

// Format converts a playback position in seconds into a zero-padded
// minutes:seconds display string. Negative, NaN and infinite inputs
// render as "0:00".
func Format(seconds float64) string {
	if math.IsNaN(seconds) || math.IsInf(seconds, 0) || seconds < 0 {
		seconds = 0
	}

	total := int(seconds)
	return fmt.Sprintf("%d:%02d", total/60, total%60)
}
