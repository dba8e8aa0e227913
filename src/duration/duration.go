// Package duration renders Jenkins build durations as wall-clock strings.
package duration

import (
	"fmt"
	"strconv"

	"jobdetails/src/provider"
)

const (
	msPerSecond = 1000
	msPerMinute = 60 * msPerSecond
	msPerHour   = 60 * msPerMinute
)

// Format converts a millisecond count into HH:MM:SS.
// NA, unparsable and negative inputs yield NA.
// Hours are taken modulo 24, so durations of a day or more wrap.
func Format(millis string) string {
	if millis == provider.NA {
		return provider.NA
	}

	ms, err := strconv.ParseInt(millis, 10, 64)
	if err != nil || ms < 0 {
		return provider.NA
	}

	seconds := (ms / msPerSecond) % 60
	minutes := (ms / msPerMinute) % 60
	hours := (ms / msPerHour) % 24

	return fmt.Sprintf("%02d:%02d:%02d", hours, minutes, seconds)
}
