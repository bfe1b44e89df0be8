package main

import (
	"fmt"
	"time"
)

func formatDuration(duration time.Duration) string {
	if duration < 0 {
		duration = 0
	}

	seconds := int64(duration.Truncate(time.Second).Seconds())
	if seconds < 60 {
		return fmt.Sprintf("%ds", seconds)
	}

	minutes := seconds / 60
	if minutes < 60 {
		return fmt.Sprintf("%dm %ds", minutes, seconds%60)
	}

	hours := minutes / 60
	return fmt.Sprintf("%dh %dm", hours, minutes%60)
}
