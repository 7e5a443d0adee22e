package util

import (
	"fmt"
	"time"
)

// FormatDuration renders d as "2h 05m", "12m 30s" or "45s".
func FormatDuration(d time.Duration) string {
	if d < 0 {
		d = -d
	}
	d = d.Round(time.Second)
	hours := int(d.Hours())
	minutes := int(d.Minutes()) % 60
	seconds := int(d.Seconds()) % 60

	switch {
	case hours > 0:
		return fmt.Sprintf("%dh %02dm", hours, minutes)
	case minutes > 0:
		return fmt.Sprintf("%dm %02ds", minutes, seconds)
	default:
		return fmt.Sprintf("%ds", seconds)
	}
}

// FormatPercent renders part/whole as a percentage with one decimal.
func FormatPercent(part, whole time.Duration) string {
	if whole <= 0 {
		return "0.0%"
	}
	return fmt.Sprintf("%.1f%%", float64(part)/float64(whole)*100)
}

// FormatClock renders t as HH:MM:SS; the following midnight renders as 24:00:00.
func FormatClock(t, day time.Time) string {
	if !t.Before(StartOfDay(day).AddDate(0, 0, 1)) {
		return fmt.Sprintf("%02d:%02d:%02d", t.Hour()+24, t.Minute(), t.Second())
	}
	return t.Format("15:04:05")
}
