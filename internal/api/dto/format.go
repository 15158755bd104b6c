package dto

import (
	"fmt"
	"time"
)

// Percent renders a rate with one decimal, e.g. "66.7%".
func Percent(rate float64) string {
	return fmt.Sprintf("%.1f%%", rate)
}

// WholePercent renders an integer rate, e.g. "89%".
func WholePercent(rate int) string {
	return fmt.Sprintf("%d%%", rate)
}

// Hours renders a duration in hours with one decimal, e.g. "2.5 hours".
func Hours(hours float64) string {
	return fmt.Sprintf("%.1f hours", hours)
}

// Growth renders a signed percentage change, e.g. "+12%".
func Growth(percent int) string {
	return fmt.Sprintf("%+d%%", percent)
}

// optionalTime maps the zero time to null.
func optionalTime(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}
