package shared

import (
	"time"
)

// FormatTime formats an optional api timestamp for display
func FormatTime(t *time.Time) string {
	if t == nil || t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}
