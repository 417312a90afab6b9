package activity

import (
	"time"

	"lahella/models"
)

// Listing states derived from the visibility window when the portal
// does not report a status of its own.
const (
	StatusExpired = "expired"
	StatusPending = "pending"
	StatusUnknown = "unknown"
)

// StatusOf derives a display status for a listing. The portal's own
// status field wins when present; otherwise the visibility window under
// tags decides.
func StatusOf(act models.Activity, now time.Time) string {
	if act.Status != "" {
		return act.Status
	}
	if act.Tags == nil || act.Tags.Visibility == nil {
		return StatusUnknown
	}

	ms := now.UnixMilli()
	visibility := act.Tags.Visibility
	switch {
	case visibility.End > 0 && visibility.End < ms:
		return StatusExpired
	case visibility.Start > 0 && visibility.Start > ms:
		return StatusPending
	default:
		return StatusUnknown
	}
}
