package activity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"lahella/models"
)

// ── StatusOf ──────────────────────────────────────────────────────────────────

func visibilityWindow(start, end time.Time) *models.Tags {
	return &models.Tags{
		Visibility: &models.Visibility{
			Start: start.UnixMilli(),
			End:   end.UnixMilli(),
		},
	}
}

// TestStatusOf_OwnStatusWins verifies that a status reported by the
// portal beats anything derived from the visibility window.
func TestStatusOf_OwnStatusWins(t *testing.T) {
	now := time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)
	act := models.Activity{
		Status: "published",
		Tags:   visibilityWindow(now.AddDate(0, -6, 0), now.AddDate(0, -1, 0)),
	}

	assert.Equal(t, "published", StatusOf(act, now))
}

// TestStatusOf_ExpiredWindow verifies that a window ending in the past
// reads as expired.
func TestStatusOf_ExpiredWindow(t *testing.T) {
	now := time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)
	act := models.Activity{
		Tags: visibilityWindow(now.AddDate(0, -4, 0), now.AddDate(0, -1, 0)),
	}

	assert.Equal(t, StatusExpired, StatusOf(act, now))
}

// TestStatusOf_PendingWindow verifies that a window starting in the
// future reads as pending.
func TestStatusOf_PendingWindow(t *testing.T) {
	now := time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)
	act := models.Activity{
		Tags: visibilityWindow(now.AddDate(0, 1, 0), now.AddDate(0, 4, 0)),
	}

	assert.Equal(t, StatusPending, StatusOf(act, now))
}

// TestStatusOf_RunningWindow verifies that a window containing now has
// no derived status.
func TestStatusOf_RunningWindow(t *testing.T) {
	now := time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)
	act := models.Activity{
		Tags: visibilityWindow(now.AddDate(0, -1, 0), now.AddDate(0, 1, 0)),
	}

	assert.Equal(t, StatusUnknown, StatusOf(act, now))
}

// TestStatusOf_NoWindow verifies the fallbacks when the listing has no
// tags or no visibility block.
func TestStatusOf_NoWindow(t *testing.T) {
	now := time.Now()

	assert.Equal(t, StatusUnknown, StatusOf(models.Activity{}, now))
	assert.Equal(t, StatusUnknown, StatusOf(models.Activity{Tags: &models.Tags{}}, now))
}
