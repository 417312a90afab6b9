package activity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lahella/models"
)

// ── helpers ───────────────────────────────────────────────────────────────────

// validDocument returns the smallest document that passes create
// validation. Tests break one field at a time.
func validDocument() *models.Document {
	return &models.Document{
		Auth: models.AuthSection{Group: "g-123"},
		Course: models.CourseSection{
			Title: map[string]string{"fi": "Joogakurssi"},
		},
		Location: models.LocationSection{
			Address: models.Address{
				Street: "Mannerheimintie 1",
				City:   "Helsinki",
			},
		},
		Schedule: models.ScheduleSection{
			StartDate: "2026-01-11",
			EndDate:   "2026-05-24",
			Weekly: []models.WeeklySlot{
				{Weekday: 7, StartTime: "11:00", EndTime: "12:00"},
			},
		},
	}
}

// ── ValidateForCreate ─────────────────────────────────────────────────────────

// TestValidateForCreate_ValidDocumentPasses verifies the baseline
// fixture is accepted.
func TestValidateForCreate_ValidDocumentPasses(t *testing.T) {
	require.NoError(t, ValidateForCreate(validDocument()))
}

// TestValidateForCreate_MissingFields verifies that each required field
// fails with an error naming the section and field.
func TestValidateForCreate_MissingFields(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(doc *models.Document)
		field  string
	}{
		{"no group", func(d *models.Document) { d.Auth.Group = "" }, "auth.group"},
		{"no finnish title", func(d *models.Document) { delete(d.Course.Title, "fi") }, "course.title.fi"},
		{"no start date", func(d *models.Document) { d.Schedule.StartDate = "" }, "schedule.start_date"},
		{"no end date", func(d *models.Document) { d.Schedule.EndDate = "" }, "schedule.end_date"},
		{"no weekly slots", func(d *models.Document) { d.Schedule.Weekly = nil }, "schedule.weekly"},
		{"no street", func(d *models.Document) { d.Location.Address.Street = "" }, "location.address.street"},
		{"no city", func(d *models.Document) { d.Location.Address.City = "" }, "location.address.city"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			doc := validDocument()
			tc.mutate(doc)

			err := ValidateForCreate(doc)

			require.Error(t, err)
			assert.ErrorIs(t, err, ErrMissingField)
			assert.Contains(t, err.Error(), tc.field)
		})
	}
}

// TestValidateForCreate_UnparseableDate verifies that a date not in
// YYYY-MM-DD form fails naming the field.
func TestValidateForCreate_UnparseableDate(t *testing.T) {
	doc := validDocument()
	doc.Schedule.StartDate = "11.1.2026"

	err := ValidateForCreate(doc)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrBadValue)
	assert.Contains(t, err.Error(), "schedule.start_date")
}

// TestValidateForCreate_EndBeforeStart verifies that a schedule ending
// before it starts is rejected.
func TestValidateForCreate_EndBeforeStart(t *testing.T) {
	doc := validDocument()
	doc.Schedule.StartDate = "2026-05-24"
	doc.Schedule.EndDate = "2026-01-11"

	err := ValidateForCreate(doc)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrBadValue)
	assert.Contains(t, err.Error(), "end_date precedes start_date")
}

// TestValidateForCreate_WeekdayRange verifies the ISO weekday bounds:
// 1 is Monday, 7 is Sunday, anything else is rejected.
func TestValidateForCreate_WeekdayRange(t *testing.T) {
	for _, weekday := range []int{0, 8, -1} {
		doc := validDocument()
		doc.Schedule.Weekly[0].Weekday = weekday

		err := ValidateForCreate(doc)

		require.Error(t, err, "weekday %d", weekday)
		assert.ErrorIs(t, err, ErrBadValue)
		assert.Contains(t, err.Error(), "schedule.weekly[0].weekday")
	}
}

// TestValidateForCreate_BadClockTime verifies that slot times must be
// HH:MM.
func TestValidateForCreate_BadClockTime(t *testing.T) {
	doc := validDocument()
	doc.Schedule.Weekly[0].EndTime = "12.00"

	err := ValidateForCreate(doc)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrBadValue)
	assert.Contains(t, err.Error(), "schedule.weekly[0].end_time")
}

// TestValidateForCreate_UnknownTimezone verifies that an unknown
// schedule timezone is caught during validation, not at build time.
func TestValidateForCreate_UnknownTimezone(t *testing.T) {
	doc := validDocument()
	doc.Schedule.Timezone = "Europe/Nowhere"

	err := ValidateForCreate(doc)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrBadValue)
	assert.Contains(t, err.Error(), "Europe/Nowhere")
}

// TestValidateForCreate_VenueScheduleChecked verifies that a venue with
// its own schedule gets the same checks under its own path.
func TestValidateForCreate_VenueScheduleChecked(t *testing.T) {
	doc := validDocument()
	doc.Locations = []models.Venue{{
		Location: models.LocationSection{
			Address: models.Address{Street: "Sivukatu 2", City: "Espoo"},
		},
		Schedule: models.ScheduleSection{
			StartDate: "2026-02-01",
			EndDate:   "2026-04-30",
			Weekly: []models.WeeklySlot{
				{Weekday: 9, StartTime: "10:00", EndTime: "11:00"},
			},
		},
	}}

	err := ValidateForCreate(doc)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrBadValue)
	assert.Contains(t, err.Error(), "locations[0].schedule.weekly[0].weekday")
}

// TestValidateForCreate_VenueWithoutScheduleInherits verifies that a
// venue with no schedule of its own is not validated against one.
func TestValidateForCreate_VenueWithoutScheduleInherits(t *testing.T) {
	doc := validDocument()
	doc.Locations = []models.Venue{{
		Location: models.LocationSection{
			Address: models.Address{Street: "Sivukatu 2", City: "Espoo"},
		},
	}}

	require.NoError(t, ValidateForCreate(doc))
}
