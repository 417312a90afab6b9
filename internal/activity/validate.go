package activity

import (
	"fmt"

	"lahella/models"
)

// ValidateForCreate checks that a resolved document carries everything a
// submission needs, before any payload or network work happens. Each
// failure names the offending section and field.
func ValidateForCreate(doc *models.Document) error {
	if doc.Auth.Group == "" {
		return missingField("auth.group")
	}
	if doc.Course.Title["fi"] == "" {
		return missingField("course.title.fi")
	}
	if doc.Schedule.StartDate == "" {
		return missingField("schedule.start_date")
	}
	if doc.Schedule.EndDate == "" {
		return missingField("schedule.end_date")
	}
	if len(doc.Schedule.Weekly) == 0 {
		return missingField("schedule.weekly")
	}
	if doc.Location.Address.Street == "" {
		return missingField("location.address.street")
	}
	if doc.Location.Address.City == "" {
		return missingField("location.address.city")
	}

	if err := validateSchedule(doc.Schedule, "schedule"); err != nil {
		return err
	}
	for i, venue := range doc.Locations {
		if venue.Schedule.StartDate == "" && len(venue.Schedule.Weekly) == 0 {
			continue // venue inherits the top-level schedule
		}
		prefix := fmt.Sprintf("locations[%d].schedule", i)
		if err := validateSchedule(venue.Schedule, prefix); err != nil {
			return err
		}
	}

	return nil
}

func validateSchedule(sched models.ScheduleSection, prefix string) error {
	tz := sched.Timezone
	if tz == "" {
		tz = defaultTimezone
	}

	start, err := dateToMillis(sched.StartDate, tz)
	if err != nil {
		return badValue(prefix+".start_date", err)
	}
	end, err := dateToMillis(sched.EndDate, tz)
	if err != nil {
		return badValue(prefix+".end_date", err)
	}
	if end < start {
		return fmt.Errorf("%w: %s.end_date precedes start_date", ErrBadValue, prefix)
	}

	for i, slot := range sched.Weekly {
		if slot.Weekday < 1 || slot.Weekday > 7 {
			return fmt.Errorf("%w: %s.weekly[%d].weekday must be 1 (Monday) through 7 (Sunday)",
				ErrBadValue, prefix, i)
		}
		if err := parseClock(slot.StartTime); err != nil {
			return badValue(fmt.Sprintf("%s.weekly[%d].start_time", prefix, i), err)
		}
		if err := parseClock(slot.EndTime); err != nil {
			return badValue(fmt.Sprintf("%s.weekly[%d].end_time", prefix, i), err)
		}
	}

	return nil
}
