package activity

import (
	"fmt"
	"time"
)

const (
	dateLayout  = "2006-01-02"
	clockLayout = "15:04"
)

// dateToMillis converts a "YYYY-MM-DD" date to unix milliseconds at
// midnight in the given IANA timezone.
func dateToMillis(date, timezone string) (int64, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return 0, fmt.Errorf("unknown timezone %q", timezone)
	}
	t, err := time.ParseInLocation(dateLayout, date, loc)
	if err != nil {
		return 0, err
	}
	return t.UnixMilli(), nil
}

// millisToDate renders unix milliseconds as a "YYYY-MM-DD" date in the
// given timezone. Non-positive millis render empty; an unknown timezone
// falls back to UTC rather than failing a read-only conversion.
func millisToDate(ms int64, timezone string) string {
	if ms <= 0 {
		return ""
	}
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		loc = time.UTC
	}
	return time.UnixMilli(ms).In(loc).Format(dateLayout)
}

// parseClock validates an "HH:MM" time of day.
func parseClock(s string) error {
	_, err := time.Parse(clockLayout, s)
	return err
}
