package rentalsvc

import "time"

const dateLayout = "2006-01-02"

// ParseDate accepts an ISO-8601 calendar date or an RFC 3339 datetime.
func ParseDate(s string) (time.Time, error) {
	if t, err := time.Parse(dateLayout, s); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, s)
}

// midnight strips the time of day so comparisons are calendar-date based,
// not instant based.
func midnight(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// validRange reports whether [start, end] is a legal rental window: start
// is today or later and end is strictly after start.
func validRange(start, end, today time.Time) bool {
	start, end, today = midnight(start), midnight(end), midnight(today)
	return !start.Before(today) && end.After(start)
}
