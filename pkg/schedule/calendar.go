package schedule

import "time"

// ActiveServices returns the set of service ids whose calendar pattern
// covers the given date: the date must fall inside the service's
// inclusive start/end range and the weekday flag for the date must be
// set. Only the date part of the argument is used. An empty set is a
// valid result.
func (e *Engine) ActiveServices(date time.Time) map[string]bool {
	day := truncateToDate(date)
	weekday := day.Weekday()

	active := map[string]bool{}
	for id, service := range e.records.Services {
		if day.Before(service.StartDate) || day.After(service.EndDate) {
			continue
		}
		if !service.RunsOn(weekday) {
			continue
		}

		active[id] = true
	}

	return active
}

// truncateToDate drops the time component. The result is in UTC so it
// compares cleanly against the store's parsed calendar dates, which are
// plain dates with no zone of their own.
func truncateToDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
