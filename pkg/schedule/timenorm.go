package schedule

import (
	"fmt"
	"regexp"
	"strconv"
	"time"
)

// GTFS arrival times are HH:MM:SS where HH may be 24 or greater for
// trips that run past midnight relative to their service day.
var arrivalTimePattern = regexp.MustCompile(`^(\d{2,}):(\d{2}):(\d{2})$`)

// TimeFormatError is returned when an arrival time string does not match
// the two-digit-grouped HH:MM:SS pattern. A malformed schedule record
// means feed corruption, so it is surfaced rather than swallowed.
type TimeFormatError struct {
	Value string
}

func (e *TimeFormatError) Error() string {
	return fmt.Sprintf("arrival time %q is not in HH:MM:SS format", e.Value)
}

// NormalizeArrivalTime anchors a raw wall-clock arrival string to the
// date the service day begins on. An hour component of 24 or more rolls
// the arrival into the following calendar day.
func NormalizeArrivalTime(value string, baseDate time.Time) (time.Time, error) {
	groups := arrivalTimePattern.FindStringSubmatch(value)
	if groups == nil {
		return time.Time{}, &TimeFormatError{Value: value}
	}

	hour, _ := strconv.Atoi(groups[1])
	minute, _ := strconv.Atoi(groups[2])
	second, _ := strconv.Atoi(groups[3])

	if minute > 59 || second > 59 {
		return time.Time{}, &TimeFormatError{Value: value}
	}

	days := 0
	for hour >= 24 {
		hour -= 24
		days++
	}

	normalized := time.Date(
		baseDate.Year(), baseDate.Month(), baseDate.Day(),
		hour, minute, second, 0, baseDate.Location(),
	)

	return normalized.AddDate(0, 0, days), nil
}
