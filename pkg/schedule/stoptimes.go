package schedule

import (
	"time"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// ResolvedStopTime is one stop arrival with its wall-clock time anchored
// to an absolute timestamp.
type ResolvedStopTime struct {
	TripID       string    `groups:"basic" json:"trip_id"`
	ArrivalAt    time.Time `groups:"basic" json:"arrival_at"`
	StopID       string    `groups:"basic" json:"stop_id"`
	StopSequence int       `groups:"basic" json:"stop_sequence"`
}

// ResolveStopTimes normalizes the stop times of every trip in the set,
// anchored at baseDate, ordered by trip id then stop sequence. Trips
// with no stop time rows are silently omitted; a feed may carry
// metadata-only trips.
func (e *Engine) ResolveStopTimes(tripIDs map[string]bool, baseDate time.Time) ([]ResolvedStopTime, error) {
	ids := maps.Keys(tripIDs)
	slices.Sort(ids)

	var resolved []ResolvedStopTime
	for _, tripID := range ids {
		tripResolved, err := e.resolveTrip(tripID, baseDate)
		if err != nil {
			return nil, err
		}

		resolved = append(resolved, tripResolved...)
	}

	return resolved, nil
}

// resolveTrip materializes one trip's arrivals in stop sequence order.
// The store keeps each trip's rows pre-sorted with a stable sort, so
// duplicate sequence values stay in original feed order.
func (e *Engine) resolveTrip(tripID string, baseDate time.Time) ([]ResolvedStopTime, error) {
	stopTimes := e.records.TripStopTimes[tripID]
	if len(stopTimes) == 0 {
		return nil, nil
	}

	resolved := make([]ResolvedStopTime, 0, len(stopTimes))
	for _, stopTime := range stopTimes {
		arrivalAt, err := NormalizeArrivalTime(stopTime.ArrivalTime, baseDate)
		if err != nil {
			return nil, err
		}

		resolved = append(resolved, ResolvedStopTime{
			TripID:       tripID,
			ArrivalAt:    arrivalAt,
			StopID:       stopTime.StopID,
			StopSequence: stopTime.StopSequence,
		})
	}

	return resolved, nil
}
