package schedule

import (
	"strings"
	"time"

	"github.com/railboard/railboard/pkg/util"
	"github.com/sourcegraph/conc/pool"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// TripSchedule returns every stop arrival for one trip in stop order,
// anchored at the given date. The nominal schedule is returned whether
// or not the trip's service is active that day - callers frequently want
// the timetable independent of activity, and gating here is a product
// decision, not an engine one. Use TripActiveOn to check activity.
func (e *Engine) TripSchedule(tripID string, date time.Time) ([]ResolvedStopTime, error) {
	return e.resolveTrip(tripID, date)
}

// TripActiveOn reports whether the trip's owning service runs on the
// date.
func (e *Engine) TripActiveOn(tripID string, date time.Time) bool {
	trip, exists := e.records.Trips[tripID]
	if !exists {
		return false
	}

	return e.ActiveServices(date)[trip.ServiceID]
}

// NextDepartures finds the upcoming departures from the origin stop on
// trips that genuinely continue to the destination stop. The direction
// filter is inferred from the stop pair; trips qualify only when the
// origin row precedes a destination row within that same trip, so a
// malformed trip visiting a stop twice cannot slip through on set
// membership alone. One row per qualifying trip is returned - the origin
// arrival - filtered to strictly after the given instant and sorted by
// arrival time with trip id as tie-break.
func (e *Engine) NextDepartures(originStopID string, destinationStopID string, after time.Time, date time.Time) ([]ResolvedStopTime, error) {
	direction, err := e.directions.DirectionBetween(originStopID, destinationStopID)
	if err != nil {
		return nil, err
	}

	activeTrips := e.ActiveTrips(date, TripFilter{Direction: direction})

	tripIDs := maps.Keys(activeTrips)
	slices.Sort(tripIDs)

	p := pool.NewWithResults[*ResolvedStopTime]().WithErrors()
	p.WithMaxGoroutines(16)

	for _, tripID := range tripIDs {
		tripID := tripID
		p.Go(func() (*ResolvedStopTime, error) {
			return e.originDeparture(tripID, originStopID, destinationStopID, date)
		})
	}

	matches, err := p.Wait()
	if err != nil {
		return nil, err
	}

	var departures []ResolvedStopTime
	for _, match := range matches {
		if match != nil {
			departures = append(departures, *match)
		}
	}

	util.InPlaceFilter(&departures, func(departure ResolvedStopTime) bool {
		return departure.ArrivalAt.After(after)
	})

	slices.SortStableFunc(departures, func(a, b ResolvedStopTime) int {
		if a.ArrivalAt.Equal(b.ArrivalAt) {
			return strings.Compare(a.TripID, b.TripID)
		}
		if a.ArrivalAt.Before(b.ArrivalAt) {
			return -1
		}
		return 1
	})

	return departures, nil
}

// originDeparture resolves one trip and returns its origin-stop row when
// the destination follows the origin on that trip, nil otherwise.
func (e *Engine) originDeparture(tripID string, originStopID string, destinationStopID string, date time.Time) (*ResolvedStopTime, error) {
	rows, err := e.resolveTrip(tripID, date)
	if err != nil {
		return nil, err
	}

	var origin *ResolvedStopTime
	for index := range rows {
		row := rows[index]

		if origin == nil && row.StopID == originStopID {
			origin = &rows[index]
			continue
		}
		if origin != nil && row.StopID == destinationStopID && row.StopSequence > origin.StopSequence {
			return origin, nil
		}
	}

	return nil, nil
}
