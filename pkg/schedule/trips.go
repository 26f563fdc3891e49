package schedule

import "time"

// TripFilter narrows ActiveTrips. A zero RouteID or an Unspecified
// Direction means that dimension is not filtered.
type TripFilter struct {
	RouteID   string
	Direction Direction
}

// UnfilteredTrips matches every active trip.
var UnfilteredTrips = TripFilter{Direction: DirectionUnspecified}

// ActiveTrips returns the set of trip ids whose owning service is active
// on the date, optionally restricted by canonical route id and
// direction. Route id aliases are the caller's concern; the engine only
// matches canonical ids.
func (e *Engine) ActiveTrips(date time.Time, filter TripFilter) map[string]bool {
	activeServices := e.ActiveServices(date)

	active := map[string]bool{}
	for id, trip := range e.records.Trips {
		if !activeServices[trip.ServiceID] {
			continue
		}
		if filter.RouteID != "" && trip.RouteID != filter.RouteID {
			continue
		}
		if filter.Direction != DirectionUnspecified && Direction(trip.DirectionID) != filter.Direction {
			continue
		}

		active[id] = true
	}

	return active
}
