package store

import (
	"strings"
	"time"

	"github.com/railboard/railboard/pkg/gtfs"
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

const calendarDateFormat = "20060102"

// Store is one immutable generation of the feed, identified by the
// publish timestamp the provider stamped on the archive. A new publish
// timestamp means a whole new Store; nothing is ever patched in place.
type Store struct {
	PublishTimestamp string

	Stops    map[string]Stop
	Routes   map[string]Route
	Services map[string]Service
	Trips    map[string]Trip

	// TripStopTimes holds each trip's stop times sorted by stop sequence.
	// Duplicate sequence values keep their original feed order.
	TripStopTimes map[string][]StopTime

	CalendarDates  []CalendarDate
	FareRules      []FareRule
	FareAttributes map[string]FareAttribute
}

func Build(schedule *gtfs.Schedule, publishTimestamp string) *Store {
	s := &Store{
		PublishTimestamp: publishTimestamp,

		Stops:    map[string]Stop{},
		Routes:   map[string]Route{},
		Services: map[string]Service{},
		Trips:    map[string]Trip{},

		TripStopTimes:  map[string][]StopTime{},
		FareAttributes: map[string]FareAttribute{},
	}

	for _, stop := range schedule.Stops {
		s.Stops[strings.TrimSpace(stop.ID)] = Stop{
			ID:                 strings.TrimSpace(stop.ID),
			Name:               strings.TrimSpace(stop.Name),
			Latitude:           stop.Latitude,
			Longitude:          stop.Longitude,
			ZoneID:             strings.TrimSpace(stop.ZoneID),
			WheelchairBoarding: stop.Wheelchair == 1,
		}
	}

	for _, route := range schedule.Routes {
		s.Routes[strings.TrimSpace(route.ID)] = Route{
			ID:         strings.TrimSpace(route.ID),
			ShortName:  strings.TrimSpace(route.ShortName),
			LongName:   strings.TrimSpace(route.LongName),
			Type:       route.Type,
			Colour:     strings.TrimSpace(route.Colour),
			TextColour: strings.TrimSpace(route.TextColour),
		}
	}

	for _, calendar := range schedule.Calendars {
		startDate, startErr := time.Parse(calendarDateFormat, strings.TrimSpace(calendar.Start))
		endDate, endErr := time.Parse(calendarDateFormat, strings.TrimSpace(calendar.End))

		if startErr != nil || endErr != nil {
			log.Warn().
				Str("service", calendar.ServiceID).
				Str("start", calendar.Start).
				Str("end", calendar.End).
				Msg("Skipping calendar row with malformed dates")
			continue
		}

		s.Services[strings.TrimSpace(calendar.ServiceID)] = Service{
			ID:        strings.TrimSpace(calendar.ServiceID),
			Weekdays:  calendar.Weekdays(),
			StartDate: startDate,
			EndDate:   endDate,
		}
	}

	for _, trip := range schedule.Trips {
		s.Trips[strings.TrimSpace(trip.ID)] = Trip{
			ID:          strings.TrimSpace(trip.ID),
			RouteID:     strings.TrimSpace(trip.RouteID),
			ServiceID:   strings.TrimSpace(trip.ServiceID),
			Headsign:    strings.TrimSpace(trip.Headsign),
			ShapeID:     strings.TrimSpace(trip.ShapeID),
			DirectionID: trip.DirectionID,
		}
	}

	for _, stopTime := range schedule.StopTimes {
		tripID := strings.TrimSpace(stopTime.TripID)

		s.TripStopTimes[tripID] = append(s.TripStopTimes[tripID], StopTime{
			TripID:       tripID,
			ArrivalTime:  strings.TrimSpace(stopTime.ArrivalTime),
			StopID:       strings.TrimSpace(stopTime.StopID),
			StopSequence: stopTime.StopSequence,
			PickupType:   stopTime.PickupType,
			DropOffType:  stopTime.DropOffType,
		})
	}
	for _, stopTimes := range s.TripStopTimes {
		slices.SortStableFunc(stopTimes, func(a, b StopTime) int {
			return a.StopSequence - b.StopSequence
		})
	}

	// calendar_dates exceptions are retained but never applied to service
	// resolution, matching the upstream feed handling
	for _, calendarDate := range schedule.CalendarDates {
		date, err := time.Parse(calendarDateFormat, strings.TrimSpace(calendarDate.Date))
		if err != nil {
			continue
		}

		s.CalendarDates = append(s.CalendarDates, CalendarDate{
			ServiceID:     strings.TrimSpace(calendarDate.ServiceID),
			Date:          date,
			ExceptionType: calendarDate.ExceptionType,
		})
	}

	for _, fareRule := range schedule.FareRules {
		s.FareRules = append(s.FareRules, FareRule{
			FareID:          strings.TrimSpace(fareRule.FareID),
			OriginZone:      strings.TrimSpace(fareRule.OriginID),
			DestinationZone: strings.TrimSpace(fareRule.DestinationID),
		})
	}
	for _, fareAttribute := range schedule.FareAttributes {
		s.FareAttributes[strings.TrimSpace(fareAttribute.FareID)] = FareAttribute{
			FareID:       strings.TrimSpace(fareAttribute.FareID),
			Price:        fareAttribute.Price,
			CurrencyType: strings.TrimSpace(fareAttribute.CurrencyType),
		}
	}

	log.Info().
		Str("publish_timestamp", publishTimestamp).
		Int("stops", len(s.Stops)).
		Int("routes", len(s.Routes)).
		Int("services", len(s.Services)).
		Int("trips", len(s.Trips)).
		Int("trips_with_stop_times", len(s.TripStopTimes)).
		Msg("Built record store")

	return s
}

// StopList returns every stop ordered by id.
func (s *Store) StopList() []Stop {
	ids := maps.Keys(s.Stops)
	slices.Sort(ids)

	stops := make([]Stop, 0, len(ids))
	for _, id := range ids {
		stops = append(stops, s.Stops[id])
	}

	return stops
}

// RouteList returns every route ordered by id.
func (s *Store) RouteList() []Route {
	ids := maps.Keys(s.Routes)
	slices.Sort(ids)

	routes := make([]Route, 0, len(ids))
	for _, id := range ids {
		routes = append(routes, s.Routes[id])
	}

	return routes
}

// TripsWithStop returns the ids of every trip that calls at the stop,
// ordered by trip id.
func (s *Store) TripsWithStop(stopID string) []string {
	var tripIDs []string
	for tripID, stopTimes := range s.TripStopTimes {
		for _, stopTime := range stopTimes {
			if stopTime.StopID == stopID {
				tripIDs = append(tripIDs, tripID)
				break
			}
		}
	}

	slices.Sort(tripIDs)

	return tripIDs
}

// SearchStops does a case-insensitive substring match over stop ids and
// names, returning matches ordered by stop id.
func (s *Store) SearchStops(query string) []Stop {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return nil
	}

	var matched []Stop
	for _, stop := range s.Stops {
		if strings.Contains(strings.ToLower(stop.ID), query) ||
			strings.Contains(strings.ToLower(stop.Name), query) {
			matched = append(matched, stop)
		}
	}

	slices.SortFunc(matched, func(a, b Stop) int {
		return strings.Compare(a.ID, b.ID)
	})

	return matched
}
