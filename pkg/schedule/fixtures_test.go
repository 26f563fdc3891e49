package schedule

import (
	"github.com/railboard/railboard/pkg/gtfs"
	"github.com/railboard/railboard/pkg/store"
)

// testRecords is a small feed: one weekday service for 2024, one
// inbound trip A -> B, one outbound trip B -> A, a late-night inbound
// trip, a weekend-only trip and a metadata-only trip with no stop times.
func testRecords() *store.Store {
	return store.Build(&gtfs.Schedule{
		Stops: []gtfs.Stop{
			{ID: "A", Name: "Ashburn", ZoneID: "B"},
			{ID: "B", Name: "Union Terminal", ZoneID: "A"},
			{ID: "C", Name: "Clarendon Road", ZoneID: "C"},
		},
		Routes: []gtfs.Route{
			{ID: "BNSF", ShortName: "BNSF", LongName: "Burlington Northern", Type: 2},
		},
		Calendars: []gtfs.Calendar{
			{
				ServiceID: "WK",
				Monday:    1, Tuesday: 1, Wednesday: 1, Thursday: 1, Friday: 1,
				Start: "20240101", End: "20241231",
			},
			{
				ServiceID: "WE",
				Saturday:  1, Sunday: 1,
				Start: "20240101", End: "20241231",
			},
		},
		Trips: []gtfs.Trip{
			{ID: "T1", RouteID: "BNSF", ServiceID: "WK", Headsign: "Union Terminal", DirectionID: 1},
			{ID: "T2", RouteID: "BNSF", ServiceID: "WK", Headsign: "Ashburn", DirectionID: 0},
			{ID: "T3", RouteID: "BNSF", ServiceID: "WK", Headsign: "Union Terminal", DirectionID: 1},
			{ID: "T4", RouteID: "BNSF", ServiceID: "WE", Headsign: "Union Terminal", DirectionID: 1},
			{ID: "T9", RouteID: "BNSF", ServiceID: "WK", Headsign: "Metadata Only", DirectionID: 1},
		},
		StopTimes: []gtfs.StopTime{
			{TripID: "T1", ArrivalTime: "08:00:00", StopID: "A", StopSequence: 1},
			{TripID: "T1", ArrivalTime: "08:15:00", StopID: "B", StopSequence: 2},

			{TripID: "T2", ArrivalTime: "09:00:00", StopID: "B", StopSequence: 1},
			{TripID: "T2", ArrivalTime: "09:20:00", StopID: "A", StopSequence: 2},

			{TripID: "T3", ArrivalTime: "24:30:00", StopID: "A", StopSequence: 1},
			{TripID: "T3", ArrivalTime: "24:45:00", StopID: "B", StopSequence: 2},

			{TripID: "T4", ArrivalTime: "10:00:00", StopID: "A", StopSequence: 1},
			{TripID: "T4", ArrivalTime: "10:15:00", StopID: "B", StopSequence: 2},
		},
		FareRules: []gtfs.FareRule{
			{FareID: "F1", OriginID: "B", DestinationID: "A"},
		},
		FareAttributes: []gtfs.FareAttribute{
			{FareID: "F1", Price: 4.25, CurrencyType: "USD"},
		},
	}, "test-generation")
}

// zoneStub resolves directions from a fixed stop -> zone table, the same
// ordering contract as the production zone topology.
type zoneStub map[string]string

func (z zoneStub) DirectionBetween(originStopID string, destinationStopID string) (Direction, error) {
	originZone, originExists := z[originStopID]
	destinationZone, destinationExists := z[destinationStopID]

	if !originExists || !destinationExists {
		return DirectionUnspecified, ErrUnknownStopPair
	}
	if originZone == destinationZone {
		return DirectionUnspecified, ErrAmbiguousDirection
	}
	if destinationZone < originZone {
		return DirectionInbound, nil
	}

	return DirectionOutbound, nil
}

func testEngine() *Engine {
	return New(testRecords(), zoneStub{"A": "B", "B": "A", "C": "C"})
}
