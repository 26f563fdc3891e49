package store

import (
	"testing"
	"time"

	"github.com/railboard/railboard/pkg/gtfs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildTestStore() *Store {
	return Build(&gtfs.Schedule{
		Stops: []gtfs.Stop{
			{ID: " A ", Name: " Ashburn ", Latitude: 41.8, Longitude: -87.7, ZoneID: " B ", Wheelchair: 1},
			{ID: "B", Name: "Union Terminal", ZoneID: "A"},
		},
		Routes: []gtfs.Route{
			{ID: "BNSF", ShortName: "BNSF", LongName: "Burlington Northern", Type: 2, Colour: "76725C"},
		},
		Calendars: []gtfs.Calendar{
			{ServiceID: "WK", Monday: 1, Friday: 1, Start: "20240101", End: "20241231"},
			{ServiceID: "BROKEN", Monday: 1, Start: "January", End: "20241231"},
		},
		Trips: []gtfs.Trip{
			{ID: "T1", RouteID: "BNSF", ServiceID: "WK", Headsign: "Union Terminal", DirectionID: 1},
		},
		StopTimes: []gtfs.StopTime{
			{TripID: "T1", ArrivalTime: "08:15:00", StopID: "B", StopSequence: 2},
			{TripID: "T1", ArrivalTime: "08:00:00", StopID: "A", StopSequence: 1},
		},
		CalendarDates: []gtfs.CalendarDate{
			{ServiceID: "WK", Date: "20240704", ExceptionType: 2},
		},
	}, "10/18/2024 11:02:30 AM")
}

func TestBuildNormalizesRecords(t *testing.T) {
	s := buildTestStore()

	assert.Equal(t, "10/18/2024 11:02:30 AM", s.PublishTimestamp)

	stop, exists := s.Stops["A"]
	require.True(t, exists, "whitespace around ids is trimmed")
	assert.Equal(t, "Ashburn", stop.Name)
	assert.Equal(t, "B", stop.ZoneID)
	assert.True(t, stop.WheelchairBoarding)
	assert.False(t, s.Stops["B"].WheelchairBoarding)

	service, exists := s.Services["WK"]
	require.True(t, exists)
	assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), service.StartDate)
	assert.Equal(t, time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC), service.EndDate)
	assert.True(t, service.RunsOn(time.Monday))
	assert.True(t, service.RunsOn(time.Friday))
	assert.False(t, service.RunsOn(time.Sunday))

	_, exists = s.Services["BROKEN"]
	assert.False(t, exists, "calendar rows with malformed dates are dropped")
}

func TestBuildSortsTripStopTimes(t *testing.T) {
	s := buildTestStore()

	stopTimes := s.TripStopTimes["T1"]
	require.Len(t, stopTimes, 2)
	assert.Equal(t, "A", stopTimes[0].StopID)
	assert.Equal(t, "B", stopTimes[1].StopID)
}

func TestBuildRetainsCalendarDates(t *testing.T) {
	s := buildTestStore()

	require.Len(t, s.CalendarDates, 1)
	assert.Equal(t, "WK", s.CalendarDates[0].ServiceID)
	assert.Equal(t, time.Date(2024, 7, 4, 0, 0, 0, 0, time.UTC), s.CalendarDates[0].Date)
	assert.Equal(t, 2, s.CalendarDates[0].ExceptionType)
}

func TestStopListOrdered(t *testing.T) {
	s := buildTestStore()

	stops := s.StopList()
	require.Len(t, stops, 2)
	assert.Equal(t, "A", stops[0].ID)
	assert.Equal(t, "B", stops[1].ID)
}

func TestTripsWithStop(t *testing.T) {
	s := Build(&gtfs.Schedule{
		StopTimes: []gtfs.StopTime{
			{TripID: "T2", ArrivalTime: "09:00:00", StopID: "B", StopSequence: 1},
			{TripID: "T2", ArrivalTime: "09:20:00", StopID: "A", StopSequence: 2},
			{TripID: "T1", ArrivalTime: "08:00:00", StopID: "A", StopSequence: 1},
			{TripID: "T1", ArrivalTime: "08:15:00", StopID: "B", StopSequence: 2},
			{TripID: "T3", ArrivalTime: "10:00:00", StopID: "C", StopSequence: 1},
		},
	}, "test-generation")

	assert.Equal(t, []string{"T1", "T2"}, s.TripsWithStop("A"))
	assert.Equal(t, []string{"T3"}, s.TripsWithStop("C"))
	assert.Empty(t, s.TripsWithStop("NOWHERE"))
}

func TestSearchStops(t *testing.T) {
	s := buildTestStore()

	assert.Len(t, s.SearchStops("union"), 1)
	assert.Len(t, s.SearchStops("ASHBURN"), 1)
	assert.Empty(t, s.SearchStops("nowhere"))
	assert.Empty(t, s.SearchStops("  "))
}

func TestRegistrySwap(t *testing.T) {
	first := buildTestStore()

	registry := NewRegistry(nil)
	assert.Nil(t, registry.Current())

	assert.True(t, registry.Swap(first))
	assert.Same(t, first, registry.Current())

	// Same publish timestamp: swap happens but reports no change
	same := buildTestStore()
	assert.False(t, registry.Swap(same))
	assert.Same(t, same, registry.Current())

	second := Build(&gtfs.Schedule{}, "10/25/2024 09:00:00 AM")
	assert.True(t, registry.Swap(second))
	assert.Same(t, second, registry.Current())
}
