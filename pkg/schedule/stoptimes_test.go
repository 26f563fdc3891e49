package schedule

import (
	"testing"
	"time"

	"github.com/railboard/railboard/pkg/gtfs"
	"github.com/railboard/railboard/pkg/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveStopTimesOrdering(t *testing.T) {
	engine := testEngine()
	baseDate := time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC)

	resolved, err := engine.ResolveStopTimes(map[string]bool{"T2": true, "T1": true}, baseDate)
	require.NoError(t, err)
	require.Len(t, resolved, 4)

	// Ordered by trip id first, then stop sequence
	assert.Equal(t, "T1", resolved[0].TripID)
	assert.Equal(t, "T1", resolved[1].TripID)
	assert.Equal(t, "T2", resolved[2].TripID)
	assert.Equal(t, "T2", resolved[3].TripID)

	for index := 1; index < len(resolved); index++ {
		if resolved[index].TripID == resolved[index-1].TripID {
			assert.GreaterOrEqual(t, resolved[index].StopSequence, resolved[index-1].StopSequence)
		}
	}

	assert.Equal(t, time.Date(2024, 3, 4, 8, 0, 0, 0, time.UTC), resolved[0].ArrivalAt)
}

func TestResolveStopTimesRollover(t *testing.T) {
	engine := testEngine()
	baseDate := time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)

	resolved, err := engine.ResolveStopTimes(map[string]bool{"T3": true}, baseDate)
	require.NoError(t, err)
	require.Len(t, resolved, 2)

	assert.Equal(t, time.Date(2024, 6, 11, 0, 30, 0, 0, time.UTC), resolved[0].ArrivalAt)
	assert.Equal(t, time.Date(2024, 6, 11, 0, 45, 0, 0, time.UTC), resolved[1].ArrivalAt)
}

func TestResolveStopTimesOmitsMetadataOnlyTrips(t *testing.T) {
	engine := testEngine()
	baseDate := time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC)

	resolved, err := engine.ResolveStopTimes(map[string]bool{"T9": true}, baseDate)
	require.NoError(t, err)
	assert.Empty(t, resolved)
}

func TestResolveStopTimesSurfacesMalformedArrival(t *testing.T) {
	records := store.Build(&gtfs.Schedule{
		Trips: []gtfs.Trip{
			{ID: "BAD", RouteID: "BNSF", ServiceID: "WK", DirectionID: 1},
		},
		StopTimes: []gtfs.StopTime{
			{TripID: "BAD", ArrivalTime: "8am", StopID: "A", StopSequence: 1},
		},
	}, "test-generation")

	engine := New(records, zoneStub{})

	_, err := engine.ResolveStopTimes(map[string]bool{"BAD": true}, time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC))
	require.Error(t, err)

	var formatErr *TimeFormatError
	assert.ErrorAs(t, err, &formatErr)
}

func TestResolveStopTimesDuplicateSequenceKeepsFeedOrder(t *testing.T) {
	records := store.Build(&gtfs.Schedule{
		Trips: []gtfs.Trip{
			{ID: "DUP", RouteID: "BNSF", ServiceID: "WK", DirectionID: 1},
		},
		StopTimes: []gtfs.StopTime{
			{TripID: "DUP", ArrivalTime: "07:00:00", StopID: "X", StopSequence: 5},
			{TripID: "DUP", ArrivalTime: "07:05:00", StopID: "Y", StopSequence: 5},
			{TripID: "DUP", ArrivalTime: "06:00:00", StopID: "W", StopSequence: 1},
		},
	}, "test-generation")

	engine := New(records, zoneStub{})

	resolved, err := engine.ResolveStopTimes(map[string]bool{"DUP": true}, time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	require.Len(t, resolved, 3)

	assert.Equal(t, "W", resolved[0].StopID)
	// The two sequence-5 anomalies keep their original record order
	assert.Equal(t, "X", resolved[1].StopID)
	assert.Equal(t, "Y", resolved[2].StopID)
}
