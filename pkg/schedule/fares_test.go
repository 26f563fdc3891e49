package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTripFare(t *testing.T) {
	engine := testEngine()

	price, err := engine.TripFare("A", "B")
	require.NoError(t, err)
	assert.Equal(t, 4.25, price)
}

func TestTripFareUnknownStop(t *testing.T) {
	engine := testEngine()

	_, err := engine.TripFare("A", "NOPE")
	assert.ErrorIs(t, err, ErrUnknownStopPair)
}

func TestTripFareNoRuleForZonePair(t *testing.T) {
	engine := testEngine()

	// C's zone has no fare rule in the fixture
	_, err := engine.TripFare("A", "C")
	assert.ErrorIs(t, err, ErrFareNotFound)
}
