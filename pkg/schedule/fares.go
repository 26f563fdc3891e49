package schedule

import "errors"

// ErrFareNotFound means the zone pair has no fare rule in the feed.
var ErrFareNotFound = errors.New("no fare found for stop pair")

// TripFare looks up the single-ride price between two stops via their
// fare zones. Unknown stops surface as ErrUnknownStopPair, the same as
// direction inference.
func (e *Engine) TripFare(originStopID string, destinationStopID string) (float64, error) {
	originStop, originExists := e.records.Stops[originStopID]
	destinationStop, destinationExists := e.records.Stops[destinationStopID]

	if !originExists || !destinationExists {
		return 0, ErrUnknownStopPair
	}

	for _, rule := range e.records.FareRules {
		if rule.OriginZone != originStop.ZoneID || rule.DestinationZone != destinationStop.ZoneID {
			continue
		}

		attribute, exists := e.records.FareAttributes[rule.FareID]
		if !exists {
			continue
		}

		return attribute.Price, nil
	}

	return 0, ErrFareNotFound
}
