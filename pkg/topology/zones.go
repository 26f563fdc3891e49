package topology

import (
	"github.com/railboard/railboard/pkg/schedule"
	"github.com/railboard/railboard/pkg/store"
)

// ZoneTopology infers travel direction from fare zones. The network's
// zones are lettered outward from the hub terminus ("A" downtown, "B"
// the next ring and so on), so moving to a lower zone letter means
// heading inbound.
type ZoneTopology struct {
	records *store.Store
}

func NewZoneTopology(records *store.Store) *ZoneTopology {
	return &ZoneTopology{records: records}
}

// DirectionBetween compares the stops' zone ordinals. Stops missing from
// the store, or stops without a zone, cannot be placed on the network.
func (t *ZoneTopology) DirectionBetween(originStopID string, destinationStopID string) (schedule.Direction, error) {
	originStop, originExists := t.records.Stops[originStopID]
	destinationStop, destinationExists := t.records.Stops[destinationStopID]

	if !originExists || !destinationExists {
		return schedule.DirectionUnspecified, schedule.ErrUnknownStopPair
	}
	if originStop.ZoneID == "" || destinationStop.ZoneID == "" {
		return schedule.DirectionUnspecified, schedule.ErrUnknownStopPair
	}

	if originStop.ZoneID == destinationStop.ZoneID {
		return schedule.DirectionUnspecified, schedule.ErrAmbiguousDirection
	}

	if destinationStop.ZoneID < originStop.ZoneID {
		return schedule.DirectionInbound, nil
	}

	return schedule.DirectionOutbound, nil
}
