package schedule

import (
	"errors"
	"strings"
)

// Direction is a trip's travel orientation relative to the hub terminus.
// The feed encodes it as 0 (outbound, away from the hub) or 1 (inbound,
// toward the hub).
type Direction int

const (
	DirectionOutbound    Direction = 0
	DirectionInbound     Direction = 1
	DirectionUnspecified Direction = -1
)

func (d Direction) String() string {
	switch d {
	case DirectionOutbound:
		return "outbound"
	case DirectionInbound:
		return "inbound"
	default:
		return "unspecified"
	}
}

// ParseDirection maps the alias tokens accepted across the CLI and API
// onto a Direction. Anything unrecognised means no direction filter,
// not an error.
func ParseDirection(token string) Direction {
	switch strings.ToLower(strings.TrimSpace(token)) {
	case "i", "ib", "inbound", "1":
		return DirectionInbound
	case "o", "ob", "outbound", "0":
		return DirectionOutbound
	default:
		return DirectionUnspecified
	}
}

// DirectionResolver decides which way a stop pair points along the
// network. It is route-topology configuration supplied from outside the
// engine.
type DirectionResolver interface {
	DirectionBetween(originStopID string, destinationStopID string) (Direction, error)
}

var (
	// ErrUnknownStopPair means one or both stops are absent from the
	// topology the resolver was built on.
	ErrUnknownStopPair = errors.New("stop pair not found in route topology")

	// ErrAmbiguousDirection means the stops share a position, so neither
	// inbound nor outbound can be inferred.
	ErrAmbiguousDirection = errors.New("direction between stops is ambiguous")
)
