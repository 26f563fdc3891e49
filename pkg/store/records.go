package store

import "time"

// Plain immutable records converted from the raw gtfs rows. Once a Store
// generation is built these are never mutated.

type Stop struct {
	ID                 string  `groups:"basic" json:"id"`
	Name               string  `groups:"basic" json:"name"`
	Latitude           float64 `groups:"basic" json:"latitude"`
	Longitude          float64 `groups:"basic" json:"longitude"`
	ZoneID             string  `groups:"detailed" json:"zone_id"`
	WheelchairBoarding bool    `groups:"detailed" json:"wheelchair_boarding"`
}

type Route struct {
	ID         string `groups:"basic" json:"id"`
	ShortName  string `groups:"basic" json:"short_name"`
	LongName   string `groups:"basic" json:"long_name"`
	Type       int    `groups:"detailed" json:"type"`
	Colour     string `groups:"detailed" json:"colour"`
	TextColour string `groups:"detailed" json:"text_colour"`
}

type Service struct {
	ID        string    `groups:"basic" json:"id"`
	Weekdays  [7]bool   `groups:"detailed" json:"weekdays"` // indexed by time.Weekday
	StartDate time.Time `groups:"detailed" json:"start_date"`
	EndDate   time.Time `groups:"detailed" json:"end_date"`
}

// RunsOn reports whether the service calendar pattern includes the weekday.
func (s *Service) RunsOn(day time.Weekday) bool {
	return s.Weekdays[day]
}

type Trip struct {
	ID          string `groups:"basic" json:"id"`
	RouteID     string `groups:"basic" json:"route_id"`
	ServiceID   string `groups:"detailed" json:"service_id"`
	Headsign    string `groups:"basic" json:"headsign"`
	ShapeID     string `groups:"detailed" json:"shape_id"`
	DirectionID int    `groups:"basic" json:"direction_id"`
}

// StopTime is a raw wall-clock arrival within a trip. The hour component
// of ArrivalTime may be 24 or greater for trips running past midnight.
type StopTime struct {
	TripID       string `json:"trip_id"`
	ArrivalTime  string `json:"arrival_time"`
	StopID       string `json:"stop_id"`
	StopSequence int    `json:"stop_sequence"`
	PickupType   int    `json:"pickup_type"`
	DropOffType  int    `json:"drop_off_type"`
}

type CalendarDate struct {
	ServiceID     string    `json:"service_id"`
	Date          time.Time `json:"date"`
	ExceptionType int       `json:"exception_type"`
}

type FareRule struct {
	FareID          string `json:"fare_id"`
	OriginZone      string `json:"origin_zone"`
	DestinationZone string `json:"destination_zone"`
}

type FareAttribute struct {
	FareID       string  `json:"fare_id"`
	Price        float64 `json:"price"`
	CurrencyType string  `json:"currency_type"`
}
