package gtfs

import "time"

type Stop struct {
	ID         string  `csv:"stop_id"`
	Name       string  `csv:"stop_name"`
	Latitude   float64 `csv:"stop_lat"`
	Longitude  float64 `csv:"stop_lon"`
	ZoneID     string  `csv:"zone_id"`
	URL        string  `csv:"stop_url"`
	Wheelchair int     `csv:"wheelchair_boarding"`
}

type Route struct {
	ID         string `csv:"route_id"`
	ShortName  string `csv:"route_short_name"`
	LongName   string `csv:"route_long_name"`
	Type       int    `csv:"route_type"`
	Colour     string `csv:"route_color"`
	TextColour string `csv:"route_text_color"`
}

type Trip struct {
	RouteID     string `csv:"route_id"`
	ServiceID   string `csv:"service_id"`
	ID          string `csv:"trip_id"`
	Headsign    string `csv:"trip_headsign"`
	ShapeID     string `csv:"shape_id"`
	DirectionID int    `csv:"direction_id"`
}

type StopTime struct {
	TripID       string `csv:"trip_id"`
	ArrivalTime  string `csv:"arrival_time"`
	StopID       string `csv:"stop_id"`
	StopSequence int    `csv:"stop_sequence"`
	PickupType   int    `csv:"pickup_type"`
	DropOffType  int    `csv:"drop_off_type"`
}

type Calendar struct {
	ServiceID string `csv:"service_id"`
	Monday    int    `csv:"monday"`
	Tuesday   int    `csv:"tuesday"`
	Wednesday int    `csv:"wednesday"`
	Thursday  int    `csv:"thursday"`
	Friday    int    `csv:"friday"`
	Saturday  int    `csv:"saturday"`
	Sunday    int    `csv:"sunday"`
	Start     string `csv:"start_date"`
	End       string `csv:"end_date"`
}

// Weekdays returns the running-day flags indexed by time.Weekday.
func (c *Calendar) Weekdays() [7]bool {
	var days [7]bool

	days[time.Sunday] = c.Sunday == 1
	days[time.Monday] = c.Monday == 1
	days[time.Tuesday] = c.Tuesday == 1
	days[time.Wednesday] = c.Wednesday == 1
	days[time.Thursday] = c.Thursday == 1
	days[time.Friday] = c.Friday == 1
	days[time.Saturday] = c.Saturday == 1

	return days
}

type CalendarDate struct {
	ServiceID     string `csv:"service_id"`
	Date          string `csv:"date"`
	ExceptionType int    `csv:"exception_type"`
}

type FareRule struct {
	FareID        string `csv:"fare_id"`
	OriginID      string `csv:"origin_id"`
	DestinationID string `csv:"destination_id"`
}

type FareAttribute struct {
	FareID       string  `csv:"fare_id"`
	Price        float64 `csv:"price"`
	CurrencyType string  `csv:"currency_type"`
}
