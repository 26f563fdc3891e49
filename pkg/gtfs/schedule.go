package gtfs

import (
	"archive/zip"
	"encoding/csv"
	"fmt"
	"io"

	"github.com/gocarina/gocsv"
	"github.com/rs/zerolog/log"
)

type Schedule struct {
	Stops          []Stop
	Routes         []Route
	Trips          []Trip
	StopTimes      []StopTime
	Calendars      []Calendar
	CalendarDates  []CalendarDate
	FareRules      []FareRule
	FareAttributes []FareAttribute
}

func ParseScheduleZip(path string) (*Schedule, error) {
	// Allow us to ignore those naughty records that have missing columns
	gocsv.SetCSVReader(func(in io.Reader) gocsv.CSVReader {
		r := csv.NewReader(in)
		r.FieldsPerRecord = -1
		return r
	})

	schedule := &Schedule{}

	fileMap := map[string]interface{}{
		"stops.txt":           &schedule.Stops,
		"routes.txt":          &schedule.Routes,
		"trips.txt":           &schedule.Trips,
		"stop_times.txt":      &schedule.StopTimes,
		"calendar.txt":        &schedule.Calendars,
		"calendar_dates.txt":  &schedule.CalendarDates,
		"fare_rules.txt":      &schedule.FareRules,
		"fare_attributes.txt": &schedule.FareAttributes,
	}

	archive, err := zip.OpenReader(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open schedule archive: %w", err)
	}
	defer archive.Close()

	for _, zipFile := range archive.File {
		fileName := zipFile.Name

		destination, exists := fileMap[fileName]
		if !exists {
			// shapes.txt and friends are deliberately skipped
			log.Debug().Str("file", fileName).Msg("Skipping gtfs file")
			continue
		}

		log.Info().Str("file", fileName).Msg("Loading file")

		fileReader, err := zipFile.Open()
		if err != nil {
			return nil, fmt.Errorf("failed to open %s: %w", fileName, err)
		}

		err = gocsv.Unmarshal(fileReader, destination)
		fileReader.Close()
		if err != nil {
			return nil, fmt.Errorf("failed to parse csv file %s: %w", fileName, err)
		}
	}

	return schedule, nil
}
