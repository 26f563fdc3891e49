package query

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/kr/pretty"
	"github.com/railboard/railboard/pkg/feed"
	"github.com/railboard/railboard/pkg/gtfs"
	"github.com/railboard/railboard/pkg/schedule"
	"github.com/railboard/railboard/pkg/store"
	"github.com/railboard/railboard/pkg/topology"
	"github.com/railboard/railboard/pkg/util"
	"github.com/urfave/cli/v2"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

func RegisterCLI() *cli.Command {
	sharedFlags := []cli.Flag{
		&cli.StringFlag{
			Name:  "config",
			Usage: "Path to a feed source YAML file",
		},
		&cli.StringFlag{
			Name:  "date",
			Usage: "Query date as YYYY-MM-DD, defaults to today",
		},
		&cli.StringFlag{
			Name:  "format",
			Value: "pretty",
			Usage: "Output format (pretty or json)",
		},
	}

	return &cli.Command{
		Name:  "query",
		Usage: "Run schedule queries against the cached feed",
		Subcommands: []*cli.Command{
			{
				Name:  "departures",
				Usage: "Next departures between two stops",
				Flags: append([]cli.Flag{
					&cli.StringFlag{
						Name:     "origin",
						Usage:    "Origin stop id",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "destination",
						Usage:    "Destination stop id",
						Required: true,
					},
					&cli.StringFlag{
						Name:  "after",
						Usage: "Only departures after this RFC3339 datetime, defaults to now",
					},
				}, sharedFlags...),
				Action: func(c *cli.Context) error {
					engine, err := loadEngine(c)
					if err != nil {
						return err
					}

					date, err := queryDate(c)
					if err != nil {
						return err
					}

					after := time.Now()
					if c.String("after") != "" {
						after, err = time.Parse(time.RFC3339, c.String("after"))
						if err != nil {
							return err
						}
						date = after
					}

					departures, err := engine.NextDepartures(c.String("origin"), c.String("destination"), after, date)
					if err != nil {
						return err
					}

					return output(c, departures)
				},
			},
			{
				Name:  "trip",
				Usage: "Full stop sequence for a trip",
				Flags: append([]cli.Flag{
					&cli.StringFlag{
						Name:     "id",
						Usage:    "Trip id",
						Required: true,
					},
				}, sharedFlags...),
				Action: func(c *cli.Context) error {
					engine, err := loadEngine(c)
					if err != nil {
						return err
					}

					date, err := queryDate(c)
					if err != nil {
						return err
					}

					stopTimes, err := engine.TripSchedule(c.String("id"), date)
					if err != nil {
						return err
					}

					return output(c, stopTimes)
				},
			},
			{
				Name:  "services",
				Usage: "Service ids active on a date",
				Flags: sharedFlags,
				Action: func(c *cli.Context) error {
					engine, err := loadEngine(c)
					if err != nil {
						return err
					}

					date, err := queryDate(c)
					if err != nil {
						return err
					}

					serviceIDs := maps.Keys(engine.ActiveServices(date))
					slices.Sort(serviceIDs)

					return output(c, serviceIDs)
				},
			},
		},
	}
}

func loadEngine(c *cli.Context) (*schedule.Engine, error) {
	source, err := feed.LoadSource(c.String("config"))
	if err != nil {
		return nil, err
	}

	fetcher := feed.NewFetcher(source)

	schedulePath, publishTimestamp, _, err := fetcher.Refresh(false)
	if err != nil {
		return nil, err
	}

	parsed, err := gtfs.ParseScheduleZip(schedulePath)
	if err != nil {
		return nil, err
	}

	records := store.Build(parsed, publishTimestamp)

	return schedule.New(records, topology.NewZoneTopology(records)), nil
}

func queryDate(c *cli.Context) (time.Time, error) {
	if c.String("date") == "" {
		return time.Now(), nil
	}

	return time.Parse("2006-01-02", c.String("date"))
}

func output(c *cli.Context, value interface{}) error {
	format := c.String("format")
	if !util.ContainsString([]string{"pretty", "json"}, format) {
		return errors.New("format must be pretty or json")
	}

	if format == "json" {
		encoded, err := json.MarshalIndent(value, "", "  ")
		if err != nil {
			return err
		}

		fmt.Println(string(encoded))
		return nil
	}

	pretty.Println(value)
	return nil
}
