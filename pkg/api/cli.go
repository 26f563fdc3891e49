package api

import (
	"time"

	"github.com/railboard/railboard/pkg/feed"
	"github.com/railboard/railboard/pkg/gtfs"
	"github.com/railboard/railboard/pkg/store"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"
)

func RegisterCLI() *cli.Command {
	return &cli.Command{
		Name:  "web-api",
		Usage: "Provides the core web API",
		Subcommands: []*cli.Command{
			{
				Name:  "run",
				Usage: "run web api server",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "listen",
						Value: ":8080",
						Usage: "listen target for the web server",
					},
					&cli.StringFlag{
						Name:  "config",
						Usage: "Path to a feed source YAML file",
					},
					&cli.DurationFlag{
						Name:  "check-every",
						Value: 30 * time.Minute,
						Usage: "how often to check the feed publish timestamp",
					},
				},
				Action: func(c *cli.Context) error {
					source, err := feed.LoadSource(c.String("config"))
					if err != nil {
						return err
					}

					fetcher := feed.NewFetcher(source)

					records, err := loadCurrentFeed(fetcher)
					if err != nil {
						return err
					}

					registry := store.NewRegistry(records)

					go watchFeed(fetcher, registry, c.Duration("check-every"))

					return SetupServer(c.String("listen"), registry)
				},
			},
		},
	}
}

func loadCurrentFeed(fetcher *feed.Fetcher) (*store.Store, error) {
	schedulePath, publishTimestamp, _, err := fetcher.Refresh(false)
	if err != nil {
		return nil, err
	}

	schedule, err := gtfs.ParseScheduleZip(schedulePath)
	if err != nil {
		return nil, err
	}

	return store.Build(schedule, publishTimestamp), nil
}

// watchFeed polls the publish timestamp and atomically swaps in a fully
// built replacement store when the feed changes. Requests in flight keep
// whichever generation they started with.
func watchFeed(fetcher *feed.Fetcher, registry *store.Registry, checkEvery time.Duration) {
	ticker := time.NewTicker(checkEvery)

	for range ticker.C {
		schedulePath, publishTimestamp, downloaded, err := fetcher.Refresh(false)
		if err != nil {
			log.Error().Err(err).Msg("Feed refresh check failed")
			continue
		}
		if !downloaded {
			continue
		}

		schedule, err := gtfs.ParseScheduleZip(schedulePath)
		if err != nil {
			log.Error().Err(err).Msg("Failed to parse refreshed schedule archive")
			continue
		}

		if registry.Swap(store.Build(schedule, publishTimestamp)) {
			log.Info().Str("publish_timestamp", publishTimestamp).Msg("Swapped in new feed generation")
		}
	}
}
