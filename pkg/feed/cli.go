package feed

import (
	"fmt"
	"time"

	"github.com/railboard/railboard/pkg/gtfs"
	"github.com/railboard/railboard/pkg/store"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"
)

func RegisterCLI() *cli.Command {
	return &cli.Command{
		Name:  "feed",
		Usage: "Download & cache the static schedule feed",
		Subcommands: []*cli.Command{
			{
				Name:  "refresh",
				Usage: "Fetch the schedule archive if the publish timestamp changed",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "config",
						Usage: "Path to a feed source YAML file",
					},
					&cli.BoolFlag{
						Name:  "force",
						Usage: "Download the archive even if the publish timestamp is unchanged",
					},
					&cli.StringFlag{
						Name:  "repeat-every",
						Usage: "Repeat the refresh every X duration",
					},
				},
				Action: func(c *cli.Context) error {
					source, err := LoadSource(c.String("config"))
					if err != nil {
						return err
					}

					repeatEvery := c.String("repeat-every")
					repeat := repeatEvery != ""
					var repeatDuration time.Duration
					if repeat {
						repeatDuration, err = time.ParseDuration(repeatEvery)
						if err != nil {
							return err
						}
					}

					fetcher := NewFetcher(source)

					for {
						startTime := time.Now()

						if err := refreshOnce(fetcher, c.Bool("force")); err != nil {
							return err
						}
						if !repeat {
							break
						}

						executionDuration := time.Since(startTime)
						log.Info().Msgf("Operation took %s", executionDuration.String())

						waitTime := repeatDuration - executionDuration
						if waitTime.Seconds() > 0 {
							time.Sleep(waitTime)
						}
					}

					return nil
				},
			},
			{
				Name:  "status",
				Usage: "Show the cached and remote publish timestamps",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "config",
						Usage: "Path to a feed source YAML file",
					},
				},
				Action: func(c *cli.Context) error {
					source, err := LoadSource(c.String("config"))
					if err != nil {
						return err
					}

					fetcher := NewFetcher(source)

					cachedTimestamp, cached := fetcher.CachedPublishTimestamp()
					if !cached {
						cachedTimestamp = "(none)"
					}

					remoteTimestamp, err := fetcher.RemotePublishTimestamp()
					if err != nil {
						return err
					}

					fmt.Printf("cached: %s\nremote: %s\n", cachedTimestamp, remoteTimestamp)

					return nil
				},
			},
		},
	}
}

func refreshOnce(fetcher *Fetcher, force bool) error {
	schedulePath, publishTimestamp, downloaded, err := fetcher.Refresh(force)
	if err != nil {
		return err
	}

	if !downloaded {
		log.Info().Str("publish_timestamp", publishTimestamp).Msg("Feed already current")
		return nil
	}

	// Parse and build a store straight away so a corrupt download is
	// caught at refresh time rather than at first query
	schedule, err := gtfs.ParseScheduleZip(schedulePath)
	if err != nil {
		return err
	}

	store.Build(schedule, publishTimestamp)

	return nil
}
