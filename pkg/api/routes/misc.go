package routes

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/railboard/railboard/pkg/schedule"
	"github.com/railboard/railboard/pkg/store"
)

func APIVersion(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"version": "1",
	})
}

func StatusRouter(router fiber.Router, registry *store.Registry) {
	router.Get("/", func(c *fiber.Ctx) error { return getStatus(c, registry) })
}

func FaresRouter(router fiber.Router, registry *store.Registry) {
	router.Get("/", func(c *fiber.Ctx) error { return getFare(c, registry) })
}

func getStatus(c *fiber.Ctx, registry *store.Registry) error {
	records := registry.Current()
	if records == nil {
		return c.JSON(fiber.Map{
			"feed_loaded": false,
		})
	}

	return c.JSON(fiber.Map{
		"feed_loaded":       true,
		"publish_timestamp": records.PublishTimestamp,
	})
}

func getFare(c *fiber.Ctx, registry *store.Registry) error {
	engine, err := currentEngine(c, registry)
	if engine == nil {
		return err
	}

	originStopID := c.Query("origin")
	destinationStopID := c.Query("destination")

	if originStopID == "" || destinationStopID == "" {
		c.SendStatus(fiber.StatusBadRequest)
		return c.JSON(fiber.Map{
			"error": "Parameters origin and destination must be provided",
		})
	}

	price, err := engine.TripFare(originStopID, destinationStopID)
	if err != nil {
		if errors.Is(err, schedule.ErrUnknownStopPair) {
			c.SendStatus(fiber.StatusBadRequest)
		} else {
			c.SendStatus(fiber.StatusNotFound)
		}
		return c.JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"origin":      originStopID,
		"destination": destinationStopID,
		"price":       price,
	})
}
