package routes

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/liip/sheriff"
	"github.com/railboard/railboard/pkg/schedule"
	"github.com/railboard/railboard/pkg/store"
)

func StopsRouter(router fiber.Router, registry *store.Registry) {
	router.Get("/", func(c *fiber.Ctx) error { return listStops(c, registry) })
	router.Get("/search", func(c *fiber.Ctx) error { return searchStops(c, registry) })
	router.Get("/:identifier", func(c *fiber.Ctx) error { return getStop(c, registry) })
	router.Get("/:identifier/departures", func(c *fiber.Ctx) error { return getStopDepartures(c, registry) })
	router.Get("/:identifier/trips", func(c *fiber.Ctx) error { return getStopTrips(c, registry) })
}

func listStops(c *fiber.Ctx, registry *store.Registry) error {
	engine, err := currentEngine(c, registry)
	if engine == nil {
		return err
	}

	stops := engine.Records().StopList()

	stopsReduced, err := sheriff.Marshal(&sheriff.Options{
		Groups: []string{"basic"},
	}, stops)
	if err != nil {
		c.SendStatus(fiber.StatusInternalServerError)
		return c.JSON(fiber.Map{
			"error": "Sorry something has gone wrong",
		})
	}

	return c.JSON(stopsReduced)
}

func searchStops(c *fiber.Ctx, registry *store.Registry) error {
	engine, err := currentEngine(c, registry)
	if engine == nil {
		return err
	}

	query := c.Query("query")
	if query == "" {
		c.SendStatus(fiber.StatusBadRequest)
		return c.JSON(fiber.Map{
			"error": "Parameter query must be provided",
		})
	}

	return c.JSON(engine.Records().SearchStops(query))
}

func getStop(c *fiber.Ctx, registry *store.Registry) error {
	engine, err := currentEngine(c, registry)
	if engine == nil {
		return err
	}

	identifier := c.Params("identifier")

	stop, exists := engine.Records().Stops[identifier]
	if !exists {
		c.SendStatus(fiber.StatusNotFound)
		return c.JSON(fiber.Map{
			"error": "Could not find Stop matching Stop Identifier",
		})
	}

	stopReduced, err := sheriff.Marshal(&sheriff.Options{
		Groups: []string{"basic", "detailed"},
	}, &stop)
	if err != nil {
		c.SendStatus(fiber.StatusInternalServerError)
		return c.JSON(fiber.Map{
			"error": "Sorry something has gone wrong",
		})
	}

	return c.JSON(stopReduced)
}

func getStopTrips(c *fiber.Ctx, registry *store.Registry) error {
	engine, err := currentEngine(c, registry)
	if engine == nil {
		return err
	}

	identifier := c.Params("identifier")

	if _, exists := engine.Records().Stops[identifier]; !exists {
		c.SendStatus(fiber.StatusNotFound)
		return c.JSON(fiber.Map{
			"error": "Could not find Stop matching Stop Identifier",
		})
	}

	return c.JSON(engine.Records().TripsWithStop(identifier))
}

func getStopDepartures(c *fiber.Ctx, registry *store.Registry) error {
	engine, err := currentEngine(c, registry)
	if engine == nil {
		return err
	}

	originStopID := c.Params("identifier")
	destinationStopID := c.Query("destination")
	startDateTimeString := c.Query("datetime")

	if destinationStopID == "" {
		c.SendStatus(fiber.StatusBadRequest)
		return c.JSON(fiber.Map{
			"error": "Parameter destination must be provided",
		})
	}

	startDateTime := time.Now()
	if startDateTimeString != "" {
		startDateTime, err = time.Parse(time.RFC3339, startDateTimeString)
		if err != nil {
			c.SendStatus(fiber.StatusBadRequest)
			return c.JSON(fiber.Map{
				"error": "Parameter datetime should be an RFC3339/ISO8601 datetime",
			})
		}
	}

	departures, err := engine.NextDepartures(originStopID, destinationStopID, startDateTime, startDateTime)
	if err != nil {
		if errors.Is(err, schedule.ErrUnknownStopPair) || errors.Is(err, schedule.ErrAmbiguousDirection) {
			c.SendStatus(fiber.StatusBadRequest)
		} else {
			c.SendStatus(fiber.StatusInternalServerError)
		}
		return c.JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	count := c.QueryInt("count", 25)
	if count > 0 && len(departures) > count {
		departures = departures[:count]
	}

	departuresReduced, err := sheriff.Marshal(&sheriff.Options{
		Groups: []string{"basic"},
	}, departures)
	if err != nil {
		c.SendStatus(fiber.StatusInternalServerError)
		return c.JSON(fiber.Map{
			"error": "Sorry something has gone wrong",
		})
	}

	return c.JSON(departuresReduced)
}
