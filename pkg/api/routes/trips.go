package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/liip/sheriff"
	"github.com/railboard/railboard/pkg/store"
)

func TripsRouter(router fiber.Router, registry *store.Registry) {
	router.Get("/:identifier/schedule", func(c *fiber.Ctx) error { return getTripSchedule(c, registry) })
}

func getTripSchedule(c *fiber.Ctx, registry *store.Registry) error {
	engine, err := currentEngine(c, registry)
	if engine == nil {
		return err
	}

	tripID := c.Params("identifier")

	if _, exists := engine.Records().Trips[tripID]; !exists {
		c.SendStatus(fiber.StatusNotFound)
		return c.JSON(fiber.Map{
			"error": "Could not find Trip matching Trip Identifier",
		})
	}

	date, ok := queryDate(c)
	if !ok {
		c.SendStatus(fiber.StatusBadRequest)
		return c.JSON(fiber.Map{
			"error": "Parameter date should be a YYYY-MM-DD date",
		})
	}

	// The nominal schedule is returned even on days the trip does not
	// run; the active flag says whether it runs on the requested date
	stopTimes, err := engine.TripSchedule(tripID, date)
	if err != nil {
		c.SendStatus(fiber.StatusInternalServerError)
		return c.JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	stopTimesReduced, err := sheriff.Marshal(&sheriff.Options{
		Groups: []string{"basic"},
	}, stopTimes)
	if err != nil {
		c.SendStatus(fiber.StatusInternalServerError)
		return c.JSON(fiber.Map{
			"error": "Sorry something has gone wrong",
		})
	}

	return c.JSON(fiber.Map{
		"trip_id":    tripID,
		"active":     engine.TripActiveOn(tripID, date),
		"stop_times": stopTimesReduced,
	})
}
