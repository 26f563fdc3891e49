package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/railboard/railboard/pkg/schedule"
	"github.com/railboard/railboard/pkg/store"
	"github.com/railboard/railboard/pkg/topology"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

func RoutesRouter(router fiber.Router, registry *store.Registry) {
	router.Get("/", func(c *fiber.Ctx) error { return listRoutes(c, registry) })
	router.Get("/:identifier/trips", func(c *fiber.Ctx) error { return getRouteTrips(c, registry) })
}

func ServicesRouter(router fiber.Router, registry *store.Registry) {
	router.Get("/active", func(c *fiber.Ctx) error { return getActiveServices(c, registry) })
}

func listRoutes(c *fiber.Ctx, registry *store.Registry) error {
	engine, err := currentEngine(c, registry)
	if engine == nil {
		return err
	}

	return c.JSON(engine.Records().RouteList())
}

// queryDate reads an optional YYYY-MM-DD date parameter, defaulting to
// today.
func queryDate(c *fiber.Ctx) (time.Time, bool) {
	dateString := c.Query("date")
	if dateString == "" {
		return time.Now(), true
	}

	date, err := time.Parse("2006-01-02", dateString)
	if err != nil {
		return time.Time{}, false
	}

	return date, true
}

func getRouteTrips(c *fiber.Ctx, registry *store.Registry) error {
	engine, err := currentEngine(c, registry)
	if engine == nil {
		return err
	}

	routeID := topology.NormalizeRouteID(c.Params("identifier"))
	if _, exists := engine.Records().Routes[routeID]; !exists {
		c.SendStatus(fiber.StatusNotFound)
		return c.JSON(fiber.Map{
			"error": "Could not find Route matching Route Identifier",
		})
	}

	date, ok := queryDate(c)
	if !ok {
		c.SendStatus(fiber.StatusBadRequest)
		return c.JSON(fiber.Map{
			"error": "Parameter date should be a YYYY-MM-DD date",
		})
	}

	direction := schedule.ParseDirection(c.Query("direction"))

	activeTrips := engine.ActiveTrips(date, schedule.TripFilter{
		RouteID:   routeID,
		Direction: direction,
	})

	trips := make([]store.Trip, 0, len(activeTrips))
	tripIDs := maps.Keys(activeTrips)
	slices.Sort(tripIDs)
	for _, tripID := range tripIDs {
		trips = append(trips, engine.Records().Trips[tripID])
	}

	return c.JSON(trips)
}

func getActiveServices(c *fiber.Ctx, registry *store.Registry) error {
	engine, err := currentEngine(c, registry)
	if engine == nil {
		return err
	}

	date, ok := queryDate(c)
	if !ok {
		c.SendStatus(fiber.StatusBadRequest)
		return c.JSON(fiber.Map{
			"error": "Parameter date should be a YYYY-MM-DD date",
		})
	}

	serviceIDs := maps.Keys(engine.ActiveServices(date))
	slices.Sort(serviceIDs)

	return c.JSON(serviceIDs)
}
