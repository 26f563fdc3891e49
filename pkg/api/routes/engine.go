package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/railboard/railboard/pkg/schedule"
	"github.com/railboard/railboard/pkg/store"
	"github.com/railboard/railboard/pkg/topology"
)

// currentEngine binds a request to the live store generation. The engine
// keeps that one snapshot for the whole request, so a feed swap mid-query
// is never observed.
func currentEngine(c *fiber.Ctx, registry *store.Registry) (*schedule.Engine, error) {
	records := registry.Current()
	if records == nil {
		c.SendStatus(fiber.StatusServiceUnavailable)
		return nil, c.JSON(fiber.Map{
			"error": "No schedule feed has been loaded yet",
		})
	}

	return schedule.New(records, topology.NewZoneTopology(records)), nil
}
