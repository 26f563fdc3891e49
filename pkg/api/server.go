package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/railboard/railboard/pkg/api/routes"
	"github.com/railboard/railboard/pkg/store"
)

func SetupServer(listen string, registry *store.Registry) error {
	webApp := fiber.New()
	webApp.Use(NewLogger())

	webApp.Get("version", routes.APIVersion)

	routes.StatusRouter(webApp.Group("/status"), registry)

	routes.StopsRouter(webApp.Group("/stops"), registry)
	routes.RoutesRouter(webApp.Group("/routes"), registry)
	routes.TripsRouter(webApp.Group("/trips"), registry)
	routes.ServicesRouter(webApp.Group("/services"), registry)
	routes.FaresRouter(webApp.Group("/fares"), registry)

	return webApp.Listen(listen)
}
