package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/travigo/cab/pkg/api/routes"
	"github.com/travigo/cab/pkg/config"
)

func NewApp(registry *config.Registry) *fiber.App {
	webApp := fiber.New(fiber.Config{
		DisableStartupMessage: true,
	})
	webApp.Use(NewLogger())

	group := webApp.Group("/cab")

	group.Get("version", routes.APIVersion)

	routes.DatabasesRouter(group.Group("/databases"), registry)

	return webApp
}

func SetupServer(listen string, registry *config.Registry) error {
	return NewApp(registry).Listen(listen)
}
