package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"github.com/travigo/cab/pkg/actiontree"
	"github.com/travigo/cab/pkg/config"
)

type databasesHandler struct {
	registry *config.Registry
}

func DatabasesRouter(router fiber.Router, registry *config.Registry) {
	handler := databasesHandler{registry: registry}

	router.Get("/", handler.listDatabases)
	router.Get("/:database/trainnumbers", handler.listTrainNumbers)
	router.Get("/:database/trainnumbers/:identifier/actions", handler.getTrainNumberActions)
	router.Post("/:database/complexactions", handler.getComplexAction)
}

func (h databasesHandler) listDatabases(c *fiber.Ctx) error {
	return c.JSON(h.registry.Databases)
}

// database resolves the :database parameter. On failure the error response has
// already been written and ok is false.
func (h databasesHandler) database(c *fiber.Ctx) (*config.Database, actiontree.Options, bool) {
	identifier := c.Params("database")

	database := h.registry.Get(identifier)
	if database == nil {
		c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Could not find Database matching identifier",
		})
		return nil, actiontree.Options{}, false
	}

	location, err := database.Location()
	if err != nil {
		c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Database timezone is invalid",
		})
		return nil, actiontree.Options{}, false
	}

	logger := log.With().Str("database", database.Identifier).Logger()

	return database, actiontree.Options{Location: location, Logger: &logger}, true
}
