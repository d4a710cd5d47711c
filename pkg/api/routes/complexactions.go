package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/travigo/cab/pkg/actiontree"
)

func (h databasesHandler) getComplexAction(c *fiber.Ctx) error {
	var root actiontree.ActionDescriptor
	if err := c.BodyParser(&root); err != nil {
		c.SendStatus(fiber.StatusBadRequest)
		return c.JSON(fiber.Map{
			"error": "Request body should be an action descriptor",
		})
	}

	if root.ActionID == 0 || root.ActionType == "" {
		c.SendStatus(fiber.StatusBadRequest)
		return c.JSON(fiber.Map{
			"error": "actionId and actionType must be set",
		})
	}

	database, options, ok := h.database(c)
	if !ok {
		return nil
	}

	return c.JSON(actiontree.FetchComplexActionTree(c.UserContext(), database.Opener(), root, options))
}
