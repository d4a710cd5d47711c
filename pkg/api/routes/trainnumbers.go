package routes

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/liip/sheriff"
	"github.com/travigo/cab/pkg/actiontree"
)

func (h databasesHandler) listTrainNumbers(c *fiber.Ctx) error {
	database, options, ok := h.database(c)
	if !ok {
		return nil
	}

	document := actiontree.FetchTrainNumbers(c.UserContext(), database.Opener(), options)

	trainNumbers, ok := document.([]*actiontree.TrainNumber)
	if !ok {
		return c.JSON(document)
	}

	groups := []string{"basic"}
	if c.QueryBool("detailed", false) {
		groups = []string{"detailed"}
	}

	trainNumbersReduced, err := sheriff.Marshal(&sheriff.Options{
		Groups: groups,
	}, trainNumbers)
	if err != nil {
		c.SendStatus(fiber.StatusInternalServerError)
		return c.JSON(fiber.Map{
			"error": "Sherrif could not reduce train numbers",
		})
	}

	return c.JSON(trainNumbersReduced)
}

func (h databasesHandler) getTrainNumberActions(c *fiber.Ctx) error {
	trainNumberID, err := strconv.ParseInt(c.Params("identifier"), 10, 64)
	if err != nil {
		c.SendStatus(fiber.StatusBadRequest)
		return c.JSON(fiber.Map{
			"error": "Train number identifier should be an integer",
		})
	}

	database, options, ok := h.database(c)
	if !ok {
		return nil
	}

	return c.JSON(actiontree.FetchLineTree(c.UserContext(), database.Opener(), trainNumberID, options))
}
