package api

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/breathe/internal/services"
)

func (handler *Handler) LoadDemo(c *fiber.Ctx) error {
	seeded, err := services.SeedDemoEntries(handler.entries, time.Now())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).SendString("failed to seed demo entries")
	}

	if seeded {
		handler.setFlash(c, FlashPayload{
			Message:  "Loaded demo entries so you can preview the dashboard and log.",
			Category: flashCategorySuccess,
		})
	} else {
		handler.setFlash(c, FlashPayload{
			Message:  "Demo data not added because you already have saved entries. Delete the data file to reload demo entries.",
			Category: flashCategoryWarning,
		})
	}
	return c.Redirect("/", fiber.StatusSeeOther)
}
