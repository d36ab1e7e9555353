package api

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/breathe/internal/services"
)

func (handler *Handler) ShowDashboard(c *fiber.Ctx) error {
	entries, err := handler.entries.Load()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).SendString("failed to load entries")
	}

	data := fiber.Map{
		"Title":      "Breathe | Dashboard",
		"EntryCount": len(entries),
		"Today":      time.Now().UTC().Format("2006-01-02"),
	}
	if len(entries) > 0 {
		latest := entries[len(entries)-1]
		label, score := services.ComputeRisk(latest)
		data["Latest"] = latest
		data["Risk"] = label
		data["RiskScore"] = score
	}

	return handler.render(c, "dashboard", data)
}
