package api

import (
	"sort"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/breathe/internal/models"
	"github.com/terraincognita07/breathe/internal/services"
)

type logEntryView struct {
	models.Entry
	Risk      string
	RiskScore int
}

func (handler *Handler) ShowLog(c *fiber.Ctx) error {
	entries, err := handler.entries.Load()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).SendString("failed to load entries")
	}

	views := make([]logEntryView, 0, len(entries))
	for _, entry := range entries {
		label, score := services.ComputeRisk(entry)
		views = append(views, logEntryView{Entry: entry, Risk: label, RiskScore: score})
	}
	sort.SliceStable(views, func(i, j int) bool {
		return views[i].Timestamp > views[j].Timestamp
	})

	return handler.render(c, "log", fiber.Map{
		"Title":   "Breathe | Full Log",
		"Entries": views,
	})
}
