package api

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/breathe/internal/services"
)

func (handler *Handler) AddEntry(c *fiber.Ctx) error {
	input := entryFormInput{}
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).SendString("invalid form payload")
	}

	entry := services.BuildEntry(services.EntryInput{
		Date:          input.Date,
		CoughSeverity: input.CoughSeverity,
		CoughNotes:    input.CoughNotes,
		AsthmaTrouble: input.AsthmaTrouble != "",
		AsthmaNotes:   input.AsthmaNotes,
		Medication:    input.Medication,
		PeakFlow:      input.PeakFlow,
		Fever:         input.Fever != "",
		Exposures:     input.Exposures,
		TeacherNote:   input.TeacherNote,
	}, time.Now())

	entries, err := handler.entries.Load()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).SendString("failed to load entries")
	}
	entries = append(entries, entry)
	if err := handler.entries.Save(entries); err != nil {
		return c.Status(fiber.StatusInternalServerError).SendString("failed to save entry")
	}

	label, _ := services.ComputeRisk(entry)
	handler.setFlash(c, FlashPayload{
		Message:  fmt.Sprintf("Entry saved. Current risk: %s.", label),
		Category: flashCategorySuccess,
	})
	return c.Redirect("/", fiber.StatusSeeOther)
}
