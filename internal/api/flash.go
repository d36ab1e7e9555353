package api

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
)

const (
	flashCookieName    = "breathe_flash"
	flashCookiePurpose = "flash"

	flashCategorySuccess = "success"
	flashCategoryWarning = "warning"
)

// FlashPayload is the one-shot message shown on the next rendered page.
type FlashPayload struct {
	Message  string `json:"message,omitempty"`
	Category string `json:"category,omitempty"`
}

func (handler *Handler) setFlash(c *fiber.Ctx, payload FlashPayload) {
	payload.Message = strings.TrimSpace(payload.Message)
	if payload.Message == "" {
		handler.clearFlash(c)
		return
	}
	if payload.Category == "" {
		payload.Category = flashCategorySuccess
	}

	serialized, err := json.Marshal(payload)
	if err != nil {
		return
	}
	sealed, err := handler.codec.seal(flashCookiePurpose, serialized)
	if err != nil {
		return
	}

	c.Cookie(&fiber.Cookie{
		Name:     flashCookieName,
		Value:    sealed,
		Path:     "/",
		HTTPOnly: true,
		Secure:   false,
		SameSite: "Lax",
		Expires:  time.Now().Add(5 * time.Minute),
	})
}

// popFlash reads and clears the flash cookie. Tampered or malformed
// values pop as an empty flash.
func (handler *Handler) popFlash(c *fiber.Ctx) FlashPayload {
	raw := strings.TrimSpace(c.Cookies(flashCookieName))
	if raw == "" {
		return FlashPayload{}
	}
	handler.clearFlash(c)

	decoded, err := handler.codec.open(flashCookiePurpose, raw)
	if err != nil {
		return FlashPayload{}
	}

	payload := FlashPayload{}
	if err := json.Unmarshal(decoded, &payload); err != nil {
		return FlashPayload{}
	}
	payload.Message = strings.TrimSpace(payload.Message)
	return payload
}

func (handler *Handler) clearFlash(c *fiber.Ctx) {
	c.Cookie(&fiber.Cookie{
		Name:     flashCookieName,
		Value:    "",
		Path:     "/",
		HTTPOnly: true,
		Secure:   false,
		SameSite: "Lax",
		Expires:  time.Now().Add(-1 * time.Hour),
	})
}
