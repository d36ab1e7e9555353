package api

import (
	"path/filepath"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/breathe/internal/store"
)

func newTestApp(t *testing.T) (*fiber.App, *store.Store) {
	t.Helper()

	entryStore := store.NewStore(filepath.Join(t.TempDir(), "health_log.json"))
	handler, err := NewHandler(entryStore, "test-secret-key")
	if err != nil {
		t.Fatalf("init handler: %v", err)
	}

	app := fiber.New()
	RegisterRoutes(app, handler)
	return app, entryStore
}
