package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/csrf"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/terraincognita07/breathe/internal/api"
	"github.com/terraincognita07/breathe/internal/store"
)

type config struct {
	Host      string
	Port      string
	Debug     bool
	SecretKey string
	DataPath  string
}

func loadConfig() config {
	return config{
		Host:      getEnv("HOST", "127.0.0.1"),
		Port:      getEnv("PORT", "5000"),
		Debug:     getEnv("DEBUG", "1") == "1",
		SecretKey: getEnv("SECRET_KEY", "dev-secret-key"),
		DataPath:  getEnv("DATA_PATH", filepath.Join("data", "health_log.json")),
	}
}

func main() {
	cfg := loadConfig()

	entryStore := store.NewStore(cfg.DataPath)
	if _, err := entryStore.Load(); err != nil {
		log.Fatalf("store init failed: %v", err)
	}

	handler, err := api.NewHandler(entryStore, cfg.SecretKey)
	if err != nil {
		log.Fatalf("handler init failed: %v", err)
	}

	app := fiber.New(fiber.Config{
		AppName:               "Breathe",
		DisableStartupMessage: true,
	})

	app.Use(recover.New())
	if cfg.Debug {
		app.Use(logger.New())
	}
	app.Use(compress.New())
	app.Use(csrf.New(csrf.Config{
		KeyLookup:      "form:csrf_token",
		CookieName:     "breathe_csrf",
		CookieSameSite: "Lax",
		CookieHTTPOnly: false,
		CookieSecure:   false,
		ContextKey:     "csrf",
	}))

	api.RegisterRoutes(app, handler)

	sigCtx, stopSignals := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	go func() {
		<-sigCtx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := app.ShutdownWithContext(shutdownCtx); err != nil {
			log.Printf("server shutdown failed: %v", err)
		}
	}()

	log.Printf("Breathe listening on http://%s:%s (data: %s)", cfg.Host, cfg.Port, cfg.DataPath)
	if err := app.Listen(cfg.Host + ":" + cfg.Port); err != nil {
		log.Fatalf("server exited: %v", err)
	}
}

func getEnv(key string, fallback string) string {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	return value
}
