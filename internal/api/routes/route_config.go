package routes

import (
	"Cocktail-Catalog/domain"
	"Cocktail-Catalog/internal/api/handlers"
	"Cocktail-Catalog/internal/api/presenters"
	"Cocktail-Catalog/internal/middleware"
	"Cocktail-Catalog/internal/ui"
	"Cocktail-Catalog/internal/utils/storage"
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/filesystem"
)

type Config struct {
	App           *fiber.App
	EntryHandler  handlers.EntryHandler
	UploadHandler handlers.UploadHandler
	// PageHandler is optional; without it only the JSON API is mounted.
	PageHandler handlers.PageHandler
	Middleware  middleware.Middleware
	// UploadDir is served under /uploads when images are stored locally.
	UploadDir string
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.App.Use(c.Middleware.SecurityHeaders())
	c.Entries()
	c.GuestRoute()
	c.Uploads()
	c.Pages()
	c.NotFound()
}

func (c *Config) Entries() {
	entries := c.App.Group("/api/entries")
	{
		entries.Get("", c.EntryHandler.GetEntries)
		entries.Post("", c.EntryHandler.CreateEntry)
		entries.Get("/:id", c.EntryHandler.GetEntryByID)
		entries.Put("/:id", c.EntryHandler.UpdateEntry)
		entries.Delete("/:id", c.EntryHandler.DeleteEntry)
	}
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessagePong)
	})
}

func (c *Config) Uploads() {
	c.App.Post("/api/upload", c.UploadHandler.UploadImage)
	if c.UploadDir != "" {
		c.App.Static(storage.PublicUploadsPrefix, c.UploadDir, fiber.Static{
			ByteRange: true,
			MaxAge:    int((24 * time.Hour).Seconds()),
		})
	}
}

func (c *Config) Pages() {
	if c.PageHandler == nil {
		return
	}
	c.App.Use("/assets", filesystem.New(filesystem.Config{
		Root:   http.FS(ui.Assets()),
		MaxAge: int(time.Hour.Seconds()),
	}))
	c.App.Get("/", c.PageHandler.Index)
	c.App.Post("/entries", c.PageHandler.SubmitEntry)
	c.App.Post("/entries/:id/delete", c.PageHandler.DeleteEntry)
}

func (c *Config) NotFound() {
	c.App.Use(func(c *fiber.Ctx) error {
		return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageRouteNotFound, fiber.ErrNotFound)
	})
}
