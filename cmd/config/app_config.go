package config

import (
	"Cocktail-Catalog/domain"
	"Cocktail-Catalog/internal/api/handlers"
	"Cocktail-Catalog/internal/api/presenters"
	"Cocktail-Catalog/internal/api/routes"
	"Cocktail-Catalog/internal/middleware"
	"Cocktail-Catalog/internal/ui"
	"Cocktail-Catalog/internal/utils"
	"Cocktail-Catalog/internal/utils/storage"
	"Cocktail-Catalog/pkg/client"
	"Cocktail-Catalog/pkg/entry"
	"Cocktail-Catalog/pkg/upload"
	"context"
	"fmt"
	"io"
	"log/slog"
	"net"
	"os"
	"path/filepath"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// bodyLimit must stay above domain.MaxUploadSize: fiber answers larger
// bodies with 413 before any handler runs.
const bodyLimit = 16 * 1024 * 1024

// Options tweak NewApp for embedding and tests.
type Options struct {
	// AccessLog receives the HTTP access log. Nil means cfg.LogFile, or
	// stdout when that is empty.
	AccessLog io.Writer
	// Backend replaces the HTTP API client used by the catalog page.
	Backend ui.Backend
	// DisablePages mounts only the JSON API.
	DisablePages bool
}

func NewApp(ctx context.Context, db *gorm.DB, cfg utils.Config, opts Options) (*fiber.App, error) {
	utils.InitValidator()
	app := fiber.New(fiber.Config{
		AppName:               "Cocktail Catalog",
		BodyLimit:             bodyLimit,
		ErrorHandler:          middleware.ErrorHandler,
		DisableStartupMessage: true,
	})
	middlewares := middleware.NewMiddleware()
	validator := utils.Validate

	// setting up logging and limiter
	accessLog := opts.AccessLog
	if accessLog == nil {
		w, err := openAccessLog(cfg.LogFile)
		if err != nil {
			return nil, err
		}
		accessLog = w
	}
	app.Use(recover.New())
	app.Use(requestid.New(requestid.Config{Generator: uuid.NewString}))
	app.Use(logger.New(logger.Config{
		Format:     "${time} | ${status} | ${latency} | ${ip} | ${method} | ${path} | ${locals:requestid} | ${error}\n",
		TimeFormat: "2006-01-02 15:04:05",
		TimeZone:   "UTC",
		Output:     accessLog,
	}))
	app.Use(compress.New(compress.Config{Level: compress.LevelBestSpeed}))
	if cfg.RateLimit > 0 {
		app.Use(limiter.New(limiter.Config{
			// Loopback traffic is the catalog page calling its own API.
			Next: func(c *fiber.Ctx) bool {
				return isLoopback(c.IP())
			},
			Max:        cfg.RateLimit,
			Expiration: 1 * time.Second,
			LimitReached: func(c *fiber.Ctx) error {
				return presenters.ErrorResponse(c, fiber.StatusTooManyRequests, domain.MessageFailedProcessRequest, fiber.ErrTooManyRequests)
			},
		}))
	}

	// utils
	imageStorage, uploadDir, err := newImageStorage(ctx, cfg)
	if err != nil {
		return nil, err
	}

	// Repository
	entryRepository := entry.NewEntryRepository(db)

	// Service
	entryService := entry.NewEntryService(entryRepository)
	uploadService := upload.NewUploadService(imageStorage)

	// Handler
	entryHandler := handlers.NewEntryHandler(entryService, validator)
	uploadHandler := handlers.NewUploadHandler(uploadService)

	var pageHandler handlers.PageHandler
	if !opts.DisablePages {
		backend := opts.Backend
		if backend == nil {
			backend = client.New(cfg.APIBaseURL, nil)
		}
		pageHandler = handlers.NewPageHandler(ui.NewController(backend))
	}

	// routes
	routesConfig := routes.Config{
		App:           app,
		EntryHandler:  entryHandler,
		UploadHandler: uploadHandler,
		PageHandler:   pageHandler,
		Middleware:    middlewares,
		UploadDir:     uploadDir,
	}
	routesConfig.Setup()
	return app, nil
}

// newImageStorage returns the configured backend and, for local storage,
// the directory to serve under /uploads.
func newImageStorage(ctx context.Context, cfg utils.Config) (storage.ImageStorage, string, error) {
	switch cfg.StorageDriver {
	case "s3":
		s3, err := storage.NewAwsS3(ctx, storage.S3Config{
			Bucket:    cfg.AWSS3Bucket,
			Region:    cfg.AWSS3Region,
			AccessKey: cfg.AWSAccessKey,
			SecretKey: cfg.AWSSecretKey,
			Endpoint:  cfg.AWSS3Endpoint,
			PublicURL: cfg.AWSS3PublicURL,
		})
		if err != nil {
			return nil, "", err
		}
		slog.Info("storing images in s3", slog.String("bucket", cfg.AWSS3Bucket))
		return s3, "", nil
	case "local", "":
		local, err := storage.NewLocalStorage(cfg.UploadDir)
		if err != nil {
			return nil, "", err
		}
		slog.Info("storing images locally", slog.String("dir", cfg.UploadDir))
		return local, cfg.UploadDir, nil
	default:
		return nil, "", fmt.Errorf("unsupported STORAGE_DRIVER %q", cfg.StorageDriver)
	}
}

func isLoopback(ip string) bool {
	parsed := net.ParseIP(ip)
	return parsed != nil && parsed.IsLoopback()
}

func openAccessLog(path string) (io.Writer, error) {
	if path == "" {
		return os.Stdout, nil
	}
	if err := os.MkdirAll(filepath.Dir(path), os.ModePerm); err != nil {
		return nil, fmt.Errorf("error creating logs directory: %w", err)
	}
	file, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0o666)
	if err != nil {
		return nil, fmt.Errorf("error opening access log: %w", err)
	}
	return file, nil
}
