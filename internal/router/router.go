package router

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"alfredoptarigan/career-mentor/internal/handlers"
)

type Options struct {
	APIPrefix   string
	CORSOrigins []string
	// AccessLog enables the per-request log line.
	AccessLog bool
}

type Handlers struct {
	CareerForm *handlers.CareerFormHandler
	Roadmap    *handlers.RoadmapHandler
	Status     *handlers.StatusHandler
}

// New builds the fiber app with middleware and every route mounted under
// opts.APIPrefix.
func New(h Handlers, opts Options) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName: "AI Career Mentor API",
		// LLM generation happens inside the request.
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 120 * time.Second,
		ErrorHandler: ErrorHandler,
	})

	app.Use(recover.New())
	if opts.AccessLog {
		app.Use(fiberlogger.New(fiberlogger.Config{
			Format:     "[${time}] ${status} - ${latency} ${method} ${path}\n",
			TimeFormat: "2006-01-02 15:04:05",
		}))
	}
	app.Use(cors.New(corsConfig(opts.CORSOrigins)))

	prefix := opts.APIPrefix
	if prefix == "" {
		prefix = "/api"
	}
	api := app.Group(prefix)

	api.Get("/", handlers.HandleRoot)
	api.Post("/career-form", h.CareerForm.HandleSubmit)
	api.Get("/roadmap/:roadmap_id", h.Roadmap.HandleGetRoadmap)
	api.Post("/status", h.Status.HandleCreate)
	api.Get("/status", h.Status.HandleList)

	return app
}

func corsConfig(origins []string) cors.Config {
	allowOrigins := strings.Join(origins, ",")
	if allowOrigins == "" {
		allowOrigins = "*"
	}
	return cors.Config{
		AllowOrigins: allowOrigins,
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		// fiber rejects credentials with a wildcard origin.
		AllowCredentials: !strings.Contains(allowOrigins, "*"),
	}
}

func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError

	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}

	return c.Status(code).JSON(fiber.Map{
		"error": err.Error(),
		"code":  code,
	})
}
