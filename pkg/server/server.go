package server

import (
	"embed"
	"errors"
	"io/fs"
	"log"
	"net/http"
	"strings"
	"time"

	"schedfinder/pkg/lookup"
	"schedfinder/pkg/timetable"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/template/html/v2"
)

//go:embed views/*.html
var viewsFS embed.FS

// Config holds what the HTTP front end needs.
type Config struct {
	Service  *lookup.Service
	Location *time.Location
	// Now overrides the clock; tests pin it.
	Now func() time.Time
	// Quiet disables request logging.
	Quiet bool
}

// Server serves the JSON lookup endpoints and the HTML pages.
type Server struct {
	app *fiber.App
	svc *lookup.Service
	loc *time.Location
	now func() time.Time
}

// New builds the fiber app and registers every route.
func New(cfg Config) *Server {
	loc := cfg.Location
	if loc == nil {
		loc = time.Local
	}
	now := cfg.Now
	if now == nil {
		now = time.Now
	}

	sub, err := fs.Sub(viewsFS, "views")
	if err != nil {
		log.Fatalf("embedded views missing: %v", err)
	}
	engine := html.NewFileSystem(http.FS(sub), ".html")
	engine.AddFunc("lower", strings.ToLower)

	app := fiber.New(fiber.Config{
		Views:                 engine,
		ErrorHandler:          errorHandler,
		DisableStartupMessage: true,
	})

	app.Use(recover.New())
	if !cfg.Quiet {
		app.Use(logger.New())
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,HEAD",
		AllowHeaders: "Origin, Content-Type, Accept",
	}))

	s := &Server{
		app: app,
		svc: cfg.Service,
		loc: loc,
		now: func() time.Time { return now().In(loc) },
	}
	s.registerAPIRoutes()
	s.registerPageRoutes()
	return s
}

// App exposes the fiber app, mainly for app.Test.
func (s *Server) App() *fiber.App {
	return s.app
}

// Listen serves until the app is shut down.
func (s *Server) Listen(addr string) error {
	log.Printf("listening on %s", addr)
	return s.app.Listen(addr)
}

// Shutdown stops the listener.
func (s *Server) Shutdown() error {
	return s.app.Shutdown()
}

// statusFor maps lookup and engine errors to HTTP status codes.
func statusFor(err error) int {
	var fe *fiber.Error
	switch {
	case errors.As(err, &fe):
		return fe.Code
	case errors.Is(err, lookup.ErrUnknownStudent):
		return fiber.StatusNotFound
	case errors.Is(err, lookup.ErrRollRequired),
		errors.Is(err, timetable.ErrInvalidArgument),
		errors.Is(err, timetable.ErrPreconditionViolation):
		return fiber.StatusBadRequest
	}
	return fiber.StatusInternalServerError
}

func errorHandler(c *fiber.Ctx, err error) error {
	code := statusFor(err)
	msg := err.Error()
	if code == fiber.StatusInternalServerError {
		log.Printf("%s %s: %v", c.Method(), c.Path(), err)
		msg = "internal error"
	}
	return c.Status(code).JSON(fiber.Map{"error": msg})
}
