package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"equihire/screening-engine/internal/config"
	"equihire/screening-engine/internal/handlers"
	"equihire/screening-engine/internal/logging"
	"equihire/screening-engine/internal/ner"
	"equihire/screening-engine/internal/services"
)

func main() {
	log := logging.GetLogger()

	// Load configuration
	cfg := config.Load()
	logging.SetLogLevel(cfg.Log.Level)
	log.Info("✅ Config loaded successfully")

	ctx := context.Background()
	redactor := ner.NewDefaultRedactor()

	deps := initCollaborators(ctx, cfg, redactor)

	intelligenceService := services.NewIntelligenceService(deps.gemini, redactor)
	screeningService := services.NewScreeningService(services.ScreeningDeps{
		Profiles:     deps.profiles,
		Storage:      deps.storage,
		PDFParser:    services.NewPDFParserService(),
		Intelligence: intelligenceService,
		Index:        deps.index,
		Redactor:     redactor,
	})
	log.Info("✅ Services initialized successfully")

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "EquiHire Intelligence Engine",
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
		ErrorHandler: customErrorHandler,
	})

	// Middleware
	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		Format:     "[${time}] ${status} - ${latency} ${method} ${path}\n",
		TimeFormat: "2006-01-02 15:04:05",
	}))

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))

	handlers.RegisterRoutes(app, &handlers.Handlers{
		Health:    handlers.NewHealthHandler(deps.status()),
		Sanitize:  handlers.NewSanitizeHandler(redactor),
		Screening: handlers.NewScreeningHandler(screeningService, deps.index),
		Interview: handlers.NewInterviewHandler(intelligenceService),
		Reveal:    handlers.NewRevealHandler(deps.storage, deps.profiles),
	})
	log.Info("✅ Handlers initialized")

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		log.Info("🛑 Shutting down server...")
		if err := app.Shutdown(); err != nil {
			log.Errorf("❌ Server forced to shutdown: %v", err)
		}
	}()

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Infof("🚀 Server starting on %s", addr)

	if err := app.Listen(addr); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}

func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError

	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}

	return c.Status(code).JSON(fiber.Map{
		"error": err.Error(),
		"code":  code,
	})
}
