package main

import (
	"context"
	"log"
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/websocket/v2"
	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"

	"pawhaven/internal/config"
	"pawhaven/internal/handler"
	"pawhaven/internal/jobs"
	"pawhaven/internal/middleware"
	"pawhaven/internal/realtime"
	"pawhaven/internal/repository"
	"pawhaven/internal/service"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := config.Load()

	db, err := config.NewPostgresDB(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	redisClient, err := config.NewRedisClient(cfg)
	if err != nil {
		log.Printf("Warning: Failed to connect to Redis: %v (caching disabled)", err)
		redisClient = nil
	}
	if redisClient != nil {
		defer redisClient.Close()
	}

	hub := realtime.NewHub()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go hub.Run(ctx)

	repos := repository.NewRepositories(db)
	services := service.NewServices(repos, redisClient, hub, cfg)
	handlers := handler.NewHandlers(services)

	scheduler := cron.New()
	if err := jobs.ScheduleRetention(scheduler, repos.Notification, cfg.NotificationRetention); err != nil {
		log.Fatalf("Failed to schedule retention job: %v", err)
	}
	scheduler.Start()
	defer scheduler.Stop()

	app := fiber.New(fiber.Config{
		ErrorHandler: middleware.ErrorHandler,
	})

	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		Next: func(c *fiber.Ctx) bool {
			return c.Path() == "/health"
		},
	}))
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.CORSOrigins,
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET, POST, PUT, PATCH, DELETE, OPTIONS",
	}))

	setupRoutes(app, handlers, hub, cfg)

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.Port
	}

	log.Printf("Server starting on port %s", port)
	if err := app.Listen(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func setupRoutes(app *fiber.App, h *handler.Handlers, hub *realtime.Hub, cfg *config.Config) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	app.Use("/ws", handler.WebSocketUpgrade())
	app.Get("/ws", websocket.New(handler.HandleWebSocket(hub)))

	v1 := app.Group("/api/v1")

	pets := v1.Group("/pets")
	pets.Get("/", h.Pet.List)
	pets.Get("/:id", h.Pet.Get)

	adoptions := v1.Group("/adoptions")
	adoptions.Post("/", h.Adoption.Create)
	adoptions.Get("/pet/:petId", h.Adoption.ListByPet)

	notifications := v1.Group("/notifications")
	notifications.Get("/user/:userId", h.Notification.ListForUser)
	notifications.Get("/user/:userId/unread-count", h.Notification.UnreadCount)
	notifications.Patch("/:id/read", h.Notification.ToggleRead)

	operator := v1.Group("", middleware.AuthRequired(cfg.JWTSecret), middleware.RequireOperator())
	operator.Post("/pets", h.Pet.Create)
	operator.Delete("/pets/:id", h.Pet.Delete)
	operator.Get("/adoptions/admin", h.Adoption.ListAdmin)
	operator.Put("/adoptions/:id/status", h.Adoption.UpdateStatus)
	operator.Delete("/adoptions/:id", h.Adoption.Delete)
	operator.Post("/notifications", h.Notification.Create)
	operator.Post("/notifications/broadcast", h.Notification.Broadcast)
	operator.Get("/notifications", h.Notification.ListAll)
	operator.Put("/notifications/:id", h.Notification.Update)
	operator.Delete("/notifications/:id", h.Notification.Delete)
}
