package main

import (
	"context"
	"expvar"
	"log"
	"time"

	"github.com/gofiber/adaptor/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"fittrack/backend/aiclient"
	"fittrack/backend/config"
	"fittrack/backend/database"
	"fittrack/backend/handlers"
	"fittrack/backend/mealplan"
	"fittrack/backend/middleware"
	"fittrack/backend/nutrition"
	"fittrack/backend/planstore"
	"fittrack/backend/services"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Tokens cannot be verified without a secret
	if cfg.JWTSecret == "" {
		log.Fatal("JWT_SECRET must be set")
	}

	if err := database.ConnectDB(cfg); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.CloseDB()

	strategy, err := nutrition.Lookup(cfg.NutritionStrategy)
	if err != nil {
		log.Fatalf("Invalid NUTRITION_STRATEGY: %v", err)
	}
	log.Printf("Using nutrition strategy %s", strategy.Name())

	var store planstore.PlanStore = planstore.NewMemoryStore()
	if cfg.RedisURL != "" {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		redisStore, err := planstore.NewRedisStore(ctx, cfg.RedisURL, time.Duration(cfg.PlanTTLHours)*time.Hour)
		cancel()
		if err != nil {
			log.Printf("Warning: Redis plan store unavailable, keeping latest plans in memory: %v", err)
		} else {
			defer redisStore.Close()
			store = redisStore
		}
	}

	app := fiber.New()
	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(cors.New(cors.Config{AllowOrigins: cfg.CORSAllowOrigins}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{"status": "ok", "message": "FitTrack backend is running"})
	})

	apiV1 := app.Group("/api/v1")

	// --- Services ---
	profileService := services.NewProfileService(database.DB)
	weightService := services.NewWeightService(database.DB)
	preferenceService := services.NewPreferenceService(database.DB)
	generator := mealplan.NewGenerator()
	aiClient := aiclient.NewClient(aiclient.Config{
		APIKey:        cfg.AIAPIKey,
		BaseURL:       cfg.AIBaseURL,
		Model:         cfg.AIModel,
		Temperature:   cfg.AITemperature,
		Timeout:       time.Duration(cfg.AITimeoutSeconds) * time.Second,
		RatePerMinute: cfg.AIRatePerMinute,
		Burst:         cfg.AIBurst,
	})
	planService := services.NewPlanService(services.PlanDeps{
		Profiles:    profileService,
		Weights:     weightService,
		Preferences: preferenceService,
		AI:          aiClient,
		Local:       generator,
		Strategy:    strategy,
		Store:       store,
	})

	authMiddleware := middleware.Protected(cfg)

	// --- Routes ---
	handlers.SetupProfileRoutes(apiV1, profileService, authMiddleware)
	handlers.SetupWeightRoutes(apiV1, weightService, authMiddleware)
	handlers.SetupPreferenceRoutes(apiV1, preferenceService, authMiddleware)
	handlers.SetupMealPlanRoutes(apiV1, planService, generator, authMiddleware)

	// Plan generation counters, served by the net/http expvar handler
	apiV1.Get("/debug/vars", authMiddleware, adaptor.HTTPHandler(expvar.Handler()))

	log.Printf("Starting FitTrack backend server on port %s", cfg.ServerPort)
	log.Fatal(app.Listen(":" + cfg.ServerPort))
}
