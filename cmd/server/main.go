package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"runtime"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/healthcheck"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/pprof"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/scholarbot/scholarbot-api/internal/catalog"
	"github.com/scholarbot/scholarbot-api/internal/config"
	"github.com/scholarbot/scholarbot-api/internal/domain/fiber/handler"
	"github.com/scholarbot/scholarbot-api/internal/middleware"
	"github.com/scholarbot/scholarbot-api/internal/model"
	"github.com/scholarbot/scholarbot-api/internal/repository"
	"github.com/scholarbot/scholarbot-api/internal/service"
	"github.com/scholarbot/scholarbot-api/internal/usecase"
)

func main() {
	ctx := context.Background()
	err := godotenv.Load()
	if err != nil {
		log.Println("Could not load .env file")
	}

	appConfig := config.LoadAppConfig()

	app := fiber.New(fiber.Config{
		AppName: appConfig.Name,
		ErrorHandler: func(ctx *fiber.Ctx, err error) error {
			// Status code defaults to 500
			code := fiber.StatusInternalServerError

			// Retrieve the custom status code if it's a *fiber.Error
			var e *fiber.Error
			if errors.As(err, &e) {
				code = e.Code
			}

			message := err.Error()
			if message == "" {
				message = "Internal Server Error"
			}

			return ctx.Status(code).JSON(fiber.Map{"error": message})
		},
	})
	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
	}))
	app.Use(recover.New(recover.Config{
		EnableStackTrace: config.LoadAppConfig().Env != "production",
	}))

	app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed, // 1
	}))
	app.Use(pprof.New(pprof.Config{
		Next: func(c *fiber.Ctx) bool {
			return config.LoadAppConfig().Env != "production"
		},
	}))
	app.Use(healthcheck.New())

	app.Use(helmet.New(helmet.Config{
		CrossOriginResourcePolicy: "cross-origin",
	}))

	app.Use(middleware.RateLimiter(50, 1*time.Minute))

	db := ConnectDB()

	store := catalog.NewStore()
	supabaseConfig := config.LoadSupabaseConfig()
	supabase := catalog.NewSupabaseClient(supabaseConfig.URL, supabaseConfig.APIKey)

	gemini, err := service.NewGeminiService(ctx)
	if err != nil {
		log.Fatal(err)
	}

	profileRepo := repository.NewProfileRepository(db)
	letterRepo := repository.NewLetterRepository(db)
	templateRepo := repository.NewTemplateRepository(db)
	scholarshipRepo := repository.NewScholarshipRepository(db)

	if err := templateRepo.SeedDefaults(); err != nil {
		log.Fatal("template seed failed: ", err)
	}

	catalogUc := usecase.NewCatalogUsecase(store, supabase, scholarshipRepo, gemini)
	profileUc := usecase.NewProfileUsecase(profileRepo)
	matchUc := usecase.NewMatchUsecase(store, profileRepo)
	letterUc := usecase.NewLetterUsecase(store, profileRepo, letterRepo, templateRepo, gemini)

	handler.NewScholarshipHandler(catalogUc).RegisterRoutes(app)
	handler.NewProfileHandler(profileUc, matchUc, letterUc).RegisterRoutes(app)
	handler.NewLetterHandler(letterUc).RegisterRoutes(app)

	// Best-effort catalog refresh on boot. The built-in list serves until
	// the remote sync lands.
	if supabase.Configured() {
		go func() {
			syncCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()
			count, err := catalogUc.Sync(syncCtx)
			if err != nil {
				log.Printf("startup catalog sync failed, serving built-in list: %v", err)
				return
			}
			log.Printf("startup catalog sync loaded %d scholarships", count)
		}()
	}

	// Monitor goroutine count
	go func() {
		ticker := time.NewTicker(1 * time.Minute)
		defer ticker.Stop()

		for range ticker.C {
			log.Printf("Active goroutines: %d", runtime.NumGoroutine())
		}
	}()

	log.Println("Server running on ", appConfig.Port)
	if err := app.Listen(appConfig.Port); err != nil {
		log.Fatal(err)
	}
}

func ConnectDB() *gorm.DB {
	dbConfig := config.LoadDBConfig()
	appConfig := config.LoadAppConfig()

	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=UTC",
		dbConfig.Host,
		dbConfig.User,
		dbConfig.Password,
		dbConfig.Name,
		dbConfig.Port,
		dbConfig.SSLMode,
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Could not connect to database: %v", err)
	}
	pgDB, err := db.DB()
	if err != nil {
		log.Fatalf("Could not get database instance: %v", err)
	}
	if appConfig.Env != "production" {
		pgDB.SetMaxIdleConns(5)
		pgDB.SetMaxOpenConns(10)
		pgDB.SetConnMaxLifetime(30 * time.Minute)
	} else {
		pgDB.SetMaxIdleConns(20)
		pgDB.SetMaxOpenConns(200)
		pgDB.SetConnMaxLifetime(time.Hour)
	}

	if err := db.Exec("CREATE EXTENSION IF NOT EXISTS vector").Error; err != nil {
		log.Fatal("pgvector extension missing: ", err)
	}
	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS "uuid-ossp"`).Error; err != nil {
		log.Fatal("uuid-ossp extension missing: ", err)
	}

	err = db.AutoMigrate(&model.Profile{}, &model.Letter{}, &model.Template{}, &model.Scholarship{})
	if err != nil {
		log.Fatal("migration failed: ", err)
	}
	return db
}
