package main

import (
	"context"
	"errors"
	"log"
	"path/filepath"
	"time"

	"resume-relevance/internal/auth"
	"resume-relevance/internal/config"
	"resume-relevance/internal/domain/fiber/handler"
	"resume-relevance/internal/logger"
	"resume-relevance/internal/middleware"
	"resume-relevance/internal/repository"
	"resume-relevance/internal/service"
	"resume-relevance/internal/storage"
	"resume-relevance/internal/usecase"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/healthcheck"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/pprof"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	ctx := context.Background()
	if err := godotenv.Load(); err != nil {
		log.Println("Could not load .env file")
	}

	appConfig := config.LoadAppConfig()

	zlog, err := logger.New(appConfig.Env)
	if err != nil {
		log.Fatal(err)
	}
	defer zlog.Sync()

	app := fiber.New(fiber.Config{
		AppName: appConfig.Name,
		ErrorHandler: func(ctx *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError

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
	app.Use(fiberlogger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
	}))
	app.Use(recover.New(recover.Config{
		EnableStackTrace: appConfig.Env != "production",
	}))
	app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))
	app.Use(pprof.New(pprof.Config{
		Next: func(c *fiber.Ctx) bool {
			return appConfig.Env == "production"
		},
	}))
	app.Use(healthcheck.New())
	app.Use(helmet.New(helmet.Config{
		CrossOriginResourcePolicy: "cross-origin",
	}))
	app.Use(middleware.RateLimiter(50, 1*time.Minute))

	// one JSON-array file per collection
	dataDir := config.LoadStorageConfig().DataDir
	resumeRepo := repository.NewResumeRepository(storage.NewStore(filepath.Join(dataDir, "resumes.json")))
	jobRepo := repository.NewJobRepository(storage.NewStore(filepath.Join(dataDir, "jobs.json")))
	analysisRepo := repository.NewAnalysisRepository(storage.NewStore(filepath.Join(dataDir, "analyses.json")))
	userRepo := repository.NewUserRepository(storage.NewStore(filepath.Join(dataDir, "users.json")))
	logRepo := repository.NewAuditLogRepository(storage.NewStore(filepath.Join(dataDir, "logs.json")))

	sessions := auth.NewSessionStore(12 * time.Hour)
	app.Use(middleware.SessionAuth(sessions))
	app.Use(middleware.Audit(logRepo, zlog))

	analyzer := pickAnalyzer(ctx, zlog)
	scorer := service.NewMockScorer()
	uc := usecase.NewAnalysisUsecase(resumeRepo, jobRepo, analysisRepo, analyzer, scorer, zlog)

	api := app.Group("/api")
	handler.NewResumeHandler(resumeRepo, zlog).RegisterRoutes(api)
	handler.NewJobHandler(jobRepo, zlog).RegisterRoutes(api)
	handler.NewAnalysisHandler(uc, analysisRepo, zlog).RegisterRoutes(api)
	handler.NewAuthHandler(userRepo, sessions, zlog).RegisterRoutes(api)
	handler.NewAdminHandler(userRepo, logRepo, zlog).RegisterRoutes(api)

	zlog.Info("server starting", zap.String("port", appConfig.Port))
	if err := app.Listen(appConfig.Port); err != nil {
		zlog.Fatal("server stopped", zap.Error(err))
	}
}

// pickAnalyzer chooses the external analyzer backend from the environment.
// Gemini wins when both keys are present; with neither, every analysis uses
// the mock scoring path.
func pickAnalyzer(ctx context.Context, zlog *zap.Logger) service.RelevanceAnalyzer {
	if geminiConfig := config.LoadGeminiConfig(); geminiConfig.APIKey != "" {
		gemini, err := service.NewGeminiService(ctx, geminiConfig, zlog)
		if err != nil {
			zlog.Warn("gemini analyzer unavailable", zap.Error(err))
		} else {
			zlog.Info("using gemini analyzer", zap.String("model", geminiConfig.Model))
			return gemini
		}
	}
	if openAIConfig := config.LoadOpenAIConfig(); openAIConfig.APIKey != "" {
		zlog.Info("using openai analyzer", zap.String("model", openAIConfig.Model))
		return service.NewOpenAIService(openAIConfig, zlog)
	}
	zlog.Warn("no analyzer API key set, analyses will use mock scoring")
	return nil
}
