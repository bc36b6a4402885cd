// @title         resumematch API
// @version       1.0
// @description   Извлечение навыков из резюме (PDF/DOCX) по каталогу и оценка соответствия резюме тексту вакансии.
// @BasePath      /api/v1
// @schemes       http
// @host          localhost:8080
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	swagger "github.com/gofiber/swagger"

	_ "github.com/artem13815/resumematch/docs"

	// internal imports
	"github.com/artem13815/resumematch/api/http"
	"github.com/artem13815/resumematch/api/http/handlers"
	"github.com/artem13815/resumematch/pkg/analysis"
	"github.com/artem13815/resumematch/pkg/config"
	"github.com/artem13815/resumematch/pkg/health"
	"github.com/artem13815/resumematch/pkg/health/checkers"
	"github.com/artem13815/resumematch/pkg/repository"
	"github.com/artem13815/resumematch/pkg/resume"
	"github.com/artem13815/resumematch/pkg/skill"
)

func main() {
	// Load configuration from env/.env
	cfg := config.Load()
	slog.SetDefault(cfg.Logger())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	stores, err := repository.Open(ctx, cfg)
	if err != nil {
		fatal("store open", err, slog.String("driver", cfg.StoreDriver))
	}
	defer stores.Close()

	if cfg.CatalogSeedFile != "" {
		defs, err := skill.NewFileSource(cfg.CatalogSeedFile).FetchAll(ctx)
		if err != nil {
			fatal("read seed catalog", err, slog.String("file", cfg.CatalogSeedFile))
		}
		n, err := repository.SeedIfEmpty(ctx, stores.Skills, defs)
		if err != nil {
			fatal("seed skill catalog", err)
		}
		if n > 0 {
			slog.Info("skill catalog seeded", slog.Int("count", n), slog.String("file", cfg.CatalogSeedFile))
		}
	}

	// Каталог должен быть загружен до приёма запросов
	cache := skill.NewCache(stores.Skills)
	if err := cache.Load(ctx); err != nil {
		fatal("initial skill catalog load", err)
	}
	extractor := skill.NewExtractor(cache)

	parseUC := resume.NewParseService(resume.NewFileTextExtractor(cfg.UploadDir), extractor)
	matchUC := analysis.NewService(stores.History, extractor, cfg.HistoryLimit)
	readiness := health.NewService(stores.Checker, checkers.NewCatalogChecker(cache))

	app := fiber.New(fiber.Config{
		// multipart framing on top of the file itself
		BodyLimit: cfg.MaxUploadBytes() + 1<<20,
	})
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{AllowOrigins: cfg.CORSOrigins}))

	http.Register(app, http.Handlers{
		Health: handlers.NewHealthHandler(readiness),
		Resume: handlers.NewResumeHandler(parseUC, int64(cfg.MaxUploadBytes())),
		Match:  handlers.NewMatchHandler(matchUC),
		Skills: handlers.NewSkillHandler(cache, stores.Skills),
	})

	// Swagger UI
	app.Get("/swagger/*", swagger.HandlerDefault)

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := app.ShutdownWithContext(shutdownCtx); err != nil {
			slog.Error("server shutdown", slog.Any("error", err))
		}
	}()

	slog.Info("HTTP server listening",
		slog.String("port", cfg.Port),
		slog.String("driver", cfg.StoreDriver),
		slog.Int("skills", cache.Len()),
	)
	if err := app.Listen(":" + cfg.Port); err != nil {
		fatal("server stopped", err)
	}
}

func fatal(msg string, err error, attrs ...any) {
	slog.Error(msg, append(attrs, slog.Any("error", err))...)
	os.Exit(1)
}
