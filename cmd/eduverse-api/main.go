package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/noah-isme/eduverse-api/internal/fallback"
	"github.com/noah-isme/eduverse-api/internal/handler"
	"github.com/noah-isme/eduverse-api/internal/repository"
	"github.com/noah-isme/eduverse-api/internal/router"
	"github.com/noah-isme/eduverse-api/internal/service"
	"github.com/noah-isme/eduverse-api/pkg/cache"
	"github.com/noah-isme/eduverse-api/pkg/config"
	"github.com/noah-isme/eduverse-api/pkg/database"
	"github.com/noah-isme/eduverse-api/pkg/jobs"
	"github.com/noah-isme/eduverse-api/pkg/logger"
)

// @title EduVerse API
// @version 1.0.0
// @description Student, teacher, and parent portal backend with offline fallback data and an AI study coach
// @BasePath /
// @schemes http

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := database.NewPostgres(cfg.Store, logr)
	if err != nil {
		logr.Fatal("failed to open store pool", zap.Error(err))
	}
	defer db.Close()

	if cfg.Store.Configured && cfg.Store.AutoMigrate {
		if err := database.RunMigrations(db.DB, logr); err != nil {
			logr.Error("migrations failed, continuing with fallback reads", zap.Error(err))
		}
	}

	redisClient, err := cache.NewRedis(cfg.Redis)
	if err != nil {
		logr.Warn("redis unavailable, mood is kept in memory", zap.String("addr", cache.Addr(cfg.Redis)), zap.Error(err))
		redisClient = nil
	}
	kv := repository.NewKVRepository(redisClient)
	defer kv.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	metrics := service.NewMetricsService()
	validate := validator.New()
	data := service.NewDataService(service.DataServiceParams{
		Repos:     repositories(cfg.Store, db),
		Fallback:  fallback.New(time.Now()),
		Policy:    service.PolicyFromConfig(cfg.Data.FallbackOnEmpty),
		Metrics:   metrics,
		Validator: validate,
		Logger:    logr,
	})

	writes := jobs.NewQueue("datastore-writes", service.ExecuteWriteJob, jobs.QueueConfig{
		Workers:    cfg.Data.WriteWorkers,
		BufferSize: cfg.Data.WriteBuffer,
		Logger:     logr,
	})
	writes.Start(ctx)
	data.SetWriter(writes)

	coach := service.NewCoachService(service.CoachServiceParams{
		APIKey:    cfg.Gemini.APIKey,
		NewClient: service.GeminiFactory(cfg.Gemini),
		Metrics:   metrics,
		Logger:    logr,
	})
	if !coach.Configured() {
		logr.Warn("no model API key configured, coach answers will be placeholders")
	}
	moods := service.NewMoodService(kv, logr)
	exports := service.NewExportService(service.ExportServiceParams{Data: data, Logger: logr})

	engine := router.New(router.Options{
		Env:            cfg.Env,
		APIPrefix:      cfg.APIPrefix,
		AllowedOrigins: cfg.CORS.AllowedOrigins,
		Logger:         logr,
		Metrics:        metrics,
	}, router.Handlers{
		Users:         handler.NewUserHandler(data, moods),
		Tasks:         handler.NewTaskHandler(data),
		Habits:        handler.NewHabitHandler(data),
		Timetable:     handler.NewTimetableHandler(data),
		Export:        handler.NewExportHandler(exports),
		Messages:      handler.NewMessageHandler(data),
		Announcements: handler.NewAnnouncementHandler(data),
		Coach:         handler.NewCoachHandler(coach, data, validate),
		Metrics:       handler.NewMetricsHandler(metrics, db, coach),
	})

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      engine,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: cfg.Gemini.Timeout + 15*time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logr.Sugar().Infow("server starting", "addr", srv.Addr, "env", cfg.Env, "store_configured", cfg.Store.Configured)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logr.Sugar().Fatalw("server failed", "error", err)
		}
	}()

	<-ctx.Done()
	logr.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logr.Error("server shutdown failed", zap.Error(err))
	}
	writes.Stop()
}

// repositories wires the remote store. Without credentials every read goes straight to the
// fallback dataset instead of dialing the placeholder.
func repositories(store config.StoreConfig, db *sqlx.DB) service.DataRepositories {
	if !store.Configured {
		return service.DataRepositories{}
	}
	return service.DataRepositories{
		Profiles:      repository.NewProfileRepository(db),
		Tasks:         repository.NewTaskRepository(db),
		Habits:        repository.NewHabitRepository(db),
		Timetable:     repository.NewTimetableRepository(db),
		Conversations: repository.NewConversationRepository(db),
		Messages:      repository.NewMessageRepository(db),
		Announcements: repository.NewAnnouncementRepository(db),
	}
}
