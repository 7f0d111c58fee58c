package main

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/memovasquez/hydrant/api/swagger"
	"github.com/memovasquez/hydrant/internal/handler"
	"github.com/memovasquez/hydrant/internal/middleware"
	"github.com/memovasquez/hydrant/internal/repository"
	"github.com/memovasquez/hydrant/internal/service"
	"github.com/memovasquez/hydrant/pkg/cache"
	"github.com/memovasquez/hydrant/pkg/config"
	"github.com/memovasquez/hydrant/pkg/database"
	"github.com/memovasquez/hydrant/pkg/logger"
	corsmiddleware "github.com/memovasquez/hydrant/pkg/middleware/cors"
	reqidmiddleware "github.com/memovasquez/hydrant/pkg/middleware/requestid"
)

// @title Hydrant API
// @version 0.1.0
// @description Weekly course planner: catalog browse, session planning, schedule export
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

	var catalogSource service.CatalogSource
	switch cfg.Catalog.Source {
	case config.CatalogSourcePostgres:
		db, err := database.NewPostgres(cfg.Database)
		if err != nil {
			logr.Sugar().Fatalw("failed to connect to postgres", "error", err)
		}
		defer db.Close() //nolint:errcheck
		catalogSource = repository.NewCatalogRepository(db)
	default:
		fileSource, err := repository.NewCatalogFileRepository(cfg.Catalog.Path)
		if err != nil {
			logr.Sugar().Fatalw("failed to load catalog snapshot", "path", cfg.Catalog.Path, "error", err)
		}
		logr.Sugar().Infow("catalog snapshot loaded", "path", cfg.Catalog.Path, "classes", fileSource.Len())
		catalogSource = fileSource
	}

	var responseStore *cache.ResponseStore
	if cfg.Cache.Enabled {
		redisClient, err := cache.NewRedis(cfg.Redis)
		if err != nil {
			logr.Sugar().Warnw("redis unavailable, response cache disabled", "error", err)
		} else {
			defer redisClient.Close() //nolint:errcheck
			responseStore = cache.NewResponseStore(redisClient, cfg.Cache.TTL)
		}
	}

	validate := validator.New()

	// The metrics service is built before the planner exists, so the active
	// session gauge reads through a closure that tolerates the gap.
	var plannerService *service.PlannerService
	var metricsService *service.MetricsService
	if cfg.Metrics.Enabled {
		metricsService = service.NewMetricsService(func() int {
			if plannerService == nil {
				return 0
			}
			return plannerService.SessionCount()
		})
	}

	catalogService := service.NewCatalogService(catalogSource, metricsService, logr)
	plannerService = service.NewPlannerService(catalogService, validate, logr, cfg.Session.TTL)
	sessionService := service.NewSessionService(service.SessionConfig{Secret: cfg.Session.Secret, TTL: cfg.Session.TTL}, logr)
	exportService := service.NewExportService(plannerService, logr, cfg.Export.Enabled)

	catalogHandler := handler.NewCatalogHandler(catalogService)
	plannerHandler := handler.NewPlannerHandler(plannerService, sessionService)
	exportHandler := handler.NewExportHandler(exportService)
	metricsHandler := handler.NewMetricsHandler(metricsService)

	// Idle sessions are reaped in the background; the store itself stays
	// lock-protected, so the sweeper needs no coordination with requests.
	go func() {
		ticker := time.NewTicker(time.Hour)
		defer ticker.Stop()
		for range ticker.C {
			if removed := plannerService.Sweep(); removed > 0 {
				logr.Sugar().Infow("expired planner sessions removed", "count", removed)
			}
		}
	}()

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	if metricsService != nil {
		r.Use(middleware.Metrics(metricsService))
	}

	r.GET("/health", metricsHandler.Health)
	r.GET("/ready", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	})
	if metricsService != nil {
		r.GET("/metrics", metricsHandler.Prometheus)
		r.GET("/status", metricsHandler.Status)
	}

	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	api := r.Group(cfg.APIPrefix)

	catalog := api.Group("/classes")
	if responseStore != nil {
		catalog.Use(middleware.CatalogCache(responseStore, metricsService))
	}
	catalog.GET("", catalogHandler.List)
	catalog.GET("/:number", catalogHandler.Get)

	api.POST("/sessions", plannerHandler.CreateSession)

	session := api.Group("/session")
	session.Use(middleware.Session(sessionService))
	session.GET("", plannerHandler.Snapshot)
	session.GET("/calendar", plannerHandler.Calendar)
	session.GET("/suggestions/:number", plannerHandler.Suggest)
	session.POST("/classes/:number", plannerHandler.AddClass)
	session.POST("/classes/:number/sections", plannerHandler.SelectSection)
	session.DELETE("/classes/:number/sections/:kind", plannerHandler.ClearSection)
	session.PUT("/classes/:number/sections/:kind/lock", plannerHandler.SetLock)
	session.DELETE("/activities/:id", plannerHandler.RemoveActivity)
	session.PUT("/activities/:id/color", plannerHandler.SetColor)
	session.POST("/events", plannerHandler.CreateEvent)
	session.PUT("/events/:id", plannerHandler.RenameEvent)
	session.POST("/events/:id/timeslots", plannerHandler.AddEventTimeslot)
	session.DELETE("/events/:id/timeslots", plannerHandler.RemoveEventTimeslot)
	session.GET("/export/pdf", exportHandler.PDF)
	session.GET("/export/csv", exportHandler.CSV)

	addr := fmt.Sprintf(":%d", cfg.Port)
	logr.Sugar().Infow("server starting", "addr", addr, "env", cfg.Env, "catalog_source", cfg.Catalog.Source)
	if err := r.Run(addr); err != nil {
		logr.Sugar().Fatalw("server failed", "error", err)
	}
}
