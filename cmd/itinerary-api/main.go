// cmd/itinerary-api/main.go
package main

import (
	"context"
	"fmt"
	"net/http"
	_ "net/http/pprof"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/jameeshbx/trekking-b2b-sub001/internal/catalog"
	"github.com/jameeshbx/trekking-b2b-sub001/internal/common/config"
	"github.com/jameeshbx/trekking-b2b-sub001/internal/common/database"
	"github.com/jameeshbx/trekking-b2b-sub001/internal/common/logger"
	"github.com/jameeshbx/trekking-b2b-sub001/internal/common/observability"
	"github.com/jameeshbx/trekking-b2b-sub001/internal/enquiry"
	"github.com/jameeshbx/trekking-b2b-sub001/internal/match"
	"github.com/jameeshbx/trekking-b2b-sub001/internal/resolver"
	"github.com/jameeshbx/trekking-b2b-sub001/pkg/registry"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		bootLog := logger.New("info", "console")
		bootLog.Fatal("config load failed", zap.Error(err))
	}

	zapLog := logger.New(cfg.Logging.Level, cfg.Logging.Format)
	defer zapLog.Sync()
	log := logger.NewZapAdapter(zapLog)

	zapLog.Info("starting itinerary api",
		zap.String("version", cfg.App.Version),
		zap.String("environment", cfg.App.Environment),
	)

	obs := observability.New(cfg.App.Name)
	defer obs.Shutdown()

	// --- Catalog + matcher ---
	builtin := catalog.BuiltinTemplates()
	keywords := match.DefaultKeywords()

	var reg *registry.TemplateRegistry
	if cfg.Catalog.RegistryPath != "" {
		reg, err = registry.LoadRegistry(cfg.Catalog.RegistryPath)
		if err != nil {
			zapLog.Fatal("template registry load failed",
				zap.String("path", cfg.Catalog.RegistryPath), zap.Error(err))
		}
		for _, entry := range reg.Templates {
			for _, keyword := range entry.Keywords {
				keywords[keyword] = entry.ID
			}
		}
	}

	store := catalog.NewStoreFromRegistry(builtin, reg)

	if !store.Has(cfg.Catalog.DefaultTemplateID) {
		zapLog.Fatal("default template id missing from catalog",
			zap.String("templateId", cfg.Catalog.DefaultTemplateID))
	}
	for keyword, id := range keywords {
		if !store.Has(id) {
			zapLog.Warn("keyword maps to unknown template, dropping",
				zap.String("keyword", keyword), zap.String("templateId", id))
			delete(keywords, keyword)
		}
	}

	if warnings := store.Verify(log); warnings > 0 {
		zapLog.Warn("catalog verification raised warnings", zap.Int("warnings", warnings))
	}

	matcher := match.New(keywords, cfg.Catalog.DefaultTemplateID)

	// --- Enquiry lookup collaborator ---
	source, cleanup, err := buildEnquirySource(cfg, log)
	if err != nil {
		zapLog.Fatal("enquiry source init failed", zap.Error(err))
	}
	defer cleanup()

	// --- Service + router ---
	svc := resolver.NewService(resolver.LoadConfig(cfg), store, matcher, source, obs, log)
	handler := resolver.NewHandler(svc, log)

	if cfg.App.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery(), requestIDMiddleware(), accessLogMiddleware(zapLog))

	api := router.Group("/api")
	handler.Register(api)

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "templates": len(store.IDs())})
	})
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	router.GET("/debug/pprof/*any", gin.WrapH(http.DefaultServeMux))

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Millisecond,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Millisecond,
	}

	go func() {
		zapLog.Info("listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zapLog.Fatal("server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	zapLog.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Millisecond)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		zapLog.Error("graceful shutdown failed", zap.Error(err))
	}
}

// buildEnquirySource wires the configured lookup implementation, optionally
// wrapped with the redis cache. The returned cleanup closes any connections.
func buildEnquirySource(cfg *config.Config, log logger.Logger) (enquiry.LocationSource, func(), error) {
	cleanup := func() {}

	var source enquiry.LocationSource
	switch cfg.Enquiry.Source {
	case "none":
		return nil, cleanup, nil
	case "http":
		source = enquiry.NewHTTPSource(
			cfg.Enquiry.BaseURL,
			cfg.Enquiry.APIKey,
			time.Duration(cfg.Enquiry.Timeout)*time.Millisecond,
		)
	case "postgres":
		pg, err := database.NewPostgres(cfg.Database.Postgres)
		if err != nil {
			return nil, cleanup, err
		}
		cleanup = func() { pg.Close() }
		source = enquiry.NewPostgresSource(pg.GetDB())
	default:
		return nil, cleanup, fmt.Errorf("unknown enquiry source %q", cfg.Enquiry.Source)
	}

	if cfg.Enquiry.CacheTTL > 0 && cfg.Database.Redis.Address != "" {
		rdb, err := database.NewRedis(cfg.Database.Redis)
		if err != nil {
			return nil, cleanup, err
		}
		prev := cleanup
		cleanup = func() { rdb.Close(); prev() }
		source = enquiry.NewCachedSource(
			source,
			rdb.GetClient(),
			time.Duration(cfg.Enquiry.CacheTTL)*time.Millisecond,
			log,
		)
	}

	return source, cleanup, nil
}

func requestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader("X-Request-Id")
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Set("requestId", requestID)
		c.Writer.Header().Set("X-Request-Id", requestID)
		c.Next()
	}
}

func accessLogMiddleware(zapLog *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		started := time.Now()
		c.Next()
		zapLog.Info("request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("duration", time.Since(started)),
			zap.String("requestId", c.GetString("requestId")),
		)
	}
}
