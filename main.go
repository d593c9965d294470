package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/seoatlas/seoatlas/handlers"
	"github.com/seoatlas/seoatlas/internal/clients"
	"github.com/seoatlas/seoatlas/internal/config"
	"github.com/seoatlas/seoatlas/internal/database"
	"github.com/seoatlas/seoatlas/internal/gmb"
	"github.com/seoatlas/seoatlas/internal/projects"
	"github.com/seoatlas/seoatlas/internal/websites"
	"github.com/seoatlas/seoatlas/pkg/logger"
	"github.com/seoatlas/seoatlas/pkg/metrics"
	"github.com/seoatlas/seoatlas/pkg/middleware"
)

var startTime = time.Now()

func main() {
	logger.Init(os.Getenv("LOG_LEVEL"))

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Fatalf("failed to load config: %v", err)
	}

	ctx := context.Background()

	// The service must not take traffic without a store connection; Connect
	// already retried, so a failure here is fatal.
	store := database.New(cfg.MongoDB.URI, cfg.MongoDB.Database, cfg.MongoDB.Timeout)
	if err := store.Connect(ctx); err != nil {
		logger.Fatalf("critical error during MongoDB connection: %v", err)
	}
	defer func() {
		if err := store.Close(ctx); err != nil {
			logger.Errorf("error during MongoDB shutdown: %v", err)
		}
	}()

	clientsCol := mustCollection(store, "clients")
	websitesCol := mustCollection(store, "websites")
	projectsCol := mustCollection(store, "projects")
	gmbCol := mustCollection(store, "gmb")

	clientRepo := clients.NewMongoRepository(clientsCol, projectsCol, cfg.MongoDB.CascadeStrict)
	websiteRepo := websites.NewMongoRepository(websitesCol, projectsCol, cfg.MongoDB.CascadeStrict)
	projectRepo := projects.NewMongoRepository(projectsCol)
	gmbRepo := gmb.NewMongoRepository(gmbCol)

	// Optional Redis, used only by the distributed rate limiter.
	var redisClient *redis.Client
	if cfg.Redis.Host != "" {
		redisClient = redis.NewClient(&redis.Options{Addr: cfg.Redis.Host + ":" + cfg.Redis.Port, Password: cfg.Redis.Password, DB: cfg.Redis.DB})
		if err := redisClient.Ping(ctx).Err(); err != nil {
			logger.Warnf("failed to connect to Redis (%s:%s): %v", cfg.Redis.Host, cfg.Redis.Port, err)
			redisClient = nil
		} else {
			logger.Infof("connected to Redis: %s:%s", cfg.Redis.Host, cfg.Redis.Port)
		}
	}

	if cfg.Server.Environment != "development" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(middleware.CORS())
	r.Use(gin.Logger(), gin.Recovery())
	r.Use(middleware.RequestMetrics())

	if cfg.RateLimit.Enabled {
		if cfg.RateLimit.UseRedis && redisClient != nil {
			win := time.Duration(cfg.RateLimit.WindowSeconds) * time.Second
			r.Use(middleware.RedisRateLimitMiddleware(redisClient, cfg.RateLimit.RPS, cfg.RateLimit.Burst, win))
		} else {
			r.Use(middleware.RateLimitMiddleware(cfg.RateLimit.RPS, cfg.RateLimit.Burst))
		}
	}

	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "healthy")
	})

	r.GET("/ready", func(c *gin.Context) {
		deps := map[string]bool{"storage": store.Ping(c.Request.Context()) == nil}
		if cfg.Redis.Host != "" && cfg.RateLimit.UseRedis {
			deps["redis"] = redisClient != nil
		} else {
			deps["redis"] = true
		}
		ready := deps["storage"] && deps["redis"]
		status := http.StatusOK
		state := "ready"
		if !ready {
			status = http.StatusServiceUnavailable
			state = "not_ready"
		}
		c.JSON(status, gin.H{"status": state, "deps": deps, "uptime": time.Since(startTime).String()})
	})

	handlers.RegisterClientRoutes(r, clientRepo)
	handlers.RegisterWebsiteRoutes(r, websiteRepo)
	handlers.RegisterProjectRoutes(r, projectRepo)
	handlers.RegisterGmbRoutes(r, gmbRepo)
	handlers.RegisterSwagger(r)

	metrics.RegisterCollectors(prometheus.DefaultRegisterer)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		logger.Infof("starting seoatlas backend on %s", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatalf("server failed: %v", err)
		}
	}()

	stop, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()
	<-stop.Done()

	logger.Info("shutting down")
	shutdownCtx, cancelShutdown := context.WithTimeout(ctx, 10*time.Second)
	defer cancelShutdown()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Errorf("server shutdown: %v", err)
	}
}

func mustCollection(store *database.Store, name string) *mongo.Collection {
	col, err := store.Collection(name)
	if err != nil {
		logger.Fatalf("collection %s: %v", name, err)
	}
	return col
}
