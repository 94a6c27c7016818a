package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/rs/cors"

	"mbox/internal/api"
	"mbox/internal/api/middleware"
	"mbox/internal/config"
	"mbox/internal/content"
	"mbox/internal/database"
	"mbox/internal/storage"
)

func main() {
	cfg := config.MustLoad()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	log.Printf("api bootstrapped with db host=%s port=%d db=%s sslmode=%s",
		cfg.Database.Host,
		cfg.Database.Port,
		cfg.Database.Name,
		cfg.Database.SSLMode,
	)

	db, err := database.InitDatabase(cfg.Database)
	if err != nil {
		log.Fatalf("init database: %v", err)
	}
	log.Printf("database connection ready")

	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("auto migrate: %v", err)
	}
	log.Printf("database migrated")

	mappings, err := buildMappings(cfg.Content)
	if err != nil {
		log.Fatalf("content mappings: %v", err)
	}

	opts := []content.Option{content.WithLogger(logger)}
	if cfg.MinIO.Enabled {
		storageClient, err := storage.NewClient(cfg.MinIO)
		if err != nil {
			log.Fatalf("init storage client: %v", err)
		}
		opts = append(opts, content.WithURLSigner(storageClient))
		log.Printf("media signing enabled, bucket=%s", cfg.MinIO.Bucket)
	}
	service := content.NewService(database.NewContentStore(db), mappings, opts...)

	var extra []gin.HandlerFunc
	if cfg.Redis.Enabled {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr(),
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer func() {
			if err := redisClient.Close(); err != nil {
				logger.Error("close redis client failed", slog.Any("error", err))
			}
		}()
		if err := redisClient.Ping(context.Background()).Err(); err != nil {
			// 限流失效时放行，不阻止启动。
			logger.Warn("ping redis failed", slog.Any("error", err))
		}
		if cfg.API.RateLimitPerMinute > 0 {
			extra = append(extra, middleware.RateLimitMiddleware(redisClient, cfg.API.RateLimitPerMinute, nil))
		}
	}

	router, err := api.NewRouter(logger, cfg.API.TrustedProxies)
	if err != nil {
		log.Fatalf("init router: %v", err)
	}
	api.RegisterRoutes(router, service, extra...)

	corsHandler := cors.New(cors.Options{
		AllowedOrigins: cfg.API.CORSAllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type", "X-Correlation-ID"},
		ExposedHeaders: []string{"X-Correlation-ID"},
	})

	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.API.Port),
		Handler: corsHandler.Handler(router),
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Printf("api listening on %s", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("failed to start api server: %v", err)
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down api server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.API.ShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", slog.Any("error", err))
	}
}

func buildMappings(cfg config.ContentConfig) (content.Mappings, error) {
	mappings := content.DefaultMappings()
	for kind, name := range map[content.Kind]string{
		content.KindCard:  cfg.CardSource,
		content.KindChart: cfg.ChartSource,
		content.KindVideo: cfg.VideoSource,
	} {
		source, err := content.ParseSource(name)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", kind, err)
		}
		mappings = mappings.WithSource(kind, source)
	}
	return mappings, nil
}
