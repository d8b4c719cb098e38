package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/mzumara/wms-backend/internal/modules/assignment"
	"github.com/mzumara/wms-backend/internal/modules/auth"
	"github.com/mzumara/wms-backend/internal/modules/catalog"
	"github.com/mzumara/wms-backend/internal/modules/dashboard"
	"github.com/mzumara/wms-backend/internal/modules/sales"
	"github.com/mzumara/wms-backend/internal/modules/settings"
	"github.com/mzumara/wms-backend/internal/modules/user"
	"github.com/mzumara/wms-backend/internal/modules/warehouse"
	"github.com/mzumara/wms-backend/internal/storage"
)

func main() {
	_ = godotenv.Load()

	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	if level, err := zerolog.ParseLevel(envOr("LOG_LEVEL", "info")); err == nil {
		logger = logger.Level(level)
	}

	ctx := context.Background()

	kv, err := openStorage(ctx)
	if err != nil {
		logger.Fatal().Err(err).Msg("open storage")
	}

	// ── State store (seeds the demo dataset on first run) ────────
	store, err := warehouse.NewStore(ctx, kv, logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("open state store")
	}

	// ── Identity ─────────────────────────────────────────────────
	secret := []byte(envOr("JWT_SECRET", "dev-secret-change-me"))
	users := user.NewService(user.NewKVRepository(kv))
	authService := auth.NewService(users, secret)
	authMW := auth.NewMiddleware(secret)

	// ── Router ───────────────────────────────────────────────────
	router := chi.NewRouter()
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(middleware.RequestID)

	auth.NewHandler(authService).RegisterRoutes(router)
	catalog.NewHandler(catalog.NewService(store), authMW).RegisterRoutes(router)
	sales.NewHandler(sales.NewService(store), authMW).RegisterRoutes(router)
	assignment.NewHandler(assignment.NewService(store), authMW).RegisterRoutes(router)
	settings.NewHandler(settings.NewService(store), authMW).RegisterRoutes(router)
	dashboard.NewHandler(dashboard.NewService(store)).RegisterRoutes(router)

	port := envOr("APP_PORT", "8080")
	logger.Info().Str("port", port).Msg("listening")
	if err := http.ListenAndServe(":"+port, router); err != nil {
		logger.Fatal().Err(err).Msg("server stopped")
	}
}

// openStorage selects the persistence driver from STORAGE_DRIVER.
func openStorage(ctx context.Context) (storage.Store, error) {
	switch driver := envOr("STORAGE_DRIVER", "file"); driver {
	case "file":
		return storage.NewFileStore(envOr("DATA_DIR", "data"))
	case "redis":
		client := redis.NewClient(&redis.Options{Addr: envOr("REDIS_ADDR", "localhost:6379")})
		if err := client.Ping(ctx).Err(); err != nil {
			return nil, fmt.Errorf("ping redis: %w", err)
		}
		return storage.NewRedisStore(client), nil
	case "postgres":
		db, err := sql.Open("postgres", os.Getenv("DATABASE_URL"))
		if err != nil {
			return nil, err
		}
		if err := db.PingContext(ctx); err != nil {
			return nil, fmt.Errorf("ping postgres: %w", err)
		}
		return storage.NewPostgresStore(ctx, db)
	default:
		return nil, fmt.Errorf("unknown storage driver %q", driver)
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
