package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"slices"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"

	"github.com/sbilibin2017/places-api/internal/handlers"
	"github.com/sbilibin2017/places-api/internal/jwt"
	"github.com/sbilibin2017/places-api/internal/logger"
	"github.com/sbilibin2017/places-api/internal/middlewares"
	"github.com/sbilibin2017/places-api/internal/repositories"
	"github.com/sbilibin2017/places-api/internal/services"

	_ "github.com/jackc/pgx/v5/stdlib"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// config holds every setting read from the environment.
type config struct {
	AppHost  string
	AppPort  string
	LogLevel string

	PostgresHost         string
	PostgresPort         int
	PostgresUser         string
	PostgresPassword     string
	PostgresDB           string
	PostgresMaxOpenConns int
	PostgresMaxIdleConns int

	RedisHost         string
	RedisPort         int
	RedisDB           int
	RedisPassword     string
	RedisPoolSize     int
	RedisMinIdleConns int

	RateLimiterEnabled  bool
	RateLimiterRequests int64
	RateLimiterWindow   time.Duration

	JWTSecretKey  string
	JWTExpiration time.Duration

	KafkaBrokers []string
	KafkaTopic   string

	CORSAllowedOrigins []string
}

// postgresDSN builds the connection string for the pgx driver.
func (c config) postgresDSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		c.PostgresUser, c.PostgresPassword, c.PostgresHost, c.PostgresPort, c.PostgresDB)
}

// @title Places API
// @version 1.0.0
// @description Directory of places with user reviews and ratings
// @host localhost:8080
// @BasePath /
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	printBuildInfo()
	configPath := parseFlags()

	cfg, err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(), cfg); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// parseConfig loads environment variables from a file (if present) and returns
// the application, database, Redis, rate limiter, JWT, Kafka and CORS configuration.
func parseConfig(path string) (cfg config, err error) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}
	getInt := func(key, defaultValue string) (int, error) {
		v, err := strconv.Atoi(getEnv(key, defaultValue))
		if err != nil {
			return 0, fmt.Errorf("%s: %w", key, err)
		}
		return v, nil
	}
	getList := func(key, defaultValue string) []string {
		var out []string
		for _, item := range strings.Split(getEnv(key, defaultValue), ",") {
			if item = strings.TrimSpace(item); item != "" {
				out = append(out, item)
			}
		}
		return out
	}

	// Application config
	cfg.AppHost = getEnv("APP_HOST", "localhost")
	cfg.AppPort = getEnv("APP_PORT", "8080")
	cfg.LogLevel = getEnv("APP_LOG_LEVEL", "info")

	// PostgreSQL config
	cfg.PostgresHost = getEnv("POSTGRES_HOST", "localhost")
	cfg.PostgresUser = getEnv("POSTGRES_USER", "user")
	cfg.PostgresPassword = getEnv("POSTGRES_PASSWORD", "password")
	cfg.PostgresDB = getEnv("POSTGRES_DB", "database")
	if cfg.PostgresPort, err = getInt("POSTGRES_PORT", "5432"); err != nil {
		return
	}
	if cfg.PostgresMaxOpenConns, err = getInt("POSTGRES_MAX_OPEN_CONNS", "16"); err != nil {
		return
	}
	if cfg.PostgresMaxIdleConns, err = getInt("POSTGRES_MAX_IDLE_CONNS", "8"); err != nil {
		return
	}

	// Redis config
	cfg.RedisHost = getEnv("REDIS_HOST", "localhost")
	cfg.RedisPassword = getEnv("REDIS_PASSWORD", "")
	if cfg.RedisPort, err = getInt("REDIS_PORT", "6379"); err != nil {
		return
	}
	if cfg.RedisDB, err = getInt("REDIS_DB", "0"); err != nil {
		return
	}
	if cfg.RedisPoolSize, err = getInt("REDIS_POOL_SIZE", "10"); err != nil {
		return
	}
	if cfg.RedisMinIdleConns, err = getInt("REDIS_MIN_IDLE_CONNS", "2"); err != nil {
		return
	}

	// Rate limiter config
	if cfg.RateLimiterEnabled, err = strconv.ParseBool(getEnv("RATE_LIMITER_ENABLED", "false")); err != nil {
		err = fmt.Errorf("RATE_LIMITER_ENABLED: %w", err)
		return
	}
	requests, err := getInt("RATE_LIMITER_REQUESTS", "10")
	if err != nil {
		return
	}
	cfg.RateLimiterRequests = int64(requests)
	windowSecond, err := getInt("RATE_LIMITER_WINDOW_SECOND", "60")
	if err != nil {
		return
	}
	cfg.RateLimiterWindow = time.Duration(windowSecond) * time.Second

	// JWT config
	cfg.JWTSecretKey = getEnv("JWT_SECRET_KEY", "my_super_secret_key")
	jwtExpSecond, err := getInt("JWT_EXP_SECOND", "1800")
	if err != nil {
		return
	}
	cfg.JWTExpiration = time.Duration(jwtExpSecond) * time.Second

	// Kafka config
	cfg.KafkaBrokers = getList("KAFKA_BROKERS", "")
	cfg.KafkaTopic = getEnv("KAFKA_TOPIC", "places.events")

	// CORS config
	cfg.CORSAllowedOrigins = getList("CORS_ALLOWED_ORIGINS", "*")

	return cfg, nil
}

// run initializes the logger, database, optional Redis and Kafka clients, and HTTP server.
// It sets up routes, applies middleware, and handles graceful shutdown.
func run(ctx context.Context, cfg config) error {
	// Initialize logger
	if err := logger.Initialize(cfg.LogLevel); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Sync()
	logger.Log.Infof("Logger initialized with level %s", cfg.LogLevel)

	// Connect to PostgreSQL
	logger.Log.Infof("Connecting to PostgreSQL at %s:%d/%s", cfg.PostgresHost, cfg.PostgresPort, cfg.PostgresDB)
	db, err := sqlx.ConnectContext(ctx, "pgx", cfg.postgresDSN())
	if err != nil {
		return fmt.Errorf("PostgreSQL connection error: %w", err)
	}
	defer db.Close()
	db.SetMaxOpenConns(cfg.PostgresMaxOpenConns)
	db.SetMaxIdleConns(cfg.PostgresMaxIdleConns)

	if err := repositories.ApplySchema(ctx, db); err != nil {
		return fmt.Errorf("failed to apply schema: %w", err)
	}

	// Connect to Redis for the rate limiter
	var limiter middlewares.Limiter
	if cfg.RateLimiterEnabled {
		rdb := redis.NewClient(&redis.Options{
			Addr:         fmt.Sprintf("%s:%d", cfg.RedisHost, cfg.RedisPort),
			Password:     cfg.RedisPassword,
			DB:           cfg.RedisDB,
			PoolSize:     cfg.RedisPoolSize,
			MinIdleConns: cfg.RedisMinIdleConns,
		})
		if err := rdb.Ping(ctx).Err(); err != nil {
			return fmt.Errorf("Redis connection error: %w", err)
		}
		defer rdb.Close()
		limiter = repositories.NewRateLimitRepository(rdb, cfg.RateLimiterWindow)
		logger.Log.Infof("Rate limiter enabled: %d requests per %s", cfg.RateLimiterRequests, cfg.RateLimiterWindow)
	}

	// Kafka writer for place events
	var writer services.KafkaWriter
	if len(cfg.KafkaBrokers) > 0 {
		kw := &kafka.Writer{
			Addr:                   kafka.TCP(cfg.KafkaBrokers...),
			Topic:                  cfg.KafkaTopic,
			Balancer:               &kafka.Hash{},
			RequiredAcks:           kafka.RequireOne,
			AllowAutoTopicCreation: true,
			Async:                  true,
			Completion: func(messages []kafka.Message, err error) {
				if err != nil {
					logger.Log.Errorw("Failed to deliver events to Kafka", "count", len(messages), "error", err)
				}
			},
		}
		defer kw.Close()
		writer = kw
		logger.Log.Infof("Publishing place events to Kafka topic %s", cfg.KafkaTopic)
	}

	srv := &http.Server{
		Addr:              fmt.Sprintf("%s:%s", cfg.AppHost, cfg.AppPort),
		Handler:           newRouter(cfg, db, limiter, writer),
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		logger.Log.Infof("HTTP server listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	select {
	case <-ctxShutdown.Done():
		logger.Log.Info("Shutdown signal received, stopping HTTP server...")
	case serveErr := <-errChan:
		return serveErr
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorw("HTTP server shutdown error", "error", err)
	}

	logger.Log.Info("HTTP server stopped gracefully")
	return nil
}

// newRouter wires repositories, services and handlers into the HTTP routes.
// A nil limiter disables rate limiting; a nil writer disables event publishing.
func newRouter(cfg config, db *sqlx.DB, limiter middlewares.Limiter, writer services.KafkaWriter) http.Handler {
	tokens := jwt.New(
		jwt.WithSecretKey(cfg.JWTSecretKey),
		jwt.WithExpiration(cfg.JWTExpiration),
	)

	// Initialize repositories
	userReadRepo := repositories.NewUserReadRepository(db)
	userWriteRepo := repositories.NewUserWriteRepository(db)
	placeReadRepo := repositories.NewPlaceReadRepository(db)
	placeWriteRepo := repositories.NewPlaceWriteRepository(db)
	reviewReadRepo := repositories.NewReviewReadRepository(db)
	reviewWriteRepo := repositories.NewReviewWriteRepository(db)

	// Initialize services
	events := services.NewKafkaEventPublisher(writer)
	authService := services.NewAuthService(userReadRepo, userWriteRepo, tokens)
	identityService := services.NewIdentityService(tokens, userReadRepo)
	placeService := services.NewPlaceService(placeReadRepo, placeWriteRepo, reviewReadRepo, events)
	reviewService := services.NewReviewService(placeReadRepo, reviewReadRepo, reviewWriteRepo, events)

	// Setup router
	r := chi.NewRouter()
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.StripSlashes)
	r.Use(cors.Handler(corsOptions(cfg.CORSAllowedOrigins)))
	r.Use(middlewares.LoggingMiddleware(logger.Log))

	r.Get("/", handlers.NewRootHandler())

	// Public auth routes, rate limited when Redis is configured
	r.Group(func(r chi.Router) {
		if limiter != nil {
			r.Use(middlewares.RateLimitMiddleware(limiter, cfg.RateLimiterRequests))
		}
		r.Post("/register", handlers.NewRegisterHandler(authService))
		r.Post("/login", handlers.NewLoginHandler(authService))
	})

	// Public reads
	r.Group(func(r chi.Router) {
		r.Use(middlewares.OptionalAuthMiddleware(tokens, identityService))
		r.Get("/places", handlers.NewListPlacesHandler(placeService))
		r.Get("/places/categories", handlers.NewCategoriesHandler(placeService))
		r.Get("/places/{id}", handlers.NewGetPlaceHandler(placeService))
		r.Get("/places/{id}/reviews", handlers.NewListReviewsHandler(reviewService))
	})

	// Protected routes
	r.Group(func(r chi.Router) {
		r.Use(middlewares.AuthMiddleware(tokens, identityService))
		r.Get("/me", handlers.NewMeHandler())
		r.Post("/places", handlers.NewCreatePlaceHandler(placeService))
		r.Put("/places/{id}", handlers.NewUpdatePlaceHandler(placeService))
		r.Delete("/places/{id}", handlers.NewDeletePlaceHandler(placeService))
		r.Post("/places/{id}/reviews", handlers.NewCreateReviewHandler(reviewService))
	})

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://%s:%s/swagger/doc.json", cfg.AppHost, cfg.AppPort)),
	))

	return r
}

// corsOptions builds the CORS policy. Browsers refuse credentialed responses
// for a wildcard origin, so credentials are only allowed for explicit origins.
func corsOptions(origins []string) cors.Options {
	return cors.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"X-Request-ID", "Retry-After"},
		AllowCredentials: !slices.Contains(origins, "*"),
		MaxAge:           300,
	}
}
