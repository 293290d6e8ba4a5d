package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"

	"github.com/sbilibin2017/dogbreed-api/internal/facades"
	"github.com/sbilibin2017/dogbreed-api/internal/handlers"
	"github.com/sbilibin2017/dogbreed-api/internal/jwt"
	"github.com/sbilibin2017/dogbreed-api/internal/labels"
	"github.com/sbilibin2017/dogbreed-api/internal/logger"
	"github.com/sbilibin2017/dogbreed-api/internal/middlewares"
	"github.com/sbilibin2017/dogbreed-api/internal/repositories"
	"github.com/sbilibin2017/dogbreed-api/internal/services"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "github.com/microsoft/go-mssqldb"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// @title Dog Breed Identification API
// @version 1.0.0
// @description Backend for registering dogs and identifying their breed from photos
// @host localhost:8080
// @BasePath /
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	printBuildInfo()
	configPath := parseFlags()

	appHost, appPort, logLevel,
		dbEngine, dbHost, dbPort, dbUser, dbPassword, dbName,
		dbMaxOpenConns, dbMaxIdleConns,
		blobConnectionString, blobContainer,
		modelPath, labelMappingPath,
		inferenceMode, inferenceURL, inferenceToken,
		jwtSecretKey, jwtExpHour,
		err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(),
		appHost, appPort, logLevel,
		dbEngine, dbHost, dbPort, dbUser, dbPassword, dbName,
		dbMaxOpenConns, dbMaxIdleConns,
		blobConnectionString, blobContainer,
		modelPath, labelMappingPath,
		inferenceMode, inferenceURL, inferenceToken,
		jwtSecretKey, jwtExpHour,
	); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Starting service version %s, commit %s, build %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// parseConfig loads environment variables from a file and returns all
// application, database, blob storage, inference, and JWT configuration.
func parseConfig(path string) (
	appHost, appPort, logLevel string,
	dbEngine, dbHost string, dbPort int, dbUser, dbPassword, dbName string,
	dbMaxOpenConns, dbMaxIdleConns int,
	blobConnectionString, blobContainer string,
	modelPath, labelMappingPath string,
	inferenceMode, inferenceURL, inferenceToken string,
	jwtSecretKey string, jwtExpHour int,
	err error,
) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}

	// Application config
	appHost = getEnv("APP_HOST", "localhost")
	appPort = getEnv("APP_PORT", "8080")
	logLevel = getEnv("APP_LOG_LEVEL", "info")

	// Database config
	dbEngine = getEnv("DB_ENGINE", "postgresql")
	dbHost = getEnv("DB_HOST", "localhost")
	dbUser = getEnv("DB_USER", "user")
	dbPassword = getEnv("DB_PASSWORD", "password")
	dbName = getEnv("DB_NAME", "database")
	if dbPort, err = strconv.Atoi(getEnv("DB_PORT", "5432")); err != nil {
		return
	}
	if dbMaxOpenConns, err = strconv.Atoi(getEnv("DB_MAX_OPEN_CONNS", "16")); err != nil {
		return
	}
	if dbMaxIdleConns, err = strconv.Atoi(getEnv("DB_MAX_IDLE_CONNS", "8")); err != nil {
		return
	}

	// Blob storage config
	blobConnectionString = getEnv("BLOB_CONNECTION_STRING", "")
	blobContainer = getEnv("BLOB_CONTAINER", "dog-images")

	// Inference config
	modelPath = getEnv("MODEL_PATH", "model.tflite")
	labelMappingPath = getEnv("LABEL_MAPPING_PATH", "label_mapping.json")
	inferenceMode = getEnv("INFERENCE_MODE", "local")
	inferenceURL = getEnv("INFERENCE_URL", "")
	inferenceToken = getEnv("INFERENCE_TOKEN", "")

	// JWT config
	jwtSecretKey = getEnv("JWT_SECRET_KEY", "my_super_secret_key")
	if jwtExpHour, err = strconv.Atoi(getEnv("JWT_EXP_HOUR", "24")); err != nil {
		return
	}

	return
}

// buildDSN returns the sqlx driver name and DSN for the configured engine.
func buildDSN(engine, host string, port int, user, password, name string) (string, string, error) {
	switch engine {
	case "postgresql":
		dsn := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
			user, password, host, port, name)
		return "pgx", dsn, nil
	case "sqlserver":
		dsn := fmt.Sprintf("sqlserver://%s:%s@%s:%d?database=%s",
			user, password, host, port, name)
		return "sqlserver", dsn, nil
	default:
		return "", "", fmt.Errorf("unsupported database engine: %s", engine)
	}
}

// run initializes the logger, database, blob storage, classifier, and HTTP
// server. It sets up routes, applies middleware, and handles graceful shutdown.
func run(ctx context.Context,
	appHost, appPort, logLevel string,
	dbEngine, dbHost string, dbPort int, dbUser, dbPassword, dbName string,
	dbMaxOpenConns, dbMaxIdleConns int,
	blobConnectionString, blobContainer string,
	modelPath, labelMappingPath string,
	inferenceMode, inferenceURL, inferenceToken string,
	jwtSecretKey string, jwtExpHour int,
) error {
	// Initialize logger
	if err := logger.Initialize(logLevel); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Log.Sync()
	logger.Log.Infof("Logger initialized with level %s", logLevel)

	// Connect to the database
	driverName, dsn, err := buildDSN(dbEngine, dbHost, dbPort, dbUser, dbPassword, dbName)
	if err != nil {
		return err
	}
	logger.Log.Infof("Connecting to %s database at %s:%d", dbEngine, dbHost, dbPort)

	db, err := sqlx.ConnectContext(ctx, driverName, dsn)
	if err != nil {
		return fmt.Errorf("database connection error: %w", err)
	}
	defer db.Close()
	db.SetMaxOpenConns(dbMaxOpenConns)
	db.SetMaxIdleConns(dbMaxIdleConns)
	if err := db.PingContext(ctx); err != nil {
		return fmt.Errorf("database ping failed: %w", err)
	}

	// Connect to blob storage
	blobStorage, err := facades.NewBlobStorage(blobConnectionString, blobContainer)
	if err != nil {
		return fmt.Errorf("blob storage connection error: %w", err)
	}

	// Initialize the classifier
	labelLoader := labels.NewLoader(labelMappingPath, blobStorage)
	var classifier services.Classifier
	switch inferenceMode {
	case "local":
		localClassifier, err := facades.NewLocalClassifier(modelPath, labelLoader)
		if err != nil {
			return fmt.Errorf("failed to load model: %w", err)
		}
		defer localClassifier.Close()
		classifier = localClassifier
	case "remote":
		classifier = facades.NewRemoteClassifier(inferenceURL, inferenceToken)
	default:
		return fmt.Errorf("unsupported inference mode: %s", inferenceMode)
	}
	logger.Log.Infof("Classifier initialized in %s mode", inferenceMode)

	// Initialize JWT service
	jwtService := jwt.New(jwtSecretKey, time.Duration(jwtExpHour)*time.Hour)

	// Initialize repositories
	userReadRepo := repositories.NewUserReadRepository(db)
	userWriteRepo := repositories.NewUserWriteRepository(db)
	dogReadRepo := repositories.NewDogReadRepository(db)
	dogWriteRepo := repositories.NewDogWriteRepository(db)

	// Initialize services
	authService := services.NewAuthService(userReadRepo, userWriteRepo, jwtService)
	profileService := services.NewProfileService(userReadRepo, userWriteRepo)
	dogService := services.NewDogService(dogReadRepo, dogWriteRepo, blobStorage)
	predictService := services.NewPredictService(classifier, blobStorage)

	// Initialize handlers
	registerHandler := handlers.NewRegisterHandler(authService)
	loginHandler := handlers.NewLoginHandler(authService)
	predictHandler := handlers.NewPredictHandler(predictService)
	uploadDogHandler := handlers.NewUploadDogHandler(dogService)
	editDogHandler := handlers.NewEditDogHandler(dogService)
	getDogHandler := handlers.NewGetDogHandler(dogService)
	uploadDogImageHandler := handlers.NewUploadDogImageHandler(dogService)
	profileHandler := handlers.NewProfileHandler(profileService)
	profileEditHandler := handlers.NewProfileEditHandler(profileService)

	// Setup router
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware(logger.Log))

	// Public routes
	r.Group(func(r chi.Router) {
		r.Use(middlewares.TxMiddleware(db))
		r.Post("/register", registerHandler)
	})
	r.Post("/login", loginHandler)

	// Protected routes with JWT middleware
	r.Group(func(r chi.Router) {
		r.Use(middlewares.AuthMiddleware(jwtService))
		r.Post("/predict", predictHandler)
		r.Get("/get_dog", getDogHandler)
		r.Get("/profile", profileHandler)

		r.Group(func(r chi.Router) {
			r.Use(middlewares.TxMiddleware(db))
			r.Post("/upload_dog", uploadDogHandler)
			r.Put("/edit_dog/{dogid}", editDogHandler)
			r.Post("/upload_dog_image/{dogid}", uploadDogImageHandler)
			r.Put("/profile/edit", profileEditHandler)
		})
	})

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://%s:%s/swagger/doc.json", appHost, appPort)),
	))

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", appHost, appPort),
		Handler: r,
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		logger.Log.Infof("HTTP server listening on %s:%s", appHost, appPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	select {
	case <-ctxShutdown.Done():
		logger.Log.Info("Shutdown signal received, stopping HTTP server...")
	case serveErr := <-errChan:
		return serveErr
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorw("HTTP server shutdown error", "error", err)
	}

	logger.Log.Info("HTTP server stopped gracefully")
	return nil
}
