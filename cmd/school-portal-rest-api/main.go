// cmd/school-portal-rest-api/main.go
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

	v1 "github.com/hillcrest-schools/school-portal/internal/api/rest/v1"
	"github.com/hillcrest-schools/school-portal/internal/app"
	"github.com/hillcrest-schools/school-portal/internal/domain/admissions"
	"github.com/hillcrest-schools/school-portal/internal/domain/careers"
	"github.com/hillcrest-schools/school-portal/internal/domain/content"
	"github.com/hillcrest-schools/school-portal/internal/domain/events"
	"github.com/hillcrest-schools/school-portal/internal/domain/media"
	"github.com/hillcrest-schools/school-portal/internal/domain/messages"
	"github.com/hillcrest-schools/school-portal/internal/domain/payments"
	"github.com/hillcrest-schools/school-portal/internal/infrastructure/connector"
	"github.com/hillcrest-schools/school-portal/internal/infrastructure/persistence"
	"github.com/hillcrest-schools/school-portal/internal/pkg/config"
	"github.com/hillcrest-schools/school-portal/internal/pkg/logger"
	"github.com/hillcrest-schools/school-portal/internal/pkg/metrics"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Application error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Parse configuration
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "../../configs/rest-app.yaml"
	}

	restConfig, err := config.InitializeRestConfig(configPath)
	if err != nil {
		return fmt.Errorf("failed to initialize config: %w", err)
	}

	// Initialize logger
	if err := logger.InitLogger(&restConfig.Logger); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	log, err := logger.GetLogger()
	if err != nil {
		return fmt.Errorf("failed to get logger: %w", err)
	}

	// Initialize application dependencies
	deps, err := initializeDependencies(restConfig, log)
	if err != nil {
		return fmt.Errorf("failed to initialize dependencies: %w", err)
	}
	defer deps.close(log)

	// Setup and start server with graceful shutdown
	return startServerWithGracefulShutdown(restConfig, deps, log)
}

// appDependencies holds all initialized application components
type appDependencies struct {
	db          *gorm.DB
	redisClient *redis.Client
	metrics     *metrics.Metrics
	services    *v1.Services
}

// close releases the database and redis connections
func (d *appDependencies) close(log logger.Logger) {
	if d.redisClient != nil {
		if err := d.redisClient.Close(); err != nil {
			log.Warn("Failed to close redis client", "error", err)
		}
	}
	if err := persistence.CloseDB(d.db); err != nil {
		log.Warn("Failed to close database", "error", err)
	}
}

type appRepositories struct {
	applications    admissions.ApplicationRepository
	jobApplications careers.JobApplicationRepository
	events          events.EventRepository
	tickets         events.TicketRepository
	messages        messages.MessageRepository
	gallery         media.GalleryRepository
	resources       media.ResourceRepository
}

type appConnectors struct {
	blob    media.BlobConnector
	gateway payments.Gateway
	content content.Connector
}

// initializeDependencies sets up all application components
func initializeDependencies(cfg *config.RestConfig, log logger.Logger) (*appDependencies, error) {
	// Initialize database
	db, err := persistence.NewDBConnection(cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to create db connection: %w", err)
	}

	// Run migrations
	if err := persistence.Migrate(db); err != nil {
		return nil, fmt.Errorf("failed to migrate schema: %w", err)
	}
	log.Info("Database migrations completed successfully")

	repos, err := initializeRepositories(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize repositories: %w", err)
	}

	m := metrics.NewMetrics()

	// Initialize connectors
	ctx := context.Background()
	redisClient, tokenStore, err := initializeTokenStore(ctx, &cfg.Redis, log)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize token store: %w", err)
	}

	connectors, err := initializeConnectors(ctx, cfg, tokenStore, m, log)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize connectors: %w", err)
	}

	// Initialize services
	services, err := initializeApplicationServices(cfg, repos, connectors, m, log)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize services: %w", err)
	}

	return &appDependencies{
		db:          db,
		redisClient: redisClient,
		metrics:     m,
		services:    services,
	}, nil
}

// startServerWithGracefulShutdown starts the HTTP server and handles graceful shutdown
func startServerWithGracefulShutdown(cfg *config.RestConfig, deps *appDependencies, log logger.Logger) error {
	// Setup router
	r := gin.Default()

	// Configure CORS
	allowOrigins := cfg.Site.AllowedOrigins
	if len(allowOrigins) == 0 {
		allowOrigins = []string{cfg.Site.FrontendURL}
	}
	r.Use(cors.New(cors.Config{
		AllowOrigins:     allowOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Setup API routes
	v1.SetupRoutes(r, deps.services, cfg.Site.FrontendURL, deps.metrics)

	// Create HTTP server
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second, // Prevent Slowloris attack
	}

	// Channel to listen for errors from the server
	serverErrors := make(chan error, 1)

	// Start server in goroutine
	go func() {
		log.Info("Starting server", "port", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErrors <- fmt.Errorf("server failed to start: %w", err)
		}
	}()

	// Channel to listen for interrupt signals
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	// Block until we receive a signal or server error
	select {
	case err := <-serverErrors:
		return err
	case sig := <-quit:
		log.Info("Received signal, initiating graceful shutdown", "signal", sig.String())
	}

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	log.Info("Shutting down server...")
	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	log.Info("Server stopped gracefully")
	return nil
}

// initializeRepositories creates one gorm repository per table
func initializeRepositories(db *gorm.DB, log logger.Logger) (*appRepositories, error) {
	var repos appRepositories
	var err error

	if repos.applications, err = persistence.NewGormApplicationRepository(db, log); err != nil {
		return nil, fmt.Errorf("failed to create application repository: %w", err)
	}
	if repos.jobApplications, err = persistence.NewGormJobApplicationRepository(db, log); err != nil {
		return nil, fmt.Errorf("failed to create job application repository: %w", err)
	}
	if repos.events, err = persistence.NewGormEventRepository(db, log); err != nil {
		return nil, fmt.Errorf("failed to create event repository: %w", err)
	}
	if repos.tickets, err = persistence.NewGormTicketRepository(db, log); err != nil {
		return nil, fmt.Errorf("failed to create ticket repository: %w", err)
	}
	if repos.messages, err = persistence.NewGormMessageRepository(db, log); err != nil {
		return nil, fmt.Errorf("failed to create message repository: %w", err)
	}
	if repos.gallery, err = persistence.NewGormGalleryRepository(db, log); err != nil {
		return nil, fmt.Errorf("failed to create gallery repository: %w", err)
	}
	if repos.resources, err = persistence.NewGormResourceRepository(db, log); err != nil {
		return nil, fmt.Errorf("failed to create resource repository: %w", err)
	}

	return &repos, nil
}

// initializeTokenStore caches the gateway token in redis when enabled, in memory otherwise
func initializeTokenStore(ctx context.Context, settings *config.RedisSettings, log logger.Logger) (*redis.Client, payments.TokenStore, error) {
	if !settings.Enabled {
		log.Info("Redis disabled, caching gateway tokens in memory")
		return nil, connector.NewMemoryTokenStore(), nil
	}

	client, err := connector.NewRedisClient(ctx, settings)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	log.Info("Caching gateway tokens in redis", "addr", settings.Addr)
	return client, connector.NewRedisTokenStore(client), nil
}

// initializeConnectors sets up the blob storage, payment gateway and content backend connectors
func initializeConnectors(ctx context.Context, cfg *config.RestConfig, tokenStore payments.TokenStore, m *metrics.Metrics, log logger.Logger) (*appConnectors, error) {
	if cfg.BlobConnector.CloudProvider != config.AzureCloudProvider {
		return nil, fmt.Errorf("unsupported cloud provider: %s (only Azure is supported)", cfg.BlobConnector.CloudProvider)
	}

	blobConnector, err := connector.NewAzureBlobConnector(ctx, &cfg.BlobConnector, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create Azure blob connector: %w", err)
	}

	gateway, err := connector.NewPaymentGatewayClient(&cfg.PaymentGateway, tokenStore, m, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create payment gateway client: %w", err)
	}

	contentConnector, err := connector.NewContentConnector(&cfg.ContentConnector, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create content connector: %w", err)
	}

	log.Info("Connectors initialized successfully", "content_backend", contentConnector.Enabled())
	return &appConnectors{
		blob:    blobConnector,
		gateway: gateway,
		content: contentConnector,
	}, nil
}

// initializeApplicationServices sets up all application services
func initializeApplicationServices(
	cfg *config.RestConfig,
	repos *appRepositories,
	connectors *appConnectors,
	m *metrics.Metrics,
	log logger.Logger,
) (*v1.Services, error) {
	authService, err := app.NewAuthService(&cfg.Auth, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create auth service: %w", err)
	}

	fee, err := cfg.Site.Fee()
	if err != nil {
		return nil, fmt.Errorf("failed to read application fee: %w", err)
	}

	applicationService, err := app.NewApplicationService(repos.applications, connectors.gateway, fee, cfg.Site.Currency, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create application service: %w", err)
	}

	jobApplicationService, err := app.NewJobApplicationService(repos.jobApplications, connectors.blob, connectors.content, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create job application service: %w", err)
	}

	eventService, err := app.NewEventService(repos.events, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create event service: %w", err)
	}

	ticketService, err := app.NewTicketService(repos.tickets, repos.events, connectors.gateway, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create ticket service: %w", err)
	}

	messageService, err := app.NewMessageService(repos.messages, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create message service: %w", err)
	}

	galleryService, err := app.NewGalleryService(repos.gallery, connectors.blob, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create gallery service: %w", err)
	}

	resourceService, err := app.NewResourceService(repos.resources, connectors.blob, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create resource service: %w", err)
	}

	paymentService, err := app.NewPaymentService(connectors.gateway, repos.tickets, repos.applications, m, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create payment service: %w", err)
	}

	log.Info("Application services initialized successfully")
	return &v1.Services{
		Auth:            authService,
		Applications:    applicationService,
		JobApplications: jobApplicationService,
		Events:          eventService,
		Tickets:         ticketService,
		Messages:        messageService,
		Gallery:         galleryService,
		Resources:       resourceService,
		Payments:        paymentService,
	}, nil
}
