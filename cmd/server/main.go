package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/crowdwaveeu-gif/crowdwave-crm/internal/config"
	"github.com/crowdwaveeu-gif/crowdwave-crm/internal/infrastructure/mail"
	"github.com/crowdwaveeu-gif/crowdwave-crm/internal/infrastructure/repositories"
	"github.com/crowdwaveeu-gif/crowdwave-crm/internal/interfaces/http/handlers"
	"github.com/crowdwaveeu-gif/crowdwave-crm/internal/interfaces/http/middleware"
	"github.com/crowdwaveeu-gif/crowdwave-crm/internal/usecases"
	"github.com/crowdwaveeu-gif/crowdwave-crm/pkg/jwt"
	"github.com/crowdwaveeu-gif/crowdwave-crm/pkg/logger"
	"github.com/crowdwaveeu-gif/crowdwave-crm/pkg/redis"
)

var (
	loadDotenv = godotenv.Load
	loadCfg    = config.Load
	initLog    = logger.Init
	initRedis  = redis.Init
	openDB     = func(dsn string) (*gorm.DB, error) {
		return gorm.Open(postgres.New(postgres.Config{
			DSN:                  dsn,
			PreferSimpleProtocol: true,
		}), &gorm.Config{
			PrepareStmt: false,
		})
	}
	newSessionStore = redis.NewSessionStore
	runServer       = func(r *gin.Engine, port string) error { return r.Run(":" + port) }
	getStdDB        = func(db *gorm.DB) (*sql.DB, error) { return db.DB() }
)

func main() {
	if err := runMainProcess(); err != nil {
		log.Fatal(err)
	}
}

func runMainProcess() error {
	// Load .env file
	if err := loadDotenv(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	// Load configuration
	cfg := loadCfg()

	// Initialize Logger
	initLog(cfg.Server.Env)
	logger.Info(context.Background(), "Logger initialized", zap.String("env", cfg.Server.Env))

	// Initialize Redis
	if err := initRedis(cfg.Redis.URL, cfg.Redis.Password); err != nil {
		logger.Error(context.Background(), "Failed to initialize Redis", zap.Error(err))
		return fmt.Errorf("failed to initialize redis: %w", err)
	}
	logger.Info(context.Background(), "Redis initialized")

	// Set Gin mode
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Connect to database using GORM
	dsn := cfg.Database.URL()
	db, err := openDB(dsn)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := getStdDB(db)
	if err != nil {
		return fmt.Errorf("failed to get generic database object: %w", err)
	}
	defer sqlDB.Close()

	if err := sqlDB.Ping(); err != nil {
		log.Printf("⚠️ Database not available: %v (endpoints will return errors)", err)
	} else {
		log.Println("✅ Connected to PostgreSQL via GORM")
	}

	// Initialize JWT service
	jwtService := jwt.NewJWTService(
		cfg.JWT.Secret,
		cfg.JWT.AccessExpiry,
		cfg.JWT.RefreshExpiry,
	)

	// Initialize repositories
	userRepo := repositories.NewUserRepository(db)
	otpRepo := repositories.NewOTPRepository(db)
	kycRepo := repositories.NewKYCRepository(db)
	disputeRepo := repositories.NewDisputeRepository(db)
	packageRepo := repositories.NewPackageRepository(db)
	tripRepo := repositories.NewTripRepository(db)
	bookingRepo := repositories.NewBookingRepository(db)
	transactionRepo := repositories.NewTransactionRepository(db)
	walletRepo := repositories.NewWalletRepository(db)
	campaignRepo := repositories.NewCampaignRepository(db)
	uow := repositories.NewUnitOfWork(db)

	// Initialize Session Store
	sessionStore, err := newSessionStore(cfg.Security.SessionEncryptionKey)
	if err != nil {
		return fmt.Errorf("failed to initialize session store: %w", err)
	}

	// Initialize outbound mail transport
	mailer := mail.NewSMTPMailer(cfg.SMTP)

	// Initialize usecases
	otpUsecase := usecases.NewOTPUsecase(otpRepo, userRepo, mailer, cfg.OTP)
	authUsecase := usecases.NewAuthUsecase(userRepo, otpUsecase, jwtService)
	userUsecase := usecases.NewUserUsecase(userRepo)
	kycUsecase := usecases.NewKYCUsecase(kycRepo, userRepo, uow)
	disputeUsecase := usecases.NewDisputeUsecase(disputeRepo)
	catalogUsecase := usecases.NewCatalogUsecase(packageRepo, tripRepo, bookingRepo, transactionRepo, walletRepo)
	campaignUsecase := usecases.NewCampaignUsecase(campaignRepo, mailer)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authUsecase, sessionStore)
	otpHandler := handlers.NewOTPHandler(otpUsecase)
	userHandler := handlers.NewUserHandler(userUsecase)
	kycHandler := handlers.NewKYCHandler(kycUsecase)
	disputeHandler := handlers.NewDisputeHandler(disputeUsecase)
	catalogHandler := handlers.NewCatalogHandler(catalogUsecase)
	emailHandler := handlers.NewEmailHandler(campaignUsecase, otpUsecase)

	// Create auth middleware
	authMiddleware := middleware.AuthMiddleware(jwtService)

	// Initialize router
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.LoggerMiddleware())
	r.Use(middleware.MetricsMiddleware())

	applyCORSMiddleware(r)
	registerHealthRoute(r)
	registerMetricsRoute(r)
	registerAPIV1Routes(r, routeDeps{
		authHandler:    authHandler,
		otpHandler:     otpHandler,
		userHandler:    userHandler,
		kycHandler:     kycHandler,
		disputeHandler: disputeHandler,
		catalogHandler: catalogHandler,
		emailHandler:   emailHandler,
		authMiddleware: authMiddleware,
	})

	// Print all registered routes for debugging
	log.Println("📋 Registered Routes:")
	for _, route := range r.Routes() {
		log.Printf("   %s %s", route.Method, route.Path)
	}

	// Graceful shutdown
	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit
		log.Println("🛑 Shutting down server...")
	}()

	// Start server
	log.Printf("🚀 CrowdWave CRM starting on port %s", cfg.Server.Port)
	log.Printf("📚 API: http://localhost:%s/api/v1", cfg.Server.Port)
	log.Printf("❤️ Health: http://localhost:%s/health", cfg.Server.Port)

	if err := runServer(r, cfg.Server.Port); err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}
	return nil
}
