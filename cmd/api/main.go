package main

import (
	"log"
	"os"

	_ "backend/api/swagger" // swagger docs
	"backend/internal/database"
	"backend/internal/handler"
	"backend/internal/middleware"
	"backend/internal/repository"
	"backend/internal/service"
	"backend/internal/websocket"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title           Import Consolidation API
// @version         1.0
// @description     Intranet backend for import consolidation: quotations with landed-cost calculation, containers, payments, and tariff administration.
// @host            localhost:8080
// @BasePath        /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	if err := godotenv.Load("configs/.env"); err != nil {
		log.Println("No configs/.env file found or error loading it")
	}

	dbHost := os.Getenv("DB_HOST")
	dbPort := os.Getenv("DB_PORT")
	dbUser := os.Getenv("DB_USER")
	dbPassword := os.Getenv("DB_PASSWORD")
	dbName := os.Getenv("DB_NAME")
	dbSslMode := os.Getenv("DB_SSLMODE")

	if dbHost == "" {
		dbHost = "localhost"
	}
	if dbPort == "" {
		dbPort = "5432"
	}
	if dbUser == "" {
		dbUser = "postgres"
	}
	if dbPassword == "" {
		dbPassword = "postgres"
	}
	if dbName == "" {
		dbName = "postgres"
	}
	if dbSslMode == "" {
		dbSslMode = "disable"
	}

	dsn := "postgres://" + dbUser + ":" + dbPassword + "@" + dbHost + ":" + dbPort + "/" + dbName + "?sslmode=" + dbSslMode

	db, err := database.NewConnection(dsn)
	if err != nil {
		log.Fatalf("Database connection failed: %v", err)
	}
	log.Println("Connected to PostgreSQL successfully.")

	// Set up WebSocket Hub
	wsHub := websocket.NewHub()
	go wsHub.Run()

	// Set up dependencies (Repository -> Service -> Handler)
	txManager := repository.NewTransactionManager(db)
	userRepo := repository.NewUserRepository(db)
	auditRepo := repository.NewAuditRepository(db)
	tariffRepo := repository.NewTariffRepository(db)
	quotationRepo := repository.NewQuotationRepository(db)
	containerRepo := repository.NewContainerRepository(db)
	paymentRepo := repository.NewPaymentRepository(db)
	newsRepo := repository.NewNewsRepository(db)
	notificationRepo := repository.NewNotificationRepository(db)

	notificationService := service.NewNotificationService(notificationRepo, userRepo, wsHub)
	userService := service.NewUserService(userRepo)
	auditService := service.NewAuditService(auditRepo)
	tariffService := service.NewTariffService(tariffRepo, auditRepo)
	quotationService := service.NewQuotationService(quotationRepo, containerRepo, auditRepo, txManager, tariffService, notificationService)
	containerService := service.NewContainerService(containerRepo, auditRepo, notificationService)
	paymentService := service.NewPaymentService(paymentRepo, quotationRepo, auditRepo, notificationService)
	newsService := service.NewNewsService(newsRepo, auditRepo)

	// Initialize Handlers
	userHandler := handler.NewUserHandler(userService)
	auditHandler := handler.NewAuditHandler(auditService)
	tariffHandler := handler.NewTariffHandler(tariffService)
	quotationHandler := handler.NewQuotationHandler(quotationService)
	containerHandler := handler.NewContainerHandler(containerService)
	paymentHandler := handler.NewPaymentHandler(paymentService)
	newsHandler := handler.NewNewsHandler(newsService)
	notificationHandler := handler.NewNotificationHandler(notificationService)

	// Set up Gin Router
	router := gin.Default()

	// CORS configuration
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{"http://localhost:5173", "http://127.0.0.1:5173", "http://localhost:5174"} // Frontend URL
	corsConfig.AllowCredentials = true
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization", "Accept"}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	router.Use(cors.New(corsConfig))

	// Swagger route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "OK"})
	})

	// WebSocket endpoint
	router.GET("/ws", func(c *gin.Context) {
		websocket.ServeWs(wsHub, c, middleware.GetJWTSecret())
	})

	// Register API Routes
	root := router.Group("")
	userHandler.RegisterRoutes(root)
	auditHandler.RegisterRoutes(root)
	tariffHandler.RegisterRoutes(root)
	quotationHandler.RegisterRoutes(root)
	containerHandler.RegisterRoutes(root)
	paymentHandler.RegisterRoutes(root)
	newsHandler.RegisterRoutes(root)
	notificationHandler.RegisterRoutes(root)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("Server listening on :%s", port)
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
