package router

import (
	"database/sql"

	"inventory_pos_backend/internal/handlers"
	"inventory_pos_backend/internal/middleware"
	"inventory_pos_backend/internal/repositories"
	"inventory_pos_backend/internal/services"

	"github.com/gin-gonic/gin"
)

// Setup initializes the routing for the application.
func Setup(engine *gin.Engine, db *sql.DB) {
	// Initialize Repositories
	authRepo := repositories.NewAuthRepository(db)
	profileRepo := repositories.NewProfileRepository(db)
	inventoryRepo := repositories.NewInventoryRepository(db)
	salesRepo := repositories.NewSalesRepository(db)

	// Initialize Services
	authService := services.NewAuthService(authRepo, profileRepo, db)
	profileService := services.NewProfileService(profileRepo, db)
	inventoryService := services.NewInventoryService(inventoryRepo, db)
	saleService := services.NewSaleService(inventoryRepo, salesRepo, db)
	reportService := services.NewReportService(inventoryRepo, salesRepo)
	exportService := services.NewExportService(inventoryRepo, salesRepo)

	// Initialize Handlers
	authHandler := handlers.NewAuthHandler(authService)
	profileHandler := handlers.NewProfileHandler(profileService)
	inventoryHandler := handlers.NewInventoryHandler(inventoryService)
	saleHandler := handlers.NewSaleHandler(saleService)
	reportHandler := handlers.NewReportHandler(reportService)
	exportHandler := handlers.NewExportHandler(exportService)

	apiV1 := engine.Group("/api/v1")

	// Public authentication routes
	SetupPublicAuthRoutes(apiV1.Group("/auth"), authHandler)

	// Authenticated routes
	authenticated := apiV1.Group("")
	authenticated.Use(middleware.AuthMiddleware())
	{
		SetupAuthenticatedAuthRoutes(authenticated.Group("/auth"), authHandler)
		SetupInventoryRoutes(authenticated, inventoryHandler, saleHandler)
		SetupSalesRoutes(authenticated, saleHandler)
		SetupProfileRoutes(authenticated, profileHandler)
		SetupExportRoutes(authenticated, exportHandler)
		SetupReportRoutes(authenticated, reportHandler)
	}
}

// SetupPublicAuthRoutes registers the routes reachable without a token.
func SetupPublicAuthRoutes(group *gin.RouterGroup, authHandler *handlers.AuthHandler) {
	group.POST("/register", authHandler.Register)
	group.POST("/login", authHandler.Login)
	group.POST("/refresh", authHandler.Refresh)
}

// SetupAuthenticatedAuthRoutes registers session routes behind AuthMiddleware.
func SetupAuthenticatedAuthRoutes(group *gin.RouterGroup, authHandler *handlers.AuthHandler) {
	group.POST("/logout", authHandler.Logout)
	group.GET("/me", authHandler.GetCurrentUser)
}
