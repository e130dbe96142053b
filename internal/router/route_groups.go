package router

import (
	"inventory_pos_backend/internal/handlers"
	"inventory_pos_backend/internal/middleware"
	"inventory_pos_backend/internal/models"

	"github.com/gin-gonic/gin"
)

// SetupInventoryRoutes sets up the inventory item routes. Delete is gated to
// admins at the route level; the service re-checks the role regardless.
func SetupInventoryRoutes(authenticatedGroup *gin.RouterGroup, inventoryHandler *handlers.InventoryHandler, saleHandler *handlers.SaleHandler) {
	itemRoutes := authenticatedGroup.Group("/items")
	itemRoutes.Use(middleware.RoleAuthMiddleware(models.RoleAdmin, models.RoleStaff))
	{
		itemRoutes.POST("", inventoryHandler.CreateItem)
		itemRoutes.GET("", inventoryHandler.GetItems)
		itemRoutes.GET("/:id", inventoryHandler.GetItemByID)
		itemRoutes.PUT("/:id", inventoryHandler.UpdateItem)
		itemRoutes.POST("/:id/sell", saleHandler.Sell)
	}

	// Admin-only delete
	authenticatedGroup.DELETE("/items/:id", middleware.RoleAuthMiddleware(models.RoleAdmin), inventoryHandler.DeleteItem)
}

// SetupSalesRoutes sets up the sale history routes.
func SetupSalesRoutes(authenticatedGroup *gin.RouterGroup, saleHandler *handlers.SaleHandler) {
	saleRoutes := authenticatedGroup.Group("/sales")
	saleRoutes.Use(middleware.RoleAuthMiddleware(models.RoleAdmin, models.RoleStaff))
	{
		saleRoutes.GET("", saleHandler.GetSales)
	}
}

// SetupProfileRoutes sets up the users-tab routes. Listing is open to the
// whole company, linking users is admin only.
func SetupProfileRoutes(authenticatedGroup *gin.RouterGroup, profileHandler *handlers.ProfileHandler) {
	authenticatedGroup.GET("/profiles", middleware.RoleAuthMiddleware(models.RoleAdmin, models.RoleStaff), profileHandler.GetProfiles)
	authenticatedGroup.POST("/profiles", middleware.RoleAuthMiddleware(models.RoleAdmin), profileHandler.LinkUser)
}

// SetupExportRoutes sets up the CSV export routes.
func SetupExportRoutes(authenticatedGroup *gin.RouterGroup, exportHandler *handlers.ExportHandler) {
	exportRoutes := authenticatedGroup.Group("/export")
	exportRoutes.Use(middleware.RoleAuthMiddleware(models.RoleAdmin, models.RoleStaff))
	{
		exportRoutes.GET("/inventory.csv", exportHandler.ExportInventoryCSV)
		exportRoutes.GET("/sales.csv", exportHandler.ExportSalesCSV)
	}
}

// SetupReportRoutes sets up the report routes.
func SetupReportRoutes(authenticatedGroup *gin.RouterGroup, reportHandler *handlers.ReportHandler) {
	reportRoutes := authenticatedGroup.Group("/reports")
	reportRoutes.Use(middleware.RoleAuthMiddleware(models.RoleAdmin, models.RoleStaff))
	{
		reportRoutes.GET("/summary", reportHandler.GetSummary)
	}
}
