package handlers

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"irpef-tax-api/internal/services"
)

// RouterConfig holds configuration for setting up routes
type RouterConfig struct {
	TaxService      services.TaxServiceInterface
	AdvisoryService services.AdvisoryServiceInterface
}

// SetupRoutes configures all API routes
func SetupRoutes(router *gin.Engine, config *RouterConfig) {
	taxHandler := NewTaxHandler(config.TaxService, config.AdvisoryService)

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "healthy",
			"service": "irpef-tax-api",
			"version": "1.0.0",
		})
	})

	// API routes
	api := router.Group("/api")
	{
		// Geography listing routes
		api.GET("/regions", taxHandler.GetRegions)
		api.GET("/provinces/:region", taxHandler.GetProvinces)
		api.GET("/cities/:region/:province", taxHandler.GetCities)

		// Calculation routes
		api.POST("/calculate-tax", taxHandler.CalculateTax)
		api.POST("/compare-income", taxHandler.CompareIncome)
		api.GET("/tax-optimization/:income", taxHandler.GetOptimizationTips)
	}
}
