package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"irpef-tax-api/internal/models"
	"irpef-tax-api/internal/services"
)

// TaxHandler handles tax calculation HTTP requests
type TaxHandler struct {
	taxService      services.TaxServiceInterface
	advisoryService services.AdvisoryServiceInterface
}

// NewTaxHandler creates a new tax handler
func NewTaxHandler(taxService services.TaxServiceInterface, advisoryService services.AdvisoryServiceInterface) *TaxHandler {
	return &TaxHandler{
		taxService:      taxService,
		advisoryService: advisoryService,
	}
}

// @Summary List regions
// @Description Get the list of Italian regions in the rate table
// @Tags geography
// @Produce json
// @Success 200 {object} map[string][]string
// @Router /regions [get]
func (h *TaxHandler) GetRegions(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"regions": h.taxService.RateTable().RegionNames(),
	})
}

// @Summary List provinces
// @Description Get the provinces for a specific region
// @Tags geography
// @Produce json
// @Param region path string true "Region name"
// @Success 200 {object} map[string][]string
// @Failure 404 {object} ErrorResponse
// @Router /provinces/{region} [get]
func (h *TaxHandler) GetProvinces(c *gin.Context) {
	region := c.Param("region")

	provinces, err := h.taxService.RateTable().ProvinceNames(region)
	if err != nil {
		c.JSON(http.StatusNotFound, ErrorResponse{
			Error:   "Region not found",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"provinces": provinces})
}

// @Summary List cities
// @Description Get the cities for a specific province
// @Tags geography
// @Produce json
// @Param region path string true "Region name"
// @Param province path string true "Province name"
// @Success 200 {object} map[string][]string
// @Failure 404 {object} ErrorResponse
// @Router /cities/{region}/{province} [get]
func (h *TaxHandler) GetCities(c *gin.Context) {
	region := c.Param("region")
	province := c.Param("province")

	cities, err := h.taxService.RateTable().CityNames(region, province)
	if err != nil {
		if errors.Is(err, models.ErrRegionNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{
				Error:   "Region not found",
				Message: err.Error(),
			})
			return
		}
		c.JSON(http.StatusNotFound, ErrorResponse{
			Error:   "Province not found",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"cities": cities})
}

// @Summary Calculate taxes
// @Description Calculate Italian income tax liabilities for 2025
// @Tags tax
// @Accept json
// @Produce json
// @Param request body models.TaxCalculationRequest true "Calculation input"
// @Success 200 {object} models.TaxResult
// @Failure 400 {object} ErrorResponse
// @Router /calculate-tax [post]
func (h *TaxHandler) CalculateTax(c *gin.Context) {
	var req models.TaxCalculationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "Invalid request body",
			Message: err.Error(),
		})
		return
	}

	result, err := h.taxService.CalculateTax(c.Request.Context(), &req)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "Tax calculation failed",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, result)
}

// @Summary Compare income scenarios
// @Description Compare tax implications of two income levels
// @Tags tax
// @Accept json
// @Produce json
// @Param request body models.ComparisonRequest true "Comparison input"
// @Success 200 {object} models.ComparisonResult
// @Failure 400 {object} ErrorResponse
// @Router /compare-income [post]
func (h *TaxHandler) CompareIncome(c *gin.Context) {
	var req models.ComparisonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "Invalid request body",
			Message: err.Error(),
		})
		return
	}

	result, err := h.taxService.CompareIncome(c.Request.Context(), &req)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "Income comparison failed",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, result)
}

// @Summary Get optimization tips
// @Description Get tax optimization suggestions for an income level
// @Tags tax
// @Produce json
// @Param income path number true "Annual gross income"
// @Success 200 {object} map[string][]models.OptimizationTip
// @Failure 400 {object} ErrorResponse
// @Router /tax-optimization/{income} [get]
func (h *TaxHandler) GetOptimizationTips(c *gin.Context) {
	income, err := strconv.ParseFloat(c.Param("income"), 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "Invalid income parameter",
			Message: "income must be a valid number",
		})
		return
	}

	tips := h.advisoryService.GetOptimizationTips(c.Request.Context(), income)

	c.JSON(http.StatusOK, gin.H{"optimization_tips": tips})
}
