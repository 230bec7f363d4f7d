package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"irpef-tax-api/internal/models"
	"irpef-tax-api/internal/services"
)

func setupTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	SetupRoutes(router, &RouterConfig{
		TaxService:      services.NewTaxService(models.DefaultRateTable()),
		AdvisoryService: services.NewAdvisoryService(),
	})

	return router
}

func performRequest(router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	var reqBody *bytes.Buffer
	if body != nil {
		data, _ := json.Marshal(body)
		reqBody = bytes.NewBuffer(data)
	} else {
		reqBody = bytes.NewBuffer(nil)
	}

	req := httptest.NewRequest(method, path, reqBody)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestGetRegions(t *testing.T) {
	router := setupTestRouter()

	w := performRequest(router, http.MethodGet, "/api/regions", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}

	var response struct {
		Regions []string `json:"regions"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
		t.Fatalf("failed to parse response: %v", err)
	}
	if len(response.Regions) != 7 {
		t.Errorf("expected 7 regions, got %d", len(response.Regions))
	}
}

func TestGetProvinces(t *testing.T) {
	router := setupTestRouter()

	t.Run("known region", func(t *testing.T) {
		w := performRequest(router, http.MethodGet, "/api/provinces/Lombardia", nil)
		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
		}

		var response struct {
			Provinces []string `json:"provinces"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
			t.Fatalf("failed to parse response: %v", err)
		}
		if len(response.Provinces) != 5 {
			t.Errorf("expected 5 provinces, got %d", len(response.Provinces))
		}
	})

	t.Run("unknown region returns 404", func(t *testing.T) {
		w := performRequest(router, http.MethodGet, "/api/provinces/Sicilia", nil)
		if w.Code != http.StatusNotFound {
			t.Errorf("status = %d, want %d", w.Code, http.StatusNotFound)
		}
	})
}

func TestGetCities(t *testing.T) {
	router := setupTestRouter()

	t.Run("known province", func(t *testing.T) {
		w := performRequest(router, http.MethodGet, "/api/cities/Lombardia/Milano", nil)
		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
		}

		var response struct {
			Cities []string `json:"cities"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
			t.Fatalf("failed to parse response: %v", err)
		}
		if len(response.Cities) != 3 {
			t.Errorf("expected 3 cities, got %d", len(response.Cities))
		}
	})

	t.Run("unknown region returns 404", func(t *testing.T) {
		w := performRequest(router, http.MethodGet, "/api/cities/Sicilia/Palermo", nil)
		if w.Code != http.StatusNotFound {
			t.Errorf("status = %d, want %d", w.Code, http.StatusNotFound)
		}
	})

	t.Run("unknown province returns 404", func(t *testing.T) {
		w := performRequest(router, http.MethodGet, "/api/cities/Lombardia/Palermo", nil)
		if w.Code != http.StatusNotFound {
			t.Errorf("status = %d, want %d", w.Code, http.StatusNotFound)
		}
	})
}

func TestCalculateTaxEndpoint(t *testing.T) {
	router := setupTestRouter()

	t.Run("valid request", func(t *testing.T) {
		w := performRequest(router, http.MethodPost, "/api/calculate-tax", models.TaxCalculationRequest{
			GrossIncome:    35000,
			EmploymentType: "employee",
			Region:         "Lombardia",
			Province:       "Milano",
			City:           "Milano",
		})
		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, want %d: %s", w.Code, http.StatusOK, w.Body.String())
		}

		var result models.TaxResult
		if err := json.Unmarshal(w.Body.Bytes(), &result); err != nil {
			t.Fatalf("failed to parse response: %v", err)
		}
		if result.GrossIncome != 35000 {
			t.Errorf("gross income = %v, want 35000", result.GrossIncome)
		}
		if result.INPSContributions != 3321.50 {
			t.Errorf("contributions = %v, want 3321.50", result.INPSContributions)
		}
	})

	t.Run("unknown geography falls back instead of erroring", func(t *testing.T) {
		w := performRequest(router, http.MethodPost, "/api/calculate-tax", models.TaxCalculationRequest{
			GrossIncome:    20000,
			EmploymentType: "freelancer",
			Region:         "Sicilia",
			Province:       "Palermo",
			City:           "Palermo",
		})
		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, want %d: %s", w.Code, http.StatusOK, w.Body.String())
		}
	})

	t.Run("malformed body returns 400", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/calculate-tax", bytes.NewBufferString("{not json"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Errorf("status = %d, want %d", w.Code, http.StatusBadRequest)
		}
	})

	t.Run("missing employment type returns 400", func(t *testing.T) {
		w := performRequest(router, http.MethodPost, "/api/calculate-tax", map[string]interface{}{
			"gross_income": 35000,
			"region":       "Lombardia",
			"province":     "Milano",
			"city":         "Milano",
		})
		if w.Code != http.StatusBadRequest {
			t.Errorf("status = %d, want %d", w.Code, http.StatusBadRequest)
		}
	})

	t.Run("negative income returns 400", func(t *testing.T) {
		w := performRequest(router, http.MethodPost, "/api/calculate-tax", map[string]interface{}{
			"gross_income":    -1000,
			"employment_type": "employee",
			"region":          "Lombardia",
			"province":        "Milano",
			"city":            "Milano",
		})
		if w.Code != http.StatusBadRequest {
			t.Errorf("status = %d, want %d", w.Code, http.StatusBadRequest)
		}
	})
}

func TestCompareIncomeEndpoint(t *testing.T) {
	router := setupTestRouter()

	t.Run("valid request", func(t *testing.T) {
		w := performRequest(router, http.MethodPost, "/api/compare-income", models.ComparisonRequest{
			CurrentIncome:    30000,
			ComparisonIncome: 35000,
			EmploymentType:   "employee",
			Region:           "Lombardia",
			Province:         "Milano",
			City:             "Milano",
		})
		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, want %d: %s", w.Code, http.StatusOK, w.Body.String())
		}

		var result models.ComparisonResult
		if err := json.Unmarshal(w.Body.Bytes(), &result); err != nil {
			t.Fatalf("failed to parse response: %v", err)
		}
		if result.Differences.IncomeDifference != 5000 {
			t.Errorf("income difference = %v, want 5000", result.Differences.IncomeDifference)
		}
		if result.Current == nil || result.Comparison == nil {
			t.Error("expected both calculation results to be present")
		}
	})

	t.Run("malformed body returns 400", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/compare-income", bytes.NewBufferString("[]"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Errorf("status = %d, want %d", w.Code, http.StatusBadRequest)
		}
	})
}

func TestGetOptimizationTipsEndpoint(t *testing.T) {
	router := setupTestRouter()

	t.Run("high income", func(t *testing.T) {
		w := performRequest(router, http.MethodGet, "/api/tax-optimization/60000", nil)
		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
		}

		var response struct {
			OptimizationTips []models.OptimizationTip `json:"optimization_tips"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
			t.Fatalf("failed to parse response: %v", err)
		}
		if len(response.OptimizationTips) != 5 {
			t.Errorf("expected 5 tips, got %d", len(response.OptimizationTips))
		}
		if response.OptimizationTips[0].Category != "High Income" {
			t.Errorf("first tip category = %q, want High Income", response.OptimizationTips[0].Category)
		}
	})

	t.Run("non-numeric income returns 400", func(t *testing.T) {
		w := performRequest(router, http.MethodGet, "/api/tax-optimization/abc", nil)
		if w.Code != http.StatusBadRequest {
			t.Errorf("status = %d, want %d", w.Code, http.StatusBadRequest)
		}
	})
}

func TestHealthEndpoint(t *testing.T) {
	router := setupTestRouter()

	w := performRequest(router, http.MethodGet, "/health", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}

	var response map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
		t.Fatalf("failed to parse response: %v", err)
	}
	if response["status"] != "healthy" {
		t.Errorf("status field = %q, want healthy", response["status"])
	}
}
