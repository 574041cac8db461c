package catalog

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestGetCatalog(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.GET("/catalog", NewHandler(NewService(NewInMemoryRepository(sampleCatalog()))).Get)

	req := httptest.NewRequest(http.MethodGet, "/catalog", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}

	var body struct {
		PlanInfos   []Plan   `json:"planInfos"`
		OptionInfos []Option `json:"optionInfos"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(body.PlanInfos) != 1 || len(body.OptionInfos) != 1 {
		t.Fatalf("unexpected catalog payload: %s", w.Body.String())
	}
}

func TestGetCatalogSourceFailure(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.GET("/catalog", NewHandler(NewService(NewFailingRepository(errors.New("source down")))).Get)

	req := httptest.NewRequest(http.MethodGet, "/catalog", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadGateway {
		t.Fatalf("expected status 502, got %d", w.Code)
	}
}
