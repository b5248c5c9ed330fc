package httpapi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/Aritro-Git/AIzMarketplace/internal/catalog/app"
	"github.com/Aritro-Git/AIzMarketplace/internal/catalog/domain"
)

type staticSource []domain.Agent

func (s staticSource) Load(ctx context.Context) ([]domain.Agent, error) {
	return s, nil
}

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	src := staticSource{
		{ID: "mkt-1", Name: "AdVision", Category: "Marketing", PriceMonth: "29.99", Rating: 4.6, Reviews: 1200, Deployment: "Cloud", Badges: []string{"Prime AI"}},
		{ID: "mkt-2", Name: "FunnelFox", Category: "Marketing", PriceMonth: "9.99", Rating: 4.1, Reviews: 800, Deployment: "Cloud"},
		{ID: "dat-1", Name: "SheetSense", Category: "Data", PriceMonth: "19.00", Rating: 4.9, Reviews: 3400, Deployment: "Hybrid"},
	}

	svc := app.NewService(src, nil)
	require.NoError(t, svc.Load(context.Background()))

	r := gin.New()
	NewHandler(svc, nil, "$").Register(r.Group("/api"))
	return r
}

func get(t *testing.T, r *gin.Engine, url string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, url, nil)
	r.ServeHTTP(w, req)

	var body map[string]any
	if w.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	}
	return w, body
}

func TestListFiltersAndSorts(t *testing.T) {
	r := newTestRouter(t)

	w, body := get(t, r, "/api/agents?category=Marketing&sort=price_low")
	require.Equal(t, http.StatusOK, w.Code)

	require.EqualValues(t, 2, body["shown"])
	require.EqualValues(t, 3, body["total"])

	results := body["results"].([]any)
	first := results[0].(map[string]any)
	require.Equal(t, "mkt-2", first["id"])
	require.Equal(t, "$9.99", first["price_display"])
}

func TestListQuickFilterParams(t *testing.T) {
	r := newTestRouter(t)

	w, body := get(t, r, "/api/agents?category=All&filter=badge:Prime+AI&filter=deployment:cloud")
	require.Equal(t, http.StatusOK, w.Code)
	require.EqualValues(t, 1, body["shown"])

	results := body["results"].([]any)
	require.Equal(t, "mkt-1", results[0].(map[string]any)["id"])
}

func TestDetailEndpoint(t *testing.T) {
	r := newTestRouter(t)

	t.Run("known agent", func(t *testing.T) {
		w, body := get(t, r, "/api/agents/dat-1")
		require.Equal(t, http.StatusOK, w.Code)
		require.Equal(t, "SheetSense", body["name"])
		require.Equal(t, "$19.00", body["price_display"])
	})

	t.Run("unknown agent", func(t *testing.T) {
		w, _ := get(t, r, "/api/agents/ghost")
		require.Equal(t, http.StatusNotFound, w.Code)
	})
}
