package router

import (
	"bytes"
	"compress/gzip"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/polkiloo/logidash/internal/app"
	"github.com/polkiloo/logidash/internal/config"
	pkgAuth "github.com/polkiloo/logidash/internal/pkg/auth"
	"github.com/polkiloo/logidash/internal/server/http/dto"
	"github.com/polkiloo/logidash/internal/server/http/handlers"
	"github.com/polkiloo/logidash/internal/server/http/middleware"
	testhelpers "github.com/polkiloo/logidash/internal/test"
	"github.com/polkiloo/logidash/internal/usecase"
)

func testConfig() *config.Config {
	return &config.Config{AllowedOrigins: []string{"*"}}
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

type e2e struct {
	t         *testing.T
	engine    *gin.Engine
	generator *testhelpers.TextGeneratorStub
}

func newE2E(t *testing.T, verifier middleware.TokenVerifier) *e2e {
	t.Helper()
	orders := &testhelpers.OrderRepositoryStub{}
	shipments := &testhelpers.ShipmentRepositoryStub{}
	generator := &testhelpers.TextGeneratorStub{Text: "- one\n- two\n- three"}

	facade := app.NewLogisticsFacade(
		usecase.NewDashboardUseCase(orders, shipments),
		usecase.NewOrderUseCase(orders),
		usecase.NewShipmentUseCase(shipments, true),
		usecase.NewInsightsUseCase(generator),
		testhelpers.HealthFacadeStub{},
	)
	if verifier == nil {
		verifier = pkgAuth.NewVerifier("", nil)
	}
	return &e2e{t: t, engine: Setup(facade, verifier, testConfig(), discardLogger()), generator: generator}
}

func (e *e2e) do(method, path string, body any, headers ...string) *httptest.ResponseRecorder {
	e.t.Helper()
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(e.t, err)
		reader = bytes.NewReader(payload)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}
	resp := httptest.NewRecorder()
	e.engine.ServeHTTP(resp, req)
	return resp
}

func (e *e2e) dashboard() dto.DashboardResponse {
	e.t.Helper()
	resp := e.do(http.MethodGet, "/api/dashboard", nil)
	require.Equal(e.t, http.StatusOK, resp.Code)
	var out dto.DashboardResponse
	require.NoError(e.t, json.Unmarshal(resp.Body.Bytes(), &out))
	return out
}

func order(id string, total float64, status string) map[string]any {
	return map[string]any{
		"id": id, "customer": "Sarah Jenkins", "location": "London, UK", "product": "Compressor",
		"quantity": 1, "total": total, "status": status, "date": "Oct 12, 2023",
	}
}

func TestDashboardOnEmptyStore(t *testing.T) {
	e := newE2E(t, nil)

	resp := e.do(http.MethodGet, "/api/dashboard", nil)
	require.Equal(t, http.StatusOK, resp.Code)
	require.Contains(t, resp.Body.String(), `"recentOrders":[]`)

	out := e.dashboard()
	require.Len(t, out.Metrics, 4)
	require.Equal(t, "Total Orders", out.Metrics[0].Label)
	require.Equal(t, "0", out.Metrics[0].Value)
	require.Equal(t, "$0", out.Metrics[3].Value)
	require.Empty(t, out.RecentOrders)
}

func TestOrderLifecycleThroughRouter(t *testing.T) {
	e := newE2E(t, nil)

	resp := e.do(http.MethodPost, "/api/orders", order("#ORD-8821", 1240, "In Transit"))
	require.Equal(t, http.StatusCreated, resp.Code, resp.Body.String())

	out := e.dashboard()
	require.Equal(t, "1", out.Metrics[0].Value)
	require.Equal(t, "$1,240", out.Metrics[3].Value)
	require.Len(t, out.RecentOrders, 1)
	require.Equal(t, "#ORD-8821", out.RecentOrders[0].ID)

	resp = e.do(http.MethodPost, "/api/orders", order("#ORD-8821", 1, "Pending"))
	require.Equal(t, http.StatusConflict, resp.Code)

	resp = e.do(http.MethodGet, "/api/orders", nil)
	require.Equal(t, http.StatusOK, resp.Code)
	var listed []dto.OrderResponse
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &listed))
	require.Len(t, listed, 1)

	resp = e.do(http.MethodPut, "/api/orders/%23ORD-8821", map[string]any{"status": "Delivered"})
	require.Equal(t, http.StatusOK, resp.Code, resp.Body.String())
	var updated dto.OrderResponse
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &updated))
	require.Equal(t, "Delivered", updated.Status)
	require.Equal(t, "Sarah Jenkins", updated.Customer)
	require.Equal(t, "1", e.dashboard().Metrics[2].Value)

	resp = e.do(http.MethodPut, "/api/orders/%23ORD-8821", map[string]any{"quantity": 0})
	require.Equal(t, http.StatusBadRequest, resp.Code)

	resp = e.do(http.MethodDelete, "/api/orders/%23ORD-8821", nil)
	require.Equal(t, http.StatusNoContent, resp.Code)
	resp = e.do(http.MethodDelete, "/api/orders/%23ORD-8821", nil)
	require.Equal(t, http.StatusNotFound, resp.Code)
	resp = e.do(http.MethodPut, "/api/orders/missing", map[string]any{"status": "Pending"})
	require.Equal(t, http.StatusNotFound, resp.Code)
}

func TestRecentOrdersAreNewestFirst(t *testing.T) {
	e := newE2E(t, nil)
	ids := []string{"A", "B", "C", "D", "E", "F", "G"}
	for _, id := range ids {
		require.Equal(t, http.StatusCreated, e.do(http.MethodPost, "/api/orders", order(id, 100.25, "Pending")).Code)
	}

	out := e.dashboard()
	require.Equal(t, "7", out.Metrics[0].Value)
	require.Equal(t, "$701.75", out.Metrics[3].Value)
	got := make([]string, 0, len(out.RecentOrders))
	for _, o := range out.RecentOrders {
		got = append(got, o.ID)
	}
	require.Equal(t, []string{"G", "F", "E", "D", "C"}, got)
}

func TestShipmentsThroughRouter(t *testing.T) {
	e := newE2E(t, nil)

	resp := e.do(http.MethodPost, "/api/shipments", map[string]any{
		"id": "TRK-1", "status": "In Transit", "eta": "Today, 4:00 PM", "progress": 65, "color": "bg-primary",
	})
	require.Equal(t, http.StatusCreated, resp.Code, resp.Body.String())
	require.Contains(t, resp.Body.String(), `"courier":null`)

	resp = e.do(http.MethodPost, "/api/shipments", map[string]any{"id": "TRK-2", "status": "Delivered", "progress": 100})
	require.Equal(t, http.StatusCreated, resp.Code)
	require.Equal(t, "1", e.dashboard().Metrics[1].Value)

	resp = e.do(http.MethodPut, "/api/shipments/TRK-1", map[string]any{"progress": 150})
	require.Equal(t, http.StatusBadRequest, resp.Code)

	resp = e.do(http.MethodPut, "/api/shipments/TRK-1", map[string]any{"status": "Delivered"})
	require.Equal(t, http.StatusOK, resp.Code)
	require.Equal(t, "0", e.dashboard().Metrics[1].Value)

	resp = e.do(http.MethodPut, "/api/shipments/TRK-1", map[string]any{"eta": nil, "courier": "Mike S."})
	require.Equal(t, http.StatusOK, resp.Code, resp.Body.String())
	var handedOver dto.ShipmentResponse
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &handedOver))
	require.Nil(t, handedOver.ETA)
	require.NotNil(t, handedOver.Courier)
	require.Equal(t, "Mike S.", *handedOver.Courier)

	resp = e.do(http.MethodPut, "/api/shipments/TRK-1", map[string]any{"progress": 80})
	require.Equal(t, http.StatusOK, resp.Code)
	require.Contains(t, resp.Body.String(), `"courier":"Mike S."`)
	require.Contains(t, resp.Body.String(), `"eta":null`)

	resp = e.do(http.MethodDelete, "/api/shipments/TRK-9", nil)
	require.Equal(t, http.StatusNotFound, resp.Code)
}

func TestInsightsThroughRouter(t *testing.T) {
	e := newE2E(t, nil)

	resp := e.do(http.MethodPost, "/api/generate-insights", map[string]any{"data": map[string]any{"metrics": []int{1}}})
	require.Equal(t, http.StatusOK, resp.Code, resp.Body.String())
	var out dto.InsightsResponse
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &out))
	require.Equal(t, "- one\n- two\n- three", out.Insights)
	require.Len(t, e.generator.Prompts, 1)
	require.Equal(t, usecase.InsightsPrompt+`{"metrics":[1]}`, e.generator.Prompts[0])

	resp = e.do(http.MethodPost, "/api/generate-insights", map[string]any{})
	require.Equal(t, http.StatusBadRequest, resp.Code)
}

func TestWriteGuardOnlyProtectsMutations(t *testing.T) {
	hasher := pkgAuth.NewBcryptHasher(4)
	hash, err := hasher.Hash("admin")
	require.NoError(t, err)
	e := newE2E(t, pkgAuth.NewVerifier(hash, hasher))

	require.Equal(t, http.StatusOK, e.do(http.MethodGet, "/api/orders", nil).Code)
	require.Equal(t, http.StatusOK, e.do(http.MethodGet, "/api/dashboard", nil).Code)
	require.Equal(t, http.StatusOK,
		e.do(http.MethodPost, "/api/generate-insights", map[string]any{"data": map[string]any{}}).Code,
		"insights do not change stored data")
	require.Equal(t, http.StatusUnauthorized, e.do(http.MethodPost, "/api/orders", order("X", 1, "Pending")).Code)
	require.Equal(t, http.StatusUnauthorized,
		e.do(http.MethodPost, "/api/shipments", map[string]any{"id": "T"}, "Authorization", "Bearer nope").Code)
	require.Equal(t, http.StatusCreated,
		e.do(http.MethodPost, "/api/orders", order("X", 1, "Pending"), "Authorization", "Bearer admin").Code)
	require.Equal(t, http.StatusUnauthorized, e.do(http.MethodDelete, "/api/orders/X", nil).Code)
	require.Equal(t, http.StatusNoContent, e.do(http.MethodDelete, "/api/orders/X", nil, "Authorization", "Bearer admin").Code)
}

func TestHealthAndRequestID(t *testing.T) {
	e := newE2E(t, nil)
	resp := e.do(http.MethodGet, "/api/health", nil, middleware.RequestIDHeader, "trace-7")
	require.Equal(t, http.StatusOK, resp.Code)
	require.JSONEq(t, `{"status":"ok"}`, resp.Body.String())
	require.Equal(t, "trace-7", resp.Header().Get(middleware.RequestIDHeader))

	resp = e.do(http.MethodGet, "/api/unknown", nil)
	require.Equal(t, http.StatusNotFound, resp.Code)
	require.NotEmpty(t, resp.Header().Get(middleware.RequestIDHeader))
}

func TestGzipRequestAndResponse(t *testing.T) {
	e := newE2E(t, nil)

	payload, err := json.Marshal(order("#GZ-1", 845.5, "Processing"))
	require.NoError(t, err)
	var buf bytes.Buffer
	gz := gzip.NewWriter(&buf)
	_, err = gz.Write(payload)
	require.NoError(t, err)
	require.NoError(t, gz.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/orders", &buf)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Content-Encoding", "gzip")
	resp := httptest.NewRecorder()
	e.engine.ServeHTTP(resp, req)
	require.Equal(t, http.StatusCreated, resp.Code, resp.Body.String())

	req = httptest.NewRequest(http.MethodGet, "/api/dashboard", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	resp = httptest.NewRecorder()
	e.engine.ServeHTTP(resp, req)
	require.Equal(t, "gzip", resp.Header().Get("Content-Encoding"))
	reader, err := gzip.NewReader(resp.Body)
	require.NoError(t, err)
	body, err := io.ReadAll(reader)
	require.NoError(t, err)
	var out dto.DashboardResponse
	require.NoError(t, json.Unmarshal(body, &out))
	require.Equal(t, "$845.5", out.Metrics[3].Value)
}

func TestCORS(t *testing.T) {
	e := newE2E(t, nil)
	req := httptest.NewRequest(http.MethodOptions, "/api/orders", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	resp := httptest.NewRecorder()
	e.engine.ServeHTTP(resp, req)
	require.Equal(t, http.StatusNoContent, resp.Code)
	require.Equal(t, "*", resp.Header().Get("Access-Control-Allow-Origin"))

	cfg := &config.Config{AllowedOrigins: []string{"https://ops.example.com"}}
	engine := Setup(testhelpers.LogisticsFacadeStub{}, pkgAuth.NewVerifier("", nil), cfg, discardLogger())

	req = httptest.NewRequest(http.MethodGet, "/api/orders", nil)
	req.Header.Set("Origin", "https://ops.example.com")
	resp = httptest.NewRecorder()
	engine.ServeHTTP(resp, req)
	require.Equal(t, http.StatusOK, resp.Code)
	require.Equal(t, "https://ops.example.com", resp.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodGet, "/api/orders", nil)
	req.Header.Set("Origin", "https://evil.example.com")
	resp = httptest.NewRecorder()
	engine.ServeHTTP(resp, req)
	require.Equal(t, http.StatusForbidden, resp.Code)
}

func TestCorsConfig(t *testing.T) {
	require.True(t, corsConfig(nil).AllowAllOrigins)
	require.True(t, corsConfig([]string{"https://a", "*"}).AllowAllOrigins)
	cfg := corsConfig([]string{"https://a"})
	require.False(t, cfg.AllowAllOrigins)
	require.Equal(t, []string{"https://a"}, cfg.AllowOrigins)
	require.NoError(t, cfg.Validate())
}

var _ handlers.LogisticsFacade = (*app.LogisticsFacade)(nil)
