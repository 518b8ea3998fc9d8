package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/justinas/alice"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/gold-reports-api/internal/config"
	"github.com/vfg2006/gold-reports-api/internal/domain"
	"github.com/vfg2006/gold-reports-api/internal/usecases/authenticating"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestAuthMiddleware(t *testing.T) {
	auth := authenticating.NewService(config.Auth{Secret: "segredo"})
	validToken, err := auth.GenerateToken("ana", RoleAnalyst, time.Hour)
	require.NoError(t, err)

	tests := []struct {
		name   string
		path   string
		header string
		status int
	}{
		{name: "rota pública", path: "/healthcheck", status: http.StatusOK},
		{name: "metrics é pública", path: "/metrics", status: http.StatusOK},
		{name: "sem header", path: "/v1/reports/products", status: http.StatusUnauthorized},
		{name: "sem bearer", path: "/v1/reports/products", header: validToken, status: http.StatusUnauthorized},
		{name: "token inválido", path: "/v1/reports/products", header: "Bearer abc", status: http.StatusUnauthorized},
		{name: "token válido", path: "/v1/reports/products", header: "Bearer " + validToken, status: http.StatusOK},
	}

	handler := AuthMiddleware(auth)(okHandler())
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)
			assert.Equal(t, tt.status, rec.Code)
		})
	}
}

func TestAuthMiddleware_Disabled(t *testing.T) {
	auth := authenticating.NewService(config.Auth{})

	var claims *domain.Claims
	handler := alice.New(AuthMiddleware(auth), AdminOnly()).Then(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, _ = r.Context().Value(ContextKeyUser).(*domain.Claims)
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/v1/cron/report-metrics/run", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, claims)
	assert.Equal(t, "anonymous", claims.UserName)
}

func TestRoleMiddleware(t *testing.T) {
	auth := authenticating.NewService(config.Auth{Secret: "segredo"})
	analyst, err := auth.GenerateToken("ana", RoleAnalyst, time.Hour)
	require.NoError(t, err)
	admin, err := auth.GenerateToken("root", RoleAdmin, time.Hour)
	require.NoError(t, err)

	adminChain := alice.New(AuthMiddleware(auth), AdminOnly()).Then(okHandler())
	allChain := alice.New(AuthMiddleware(auth), AllRoles()).Then(okHandler())

	do := func(h http.Handler, token string) int {
		req := httptest.NewRequest(http.MethodGet, "/v1/cron/status", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		return rec.Code
	}

	assert.Equal(t, http.StatusForbidden, do(adminChain, analyst))
	assert.Equal(t, http.StatusOK, do(adminChain, admin))
	assert.Equal(t, http.StatusOK, do(allChain, analyst))

	rec := httptest.NewRecorder()
	AdminOnly()(okHandler()).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestCors(t *testing.T) {
	handler := Cors([]string{"http://localhost:3000"})(okHandler())

	req := httptest.NewRequest(http.MethodOptions, "/v1/reports/products", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "http://localhost:3000", rec.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodGet, "/v1/reports/products", nil)
	req.Header.Set("Origin", "http://evil.local")
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))

	wildcard := Cors([]string{"*"})(okHandler())
	rec = httptest.NewRecorder()
	wildcard.ServeHTTP(rec, req)
	assert.Equal(t, "http://evil.local", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestLoggingMiddleware(t *testing.T) {
	handler := alice.New(LogPanicMiddleware(), LoggingMiddleware()).Then(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/x", nil))

	assert.Equal(t, http.StatusTeapot, rec.Code)
	assert.NotEmpty(t, rec.Header().Get(CorrelationIDHeader))
}

func TestLogPanicMiddleware(t *testing.T) {
	handler := LogPanicMiddleware()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/x", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
