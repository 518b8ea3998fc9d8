package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/gold-reports-api/internal/api/handler/router"
	"github.com/vfg2006/gold-reports-api/internal/domain"
	"github.com/vfg2006/gold-reports-api/pkg/middleware"
)

type fakeCronJob struct {
	accept    bool
	triggered int
}

func (f *fakeCronJob) TriggerManualSync() bool {
	f.triggered++
	return f.accept
}

func (f *fakeCronJob) GetStatus() map[string]any {
	return map[string]any{"sync_running": !f.accept}
}

func withRole(roleID int, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims := &domain.Claims{UserName: "tester", UserRoleID: roleID}
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), middleware.ContextKeyUser, claims)))
	})
}

func TestRunCronJob(t *testing.T) {
	tests := []struct {
		name          string
		path          string
		role          int
		accept        bool
		wantStatus    int
		wantTriggered int
	}{
		{name: "dispara report-metrics", path: "/v1/cron/report-metrics/run", role: middleware.RoleAdmin, accept: true, wantStatus: http.StatusAccepted, wantTriggered: 1},
		{name: "dispara all", path: "/v1/cron/all/run", role: middleware.RoleAdmin, accept: true, wantStatus: http.StatusAccepted, wantTriggered: 1},
		{name: "já em execução", path: "/v1/cron/report-metrics/run", role: middleware.RoleAdmin, accept: false, wantStatus: http.StatusConflict, wantTriggered: 1},
		{name: "tipo inválido", path: "/v1/cron/meta/run", role: middleware.RoleAdmin, accept: true, wantStatus: http.StatusBadRequest},
		{name: "analista não pode disparar", path: "/v1/cron/report-metrics/run", role: middleware.RoleAnalyst, accept: true, wantStatus: http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			job := &fakeCronJob{accept: tt.accept}
			rt := router.New(router.WithRoutes(CronJobs(CronJobServices{ReportMetricsSyncService: job})...))

			rec := httptest.NewRecorder()
			withRole(tt.role, rt).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, tt.path, nil))

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantTriggered, job.triggered)
		})
	}
}

func TestGetCronStatus(t *testing.T) {
	job := &fakeCronJob{accept: true}
	rt := router.New(router.WithRoutes(CronJobs(CronJobServices{ReportMetricsSyncService: job})...))

	rec := httptest.NewRecorder()
	withRole(middleware.RoleAdmin, rt).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/cron/status", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"report-metrics":{"sync_running":false}}`, rec.Body.String())
}

type fakePinger struct{ err error }

func (f fakePinger) Ping(context.Context) error { return f.err }

func TestHealthcheckHandler(t *testing.T) {
	tests := []struct {
		name       string
		db         Pinger
		wantStatus int
	}{
		{name: "sem banco", db: nil, wantStatus: http.StatusOK},
		{name: "banco ok", db: fakePinger{}, wantStatus: http.StatusOK},
		{name: "banco indisponível", db: fakePinger{err: errors.New("down")}, wantStatus: http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			HealthcheckHandler(tt.db).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthcheck", nil))

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}
