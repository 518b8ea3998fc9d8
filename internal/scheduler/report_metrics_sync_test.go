package scheduler

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/gold-reports-api/internal/config"
	"github.com/vfg2006/gold-reports-api/internal/domain"
	"github.com/vfg2006/gold-reports-api/internal/usecases/reporting/mocks"
	"go.uber.org/mock/gomock"
)

type segmentCall struct {
	report  string
	segment string
	count   int
}

type fakeRecorder struct {
	mu       sync.Mutex
	segments []segmentCall
}

func (f *fakeRecorder) RecordBuild(string, time.Time, int, error) {}

func (f *fakeRecorder) SetSegmentEntities(report, segment string, count int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.segments = append(f.segments, segmentCall{report: report, segment: segment, count: count})
}

func (f *fakeRecorder) calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.segments)
}

func newTestSyncService(t *testing.T) (*ReportMetricsSyncService, *mocks.MockReporter, *fakeRecorder) {
	ctrl := gomock.NewController(t)
	reporter := mocks.NewMockReporter(ctrl)
	recorder := &fakeRecorder{}

	cfg := &config.Config{
		ReportMetricsSync: config.ReportMetricsSync{CronSchedule: "0 6 * * *", Enabled: true},
	}

	service := NewReportMetricsSyncService(reporter, recorder, cfg)
	service.now = func() time.Time { return time.Date(2024, 6, 15, 6, 0, 0, 0, time.UTC) }

	return service, reporter, recorder
}

func TestReportMetricsSyncService_SyncReportMetrics(t *testing.T) {
	service, reporter, recorder := newTestSyncService(t)

	summary := &domain.SegmentSummary{
		Products:       map[string]int{domain.ProductSegmentHighPerformer: 3, domain.ProductSegmentMidRange: 0, domain.ProductSegmentLowPerformer: 7},
		Customers:      map[string]int{domain.CustomerSegmentVIP: 1, domain.CustomerSegmentRegular: 2, domain.CustomerSegmentNew: 4},
		TotalProducts:  10,
		TotalCustomers: 7,
	}
	reporter.EXPECT().GetSegmentSummary(gomock.Any(), domain.ReportFilters{}).Return(summary, nil)

	require.NoError(t, service.SyncReportMetrics(context.Background()))

	assert.Len(t, recorder.segments, 6)
	assert.Contains(t, recorder.segments, segmentCall{report: "products", segment: "Low-Performer", count: 7})
	assert.Contains(t, recorder.segments, segmentCall{report: "customers", segment: "New", count: 4})

	status := service.GetStatus()
	assert.Equal(t, false, status["sync_running"])
	assert.Equal(t, "", status["last_error"])
	assert.Len(t, status["last_run_id"], 10)
	assert.Equal(t, summary, status["last_summary"])
}

func TestReportMetricsSyncService_SyncReportMetrics_Error(t *testing.T) {
	service, reporter, recorder := newTestSyncService(t)

	reporter.EXPECT().GetSegmentSummary(gomock.Any(), gomock.Any()).Return(nil, errors.New("banco fora do ar"))

	err := service.SyncReportMetrics(context.Background())
	assert.Error(t, err)
	assert.Empty(t, recorder.segments)

	status := service.GetStatus()
	assert.Equal(t, "banco fora do ar", status["last_error"])
	assert.Nil(t, status["last_summary"])
}

func TestReportMetricsSyncService_SkipsWhenRunning(t *testing.T) {
	service, _, _ := newTestSyncService(t)
	service.syncRunning = true

	// nenhuma chamada ao reporter é esperada
	assert.NoError(t, service.SyncReportMetrics(context.Background()))
	assert.False(t, service.TriggerManualSync())
}

func TestReportMetricsSyncService_TriggerManualSync(t *testing.T) {
	service, reporter, recorder := newTestSyncService(t)

	done := make(chan struct{})
	reporter.EXPECT().GetSegmentSummary(gomock.Any(), gomock.Any()).DoAndReturn(
		func(context.Context, domain.ReportFilters) (*domain.SegmentSummary, error) {
			defer close(done)
			return &domain.SegmentSummary{Products: map[string]int{"High-Performer": 1}}, nil
		})

	assert.True(t, service.TriggerManualSync())

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("sincronização manual não executou")
	}

	assert.Eventually(t, func() bool {
		return service.GetStatus()["sync_running"] == false && recorder.calls() == 1
	}, 2*time.Second, 10*time.Millisecond)
}

func TestReportMetricsSyncService_StartDisabled(t *testing.T) {
	service, _, _ := newTestSyncService(t)
	service.config.SyncEnabled = false

	require.NoError(t, service.Start(context.Background()))
}

func TestReportMetricsSyncService_StartInvalidCron(t *testing.T) {
	service, _, _ := newTestSyncService(t)
	service.config.CronSchedule = "isso não é cron"

	assert.Error(t, service.Start(context.Background()))
}
