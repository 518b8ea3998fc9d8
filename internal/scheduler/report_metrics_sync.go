// Package scheduler contém os serviços agendados de atualização de métricas
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/gold-reports-api/internal/config"
	"github.com/vfg2006/gold-reports-api/internal/domain"
	"github.com/vfg2006/gold-reports-api/internal/usecases/reporting"
	"github.com/vfg2006/gold-reports-api/pkg/metrics"
	"github.com/vfg2006/gold-reports-api/pkg/utils"
)

type ReportMetricsSyncConfig struct {
	CronSchedule string
	SyncEnabled  bool
}

// ReportMetricsSyncService recalcula os relatórios e publica a contagem por segmento
type ReportMetricsSyncService struct {
	scheduler           *gocron.Scheduler
	reporter            reporting.Reporter
	recorder            metrics.Recorder
	config              ReportMetricsSyncConfig
	now                 func() time.Time
	syncRunning         bool
	syncMutex           sync.Mutex
	lastRunID           string
	lastError           string
	lastSummary         *domain.SegmentSummary
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
}

func NewReportMetricsSyncService(
	reporter reporting.Reporter,
	recorder metrics.Recorder,
	cfg *config.Config,
) *ReportMetricsSyncService {
	syncConfig := ReportMetricsSyncConfig{
		CronSchedule: cfg.ReportMetricsSync.CronSchedule,
		SyncEnabled:  cfg.ReportMetricsSync.Enabled,
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule": syncConfig.CronSchedule,
		"enabled":       syncConfig.SyncEnabled,
	}).Info("Configuração do agendador de métricas dos relatórios carregada")

	if recorder == nil {
		recorder = metrics.Noop{}
	}

	return &ReportMetricsSyncService{
		scheduler: gocron.NewScheduler(time.Local),
		reporter:  reporter,
		recorder:  recorder,
		config:    syncConfig,
		now:       time.Now,
	}
}

func (s *ReportMetricsSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Cron de métricas dos relatórios desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando cron de métricas dos relatórios")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		if err := s.SyncReportMetrics(ctx); err != nil {
			logrus.WithError(err).Error("Erro na atualização das métricas dos relatórios")
		}
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar sincronização de métricas dos relatórios: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando cron de métricas dos relatórios")
		s.scheduler.Stop()
	}()

	return nil
}

// SyncReportMetrics roda uma sincronização. Se já houver uma em andamento, retorna sem fazer nada.
func (s *ReportMetricsSyncService) SyncReportMetrics(ctx context.Context) error {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Warn("Sincronização de métricas dos relatórios já está em execução")
		return nil
	}

	runID, err := utils.GenerateRunID()
	if err != nil {
		s.syncMutex.Unlock()
		return fmt.Errorf("erro ao gerar run id: %w", err)
	}

	s.syncRunning = true
	s.lastRunID = runID
	s.lastSyncStartedAt = s.now()
	s.syncMutex.Unlock()

	logger := logrus.WithField("run_id", runID)
	logger.Info("Iniciando atualização das métricas dos relatórios")

	summary, err := s.reporter.GetSegmentSummary(ctx, domain.ReportFilters{})
	if err == nil {
		s.publish(summary)
	}

	s.syncMutex.Lock()
	s.syncRunning = false
	s.lastSyncCompletedAt = s.now()
	if err != nil {
		s.lastError = err.Error()
	} else {
		s.lastError = ""
		s.lastSummary = summary
	}
	s.syncMutex.Unlock()

	if err != nil {
		logger.WithError(err).Error("Erro ao gerar resumo dos relatórios")
		return err
	}

	logger.WithFields(logrus.Fields{
		"products":  summary.TotalProducts,
		"customers": summary.TotalCustomers,
	}).Info("Atualização das métricas dos relatórios concluída")

	return nil
}

func (s *ReportMetricsSyncService) publish(summary *domain.SegmentSummary) {
	for segment, count := range summary.Products {
		s.recorder.SetSegmentEntities(reporting.ReportProducts, segment, count)
	}
	for segment, count := range summary.Customers {
		s.recorder.SetSegmentEntities(reporting.ReportCustomers, segment, count)
	}
}

// TriggerManualSync inicia manualmente uma sincronização em background
func (s *ReportMetricsSyncService) TriggerManualSync() bool {
	s.syncMutex.Lock()
	running := s.syncRunning
	s.syncMutex.Unlock()

	if running {
		logrus.Info("Sincronização de métricas já em andamento, ignorando solicitação manual")
		return false
	}

	logrus.Info("Iniciando sincronização manual de métricas dos relatórios")
	go func() {
		if err := s.SyncReportMetrics(context.Background()); err != nil {
			logrus.WithError(err).Error("Erro na sincronização manual de métricas dos relatórios")
		}
	}()

	return true
}

// GetStatus retorna o status atual do agendador
func (s *ReportMetricsSyncService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"sync_running":           s.syncRunning,
		"last_run_id":            s.lastRunID,
		"last_error":             s.lastError,
		"last_summary":           s.lastSummary,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
	}
}
