package main

import (
	"context"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/gold-reports-api/internal/api"
	"github.com/vfg2006/gold-reports-api/internal/api/handler"
	"github.com/vfg2006/gold-reports-api/internal/app"
	"github.com/vfg2006/gold-reports-api/internal/config"
	"github.com/vfg2006/gold-reports-api/internal/scheduler"
	"github.com/vfg2006/gold-reports-api/internal/usecases/authenticating"
	"github.com/vfg2006/gold-reports-api/pkg/log"
	"github.com/vfg2006/gold-reports-api/pkg/metrics"
)

func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	log.Configure(cfg.App.LogLevel)
	logrus.Infof("Nível de log configurado para: %s", logrus.GetLevel())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	registry, err := metrics.NewRegistry()
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao registrar métricas")
	}

	reports, err := app.NewReporting(ctx, cfg, registry)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar à camada Gold")
	}
	defer reports.Close()

	logrus.WithField("driver", reports.Conn.Driver()).Info("Conexão com a camada Gold estabelecida com sucesso")

	authenticator := authenticating.NewService(cfg.Auth)
	if !authenticator.Enabled() {
		logrus.Warn("AUTH_SECRET não configurado, rotas de relatório sem autenticação")
	}

	reportMetricsSyncService := scheduler.NewReportMetricsSyncService(reports.Reporter, registry, cfg)
	if err := reportMetricsSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de métricas dos relatórios")
	} else {
		logrus.Info("Agendador de métricas dos relatórios iniciado com sucesso")
	}

	server, err := api.New(cfg, api.Dependencies{
		Reporter:      reports.Reporter,
		Authenticator: authenticator,
		Database:      reports.Conn,
		Metrics:       registry.Handler(),
		CronJobs: handler.CronJobServices{
			ReportMetricsSyncService: reportMetricsSyncService,
		},
	})
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}
