package api

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/justinas/alice"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/gold-reports-api/internal/api/handler"
	"github.com/vfg2006/gold-reports-api/internal/api/handler/router"
	"github.com/vfg2006/gold-reports-api/internal/config"
	"github.com/vfg2006/gold-reports-api/internal/usecases/authenticating"
	"github.com/vfg2006/gold-reports-api/internal/usecases/reporting"
	"github.com/vfg2006/gold-reports-api/pkg/middleware"
)

type Server struct {
	httpServer *http.Server
}

// Dependencies agrupa o que o servidor HTTP precisa para montar as rotas
type Dependencies struct {
	Reporter      reporting.Reporter
	Authenticator authenticating.Authenticator
	Database      handler.Pinger
	Metrics       http.Handler
	CronJobs      handler.CronJobServices
}

func New(config *config.Config, deps Dependencies) (*Server, error) {
	if deps.Reporter == nil {
		return nil, fmt.Errorf("servidor: reporter não configurado")
	}
	if deps.Authenticator == nil {
		return nil, fmt.Errorf("servidor: authenticator não configurado")
	}

	routes := []router.ConfigRouter{
		router.WithRoutes(handler.Healthcheck(deps.Database)...),
		router.WithRoutes(handler.Reports(deps.Reporter)...),
		router.WithRoutes(handler.CronJobs(deps.CronJobs)...),
	}
	if deps.Metrics != nil {
		routes = append(routes, router.WithRoutes(handler.Metrics(deps.Metrics)...))
	}

	rt := router.New(routes...)

	middlewares := []alice.Constructor{
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.Cors(config.Server.AllowedOrigins),
		middleware.AuthMiddleware(deps.Authenticator),
	}

	handler := alice.New(middlewares...).Then(rt)

	srv := &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", config.Server.Host, config.Server.Port),
			Handler:           handler,
			ReadHeaderTimeout: 2 * time.Second,
		},
	}

	return srv, nil
}

// Handler expõe a cadeia completa de middlewares e rotas
func (s Server) Handler() http.Handler {
	return s.httpServer.Handler
}

func (s Server) Run(ctx context.Context) error {
	go func() {
		logrus.WithFields(logrus.Fields{
			"address": s.httpServer.Addr,
		}).Info("Servidor iniciando")

		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.WithError(err).Error("Erro durante a execução do servidor")
		}
	}()

	// Canal para aguardar sinais de término
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	// Aguardar pelo sinal ou pelo cancelamento do contexto
	select {
	case <-done:
		logrus.Info("Sinal de interrupção recebido")
	case <-ctx.Done():
		logrus.Info("Contexto de aplicação cancelado")
	}

	// Define timeout para desligamento
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	// Log de início do desligamento
	logrus.WithFields(logrus.Fields{
		"timeout": "15s",
	}).Info("Iniciando desligamento gracioso do servidor")

	if err := s.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("Erro durante o desligamento do servidor")
		return err
	}

	logrus.Info("Servidor desligado com sucesso")
	return nil
}

func (s Server) Shutdown(ctx context.Context) error {
	logrus.Info("Executando operações de limpeza antes do desligamento")

	err := s.httpServer.Shutdown(ctx)
	if err != nil {
		return err
	}

	logrus.Info("Servidor HTTP desligado com sucesso")
	return nil
}
