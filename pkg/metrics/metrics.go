// Package metrics expõe as métricas Prometheus da geração de relatórios.
package metrics

import (
	"fmt"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// Recorder é o que os serviços usam para registrar métricas
type Recorder interface {
	RecordBuild(report string, started time.Time, rows int, err error)
	SetSegmentEntities(report, segment string, count int)
}

type Registry struct {
	reg *prometheus.Registry

	buildDuration  *prometheus.SummaryVec // gold_report_build_duration_seconds
	rowsTotal      *prometheus.CounterVec // gold_report_rows_total
	segmentEntities *prometheus.GaugeVec   // gold_report_segment_entities
}

func NewRegistry() (*Registry, error) {
	reg := prometheus.NewRegistry()

	buildDuration := prometheus.NewSummaryVec(
		prometheus.SummaryOpts{
			Name:       "gold_report_build_duration_seconds",
			Help:       "Duração da geração de relatórios em segundos, por relatório e status.",
			Objectives: map[float64]float64{0.5: 0.05, 0.9: 0.01, 0.99: 0.001},
		},
		[]string{"report", "status"},
	)
	rowsTotal := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gold_report_rows_total",
			Help: "Total de linhas de relatório geradas.",
		},
		[]string{"report"},
	)
	segmentEntities := prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "gold_report_segment_entities",
			Help: "Quantidade de entidades por segmento na última sincronização.",
		},
		[]string{"report", "segment"},
	)

	collectors := map[string]prometheus.Collector{
		"build duration":   buildDuration,
		"rows counter":     rowsTotal,
		"segment entities": segmentEntities,
	}
	for name, c := range collectors {
		if err := reg.Register(c); err != nil {
			return nil, fmt.Errorf("metrics: erro ao registrar %s: %w", name, err)
		}
	}

	return &Registry{
		reg:            reg,
		buildDuration:  buildDuration,
		rowsTotal:      rowsTotal,
		segmentEntities: segmentEntities,
	}, nil
}

func (r *Registry) RecordBuild(report string, started time.Time, rows int, err error) {
	status := StatusSuccess
	if err != nil {
		status = StatusError
	}

	r.buildDuration.WithLabelValues(report, status).Observe(time.Since(started).Seconds())
	if err == nil {
		r.rowsTotal.WithLabelValues(report).Add(float64(rows))
	}
}

func (r *Registry) SetSegmentEntities(report, segment string, count int) {
	r.segmentEntities.WithLabelValues(report, segment).Set(float64(count))
}

// Handler expõe o registry no formato de scrape do Prometheus
func (r *Registry) Handler() http.Handler {
	return promhttp.HandlerFor(r.reg, promhttp.HandlerOpts{Registry: r.reg})
}

// Noop descarta todas as métricas
type Noop struct{}

func (Noop) RecordBuild(string, time.Time, int, error) {}

func (Noop) SetSegmentEntities(string, string, int) {}
