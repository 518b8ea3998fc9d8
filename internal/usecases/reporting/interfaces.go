package reporting

import (
	"context"

	"github.com/vfg2006/gold-reports-api/internal/domain"
)

// ProductReporter gera o relatório report_products
type ProductReporter interface {
	GetProductReport(ctx context.Context, filters domain.ReportFilters) ([]*domain.ProductReport, error)
	GetProductReportByKey(ctx context.Context, productKey int64, filters domain.ReportFilters) (*domain.ProductReport, error)
}

// CustomerReporter gera o relatório report_customers
type CustomerReporter interface {
	GetCustomerReport(ctx context.Context, filters domain.ReportFilters) ([]*domain.CustomerReport, error)
	GetCustomerReportByKey(ctx context.Context, customerKey int64, filters domain.ReportFilters) (*domain.CustomerReport, error)
}

// Reporter combina os dois relatórios e o resumo por segmento
type Reporter interface {
	ProductReporter
	CustomerReporter

	// GetSegmentSummary conta as entidades de cada segmento nos dois relatórios
	GetSegmentSummary(ctx context.Context, filters domain.ReportFilters) (*domain.SegmentSummary, error)
}
