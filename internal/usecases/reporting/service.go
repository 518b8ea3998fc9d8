// Package reporting monta os relatórios de produtos e clientes a partir da camada Gold.
package reporting

import (
	"context"
	"fmt"
	"time"

	"github.com/vfg2006/gold-reports-api/infrastructure/repository"
	"github.com/vfg2006/gold-reports-api/internal/analytics"
	"github.com/vfg2006/gold-reports-api/internal/domain"
	"github.com/vfg2006/gold-reports-api/pkg/log"
	"github.com/vfg2006/gold-reports-api/pkg/metrics"
	"golang.org/x/sync/errgroup"
)

const (
	ReportProducts  = "products"
	ReportCustomers = "customers"
)

type Service struct {
	salesRepo    repository.SalesRepository
	productRepo  repository.ProductRepository
	customerRepo repository.CustomerRepository
	metrics      metrics.Recorder
	now          func() time.Time
}

func NewService(
	salesRepo repository.SalesRepository,
	productRepo repository.ProductRepository,
	customerRepo repository.CustomerRepository,
	recorder metrics.Recorder,
) Reporter {
	if recorder == nil {
		recorder = metrics.Noop{}
	}

	return &Service{
		salesRepo:    salesRepo,
		productRepo:  productRepo,
		customerRepo: customerRepo,
		metrics:      recorder,
		now:          time.Now,
	}
}

// asOf devolve a data de referência sem horário
func (s *Service) asOf(filters domain.ReportFilters) time.Time {
	if filters.AsOf != nil {
		return domain.NewDate(*filters.AsOf).Time
	}
	return domain.NewDate(s.now()).Time
}

func (s *Service) GetProductReport(ctx context.Context, filters domain.ReportFilters) ([]*domain.ProductReport, error) {
	filters, err := normalizeProductFilters(filters)
	if err != nil {
		return nil, err
	}

	rows, err := s.buildProductReport(ctx, s.asOf(filters))
	if err != nil {
		return nil, err
	}

	filtered := make([]*domain.ProductReport, 0, len(rows))
	for _, r := range rows {
		if matchProduct(r, filters) {
			filtered = append(filtered, r)
		}
	}

	return filtered, nil
}

func (s *Service) GetProductReportByKey(ctx context.Context, productKey int64, filters domain.ReportFilters) (*domain.ProductReport, error) {
	rows, err := s.buildProductReport(ctx, s.asOf(filters))
	if err != nil {
		return nil, err
	}

	for _, r := range rows {
		if r.ProductKey != nil && *r.ProductKey == productKey {
			return r, nil
		}
	}

	return nil, fmt.Errorf("%w: product_key %d", ErrReportNotFound, productKey)
}

func (s *Service) GetCustomerReport(ctx context.Context, filters domain.ReportFilters) ([]*domain.CustomerReport, error) {
	filters, err := normalizeCustomerFilters(filters)
	if err != nil {
		return nil, err
	}

	rows, err := s.buildCustomerReport(ctx, s.asOf(filters))
	if err != nil {
		return nil, err
	}

	filtered := make([]*domain.CustomerReport, 0, len(rows))
	for _, r := range rows {
		if matchCustomer(r, filters) {
			filtered = append(filtered, r)
		}
	}

	return filtered, nil
}

func (s *Service) GetCustomerReportByKey(ctx context.Context, customerKey int64, filters domain.ReportFilters) (*domain.CustomerReport, error) {
	rows, err := s.buildCustomerReport(ctx, s.asOf(filters))
	if err != nil {
		return nil, err
	}

	for _, r := range rows {
		if r.CustomerKey != nil && *r.CustomerKey == customerKey {
			return r, nil
		}
	}

	return nil, fmt.Errorf("%w: customer_key %d", ErrReportNotFound, customerKey)
}

// GetSegmentSummary ignora os filtros de segmento e usa apenas AsOf
func (s *Service) GetSegmentSummary(ctx context.Context, filters domain.ReportFilters) (*domain.SegmentSummary, error) {
	asOf := s.asOf(filters)
	started := time.Now()

	var (
		sales     []*domain.Sale
		products  []*domain.Product
		customers []*domain.Customer
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		sales, err = s.salesRepo.ListSales(gctx)
		return wrapSource(err, "vendas")
	})
	g.Go(func() (err error) {
		products, err = s.productRepo.ListProducts(gctx)
		return wrapSource(err, "produtos")
	})
	g.Go(func() (err error) {
		customers, err = s.customerRepo.ListCustomers(gctx)
		return wrapSource(err, "clientes")
	})
	if err := g.Wait(); err != nil {
		s.metrics.RecordBuild(ReportProducts, started, 0, err)
		s.metrics.RecordBuild(ReportCustomers, started, 0, err)
		return nil, err
	}

	productRows := analytics.BuildProductReport(sales, products, asOf)
	s.metrics.RecordBuild(ReportProducts, started, len(productRows), nil)
	customerRows := analytics.BuildCustomerReport(sales, customers, asOf)
	s.metrics.RecordBuild(ReportCustomers, started, len(customerRows), nil)

	summary := SummarizeSegments(productRows, customerRows)
	summary.AsOf = domain.NewDate(asOf)

	return summary, nil
}

// SummarizeSegments conta entidades e soma receita por segmento
func SummarizeSegments(productRows []*domain.ProductReport, customerRows []*domain.CustomerReport) *domain.SegmentSummary {
	summary := &domain.SegmentSummary{
		Products:  make(map[string]int, len(domain.ProductSegments)),
		Customers: make(map[string]int, len(domain.CustomerSegments)),
	}
	for _, segment := range domain.ProductSegments {
		summary.Products[segment] = 0
	}
	for _, segment := range domain.CustomerSegments {
		summary.Customers[segment] = 0
	}

	for _, r := range productRows {
		summary.Products[r.ProductSegment]++
		summary.ProductsRevenue += r.TotalSales
	}
	for _, r := range customerRows {
		summary.Customers[r.CustomerSegment]++
		summary.CustomersRevenue += r.TotalSales
	}

	summary.TotalProducts = len(productRows)
	summary.TotalCustomers = len(customerRows)

	return summary
}

func (s *Service) buildProductReport(ctx context.Context, asOf time.Time) (rows []*domain.ProductReport, err error) {
	started := time.Now()
	defer func() {
		s.metrics.RecordBuild(ReportProducts, started, len(rows), err)
	}()

	var (
		sales    []*domain.Sale
		products []*domain.Product
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		sales, err = s.salesRepo.ListSales(gctx)
		return wrapSource(err, "vendas")
	})
	g.Go(func() (err error) {
		products, err = s.productRepo.ListProducts(gctx)
		return wrapSource(err, "produtos")
	})
	if err := g.Wait(); err != nil {
		log.ForContext(ctx).WithError(err).WithField("report", ReportProducts).Error("Erro ao carregar dados do relatório")
		return nil, err
	}

	rows = analytics.BuildProductReport(sales, products, asOf)

	log.ForContext(ctx).WithFields(log.Fields{
		"report": ReportProducts,
		"as_of":  asOf.Format(time.DateOnly),
		"rows":   len(rows),
	}).Debug("Relatório gerado")

	return rows, nil
}

func (s *Service) buildCustomerReport(ctx context.Context, asOf time.Time) (rows []*domain.CustomerReport, err error) {
	started := time.Now()
	defer func() {
		s.metrics.RecordBuild(ReportCustomers, started, len(rows), err)
	}()

	var (
		sales     []*domain.Sale
		customers []*domain.Customer
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		sales, err = s.salesRepo.ListSales(gctx)
		return wrapSource(err, "vendas")
	})
	g.Go(func() (err error) {
		customers, err = s.customerRepo.ListCustomers(gctx)
		return wrapSource(err, "clientes")
	})
	if err := g.Wait(); err != nil {
		log.ForContext(ctx).WithError(err).WithField("report", ReportCustomers).Error("Erro ao carregar dados do relatório")
		return nil, err
	}

	rows = analytics.BuildCustomerReport(sales, customers, asOf)

	log.ForContext(ctx).WithFields(log.Fields{
		"report": ReportCustomers,
		"as_of":  asOf.Format(time.DateOnly),
		"rows":   len(rows),
	}).Debug("Relatório gerado")

	return rows, nil
}

func wrapSource(err error, source string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%w (%s): %w", ErrDataSource, source, err)
}
