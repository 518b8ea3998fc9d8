// Package app monta o serviço de relatórios a partir da configuração.
// Usado pela API e pelo reportctl.
package app

import (
	"context"
	"fmt"

	"github.com/vfg2006/gold-reports-api/infrastructure/database"
	"github.com/vfg2006/gold-reports-api/infrastructure/repository"
	"github.com/vfg2006/gold-reports-api/internal/config"
	"github.com/vfg2006/gold-reports-api/internal/usecases/reporting"
	"github.com/vfg2006/gold-reports-api/pkg/metrics"
)

// Reporting é o serviço de relatórios com a conexão que o sustenta
type Reporting struct {
	Reporter reporting.Reporter
	Conn     *database.Connection
}

func (r *Reporting) Close() error {
	if r == nil || r.Conn == nil {
		return nil
	}
	return r.Conn.Close()
}

// NewReporting abre a conexão e instancia os repositórios das tabelas Gold
func NewReporting(ctx context.Context, cfg *config.Config, recorder metrics.Recorder) (*Reporting, error) {
	conn, err := database.NewConnection(ctx, cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("erro ao conectar ao banco (%s): %w", cfg.Database.Driver, err)
	}

	salesRepo := repository.NewSalesRepository(conn, cfg.Reports.FactSalesTable)
	productRepo := repository.NewProductRepository(conn, cfg.Reports.ProductsTable)
	customerRepo := repository.NewCustomerRepository(conn, cfg.Reports.CustomersTable)

	return &Reporting{
		Reporter: reporting.NewService(salesRepo, productRepo, customerRepo, recorder),
		Conn:     conn,
	}, nil
}
