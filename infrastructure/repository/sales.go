// Package repository contém as implementações dos repositórios de leitura da camada Gold
package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/gold-reports-api/infrastructure/database"
	"github.com/vfg2006/gold-reports-api/internal/domain"
)

type SalesRepository interface {
	ListSales(ctx context.Context) ([]*domain.Sale, error)
}

type salesRepository struct {
	conn  database.Conn
	table string
}

func NewSalesRepository(conn database.Conn, table string) SalesRepository {
	return &salesRepository{
		conn:  conn,
		table: table,
	}
}

// ListSales retorna as linhas da tabela fato com order_date preenchida
func (r *salesRepository) ListSales(ctx context.Context) ([]*domain.Sale, error) {
	sqlQuery, args, err := r.conn.StatementBuilder().
		Select(
			"order_number",
			"product_key",
			"customer_key",
			"order_date",
			"sales_amount",
			"quantity",
		).
		From(r.table).
		Where(squirrel.NotEq{"order_date": nil}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(ctx, sqlQuery, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	sales := make([]*domain.Sale, 0)
	for rows.Next() {
		var (
			orderNumber sql.NullString
			productKey  sql.NullInt64
			customerKey sql.NullInt64
			orderDate   nullDate
			salesAmount sql.NullFloat64
			quantity    sql.NullInt64
		)

		err := rows.Scan(
			&orderNumber,
			&productKey,
			&customerKey,
			&orderDate,
			&salesAmount,
			&quantity,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao ler venda: %w", err)
		}

		sales = append(sales, &domain.Sale{
			OrderNumber: orderNumber.String,
			ProductKey:  nullInt64Ptr(productKey),
			CustomerKey: nullInt64Ptr(customerKey),
			OrderDate:   orderDate.Ptr(),
			SalesAmount: nullFloat64Ptr(salesAmount),
			Quantity:    quantity.Int64,
		})
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao iterar vendas: %w", err)
	}

	return sales, nil
}
