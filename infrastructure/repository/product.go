package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/vfg2006/gold-reports-api/infrastructure/database"
	"github.com/vfg2006/gold-reports-api/internal/domain"
)

type ProductRepository interface {
	ListProducts(ctx context.Context) ([]*domain.Product, error)
}

type productRepository struct {
	conn  database.Conn
	table string
}

func NewProductRepository(conn database.Conn, table string) ProductRepository {
	return &productRepository{
		conn:  conn,
		table: table,
	}
}

func (r *productRepository) ListProducts(ctx context.Context) ([]*domain.Product, error) {
	sqlQuery, args, err := r.conn.StatementBuilder().
		Select(
			"product_key",
			"product_name",
			"category",
			"subcategory",
			"cost",
		).
		From(r.table).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(ctx, sqlQuery, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	products := make([]*domain.Product, 0)
	for rows.Next() {
		var (
			product     domain.Product
			name        sql.NullString
			category    sql.NullString
			subcategory sql.NullString
			cost        sql.NullFloat64
		)

		if err := rows.Scan(&product.ProductKey, &name, &category, &subcategory, &cost); err != nil {
			return nil, fmt.Errorf("erro ao ler produto: %w", err)
		}

		product.ProductName = nullStringPtr(name)
		product.Category = nullStringPtr(category)
		product.Subcategory = nullStringPtr(subcategory)
		product.Cost = nullFloat64Ptr(cost)

		products = append(products, &product)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao iterar produtos: %w", err)
	}

	return products, nil
}

func nullStringPtr(s sql.NullString) *string {
	if !s.Valid {
		return nil
	}
	return &s.String
}
