package domain

import "time"

// Sale representa uma linha da tabela fato de vendas (um item de pedido)
type Sale struct {
	// OrderNumber vazio equivale a NULL e não entra nas contagens distintas
	OrderNumber string
	// chaves e valor nulos na origem ficam nil
	ProductKey  *int64
	CustomerKey *int64
	OrderDate   *time.Time
	SalesAmount *float64
	Quantity    int64
}

// Product representa uma linha da dimensão de produtos
type Product struct {
	ProductKey  int64
	ProductName *string
	Category    *string
	Subcategory *string
	Cost        *float64
}

// Customer representa uma linha da dimensão de clientes
type Customer struct {
	CustomerKey    int64
	CustomerNumber *string
	FirstName      *string
	LastName       *string
	BirthDate      *time.Time
}
