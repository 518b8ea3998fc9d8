package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/vfg2006/gold-reports-api/infrastructure/database"
	"github.com/vfg2006/gold-reports-api/internal/domain"
)

type CustomerRepository interface {
	ListCustomers(ctx context.Context) ([]*domain.Customer, error)
}

type customerRepository struct {
	conn  database.Conn
	table string
}

func NewCustomerRepository(conn database.Conn, table string) CustomerRepository {
	return &customerRepository{
		conn:  conn,
		table: table,
	}
}

func (r *customerRepository) ListCustomers(ctx context.Context) ([]*domain.Customer, error) {
	sqlQuery, args, err := r.conn.StatementBuilder().
		Select(
			"customer_key",
			"customer_number",
			"first_name",
			"last_name",
			"birth_date",
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

	customers := make([]*domain.Customer, 0)
	for rows.Next() {
		var (
			customer  domain.Customer
			number    sql.NullString
			firstName sql.NullString
			lastName  sql.NullString
			birthDate nullDate
		)

		if err := rows.Scan(&customer.CustomerKey, &number, &firstName, &lastName, &birthDate); err != nil {
			return nil, fmt.Errorf("erro ao ler cliente: %w", err)
		}

		customer.CustomerNumber = nullStringPtr(number)
		customer.FirstName = nullStringPtr(firstName)
		customer.LastName = nullStringPtr(lastName)
		customer.BirthDate = birthDate.Ptr()

		customers = append(customers, &customer)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao iterar clientes: %w", err)
	}

	return customers, nil
}
