// Package database abre a conexão somente leitura com a camada Gold.
// Drivers suportados: postgres (lib/pq), sqlserver (go-mssqldb) e sqlite (modernc).
package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	_ "github.com/lib/pq"
	_ "github.com/microsoft/go-mssqldb"
	"github.com/microsoft/go-mssqldb/msdsn"
	"github.com/vfg2006/gold-reports-api/internal/config"
	_ "modernc.org/sqlite"
)

const (
	DriverPostgres  = "postgres"
	DriverSQLServer = "sqlserver"
	DriverSQLite    = "sqlite"
)

type Conn interface {
	Queryer
	Close() error
	Ping(context.Context) error
	StatementBuilder() squirrel.StatementBuilderType
}

type Connection struct {
	*sql.DB
	driver string
}

func NewConnection(
	ctx context.Context,
	cfg config.Database,
) (*Connection, error) {
	driver, err := normalizeDriver(cfg.Driver)
	if err != nil {
		return nil, err
	}

	if driver == DriverSQLServer {
		if _, err := msdsn.Parse(cfg.DSN); err != nil {
			return nil, fmt.Errorf("dsn do sqlserver inválido: %w", err)
		}
	}

	db, err := sql.Open(driver, cfg.DSN)
	if err != nil {
		return nil, err
	}

	if driver == DriverSQLite {
		// cada conexão do pool abriria um banco em memória diferente
		db.SetMaxOpenConns(1)
	} else if cfg.MaxOpenConns > 0 {
		db.SetMaxOpenConns(cfg.MaxOpenConns)
	}

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}

	return &Connection{DB: db, driver: driver}, nil
}

func normalizeDriver(driver string) (string, error) {
	switch driver {
	case DriverPostgres, "postgresql":
		return DriverPostgres, nil
	case DriverSQLServer, "mssql":
		return DriverSQLServer, nil
	case DriverSQLite, "sqlite3":
		return DriverSQLite, nil
	default:
		return "", fmt.Errorf("driver de banco não suportado: %q", driver)
	}
}

func (c *Connection) Driver() string {
	return c.driver
}

func (c *Connection) Ping(ctx context.Context) error {
	return c.DB.PingContext(ctx)
}

// Query executa uma consulta de leitura
func (c *Connection) Query(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error) {
	return c.DB.QueryContext(ctx, query, args...)
}

func (c *Connection) QueryRow(ctx context.Context, query string, args ...interface{}) *sql.Row {
	return c.DB.QueryRowContext(ctx, query, args...)
}

// StatementBuilder retorna o builder do squirrel com o placeholder do driver
func (c *Connection) StatementBuilder() squirrel.StatementBuilderType {
	return squirrel.StatementBuilder.PlaceholderFormat(PlaceholderFormat(c.driver))
}

func PlaceholderFormat(driver string) squirrel.PlaceholderFormat {
	switch driver {
	case DriverPostgres:
		return squirrel.Dollar
	case DriverSQLServer:
		return squirrel.AtP
	default:
		return squirrel.Question
	}
}
