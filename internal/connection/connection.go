// Package connection manages live database connections for the seed
// command: PostgreSQL through pgx, MySQL through database/sql.
package connection

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/go-sql-driver/mysql"
	"github.com/jackc/pgx/v5"
)

// Conn abstracts the two live-apply targets.
type Conn interface {
	Exec(ctx context.Context, stmt string) error
	Close(ctx context.Context) error
}

// Connect opens a connection for the given engine and DSN. Only postgresql
// and mysql are supported as live targets.
func Connect(ctx context.Context, engine, dsn string) (Conn, error) {
	switch engine {
	case "postgresql":
		conn, err := pgx.Connect(ctx, dsn)
		if err != nil {
			return nil, fmt.Errorf("connect to postgres: %w", err)
		}
		return &pgConn{conn: conn}, nil
	case "mysql":
		db, err := sql.Open("mysql", dsn)
		if err != nil {
			return nil, fmt.Errorf("open mysql: %w", err)
		}
		if err := db.PingContext(ctx); err != nil {
			db.Close()
			return nil, fmt.Errorf("connect to mysql: %w", err)
		}
		return &myConn{db: db}, nil
	default:
		return nil, fmt.Errorf("engine %q does not support live apply", engine)
	}
}

// Apply executes the statements in order and returns how many ran before
// the first failure.
func Apply(ctx context.Context, conn Conn, stmts []string) (int, error) {
	for i, stmt := range stmts {
		if err := conn.Exec(ctx, stmt); err != nil {
			return i, fmt.Errorf("statement %d: %w", i+1, err)
		}
	}
	return len(stmts), nil
}

type pgConn struct {
	conn *pgx.Conn
}

func (c *pgConn) Exec(ctx context.Context, stmt string) error {
	_, err := c.conn.Exec(ctx, stmt)
	return err
}

func (c *pgConn) Close(ctx context.Context) error {
	return c.conn.Close(ctx)
}

type myConn struct {
	db *sql.DB
}

func (c *myConn) Exec(ctx context.Context, stmt string) error {
	_, err := c.db.ExecContext(ctx, stmt)
	return err
}

func (c *myConn) Close(context.Context) error {
	return c.db.Close()
}
