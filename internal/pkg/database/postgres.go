package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	// Driver PostgreSQL para database/sql.
	_ "github.com/lib/pq"
)

// PoolConfig define el tamaño y la vida útil de las conexiones del pool.
type PoolConfig struct {
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
	PingTimeout     time.Duration
}

// DefaultPoolConfig son los valores usados cuando la configuración no indica otros.
var DefaultPoolConfig = PoolConfig{
	MaxOpenConns:    25,
	MaxIdleConns:    10,
	ConnMaxLifetime: 5 * time.Minute,
	ConnMaxIdleTime: 2 * time.Minute,
	PingTimeout:     5 * time.Second,
}

// NewPostgresDB abre el pool de conexiones, lo configura y verifica el acceso con un ping.
// El pool se crea una vez al arrancar y se inyecta en los repositorios.
func NewPostgresDB(dataSourceName string, pool PoolConfig) (*sql.DB, error) {
	db, err := sql.Open("postgres", dataSourceName)
	if err != nil {
		return nil, fmt.Errorf("fallo al abrir la conexión con la BD: %w", err)
	}

	db.SetMaxOpenConns(pool.MaxOpenConns)
	db.SetMaxIdleConns(pool.MaxIdleConns)
	db.SetConnMaxLifetime(pool.ConnMaxLifetime)
	db.SetConnMaxIdleTime(pool.ConnMaxIdleTime)

	ctx, cancel := context.WithTimeout(context.Background(), pool.PingTimeout)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("fallo en el ping inicial a la BD: %w", err)
	}

	return db, nil
}
