package database

import (
	"context"
	"database/sql"
	"fmt"

	"gorm.io/gorm"
)

// Lease is a single store connection held for the span of one request. The
// connection is checked out of the pool on the first call to DB and returned
// by Release. A Lease must not be shared between goroutines.
type Lease struct {
	ctx  context.Context
	pool *gorm.DB
	conn *sql.Conn
	db   *gorm.DB
}

func NewLease(ctx context.Context, pool *gorm.DB) *Lease {
	if ctx == nil {
		ctx = context.Background()
	}
	return &Lease{ctx: ctx, pool: pool}
}

// DB returns a gorm handle bound to the leased connection, acquiring it on
// first use.
func (l *Lease) DB() (*gorm.DB, error) {
	if l.db != nil {
		return l.db, nil
	}

	sqlDB, err := l.pool.DB()
	if err != nil {
		return nil, fmt.Errorf("get database instance: %w", err)
	}
	conn, err := sqlDB.Conn(l.ctx)
	if err != nil {
		return nil, fmt.Errorf("acquire connection: %w", err)
	}

	tx := l.pool.Session(&gorm.Session{NewDB: true, Context: l.ctx})
	tx.Statement.ConnPool = conn

	l.conn = conn
	l.db = tx
	return tx, nil
}

func (l *Lease) Acquired() bool {
	return l.conn != nil
}

// Release returns the connection to the pool. It is a no-op when nothing was
// acquired and may be called more than once.
func (l *Lease) Release() error {
	if l.conn == nil {
		return nil
	}
	err := l.conn.Close()
	l.conn = nil
	l.db = nil
	return err
}
