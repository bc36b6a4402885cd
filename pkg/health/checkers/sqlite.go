package checkers

import (
	"context"
	"database/sql"
)

type SQLiteChecker struct {
	db *sql.DB
}

func NewSQLiteChecker(db *sql.DB) *SQLiteChecker {
	return &SQLiteChecker{db: db}
}

func (c *SQLiteChecker) Name() string { return "sqlite" }

func (c *SQLiteChecker) Check(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	return c.db.PingContext(ctx)
}
