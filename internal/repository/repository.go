// Package repository handles all interactions with the database.
//
// It contains raw SQL queries and methods to fetch data, abstracting
// SQL logic away from the handler and binding layers.
package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
)

// Querier is the subset of pgxpool.Pool the repositories use.
// Keeping it narrow lets tests substitute a mock pool.
type Querier interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}
