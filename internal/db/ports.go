package db

import (
	"context"

	"github.com/shopspring/decimal"
)

// Querier is the set of reads and writes available both on the pool and
// inside a transaction.
type Querier interface {
	Insert(ctx context.Context, record any) error
	GetOneBy(ctx context.Context, column string, value any, entity any) error
	GetAllBy(ctx context.Context, column string, value any, entity any) error
	LockOneBy(ctx context.Context, column string, value any, entity any) error
	TakeJoined(ctx context.Context, q JoinQuery, dest any) error
	UpdateWhere(ctx context.Context, model any, updates map[string]any, where string, args ...any) (int64, error)
	DeleteWhere(ctx context.Context, model any, where string, args ...any) (int64, error)
	FindWhere(ctx context.Context, dest any, order string, where string, args ...any) error
	Count(ctx context.Context, model any) (int64, error)
	Sum(ctx context.Context, model any, column string) (decimal.Decimal, error)
}

var _ Querier = (*PostgresDB)(nil)
