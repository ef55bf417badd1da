package repository

import (
	"context"

	"greenmint/internal/db"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name Storage . Storage
type Storage interface {
	db.Querier
	MigrateTable(tbl ...any) error
	Transaction(ctx context.Context, fn func(tx db.Querier) error) error
}
