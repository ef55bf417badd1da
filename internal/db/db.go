package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
)

var ErrNotFound = errors.New("record not found")
var ErrDuplicateKey = errors.New("duplicate key")

const uniqueViolationCode = "23505"

// JoinQuery describes a single-row read across joined tables. When LockTable is
// set the row of that table is locked FOR UPDATE until the transaction ends.
type JoinQuery struct {
	Table     string
	Select    string
	Joins     []string
	Where     string
	Args      []any
	LockTable string
}

type PostgresDB struct {
	DB *gorm.DB
}

func NewPostgresDB(dsn string) (*PostgresDB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return &PostgresDB{}, fmt.Errorf("failed to connect to database: %w", err)
	}

	return &PostgresDB{
		DB: db,
	}, nil
}

func (p *PostgresDB) MigrateTable(tbl ...any) error {
	err := p.DB.AutoMigrate(tbl...)
	if err != nil {
		return fmt.Errorf("failed to migrate table: %w", err)
	}

	return nil
}

func (p *PostgresDB) Ping(ctx context.Context) error {
	sqlDB, err := p.DB.DB()
	if err != nil {
		return fmt.Errorf("get sql db conn: %w", err)
	}
	return sqlDB.PingContext(ctx)
}

func (p *PostgresDB) Close() error {
	sqlDB, err := p.DB.DB()
	if err != nil {
		return fmt.Errorf("get sql db conn: %w", err)
	}
	return sqlDB.Close()
}

// Transaction runs fn inside a database transaction. The Querier handed to fn
// is bound to the transaction; returning an error rolls it back.
func (p *PostgresDB) Transaction(ctx context.Context, fn func(tx Querier) error) error {
	return p.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&PostgresDB{DB: tx})
	})
}

func (p *PostgresDB) Insert(ctx context.Context, record any) error {
	if err := p.DB.WithContext(ctx).Create(record).Error; err != nil {
		return fmt.Errorf("insert to table: %w", translate(err))
	}
	return nil
}

func (p *PostgresDB) GetOneBy(ctx context.Context, column string, value any, entity any) error {
	query := fmt.Sprintf("%s = ?", column)
	err := p.DB.WithContext(ctx).Where(query, value).First(entity).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("getting record by %q: %w", column, err)
	}
	return nil
}

func (p *PostgresDB) GetAllBy(ctx context.Context, column string, value any, entity any) error {
	tx := p.DB.WithContext(ctx).Where(fmt.Sprintf("%s IN ?", column), value).Find(entity)
	if tx.Error != nil {
		return fmt.Errorf("getting records by %q: %w", column, tx.Error)
	}
	return nil
}

// LockOneBy reads a single row and locks it FOR UPDATE. Only meaningful
// inside Transaction.
func (p *PostgresDB) LockOneBy(ctx context.Context, column string, value any, entity any) error {
	query := fmt.Sprintf("%s = ?", column)
	err := p.DB.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where(query, value).
		Take(entity).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("locking record by %q: %w", column, err)
	}
	return nil
}

func (p *PostgresDB) TakeJoined(ctx context.Context, q JoinQuery, dest any) error {
	tx := p.DB.WithContext(ctx).Table(q.Table).Select(q.Select)
	for _, join := range q.Joins {
		tx = tx.Joins(join)
	}
	tx = tx.Where(q.Where, q.Args...)
	if q.LockTable != "" {
		tx = tx.Clauses(clause.Locking{Strength: "UPDATE", Table: clause.Table{Name: q.LockTable}})
	}

	if err := tx.Take(dest).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("joined read from %q: %w", q.Table, err)
	}
	return nil
}

// UpdateWhere applies updates to every row of model matching where and
// reports how many rows changed. Callers use the count for compare-and-set.
func (p *PostgresDB) UpdateWhere(ctx context.Context, model any, updates map[string]any, where string, args ...any) (int64, error) {
	tx := p.DB.WithContext(ctx).Model(model).Where(where, args...).Updates(updates)
	if tx.Error != nil {
		return 0, fmt.Errorf("update table: %w", translate(tx.Error))
	}
	return tx.RowsAffected, nil
}

func (p *PostgresDB) DeleteWhere(ctx context.Context, model any, where string, args ...any) (int64, error) {
	tx := p.DB.WithContext(ctx).Where(where, args...).Delete(model)
	if tx.Error != nil {
		return 0, fmt.Errorf("delete from table: %w", tx.Error)
	}
	return tx.RowsAffected, nil
}

func (p *PostgresDB) FindWhere(ctx context.Context, dest any, order string, where string, args ...any) error {
	tx := p.DB.WithContext(ctx)
	if where != "" {
		tx = tx.Where(where, args...)
	}
	if order != "" {
		tx = tx.Order(order)
	}
	if err := tx.Find(dest).Error; err != nil {
		return fmt.Errorf("find records: %w", err)
	}
	return nil
}

func (p *PostgresDB) Count(ctx context.Context, model any) (int64, error) {
	var count int64
	if err := p.DB.WithContext(ctx).Model(model).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("get model count: %w", err)
	}
	return count, nil
}

func (p *PostgresDB) Sum(ctx context.Context, model any, column string) (decimal.Decimal, error) {
	var total decimal.Decimal
	row := p.DB.WithContext(ctx).Model(model).Select(fmt.Sprintf("COALESCE(SUM(%s), 0)", column)).Row()
	if err := row.Scan(&total); err != nil {
		return decimal.Zero, fmt.Errorf("sum %q: %w", column, err)
	}
	return total, nil
}

func translate(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
		return fmt.Errorf("%w: %s", ErrDuplicateKey, pgErr.ConstraintName)
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrDuplicateKey
	}
	return err
}
