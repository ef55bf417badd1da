package db_test

import (
	"context"
	"database/sql"
	"errors"

	"greenmint/internal/db"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type Test struct {
	ID      uint `gorm:"primaryKey"`
	MeterID string
}

type joinedRow struct {
	ID     uint
	Wallet string
}

var _ = Describe("Database", func() {
	var (
		mock   sqlmock.Sqlmock
		mockDb *sql.DB
		err    error
		testDB *db.PostgresDB
		ctx    context.Context
	)

	BeforeEach(func() {
		ctx = context.Background()
		mockDb, mock, err = sqlmock.New()
		Expect(err).NotTo(HaveOccurred())

		dialector := postgres.New(postgres.Config{
			Conn:       mockDb,
			DriverName: "postgres",
		})

		gormDB, err := gorm.Open(dialector, &gorm.Config{})
		Expect(err).NotTo(HaveOccurred())

		testDB = &db.PostgresDB{
			DB: gormDB,
		}
	})

	AfterEach(func() {
		mock.ExpectClose()
		Expect(mockDb.Close()).To(Succeed())
	})

	Describe("MigrateTable", func() {
		var err error

		BeforeEach(func() {
			mock.ExpectQuery(`SELECT.*FROM information_schema\.tables.*`).
				WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(0))

			mock.ExpectExec(`^CREATE TABLE \"tests\".*$`).
				WillReturnResult(sqlmock.NewResult(0, 1))
		})
		JustBeforeEach(func() {
			err = testDB.MigrateTable(&Test{})
		})
		It("should migrate the table successfully", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(mock.ExpectationsWereMet()).To(Succeed())
		})
	})

	Describe("Insert", func() {
		var err error

		JustBeforeEach(func() {
			err = testDB.Insert(ctx, &Test{ID: 1, MeterID: "M-100"})
		})

		When("the row is new", func() {
			BeforeEach(func() {
				mock.ExpectBegin()
				mock.ExpectQuery(`^INSERT INTO "tests" \("meter_id","id"\) VALUES \(\$1,\$2\) RETURNING "id"$`).
					WithArgs("M-100", 1).
					WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
				mock.ExpectCommit()
			})

			It("should insert it", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(mock.ExpectationsWereMet()).To(Succeed())
			})
		})

		When("a unique index rejects the row", func() {
			BeforeEach(func() {
				mock.ExpectBegin()
				mock.ExpectQuery(`^INSERT INTO "tests"`).
					WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "idx_tests_meter_id"})
				mock.ExpectRollback()
			})

			It("should return ErrDuplicateKey", func() {
				Expect(errors.Is(err, db.ErrDuplicateKey)).To(BeTrue())
				Expect(err).To(MatchError(ContainSubstring("idx_tests_meter_id")))
				Expect(mock.ExpectationsWereMet()).To(Succeed())
			})
		})
	})

	Describe("GetOneBy", func() {
		When("a record is found", func() {
			BeforeEach(func() {
				mock.ExpectQuery(`SELECT \* FROM "tests" WHERE meter_id = \$1 ORDER BY "tests"\."id" LIMIT \$2.*`).
					WithArgs("M-100", 1).
					WillReturnRows(sqlmock.NewRows([]string{"id", "meter_id"}).
						AddRow(1, "M-100"))
			})

			It("should return the correct record", func() {
				var result Test
				err := testDB.GetOneBy(ctx, "meter_id", "M-100", &result)
				Expect(err).NotTo(HaveOccurred())
				Expect(result.ID).To(Equal(uint(1)))
				Expect(result.MeterID).To(Equal("M-100"))
				Expect(mock.ExpectationsWereMet()).To(Succeed())
			})
		})

		When("no record is found", func() {
			BeforeEach(func() {
				mock.ExpectQuery(`SELECT \* FROM "tests" WHERE meter_id = \$1 ORDER BY "tests"\."id" LIMIT \$2.*`).
					WithArgs("M-404", 1).
					WillReturnError(gorm.ErrRecordNotFound)
			})

			It("should return ErrNotFound", func() {
				var result Test
				err := testDB.GetOneBy(ctx, "meter_id", "M-404", &result)
				Expect(err).To(Equal(db.ErrNotFound))
				Expect(mock.ExpectationsWereMet()).To(Succeed())
			})
		})
	})

	Describe("GetAllBy", func() {
		When("multiple records are found", func() {
			BeforeEach(func() {
				mock.ExpectQuery(`SELECT \* FROM "tests" WHERE meter_id IN \(\$1,\$2\).*`).
					WithArgs("M-100", "M-200").
					WillReturnRows(sqlmock.NewRows([]string{"id", "meter_id"}).
						AddRow(1, "M-100").
						AddRow(2, "M-200"))
			})

			It("should return all matching records", func() {
				var results []Test
				err := testDB.GetAllBy(ctx, "meter_id", []string{"M-100", "M-200"}, &results)
				Expect(err).NotTo(HaveOccurred())
				Expect(results).To(HaveLen(2))
				Expect(results[0].MeterID).To(Equal("M-100"))
				Expect(results[1].MeterID).To(Equal("M-200"))
				Expect(mock.ExpectationsWereMet()).To(Succeed())
			})
		})

		When("an error occurs during query", func() {
			BeforeEach(func() {
				mock.ExpectQuery(`SELECT \* FROM "tests" WHERE meter_id.*`).
					WithArgs("M-000").
					WillReturnError(sql.ErrConnDone)
			})

			It("should return an error", func() {
				var results []Test
				err := testDB.GetAllBy(ctx, "meter_id", "M-000", &results)
				Expect(err).To(MatchError(ContainSubstring("getting records by")))
				Expect(mock.ExpectationsWereMet()).To(Succeed())
			})
		})
	})

	Describe("LockOneBy", func() {
		It("should select the row FOR UPDATE", func() {
			mock.ExpectQuery(`SELECT \* FROM "tests" WHERE id = \$1 LIMIT \$2 FOR UPDATE$`).
				WithArgs(7, 1).
				WillReturnRows(sqlmock.NewRows([]string{"id", "meter_id"}).AddRow(7, "M-300"))

			var result Test
			err := testDB.LockOneBy(ctx, "id", 7, &result)
			Expect(err).NotTo(HaveOccurred())
			Expect(result.MeterID).To(Equal("M-300"))
			Expect(mock.ExpectationsWereMet()).To(Succeed())
		})

		It("should map a missing row to ErrNotFound", func() {
			mock.ExpectQuery(`SELECT \* FROM "tests" WHERE id = \$1 LIMIT \$2 FOR UPDATE$`).
				WithArgs(8, 1).
				WillReturnRows(sqlmock.NewRows([]string{"id", "meter_id"}))

			var result Test
			Expect(testDB.LockOneBy(ctx, "id", 8, &result)).To(Equal(db.ErrNotFound))
		})
	})

	Describe("TakeJoined", func() {
		It("should join, filter and lock only the named table", func() {
			mock.ExpectQuery(`SELECT t\.id, w\.wallet AS wallet FROM tests t JOIN wallets w ON w\.test_id = t\.id WHERE t\.id = \$1 LIMIT \$2 FOR UPDATE OF "t"`).
				WithArgs(3, 1).
				WillReturnRows(sqlmock.NewRows([]string{"id", "wallet"}).AddRow(3, "0xabc"))

			var row joinedRow
			err := testDB.TakeJoined(ctx, db.JoinQuery{
				Table:     "tests t",
				Select:    "t.id, w.wallet AS wallet",
				Joins:     []string{"JOIN wallets w ON w.test_id = t.id"},
				Where:     "t.id = ?",
				Args:      []any{3},
				LockTable: "t",
			}, &row)
			Expect(err).NotTo(HaveOccurred())
			Expect(row.Wallet).To(Equal("0xabc"))
			Expect(mock.ExpectationsWereMet()).To(Succeed())
		})
	})

	Describe("UpdateWhere", func() {
		It("should report affected rows", func() {
			mock.ExpectBegin()
			mock.ExpectExec(`UPDATE "tests" SET "meter_id"=\$1 WHERE id = \$2 AND meter_id = \$3`).
				WithArgs("M-201", 2, "M-200").
				WillReturnResult(sqlmock.NewResult(0, 1))
			mock.ExpectCommit()

			n, err := testDB.UpdateWhere(ctx, &Test{}, map[string]any{"meter_id": "M-201"}, "id = ? AND meter_id = ?", 2, "M-200")
			Expect(err).NotTo(HaveOccurred())
			Expect(n).To(Equal(int64(1)))
			Expect(mock.ExpectationsWereMet()).To(Succeed())
		})
	})

	Describe("Count and Sum", func() {
		It("should count rows", func() {
			mock.ExpectQuery(`SELECT count\(\*\) FROM "tests"`).
				WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))

			n, err := testDB.Count(ctx, &Test{})
			Expect(err).NotTo(HaveOccurred())
			Expect(n).To(Equal(int64(3)))
		})

		It("should sum a column as a decimal", func() {
			mock.ExpectQuery(`SELECT COALESCE\(SUM\(id\), 0\) FROM "tests"`).
				WillReturnRows(sqlmock.NewRows([]string{"coalesce"}).AddRow("12.5"))

			total, err := testDB.Sum(ctx, &Test{}, "id")
			Expect(err).NotTo(HaveOccurred())
			Expect(total.Equal(decimal.RequireFromString("12.5"))).To(BeTrue())
		})
	})

	Describe("Transaction", func() {
		It("should commit when fn succeeds", func() {
			mock.ExpectBegin()
			mock.ExpectQuery(`^INSERT INTO "tests"`).
				WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(4))
			mock.ExpectCommit()

			err := testDB.Transaction(ctx, func(tx db.Querier) error {
				return tx.Insert(ctx, &Test{ID: 4, MeterID: "M-400"})
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(mock.ExpectationsWereMet()).To(Succeed())
		})

		It("should roll back when fn fails", func() {
			fnErr := errors.New("boom")
			mock.ExpectBegin()
			mock.ExpectRollback()

			err := testDB.Transaction(ctx, func(tx db.Querier) error {
				return fnErr
			})
			Expect(err).To(MatchError(fnErr))
			Expect(mock.ExpectationsWereMet()).To(Succeed())
		})
	})
})
