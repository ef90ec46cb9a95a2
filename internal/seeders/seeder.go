// Package seeders fills the library tables from CSV exports.
package seeders

import (
	"context"
	"fmt"
	"io/fs"
	"strconv"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-library/internal/logger"
	"github.com/sbilibin2017/gw-library/internal/models"
)

// CSV file names inside the data directory.
const (
	UsersFile = "users.csv"
	BooksFile = "books.csv"
	LoansFile = "library-loans.csv"
)

// batchSize keeps a multi-row insert under the Postgres bind parameter limit.
const batchSize = 1000

const (
	insertUsersQuery = `INSERT INTO users (name, identification, email, phone)
		VALUES (:name, :identification, :email, :phone)`
	insertBooksQuery = `INSERT INTO books (isbn, title, author, release_year)
		VALUES (:isbn, :title, :author, :release_year)`
	insertLoansQuery = `INSERT INTO loans (id_user, isbn, loan_date, return_date, status)
		VALUES (:id_user, :isbn, :loan_date, :return_date, :status)`
	userIdentificationsQuery = `SELECT id_user, identification FROM users`
)

// Seeder bulk-loads users, books and loans, each table in its own transaction.
type Seeder struct {
	db   *sqlx.DB
	fsys fs.FS
}

// New creates a Seeder reading CSV files from fsys.
func New(db *sqlx.DB, fsys fs.FS) *Seeder {
	return &Seeder{db: db, fsys: fsys}
}

// Run loads users, books and loans in that order.
func (s *Seeder) Run(ctx context.Context) error {
	steps := []struct {
		table string
		load  func(context.Context) (int, error)
	}{
		{"users", s.LoadUsers},
		{"books", s.LoadBooks},
		{"loans", s.LoadLoans},
	}

	for _, step := range steps {
		logger.Log.Infof("Filling the '%s' table...", step.table)
		n, err := step.load(ctx)
		if err != nil {
			return fmt.Errorf("load %s: %w", step.table, err)
		}
		logger.Log.Infow("rows inserted", "table", step.table, "count", n)
	}
	return nil
}

// LoadUsers inserts every row of users.csv.
func (s *Seeder) LoadUsers(ctx context.Context) (int, error) {
	var users []models.User
	for rec, err := range Rows(s.fsys, UsersFile, "name", "identification", "email", "phone") {
		if err != nil {
			return 0, err
		}
		users = append(users, models.User{
			Name:           rec["name"],
			Identification: rec["identification"],
			Email:          rec["email"],
			Phone:          rec["phone"],
		})
	}
	if len(users) == 0 {
		return 0, nil
	}

	return len(users), s.inTx(ctx, func(tx *sqlx.Tx) error {
		return insertBatches(ctx, tx, insertUsersQuery, users)
	})
}

// LoadBooks inserts every row of books.csv.
func (s *Seeder) LoadBooks(ctx context.Context) (int, error) {
	var books []models.Book
	for rec, err := range Rows(s.fsys, BooksFile, "isbn", "title", "release_year", "author") {
		if err != nil {
			return 0, err
		}
		year, err := strconv.Atoi(rec["release_year"])
		if err != nil {
			return 0, fmt.Errorf("book %s: release year %q: %w", rec["isbn"], rec["release_year"], err)
		}
		books = append(books, models.Book{
			ISBN:        rec["isbn"],
			Title:       rec["title"],
			Author:      rec["author"],
			ReleaseYear: year,
		})
	}
	if len(books) == 0 {
		return 0, nil
	}

	return len(books), s.inTx(ctx, func(tx *sqlx.Tx) error {
		return insertBatches(ctx, tx, insertBooksQuery, books)
	})
}

// LoadLoans inserts the rows of library-loans.csv whose user is known and
// whose isbn is set. Users are matched by identification.
func (s *Seeder) LoadLoans(ctx context.Context) (int, error) {
	var n int
	err := s.inTx(ctx, func(tx *sqlx.Tx) error {
		var rows []struct {
			ID             int64  `db:"id_user"`
			Identification string `db:"identification"`
		}
		if err := tx.SelectContext(ctx, &rows, userIdentificationsQuery); err != nil {
			return err
		}
		userIDs := make(map[string]int64, len(rows))
		for _, u := range rows {
			userIDs[u.Identification] = u.ID
		}

		var loans []models.LoanRequest
		skipped := 0
		for rec, err := range Rows(s.fsys, LoansFile) {
			if err != nil {
				return err
			}
			id, ok := userIDs[rec["identification"]]
			if !ok || rec["isbn"] == "" {
				skipped++
				continue
			}

			var returnDate *string
			if v := rec["return_date"]; v != "" {
				returnDate = &v
			}
			loans = append(loans, models.LoanRequest{
				UserID:     id,
				ISBN:       rec["isbn"],
				LoanDate:   rec["loan_date"],
				ReturnDate: returnDate,
				Status:     rec["status"],
			})
		}
		if skipped > 0 {
			logger.Log.Warnw("loans skipped", "count", skipped)
		}

		n = len(loans)
		if n == 0 {
			return nil
		}
		return insertBatches(ctx, tx, insertLoansQuery, loans)
	})
	if err != nil {
		return 0, err
	}
	return n, nil
}

func (s *Seeder) inTx(ctx context.Context, fn func(tx *sqlx.Tx) error) error {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			logger.Log.Errorw("failed to rollback seeding transaction", "error", rbErr)
		}
		return err
	}
	return tx.Commit()
}

func insertBatches[T any](ctx context.Context, tx *sqlx.Tx, query string, rows []T) error {
	for start := 0; start < len(rows); start += batchSize {
		end := min(start+batchSize, len(rows))
		if _, err := tx.NamedExecContext(ctx, query, rows[start:end]); err != nil {
			return err
		}
	}
	return nil
}
