package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strconv"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-library/internal/models"
)

// loanColumns selects a loan row with dates rendered as YYYY-MM-DD.
const loanColumns = `id_loan, id_user, isbn,
		to_char(loan_date, 'YYYY-MM-DD') AS loan_date,
		to_char(return_date, 'YYYY-MM-DD') AS return_date,
		status`

// outOfRange reports whether id is an integer that no bigint key can equal.
// Such ids are not found; other malformed ids are left for the store to reject.
func outOfRange(id string) bool {
	_, err := strconv.ParseInt(strings.TrimSpace(id), 10, 64)
	return errors.Is(err, strconv.ErrRange)
}

// LoanReadRepository handles loan read operations.
type LoanReadRepository struct {
	db *sqlx.DB
}

func NewLoanReadRepository(db *sqlx.DB) *LoanReadRepository {
	return &LoanReadRepository{db: db}
}

// List returns every loan.
func (r *LoanReadRepository) List(ctx context.Context) ([]models.Loan, error) {
	const query = `SELECT ` + loanColumns + ` FROM loans ORDER BY id_loan`
	return r.selectLoans(ctx, query)
}

// GetByID returns the loan with the given id, or nil when there is none.
func (r *LoanReadRepository) GetByID(ctx context.Context, id string) (*models.Loan, error) {
	if outOfRange(id) {
		return nil, nil
	}
	const query = `SELECT ` + loanColumns + ` FROM loans WHERE id_loan = $1`

	var loan models.Loan
	err := r.db.GetContext(ctx, &loan, query, id)
	logQuery(query, []any{id}, loan, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &loan, nil
}

// ListByUserID returns the loans of one user. Unknown users yield an empty slice.
func (r *LoanReadRepository) ListByUserID(ctx context.Context, userID string) ([]models.Loan, error) {
	if outOfRange(userID) {
		return []models.Loan{}, nil
	}
	const query = `SELECT ` + loanColumns + ` FROM loans WHERE id_user = $1 ORDER BY id_loan`
	return r.selectLoans(ctx, query, userID)
}

// ListByStatus returns the loans whose status equals status exactly.
func (r *LoanReadRepository) ListByStatus(ctx context.Context, status string) ([]models.Loan, error) {
	const query = `SELECT ` + loanColumns + ` FROM loans WHERE status = $1 ORDER BY id_loan`
	return r.selectLoans(ctx, query, status)
}

// ListByISBN returns the loan history of one book.
func (r *LoanReadRepository) ListByISBN(ctx context.Context, isbn string) ([]models.Loan, error) {
	const query = `SELECT ` + loanColumns + ` FROM loans WHERE isbn = $1 ORDER BY id_loan`
	return r.selectLoans(ctx, query, isbn)
}

func (r *LoanReadRepository) selectLoans(ctx context.Context, query string, args ...any) ([]models.Loan, error) {
	loans := make([]models.Loan, 0)
	err := r.db.SelectContext(ctx, &loans, query, args...)
	logQuery(query, args, len(loans), err)

	if err != nil {
		return nil, err
	}
	return loans, nil
}

// LoanWriteRepository handles loan write operations.
type LoanWriteRepository struct {
	db *sqlx.DB
}

func NewLoanWriteRepository(db *sqlx.DB) *LoanWriteRepository {
	return &LoanWriteRepository{db: db}
}

// Create inserts a loan and returns the generated id merged with req.
// Values defaulted by the store are not read back.
func (r *LoanWriteRepository) Create(ctx context.Context, req models.LoanRequest) (*models.LoanRecord, error) {
	const query = `
		INSERT INTO loans (id_user, isbn, loan_date, return_date, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id_loan
	`
	args := []any{req.UserID, req.ISBN, req.LoanDate, req.ReturnDate, req.Status}

	var id int64
	err := r.db.GetContext(ctx, &id, query, args...)
	logQuery(query, args, id, err)

	if err != nil {
		return nil, err
	}
	return &models.LoanRecord{ID: id, LoanRequest: req}, nil
}

// UpdateByID overwrites all five fields of a loan.
// It returns nil when no row has the given id.
func (r *LoanWriteRepository) UpdateByID(ctx context.Context, id string, req models.LoanRequest) (*models.LoanRecord, error) {
	if outOfRange(id) {
		return nil, nil
	}
	const query = `
		UPDATE loans
		SET id_user = $1, isbn = $2, loan_date = $3, return_date = $4, status = $5
		WHERE id_loan = $6
		RETURNING id_loan
	`
	args := []any{req.UserID, req.ISBN, req.LoanDate, req.ReturnDate, req.Status, id}

	var loanID int64
	err := r.db.GetContext(ctx, &loanID, query, args...)
	logQuery(query, args, loanID, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &models.LoanRecord{ID: loanID, LoanRequest: req}, nil
}

// DeleteByID removes a loan permanently and reports whether a row was removed.
func (r *LoanWriteRepository) DeleteByID(ctx context.Context, id string) (bool, error) {
	if outOfRange(id) {
		return false, nil
	}
	const query = `DELETE FROM loans WHERE id_loan = $1`

	res, err := r.db.ExecContext(ctx, query, id)
	var rowsAffected int64
	if res != nil && err == nil {
		rowsAffected, err = res.RowsAffected()
	}
	logQuery(query, []any{id}, rowsAffected, err)

	if err != nil {
		return false, err
	}
	return rowsAffected > 0, nil
}
