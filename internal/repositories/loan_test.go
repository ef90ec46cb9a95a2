package repositories

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-library/internal/models"
	"github.com/stretchr/testify/assert"
)

var loanRowColumns = []string{"id_loan", "id_user", "isbn", "loan_date", "return_date", "status"}

func newMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return sqlx.NewDb(db, "pgx"), mock
}

func strPtr(s string) *string { return &s }

func TestLoanReadRepository_List(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewLoanReadRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("FROM loans ORDER BY id_loan")).
		WillReturnRows(sqlmock.NewRows(loanRowColumns).
			AddRow(int64(1), int64(3), "111", "2024-01-01", nil, "checked out").
			AddRow(int64(2), int64(4), "222", "2024-02-01", "2024-02-10", "returned"))

	loans, err := repo.List(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, []models.Loan{
		{ID: 1, UserID: 3, ISBN: "111", LoanDate: "2024-01-01", Status: "checked out"},
		{ID: 2, UserID: 4, ISBN: "222", LoanDate: "2024-02-01", ReturnDate: strPtr("2024-02-10"), Status: "returned"},
	}, loans)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLoanReadRepository_List_Empty(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewLoanReadRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("FROM loans ORDER BY id_loan")).
		WillReturnRows(sqlmock.NewRows(loanRowColumns))

	loans, err := repo.List(context.Background())
	assert.NoError(t, err)
	assert.NotNil(t, loans, "an empty result must encode as [] not null")
	assert.Empty(t, loans)
}

func TestLoanReadRepository_List_Error(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewLoanReadRepository(db)

	dbErr := errors.New("connection refused")
	mock.ExpectQuery(regexp.QuoteMeta("FROM loans")).WillReturnError(dbErr)

	loans, err := repo.List(context.Background())
	assert.ErrorIs(t, err, dbErr)
	assert.Nil(t, loans)
}

func TestLoanReadRepository_GetByID(t *testing.T) {
	tests := []struct {
		name    string
		rows    *sqlmock.Rows
		err     error
		want    *models.Loan
		wantErr bool
	}{
		{
			name: "found",
			rows: sqlmock.NewRows(loanRowColumns).AddRow(int64(7), int64(1), "123", "2024-01-01", nil, "checked out"),
			want: &models.Loan{ID: 7, UserID: 1, ISBN: "123", LoanDate: "2024-01-01", Status: "checked out"},
		},
		{
			name: "not found is not an error",
			rows: sqlmock.NewRows(loanRowColumns),
			want: nil,
		},
		{
			name:    "store error",
			err:     errors.New("syntax error"),
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := newMockDB(t)
			repo := NewLoanReadRepository(db)

			exp := mock.ExpectQuery(regexp.QuoteMeta("FROM loans WHERE id_loan = $1")).WithArgs("7")
			if tt.err != nil {
				exp.WillReturnError(tt.err)
			} else {
				exp.WillReturnRows(tt.rows)
			}

			loan, err := repo.GetByID(context.Background(), "7")
			if tt.wantErr {
				assert.ErrorIs(t, err, tt.err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.want, loan)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestLoanReadRepository_Filters(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name  string
		query string
		arg   string
		call  func(r *LoanReadRepository) ([]models.Loan, error)
	}{
		{
			name:  "by user",
			query: "FROM loans WHERE id_user = $1",
			arg:   "3",
			call:  func(r *LoanReadRepository) ([]models.Loan, error) { return r.ListByUserID(ctx, "3") },
		},
		{
			name:  "by status",
			query: "FROM loans WHERE status = $1",
			arg:   models.StatusCheckedOut,
			call: func(r *LoanReadRepository) ([]models.Loan, error) {
				return r.ListByStatus(ctx, models.StatusCheckedOut)
			},
		},
		{
			name:  "by isbn",
			query: "FROM loans WHERE isbn = $1",
			arg:   "111",
			call:  func(r *LoanReadRepository) ([]models.Loan, error) { return r.ListByISBN(ctx, "111") },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := newMockDB(t)
			repo := NewLoanReadRepository(db)

			mock.ExpectQuery(regexp.QuoteMeta(tt.query)).
				WithArgs(tt.arg).
				WillReturnRows(sqlmock.NewRows(loanRowColumns).
					AddRow(int64(1), int64(3), "111", "2024-01-01", nil, "checked out"))

			loans, err := tt.call(repo)
			assert.NoError(t, err)
			assert.Len(t, loans, 1)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestLoanWriteRepository_Create(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewLoanWriteRepository(db)

	req := models.LoanRequest{UserID: 1, ISBN: "123", LoanDate: "2024-01-01", Status: "checked out"}

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO loans (id_user, isbn, loan_date, return_date, status)")).
		WithArgs(int64(1), "123", "2024-01-01", nil, "checked out").
		WillReturnRows(sqlmock.NewRows([]string{"id_loan"}).AddRow(int64(42)))

	rec, err := repo.Create(context.Background(), req)
	assert.NoError(t, err)
	assert.Equal(t, &models.LoanRecord{ID: 42, LoanRequest: req}, rec)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLoanWriteRepository_Create_ConstraintViolation(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewLoanWriteRepository(db)

	fkErr := errors.New(`insert or update on table "loans" violates foreign key constraint`)
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO loans")).WillReturnError(fkErr)

	rec, err := repo.Create(context.Background(), models.LoanRequest{UserID: 999})
	assert.ErrorIs(t, err, fkErr)
	assert.Nil(t, rec)
}

func TestLoanWriteRepository_UpdateByID(t *testing.T) {
	req := models.LoanRequest{UserID: 2, ISBN: "456", LoanDate: "2024-03-01", ReturnDate: strPtr("2024-03-15"), Status: "returned"}

	t.Run("updated", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewLoanWriteRepository(db)

		mock.ExpectQuery(regexp.QuoteMeta("UPDATE loans")).
			WithArgs(int64(2), "456", "2024-03-01", "2024-03-15", "returned", "9").
			WillReturnRows(sqlmock.NewRows([]string{"id_loan"}).AddRow(int64(9)))

		rec, err := repo.UpdateByID(context.Background(), "9", req)
		assert.NoError(t, err)
		assert.Equal(t, &models.LoanRecord{ID: 9, LoanRequest: req}, rec)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("no such loan", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewLoanWriteRepository(db)

		mock.ExpectQuery(regexp.QuoteMeta("UPDATE loans")).
			WillReturnRows(sqlmock.NewRows([]string{"id_loan"}))

		rec, err := repo.UpdateByID(context.Background(), "404", req)
		assert.NoError(t, err)
		assert.Nil(t, rec)
	})
}

func TestLoanWriteRepository_DeleteByID(t *testing.T) {
	tests := []struct {
		name     string
		affected int64
		err      error
		want     bool
	}{
		{name: "deleted", affected: 1, want: true},
		{name: "already gone", affected: 0, want: false},
		{name: "store error", err: errors.New("connection reset"), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := newMockDB(t)
			repo := NewLoanWriteRepository(db)

			exp := mock.ExpectExec(regexp.QuoteMeta("DELETE FROM loans WHERE id_loan = $1")).WithArgs("5")
			if tt.err != nil {
				exp.WillReturnError(tt.err)
			} else {
				exp.WillReturnResult(sqlmock.NewResult(0, tt.affected))
			}

			ok, err := repo.DeleteByID(context.Background(), "5")
			if tt.err != nil {
				assert.ErrorIs(t, err, tt.err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.want, ok)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestLoanRepositories_OutOfRangeID(t *testing.T) {
	ctx := context.Background()
	const id = "99999999999999999999"

	db, mock := newMockDB(t)
	reader := NewLoanReadRepository(db)
	writer := NewLoanWriteRepository(db)

	loan, err := reader.GetByID(ctx, id)
	assert.NoError(t, err)
	assert.Nil(t, loan)

	loans, err := reader.ListByUserID(ctx, "-"+id)
	assert.NoError(t, err)
	assert.NotNil(t, loans)
	assert.Empty(t, loans)

	rec, err := writer.UpdateByID(ctx, id, models.LoanRequest{UserID: 1, ISBN: "123", LoanDate: "2024-01-01", Status: "returned"})
	assert.NoError(t, err)
	assert.Nil(t, rec)

	deleted, err := writer.DeleteByID(ctx, id)
	assert.NoError(t, err)
	assert.False(t, deleted)

	assert.NoError(t, mock.ExpectationsWereMet(), "out of range ids never reach the store")
}

func TestOutOfRange(t *testing.T) {
	tests := []struct {
		id   string
		want bool
	}{
		{"7", false},
		{"9223372036854775807", false},
		{"9223372036854775808", true},
		{"-9223372036854775809", true},
		{"abc", false},
		{"", false},
	}
	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			assert.Equal(t, tt.want, outOfRange(tt.id))
		})
	}
}
