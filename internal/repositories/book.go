package repositories

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-library/internal/models"
)

// BookReadRepository handles book read operations.
type BookReadRepository struct {
	db *sqlx.DB
}

func NewBookReadRepository(db *sqlx.DB) *BookReadRepository {
	return &BookReadRepository{db: db}
}

// ListMostLoaned returns at most limit books ordered by loan count, highest first.
// Books with equal counts are ordered by isbn. A non-positive limit yields no books.
func (r *BookReadRepository) ListMostLoaned(ctx context.Context, limit int) ([]models.BookLoanCount, error) {
	if limit <= 0 {
		return []models.BookLoanCount{}, nil
	}
	const query = `
		SELECT b.isbn, b.title, b.author, COUNT(l.id_loan) AS loan_count
		FROM loans l
		JOIN books b ON l.isbn = b.isbn
		GROUP BY b.isbn, b.title, b.author
		ORDER BY loan_count DESC, b.isbn
		LIMIT $1
	`

	books := make([]models.BookLoanCount, 0, limit)
	err := r.db.SelectContext(ctx, &books, query, limit)
	logQuery(query, []any{limit}, books, err)

	if err != nil {
		return nil, err
	}
	return books, nil
}
