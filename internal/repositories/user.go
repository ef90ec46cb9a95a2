package repositories

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-library/internal/models"
)

// UserReadRepository handles user read operations.
type UserReadRepository struct {
	db *sqlx.DB
}

func NewUserReadRepository(db *sqlx.DB) *UserReadRepository {
	return &UserReadRepository{db: db}
}

// ListWithLoanStatus returns every user holding at least one loan in the given status.
// A user appears once no matter how many such loans they hold.
func (r *UserReadRepository) ListWithLoanStatus(ctx context.Context, status string) ([]models.User, error) {
	const query = `
		SELECT DISTINCT u.id_user, u.name, u.identification, u.email, u.phone
		FROM users u
		JOIN loans l ON u.id_user = l.id_user
		WHERE l.status = $1
		ORDER BY u.id_user
	`

	users := make([]models.User, 0)
	err := r.db.SelectContext(ctx, &users, query, status)
	logQuery(query, []any{status}, len(users), err)

	if err != nil {
		return nil, err
	}
	return users, nil
}
