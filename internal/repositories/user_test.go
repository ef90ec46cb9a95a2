package repositories

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/sbilibin2017/gw-library/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestUserReadRepository_ListWithLoanStatus(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserReadRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT DISTINCT u.id_user")).
		WithArgs(models.StatusOverdue).
		WillReturnRows(sqlmock.NewRows([]string{"id_user", "name", "identification", "email", "phone"}).
			AddRow(int64(1), "Ana", "1001", "ana@example.com", "555-0001"))

	users, err := repo.ListWithLoanStatus(context.Background(), models.StatusOverdue)
	assert.NoError(t, err)
	assert.Equal(t, []models.User{
		{ID: 1, Name: "Ana", Identification: "1001", Email: "ana@example.com", Phone: "555-0001"},
	}, users)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserReadRepository_ListWithLoanStatus_Error(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserReadRepository(db)

	dbErr := errors.New("timeout")
	mock.ExpectQuery(regexp.QuoteMeta("FROM users u JOIN loans l")).WillReturnError(dbErr)

	users, err := repo.ListWithLoanStatus(context.Background(), models.StatusOverdue)
	assert.ErrorIs(t, err, dbErr)
	assert.Nil(t, users)
}
