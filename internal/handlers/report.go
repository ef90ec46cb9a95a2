package handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/gw-library/internal/logger"
	"github.com/sbilibin2017/gw-library/internal/models"
)

//go:generate mockgen -source=report.go -destination=report_mock.go -package=handlers

// MostLoanedReader defines the interface that the service must implement.
type MostLoanedReader interface {
	MostLoanedBooks(ctx context.Context) ([]models.BookLoanCount, error)
}

// OverdueUsersReader defines the interface that the service must implement.
type OverdueUsersReader interface {
	UsersWithOverdueLoans(ctx context.Context) ([]models.User, error)
}

// NewMostLoanedBooksHandler returns an HTTP handler for the top 5 most loaned books.
// @Summary Most loaned books
// @Description Returns the five books with the most loans, highest count first
// @Tags books
// @Produce json
// @Success 200 {array} models.BookLoanCount
// @Failure 500 {object} models.ErrorResponse "Error getting the top 5 most loaned books"
// @Router /books/most-loaned [get]
func NewMostLoanedBooksHandler(svc MostLoanedReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		books, err := svc.MostLoanedBooks(r.Context())
		if err != nil {
			logger.Log.Errorw("failed to get most loaned books", "error", err)
			writeError(w, "Error getting the top 5 most loaned books", err)
			return
		}
		writeJSON(w, http.StatusOK, books)
	}
}

// NewUsersWithOverdueHandler returns an HTTP handler listing users with overdue loans.
// @Summary Users with overdue loans
// @Tags users
// @Produce json
// @Success 200 {array} models.User
// @Failure 500 {object} models.ErrorResponse "Error getting users with overdue loans"
// @Router /users/with-overdue [get]
func NewUsersWithOverdueHandler(svc OverdueUsersReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		users, err := svc.UsersWithOverdueLoans(r.Context())
		if err != nil {
			logger.Log.Errorw("failed to get users with overdue loans", "error", err)
			writeError(w, "Error getting users with overdue loans", err)
			return
		}
		writeJSON(w, http.StatusOK, users)
	}
}
