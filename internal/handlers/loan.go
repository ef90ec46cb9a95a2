package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/sbilibin2017/gw-library/internal/logger"
	"github.com/sbilibin2017/gw-library/internal/models"
)

//go:generate mockgen -source=loan.go -destination=loan_mock.go -package=handlers

// LoanLister defines the interface that the service must implement.
type LoanLister interface {
	ListLoans(ctx context.Context) ([]models.Loan, error)
}

// LoanGetter defines the interface that the service must implement.
type LoanGetter interface {
	GetLoan(ctx context.Context, id string) (*models.Loan, error)
}

// LoanCreator defines the interface that the service must implement.
type LoanCreator interface {
	CreateLoan(ctx context.Context, req models.LoanRequest) (*models.LoanRecord, error)
}

// LoanUpdater defines the interface that the service must implement.
type LoanUpdater interface {
	UpdateLoan(ctx context.Context, id string, req models.LoanRequest) (*models.LoanRecord, error)
}

// LoanDeleter defines the interface that the service must implement.
type LoanDeleter interface {
	DeleteLoan(ctx context.Context, id string) (bool, error)
}

// UserLoanLister defines the interface that the service must implement.
type UserLoanLister interface {
	ListLoansByUser(ctx context.Context, userID string) ([]models.Loan, error)
}

// ActiveLoanLister defines the interface that the service must implement.
type ActiveLoanLister interface {
	ListActiveLoans(ctx context.Context) ([]models.Loan, error)
}

// LoanHistoryLister defines the interface that the service must implement.
type LoanHistoryLister interface {
	ListLoanHistory(ctx context.Context, isbn string) ([]models.Loan, error)
}

// NewListLoansHandler returns an HTTP handler listing every loan.
// @Summary List loans
// @Description Returns all loans
// @Tags loans
// @Produce json
// @Success 200 {array} models.Loan
// @Failure 500 {object} models.ErrorResponse "Error getting all loans"
// @Router /loans [get]
func NewListLoansHandler(svc LoanLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		loans, err := svc.ListLoans(r.Context())
		if err != nil {
			logger.Log.Errorw("failed to list loans", "error", err)
			writeError(w, "Error getting all loans", err)
			return
		}
		writeJSON(w, http.StatusOK, loans)
	}
}

// NewGetLoanHandler returns an HTTP handler fetching one loan by id.
// @Summary Get loan
// @Tags loans
// @Produce json
// @Param id path string true "Loan ID"
// @Success 200 {object} models.Loan
// @Failure 404 {object} models.ErrorResponse "Loan not found"
// @Failure 500 {object} models.ErrorResponse "Error getting the loan"
// @Router /loans/{id} [get]
func NewGetLoanHandler(svc LoanGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")

		loan, err := svc.GetLoan(r.Context(), id)
		if err != nil {
			logger.Log.Errorw("failed to get loan", "id", id, "error", err)
			writeError(w, "Error getting the loan", err)
			return
		}
		if loan == nil {
			writeLoanNotFound(w, id)
			return
		}
		writeJSON(w, http.StatusOK, loan)
	}
}

// NewCreateLoanHandler returns an HTTP handler creating a loan.
// @Summary Create loan
// @Description Stores a new loan and returns it with the generated id
// @Tags loans
// @Accept json
// @Produce json
// @Param request body models.LoanRequest true "Loan"
// @Success 201 {object} models.LoanRecord
// @Failure 500 {object} models.ErrorResponse "Error creating the loan"
// @Router /loans [post]
func NewCreateLoanHandler(svc LoanCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.LoanRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.Log.Errorw("failed to decode loan request", "error", err)
			writeError(w, "Error creating the loan", err)
			return
		}

		rec, err := svc.CreateLoan(r.Context(), req)
		if err != nil {
			writeError(w, "Error creating the loan", err)
			return
		}
		writeJSON(w, http.StatusCreated, rec)
	}
}

// NewUpdateLoanHandler returns an HTTP handler overwriting a loan.
// @Summary Update loan
// @Description Replaces every field of a loan
// @Tags loans
// @Accept json
// @Produce json
// @Param id path string true "Loan ID"
// @Param request body models.LoanRequest true "Loan"
// @Success 200 {object} models.LoanRecord
// @Failure 404 {object} models.ErrorResponse "Loan not found"
// @Failure 500 {object} models.ErrorResponse "Error updating the loan"
// @Router /loans/{id} [put]
func NewUpdateLoanHandler(svc LoanUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")

		var req models.LoanRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.Log.Errorw("failed to decode loan request", "id", id, "error", err)
			writeError(w, "Error updating the loan", err)
			return
		}

		rec, err := svc.UpdateLoan(r.Context(), id, req)
		if err != nil {
			writeError(w, "Error updating the loan", err)
			return
		}
		if rec == nil {
			writeLoanNotFound(w, id)
			return
		}
		writeJSON(w, http.StatusOK, rec)
	}
}

// NewDeleteLoanHandler returns an HTTP handler deleting a loan.
// @Summary Delete loan
// @Tags loans
// @Param id path string true "Loan ID"
// @Success 204 "Loan deleted"
// @Failure 404 {object} models.ErrorResponse "Loan not found"
// @Failure 500 {object} models.ErrorResponse "Error deleting the loan"
// @Router /loans/{id} [delete]
func NewDeleteLoanHandler(svc LoanDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")

		ok, err := svc.DeleteLoan(r.Context(), id)
		if err != nil {
			writeError(w, "Error deleting the loan", err)
			return
		}
		if !ok {
			writeLoanNotFound(w, id)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// NewListUserLoansHandler returns an HTTP handler listing the loans of a user.
// @Summary List loans of a user
// @Tags loans
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {array} models.Loan
// @Failure 500 {object} models.ErrorResponse "Error getting the user's loans"
// @Router /loans/user/{id} [get]
func NewListUserLoansHandler(svc UserLoanLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := chi.URLParam(r, "id")

		loans, err := svc.ListLoansByUser(r.Context(), userID)
		if err != nil {
			logger.Log.Errorw("failed to list user loans", "user_id", userID, "error", err)
			writeError(w, "Error getting the user's loans", err)
			return
		}
		writeJSON(w, http.StatusOK, loans)
	}
}

// NewListActiveLoansHandler returns an HTTP handler listing checked out loans.
// @Summary List active loans
// @Tags loans
// @Produce json
// @Success 200 {array} models.Loan
// @Failure 500 {object} models.ErrorResponse "Error getting active loans"
// @Router /loans/active [get]
func NewListActiveLoansHandler(svc ActiveLoanLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		loans, err := svc.ListActiveLoans(r.Context())
		if err != nil {
			logger.Log.Errorw("failed to list active loans", "error", err)
			writeError(w, "Error getting active loans", err)
			return
		}
		writeJSON(w, http.StatusOK, loans)
	}
}

// NewLoanHistoryHandler returns an HTTP handler listing every loan of a book.
// @Summary Loan history of a book
// @Tags loans
// @Produce json
// @Param isbn path string true "Book ISBN"
// @Success 200 {array} models.Loan
// @Failure 500 {object} models.ErrorResponse "Error getting the book's loan history"
// @Router /loans/history/{isbn} [get]
func NewLoanHistoryHandler(svc LoanHistoryLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		isbn := chi.URLParam(r, "isbn")

		loans, err := svc.ListLoanHistory(r.Context(), isbn)
		if err != nil {
			logger.Log.Errorw("failed to list loan history", "isbn", isbn, "error", err)
			writeError(w, "Error getting the book's loan history", err)
			return
		}
		writeJSON(w, http.StatusOK, loans)
	}
}
