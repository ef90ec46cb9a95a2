package models

// Known loan statuses. The store does not constrain status to these values.
const (
	StatusCheckedOut = "checked out"
	StatusReturned   = "returned"
	StatusOverdue    = "overdue"
)

// Loan represents a row of the loans table.
// swagger:model Loan
type Loan struct {
	ID         int64   `json:"id_loan" db:"id_loan"`         // Surrogate key
	UserID     int64   `json:"id_user" db:"id_user"`         // Borrowing user
	ISBN       string  `json:"isbn" db:"isbn"`               // Borrowed book
	LoanDate   string  `json:"loan_date" db:"loan_date"`     // YYYY-MM-DD
	ReturnDate *string `json:"return_date" db:"return_date"` // YYYY-MM-DD, nil while not returned
	Status     string  `json:"status" db:"status"`           // checked out, returned, overdue or any other text
}

// LoanRequest is the JSON body for creating or updating a loan.
// All five fields are written; nothing is validated before the store sees it.
// swagger:model LoanRequest
type LoanRequest struct {
	// example: 1
	UserID int64 `json:"id_user" db:"id_user"`

	// example: 9780140449136
	ISBN string `json:"isbn" db:"isbn"`

	// example: 2024-01-01
	LoanDate string `json:"loan_date" db:"loan_date"`

	// example: null
	ReturnDate *string `json:"return_date" db:"return_date"`

	// example: checked out
	Status string `json:"status" db:"status"`
}

// LoanRecord is a LoanRequest merged with the loan's identifier.
// It is what create and update return; it is not re-read from the store.
// swagger:model LoanRecord
type LoanRecord struct {
	ID int64 `json:"id"`
	LoanRequest
}
