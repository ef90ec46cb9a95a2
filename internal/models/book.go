package models

// Book represents a row of the books table.
type Book struct {
	ISBN        string `json:"isbn" db:"isbn"`
	Title       string `json:"title" db:"title"`
	Author      string `json:"author" db:"author"`
	ReleaseYear int    `json:"release_year" db:"release_year"`
}

// BookLoanCount is a book together with how many loans reference it.
// swagger:model BookLoanCount
type BookLoanCount struct {
	ISBN      string `json:"isbn" db:"isbn"`
	Title     string `json:"title" db:"title"`
	Author    string `json:"author" db:"author"`
	LoanCount int64  `json:"loan_count" db:"loan_count"`
}
