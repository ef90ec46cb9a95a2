package models

// Loan lifecycle operations published as events.
const (
	LoanCreated = "created"
	LoanUpdated = "updated"
	LoanDeleted = "deleted"
)

// LoanEvent describes a committed change to a loan.
type LoanEvent struct {
	EventID   string       `json:"event_id"`       // Unique event identifier
	Timestamp int64        `json:"timestamp"`      // Unix seconds when the change was committed
	Operation string       `json:"operation"`      // created, updated or deleted
	LoanID    string       `json:"loan_id"`        // Identifier as addressed by the caller
	Loan      *LoanRequest `json:"loan,omitempty"` // New field values; nil for deletes
}
