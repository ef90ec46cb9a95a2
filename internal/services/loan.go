package services

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-library/internal/logger"
	"github.com/sbilibin2017/gw-library/internal/models"
	"github.com/segmentio/kafka-go"
)

//go:generate mockgen -source=loan.go -destination=loan_mock.go -package=services

// LoanReader defines read operations on loans.
type LoanReader interface {
	List(ctx context.Context) ([]models.Loan, error)
	GetByID(ctx context.Context, id string) (*models.Loan, error) // nil when absent
	ListByUserID(ctx context.Context, userID string) ([]models.Loan, error)
	ListByStatus(ctx context.Context, status string) ([]models.Loan, error)
	ListByISBN(ctx context.Context, isbn string) ([]models.Loan, error)
}

// LoanWriter defines write operations on loans.
type LoanWriter interface {
	Create(ctx context.Context, req models.LoanRequest) (*models.LoanRecord, error)
	UpdateByID(ctx context.Context, id string, req models.LoanRequest) (*models.LoanRecord, error) // nil when absent
	DeleteByID(ctx context.Context, id string) (bool, error)
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// ReportInvalidator drops cached reports that a loan change may have made stale.
type ReportInvalidator interface {
	Invalidate(ctx context.Context) error
}

// LoanService exposes the loan lifecycle.
// kafkaWriter and invalidator are optional and may be nil.
type LoanService struct {
	reader      LoanReader
	writer      LoanWriter
	kafkaWriter KafkaWriter
	invalidator ReportInvalidator
}

// NewLoanService creates a new LoanService.
func NewLoanService(
	reader LoanReader,
	writer LoanWriter,
	kafkaWriter KafkaWriter,
	invalidator ReportInvalidator,
) *LoanService {
	return &LoanService{
		reader:      reader,
		writer:      writer,
		kafkaWriter: kafkaWriter,
		invalidator: invalidator,
	}
}

// ListLoans returns every loan.
func (s *LoanService) ListLoans(ctx context.Context) ([]models.Loan, error) {
	return s.reader.List(ctx)
}

// GetLoan returns one loan or nil when it does not exist.
func (s *LoanService) GetLoan(ctx context.Context, id string) (*models.Loan, error) {
	return s.reader.GetByID(ctx, id)
}

// ListLoansByUser returns the loans of one user.
func (s *LoanService) ListLoansByUser(ctx context.Context, userID string) ([]models.Loan, error) {
	return s.reader.ListByUserID(ctx, userID)
}

// ListActiveLoans returns the loans that are currently checked out.
func (s *LoanService) ListActiveLoans(ctx context.Context) ([]models.Loan, error) {
	return s.reader.ListByStatus(ctx, models.StatusCheckedOut)
}

// ListLoanHistory returns every loan of one book.
func (s *LoanService) ListLoanHistory(ctx context.Context, isbn string) ([]models.Loan, error) {
	return s.reader.ListByISBN(ctx, isbn)
}

// CreateLoan stores a new loan.
func (s *LoanService) CreateLoan(ctx context.Context, req models.LoanRequest) (*models.LoanRecord, error) {
	rec, err := s.writer.Create(ctx, req)
	if err != nil {
		logger.Log.Errorw("failed to create loan", "loan", req, "error", err)
		return nil, err
	}

	s.afterWrite(ctx, models.LoanCreated, strconv.FormatInt(rec.ID, 10), &req)
	return rec, nil
}

// UpdateLoan overwrites a loan. It returns nil when the loan does not exist.
func (s *LoanService) UpdateLoan(ctx context.Context, id string, req models.LoanRequest) (*models.LoanRecord, error) {
	rec, err := s.writer.UpdateByID(ctx, id, req)
	if err != nil {
		logger.Log.Errorw("failed to update loan", "id", id, "loan", req, "error", err)
		return nil, err
	}
	if rec == nil {
		return nil, nil
	}

	s.afterWrite(ctx, models.LoanUpdated, strconv.FormatInt(rec.ID, 10), &req)
	return rec, nil
}

// DeleteLoan removes a loan permanently and reports whether it existed.
func (s *LoanService) DeleteLoan(ctx context.Context, id string) (bool, error) {
	ok, err := s.writer.DeleteByID(ctx, id)
	if err != nil {
		logger.Log.Errorw("failed to delete loan", "id", id, "error", err)
		return false, err
	}
	if !ok {
		return false, nil
	}

	s.afterWrite(ctx, models.LoanDeleted, id, nil)
	return true, nil
}

// afterWrite invalidates reports and publishes the change.
// The write is already committed, so failures here are only logged.
func (s *LoanService) afterWrite(ctx context.Context, operation, id string, req *models.LoanRequest) {
	if s.invalidator != nil {
		if err := s.invalidator.Invalidate(ctx); err != nil {
			logger.Log.Errorw("failed to invalidate report cache", "operation", operation, "loan_id", id, "error", err)
		}
	}

	s.publishEvent(ctx, models.LoanEvent{
		EventID:   uuid.NewString(),
		Timestamp: time.Now().Unix(),
		Operation: operation,
		LoanID:    id,
		Loan:      req,
	})
}

// publishEvent publishes a loan event to Kafka keyed by loan id.
func (s *LoanService) publishEvent(ctx context.Context, event models.LoanEvent) {
	if s.kafkaWriter == nil {
		logger.Log.Debugw("Kafka writer not configured, skipping publishing", "event_id", event.EventID)
		return
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("Failed to marshal loan event for Kafka", "event_id", event.EventID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(event.LoanID),
		Value: data,
	}

	if err := s.kafkaWriter.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("Failed to publish loan event to Kafka", "event_id", event.EventID, "error", err)
	} else {
		logger.Log.Infow("Loan event published to Kafka", "event_id", event.EventID, "operation", event.Operation, "loan_id", event.LoanID)
	}
}
