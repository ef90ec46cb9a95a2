package services

import (
	"context"

	"github.com/sbilibin2017/gw-library/internal/logger"
	"github.com/sbilibin2017/gw-library/internal/models"
)

//go:generate mockgen -source=report.go -destination=report_mock.go -package=services

// TopLoanedLimit is how many books the most-loaned report returns.
const TopLoanedLimit = 5

// Cache keys of the reports.
const (
	mostLoanedReport  = "most-loaned"
	withOverdueReport = "with-overdue"
)

// BookReader defines read-only book aggregates.
type BookReader interface {
	ListMostLoaned(ctx context.Context, limit int) ([]models.BookLoanCount, error)
}

// UserReader defines read-only user aggregates.
type UserReader interface {
	ListWithLoanStatus(ctx context.Context, status string) ([]models.User, error)
}

// ReportCache caches report results by name.
// Set stores a report only while the cache generation still equals generation,
// so a snapshot taken before an invalidation is never written back.
type ReportCache interface {
	Get(ctx context.Context, name string, dst any) (bool, error)
	Generation(ctx context.Context) (int64, error)
	Set(ctx context.Context, name string, generation int64, report any) error
}

// ReportService serves the aggregate reports, read-through cache when one is configured.
type ReportService struct {
	books BookReader
	users UserReader
	cache ReportCache
}

// NewReportService creates a new ReportService. cache may be nil.
func NewReportService(books BookReader, users UserReader, cache ReportCache) *ReportService {
	return &ReportService{
		books: books,
		users: users,
		cache: cache,
	}
}

// MostLoanedBooks returns the top books by loan count, highest first.
func (s *ReportService) MostLoanedBooks(ctx context.Context) ([]models.BookLoanCount, error) {
	var books []models.BookLoanCount
	if s.fromCache(ctx, mostLoanedReport, &books) {
		return books, nil
	}
	gen, cacheable := s.generation(ctx)

	books, err := s.books.ListMostLoaned(ctx, TopLoanedLimit)
	if err != nil {
		logger.Log.Errorw("failed to get most loaned books", "error", err)
		return nil, err
	}

	if cacheable {
		s.toCache(ctx, mostLoanedReport, gen, books)
	}
	return books, nil
}

// UsersWithOverdueLoans returns each user holding an overdue loan once.
func (s *ReportService) UsersWithOverdueLoans(ctx context.Context) ([]models.User, error) {
	var users []models.User
	if s.fromCache(ctx, withOverdueReport, &users) {
		return users, nil
	}
	gen, cacheable := s.generation(ctx)

	users, err := s.users.ListWithLoanStatus(ctx, models.StatusOverdue)
	if err != nil {
		logger.Log.Errorw("failed to get users with overdue loans", "error", err)
		return nil, err
	}

	if cacheable {
		s.toCache(ctx, withOverdueReport, gen, users)
	}
	return users, nil
}

// fromCache reports a hit. Cache errors count as a miss.
func (s *ReportService) fromCache(ctx context.Context, name string, dst any) bool {
	if s.cache == nil {
		return false
	}
	ok, err := s.cache.Get(ctx, name, dst)
	if err != nil {
		logger.Log.Warnw("report cache read failed", "report", name, "error", err)
		return false
	}
	return ok
}

// generation must be read before the store query.
func (s *ReportService) generation(ctx context.Context) (int64, bool) {
	if s.cache == nil {
		return 0, false
	}
	gen, err := s.cache.Generation(ctx)
	if err != nil {
		logger.Log.Warnw("report cache generation read failed", "error", err)
		return 0, false
	}
	return gen, true
}

func (s *ReportService) toCache(ctx context.Context, name string, gen int64, report any) {
	if err := s.cache.Set(ctx, name, gen, report); err != nil {
		logger.Log.Warnw("report cache write failed", "report", name, "error", err)
	}
}
