// store/report.go
package store

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"lostandfound/logger"
	"lostandfound/model"

	"gorm.io/gorm"
)

var (
	// ErrDuplicateReportID is returned when an insert collides with an
	// existing report_id.
	ErrDuplicateReportID = errors.New("store: report_id already exists")

	// ErrConstraint is returned when a required field is missing. The
	// offending field is named in the wrapped message.
	ErrConstraint = errors.New("store: required field missing")
)

// ReportStore owns the reports relation: single-row, single-statement units
// of work, no retries, no cross-report transactions.
type ReportStore interface {
	// Insert persists a new report and returns the stored row with its
	// generated id and timestamps.
	Insert(ctx context.Context, r *model.Report) (*model.Report, error)

	// GetByReportID returns the report with the given report_id, or nil
	// when none exists. A miss is not an error.
	GetByReportID(ctx context.Context, reportID string) (*model.Report, error)

	// Search returns every report where term occurs as a case-insensitive
	// substring of all_data, report_id, report_type, or location. The
	// empty term matches everything. reportType, when non-empty, narrows
	// the result to that type. Ordering is store-default and the result
	// is unbounded.
	Search(ctx context.Context, term, reportType string) ([]model.Report, error)

	// ListByUser returns every report submitted by the given account.
	ListByUser(ctx context.Context, userID int64) ([]model.Report, error)

	// CountByTypeSince returns per-type report counts created at or after
	// the given time.
	CountByTypeSince(ctx context.Context, since time.Time) (map[string]int64, error)
}

type reportStore struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewReportStore(db *gorm.DB, baseLog *logger.Logger) ReportStore {
	return &reportStore{db: db, log: baseLog.With("store", "ReportStore")}
}

func (s *reportStore) Insert(ctx context.Context, r *model.Report) (*model.Report, error) {
	if strings.TrimSpace(r.ReportType) == "" {
		return nil, fmt.Errorf("%w: report_type", ErrConstraint)
	}
	if strings.TrimSpace(r.AllData) == "" {
		return nil, fmt.Errorf("%w: all_data", ErrConstraint)
	}

	if err := s.db.WithContext(ctx).Create(r).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateReportID, r.ReportID)
		}
		return nil, err
	}

	s.log.Info("report stored", "report_id", r.ReportID, "report_type", r.ReportType)
	return r, nil
}

func (s *reportStore) GetByReportID(ctx context.Context, reportID string) (*model.Report, error) {
	var reports []model.Report
	if err := s.db.WithContext(ctx).
		Where("report_id = ?", reportID).
		Limit(1).
		Find(&reports).Error; err != nil {
		return nil, err
	}
	if len(reports) == 0 {
		return nil, nil
	}
	return &reports[0], nil
}

func (s *reportStore) Search(ctx context.Context, term, reportType string) ([]model.Report, error) {
	if s.db.Dialector.Name() == "postgres" {
		return s.searchPostgres(ctx, term, reportType)
	}

	pattern := "%" + strings.ToLower(term) + "%"
	q := s.db.WithContext(ctx).Where(
		"LOWER(all_data) LIKE ? OR LOWER(report_id) LIKE ? OR LOWER(report_type) LIKE ? OR LOWER(location) LIKE ?",
		pattern, pattern, pattern, pattern,
	)
	if reportType != "" {
		q = q.Where("report_type = ?", reportType)
	}

	var reports []model.Report
	if err := q.Find(&reports).Error; err != nil {
		return nil, err
	}
	return reports, nil
}

// searchPostgres goes through the search_reports SQL function so the query
// hits the trigram index.
func (s *reportStore) searchPostgres(ctx context.Context, term, reportType string) ([]model.Report, error) {
	query := "SELECT * FROM search_reports(?)"
	args := []interface{}{term}
	if reportType != "" {
		query = "SELECT * FROM search_reports(?) WHERE report_type = ?"
		args = append(args, reportType)
	}

	var reports []model.Report
	if err := s.db.WithContext(ctx).Raw(query, args...).Scan(&reports).Error; err != nil {
		return nil, err
	}
	return reports, nil
}

func (s *reportStore) ListByUser(ctx context.Context, userID int64) ([]model.Report, error) {
	var reports []model.Report
	if err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Find(&reports).Error; err != nil {
		return nil, err
	}
	return reports, nil
}

func (s *reportStore) CountByTypeSince(ctx context.Context, since time.Time) (map[string]int64, error) {
	type row struct {
		ReportType string
		Total      int64
	}

	var rows []row
	if err := s.db.WithContext(ctx).
		Model(&model.Report{}).
		Select("report_type, COUNT(*) AS total").
		Where("created_at >= ?", since).
		Group("report_type").
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	counts := make(map[string]int64, len(rows))
	for _, r := range rows {
		counts[r.ReportType] = r.Total
	}
	return counts, nil
}
