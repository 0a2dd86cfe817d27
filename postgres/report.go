package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/dukerupert/dokimi"
)

// Compile-time check that ReportService implements dokimi.ReportService.
var _ dokimi.ReportService = (*ReportService)(nil)

// ReportService implements dokimi.ReportService using PostgreSQL. The full
// analysis result is stored verbatim as jsonb so downstream consumers see
// exactly what the engine produced.
type ReportService struct {
	db *DB
}

func (s *ReportService) CreateReport(ctx context.Context, report *dokimi.AnalysisReport) error {
	if report.ID == uuid.Nil {
		report.ID = uuid.New()
	}

	resultJSON, err := json.Marshal(report.Result)
	if err != nil {
		return dokimi.Internal("Failed to encode analysis result", err)
	}

	err = s.db.pool.QueryRow(ctx,
		`INSERT INTO analysis_reports
			(id, retailer_id, placement_id, retailer_name, placement_name, creative_url, result)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING created_at`,
		report.ID, report.RetailerID, report.PlacementID,
		report.RetailerName, report.PlacementName, report.CreativeURL, resultJSON,
	).Scan(&report.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return dokimi.Conflict("Report already exists")
		}
		return dokimi.Internal("Failed to create report", err)
	}

	return nil
}

func (s *ReportService) FindReportByID(ctx context.Context, id uuid.UUID) (*dokimi.AnalysisReport, error) {
	report, err := scanReport(s.db.pool.QueryRow(ctx,
		`SELECT id, retailer_id, placement_id, retailer_name, placement_name,
		        creative_url, result, created_at
		 FROM analysis_reports WHERE id = $1`,
		id,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, dokimi.NotFound("Report not found")
		}
		return nil, dokimi.Internal("Failed to fetch report", err)
	}
	return report, nil
}

func (s *ReportService) FindReports(ctx context.Context, filter dokimi.ReportFilter) ([]*dokimi.AnalysisReport, int, error) {
	where := ``
	args := []any{}
	if filter.RetailerID != nil {
		where = `WHERE retailer_id = $1`
		args = append(args, *filter.RetailerID)
	}

	var total int
	if err := s.db.pool.QueryRow(ctx,
		`SELECT count(*) FROM analysis_reports `+where, args...,
	).Scan(&total); err != nil {
		return nil, 0, dokimi.Internal("Failed to count reports", err)
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = 50
	}
	query := fmt.Sprintf(`SELECT id, retailer_id, placement_id, retailer_name, placement_name,
	                 creative_url, result, created_at
	          FROM analysis_reports %s
	          ORDER BY created_at DESC
	          LIMIT $%d OFFSET $%d`, where, len(args)+1, len(args)+2)
	args = append(args, limit, filter.Offset)

	rows, err := s.db.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, dokimi.Internal("Failed to list reports", err)
	}
	defer rows.Close()

	var reports []*dokimi.AnalysisReport
	for rows.Next() {
		report, err := scanReport(rows)
		if err != nil {
			return nil, 0, dokimi.Internal("Failed to scan report", err)
		}
		reports = append(reports, report)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, dokimi.Internal("Failed to list reports", err)
	}

	return reports, total, nil
}

// scanReport scans one report row, decoding the jsonb result column.
func scanReport(row pgx.Row) (*dokimi.AnalysisReport, error) {
	var report dokimi.AnalysisReport
	var resultJSON []byte

	err := row.Scan(
		&report.ID, &report.RetailerID, &report.PlacementID,
		&report.RetailerName, &report.PlacementName,
		&report.CreativeURL, &resultJSON, &report.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(resultJSON, &report.Result); err != nil {
		return nil, err
	}

	return &report, nil
}
