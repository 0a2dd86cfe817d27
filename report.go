package dokimi

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// AnalysisReport is a persisted record of one completed creative analysis.
// The engine itself is stateless; reports exist so past analyses can be
// listed and re-fetched by downstream pages.
type AnalysisReport struct {
	ID uuid.UUID `json:"id"`

	RetailerID  uuid.UUID `json:"retailerId"`
	PlacementID uuid.UUID `json:"placementId"`

	RetailerName  string `json:"retailerName"`
	PlacementName string `json:"placementName"`

	// CreativeURL points at the stored creative image.
	CreativeURL string `json:"creativeUrl"`

	// Result is the full analysis output, stored verbatim.
	Result AnalysisResult `json:"result"`

	CreatedAt time.Time `json:"createdAt"`
}

// ReportFilter narrows report listings.
type ReportFilter struct {
	RetailerID *uuid.UUID

	Offset int
	Limit  int
}

// ReportService defines operations for analysis report history.
type ReportService interface {
	// CreateReport persists a new report. The ID and CreatedAt fields are
	// populated on success.
	CreateReport(ctx context.Context, report *AnalysisReport) error

	// FindReportByID retrieves a report by ID.
	FindReportByID(ctx context.Context, id uuid.UUID) (*AnalysisReport, error)

	// FindReports lists reports matching the filter, newest first, and
	// returns the total count before offset/limit.
	FindReports(ctx context.Context, filter ReportFilter) ([]*AnalysisReport, int, error)
}
