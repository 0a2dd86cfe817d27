package mock

import (
	"context"

	"github.com/google/uuid"

	"github.com/dukerupert/dokimi"
)

var _ dokimi.ReportService = (*ReportService)(nil)

// ReportService is a mock implementation of dokimi.ReportService.
type ReportService struct {
	CreateReportFn   func(ctx context.Context, report *dokimi.AnalysisReport) error
	FindReportByIDFn func(ctx context.Context, id uuid.UUID) (*dokimi.AnalysisReport, error)
	FindReportsFn    func(ctx context.Context, filter dokimi.ReportFilter) ([]*dokimi.AnalysisReport, int, error)
}

func (m *ReportService) CreateReport(ctx context.Context, report *dokimi.AnalysisReport) error {
	return m.CreateReportFn(ctx, report)
}

func (m *ReportService) FindReportByID(ctx context.Context, id uuid.UUID) (*dokimi.AnalysisReport, error) {
	return m.FindReportByIDFn(ctx, id)
}

func (m *ReportService) FindReports(ctx context.Context, filter dokimi.ReportFilter) ([]*dokimi.AnalysisReport, int, error) {
	return m.FindReportsFn(ctx, filter)
}
