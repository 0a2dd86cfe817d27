package http

import (
	"strconv"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/dukerupert/dokimi"
)

// handleListReports returns past analysis reports, newest first.
// Supports optional retailer_id, offset, and limit query parameters.
func (s *Server) handleListReports(c echo.Context) error {
	var filter dokimi.ReportFilter

	if v := c.QueryParam("retailer_id"); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			return dokimi.Invalid("Invalid retailer_id")
		}
		filter.RetailerID = &id
	}
	if v := c.QueryParam("offset"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return dokimi.Invalid("Invalid offset")
		}
		filter.Offset = n
	}
	if v := c.QueryParam("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 || n > 100 {
			return dokimi.Invalid("Invalid limit")
		}
		filter.Limit = n
	}

	ctx, cancel := withTimeout(c, DefaultTimeout)
	defer cancel()

	reports, total, err := s.reportService.FindReports(ctx, filter)
	if err != nil {
		return err
	}
	if reports == nil {
		reports = []*dokimi.AnalysisReport{}
	}
	return OK(c, ListResponse{Items: reports, Total: total})
}

// handleGetReport returns one analysis report by ID.
func (s *Server) handleGetReport(c echo.Context) error {
	id, err := requireUUIDParam(c, "id")
	if err != nil {
		return err
	}

	ctx, cancel := withTimeout(c, DefaultTimeout)
	defer cancel()

	report, err := s.reportService.FindReportByID(ctx, id)
	if err != nil {
		return err
	}
	return OK(c, report)
}
