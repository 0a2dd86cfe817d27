package http

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/dukerupert/dokimi"
)

// AnalyzeCreativeResponse is the payload returned by the analyze endpoint.
// ReportID is nil when report persistence was unavailable; the analysis
// result itself is always present.
type AnalyzeCreativeResponse struct {
	ReportID *uuid.UUID             `json:"reportId,omitempty"`
	Result   *dokimi.AnalysisResult `json:"result"`
}

// handleAnalyzeCreative accepts a multipart creative upload and runs the full
// analysis pipeline. The only rejection paths are transport-level: a missing,
// oversized, or unreadable upload, or an unknown retailer/placement. Analysis
// itself never fails.
func (s *Server) handleAnalyzeCreative(c echo.Context) error {
	logger := s.getRequestLogger(c)

	file, err := c.FormFile("image")
	if err != nil {
		return dokimi.Invalid("Image file is required")
	}
	if file.Size > dokimi.MaxUploadSize {
		return dokimi.Invalid("File too large (max %dMB)", dokimi.MaxUploadSize/(1024*1024))
	}

	src, err := file.Open()
	if err != nil {
		return dokimi.Invalid("Unable to read uploaded file")
	}
	defer src.Close()

	imageData, err := io.ReadAll(src)
	if err != nil {
		return dokimi.Invalid("Unable to read uploaded file")
	}

	retailerID, err := uuid.Parse(c.FormValue("retailer_id"))
	if err != nil {
		return dokimi.Invalid("Invalid retailer_id")
	}
	placementID, err := uuid.Parse(c.FormValue("placement_id"))
	if err != nil {
		return dokimi.Invalid("Invalid placement_id")
	}

	ctx, cancel := withTimeout(c, AnalysisTimeout)
	defer cancel()

	retailer, err := s.retailerService.FindRetailerByID(ctx, retailerID)
	if err != nil {
		return err
	}
	placement, err := s.retailerService.FindPlacementByID(ctx, placementID)
	if err != nil {
		return err
	}
	if placement.RetailerID != retailer.ID {
		return dokimi.Invalid("Placement does not belong to retailer")
	}

	// Persist the original upload. Storage failure downgrades to a report
	// without a creative URL; it never blocks the analysis.
	creativeURL := s.storeCreative(ctx, logger, file.Filename, imageData)

	result := s.creativeService.AnalyzeCreative(ctx, dokimi.AnalysisRequest{
		Image:         imageData,
		RetailerID:    retailer.ID,
		PlacementID:   placement.ID,
		RetailerName:  retailer.Name,
		PlacementName: placement.Name,
		Guidelines:    retailer.Guidelines,
	})

	resp := AnalyzeCreativeResponse{Result: result}

	report := &dokimi.AnalysisReport{
		RetailerID:    retailer.ID,
		PlacementID:   placement.ID,
		RetailerName:  retailer.Name,
		PlacementName: placement.Name,
		CreativeURL:   creativeURL,
		Result:        *result,
	}
	if err := s.reportService.CreateReport(ctx, report); err != nil {
		logger.Error("failed to persist analysis report",
			slog.String("error", err.Error()))
	} else {
		resp.ReportID = &report.ID
	}

	return OK(c, resp)
}

// storeCreative uploads the raw creative and returns its URL, or an empty
// string when storage is unconfigured, the type is unsupported, or the
// upload fails.
func (s *Server) storeCreative(ctx context.Context, logger *slog.Logger, filename string, data []byte) string {
	if s.fileStorage == nil {
		return ""
	}

	contentType := http.DetectContentType(data)
	if !dokimi.IsAcceptedImageType(contentType) {
		logger.Warn("skipping storage of unsupported creative type",
			slog.String("content_type", contentType))
		return ""
	}

	key := fmt.Sprintf("creatives/%d_%s%s",
		time.Now().UnixNano(), uuid.New().String()[:8], filepath.Ext(filename))

	url, err := s.fileStorage.Upload(ctx, key, bytes.NewReader(data), contentType)
	if err != nil {
		logger.Error("failed to store creative",
			slog.String("key", key),
			slog.String("error", err.Error()))
		return ""
	}
	return url
}
