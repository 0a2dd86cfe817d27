package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"image"
	"image/color"
	"image/png"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dukerupert/dokimi"
	dokimihttp "github.com/dukerupert/dokimi/http"
	"github.com/dukerupert/dokimi/internal/engine"
	"github.com/dukerupert/dokimi/mock"
)

var (
	testRetailerID  = uuid.MustParse("6a0f0d3e-31d5-4f4c-9d4c-111111111111")
	testPlacementID = uuid.MustParse("6a0f0d3e-31d5-4f4c-9d4c-222222222222")
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newTestServer builds a server around a local-only engine and happy-path
// catalog, report, and storage mocks.
func newTestServer(t *testing.T) (*dokimihttp.Server, *mock.ReportService) {
	t.Helper()

	retailers := &mock.RetailerService{
		FindRetailerByIDFn: func(ctx context.Context, id uuid.UUID) (*dokimi.Retailer, error) {
			if id != testRetailerID {
				return nil, dokimi.NotFound("Retailer not found")
			}
			return &dokimi.Retailer{ID: testRetailerID, Name: "MegaMart", Slug: "megamart"}, nil
		},
		FindPlacementByIDFn: func(ctx context.Context, id uuid.UUID) (*dokimi.Placement, error) {
			if id != testPlacementID {
				return nil, dokimi.NotFound("Placement not found")
			}
			return &dokimi.Placement{ID: testPlacementID, RetailerID: testRetailerID, Name: "Homepage banner"}, nil
		},
	}

	reports := &mock.ReportService{
		CreateReportFn: func(ctx context.Context, report *dokimi.AnalysisReport) error {
			report.ID = uuid.New()
			return nil
		},
	}

	storage := &mock.FileStorage{
		UploadFn: func(ctx context.Context, key string, reader io.Reader, contentType string) (string, error) {
			return "http://localhost/uploads/" + key, nil
		},
	}

	srv := dokimihttp.NewServer(dokimihttp.Config{
		Addr:            "localhost:0",
		Logger:          testLogger(),
		CreativeService: engine.NewEngine(testLogger(), nil),
		RetailerService: retailers,
		ReportService:   reports,
		FileStorage:     storage,
	})
	return srv, reports
}

// pngUpload builds a multipart body containing a valid PNG plus form fields.
func pngUpload(t *testing.T, fields map[string]string) (*bytes.Buffer, string) {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			img.Set(x, y, color.RGBA{R: 20, G: 20, B: 20, A: 255})
		}
	}
	var imgBuf bytes.Buffer
	require.NoError(t, png.Encode(&imgBuf, img))

	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	fw, err := w.CreateFormFile("image", "creative.png")
	require.NoError(t, err)
	_, err = fw.Write(imgBuf.Bytes())
	require.NoError(t, err)

	for k, v := range fields {
		require.NoError(t, w.WriteField(k, v))
	}
	require.NoError(t, w.Close())

	return &body, w.FormDataContentType()
}

func TestHandleAnalyzeCreative_Success(t *testing.T) {
	srv, _ := newTestServer(t)

	body, contentType := pngUpload(t, map[string]string{
		"retailer_id":  testRetailerID.String(),
		"placement_id": testPlacementID.String(),
	})

	req := httptest.NewRequest(http.MethodPost, "/api/creatives/analyze", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	srv.Echo().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp struct {
		ReportID *uuid.UUID            `json:"reportId"`
		Result   dokimi.AnalysisResult `json:"result"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	require.NotNil(t, resp.ReportID)
	assert.Len(t, resp.Result.ComplianceChecks, 6)
	assert.Len(t, resp.Result.HeatmapData.Zones, 5)
	assert.Len(t, resp.Result.PlacementSimulations, 3)
	assert.NotEmpty(t, resp.Result.RiskAnalysis.Label)
}

func TestHandleAnalyzeCreative_MissingImage(t *testing.T) {
	srv, _ := newTestServer(t)

	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	require.NoError(t, w.WriteField("retailer_id", testRetailerID.String()))
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/creatives/analyze", &body)
	req.Header.Set("Content-Type", w.FormDataContentType())
	rec := httptest.NewRecorder()
	srv.Echo().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleAnalyzeCreative_InvalidRetailerID(t *testing.T) {
	srv, _ := newTestServer(t)

	body, contentType := pngUpload(t, map[string]string{
		"retailer_id":  "not-a-uuid",
		"placement_id": testPlacementID.String(),
	})

	req := httptest.NewRequest(http.MethodPost, "/api/creatives/analyze", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	srv.Echo().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleAnalyzeCreative_UnknownRetailer(t *testing.T) {
	srv, _ := newTestServer(t)

	body, contentType := pngUpload(t, map[string]string{
		"retailer_id":  uuid.New().String(),
		"placement_id": testPlacementID.String(),
	})

	req := httptest.NewRequest(http.MethodPost, "/api/creatives/analyze", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	srv.Echo().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandleAnalyzeCreative_ReportPersistenceFailureStillAnalyzes(t *testing.T) {
	srv, reports := newTestServer(t)
	reports.CreateReportFn = func(ctx context.Context, report *dokimi.AnalysisReport) error {
		return dokimi.Internal("Failed to create report", nil)
	}

	body, contentType := pngUpload(t, map[string]string{
		"retailer_id":  testRetailerID.String(),
		"placement_id": testPlacementID.String(),
	})

	req := httptest.NewRequest(http.MethodPost, "/api/creatives/analyze", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	srv.Echo().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp struct {
		ReportID *uuid.UUID            `json:"reportId"`
		Result   dokimi.AnalysisResult `json:"result"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	// Analysis still succeeds; the report ID is simply absent.
	assert.Nil(t, resp.ReportID)
	assert.Len(t, resp.Result.ComplianceChecks, 6)
}
