package http_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dukerupert/dokimi"
	dokimihttp "github.com/dukerupert/dokimi/http"
	"github.com/dukerupert/dokimi/mock"
)

func newReportServer(reports *mock.ReportService, retailers *mock.RetailerService) *dokimihttp.Server {
	return dokimihttp.NewServer(dokimihttp.Config{
		Addr:            "localhost:0",
		Logger:          testLogger(),
		ReportService:   reports,
		RetailerService: retailers,
	})
}

func TestHandleListReports(t *testing.T) {
	reportID := uuid.New()
	reports := &mock.ReportService{
		FindReportsFn: func(ctx context.Context, filter dokimi.ReportFilter) ([]*dokimi.AnalysisReport, int, error) {
			assert.Nil(t, filter.RetailerID)
			return []*dokimi.AnalysisReport{
				{ID: reportID, RetailerName: "MegaMart", PlacementName: "Homepage banner"},
			}, 1, nil
		},
	}

	srv := newReportServer(reports, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/reports", nil)
	rec := httptest.NewRecorder()
	srv.Echo().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Items []dokimi.AnalysisReport `json:"items"`
		Total int                     `json:"total"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Items, 1)
	assert.Equal(t, reportID, resp.Items[0].ID)
	assert.Equal(t, 1, resp.Total)
}

func TestHandleListReports_FiltersByRetailer(t *testing.T) {
	retailerID := uuid.New()
	reports := &mock.ReportService{
		FindReportsFn: func(ctx context.Context, filter dokimi.ReportFilter) ([]*dokimi.AnalysisReport, int, error) {
			require.NotNil(t, filter.RetailerID)
			assert.Equal(t, retailerID, *filter.RetailerID)
			assert.Equal(t, 10, filter.Limit)
			return nil, 0, nil
		},
	}

	srv := newReportServer(reports, nil)

	req := httptest.NewRequest(http.MethodGet,
		"/api/reports?retailer_id="+retailerID.String()+"&limit=10", nil)
	rec := httptest.NewRecorder()
	srv.Echo().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestHandleListReports_InvalidLimit(t *testing.T) {
	srv := newReportServer(&mock.ReportService{}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/reports?limit=1000", nil)
	rec := httptest.NewRecorder()
	srv.Echo().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleGetReport_NotFound(t *testing.T) {
	reports := &mock.ReportService{
		FindReportByIDFn: func(ctx context.Context, id uuid.UUID) (*dokimi.AnalysisReport, error) {
			return nil, dokimi.NotFound("Report not found")
		},
	}

	srv := newReportServer(reports, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/reports/"+uuid.New().String(), nil)
	rec := httptest.NewRecorder()
	srv.Echo().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandleListRetailers(t *testing.T) {
	retailers := &mock.RetailerService{
		FindRetailersFn: func(ctx context.Context) ([]*dokimi.Retailer, error) {
			return []*dokimi.Retailer{
				{ID: uuid.New(), Name: "MegaMart", Slug: "megamart"},
				{ID: uuid.New(), Name: "ValuePoint", Slug: "valuepoint"},
			}, nil
		},
	}

	srv := newReportServer(nil, retailers)

	req := httptest.NewRequest(http.MethodGet, "/api/retailers", nil)
	rec := httptest.NewRecorder()
	srv.Echo().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var got []dokimi.Retailer
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Len(t, got, 2)
}

func TestHandleListPlacements(t *testing.T) {
	retailerID := uuid.New()
	retailers := &mock.RetailerService{
		FindRetailerByIDFn: func(ctx context.Context, id uuid.UUID) (*dokimi.Retailer, error) {
			return &dokimi.Retailer{ID: id, Name: "MegaMart"}, nil
		},
		FindPlacementsByRetailerFn: func(ctx context.Context, id uuid.UUID) ([]*dokimi.Placement, error) {
			assert.Equal(t, retailerID, id)
			return []*dokimi.Placement{
				{ID: uuid.New(), RetailerID: id, Name: "Homepage banner"},
			}, nil
		},
	}

	srv := newReportServer(nil, retailers)

	req := httptest.NewRequest(http.MethodGet, "/api/retailers/"+retailerID.String()+"/placements", nil)
	rec := httptest.NewRecorder()
	srv.Echo().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var got []dokimi.Placement
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Len(t, got, 1)
}

func TestHandleHealth(t *testing.T) {
	srv := newReportServer(nil, nil)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	srv.Echo().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "ok", body["status"])
	assert.Equal(t, false, body["remoteAnalysis"])
}
