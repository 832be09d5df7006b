package http

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mep-tools/bracket-tool/internal/service"
	"github.com/mep-tools/bracket-tool/internal/store"
	"github.com/mep-tools/bracket-tool/models"
)

var testPDF = []byte("%PDF-1.3\n1 0 obj\n<<>>\nendobj\n%%EOF\n")

func generatedReport(user models.User, projectID string) models.Report {
	return models.Report{
		Revision: models.Revision{
			ID:              9,
			ProjectID:       projectID,
			RevisionCode:    "P02",
			PDFSHA256:       "abc123",
			CreatedByUserID: user.UserID,
		},
		FileName: "BKT001_P02_" + projectID + ".pdf",
		Content:  testPDF,
	}
}

// ─────────────────────────────────────────────
// GET /projects/{id}/pdf
// ─────────────────────────────────────────────

func TestProjectPDF_Success(t *testing.T) {
	reports := &mockReportService{
		generateFn: func(_ context.Context, user models.User, projectID string) (models.Report, error) {
			assert.Equal(t, testUserID, user.UserID)
			assert.Equal(t, testUserEmail, user.Email)
			return generatedReport(user, projectID), nil
		},
	}
	h := newTestHandlerWithServices(t, &service.Services{ReportService: reports})

	req := authed(httptest.NewRequest(http.MethodGet, "/projects/"+testProjectID+"/pdf", nil))
	req.Header.Set("Accept-Encoding", "gzip")
	rec := serve(h, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/pdf", rec.Header().Get("Content-Type"))
	assert.Equal(t, `attachment; filename="BKT001_P02_`+testProjectID+`.pdf"`, rec.Header().Get("Content-Disposition"))
	assert.Equal(t, "P02", rec.Header().Get("X-Revision-Code"))
	assert.Equal(t, "abc123", rec.Header().Get("X-PDF-SHA256"))
	assert.Empty(t, rec.Header().Get("Content-Encoding"), "pdf bodies are sent as-is")
	assert.Equal(t, testPDF, rec.Body.Bytes())
}

func TestProjectPDF_TokenInQuery(t *testing.T) {
	reports := &mockReportService{
		generateFn: func(_ context.Context, user models.User, projectID string) (models.Report, error) {
			return generatedReport(user, projectID), nil
		},
	}
	h := newTestHandlerWithServices(t, &service.Services{ReportService: reports})

	rec := serve(h, httptest.NewRequest(http.MethodGet, "/api/projects/"+testProjectID+"/pdf?token="+testToken, nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, testPDF, rec.Body.Bytes())
}

func TestProjectPDF_Errors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantDetail string
	}{
		{name: "foreign project", err: store.ErrProjectNotFound, wantStatus: http.StatusNotFound, wantDetail: "Project not found"},
		{name: "revision race lost", err: service.ErrRevisionRetries, wantStatus: http.StatusConflict, wantDetail: "Concurrent report generation, please retry"},
		{name: "render failure", err: errors.Join(service.ErrRenderingReport, errors.New("font")), wantStatus: http.StatusInternalServerError, wantDetail: "Internal server error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reports := &mockReportService{
				generateFn: func(context.Context, models.User, string) (models.Report, error) {
					return models.Report{}, tt.err
				},
			}
			h := newTestHandlerWithServices(t, &service.Services{ReportService: reports})

			rec := serve(h, authed(httptest.NewRequest(http.MethodGet, "/projects/"+testProjectID+"/pdf", nil)))

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantDetail, decodeDetail(t, rec))
			assert.Empty(t, rec.Header().Get("Content-Disposition"))
		})
	}
}

func TestProjectPDF_RequiresToken(t *testing.T) {
	h := newTestHandlerWithServices(t, &service.Services{ReportService: &mockReportService{}})

	rec := serve(h, httptest.NewRequest(http.MethodGet, "/projects/"+testProjectID+"/pdf", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Missing token", decodeDetail(t, rec))
}

// ─────────────────────────────────────────────
// revisions
// ─────────────────────────────────────────────

func TestListRevisions(t *testing.T) {
	reports := &mockReportService{
		listRevisionsFn: func(_ context.Context, ownerID int64, projectID string) ([]models.RevisionListItem, error) {
			assert.Equal(t, testUserID, ownerID)
			assert.Equal(t, testProjectID, projectID)
			return []models.RevisionListItem{
				{ID: 2, RevisionCode: "P02", Status: models.CheckFail},
				{ID: 1, RevisionCode: "P01", Status: models.CheckPass},
			}, nil
		},
	}
	h := newTestHandlerWithServices(t, &service.Services{ReportService: reports})

	rec := serve(h, authed(httptest.NewRequest(http.MethodGet, "/projects/"+testProjectID+"/revisions", nil)))

	require.Equal(t, http.StatusOK, rec.Code)
	var resp models.ItemsResponse[models.RevisionListItem]
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Items, 2)
	assert.Equal(t, "P02", resp.Items[0].RevisionCode)
}

func TestGetRevision(t *testing.T) {
	reports := &mockReportService{
		getRevisionFn: func(_ context.Context, _ int64, projectID, code string) (models.Revision, error) {
			if code != "P01" {
				return models.Revision{}, store.ErrRevisionNotFound
			}
			return models.Revision{ID: 1, ProjectID: projectID, RevisionCode: code}, nil
		},
	}
	h := newTestHandlerWithServices(t, &service.Services{ReportService: reports})

	rec := serve(h, authed(httptest.NewRequest(http.MethodGet, "/projects/"+testProjectID+"/revisions/P01", nil)))
	require.Equal(t, http.StatusOK, rec.Code)
	var rev models.Revision
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &rev))
	assert.Equal(t, "P01", rev.RevisionCode)

	rec = serve(h, authed(httptest.NewRequest(http.MethodGet, "/projects/"+testProjectID+"/revisions/P07", nil)))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Revision not found", decodeDetail(t, rec))
}

type closeTracker struct {
	io.Reader
	closed bool
}

func (c *closeTracker) Close() error {
	c.closed = true
	return nil
}

func TestRevisionPDF(t *testing.T) {
	body := &closeTracker{Reader: strings.NewReader(string(testPDF))}
	reports := &mockReportService{
		openPDFFn: func(_ context.Context, _ int64, projectID, code string) (io.ReadCloser, string, error) {
			return body, "BKT001_" + code + "_" + projectID + ".pdf", nil
		},
	}
	h := newTestHandlerWithServices(t, &service.Services{ReportService: reports})

	rec := serve(h, authed(httptest.NewRequest(http.MethodGet, "/projects/"+testProjectID+"/revisions/P01/pdf", nil)))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, testPDF, rec.Body.Bytes())
	assert.Equal(t, "P01", rec.Header().Get("X-Revision-Code"))
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "BKT001_P01_")
	assert.True(t, body.closed)
}

func TestRevisionPDF_StoredFileMissing(t *testing.T) {
	reports := &mockReportService{
		openPDFFn: func(context.Context, int64, string, string) (io.ReadCloser, string, error) {
			return nil, "", store.ErrPDFNotFound
		},
	}
	h := newTestHandlerWithServices(t, &service.Services{ReportService: reports})

	rec := serve(h, authed(httptest.NewRequest(http.MethodGet, "/projects/"+testProjectID+"/revisions/P01/pdf", nil)))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Stored PDF not found", decodeDetail(t, rec))
}
