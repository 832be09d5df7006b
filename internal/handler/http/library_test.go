package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mep-tools/bracket-tool/internal/config"
	"github.com/mep-tools/bracket-tool/internal/importer"
	"github.com/mep-tools/bracket-tool/internal/logger"
	"github.com/mep-tools/bracket-tool/internal/service"
	"github.com/mep-tools/bracket-tool/internal/store"
	"github.com/mep-tools/bracket-tool/models"
)

func multipartCSV(t *testing.T, field, content string) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile(field, "sheet.csv")
	require.NoError(t, err)
	_, err = fw.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, mw.Close())
	return &buf, mw.FormDataContentType()
}

// ─────────────────────────────────────────────
// import
// ─────────────────────────────────────────────

func TestImportLibrary_Success(t *testing.T) {
	const sheet = "rod_id,diameter_label\nM10,M10\n"
	lib := &mockLibraryService{
		importFn: func(_ context.Context, kind models.LibraryKind, r io.Reader) (models.ImportResponse, error) {
			assert.Equal(t, models.LibraryKindRods, kind)
			body, err := io.ReadAll(r)
			require.NoError(t, err)
			assert.Equal(t, sheet, string(body))
			return models.ImportResponse{Inserted: 1, Rows: 1}, nil
		},
	}
	h := newTestHandlerWithServices(t, &service.Services{LibraryService: lib})

	body, contentType := multipartCSV(t, "file", sheet)
	req := authed(httptest.NewRequest(http.MethodPost, "/library/import/rods", body))
	req.Header.Set("Content-Type", contentType)
	rec := serve(h, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"inserted":1,"rows":1}`, rec.Body.String())
}

func TestImportLibrary_Errors(t *testing.T) {
	tests := []struct {
		name       string
		kind       string
		field      string
		importErr  error
		wantStatus int
		wantDetail string
	}{
		{name: "unknown kind", kind: "bolts", field: "file", wantStatus: http.StatusNotFound, wantDetail: "Unknown kind"},
		{name: "missing file part", kind: "profiles", field: "upload", wantStatus: http.StatusBadRequest, wantDetail: `CSV file is required in form field "file"`},
		{
			name:       "bad csv",
			kind:       "washers",
			field:      "file",
			importErr:  fmt.Errorf("%w: record on line 2", importer.ErrInvalidCSV),
			wantStatus: http.StatusBadRequest,
			wantDetail: "invalid CSV file: record on line 2",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lib := &mockLibraryService{
				importFn: func(context.Context, models.LibraryKind, io.Reader) (models.ImportResponse, error) {
					return models.ImportResponse{}, tt.importErr
				},
			}
			h := newTestHandlerWithServices(t, &service.Services{LibraryService: lib})

			body, contentType := multipartCSV(t, tt.field, "a,b\n1,2\n")
			req := authed(httptest.NewRequest(http.MethodPost, "/library/import/"+tt.kind, body))
			req.Header.Set("Content-Type", contentType)
			rec := serve(h, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantDetail, decodeDetail(t, rec))
		})
	}
}

func TestImportLibrary_TooLarge(t *testing.T) {
	lib := &mockLibraryService{}
	svcs := &service.Services{LibraryService: lib, AuthService: validTokenAuth(), AppInfoService: &mockAppInfoService{}}
	h := NewHandler(svcs, config.Server{MaxUploadBytes: 64}, logger.Nop())

	body, contentType := multipartCSV(t, "file", strings.Repeat("x,y\n", 200))
	req := authed(httptest.NewRequest(http.MethodPost, "/library/import/anchors", body))
	req.Header.Set("Content-Type", contentType)
	rec := serve(h, req)

	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
	assert.Equal(t, "File too large", decodeDetail(t, rec))
}

func TestImportLibrary_RequiresAuth(t *testing.T) {
	h := newTestHandlerWithServices(t, &service.Services{LibraryService: &mockLibraryService{}})

	body, contentType := multipartCSV(t, "file", "rod_id\nM10\n")
	req := httptest.NewRequest(http.MethodPost, "/library/import/rods", body)
	req.Header.Set("Content-Type", contentType)

	assert.Equal(t, http.StatusUnauthorized, serve(h, req).Code)
}

// ─────────────────────────────────────────────
// list / get
// ─────────────────────────────────────────────

func TestListLibrary(t *testing.T) {
	lib := &mockLibraryService{
		listFn: func(_ context.Context, kind models.LibraryKind) (any, error) {
			require.Equal(t, models.LibraryKindProfiles, kind)
			return []models.Profile{{ID: 1, ProfileID: "P-41", ProfileName: "41x41"}}, nil
		},
	}
	h := newTestHandlerWithServices(t, &service.Services{LibraryService: lib})

	rec := serve(h, authed(httptest.NewRequest(http.MethodGet, "/library/profiles", nil)))

	require.Equal(t, http.StatusOK, rec.Code)
	var resp struct {
		Items []models.Profile `json:"items"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Items, 1)
	assert.Equal(t, "P-41", resp.Items[0].ProfileID)
}

func TestListLibrary_UnknownKind(t *testing.T) {
	h := newTestHandlerWithServices(t, &service.Services{LibraryService: &mockLibraryService{}})

	rec := serve(h, authed(httptest.NewRequest(http.MethodGet, "/library/bolts", nil)))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Unknown library kind: bolts", decodeDetail(t, rec))
}

func TestGetLibraryItem(t *testing.T) {
	tests := []struct {
		name       string
		path       string
		getErr     error
		wantStatus int
		wantDetail string
	}{
		{name: "found", path: "/library/rods/5", wantStatus: http.StatusOK},
		{name: "missing row", path: "/library/rods/6", getErr: store.ErrLibraryItemNotFound, wantStatus: http.StatusNotFound, wantDetail: "Not found"},
		{name: "non numeric id", path: "/library/rods/abc", wantStatus: http.StatusNotFound, wantDetail: "Not found"},
		{name: "unknown kind", path: "/library/bolts/1", wantStatus: http.StatusBadRequest, wantDetail: "Unknown library kind: bolts"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lib := &mockLibraryService{
				getFn: func(_ context.Context, kind models.LibraryKind, id int64) (any, error) {
					if tt.getErr != nil {
						return nil, tt.getErr
					}
					return models.Rod{ID: id, RodID: "M10"}, nil
				},
			}
			h := newTestHandlerWithServices(t, &service.Services{LibraryService: lib})

			rec := serve(h, authed(httptest.NewRequest(http.MethodGet, tt.path, nil)))

			require.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantStatus == http.StatusOK {
				var rod models.Rod
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &rod))
				assert.Equal(t, int64(5), rod.ID)
				return
			}
			assert.Equal(t, tt.wantDetail, decodeDetail(t, rec))
		})
	}
}
