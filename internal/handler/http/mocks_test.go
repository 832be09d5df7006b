package http

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mep-tools/bracket-tool/internal/config"
	"github.com/mep-tools/bracket-tool/internal/logger"
	"github.com/mep-tools/bracket-tool/internal/service"
	"github.com/mep-tools/bracket-tool/internal/utils"
	"github.com/mep-tools/bracket-tool/models"
)

// ─────────────────────────────────────────────
// Service mocks. Each method delegates to a function field so tests only
// stub what they exercise.
// ─────────────────────────────────────────────

type mockAuthService struct {
	registerUserFn func(ctx context.Context, req models.RegisterRequest) (models.User, error)
	loginFn        func(ctx context.Context, req models.LoginRequest) (models.User, error)
	createTokenFn  func(ctx context.Context, user models.User) (models.Token, error)
	parseTokenFn   func(ctx context.Context, tokenString string) (models.Token, error)
}

func (m *mockAuthService) RegisterUser(ctx context.Context, req models.RegisterRequest) (models.User, error) {
	return m.registerUserFn(ctx, req)
}

func (m *mockAuthService) Login(ctx context.Context, req models.LoginRequest) (models.User, error) {
	return m.loginFn(ctx, req)
}

func (m *mockAuthService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	return m.createTokenFn(ctx, user)
}

func (m *mockAuthService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	return m.parseTokenFn(ctx, tokenString)
}

type mockLibraryService struct {
	importFn  func(ctx context.Context, kind models.LibraryKind, r io.Reader) (models.ImportResponse, error)
	listFn    func(ctx context.Context, kind models.LibraryKind) (any, error)
	getFn     func(ctx context.Context, kind models.LibraryKind, id int64) (any, error)
	resolveFn func(ctx context.Context, bracket models.BracketConfig) (models.LibrarySelection, error)
}

func (m *mockLibraryService) Import(ctx context.Context, kind models.LibraryKind, r io.Reader) (models.ImportResponse, error) {
	return m.importFn(ctx, kind, r)
}

func (m *mockLibraryService) List(ctx context.Context, kind models.LibraryKind) (any, error) {
	return m.listFn(ctx, kind)
}

func (m *mockLibraryService) Get(ctx context.Context, kind models.LibraryKind, id int64) (any, error) {
	return m.getFn(ctx, kind, id)
}

func (m *mockLibraryService) Resolve(ctx context.Context, bracket models.BracketConfig) (models.LibrarySelection, error) {
	return m.resolveFn(ctx, bracket)
}

type mockProjectService struct {
	createFn func(ctx context.Context, ownerID int64, snapshot models.ProjectSnapshot) (models.Project, error)
	updateFn func(ctx context.Context, ownerID int64, projectID string, snapshot models.ProjectSnapshot) (models.Project, error)
	getFn    func(ctx context.Context, ownerID int64, projectID string) (models.Project, error)
	listFn   func(ctx context.Context, ownerID int64) ([]models.ProjectListItem, error)
	checkFn  func(ctx context.Context, ownerID int64, projectID string) (models.CheckResult, error)
}

func (m *mockProjectService) CreateProject(ctx context.Context, ownerID int64, snapshot models.ProjectSnapshot) (models.Project, error) {
	return m.createFn(ctx, ownerID, snapshot)
}

func (m *mockProjectService) UpdateProject(ctx context.Context, ownerID int64, projectID string, snapshot models.ProjectSnapshot) (models.Project, error) {
	return m.updateFn(ctx, ownerID, projectID, snapshot)
}

func (m *mockProjectService) GetProject(ctx context.Context, ownerID int64, projectID string) (models.Project, error) {
	return m.getFn(ctx, ownerID, projectID)
}

func (m *mockProjectService) ListProjects(ctx context.Context, ownerID int64) ([]models.ProjectListItem, error) {
	return m.listFn(ctx, ownerID)
}

func (m *mockProjectService) CheckProject(ctx context.Context, ownerID int64, projectID string) (models.CheckResult, error) {
	return m.checkFn(ctx, ownerID, projectID)
}

type mockReportService struct {
	generateFn      func(ctx context.Context, user models.User, projectID string) (models.Report, error)
	listRevisionsFn func(ctx context.Context, ownerID int64, projectID string) ([]models.RevisionListItem, error)
	getRevisionFn   func(ctx context.Context, ownerID int64, projectID, code string) (models.Revision, error)
	openPDFFn       func(ctx context.Context, ownerID int64, projectID, code string) (io.ReadCloser, string, error)
}

func (m *mockReportService) GenerateReport(ctx context.Context, user models.User, projectID string) (models.Report, error) {
	return m.generateFn(ctx, user, projectID)
}

func (m *mockReportService) ListRevisions(ctx context.Context, ownerID int64, projectID string) ([]models.RevisionListItem, error) {
	return m.listRevisionsFn(ctx, ownerID, projectID)
}

func (m *mockReportService) GetRevision(ctx context.Context, ownerID int64, projectID, code string) (models.Revision, error) {
	return m.getRevisionFn(ctx, ownerID, projectID, code)
}

func (m *mockReportService) OpenRevisionPDF(ctx context.Context, ownerID int64, projectID, code string) (io.ReadCloser, string, error) {
	return m.openPDFFn(ctx, ownerID, projectID, code)
}

type mockAppInfoService struct {
	version string
	health  models.HealthStatus
}

func (m *mockAppInfoService) GetAppVersion(_ context.Context) string {
	return m.version
}

func (m *mockAppInfoService) Health(_ context.Context) models.HealthStatus {
	return m.health
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

const (
	testUserID    int64 = 42
	testUserEmail       = "engineer@example.com"
	testToken           = "valid.jwt.token"
)

// validTokenAuth accepts testToken only.
func validTokenAuth() *mockAuthService {
	return &mockAuthService{
		parseTokenFn: func(_ context.Context, tokenString string) (models.Token, error) {
			if tokenString != testToken {
				return models.Token{}, service.ErrTokenIsExpiredOrInvalid
			}
			return models.Token{UserID: testUserID, Email: testUserEmail, SignedString: tokenString}, nil
		},
	}
}

func newTestHandlerWithServices(t *testing.T, svcs *service.Services) *Handler {
	t.Helper()
	if svcs.AppInfoService == nil {
		svcs.AppInfoService = &mockAppInfoService{version: "test"}
	}
	if svcs.AuthService == nil {
		svcs.AuthService = validTokenAuth()
	}
	return NewHandler(svcs, config.Server{}, logger.Nop())
}

// withUser stores the test user in the request context as the auth
// middleware would.
func withUser(r *http.Request) *http.Request {
	return r.WithContext(utils.WithUser(r.Context(), testUserID, testUserEmail))
}

func strPtr(s string) *string {
	return &s
}

// serve runs req through the full router built by Init.
func serve(h *Handler, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.Init().ServeHTTP(rec, req)
	return rec
}

// authed sets the bearer header accepted by validTokenAuth.
func authed(req *http.Request) *http.Request {
	req.Header.Set("Authorization", "Bearer "+testToken)
	return req
}

func decodeDetail(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var resp models.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp), "body: %s", rec.Body.String())
	return resp.Detail
}
