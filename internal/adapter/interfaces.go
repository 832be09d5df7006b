// Package adapter is the HTTP client side of the bracket tool API, used by
// bracketctl.
//
// Non-2xx replies are mapped onto the sentinel errors in errors.go so callers
// can branch with [errors.Is], e.g. [ErrUnauthorized] for an expired token.
package adapter

import (
	"context"
	"io"

	"github.com/mep-tools/bracket-tool/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/api_client_mock.go -package=mock

// APIClient talks to a bracket tool server.
type APIClient interface {
	// SetToken stores the bearer token attached to authenticated requests.
	SetToken(token string)
	// Token returns the stored bearer token, or "".
	Token() string

	Health(ctx context.Context) (models.HealthStatus, error)

	Register(ctx context.Context, req models.RegisterRequest) (models.RegisterResponse, error)
	// Login authenticates and stores the issued token via SetToken.
	Login(ctx context.Context, req models.LoginRequest) (models.TokenResponse, error)

	// ImportLibrary uploads a CSV sheet of the given kind.
	ImportLibrary(ctx context.Context, kind models.LibraryKind, fileName string, content io.Reader) (models.ImportResponse, error)
	// ListLibrary returns the raw JSON items of a library table.
	ListLibrary(ctx context.Context, kind models.LibraryKind) ([]map[string]any, error)

	CreateProject(ctx context.Context, snapshot models.ProjectSnapshot) (string, error)
	ListProjects(ctx context.Context) ([]models.ProjectListItem, error)
	GetProject(ctx context.Context, projectID string) (models.ProjectSnapshot, error)
	UpdateProject(ctx context.Context, projectID string, snapshot models.ProjectSnapshot) (models.ProjectSnapshot, error)
	CheckProject(ctx context.Context, projectID string) (models.CheckResult, error)

	// DownloadPDF issues a new revision and returns its PDF.
	DownloadPDF(ctx context.Context, projectID string) (models.PDFDownload, error)
	ListRevisions(ctx context.Context, projectID string) ([]models.RevisionListItem, error)
}
