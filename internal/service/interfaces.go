package service

import (
	"context"
	"io"

	"github.com/mep-tools/bracket-tool/internal/report"
	"github.com/mep-tools/bracket-tool/models"
)

type AuthService interface {
	RegisterUser(ctx context.Context, req models.RegisterRequest) (models.User, error)
	Login(ctx context.Context, req models.LoginRequest) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

type LibraryService interface {
	// Import decodes a CSV sheet of the given kind and stores its rows.
	Import(ctx context.Context, kind models.LibraryKind, r io.Reader) (models.ImportResponse, error)

	// List returns every row of kind as a typed slice ([]models.Profile, ...).
	List(ctx context.Context, kind models.LibraryKind) (any, error)
	Get(ctx context.Context, kind models.LibraryKind, id int64) (any, error)

	// Resolve looks up the parts selected on bracket and the rod capacities.
	Resolve(ctx context.Context, bracket models.BracketConfig) (models.LibrarySelection, error)
}

type ProjectService interface {
	CreateProject(ctx context.Context, ownerID int64, snapshot models.ProjectSnapshot) (models.Project, error)
	UpdateProject(ctx context.Context, ownerID int64, projectID string, snapshot models.ProjectSnapshot) (models.Project, error)
	GetProject(ctx context.Context, ownerID int64, projectID string) (models.Project, error)
	ListProjects(ctx context.Context, ownerID int64) ([]models.ProjectListItem, error)
	CheckProject(ctx context.Context, ownerID int64, projectID string) (models.CheckResult, error)
}

// ProjectServiceWrapper defines middleware composition for ProjectService.
// Implementations wrap an existing ProjectService to add behavior such as
// validating.
type ProjectServiceWrapper interface {
	Wrap(ProjectService) ProjectService
}

type ReportService interface {
	// GenerateReport renders the current snapshot, stores the PDF and
	// records it as the next revision.
	GenerateReport(ctx context.Context, user models.User, projectID string) (models.Report, error)

	ListRevisions(ctx context.Context, ownerID int64, projectID string) ([]models.RevisionListItem, error)
	GetRevision(ctx context.Context, ownerID int64, projectID, code string) (models.Revision, error)

	// OpenRevisionPDF streams the stored PDF of a revision unchanged.
	OpenRevisionPDF(ctx context.Context, ownerID int64, projectID, code string) (io.ReadCloser, string, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	Health(ctx context.Context) models.HealthStatus
}

type AuditService interface {
	// AuditPDFs re-hashes every stored report and counts missing or
	// modified files.
	AuditPDFs(ctx context.Context) (models.AuditSummary, error)
}

// PDFRenderer turns a report document into PDF bytes.
type PDFRenderer interface {
	Render(doc report.Document) ([]byte, error)
}
