package store

import (
	"context"
	"io"

	"github.com/mep-tools/bracket-tool/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository persists engineer accounts.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
}

// ProjectRepository persists projects and their current snapshot. Every
// lookup is scoped to the owning user.
type ProjectRepository interface {
	CreateProject(ctx context.Context, project models.Project) (models.Project, error)
	UpdateSnapshot(ctx context.Context, project models.Project) (models.Project, error)
	GetProject(ctx context.Context, ownerID int64, projectID string) (models.Project, error)
	ListProjects(ctx context.Context, ownerID int64) ([]models.ProjectListItem, error)
}

// RevisionRepository persists the immutable revision history.
type RevisionRepository interface {
	// CountRevisions returns how many revisions the project has.
	CountRevisions(ctx context.Context, projectID string) (int, error)

	// CreateRevision inserts rev and bumps the project's updated_at in one
	// transaction. A clash on (project_id, revision_code) returns
	// [ErrRevisionCodeTaken]. persist, when set, runs inside the transaction
	// after the insert; an error from it rolls the revision back.
	CreateRevision(ctx context.Context, rev models.Revision, persist func(ctx context.Context) error) (models.Revision, error)

	ListRevisions(ctx context.Context, projectID string) ([]models.RevisionListItem, error)
	GetRevision(ctx context.Context, projectID, code string) (models.Revision, error)

	// ListStoredPDFs returns every revision's report location for audits.
	ListStoredPDFs(ctx context.Context) ([]models.StoredPDF, error)
}

// LibraryRepository persists imported manufacturer library rows.
type LibraryRepository interface {
	InsertProfiles(ctx context.Context, items []models.Profile) (int, error)
	InsertRods(ctx context.Context, items []models.Rod) (int, error)
	InsertWashers(ctx context.Context, items []models.Washer) (int, error)
	InsertAnchors(ctx context.Context, items []models.Anchor) (int, error)

	ListProfiles(ctx context.Context) ([]models.Profile, error)
	ListRods(ctx context.Context) ([]models.Rod, error)
	ListWashers(ctx context.Context) ([]models.Washer, error)
	ListAnchors(ctx context.Context) ([]models.Anchor, error)

	// GetItem returns one row of the kind by its numeric id.
	GetItem(ctx context.Context, kind models.LibraryKind, id int64) (any, error)

	FindProfile(ctx context.Context, key models.LibraryKey) (*models.Profile, error)
	FindWasher(ctx context.Context, key models.LibraryKey) (*models.Washer, error)
	FindAnchor(ctx context.Context, key models.LibraryKey) (*models.Anchor, error)
}

// PDFStore keeps rendered report files. Paths are opaque to callers and
// are what revisions record as pdf_path.
type PDFStore interface {
	// Path returns the location Save will write fileName to.
	Path(fileName string) (string, error)
	Save(ctx context.Context, fileName string, content []byte) (string, error)
	Open(ctx context.Context, path string) (io.ReadCloser, error)
}
