package store

import (
	"context"
	"fmt"

	"github.com/mep-tools/bracket-tool/internal/config"
	"github.com/mep-tools/bracket-tool/internal/logger"
)

// Storages groups every repository and the report store so they can be
// handed to the service layer as one value.
type Storages struct {
	DB                 *DB
	UserRepository     UserRepository
	ProjectRepository  ProjectRepository
	RevisionRepository RevisionRepository
	LibraryRepository  LibraryRepository
	PDFStore           PDFStore
}

// NewStorages connects to the database, applies migrations and builds the
// repositories together with the configured PDF store.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	db, err := Connect(ctx, cfg.DB, log)
	if err != nil {
		return nil, fmt.Errorf("error connecting to database: %w", err)
	}

	if err = db.Migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("error migrating database: %w", err)
	}
	log.Info().Str("dialect", db.Dialect()).Msg("database migrated")

	pdfs, err := NewPDFStore(ctx, cfg.PDF, log)
	if err != nil {
		db.Close()
		return nil, err
	}

	return &Storages{
		DB:                 db,
		UserRepository:     NewUserRepository(db, log),
		ProjectRepository:  NewProjectRepository(db, log),
		RevisionRepository: NewRevisionRepository(db, log),
		LibraryRepository:  NewLibraryRepository(db, log),
		PDFStore:           pdfs,
	}, nil
}

// NewPDFStore returns the report store selected by cfg.Store.
func NewPDFStore(ctx context.Context, cfg config.PDF, log *logger.Logger) (PDFStore, error) {
	switch cfg.Store {
	case config.PDFStoreS3:
		return NewS3PDFStore(ctx, cfg.S3Bucket, cfg.S3Region, cfg.S3Endpoint, log)
	case config.PDFStoreLocal, "":
		return NewLocalPDFStore(cfg.OutputDir, log)
	default:
		return nil, fmt.Errorf("unknown pdf store %q", cfg.Store)
	}
}

// Close releases the database pool.
func (s *Storages) Close() error {
	return s.DB.Close()
}
