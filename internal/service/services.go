package service

import (
	"github.com/mep-tools/bracket-tool/internal/config"
	"github.com/mep-tools/bracket-tool/internal/crypto"
	"github.com/mep-tools/bracket-tool/internal/logger"
	"github.com/mep-tools/bracket-tool/internal/report"
	"github.com/mep-tools/bracket-tool/internal/store"
	"github.com/mep-tools/bracket-tool/internal/validators"
)

type Services struct {
	AuthService    AuthService
	LibraryService LibraryService
	ProjectService ProjectService
	ReportService  ReportService
	AppInfoService AppInfoService
	AuditService   AuditService
}

func NewServices(storages *store.Storages, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	validator := validators.NewRequestValidator()

	appInfo, err := NewAppInfoService(cfg.App, storages.DB, logger)
	if err != nil {
		return nil, err
	}

	library := NewLibraryService(storages.LibraryRepository, logger)
	projects := NewProjectValidationService(validator).Wrap(
		NewProjectService(storages.ProjectRepository, library, logger),
	)

	return &Services{
		AuthService:    NewAuthService(storages.UserRepository, crypto.NewPasswordHasher(), validator, cfg.Auth, logger),
		LibraryService: library,
		ProjectService: projects,
		ReportService: NewReportService(
			storages.ProjectRepository,
			storages.RevisionRepository,
			storages.PDFStore,
			library,
			report.NewRenderer(),
			cfg.App.Version,
			logger,
		),
		AppInfoService: appInfo,
		AuditService:   NewAuditService(storages.RevisionRepository, storages.PDFStore, logger),
	}, nil
}
