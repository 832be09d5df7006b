package http

import (
	"errors"
	"net/http"

	"github.com/mep-tools/bracket-tool/internal/app"
	"github.com/mep-tools/bracket-tool/internal/importer"
	"github.com/mep-tools/bracket-tool/internal/logger"
	"github.com/mep-tools/bracket-tool/internal/service"
	"github.com/mep-tools/bracket-tool/internal/store"
	"github.com/mep-tools/bracket-tool/internal/utils"
	"github.com/mep-tools/bracket-tool/internal/validators"
)

type errorMapping struct {
	target error
	status int
	// detail is written as-is; empty means err.Error() is shown.
	detail string
}

// errorMappings is searched in order; the first errors.Is match wins.
var errorMappings = []errorMapping{
	{store.ErrEmailAlreadyExists, http.StatusBadRequest, app.MsgEmailAlreadyRegistered},
	{service.ErrInvalidCredentials, http.StatusUnauthorized, app.MsgInvalidCredentials},
	{service.ErrTokenIsExpiredOrInvalid, http.StatusUnauthorized, app.MsgInvalidToken},
	{ErrMissingToken, http.StatusUnauthorized, app.MsgMissingToken},
	{ErrNoUserInContext, http.StatusUnauthorized, app.MsgMissingToken},

	{validators.ErrInvalidInput, http.StatusBadRequest, ""},
	{importer.ErrInvalidCSV, http.StatusBadRequest, ""},
	{ErrFileRequired, http.StatusBadRequest, app.MsgFileRequired},
	{service.ErrUnknownLibraryKind, http.StatusBadRequest, ""},

	{store.ErrProjectNotFound, http.StatusNotFound, app.MsgProjectNotFound},
	{store.ErrRevisionNotFound, http.StatusNotFound, app.MsgRevisionNotFound},
	{store.ErrLibraryItemNotFound, http.StatusNotFound, app.MsgNotFound},
	{store.ErrPDFNotFound, http.StatusNotFound, app.MsgPDFNotFound},

	{service.ErrRevisionRetries, http.StatusConflict, app.MsgRevisionConflict},
	{store.ErrRevisionCodeTaken, http.StatusConflict, app.MsgRevisionConflict},
}

func statusFromError(err error) int {
	status, _ := classifyError(err)
	return status
}

func classifyError(err error) (int, string) {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		return http.StatusRequestEntityTooLarge, app.MsgFileTooLarge
	}

	for _, m := range errorMappings {
		if errors.Is(err, m.target) {
			if m.detail == "" {
				return m.status, err.Error()
			}
			return m.status, m.detail
		}
	}
	return http.StatusInternalServerError, app.MsgInternalServerError
}

// writeError answers with the status and detail mapped from err. Server
// side failures are logged with the full error chain.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status, detail := classifyError(err)

	log := logger.FromRequest(r)
	if status >= http.StatusInternalServerError {
		log.Err(err).Str("path", r.URL.Path).Msg("request failed")
	} else {
		log.Debug().Err(err).Int("status", status).Msg("request rejected")
	}

	utils.WriteDetail(w, detail, status)
}
