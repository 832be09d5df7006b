package http

import (
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/mep-tools/bracket-tool/internal/logger"
	"github.com/mep-tools/bracket-tool/internal/utils"
	"github.com/mep-tools/bracket-tool/models"
)

const (
	contentTypePDF     = "application/pdf"
	revisionCodeHeader = "X-Revision-Code"
	pdfSHA256Header    = "X-PDF-SHA256"
)

func setAttachmentHeaders(w http.ResponseWriter, fileName string) {
	w.Header().Set("Content-Type", contentTypePDF)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", fileName))
}

// projectPDF issues a new revision and answers with its PDF.
func (h *Handler) projectPDF(w http.ResponseWriter, r *http.Request) {
	user, err := currentUser(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	rep, err := h.services.ReportService.GenerateReport(r.Context(), user, chi.URLParam(r, "projectID"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	setAttachmentHeaders(w, rep.FileName)
	w.Header().Set("Content-Length", strconv.Itoa(len(rep.Content)))
	w.Header().Set(revisionCodeHeader, rep.Revision.RevisionCode)
	w.Header().Set(pdfSHA256Header, rep.Revision.PDFSHA256)
	w.WriteHeader(http.StatusOK)

	if _, err = w.Write(rep.Content); err != nil {
		logger.FromRequest(r).Err(err).Msg("error writing pdf response")
	}
}

func (h *Handler) listRevisions(w http.ResponseWriter, r *http.Request) {
	user, err := currentUser(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	items, err := h.services.ReportService.ListRevisions(r.Context(), user.UserID, chi.URLParam(r, "projectID"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.ItemsResponse[models.RevisionListItem]{Items: items}, http.StatusOK)
}

func (h *Handler) getRevision(w http.ResponseWriter, r *http.Request) {
	user, err := currentUser(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	rev, err := h.services.ReportService.GetRevision(r.Context(), user.UserID, chi.URLParam(r, "projectID"), chi.URLParam(r, "code"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, rev, http.StatusOK)
}

// revisionPDF streams a previously issued report byte for byte.
func (h *Handler) revisionPDF(w http.ResponseWriter, r *http.Request) {
	user, err := currentUser(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	code := chi.URLParam(r, "code")
	rc, fileName, err := h.services.ReportService.OpenRevisionPDF(r.Context(), user.UserID, chi.URLParam(r, "projectID"), code)
	if err != nil {
		writeError(w, r, err)
		return
	}
	defer rc.Close()

	setAttachmentHeaders(w, fileName)
	w.Header().Set(revisionCodeHeader, code)
	w.WriteHeader(http.StatusOK)

	if _, err = io.Copy(w, rc); err != nil {
		logger.FromRequest(r).Err(err).Msg("error streaming stored pdf")
	}
}
