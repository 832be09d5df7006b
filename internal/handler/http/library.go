// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The MEP Bracket Tool Authors

package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/mep-tools/bracket-tool/internal/app"
	"github.com/mep-tools/bracket-tool/internal/logger"
	"github.com/mep-tools/bracket-tool/internal/utils"
	"github.com/mep-tools/bracket-tool/models"
)

const uploadFormField = "file"

// itemsResponse wraps a library listing; the element type depends on kind.
type itemsResponse struct {
	Items any `json:"items"`
}

func (h *Handler) importLibrary(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	kind := models.LibraryKind(chi.URLParam(r, "kind"))
	if !kind.IsValid() {
		utils.WriteDetail(w, app.MsgUnknownKind, http.StatusNotFound)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadBytes)
	file, header, err := r.FormFile(uploadFormField)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, r, err)
			return
		}
		writeError(w, r, errors.Join(ErrFileRequired, err))
		return
	}
	defer file.Close()

	resp, err := h.services.LibraryService.Import(r.Context(), kind, file)
	if err != nil {
		writeError(w, r, err)
		return
	}

	log.Info().
		Str("kind", kind.String()).
		Str("file", header.Filename).
		Int("inserted", resp.Inserted).
		Msg("library sheet imported")

	utils.WriteJSON(w, resp, http.StatusOK)
}

func (h *Handler) listLibrary(w http.ResponseWriter, r *http.Request) {
	kind := models.LibraryKind(chi.URLParam(r, "kind"))
	if !kind.IsValid() {
		utils.WriteDetail(w, app.MsgUnknownLibraryKind+kind.String(), http.StatusBadRequest)
		return
	}

	items, err := h.services.LibraryService.List(r.Context(), kind)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, itemsResponse{Items: items}, http.StatusOK)
}

func (h *Handler) getLibraryItem(w http.ResponseWriter, r *http.Request) {
	kind := models.LibraryKind(chi.URLParam(r, "kind"))
	if !kind.IsValid() {
		utils.WriteDetail(w, app.MsgUnknownLibraryKind+kind.String(), http.StatusBadRequest)
		return
	}

	id, err := strconv.ParseInt(chi.URLParam(r, "itemID"), 10, 64)
	if err != nil {
		utils.WriteDetail(w, app.MsgNotFound, http.StatusNotFound)
		return
	}

	item, err := h.services.LibraryService.Get(r.Context(), kind, id)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, item, http.StatusOK)
}
