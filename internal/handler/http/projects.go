package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/mep-tools/bracket-tool/internal/utils"
	"github.com/mep-tools/bracket-tool/models"
)

// currentUser returns the user stored by the auth middleware.
func currentUser(r *http.Request) (models.User, error) {
	ctx := r.Context()
	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		return models.User{}, ErrNoUserInContext
	}
	email, _ := utils.GetEmailFromContext(ctx)
	return models.User{UserID: userID, Email: email}, nil
}

func (h *Handler) createProject(w http.ResponseWriter, r *http.Request) {
	user, err := currentUser(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var snapshot models.ProjectSnapshot
	if !decodeJSON(w, r, &snapshot) {
		return
	}

	project, err := h.services.ProjectService.CreateProject(r.Context(), user.UserID, snapshot)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.CreatedResponse{ID: project.ID}, http.StatusCreated)
}

func (h *Handler) listProjects(w http.ResponseWriter, r *http.Request) {
	user, err := currentUser(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	items, err := h.services.ProjectService.ListProjects(r.Context(), user.UserID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.ItemsResponse[models.ProjectListItem]{Items: items}, http.StatusOK)
}

// getProject answers with the current snapshot, the same document the
// client sent on create or update.
func (h *Handler) getProject(w http.ResponseWriter, r *http.Request) {
	user, err := currentUser(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	project, err := h.services.ProjectService.GetProject(r.Context(), user.UserID, chi.URLParam(r, "projectID"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, project.Snapshot, http.StatusOK)
}

func (h *Handler) updateProject(w http.ResponseWriter, r *http.Request) {
	user, err := currentUser(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var snapshot models.ProjectSnapshot
	if !decodeJSON(w, r, &snapshot) {
		return
	}

	project, err := h.services.ProjectService.UpdateProject(r.Context(), user.UserID, chi.URLParam(r, "projectID"), snapshot)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, project.Snapshot, http.StatusOK)
}

func (h *Handler) checkProject(w http.ResponseWriter, r *http.Request) {
	user, err := currentUser(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	result, err := h.services.ProjectService.CheckProject(r.Context(), user.UserID, chi.URLParam(r, "projectID"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, result, http.StatusOK)
}
