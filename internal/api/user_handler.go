package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/pharmabolt/pharmabolt-api/internal/api/middleware"
	"github.com/pharmabolt/pharmabolt-api/internal/api/shared"
	"github.com/pharmabolt/pharmabolt-api/internal/store"
)

// UserHandler handles the user management endpoints.
type UserHandler struct {
	userStore store.UserStore
	validator *validator.Validate
}

// NewUserHandler creates a new UserHandler with the given dependencies.
func NewUserHandler(userStore store.UserStore) *UserHandler {
	return &UserHandler{
		userStore: userStore,
		validator: NewValidator(),
	}
}

// List handles GET /api/users (admin only). Password hashes are
// excluded by the domain type's JSON tags.
func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	users, err := h.userStore.List(r.Context())
	if err != nil {
		shared.RespondWithErrorAndLog(w, r,
			http.StatusInternalServerError, "Internal Server Error", err)
		return
	}

	shared.RespondWithData(w, r, http.StatusOK, users)
}

// UpdateSelf handles PUT /api/users/update. The target is always the
// authenticated user; the role field is discarded so users cannot
// promote themselves.
func (h *UserHandler) UpdateSelf(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.GetClaims(r)
	if !ok {
		shared.RespondWithAuthError(w, r, http.StatusUnauthorized, "Invalid authentication token")
		return
	}

	h.applyUpdate(w, r, claims.UserID, false)
}

// UpdateByID handles PUT /api/users/{id} (admin only). Unlike the
// self-edit path, role changes are allowed here.
func (h *UserHandler) UpdateByID(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(r)
	if !ok {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid ID format")
		return
	}

	h.applyUpdate(w, r, id, true)
}

func (h *UserHandler) applyUpdate(w http.ResponseWriter, r *http.Request, id int64, allowRole bool) {
	var req UpdateUserRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithValidationErrors(w, r, ValidationMessages(err))
		return
	}

	updated, err := h.userStore.Update(r.Context(), id, req.Patch(allowRole))
	if err != nil {
		h.respondUserError(w, r, id, req.Email, err)
		return
	}

	shared.RespondWithData(w, r, http.StatusOK, updated)
}

// Delete handles DELETE /api/users/{id} (admin only). The deleted row
// is echoed back as confirmation.
func (h *UserHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(r)
	if !ok {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid ID format")
		return
	}

	deleted, err := h.userStore.Delete(r.Context(), id)
	if err != nil {
		h.respondUserError(w, r, id, nil, err)
		return
	}

	shared.RespondWithData(w, r, http.StatusOK, deleted)
}

// respondUserError translates store errors into the user endpoints'
// resource-specific messages. email is non-nil only when the request
// attempted to change it.
func (h *UserHandler) respondUserError(w http.ResponseWriter, r *http.Request, id int64, email *string, err error) {
	switch {
	case errors.Is(err, store.ErrUserNotFound):
		shared.RespondWithError(w, r, http.StatusNotFound,
			fmt.Sprintf("No user with id %d was found", id))
	case errors.Is(err, store.ErrEmailExists) && email != nil:
		shared.RespondWithError(w, r, http.StatusBadRequest,
			fmt.Sprintf("User with email %s already exists.", *email))
	case errors.Is(err, store.ErrEmptyPatch):
		shared.RespondWithError(w, r, http.StatusBadRequest, "No fields to update.")
	default:
		shared.RespondWithErrorAndLog(w, r,
			MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
	}
}
