package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/pharmabolt/pharmabolt-api/internal/api/shared"
	"github.com/pharmabolt/pharmabolt-api/internal/domain"
	"github.com/pharmabolt/pharmabolt-api/internal/store"
)

// DrugHandler handles the drug CRUD endpoints.
type DrugHandler struct {
	drugStore store.DrugStore
	validator *validator.Validate
}

// NewDrugHandler creates a new DrugHandler with the given dependencies.
func NewDrugHandler(drugStore store.DrugStore) *DrugHandler {
	return &DrugHandler{
		drugStore: drugStore,
		validator: NewValidator(),
	}
}

// List handles GET /api/drugs. Pagination parameters are lenient:
// anything unusable falls back to limit 50, offset 0.
func (h *DrugHandler) List(w http.ResponseWriter, r *http.Request) {
	limit, offset := parseListParams(r)

	drugs, err := h.drugStore.List(r.Context(), limit, offset)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r,
			http.StatusInternalServerError, "Internal Server Error", err)
		return
	}

	shared.RespondWithData(w, r, http.StatusOK, drugs)
}

// Get handles GET /api/drugs/{id}.
func (h *DrugHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(r)
	if !ok {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid ID format")
		return
	}

	drug, err := h.drugStore.GetByID(r.Context(), id)
	if err != nil {
		h.respondDrugError(w, r, id, nil, err)
		return
	}

	shared.RespondWithData(w, r, http.StatusOK, drug)
}

// Create handles POST /api/drugs (admin only).
func (h *DrugHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateDrugRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithValidationErrors(w, r, ValidationMessages(err))
		return
	}

	drug := &domain.Drug{
		Name:        req.Name,
		Description: req.Description,
		Price:       *req.Price,
		Stock:       *req.Stock,
	}

	created, err := h.drugStore.Create(r.Context(), drug)
	if err != nil {
		h.respondDrugError(w, r, 0, &req.Name, err)
		return
	}

	shared.RespondWithData(w, r, http.StatusOK, created)
}

// Update handles PUT /api/drugs/{id} (admin only). Only fields present
// in the body are touched; an empty body is rejected.
func (h *DrugHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(r)
	if !ok {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid ID format")
		return
	}

	var req UpdateDrugRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithValidationErrors(w, r, ValidationMessages(err))
		return
	}

	updated, err := h.drugStore.Update(r.Context(), id, req.Patch())
	if err != nil {
		h.respondDrugError(w, r, id, req.Name, err)
		return
	}

	shared.RespondWithData(w, r, http.StatusOK, updated)
}

// Delete handles DELETE /api/drugs/{id} (admin only). The deleted row
// is echoed back as confirmation.
func (h *DrugHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(r)
	if !ok {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid ID format")
		return
	}

	deleted, err := h.drugStore.Delete(r.Context(), id)
	if err != nil {
		h.respondDrugError(w, r, id, nil, err)
		return
	}

	shared.RespondWithData(w, r, http.StatusOK, deleted)
}

// respondDrugError translates store errors into the drug endpoints'
// resource-specific messages. name is non-nil only on paths where a
// duplicate name is possible.
func (h *DrugHandler) respondDrugError(w http.ResponseWriter, r *http.Request, id int64, name *string, err error) {
	switch {
	case errors.Is(err, store.ErrDrugNotFound):
		shared.RespondWithError(w, r, http.StatusNotFound,
			fmt.Sprintf("No drug with id %d was found", id))
	case errors.Is(err, store.ErrDrugNameExists) && name != nil:
		shared.RespondWithError(w, r, http.StatusBadRequest,
			fmt.Sprintf("Drug with name %s already exists.", *name))
	case errors.Is(err, store.ErrEmptyPatch):
		shared.RespondWithError(w, r, http.StatusBadRequest, "No fields to update.")
	default:
		shared.RespondWithErrorAndLog(w, r,
			MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
	}
}
