package adaptor

import (
	"net/http"
	"strings"

	"owner-admin/internal/dto/request"
	"owner-admin/internal/usecase"
	"owner-admin/internal/view"
	"owner-admin/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type OwnerHandler struct {
	service usecase.OwnerService
	view    *view.Renderer
	log     *zap.Logger
}

func NewOwnerHandler(service usecase.OwnerService, renderer *view.Renderer, log *zap.Logger) *OwnerHandler {
	return &OwnerHandler{
		service: service,
		view:    renderer,
		log:     log.With(zap.String("handler", "owner")),
	}
}

// List handles GET /owners
func (h *OwnerHandler) List(w http.ResponseWriter, r *http.Request) {
	owners, err := h.service.ListOwners(r.Context())
	if err != nil {
		h.handleServiceError(w, err, "list owners")
		return
	}

	username, _ := utils.GetUsernameFromContext(r.Context())

	h.view.HTML(w, http.StatusOK, "owners.gohtml", view.OwnersData{
		Username: username,
		Owners:   owners,
	})
}

// ShowCreate handles GET /owner/create
func (h *OwnerHandler) ShowCreate(w http.ResponseWriter, r *http.Request) {
	h.view.HTML(w, http.StatusOK, "owner_create.gohtml", view.OwnerFormData{})
}

// Create handles POST /owner/create
func (h *OwnerHandler) Create(w http.ResponseWriter, r *http.Request) {
	req, ok := h.ownerForm(w, r)
	if !ok {
		return
	}

	if _, err := h.service.CreateOwner(r.Context(), req); err != nil {
		if strings.Contains(err.Error(), "validation failed") {
			h.view.HTML(w, http.StatusBadRequest, "owner_create.gohtml", view.OwnerFormData{
				Error: err.Error(),
			})
			return
		}
		h.handleServiceError(w, err, "create owner")
		return
	}

	utils.SeeOther(w, r, "/owners")
}

// ShowUpdate handles GET /owner/update/{owner_id}
func (h *OwnerHandler) ShowUpdate(w http.ResponseWriter, r *http.Request) {
	id, ok := h.ownerID(w, r)
	if !ok {
		return
	}

	owner, err := h.service.GetOwner(r.Context(), id)
	if err != nil {
		h.handleServiceError(w, err, "get owner")
		return
	}

	h.view.HTML(w, http.StatusOK, "owner_update.gohtml", view.OwnerFormData{Owner: owner})
}

// Update handles POST /owner/update/{owner_id}
func (h *OwnerHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := h.ownerID(w, r)
	if !ok {
		return
	}

	req, ok := h.ownerForm(w, r)
	if !ok {
		return
	}

	if err := h.service.UpdateOwner(r.Context(), id, req); err != nil {
		if strings.Contains(err.Error(), "validation failed") {
			owner, getErr := h.service.GetOwner(r.Context(), id)
			if getErr != nil {
				h.handleServiceError(w, getErr, "get owner")
				return
			}
			h.view.HTML(w, http.StatusBadRequest, "owner_update.gohtml", view.OwnerFormData{
				Owner: owner,
				Error: err.Error(),
			})
			return
		}
		h.handleServiceError(w, err, "update owner")
		return
	}

	utils.SeeOther(w, r, "/owners")
}

// ShowDelete handles GET /owner/delete/{owner_id}
func (h *OwnerHandler) ShowDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := h.ownerID(w, r)
	if !ok {
		return
	}

	owner, err := h.service.GetOwner(r.Context(), id)
	if err != nil {
		h.handleServiceError(w, err, "get owner")
		return
	}

	h.view.HTML(w, http.StatusOK, "owner_delete.gohtml", view.OwnerFormData{Owner: owner})
}

// Delete handles POST /owner/delete/{owner_id}
func (h *OwnerHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := h.ownerID(w, r)
	if !ok {
		return
	}

	if err := h.service.DeleteOwner(r.Context(), id); err != nil {
		h.handleServiceError(w, err, "delete owner")
		return
	}

	utils.SeeOther(w, r, "/owners")
}

// ==================== HELPER METHODS ====================

func (h *OwnerHandler) ownerID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := utils.ParseID(chi.URLParam(r, "owner_id"))
	if err != nil {
		h.view.Error(w, http.StatusNotFound, "Owner not found")
		return 0, false
	}
	return id, true
}

func (h *OwnerHandler) ownerForm(w http.ResponseWriter, r *http.Request) (*request.OwnerForm, bool) {
	if err := r.ParseForm(); err != nil {
		h.view.Error(w, http.StatusBadRequest, "Invalid form submission")
		return nil, false
	}

	return &request.OwnerForm{
		FirstName:   r.PostFormValue("first_name"),
		LastName:    r.PostFormValue("last_name"),
		PhoneNumber: r.PostFormValue("phone_number"),
		Email:       r.PostFormValue("email"),
	}, true
}

// handleServiceError maps service errors to an HTML error page
func (h *OwnerHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
	errMsg := err.Error()

	switch {
	case strings.Contains(errMsg, "not found"):
		h.log.Warn(operation+" failed - not found", zap.Error(err))
		h.view.Error(w, http.StatusNotFound, "Owner not found")

	default:
		h.log.Error("Failed to "+operation, zap.Error(err))
		h.view.Error(w, http.StatusInternalServerError, "Internal server error")
	}
}
