package adaptor

import (
	"encoding/json"
	"net/http"

	"room-booking/internal/dto/request"
	"room-booking/internal/errs"
	"room-booking/internal/usecase"
	"room-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type UnitHandler struct {
	service usecase.UnitService
	log     *zap.Logger
}

func NewUnitHandler(service usecase.UnitService, log *zap.Logger) *UnitHandler {
	return &UnitHandler{
		service: service,
		log:     log.With(zap.String("handler", "unit")),
	}
}

// GetUnits handles GET /api/units
func (h *UnitHandler) GetUnits(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	req := &request.PaginatedRequest{
		Page:    utils.ParseInt(query.Get("page"), 1),
		PerPage: utils.ParseInt(query.Get("per_page"), 10),
	}

	units, err := h.service.List(r.Context(), req)
	if err != nil {
		handleServiceError(w, h.log, err, "list units")
		return
	}

	utils.ResponseSuccess(w, "success", units)
}

// GetUnitByID handles GET /api/units/{id}
func (h *UnitHandler) GetUnitByID(w http.ResponseWriter, r *http.Request) {
	unitID := chi.URLParam(r, "id")

	unit, err := h.service.GetByID(r.Context(), unitID)
	if err != nil {
		handleServiceError(w, h.log, err, "get unit by ID")
		return
	}

	utils.ResponseSuccess(w, "success", unit)
}

// CreateUnit handles POST /api/units
func (h *UnitHandler) CreateUnit(w http.ResponseWriter, r *http.Request) {
	var req request.UnitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", errs.CodeMissingRequiredFields, nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		respondInvalidRequest(w, h.log, validationErrors)
		return
	}

	unit, err := h.service.Create(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create unit")
		return
	}

	utils.ResponseCreated(w, "success", unit)
}

// UpdateUnit handles PUT /api/units/{id}
func (h *UnitHandler) UpdateUnit(w http.ResponseWriter, r *http.Request) {
	unitID := chi.URLParam(r, "id")

	var req request.UnitUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", errs.CodeMissingRequiredFields, nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		respondInvalidRequest(w, h.log, validationErrors)
		return
	}

	unit, err := h.service.Update(r.Context(), unitID, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "update unit")
		return
	}

	utils.ResponseSuccess(w, "success", unit)
}

// DeleteUnit handles DELETE /api/units/{id}
func (h *UnitHandler) DeleteUnit(w http.ResponseWriter, r *http.Request) {
	unitID := chi.URLParam(r, "id")

	if err := h.service.Delete(r.Context(), unitID); err != nil {
		handleServiceError(w, h.log, err, "delete unit")
		return
	}

	utils.ResponseSuccess(w, "success", nil)
}
