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

type ConsumptionHandler struct {
	service usecase.ConsumptionService
	log     *zap.Logger
}

func NewConsumptionHandler(service usecase.ConsumptionService, log *zap.Logger) *ConsumptionHandler {
	return &ConsumptionHandler{
		service: service,
		log:     log.With(zap.String("handler", "consumption")),
	}
}

// GetConsumptions handles GET /api/consumptions
// ?active=true narrows to items currently selectable on new bookings.
func (h *ConsumptionHandler) GetConsumptions(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	if query.Get("active") == "true" {
		consumptions, err := h.service.ListActive(r.Context())
		if err != nil {
			handleServiceError(w, h.log, err, "list active consumptions")
			return
		}
		utils.ResponseSuccess(w, "success", consumptions)
		return
	}

	req := &request.PaginatedRequest{
		Page:    utils.ParseInt(query.Get("page"), 1),
		PerPage: utils.ParseInt(query.Get("per_page"), 10),
	}

	consumptions, err := h.service.List(r.Context(), req)
	if err != nil {
		handleServiceError(w, h.log, err, "list consumptions")
		return
	}

	utils.ResponseSuccess(w, "success", consumptions)
}

// GetConsumptionByID handles GET /api/consumptions/{id}
func (h *ConsumptionHandler) GetConsumptionByID(w http.ResponseWriter, r *http.Request) {
	consumptionID := chi.URLParam(r, "id")

	consumption, err := h.service.GetByID(r.Context(), consumptionID)
	if err != nil {
		handleServiceError(w, h.log, err, "get consumption by ID")
		return
	}

	utils.ResponseSuccess(w, "success", consumption)
}

// CreateConsumption handles POST /api/consumptions
func (h *ConsumptionHandler) CreateConsumption(w http.ResponseWriter, r *http.Request) {
	var req request.ConsumptionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", errs.CodeMissingRequiredFields, nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		respondInvalidRequest(w, h.log, validationErrors)
		return
	}

	consumption, err := h.service.Create(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create consumption")
		return
	}

	utils.ResponseCreated(w, "success", consumption)
}

// UpdateConsumption handles PUT /api/consumptions/{id}
func (h *ConsumptionHandler) UpdateConsumption(w http.ResponseWriter, r *http.Request) {
	consumptionID := chi.URLParam(r, "id")

	var req request.ConsumptionUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", errs.CodeMissingRequiredFields, nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		respondInvalidRequest(w, h.log, validationErrors)
		return
	}

	consumption, err := h.service.Update(r.Context(), consumptionID, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "update consumption")
		return
	}

	utils.ResponseSuccess(w, "success", consumption)
}

// DeleteConsumption handles DELETE /api/consumptions/{id}
func (h *ConsumptionHandler) DeleteConsumption(w http.ResponseWriter, r *http.Request) {
	consumptionID := chi.URLParam(r, "id")

	if err := h.service.Delete(r.Context(), consumptionID); err != nil {
		handleServiceError(w, h.log, err, "delete consumption")
		return
	}

	utils.ResponseSuccess(w, "success", nil)
}
