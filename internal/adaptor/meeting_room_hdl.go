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

type MeetingRoomHandler struct {
	service usecase.MeetingRoomService
	log     *zap.Logger
}

func NewMeetingRoomHandler(service usecase.MeetingRoomService, log *zap.Logger) *MeetingRoomHandler {
	return &MeetingRoomHandler{
		service: service,
		log:     log.With(zap.String("handler", "meeting_room")),
	}
}

// GetRooms handles GET /api/rooms
func (h *MeetingRoomHandler) GetRooms(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	req := &request.PaginatedRequest{
		Page:    utils.ParseInt(query.Get("page"), 1),
		PerPage: utils.ParseInt(query.Get("per_page"), 10),
	}

	rooms, err := h.service.List(r.Context(), req)
	if err != nil {
		handleServiceError(w, h.log, err, "list meeting rooms")
		return
	}

	utils.ResponseSuccess(w, "success", rooms)
}

// GetRoomByID handles GET /api/rooms/{id}
func (h *MeetingRoomHandler) GetRoomByID(w http.ResponseWriter, r *http.Request) {
	roomID := chi.URLParam(r, "id")

	room, err := h.service.GetByID(r.Context(), roomID)
	if err != nil {
		handleServiceError(w, h.log, err, "get meeting room by ID")
		return
	}

	utils.ResponseSuccess(w, "success", room)
}

// CreateRoom handles POST /api/rooms
func (h *MeetingRoomHandler) CreateRoom(w http.ResponseWriter, r *http.Request) {
	var req request.MeetingRoomRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", errs.CodeMissingRequiredFields, nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		respondInvalidRequest(w, h.log, validationErrors)
		return
	}

	room, err := h.service.Create(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create meeting room")
		return
	}

	utils.ResponseCreated(w, "success", room)
}

// UpdateRoom handles PUT /api/rooms/{id}
func (h *MeetingRoomHandler) UpdateRoom(w http.ResponseWriter, r *http.Request) {
	roomID := chi.URLParam(r, "id")

	var req request.MeetingRoomUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", errs.CodeMissingRequiredFields, nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		respondInvalidRequest(w, h.log, validationErrors)
		return
	}

	room, err := h.service.Update(r.Context(), roomID, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "update meeting room")
		return
	}

	utils.ResponseSuccess(w, "success", room)
}

// DeleteRoom handles DELETE /api/rooms/{id}
func (h *MeetingRoomHandler) DeleteRoom(w http.ResponseWriter, r *http.Request) {
	roomID := chi.URLParam(r, "id")

	if err := h.service.Delete(r.Context(), roomID); err != nil {
		handleServiceError(w, h.log, err, "delete meeting room")
		return
	}

	utils.ResponseSuccess(w, "success", nil)
}
