package wire

import (
	"room-booking/internal/adaptor"
	"room-booking/internal/data/repository"
	"room-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireMeetingRoom(
	r chi.Router,
	roomHandler *adaptor.MeetingRoomHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	r.Route("/api/rooms", func(r chi.Router) {
		r.Get("/", roomHandler.GetRooms)            // GET /api/rooms?page=1&per_page=10
		r.Get("/{id}", roomHandler.GetRoomByID)     // GET /api/rooms/{id}
		r.Post("/", roomHandler.CreateRoom)         // POST /api/rooms
		r.Put("/{id}", roomHandler.UpdateRoom)      // PUT /api/rooms/{id}
		r.Delete("/{id}", roomHandler.DeleteRoom)   // DELETE /api/rooms/{id}
	})
}
