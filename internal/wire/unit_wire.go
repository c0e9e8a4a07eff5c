package wire

import (
	"room-booking/internal/adaptor"
	"room-booking/internal/data/repository"
	"room-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireUnit(
	r chi.Router,
	unitHandler *adaptor.UnitHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	r.Route("/api/units", func(r chi.Router) {
		r.Get("/", unitHandler.GetUnits)          // GET /api/units?page=1&per_page=10
		r.Get("/{id}", unitHandler.GetUnitByID)   // GET /api/units/{id}
		r.Post("/", unitHandler.CreateUnit)       // POST /api/units
		r.Put("/{id}", unitHandler.UpdateUnit)    // PUT /api/units/{id}
		r.Delete("/{id}", unitHandler.DeleteUnit) // DELETE /api/units/{id}
	})
}
