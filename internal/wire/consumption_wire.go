package wire

import (
	"room-booking/internal/adaptor"
	"room-booking/internal/data/repository"
	"room-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireConsumption(
	r chi.Router,
	consumptionHandler *adaptor.ConsumptionHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	r.Route("/api/consumptions", func(r chi.Router) {
		r.Get("/", consumptionHandler.GetConsumptions)          // GET /api/consumptions?active=true
		r.Get("/{id}", consumptionHandler.GetConsumptionByID)   // GET /api/consumptions/{id}
		r.Post("/", consumptionHandler.CreateConsumption)       // POST /api/consumptions
		r.Put("/{id}", consumptionHandler.UpdateConsumption)    // PUT /api/consumptions/{id}
		r.Delete("/{id}", consumptionHandler.DeleteConsumption) // DELETE /api/consumptions/{id}
	})
}
