package usecase

import (
	"context"
	"time"

	"room-booking/internal/data/entity"
	"room-booking/internal/data/repository"
	"room-booking/internal/dto/request"
	"room-booking/internal/dto/response"
	"room-booking/internal/errs"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type ConsumptionService interface {
	List(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.ConsumptionResponse], error)
	ListActive(ctx context.Context) ([]response.ConsumptionResponse, error)
	GetByID(ctx context.Context, consumptionID string) (*response.ConsumptionResponse, error)
	Create(ctx context.Context, req *request.ConsumptionRequest) (*response.ConsumptionResponse, error)
	Update(ctx context.Context, consumptionID string, req *request.ConsumptionUpdateRequest) (*response.ConsumptionResponse, error)
	Delete(ctx context.Context, consumptionID string) error
}

type consumptionService struct {
	repo *repository.Repository
	now  func() time.Time
	log  *zap.Logger
}

func NewConsumptionService(repo *repository.Repository, log *zap.Logger) ConsumptionService {
	return &consumptionService{
		repo: repo,
		now:  time.Now,
		log:  log.With(zap.String("service", "consumption")),
	}
}

func (s *consumptionService) List(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.ConsumptionResponse], error) {
	consumptions, err := s.repo.Consumption.FindAll(ctx, req.Limit(), req.Offset())
	if err != nil {
		return nil, err
	}

	total, err := s.repo.Consumption.Count(ctx)
	if err != nil {
		return nil, err
	}

	consumptionResponses := make([]response.ConsumptionResponse, len(consumptions))
	for i, consumption := range consumptions {
		consumptionResponses[i] = response.ConsumptionToResponse(consumption)
	}

	return response.NewPaginatedResponse(consumptionResponses, req.Page, req.PerPage, total), nil
}

func (s *consumptionService) ListActive(ctx context.Context) ([]response.ConsumptionResponse, error) {
	consumptions, err := s.repo.Consumption.FindAllActive(ctx)
	if err != nil {
		return nil, err
	}

	consumptionResponses := make([]response.ConsumptionResponse, len(consumptions))
	for i, consumption := range consumptions {
		consumptionResponses[i] = response.ConsumptionToResponse(consumption)
	}

	return consumptionResponses, nil
}

func (s *consumptionService) GetByID(ctx context.Context, consumptionID string) (*response.ConsumptionResponse, error) {
	id, err := parseID(consumptionID)
	if err != nil {
		return nil, err
	}

	consumption, err := s.repo.Consumption.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if consumption == nil {
		return nil, errs.ErrConsumptionNotFound
	}

	resp := response.ConsumptionToResponse(consumption)
	return &resp, nil
}

func (s *consumptionService) Create(ctx context.Context, req *request.ConsumptionRequest) (*response.ConsumptionResponse, error) {
	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	now := s.now()
	consumption := &entity.Consumption{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Name:     req.Name,
		IsActive: isActive,
	}

	if err := s.repo.Consumption.Create(ctx, consumption); err != nil {
		return nil, err
	}

	s.log.Info("Consumption created",
		zap.String("consumption_id", consumption.ID.String()),
		zap.String("name", consumption.Name),
	)

	resp := response.ConsumptionToResponse(consumption)
	return &resp, nil
}

func (s *consumptionService) Update(ctx context.Context, consumptionID string, req *request.ConsumptionUpdateRequest) (*response.ConsumptionResponse, error) {
	id, err := parseID(consumptionID)
	if err != nil {
		return nil, err
	}

	consumption, err := s.repo.Consumption.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if consumption == nil {
		return nil, errs.ErrConsumptionNotFound
	}

	if req.Name != nil {
		consumption.Name = *req.Name
	}
	if req.IsActive != nil {
		consumption.IsActive = *req.IsActive
	}
	consumption.UpdatedAt = s.now()

	if err := s.repo.Consumption.Update(ctx, consumption); err != nil {
		return nil, err
	}

	s.log.Info("Consumption updated", zap.String("consumption_id", consumptionID))

	resp := response.ConsumptionToResponse(consumption)
	return &resp, nil
}

func (s *consumptionService) Delete(ctx context.Context, consumptionID string) error {
	id, err := parseID(consumptionID)
	if err != nil {
		return err
	}

	consumption, err := s.repo.Consumption.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if consumption == nil {
		return errs.ErrConsumptionNotFound
	}

	if err := s.repo.Consumption.Delete(ctx, id); err != nil {
		return err
	}

	s.log.Info("Consumption deleted", zap.String("consumption_id", consumptionID))
	return nil
}
