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

type UnitService interface {
	List(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.UnitResponse], error)
	GetByID(ctx context.Context, unitID string) (*response.UnitResponse, error)
	Create(ctx context.Context, req *request.UnitRequest) (*response.UnitResponse, error)
	Update(ctx context.Context, unitID string, req *request.UnitUpdateRequest) (*response.UnitResponse, error)
	Delete(ctx context.Context, unitID string) error
}

type unitService struct {
	repo *repository.Repository
	now  func() time.Time
	log  *zap.Logger
}

func NewUnitService(repo *repository.Repository, log *zap.Logger) UnitService {
	return &unitService{
		repo: repo,
		now:  time.Now,
		log:  log.With(zap.String("service", "unit")),
	}
}

func (s *unitService) List(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.UnitResponse], error) {
	units, err := s.repo.Unit.FindAll(ctx, req.Limit(), req.Offset())
	if err != nil {
		return nil, err
	}

	total, err := s.repo.Unit.Count(ctx)
	if err != nil {
		return nil, err
	}

	unitResponses := make([]response.UnitResponse, len(units))
	for i, unit := range units {
		unitResponses[i] = response.UnitToResponse(unit)
	}

	return response.NewPaginatedResponse(unitResponses, req.Page, req.PerPage, total), nil
}

func (s *unitService) GetByID(ctx context.Context, unitID string) (*response.UnitResponse, error) {
	id, err := parseID(unitID)
	if err != nil {
		return nil, err
	}

	unit, err := s.repo.Unit.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if unit == nil {
		return nil, errs.ErrUnitNotFound
	}

	resp := response.UnitToResponse(unit)
	return &resp, nil
}

func (s *unitService) Create(ctx context.Context, req *request.UnitRequest) (*response.UnitResponse, error) {
	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	now := s.now()
	unit := &entity.Unit{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Name:     req.Name,
		IsActive: isActive,
	}

	if err := s.repo.Unit.Create(ctx, unit); err != nil {
		return nil, err
	}

	s.log.Info("Unit created",
		zap.String("unit_id", unit.ID.String()),
		zap.String("name", unit.Name),
	)

	resp := response.UnitToResponse(unit)
	return &resp, nil
}

func (s *unitService) Update(ctx context.Context, unitID string, req *request.UnitUpdateRequest) (*response.UnitResponse, error) {
	id, err := parseID(unitID)
	if err != nil {
		return nil, err
	}

	unit, err := s.repo.Unit.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if unit == nil {
		return nil, errs.ErrUnitNotFound
	}

	if req.Name != nil {
		unit.Name = *req.Name
	}
	if req.IsActive != nil {
		unit.IsActive = *req.IsActive
	}
	unit.UpdatedAt = s.now()

	if err := s.repo.Unit.Update(ctx, unit); err != nil {
		return nil, err
	}

	s.log.Info("Unit updated", zap.String("unit_id", unitID))

	resp := response.UnitToResponse(unit)
	return &resp, nil
}

func (s *unitService) Delete(ctx context.Context, unitID string) error {
	id, err := parseID(unitID)
	if err != nil {
		return err
	}

	unit, err := s.repo.Unit.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if unit == nil {
		return errs.ErrUnitNotFound
	}

	if err := s.repo.Unit.Delete(ctx, id); err != nil {
		return err
	}

	s.log.Info("Unit deleted", zap.String("unit_id", unitID))
	return nil
}
