package service

import (
	"context"
	"time"

	apperr "github.com/esterhugosson/Shareyoutravels-backend/internal/errors"
	"github.com/esterhugosson/Shareyoutravels-backend/internal/travel/domain"
	"github.com/esterhugosson/Shareyoutravels-backend/internal/travel/dto"
	"github.com/google/uuid"
)

type TravelService struct {
	repo domain.TravelRepository
}

func NewTravelService(repo domain.TravelRepository) *TravelService {
	return &TravelService{repo: repo}
}

// GetOwned is the ownership guard: it loads the travel and checks the owner
// in one step. Absent travels yield ErrTravelNotFound, travels owned by
// someone else ErrNotOwner. Every mutating travel operation and every place
// operation resolves authorization through here.
func (s *TravelService) GetOwned(ctx context.Context, travelID, userID string) (*domain.Travel, error) {
	travel, err := s.repo.GetByID(ctx, travelID)
	if err != nil {
		return nil, err
	}

	if travel == nil {
		return nil, apperr.ErrTravelNotFound
	}

	if !travel.OwnedBy(userID) {
		return nil, apperr.ErrNotOwner
	}

	return travel, nil
}

func (s *TravelService) ListMine(ctx context.Context, userID string) ([]domain.Travel, error) {
	travels, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	if len(travels) == 0 {
		return nil, apperr.ErrTravelNotFound
	}

	return travels, nil
}

func (s *TravelService) ListPublic(ctx context.Context) ([]domain.Travel, error) {
	travels, err := s.repo.ListPublic(ctx)
	if err != nil {
		return nil, err
	}

	if len(travels) == 0 {
		return nil, apperr.ErrTravelNotFound
	}

	return travels, nil
}

func (s *TravelService) Create(ctx context.Context, userID string, input dto.CreateTravelInput) (*domain.Travel, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	now := time.Now()

	travel := &domain.Travel{
		ID:          uuid.New().String(),
		UserID:      userID,
		Destination: input.Destination,
		Transport:   domain.Transport(input.Transport),
		Notes:       input.Notes,
		StartDate:   input.StartDate,
		EndDate:     input.EndDate,
		Location:    domain.Location{Lat: input.Location.Lat, Lng: input.Location.Lng},
		IsPublic:    input.IsPublic,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.repo.Create(ctx, travel); err != nil {
		return nil, err
	}

	return travel, nil
}

func (s *TravelService) Update(ctx context.Context, travelID, userID string, input dto.UpdateTravelInput) (*domain.Travel, error) {
	travel, err := s.GetOwned(ctx, travelID, userID)
	if err != nil {
		return nil, err
	}

	if err := input.Apply(travel); err != nil {
		return nil, err
	}

	travel.UpdatedAt = time.Now()

	if err := s.repo.Update(ctx, travel); err != nil {
		return nil, err
	}

	return travel, nil
}

// Delete removes the travel and, via the repository's transaction, all of
// its places in one atomic step.
func (s *TravelService) Delete(ctx context.Context, travelID, userID string) error {
	if _, err := s.GetOwned(ctx, travelID, userID); err != nil {
		return err
	}

	return s.repo.Delete(ctx, travelID)
}
