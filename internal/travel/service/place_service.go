package service

import (
	"context"
	"time"

	apperr "github.com/esterhugosson/Shareyoutravels-backend/internal/errors"
	"github.com/esterhugosson/Shareyoutravels-backend/internal/travel/domain"
	"github.com/esterhugosson/Shareyoutravels-backend/internal/travel/dto"
	"github.com/google/uuid"
)

// PlaceService never authorizes a place on its own: every operation first
// resolves the parent travel through the travel service's ownership guard.
type PlaceService struct {
	repo    domain.PlaceRepository
	travels *TravelService
}

func NewPlaceService(repo domain.PlaceRepository, travels *TravelService) *PlaceService {
	return &PlaceService{repo: repo, travels: travels}
}

func (s *PlaceService) ListForTravel(ctx context.Context, travelID, userID string) ([]domain.Place, error) {
	if _, err := s.travels.GetOwned(ctx, travelID, userID); err != nil {
		return nil, err
	}

	return s.repo.ListByTravel(ctx, travelID)
}

// ListPublic returns the places of all public travels. Unauthenticated.
func (s *PlaceService) ListPublic(ctx context.Context) ([]domain.Place, error) {
	places, err := s.repo.ListPublic(ctx)
	if err != nil {
		return nil, err
	}

	if len(places) == 0 {
		return nil, apperr.ErrTravelNotFound
	}

	return places, nil
}

func (s *PlaceService) Get(ctx context.Context, travelID, placeID, userID string) (*domain.Place, error) {
	if _, err := s.travels.GetOwned(ctx, travelID, userID); err != nil {
		return nil, err
	}

	return s.getInTravel(ctx, travelID, placeID)
}

func (s *PlaceService) Add(ctx context.Context, travelID, userID string, input dto.CreatePlaceInput) (*domain.Place, error) {
	if _, err := s.travels.GetOwned(ctx, travelID, userID); err != nil {
		return nil, err
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	now := time.Now()

	funFacts := input.FunFacts
	if funFacts == nil {
		funFacts = []string{}
	}

	place := &domain.Place{
		ID:          uuid.New().String(),
		TravelID:    travelID,
		Name:        input.Name,
		Description: input.Description,
		Location:    domain.Location{Lat: input.Location.Lat, Lng: input.Location.Lng},
		DateVisited: input.DateVisited,
		FunFacts:    funFacts,
		Rating:      input.Rating,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	// The travel reference lives on the place row itself, so creating a
	// place is a single write with no separate link step.
	if err := s.repo.Create(ctx, place); err != nil {
		return nil, err
	}

	return place, nil
}

func (s *PlaceService) Update(ctx context.Context, travelID, placeID, userID string, input dto.UpdatePlaceInput) (*domain.Place, error) {
	if _, err := s.travels.GetOwned(ctx, travelID, userID); err != nil {
		return nil, err
	}

	place, err := s.getInTravel(ctx, travelID, placeID)
	if err != nil {
		return nil, err
	}

	if err := input.Apply(place); err != nil {
		return nil, err
	}

	place.UpdatedAt = time.Now()

	if err := s.repo.Update(ctx, place); err != nil {
		return nil, err
	}

	return place, nil
}

func (s *PlaceService) Delete(ctx context.Context, travelID, placeID, userID string) error {
	if _, err := s.travels.GetOwned(ctx, travelID, userID); err != nil {
		return err
	}

	if _, err := s.getInTravel(ctx, travelID, placeID); err != nil {
		return err
	}

	return s.repo.Delete(ctx, placeID)
}

// getInTravel loads a place and confirms it belongs to the given travel. A
// valid place id under the wrong travel is indistinguishable from a missing
// one.
func (s *PlaceService) getInTravel(ctx context.Context, travelID, placeID string) (*domain.Place, error) {
	place, err := s.repo.GetByID(ctx, placeID)
	if err != nil {
		return nil, err
	}

	if place == nil || place.TravelID != travelID {
		return nil, apperr.ErrPlaceNotFound
	}

	return place, nil
}
