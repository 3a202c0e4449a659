package domain

import "context"

//go:generate mockgen -destination=../../mocks/mock_travel_repository.go -package=mocks github.com/esterhugosson/Shareyoutravels-backend/internal/travel/domain TravelRepository,PlaceRepository

type TravelRepository interface {
	GetByID(ctx context.Context, id string) (*Travel, error)
	ListByUser(ctx context.Context, userID string) ([]Travel, error)
	ListPublic(ctx context.Context) ([]Travel, error)
	Create(ctx context.Context, travel *Travel) error
	Update(ctx context.Context, travel *Travel) error
	Delete(ctx context.Context, id string) error
}

type PlaceRepository interface {
	GetByID(ctx context.Context, id string) (*Place, error)
	ListByTravel(ctx context.Context, travelID string) ([]Place, error)
	ListPublic(ctx context.Context) ([]Place, error)
	Create(ctx context.Context, place *Place) error
	Update(ctx context.Context, place *Place) error
	Delete(ctx context.Context, id string) error
}
