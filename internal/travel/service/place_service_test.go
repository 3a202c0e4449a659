package service_test

import (
	"context"
	"testing"
	"time"

	apperr "github.com/esterhugosson/Shareyoutravels-backend/internal/errors"
	"github.com/esterhugosson/Shareyoutravels-backend/internal/mocks"
	"github.com/esterhugosson/Shareyoutravels-backend/internal/travel/domain"
	"github.com/esterhugosson/Shareyoutravels-backend/internal/travel/dto"
	"github.com/esterhugosson/Shareyoutravels-backend/internal/travel/service"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPlaceService(t *testing.T) (*service.PlaceService, *mocks.MockTravelRepository, *mocks.MockPlaceRepository) {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	travelRepo := mocks.NewMockTravelRepository(ctrl)
	placeRepo := mocks.NewMockPlaceRepository(ctrl)
	travels := service.NewTravelService(travelRepo)

	return service.NewPlaceService(placeRepo, travels), travelRepo, placeRepo
}

func samplePlace() *domain.Place {
	return &domain.Place{
		ID:       "place-1",
		TravelID: "travel-1",
		Name:     "Icehotel",
		Location: domain.Location{Lat: 67.85, Lng: 20.59},
		FunFacts: []string{"rebuilt every winter"},
	}
}

func TestPlaceService_ListForTravel(t *testing.T) {
	s, travelRepo, placeRepo := newPlaceService(t)
	ctx := context.Background()

	t.Run("owner lists places", func(t *testing.T) {
		travelRepo.EXPECT().GetByID(ctx, "travel-1").Return(sampleTravel(), nil)
		placeRepo.EXPECT().ListByTravel(ctx, "travel-1").Return([]domain.Place{*samplePlace()}, nil)

		places, err := s.ListForTravel(ctx, "travel-1", ownerID)
		require.NoError(t, err)
		assert.Len(t, places, 1)
	})

	t.Run("stranger is forbidden before any place read", func(t *testing.T) {
		travelRepo.EXPECT().GetByID(ctx, "travel-1").Return(sampleTravel(), nil)

		places, err := s.ListForTravel(ctx, "travel-1", strangerID)
		assert.Nil(t, places)
		assert.ErrorIs(t, err, apperr.ErrNotOwner)
	})
}

// A valid place id gives no access when the parent travel belongs to someone
// else: authorization always resolves through the travel.
func TestPlaceService_ParentOwnershipGatesEverything(t *testing.T) {
	s, travelRepo, _ := newPlaceService(t)
	ctx := context.Background()

	t.Run("get", func(t *testing.T) {
		travelRepo.EXPECT().GetByID(ctx, "travel-1").Return(sampleTravel(), nil)

		place, err := s.Get(ctx, "travel-1", "place-1", strangerID)
		assert.Nil(t, place)
		assert.ErrorIs(t, err, apperr.ErrNotOwner)
	})

	t.Run("update", func(t *testing.T) {
		travelRepo.EXPECT().GetByID(ctx, "travel-1").Return(sampleTravel(), nil)

		place, err := s.Update(ctx, "travel-1", "place-1", strangerID, dto.UpdatePlaceInput{})
		assert.Nil(t, place)
		assert.ErrorIs(t, err, apperr.ErrNotOwner)
	})

	t.Run("delete", func(t *testing.T) {
		travelRepo.EXPECT().GetByID(ctx, "travel-1").Return(sampleTravel(), nil)

		err := s.Delete(ctx, "travel-1", "place-1", strangerID)
		assert.ErrorIs(t, err, apperr.ErrNotOwner)
	})

	t.Run("add", func(t *testing.T) {
		travelRepo.EXPECT().GetByID(ctx, "travel-1").Return(sampleTravel(), nil)

		place, err := s.Add(ctx, "travel-1", strangerID, dto.CreatePlaceInput{Name: "x"})
		assert.Nil(t, place)
		assert.ErrorIs(t, err, apperr.ErrNotOwner)
	})
}

func TestPlaceService_Get(t *testing.T) {
	s, travelRepo, placeRepo := newPlaceService(t)
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		travelRepo.EXPECT().GetByID(ctx, "travel-1").Return(sampleTravel(), nil)
		placeRepo.EXPECT().GetByID(ctx, "place-1").Return(samplePlace(), nil)

		place, err := s.Get(ctx, "travel-1", "place-1", ownerID)
		require.NoError(t, err)
		assert.Equal(t, "Icehotel", place.Name)
	})

	t.Run("place under a different travel is not found", func(t *testing.T) {
		foreign := samplePlace()
		foreign.TravelID = "travel-2"

		travelRepo.EXPECT().GetByID(ctx, "travel-1").Return(sampleTravel(), nil)
		placeRepo.EXPECT().GetByID(ctx, "place-1").Return(foreign, nil)

		place, err := s.Get(ctx, "travel-1", "place-1", ownerID)
		assert.Nil(t, place)
		assert.ErrorIs(t, err, apperr.ErrPlaceNotFound)
	})

	t.Run("absent place", func(t *testing.T) {
		travelRepo.EXPECT().GetByID(ctx, "travel-1").Return(sampleTravel(), nil)
		placeRepo.EXPECT().GetByID(ctx, "ghost").Return(nil, nil)

		place, err := s.Get(ctx, "travel-1", "ghost", ownerID)
		assert.Nil(t, place)
		assert.ErrorIs(t, err, apperr.ErrPlaceNotFound)
	})
}

func TestPlaceService_Add(t *testing.T) {
	s, travelRepo, placeRepo := newPlaceService(t)
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		rating := 5
		visited := time.Date(2025, 6, 3, 0, 0, 0, 0, time.UTC)
		input := dto.CreatePlaceInput{
			Name:        "Icehotel",
			Description: "hotel made of ice",
			Location:    dto.LocationInput{Lat: 67.85, Lng: 20.59},
			DateVisited: &visited,
			Rating:      &rating,
		}

		travelRepo.EXPECT().GetByID(ctx, "travel-1").Return(sampleTravel(), nil)
		placeRepo.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, p *domain.Place) error {
				assert.Equal(t, "travel-1", p.TravelID)
				assert.NotEmpty(t, p.ID)
				assert.NotNil(t, p.FunFacts)
				return nil
			})

		place, err := s.Add(ctx, "travel-1", ownerID, input)
		require.NoError(t, err)
		assert.Equal(t, "Icehotel", place.Name)
		require.NotNil(t, place.Rating)
		assert.Equal(t, 5, *place.Rating)
	})

	t.Run("validation failure", func(t *testing.T) {
		badRating := 6
		input := dto.CreatePlaceInput{Name: "Icehotel", Rating: &badRating}

		travelRepo.EXPECT().GetByID(ctx, "travel-1").Return(sampleTravel(), nil)

		place, err := s.Add(ctx, "travel-1", ownerID, input)
		assert.Nil(t, place)
		assert.True(t, apperr.IsValidation(err))
	})
}

func TestPlaceService_Update(t *testing.T) {
	s, travelRepo, placeRepo := newPlaceService(t)
	ctx := context.Background()

	newName := "Icehotel 365"

	travelRepo.EXPECT().GetByID(ctx, "travel-1").Return(sampleTravel(), nil)
	placeRepo.EXPECT().GetByID(ctx, "place-1").Return(samplePlace(), nil)
	placeRepo.EXPECT().Update(ctx, gomock.Any()).Return(nil)

	place, err := s.Update(ctx, "travel-1", "place-1", ownerID, dto.UpdatePlaceInput{Name: &newName})
	require.NoError(t, err)
	assert.Equal(t, "Icehotel 365", place.Name)
}

func TestPlaceService_Delete(t *testing.T) {
	s, travelRepo, placeRepo := newPlaceService(t)
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		travelRepo.EXPECT().GetByID(ctx, "travel-1").Return(sampleTravel(), nil)
		placeRepo.EXPECT().GetByID(ctx, "place-1").Return(samplePlace(), nil)
		placeRepo.EXPECT().Delete(ctx, "place-1").Return(nil)

		assert.NoError(t, s.Delete(ctx, "travel-1", "place-1", ownerID))
	})

	t.Run("absent place", func(t *testing.T) {
		travelRepo.EXPECT().GetByID(ctx, "travel-1").Return(sampleTravel(), nil)
		placeRepo.EXPECT().GetByID(ctx, "ghost").Return(nil, nil)

		assert.ErrorIs(t, s.Delete(ctx, "travel-1", "ghost", ownerID), apperr.ErrPlaceNotFound)
	})
}

func TestPlaceService_ListPublic(t *testing.T) {
	s, _, placeRepo := newPlaceService(t)
	ctx := context.Background()

	t.Run("returns places of public travels", func(t *testing.T) {
		placeRepo.EXPECT().ListPublic(ctx).Return([]domain.Place{*samplePlace()}, nil)

		places, err := s.ListPublic(ctx)
		require.NoError(t, err)
		assert.Len(t, places, 1)
	})

	t.Run("none found", func(t *testing.T) {
		placeRepo.EXPECT().ListPublic(ctx).Return(nil, nil)

		places, err := s.ListPublic(ctx)
		assert.Nil(t, places)
		assert.Error(t, err)
	})
}
