package dto

import (
	"time"

	apperr "github.com/esterhugosson/Shareyoutravels-backend/internal/errors"
	"github.com/esterhugosson/Shareyoutravels-backend/internal/travel/domain"
	"github.com/esterhugosson/Shareyoutravels-backend/pkg/constant"
)

type CreatePlaceInput struct {
	Name        string        `json:"name"`
	Description string        `json:"description"`
	Location    LocationInput `json:"location"`
	DateVisited *time.Time    `json:"dateVisited"`
	FunFacts    []string      `json:"funFacts"`
	Rating      *int          `json:"rating"`
}

func (in CreatePlaceInput) Validate() error {
	fields := validatePlaceFields(in.Name, in.Location, in.Rating)

	if len(fields) > 0 {
		return apperr.NewValidation(fields...)
	}

	return nil
}

// UpdatePlaceInput is a partial place update. Nil fields are left untouched.
type UpdatePlaceInput struct {
	Name        *string        `json:"name"`
	Description *string        `json:"description"`
	Location    *LocationInput `json:"location"`
	DateVisited *time.Time     `json:"dateVisited"`
	FunFacts    []string       `json:"funFacts"`
	Rating      *int           `json:"rating"`
}

func (in UpdatePlaceInput) Apply(p *domain.Place) error {
	if in.Name != nil {
		p.Name = *in.Name
	}
	if in.Description != nil {
		p.Description = *in.Description
	}
	if in.Location != nil {
		p.Location = domain.Location{Lat: in.Location.Lat, Lng: in.Location.Lng}
	}
	if in.DateVisited != nil {
		p.DateVisited = in.DateVisited
	}
	if in.FunFacts != nil {
		p.FunFacts = in.FunFacts
	}
	if in.Rating != nil {
		p.Rating = in.Rating
	}

	fields := validatePlaceFields(p.Name,
		LocationInput{Lat: p.Location.Lat, Lng: p.Location.Lng}, p.Rating)

	if len(fields) > 0 {
		return apperr.NewValidation(fields...)
	}

	return nil
}

func validatePlaceFields(name string, loc LocationInput, rating *int) []string {
	var fields []string

	if name == "" {
		fields = append(fields, "Name is required")
	}
	if loc.Lat < constant.MinLatitude || loc.Lat > constant.MaxLatitude {
		fields = append(fields, "Latitude must be between -90 and 90")
	}
	if loc.Lng < constant.MinLongitude || loc.Lng > constant.MaxLongitude {
		fields = append(fields, "Longitude must be between -180 and 180")
	}
	if rating != nil && (*rating < constant.MinRating || *rating > constant.MaxRating) {
		fields = append(fields, "Rating must be between 1 and 5")
	}

	return fields
}
