package dto

import (
	"time"

	apperr "github.com/esterhugosson/Shareyoutravels-backend/internal/errors"
	"github.com/esterhugosson/Shareyoutravels-backend/internal/travel/domain"
	"github.com/esterhugosson/Shareyoutravels-backend/pkg/constant"
)

type LocationInput struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type CreateTravelInput struct {
	Destination string        `json:"destination"`
	Transport   string        `json:"transport"`
	Notes       string        `json:"notes"`
	StartDate   time.Time     `json:"startDate"`
	EndDate     time.Time     `json:"endDate"`
	Location    LocationInput `json:"location"`
	IsPublic    bool          `json:"isPublic"`
}

func (in CreateTravelInput) Validate() error {
	fields := validateTravelFields(in.Destination, in.Transport, in.Notes,
		in.StartDate, in.EndDate, in.Location)

	if len(fields) > 0 {
		return apperr.NewValidation(fields...)
	}

	return nil
}

// UpdateTravelInput is a partial travel update. Nil fields are left untouched.
type UpdateTravelInput struct {
	Destination *string        `json:"destination"`
	Transport   *string        `json:"transport"`
	Notes       *string        `json:"notes"`
	StartDate   *time.Time     `json:"startDate"`
	EndDate     *time.Time     `json:"endDate"`
	Location    *LocationInput `json:"location"`
	IsPublic    *bool          `json:"isPublic"`
}

// Apply copies the set fields onto t. The combined result is validated so a
// partial update cannot produce an end date before the start date.
func (in UpdateTravelInput) Apply(t *domain.Travel) error {
	if in.Destination != nil {
		t.Destination = *in.Destination
	}
	if in.Transport != nil {
		t.Transport = domain.Transport(*in.Transport)
	}
	if in.Notes != nil {
		t.Notes = *in.Notes
	}
	if in.StartDate != nil {
		t.StartDate = *in.StartDate
	}
	if in.EndDate != nil {
		t.EndDate = *in.EndDate
	}
	if in.Location != nil {
		t.Location = domain.Location{Lat: in.Location.Lat, Lng: in.Location.Lng}
	}
	if in.IsPublic != nil {
		t.IsPublic = *in.IsPublic
	}

	fields := validateTravelFields(t.Destination, string(t.Transport), t.Notes,
		t.StartDate, t.EndDate, LocationInput{Lat: t.Location.Lat, Lng: t.Location.Lng})

	if len(fields) > 0 {
		return apperr.NewValidation(fields...)
	}

	return nil
}

func validateTravelFields(destination, transport, notes string, start, end time.Time, loc LocationInput) []string {
	var fields []string

	if destination == "" {
		fields = append(fields, "Destination is required")
	}
	if !domain.Transport(transport).Valid() {
		fields = append(fields, "Transport must be one of: flight, vehicle, train, other")
	}
	if len(notes) > constant.MaxNotesLength {
		fields = append(fields, "Notes must be at most 255 characters")
	}
	if start.IsZero() {
		fields = append(fields, "Start date is required")
	}
	if end.IsZero() {
		fields = append(fields, "End date is required")
	}
	if !start.IsZero() && !end.IsZero() && end.Before(start) {
		fields = append(fields, "End date must be after start date")
	}
	if loc.Lat < constant.MinLatitude || loc.Lat > constant.MaxLatitude {
		fields = append(fields, "Latitude must be between -90 and 90")
	}
	if loc.Lng < constant.MinLongitude || loc.Lng > constant.MaxLongitude {
		fields = append(fields, "Longitude must be between -180 and 180")
	}

	return fields
}
