package domain

import "time"

// Transport is the enumerated means of travel.
type Transport string

const (
	TransportFlight  Transport = "flight"
	TransportVehicle Transport = "vehicle"
	TransportTrain   Transport = "train"
	TransportOther   Transport = "other"
)

// Valid reports whether t is one of the known transport modes.
func (t Transport) Valid() bool {
	switch t {
	case TransportFlight, TransportVehicle, TransportTrain, TransportOther:
		return true
	}
	return false
}

type Location struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Travel is owned by exactly one user; places attach to it and inherit its
// access policy.
type Travel struct {
	ID          string    `json:"id"`
	UserID      string    `json:"userId"`
	Destination string    `json:"destination"`
	Transport   Transport `json:"transport"`
	Notes       string    `json:"notes"`
	StartDate   time.Time `json:"startDate"`
	EndDate     time.Time `json:"endDate"`
	Location    Location  `json:"location"`
	IsPublic    bool      `json:"isPublic"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// OwnedBy compares owner ids by value; ids from storage and ids from token
// claims are both plain strings here so equality is exact.
func (t *Travel) OwnedBy(userID string) bool {
	return t.UserID == userID
}
