package domain

import "time"

// Place belongs to one travel. It carries no owner of its own: authorization
// always resolves through the parent travel.
type Place struct {
	ID          string     `json:"id"`
	TravelID    string     `json:"travelId"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Location    Location   `json:"location"`
	DateVisited *time.Time `json:"dateVisited,omitempty"`
	FunFacts    []string   `json:"funFacts"`
	Rating      *int       `json:"rating,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}
