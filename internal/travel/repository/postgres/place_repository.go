package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/esterhugosson/Shareyoutravels-backend/internal/travel/domain"
	"github.com/jackc/pgx/v5"
)

type PlaceRepository struct {
	db PgxIface
}

func NewPlaceRepository(db PgxIface) *PlaceRepository {
	return &PlaceRepository{db: db}
}

const placeColumns = `id, travel_id, name, description, lat, lng, date_visited, fun_facts, rating, created_at, updated_at`

func (r *PlaceRepository) GetByID(ctx context.Context, id string) (*domain.Place, error) {
	query := `
		SELECT ` + placeColumns + `
		FROM places
		WHERE id = $1
		LIMIT 1;
	`
	row := r.db.QueryRow(ctx, query, id)

	place, err := scanPlace(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get place: %w", err)
	}

	return place, nil
}

func (r *PlaceRepository) ListByTravel(ctx context.Context, travelID string) ([]domain.Place, error) {
	query := `
		SELECT ` + placeColumns + `
		FROM places
		WHERE travel_id = $1
		ORDER BY created_at;
	`

	rows, err := r.db.Query(ctx, query, travelID)
	if err != nil {
		return nil, fmt.Errorf("failed to list places: %w", err)
	}
	defer rows.Close()

	return collectPlaces(rows)
}

// ListPublic returns the places of all public travels.
func (r *PlaceRepository) ListPublic(ctx context.Context) ([]domain.Place, error) {
	query := `
		SELECT p.id, p.travel_id, p.name, p.description, p.lat, p.lng, p.date_visited, p.fun_facts, p.rating, p.created_at, p.updated_at
		FROM places p
		JOIN travels t ON t.id = p.travel_id
		WHERE t.is_public
		ORDER BY p.created_at;
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list public places: %w", err)
	}
	defer rows.Close()

	return collectPlaces(rows)
}

func (r *PlaceRepository) Create(ctx context.Context, p *domain.Place) error {
	_, err := r.db.Exec(ctx, `
        INSERT INTO places (id, travel_id, name, description, lat, lng, date_visited, fun_facts, rating, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
    `, p.ID, p.TravelID, p.Name, p.Description, p.Location.Lat, p.Location.Lng,
		p.DateVisited, p.FunFacts, p.Rating, p.CreatedAt, p.UpdatedAt)

	return err
}

func (r *PlaceRepository) Update(ctx context.Context, p *domain.Place) error {
	_, err := r.db.Exec(ctx, `
		UPDATE places
		SET name = $2, description = $3, lat = $4, lng = $5, date_visited = $6, fun_facts = $7, rating = $8, updated_at = $9
		WHERE id = $1
	`, p.ID, p.Name, p.Description, p.Location.Lat, p.Location.Lng,
		p.DateVisited, p.FunFacts, p.Rating, p.UpdatedAt)

	return err
}

func (r *PlaceRepository) Delete(ctx context.Context, id string) error {
	_, err := r.db.Exec(ctx, `DELETE FROM places WHERE id = $1`, id)
	return err
}

func scanPlace(row pgx.Row) (*domain.Place, error) {
	var p domain.Place
	err := row.Scan(&p.ID, &p.TravelID, &p.Name, &p.Description,
		&p.Location.Lat, &p.Location.Lng, &p.DateVisited, &p.FunFacts,
		&p.Rating, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}

	return &p, nil
}

func collectPlaces(rows pgx.Rows) ([]domain.Place, error) {
	var places []domain.Place

	for rows.Next() {
		p, err := scanPlace(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan place: %w", err)
		}
		places = append(places, *p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read places: %w", err)
	}

	return places, nil
}
