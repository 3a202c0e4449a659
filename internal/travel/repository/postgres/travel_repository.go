package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/esterhugosson/Shareyoutravels-backend/internal/travel/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// PgxIface is the subset of pgxpool.Pool the repositories need; pgxmock
// satisfies it in tests.
type PgxIface interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Begin(ctx context.Context) (pgx.Tx, error)
}

type TravelRepository struct {
	db PgxIface
}

func NewTravelRepository(db PgxIface) *TravelRepository {
	return &TravelRepository{db: db}
}

const travelColumns = `id, user_id, destination, transport, notes, start_date, end_date, lat, lng, is_public, created_at, updated_at`

func (r *TravelRepository) GetByID(ctx context.Context, id string) (*domain.Travel, error) {
	query := `
		SELECT ` + travelColumns + `
		FROM travels
		WHERE id = $1
		LIMIT 1;
	`
	row := r.db.QueryRow(ctx, query, id)

	travel, err := scanTravel(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get travel: %w", err)
	}

	return travel, nil
}

func (r *TravelRepository) ListByUser(ctx context.Context, userID string) ([]domain.Travel, error) {
	query := `
		SELECT ` + travelColumns + `
		FROM travels
		WHERE user_id = $1
		ORDER BY start_date DESC;
	`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list travels: %w", err)
	}
	defer rows.Close()

	return collectTravels(rows)
}

func (r *TravelRepository) ListPublic(ctx context.Context) ([]domain.Travel, error) {
	query := `
		SELECT ` + travelColumns + `
		FROM travels
		WHERE is_public
		ORDER BY start_date DESC;
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list public travels: %w", err)
	}
	defer rows.Close()

	return collectTravels(rows)
}

func (r *TravelRepository) Create(ctx context.Context, t *domain.Travel) error {
	_, err := r.db.Exec(ctx, `
        INSERT INTO travels (id, user_id, destination, transport, notes, start_date, end_date, lat, lng, is_public, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
    `, t.ID, t.UserID, t.Destination, string(t.Transport), t.Notes, t.StartDate, t.EndDate,
		t.Location.Lat, t.Location.Lng, t.IsPublic, t.CreatedAt, t.UpdatedAt)

	return err
}

func (r *TravelRepository) Update(ctx context.Context, t *domain.Travel) error {
	_, err := r.db.Exec(ctx, `
		UPDATE travels
		SET destination = $2, transport = $3, notes = $4, start_date = $5, end_date = $6,
		    lat = $7, lng = $8, is_public = $9, updated_at = $10
		WHERE id = $1
	`, t.ID, t.Destination, string(t.Transport), t.Notes, t.StartDate, t.EndDate,
		t.Location.Lat, t.Location.Lng, t.IsPublic, t.UpdatedAt)

	return err
}

// Delete removes the travel and its places in one transaction so a crash
// cannot leave orphaned places behind.
func (r *TravelRepository) Delete(ctx context.Context, id string) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin delete transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM places WHERE travel_id = $1`, id); err != nil {
		return fmt.Errorf("failed to delete places of travel: %w", err)
	}

	if _, err := tx.Exec(ctx, `DELETE FROM travels WHERE id = $1`, id); err != nil {
		return fmt.Errorf("failed to delete travel: %w", err)
	}

	return tx.Commit(ctx)
}

func scanTravel(row pgx.Row) (*domain.Travel, error) {
	var t domain.Travel
	err := row.Scan(&t.ID, &t.UserID, &t.Destination, &t.Transport, &t.Notes,
		&t.StartDate, &t.EndDate, &t.Location.Lat, &t.Location.Lng,
		&t.IsPublic, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return nil, err
	}

	return &t, nil
}

func collectTravels(rows pgx.Rows) ([]domain.Travel, error) {
	var travels []domain.Travel

	for rows.Next() {
		t, err := scanTravel(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan travel: %w", err)
		}
		travels = append(travels, *t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read travels: %w", err)
	}

	return travels, nil
}
