package postgres_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/esterhugosson/Shareyoutravels-backend/internal/account/domain"
	repo "github.com/esterhugosson/Shareyoutravels-backend/internal/account/repository/postgres"
	apperr "github.com/esterhugosson/Shareyoutravels-backend/internal/errors"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var userColumns = []string{"id", "first_name", "last_name", "username", "email", "password_hash", "created_at", "updated_at"}

// TestGetByUsername covers the GetByUsername repository method.
func TestGetByUsername(t *testing.T) {
	// --- Setup ---
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	r := repo.NewPostgresRepository(mock)
	username := "ester"

	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		mock.ExpectQuery("SELECT id, first_name").
			WithArgs(username).
			WillReturnRows(pgxmock.NewRows(userColumns).
				AddRow("user-123", "Ester", "Hugosson", username, "ester@example.com", "hash", time.Now(), time.Now()))

		user, err := r.GetByUsername(ctx, username)
		require.NoError(t, err)
		assert.Equal(t, "user-123", user.ID)
		assert.Equal(t, username, user.Username)
	})

	t.Run("not found", func(t *testing.T) {
		mock.ExpectQuery("SELECT id, first_name").
			WithArgs(username).
			WillReturnError(pgx.ErrNoRows)

		user, err := r.GetByUsername(ctx, username)
		require.NoError(t, err) // Should return nil user, nil error
		assert.Nil(t, user)
	})

	t.Run("database error", func(t *testing.T) {
		mock.ExpectQuery("SELECT id, first_name").
			WithArgs(username).
			WillReturnError(fmt.Errorf("db error"))

		_, err := r.GetByUsername(ctx, username)
		assert.Error(t, err)
	})
}

// TestCreate covers the Create repository method including duplicate-key
// translation.
func TestCreate(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	ctx := context.Background()

	r := repo.NewPostgresRepository(mock)
	user := &domain.User{
		ID:           "user-123",
		FirstName:    "Ester",
		LastName:     "Hugosson",
		Username:     "ester",
		Email:        "ester@example.com",
		PasswordHash: "hash",
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}

	t.Run("success", func(t *testing.T) {
		mock.ExpectExec("INSERT INTO users").
			WithArgs(user.ID, user.FirstName, user.LastName, user.Username,
				user.Email, user.PasswordHash, user.CreatedAt, user.UpdatedAt).
			WillReturnResult(pgxmock.NewResult("INSERT", 1))

		assert.NoError(t, r.Create(ctx, user))
	})

	t.Run("duplicate username or email", func(t *testing.T) {
		mock.ExpectExec("INSERT INTO users").
			WithArgs(user.ID, user.FirstName, user.LastName, user.Username,
				user.Email, user.PasswordHash, user.CreatedAt, user.UpdatedAt).
			WillReturnError(&pgconn.PgError{Code: "23505"})

		assert.ErrorIs(t, r.Create(ctx, user), apperr.ErrDuplicateUser)
	})
}

func TestUpdate(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	ctx := context.Background()
	r := repo.NewPostgresRepository(mock)
	user := &domain.User{ID: "user-123", FirstName: "Ester", LastName: "Hugosson",
		Username: "ester", Email: "ester@example.com", PasswordHash: "hash", UpdatedAt: time.Now()}

	t.Run("success", func(t *testing.T) {
		mock.ExpectExec("UPDATE users").
			WithArgs(user.ID, user.FirstName, user.LastName, user.Username,
				user.Email, user.PasswordHash, user.UpdatedAt).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))

		assert.NoError(t, r.Update(ctx, user))
	})

	t.Run("user vanished", func(t *testing.T) {
		mock.ExpectExec("UPDATE users").
			WithArgs(user.ID, user.FirstName, user.LastName, user.Username,
				user.Email, user.PasswordHash, user.UpdatedAt).
			WillReturnResult(pgxmock.NewResult("UPDATE", 0))

		assert.ErrorIs(t, r.Update(ctx, user), apperr.ErrUserNotFound)
	})
}

func TestDelete(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	ctx := context.Background()
	r := repo.NewPostgresRepository(mock)

	t.Run("success", func(t *testing.T) {
		mock.ExpectExec("DELETE FROM users").
			WithArgs("user-123").
			WillReturnResult(pgxmock.NewResult("DELETE", 1))

		assert.NoError(t, r.Delete(ctx, "user-123"))
	})

	t.Run("not found", func(t *testing.T) {
		mock.ExpectExec("DELETE FROM users").
			WithArgs("ghost").
			WillReturnResult(pgxmock.NewResult("DELETE", 0))

		assert.ErrorIs(t, r.Delete(ctx, "ghost"), apperr.ErrUserNotFound)
	})
}

func TestRefreshTokens(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	ctx := context.Background()
	r := repo.NewPostgresRepository(mock)

	rt := &domain.RefreshToken{
		ID:        "rt-1",
		UserID:    "user-123",
		Token:     "refresh-token",
		ExpiresAt: time.Now().Add(time.Hour),
		CreatedAt: time.Now(),
		Revoked:   false,
	}

	t.Run("store", func(t *testing.T) {
		mock.ExpectExec("INSERT INTO refresh_tokens").
			WithArgs(rt.ID, rt.UserID, rt.Token, rt.ExpiresAt, rt.CreatedAt, rt.Revoked).
			WillReturnResult(pgxmock.NewResult("INSERT", 1))

		assert.NoError(t, r.StoreRefreshToken(ctx, rt))
	})

	t.Run("get", func(t *testing.T) {
		columns := []string{"id", "user_id", "token", "expires_at", "created_at", "revoked"}
		mock.ExpectQuery("SELECT id, user_id, token").
			WithArgs(rt.Token).
			WillReturnRows(pgxmock.NewRows(columns).
				AddRow(rt.ID, rt.UserID, rt.Token, rt.ExpiresAt, rt.CreatedAt, rt.Revoked))

		got, err := r.GetRefreshToken(ctx, rt.Token)
		require.NoError(t, err)
		assert.Equal(t, rt.ID, got.ID)
		assert.False(t, got.Revoked)
	})

	t.Run("get unknown", func(t *testing.T) {
		mock.ExpectQuery("SELECT id, user_id, token").
			WithArgs("unknown").
			WillReturnError(pgx.ErrNoRows)

		got, err := r.GetRefreshToken(ctx, "unknown")
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("revoke", func(t *testing.T) {
		mock.ExpectExec("UPDATE refresh_tokens SET revoked").
			WithArgs(rt.ID).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))

		assert.NoError(t, r.RevokeRefreshToken(ctx, rt.ID))
	})

	t.Run("prune oldest", func(t *testing.T) {
		mock.ExpectExec("DELETE FROM refresh_tokens").
			WithArgs("user-123", 5).
			WillReturnResult(pgxmock.NewResult("DELETE", 2))

		assert.NoError(t, r.DeleteOldestByUserID(ctx, "user-123", 5))
	})
}
