package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/esterhugosson/Shareyoutravels-backend/internal/account/domain"
	"github.com/esterhugosson/Shareyoutravels-backend/internal/account/dto"
	apperr "github.com/esterhugosson/Shareyoutravels-backend/internal/errors"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type UserService struct {
	repo                   domain.UserRepository
	tokenService           TokenGenerator
	maxActiveRefreshTokens int
}

func NewUserService(repo domain.UserRepository, tokenService TokenGenerator, maxTokens int) *UserService {
	return &UserService{
		repo:                   repo,
		tokenService:           tokenService,
		maxActiveRefreshTokens: maxTokens,
	}
}

func (s *UserService) Register(ctx context.Context, input dto.RegisterInput) (*domain.User, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now()

	user := &domain.User{
		ID:           uuid.New().String(),
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		Username:     input.Username,
		Email:        input.Email,
		PasswordHash: string(hashedPassword),
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	// Uniqueness is enforced by the database; the repository translates a
	// duplicate-key violation into ErrDuplicateUser.
	if err := s.repo.Create(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

// SignIn authenticates by username and password. A missing user and a wrong
// password produce the same error so callers cannot enumerate usernames.
func (s *UserService) SignIn(ctx context.Context, input dto.SignInInput) (*dto.TokenResponse, error) {
	user, err := s.repo.GetByUsername(ctx, input.Username)
	if err != nil {
		return nil, err
	}

	if user == nil || bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)) != nil {
		return nil, apperr.ErrInvalidCredentials
	}

	tokens, err := s.issuePair(ctx, user)
	if err != nil {
		return nil, err
	}

	tokens.User = dto.NewUserOutput(user)

	return tokens, nil
}

// Refresh rotates a refresh token: the presented token is verified, marked
// revoked, and a fresh pair is issued. A rotated-out or unknown token is
// rejected, as is a token whose user no longer exists.
func (s *UserService) Refresh(ctx context.Context, input dto.RefreshInput) (*dto.TokenResponse, error) {
	if input.RefreshToken == "" {
		return nil, apperr.NewValidation("Refresh token is missing or invalid")
	}

	claims, err := s.tokenService.VerifyRefreshToken(input.RefreshToken)
	if err != nil {
		return nil, err
	}

	stored, err := s.repo.GetRefreshToken(ctx, input.RefreshToken)
	if err != nil {
		return nil, err
	}

	if stored == nil {
		return nil, apperr.ErrRefreshTokenNotFound
	}

	if stored.Revoked {
		return nil, apperr.ErrRefreshTokenRevoked
	}

	if time.Now().After(stored.ExpiresAt) {
		return nil, apperr.ErrRefreshTokenExpired
	}

	if err := s.repo.RevokeRefreshToken(ctx, stored.ID); err != nil {
		return nil, err
	}

	// Deleting the account revokes all outstanding tokens.
	user, err := s.repo.GetByID(ctx, claims.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, fmt.Errorf("%w: user no longer exists", apperr.ErrTokenInvalid)
	}

	return s.issuePair(ctx, user)
}

func (s *UserService) Update(ctx context.Context, userID string, input dto.UpdateInput) (*domain.User, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	user, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperr.ErrUserNotFound
	}

	if input.FirstName != nil {
		user.FirstName = *input.FirstName
	}
	if input.LastName != nil {
		user.LastName = *input.LastName
	}
	if input.Username != nil {
		user.Username = *input.Username
	}
	if input.Email != nil {
		user.Email = *input.Email
	}
	if input.Password != nil {
		hashed, err := bcrypt.GenerateFromPassword([]byte(*input.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = string(hashed)
	}

	user.UpdatedAt = time.Now()

	if err := s.repo.Update(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

func (s *UserService) Delete(ctx context.Context, userID string) error {
	user, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	if user == nil {
		return apperr.ErrUserNotFound
	}

	// Hard delete; refresh tokens go with the user via FK cascade.
	return s.repo.Delete(ctx, userID)
}

func (s *UserService) issuePair(ctx context.Context, user *domain.User) (*dto.TokenResponse, error) {
	accessToken, refreshToken, refreshExpiresAt, err := s.tokenService.Generate(user.ID)
	if err != nil {
		return nil, err
	}

	now := time.Now()

	rt := &domain.RefreshToken{
		ID:        uuid.NewString(),
		UserID:    user.ID,
		Token:     refreshToken,
		ExpiresAt: refreshExpiresAt,
		CreatedAt: now,
		Revoked:   false,
	}

	if err := s.repo.StoreRefreshToken(ctx, rt); err != nil {
		return nil, err
	}

	// Prune oldest if token count exceeds limit
	if err := s.repo.DeleteOldestByUserID(ctx, user.ID, s.maxActiveRefreshTokens); err != nil {
		log.Printf("warn: failed to prune refresh tokens for user %s: %v", user.ID, err)
	}

	return &dto.TokenResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}
