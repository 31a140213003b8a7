package token_service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"pixhub/internal/domain/models"
	libjwt "pixhub/internal/lib/jwt"
	"pixhub/internal/lib/logger/sl"
	"pixhub/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	ErrInvalidToken       = errors.New("invalid token")
	ErrInvalidTokenClaims = errors.New("invalid token claims")
)

const (
	AccessTokenExpire  = 15 * time.Minute
	RefreshTokenExpire = 7 * 24 * time.Hour
)

// TokenService выпускает пары access/refresh токенов.
// Refresh-токены одноразовые: при обновлении старый удаляется из Redis.
type TokenService struct {
	log    *slog.Logger
	repo   repository.TokenRepository
	secret string
}

func NewTokenService(log *slog.Logger, repo repository.TokenRepository, secret string) *TokenService {
	return &TokenService{
		log:    log,
		repo:   repo,
		secret: secret,
	}
}

func (s *TokenService) GenerateTokens(ctx context.Context, user models.User) (*models.TokenPair, error) {
	const op = "services.TokenService.GenerateTokens"

	accessToken, err := libjwt.NewToken(user, s.secret, AccessTokenExpire)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	refreshToken, err := libjwt.NewToken(user, s.secret, RefreshTokenExpire)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if err := s.repo.SaveRefreshToken(ctx, user.ID.String(), refreshToken, RefreshTokenExpire); err != nil {
		s.log.Error("failed to save refresh token", slog.String("op", op), sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &models.TokenPair{
		UserID:       user.ID,
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

func (s *TokenService) RefreshTokens(ctx context.Context, refreshToken string) (*models.TokenPair, error) {
	const op = "services.TokenService.RefreshTokens"

	uid, email, err := s.parseRefreshClaims(refreshToken)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	exists, err := s.repo.GetRefreshToken(ctx, uid.String(), refreshToken)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if !exists {
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidToken)
	}

	if err := s.repo.DeleteRefreshToken(ctx, uid.String(), refreshToken); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return s.GenerateTokens(ctx, models.User{ID: uid, Email: email})
}

// Logout отзывает все refresh-токены владельца предъявленного токена.
// Отозвать сессии может только предъявитель токена из whitelist.
func (s *TokenService) Logout(ctx context.Context, refreshToken string) error {
	const op = "services.TokenService.Logout"

	uid, _, err := s.parseRefreshClaims(refreshToken)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	exists, err := s.repo.GetRefreshToken(ctx, uid.String(), refreshToken)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if !exists {
		return fmt.Errorf("%s: %w", op, ErrInvalidToken)
	}

	return s.RevokeAll(ctx, uid)
}

func (s *TokenService) parseRefreshClaims(refreshToken string) (uuid.UUID, string, error) {
	token, err := jwt.Parse(refreshToken, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(s.secret), nil
	})
	if err != nil || !token.Valid {
		return uuid.Nil, "", ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return uuid.Nil, "", ErrInvalidToken
	}

	userID, ok := claims["uid"].(string)
	if !ok {
		return uuid.Nil, "", ErrInvalidTokenClaims
	}

	email, ok := claims["email"].(string)
	if !ok {
		return uuid.Nil, "", ErrInvalidTokenClaims
	}

	uid, err := uuid.Parse(userID)
	if err != nil {
		return uuid.Nil, "", ErrInvalidTokenClaims
	}

	return uid, email, nil
}

// RevokeAll отзывает все refresh-токены пользователя
func (s *TokenService) RevokeAll(ctx context.Context, userID uuid.UUID) error {
	const op = "services.TokenService.RevokeAll"

	if err := s.repo.DeleteAllUserTokens(ctx, userID.String()); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}
