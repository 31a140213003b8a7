package user_service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"pixhub/internal/domain/models"
	"pixhub/internal/lib/logger/sl"
	"pixhub/internal/repository"
	"pixhub/internal/storage"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserExists         = errors.New("user already exists")
)

// UserService регистрирует пользователей и проверяет учётные данные.
// Пароли хранятся только в виде bcrypt-хеша.
type UserService struct {
	log   *slog.Logger
	users repository.UserRepository
}

func NewUserService(log *slog.Logger, users repository.UserRepository) *UserService {
	return &UserService{
		log:   log,
		users: users,
	}
}

// Register создаёт нового пользователя и возвращает его id
func (s *UserService) Register(ctx context.Context, username, email, password string) (uuid.UUID, error) {
	const op = "services.UserService.Register"

	log := s.log.With(
		slog.String("op", op),
		slog.String("email", email),
	)

	passHash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Error("failed to hash password", sl.Err(err))
		return uuid.Nil, fmt.Errorf("%s: %w", op, err)
	}

	user := models.User{
		Username:     username,
		Email:        email,
		Password:     passHash,
		RegisteredAt: time.Now().UTC(),
	}

	id, err := s.users.SaveUser(ctx, user)
	if err != nil {
		if errors.Is(err, storage.ErrUserExists) {
			log.Warn("user already exists")
			return uuid.Nil, fmt.Errorf("%s: %w", op, ErrUserExists)
		}

		log.Error("failed to save user", sl.Err(err))
		return uuid.Nil, fmt.Errorf("%s: %w", op, err)
	}

	log.Info("user registered", slog.String("user_id", id.String()))

	return id, nil
}

// Login проверяет учётные данные и возвращает пользователя
func (s *UserService) Login(ctx context.Context, email, password string) (models.User, error) {
	const op = "services.UserService.Login"

	log := s.log.With(
		slog.String("op", op),
		slog.String("email", email),
	)

	user, err := s.users.UserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, storage.ErrUserNotFound) {
			log.Warn("user not found")
			return models.User{}, fmt.Errorf("%s: %w", op, ErrInvalidCredentials)
		}

		log.Error("failed to get user", sl.Err(err))
		return models.User{}, fmt.Errorf("%s: %w", op, err)
	}

	if err := bcrypt.CompareHashAndPassword(user.Password, []byte(password)); err != nil {
		log.Warn("invalid password")
		return models.User{}, fmt.Errorf("%s: %w", op, ErrInvalidCredentials)
	}

	return user, nil
}

// GetUser возвращает профиль пользователя по id
func (s *UserService) GetUser(ctx context.Context, userID uuid.UUID) (models.User, error) {
	const op = "services.UserService.GetUser"

	user, err := s.users.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, storage.ErrUserNotFound) {
			return models.User{}, fmt.Errorf("%s: %w", op, storage.ErrUserNotFound)
		}

		s.log.Error("failed to get user", slog.String("op", op), sl.Err(err))
		return models.User{}, fmt.Errorf("%s: %w", op, err)
	}

	return user, nil
}
