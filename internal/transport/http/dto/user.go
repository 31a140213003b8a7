package dto

import (
	"time"

	"pixhub/internal/domain/models"

	"github.com/google/uuid"
)

type UserRegisterInput struct {
	Username string `json:"username" validate:"required,min=3,max=64"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

// UserResponse не содержит хеш пароля
type UserResponse struct {
	ID           uuid.UUID `json:"id" swaggertype:"string" format:"uuid"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	RegisteredAt time.Time `json:"registered_at"`
}

func ToUserResponse(u models.User) UserResponse {
	return UserResponse{
		ID:           u.ID,
		Username:     u.Username,
		Email:        u.Email,
		RegisteredAt: u.RegisteredAt,
	}
}
