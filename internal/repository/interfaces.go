package repository

import (
	"context"
	"time"

	"pixhub/internal/domain/models"

	"github.com/google/uuid"
)

type UserRepository interface {
	SaveUser(ctx context.Context, user models.User) (uuid.UUID, error)
	UserByEmail(ctx context.Context, email string) (models.User, error)
	UserExists(ctx context.Context, userID uuid.UUID) (bool, error)
	GetUserByID(ctx context.Context, userID uuid.UUID) (models.User, error)
}

type GalleryRepository interface {
	CreateGallery(ctx context.Context, gallery models.Gallery) (models.Gallery, error)
	GetGalleryByID(ctx context.Context, id uuid.UUID) (models.Gallery, error)
	GetGalleriesByOwner(ctx context.Context, ownerID uuid.UUID) ([]models.Gallery, error)
	DeleteGallery(ctx context.Context, id uuid.UUID) error
	AppendMedia(ctx context.Context, galleryID uuid.UUID, media models.Media) error
}

type TokenRepository interface {
	SaveRefreshToken(ctx context.Context, userID, token string, exp time.Duration) error
	GetRefreshToken(ctx context.Context, userID, token string) (bool, error)
	DeleteRefreshToken(ctx context.Context, userID, token string) error
	DeleteAllUserTokens(ctx context.Context, userID string) error
}
