package dto

import (
	"time"

	"pixhub/internal/domain/models"

	"github.com/google/uuid"
)

type CreateGalleryRequest struct {
	Title       string    `json:"title" validate:"required,min=1,max=255"`
	Description string    `json:"description,omitempty" validate:"omitempty,max=2000"`
	OwnerID     uuid.UUID `json:"owner_id" validate:"required" swaggertype:"string" format:"uuid"`
}

// GalleryResponse представляет собой DTO для ответа с данными о галерее
type GalleryResponse struct {
	ID          uuid.UUID       `json:"id" swaggertype:"string" format:"uuid"` // Уникальный идентификатор галереи
	Title       string          `json:"title"`                                 // Название галереи
	Description string          `json:"description"`                           // Описание галереи
	OwnerID     uuid.UUID       `json:"owner_id" swaggertype:"string" format:"uuid"`
	Media       []MediaResponse `json:"media"` // Медиа в порядке добавления
	CreatedAt   time.Time       `json:"created_at"`
}

type MediaResponse struct {
	ID         uuid.UUID `json:"id" swaggertype:"string" format:"uuid"`
	Title      string    `json:"title"`
	URL        string    `json:"url"`
	Type       string    `json:"type"` // image | video
	OwnerID    uuid.UUID `json:"owner_id" swaggertype:"string" format:"uuid"`
	IsFavorite bool      `json:"is_favorite"`
	CreatedAt  time.Time `json:"created_at"`
}

func ToMediaResponse(m models.Media) MediaResponse {
	return MediaResponse{
		ID:         m.ID,
		Title:      m.Title,
		URL:        m.URL,
		Type:       string(m.Type),
		OwnerID:    m.OwnerID,
		IsFavorite: m.IsFavorite,
		CreatedAt:  m.CreatedAt,
	}
}

func ToGalleryResponse(g models.Gallery) GalleryResponse {
	media := make([]MediaResponse, 0, len(g.Media))
	for _, m := range g.Media {
		media = append(media, ToMediaResponse(m))
	}

	return GalleryResponse{
		ID:          g.ID,
		Title:       g.Title,
		Description: g.Description,
		OwnerID:     g.OwnerID,
		Media:       media,
		CreatedAt:   g.CreatedAt,
	}
}

func ToGalleryResponses(galleries []models.Gallery) []GalleryResponse {
	out := make([]GalleryResponse, 0, len(galleries))
	for _, g := range galleries {
		out = append(out, ToGalleryResponse(g))
	}
	return out
}
