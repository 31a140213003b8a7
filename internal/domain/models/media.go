package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

type MediaType string

const (
	MediaTypeImage MediaType = "image"
	MediaTypeVideo MediaType = "video"
)

// Media представляет один загруженный файл внутри галереи.
// Живёт только внутри своей галереи: создаётся append-ом, удаляется вместе с ней.
type Media struct {
	ID         uuid.UUID `json:"id"`          // UUIDv7: монотонный по времени, уникален в пределах галереи
	Title      string    `json:"title"`       // Оригинальное имя файла
	URL        string    `json:"url"`         // Локатор блоба (раздаётся из статики)
	Type       MediaType `json:"type"`        // image | video
	OwnerID    uuid.UUID `json:"owner_id"`    // Кто загрузил (может отличаться от владельца галереи)
	IsFavorite bool      `json:"is_favorite"` // Всегда false: операции переключения в ядре нет
	CreatedAt  time.Time `json:"created_at"`  // Момент загрузки
}

// DetectMediaType классифицирует медиа по заявленному Content-Type.
// Правило грубое: всё, что не image/*, считается видео. Дальнейшей
// валидации MIME нет.
func DetectMediaType(contentType string) MediaType {
	if strings.HasPrefix(contentType, "image") {
		return MediaTypeImage
	}
	return MediaTypeVideo
}

// NewMedia создает новый экземпляр Media с заполненными обязательными полями
func NewMedia(ownerID uuid.UUID, contentType, filename, url string) Media {
	return Media{
		ID:         uuid.Must(uuid.NewV7()),
		Title:      filename,
		URL:        url,
		Type:       DetectMediaType(contentType),
		OwnerID:    ownerID,
		IsFavorite: false,
		CreatedAt:  time.Now().UTC(),
	}
}

// Validate проверяет корректность данных медиафайла
func (m *Media) Validate() error {
	var validationErrors []string

	if m.ID == uuid.Nil {
		validationErrors = append(validationErrors, "media ID is required")
	}
	if m.OwnerID == uuid.Nil {
		validationErrors = append(validationErrors, "owner ID is required")
	}
	if m.Title == "" {
		validationErrors = append(validationErrors, "title is required")
	}
	if len(m.Title) > 255 {
		validationErrors = append(validationErrors, "title must be 255 characters or less")
	}
	if m.URL == "" {
		validationErrors = append(validationErrors, "url is required")
	}

	switch m.Type {
	case MediaTypeImage, MediaTypeVideo:
	default:
		validationErrors = append(validationErrors,
			fmt.Sprintf("invalid media type '%s', must be one of: [%s %s]",
				m.Type, MediaTypeImage, MediaTypeVideo))
	}

	if len(validationErrors) > 0 {
		return &MediaValidationError{Errors: validationErrors}
	}

	return nil
}

// MediaValidationError кастомный тип ошибки для валидации
type MediaValidationError struct {
	Errors []string
}

func (e *MediaValidationError) Error() string {
	return fmt.Sprintf("media validation failed: %s", strings.Join(e.Errors, "; "))
}

// IsMediaValidationError проверяет, является ли ошибка ошибкой валидации
func IsMediaValidationError(err error) bool {
	_, ok := err.(*MediaValidationError)
	return ok
}
