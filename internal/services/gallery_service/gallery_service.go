package gallery_service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"
	"unicode/utf8"

	"pixhub/internal/domain/models"
	"pixhub/internal/lib/logger/sl"
	"pixhub/internal/repository"
	"pixhub/internal/storage"
	filestorage "pixhub/internal/storage/filestorage"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput  = errors.New("invalid input")
	ErrOwnerNotFound = errors.New("owner not found")
)

const maxTitleLength = 255

// OwnerChecker проверяет существование владельца галереи
type OwnerChecker interface {
	Exists(ctx context.Context, userID uuid.UUID) (bool, error)
}

// GalleryService управляет жизненным циклом галерей.
// Удаление идемпотентно: повторный вызов по тому же id не ошибка.
type GalleryService struct {
	log         *slog.Logger
	repo        repository.GalleryRepository
	fileStorage filestorage.FileStorage
	owners      OwnerChecker
}

func NewGalleryService(
	log *slog.Logger,
	repo repository.GalleryRepository,
	fileStorage filestorage.FileStorage,
	owners OwnerChecker,
) *GalleryService {
	return &GalleryService{
		log:         log,
		repo:        repo,
		fileStorage: fileStorage,
		owners:      owners,
	}
}

// CreateGallery создаёт пустую галерею для существующего пользователя
func (s *GalleryService) CreateGallery(ctx context.Context, title, description string, ownerID uuid.UUID) (models.Gallery, error) {
	const op = "services.GalleryService.CreateGallery"

	log := s.log.With(
		slog.String("op", op),
		slog.String("owner_id", ownerID.String()),
	)

	// Длина в рунах, как и max=255 у validator на уровне DTO
	title = strings.TrimSpace(title)
	if title == "" || utf8.RuneCountInString(title) > maxTitleLength {
		return models.Gallery{}, fmt.Errorf("%s: %w", op, ErrInvalidInput)
	}
	if ownerID == uuid.Nil {
		return models.Gallery{}, fmt.Errorf("%s: %w", op, ErrInvalidInput)
	}

	exists, err := s.owners.Exists(ctx, ownerID)
	if err != nil {
		log.Error("failed to check owner", sl.Err(err))
		return models.Gallery{}, fmt.Errorf("%s: %w", op, err)
	}
	if !exists {
		log.Warn("owner not found")
		return models.Gallery{}, fmt.Errorf("%s: %w", op, ErrOwnerNotFound)
	}

	gallery := models.Gallery{
		Title:       title,
		Description: description,
		OwnerID:     ownerID,
		Media:       models.MediaList{},
		CreatedAt:   time.Now().UTC(),
	}

	created, err := s.repo.CreateGallery(ctx, gallery)
	if err != nil {
		log.Error("failed to create gallery", sl.Err(err))
		return models.Gallery{}, fmt.Errorf("%s: %w", op, err)
	}

	log.Info("gallery created", slog.String("gallery_id", created.ID.String()))

	return created, nil
}

// ListUserGalleries возвращает галереи пользователя в порядке создания.
// Для пользователя без галерей возвращается пустой срез, не ошибка.
func (s *GalleryService) ListUserGalleries(ctx context.Context, ownerID uuid.UUID) ([]models.Gallery, error) {
	const op = "services.GalleryService.ListUserGalleries"

	galleries, err := s.repo.GetGalleriesByOwner(ctx, ownerID)
	if err != nil {
		s.log.Error("failed to list galleries",
			slog.String("op", op),
			slog.String("owner_id", ownerID.String()),
			sl.Err(err),
		)
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if galleries == nil {
		galleries = []models.Gallery{}
	}

	return galleries, nil
}

// DeleteGallery удаляет галерею вместе с её файлами.
// Сначала по best-effort чистятся блобы: ошибка удаления отдельного
// файла логируется и не прерывает удаление записи.
func (s *GalleryService) DeleteGallery(ctx context.Context, galleryID uuid.UUID) error {
	const op = "services.GalleryService.DeleteGallery"

	log := s.log.With(
		slog.String("op", op),
		slog.String("gallery_id", galleryID.String()),
	)

	gallery, err := s.repo.GetGalleryByID(ctx, galleryID)
	if err != nil {
		if errors.Is(err, storage.ErrGalleryNotFound) {
			// идемпотентность: галереи уже нет
			return nil
		}
		log.Error("failed to load gallery before delete", sl.Err(err))
		return fmt.Errorf("%s: %w", op, err)
	}

	prefix := s.fileStorage.BaseURL() + "/"
	for _, media := range gallery.Media {
		relPath := strings.TrimPrefix(media.URL, prefix)
		if relPath == media.URL {
			// URL вне нашего хранилища, удалять нечего
			continue
		}
		if err := s.fileStorage.Delete(ctx, relPath); err != nil {
			log.Warn("failed to remove media file",
				slog.String("media_id", media.ID.String()),
				sl.Err(err),
			)
		}
	}

	if err := s.repo.DeleteGallery(ctx, galleryID); err != nil {
		log.Error("failed to delete gallery", sl.Err(err))
		return fmt.Errorf("%s: %w", op, err)
	}

	log.Info("gallery deleted")

	return nil
}
