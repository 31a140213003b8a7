package media_service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"mime/multipart"

	"pixhub/internal/domain/models"
	"pixhub/internal/lib/logger/sl"
	"pixhub/internal/metrics"
	"pixhub/internal/repository"
	"pixhub/internal/storage"
	filestorage "pixhub/internal/storage/filestorage"

	"github.com/google/uuid"
)

// MediaService принимает загрузки и атомарно дописывает их в галерею.
// Блоб пишется до записи метаданных; если запись не удалась, блоб
// остаётся на диске осиротевшим — откат не выполняется.
type MediaService struct {
	log         *slog.Logger
	repo        repository.GalleryRepository
	fileStorage filestorage.FileStorage
}

func NewMediaService(
	log *slog.Logger,
	repo repository.GalleryRepository,
	fileStorage filestorage.FileStorage,
) *MediaService {
	return &MediaService{
		log:         log,
		repo:        repo,
		fileStorage: fileStorage,
	}
}

// UploadMedia сохраняет файл и добавляет его метаданные в галерею
func (s *MediaService) UploadMedia(
	ctx context.Context,
	galleryID uuid.UUID,
	ownerID uuid.UUID,
	file *multipart.FileHeader,
) (models.Media, error) {
	const op = "services.MediaService.UploadMedia"

	log := s.log.With(
		slog.String("op", op),
		slog.String("gallery_id", galleryID.String()),
		slog.String("owner_id", ownerID.String()),
	)

	if file == nil {
		metrics.MediaUploadsTotal.WithLabelValues("rejected").Inc()
		return models.Media{}, fmt.Errorf("%s: %w", op, storage.ErrFileRequired)
	}

	relPath, size, err := s.fileStorage.Save(ctx, file)
	if err != nil {
		if errors.Is(err, storage.ErrFileTooLarge) {
			metrics.MediaUploadsTotal.WithLabelValues("rejected").Inc()
			return models.Media{}, fmt.Errorf("%s: %w", op, err)
		}

		log.Error("failed to save file", sl.Err(err))
		metrics.MediaUploadsTotal.WithLabelValues("error").Inc()
		return models.Media{}, fmt.Errorf("%s: %w", op, err)
	}

	contentType := file.Header.Get("Content-Type")
	url := s.fileStorage.BaseURL() + "/" + relPath

	media := models.NewMedia(ownerID, contentType, file.Filename, url)

	if err := media.Validate(); err != nil {
		metrics.MediaUploadsTotal.WithLabelValues("rejected").Inc()
		return models.Media{}, fmt.Errorf("%s: %w", op, err)
	}

	if err := s.repo.AppendMedia(ctx, galleryID, media); err != nil {
		// блоб не удаляем: метаданных нет, файл остаётся осиротевшим
		if errors.Is(err, storage.ErrGalleryNotFound) {
			log.Warn("gallery not found, blob orphaned",
				slog.String("path", relPath),
			)
			metrics.MediaUploadsTotal.WithLabelValues("not_found").Inc()
			return models.Media{}, fmt.Errorf("%s: %w", op, err)
		}

		log.Error("failed to append media, blob orphaned",
			slog.String("path", relPath),
			sl.Err(err),
		)
		metrics.MediaUploadsTotal.WithLabelValues("error").Inc()
		return models.Media{}, fmt.Errorf("%s: %w", op, err)
	}

	log.Info("media uploaded",
		slog.String("media_id", media.ID.String()),
		slog.String("type", string(media.Type)),
		slog.Int64("size", size),
	)
	metrics.MediaUploadsTotal.WithLabelValues("success").Inc()

	return media, nil
}
