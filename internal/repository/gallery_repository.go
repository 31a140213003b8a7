package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"pixhub/internal/domain/models"
	"pixhub/internal/storage"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"
)

type GalleryRepo struct {
	db *pgxpool.Pool
	sb sq.StatementBuilderType
}

func NewGalleryRepo(db *pgxpool.Pool) *GalleryRepo {
	return &GalleryRepo{
		db: db,
		sb: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

// CreateGallery создает новую галерею с пустым списком медиа
func (r *GalleryRepo) CreateGallery(ctx context.Context, gallery models.Gallery) (models.Gallery, error) {
	const op = "repository.GalleryRepo.CreateGallery"

	query, args, err := r.sb.Insert("galleries").
		Columns(
			"title",
			"description",
			"owner_id",
			"media",
		).
		Values(
			gallery.Title,
			gallery.Description,
			gallery.OwnerID,
			models.MediaList{},
		).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return models.Gallery{}, fmt.Errorf("%s: %w", op, err)
	}

	created := gallery
	created.Media = models.MediaList{}

	err = r.db.QueryRow(ctx, query, args...).Scan(&created.ID, &created.CreatedAt)
	if err != nil {
		return models.Gallery{}, fmt.Errorf("%s: %w", op, err)
	}

	return created, nil
}

// GetGalleryByID возвращает галерею по ID вместе со встроенным списком медиа
func (r *GalleryRepo) GetGalleryByID(ctx context.Context, id uuid.UUID) (models.Gallery, error) {
	const op = "repository.GalleryRepo.GetGalleryByID"

	query, args, err := r.sb.Select(
		"id",
		"title",
		"description",
		"owner_id",
		"media",
		"created_at",
	).
		From("galleries").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return models.Gallery{}, fmt.Errorf("%s: %w", op, err)
	}

	var gallery models.Gallery
	var media []byte

	err = r.db.QueryRow(ctx, query, args...).Scan(
		&gallery.ID,
		&gallery.Title,
		&gallery.Description,
		&gallery.OwnerID,
		&media,
		&gallery.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.Gallery{}, fmt.Errorf("%s: %w", op, storage.ErrGalleryNotFound)
		}
		return models.Gallery{}, fmt.Errorf("%s: %w", op, err)
	}

	if err := gallery.Media.Scan(media); err != nil {
		return models.Gallery{}, fmt.Errorf("%s: %w", op, err)
	}

	return gallery, nil
}

// GetGalleriesByOwner возвращает все галереи владельца в порядке хранения
func (r *GalleryRepo) GetGalleriesByOwner(ctx context.Context, ownerID uuid.UUID) ([]models.Gallery, error) {
	const op = "repository.GalleryRepo.GetGalleriesByOwner"

	query, args, err := r.sb.Select(
		"id",
		"title",
		"description",
		"owner_id",
		"media",
		"created_at",
	).
		From("galleries").
		Where(sq.Eq{"owner_id": ownerID}).
		OrderBy("created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var galleries []models.Gallery
	for rows.Next() {
		var gallery models.Gallery
		var media []byte

		err := rows.Scan(
			&gallery.ID,
			&gallery.Title,
			&gallery.Description,
			&gallery.OwnerID,
			&media,
			&gallery.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}

		if err := gallery.Media.Scan(media); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}

		galleries = append(galleries, gallery)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return galleries, nil
}

// DeleteGallery удаляет галерею по ID. Идемпотентна: удаление
// несуществующего ID ошибкой не считается.
func (r *GalleryRepo) DeleteGallery(ctx context.Context, id uuid.UUID) error {
	const op = "repository.GalleryRepo.DeleteGallery"

	query, args, err := r.sb.Delete("galleries").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	_, err = r.db.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// AppendMedia атомарно дописывает одну запись в jsonb-массив media галереи.
// Конкатенация выполняется одним UPDATE на стороне Postgres, поэтому
// конкурентные append-ы к одной галерее не теряются: никакого
// read-modify-write на клиенте.
func (r *GalleryRepo) AppendMedia(ctx context.Context, galleryID uuid.UUID, media models.Media) error {
	const op = "repository.GalleryRepo.AppendMedia"

	payload, err := json.Marshal(media)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	query, args, err := r.sb.Update("galleries").
		Set("media", sq.Expr("media || ?::jsonb", payload)).
		Where(sq.Eq{"id": galleryID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	ct, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if ct.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, storage.ErrGalleryNotFound)
	}

	return nil
}
