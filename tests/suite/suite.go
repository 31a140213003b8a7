package suite

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"sync"
	"testing"
	"time"

	httpapp "pixhub/internal/app/http"
	"pixhub/internal/domain/models"
	"pixhub/internal/services/gallery_service"
	"pixhub/internal/services/identity"
	"pixhub/internal/services/media_service"
	"pixhub/internal/services/token_service"
	"pixhub/internal/services/user_service"
	"pixhub/internal/storage"
	filestorage "pixhub/internal/storage/filestorage"
	httprouters "pixhub/internal/transport/http"

	"github.com/google/uuid"
)

// Suite поднимает полный HTTP-стек с хранилищами в памяти:
// сервисы и обработчики настоящие, вместо Postgres и Redis — карты.
type Suite struct {
	*testing.T
	Handler   http.Handler
	UploadDir string
}

func New(t *testing.T) (context.Context, *Suite) {
	t.Helper()
	t.Parallel()

	ctx, cancelCtx := context.WithTimeout(context.Background(), time.Hour)
	t.Cleanup(cancelCtx)

	log := slog.New(slog.NewTextHandler(io.Discard, nil))

	uploadDir := t.TempDir()
	fileStorage, err := filestorage.NewLocalFileStorage(uploadDir, "/uploads", 50<<20)
	if err != nil {
		t.Fatalf("failed to create file storage: %v", err)
	}

	users := newFakeUserRepo()
	galleries := newFakeGalleryRepo()
	tokens := newFakeTokenRepo()

	userService := user_service.NewUserService(log, users)
	tokenService := token_service.NewTokenService(log, tokens, "test-secret")
	identityGateway := identity.NewGateway(log, users, time.Minute)
	galleryService := gallery_service.NewGalleryService(log, galleries, fileStorage, identityGateway)
	mediaService := media_service.NewMediaService(log, galleries, fileStorage)

	routers := httprouters.NewRouter(log, userService, tokenService, galleryService, mediaService)

	server := httpapp.New(log, "localhost", "0", uploadDir, routers)
	server.BuildRouters()

	return ctx, &Suite{
		T:         t,
		Handler:   server.Handler(),
		UploadDir: uploadDir,
	}
}

type fakeUserRepo struct {
	mu      sync.RWMutex
	byID    map[uuid.UUID]models.User
	byEmail map[string]uuid.UUID
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{
		byID:    make(map[uuid.UUID]models.User),
		byEmail: make(map[string]uuid.UUID),
	}
}

func (r *fakeUserRepo) SaveUser(ctx context.Context, user models.User) (uuid.UUID, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byEmail[user.Email]; ok {
		return uuid.Nil, storage.ErrUserExists
	}

	user.ID = uuid.New()
	r.byID[user.ID] = user
	r.byEmail[user.Email] = user.ID

	return user.ID, nil
}

func (r *fakeUserRepo) UserByEmail(ctx context.Context, email string) (models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.byEmail[email]
	if !ok {
		return models.User{}, storage.ErrUserNotFound
	}

	return r.byID[id], nil
}

func (r *fakeUserRepo) UserExists(ctx context.Context, userID uuid.UUID) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.byID[userID]
	return ok, nil
}

func (r *fakeUserRepo) GetUserByID(ctx context.Context, userID uuid.UUID) (models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.byID[userID]
	if !ok {
		return models.User{}, storage.ErrUserNotFound
	}

	return user, nil
}

type fakeGalleryRepo struct {
	mu        sync.Mutex
	galleries map[uuid.UUID]models.Gallery
	order     []uuid.UUID
}

func newFakeGalleryRepo() *fakeGalleryRepo {
	return &fakeGalleryRepo{
		galleries: make(map[uuid.UUID]models.Gallery),
	}
}

func (r *fakeGalleryRepo) CreateGallery(ctx context.Context, gallery models.Gallery) (models.Gallery, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	gallery.ID = uuid.New()
	if gallery.Media == nil {
		gallery.Media = models.MediaList{}
	}

	r.galleries[gallery.ID] = gallery
	r.order = append(r.order, gallery.ID)

	return gallery, nil
}

func (r *fakeGalleryRepo) GetGalleryByID(ctx context.Context, id uuid.UUID) (models.Gallery, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	gallery, ok := r.galleries[id]
	if !ok {
		return models.Gallery{}, storage.ErrGalleryNotFound
	}

	return gallery, nil
}

func (r *fakeGalleryRepo) GetGalleriesByOwner(ctx context.Context, ownerID uuid.UUID) ([]models.Gallery, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []models.Gallery
	for _, id := range r.order {
		if g, ok := r.galleries[id]; ok && g.OwnerID == ownerID {
			out = append(out, g)
		}
	}

	return out, nil
}

func (r *fakeGalleryRepo) DeleteGallery(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.galleries, id)
	return nil
}

func (r *fakeGalleryRepo) AppendMedia(ctx context.Context, galleryID uuid.UUID, media models.Media) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	gallery, ok := r.galleries[galleryID]
	if !ok {
		return storage.ErrGalleryNotFound
	}

	gallery.Media = append(gallery.Media, media)
	r.galleries[galleryID] = gallery

	return nil
}

type fakeTokenRepo struct {
	mu     sync.Mutex
	tokens map[string]struct{}
}

func newFakeTokenRepo() *fakeTokenRepo {
	return &fakeTokenRepo{tokens: make(map[string]struct{})}
}

func tokenKey(userID, token string) string {
	return fmt.Sprintf("%s:%s", userID, token)
}

func (r *fakeTokenRepo) SaveRefreshToken(ctx context.Context, userID, token string, exp time.Duration) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.tokens[tokenKey(userID, token)] = struct{}{}
	return nil
}

func (r *fakeTokenRepo) GetRefreshToken(ctx context.Context, userID, token string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, ok := r.tokens[tokenKey(userID, token)]
	return ok, nil
}

func (r *fakeTokenRepo) DeleteRefreshToken(ctx context.Context, userID, token string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.tokens, tokenKey(userID, token))
	return nil
}

func (r *fakeTokenRepo) DeleteAllUserTokens(ctx context.Context, userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	prefix := userID + ":"
	for key := range r.tokens {
		if len(key) > len(prefix) && key[:len(prefix)] == prefix {
			delete(r.tokens, key)
		}
	}

	return nil
}
