package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"pixhub/internal/domain/models"
	"pixhub/internal/services/gallery_service"
	"pixhub/internal/services/user_service"
	"pixhub/internal/storage"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) Register(ctx context.Context, username, email, password string) (uuid.UUID, error) {
	args := m.Called(ctx, username, email, password)
	return args.Get(0).(uuid.UUID), args.Error(1)
}

func (m *MockUserService) Login(ctx context.Context, email, password string) (models.User, error) {
	args := m.Called(ctx, email, password)
	return args.Get(0).(models.User), args.Error(1)
}

func (m *MockUserService) GetUser(ctx context.Context, userID uuid.UUID) (models.User, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(models.User), args.Error(1)
}

type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) GenerateTokens(ctx context.Context, user models.User) (*models.TokenPair, error) {
	args := m.Called(ctx, user)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.TokenPair), args.Error(1)
}

func (m *MockAuthService) RefreshTokens(ctx context.Context, refreshToken string) (*models.TokenPair, error) {
	args := m.Called(ctx, refreshToken)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.TokenPair), args.Error(1)
}

func (m *MockAuthService) Logout(ctx context.Context, refreshToken string) error {
	args := m.Called(ctx, refreshToken)
	return args.Error(0)
}

type MockGalleryService struct {
	mock.Mock
}

func (m *MockGalleryService) CreateGallery(ctx context.Context, title, description string, ownerID uuid.UUID) (models.Gallery, error) {
	args := m.Called(ctx, title, description, ownerID)
	return args.Get(0).(models.Gallery), args.Error(1)
}

func (m *MockGalleryService) ListUserGalleries(ctx context.Context, ownerID uuid.UUID) ([]models.Gallery, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Gallery), args.Error(1)
}

func (m *MockGalleryService) DeleteGallery(ctx context.Context, galleryID uuid.UUID) error {
	args := m.Called(ctx, galleryID)
	return args.Error(0)
}

type MockMediaService struct {
	mock.Mock
}

func (m *MockMediaService) UploadMedia(ctx context.Context, galleryID, ownerID uuid.UUID, file *multipart.FileHeader) (models.Media, error) {
	args := m.Called(ctx, galleryID, ownerID, file)
	return args.Get(0).(models.Media), args.Error(1)
}

type testValidator struct {
	validator *validator.Validate
}

func (v *testValidator) Validate(i interface{}) error {
	return v.validator.Struct(i)
}

type testEnv struct {
	e       *echo.Echo
	routers *Routers
	users   *MockUserService
	auth    *MockAuthService
	gallery *MockGalleryService
	media   *MockMediaService
}

func newTestEnv() *testEnv {
	e := echo.New()
	e.Validator = &testValidator{validator: validator.New()}

	users := new(MockUserService)
	auth := new(MockAuthService)
	gallery := new(MockGalleryService)
	media := new(MockMediaService)

	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	routers := NewRouter(log, users, auth, gallery, media)

	return &testEnv{e: e, routers: routers, users: users, auth: auth, gallery: gallery, media: media}
}

func jsonRequest(method, target, body string) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	return req
}

func TestRegister(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		env := newTestEnv()
		userID := uuid.New()
		env.users.On("Register", mock.Anything, "neo", "neo@matrix.io", "password123").
			Return(userID, nil)

		req := jsonRequest(http.MethodPost, "/api/v1/register",
			`{"username":"neo","email":"neo@matrix.io","password":"password123"}`)
		rec := httptest.NewRecorder()
		c := env.e.NewContext(req, rec)

		require.NoError(t, env.routers.Register(c))
		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.Contains(t, rec.Body.String(), userID.String())
	})

	t.Run("conflict on duplicate", func(t *testing.T) {
		env := newTestEnv()
		env.users.On("Register", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
			Return(uuid.Nil, user_service.ErrUserExists)

		req := jsonRequest(http.MethodPost, "/api/v1/register",
			`{"username":"neo","email":"neo@matrix.io","password":"password123"}`)
		rec := httptest.NewRecorder()
		c := env.e.NewContext(req, rec)

		require.NoError(t, env.routers.Register(c))
		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("bad payload", func(t *testing.T) {
		env := newTestEnv()

		req := jsonRequest(http.MethodPost, "/api/v1/register", `{"email":"not-an-email"}`)
		rec := httptest.NewRecorder()
		c := env.e.NewContext(req, rec)

		require.NoError(t, env.routers.Register(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		env.users.AssertNotCalled(t, "Register", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestLogin(t *testing.T) {
	t.Run("returns tokens", func(t *testing.T) {
		env := newTestEnv()
		user := models.User{ID: uuid.New(), Email: "neo@matrix.io"}

		env.users.On("Login", mock.Anything, "neo@matrix.io", "password123").Return(user, nil)
		env.auth.On("GenerateTokens", mock.Anything, user).Return(&models.TokenPair{
			UserID:       user.ID,
			AccessToken:  "access",
			RefreshToken: "refresh",
		}, nil)

		req := jsonRequest(http.MethodPost, "/api/v1/login",
			`{"email":"neo@matrix.io","password":"password123"}`)
		rec := httptest.NewRecorder()
		c := env.e.NewContext(req, rec)

		require.NoError(t, env.routers.Login(c))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "access")
		assert.Contains(t, rec.Body.String(), "refresh")
	})

	t.Run("unauthorized on bad credentials", func(t *testing.T) {
		env := newTestEnv()
		env.users.On("Login", mock.Anything, mock.Anything, mock.Anything).
			Return(models.User{}, user_service.ErrInvalidCredentials)

		req := jsonRequest(http.MethodPost, "/api/v1/login",
			`{"email":"neo@matrix.io","password":"wrongpassword"}`)
		rec := httptest.NewRecorder()
		c := env.e.NewContext(req, rec)

		require.NoError(t, env.routers.Login(c))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestRefresh(t *testing.T) {
	t.Run("rotates tokens", func(t *testing.T) {
		env := newTestEnv()
		env.auth.On("RefreshTokens", mock.Anything, "old-refresh").Return(&models.TokenPair{
			UserID:       uuid.New(),
			AccessToken:  "new-access",
			RefreshToken: "new-refresh",
		}, nil)

		req := jsonRequest(http.MethodPost, "/api/v1/refresh", `{"refresh_token":"old-refresh"}`)
		rec := httptest.NewRecorder()
		c := env.e.NewContext(req, rec)

		require.NoError(t, env.routers.Refresh(c))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "new-access")
	})

	t.Run("unauthorized on invalid token", func(t *testing.T) {
		env := newTestEnv()
		env.auth.On("RefreshTokens", mock.Anything, "garbage").
			Return(nil, errors.New("invalid token"))

		req := jsonRequest(http.MethodPost, "/api/v1/refresh", `{"refresh_token":"garbage"}`)
		rec := httptest.NewRecorder()
		c := env.e.NewContext(req, rec)

		require.NoError(t, env.routers.Refresh(c))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestLogout(t *testing.T) {
	t.Run("revokes session", func(t *testing.T) {
		env := newTestEnv()
		env.auth.On("Logout", mock.Anything, "refresh").Return(nil)

		req := jsonRequest(http.MethodPost, "/api/v1/logout", `{"refresh_token":"refresh"}`)
		rec := httptest.NewRecorder()
		c := env.e.NewContext(req, rec)

		require.NoError(t, env.routers.Logout(c))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"success":true}`, rec.Body.String())
	})

	t.Run("unauthorized on unknown token", func(t *testing.T) {
		env := newTestEnv()
		env.auth.On("Logout", mock.Anything, "garbage").
			Return(errors.New("invalid token"))

		req := jsonRequest(http.MethodPost, "/api/v1/logout", `{"refresh_token":"garbage"}`)
		rec := httptest.NewRecorder()
		c := env.e.NewContext(req, rec)

		require.NoError(t, env.routers.Logout(c))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("missing token", func(t *testing.T) {
		env := newTestEnv()

		req := jsonRequest(http.MethodPost, "/api/v1/logout", `{}`)
		rec := httptest.NewRecorder()
		c := env.e.NewContext(req, rec)

		require.NoError(t, env.routers.Logout(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		env.auth.AssertNotCalled(t, "Logout", mock.Anything, mock.Anything)
	})
}

func TestGetUser(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		env := newTestEnv()
		user := models.User{
			ID:       uuid.New(),
			Username: "neo",
			Email:    "neo@matrix.io",
			Password: []byte("bcrypt-hash"),
		}
		env.users.On("GetUser", mock.Anything, user.ID).Return(user, nil)

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec := httptest.NewRecorder()
		c := env.e.NewContext(req, rec)
		c.SetPath("/api/v1/users/:user_id")
		c.SetParamNames("user_id")
		c.SetParamValues(user.ID.String())

		require.NoError(t, env.routers.GetUser(c))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "neo@matrix.io")
		// хеш пароля не утекает в ответ
		assert.NotContains(t, rec.Body.String(), "bcrypt-hash")
	})

	t.Run("not found", func(t *testing.T) {
		env := newTestEnv()
		userID := uuid.New()
		env.users.On("GetUser", mock.Anything, userID).
			Return(models.User{}, storage.ErrUserNotFound)

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec := httptest.NewRecorder()
		c := env.e.NewContext(req, rec)
		c.SetPath("/api/v1/users/:user_id")
		c.SetParamNames("user_id")
		c.SetParamValues(userID.String())

		require.NoError(t, env.routers.GetUser(c))
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("invalid uuid", func(t *testing.T) {
		env := newTestEnv()

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec := httptest.NewRecorder()
		c := env.e.NewContext(req, rec)
		c.SetPath("/api/v1/users/:user_id")
		c.SetParamNames("user_id")
		c.SetParamValues("not-a-uuid")

		require.NoError(t, env.routers.GetUser(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestCreateGallery(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		env := newTestEnv()
		ownerID := uuid.New()
		gallery := models.Gallery{
			ID:      uuid.New(),
			Title:   "Vacation",
			OwnerID: ownerID,
			Media:   models.MediaList{},
		}

		env.gallery.On("CreateGallery", mock.Anything, "Vacation", "", ownerID).Return(gallery, nil)

		req := jsonRequest(http.MethodPost, "/api/v1/galleries",
			`{"title":"Vacation","owner_id":"`+ownerID.String()+`"}`)
		rec := httptest.NewRecorder()
		c := env.e.NewContext(req, rec)

		require.NoError(t, env.routers.CreateGallery(c))
		assert.Equal(t, http.StatusCreated, rec.Code)

		var resp map[string]any
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, gallery.ID.String(), resp["id"])
		// пустая галерея сериализуется как [], не null
		assert.Equal(t, []any{}, resp["media"])
	})

	t.Run("missing title", func(t *testing.T) {
		env := newTestEnv()

		req := jsonRequest(http.MethodPost, "/api/v1/galleries",
			`{"owner_id":"`+uuid.NewString()+`"}`)
		rec := httptest.NewRecorder()
		c := env.e.NewContext(req, rec)

		require.NoError(t, env.routers.CreateGallery(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("owner not found", func(t *testing.T) {
		env := newTestEnv()
		ownerID := uuid.New()
		env.gallery.On("CreateGallery", mock.Anything, "Vacation", "", ownerID).
			Return(models.Gallery{}, gallery_service.ErrOwnerNotFound)

		req := jsonRequest(http.MethodPost, "/api/v1/galleries",
			`{"title":"Vacation","owner_id":"`+ownerID.String()+`"}`)
		rec := httptest.NewRecorder()
		c := env.e.NewContext(req, rec)

		require.NoError(t, env.routers.CreateGallery(c))
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestListUserGalleries(t *testing.T) {
	t.Run("empty list is 200", func(t *testing.T) {
		env := newTestEnv()
		ownerID := uuid.New()
		env.gallery.On("ListUserGalleries", mock.Anything, ownerID).Return([]models.Gallery{}, nil)

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec := httptest.NewRecorder()
		c := env.e.NewContext(req, rec)
		c.SetPath("/api/v1/galleries/user/:owner_id")
		c.SetParamNames("owner_id")
		c.SetParamValues(ownerID.String())

		require.NoError(t, env.routers.ListUserGalleries(c))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "[]\n", rec.Body.String())
	})

	t.Run("invalid uuid", func(t *testing.T) {
		env := newTestEnv()

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec := httptest.NewRecorder()
		c := env.e.NewContext(req, rec)
		c.SetPath("/api/v1/galleries/user/:owner_id")
		c.SetParamNames("owner_id")
		c.SetParamValues("not-a-uuid")

		require.NoError(t, env.routers.ListUserGalleries(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestDeleteGallery(t *testing.T) {
	env := newTestEnv()
	galleryID := uuid.New()
	env.gallery.On("DeleteGallery", mock.Anything, galleryID).Return(nil)

	req := httptest.NewRequest(http.MethodDelete, "/", nil)
	rec := httptest.NewRecorder()
	c := env.e.NewContext(req, rec)
	c.SetPath("/api/v1/galleries/:gallery_id")
	c.SetParamNames("gallery_id")
	c.SetParamValues(galleryID.String())

	require.NoError(t, env.routers.DeleteGallery(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"success":true}`, rec.Body.String())
}

func multipartRequest(t *testing.T, fieldName, filename string, content []byte) *http.Request {
	t.Helper()

	body := new(bytes.Buffer)
	writer := multipart.NewWriter(body)

	part, err := writer.CreateFormFile(fieldName, filename)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/", body)
	req.Header.Set(echo.HeaderContentType, writer.FormDataContentType())
	return req
}

func TestUploadMedia(t *testing.T) {
	galleryID := uuid.New()
	userID := uuid.New()

	setParams := func(c echo.Context) {
		c.SetPath("/api/v1/galleries/:gallery_id/:user_id/media")
		c.SetParamNames("gallery_id", "user_id")
		c.SetParamValues(galleryID.String(), userID.String())
	}

	t.Run("created", func(t *testing.T) {
		env := newTestEnv()
		media := models.Media{
			ID:      uuid.Must(uuid.NewV7()),
			Title:   "cat.png",
			URL:     "/uploads/1-2.png",
			Type:    models.MediaTypeImage,
			OwnerID: userID,
		}

		env.media.On("UploadMedia", mock.Anything, galleryID, userID, mock.Anything).
			Return(media, nil)

		req := multipartRequest(t, "file", "cat.png", []byte("png"))
		rec := httptest.NewRecorder()
		c := env.e.NewContext(req, rec)
		setParams(c)

		require.NoError(t, env.routers.UploadMedia(c))
		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.Contains(t, rec.Body.String(), media.ID.String())
	})

	t.Run("missing file", func(t *testing.T) {
		env := newTestEnv()

		req := multipartRequest(t, "not_file", "cat.png", []byte("png"))
		rec := httptest.NewRecorder()
		c := env.e.NewContext(req, rec)
		setParams(c)

		require.NoError(t, env.routers.UploadMedia(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		env.media.AssertNotCalled(t, "UploadMedia", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("gallery not found", func(t *testing.T) {
		env := newTestEnv()
		env.media.On("UploadMedia", mock.Anything, galleryID, userID, mock.Anything).
			Return(models.Media{}, storage.ErrGalleryNotFound)

		req := multipartRequest(t, "file", "cat.png", []byte("png"))
		rec := httptest.NewRecorder()
		c := env.e.NewContext(req, rec)
		setParams(c)

		require.NoError(t, env.routers.UploadMedia(c))
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("file too large", func(t *testing.T) {
		env := newTestEnv()
		env.media.On("UploadMedia", mock.Anything, galleryID, userID, mock.Anything).
			Return(models.Media{}, storage.ErrFileTooLarge)

		req := multipartRequest(t, "file", "huge.bin", []byte("xxx"))
		rec := httptest.NewRecorder()
		c := env.e.NewContext(req, rec)
		setParams(c)

		require.NoError(t, env.routers.UploadMedia(c))
		assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
	})

	t.Run("invalid gallery uuid", func(t *testing.T) {
		env := newTestEnv()

		req := multipartRequest(t, "file", "cat.png", []byte("png"))
		rec := httptest.NewRecorder()
		c := env.e.NewContext(req, rec)
		c.SetPath("/api/v1/galleries/:gallery_id/:user_id/media")
		c.SetParamNames("gallery_id", "user_id")
		c.SetParamValues("nope", userID.String())

		require.NoError(t, env.routers.UploadMedia(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
