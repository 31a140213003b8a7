package http

import (
	"context"
	"errors"
	"log/slog"
	"mime/multipart"
	"net/http"

	"pixhub/internal/domain/models"
	"pixhub/internal/lib/logger/sl"
	"pixhub/internal/services/gallery_service"
	"pixhub/internal/services/user_service"
	"pixhub/internal/storage"
	"pixhub/internal/transport/http/dto"
	"pixhub/internal/transport/http/dto/request"
	"pixhub/internal/transport/http/dto/response"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type UserService interface {
	Register(ctx context.Context, username, email, password string) (uuid.UUID, error)
	Login(ctx context.Context, email, password string) (models.User, error)
	GetUser(ctx context.Context, userID uuid.UUID) (models.User, error)
}

type AuthService interface {
	GenerateTokens(ctx context.Context, user models.User) (*models.TokenPair, error)
	RefreshTokens(ctx context.Context, refreshToken string) (*models.TokenPair, error)
	Logout(ctx context.Context, refreshToken string) error
}

type GalleryService interface {
	CreateGallery(ctx context.Context, title, description string, ownerID uuid.UUID) (models.Gallery, error)
	ListUserGalleries(ctx context.Context, ownerID uuid.UUID) ([]models.Gallery, error)
	DeleteGallery(ctx context.Context, galleryID uuid.UUID) error
}

type MediaService interface {
	UploadMedia(ctx context.Context, galleryID, ownerID uuid.UUID, file *multipart.FileHeader) (models.Media, error)
}

type Routers struct {
	log            *slog.Logger
	UserService    UserService
	AuthService    AuthService
	GalleryService GalleryService
	MediaService   MediaService
}

func NewRouter(
	log *slog.Logger,
	userService UserService,
	authService AuthService,
	galleryService GalleryService,
	mediaService MediaService,
) *Routers {
	return &Routers{
		log:            log,
		UserService:    userService,
		AuthService:    authService,
		GalleryService: galleryService,
		MediaService:   mediaService,
	}
}

// Register godoc
// @Summary Регистрация нового пользователя
// @Description Создание аккаунта. Возвращает ID пользователя.
// @Tags users
// @Accept json
// @Produce json
// @Param request body dto.UserRegisterInput true "Данные для регистрации"
// @Success 201 {object} response.Response{data=object{user_id=string}} "Успешная регистрация"
// @Failure 400 {object} response.ErrorResponse "Неверный формат запроса"
// @Failure 409 {object} response.ErrorResponse "Пользователь уже существует"
// @Failure 500 {object} response.ErrorResponse "Внутренняя ошибка сервера"
// @Router /api/v1/register [post]
func (r *Routers) Register(c echo.Context) error {
	const op = "http.routers.Register"

	log := r.log.With(
		slog.String("op", op),
	)

	var req dto.UserRegisterInput

	if err := c.Bind(&req); err != nil {
		log.Error("failed to bind request", sl.Err(err))
		return c.JSON(http.StatusBadRequest, response.ErrInvalidRequestFormat)
	}

	if err := c.Validate(req); err != nil {
		log.Warn("validation failed", sl.Err(err))
		return c.JSON(http.StatusBadRequest,
			response.ErrorResponseWithDetails("invalid_request", err.Error()))
	}

	userID, err := r.UserService.Register(c.Request().Context(), req.Username, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, user_service.ErrUserExists) {
			log.Warn("user already exists", slog.String("email", req.Email))
			return c.JSON(http.StatusConflict, response.ErrUserAlreadyExists)
		}

		log.Error("registration failed", sl.Err(err))
		return c.JSON(http.StatusInternalServerError, response.ErrInternal)
	}

	log.Info("user registered successfully", slog.String("user_id", userID.String()))

	return c.JSON(http.StatusCreated, response.Response{
		Status: "success",
		Data: map[string]uuid.UUID{
			"user_id": userID,
		},
	})
}

// Login godoc
// @Summary Аутентификация пользователя
// @Description Вход в систему по email и паролю. Возвращает пару JWT-токенов.
// @Tags users
// @Accept json
// @Produce json
// @Param request body request.LoginRequest true "Данные для входа"
// @Success 200 {object} response.Response{data=map[string]string} "Успешный вход (токены)"
// @Failure 400 {object} response.ErrorResponse "Неверный формат запроса"
// @Failure 401 {object} response.ErrorResponse "Ошибка аутентификации"
// @Router /api/v1/login [post]
func (r *Routers) Login(c echo.Context) error {
	const op = "http.routers.Login"

	log := r.log.With(
		slog.String("op", op),
	)

	var req request.LoginRequest

	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, response.ErrInvalidRequestFormat)
	}

	if err := c.Validate(req); err != nil {
		log.Warn("invalid format request", slog.String("email", req.Email))
		return c.JSON(http.StatusBadRequest,
			response.ErrorResponseWithDetails("invalid_request", err.Error()))
	}

	user, err := r.UserService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, user_service.ErrInvalidCredentials) {
			log.Warn("authentication failed", slog.String("email", req.Email))
			return c.JSON(http.StatusUnauthorized, response.ErrAuthenticationFailed)
		}

		log.Error("login failed", sl.Err(err))
		return c.JSON(http.StatusInternalServerError, response.ErrInternal)
	}

	tokens, err := r.AuthService.GenerateTokens(c.Request().Context(), user)
	if err != nil {
		log.Error("failed to generate tokens", sl.Err(err))
		return c.JSON(http.StatusInternalServerError, response.ErrInternal)
	}

	return c.JSON(http.StatusOK, response.Response{
		Status: "success",
		Data: map[string]string{
			"user_id":       tokens.UserID.String(),
			"access_token":  tokens.AccessToken,
			"refresh_token": tokens.RefreshToken,
		},
	})
}

// Refresh godoc
// @Summary Обновление пары токенов
// @Description Меняет валидный refresh-токен на новую пару токенов
// @Tags users
// @Accept json
// @Produce json
// @Param request body request.RefreshRequest true "Refresh-токен"
// @Success 200 {object} models.TokenPair
// @Failure 400 {object} response.ErrorResponse "Неверный формат запроса"
// @Failure 401 {object} response.ErrorResponse "Невалидный refresh-токен"
// @Router /api/v1/refresh [post]
func (r *Routers) Refresh(c echo.Context) error {
	const op = "http.routers.Refresh"

	log := r.log.With(
		slog.String("op", op),
	)

	var req request.RefreshRequest

	if err := c.Bind(&req); err != nil {
		log.Error("validation bind", sl.Err(err))
		return c.JSON(http.StatusBadRequest, response.ErrInvalidRequestFormat)
	}

	if err := c.Validate(req); err != nil {
		return c.JSON(http.StatusBadRequest,
			response.ErrorResponseWithDetails("invalid_request", err.Error()))
	}

	tokens, err := r.AuthService.RefreshTokens(c.Request().Context(), req.RefreshToken)
	if err != nil {
		log.Warn("error refresh tokens", sl.Err(err))
		return c.JSON(http.StatusUnauthorized, response.ErrAuthenticationFailed)
	}

	return c.JSON(http.StatusOK, tokens)
}

// Logout godoc
// @Summary Выход из системы
// @Description Отзывает все refresh-токены пользователя по предъявленному refresh-токену
// @Tags users
// @Accept json
// @Produce json
// @Param request body request.RefreshRequest true "Refresh-токен"
// @Success 200 {object} map[string]bool "Результат выхода" example({"success": true})
// @Failure 400 {object} response.ErrorResponse "Неверный формат запроса"
// @Failure 401 {object} response.ErrorResponse "Невалидный refresh-токен"
// @Router /api/v1/logout [post]
func (r *Routers) Logout(c echo.Context) error {
	const op = "http.routers.Logout"

	log := r.log.With(
		slog.String("op", op),
	)

	var req request.RefreshRequest

	if err := c.Bind(&req); err != nil {
		log.Error("validation bind", sl.Err(err))
		return c.JSON(http.StatusBadRequest, response.ErrInvalidRequestFormat)
	}

	if err := c.Validate(req); err != nil {
		return c.JSON(http.StatusBadRequest,
			response.ErrorResponseWithDetails("invalid_request", err.Error()))
	}

	if err := r.AuthService.Logout(c.Request().Context(), req.RefreshToken); err != nil {
		log.Warn("logout rejected", sl.Err(err))
		return c.JSON(http.StatusUnauthorized, response.ErrAuthenticationFailed)
	}

	return c.JSON(http.StatusOK, map[string]bool{
		"success": true,
	})
}

// GetUser godoc
// @Summary Профиль пользователя
// @Description Возвращает публичный профиль пользователя по id
// @Tags users
// @Produce json
// @Param user_id path string true "UUID пользователя" format(uuid)
// @Success 200 {object} dto.UserResponse "Профиль пользователя"
// @Failure 400 {object} response.ErrorResponse "Невалидный UUID"
// @Failure 404 {object} response.ErrorResponse "Пользователь не найден"
// @Failure 500 {object} response.ErrorResponse "Внутренняя ошибка сервера"
// @Router /api/v1/users/{user_id} [get]
func (r *Routers) GetUser(c echo.Context) error {
	const op = "http.routers.GetUser"

	log := r.log.With(
		slog.String("op", op),
	)

	userID, err := uuid.Parse(c.Param("user_id"))
	if err != nil {
		log.Warn("error parse uuid", sl.Err(err))
		return c.JSON(http.StatusBadRequest,
			response.ErrorResponseWithDetails("invalid_request", "invalid user ID format"))
	}

	user, err := r.UserService.GetUser(c.Request().Context(), userID)
	if err != nil {
		if errors.Is(err, storage.ErrUserNotFound) {
			log.Warn("user not found", slog.String("user_id", userID.String()))
			return c.JSON(http.StatusNotFound, response.ErrUserNotFound)
		}

		log.Error("failed to get user", sl.Err(err))
		return c.JSON(http.StatusInternalServerError, response.ErrInternal)
	}

	return c.JSON(http.StatusOK, dto.ToUserResponse(user))
}

// CreateGallery godoc
// @Summary Создание галереи
// @Description Создаёт пустую галерею для существующего пользователя
// @Tags galleries
// @Accept json
// @Produce json
// @Param request body dto.CreateGalleryRequest true "Данные галереи"
// @Success 201 {object} dto.GalleryResponse "Созданная галерея"
// @Failure 400 {object} response.ErrorResponse "Неверный формат запроса"
// @Failure 404 {object} response.ErrorResponse "Владелец не найден"
// @Failure 500 {object} response.ErrorResponse "Внутренняя ошибка сервера"
// @Router /api/v1/galleries [post]
func (r *Routers) CreateGallery(c echo.Context) error {
	const op = "http.routers.CreateGallery"

	log := r.log.With(
		slog.String("op", op),
	)

	var req dto.CreateGalleryRequest

	if err := c.Bind(&req); err != nil {
		log.Error("failed to bind request", sl.Err(err))
		return c.JSON(http.StatusBadRequest, response.ErrInvalidRequestFormat)
	}

	if err := c.Validate(req); err != nil {
		log.Warn("validation failed", sl.Err(err))
		return c.JSON(http.StatusBadRequest,
			response.ErrorResponseWithDetails("invalid_request", err.Error()))
	}

	gallery, err := r.GalleryService.CreateGallery(c.Request().Context(), req.Title, req.Description, req.OwnerID)
	if err != nil {
		switch {
		case errors.Is(err, gallery_service.ErrInvalidInput):
			return c.JSON(http.StatusBadRequest, response.ErrInvalidRequestFormat)
		case errors.Is(err, gallery_service.ErrOwnerNotFound):
			log.Warn("owner not found", slog.String("owner_id", req.OwnerID.String()))
			return c.JSON(http.StatusNotFound, response.ErrOwnerNotFound)
		default:
			log.Error("failed to create gallery", sl.Err(err))
			return c.JSON(http.StatusInternalServerError, response.ErrInternal)
		}
	}

	return c.JSON(http.StatusCreated, dto.ToGalleryResponse(gallery))
}

// ListUserGalleries godoc
// @Summary Галереи пользователя
// @Description Возвращает все галереи пользователя в порядке создания
// @Tags galleries
// @Produce json
// @Param owner_id path string true "UUID владельца" format(uuid)
// @Success 200 {array} dto.GalleryResponse "Список галерей (может быть пустым)"
// @Failure 400 {object} response.ErrorResponse "Невалидный UUID"
// @Failure 500 {object} response.ErrorResponse "Внутренняя ошибка сервера"
// @Router /api/v1/galleries/user/{owner_id} [get]
func (r *Routers) ListUserGalleries(c echo.Context) error {
	const op = "http.routers.ListUserGalleries"

	log := r.log.With(
		slog.String("op", op),
	)

	ownerID, err := uuid.Parse(c.Param("owner_id"))
	if err != nil {
		log.Warn("error parse uuid", sl.Err(err))
		return c.JSON(http.StatusBadRequest,
			response.ErrorResponseWithDetails("invalid_request", "invalid owner ID format"))
	}

	galleries, err := r.GalleryService.ListUserGalleries(c.Request().Context(), ownerID)
	if err != nil {
		log.Error("failed to list galleries", sl.Err(err))
		return c.JSON(http.StatusInternalServerError, response.ErrInternal)
	}

	return c.JSON(http.StatusOK, dto.ToGalleryResponses(galleries))
}

// DeleteGallery godoc
// @Summary Удаление галереи
// @Description Удаляет галерею вместе с файлами. Идемпотентно: повторное удаление не ошибка.
// @Tags galleries
// @Produce json
// @Param gallery_id path string true "UUID галереи" format(uuid)
// @Success 200 {object} map[string]bool "Результат удаления" example({"success": true})
// @Failure 400 {object} response.ErrorResponse "Невалидный UUID"
// @Failure 500 {object} response.ErrorResponse "Внутренняя ошибка сервера"
// @Router /api/v1/galleries/{gallery_id} [delete]
func (r *Routers) DeleteGallery(c echo.Context) error {
	const op = "http.routers.DeleteGallery"

	log := r.log.With(
		slog.String("op", op),
	)

	galleryID, err := uuid.Parse(c.Param("gallery_id"))
	if err != nil {
		log.Warn("error parse uuid", sl.Err(err))
		return c.JSON(http.StatusBadRequest,
			response.ErrorResponseWithDetails("invalid_request", "invalid gallery ID format"))
	}

	if err := r.GalleryService.DeleteGallery(c.Request().Context(), galleryID); err != nil {
		log.Error("failed to delete gallery", sl.Err(err))
		return c.JSON(http.StatusInternalServerError, response.ErrInternal)
	}

	return c.JSON(http.StatusOK, map[string]bool{
		"success": true,
	})
}

// UploadMedia godoc
// @Summary Загрузка медиафайла в галерею
// @Description Сохраняет файл и атомарно дописывает его метаданные в галерею
// @Tags media
// @Accept multipart/form-data
// @Produce json
// @Param gallery_id path string true "UUID галереи" format(uuid)
// @Param user_id path string true "UUID загружающего пользователя" format(uuid)
// @Param file formData file true "Файл для загрузки"
// @Success 201 {object} dto.MediaResponse "Метаданные загруженного медиа"
// @Failure 400 {object} response.ErrorResponse "Файл отсутствует или невалидный UUID"
// @Failure 404 {object} response.ErrorResponse "Галерея не найдена"
// @Failure 413 {object} response.ErrorResponse "Файл слишком большой"
// @Failure 500 {object} response.ErrorResponse "Внутренняя ошибка сервера"
// @Router /api/v1/galleries/{gallery_id}/{user_id}/media [post]
func (r *Routers) UploadMedia(c echo.Context) error {
	const op = "http.routers.UploadMedia"

	log := r.log.With(
		slog.String("op", op),
	)

	galleryID, err := uuid.Parse(c.Param("gallery_id"))
	if err != nil {
		log.Warn("error parse gallery uuid", sl.Err(err))
		return c.JSON(http.StatusBadRequest,
			response.ErrorResponseWithDetails("invalid_request", "invalid gallery ID format"))
	}

	ownerID, err := uuid.Parse(c.Param("user_id"))
	if err != nil {
		log.Warn("error parse user uuid", sl.Err(err))
		return c.JSON(http.StatusBadRequest,
			response.ErrorResponseWithDetails("invalid_request", "invalid user ID format"))
	}

	file, err := c.FormFile("file")
	if err != nil {
		log.Warn("empty file in request", sl.Err(err))
		return c.JSON(http.StatusBadRequest, response.ErrFileRequired)
	}

	log.Debug("got file for upload",
		slog.String("filename", file.Filename),
		slog.Int64("size", file.Size),
		slog.String("mime_type", file.Header.Get("Content-Type")),
	)

	media, err := r.MediaService.UploadMedia(c.Request().Context(), galleryID, ownerID, file)
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrFileRequired):
			return c.JSON(http.StatusBadRequest, response.ErrFileRequired)
		case errors.Is(err, storage.ErrFileTooLarge):
			return c.JSON(http.StatusRequestEntityTooLarge, response.ErrFileTooLarge)
		case errors.Is(err, storage.ErrGalleryNotFound):
			log.Warn("gallery not found", slog.String("gallery_id", galleryID.String()))
			return c.JSON(http.StatusNotFound, response.ErrGalleryNotFound)
		default:
			log.Error("error upload media", sl.Err(err))
			return c.JSON(http.StatusInternalServerError, response.ErrInternal)
		}
	}

	log.Info("upload successful",
		slog.String("media_id", media.ID.String()),
		slog.String("gallery_id", galleryID.String()),
	)

	return c.JSON(http.StatusCreated, dto.ToMediaResponse(media))
}
