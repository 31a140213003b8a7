package app

import (
	"context"
	"log/slog"

	httpapp "pixhub/internal/app/http"
	"pixhub/internal/config"
	"pixhub/internal/repository"
	"pixhub/internal/services/gallery_service"
	"pixhub/internal/services/identity"
	"pixhub/internal/services/media_service"
	"pixhub/internal/services/token_service"
	"pixhub/internal/services/user_service"
	filestorage "pixhub/internal/storage/filestorage"
	redisapp "pixhub/internal/storage/redis"
	httprouters "pixhub/internal/transport/http"
)

type App struct {
	HTTPServer *httpapp.Server

	repo  *repository.Repository
	redis *redisapp.Client
	log   *slog.Logger
}

func New(log *slog.Logger, cfg *config.Config) *App {
	repo, err := repository.NewRepository(context.Background(), cfg.DSN)
	if err != nil {
		panic(err)
	}

	redisClient := redisapp.NewClient(cfg.Redis.RedisAddr, cfg.Redis.RedisPassword, cfg.Redis.RedisDB)
	if err := redisClient.HealthCheck(context.Background()); err != nil {
		panic(err)
	}

	fileStorage, err := filestorage.NewLocalFileStorage(
		cfg.FileStorage.BaseDir,
		cfg.FileStorage.BaseURL,
		cfg.FileStorage.MaxSize,
	)
	if err != nil {
		panic(err)
	}

	userService := user_service.NewUserService(log, repo.User)
	tokenService := token_service.NewTokenService(log, repository.NewRedisTokenRepo(redisClient), cfg.AppSecret)
	identityGateway := identity.NewGateway(log, repo.User, cfg.IdentityCacheTTL)
	galleryService := gallery_service.NewGalleryService(log, repo.Gallery, fileStorage, identityGateway)
	mediaService := media_service.NewMediaService(log, repo.Gallery, fileStorage)

	routers := httprouters.NewRouter(log, userService, tokenService, galleryService, mediaService)

	server := httpapp.New(log, cfg.HTTP.Host, cfg.HTTP.Port, cfg.FileStorage.BaseDir, routers)

	return &App{
		HTTPServer: server,
		repo:       repo,
		redis:      redisClient,
		log:        log,
	}
}

func (a *App) Stop() {
	if err := a.HTTPServer.Stop(); err != nil {
		a.log.Error("failed to stop http server", slog.String("error", err.Error()))
	}

	a.repo.Close()

	if err := a.redis.Close(); err != nil {
		a.log.Error("failed to close redis client", slog.String("error", err.Error()))
	}
}
