package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"reputation/config"
	_ "reputation/docs"
	"reputation/internal/cache"
	"reputation/internal/event"
	"reputation/internal/repository"
	"reputation/internal/service"
	"reputation/internal/storage"
	"reputation/internal/transport/rest"
	"reputation/pkg/auth"
	"reputation/pkg/database"
	pkglogger "reputation/pkg/logger"
)

// @title Reputation API
// @version 1.0
// @description Проверенные отзывы об исполнителях и их рейтинг

// @BasePath /api/v1

// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name Authorization
func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatalf("не удалось загрузить конфигурацию: %v", err)
	}

	logger, err := pkglogger.NewLogger(cfg.Environment, cfg.LogLevel, cfg.Name)
	if err != nil {
		log.Fatalf("не удалось создать логгер: %v", err)
	}
	defer logger.Sync()

	ctx := context.Background()

	db, err := database.NewPostgresDB(ctx, cfg.Postgres)
	if err != nil {
		logger.Fatal("Не удалось подключиться к БД", zap.Error(err))
	}
	defer db.Close()

	logger.Info("Запуск миграций базы данных")
	if err := database.RunMigrations(ctx, db, logger); err != nil {
		logger.Fatal("Ошибка при выполнении миграций", zap.Error(err))
	}
	logger.Info("Миграции успешно выполнены")

	deps := service.Deps{
		Repos:  repository.NewRepositories(db),
		Logger: logger,
		Config: cfg,
	}

	if cfg.S3.Endpoint != "" {
		s3Storage, err := storage.NewS3Storage(ctx, cfg.S3, logger)
		if err != nil {
			logger.Fatal("Не удалось инициализировать S3 хранилище", zap.Error(err))
		}
		deps.PhotoStorage = s3Storage
		logger.Info("S3 хранилище успешно инициализировано", zap.String("endpoint", cfg.S3.Endpoint))
	} else {
		logger.Warn("S3 хранилище не настроено, фотографии отзывов не проверяются")
	}

	var redisClient *redis.Client
	if cfg.Redis.Addr != "" {
		redisClient, err = cache.NewRedisClient(ctx, cfg.Redis)
		if err != nil {
			logger.Fatal("Не удалось подключиться к Redis", zap.Error(err))
		}
		defer redisClient.Close()
		deps.StatsCache = cache.NewStatisticsCache(redisClient, cfg.Redis.StatsTTL, logger)
		logger.Info("Кэш статистики включен", zap.String("addr", cfg.Redis.Addr))
	} else {
		logger.Warn("Redis не настроен, статистика считается без кэша")
	}

	if len(cfg.Kafka.Brokers) > 0 {
		producer := event.NewProducer(cfg.Kafka, logger)
		defer func() {
			if err := producer.Close(); err != nil {
				logger.Error("Ошибка закрытия Kafka producer", zap.Error(err))
			}
		}()
		deps.Events = producer
		logger.Info("Публикация событий включена",
			zap.Strings("brokers", cfg.Kafka.Brokers),
			zap.String("topic", cfg.Kafka.Topic))
	} else {
		logger.Warn("Kafka не настроена, события отзывов не публикуются")
	}

	tokens, err := auth.NewTokenManager(cfg.JWT)
	if err != nil {
		logger.Fatal("Не удалось инициализировать JWT", zap.Error(err))
	}

	services := service.NewServices(deps)

	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())

	handler := rest.NewHandler(services, tokens, logger, cfg)
	handler.InitRoutes(router)

	srv := &http.Server{
		Addr:           ":" + cfg.HTTP.Port,
		Handler:        router,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderMB << 20,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("Ошибка запуска сервера", zap.Error(err))
		}
	}()

	logger.Info("Сервер запущен", zap.String("addr", srv.Addr), zap.String("version", cfg.Version))

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Выключение сервера...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Ошибка при остановке сервера", zap.Error(err))
		return
	}

	logger.Info("Сервер успешно остановлен")
}
