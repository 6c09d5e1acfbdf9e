package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	"reputation/config"
	"reputation/internal/metrics"
	"reputation/internal/service"
	pkgvalidator "reputation/pkg/validator"
)

// TokenParser resolves a bearer token to the caller's actor id.
type TokenParser interface {
	Parse(token string) (int64, error)
}

type Handler struct {
	services *service.Services
	tokens   TokenParser
	logger   *zap.Logger
	config   *config.Config
}

func NewHandler(services *service.Services, tokens TokenParser, logger *zap.Logger, config *config.Config) *Handler {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		pkgvalidator.Register(v)
	}

	return &Handler{
		services: services,
		tokens:   tokens,
		logger:   logger,
		config:   config,
	}
}

func (h *Handler) InitRoutes(router *gin.Engine) {
	router.Use(h.requestIDMiddleware())

	router.Use(h.loggerMiddleware())

	router.Use(h.errorMiddleware())

	router.Use(h.corsMiddleware())

	router.Use(metrics.GinMiddleware())

	router.GET("/health", h.health)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/swagger", func(c *gin.Context) {
		c.Redirect(http.StatusMovedPermanently, "/swagger/index.html")
	})

	api := router.Group("/api/v1")
	{
		ratings := api.Group("/ratings")
		ratings.Use(h.authMiddleware())
		{
			ratings.POST("", h.submitRating)
			ratings.GET("/:id", h.getRatingByID)
			ratings.GET("/:id/photos", h.getRatingPhotos)
			ratings.POST("/:id/reply", h.attachReply)
		}

		providers := api.Group("/providers")
		{
			providers.GET("/:id", h.getProviderByID)
			providers.GET("/:id/ratings", h.getProviderRatings)
			providers.GET("/:id/statistics", h.getProviderStatistics)
		}
	}
}

// @Summary Проверка состояния
// @Tags Служебные
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"service": h.config.Name,
		"version": h.config.Version,
	})
}
