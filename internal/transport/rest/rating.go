package rest

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"reputation/internal/domain"
	pkgvalidator "reputation/pkg/validator"
)

// @Summary Оставить отзыв
// @Description Создает проверенный отзыв об исполнителе по закрытой заявке. Требуется утвержденная смета и подтверждение администратора сообщества
// @Tags Отзывы
// @Accept json
// @Produce json
// @Param input body domain.SubmitRatingDTO true "Данные отзыва"
// @Success 201 {object} domain.Rating "Созданный отзыв"
// @Failure 400 {object} errorResponseBody "Ошибка валидации"
// @Failure 401 {object} errorResponseBody "Не авторизован"
// @Failure 403 {object} errorResponseBody "Доступ запрещен"
// @Failure 404 {object} errorResponseBody "Заявка, смета или участник не найдены"
// @Failure 409 {object} errorResponseBody "Отзыв по заявке уже оставлен"
// @Failure 422 {object} errorResponseBody "Заявка или смета в недопустимом состоянии"
// @Failure 500 {object} errorResponseBody "Внутренняя ошибка сервера"
// @Security ApiKeyAuth
// @Router /ratings [post]
func (h *Handler) submitRating(c *gin.Context) {
	actorID, err := getActorID(c)
	if err != nil {
		unauthorizedResponse(c)
		return
	}

	var req domain.SubmitRatingDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("неверный формат данных отзыва", zap.Int64("actorID", actorID), zap.Error(err))
		badRequestResponse(c, bindingMessage(err))
		return
	}

	rating, err := h.services.Rating.Submit(c.Request.Context(), actorID, req)
	if err != nil {
		h.logger.Warn("отзыв отклонен",
			zap.Int64("actorID", actorID),
			zap.Int64("problemReportID", req.ProblemReportID),
			zap.Error(err))
		h.appErrorResponse(c, err)
		return
	}

	createdResponse(c, rating)
}

// @Summary Получить отзыв по ID
// @Tags Отзывы
// @Produce json
// @Param id path int true "ID отзыва"
// @Success 200 {object} domain.Rating "Данные отзыва"
// @Failure 400 {object} errorResponseBody "Неверный формат ID"
// @Failure 404 {object} errorResponseBody "Отзыв не найден"
// @Security ApiKeyAuth
// @Router /ratings/{id} [get]
func (h *Handler) getRatingByID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	rating, err := h.services.Rating.GetByID(c.Request.Context(), id)
	if err != nil {
		h.logger.Warn("ошибка получения отзыва", zap.Error(err), zap.Int64("id", id))
		h.appErrorResponse(c, err)
		return
	}

	successResponse(c, http.StatusOK, rating)
}

// @Summary Ссылки на фотографии отзыва
// @Description Возвращает временные ссылки на фотографии, приложенные к отзыву
// @Tags Отзывы
// @Produce json
// @Param id path int true "ID отзыва"
// @Success 200 {array} domain.PhotoLink
// @Failure 404 {object} errorResponseBody "Отзыв не найден"
// @Security ApiKeyAuth
// @Router /ratings/{id}/photos [get]
func (h *Handler) getRatingPhotos(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	links, err := h.services.Rating.PhotoLinks(c.Request.Context(), id)
	if err != nil {
		h.logger.Warn("ошибка получения фотографий отзыва", zap.Error(err), zap.Int64("id", id))
		h.appErrorResponse(c, err)
		return
	}

	successResponse(c, http.StatusOK, links)
}

// @Summary Ответить на отзыв
// @Description Исполнитель, о котором оставлен отзыв, может ответить на него один раз
// @Tags Отзывы
// @Accept json
// @Produce json
// @Param id path int true "ID отзыва"
// @Param input body domain.AttachReplyDTO true "Текст ответа"
// @Success 200 {object} domain.Rating "Отзыв с ответом"
// @Failure 400 {object} errorResponseBody "Пустой или слишком длинный ответ"
// @Failure 403 {object} errorResponseBody "Отвечать может только оцененный исполнитель"
// @Failure 404 {object} errorResponseBody "Отзыв не найден"
// @Failure 409 {object} errorResponseBody "Ответ уже дан"
// @Security ApiKeyAuth
// @Router /ratings/{id}/reply [post]
func (h *Handler) attachReply(c *gin.Context) {
	actorID, err := getActorID(c)
	if err != nil {
		unauthorizedResponse(c)
		return
	}

	id, ok := parseID(c)
	if !ok {
		return
	}

	var req domain.AttachReplyDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("неверный формат ответа на отзыв", zap.Int64("ratingID", id), zap.Error(err))
		badRequestResponse(c, bindingMessage(err))
		return
	}

	rating, err := h.services.Rating.AttachReply(c.Request.Context(), actorID, id, req)
	if err != nil {
		h.logger.Warn("ответ на отзыв отклонен",
			zap.Int64("actorID", actorID),
			zap.Int64("ratingID", id),
			zap.Error(err))
		h.appErrorResponse(c, err)
		return
	}

	successResponse(c, http.StatusOK, rating)
}

func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		badRequestResponse(c, "неверный формат ID")
		return 0, false
	}
	return id, true
}

func bindingMessage(err error) string {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		return pkgvalidator.FormatErrors(verrs)
	}
	return "неверный формат данных"
}
