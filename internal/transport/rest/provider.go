package rest

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"reputation/internal/domain"
)

// @Summary Получить исполнителя
// @Description Профиль исполнителя вместе со сводным рейтингом
// @Tags Исполнители
// @Produce json
// @Param id path int true "ID исполнителя"
// @Success 200 {object} domain.Provider
// @Failure 404 {object} errorResponseBody "Исполнитель не найден"
// @Router /providers/{id} [get]
func (h *Handler) getProviderByID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	provider, err := h.services.Provider.GetByID(c.Request.Context(), id)
	if err != nil {
		h.logger.Warn("ошибка получения исполнителя", zap.Error(err), zap.Int64("id", id))
		h.appErrorResponse(c, err)
		return
	}

	successResponse(c, http.StatusOK, provider)
}

// @Summary Отзывы об исполнителе
// @Tags Исполнители
// @Produce json
// @Param id path int true "ID исполнителя"
// @Param community_id query int false "ID сообщества"
// @Param limit query int false "Размер страницы" default(20)
// @Param offset query int false "Смещение" default(0)
// @Success 200 {object} paginatedResponse
// @Failure 400 {object} errorResponseBody "Неверные параметры"
// @Failure 404 {object} errorResponseBody "Исполнитель не найден"
// @Router /providers/{id}/ratings [get]
func (h *Handler) getProviderRatings(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	communityID, ok := parseCommunityID(c)
	if !ok {
		return
	}

	// Unparsable values fall back to the service defaults.
	limit, _ := strconv.Atoi(c.Query("limit"))
	offset, _ := strconv.Atoi(c.Query("offset"))

	filter := domain.RatingFilter{
		ProviderID:  id,
		CommunityID: communityID,
		Limit:       limit,
		Offset:      offset,
	}

	result, err := h.services.Rating.ListByProvider(c.Request.Context(), filter)
	if err != nil {
		h.logger.Warn("ошибка получения отзывов исполнителя", zap.Error(err), zap.Int64("providerID", id))
		h.appErrorResponse(c, err)
		return
	}

	page := result.Offset/result.Limit + 1

	paginatedSuccessResponse(c, result.Ratings, result.Total, page, result.Limit)
}

// @Summary Статистика исполнителя
// @Description Средние оценки по всем проверенным отзывам, округленные до десятых. Можно ограничить одним сообществом
// @Tags Исполнители
// @Produce json
// @Param id path int true "ID исполнителя"
// @Param community_id query int false "ID сообщества"
// @Success 200 {object} domain.ProviderStatistics
// @Failure 400 {object} errorResponseBody "Неверные параметры"
// @Failure 404 {object} errorResponseBody "Исполнитель не найден"
// @Router /providers/{id}/statistics [get]
func (h *Handler) getProviderStatistics(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	communityID, ok := parseCommunityID(c)
	if !ok {
		return
	}

	stats, err := h.services.Statistics.ProviderStatistics(c.Request.Context(), id, communityID)
	if err != nil {
		h.logger.Warn("ошибка расчета статистики", zap.Error(err), zap.Int64("providerID", id))
		h.appErrorResponse(c, err)
		return
	}

	successResponse(c, http.StatusOK, stats)
}

func parseCommunityID(c *gin.Context) (*int64, bool) {
	raw := c.Query("community_id")
	if raw == "" {
		return nil, true
	}

	communityID, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || communityID <= 0 {
		badRequestResponse(c, "неверный формат community_id")
		return nil, false
	}
	return &communityID, true
}
