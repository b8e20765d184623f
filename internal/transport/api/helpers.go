package api

import (
	"net/http"
	"strconv"

	"github.com/fsdevblog/groph-cards/internal/transport/api/middlewares"
	"github.com/gin-gonic/gin"
)

// dateLayout формат дат (срок действия карты) во внешнем API.
const dateLayout = "2006-01-02"

func getUserIDFromContext(c *gin.Context) int64 {
	return c.GetInt64(middlewares.CurrentUserIDKey)
}

// getCardIDParam извлекает id карты из параметра пути. При невалидном значении
// пишет 400 и возвращает false вторым значением.
func getCardIDParam(c *gin.Context) (int64, bool) {
	cardID, err := strconv.ParseInt(c.Param("cardID"), 10, 64)
	if err != nil || cardID <= 0 {
		c.AbortWithStatus(http.StatusBadRequest)
		return 0, false
	}
	return cardID, true
}
