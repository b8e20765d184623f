package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/shopspring/decimal"

	"github.com/fsdevblog/groph-cards/internal/domain"
	"github.com/fsdevblog/groph-cards/internal/service"
	"github.com/gin-gonic/gin"
)

type TransfersHandler struct {
	transferSvs TransferServicer
	cardSvs     CardServicer
}

func NewTransfersHandler(transferSvs TransferServicer, cardSvs CardServicer) *TransfersHandler {
	return &TransfersHandler{
		transferSvs: transferSvs,
		cardSvs:     cardSvs,
	}
}

type TransferParams struct {
	FromCardID int64           `binding:"required,gt=0" json:"from_card_id"`
	ToCardID   int64           `binding:"required,gt=0" json:"to_card_id"`
	Amount     decimal.Decimal `binding:"required"      json:"amount"`
}

type TransferResponse struct {
	ID         int64     `json:"id"`
	FromCardID int64     `json:"from_card_id"`
	ToCardID   int64     `json:"to_card_id"`
	Amount     float64   `json:"amount"`
	CreatedAt  time.Time `json:"created_at"`
}

// Create POST RouteGroup + TransfersRoute. Перевод средств между картами текущего юзера.
//
// Слой транспорта проверяет принадлежность обеих карт текущему юзеру (404 - карта
// не найдена, 403 - чужая карта) до вызова сервиса; сервис перепроверяет владельца
// самостоятельно, не доверяя этой проверке.
func (h *TransfersHandler) Create(c *gin.Context) {
	currentUserID := getUserIDFromContext(c)

	var params TransferParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		_ = c.AbortWithError(http.StatusBadRequest, bindErr).SetType(gin.ErrorTypeBind)
		return
	}

	if !h.assertCardOwner(c, params.FromCardID, currentUserID) {
		return
	}
	if params.ToCardID != params.FromCardID && !h.assertCardOwner(c, params.ToCardID, currentUserID) {
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	transfer, err := h.transferSvs.Transfer(reqCtx, service.TransferArgs{
		ActorID:    currentUserID,
		FromCardID: params.FromCardID,
		ToCardID:   params.ToCardID,
		Amount:     params.Amount,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			c.AbortWithStatus(http.StatusNotFound)
		case errors.Is(err, domain.ErrOwnerConflict):
			c.AbortWithStatus(http.StatusForbidden)
		case errors.Is(err, domain.ErrNotEnoughBalance):
			c.AbortWithStatus(http.StatusPaymentRequired)
		case errors.Is(err, domain.ErrInvalidAmount),
			errors.Is(err, domain.ErrSameCard),
			errors.Is(err, domain.ErrCardNotActive),
			errors.Is(err, domain.ErrCardExpired):
			_ = c.Error(err)
			c.AbortWithStatusJSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		default:
			_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
		}
		return
	}

	c.JSON(http.StatusCreated, TransferResponse{
		ID:         transfer.ID,
		FromCardID: transfer.FromCardID,
		ToCardID:   transfer.ToCardID,
		Amount:     transfer.Amount.InexactFloat64(),
		CreatedAt:  transfer.CreatedAt,
	})
}

func (h *TransfersHandler) assertCardOwner(c *gin.Context, cardID, userID int64) bool {
	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	card, err := h.cardSvs.GetByID(reqCtx, cardID)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			c.AbortWithStatus(http.StatusNotFound)
			return false
		}
		_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
		return false
	}
	if card.UserID != userID {
		c.AbortWithStatus(http.StatusForbidden)
		return false
	}
	return true
}
