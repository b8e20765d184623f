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

type CardsHandler struct {
	cardSvs CardServicer
}

func NewCardsHandler(cardSvs CardServicer) *CardsHandler {
	return &CardsHandler{
		cardSvs: cardSvs,
	}
}

// CardResponse наружу уходит только замаскированный номер карты.
type CardResponse struct {
	ID             int64                 `json:"id"`
	UserID         int64                 `json:"user_id"`
	Number         string                `json:"number"`
	ExpirationDate string                `json:"expiration_date"`
	Status         domain.CardStatusType `json:"status"`
	Balance        float64               `json:"balance"`
	CreatedAt      time.Time             `json:"created_at"`
}

func toCardResponse(card *domain.Card) CardResponse {
	return CardResponse{
		ID:             card.ID,
		UserID:         card.UserID,
		Number:         card.MaskedNumber(),
		ExpirationDate: card.ExpirationDate.Format(dateLayout),
		Status:         card.Status,
		Balance:        card.Balance.InexactFloat64(),
		CreatedAt:      card.CreatedAt,
	}
}

// Index GET RouteGroup + CardsRoute. Список карт текущего юзера.
func (h *CardsHandler) Index(c *gin.Context) {
	currentUserID := getUserIDFromContext(c)

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	cards, err := h.cardSvs.GetByUserID(reqCtx, currentUserID)
	if err != nil {
		_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
		return
	}

	response := make([]CardResponse, len(cards))
	for i := range cards {
		response[i] = toCardResponse(&cards[i])
	}
	c.JSON(http.StatusOK, response)
}

type CardCreateParams struct {
	Number         string          `binding:"required"  json:"number"`
	ExpirationDate string          `binding:"required"  json:"expiration_date"`
	InitialBalance decimal.Decimal `json:"initial_balance"`
}

// Create POST RouteGroup + CardsRoute. Выпускает карту для текущего юзера.
func (h *CardsHandler) Create(c *gin.Context) {
	currentUserID := getUserIDFromContext(c)

	var params CardCreateParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		_ = c.AbortWithError(http.StatusBadRequest, bindErr).SetType(gin.ErrorTypeBind)
		return
	}

	expirationDate, dateErr := time.Parse(dateLayout, params.ExpirationDate)
	if dateErr != nil {
		c.AbortWithStatus(http.StatusUnprocessableEntity)
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	card, createErr := h.cardSvs.Create(reqCtx, service.CreateCardArgs{
		UserID:         currentUserID,
		Number:         params.Number,
		ExpirationDate: expirationDate,
		InitialBalance: params.InitialBalance,
	})
	if createErr != nil {
		switch {
		case errors.Is(createErr, domain.ErrInvalidCardNumber),
			errors.Is(createErr, domain.ErrNegativeBalance):
			c.AbortWithStatus(http.StatusUnprocessableEntity)
		case errors.Is(createErr, domain.ErrDuplicateKey):
			c.AbortWithStatus(http.StatusConflict)
		default:
			_ = c.AbortWithError(http.StatusInternalServerError, createErr).SetType(gin.ErrorTypePrivate)
		}
		return
	}

	c.JSON(http.StatusCreated, toCardResponse(card))
}

// Show GET RouteGroup + CardRoute.
func (h *CardsHandler) Show(c *gin.Context) {
	card, ok := h.loadOwnCard(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, toCardResponse(card))
}

type CardUpdateParams struct {
	ExpirationDate string `binding:"required" json:"expiration_date"`
}

// Update PUT RouteGroup + CardRoute. Продлевает срок действия карты.
func (h *CardsHandler) Update(c *gin.Context) {
	card, ok := h.loadOwnCard(c)
	if !ok {
		return
	}

	var params CardUpdateParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		_ = c.AbortWithError(http.StatusBadRequest, bindErr).SetType(gin.ErrorTypeBind)
		return
	}
	expirationDate, dateErr := time.Parse(dateLayout, params.ExpirationDate)
	if dateErr != nil {
		c.AbortWithStatus(http.StatusUnprocessableEntity)
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	updated, updErr := h.cardSvs.UpdateExpiration(reqCtx, card.ID, expirationDate)
	if updErr != nil {
		if errors.Is(updErr, domain.ErrExpirationDateInPast) {
			c.AbortWithStatus(http.StatusUnprocessableEntity)
			return
		}
		_ = c.AbortWithError(http.StatusInternalServerError, updErr).SetType(gin.ErrorTypePrivate)
		return
	}
	c.JSON(http.StatusOK, toCardResponse(updated))
}

// Block POST RouteGroup + CardBlockRoute. Блокирует карту по запросу владельца.
func (h *CardsHandler) Block(c *gin.Context) {
	card, ok := h.loadOwnCard(c)
	if !ok {
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	updated, updErr := h.cardSvs.UpdateStatus(reqCtx, card.ID, domain.CardStatusBlocked)
	if updErr != nil {
		_ = c.AbortWithError(http.StatusInternalServerError, updErr).SetType(gin.ErrorTypePrivate)
		return
	}
	c.JSON(http.StatusOK, toCardResponse(updated))
}

type CardBalanceResponse struct {
	CardID  int64   `json:"card_id"`
	Balance float64 `json:"balance"`
}

// Balance GET RouteGroup + CardBalanceRoute.
func (h *CardsHandler) Balance(c *gin.Context) {
	card, ok := h.loadOwnCard(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, CardBalanceResponse{
		CardID:  card.ID,
		Balance: card.Balance.InexactFloat64(),
	})
}

// loadOwnCard загружает карту из параметра пути и проверяет что она принадлежит текущему
// юзеру: 404 для несуществующей карты, 403 для чужой.
func (h *CardsHandler) loadOwnCard(c *gin.Context) (*domain.Card, bool) {
	cardID, ok := getCardIDParam(c)
	if !ok {
		return nil, false
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	card, err := h.cardSvs.GetByID(reqCtx, cardID)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			c.AbortWithStatus(http.StatusNotFound)
			return nil, false
		}
		_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
		return nil, false
	}
	if card.UserID != getUserIDFromContext(c) {
		c.AbortWithStatus(http.StatusForbidden)
		return nil, false
	}
	return card, true
}
