package repoargs

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/fsdevblog/groph-cards/internal/domain"
)

type CreateCard struct {
	UserID         int64
	Number         string
	ExpirationDate time.Time
	Status         domain.CardStatusType
	Balance        decimal.Decimal
}
