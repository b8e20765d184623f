package repoargs

import (
	"github.com/shopspring/decimal"
)

type CreateTransfer struct {
	FromCardID int64
	ToCardID   int64
	Amount     decimal.Decimal
}
