package domain

import (
	"github.com/shopspring/decimal"

	"time"
)

type User struct {
	ID        int64
	CreatedAt time.Time
	UpdatedAt time.Time
	Username  string
	Password  string
}

type Card struct {
	ID             int64
	CreatedAt      time.Time
	UpdatedAt      time.Time
	UserID         int64
	Number         string
	ExpirationDate time.Time
	Status         CardStatusType
	Balance        decimal.Decimal
}

const maskedNumberTailLen = 4

// MaskedNumber возвращает номер карты в замаскированном виде (`**** **** **** 1234`).
// Полный номер карты никогда не должен покидать пределы приложения.
func (c *Card) MaskedNumber() string {
	if len(c.Number) < maskedNumberTailLen {
		return "****"
	}
	return "**** **** **** " + c.Number[len(c.Number)-maskedNumberTailLen:]
}

// IsExpired сообщает, истек ли срок действия карты на дату today. Сравниваются только
// календарные даты, время суток не учитывается.
func (c *Card) IsExpired(today time.Time) bool {
	return TruncateToDate(c.ExpirationDate).Before(TruncateToDate(today))
}

// TruncateToDate отбрасывает время суток. Календарная дата берется в таймзоне самого
// значения, результат всегда в UTC - даты из разных таймзон сравнимы между собой.
func TruncateToDate(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// Transfer неизменяемый факт перевода средств между двумя картами одного юзера.
// После создания запись не обновляется и не удаляется.
type Transfer struct {
	ID         int64
	CreatedAt  time.Time
	FromCardID int64
	ToCardID   int64
	Amount     decimal.Decimal
}
