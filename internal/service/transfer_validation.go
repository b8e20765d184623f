package service

import (
	"time"

	"github.com/fsdevblog/groph-cards/internal/domain"
)

// validateTransfer прогоняет проверки перевода в фиксированном порядке и возвращает ошибку
// первой не прошедшей проверки. Функция чистая: не обращается к хранилищу, не мутирует
// аргументы, повторный запуск на тех же данных дает тот же результат.
//
// Порядок проверок:
//  1. сумма строго положительна;
//  2. карта-источник и карта-получатель различаются;
//  3. обе карты загружены;
//  4. обе карты в статусе ACTIVE;
//  5. срок действия обеих карт не истек на дату today;
//  6. обе карты принадлежат одному юзеру;
//  7. баланса карты-источника хватает на сумму перевода.
func validateTransfer(args TransferArgs, from, to *domain.Card, today time.Time) error {
	if !args.Amount.IsPositive() {
		return domain.ErrInvalidAmount
	}
	if args.FromCardID == args.ToCardID {
		return domain.ErrSameCard
	}
	if from == nil || to == nil {
		return domain.ErrRecordNotFound
	}
	if from.Status != domain.CardStatusActive || to.Status != domain.CardStatusActive {
		return domain.ErrCardNotActive
	}
	if from.IsExpired(today) || to.IsExpired(today) {
		return domain.ErrCardExpired
	}
	if from.UserID != to.UserID {
		return domain.ErrOwnerConflict
	}
	if from.Balance.LessThan(args.Amount) {
		return domain.ErrNotEnoughBalance
	}
	return nil
}
