package service

import (
	"context"
	"fmt"
	"regexp"
	"time"

	"github.com/shopspring/decimal"

	"github.com/fsdevblog/groph-cards/internal/domain"
	"github.com/fsdevblog/groph-cards/internal/repository/repoargs"
	"github.com/fsdevblog/groph-cards/pkg/uow"
)

// cardNumberRe допустимый формат номера карты: только цифры, от 12 до 19 знаков.
var cardNumberRe = regexp.MustCompile(`^\d{12,19}$`)

// CardService операции жизненного цикла карты: создание, смена статуса, продление срока
// действия. Баланс карты сервис не трогает никогда - это зона ответственности TransferService.
type CardService struct {
	uow      uow.UOW
	cardRepo CardRepository
}

func NewCardService(u uow.UOW) (*CardService, error) {
	cardRepo, cardRepoErr := uow.GetRepositoryAs[CardRepository](u, uow.RepositoryName(repoargs.CardRepoName))
	if cardRepoErr != nil {
		return nil, cardRepoErr
	}
	return &CardService{
		uow:      u,
		cardRepo: cardRepo,
	}, nil
}

type CreateCardArgs struct {
	UserID         int64
	Number         string
	ExpirationDate time.Time
	InitialBalance decimal.Decimal
}

// Create выпускает карту в статусе ACTIVE. Номер карты должен состоять из 12-19 цифр и быть
// уникальным, стартовый баланс - неотрицательным (нулевое значение допустимо). Возвращает
// domain.ErrInvalidCardNumber, domain.ErrNegativeBalance, domain.ErrDuplicateKey либо
// domain.ErrRecordNotFound для несуществующего владельца.
func (s *CardService) Create(ctx context.Context, args CreateCardArgs) (*domain.Card, error) {
	if !cardNumberRe.MatchString(args.Number) {
		return nil, domain.ErrInvalidCardNumber
	}
	if args.InitialBalance.IsNegative() {
		return nil, domain.ErrNegativeBalance
	}

	var card *domain.Card
	txErr := s.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		cardRepo, cardRepoErr := uow.GetAs[CardRepository](tx, uow.RepositoryName(repoargs.CardRepoName))
		if cardRepoErr != nil {
			return cardRepoErr //nolint:wrapcheck
		}

		exists, existsErr := cardRepo.ExistsByNumber(c, args.Number)
		if existsErr != nil {
			return existsErr //nolint:wrapcheck
		}
		if exists {
			// дубликат отлавливается и уникальным индексом, но проверка здесь дает
			// чистую доменную ошибку без текста констрейнта.
			return domain.ErrDuplicateKey
		}

		var createErr error
		card, createErr = cardRepo.CreateCard(c, repoargs.CreateCard{
			UserID:         args.UserID,
			Number:         args.Number,
			ExpirationDate: args.ExpirationDate,
			Status:         domain.CardStatusActive,
			Balance:        args.InitialBalance,
		})
		return createErr //nolint:wrapcheck
	})

	if txErr != nil {
		return nil, fmt.Errorf("creating card: %w", txErr)
	}
	return card, nil
}

// UpdateStatus выставляет карте новый статус. Переходы не ограничены: заблокированную карту
// можно вернуть в ACTIVE. Гонка с параллельным переводом разрешается на уровне изоляции
// транзакций: перевод перечитывает статус под блокировкой строки и видит закоммиченное значение.
func (s *CardService) UpdateStatus(
	ctx context.Context,
	cardID int64,
	status domain.CardStatusType,
) (*domain.Card, error) {
	if !domain.ValidCardStatus(status) {
		return nil, domain.ErrInvalidCardStatus
	}
	card, err := s.cardRepo.UpdateStatus(ctx, cardID, status)
	if err != nil {
		return nil, fmt.Errorf("updating card status: %w", err)
	}
	return card, nil
}

// UpdateExpiration продлевает срок действия карты. Дата в прошлом отклоняется
// с ошибкой domain.ErrExpirationDateInPast.
func (s *CardService) UpdateExpiration(
	ctx context.Context,
	cardID int64,
	expirationDate time.Time,
) (*domain.Card, error) {
	candidate := domain.Card{ExpirationDate: expirationDate}
	if candidate.IsExpired(time.Now()) {
		return nil, domain.ErrExpirationDateInPast
	}
	card, err := s.cardRepo.UpdateExpiration(ctx, cardID, expirationDate)
	if err != nil {
		return nil, fmt.Errorf("updating card expiration: %w", err)
	}
	return card, nil
}

// GetByID возвращает карту по id.
func (s *CardService) GetByID(ctx context.Context, cardID int64) (*domain.Card, error) {
	card, err := s.cardRepo.FindByID(ctx, cardID)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return card, nil
}

// GetByUserID возвращает карты юзера.
func (s *CardService) GetByUserID(ctx context.Context, userID int64) ([]domain.Card, error) {
	cards, err := s.cardRepo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return cards, nil
}

// Delete удаляет карту. Административная операция.
func (s *CardService) Delete(ctx context.Context, cardID int64) error {
	if err := s.cardRepo.DeleteCard(ctx, cardID); err != nil {
		return fmt.Errorf("deleting card: %w", err)
	}
	return nil
}

// MarkExpired помечает статусом EXPIRED активные карты с истекшей датой, не более limit
// за вызов. Возвращает id обновленных карт. Используется фоновым обработчиком.
//
// В хранилище передается усеченная до даты граница: карта с датой окончания "сегодня"
// действительна до конца дня и помечается только следующим днем, ровно как в IsExpired.
func (s *CardService) MarkExpired(ctx context.Context, limit uint) ([]int64, error) {
	ids, err := s.cardRepo.MarkExpired(ctx, domain.TruncateToDate(time.Now()), limit)
	if err != nil {
		return nil, fmt.Errorf("marking expired cards: %w", err)
	}
	return ids, nil
}
