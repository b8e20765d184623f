package service

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/fsdevblog/groph-cards/internal/domain"
	"github.com/fsdevblog/groph-cards/internal/repository/repoargs"
	"github.com/fsdevblog/groph-cards/pkg/uow"
)

// TransferService переводит средства между картами одного юзера. Единственный компонент,
// которому разрешено менять баланс карты.
type TransferService struct {
	uow          uow.UOW
	transferRepo TransferRepository
}

func NewTransferService(u uow.UOW) (*TransferService, error) {
	transferRepo, repoErr := uow.GetRepositoryAs[TransferRepository](u, uow.RepositoryName(repoargs.TransferRepoName))
	if repoErr != nil {
		return nil, repoErr
	}
	return &TransferService{
		uow:          u,
		transferRepo: transferRepo,
	}, nil
}

type TransferArgs struct {
	ActorID    int64
	FromCardID int64
	ToCardID   int64
	Amount     decimal.Decimal
}

// Transfer атомарно переводит Amount с карты FromCardID на карту ToCardID.
//
// Алгоритм работы:
//  1. Проверки, не требующие данных из БД (сумма, совпадение карт), выполняются
//     до открытия транзакции - такой запрос не трогает хранилище вообще.
//  2. Внутри транзакции обе строки карт блокируются через SELECT ... FOR UPDATE
//     строго в порядке возрастания id, независимо от направления перевода. Любые
//     два перевода по пересекающейся паре карт запрашивают блокировки в одном и
//     том же относительном порядке, поэтому цикл ожидания (deadlock) невозможен.
//  3. На свежезагруженной паре прогоняется validateTransfer; дополнительно
//     проверяется что владелец карт совпадает с ActorID (авторизация на границе
//     уже проверила принадлежность, здесь - подстраховка).
//  4. Балансы пересчитываются decimal-арифметикой: сумма балансов пары до и после
//     перевода совпадает до копейки.
//  5. Обе карты и запись перевода сохраняются одной транзакцией: либо видны все
//     три записи, либо ни одной.
//
// Ошибки проверок возвращаются до каких-либо мутаций, частичного состояния не бывает.
// Инфраструктурная ошибка на любом шаге откатывает транзакцию целиком, вызов безопасно
// повторить с теми же аргументами.
func (s *TransferService) Transfer(ctx context.Context, args TransferArgs) (*domain.Transfer, error) {
	if !args.Amount.IsPositive() {
		return nil, domain.ErrInvalidAmount
	}
	if args.FromCardID == args.ToCardID {
		return nil, domain.ErrSameCard
	}

	var transfer *domain.Transfer
	txErr := s.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		cardRepo, cardRepoErr := uow.GetAs[CardRepository](tx, uow.RepositoryName(repoargs.CardRepoName))
		if cardRepoErr != nil {
			return cardRepoErr //nolint:wrapcheck
		}

		from, to, lockErr := lockCardPair(c, cardRepo, args.FromCardID, args.ToCardID)
		if lockErr != nil {
			return lockErr
		}

		if vErr := validateTransfer(args, from, to, time.Now()); vErr != nil {
			return vErr
		}
		if from.UserID != args.ActorID {
			return domain.ErrOwnerConflict
		}

		if _, err := cardRepo.UpdateBalance(c, from.ID, from.Balance.Sub(args.Amount)); err != nil {
			return err //nolint:wrapcheck
		}
		if _, err := cardRepo.UpdateBalance(c, to.ID, to.Balance.Add(args.Amount)); err != nil {
			return err //nolint:wrapcheck
		}

		transferRepo, transferRepoErr := uow.GetAs[TransferRepository](tx, uow.RepositoryName(repoargs.TransferRepoName))
		if transferRepoErr != nil {
			return transferRepoErr //nolint:wrapcheck
		}
		var createErr error
		transfer, createErr = transferRepo.CreateTransfer(c, repoargs.CreateTransfer{
			FromCardID: args.FromCardID,
			ToCardID:   args.ToCardID,
			Amount:     args.Amount,
		})
		return createErr //nolint:wrapcheck
	})

	if txErr != nil {
		return nil, fmt.Errorf("transferring funds: %w", txErr)
	}
	return transfer, nil
}

// lockCardPair загружает обе карты под эксклюзивной блокировкой в порядке возрастания id.
// Возвращает карты в логическом порядке (from, to) вне зависимости от порядка блокировки.
func lockCardPair(
	ctx context.Context,
	cardRepo CardRepository,
	fromCardID, toCardID int64,
) (*domain.Card, *domain.Card, error) {
	firstID, secondID := fromCardID, toCardID
	if firstID > secondID {
		firstID, secondID = secondID, firstID
	}

	first, firstErr := cardRepo.FindByIDForUpdate(ctx, firstID)
	if firstErr != nil {
		return nil, nil, firstErr //nolint:wrapcheck
	}
	second, secondErr := cardRepo.FindByIDForUpdate(ctx, secondID)
	if secondErr != nil {
		return nil, nil, secondErr //nolint:wrapcheck
	}

	if firstID == fromCardID {
		return first, second, nil
	}
	return second, first, nil
}

// GetByID возвращает перевод по id.
func (s *TransferService) GetByID(ctx context.Context, id int64) (*domain.Transfer, error) {
	transfer, err := s.transferRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return transfer, nil
}
