package service

import (
	"context"
	"testing"
	"time"

	"github.com/fsdevblog/groph-cards/internal/domain"
	"github.com/fsdevblog/groph-cards/internal/repository/repoargs"
	"github.com/fsdevblog/groph-cards/internal/service/mocks"
	"github.com/fsdevblog/groph-cards/pkg/uow"
	uowmocks "github.com/fsdevblog/groph-cards/pkg/uow/mocks"
	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type TransferServiceTestSuite struct {
	suite.Suite
	mockUOW          *uowmocks.MockUOW
	mockTX           *uowmocks.MockTX
	mockCardRepo     *mocks.MockCardRepository
	mockTransferRepo *mocks.MockTransferRepository
	transferService  *TransferService
}

func TestTransferServiceSuite(t *testing.T) {
	suite.Run(t, new(TransferServiceTestSuite))
}

func (s *TransferServiceTestSuite) SetupTest() {
	mockCtrl := gomock.NewController(s.T())
	s.mockUOW = uowmocks.NewMockUOW(mockCtrl)
	s.mockTX = uowmocks.NewMockTX(mockCtrl)
	s.mockCardRepo = mocks.NewMockCardRepository(mockCtrl)
	s.mockTransferRepo = mocks.NewMockTransferRepository(mockCtrl)

	// Мок получения репозитория из uow. Выполняется в инициализации сервиса.
	s.mockUOW.EXPECT().GetRepository(uow.RepositoryName(repoargs.TransferRepoName)).
		Return(s.mockTransferRepo, nil).AnyTimes()

	transferService, servErr := NewTransferService(s.mockUOW)
	s.Require().NoError(servErr)
	s.transferService = transferService
}

// expectTx подменяет транзакцию: fn выполняется на месте с моковым TX.
func (s *TransferServiceTestSuite) expectTx() {
	s.mockUOW.EXPECT().Do(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context, uow.TX) error) error {
			return fn(ctx, s.mockTX)
		})
	s.mockTX.EXPECT().Get(uow.RepositoryName(repoargs.CardRepoName)).
		Return(s.mockCardRepo, nil).AnyTimes()
	s.mockTX.EXPECT().Get(uow.RepositoryName(repoargs.TransferRepoName)).
		Return(s.mockTransferRepo, nil).AnyTimes()
}

func (s *TransferServiceTestSuite) activeCard(id, userID int64, balance string) domain.Card {
	return domain.Card{
		ID:             id,
		UserID:         userID,
		Number:         "400000000000" + decimal.NewFromInt(id).String(),
		ExpirationDate: time.Now().AddDate(1, 0, 0),
		Status:         domain.CardStatusActive,
		Balance:        decimal.RequireFromString(balance),
	}
}

func (s *TransferServiceTestSuite) TestTransfer() {
	from := s.activeCard(1, 10, "200")
	to := s.activeCard(2, 10, "50")
	amount := decimal.RequireFromString("25.50")

	s.expectTx()

	// Блокировки запрашиваются в порядке возрастания id.
	gomock.InOrder(
		s.mockCardRepo.EXPECT().FindByIDForUpdate(gomock.Any(), int64(1)).Return(&from, nil),
		s.mockCardRepo.EXPECT().FindByIDForUpdate(gomock.Any(), int64(2)).Return(&to, nil),
	)

	var fromBalance, toBalance decimal.Decimal
	s.mockCardRepo.EXPECT().UpdateBalance(gomock.Any(), int64(1), gomock.Any()).
		DoAndReturn(func(_ context.Context, id int64, balance decimal.Decimal) (*domain.Card, error) {
			fromBalance = balance
			updated := from
			updated.Balance = balance
			return &updated, nil
		})
	s.mockCardRepo.EXPECT().UpdateBalance(gomock.Any(), int64(2), gomock.Any()).
		DoAndReturn(func(_ context.Context, id int64, balance decimal.Decimal) (*domain.Card, error) {
			toBalance = balance
			updated := to
			updated.Balance = balance
			return &updated, nil
		})

	s.mockTransferRepo.EXPECT().
		CreateTransfer(gomock.Any(), repoargs.CreateTransfer{FromCardID: 1, ToCardID: 2, Amount: amount}).
		Return(&domain.Transfer{ID: 7, FromCardID: 1, ToCardID: 2, Amount: amount, CreatedAt: time.Now()}, nil)

	transfer, err := s.transferService.Transfer(context.Background(), TransferArgs{
		ActorID:    10,
		FromCardID: 1,
		ToCardID:   2,
		Amount:     amount,
	})
	s.Require().NoError(err)
	s.Require().NotNil(transfer)
	s.EqualValues(7, transfer.ID)

	s.True(fromBalance.Equal(decimal.RequireFromString("174.50")))
	s.True(toBalance.Equal(decimal.RequireFromString("75.50")))
	// Сумма балансов пары не изменилась.
	s.True(fromBalance.Add(toBalance).Equal(from.Balance.Add(to.Balance)))
}

// TestTransferLockOrder перевод со старшей карты на младшую все равно блокирует строки
// в порядке возрастания id.
func (s *TransferServiceTestSuite) TestTransferLockOrder() {
	lower := s.activeCard(3, 10, "10")
	higher := s.activeCard(8, 10, "100")
	amount := decimal.NewFromInt(40)

	s.expectTx()

	gomock.InOrder(
		s.mockCardRepo.EXPECT().FindByIDForUpdate(gomock.Any(), int64(3)).Return(&lower, nil),
		s.mockCardRepo.EXPECT().FindByIDForUpdate(gomock.Any(), int64(8)).Return(&higher, nil),
	)
	s.mockCardRepo.EXPECT().UpdateBalance(gomock.Any(), int64(8), gomock.Any()).
		DoAndReturn(func(_ context.Context, id int64, balance decimal.Decimal) (*domain.Card, error) {
			s.True(balance.Equal(decimal.NewFromInt(60)))
			updated := higher
			updated.Balance = balance
			return &updated, nil
		})
	s.mockCardRepo.EXPECT().UpdateBalance(gomock.Any(), int64(3), gomock.Any()).
		DoAndReturn(func(_ context.Context, id int64, balance decimal.Decimal) (*domain.Card, error) {
			s.True(balance.Equal(decimal.NewFromInt(50)))
			updated := lower
			updated.Balance = balance
			return &updated, nil
		})
	s.mockTransferRepo.EXPECT().
		CreateTransfer(gomock.Any(), repoargs.CreateTransfer{FromCardID: 8, ToCardID: 3, Amount: amount}).
		Return(&domain.Transfer{ID: 1, FromCardID: 8, ToCardID: 3, Amount: amount}, nil)

	_, err := s.transferService.Transfer(context.Background(), TransferArgs{
		ActorID:    10,
		FromCardID: 8,
		ToCardID:   3,
		Amount:     amount,
	})
	s.Require().NoError(err)
}

func (s *TransferServiceTestSuite) TestTransferNotEnoughBalance() {
	from := s.activeCard(1, 10, "10")
	to := s.activeCard(2, 10, "50")

	s.expectTx()
	s.mockCardRepo.EXPECT().FindByIDForUpdate(gomock.Any(), int64(1)).Return(&from, nil)
	s.mockCardRepo.EXPECT().FindByIDForUpdate(gomock.Any(), int64(2)).Return(&to, nil)

	// Балансы не трогаем, перевод не записываем.
	s.mockCardRepo.EXPECT().UpdateBalance(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
	s.mockTransferRepo.EXPECT().CreateTransfer(gomock.Any(), gomock.Any()).Times(0)

	_, err := s.transferService.Transfer(context.Background(), TransferArgs{
		ActorID:    10,
		FromCardID: 1,
		ToCardID:   2,
		Amount:     decimal.RequireFromString("10.01"),
	})
	s.Require().ErrorIs(err, domain.ErrNotEnoughBalance)
}

// TestTransferPreChecks невалидная сумма и перевод на ту же карту отклоняются
// до открытия транзакции.
func (s *TransferServiceTestSuite) TestTransferPreChecks() {
	s.mockUOW.EXPECT().Do(gomock.Any(), gomock.Any()).Times(0)

	cases := []struct {
		name    string
		args    TransferArgs
		wantErr error
	}{
		{
			name:    "zero amount",
			args:    TransferArgs{ActorID: 10, FromCardID: 1, ToCardID: 2, Amount: decimal.Zero},
			wantErr: domain.ErrInvalidAmount,
		},
		{
			name:    "negative amount",
			args:    TransferArgs{ActorID: 10, FromCardID: 1, ToCardID: 2, Amount: decimal.NewFromInt(-5)},
			wantErr: domain.ErrInvalidAmount,
		},
		{
			name:    "same card",
			args:    TransferArgs{ActorID: 10, FromCardID: 1, ToCardID: 1, Amount: decimal.NewFromInt(5)},
			wantErr: domain.ErrSameCard,
		},
	}

	for _, t := range cases {
		s.Run(t.name, func() {
			_, err := s.transferService.Transfer(context.Background(), t.args)
			s.Require().ErrorIs(err, t.wantErr)
		})
	}
}

func (s *TransferServiceTestSuite) TestTransferValidationFailures() {
	blocked := s.activeCard(2, 10, "50")
	blocked.Status = domain.CardStatusBlocked

	expired := s.activeCard(2, 10, "50")
	expired.ExpirationDate = time.Now().AddDate(0, 0, -1)

	foreign := s.activeCard(2, 11, "50")

	cases := []struct {
		name    string
		to      domain.Card
		wantErr error
	}{
		{name: "blocked card", to: blocked, wantErr: domain.ErrCardNotActive},
		{name: "expired card", to: expired, wantErr: domain.ErrCardExpired},
		{name: "foreign card", to: foreign, wantErr: domain.ErrOwnerConflict},
	}

	for _, t := range cases {
		s.Run(t.name, func() {
			from := s.activeCard(1, 10, "200")

			s.expectTx()
			s.mockCardRepo.EXPECT().FindByIDForUpdate(gomock.Any(), int64(1)).Return(&from, nil)
			s.mockCardRepo.EXPECT().FindByIDForUpdate(gomock.Any(), int64(2)).Return(&t.to, nil)
			s.mockCardRepo.EXPECT().UpdateBalance(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
			s.mockTransferRepo.EXPECT().CreateTransfer(gomock.Any(), gomock.Any()).Times(0)

			_, err := s.transferService.Transfer(context.Background(), TransferArgs{
				ActorID:    10,
				FromCardID: 1,
				ToCardID:   2,
				Amount:     decimal.NewFromInt(5),
			})
			s.Require().ErrorIs(err, t.wantErr)
		})
	}
}

func (s *TransferServiceTestSuite) TestTransferCardNotFound() {
	from := s.activeCard(1, 10, "200")

	s.expectTx()
	s.mockCardRepo.EXPECT().FindByIDForUpdate(gomock.Any(), int64(1)).Return(&from, nil)
	s.mockCardRepo.EXPECT().FindByIDForUpdate(gomock.Any(), int64(2)).
		Return(nil, domain.ErrRecordNotFound)
	s.mockCardRepo.EXPECT().UpdateBalance(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	_, err := s.transferService.Transfer(context.Background(), TransferArgs{
		ActorID:    10,
		FromCardID: 1,
		ToCardID:   2,
		Amount:     decimal.NewFromInt(5),
	})
	s.Require().ErrorIs(err, domain.ErrRecordNotFound)
}

// TestTransferActorConflict карты принадлежат одному юзеру, но это не тот юзер,
// который инициировал перевод.
func (s *TransferServiceTestSuite) TestTransferActorConflict() {
	from := s.activeCard(1, 10, "200")
	to := s.activeCard(2, 10, "50")

	s.expectTx()
	s.mockCardRepo.EXPECT().FindByIDForUpdate(gomock.Any(), int64(1)).Return(&from, nil)
	s.mockCardRepo.EXPECT().FindByIDForUpdate(gomock.Any(), int64(2)).Return(&to, nil)
	s.mockCardRepo.EXPECT().UpdateBalance(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	_, err := s.transferService.Transfer(context.Background(), TransferArgs{
		ActorID:    99,
		FromCardID: 1,
		ToCardID:   2,
		Amount:     decimal.NewFromInt(5),
	})
	s.Require().ErrorIs(err, domain.ErrOwnerConflict)
}

func (s *TransferServiceTestSuite) TestGetByID() {
	saved := domain.Transfer{ID: 3, FromCardID: 1, ToCardID: 2, Amount: decimal.NewFromInt(5)}

	s.mockTransferRepo.EXPECT().FindByID(gomock.Any(), int64(3)).Return(&saved, nil)
	s.mockTransferRepo.EXPECT().FindByID(gomock.Any(), int64(4)).Return(nil, domain.ErrRecordNotFound)

	transfer, err := s.transferService.GetByID(context.Background(), 3)
	s.Require().NoError(err)
	s.EqualValues(3, transfer.ID)

	_, err = s.transferService.GetByID(context.Background(), 4)
	s.Require().ErrorIs(err, domain.ErrRecordNotFound)
}

// TestValidateTransferIdempotent повторный прогон проверок на тех же данных дает
// тот же результат и не мутирует карты.
func (s *TransferServiceTestSuite) TestValidateTransferIdempotent() {
	today := time.Now()
	from := s.activeCard(1, 10, "100")
	to := s.activeCard(2, 10, "50")
	args := TransferArgs{ActorID: 10, FromCardID: 1, ToCardID: 2, Amount: decimal.NewFromInt(30)}

	fromBefore, toBefore := from, to

	first := validateTransfer(args, &from, &to, today)
	second := validateTransfer(args, &from, &to, today)

	s.Require().NoError(first)
	s.Require().NoError(second)
	s.Equal(fromBefore, from)
	s.Equal(toBefore, to)

	badArgs := args
	badArgs.Amount = decimal.NewFromInt(1000)
	s.Require().ErrorIs(validateTransfer(badArgs, &from, &to, today), domain.ErrNotEnoughBalance)
	s.Require().ErrorIs(validateTransfer(badArgs, &from, &to, today), domain.ErrNotEnoughBalance)
}
