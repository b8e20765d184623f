package service

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/fsdevblog/groph-cards/internal/domain"
	"github.com/fsdevblog/groph-cards/internal/repository/repoargs"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

type PasswordHasher interface {
	HashPassword(password string) (string, error)
	ComparePassword(password string, hashedPassword string) bool
}

type UserRepository interface {
	CreateUser(ctx context.Context, args repoargs.CreateUser) (*domain.User, error)
	FindUserByUsername(ctx context.Context, username string) (*domain.User, error)
	FindUserByID(ctx context.Context, id int64) (*domain.User, error)
}

type CardRepository interface {
	CreateCard(ctx context.Context, args repoargs.CreateCard) (*domain.Card, error)
	FindByID(ctx context.Context, id int64) (*domain.Card, error)
	FindByIDForUpdate(ctx context.Context, id int64) (*domain.Card, error)
	FindByUserID(ctx context.Context, userID int64) ([]domain.Card, error)
	ExistsByNumber(ctx context.Context, number string) (bool, error)
	UpdateBalance(ctx context.Context, id int64, balance decimal.Decimal) (*domain.Card, error)
	UpdateStatus(ctx context.Context, id int64, status domain.CardStatusType) (*domain.Card, error)
	UpdateExpiration(ctx context.Context, id int64, expirationDate time.Time) (*domain.Card, error)
	DeleteCard(ctx context.Context, id int64) error
	MarkExpired(ctx context.Context, today time.Time, limit uint) ([]int64, error)
}

type TransferRepository interface {
	CreateTransfer(ctx context.Context, args repoargs.CreateTransfer) (*domain.Transfer, error)
	FindByID(ctx context.Context, id int64) (*domain.Transfer, error)
}
