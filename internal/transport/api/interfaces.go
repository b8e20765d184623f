package api

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"
	"time"

	"github.com/fsdevblog/groph-cards/internal/domain"
	"github.com/fsdevblog/groph-cards/internal/service"
)

// UserServicer интерфейс исключительно для моков.
type UserServicer interface {
	Register(ctx context.Context, args service.RegisterUserArgs) (*domain.User, string, error)
	Login(ctx context.Context, args service.LoginUserArgs) (*domain.User, string, error)
}

type CardServicer interface {
	Create(ctx context.Context, args service.CreateCardArgs) (*domain.Card, error)
	GetByID(ctx context.Context, cardID int64) (*domain.Card, error)
	GetByUserID(ctx context.Context, userID int64) ([]domain.Card, error)
	UpdateStatus(ctx context.Context, cardID int64, status domain.CardStatusType) (*domain.Card, error)
	UpdateExpiration(ctx context.Context, cardID int64, expirationDate time.Time) (*domain.Card, error)
}

type TransferServicer interface {
	Transfer(ctx context.Context, args service.TransferArgs) (*domain.Transfer, error)
}
