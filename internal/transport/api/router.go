package api

import (
	"time"

	"github.com/fsdevblog/groph-cards/internal/transport/api/middlewares"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

const (
	DefaultServiceTimeout = 3 * time.Second
)

const (
	RouteGroup       = "/api"
	RegisterRoute    = "/user/register"
	LoginRoute       = "/user/login"
	CardsRoute       = "/cards"
	CardRoute        = "/cards/:cardID"
	CardBlockRoute   = "/cards/:cardID/block"
	CardBalanceRoute = "/cards/:cardID/balance"
	TransfersRoute   = "/transfers"
)

type RouterArgs struct {
	Logger          *logrus.Logger
	UserService     UserServicer
	CardService     CardServicer
	TransferService TransferServicer
	JWTSecretKey    []byte
}

func New(args RouterArgs) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	if args.Logger != nil {
		r.Use(middlewares.Logger(args.Logger))
	}
	r.Use(middlewares.Errors())

	authHandler := NewAuthHandler(args.UserService)
	cardsHandler := NewCardsHandler(args.CardService)
	transfersHandler := NewTransfersHandler(args.TransferService, args.CardService)

	api := r.Group(RouteGroup)

	api.POST(RegisterRoute, middlewares.NonAuthRequired(args.JWTSecretKey), authHandler.Register)
	api.POST(LoginRoute, middlewares.NonAuthRequired(args.JWTSecretKey), authHandler.Login)

	api.Use(middlewares.AuthRequired(args.JWTSecretKey))
	// ниже все роуты группы требуют авторизованного пользователя.
	api.GET(CardsRoute, cardsHandler.Index)
	api.POST(CardsRoute, cardsHandler.Create)
	api.GET(CardRoute, cardsHandler.Show)
	api.PUT(CardRoute, cardsHandler.Update)
	api.POST(CardBlockRoute, cardsHandler.Block)
	api.GET(CardBalanceRoute, cardsHandler.Balance)

	api.POST(TransfersRoute, transfersHandler.Create)
	return r
}
