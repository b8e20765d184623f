package service

import (
	"fmt"

	"github.com/fsdevblog/groph-cards/internal/service/psswd"
	"github.com/fsdevblog/groph-cards/pkg/uow"
)

type AppServices struct {
	UserService     *UserService
	CardService     *CardService
	TransferService *TransferService
}

func Factory(unitOfWork uow.UOW, jwtSecret []byte) (*AppServices, error) {
	userService, userServiceErr := NewUserService(unitOfWork, jwtSecret, psswd.PasswordHash(""))
	if userServiceErr != nil {
		return nil, fmt.Errorf("service factory: %s", userServiceErr.Error())
	}

	cardService, cardServiceErr := NewCardService(unitOfWork)
	if cardServiceErr != nil {
		return nil, fmt.Errorf("service factory: %s", cardServiceErr.Error())
	}

	transferService, transferServiceErr := NewTransferService(unitOfWork)
	if transferServiceErr != nil {
		return nil, fmt.Errorf("service factory: %s", transferServiceErr.Error())
	}

	return &AppServices{
		UserService:     userService,
		CardService:     cardService,
		TransferService: transferService,
	}, nil
}
