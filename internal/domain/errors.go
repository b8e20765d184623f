package domain

import (
	"errors"
)

var (
	ErrRecordNotFound    = errors.New("record not found")
	ErrPasswordMissMatch = errors.New("password mismatch")
	ErrDuplicateKey      = errors.New("duplicate key")
	ErrUnknown           = errors.New("unknown error")
)

// Ошибки проверок перевода. Первая не прошедшая проверка определяет ошибку всей операции,
// остальные проверки не выполняются.
var (
	ErrInvalidAmount    = errors.New("amount must be positive")
	ErrSameCard         = errors.New("source and destination cards must differ")
	ErrCardNotActive    = errors.New("card is not active")
	ErrCardExpired      = errors.New("card is expired")
	ErrOwnerConflict    = errors.New("owner conflict")
	ErrNotEnoughBalance = errors.New("not enough balance")
)

// Ошибки операций жизненного цикла карты.
var (
	ErrInvalidCardNumber    = errors.New("invalid card number")
	ErrInvalidCardStatus    = errors.New("invalid card status")
	ErrNegativeBalance      = errors.New("balance cannot be negative")
	ErrExpirationDateInPast = errors.New("expiration date must not be in the past")
)
