package pgrepo

import (
	"errors"
	"fmt"

	"github.com/fsdevblog/groph-cards/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const (
	foreignKeyViolationCode = "23503"
	uniqueViolationCode     = "23505"
)

// convertErr приводит ошибки pgx к доменным. Запись не найдена - domain.ErrRecordNotFound,
// конфликт уникального ключа - domain.ErrDuplicateKey, нарушение внешнего ключа -
// domain.ErrRecordNotFound (ссылка на несуществующую запись), все остальное - domain.ErrUnknown.
func convertErr(err error, msg string, args ...any) error {
	if err == nil {
		return nil
	}
	formattedMsg := fmt.Sprintf(msg, args...)

	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("[repository/%s] %w", formattedMsg, domain.ErrRecordNotFound)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		errType := domain.ErrUnknown
		switch pgErr.Code {
		case uniqueViolationCode:
			errType = domain.ErrDuplicateKey
		case foreignKeyViolationCode:
			errType = domain.ErrRecordNotFound
		}
		return fmt.Errorf("[repository/%s] %w: %s", formattedMsg, errType, pgErr.Message)
	}

	return fmt.Errorf("[repository/%s] %w: %s", formattedMsg, domain.ErrUnknown, err.Error())
}
