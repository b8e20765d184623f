package pgrepo

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/fsdevblog/groph-cards/internal/domain"
	"github.com/fsdevblog/groph-cards/internal/repository/repoargs"
	"github.com/fsdevblog/groph-cards/pkg/uow"
	"github.com/jackc/pgx/v5"
)

const transferColumns = `id, created_at, from_card_id, to_card_id, amount::text`

// TransferRepository хранилище фактов переводов. Таблица append-only: методов
// обновления и удаления нет намеренно.
type TransferRepository struct {
	conn uow.DBTX
}

func NewTransferRepository(conn uow.DBTX) *TransferRepository {
	return &TransferRepository{conn: conn}
}

// CreateTransfer записывает факт перевода. id и created_at назначает БД.
func (t *TransferRepository) CreateTransfer(
	ctx context.Context,
	args repoargs.CreateTransfer,
) (*domain.Transfer, error) {
	row := t.conn.QueryRow(ctx, `
		INSERT INTO transfers (from_card_id, to_card_id, amount)
		VALUES ($1, $2, $3::numeric)
		RETURNING `+transferColumns,
		args.FromCardID, args.ToCardID, args.Amount.String())

	transfer, err := scanTransfer(row)
	if err != nil {
		return nil, convertErr(err, "creating transfer")
	}
	return transfer, nil
}

// FindByID ищет перевод по id. Возвращает domain.ErrRecordNotFound если запись не найдена.
func (t *TransferRepository) FindByID(ctx context.Context, id int64) (*domain.Transfer, error) {
	row := t.conn.QueryRow(ctx, `SELECT `+transferColumns+` FROM transfers WHERE id = $1`, id)
	transfer, err := scanTransfer(row)
	if err != nil {
		return nil, convertErr(err, "finding transfer by id %d", id)
	}
	return transfer, nil
}

func scanTransfer(row pgx.Row) (*domain.Transfer, error) {
	var transfer domain.Transfer
	var amount string
	if err := row.Scan(
		&transfer.ID,
		&transfer.CreatedAt,
		&transfer.FromCardID,
		&transfer.ToCardID,
		&amount,
	); err != nil {
		return nil, err //nolint:wrapcheck
	}
	amountDec, decErr := decimal.NewFromString(amount)
	if decErr != nil {
		return nil, decErr //nolint:wrapcheck
	}
	transfer.Amount = amountDec
	return &transfer, nil
}
