package pgrepo

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/fsdevblog/groph-cards/internal/domain"
	"github.com/fsdevblog/groph-cards/internal/repository/repoargs"
	"github.com/fsdevblog/groph-cards/pkg/uow"
	"github.com/jackc/pgx/v5"
)

// cardColumns балансы всегда ходят текстом и конвертируются в decimal.Decimal,
// чтобы исключить float на любом участке пути.
const cardColumns = `id, created_at, updated_at, user_id, number, expiration_date, status, balance::text`

type CardRepository struct {
	conn uow.DBTX
}

func NewCardRepository(conn uow.DBTX) *CardRepository {
	return &CardRepository{conn: conn}
}

// CreateCard создает карту. Возвращает domain.ErrDuplicateKey при конфликте номера карты
// и domain.ErrRecordNotFound если владелец не существует.
func (c *CardRepository) CreateCard(ctx context.Context, args repoargs.CreateCard) (*domain.Card, error) {
	row := c.conn.QueryRow(ctx, `
		INSERT INTO cards (user_id, number, expiration_date, status, balance)
		VALUES ($1, $2, $3, $4, $5::numeric)
		RETURNING `+cardColumns,
		args.UserID, args.Number, args.ExpirationDate, args.Status, args.Balance.String())

	card, err := scanCard(row)
	if err != nil {
		return nil, convertErr(err, "creating card")
	}
	return card, nil
}

// FindByID ищет карту по id. Возвращает domain.ErrRecordNotFound если запись не найдена.
func (c *CardRepository) FindByID(ctx context.Context, id int64) (*domain.Card, error) {
	row := c.conn.QueryRow(ctx, `SELECT `+cardColumns+` FROM cards WHERE id = $1`, id)
	card, err := scanCard(row)
	if err != nil {
		return nil, convertErr(err, "finding card by id %d", id)
	}
	return card, nil
}

// FindByIDForUpdate ищет карту по id и берет эксклюзивную блокировку строки (SELECT ... FOR UPDATE)
// до конца объемлющей транзакции. Если строка уже заблокирована другой транзакцией, запрос ждет
// ее завершения. Вызывать только внутри uow.Do.
func (c *CardRepository) FindByIDForUpdate(ctx context.Context, id int64) (*domain.Card, error) {
	row := c.conn.QueryRow(ctx, `SELECT `+cardColumns+` FROM cards WHERE id = $1 FOR UPDATE`, id)
	card, err := scanCard(row)
	if err != nil {
		return nil, convertErr(err, "finding card by id %d for update", id)
	}
	return card, nil
}

// FindByUserID возвращает карты юзера отсортированные по дате создания по возрастанию.
func (c *CardRepository) FindByUserID(ctx context.Context, userID int64) ([]domain.Card, error) {
	rows, err := c.conn.Query(ctx,
		`SELECT `+cardColumns+` FROM cards WHERE user_id = $1 ORDER BY created_at, id`, userID)
	if err != nil {
		return nil, convertErr(err, "finding cards by userID %d", userID)
	}
	defer rows.Close()

	var cards []domain.Card
	for rows.Next() {
		card, scanErr := scanCard(rows)
		if scanErr != nil {
			return nil, convertErr(scanErr, "finding cards by userID %d", userID)
		}
		cards = append(cards, *card)
	}
	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, convertErr(rowsErr, "finding cards by userID %d", userID)
	}
	return cards, nil
}

// ExistsByNumber проверяет наличие карты с указанным номером.
func (c *CardRepository) ExistsByNumber(ctx context.Context, number string) (bool, error) {
	var exists bool
	err := c.conn.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM cards WHERE number = $1)`, number).Scan(&exists)
	if err != nil {
		return false, convertErr(err, "checking card number existence")
	}
	return exists, nil
}

// UpdateBalance перезаписывает баланс карты. Ограничение balance >= 0 обеспечивается
// на уровне схемы БД.
func (c *CardRepository) UpdateBalance(ctx context.Context, id int64, balance decimal.Decimal) (*domain.Card, error) {
	row := c.conn.QueryRow(ctx, `
		UPDATE cards SET balance = $2::numeric, updated_at = now()
		WHERE id = $1
		RETURNING `+cardColumns,
		id, balance.String())

	card, err := scanCard(row)
	if err != nil {
		return nil, convertErr(err, "updating balance of card %d", id)
	}
	return card, nil
}

// UpdateStatus выставляет карте новый статус. Допустим любой переход между статусами.
func (c *CardRepository) UpdateStatus(
	ctx context.Context,
	id int64,
	status domain.CardStatusType,
) (*domain.Card, error) {
	row := c.conn.QueryRow(ctx, `
		UPDATE cards SET status = $2, updated_at = now()
		WHERE id = $1
		RETURNING `+cardColumns,
		id, status)

	card, err := scanCard(row)
	if err != nil {
		return nil, convertErr(err, "updating status of card %d", id)
	}
	return card, nil
}

// UpdateExpiration выставляет карте новую дату окончания срока действия.
func (c *CardRepository) UpdateExpiration(
	ctx context.Context,
	id int64,
	expirationDate time.Time,
) (*domain.Card, error) {
	row := c.conn.QueryRow(ctx, `
		UPDATE cards SET expiration_date = $2, updated_at = now()
		WHERE id = $1
		RETURNING `+cardColumns,
		id, expirationDate)

	card, err := scanCard(row)
	if err != nil {
		return nil, convertErr(err, "updating expiration of card %d", id)
	}
	return card, nil
}

// DeleteCard удаляет карту. Административная операция, путь переводов карты не удаляет.
func (c *CardRepository) DeleteCard(ctx context.Context, id int64) error {
	tag, err := c.conn.Exec(ctx, `DELETE FROM cards WHERE id = $1`, id)
	if err != nil {
		return convertErr(err, "deleting card %d", id)
	}
	if tag.RowsAffected() == 0 {
		return convertErr(pgx.ErrNoRows, "deleting card %d", id)
	}
	return nil
}

// MarkExpired помечает статусом EXPIRED активные карты с датой окончания строго раньше
// даты today (время суток отбрасывается кастом к date, карта действительна до конца своего
// последнего дня). Уже заблокированные другими транзакциями строки пропускаются (SKIP LOCKED)
// и будут обработаны следующим проходом. Возвращает id обновленных карт.
func (c *CardRepository) MarkExpired(ctx context.Context, today time.Time, limit uint) ([]int64, error) {
	rows, err := c.conn.Query(ctx, `
		UPDATE cards SET status = $1, updated_at = now()
		WHERE id IN (
			SELECT id FROM cards
			WHERE status = $2 AND expiration_date < $3::date
			ORDER BY id
			LIMIT $4
			FOR UPDATE SKIP LOCKED
		)
		RETURNING id`,
		domain.CardStatusExpired, domain.CardStatusActive, today, limit)
	if err != nil {
		return nil, convertErr(err, "marking expired cards")
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		if scanErr := rows.Scan(&id); scanErr != nil {
			return nil, convertErr(scanErr, "marking expired cards")
		}
		ids = append(ids, id)
	}
	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, convertErr(rowsErr, "marking expired cards")
	}
	return ids, nil
}

func scanCard(row pgx.Row) (*domain.Card, error) {
	var card domain.Card
	var balance string
	if err := row.Scan(
		&card.ID,
		&card.CreatedAt,
		&card.UpdatedAt,
		&card.UserID,
		&card.Number,
		&card.ExpirationDate,
		&card.Status,
		&balance,
	); err != nil {
		return nil, err //nolint:wrapcheck
	}
	balanceDec, decErr := decimal.NewFromString(balance)
	if decErr != nil {
		return nil, decErr //nolint:wrapcheck
	}
	card.Balance = balanceDec
	return &card, nil
}
