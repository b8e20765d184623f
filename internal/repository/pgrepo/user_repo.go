package pgrepo

import (
	"context"

	"github.com/fsdevblog/groph-cards/internal/domain"
	"github.com/fsdevblog/groph-cards/internal/repository/repoargs"
	"github.com/fsdevblog/groph-cards/pkg/uow"
	"github.com/jackc/pgx/v5"
)

const userColumns = `id, created_at, updated_at, username, encrypted_password`

type UserRepository struct {
	conn uow.DBTX
}

func NewUserRepository(conn uow.DBTX) *UserRepository {
	return &UserRepository{conn: conn}
}

// CreateUser создает юзера. В случае конфликта юзернейма возвращает ошибку domain.ErrDuplicateKey.
func (u *UserRepository) CreateUser(ctx context.Context, args repoargs.CreateUser) (*domain.User, error) {
	row := u.conn.QueryRow(ctx, `
		INSERT INTO users (username, encrypted_password)
		VALUES ($1, $2)
		RETURNING `+userColumns,
		args.Username, args.Password)

	user, err := scanUser(row)
	if err != nil {
		return nil, convertErr(err, "creating user")
	}
	return user, nil
}

// FindUserByUsername ищет юзера по юзернейму. Возвращает domain.ErrRecordNotFound
// если запись не найдена.
func (u *UserRepository) FindUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	row := u.conn.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE username = $1`, username)
	user, err := scanUser(row)
	if err != nil {
		return nil, convertErr(err, "finding user by username %s", username)
	}
	return user, nil
}

// FindUserByID ищет юзера по id. Возвращает domain.ErrRecordNotFound если запись не найдена.
func (u *UserRepository) FindUserByID(ctx context.Context, id int64) (*domain.User, error) {
	row := u.conn.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id)
	user, err := scanUser(row)
	if err != nil {
		return nil, convertErr(err, "finding user by id %d", id)
	}
	return user, nil
}

func scanUser(row pgx.Row) (*domain.User, error) {
	var user domain.User
	if err := row.Scan(
		&user.ID,
		&user.CreatedAt,
		&user.UpdatedAt,
		&user.Username,
		&user.Password,
	); err != nil {
		return nil, err //nolint:wrapcheck
	}
	return &user, nil
}
