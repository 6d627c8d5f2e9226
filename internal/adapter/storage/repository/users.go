package repository

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/sokonihq/sokoni/internal/core/domain"
)

func (or *Repository) CreateUser(ctx context.Context, user *domain.User) (*domain.User, error) {
	statement := or.db.QueryBuilder.
		Insert("users").
		Columns("login", "password", "email", "phone", "role").
		Values(user.Login, user.Password, user.Email, user.Phone, user.Role).
		Suffix("returning id")

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	err = or.db.QueryRow(ctx, sql, args...).Scan(&user.ID)
	if err != nil {
		if pgErr, ok := err.(*pgconn.PgError); ok && pgErr.Code == pgerrcode.UniqueViolation {
			return nil, domain.ErrConflictingData
		}
		return nil, err
	}

	return user, nil
}

func (or *Repository) getUserWhere(ctx context.Context, cond sq.Sqlizer) (*domain.User, error) {
	statement := or.db.QueryBuilder.
		Select("id", "login", "password", "email", "phone", "role").
		From("users").
		Where(cond)

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	user := domain.User{}

	err = or.db.QueryRow(ctx, sql, args...).Scan(
		&user.ID,
		&user.Login,
		&user.Password,
		&user.Email,
		&user.Phone,
		&user.Role,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, domain.ErrDataNotFound
		}
		return nil, err
	}

	return &user, nil
}

func (or *Repository) GetUserByLogin(ctx context.Context, login string) (*domain.User, error) {
	return or.getUserWhere(ctx, sq.Eq{"login": login})
}

func (or *Repository) GetUserByID(ctx context.Context, id uint64) (*domain.User, error) {
	return or.getUserWhere(ctx, sq.Eq{"id": id})
}
