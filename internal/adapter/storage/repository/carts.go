package repository

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/govalues/decimal"
	"github.com/sokonihq/sokoni/internal/core/domain"
)

func (or *Repository) ReadCart(ctx context.Context, userID uint64) (*domain.Cart, error) {
	statement := or.db.QueryBuilder.
		Select("ci.product_id", "ci.quantity", "p.price").
		From("cart_items ci").
		Join("products p ON p.id = ci.product_id").
		Where(sq.Eq{"ci.user_id": userID})

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := or.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	cart := domain.Cart{UserID: userID, Total: decimal.Zero}
	for rows.Next() {
		item := domain.CartItem{}
		var price decimal.Decimal
		if err := rows.Scan(&item.ProductID, &item.Quantity, &price); err != nil {
			return nil, err
		}

		qty, err := decimal.New(int64(item.Quantity), 0)
		if err != nil {
			return nil, err
		}
		sub, err := price.Mul(qty)
		if err != nil {
			return nil, err
		}
		cart.Total, err = cart.Total.Add(sub)
		if err != nil {
			return nil, err
		}

		cart.Items = append(cart.Items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return &cart, nil
}

func (or *Repository) ClearCart(ctx context.Context, userID uint64) error {
	statement := or.db.QueryBuilder.
		Delete("cart_items").
		Where(sq.Eq{"user_id": userID})

	sql, args, err := statement.ToSql()
	if err != nil {
		return err
	}

	_, err = or.db.Exec(ctx, sql, args...)
	return err
}
