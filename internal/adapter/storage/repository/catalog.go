package repository

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/sokonihq/sokoni/internal/core/domain"
)

func (cr *CatalogRepository) GetProduct(ctx context.Context, productID string) (*domain.Product, error) {
	statement := cr.db.QueryBuilder.
		Select("id", "seller_id", "name", "image_url", "price", "stock", "sold_count", "is_active").
		From("products").
		Where(sq.Eq{"id": productID})

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	product := domain.Product{}

	err = cr.db.QueryRow(ctx, sql, args...).Scan(
		&product.ID,
		&product.SellerID,
		&product.Name,
		&product.ImageURL,
		&product.Price,
		&product.Stock,
		&product.SoldCount,
		&product.IsActive,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, domain.ErrDataNotFound
		}
		return nil, err
	}

	return &product, nil
}

// DecrementStock is the atomic conditional decrement closing the
// check-then-act race: the guard and the write are one statement, and a
// zero-row result means the stock was insufficient at write time.
func (cr *CatalogRepository) DecrementStock(ctx context.Context, productID string, qty uint32) error {
	statement := cr.db.QueryBuilder.
		Update("products").
		Set("stock", sq.Expr("stock - ?", qty)).
		Where(sq.Eq{"id": productID}).
		Where(sq.Expr("stock >= ?", qty))

	sql, args, err := statement.ToSql()
	if err != nil {
		return err
	}

	tag, err := cr.db.Exec(ctx, sql, args...)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		if _, err := cr.GetProduct(ctx, productID); err != nil {
			return err
		}
		return domain.ErrInsufficientStock
	}
	return nil
}

func (cr *CatalogRepository) IncrementStock(ctx context.Context, productID string, qty uint32) error {
	return cr.adjust(ctx, productID, "stock", sq.Expr("stock + ?", qty))
}

func (cr *CatalogRepository) IncrementSoldCount(ctx context.Context, productID string, qty uint32) error {
	return cr.adjust(ctx, productID, "sold_count", sq.Expr("sold_count + ?", qty))
}

// DecrementSoldCount floors at zero so a restore can never violate the
// sold_count check constraint.
func (cr *CatalogRepository) DecrementSoldCount(ctx context.Context, productID string, qty uint32) error {
	return cr.adjust(ctx, productID, "sold_count",
		sq.Expr("greatest(sold_count - ?, 0)", qty))
}

func (cr *CatalogRepository) adjust(ctx context.Context, productID string, column string, value sq.Sqlizer) error {
	statement := cr.db.QueryBuilder.
		Update("products").
		Set(column, value).
		Where(sq.Eq{"id": productID})

	sql, args, err := statement.ToSql()
	if err != nil {
		return err
	}

	tag, err := cr.db.Exec(ctx, sql, args...)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrDataNotFound
	}
	return nil
}
