package repository

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/sokonihq/sokoni/internal/core/domain"
)

var flashSaleColumns = []string{
	"id", "product_id", "flash_price", "quantity", "sold_quantity",
	"start_time", "end_time", "status",
}

func scanFlashSale(row rowScanner) (*domain.FlashSale, error) {
	sale := domain.FlashSale{}
	err := row.Scan(
		&sale.ID,
		&sale.ProductID,
		&sale.FlashPrice,
		&sale.Quantity,
		&sale.SoldQuantity,
		&sale.StartTime,
		&sale.EndTime,
		&sale.Status,
	)
	if err != nil {
		return nil, err
	}
	return &sale, nil
}

func (or *Repository) ReadFlashSale(ctx context.Context, saleID string) (*domain.FlashSale, error) {
	statement := or.db.QueryBuilder.
		Select(flashSaleColumns...).
		From("flash_sales").
		Where(sq.Eq{"id": saleID})

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	sale, err := scanFlashSale(or.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, domain.ErrDataNotFound
		}
		return nil, err
	}

	return sale, nil
}

func (or *Repository) ListFlashSalesByStatus(ctx context.Context, status domain.FlashSaleStatus) ([]*domain.FlashSale, error) {
	statement := or.db.QueryBuilder.
		Select(flashSaleColumns...).
		From("flash_sales").
		Where(sq.Eq{"status": status})

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := or.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := make([]*domain.FlashSale, 0)
	for rows.Next() {
		sale, err := scanFlashSale(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, sale)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return list, nil
}

// PurchaseFlashSale is the atomic bounded increment: the sold-quantity cap
// is checked in the same statement that applies it, so concurrent buyers
// cannot oversell the sale.
func (or *Repository) PurchaseFlashSale(ctx context.Context, saleID string, qty uint32) (*domain.FlashSale, error) {
	statement := or.db.QueryBuilder.
		Update("flash_sales").
		Set("sold_quantity", sq.Expr("sold_quantity + ?", qty)).
		Where(sq.Eq{"id": saleID}).
		Where(sq.Expr("sold_quantity + ? <= quantity", qty)).
		Suffix("RETURNING " + joinColumns(flashSaleColumns))

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	sale, err := scanFlashSale(or.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if err == pgx.ErrNoRows {
			if _, rErr := or.ReadFlashSale(ctx, saleID); rErr != nil {
				return nil, rErr
			}
			return nil, domain.ErrFlashSaleSoldOut
		}
		return nil, err
	}

	return sale, nil
}

func (or *Repository) UpdateFlashSaleStatus(ctx context.Context, saleID string, status domain.FlashSaleStatus) error {
	statement := or.db.QueryBuilder.
		Update("flash_sales").
		Set("status", status).
		Where(sq.Eq{"id": saleID})

	sql, args, err := statement.ToSql()
	if err != nil {
		return err
	}

	tag, err := or.db.Exec(ctx, sql, args...)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrDataNotFound
	}
	return nil
}

func joinColumns(cols []string) string {
	out := ""
	for i, c := range cols {
		if i > 0 {
			out += ", "
		}
		out += c
	}
	return out
}
