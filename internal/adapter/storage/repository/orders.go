package repository

import (
	"context"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/govalues/decimal"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/sokonihq/sokoni/internal/core/domain"
	"github.com/sokonihq/sokoni/internal/core/port"
)

var orderColumns = []string{
	"id", "customer_id", "payment_method",
	"ship_address", "ship_city", "ship_postal_code", "ship_country",
	"tax_price", "shipping_price", "total_price",
	"is_paid", "paid_at", "is_delivered", "delivered_at", "status",
	"fraud_level", "fraud_score", "fraud_flags", "fraud_recommendations",
	"fraud_review_status", "fraud_review_notes",
	"mpesa_transaction_id", "mpesa_receipt_number",
	"pay_amount", "pay_phone", "pay_transaction_date",
	"stock_restored", "created_at",
}

type rowScanner interface {
	Scan(dest ...any) error
}

type querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

func scanOrder(row rowScanner) (*domain.Order, error) {
	order := domain.Order{}
	var payAmount decimal.Decimal
	var payPhone string
	var payDate time.Time

	err := row.Scan(
		&order.ID,
		&order.CustomerID,
		&order.PaymentMethod,
		&order.ShippingAddress.Address,
		&order.ShippingAddress.City,
		&order.ShippingAddress.PostalCode,
		&order.ShippingAddress.Country,
		&order.TaxPrice,
		&order.ShippingPrice,
		&order.TotalPrice,
		&order.IsPaid,
		&order.PaidAt,
		&order.IsDelivered,
		&order.DeliveredAt,
		&order.Status,
		&order.Fraud.Level,
		&order.Fraud.Score,
		&order.Fraud.Flags,
		&order.Fraud.Recommendations,
		&order.FraudReviewStatus,
		&order.FraudReviewNotes,
		&order.MpesaTransactionID,
		&order.MpesaReceiptNumber,
		&payAmount,
		&payPhone,
		&payDate,
		&order.StockRestored,
		&order.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	if order.IsPaid {
		order.PaymentResult = &domain.PaymentResult{
			ReceiptNumber:   order.MpesaReceiptNumber,
			Amount:          payAmount,
			Phone:           payPhone,
			TransactionDate: payDate,
		}
	}

	return &order, nil
}

func (or *Repository) orderValues(order *domain.Order) map[string]any {
	payAmount := decimal.Zero
	payPhone := ""
	payDate := time.Unix(0, 0).UTC()
	if order.PaymentResult != nil {
		payAmount = order.PaymentResult.Amount
		payPhone = order.PaymentResult.Phone
		payDate = order.PaymentResult.TransactionDate
	}

	return map[string]any{
		"payment_method":        order.PaymentMethod,
		"ship_address":          order.ShippingAddress.Address,
		"ship_city":             order.ShippingAddress.City,
		"ship_postal_code":      order.ShippingAddress.PostalCode,
		"ship_country":          order.ShippingAddress.Country,
		"tax_price":             order.TaxPrice,
		"shipping_price":        order.ShippingPrice,
		"total_price":           order.TotalPrice,
		"is_paid":               order.IsPaid,
		"paid_at":               order.PaidAt,
		"is_delivered":          order.IsDelivered,
		"delivered_at":          order.DeliveredAt,
		"status":                order.Status,
		"fraud_level":           order.Fraud.Level,
		"fraud_score":           order.Fraud.Score,
		"fraud_flags":           order.Fraud.Flags,
		"fraud_recommendations": order.Fraud.Recommendations,
		"fraud_review_status":   order.FraudReviewStatus,
		"fraud_review_notes":    order.FraudReviewNotes,
		"mpesa_transaction_id":  order.MpesaTransactionID,
		"mpesa_receipt_number":  order.MpesaReceiptNumber,
		"pay_amount":            payAmount,
		"pay_phone":             payPhone,
		"pay_transaction_date":  payDate,
		"stock_restored":        order.StockRestored,
	}
}

func (or *Repository) CreateOrder(ctx context.Context, order *domain.Order) (*domain.Order, error) {
	err := pgx.BeginFunc(ctx, or.db, func(tx pgx.Tx) error {
		values := or.orderValues(order)
		values["id"] = order.ID
		values["customer_id"] = order.CustomerID
		values["created_at"] = order.CreatedAt

		statement := or.db.QueryBuilder.Insert("orders").SetMap(values)

		sql, args, err := statement.ToSql()
		if err != nil {
			return err
		}
		if _, err := tx.Exec(ctx, sql, args...); err != nil {
			return err
		}

		for _, item := range order.Items {
			itemSt := or.db.QueryBuilder.Insert("order_items").
				Columns("order_id", "product_id", "name", "image_url", "unit_price", "quantity").
				Values(order.ID, item.ProductID, item.Name, item.ImageURL, item.UnitPrice, item.Quantity)

			sql, args, err := itemSt.ToSql()
			if err != nil {
				return err
			}
			if _, err := tx.Exec(ctx, sql, args...); err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		if pgErr, ok := err.(*pgconn.PgError); ok && pgErr.Code == pgerrcode.UniqueViolation {
			return nil, domain.ErrConflictingData
		}
		return nil, err
	}

	return order, nil
}

func (or *Repository) readOrderWhere(ctx context.Context, cond sq.Sqlizer) (*domain.Order, error) {
	statement := or.db.QueryBuilder.
		Select(orderColumns...).
		From("orders").
		Where(cond)

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	order, err := scanOrder(or.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, domain.ErrDataNotFound
		}
		return nil, err
	}

	items, err := or.loadItems(ctx, or.db, order.ID)
	if err != nil {
		return nil, err
	}
	order.Items = items

	return order, nil
}

func (or *Repository) ReadOrder(ctx context.Context, orderID string) (*domain.Order, error) {
	return or.readOrderWhere(ctx, sq.Eq{"id": orderID})
}

func (or *Repository) ReadOrderByCheckoutRequest(ctx context.Context, checkoutRequestID string) (*domain.Order, error) {
	if checkoutRequestID == "" {
		return nil, domain.ErrDataNotFound
	}
	return or.readOrderWhere(ctx, sq.Eq{"mpesa_transaction_id": checkoutRequestID})
}

// UpdateOrder runs fn on a row-locked order and persists the mutation and
// the optional status transition in one transaction.
func (or *Repository) UpdateOrder(ctx context.Context, orderID string, fn port.UpdateOrderFn) (*domain.Order, error) {
	var result *domain.Order

	err := pgx.BeginFunc(ctx, or.db, func(tx pgx.Tx) error {
		statement := or.db.QueryBuilder.
			Select(orderColumns...).
			From("orders").
			Where(sq.Eq{"id": orderID}).
			Suffix("FOR UPDATE")

		sql, args, err := statement.ToSql()
		if err != nil {
			return err
		}

		order, err := scanOrder(tx.QueryRow(ctx, sql, args...))
		if err != nil {
			if err == pgx.ErrNoRows {
				return domain.ErrDataNotFound
			}
			return err
		}

		items, err := or.loadItems(ctx, tx, order.ID)
		if err != nil {
			return err
		}
		order.Items = items

		transition, err := fn(order)
		if err != nil {
			return err
		}

		updateSt := or.db.QueryBuilder.Update("orders").
			SetMap(or.orderValues(order)).
			Where(sq.Eq{"id": orderID})

		sql, args, err = updateSt.ToSql()
		if err != nil {
			return err
		}
		if _, err := tx.Exec(ctx, sql, args...); err != nil {
			return err
		}

		if transition != nil {
			trSt := or.db.QueryBuilder.Insert("order_status_transitions").
				Columns("order_id", "from_status", "to_status", "actor", "note", "at").
				Values(transition.OrderID, transition.From, transition.To,
					transition.Actor, transition.Note, transition.At)

			sql, args, err := trSt.ToSql()
			if err != nil {
				return err
			}
			if _, err := tx.Exec(ctx, sql, args...); err != nil {
				return err
			}
		}

		result = order
		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

func (or *Repository) loadItems(ctx context.Context, q querier, orderID string) ([]domain.OrderItem, error) {
	statement := or.db.QueryBuilder.
		Select("product_id", "name", "image_url", "unit_price", "quantity").
		From("order_items").
		Where(sq.Eq{"order_id": orderID})

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]domain.OrderItem, 0)
	for rows.Next() {
		item := domain.OrderItem{}
		err := rows.Scan(
			&item.ProductID,
			&item.Name,
			&item.ImageURL,
			&item.UnitPrice,
			&item.Quantity,
		)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}

func (or *Repository) listOrdersWhere(ctx context.Context, cond sq.Sqlizer) ([]*domain.Order, error) {
	statement := or.db.QueryBuilder.
		Select(orderColumns...).
		From("orders").
		OrderBy("created_at DESC")
	if cond != nil {
		statement = statement.Where(cond)
	}

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := or.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := make([]*domain.Order, 0)
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, order)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for _, order := range list {
		items, err := or.loadItems(ctx, or.db, order.ID)
		if err != nil {
			return nil, err
		}
		order.Items = items
	}

	return list, nil
}

func (or *Repository) ListOrdersByCustomer(ctx context.Context, customerID uint64) ([]*domain.Order, error) {
	return or.listOrdersWhere(ctx, sq.Eq{"customer_id": customerID})
}

func (or *Repository) ListOrders(ctx context.Context) ([]*domain.Order, error) {
	return or.listOrdersWhere(ctx, nil)
}

func (or *Repository) ListOrdersBySeller(ctx context.Context, sellerID uint64) ([]*domain.Order, error) {
	return or.listOrdersWhere(ctx, sq.Expr(
		`id IN (SELECT oi.order_id FROM order_items oi
		        JOIN products p ON p.id = oi.product_id
		        WHERE p.seller_id = ?)`, sellerID))
}

func (or *Repository) OrderContainsSellerProduct(ctx context.Context, orderID string, sellerID uint64) (bool, error) {
	var exists bool
	err := or.db.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM order_items oi
		                JOIN products p ON p.id = oi.product_id
		                WHERE oi.order_id = $1 AND p.seller_id = $2)`,
		orderID, sellerID).Scan(&exists)
	if err != nil {
		return false, err
	}
	return exists, nil
}

func (or *Repository) CustomerOrderStats(ctx context.Context, customerID uint64) (*domain.CustomerStats, error) {
	stats := domain.CustomerStats{}
	err := or.db.QueryRow(ctx,
		`SELECT count(*), count(*) FILTER (WHERE status = $2)
		 FROM orders WHERE customer_id = $1`,
		customerID, domain.OrderStatusCancelled).Scan(&stats.OrderCount, &stats.CancelledCount)
	if err != nil {
		return nil, err
	}
	return &stats, nil
}
