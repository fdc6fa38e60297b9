package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"shopmatic/internal/entity"
)

type OrderRepository struct {
	db *sql.DB
}

func NewOrderRepository(db *sql.DB) *OrderRepository {
	return &OrderRepository{db}
}

const orderColumns = `id, user_id, address, city, state, country, pin_code, subtotal, tax, shipping_charges, discount, total, status, created_at`

func scanOrder(row interface{ Scan(...interface{}) error }) (*entity.Order, error) {
	o := &entity.Order{}
	err := row.Scan(&o.ID, &o.UserID,
		&o.ShippingInfo.Address, &o.ShippingInfo.City, &o.ShippingInfo.State, &o.ShippingInfo.Country, &o.ShippingInfo.PinCode,
		&o.Subtotal, &o.Tax, &o.ShippingCharges, &o.Discount, &o.Total, &o.Status, &o.CreatedAt)
	if err != nil {
		return nil, err
	}
	return o, nil
}

func (r *OrderRepository) Create(ctx context.Context, order *entity.Order) (*entity.Order, error) {
	order.CreatedAt = time.Now()

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}

	orderQuery := `INSERT INTO orders (user_id, address, city, state, country, pin_code, subtotal, tax, shipping_charges, discount, total, status, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	res, err := tx.ExecContext(ctx, orderQuery,
		order.UserID,
		order.ShippingInfo.Address, order.ShippingInfo.City, order.ShippingInfo.State, order.ShippingInfo.Country, order.ShippingInfo.PinCode,
		order.Subtotal, order.Tax, order.ShippingCharges, order.Discount, order.Total, order.Status, order.CreatedAt)
	if err != nil {
		tx.Rollback()
		return nil, err
	}

	orderID, err := res.LastInsertId()
	if err != nil {
		tx.Rollback()
		return nil, err
	}

	// Batch insert the line items.
	itemQuery := `INSERT INTO order_items (order_id, product_id, name, photo, price, quantity) VALUES `
	var values []interface{}
	for _, item := range order.Items {
		itemQuery += "(?, ?, ?, ?, ?, ?),"
		values = append(values, orderID, item.ProductID, item.Name, item.Photo, item.Price, item.Quantity)
	}
	itemQuery = itemQuery[:len(itemQuery)-1]

	_, err = tx.ExecContext(ctx, itemQuery, values...)
	if err != nil {
		tx.Rollback()
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}

	order.ID = int(orderID)
	return order, nil
}

// GetByID returns nil, nil when no such order exists.
func (r *OrderRepository) GetByID(ctx context.Context, id int) (*entity.Order, error) {
	order, err := scanOrder(r.db.QueryRowContext(ctx, `SELECT `+orderColumns+` FROM orders WHERE id = ?`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if err := r.loadItems(ctx, order); err != nil {
		return nil, err
	}
	return order, nil
}

func (r *OrderRepository) ByUser(ctx context.Context, userID string) ([]*entity.Order, error) {
	return r.query(ctx, `SELECT `+orderColumns+` FROM orders WHERE user_id = ?`, userID)
}

func (r *OrderRepository) All(ctx context.Context) ([]*entity.Order, error) {
	return r.query(ctx, `SELECT `+orderColumns+` FROM orders`)
}

func (r *OrderRepository) Latest(ctx context.Context, limit int) ([]*entity.Order, error) {
	return r.query(ctx, `SELECT `+orderColumns+` FROM orders ORDER BY created_at DESC LIMIT ?`, limit)
}

func (r *OrderRepository) UpdateStatus(ctx context.Context, id int, status string) error {
	_, err := r.db.ExecContext(ctx, `UPDATE orders SET status = ? WHERE id = ?`, status, id)
	return err
}

func (r *OrderRepository) Delete(ctx context.Context, id int) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM order_items WHERE order_id = ?`, id); err != nil {
		tx.Rollback()
		return err
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM orders WHERE id = ?`, id); err != nil {
		tx.Rollback()
		return err
	}
	return tx.Commit()
}

func (r *OrderRepository) CountByStatus(ctx context.Context, status string) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM orders WHERE status = ?`, status).Scan(&n)
	return n, err
}

// TotalsBetween returns the total of every order created in the window.
func (r *OrderRepository) TotalsBetween(ctx context.Context, from, to time.Time) ([]float64, error) {
	return r.totals(ctx, `SELECT total FROM orders WHERE created_at BETWEEN ? AND ?`, from, to)
}

// AllTotals returns the total of every order ever placed.
func (r *OrderRepository) AllTotals(ctx context.Context) ([]float64, error) {
	return r.totals(ctx, `SELECT total FROM orders`)
}

// Since returns the chart projection of orders created on or after the
// given instant.
func (r *OrderRepository) Since(ctx context.Context, since time.Time) ([]entity.OrderSample, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT created_at, total, discount FROM orders WHERE created_at >= ?`, since)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var samples []entity.OrderSample
	for rows.Next() {
		var s entity.OrderSample
		if err := rows.Scan(&s.CreatedAt, &s.Total, &s.Discount); err != nil {
			return nil, err
		}
		samples = append(samples, s)
	}
	return samples, rows.Err()
}

// RevenueBreakdown sums the money columns across all orders in one pass.
func (r *OrderRepository) RevenueBreakdown(ctx context.Context) (gross, discount, shipping, tax float64, err error) {
	query := `SELECT COALESCE(SUM(total), 0), COALESCE(SUM(discount), 0), COALESCE(SUM(shipping_charges), 0), COALESCE(SUM(tax), 0) FROM orders`
	err = r.db.QueryRowContext(ctx, query).Scan(&gross, &discount, &shipping, &tax)
	return
}

func (r *OrderRepository) loadItems(ctx context.Context, order *entity.Order) error {
	rows, err := r.db.QueryContext(ctx, `SELECT product_id, name, photo, price, quantity FROM order_items WHERE order_id = ?`, order.ID)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		item := entity.OrderItem{}
		if err := rows.Scan(&item.ProductID, &item.Name, &item.Photo, &item.Price, &item.Quantity); err != nil {
			return err
		}
		order.Items = append(order.Items, item)
	}
	return rows.Err()
}

func (r *OrderRepository) query(ctx context.Context, query string, args ...interface{}) ([]*entity.Order, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orders []*entity.Order
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for _, o := range orders {
		if err := r.loadItems(ctx, o); err != nil {
			return nil, err
		}
	}
	return orders, nil
}

func (r *OrderRepository) totals(ctx context.Context, query string, args ...interface{}) ([]float64, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var totals []float64
	for rows.Next() {
		var t float64
		if err := rows.Scan(&t); err != nil {
			return nil, err
		}
		totals = append(totals, t)
	}
	return totals, rows.Err()
}
