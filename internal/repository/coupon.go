package repository

import (
	"context"
	"database/sql"
	"errors"

	"shopmatic/internal/entity"
)

type CouponRepository struct {
	db *sql.DB
}

func NewCouponRepository(db *sql.DB) *CouponRepository {
	return &CouponRepository{db}
}

func (r *CouponRepository) Create(ctx context.Context, coupon *entity.Coupon) (*entity.Coupon, error) {
	res, err := r.db.ExecContext(ctx, `INSERT INTO coupons (code, amount) VALUES (?, ?)`, coupon.Code, coupon.Amount)
	if err != nil {
		return nil, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}
	coupon.ID = int(id)
	return coupon, nil
}

// GetByID returns nil, nil when no such coupon exists.
func (r *CouponRepository) GetByID(ctx context.Context, id int) (*entity.Coupon, error) {
	return r.get(ctx, `SELECT id, code, amount FROM coupons WHERE id = ?`, id)
}

// ByCode returns nil, nil when no coupon carries the code.
func (r *CouponRepository) ByCode(ctx context.Context, code string) (*entity.Coupon, error) {
	return r.get(ctx, `SELECT id, code, amount FROM coupons WHERE code = ?`, code)
}

func (r *CouponRepository) All(ctx context.Context) ([]*entity.Coupon, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, code, amount FROM coupons`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var coupons []*entity.Coupon
	for rows.Next() {
		c := &entity.Coupon{}
		if err := rows.Scan(&c.ID, &c.Code, &c.Amount); err != nil {
			return nil, err
		}
		coupons = append(coupons, c)
	}
	return coupons, rows.Err()
}

func (r *CouponRepository) Delete(ctx context.Context, id int) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM coupons WHERE id = ?`, id)
	return err
}

func (r *CouponRepository) get(ctx context.Context, query string, args ...interface{}) (*entity.Coupon, error) {
	c := &entity.Coupon{}
	err := r.db.QueryRowContext(ctx, query, args...).Scan(&c.ID, &c.Code, &c.Amount)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return c, nil
}
