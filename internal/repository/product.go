package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"shopmatic/internal/entity"
)

type ProductRepository struct {
	db *sql.DB
}

func NewProductRepository(db *sql.DB) *ProductRepository {
	return &ProductRepository{db}
}

const productColumns = `id, name, photo, price, stock, category, created_at, updated_at`

func scanProduct(row interface{ Scan(...interface{}) error }) (*entity.Product, error) {
	p := &entity.Product{}
	err := row.Scan(&p.ID, &p.Name, &p.Photo, &p.Price, &p.Stock, &p.Category, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (r *ProductRepository) Create(ctx context.Context, product *entity.Product) (*entity.Product, error) {
	now := time.Now()
	product.CreatedAt = now
	product.UpdatedAt = now

	query := `INSERT INTO products (name, photo, price, stock, category, created_at, updated_at) VALUES (?, ?, ?, ?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, query,
		product.Name, product.Photo, product.Price, product.Stock, product.Category, product.CreatedAt, product.UpdatedAt)
	if err != nil {
		return nil, err
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}
	product.ID = int(id)
	return product, nil
}

// GetByID returns nil, nil when no such product exists.
func (r *ProductRepository) GetByID(ctx context.Context, id int) (*entity.Product, error) {
	product, err := scanProduct(r.db.QueryRowContext(ctx, `SELECT `+productColumns+` FROM products WHERE id = ?`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	return product, err
}

func (r *ProductRepository) Update(ctx context.Context, product *entity.Product) (*entity.Product, error) {
	product.UpdatedAt = time.Now()

	query := `UPDATE products SET name = ?, photo = ?, price = ?, stock = ?, category = ?, updated_at = ? WHERE id = ?`
	_, err := r.db.ExecContext(ctx, query,
		product.Name, product.Photo, product.Price, product.Stock, product.Category, product.UpdatedAt, product.ID)
	if err != nil {
		return nil, err
	}
	return product, nil
}

func (r *ProductRepository) Delete(ctx context.Context, id int) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM products WHERE id = ?`, id)
	return err
}

func (r *ProductRepository) Latest(ctx context.Context, limit int) ([]*entity.Product, error) {
	return r.query(ctx, `SELECT `+productColumns+` FROM products ORDER BY created_at DESC LIMIT ?`, limit)
}

func (r *ProductRepository) All(ctx context.Context) ([]*entity.Product, error) {
	return r.query(ctx, `SELECT `+productColumns+` FROM products`)
}

// buildFilter translates the listing criteria into a WHERE clause. The zero
// filter yields an empty clause.
func buildFilter(f entity.ProductFilter) (string, []interface{}) {
	var where []string
	var args []interface{}

	if f.Search != "" {
		where = append(where, "LOWER(name) LIKE ?")
		args = append(args, "%"+strings.ToLower(f.Search)+"%")
	}
	if f.MaxPrice > 0 {
		where = append(where, "price <= ?")
		args = append(args, f.MaxPrice)
	}
	if f.Category != "" {
		where = append(where, "category = ?")
		args = append(args, f.Category)
	}
	if len(where) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(where, " AND "), args
}

func (r *ProductRepository) Find(ctx context.Context, f entity.ProductFilter) ([]*entity.Product, error) {
	clause, args := buildFilter(f)

	query := `SELECT ` + productColumns + ` FROM products` + clause
	// Anything other than "asc" sorts descending; an empty sort keeps
	// store order.
	switch {
	case f.Sort == "asc":
		query += " ORDER BY price ASC"
	case f.Sort != "":
		query += " ORDER BY price DESC"
	}
	query += " LIMIT ? OFFSET ?"
	args = append(args, f.Limit, f.Offset())

	return r.query(ctx, query, args...)
}

// Count applies the same criteria as Find without pagination.
func (r *ProductRepository) Count(ctx context.Context, f entity.ProductFilter) (int, error) {
	clause, args := buildFilter(f)
	return r.count(ctx, `SELECT COUNT(*) FROM products`+clause, args...)
}

// Categories returns the distinct category names in store order.
func (r *ProductRepository) Categories(ctx context.Context) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT DISTINCT category FROM products`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var categories []string
	for rows.Next() {
		var c string
		if err := rows.Scan(&c); err != nil {
			return nil, err
		}
		categories = append(categories, c)
	}
	return categories, rows.Err()
}

func (r *ProductRepository) CountAll(ctx context.Context) (int, error) {
	return r.count(ctx, `SELECT COUNT(*) FROM products`)
}

func (r *ProductRepository) CountByCategory(ctx context.Context, category string) (int, error) {
	return r.count(ctx, `SELECT COUNT(*) FROM products WHERE category = ?`, category)
}

func (r *ProductRepository) CountOutOfStock(ctx context.Context) (int, error) {
	return r.count(ctx, `SELECT COUNT(*) FROM products WHERE stock = 0`)
}

func (r *ProductRepository) CountCreatedBetween(ctx context.Context, from, to time.Time) (int, error) {
	return r.count(ctx, `SELECT COUNT(*) FROM products WHERE created_at BETWEEN ? AND ?`, from, to)
}

func (r *ProductRepository) CreatedSince(ctx context.Context, since time.Time) ([]time.Time, error) {
	return scanTimes(ctx, r.db, `SELECT created_at FROM products WHERE created_at >= ?`, since)
}

func (r *ProductRepository) query(ctx context.Context, query string, args ...interface{}) ([]*entity.Product, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var products []*entity.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, rows.Err()
}

func (r *ProductRepository) count(ctx context.Context, query string, args ...interface{}) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx, query, args...).Scan(&n)
	return n, err
}
