package service

import (
	"context"
	"mime/multipart"
	"time"

	"shopmatic/internal/entity"
)

// Store-facing ports. The SQL repositories implement these; tests swap in
// in-memory fakes. Lookup methods return nil, nil when the row is absent.

type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) (*entity.Product, error)
	GetByID(ctx context.Context, id int) (*entity.Product, error)
	Update(ctx context.Context, product *entity.Product) (*entity.Product, error)
	Delete(ctx context.Context, id int) error
	Latest(ctx context.Context, limit int) ([]*entity.Product, error)
	All(ctx context.Context) ([]*entity.Product, error)
	Find(ctx context.Context, f entity.ProductFilter) ([]*entity.Product, error)
	Count(ctx context.Context, f entity.ProductFilter) (int, error)
	Categories(ctx context.Context) ([]string, error)
	CountAll(ctx context.Context) (int, error)
	CountByCategory(ctx context.Context, category string) (int, error)
	CountOutOfStock(ctx context.Context) (int, error)
	CountCreatedBetween(ctx context.Context, from, to time.Time) (int, error)
	CreatedSince(ctx context.Context, since time.Time) ([]time.Time, error)
}

type OrderRepository interface {
	Create(ctx context.Context, order *entity.Order) (*entity.Order, error)
	GetByID(ctx context.Context, id int) (*entity.Order, error)
	ByUser(ctx context.Context, userID string) ([]*entity.Order, error)
	All(ctx context.Context) ([]*entity.Order, error)
	Latest(ctx context.Context, limit int) ([]*entity.Order, error)
	UpdateStatus(ctx context.Context, id int, status string) error
	Delete(ctx context.Context, id int) error
	CountByStatus(ctx context.Context, status string) (int, error)
	TotalsBetween(ctx context.Context, from, to time.Time) ([]float64, error)
	AllTotals(ctx context.Context) ([]float64, error)
	Since(ctx context.Context, since time.Time) ([]entity.OrderSample, error)
	RevenueBreakdown(ctx context.Context) (gross, discount, shipping, tax float64, err error)
}

type UserRepository interface {
	GetByID(ctx context.Context, id string) (*entity.User, error)
	Create(ctx context.Context, user *entity.User) (*entity.User, error)
	All(ctx context.Context) ([]*entity.User, error)
	Delete(ctx context.Context, id string) error
	CountAll(ctx context.Context) (int, error)
	CountByGender(ctx context.Context, gender string) (int, error)
	CountByRole(ctx context.Context, role string) (int, error)
	CountCreatedBetween(ctx context.Context, from, to time.Time) (int, error)
	CreatedSince(ctx context.Context, since time.Time) ([]time.Time, error)
	DOBs(ctx context.Context) ([]time.Time, error)
}

type CouponRepository interface {
	Create(ctx context.Context, coupon *entity.Coupon) (*entity.Coupon, error)
	GetByID(ctx context.Context, id int) (*entity.Coupon, error)
	ByCode(ctx context.Context, code string) (*entity.Coupon, error)
	All(ctx context.Context) ([]*entity.Coupon, error)
	Delete(ctx context.Context, id int) error
}

// PhotoStore is the blob store holding product photos, keyed by path.
type PhotoStore interface {
	Save(file *multipart.FileHeader) (string, error)
	Remove(path string)
}

// EventPublisher fans order lifecycle events out to the message broker.
type EventPublisher interface {
	Publish(ctx context.Context, key string, payload []byte) error
}
