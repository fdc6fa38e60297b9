package service

import (
	"context"
	"mime/multipart"
	"sort"
	"strings"
	"time"

	"shopmatic/internal/entity"
)

// In-memory doubles for the store-facing ports. Each counts calls per
// method so tests can assert that a cached read skipped the store.

type fakeProductRepo struct {
	products map[int]*entity.Product
	order    []int // insertion order, mirrors store iteration order
	nextID   int
	calls    map[string]int
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{products: map[int]*entity.Product{}, calls: map[string]int{}}
}

func (f *fakeProductRepo) add(p *entity.Product) *entity.Product {
	f.nextID++
	p.ID = f.nextID
	f.products[p.ID] = p
	f.order = append(f.order, p.ID)
	return p
}

func (f *fakeProductRepo) list() []*entity.Product {
	out := make([]*entity.Product, 0, len(f.order))
	for _, id := range f.order {
		if p, ok := f.products[id]; ok {
			clone := *p
			out = append(out, &clone)
		}
	}
	return out
}

func (f *fakeProductRepo) Create(_ context.Context, p *entity.Product) (*entity.Product, error) {
	f.calls["Create"]++
	now := time.Now()
	p.CreatedAt = now
	p.UpdatedAt = now
	return f.add(p), nil
}

func (f *fakeProductRepo) GetByID(_ context.Context, id int) (*entity.Product, error) {
	f.calls["GetByID"]++
	p, ok := f.products[id]
	if !ok {
		return nil, nil
	}
	clone := *p
	return &clone, nil
}

func (f *fakeProductRepo) Update(_ context.Context, p *entity.Product) (*entity.Product, error) {
	f.calls["Update"]++
	clone := *p
	f.products[p.ID] = &clone
	return p, nil
}

func (f *fakeProductRepo) Delete(_ context.Context, id int) error {
	f.calls["Delete"]++
	delete(f.products, id)
	return nil
}

func (f *fakeProductRepo) Latest(_ context.Context, limit int) ([]*entity.Product, error) {
	f.calls["Latest"]++
	out := f.list()
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (f *fakeProductRepo) All(_ context.Context) ([]*entity.Product, error) {
	f.calls["All"]++
	return f.list(), nil
}

func matches(p *entity.Product, filter entity.ProductFilter) bool {
	if filter.Search != "" && !strings.Contains(strings.ToLower(p.Name), strings.ToLower(filter.Search)) {
		return false
	}
	if filter.MaxPrice > 0 && p.Price > filter.MaxPrice {
		return false
	}
	if filter.Category != "" && p.Category != filter.Category {
		return false
	}
	return true
}

func (f *fakeProductRepo) Find(_ context.Context, filter entity.ProductFilter) ([]*entity.Product, error) {
	f.calls["Find"]++
	var out []*entity.Product
	for _, p := range f.list() {
		if matches(p, filter) {
			out = append(out, p)
		}
	}
	switch {
	case filter.Sort == "asc":
		sort.Slice(out, func(i, j int) bool { return out[i].Price < out[j].Price })
	case filter.Sort != "":
		sort.Slice(out, func(i, j int) bool { return out[i].Price > out[j].Price })
	}
	offset := filter.Offset()
	if offset > len(out) {
		offset = len(out)
	}
	out = out[offset:]
	if len(out) > filter.Limit {
		out = out[:filter.Limit]
	}
	return out, nil
}

func (f *fakeProductRepo) Count(_ context.Context, filter entity.ProductFilter) (int, error) {
	f.calls["Count"]++
	n := 0
	for _, p := range f.list() {
		if matches(p, filter) {
			n++
		}
	}
	return n, nil
}

func (f *fakeProductRepo) Categories(_ context.Context) ([]string, error) {
	f.calls["Categories"]++
	seen := map[string]bool{}
	var out []string
	for _, p := range f.list() {
		if !seen[p.Category] {
			seen[p.Category] = true
			out = append(out, p.Category)
		}
	}
	return out, nil
}

func (f *fakeProductRepo) CountAll(_ context.Context) (int, error) {
	f.calls["CountAll"]++
	return len(f.products), nil
}

func (f *fakeProductRepo) CountByCategory(_ context.Context, category string) (int, error) {
	f.calls["CountByCategory"]++
	n := 0
	for _, p := range f.products {
		if p.Category == category {
			n++
		}
	}
	return n, nil
}

func (f *fakeProductRepo) CountOutOfStock(_ context.Context) (int, error) {
	f.calls["CountOutOfStock"]++
	n := 0
	for _, p := range f.products {
		if p.Stock == 0 {
			n++
		}
	}
	return n, nil
}

func (f *fakeProductRepo) CountCreatedBetween(_ context.Context, from, to time.Time) (int, error) {
	f.calls["CountCreatedBetween"]++
	n := 0
	for _, p := range f.products {
		if !p.CreatedAt.Before(from) && !p.CreatedAt.After(to) {
			n++
		}
	}
	return n, nil
}

func (f *fakeProductRepo) CreatedSince(_ context.Context, since time.Time) ([]time.Time, error) {
	f.calls["CreatedSince"]++
	var out []time.Time
	for _, p := range f.list() {
		if !p.CreatedAt.Before(since) {
			out = append(out, p.CreatedAt)
		}
	}
	return out, nil
}

type fakeOrderRepo struct {
	orders map[int]*entity.Order
	order  []int
	nextID int
	calls  map[string]int
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{orders: map[int]*entity.Order{}, calls: map[string]int{}}
}

func (f *fakeOrderRepo) add(o *entity.Order) *entity.Order {
	f.nextID++
	o.ID = f.nextID
	f.orders[o.ID] = o
	f.order = append(f.order, o.ID)
	return o
}

func (f *fakeOrderRepo) list() []*entity.Order {
	out := make([]*entity.Order, 0, len(f.order))
	for _, id := range f.order {
		if o, ok := f.orders[id]; ok {
			clone := *o
			out = append(out, &clone)
		}
	}
	return out
}

func (f *fakeOrderRepo) Create(_ context.Context, o *entity.Order) (*entity.Order, error) {
	f.calls["Create"]++
	if o.CreatedAt.IsZero() {
		o.CreatedAt = time.Now()
	}
	return f.add(o), nil
}

func (f *fakeOrderRepo) GetByID(_ context.Context, id int) (*entity.Order, error) {
	f.calls["GetByID"]++
	o, ok := f.orders[id]
	if !ok {
		return nil, nil
	}
	clone := *o
	return &clone, nil
}

func (f *fakeOrderRepo) ByUser(_ context.Context, userID string) ([]*entity.Order, error) {
	f.calls["ByUser"]++
	var out []*entity.Order
	for _, o := range f.list() {
		if o.UserID == userID {
			out = append(out, o)
		}
	}
	return out, nil
}

func (f *fakeOrderRepo) All(_ context.Context) ([]*entity.Order, error) {
	f.calls["All"]++
	return f.list(), nil
}

func (f *fakeOrderRepo) Latest(_ context.Context, limit int) ([]*entity.Order, error) {
	f.calls["Latest"]++
	out := f.list()
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (f *fakeOrderRepo) UpdateStatus(_ context.Context, id int, status string) error {
	f.calls["UpdateStatus"]++
	if o, ok := f.orders[id]; ok {
		o.Status = status
	}
	return nil
}

func (f *fakeOrderRepo) Delete(_ context.Context, id int) error {
	f.calls["Delete"]++
	delete(f.orders, id)
	return nil
}

func (f *fakeOrderRepo) CountByStatus(_ context.Context, status string) (int, error) {
	f.calls["CountByStatus"]++
	n := 0
	for _, o := range f.orders {
		if o.Status == status {
			n++
		}
	}
	return n, nil
}

func (f *fakeOrderRepo) TotalsBetween(_ context.Context, from, to time.Time) ([]float64, error) {
	f.calls["TotalsBetween"]++
	var out []float64
	for _, o := range f.list() {
		if !o.CreatedAt.Before(from) && !o.CreatedAt.After(to) {
			out = append(out, o.Total)
		}
	}
	return out, nil
}

func (f *fakeOrderRepo) AllTotals(_ context.Context) ([]float64, error) {
	f.calls["AllTotals"]++
	var out []float64
	for _, o := range f.list() {
		out = append(out, o.Total)
	}
	return out, nil
}

func (f *fakeOrderRepo) Since(_ context.Context, since time.Time) ([]entity.OrderSample, error) {
	f.calls["Since"]++
	var out []entity.OrderSample
	for _, o := range f.list() {
		if !o.CreatedAt.Before(since) {
			out = append(out, entity.OrderSample{CreatedAt: o.CreatedAt, Total: o.Total, Discount: o.Discount})
		}
	}
	return out, nil
}

func (f *fakeOrderRepo) RevenueBreakdown(_ context.Context) (gross, discount, shipping, tax float64, err error) {
	f.calls["RevenueBreakdown"]++
	for _, o := range f.orders {
		gross += o.Total
		discount += o.Discount
		shipping += o.ShippingCharges
		tax += o.Tax
	}
	return
}

type fakeUserRepo struct {
	users map[string]*entity.User
	order []string
	calls map[string]int
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]*entity.User{}, calls: map[string]int{}}
}

func (f *fakeUserRepo) add(u *entity.User) *entity.User {
	f.users[u.ID] = u
	f.order = append(f.order, u.ID)
	return u
}

func (f *fakeUserRepo) list() []*entity.User {
	out := make([]*entity.User, 0, len(f.order))
	for _, id := range f.order {
		if u, ok := f.users[id]; ok {
			clone := *u
			out = append(out, &clone)
		}
	}
	return out
}

func (f *fakeUserRepo) GetByID(_ context.Context, id string) (*entity.User, error) {
	f.calls["GetByID"]++
	u, ok := f.users[id]
	if !ok {
		return nil, nil
	}
	clone := *u
	return &clone, nil
}

func (f *fakeUserRepo) Create(_ context.Context, u *entity.User) (*entity.User, error) {
	f.calls["Create"]++
	if u.CreatedAt.IsZero() {
		u.CreatedAt = time.Now()
	}
	return f.add(u), nil
}

func (f *fakeUserRepo) All(_ context.Context) ([]*entity.User, error) {
	f.calls["All"]++
	return f.list(), nil
}

func (f *fakeUserRepo) Delete(_ context.Context, id string) error {
	f.calls["Delete"]++
	delete(f.users, id)
	return nil
}

func (f *fakeUserRepo) CountAll(_ context.Context) (int, error) {
	f.calls["CountAll"]++
	return len(f.users), nil
}

func (f *fakeUserRepo) CountByGender(_ context.Context, gender string) (int, error) {
	f.calls["CountByGender"]++
	n := 0
	for _, u := range f.users {
		if u.Gender == gender {
			n++
		}
	}
	return n, nil
}

func (f *fakeUserRepo) CountByRole(_ context.Context, role string) (int, error) {
	f.calls["CountByRole"]++
	n := 0
	for _, u := range f.users {
		if u.Role == role {
			n++
		}
	}
	return n, nil
}

func (f *fakeUserRepo) CountCreatedBetween(_ context.Context, from, to time.Time) (int, error) {
	f.calls["CountCreatedBetween"]++
	n := 0
	for _, u := range f.users {
		if !u.CreatedAt.Before(from) && !u.CreatedAt.After(to) {
			n++
		}
	}
	return n, nil
}

func (f *fakeUserRepo) CreatedSince(_ context.Context, since time.Time) ([]time.Time, error) {
	f.calls["CreatedSince"]++
	var out []time.Time
	for _, u := range f.list() {
		if !u.CreatedAt.Before(since) {
			out = append(out, u.CreatedAt)
		}
	}
	return out, nil
}

func (f *fakeUserRepo) DOBs(_ context.Context) ([]time.Time, error) {
	f.calls["DOBs"]++
	var out []time.Time
	for _, u := range f.list() {
		out = append(out, u.DOB)
	}
	return out, nil
}

type fakeCouponRepo struct {
	coupons map[int]*entity.Coupon
	nextID  int
}

func newFakeCouponRepo() *fakeCouponRepo {
	return &fakeCouponRepo{coupons: map[int]*entity.Coupon{}}
}

func (f *fakeCouponRepo) Create(_ context.Context, c *entity.Coupon) (*entity.Coupon, error) {
	f.nextID++
	c.ID = f.nextID
	f.coupons[c.ID] = c
	return c, nil
}

func (f *fakeCouponRepo) GetByID(_ context.Context, id int) (*entity.Coupon, error) {
	c, ok := f.coupons[id]
	if !ok {
		return nil, nil
	}
	return c, nil
}

func (f *fakeCouponRepo) ByCode(_ context.Context, code string) (*entity.Coupon, error) {
	for _, c := range f.coupons {
		if c.Code == code {
			return c, nil
		}
	}
	return nil, nil
}

func (f *fakeCouponRepo) All(_ context.Context) ([]*entity.Coupon, error) {
	var out []*entity.Coupon
	for i := 1; i <= f.nextID; i++ {
		if c, ok := f.coupons[i]; ok {
			out = append(out, c)
		}
	}
	return out, nil
}

func (f *fakeCouponRepo) Delete(_ context.Context, id int) error {
	delete(f.coupons, id)
	return nil
}

type fakePhotoStore struct {
	saved   int
	removed []string
}

func (f *fakePhotoStore) Save(file *multipart.FileHeader) (string, error) {
	f.saved++
	return "uploads/" + file.Filename, nil
}

func (f *fakePhotoStore) Remove(path string) {
	f.removed = append(f.removed, path)
}

type fakePublisher struct {
	keys []string
}

func (f *fakePublisher) Publish(_ context.Context, key string, _ []byte) error {
	f.keys = append(f.keys, key)
	return nil
}
