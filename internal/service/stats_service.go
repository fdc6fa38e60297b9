package service

import (
	"context"
	"math"
	"time"

	"golang.org/x/sync/errgroup"

	"shopmatic/internal/cache"
	"shopmatic/internal/entity"
)

const latestTransactionCount = 4

// StatsService is the aggregation engine behind the admin dashboard. Every
// read is cached under its chart key; any admin-facing mutation elsewhere
// clears all four keys, so a hit is never staler than the last mutation.
type StatsService struct {
	products ProductRepository
	users    UserRepository
	orders   OrderRepository
	cache    cache.Store
	now      func() time.Time
}

func NewStatsService(products ProductRepository, users UserRepository, orders OrderRepository, store cache.Store) *StatsService {
	return &StatsService{
		products: products,
		users:    users,
		orders:   orders,
		cache:    store,
		now:      time.Now,
	}
}

type ChangePercent struct {
	Revenue  int `json:"revenue"`
	Products int `json:"products"`
	Users    int `json:"users"`
	Orders   int `json:"orders"`
}

type Totals struct {
	TotalRevenue float64 `json:"totalRevenue"`
	ProductCount int     `json:"productCount"`
	UserCount    int     `json:"userCount"`
	OrdersCount  int     `json:"ordersCount"`
}

type LatestTransaction struct {
	ID       int     `json:"_id"`
	Discount float64 `json:"discount"`
	Amount   float64 `json:"amount"`
	Quantity int     `json:"quantity"`
	Status   string  `json:"status"`
}

type DashboardChart struct {
	Order   []float64 `json:"order"`
	Revenue []float64 `json:"revenue"`
}

type GenderRatio struct {
	Male   int `json:"male"`
	Female int `json:"female"`
}

type DashboardStats struct {
	CategoryCount     []map[string]int    `json:"categoryCount"`
	ChangePercent     ChangePercent       `json:"changePercent"`
	Count             Totals              `json:"count"`
	LatestTransaction []LatestTransaction `json:"latestTransaction"`
	Chart             DashboardChart      `json:"chart"`
	GenderRatio       GenderRatio         `json:"genderRatio"`
}

// Dashboard compares the running month against the previous calendar month
// and assembles the trailing six month order series.
func (s *StatsService) Dashboard(ctx context.Context) (DashboardStats, error) {
	return readThrough(ctx, s.cache, keyAdminStats, func() (DashboardStats, error) {
		return s.loadDashboard(ctx)
	})
}

func (s *StatsService) loadDashboard(ctx context.Context) (DashboardStats, error) {
	var stats DashboardStats

	today := s.now()
	thisMonthStart := time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, today.Location())
	prevMonthStart := thisMonthStart.AddDate(0, -1, 0)
	prevMonthEnd := thisMonthStart.AddDate(0, 0, -1)
	sixMonthsAgo := today.AddDate(0, -6, 0)

	var (
		thisMonthProducts, prevMonthProducts int
		thisMonthUsers, prevMonthUsers       int
		thisMonthTotals, prevMonthTotals     []float64
		productCount, userCount, maleUsers   int
		allTotals                            []float64
		sixMonthOrders                       []entity.OrderSample
		categories                           []string
		latest                               []*entity.Order
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		thisMonthProducts, err = s.products.CountCreatedBetween(gctx, thisMonthStart, today)
		return
	})
	g.Go(func() (err error) {
		prevMonthProducts, err = s.products.CountCreatedBetween(gctx, prevMonthStart, prevMonthEnd)
		return
	})
	g.Go(func() (err error) {
		thisMonthUsers, err = s.users.CountCreatedBetween(gctx, thisMonthStart, today)
		return
	})
	g.Go(func() (err error) {
		prevMonthUsers, err = s.users.CountCreatedBetween(gctx, prevMonthStart, prevMonthEnd)
		return
	})
	g.Go(func() (err error) {
		thisMonthTotals, err = s.orders.TotalsBetween(gctx, thisMonthStart, today)
		return
	})
	g.Go(func() (err error) {
		prevMonthTotals, err = s.orders.TotalsBetween(gctx, prevMonthStart, prevMonthEnd)
		return
	})
	g.Go(func() (err error) {
		productCount, err = s.products.CountAll(gctx)
		return
	})
	g.Go(func() (err error) {
		userCount, err = s.users.CountAll(gctx)
		return
	})
	g.Go(func() (err error) {
		allTotals, err = s.orders.AllTotals(gctx)
		return
	})
	g.Go(func() (err error) {
		sixMonthOrders, err = s.orders.Since(gctx, sixMonthsAgo)
		return
	})
	g.Go(func() (err error) {
		categories, err = s.products.Categories(gctx)
		return
	})
	g.Go(func() (err error) {
		maleUsers, err = s.users.CountByGender(gctx, "male")
		return
	})
	g.Go(func() (err error) {
		latest, err = s.orders.Latest(gctx, latestTransactionCount)
		return
	})
	if err := g.Wait(); err != nil {
		return stats, err
	}

	stats.ChangePercent = ChangePercent{
		Revenue:  calculatePercentage(sum(thisMonthTotals), sum(prevMonthTotals)),
		Products: calculatePercentage(float64(thisMonthProducts), float64(prevMonthProducts)),
		Users:    calculatePercentage(float64(thisMonthUsers), float64(prevMonthUsers)),
		Orders:   calculatePercentage(float64(len(thisMonthTotals)), float64(len(prevMonthTotals))),
	}

	stats.Count = Totals{
		TotalRevenue: sum(allTotals),
		ProductCount: productCount,
		UserCount:    userCount,
		OrdersCount:  len(allTotals),
	}

	counts := make([]bucketRecord, len(sixMonthOrders))
	revenue := make([]bucketRecord, len(sixMonthOrders))
	for i, o := range sixMonthOrders {
		counts[i] = bucketRecord{createdAt: o.CreatedAt, value: 1}
		revenue[i] = bucketRecord{createdAt: o.CreatedAt, value: o.Total}
	}
	stats.Chart = DashboardChart{
		Order:   monthlyBuckets(recentWindow, today, counts),
		Revenue: monthlyBuckets(recentWindow, today, revenue),
	}

	categoryCount, err := categoryDistribution(ctx, s.products, categories, productCount)
	if err != nil {
		return stats, err
	}
	stats.CategoryCount = categoryCount

	// Anyone not tagged male lands on the female side of the ratio.
	stats.GenderRatio = GenderRatio{Male: maleUsers, Female: userCount - maleUsers}

	stats.LatestTransaction = make([]LatestTransaction, 0, len(latest))
	for _, o := range latest {
		stats.LatestTransaction = append(stats.LatestTransaction, LatestTransaction{
			ID:       o.ID,
			Discount: o.Discount,
			Amount:   o.Total,
			Quantity: len(o.Items),
			Status:   o.Status,
		})
	}

	return stats, nil
}

type OrderFulfillment struct {
	Processing int `json:"processing"`
	Shipped    int `json:"shipped"`
	Delivered  int `json:"delivered"`
}

type StockAvailability struct {
	InStock    int `json:"inStock"`
	OutOfStock int `json:"outOfStock"`
}

type RevenueDistribution struct {
	NetMargin      float64 `json:"netMargin"`
	Discount       float64 `json:"discount"`
	ProductionCost float64 `json:"productionCost"`
	Burnt          float64 `json:"burnt"`
	MarketingCost  float64 `json:"marketingCost"`
}

type AdminCustomers struct {
	AdminUsers    int `json:"adminUsers"`
	CustomerUsers int `json:"customerUsers"`
}

type AgeGroups struct {
	Teen  int `json:"teen"`
	Adult int `json:"adult"`
	Old   int `json:"old"`
}

type PieStats struct {
	OrderFulfillment    OrderFulfillment    `json:"orderFulfillment"`
	ProductCategories   []map[string]int    `json:"productCategories"`
	StockAvailability   StockAvailability   `json:"stockAvailability"`
	RevenueDistribution RevenueDistribution `json:"revenueDistribution"`
	AdminCustomers      AdminCustomers      `json:"adminCustomers"`
	UsersAgeGroup       AgeGroups           `json:"usersAgeGroup"`
}

func (s *StatsService) Pie(ctx context.Context) (PieStats, error) {
	return readThrough(ctx, s.cache, keyPieStats, func() (PieStats, error) {
		return s.loadPie(ctx)
	})
}

func (s *StatsService) loadPie(ctx context.Context) (PieStats, error) {
	var stats PieStats

	var (
		processing, shipped, delivered int
		categories                     []string
		productCount, outOfStock       int
		gross, discount, shipping, tax float64
		dobs                           []time.Time
		adminUsers, customerUsers      int
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		processing, err = s.orders.CountByStatus(gctx, entity.StatusProcessing)
		return
	})
	g.Go(func() (err error) {
		shipped, err = s.orders.CountByStatus(gctx, entity.StatusShipped)
		return
	})
	g.Go(func() (err error) {
		delivered, err = s.orders.CountByStatus(gctx, entity.StatusDelivered)
		return
	})
	g.Go(func() (err error) {
		categories, err = s.products.Categories(gctx)
		return
	})
	g.Go(func() (err error) {
		productCount, err = s.products.CountAll(gctx)
		return
	})
	g.Go(func() (err error) {
		outOfStock, err = s.products.CountOutOfStock(gctx)
		return
	})
	g.Go(func() (err error) {
		gross, discount, shipping, tax, err = s.orders.RevenueBreakdown(gctx)
		return
	})
	g.Go(func() (err error) {
		dobs, err = s.users.DOBs(gctx)
		return
	})
	g.Go(func() (err error) {
		adminUsers, err = s.users.CountByRole(gctx, entity.RoleAdmin)
		return
	})
	g.Go(func() (err error) {
		customerUsers, err = s.users.CountByRole(gctx, entity.RoleUser)
		return
	})
	if err := g.Wait(); err != nil {
		return stats, err
	}

	stats.OrderFulfillment = OrderFulfillment{Processing: processing, Shipped: shipped, Delivered: delivered}
	stats.StockAvailability = StockAvailability{InStock: productCount - outOfStock, OutOfStock: outOfStock}

	// Shipping is booked as production cost, tax as burnt; marketing is an
	// assumed 30% of gross.
	marketing := math.Round(gross * 0.30)
	stats.RevenueDistribution = RevenueDistribution{
		NetMargin:      gross - discount - shipping - tax - marketing,
		Discount:       discount,
		ProductionCost: shipping,
		Burnt:          tax,
		MarketingCost:  marketing,
	}

	productCategories, err := categoryDistribution(ctx, s.products, categories, productCount)
	if err != nil {
		return stats, err
	}
	stats.ProductCategories = productCategories

	stats.AdminCustomers = AdminCustomers{AdminUsers: adminUsers, CustomerUsers: customerUsers}

	now := s.now()
	for _, dob := range dobs {
		switch age := entity.AgeAt(dob, now); {
		case age < 20:
			stats.UsersAgeGroup.Teen++
		case age < 40:
			stats.UsersAgeGroup.Adult++
		default:
			stats.UsersAgeGroup.Old++
		}
	}

	return stats, nil
}

type BarStats struct {
	Products []float64 `json:"products"`
	Users    []float64 `json:"users"`
	Orders   []float64 `json:"orders"`
}

// Bar charts monthly creation counts: products and users over six months,
// orders over twelve.
func (s *StatsService) Bar(ctx context.Context) (BarStats, error) {
	return readThrough(ctx, s.cache, keyBarStats, func() (BarStats, error) {
		return s.loadBar(ctx)
	})
}

func (s *StatsService) loadBar(ctx context.Context) (BarStats, error) {
	var stats BarStats

	today := s.now()
	sixMonthsAgo := today.AddDate(0, -6, 0)
	twelveMonthsAgo := today.AddDate(0, -12, 0)

	var (
		products, users []time.Time
		orders          []entity.OrderSample
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		products, err = s.products.CreatedSince(gctx, sixMonthsAgo)
		return
	})
	g.Go(func() (err error) {
		users, err = s.users.CreatedSince(gctx, sixMonthsAgo)
		return
	})
	g.Go(func() (err error) {
		orders, err = s.orders.Since(gctx, twelveMonthsAgo)
		return
	})
	if err := g.Wait(); err != nil {
		return stats, err
	}

	orderTimes := make([]time.Time, len(orders))
	for i, o := range orders {
		orderTimes[i] = o.CreatedAt
	}

	stats.Products = monthlyCounts(6, today, products)
	stats.Users = monthlyCounts(6, today, users)
	stats.Orders = monthlyCounts(12, today, orderTimes)
	return stats, nil
}

type LineStats struct {
	Products []float64 `json:"products"`
	Users    []float64 `json:"users"`
	Discount []float64 `json:"discount"`
	Revenue  []float64 `json:"revenue"`
}

// Line charts twelve month series: creation counts for products and users,
// discount and revenue sums for orders.
func (s *StatsService) Line(ctx context.Context) (LineStats, error) {
	return readThrough(ctx, s.cache, keyLineStats, func() (LineStats, error) {
		return s.loadLine(ctx)
	})
}

func (s *StatsService) loadLine(ctx context.Context) (LineStats, error) {
	var stats LineStats

	today := s.now()
	twelveMonthsAgo := today.AddDate(0, -12, 0)

	var (
		products, users []time.Time
		orders          []entity.OrderSample
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		products, err = s.products.CreatedSince(gctx, twelveMonthsAgo)
		return
	})
	g.Go(func() (err error) {
		users, err = s.users.CreatedSince(gctx, twelveMonthsAgo)
		return
	})
	g.Go(func() (err error) {
		orders, err = s.orders.Since(gctx, twelveMonthsAgo)
		return
	})
	if err := g.Wait(); err != nil {
		return stats, err
	}

	discounts := make([]bucketRecord, len(orders))
	revenue := make([]bucketRecord, len(orders))
	for i, o := range orders {
		discounts[i] = bucketRecord{createdAt: o.CreatedAt, value: o.Discount}
		revenue[i] = bucketRecord{createdAt: o.CreatedAt, value: o.Total}
	}

	stats.Products = monthlyCounts(12, today, products)
	stats.Users = monthlyCounts(12, today, users)
	stats.Discount = monthlyBuckets(12, today, discounts)
	stats.Revenue = monthlyBuckets(12, today, revenue)
	return stats, nil
}

func sum(values []float64) float64 {
	var total float64
	for _, v := range values {
		total += v
	}
	return total
}
