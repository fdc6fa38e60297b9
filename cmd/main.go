package main

import (
	"database/sql"
	"log"
	"time"

	"github.com/go-redis/redis/v8"
	_ "github.com/go-sql-driver/mysql"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"golang.org/x/time/rate"

	"shopmatic/internal/api"
	"shopmatic/internal/cache"
	"shopmatic/internal/config"
	"shopmatic/internal/events"
	"shopmatic/internal/payment"
	"shopmatic/internal/repository"
	"shopmatic/internal/service"
	"shopmatic/internal/storage"
	"shopmatic/migrations"
)

func connectDB(dsn string) (*sql.DB, error) {
	var db *sql.DB
	var err error
	for i := 0; i < 10; i++ {
		db, err = sql.Open("mysql", dsn)
		if err == nil {
			err = db.Ping()
			if err == nil {
				return db, nil
			}
		}
		log.Printf("Retry %d: failed to connect to DB: %v", i+1, err)
		time.Sleep(3 * time.Second)
	}
	return nil, err
}

func newCache(cfg config.Config) cache.Store {
	if cfg.CacheBackend == "redis" {
		return cache.NewRedis(redis.NewClient(&redis.Options{Addr: cfg.RedisAddr}))
	}
	return cache.NewMemory()
}

func main() {
	cfg := config.Load()

	db, err := connectDB(cfg.DSN())
	if err != nil {
		log.Fatalf("Failed to connect to DB: %v", err)
	}

	if err := migrations.AutoMigrate(3, db); err != nil {
		log.Fatalf("Failed to migrate tables: %v", err)
	}

	store := newCache(cfg)

	photos, err := storage.NewPhotoStore(cfg.UploadDir)
	if err != nil {
		log.Fatalf("Failed to create upload dir: %v", err)
	}

	publisher := events.NewKafkaPublisher(config.NewKafkaWriter("order-topic"))
	processor := payment.NewClient(cfg.PaymentAPIURL, cfg.PaymentAPIKey)

	userRepo := repository.NewUserRepository(db)
	productRepo := repository.NewProductRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	couponRepo := repository.NewCouponRepository(db)

	userService := service.NewUserService(userRepo)
	productService := service.NewProductService(productRepo, store, photos, cfg.ProductsPerPage)
	orderService := service.NewOrderService(orderRepo, productRepo, store, publisher)
	couponService := service.NewCouponService(couponRepo)
	statsService := service.NewStatsService(productRepo, userRepo, orderRepo, store)

	e := echo.New()
	e.HTTPErrorHandler = api.ErrorHandler

	limiterConfig := middleware.RateLimiterConfig{
		Skipper: middleware.DefaultSkipper,
		Store: middleware.NewRateLimiterMemoryStoreWithConfig(
			middleware.RateLimiterMemoryStoreConfig{
				Rate:      rate.Limit(20),
				Burst:     60,
				ExpiresIn: 3 * time.Minute,
			}),
		IdentifierExtractor: func(c echo.Context) (string, error) {
			return c.RealIP(), nil
		},
		ErrorHandler: func(c echo.Context, err error) error {
			return c.JSON(429, echo.Map{"success": false, "message": "rate limit exceeded"})
		},
		DenyHandler: func(c echo.Context, identifier string, err error) error {
			return c.JSON(429, echo.Map{"success": false, "message": "rate limit exceeded"})
		},
	}

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())
	e.Use(middleware.RateLimiterWithConfig(limiterConfig))

	api.Register(e, api.Handlers{
		Users:    api.NewUserHandler(userService),
		Products: api.NewProductHandler(productService),
		Orders:   api.NewOrderHandler(orderService),
		Payments: api.NewPaymentHandler(couponService, processor),
		Stats:    api.NewStatsHandler(statsService),
		Admin:    api.AdminOnly(userService),
	})

	e.Static("/uploads", photos.Dir())

	e.Logger.Fatal(e.Start(":" + cfg.Port))
}
