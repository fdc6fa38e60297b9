package service

import (
	"context"
	"fmt"

	"shopmatic/internal/cache"
)

// Cache keys. Invalidation is coarse: a mutation clears every key of the
// affected domain rather than tracking precise dependencies.
const (
	keyLatestProducts = "latest-products"
	keyCategories     = "categories"
	keyAdminProducts  = "admin-products"
	keyAllOrders      = "all-orders"
	keyAdminStats     = "admin-stats"
	keyPieStats       = "pie-chart-stats"
	keyBarStats       = "bar-chart-stats"
	keyLineStats      = "line-chart-stats"
)

func productKey(id int) string         { return fmt.Sprintf("product-%d", id) }
func orderKey(id int) string           { return fmt.Sprintf("order-%d", id) }
func myOrdersKey(userID string) string { return fmt.Sprintf("my-orders-%s", userID) }

// revalidateScope names the key families a mutation touched. A zero UserID
// or OrderID just produces a harmless no-op delete.
type revalidateScope struct {
	products   bool
	order      bool
	admin      bool
	userID     string
	orderID    int
	productIDs []int
}

func revalidate(ctx context.Context, store cache.Store, scope revalidateScope) {
	if scope.products {
		keys := []string{keyLatestProducts, keyCategories, keyAdminProducts}
		for _, id := range scope.productIDs {
			keys = append(keys, productKey(id))
		}
		store.Delete(ctx, keys...)
	}
	if scope.order {
		store.Delete(ctx, keyAllOrders, myOrdersKey(scope.userID), orderKey(scope.orderID))
	}
	if scope.admin {
		store.Delete(ctx, keyAdminStats, keyPieStats, keyBarStats, keyLineStats)
	}
}
