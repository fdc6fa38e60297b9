package service

import (
	"context"
	"encoding/json"
	"fmt"

	"shopmatic/internal/cache"
	"shopmatic/internal/entity"
)

type OrderService struct {
	orders   OrderRepository
	products ProductRepository
	cache    cache.Store
	events   EventPublisher // optional; nil disables publishing
}

func NewOrderService(orders OrderRepository, products ProductRepository, store cache.Store, events EventPublisher) *OrderService {
	return &OrderService{
		orders:   orders,
		products: products,
		cache:    store,
		events:   events,
	}
}

// Create validates and persists the order, then walks the line items
// decrementing stock one by one. The walk is not transactional with the
// order insert: if a later item references a missing product, earlier
// decrements stay applied.
func (s *OrderService) Create(ctx context.Context, order *entity.Order) (*entity.Order, error) {
	// A zero discount or shipping charge is legitimate, so neither is
	// part of the required set.
	if order.ShippingInfo.Address == "" || order.UserID == "" || order.Subtotal == 0 ||
		order.Tax == 0 || order.Total == 0 || len(order.Items) == 0 {
		return nil, entity.BadRequest("Please Fill all Fields")
	}

	order.Status = entity.StatusProcessing

	created, err := s.orders.Create(ctx, order)
	if err != nil {
		logger.Error().Err(err).Msg("Error creating order")
		return nil, err
	}

	if err := s.reduceStock(ctx, created.Items); err != nil {
		return nil, err
	}

	productIDs := make([]int, 0, len(created.Items))
	for _, item := range created.Items {
		productIDs = append(productIDs, item.ProductID)
	}
	revalidate(ctx, s.cache, revalidateScope{
		products:   true,
		order:      true,
		admin:      true,
		userID:     created.UserID,
		productIDs: productIDs,
	})

	s.publish(ctx, created, "created")
	return created, nil
}

func (s *OrderService) reduceStock(ctx context.Context, items []entity.OrderItem) error {
	for _, item := range items {
		product, err := s.products.GetByID(ctx, item.ProductID)
		if err != nil {
			return err
		}
		if product == nil {
			return entity.BadRequest("Product Not Found")
		}
		product.Stock -= item.Quantity
		if _, err := s.products.Update(ctx, product); err != nil {
			return err
		}
	}
	return nil
}

func (s *OrderService) MyOrders(ctx context.Context, userID string) ([]*entity.Order, error) {
	return readThrough(ctx, s.cache, myOrdersKey(userID), func() ([]*entity.Order, error) {
		return s.orders.ByUser(ctx, userID)
	})
}

func (s *OrderService) All(ctx context.Context) ([]*entity.Order, error) {
	return readThrough(ctx, s.cache, keyAllOrders, func() ([]*entity.Order, error) {
		return s.orders.All(ctx)
	})
}

func (s *OrderService) GetByID(ctx context.Context, id int) (*entity.Order, error) {
	order, err := readThrough(ctx, s.cache, orderKey(id), func() (*entity.Order, error) {
		return s.orders.GetByID(ctx, id)
	})
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, entity.BadRequest("Order Not Found")
	}
	return order, nil
}

// Advance moves the order one step along Processing, Shipped, Delivered.
// Advancing a delivered order keeps it delivered.
func (s *OrderService) Advance(ctx context.Context, id int) (*entity.Order, error) {
	order, err := s.orders.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, entity.BadRequest("Order Not Found")
	}

	order.Status = entity.NextStatus(order.Status)
	if err := s.orders.UpdateStatus(ctx, id, order.Status); err != nil {
		return nil, err
	}

	revalidate(ctx, s.cache, revalidateScope{order: true, admin: true, userID: order.UserID, orderID: order.ID})
	s.publish(ctx, order, "processed")
	return order, nil
}

func (s *OrderService) Delete(ctx context.Context, id int) error {
	order, err := s.orders.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if order == nil {
		return entity.BadRequest("Order Not Found")
	}

	if err := s.orders.Delete(ctx, id); err != nil {
		return err
	}

	revalidate(ctx, s.cache, revalidateScope{order: true, admin: true, userID: order.UserID, orderID: order.ID})
	s.publish(ctx, order, "deleted")
	return nil
}

// publish is best effort: a broker outage should not fail the request.
func (s *OrderService) publish(ctx context.Context, order *entity.Order, event string) {
	if s.events == nil {
		return
	}
	payload, err := json.Marshal(order)
	if err != nil {
		logger.Error().Err(err).Msg("Error serializing order event")
		return
	}
	key := fmt.Sprintf("order-%s-%d", event, order.ID)
	if err := s.events.Publish(ctx, key, payload); err != nil {
		logger.Error().Err(err).Msgf("Error publishing order event %s", key)
	}
}
