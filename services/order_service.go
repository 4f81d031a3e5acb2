package services

import (
	"errors"
	"strings"
	"time"

	"github.com/alisherkhudoyberdiev/qrplatform/entity"
	"github.com/alisherkhudoyberdiev/qrplatform/pkg/poll"
	"github.com/alisherkhudoyberdiev/qrplatform/repository"
	"gorm.io/gorm"
)

// OrderService is the order lifecycle engine: creation, direct-set status
// transitions and derived totals.
type OrderService struct {
	orderRepo *repository.OrderRepository
	restRepo  *repository.RestaurantRepository
}

func NewOrderService(orderRepo *repository.OrderRepository, restRepo *repository.RestaurantRepository) *OrderService {
	return &OrderService{orderRepo: orderRepo, restRepo: restRepo}
}

type OrderItemIn struct {
	MenuItemID string `json:"menuItemId" binding:"required"`
	Quantity   int    `json:"quantity"`
}

type PlaceOrderReq struct {
	RestaurantID  string        `json:"restaurantId" binding:"required"`
	Items         []OrderItemIn `json:"items"`
	TableNumber   string        `json:"tableNumber"`
	Note          string        `json:"note"`
	PaymentMethod string        `json:"paymentMethod"`
}

// PlaceOrder creates an order with status "new" and a server-side
// timestamp. Every referenced menu item must belong to the restaurant;
// quantities are floored to 1. The payment method is recorded metadata
// only — unknown values are dropped, and nothing is ever charged.
func (s *OrderService) PlaceOrder(req *PlaceOrderReq) (*entity.Order, error) {
	if strings.TrimSpace(req.RestaurantID) == "" {
		return nil, validationf("restaurant id is required")
	}
	if len(req.Items) == 0 {
		return nil, validationf("at least one item is required")
	}

	if _, err := s.restRepo.FindByID(req.RestaurantID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	ids := make([]string, 0, len(req.Items))
	seen := map[string]bool{}
	for _, it := range req.Items {
		if !seen[it.MenuItemID] {
			seen[it.MenuItemID] = true
			ids = append(ids, it.MenuItemID)
		}
	}
	count, err := s.orderRepo.CountMenuItemsInRestaurant(ids, req.RestaurantID)
	if err != nil {
		return nil, err
	}
	if count != int64(len(ids)) {
		return nil, validationf("menu item not in this restaurant")
	}

	order := entity.Order{
		Status:       entity.OrderStatusNew,
		RestaurantID: req.RestaurantID,
		TableNumber:  strings.TrimSpace(req.TableNumber),
		Note:         strings.TrimSpace(req.Note),
	}
	if m := strings.TrimSpace(req.PaymentMethod); entity.ValidPaymentMethod(m) {
		order.PaymentMethod = m
	}

	items := make([]entity.OrderItem, 0, len(req.Items))
	for _, it := range req.Items {
		qty := it.Quantity
		if qty < 1 {
			qty = 1
		}
		items = append(items, entity.OrderItem{MenuItemID: it.MenuItemID, Quantity: qty})
	}

	if err := s.orderRepo.CreateWithItems(&order, items); err != nil {
		return nil, err
	}
	return &order, nil
}

// SetStatus overwrites the status of an order within the caller's scope.
// Any of the three values may be set in any order; a foreign tenant's
// order is a not-found, never a forbidden.
func (s *OrderService) SetStatus(orderID, status, restaurantID string) (*entity.Order, error) {
	if !entity.ValidOrderStatus(status) {
		return nil, validationf("status must be new, preparing or ready")
	}
	order, err := s.orderRepo.FindForRestaurant(orderID, restaurantID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	if err := s.orderRepo.UpdateStatus(order.ID, status); err != nil {
		return nil, err
	}
	order.Status = status
	return order, nil
}

// ComputeTotal sums quantity × the menu item's current price. Totals are
// never stored, so a later price edit changes what past orders report.
func ComputeTotal(o *entity.Order) int64 {
	var total int64
	for _, it := range o.Items {
		total += it.MenuItem.Price * int64(it.Quantity)
	}
	return total
}

// OrderView is one row of a polled list: the order plus its derived total.
type OrderView struct {
	entity.Order
	Total int64 `json:"total"`
	IsNew bool  `json:"isNew,omitempty"`
}

// List is the admin order list: a full re-fetch, createdAt descending.
func (s *OrderService) List(restaurantID string) ([]OrderView, error) {
	orders, err := s.orderRepo.ListForRestaurant(restaurantID)
	if err != nil {
		return nil, err
	}
	views := make([]OrderView, 0, len(orders))
	for i := range orders {
		views = append(views, OrderView{Order: orders[i], Total: ComputeTotal(&orders[i])})
	}
	return views, nil
}

// Board is the kitchen-board read. The client sends the ids it already
// knows; an order is flagged new when the client has not seen it or when
// it is younger than the fresh-age window. The known set lives with the
// client, so the flag stays ephemeral client state.
func (s *OrderService) Board(restaurantID string, known []string, now time.Time) ([]OrderView, error) {
	orders, err := s.orderRepo.ListForRestaurant(restaurantID)
	if err != nil {
		return nil, err
	}

	tracker := poll.NewTracker(known...)
	ids := make([]string, 0, len(orders))
	for i := range orders {
		ids = append(ids, orders[i].ID)
	}
	unseen := map[string]bool{}
	for _, id := range tracker.Observe(ids) {
		unseen[id] = true
	}

	views := make([]OrderView, 0, len(orders))
	for i := range orders {
		views = append(views, OrderView{
			Order: orders[i],
			Total: ComputeTotal(&orders[i]),
			IsNew: unseen[orders[i].ID] || poll.IsFresh(orders[i].CreatedAt, now),
		})
	}
	return views, nil
}

// PublicStatus is the customer status-page payload.
type PublicStatus struct {
	ID             string             `json:"id"`
	Status         string             `json:"status"`
	CreatedAt      time.Time          `json:"createdAt"`
	RestaurantName string             `json:"restaurantName"`
	TableNumber    string             `json:"tableNumber"`
	Note           string             `json:"note"`
	Items          []entity.OrderItem `json:"items"`
	Total          int64              `json:"total"`
}

func (s *OrderService) Status(orderID string) (*PublicStatus, error) {
	order, err := s.orderRepo.FindByID(orderID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &PublicStatus{
		ID:             order.ID,
		Status:         order.Status,
		CreatedAt:      order.CreatedAt,
		RestaurantName: order.Restaurant.Name,
		TableNumber:    order.TableNumber,
		Note:           order.Note,
		Items:          order.Items,
		Total:          ComputeTotal(order),
	}, nil
}

// Dashboard aggregates today's order count, all-time revenue at current
// prices and the latest orders.
type Dashboard struct {
	TodayOrderCount int64       `json:"todayOrderCount"`
	TotalRevenue    int64       `json:"totalRevenue"`
	LatestOrders    []OrderView `json:"latestOrders"`
}

func (s *OrderService) Dashboard(restaurantID string, now time.Time) (*Dashboard, error) {
	todayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	todayCount, err := s.orderRepo.CountSince(restaurantID, todayStart)
	if err != nil {
		return nil, err
	}

	orders, err := s.orderRepo.ListForRestaurant(restaurantID)
	if err != nil {
		return nil, err
	}
	var revenue int64
	for i := range orders {
		revenue += ComputeTotal(&orders[i])
	}

	latest, err := s.orderRepo.LatestForRestaurant(restaurantID, 10)
	if err != nil {
		return nil, err
	}
	views := make([]OrderView, 0, len(latest))
	for i := range latest {
		views = append(views, OrderView{Order: latest[i], Total: ComputeTotal(&latest[i])})
	}

	return &Dashboard{TodayOrderCount: todayCount, TotalRevenue: revenue, LatestOrders: views}, nil
}
