package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/alisherkhudoyberdiev/qrplatform/entity"
)

type orderFixture struct {
	db   *gorm.DB
	svc  *OrderService
	rest *entity.Restaurant
	choy *entity.MenuItem // 5000
	kofe *entity.MenuItem // 15000
}

func newOrderFixture(t *testing.T) *orderFixture {
	db := newTestDB(t)
	rest := seedRestaurant(t, db, "Oshxona Cafe")
	cat := seedCategory(t, db, rest.ID, "Ichimliklar")
	return &orderFixture{
		db:   db,
		svc:  newOrderService(db),
		rest: rest,
		choy: seedMenuItem(t, db, cat.ID, "Choy", 5000),
		kofe: seedMenuItem(t, db, cat.ID, "Kofe", 15000),
	}
}

func TestPlaceOrderEmptyItems(t *testing.T) {
	f := newOrderFixture(t)

	_, err := f.svc.PlaceOrder(&PlaceOrderReq{RestaurantID: f.rest.ID})
	assert.ErrorIs(t, err, ErrValidation)

	// No row may exist after the rejection.
	var count int64
	f.db.Model(&entity.Order{}).Count(&count)
	assert.Zero(t, count)
}

func TestPlaceOrderUnknownRestaurant(t *testing.T) {
	f := newOrderFixture(t)

	_, err := f.svc.PlaceOrder(&PlaceOrderReq{
		RestaurantID: "no-such-restaurant",
		Items:        []OrderItemIn{{MenuItemID: f.choy.ID, Quantity: 1}},
	})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestPlaceOrderForeignMenuItem(t *testing.T) {
	f := newOrderFixture(t)
	other := seedRestaurant(t, f.db, "Boshqa Restoran")
	otherCat := seedCategory(t, f.db, other.ID, "Taomlar")
	foreign := seedMenuItem(t, f.db, otherCat.ID, "Osh", 40000)

	_, err := f.svc.PlaceOrder(&PlaceOrderReq{
		RestaurantID: f.rest.ID,
		Items: []OrderItemIn{
			{MenuItemID: f.choy.ID, Quantity: 1},
			{MenuItemID: foreign.ID, Quantity: 1},
		},
	})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestPlaceOrderTotalsAndDefaults(t *testing.T) {
	f := newOrderFixture(t)

	order, err := f.svc.PlaceOrder(&PlaceOrderReq{
		RestaurantID: f.rest.ID,
		Items: []OrderItemIn{
			{MenuItemID: f.choy.ID, Quantity: 2},
			{MenuItemID: f.kofe.ID, Quantity: 1},
		},
		TableNumber:   " 5 ",
		PaymentMethod: "payme",
	})
	require.NoError(t, err)

	assert.Equal(t, entity.OrderStatusNew, order.Status)
	assert.Equal(t, "5", order.TableNumber)
	assert.Equal(t, entity.PaymentPayme, order.PaymentMethod)
	assert.WithinDuration(t, time.Now(), order.CreatedAt, 5*time.Second)

	status, err := f.svc.Status(order.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 25000, status.Total)
	assert.Equal(t, "Oshxona Cafe", status.RestaurantName)
}

func TestPlaceOrderFloorsQuantity(t *testing.T) {
	f := newOrderFixture(t)

	order, err := f.svc.PlaceOrder(&PlaceOrderReq{
		RestaurantID: f.rest.ID,
		Items:        []OrderItemIn{{MenuItemID: f.choy.ID, Quantity: 0}},
	})
	require.NoError(t, err)
	require.Len(t, order.Items, 1)
	assert.Equal(t, 1, order.Items[0].Quantity)
}

func TestPlaceOrderDropsUnknownPaymentMethod(t *testing.T) {
	f := newOrderFixture(t)

	order, err := f.svc.PlaceOrder(&PlaceOrderReq{
		RestaurantID:  f.rest.ID,
		Items:         []OrderItemIn{{MenuItemID: f.choy.ID, Quantity: 1}},
		PaymentMethod: "bitcoin",
	})
	require.NoError(t, err)
	assert.Empty(t, order.PaymentMethod)
}

func TestComputeTotalUsesCurrentPrice(t *testing.T) {
	f := newOrderFixture(t)

	order, err := f.svc.PlaceOrder(&PlaceOrderReq{
		RestaurantID: f.rest.ID,
		Items:        []OrderItemIn{{MenuItemID: f.choy.ID, Quantity: 1}},
	})
	require.NoError(t, err)

	status, err := f.svc.Status(order.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 5000, status.Total)

	// Edit the price after the fact: the derived total follows it.
	require.NoError(t, f.db.Model(&entity.MenuItem{}).
		Where("id = ?", f.choy.ID).Update("price", 7000).Error)

	status, err = f.svc.Status(order.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 7000, status.Total)
}

func TestSetStatusAnyDirection(t *testing.T) {
	f := newOrderFixture(t)
	order, err := f.svc.PlaceOrder(&PlaceOrderReq{
		RestaurantID: f.rest.ID,
		Items:        []OrderItemIn{{MenuItemID: f.choy.ID, Quantity: 1}},
	})
	require.NoError(t, err)

	// Direct-set: forward, then backwards again.
	for _, status := range []string{entity.OrderStatusReady, entity.OrderStatusPreparing, entity.OrderStatusNew} {
		updated, err := f.svc.SetStatus(order.ID, status, f.rest.ID)
		require.NoError(t, err)
		assert.Equal(t, status, updated.Status)
	}
}

func TestSetStatusInvalidValue(t *testing.T) {
	f := newOrderFixture(t)
	order, err := f.svc.PlaceOrder(&PlaceOrderReq{
		RestaurantID: f.rest.ID,
		Items:        []OrderItemIn{{MenuItemID: f.choy.ID, Quantity: 1}},
	})
	require.NoError(t, err)

	_, err = f.svc.SetStatus(order.ID, "cancelled", f.rest.ID)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestSetStatusCrossTenantIsNotFound(t *testing.T) {
	f := newOrderFixture(t)
	other := seedRestaurant(t, f.db, "Boshqa Restoran")

	order, err := f.svc.PlaceOrder(&PlaceOrderReq{
		RestaurantID: f.rest.ID,
		Items:        []OrderItemIn{{MenuItemID: f.choy.ID, Quantity: 1}},
	})
	require.NoError(t, err)

	// Admin scoped to another restaurant must not even learn the order exists.
	_, err = f.svc.SetStatus(order.ID, entity.OrderStatusReady, other.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	status, err := f.svc.Status(order.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusNew, status.Status)
}

func TestListNewestFirstWithTotals(t *testing.T) {
	f := newOrderFixture(t)

	first, err := f.svc.PlaceOrder(&PlaceOrderReq{
		RestaurantID: f.rest.ID,
		Items:        []OrderItemIn{{MenuItemID: f.choy.ID, Quantity: 1}},
	})
	require.NoError(t, err)
	// sqlite stores sub-second timestamps; a strictly later CreatedAt keeps
	// the ordering deterministic.
	require.NoError(t, f.db.Model(&entity.Order{}).Where("id = ?", first.ID).
		Update("created_at", time.Now().Add(-time.Minute)).Error)

	second, err := f.svc.PlaceOrder(&PlaceOrderReq{
		RestaurantID: f.rest.ID,
		Items:        []OrderItemIn{{MenuItemID: f.kofe.ID, Quantity: 2}},
	})
	require.NoError(t, err)

	views, err := f.svc.List(f.rest.ID)
	require.NoError(t, err)
	require.Len(t, views, 2)
	assert.Equal(t, second.ID, views[0].ID)
	assert.EqualValues(t, 30000, views[0].Total)
	assert.Equal(t, first.ID, views[1].ID)
	assert.EqualValues(t, 5000, views[1].Total)
}

func TestBoardFlagsUnseenAndFresh(t *testing.T) {
	f := newOrderFixture(t)

	order, err := f.svc.PlaceOrder(&PlaceOrderReq{
		RestaurantID: f.rest.ID,
		Items:        []OrderItemIn{{MenuItemID: f.choy.ID, Quantity: 1}},
	})
	require.NoError(t, err)

	// Evaluate outside the fresh-age window so only the seen-set matters.
	later := time.Now().Add(10 * time.Minute)

	views, err := f.svc.Board(f.rest.ID, nil, later)
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.True(t, views[0].IsNew, "unseen order must be flagged")

	views, err = f.svc.Board(f.rest.ID, []string{order.ID}, later)
	require.NoError(t, err)
	assert.False(t, views[0].IsNew, "known order outside the fresh window is not new")

	// Within the fresh window the flag holds even for known ids.
	views, err = f.svc.Board(f.rest.ID, []string{order.ID}, time.Now())
	require.NoError(t, err)
	assert.True(t, views[0].IsNew)
}

func TestDashboard(t *testing.T) {
	f := newOrderFixture(t)

	_, err := f.svc.PlaceOrder(&PlaceOrderReq{
		RestaurantID: f.rest.ID,
		Items:        []OrderItemIn{{MenuItemID: f.choy.ID, Quantity: 2}},
	})
	require.NoError(t, err)
	_, err = f.svc.PlaceOrder(&PlaceOrderReq{
		RestaurantID: f.rest.ID,
		Items:        []OrderItemIn{{MenuItemID: f.kofe.ID, Quantity: 1}},
	})
	require.NoError(t, err)

	dash, err := f.svc.Dashboard(f.rest.ID, time.Now())
	require.NoError(t, err)
	assert.EqualValues(t, 2, dash.TodayOrderCount)
	assert.EqualValues(t, 25000, dash.TotalRevenue)
	assert.Len(t, dash.LatestOrders, 2)
}
