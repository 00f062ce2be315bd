package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/boz-concept/shop-service/internal/domain"
	"github.com/boz-concept/shop-service/internal/events"
)

type orderFixture struct {
	svc        *OrderService
	carts      *fakeCartRepo
	products   *fakeProductRepo
	users      *fakeUserRepo
	orders     *fakeOrderRepo
	dispatcher *recordingDispatcher
}

func newOrderFixture() *orderFixture {
	carts := newFakeCartRepo()
	products := newFakeProductRepo()
	users := newFakeUserRepo()
	orders := newFakeOrderRepo(carts)
	dispatcher := &recordingDispatcher{}
	svc := NewOrderService(OrderDependencies{
		OrderRepo:   orders,
		CartRepo:    carts,
		ProductRepo: products,
		UserRepo:    users,
		Dispatcher:  dispatcher,
	})
	return &orderFixture{svc: svc, carts: carts, products: products, users: users, orders: orders, dispatcher: dispatcher}
}

func TestOrderService_CheckoutRequiresAddress(t *testing.T) {
	t.Parallel()

	f := newOrderFixture()
	user := &domain.User{ID: "user-1"}

	_, err := f.svc.Checkout(context.Background(), user, "   ")
	requireDomainError(t, err, "VALIDATION_FAILED")
}

func TestOrderService_CheckoutEmptyCart(t *testing.T) {
	t.Parallel()

	f := newOrderFixture()
	user := &domain.User{ID: "user-1"}

	_, err := f.svc.Checkout(context.Background(), user, "1 Main St")
	requireDomainError(t, err, "VALIDATION_FAILED")
}

func TestOrderService_CheckoutSnapshotsPricesAndClearsCart(t *testing.T) {
	t.Parallel()

	f := newOrderFixture()
	user := &domain.User{ID: "user-1"}
	product := f.products.add(domain.Product{ProductName: "Mug", Price: 10})

	_, err := f.carts.AddOrIncrement(context.Background(), user.ID, product.ID, 3)
	require.NoError(t, err)

	order, err := f.svc.Checkout(context.Background(), user, "1 Main St")
	require.NoError(t, err)
	require.NotEmpty(t, order.ID)
	assert.Equal(t, domain.OrderStatusPending, order.Status)
	assert.Equal(t, 30.0, order.Total)
	require.Len(t, order.Items, 1)
	assert.Equal(t, product.ID, order.Items[0].ProductID)
	assert.Equal(t, 3, order.Items[0].Quantity)

	// A later catalog change must not touch the placed order.
	f.products.setPrice(product.ID, 99)
	stored, err := f.orders.GetByID(context.Background(), order.ID)
	require.NoError(t, err)
	assert.Equal(t, 30.0, stored.Total)

	items, err := f.carts.ListByUser(context.Background(), user.ID)
	require.NoError(t, err)
	assert.Empty(t, items)

	published := f.dispatcher.published()
	require.Len(t, published, 1)
	assert.Equal(t, events.EventOrderCreated, published[0].Type)
	assert.Equal(t, order.ID, published[0].EntityID)
}

func TestOrderService_CheckoutUsesMembershipPricing(t *testing.T) {
	t.Parallel()

	f := newOrderFixture()
	member := activeMember("member-1")
	product := f.products.add(domain.Product{
		ProductName:     "Mug",
		Price:           10,
		MembershipPrice: floatPtr(6),
	})

	_, err := f.carts.AddOrIncrement(context.Background(), member.ID, product.ID, 2)
	require.NoError(t, err)

	order, err := f.svc.Checkout(context.Background(), member, "1 Main St")
	require.NoError(t, err)
	assert.Equal(t, 12.0, order.Total)
}

func TestOrderService_SetStatusRejectsUnknownValue(t *testing.T) {
	t.Parallel()

	f := newOrderFixture()
	admin := &domain.Admin{ID: "admin-1"}

	_, err := f.svc.SetStatus(context.Background(), admin, "order-1", "cancelled")
	domainErr := requireDomainError(t, err, "VALIDATION_FAILED")
	assert.Equal(t, "cancelled", domainErr.Details["status"])
}

func TestOrderService_SetStatusUnknownOrder(t *testing.T) {
	t.Parallel()

	f := newOrderFixture()
	admin := &domain.Admin{ID: "admin-1"}

	_, err := f.svc.SetStatus(context.Background(), admin, "missing", domain.OrderStatusShipped)
	requireDomainError(t, err, "NOT_FOUND")
}

func TestOrderService_SetStatusAllowsAnyDirection(t *testing.T) {
	t.Parallel()

	f := newOrderFixture()
	admin := &domain.Admin{ID: "admin-1"}
	user := &domain.User{ID: "user-1"}
	product := f.products.add(domain.Product{ProductName: "Mug", Price: 10})

	_, err := f.carts.AddOrIncrement(context.Background(), user.ID, product.ID, 1)
	require.NoError(t, err)
	order, err := f.svc.Checkout(context.Background(), user, "1 Main St")
	require.NoError(t, err)

	updated, err := f.svc.SetStatus(context.Background(), admin, order.ID, domain.OrderStatusDelivered)
	require.NoError(t, err)
	assert.Equal(t, domain.OrderStatusDelivered, updated.Status)

	// Moving backwards is part of the admin workflow.
	updated, err = f.svc.SetStatus(context.Background(), admin, order.ID, domain.OrderStatusPreparing)
	require.NoError(t, err)
	assert.Equal(t, domain.OrderStatusPreparing, updated.Status)

	published := f.dispatcher.published()
	require.Len(t, published, 3)
	assert.Equal(t, events.EventOrderStatusChanged, published[2].Type)
	payload, ok := published[2].Payload.(events.OrderStatusChangedPayload)
	require.True(t, ok)
	assert.Equal(t, domain.OrderStatusDelivered, payload.OldStatus)
	assert.Equal(t, domain.OrderStatusPreparing, payload.NewStatus)
}

func TestOrderService_ListAllEnrichesOwner(t *testing.T) {
	t.Parallel()

	f := newOrderFixture()
	user := f.users.add(domain.User{Email: "buyer@example.com", FullName: "Buyer"})
	product := f.products.add(domain.Product{ProductName: "Mug", Price: 10})

	_, err := f.carts.AddOrIncrement(context.Background(), user.ID, product.ID, 1)
	require.NoError(t, err)
	_, err = f.svc.Checkout(context.Background(), user, "1 Main St")
	require.NoError(t, err)

	views, err := f.svc.ListAll(context.Background())
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, "buyer@example.com", views[0].UserEmail)
	assert.Equal(t, "Buyer", views[0].UserFullName)
}
