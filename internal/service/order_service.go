package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/boz-concept/shop-service/internal/domain"
	"github.com/boz-concept/shop-service/internal/events"
	"github.com/boz-concept/shop-service/internal/repository"
	apperrors "github.com/boz-concept/shop-service/pkg/util"
)

// OrderService converts carts into orders and manages status updates.
type OrderService struct {
	orders     repository.OrderRepository
	carts      repository.CartRepository
	products   repository.ProductRepository
	users      repository.UserRepository
	dispatcher events.Dispatcher
}

// OrderDependencies bundles repositories for order service.
type OrderDependencies struct {
	OrderRepo   repository.OrderRepository
	CartRepo    repository.CartRepository
	ProductRepo repository.ProductRepository
	UserRepo    repository.UserRepository
	Dispatcher  events.Dispatcher
}

// NewOrderService constructs the service.
func NewOrderService(deps OrderDependencies) *OrderService {
	return &OrderService{
		orders:     deps.OrderRepo,
		carts:      deps.CartRepo,
		products:   deps.ProductRepo,
		users:      deps.UserRepo,
		dispatcher: deps.Dispatcher,
	}
}

// AdminOrderView pairs an order with its owner for back-office listings.
type AdminOrderView struct {
	Order        domain.Order
	UserEmail    string
	UserFullName string
}

// Checkout snapshots the user's cart into a new pending order. The
// total is computed from current catalog prices, re-validating the
// membership expiry at this moment; items are value copies so later
// cart or catalog changes cannot alter the placed order. The order
// insert and cart clear commit together.
func (s *OrderService) Checkout(ctx context.Context, user *domain.User, shippingAddress string) (*domain.Order, error) {
	if strings.TrimSpace(shippingAddress) == "" {
		return nil, apperrors.NewValidationError("shipping address required", nil)
	}

	items, err := s.carts.ListByUser(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, apperrors.NewValidationError("cart is empty", nil)
	}

	membershipActive := user.HasActiveMembership(time.Now())

	var total float64
	orderItems := make([]domain.OrderItem, 0, len(items))
	for _, item := range items {
		orderItems = append(orderItems, domain.OrderItem{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
		})

		product, err := s.products.GetByID(ctx, item.ProductID)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				continue
			}
			return nil, err
		}
		total += product.UnitPrice(membershipActive) * float64(item.Quantity)
	}

	order := &domain.Order{
		UserID:          user.ID,
		Items:           orderItems,
		Total:           total,
		ShippingAddress: shippingAddress,
		Status:          domain.OrderStatusPending,
	}
	if err := s.orders.CreateAndClearCart(ctx, order); err != nil {
		return nil, err
	}

	s.publish(ctx, events.Event{
		Type:     events.EventOrderCreated,
		EntityID: order.ID,
		Actor:    userActor(user.ID),
		Payload: events.OrderCreatedPayload{
			UserID:    user.ID,
			Total:     order.Total,
			ItemCount: len(order.Items),
		},
	})
	return order, nil
}

// SetStatus overwrites an order's status. Any of the five legal values
// is accepted regardless of the current one; the admin workflow relies
// on being able to move a status backwards.
func (s *OrderService) SetStatus(ctx context.Context, admin *domain.Admin, orderID string, status domain.OrderStatus) (*domain.Order, error) {
	if !domain.ValidOrderStatus(status) {
		return nil, apperrors.NewValidationError("invalid status", map[string]any{"status": string(status)})
	}

	order, err := s.orders.GetByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("order", nil)
		}
		return nil, err
	}

	oldStatus := order.Status
	if err := s.orders.UpdateStatus(ctx, orderID, status); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("order", nil)
		}
		return nil, err
	}
	order.Status = status

	s.publish(ctx, events.Event{
		Type:     events.EventOrderStatusChanged,
		EntityID: order.ID,
		Actor:    adminActor(admin.ID),
		Payload: events.OrderStatusChangedPayload{
			OldStatus: oldStatus,
			NewStatus: status,
		},
	})
	return order, nil
}

// ListForUser returns all orders owned by the user, newest first.
func (s *OrderService) ListForUser(ctx context.Context, user *domain.User) ([]domain.Order, error) {
	return s.orders.ListByUser(ctx, user.ID)
}

// ListAll returns every order enriched with its owner, for the admin panel.
func (s *OrderService) ListAll(ctx context.Context) ([]AdminOrderView, error) {
	orders, err := s.orders.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	views := make([]AdminOrderView, 0, len(orders))
	for _, order := range orders {
		view := AdminOrderView{Order: order}
		user, err := s.users.GetByID(ctx, order.UserID)
		if err == nil {
			view.UserEmail = user.Email
			view.UserFullName = user.FullName
		} else if !errors.Is(err, pgx.ErrNoRows) {
			return nil, err
		}
		views = append(views, view)
	}
	return views, nil
}

func (s *OrderService) publish(ctx context.Context, event events.Event) {
	if s.dispatcher == nil {
		return
	}
	event.Timestamp = time.Now()
	_ = s.dispatcher.Publish(ctx, event)
}

func userActor(userID string) events.Actor {
	return events.Actor{Type: domain.SubjectTypeUser, UserID: &userID}
}

func adminActor(adminID string) events.Actor {
	return events.Actor{Type: domain.SubjectTypeAdmin, AdminID: &adminID}
}
