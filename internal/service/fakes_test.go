package service

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/boz-concept/shop-service/internal/domain"
	"github.com/boz-concept/shop-service/internal/events"
	"github.com/boz-concept/shop-service/internal/repository"
)

// In-memory repository fakes. They mirror the Postgres implementations'
// contract, including raw pgx.ErrNoRows for missing rows.

type fakeUserRepo struct {
	mu    sync.Mutex
	users map[string]*domain.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*domain.User)}
}

func (r *fakeUserRepo) Create(_ context.Context, user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	user.ID = uuid.NewString()
	user.CreatedAt = time.Now()
	user.UpdatedAt = user.CreatedAt
	clone := *user
	r.users[user.ID] = &clone
	return nil
}

func (r *fakeUserRepo) Update(_ context.Context, user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[user.ID]; !ok {
		return pgx.ErrNoRows
	}
	user.UpdatedAt = time.Now()
	clone := *user
	r.users[user.ID] = &clone
	return nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	user, ok := r.users[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	clone := *user
	return &clone, nil
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, user := range r.users {
		if user.Email == email {
			clone := *user
			return &clone, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (r *fakeUserRepo) UpdateMembership(_ context.Context, userID string, active bool, expiresAt *time.Time, requested bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	user, ok := r.users[userID]
	if !ok {
		return pgx.ErrNoRows
	}
	user.MembershipActive = active
	user.MembershipExpiresAt = expiresAt
	user.MembershipRequested = requested
	user.UpdatedAt = time.Now()
	return nil
}

func (r *fakeUserRepo) ListMembershipRequests(_ context.Context) ([]domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []domain.User
	for _, user := range r.users {
		if user.MembershipRequested {
			out = append(out, *user)
		}
	}
	return out, nil
}

func (r *fakeUserRepo) ListMembers(_ context.Context) ([]domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []domain.User
	for _, user := range r.users {
		if user.MembershipActive {
			out = append(out, *user)
		}
	}
	return out, nil
}

func (r *fakeUserRepo) add(user domain.User) *domain.User {
	r.mu.Lock()
	defer r.mu.Unlock()
	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	r.users[user.ID] = &user
	clone := user
	return &clone
}

type fakeAdminRepo struct {
	mu     sync.Mutex
	admins map[string]*domain.Admin
}

func newFakeAdminRepo() *fakeAdminRepo {
	return &fakeAdminRepo{admins: make(map[string]*domain.Admin)}
}

func (r *fakeAdminRepo) Create(_ context.Context, admin *domain.Admin) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	admin.ID = uuid.NewString()
	admin.CreatedAt = time.Now()
	admin.UpdatedAt = admin.CreatedAt
	clone := *admin
	r.admins[admin.ID] = &clone
	return nil
}

func (r *fakeAdminRepo) GetByID(_ context.Context, id string) (*domain.Admin, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	admin, ok := r.admins[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	clone := *admin
	return &clone, nil
}

func (r *fakeAdminRepo) GetByEmail(_ context.Context, email string) (*domain.Admin, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, admin := range r.admins {
		if admin.Email == email {
			clone := *admin
			return &clone, nil
		}
	}
	return nil, pgx.ErrNoRows
}

type fakeProductRepo struct {
	mu       sync.Mutex
	products map[string]domain.Product
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{products: make(map[string]domain.Product)}
}

func (r *fakeProductRepo) GetByID(_ context.Context, id string) (*domain.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	product, ok := r.products[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return &product, nil
}

func (r *fakeProductRepo) List(_ context.Context, filter repository.ProductFilter) ([]domain.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []domain.Product
	for _, product := range r.products {
		if filter.Category != nil && product.Category != *filter.Category {
			continue
		}
		if filter.SearchTerm != nil &&
			!strings.Contains(strings.ToLower(product.ProductName), strings.ToLower(*filter.SearchTerm)) {
			continue
		}
		out = append(out, product)
	}
	return out, nil
}

func (r *fakeProductRepo) add(product domain.Product) domain.Product {
	r.mu.Lock()
	defer r.mu.Unlock()
	if product.ID == "" {
		product.ID = uuid.NewString()
	}
	r.products[product.ID] = product
	return product
}

func (r *fakeProductRepo) setPrice(id string, price float64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	product := r.products[id]
	product.Price = price
	r.products[id] = product
}

func (r *fakeProductRepo) remove(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.products, id)
}

type fakeCartRepo struct {
	mu    sync.Mutex
	carts map[string][]domain.CartItem
}

func newFakeCartRepo() *fakeCartRepo {
	return &fakeCartRepo{carts: make(map[string][]domain.CartItem)}
}

func (r *fakeCartRepo) ListByUser(_ context.Context, userID string) ([]domain.CartItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]domain.CartItem(nil), r.carts[userID]...), nil
}

func (r *fakeCartRepo) AddOrIncrement(_ context.Context, userID, productID string, quantity int) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	items := r.carts[userID]
	for i := range items {
		if items[i].ProductID == productID {
			items[i].Quantity += quantity
			return len(items), nil
		}
	}
	r.carts[userID] = append(items, domain.CartItem{ProductID: productID, Quantity: quantity})
	return len(r.carts[userID]), nil
}

func (r *fakeCartRepo) SetQuantity(_ context.Context, userID, productID string, quantity int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	items := r.carts[userID]
	for i := range items {
		if items[i].ProductID == productID {
			items[i].Quantity = quantity
			return nil
		}
	}
	return pgx.ErrNoRows
}

func (r *fakeCartRepo) Remove(_ context.Context, userID, productID string) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	items := r.carts[userID]
	for i := range items {
		if items[i].ProductID == productID {
			r.carts[userID] = append(items[:i], items[i+1:]...)
			break
		}
	}
	return len(r.carts[userID]), nil
}

func (r *fakeCartRepo) Clear(_ context.Context, userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.carts, userID)
	return nil
}

type fakeOrderRepo struct {
	mu     sync.Mutex
	orders map[string]*domain.Order
	carts  *fakeCartRepo
}

func newFakeOrderRepo(carts *fakeCartRepo) *fakeOrderRepo {
	return &fakeOrderRepo{orders: make(map[string]*domain.Order), carts: carts}
}

func (r *fakeOrderRepo) CreateAndClearCart(ctx context.Context, order *domain.Order) error {
	r.mu.Lock()
	order.ID = uuid.NewString()
	order.CreatedAt = time.Now()
	clone := *order
	clone.Items = append([]domain.OrderItem(nil), order.Items...)
	r.orders[order.ID] = &clone
	r.mu.Unlock()
	return r.carts.Clear(ctx, order.UserID)
}

func (r *fakeOrderRepo) GetByID(_ context.Context, id string) (*domain.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	order, ok := r.orders[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	clone := *order
	return &clone, nil
}

func (r *fakeOrderRepo) UpdateStatus(_ context.Context, id string, status domain.OrderStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	order, ok := r.orders[id]
	if !ok {
		return pgx.ErrNoRows
	}
	order.Status = status
	return nil
}

func (r *fakeOrderRepo) ListByUser(_ context.Context, userID string) ([]domain.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []domain.Order
	for _, order := range r.orders {
		if order.UserID == userID {
			out = append(out, *order)
		}
	}
	return out, nil
}

func (r *fakeOrderRepo) ListAll(_ context.Context) ([]domain.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []domain.Order
	for _, order := range r.orders {
		out = append(out, *order)
	}
	return out, nil
}

type fakeResetRepo struct {
	mu     sync.Mutex
	tokens map[string]string
}

func newFakeResetRepo() *fakeResetRepo {
	return &fakeResetRepo{tokens: make(map[string]string)}
}

func (r *fakeResetRepo) Create(_ context.Context, token, userID string, _ time.Duration) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.tokens[token] = userID
	return nil
}

func (r *fakeResetRepo) Consume(_ context.Context, token string) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	userID, ok := r.tokens[token]
	if !ok {
		return "", repository.ErrResetTokenNotFound
	}
	delete(r.tokens, token)
	return userID, nil
}

// recordingDispatcher captures published events for assertions.
type recordingDispatcher struct {
	mu     sync.Mutex
	events []events.Event
}

func (d *recordingDispatcher) Publish(_ context.Context, event events.Event) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.events = append(d.events, event)
	return nil
}

func (d *recordingDispatcher) Subscribe(events.EventType, events.EventHandler) {}

func (d *recordingDispatcher) published() []events.Event {
	d.mu.Lock()
	defer d.mu.Unlock()
	return append([]events.Event(nil), d.events...)
}
