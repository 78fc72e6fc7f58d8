package commands_test

import (
	"context"
	"testing"
	"time"

	"laundry/internal/core/application/usecases/commands"
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/core/domain/model/rating"
	"laundry/internal/core/domain/model/user"
	"laundry/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) (*order.Order, error) {
	args := m.Called(ctx, o)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order, expectedPriorStatus order.Status, expectedPriorDeliveryID *kernel.ID) error {
	args := m.Called(ctx, o, expectedPriorStatus, expectedPriorDeliveryID)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.ID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetAll(ctx context.Context) ([]*order.Order, error) {
	args := m.Called(ctx)
	return args.Get(0).([]*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetAllByCustomer(ctx context.Context, customerID kernel.ID) ([]*order.Order, error) {
	args := m.Called(ctx, customerID)
	return args.Get(0).([]*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetAllByDelivery(ctx context.Context, deliveryID kernel.ID) ([]*order.Order, error) {
	args := m.Called(ctx, deliveryID)
	return args.Get(0).([]*order.Order), args.Error(1)
}

type MockUserRepository struct{ mock.Mock }

func (m *MockUserRepository) Get(ctx context.Context, id kernel.ID) (*user.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.User), args.Error(1)
}

func (m *MockUserRepository) GetAllByRole(ctx context.Context, role user.Role) ([]*user.User, error) {
	args := m.Called(ctx, role)
	return args.Get(0).([]*user.User), args.Error(1)
}

type MockRatingRepository struct{ mock.Mock }

func (m *MockRatingRepository) Add(ctx context.Context, entity *rating.Rating) (*rating.Rating, error) {
	args := m.Called(ctx, entity)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*rating.Rating), args.Error(1)
}

func (m *MockRatingRepository) Exists(ctx context.Context, orderID, fromUserID, toUserID kernel.ID) (bool, error) {
	args := m.Called(ctx, orderID, fromUserID, toUserID)
	return args.Bool(0), args.Error(1)
}

func (m *MockRatingRepository) GetAllByRatedUser(ctx context.Context, toUserID kernel.ID) ([]*rating.Rating, error) {
	args := m.Called(ctx, toUserID)
	return args.Get(0).([]*rating.Rating), args.Error(1)
}

type MockOrderUoW struct{ mock.Mock }

func (m *MockOrderUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockOrderUoW) UserRepository() ports.UserRepository {
	args := m.Called()
	return args.Get(0).(ports.UserRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockRatingUoW struct{ mock.Mock }

func (m *MockRatingUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockRatingUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockRatingUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockRatingUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockRatingUoW) RatingRepository() ports.RatingRepository {
	args := m.Called()
	return args.Get(0).(ports.RatingRepository)
}

type MockRatingUoWFactory struct{ mock.Mock }

func (m *MockRatingUoWFactory) Create() commands.RatingUoW {
	args := m.Called()
	return args.Get(0).(commands.RatingUoW)
}

func mustID(t *testing.T, value int64) kernel.ID {
	t.Helper()
	id, err := kernel.NewID(value)
	require.NoError(t, err)
	return id
}

func mustActor(t *testing.T, id int64, role user.Role) user.Actor {
	t.Helper()
	actor, err := user.NewActor(mustID(t, id), role)
	require.NoError(t, err)
	return actor
}

func mustItems(t *testing.T) []order.Item {
	t.Helper()
	item, err := order.NewItem(order.GarmentShirt, 2, kernel.Money(500))
	require.NoError(t, err)
	return []order.Item{item}
}

func mustWindow(t *testing.T) kernel.TimeWindow {
	t.Helper()
	pickup := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)
	window, err := kernel.NewTimeWindow(pickup, pickup.Add(48*time.Hour))
	require.NoError(t, err)
	return window
}

func mustUser(t *testing.T, id int64, role user.Role) *user.User {
	t.Helper()
	u, err := user.NewUser(mustID(t, id), "someone", role, "Someone", "+212600000000", "Casablanca", 0)
	require.NoError(t, err)
	return u
}

// restoredOrder builds a persisted-looking order: id 1, customer 10,
// business 20, price 1000.
func restoredOrder(t *testing.T, status order.Status, deliveryID *kernel.ID) *order.Order {
	t.Helper()
	o, err := order.RestoreOrder(
		mustID(t, 1), mustID(t, 10), mustID(t, 20),
		deliveryID, status, mustItems(t),
		"12 Rue des Fleurs", "34 Avenue Hassan II",
		mustWindow(t), kernel.Money(1000),
		time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	return o
}
