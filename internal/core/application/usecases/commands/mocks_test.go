package commands_test

import (
	"context"
	"testing"
	"time"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/courier"
	"fulfillment/internal/core/domain/model/journal"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/ports"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderClient struct{ mock.Mock }

func (m *MockOrderClient) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderClient) Update(ctx context.Context, aggregate *order.Order) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockOrderClient) UpdateShippingCity(ctx context.Context, id kernel.UUID, city string) error {
	args := m.Called(ctx, id, city)
	return args.Error(0)
}

func (m *MockOrderClient) GetPendingUnpushed(ctx context.Context) ([]*order.Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

func (m *MockOrderClient) GetPushedActive(ctx context.Context) ([]*order.Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

type MockCourierClient struct {
	mock.Mock
	provider courier.Provider
}

func (m *MockCourierClient) Provider() courier.Provider { return m.provider }

func (m *MockCourierClient) Push(ctx context.Context, req courier.PushRequest) (courier.PushResult, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(courier.PushResult), args.Error(1)
}

func (m *MockCourierClient) Track(ctx context.Context, trackingNumber string) (courier.TrackingInfo, error) {
	args := m.Called(ctx, trackingNumber)
	return args.Get(0).(courier.TrackingInfo), args.Error(1)
}

func (m *MockCourierClient) Cancel(ctx context.Context, trackingNumber string) error {
	args := m.Called(ctx, trackingNumber)
	return args.Error(0)
}

func (m *MockCourierClient) ListCities(ctx context.Context) ([]courier.CityRecord, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]courier.CityRecord), args.Error(1)
}

func (m *MockCourierClient) GetServiceStatus(ctx context.Context) (courier.ServiceStatus, error) {
	args := m.Called(ctx)
	return args.Get(0).(courier.ServiceStatus), args.Error(1)
}

type MockCourierGateway struct{ mock.Mock }

func (m *MockCourierGateway) Client(provider courier.Provider) (ports.CourierClient, error) {
	args := m.Called(provider)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(ports.CourierClient), args.Error(1)
}

type MockJournalRepository struct{ mock.Mock }

func (m *MockJournalRepository) Add(ctx context.Context, entry *journal.Entry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockJournalRepository) GetByOrderID(ctx context.Context, orderID kernel.UUID) ([]*journal.Entry, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*journal.Entry), args.Error(1)
}

func (m *MockJournalRepository) HasPush(ctx context.Context, orderID kernel.UUID) (bool, error) {
	args := m.Called(ctx, orderID)
	return args.Bool(0), args.Error(1)
}

type MockJournalUoW struct{ mock.Mock }

func (m *MockJournalUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockJournalUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockJournalUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockJournalUoW) JournalRepository() ports.JournalRepository {
	args := m.Called()
	return args.Get(0).(ports.JournalRepository)
}

type MockJournalUoWFactory struct{ mock.Mock }

func (m *MockJournalUoWFactory) Create() commands.JournalUoW {
	args := m.Called()
	return args.Get(0).(commands.JournalUoW)
}

// journalFixture wires a factory, uow and repository with the usual
// transaction expectations.
func journalFixture() (*MockJournalUoWFactory, *MockJournalUoW, *MockJournalRepository) {
	repo := &MockJournalRepository{}
	uow := &MockJournalUoW{}
	factory := &MockJournalUoWFactory{}

	factory.On("Create").Return(uow)
	uow.On("Begin", mock.Anything).Return(nil)
	uow.On("Rollback", mock.Anything).Return(nil)
	uow.On("JournalRepository").Return(repo)

	return factory, uow, repo
}

func pendingOrder(t *testing.T, city string) *order.Order {
	t.Helper()

	addr, err := order.NewAddress("Sana Javed", "+923214567890", city, "House 7, Street 12, G-10/2", "")
	require.NoError(t, err)

	line, err := order.NewCartLine("Leather Wallet", decimal.NewFromInt(1800), 1, "Brown")
	require.NoError(t, err)

	aggregate, err := order.NewOrder(
		kernel.NewUUID(), addr, []order.CartLine{line},
		decimal.NewFromInt(2000), decimal.NewFromInt(200))
	require.NoError(t, err)

	return aggregate
}

func pushedOrder(t *testing.T, status order.Status, provider courier.Provider, trackingNumber string) *order.Order {
	t.Helper()

	addr, err := order.NewAddress("Sana Javed", "+923214567890", "Lahore", "House 7, Street 12, G-10/2", "")
	require.NoError(t, err)

	record, err := order.RestoreShippingProviderRecord(
		provider, true, "ORD-300", trackingNumber, "Consignment Booked",
		time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC), "", nil)
	require.NoError(t, err)

	aggregate, err := order.RestoreOrder(
		kernel.NewUUID(), status, addr, nil,
		decimal.NewFromInt(2000), decimal.NewFromInt(200), &record)
	require.NoError(t, err)

	return aggregate
}
