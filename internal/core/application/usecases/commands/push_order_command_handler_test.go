package commands_test

import (
	"encoding/json"
	"testing"
	"time"

	"fulfillment/internal/core/application/session"
	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/courier"
	"fulfillment/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func postexCities() []courier.CityRecord {
	return []courier.CityRecord{
		{OperationalCityName: "Lahore", CountryName: "Pakistan", ProviderCityCode: "LHE"},
		{OperationalCityName: "Multan City", CountryName: "Pakistan", ProviderCityCode: "MUX"},
	}
}

func newPushHandler(
	orderClient *MockOrderClient,
	gateway *MockCourierGateway,
	factory *MockJournalUoWFactory,
	sessions *session.PushSessions,
) commands.PushOrderCommandHandler {
	return commands.NewPushOrderCommandHandler(
		orderClient, gateway, session.NewCityCache(), session.NewServiceStatusCache(), sessions, factory)
}

func TestPushOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()

	aggregate := pendingOrder(t, "Lahore")
	orderClient := &MockOrderClient{}
	orderClient.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil)
	orderClient.On("Update", mock.Anything, aggregate).Return(nil)

	client := &MockCourierClient{provider: courier.ProviderPostex}
	client.On("ListCities", mock.Anything).Return(postexCities(), nil)
	client.On("Push", mock.Anything, mock.MatchedBy(func(req courier.PushRequest) bool {
		return req.CityName == "Lahore" && req.CityCode == "LHE" && req.CustomerName == "Sana Javed"
	})).Return(courier.PushResult{
		OrderRefNumber: "ORD-551",
		TrackingNumber: "CN-1001",
		OrderStatus:    "Shipped",
		LabelURL:       "https://merchant.postex.pk/labels/CN-1001.pdf",
		Raw:            json.RawMessage(`{"dist":{"trackingNumber":"CN-1001"}}`),
	}, nil)

	gateway := &MockCourierGateway{}
	gateway.On("Client", courier.ProviderPostex).Return(client, nil)

	factory, uow, repo := journalFixture()
	repo.On("HasPush", mock.Anything, aggregate.ID()).Return(false, nil)
	repo.On("Add", mock.Anything, mock.Anything).Return(nil)
	uow.On("Commit", mock.Anything).Return(nil)

	sessions := session.NewPushSessions()
	handler := newPushHandler(orderClient, gateway, factory, sessions)

	cmd, err := commands.NewPushOrderCommand(aggregate.ID(), courier.ProviderPostex)
	require.NoError(t, err)

	result, err := handler.Handle(ctx, cmd)
	require.NoError(t, err)

	assert.Equal(t, "CN-1001", result.TrackingNumber)
	assert.Equal(t, "ORD-551", result.OrderRefNumber)
	assert.Equal(t, order.Shipped, result.OrderStatus)
	assert.True(t, aggregate.Pushed())
	assert.False(t, aggregate.CanEdit())
	assert.False(t, sessions.InFlight(aggregate.ID()), "in-flight mark must clear on success")

	orderClient.AssertExpectations(t)
	client.AssertExpectations(t)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestPushOrderCommandHandler_Handle_AlreadyPushedLocally(t *testing.T) {
	ctx := t.Context()

	aggregate := pushedOrder(t, order.Shipped, courier.ProviderPostex, "CN-777")
	orderClient := &MockOrderClient{}
	orderClient.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil)

	// No expectations on the gateway: a second push must fail before any
	// provider interaction.
	gateway := &MockCourierGateway{}
	factory := &MockJournalUoWFactory{}

	handler := newPushHandler(orderClient, gateway, factory, session.NewPushSessions())

	cmd, err := commands.NewPushOrderCommand(aggregate.ID(), courier.ProviderPostex)
	require.NoError(t, err)

	_, err = handler.Handle(ctx, cmd)
	assert.ErrorIs(t, err, order.ErrAlreadyPushed)

	gateway.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestPushOrderCommandHandler_Handle_JournalRemembersPush(t *testing.T) {
	ctx := t.Context()

	aggregate := pendingOrder(t, "Lahore")
	orderClient := &MockOrderClient{}
	orderClient.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil)

	gateway := &MockCourierGateway{}

	factory, _, repo := journalFixture()
	repo.On("HasPush", mock.Anything, aggregate.ID()).Return(true, nil)

	handler := newPushHandler(orderClient, gateway, factory, session.NewPushSessions())

	cmd, err := commands.NewPushOrderCommand(aggregate.ID(), courier.ProviderPostex)
	require.NoError(t, err)

	_, err = handler.Handle(ctx, cmd)
	assert.ErrorIs(t, err, order.ErrAlreadyPushed)
	gateway.AssertExpectations(t)
}

func TestPushOrderCommandHandler_Handle_CityResolutionRequired(t *testing.T) {
	ctx := t.Context()

	aggregate := pendingOrder(t, "Multan")
	orderClient := &MockOrderClient{}
	orderClient.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil)

	client := &MockCourierClient{provider: courier.ProviderPostex}
	client.On("ListCities", mock.Anything).Return(postexCities(), nil)
	// No Push expectation: an unmatched city must never reach the provider.

	gateway := &MockCourierGateway{}
	gateway.On("Client", courier.ProviderPostex).Return(client, nil)

	factory, _, repo := journalFixture()
	repo.On("HasPush", mock.Anything, aggregate.ID()).Return(false, nil)

	sessions := session.NewPushSessions()
	handler := newPushHandler(orderClient, gateway, factory, sessions)

	cmd, err := commands.NewPushOrderCommand(aggregate.ID(), courier.ProviderPostex)
	require.NoError(t, err)

	result, err := handler.Handle(ctx, cmd)
	assert.ErrorIs(t, err, commands.ErrCityResolutionRequired)

	require.Len(t, result.CityCandidates, 1)
	assert.Equal(t, "Multan City", result.CityCandidates[0].OperationalCityName)

	pending, ok := sessions.PeekPending(aggregate.ID())
	require.True(t, ok, "push must be parked for resolution")
	assert.Equal(t, "Multan", pending.RequestedCity)
	assert.Equal(t, courier.ProviderPostex, pending.Provider)
	assert.False(t, sessions.InFlight(aggregate.ID()), "in-flight mark must clear on failure")

	client.AssertExpectations(t)
}

func TestPushOrderCommandHandler_Handle_ProviderRejectsCity(t *testing.T) {
	ctx := t.Context()

	// The cached list claims Lahore is supported but the provider disagrees,
	// e.g. the list is stale.
	aggregate := pendingOrder(t, "Lahore")
	orderClient := &MockOrderClient{}
	orderClient.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil)

	client := &MockCourierClient{provider: courier.ProviderPostex}
	client.On("ListCities", mock.Anything).Return(postexCities(), nil)
	client.On("Push", mock.Anything, mock.Anything).Return(
		courier.PushResult{},
		courier.NewProviderError(courier.ProviderPostex, "push", "INVALID_DELIVERY_CITY", "invalid delivery city"),
	)

	gateway := &MockCourierGateway{}
	gateway.On("Client", courier.ProviderPostex).Return(client, nil)

	factory, _, repo := journalFixture()
	repo.On("HasPush", mock.Anything, aggregate.ID()).Return(false, nil)

	sessions := session.NewPushSessions()
	handler := newPushHandler(orderClient, gateway, factory, sessions)

	cmd, err := commands.NewPushOrderCommand(aggregate.ID(), courier.ProviderPostex)
	require.NoError(t, err)

	_, err = handler.Handle(ctx, cmd)
	assert.ErrorIs(t, err, commands.ErrCityResolutionRequired)

	_, ok := sessions.PeekPending(aggregate.ID())
	assert.True(t, ok)
	assert.False(t, aggregate.Pushed())
}

func TestPushOrderCommandHandler_Handle_PushInFlight(t *testing.T) {
	ctx := t.Context()

	aggregate := pendingOrder(t, "Lahore")
	sessions := session.NewPushSessions()
	require.NoError(t, sessions.Begin(aggregate.ID()))

	handler := newPushHandler(&MockOrderClient{}, &MockCourierGateway{}, &MockJournalUoWFactory{}, sessions)

	cmd, err := commands.NewPushOrderCommand(aggregate.ID(), courier.ProviderPostex)
	require.NoError(t, err)

	_, err = handler.Handle(ctx, cmd)
	assert.ErrorIs(t, err, session.ErrPushInFlight)
}

func TestPushOrderCommandHandler_Handle_ProviderUnavailable(t *testing.T) {
	ctx := t.Context()

	aggregate := pendingOrder(t, "Lahore")
	orderClient := &MockOrderClient{}
	orderClient.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil)

	statusCache := session.NewServiceStatusCache()
	statusCache.Set(courier.ProviderLCS, courier.ServiceStatus{Enabled: false, Configured: true}, time.Now())

	gateway := &MockCourierGateway{}
	handler := commands.NewPushOrderCommandHandler(
		orderClient, gateway, session.NewCityCache(), statusCache,
		session.NewPushSessions(), &MockJournalUoWFactory{})

	cmd, err := commands.NewPushOrderCommand(aggregate.ID(), courier.ProviderLCS)
	require.NoError(t, err)

	_, err = handler.Handle(ctx, cmd)
	assert.ErrorIs(t, err, commands.ErrProviderUnavailable)
	gateway.AssertExpectations(t)
}

func TestPushOrderCommandHandler_Handle_UnrecognizedPushStatusStaysPending(t *testing.T) {
	ctx := t.Context()

	aggregate := pendingOrder(t, "Lahore")
	orderClient := &MockOrderClient{}
	orderClient.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil)
	orderClient.On("Update", mock.Anything, aggregate).Return(nil)

	client := &MockCourierClient{provider: courier.ProviderPostex}
	client.On("ListCities", mock.Anything).Return(postexCities(), nil)
	client.On("Push", mock.Anything, mock.Anything).Return(courier.PushResult{
		OrderRefNumber: "ORD-552",
		TrackingNumber: "CN-1002",
		OrderStatus:    "Consignment Booked",
	}, nil)

	gateway := &MockCourierGateway{}
	gateway.On("Client", courier.ProviderPostex).Return(client, nil)

	factory, uow, repo := journalFixture()
	repo.On("HasPush", mock.Anything, aggregate.ID()).Return(false, nil)
	repo.On("Add", mock.Anything, mock.Anything).Return(nil)
	uow.On("Commit", mock.Anything).Return(nil)

	handler := newPushHandler(orderClient, gateway, factory, session.NewPushSessions())

	cmd, err := commands.NewPushOrderCommand(aggregate.ID(), courier.ProviderPostex)
	require.NoError(t, err)

	result, err := handler.Handle(ctx, cmd)
	require.NoError(t, err)

	assert.Equal(t, order.Pending, result.OrderStatus)
	assert.True(t, aggregate.Pushed())
	assert.False(t, aggregate.CanEdit(), "pending but pushed must not be editable")
}
