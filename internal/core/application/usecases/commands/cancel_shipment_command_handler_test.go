package commands_test

import (
	"testing"

	"fulfillment/internal/core/application/session"
	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/courier"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewCancelShipmentCommand(t *testing.T) {
	t.Run("confirmed", func(t *testing.T) {
		cmd, err := commands.NewCancelShipmentCommand(kernel.NewUUID(), true)
		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
	})

	t.Run("unconfirmed never constructs", func(t *testing.T) {
		_, err := commands.NewCancelShipmentCommand(kernel.NewUUID(), false)
		assert.ErrorIs(t, err, commands.ErrCancelNotConfirmed)
	})

	t.Run("invalid order id", func(t *testing.T) {
		_, err := commands.NewCancelShipmentCommand(kernel.UUID{}, true)
		assert.Error(t, err)
	})

	t.Run("zero value command does not validate", func(t *testing.T) {
		var cmd commands.CancelShipmentCommand
		assert.ErrorIs(t, cmd.Validate(), commands.ErrCancelShipmentCommandIsNotConstructed)
	})
}

func TestCancelShipmentCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()

	aggregate := pushedOrder(t, order.Shipped, courier.ProviderPostex, "CN-4001")
	orderClient := &MockOrderClient{}
	orderClient.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil)
	orderClient.On("Update", mock.Anything, aggregate).Return(nil)

	client := &MockCourierClient{provider: courier.ProviderPostex}
	client.On("Cancel", mock.Anything, "CN-4001").Return(nil)

	gateway := &MockCourierGateway{}
	gateway.On("Client", courier.ProviderPostex).Return(client, nil)

	factory, uow, repo := journalFixture()
	repo.On("Add", mock.Anything, mock.Anything).Return(nil)
	uow.On("Commit", mock.Anything).Return(nil)

	handler := commands.NewCancelShipmentCommandHandler(
		orderClient, gateway, session.NewPushSessions(), factory)

	cmd, err := commands.NewCancelShipmentCommand(aggregate.ID(), true)
	require.NoError(t, err)

	require.NoError(t, handler.Handle(ctx, cmd))

	assert.Equal(t, order.Cancelled, aggregate.Status())
	assert.Equal(t, "Cancelled", aggregate.ShippingProvider().Status())

	orderClient.AssertExpectations(t)
	client.AssertExpectations(t)
	repo.AssertExpectations(t)
}

func TestCancelShipmentCommandHandler_Handle_NotPushed(t *testing.T) {
	ctx := t.Context()

	aggregate := pendingOrder(t, "Lahore")
	orderClient := &MockOrderClient{}
	orderClient.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil)

	// No gateway expectations: the precondition fails locally.
	gateway := &MockCourierGateway{}

	handler := commands.NewCancelShipmentCommandHandler(
		orderClient, gateway, session.NewPushSessions(), &MockJournalUoWFactory{})

	cmd, err := commands.NewCancelShipmentCommand(aggregate.ID(), true)
	require.NoError(t, err)

	assert.ErrorIs(t, handler.Handle(ctx, cmd), order.ErrNotPushed)
	gateway.AssertExpectations(t)
}

func TestCancelShipmentCommandHandler_Handle_TerminalStatus(t *testing.T) {
	ctx := t.Context()

	aggregate := pushedOrder(t, order.Delivered, courier.ProviderPostex, "CN-4002")
	orderClient := &MockOrderClient{}
	orderClient.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil)

	gateway := &MockCourierGateway{}

	handler := commands.NewCancelShipmentCommandHandler(
		orderClient, gateway, session.NewPushSessions(), &MockJournalUoWFactory{})

	cmd, err := commands.NewCancelShipmentCommand(aggregate.ID(), true)
	require.NoError(t, err)

	assert.Error(t, handler.Handle(ctx, cmd))
	assert.Equal(t, order.Delivered, aggregate.Status())
	gateway.AssertExpectations(t)
}

func TestCancelShipmentCommandHandler_Handle_ProviderRejects(t *testing.T) {
	ctx := t.Context()

	aggregate := pushedOrder(t, order.Shipped, courier.ProviderLCS, "LCS-4003")
	orderClient := &MockOrderClient{}
	orderClient.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil)

	client := &MockCourierClient{provider: courier.ProviderLCS}
	client.On("Cancel", mock.Anything, "LCS-4003").Return(
		courier.NewProviderError(courier.ProviderLCS, "cancel", "", "shipment already departed"))

	gateway := &MockCourierGateway{}
	gateway.On("Client", courier.ProviderLCS).Return(client, nil)

	handler := commands.NewCancelShipmentCommandHandler(
		orderClient, gateway, session.NewPushSessions(), &MockJournalUoWFactory{})

	cmd, err := commands.NewCancelShipmentCommand(aggregate.ID(), true)
	require.NoError(t, err)

	err = handler.Handle(ctx, cmd)

	var provErr *courier.ProviderError
	require.ErrorAs(t, err, &provErr)

	assert.Equal(t, order.Shipped, aggregate.Status(), "rejection leaves the order untouched")
	orderClient.AssertExpectations(t)
}
