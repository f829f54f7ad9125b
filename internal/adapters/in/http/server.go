// Package http adapts the generated API surface onto the application's
// command and query handlers, including the mapping of the workflow's error
// taxonomy onto HTTP status codes.
package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"fulfillment/internal/core/application/session"
	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/model/courier"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/ports"
	"fulfillment/internal/generated/servers"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// Server implements the ServerInterface for handling HTTP requests.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	pushHandler    commands.PushOrderCommandHandler
	resolveHandler commands.ResolveCityCommandHandler
	refreshHandler commands.RefreshTrackingCommandHandler
	cancelHandler  commands.CancelShipmentCommandHandler

	// Query handlers
	searchCitiesHandler  queries.SearchCitiesQueryHandler
	serviceStatusHandler queries.GetServiceStatusQueryHandler
	shipmentHandler      queries.GetShipmentQueryHandler
	journalHandler       queries.GetShipmentJournalQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	pushHandler commands.PushOrderCommandHandler,
	resolveHandler commands.ResolveCityCommandHandler,
	refreshHandler commands.RefreshTrackingCommandHandler,
	cancelHandler commands.CancelShipmentCommandHandler,
	searchCitiesHandler queries.SearchCitiesQueryHandler,
	serviceStatusHandler queries.GetServiceStatusQueryHandler,
	shipmentHandler queries.GetShipmentQueryHandler,
	journalHandler queries.GetShipmentJournalQueryHandler,
) *Server {
	return &Server{
		pushHandler:          pushHandler,
		resolveHandler:       resolveHandler,
		refreshHandler:       refreshHandler,
		cancelHandler:        cancelHandler,
		searchCitiesHandler:  searchCitiesHandler,
		serviceStatusHandler: serviceStatusHandler,
		shipmentHandler:      shipmentHandler,
		journalHandler:       journalHandler,
	}
}

// PushShipment handles POST /api/v1/shipments/{orderId}/push.
func (s *Server) PushShipment(ctx echo.Context, orderId openapi_types.UUID) error {
	var body servers.PushShipmentRequest
	if err := ctx.Bind(&body); err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid request body")
	}

	provider, err := courier.ProviderFromString(string(body.Provider))
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Unknown courier provider: "+string(body.Provider))
	}

	orderID, err := kernel.UUIDFromBytes(orderId[:])
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid order id")
	}

	cmd, err := commands.NewPushOrderCommand(orderID, provider)
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid push request: "+err.Error())
	}

	result, err := s.pushHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.pushError(ctx, result, err)
	}

	return ctx.JSON(http.StatusOK, pushResponse(result))
}

// ResolveCity handles POST /api/v1/shipments/{orderId}/resolve-city.
func (s *Server) ResolveCity(ctx echo.Context, orderId openapi_types.UUID) error {
	var body servers.ResolveCityRequest
	if err := ctx.Bind(&body); err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid request body")
	}

	orderID, err := kernel.UUIDFromBytes(orderId[:])
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid order id")
	}

	cmd, err := commands.NewResolveCityCommand(orderID, body.City)
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid city selection: "+err.Error())
	}

	result, err := s.resolveHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		if errors.Is(err, session.ErrNoPendingResolution) {
			return errorResponse(ctx, http.StatusConflict, "No pending city resolution for this order")
		}
		return s.pushError(ctx, result, err)
	}

	return ctx.JSON(http.StatusOK, pushResponse(result))
}

// RefreshTracking handles POST /api/v1/shipments/{orderId}/refresh.
func (s *Server) RefreshTracking(ctx echo.Context, orderId openapi_types.UUID) error {
	orderID, err := kernel.UUIDFromBytes(orderId[:])
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid order id")
	}

	cmd, err := commands.NewRefreshTrackingCommand(orderID)
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid refresh request: "+err.Error())
	}

	result, err := s.refreshHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		switch {
		case errors.Is(err, ports.ErrOrderNotFound):
			return errorResponse(ctx, http.StatusNotFound, "Order not found")
		case errors.Is(err, order.ErrNotPushed):
			return errorResponse(ctx, http.StatusConflict, "Order has no pushed shipment")
		case isProviderError(err):
			return errorResponse(ctx, http.StatusBadGateway, err.Error())
		default:
			return errorResponse(ctx, http.StatusInternalServerError, "Failed to refresh tracking")
		}
	}

	response := servers.RefreshTrackingResponse{
		RawStatus:       result.RawStatus,
		CanonicalStatus: result.CanonicalStatus.String(),
		CheckedAt:       result.CheckedAt,
	}
	if len(result.Events) > 0 {
		events := trackingEvents(result.Events)
		response.Events = &events
	}

	return ctx.JSON(http.StatusOK, response)
}

// CancelShipment handles POST /api/v1/shipments/{orderId}/cancel.
func (s *Server) CancelShipment(ctx echo.Context, orderId openapi_types.UUID) error {
	var body servers.CancelShipmentRequest
	if err := ctx.Bind(&body); err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid request body")
	}

	orderID, err := kernel.UUIDFromBytes(orderId[:])
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid order id")
	}

	cmd, err := commands.NewCancelShipmentCommand(orderID, body.Confirmed)
	if err != nil {
		if errors.Is(err, commands.ErrCancelNotConfirmed) {
			return errorResponse(ctx, http.StatusBadRequest, "Cancellation requires explicit confirmation")
		}
		return errorResponse(ctx, http.StatusBadRequest, "Invalid cancel request: "+err.Error())
	}

	if err = s.cancelHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		switch {
		case errors.Is(err, ports.ErrOrderNotFound):
			return errorResponse(ctx, http.StatusNotFound, "Order not found")
		case errors.Is(err, order.ErrNotPushed):
			return errorResponse(ctx, http.StatusConflict, "Order has no pushed shipment to cancel")
		case isProviderError(err):
			return errorResponse(ctx, http.StatusBadGateway, err.Error())
		default:
			return errorResponse(ctx, http.StatusConflict, "Shipment cannot be cancelled: "+err.Error())
		}
	}

	return s.GetShipment(ctx, orderId)
}

// GetShipment handles GET /api/v1/shipments/{orderId}.
func (s *Server) GetShipment(ctx echo.Context, orderId openapi_types.UUID) error {
	orderID, err := kernel.UUIDFromBytes(orderId[:])
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid order id")
	}

	query, err := queries.NewGetShipmentQuery(orderID)
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid shipment query: "+err.Error())
	}

	view, err := s.shipmentHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		if errors.Is(err, ports.ErrOrderNotFound) {
			return errorResponse(ctx, http.StatusNotFound, "Order not found")
		}
		return errorResponse(ctx, http.StatusInternalServerError, "Failed to load shipment")
	}

	return ctx.JSON(http.StatusOK, shipmentResponse(view))
}

// GetShipmentJournal handles GET /api/v1/shipments/{orderId}/journal.
func (s *Server) GetShipmentJournal(ctx echo.Context, orderId openapi_types.UUID) error {
	orderID, err := kernel.UUIDFromBytes(orderId[:])
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid order id")
	}

	query, err := queries.NewGetShipmentJournalQuery(orderID)
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid journal query: "+err.Error())
	}

	entries, err := s.journalHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, http.StatusInternalServerError, "Failed to load shipment journal")
	}

	response := make([]servers.JournalEntry, len(entries))
	for i, entry := range entries {
		response[i] = journalEntryResponse(entry)
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetProviderCities handles GET /api/v1/providers/{provider}/cities.
func (s *Server) GetProviderCities(ctx echo.Context, provider string, params servers.GetProviderCitiesParams) error {
	providerCode, err := courier.ProviderFromString(provider)
	if err != nil {
		return errorResponse(ctx, http.StatusNotFound, "Unknown courier provider: "+provider)
	}

	search := ""
	if params.Search != nil {
		search = *params.Search
	}

	query, err := queries.NewSearchCitiesQuery(providerCode, search)
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid city search: "+err.Error())
	}

	cities, err := s.searchCitiesHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		if errors.Is(err, ports.ErrProviderNotConfigured) {
			return errorResponse(ctx, http.StatusNotFound, "Provider is not configured")
		}
		return errorResponse(ctx, http.StatusBadGateway, "Failed to fetch provider cities")
	}

	response := make([]servers.City, len(cities))
	for i, city := range cities {
		response[i] = cityResponse(city)
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetProvidersStatus handles GET /api/v1/providers/status.
func (s *Server) GetProvidersStatus(ctx echo.Context) error {
	response := make([]servers.ProviderStatus, 0, len(courier.AllProviders()))

	for _, provider := range courier.AllProviders() {
		query, err := queries.NewGetServiceStatusQuery(provider)
		if err != nil {
			return errorResponse(ctx, http.StatusInternalServerError, "Failed to build status query")
		}

		status, err := s.serviceStatusHandler.Handle(ctx.Request().Context(), query)
		if err != nil {
			// An unreachable provider still shows up in the list, just with
			// its flags down.
			response = append(response, servers.ProviderStatus{
				Provider: provider.String(),
			})
			continue
		}

		entry := servers.ProviderStatus{
			Provider:   status.Provider.String(),
			Enabled:    status.Enabled,
			Configured: status.Configured,
			Available:  status.Available,
		}
		if !status.CheckedAt.IsZero() {
			checkedAt := status.CheckedAt
			entry.CheckedAt = &checkedAt
		}
		response = append(response, entry)
	}

	return ctx.JSON(http.StatusOK, response)
}

// pushError maps push and resolve failures onto the API's error contract.
func (s *Server) pushError(ctx echo.Context, result commands.PushOrderResult, err error) error {
	switch {
	case errors.Is(err, commands.ErrCityResolutionRequired):
		candidates := make([]servers.City, len(result.CityCandidates))
		for i, city := range result.CityCandidates {
			candidates[i] = cityResponse(city)
		}
		return ctx.JSON(http.StatusUnprocessableEntity, servers.CityResolutionRequired{
			Message:    "Destination city is not in the provider's serviceable list",
			Candidates: candidates,
		})
	case errors.Is(err, order.ErrAlreadyPushed):
		return errorResponse(ctx, http.StatusConflict, "Order already has a pushed shipment")
	case errors.Is(err, session.ErrPushInFlight):
		return errorResponse(ctx, http.StatusConflict, "A push for this order is already in progress")
	case errors.Is(err, commands.ErrProviderUnavailable):
		return errorResponse(ctx, http.StatusConflict, "Courier provider is currently unavailable")
	case errors.Is(err, ports.ErrProviderNotConfigured):
		return errorResponse(ctx, http.StatusConflict, "Courier provider is not configured")
	case errors.Is(err, ports.ErrOrderNotFound):
		return errorResponse(ctx, http.StatusNotFound, "Order not found")
	case isProviderError(err):
		return errorResponse(ctx, http.StatusBadGateway, err.Error())
	default:
		return errorResponse(ctx, http.StatusBadRequest, err.Error())
	}
}

func isProviderError(err error) bool {
	var provErr *courier.ProviderError
	return errors.As(err, &provErr)
}

func errorResponse(ctx echo.Context, code int, message string) error {
	return ctx.JSON(code, servers.Error{
		Code:    code,
		Message: message,
	})
}

func pushResponse(result commands.PushOrderResult) servers.PushShipmentResponse {
	response := servers.PushShipmentResponse{
		TrackingNumber: result.TrackingNumber,
		OrderStatus:    result.OrderStatus.String(),
	}
	if result.OrderRefNumber != "" {
		response.OrderRefNumber = &result.OrderRefNumber
	}
	if result.LabelURL != "" {
		response.LabelUrl = &result.LabelURL
	}
	return response
}

func shipmentResponse(view queries.GetShipmentQueryResponse) servers.Shipment {
	response := servers.Shipment{
		OrderId:     view.OrderID.Bytes(),
		OrderStatus: view.OrderStatus,
		CanEdit:     view.CanEdit,
		Pushed:      view.Pushed,
	}

	if !view.Pushed {
		return response
	}

	provider := view.Provider.String()
	canonical := view.CanonicalStatus.String()
	response.Provider = &provider
	response.CanonicalStatus = &canonical

	if view.OrderRefNumber != "" {
		orderRef := view.OrderRefNumber
		response.OrderRefNumber = &orderRef
	}
	if view.TrackingNumber != "" {
		trackingNumber := view.TrackingNumber
		response.TrackingNumber = &trackingNumber
	}
	if view.RawStatus != "" {
		rawStatus := view.RawStatus
		response.RawStatus = &rawStatus
	}
	if !view.LastStatusUpdate.IsZero() {
		lastUpdate := view.LastStatusUpdate
		response.LastStatusUpdate = &lastUpdate
	}
	if view.LabelURL != "" {
		labelURL := view.LabelURL
		response.LabelUrl = &labelURL
	}
	if len(view.Events) > 0 {
		events := trackingEvents(view.Events)
		response.Events = &events
	}

	return response
}

func cityResponse(city courier.CityRecord) servers.City {
	response := servers.City{Name: city.OperationalCityName}
	if city.CountryName != "" {
		country := city.CountryName
		response.Country = &country
	}
	if city.ProviderCityID != "" {
		cityID := city.ProviderCityID
		response.ProviderCityId = &cityID
	}
	if city.ProviderCityCode != "" {
		cityCode := city.ProviderCityCode
		response.ProviderCityCode = &cityCode
	}
	return response
}

func trackingEvents(events []courier.TrackingEvent) []servers.TrackingEvent {
	response := make([]servers.TrackingEvent, len(events))
	for i, event := range events {
		response[i] = servers.TrackingEvent{Status: event.Status}
		if event.Location != "" {
			location := event.Location
			response[i].Location = &location
		}
		if event.Message != "" {
			message := event.Message
			response[i].Message = &message
		}
		if !event.RecordedAt.IsZero() {
			recordedAt := event.RecordedAt
			response[i].RecordedAt = &recordedAt
		}
	}
	return response
}

func journalEntryResponse(entry queries.GetShipmentJournalQueryResponse) servers.JournalEntry {
	response := servers.JournalEntry{
		Id:        entry.ID.Bytes(),
		OrderId:   entry.OrderID.Bytes(),
		Provider:  entry.Provider,
		Action:    entry.Action,
		CreatedAt: entry.CreatedAt,
	}
	if entry.TrackingNumber != "" {
		trackingNumber := entry.TrackingNumber
		response.TrackingNumber = &trackingNumber
	}
	if len(entry.Details) > 0 {
		var details map[string]interface{}
		if err := json.Unmarshal(entry.Details, &details); err == nil {
			response.Details = &details
		}
	}
	return response
}
