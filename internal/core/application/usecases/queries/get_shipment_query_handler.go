package queries

import (
	"context"

	"fulfillment/internal/core/ports"
)

// GetShipmentQueryHandler assembles the shipment view of an order from the
// backend order record. The view is read-only; no provider calls happen.
type GetShipmentQueryHandler struct {
	orderClient ports.OrderClient
}

// NewGetShipmentQueryHandler creates a handler for shipment views.
func NewGetShipmentQueryHandler(orderClient ports.OrderClient) GetShipmentQueryHandler {
	return GetShipmentQueryHandler{orderClient: orderClient}
}

// Handle returns the order's shipment view. For an unpushed order the
// provider fields stay zero and Pushed is false.
func (h GetShipmentQueryHandler) Handle(ctx context.Context, query GetShipmentQuery) (GetShipmentQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetShipmentQueryResponse{}, err
	}

	aggregate, err := h.orderClient.Get(ctx, query.OrderID())
	if err != nil {
		return GetShipmentQueryResponse{}, err
	}

	response := GetShipmentQueryResponse{
		OrderID:     aggregate.ID(),
		OrderStatus: aggregate.Status().String(),
		CanEdit:     aggregate.CanEdit(),
		Pushed:      aggregate.Pushed(),
	}

	record := aggregate.ShippingProvider()
	if record == nil {
		return response, nil
	}

	response.Provider = record.Provider()
	response.OrderRefNumber = record.OrderRefNumber()
	response.TrackingNumber = record.TrackingNumber()
	response.RawStatus = record.Status()
	response.CanonicalStatus = record.CanonicalStatus()
	response.LastStatusUpdate = record.LastStatusUpdate()
	response.LabelURL = record.LabelURL()
	response.Events = record.Events()

	return response, nil
}
