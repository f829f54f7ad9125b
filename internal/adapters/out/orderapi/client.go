// Package orderapi implements the OrderClient port against the store
// backend's order API. The backend owns the order records; this client reads
// them into aggregates and writes shipping state back.
package orderapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"fulfillment/internal/core/domain/model/courier"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/ports"
	"fulfillment/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

const maxResponseSize = 8 * 1024 * 1024

// Config holds the store backend connection settings.
type Config struct {
	// BaseURL is the backend's API endpoint.
	BaseURL string

	// APIKey authenticates this service against the backend.
	APIKey string

	// TimeoutSeconds is the HTTP request timeout; defaults to 15.
	TimeoutSeconds int
}

// Validate checks that the backend is reachable in principle.
func (c Config) Validate() error {
	if c.BaseURL == "" {
		return errs.NewValueIsRequiredError("baseURL")
	}
	if c.APIKey == "" {
		return errs.NewValueIsRequiredError("apiKey")
	}
	return nil
}

// Client talks to the store backend and implements ports.OrderClient.
type Client struct {
	config Config
	httpc  *http.Client
}

// NewClient creates a backend client. Unlike the courier clients the backend
// is not optional, so an incomplete configuration fails construction.
func NewClient(config Config) (*Client, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	timeout := config.TimeoutSeconds
	if timeout <= 0 {
		timeout = 15
	}

	return &Client{
		config: config,
		httpc: &http.Client{
			Timeout: time.Duration(timeout) * time.Second,
		},
	}, nil
}

type addressDTO struct {
	FullName      string `json:"fullName"`
	Mobile        string `json:"mobile"`
	City          string `json:"city"`
	StreetAddress string `json:"streetAddress"`
	Instructions  string `json:"instructions,omitempty"`
}

type cartLineDTO struct {
	Title     string          `json:"title"`
	UnitPrice decimal.Decimal `json:"unitPrice"`
	Quantity  int             `json:"quantity"`
	Variant   string          `json:"variant,omitempty"`
}

type shippingDTO struct {
	Provider         string          `json:"provider"`
	Pushed           bool            `json:"pushed"`
	OrderRefNumber   string          `json:"orderRefNumber,omitempty"`
	TrackingNumber   string          `json:"trackingNumber,omitempty"`
	Status           string          `json:"status,omitempty"`
	LastStatusUpdate time.Time       `json:"lastStatusUpdate"`
	LabelURL         string          `json:"labelUrl,omitempty"`
	Extra            json.RawMessage `json:"extra,omitempty"`
}

type orderDTO struct {
	ID              string          `json:"id"`
	Status          string          `json:"status"`
	ShippingAddress addressDTO      `json:"shippingAddress"`
	Cart            []cartLineDTO   `json:"cart"`
	TotalPrice      decimal.Decimal `json:"totalPrice"`
	DeliveryCharges decimal.Decimal `json:"deliveryCharges"`
	Shipping        *shippingDTO    `json:"shipping,omitempty"`
}

// Get fetches one order by id.
func (c *Client) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	raw, status, err := c.do(ctx, http.MethodGet, "/api/v1/orders/"+url.PathEscape(id.String()), nil)
	if err != nil {
		return nil, err
	}
	if status == http.StatusNotFound {
		return nil, fmt.Errorf("%w: order %s", ports.ErrOrderNotFound, id)
	}
	if status != http.StatusOK {
		return nil, backendError("get order", status, raw)
	}

	var dto orderDTO
	if err = json.Unmarshal(raw, &dto); err != nil {
		return nil, fmt.Errorf("decode order payload: %w", err)
	}

	return toDomain(dto)
}

// Update writes the order's status and shipping state back to the backend.
// The backend treats this as a partial update; address and cart stay
// untouched.
func (c *Client) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	payload := struct {
		Status   string       `json:"status"`
		Shipping *shippingDTO `json:"shipping,omitempty"`
	}{
		Status:   aggregate.Status().String(),
		Shipping: shippingFromDomain(aggregate.ShippingProvider()),
	}

	path := "/api/v1/orders/" + url.PathEscape(aggregate.ID().String()) + "/shipping"
	raw, status, err := c.do(ctx, http.MethodPut, path, payload)
	if err != nil {
		return err
	}
	if status == http.StatusNotFound {
		return fmt.Errorf("%w: order %s", ports.ErrOrderNotFound, aggregate.ID())
	}
	if status != http.StatusOK && status != http.StatusNoContent {
		return backendError("update order", status, raw)
	}

	return nil
}

// UpdateShippingCity rewrites the order's shipping city. The backend rejects
// the change for orders that already left the editable window.
func (c *Client) UpdateShippingCity(ctx context.Context, id kernel.UUID, city string) error {
	if err := id.Validate(); err != nil {
		return err
	}
	if city == "" {
		return errs.NewValueIsRequiredError("city")
	}

	payload := struct {
		City string `json:"city"`
	}{City: city}

	path := "/api/v1/orders/" + url.PathEscape(id.String()) + "/shipping-city"
	raw, status, err := c.do(ctx, http.MethodPatch, path, payload)
	if err != nil {
		return err
	}
	if status == http.StatusNotFound {
		return fmt.Errorf("%w: order %s", ports.ErrOrderNotFound, id)
	}
	if status == http.StatusConflict {
		return order.ErrEditingLocked
	}
	if status != http.StatusOK && status != http.StatusNoContent {
		return backendError("update shipping city", status, raw)
	}

	return nil
}

// GetPendingUnpushed lists confirmed orders that have no shipment yet.
func (c *Client) GetPendingUnpushed(ctx context.Context) ([]*order.Order, error) {
	return c.list(ctx, "/api/v1/orders?status=Pending&pushed=false")
}

// GetPushedActive lists pushed orders whose shipments are still moving.
func (c *Client) GetPushedActive(ctx context.Context) ([]*order.Order, error) {
	return c.list(ctx, "/api/v1/orders?pushed=true&active=true")
}

func (c *Client) list(ctx context.Context, path string) ([]*order.Order, error) {
	raw, status, err := c.do(ctx, http.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}
	if status != http.StatusOK {
		return nil, backendError("list orders", status, raw)
	}

	var dtos []orderDTO
	if err = json.Unmarshal(raw, &dtos); err != nil {
		return nil, fmt.Errorf("decode order list payload: %w", err)
	}

	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		aggregate, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		orders = append(orders, aggregate)
	}

	return orders, nil
}

func toDomain(dto orderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromString(dto.ID)
	if err != nil {
		return nil, err
	}

	status, err := order.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	address, err := order.NewAddress(
		dto.ShippingAddress.FullName,
		dto.ShippingAddress.Mobile,
		dto.ShippingAddress.City,
		dto.ShippingAddress.StreetAddress,
		dto.ShippingAddress.Instructions,
	)
	if err != nil {
		return nil, err
	}

	cart := make([]order.CartLine, 0, len(dto.Cart))
	for _, line := range dto.Cart {
		cartLine, err := order.NewCartLine(line.Title, line.UnitPrice, line.Quantity, line.Variant)
		if err != nil {
			return nil, err
		}
		cart = append(cart, cartLine)
	}

	var record *order.ShippingProviderRecord
	if dto.Shipping != nil {
		restored, err := order.RestoreShippingProviderRecord(
			courier.Provider(dto.Shipping.Provider),
			dto.Shipping.Pushed,
			dto.Shipping.OrderRefNumber,
			dto.Shipping.TrackingNumber,
			dto.Shipping.Status,
			dto.Shipping.LastStatusUpdate,
			dto.Shipping.LabelURL,
			dto.Shipping.Extra,
		)
		if err != nil {
			return nil, err
		}
		record = &restored
	}

	return order.RestoreOrder(id, status, address, cart, dto.TotalPrice, dto.DeliveryCharges, record)
}

func shippingFromDomain(record *order.ShippingProviderRecord) *shippingDTO {
	if record == nil {
		return nil
	}

	return &shippingDTO{
		Provider:         record.Provider().String(),
		Pushed:           record.Pushed(),
		OrderRefNumber:   record.OrderRefNumber(),
		TrackingNumber:   record.TrackingNumber(),
		Status:           record.Status(),
		LastStatusUpdate: record.LastStatusUpdate(),
		LabelURL:         record.LabelURL(),
		Extra:            record.Extra(),
	}
}

func backendError(op string, status int, raw []byte) error {
	message := string(raw)
	if len(message) > 200 {
		message = message[:200]
	}
	return fmt.Errorf("order backend: %s failed (http %d): %s", op, status, message)
}

func (c *Client) do(ctx context.Context, method, path string, payload any) (json.RawMessage, int, error) {
	var body io.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			return nil, 0, err
		}
		body = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.config.BaseURL+path, body)
	if err != nil {
		return nil, 0, err
	}
	req.Header.Set("Authorization", "Bearer "+c.config.APIKey)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, 0, fmt.Errorf("order backend: %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return nil, 0, err
	}

	return raw, resp.StatusCode, nil
}
