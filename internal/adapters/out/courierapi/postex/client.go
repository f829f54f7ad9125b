// Package postex implements the CourierClient contract against the PostEx
// merchant integration API. Responses arrive wrapped in a dist envelope with
// string status codes; anything other than "200" is surfaced as a
// ProviderError.
package postex

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
	"fulfillment/internal/pkg/errs"
)

// maxResponseSize caps API response reads (4MB). City lists are the largest
// payload and stay well under this.
const maxResponseSize = 4 * 1024 * 1024

const defaultBaseURL = "https://api.postex.pk/services/integration/api/order"

// Config holds the PostEx merchant account settings.
type Config struct {
	// BaseURL is the API endpoint; the production default applies when
	// empty.
	BaseURL string

	// APIToken is the merchant API token sent with every request.
	APIToken string

	// PickupAddressCode identifies the merchant's registered pickup address.
	PickupAddressCode string

	// TimeoutSeconds is the HTTP request timeout; defaults to 30.
	TimeoutSeconds int
}

// Validate checks that the account is usable for bookings.
func (c Config) Validate() error {
	if c.APIToken == "" {
		return errs.NewValueIsRequiredError("apiToken")
	}
	if c.PickupAddressCode == "" {
		return errs.NewValueIsRequiredError("pickupAddressCode")
	}
	return nil
}

// Client talks to the PostEx API and implements ports.CourierClient.
type Client struct {
	config  Config
	baseURL string
	httpc   *http.Client
}

// NewClient creates a PostEx client. The configuration may be incomplete;
// GetServiceStatus reports that instead of failing construction, so a
// half-configured account still shows up in status screens.
func NewClient(config Config) *Client {
	baseURL := config.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	timeout := config.TimeoutSeconds
	if timeout <= 0 {
		timeout = 30
	}

	return &Client{
		config:  config,
		baseURL: baseURL,
		httpc: &http.Client{
			Timeout: time.Duration(timeout) * time.Second,
		},
	}
}

// Provider identifies this client as the PostEx integration.
func (c *Client) Provider() courier.Provider {
	return courier.ProviderPostex
}

type envelope struct {
	StatusCode    string          `json:"statusCode"`
	StatusMessage string          `json:"statusMessage"`
	Dist          json.RawMessage `json:"dist"`
}

type createOrderRequest struct {
	CityName          string `json:"cityName"`
	CustomerName      string `json:"customerName"`
	CustomerPhone     string `json:"customerPhone"`
	DeliveryAddress   string `json:"deliveryAddress"`
	InvoicePayment    string `json:"invoicePayment"`
	InvoiceDivision   int    `json:"invoiceDivision"`
	Items             int    `json:"items"`
	OrderRefNumber    string `json:"orderRefNumber"`
	OrderType         string `json:"orderType"`
	OrderDetail       string `json:"orderDetail"`
	TransactionNotes  string `json:"transactionNotes,omitempty"`
	PickupAddressCode string `json:"pickupAddressCode"`
}

type createOrderResponse struct {
	TrackingNumber string `json:"trackingNumber"`
	OrderStatus    string `json:"orderStatus"`
	OrderDate      string `json:"orderDate"`
}

// Push books a shipment via the v3 create-order endpoint.
func (c *Client) Push(ctx context.Context, req courier.PushRequest) (courier.PushResult, error) {
	if err := req.Validate(); err != nil {
		return courier.PushResult{}, err
	}
	if err := c.config.Validate(); err != nil {
		return courier.PushResult{}, err
	}

	payload := createOrderRequest{
		CityName:          req.CityName,
		CustomerName:      req.CustomerName,
		CustomerPhone:     req.CustomerPhone,
		DeliveryAddress:   req.DeliveryAddress,
		InvoicePayment:    req.CODAmount.StringFixed(0),
		InvoiceDivision:   0,
		Items:             req.Pieces,
		OrderRefNumber:    req.OrderID,
		OrderType:         "Normal",
		OrderDetail:       req.ItemsDescription,
		TransactionNotes:  req.Instructions,
		PickupAddressCode: c.config.PickupAddressCode,
	}

	raw, env, err := c.do(ctx, http.MethodPost, "/v3/create-order", payload)
	if err != nil {
		return courier.PushResult{}, courier.NewProviderErrorWithCause(courier.ProviderPostex, "push", err)
	}
	if env.StatusCode != "200" {
		return courier.PushResult{}, courier.NewProviderError(
			courier.ProviderPostex, "push", env.StatusCode, env.StatusMessage)
	}

	var dist createOrderResponse
	if err = json.Unmarshal(env.Dist, &dist); err != nil {
		return courier.PushResult{}, courier.NewProviderErrorWithCause(courier.ProviderPostex, "push", err)
	}

	return courier.PushResult{
		OrderRefNumber: req.OrderID,
		TrackingNumber: dist.TrackingNumber,
		OrderStatus:    dist.OrderStatus,
		Raw:            raw,
	}, nil
}

type trackResponse struct {
	TrackingNumber           string `json:"trackingNumber"`
	TransactionStatus        string `json:"transactionStatus"`
	TransactionStatusHistory []struct {
		TransactionStatusMessage     string `json:"transactionStatusMessage"`
		TransactionStatusMessageCode string `json:"transactionStatusMessageCode"`
		ModifiedDatetime             string `json:"modifiedDatetime"`
		City                         string `json:"cityName"`
	} `json:"transactionStatusHistory"`
}

// Track fetches the consignment's status history via the v1 track-order
// endpoint.
func (c *Client) Track(ctx context.Context, trackingNumber string) (courier.TrackingInfo, error) {
	if trackingNumber == "" {
		return courier.TrackingInfo{}, errs.NewValueIsRequiredError("trackingNumber")
	}

	raw, env, err := c.do(ctx, http.MethodGet, "/v1/track-order/"+url.PathEscape(trackingNumber), nil)
	if err != nil {
		return courier.TrackingInfo{}, courier.NewProviderErrorWithCause(courier.ProviderPostex, "track", err)
	}
	if env.StatusCode != "200" {
		return courier.TrackingInfo{}, courier.NewProviderError(
			courier.ProviderPostex, "track", env.StatusCode, env.StatusMessage)
	}

	var dist trackResponse
	if err = json.Unmarshal(env.Dist, &dist); err != nil {
		return courier.TrackingInfo{}, courier.NewProviderErrorWithCause(courier.ProviderPostex, "track", err)
	}

	info := courier.TrackingInfo{
		Status: dist.TransactionStatus,
		Raw:    raw,
	}

	for _, event := range dist.TransactionStatusHistory {
		recordedAt, _ := time.Parse("2006-01-02T15:04:05", event.ModifiedDatetime)
		info.Events = append(info.Events, courier.TrackingEvent{
			Status:     event.TransactionStatusMessage,
			Location:   event.City,
			RecordedAt: recordedAt,
		})
		if !recordedAt.IsZero() && (info.LastEventAt == nil || recordedAt.After(*info.LastEventAt)) {
			t := recordedAt
			info.LastEventAt = &t
			info.CurrentCity = event.City
		}
	}

	return info, nil
}

// Cancel un-books a consignment via the v1 cancel-order endpoint.
func (c *Client) Cancel(ctx context.Context, trackingNumber string) error {
	if trackingNumber == "" {
		return errs.NewValueIsRequiredError("trackingNumber")
	}

	payload := map[string]string{"trackingNumber": trackingNumber}
	_, env, err := c.do(ctx, http.MethodPut, "/v1/cancel-order", payload)
	if err != nil {
		return courier.NewProviderErrorWithCause(courier.ProviderPostex, "cancel", err)
	}
	if env.StatusCode != "200" {
		return courier.NewProviderError(courier.ProviderPostex, "cancel", env.StatusCode, env.StatusMessage)
	}

	return nil
}

type operationalCity struct {
	OperationalCityName string `json:"operationalCityName"`
	CountryName         string `json:"countryName"`
	IsPickupCity        bool   `json:"isPickupCity"`
}

// ListCities fetches the operational city list via the v2
// get-operational-city endpoint.
func (c *Client) ListCities(ctx context.Context) ([]courier.CityRecord, error) {
	_, env, err := c.do(ctx, http.MethodGet, "/v2/get-operational-city", nil)
	if err != nil {
		return nil, courier.NewProviderErrorWithCause(courier.ProviderPostex, "list cities", err)
	}
	if env.StatusCode != "200" {
		return nil, courier.NewProviderError(
			courier.ProviderPostex, "list cities", env.StatusCode, env.StatusMessage)
	}

	var dist []operationalCity
	if err = json.Unmarshal(env.Dist, &dist); err != nil {
		return nil, courier.NewProviderErrorWithCause(courier.ProviderPostex, "list cities", err)
	}

	cities := make([]courier.CityRecord, 0, len(dist))
	for _, city := range dist {
		cities = append(cities, courier.CityRecord{
			OperationalCityName: city.OperationalCityName,
			CountryName:         city.CountryName,
		})
	}

	return cities, nil
}

// GetServiceStatus reports whether the account is configured and the API
// accepts the token. The check rides on the city list endpoint because
// PostEx has no dedicated health endpoint.
func (c *Client) GetServiceStatus(ctx context.Context) (courier.ServiceStatus, error) {
	status := courier.ServiceStatus{
		Configured: c.config.Validate() == nil,
	}
	if !status.Configured {
		return status, nil
	}

	if _, err := c.ListCities(ctx); err != nil {
		return status, err
	}

	status.Enabled = true
	return status, nil
}

// do performs one API round trip and decodes the response envelope. The
// returned raw bytes are the full response body, preserved for audit.
func (c *Client) do(ctx context.Context, method, path string, payload any) (json.RawMessage, envelope, error) {
	var body io.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			return nil, envelope{}, err
		}
		body = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, envelope{}, err
	}
	req.Header.Set("token", c.config.APIToken)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, envelope{}, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return nil, envelope{}, err
	}

	var env envelope
	if err = json.Unmarshal(raw, &env); err != nil {
		return nil, envelope{}, fmt.Errorf("unexpected response (http %d): %w", resp.StatusCode, err)
	}

	return raw, env, nil
}
