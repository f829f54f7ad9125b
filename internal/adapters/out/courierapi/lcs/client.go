// Package lcs implements the CourierClient contract against the Leopards
// Courier Service merchant API. Every request carries the api_key and
// api_password pair in the body; the API signals failures with status 0 and
// an error string rather than HTTP error codes.
package lcs

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"fulfillment/internal/core/domain/model/courier"
	"fulfillment/internal/pkg/errs"
)

const maxResponseSize = 4 * 1024 * 1024

const defaultBaseURL = "https://merchantapi.leopardscourier.com/api"

// Config holds the Leopards merchant account settings.
type Config struct {
	// BaseURL is the API endpoint; the production default applies when
	// empty.
	BaseURL string

	// APIKey is the merchant API key.
	APIKey string

	// APIPassword is the merchant API password paired with the key.
	APIPassword string

	// PickupCityID is the Leopards city id of the merchant's origin city.
	PickupCityID string

	// TimeoutSeconds is the HTTP request timeout; defaults to 30.
	TimeoutSeconds int
}

// Validate checks that the account is usable for bookings.
func (c Config) Validate() error {
	if c.APIKey == "" {
		return errs.NewValueIsRequiredError("apiKey")
	}
	if c.APIPassword == "" {
		return errs.NewValueIsRequiredError("apiPassword")
	}
	if c.PickupCityID == "" {
		return errs.NewValueIsRequiredError("pickupCityID")
	}
	return nil
}

// Client talks to the Leopards API and implements ports.CourierClient.
type Client struct {
	config  Config
	baseURL string
	httpc   *http.Client
}

// NewClient creates a Leopards client. Incomplete configuration is reported
// through GetServiceStatus rather than failing construction.
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

// Provider identifies this client as the Leopards integration.
func (c *Client) Provider() courier.Provider {
	return courier.ProviderLCS
}

type credentials struct {
	APIKey      string `json:"api_key"`
	APIPassword string `json:"api_password"`
}

type bookPacketRequest struct {
	credentials
	BookedPacketWeight      int    `json:"booked_packet_weight"`
	BookedPacketNoPiece     int    `json:"booked_packet_no_piece"`
	BookedPacketCollectAmt  string `json:"booked_packet_collect_amount"`
	BookedPacketOrderID     string `json:"booked_packet_order_id"`
	OriginCity              string `json:"origin_city"`
	DestinationCity         string `json:"destination_city"`
	ConsigneeName           string `json:"consignment_name_eng"`
	ConsigneePhone          string `json:"consignment_phone"`
	ConsigneeAddress        string `json:"consignment_address"`
	SpecialInstructions     string `json:"special_instructions,omitempty"`
	ShipmentType            string `json:"shipment_type"`
	BookedPacketDescription string `json:"booked_packet_comments"`
}

type bookPacketResponse struct {
	Status         int    `json:"status"`
	Error          string `json:"error"`
	TrackNumber    string `json:"track_number"`
	SlipLink       string `json:"slip_link"`
	BookedPacketID int    `json:"booked_packet_id"`
}

// Push books a packet via the bookPacket endpoint.
func (c *Client) Push(ctx context.Context, req courier.PushRequest) (courier.PushResult, error) {
	if err := req.Validate(); err != nil {
		return courier.PushResult{}, err
	}
	if err := c.config.Validate(); err != nil {
		return courier.PushResult{}, err
	}

	destination := req.CityCode
	if destination == "" {
		destination = req.CityName
	}

	payload := bookPacketRequest{
		credentials:             c.creds(),
		BookedPacketWeight:      defaultPacketWeightGrams,
		BookedPacketNoPiece:     req.Pieces,
		BookedPacketCollectAmt:  req.CODAmount.StringFixed(0),
		BookedPacketOrderID:     req.OrderID,
		OriginCity:              c.config.PickupCityID,
		DestinationCity:         destination,
		ConsigneeName:           req.CustomerName,
		ConsigneePhone:          req.CustomerPhone,
		ConsigneeAddress:        req.DeliveryAddress,
		SpecialInstructions:     req.Instructions,
		ShipmentType:            "overnight",
		BookedPacketDescription: req.ItemsDescription,
	}

	raw, err := c.post(ctx, "/bookPacket/format/json/", payload)
	if err != nil {
		return courier.PushResult{}, courier.NewProviderErrorWithCause(courier.ProviderLCS, "push", err)
	}

	var resp bookPacketResponse
	if err = json.Unmarshal(raw, &resp); err != nil {
		return courier.PushResult{}, courier.NewProviderErrorWithCause(courier.ProviderLCS, "push", err)
	}
	if resp.Status != 1 {
		return courier.PushResult{}, courier.NewProviderError(courier.ProviderLCS, "push", "", resp.Error)
	}

	return courier.PushResult{
		OrderRefNumber: strconv.Itoa(resp.BookedPacketID),
		TrackingNumber: resp.TrackNumber,
		OrderStatus:    "Pending",
		LabelURL:       resp.SlipLink,
		Raw:            raw,
	}, nil
}

// defaultPacketWeightGrams applies when the order carries no weight data.
const defaultPacketWeightGrams = 500

type trackPacketResponse struct {
	Status     int    `json:"status"`
	Error      string `json:"error"`
	PacketList []struct {
		TrackNumber    string `json:"track_number"`
		BookedPacketID int    `json:"booked_packet_id"`
		Status         string `json:"booked_packet_status"`
		TrackingDetail []struct {
			Status       string `json:"Status"`
			ReceivedBy   string `json:"Reciever Name"`
			Reason       string `json:"Reason"`
			ActivityDate string `json:"Activity Date"`
			City         string `json:"City"`
		} `json:"Tracking Detail"`
	} `json:"packet_list"`
}

// Track fetches the packet's status via the trackBookedPacket endpoint.
func (c *Client) Track(ctx context.Context, trackingNumber string) (courier.TrackingInfo, error) {
	if trackingNumber == "" {
		return courier.TrackingInfo{}, errs.NewValueIsRequiredError("trackingNumber")
	}

	payload := struct {
		credentials
		TrackNumbers string `json:"track_numbers"`
	}{c.creds(), trackingNumber}

	raw, err := c.post(ctx, "/trackBookedPacket/format/json/", payload)
	if err != nil {
		return courier.TrackingInfo{}, courier.NewProviderErrorWithCause(courier.ProviderLCS, "track", err)
	}

	var resp trackPacketResponse
	if err = json.Unmarshal(raw, &resp); err != nil {
		return courier.TrackingInfo{}, courier.NewProviderErrorWithCause(courier.ProviderLCS, "track", err)
	}
	if resp.Status != 1 {
		return courier.TrackingInfo{}, courier.NewProviderError(courier.ProviderLCS, "track", "", resp.Error)
	}
	if len(resp.PacketList) == 0 {
		return courier.TrackingInfo{}, courier.NewProviderError(
			courier.ProviderLCS, "track", "", fmt.Sprintf("no packet found for %s", trackingNumber))
	}

	packet := resp.PacketList[0]
	info := courier.TrackingInfo{
		Status: packet.Status,
		Raw:    raw,
	}

	for _, detail := range packet.TrackingDetail {
		recordedAt, _ := time.Parse("2006-01-02 15:04:05", detail.ActivityDate)
		info.Events = append(info.Events, courier.TrackingEvent{
			Status:     detail.Status,
			Location:   detail.City,
			Message:    detail.Reason,
			RecordedAt: recordedAt,
		})
		if !recordedAt.IsZero() && (info.LastEventAt == nil || recordedAt.After(*info.LastEventAt)) {
			t := recordedAt
			info.LastEventAt = &t
			info.CurrentCity = detail.City
		}
	}

	return info, nil
}

type cancelPacketResponse struct {
	Status int    `json:"status"`
	Error  string `json:"error"`
}

// Cancel un-books a packet via the cancelBookedPackets endpoint.
func (c *Client) Cancel(ctx context.Context, trackingNumber string) error {
	if trackingNumber == "" {
		return errs.NewValueIsRequiredError("trackingNumber")
	}

	payload := struct {
		credentials
		CNNumbers string `json:"cn_numbers"`
	}{c.creds(), trackingNumber}

	raw, err := c.post(ctx, "/cancelBookedPackets/format/json/", payload)
	if err != nil {
		return courier.NewProviderErrorWithCause(courier.ProviderLCS, "cancel", err)
	}

	var resp cancelPacketResponse
	if err = json.Unmarshal(raw, &resp); err != nil {
		return courier.NewProviderErrorWithCause(courier.ProviderLCS, "cancel", err)
	}
	if resp.Status != 1 {
		return courier.NewProviderError(courier.ProviderLCS, "cancel", "", resp.Error)
	}

	return nil
}

type cityListResponse struct {
	Status   int    `json:"status"`
	Error    string `json:"error"`
	CityList []struct {
		ID   json.Number `json:"id"`
		Name string      `json:"name"`
	} `json:"city_list"`
}

// ListCities fetches the serviceable city list via the getAllCities endpoint.
func (c *Client) ListCities(ctx context.Context) ([]courier.CityRecord, error) {
	raw, err := c.post(ctx, "/getAllCities/format/json/", c.creds())
	if err != nil {
		return nil, courier.NewProviderErrorWithCause(courier.ProviderLCS, "list cities", err)
	}

	var resp cityListResponse
	if err = json.Unmarshal(raw, &resp); err != nil {
		return nil, courier.NewProviderErrorWithCause(courier.ProviderLCS, "list cities", err)
	}
	if resp.Status != 1 {
		return nil, courier.NewProviderError(courier.ProviderLCS, "list cities", "", resp.Error)
	}

	cities := make([]courier.CityRecord, 0, len(resp.CityList))
	for _, city := range resp.CityList {
		cities = append(cities, courier.CityRecord{
			OperationalCityName: city.Name,
			CountryName:         "Pakistan",
			ProviderCityID:      city.ID.String(),
		})
	}

	return cities, nil
}

// GetServiceStatus reports whether the account is configured and the
// credentials are accepted. Leopards has no health endpoint, so the check
// rides on the city list call.
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

func (c *Client) creds() credentials {
	return credentials{
		APIKey:      c.config.APIKey,
		APIPassword: c.config.APIPassword,
	}
}

// post performs one API round trip and returns the raw response body.
func (c *Client) post(ctx context.Context, path string, payload any) (json.RawMessage, error) {
	encoded, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(encoded))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected response (http %d)", resp.StatusCode)
	}

	return raw, nil
}
