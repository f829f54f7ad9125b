package orderapi_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"fulfillment/internal/adapters/out/orderapi"
	"fulfillment/internal/core/domain/model/courier"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testClient(t *testing.T, baseURL string) *orderapi.Client {
	t.Helper()

	client, err := orderapi.NewClient(orderapi.Config{
		BaseURL:        baseURL,
		APIKey:         "backend-key",
		TimeoutSeconds: 5,
	})
	require.NoError(t, err)
	return client
}

func orderPayload(id kernel.UUID) string {
	return fmt.Sprintf(`{
		"id": %q,
		"status": "Pending",
		"shippingAddress": {
			"fullName": "Amna Riaz",
			"mobile": "03009876543",
			"city": "Multan",
			"streetAddress": "House 7, Gulgasht Colony"
		},
		"cart": [
			{"title": "Lawn Suit", "unitPrice": "3500", "quantity": 2, "variant": "M"}
		],
		"totalPrice": "7000",
		"deliveryCharges": "250"
	}`, id.String())
}

func pushedOrderPayload(id kernel.UUID) string {
	return fmt.Sprintf(`{
		"id": %q,
		"status": "Shipped",
		"shippingAddress": {
			"fullName": "Amna Riaz",
			"mobile": "03009876543",
			"city": "Multan",
			"streetAddress": "House 7, Gulgasht Colony"
		},
		"cart": [
			{"title": "Lawn Suit", "unitPrice": "3500", "quantity": 2}
		],
		"totalPrice": "7000",
		"deliveryCharges": "250",
		"shipping": {
			"provider": "postex",
			"pushed": true,
			"orderRefNumber": "ORD-42",
			"trackingNumber": "CN-555000111",
			"status": "PostEx WareHouse",
			"lastStatusUpdate": "2025-03-11T10:00:00Z"
		}
	}`, id.String())
}

func TestNewClient(t *testing.T) {
	t.Run("requires base url and api key", func(t *testing.T) {
		_, err := orderapi.NewClient(orderapi.Config{APIKey: "k"})
		assert.Error(t, err)

		_, err = orderapi.NewClient(orderapi.Config{BaseURL: "http://backend"})
		assert.Error(t, err)
	})
}

func TestClient_Get(t *testing.T) {
	t.Run("restores unpushed order", func(t *testing.T) {
		id := kernel.NewUUID()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, http.MethodGet, r.Method)
			require.Equal(t, "/api/v1/orders/"+id.String(), r.URL.Path)
			require.Equal(t, "Bearer backend-key", r.Header.Get("Authorization"))

			_, _ = w.Write([]byte(orderPayload(id)))
		}))
		defer server.Close()

		aggregate, err := testClient(t, server.URL).Get(context.Background(), id)
		require.NoError(t, err)

		assert.True(t, aggregate.ID().IsEqual(id))
		assert.Equal(t, order.Pending, aggregate.Status())
		assert.False(t, aggregate.Pushed())
		assert.True(t, aggregate.CanEdit())
		assert.Equal(t, "Multan", aggregate.ShippingAddress().City())
		require.Len(t, aggregate.Cart(), 1)
		assert.Equal(t, 2, aggregate.Cart()[0].Quantity())
		assert.Equal(t, "7000", aggregate.TotalPrice().String())
	})

	t.Run("restores pushed order with provider record", func(t *testing.T) {
		id := kernel.NewUUID()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(pushedOrderPayload(id)))
		}))
		defer server.Close()

		aggregate, err := testClient(t, server.URL).Get(context.Background(), id)
		require.NoError(t, err)

		assert.True(t, aggregate.Pushed())
		assert.False(t, aggregate.CanEdit())

		trackingNumber, err := aggregate.TrackingNumber()
		require.NoError(t, err)
		assert.Equal(t, "CN-555000111", trackingNumber)
		assert.Equal(t, courier.ProviderPostex, aggregate.ShippingProvider().Provider())
	})

	t.Run("missing order maps to not-found", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}))
		defer server.Close()

		_, err := testClient(t, server.URL).Get(context.Background(), kernel.NewUUID())
		assert.ErrorIs(t, err, ports.ErrOrderNotFound)
	})

	t.Run("backend failure surfaces status code", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer server.Close()

		_, err := testClient(t, server.URL).Get(context.Background(), kernel.NewUUID())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "500")
	})
}

func TestClient_Update(t *testing.T) {
	t.Run("writes status and shipping record", func(t *testing.T) {
		id := kernel.NewUUID()
		var gotBody map[string]any

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method == http.MethodGet {
				_, _ = w.Write([]byte(pushedOrderPayload(id)))
				return
			}

			require.Equal(t, http.MethodPut, r.Method)
			require.Equal(t, "/api/v1/orders/"+id.String()+"/shipping", r.URL.Path)
			require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
			w.WriteHeader(http.StatusNoContent)
		}))
		defer server.Close()

		client := testClient(t, server.URL)
		aggregate, err := client.Get(context.Background(), id)
		require.NoError(t, err)

		info := courier.TrackingInfo{Status: "Delivered To Consignee"}
		require.NoError(t, aggregate.ApplyTracking(info, time.Now().UTC()))

		require.NoError(t, client.Update(context.Background(), aggregate))

		shipping, ok := gotBody["shipping"].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, "Delivered To Consignee", shipping["status"])
		assert.Equal(t, "CN-555000111", shipping["trackingNumber"])
	})

	t.Run("unconstructed aggregate fails before any call", func(t *testing.T) {
		client := testClient(t, "http://127.0.0.1:1")

		var aggregate order.Order
		err := client.Update(context.Background(), &aggregate)
		assert.ErrorIs(t, err, order.ErrOrderIsNotConstructed)
	})
}

func TestClient_UpdateShippingCity(t *testing.T) {
	t.Run("patches the shipping city", func(t *testing.T) {
		id := kernel.NewUUID()
		var gotBody map[string]string

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, http.MethodPatch, r.Method)
			require.Equal(t, "/api/v1/orders/"+id.String()+"/shipping-city", r.URL.Path)
			require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
			w.WriteHeader(http.StatusNoContent)
		}))
		defer server.Close()

		err := testClient(t, server.URL).UpdateShippingCity(context.Background(), id, "Multan City")
		require.NoError(t, err)
		assert.Equal(t, "Multan City", gotBody["city"])
	})

	t.Run("conflict maps to editing locked", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusConflict)
		}))
		defer server.Close()

		err := testClient(t, server.URL).UpdateShippingCity(context.Background(), kernel.NewUUID(), "Lahore")
		assert.ErrorIs(t, err, order.ErrEditingLocked)
	})
}

func TestClient_Lists(t *testing.T) {
	t.Run("pending unpushed filters by status", func(t *testing.T) {
		id := kernel.NewUUID()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, "status=Pending&pushed=false", r.URL.RawQuery)
			_, _ = fmt.Fprintf(w, "[%s]", orderPayload(id))
		}))
		defer server.Close()

		orders, err := testClient(t, server.URL).GetPendingUnpushed(context.Background())
		require.NoError(t, err)
		require.Len(t, orders, 1)
		assert.False(t, orders[0].Pushed())
	})

	t.Run("pushed active filters by shipment state", func(t *testing.T) {
		id := kernel.NewUUID()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, "pushed=true&active=true", r.URL.RawQuery)
			_, _ = fmt.Fprintf(w, "[%s]", pushedOrderPayload(id))
		}))
		defer server.Close()

		orders, err := testClient(t, server.URL).GetPushedActive(context.Background())
		require.NoError(t, err)
		require.Len(t, orders, 1)
		assert.True(t, orders[0].Pushed())
	})

	t.Run("empty list returns no orders", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`[]`))
		}))
		defer server.Close()

		orders, err := testClient(t, server.URL).GetPendingUnpushed(context.Background())
		require.NoError(t, err)
		assert.Empty(t, orders)
	})
}
