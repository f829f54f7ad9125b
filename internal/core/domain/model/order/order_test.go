package order

import (
	"encoding/json"
	"testing"
	"time"

	"fulfillment/internal/core/domain/model/courier"
	"fulfillment/internal/core/domain/model/kernel"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testAddress(t *testing.T) Address {
	t.Helper()
	addr, err := NewAddress("Ali Raza", "+923001234567", "Lahore", "14-B Model Town", "call before delivery")
	require.NoError(t, err)
	return addr
}

func testCart(t *testing.T) []CartLine {
	t.Helper()
	line, err := NewCartLine("Cotton Kurta", decimal.NewFromInt(2500), 2, "Large / Blue")
	require.NoError(t, err)
	return []CartLine{line}
}

func testOrder(t *testing.T) *Order {
	t.Helper()
	o, err := NewOrder(
		kernel.NewUUID(),
		testAddress(t),
		testCart(t),
		decimal.NewFromInt(5200),
		decimal.NewFromInt(200),
	)
	require.NoError(t, err)
	return o
}

func testPushedRecord(t *testing.T, pushedAt time.Time) ShippingProviderRecord {
	t.Helper()
	record, err := NewShippingProviderRecord(
		courier.ProviderPostex,
		"ORD-1043",
		"CN-881234567",
		"https://merchant.postex.pk/labels/CN-881234567.pdf",
		json.RawMessage(`{"dist":{"code":"200"}}`),
		pushedAt,
	)
	require.NoError(t, err)
	return record
}

func Test_NewOrder(t *testing.T) {
	t.Run("valid order starts pending and unpushed", func(t *testing.T) {
		o := testOrder(t)

		require.NoError(t, o.Validate())
		assert.Equal(t, Pending, o.Status())
		assert.False(t, o.Pushed())
		assert.Nil(t, o.ShippingProvider())
		assert.True(t, o.CanEdit())
	})

	t.Run("invalid id", func(t *testing.T) {
		_, err := NewOrder(
			kernel.UUID{},
			testAddress(t),
			testCart(t),
			decimal.NewFromInt(100),
			decimal.Zero,
		)
		assert.Error(t, err)
	})

	t.Run("negative money is rejected", func(t *testing.T) {
		_, err := NewOrder(
			kernel.NewUUID(),
			testAddress(t),
			testCart(t),
			decimal.NewFromInt(-1),
			decimal.Zero,
		)
		assert.Error(t, err)

		_, err = NewOrder(
			kernel.NewUUID(),
			testAddress(t),
			testCart(t),
			decimal.NewFromInt(100),
			decimal.NewFromInt(-50),
		)
		assert.Error(t, err)
	})

	t.Run("empty cart is allowed", func(t *testing.T) {
		o, err := NewOrder(
			kernel.NewUUID(),
			testAddress(t),
			nil,
			decimal.NewFromInt(100),
			decimal.Zero,
		)
		require.NoError(t, err)
		assert.Empty(t, o.Cart())
	})
}

func Test_RestoreOrder(t *testing.T) {
	t.Run("restores pushed order", func(t *testing.T) {
		pushedAt := time.Date(2025, 3, 10, 9, 30, 0, 0, time.UTC)
		record, err := RestoreShippingProviderRecord(
			courier.ProviderLCS,
			true,
			"ORD-2001",
			"LCS-4456",
			"Shipment Picked",
			pushedAt,
			"",
			nil,
		)
		require.NoError(t, err)

		o, err := RestoreOrder(
			kernel.NewUUID(),
			Shipped,
			testAddress(t),
			testCart(t),
			decimal.NewFromInt(5200),
			decimal.NewFromInt(200),
			&record,
		)
		require.NoError(t, err)

		assert.True(t, o.Pushed())
		assert.False(t, o.CanEdit())
		cn, err := o.TrackingNumber()
		require.NoError(t, err)
		assert.Equal(t, "LCS-4456", cn)
	})

	t.Run("rejects unknown status", func(t *testing.T) {
		_, err := RestoreOrder(
			kernel.NewUUID(),
			Unknown,
			testAddress(t),
			testCart(t),
			decimal.NewFromInt(100),
			decimal.Zero,
			nil,
		)
		assert.Error(t, err)
	})
}

func Test_Order_Validate(t *testing.T) {
	t.Run("constructed order is valid", func(t *testing.T) {
		assert.NoError(t, testOrder(t).Validate())
	})

	t.Run("zero value order is invalid", func(t *testing.T) {
		var o Order
		assert.ErrorIs(t, o.Validate(), ErrOrderIsNotConstructed)
	})

	t.Run("nil order is invalid", func(t *testing.T) {
		var o *Order
		assert.ErrorIs(t, o.Validate(), ErrOrderIsNotConstructed)
	})
}

func Test_Order_CanEdit(t *testing.T) {
	pushedAt := time.Now().UTC()

	tests := []struct {
		name   string
		status Status
		pushed bool
		want   bool
	}{
		{name: "pending and unpushed", status: Pending, pushed: false, want: true},
		{name: "pending but pushed", status: Pending, pushed: true, want: false},
		{name: "shipped and pushed", status: Shipped, pushed: true, want: false},
		{name: "delivered", status: Delivered, pushed: true, want: false},
		{name: "cancelled and unpushed", status: Cancelled, pushed: false, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var record *ShippingProviderRecord
			if tt.pushed {
				r := testPushedRecord(t, pushedAt)
				record = &r
			}

			o, err := RestoreOrder(
				kernel.NewUUID(),
				tt.status,
				testAddress(t),
				testCart(t),
				decimal.NewFromInt(5200),
				decimal.NewFromInt(200),
				record,
			)
			require.NoError(t, err)

			assert.Equal(t, tt.want, o.CanEdit())
		})
	}
}

func Test_Order_MarkPushed(t *testing.T) {
	pushedAt := time.Date(2025, 3, 10, 9, 30, 0, 0, time.UTC)

	t.Run("first push stores the record and moves the status", func(t *testing.T) {
		o := testOrder(t)
		record := testPushedRecord(t, pushedAt)

		require.NoError(t, o.MarkPushed(record, Shipped))

		assert.Equal(t, Shipped, o.Status())
		assert.True(t, o.Pushed())
		assert.False(t, o.CanEdit())
		assert.Equal(t, "CN-881234567", o.ShippingProvider().TrackingNumber())
	})

	t.Run("push may leave the status pending", func(t *testing.T) {
		o := testOrder(t)

		require.NoError(t, o.MarkPushed(testPushedRecord(t, pushedAt), Pending))

		assert.Equal(t, Pending, o.Status())
		assert.True(t, o.Pushed())
		assert.False(t, o.CanEdit(), "pending but pushed must not be editable")
	})

	t.Run("second push is rejected and the record survives", func(t *testing.T) {
		o := testOrder(t)
		require.NoError(t, o.MarkPushed(testPushedRecord(t, pushedAt), Shipped))

		other, err := NewShippingProviderRecord(
			courier.ProviderLCS, "ORD-9999", "LCS-0001", "", nil, pushedAt.Add(time.Hour))
		require.NoError(t, err)

		err = o.MarkPushed(other, Shipped)
		assert.ErrorIs(t, err, ErrAlreadyPushed)
		assert.Equal(t, "CN-881234567", o.ShippingProvider().TrackingNumber())
		assert.Equal(t, courier.ProviderPostex, o.ShippingProvider().Provider())
	})

	t.Run("unconstructed record is rejected", func(t *testing.T) {
		o := testOrder(t)
		err := o.MarkPushed(ShippingProviderRecord{}, Shipped)
		assert.ErrorIs(t, err, ErrShippingProviderRecordIsNotConstructed)
		assert.False(t, o.Pushed())
	})
}

func Test_Order_ValidatePush(t *testing.T) {
	t.Run("pending unpushed order may be pushed", func(t *testing.T) {
		assert.NoError(t, testOrder(t).ValidatePush())
	})

	t.Run("pushed order is rejected before any network call", func(t *testing.T) {
		o := testOrder(t)
		require.NoError(t, o.MarkPushed(testPushedRecord(t, time.Now()), Pending))

		assert.ErrorIs(t, o.ValidatePush(), ErrAlreadyPushed)
	})

	t.Run("non-pending order is rejected", func(t *testing.T) {
		o, err := RestoreOrder(
			kernel.NewUUID(), Cancelled, testAddress(t), testCart(t),
			decimal.NewFromInt(100), decimal.Zero, nil)
		require.NoError(t, err)

		assert.Error(t, o.ValidatePush())
	})
}

func Test_Order_ApplyTracking(t *testing.T) {
	pushedAt := time.Date(2025, 3, 10, 9, 30, 0, 0, time.UTC)

	newTrackingInfo := func() courier.TrackingInfo {
		return courier.TrackingInfo{
			Status: "Out For Delivery",
			Events: []courier.TrackingEvent{
				{Status: "Booked", Location: "Lahore", RecordedAt: pushedAt},
				{Status: "Out For Delivery", Location: "Karachi", RecordedAt: pushedAt.Add(24 * time.Hour)},
			},
			Raw: json.RawMessage(`{"statusHistory":[{"status":"Out For Delivery"}]}`),
		}
	}

	t.Run("merge updates status and events only", func(t *testing.T) {
		o := testOrder(t)
		require.NoError(t, o.MarkPushed(testPushedRecord(t, pushedAt), Shipped))

		checkedAt := pushedAt.Add(25 * time.Hour)
		require.NoError(t, o.ApplyTracking(newTrackingInfo(), checkedAt))

		record := o.ShippingProvider()
		assert.Equal(t, "Out For Delivery", record.Status())
		assert.Equal(t, courier.CanonicalInTransit, record.CanonicalStatus())
		assert.Len(t, record.Events(), 2)
		assert.Equal(t, checkedAt, record.LastStatusUpdate())

		assert.Equal(t, "CN-881234567", record.TrackingNumber(), "push references are immutable")
		assert.Equal(t, "ORD-1043", record.OrderRefNumber())
		assert.Equal(t, Shipped, o.Status(), "tracking never changes the order status")
	})

	t.Run("applying the same response twice only refreshes the timestamp", func(t *testing.T) {
		o := testOrder(t)
		require.NoError(t, o.MarkPushed(testPushedRecord(t, pushedAt), Shipped))

		first := pushedAt.Add(time.Hour)
		second := first.Add(time.Hour)
		require.NoError(t, o.ApplyTracking(newTrackingInfo(), first))

		statusBefore := o.ShippingProvider().Status()
		eventsBefore := o.ShippingProvider().Events()

		require.NoError(t, o.ApplyTracking(newTrackingInfo(), second))

		record := o.ShippingProvider()
		assert.Equal(t, statusBefore, record.Status())
		assert.Equal(t, eventsBefore, record.Events())
		assert.Equal(t, second, record.LastStatusUpdate())
	})

	t.Run("unpushed order is rejected", func(t *testing.T) {
		o := testOrder(t)
		err := o.ApplyTracking(newTrackingInfo(), time.Now())
		assert.ErrorIs(t, err, ErrNotPushed)
	})
}

func Test_Order_MarkCancelled(t *testing.T) {
	pushedAt := time.Date(2025, 3, 10, 9, 30, 0, 0, time.UTC)

	t.Run("cancel mirrors into the shipment sub-status", func(t *testing.T) {
		o := testOrder(t)
		require.NoError(t, o.MarkPushed(testPushedRecord(t, pushedAt), Shipped))

		cancelledAt := pushedAt.Add(2 * time.Hour)
		require.NoError(t, o.MarkCancelled(cancelledAt))

		assert.Equal(t, Cancelled, o.Status())
		assert.Equal(t, "Cancelled", o.ShippingProvider().Status())
		assert.Equal(t, cancelledAt, o.ShippingProvider().LastStatusUpdate())
	})

	t.Run("cancel without a pushed shipment is rejected", func(t *testing.T) {
		o := testOrder(t)
		assert.ErrorIs(t, o.MarkCancelled(time.Now()), ErrNotPushed)
		assert.Equal(t, Pending, o.Status())
	})

	t.Run("cancel on a terminal order is rejected", func(t *testing.T) {
		record := testPushedRecord(t, pushedAt)
		o, err := RestoreOrder(
			kernel.NewUUID(), Delivered, testAddress(t), testCart(t),
			decimal.NewFromInt(100), decimal.Zero, &record)
		require.NoError(t, err)

		assert.Error(t, o.MarkCancelled(time.Now()))
		assert.Equal(t, Delivered, o.Status())
	})

	t.Run("double cancel is rejected", func(t *testing.T) {
		o := testOrder(t)
		require.NoError(t, o.MarkPushed(testPushedRecord(t, pushedAt), Shipped))
		require.NoError(t, o.MarkCancelled(pushedAt.Add(time.Hour)))

		assert.Error(t, o.MarkCancelled(pushedAt.Add(2*time.Hour)))
	})
}

func Test_Order_TrackingNumber(t *testing.T) {
	t.Run("returns the CN of a pushed shipment", func(t *testing.T) {
		o := testOrder(t)
		require.NoError(t, o.MarkPushed(testPushedRecord(t, time.Now()), Shipped))

		cn, err := o.TrackingNumber()
		require.NoError(t, err)
		assert.Equal(t, "CN-881234567", cn)
	})

	t.Run("fails without a pushed shipment", func(t *testing.T) {
		_, err := testOrder(t).TrackingNumber()
		assert.ErrorIs(t, err, ErrNotPushed)
	})
}

func Test_Order_UpdateShippingCity(t *testing.T) {
	t.Run("editable order accepts the resolved city", func(t *testing.T) {
		o := testOrder(t)

		require.NoError(t, o.UpdateShippingCity("Lahore City"))
		assert.Equal(t, "Lahore City", o.ShippingAddress().City())
	})

	t.Run("pushed order is frozen", func(t *testing.T) {
		o := testOrder(t)
		require.NoError(t, o.MarkPushed(testPushedRecord(t, time.Now()), Pending))

		err := o.UpdateShippingCity("Karachi")
		assert.ErrorIs(t, err, ErrEditingLocked)
		assert.Equal(t, "Lahore", o.ShippingAddress().City())
	})

	t.Run("empty city is rejected", func(t *testing.T) {
		o := testOrder(t)
		assert.Error(t, o.UpdateShippingCity("  "))
	})
}
