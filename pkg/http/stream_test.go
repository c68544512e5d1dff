package http

import (
	"context"
	"net/http/httptest"
	"testing"
	"time"

	"chemtrack.xyz/shipment-telemetry-service/pkg/bus"
	"chemtrack.xyz/shipment-telemetry-service/pkg/common"
	_ "chemtrack.xyz/shipment-telemetry-service/pkg/testing"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runStream serves one SSE request until cancel, returning the recorder after
// the handler goroutine exits.
func runStream(t *testing.T, rs *RestfulServer, path string, group string, publish func()) *httptest.ResponseRecorder {
	t.Helper()

	ctx, cancel := context.WithCancel(context.Background())
	req := httptest.NewRequest("GET", path, nil).WithContext(ctx)
	w := httptest.NewRecorder()

	done := make(chan struct{})
	go func() {
		rs.Server.ServeHTTP(w, req)
		close(done)
	}()

	// wait for the subscriber to join before publishing
	deadline := time.After(2 * time.Second)
	for rs.Tracker.Bus.GroupSize(group) == 0 {
		select {
		case <-deadline:
			cancel()
			t.Fatal("stream subscriber never joined group " + group)
		case <-time.After(5 * time.Millisecond):
		}
	}

	publish()

	// give the handler a moment to relay before disconnecting
	time.Sleep(50 * time.Millisecond)
	cancel()
	<-done

	return w
}

func TestStreamShipment(t *testing.T) {
	common.SetTestLoggerNop()

	rs := setupTestServer()
	shipmentID := uuid.NewString()
	group := bus.ShipmentGroup(shipmentID)

	w := runStream(t, rs, "/stream/shipments/"+shipmentID, group, func() {
		rs.Tracker.Bus.Publish(group, "tracking-update", map[string]any{"shipment_id": shipmentID})
	})

	body := w.Body.String()
	assert.Equal(t, "text/event-stream", w.Header().Get("Content-Type"))
	assert.Contains(t, body, "event: ready")
	assert.Contains(t, body, "event: tracking-update")
	assert.Contains(t, body, shipmentID)

	// disconnect removed the subscription
	assert.Equal(t, 0, rs.Tracker.Bus.GroupSize(group))
}

func TestStreamOwnerAndAdmin(t *testing.T) {
	common.SetTestLoggerNop()

	rs := setupTestServer()
	ownerID := uuid.NewString()
	ownerGroup := bus.OwnerGroup(ownerID)

	w := runStream(t, rs, "/stream/owners/"+ownerID, ownerGroup, func() {
		rs.Tracker.Bus.Publish(ownerGroup, "new-secret-id", map[string]any{"credential": "abc123DEF456"})
		// other groups never leak into this stream
		rs.Tracker.Bus.Publish(bus.AdminGroup, "new-alert", map[string]any{"message": "not for owners"})
	})

	body := w.Body.String()
	assert.Contains(t, body, "event: new-secret-id")
	assert.Contains(t, body, "abc123DEF456")
	assert.NotContains(t, body, "not for owners")

	w = runStream(t, rs, "/stream/admin", bus.AdminGroup, func() {
		rs.Tracker.Bus.Publish(bus.AdminGroup, "new-alert", map[string]any{"message": "for admins"})
	})
	assert.Contains(t, w.Body.String(), "event: new-alert")
	assert.Contains(t, w.Body.String(), "for admins")
}

func TestStream_NoBus(t *testing.T) {
	common.SetTestLoggerNop()

	rs := setupTestServer()
	rs.Tracker.Bus = nil

	req := httptest.NewRequest("GET", "/stream/admin", nil)
	w := httptest.NewRecorder()
	rs.Server.ServeHTTP(w, req)

	require.Equal(t, 503, w.Code)
}
