package tracker_test

import (
	. "chemtrack.xyz/shipment-telemetry-service/pkg/tracker"
	"bytes"
	"testing"
	"time"

	"chemtrack.xyz/shipment-telemetry-service/pkg/bus"
	"chemtrack.xyz/shipment-telemetry-service/pkg/common"
	"chemtrack.xyz/shipment-telemetry-service/pkg/geo"
	"chemtrack.xyz/shipment-telemetry-service/pkg/models"
	_ "chemtrack.xyz/shipment-telemetry-service/pkg/testing"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap/zapcore"
)

func drainEvents(sub *bus.Subscriber) []bus.Event {
	var events []bus.Event
	for {
		select {
		case event := <-sub.C:
			events = append(events, event)
		default:
			return events
		}
	}
}

func eventTypes(events []bus.Event) []string {
	types := make([]string, 0, len(events))
	for _, event := range events {
		types = append(types, event.Type)
	}
	return types
}

func activeShipment(t *testing.T, trackerObj *Tracker, ownerID string) *models.Shipment {
	t.Helper()

	shipment := makeShipment(t, trackerObj, ownerID)
	shipment, err := trackerObj.Store.UpdateStatus(shipment.ID, models.ShipmentStatusActive)
	require.NoError(t, err)
	return shipment
}

func TestIngest_TamperFansOutEvents(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, trackerObj, _, _, _ := GetMockTrackerWithMemorySqliteDialector(t, false, false, false)
	defer ctrl.Finish()

	ownerID := uuid.NewString()
	shipment := activeShipment(t, trackerObj, ownerID)
	oldCredential := shipment.CurrentSecretID

	shipmentSub := trackerObj.Bus.Join(uuid.NewString(), bus.ShipmentGroup(shipment.ID))
	defer trackerObj.Bus.Leave(shipmentSub.ID, shipmentSub.Group)
	ownerSub := trackerObj.Bus.Join(uuid.NewString(), bus.OwnerGroup(ownerID))
	defer trackerObj.Bus.Leave(ownerSub.ID, ownerSub.Group)
	adminSub := trackerObj.Bus.Join(uuid.NewString(), bus.AdminGroup)
	defer trackerObj.Bus.Leave(adminSub.ID, adminSub.Group)

	result, err := trackerObj.Pipeline.Ingest(&models.TelemetrySample{
		DeviceID:   uuid.NewString(),
		ShipmentID: shipment.ID,
		Location:   &geo.Point{Lat: 0.0005, Lng: 0.5},
		SealStatus: sealPtr(models.SealStatusTampered),
		Timestamp:  time.Now(),
	})
	require.NoError(t, err)

	assert.Equal(t, 1, result.AlertsRaised)
	assert.NotEmpty(t, result.NewCredential)
	assert.NotEqual(t, oldCredential, result.NewCredential)

	shipmentEvents := drainEvents(shipmentSub)
	assert.Equal(t,
		[]string{EventNewAlert, EventSecretIDRotated, EventTrackingUpdate},
		eventTypes(shipmentEvents))

	// the shipment group learns a rotation happened, never the credential
	rotated, ok := shipmentEvents[1].Payload.(SecretRotatedPayload)
	require.True(t, ok)
	assert.Equal(t, RotationReasonSealTamper, rotated.Reason)

	tracking, ok := shipmentEvents[2].Payload.(TrackingUpdatePayload)
	require.True(t, ok)
	assert.False(t, tracking.Sensors.SealIntact)
	require.NotNil(t, tracking.Location)
	assert.Equal(t, geo.Point{Lat: 0.0005, Lng: 0.5}, *tracking.Location)

	ownerEvents := drainEvents(ownerSub)
	assert.Equal(t, []string{EventNewAlert, EventNewSecretID}, eventTypes(ownerEvents))
	newSecret, ok := ownerEvents[1].Payload.(NewSecretPayload)
	require.True(t, ok)
	assert.Equal(t, result.NewCredential, newSecret.Credential)

	adminEvents := drainEvents(adminSub)
	assert.Equal(t, []string{EventNewAlert}, eventTypes(adminEvents))
	alert, ok := adminEvents[0].Payload.(NewAlertPayload)
	require.True(t, ok)
	assert.Equal(t, models.AlertTypeSealTamper, alert.Type)
	assert.NotZero(t, alert.AlertID)
}

func TestIngest_TerminalShipmentDropped(t *testing.T) {
	var buf bytes.Buffer
	common.SetTestCaptureLogger(&buf, zapcore.InfoLevel)

	ctrl, trackerObj, _, _, _ := GetMockTrackerWithMemorySqliteDialector(t, false, false, false)
	defer ctrl.Finish()

	shipment := activeShipment(t, trackerObj, uuid.NewString())
	_, err := trackerObj.Store.UpdateStatus(shipment.ID, models.ShipmentStatusCompleted)
	require.NoError(t, err)

	sub := trackerObj.Bus.Join(uuid.NewString(), bus.ShipmentGroup(shipment.ID))
	defer trackerObj.Bus.Leave(sub.ID, sub.Group)

	result, err := trackerObj.Pipeline.Ingest(&models.TelemetrySample{
		DeviceID:   uuid.NewString(),
		ShipmentID: shipment.ID,
		Weight:     f64(500),
		SealStatus: sealPtr(models.SealStatusTampered),
		Timestamp:  time.Now(),
	})
	require.NoError(t, err)

	// logged, nothing else
	assert.Equal(t, 0, result.AlertsRaised)
	assert.Empty(t, result.NewCredential)
	assert.Empty(t, drainEvents(sub))

	refetched, err := trackerObj.Store.GetShipment(shipment.ID)
	require.NoError(t, err)
	assert.Nil(t, refetched.CurrentWeight)
	assert.True(t, refetched.SealIntact)

	logged := false
	for _, entry := range ParseLogs(&buf) {
		if m, ok := entry.(map[string]any); ok && m["msg"] == "Sample for terminal shipment dropped" {
			logged = true
		}
	}
	assert.True(t, logged)
}

func TestIngest_UnknownShipment(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, trackerObj, _, _, _ := GetMockTrackerWithMemorySqliteDialector(t, false, false, false)
	defer ctrl.Finish()

	_, err := trackerObj.Pipeline.Ingest(&models.TelemetrySample{
		DeviceID:   uuid.NewString(),
		ShipmentID: uuid.NewString(),
		Timestamp:  time.Now(),
	})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestIngest_SingleRotationPerSample(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, trackerObj, _, _, mockIRotator := GetMockTrackerWithMemorySqliteDialector(t, false, false, true)
	defer ctrl.Finish()

	shipment := activeShipment(t, trackerObj, uuid.NewString())

	// tamper and detachment in the same sample still rotate exactly once
	mockIRotator.
		EXPECT().
		Rotate(gomock.Eq(shipment.ID)).
		Times(1).
		Return(&models.SecretID{ShipmentID: shipment.ID, Credential: "fReshCred001"}, nil)

	result, err := trackerObj.Pipeline.Ingest(&models.TelemetrySample{
		DeviceID:       uuid.NewString(),
		ShipmentID:     shipment.ID,
		SealStatus:     sealPtr(models.SealStatusTampered),
		DeviceAttached: boolPtr(false),
		Timestamp:      time.Now(),
	})
	require.NoError(t, err)

	assert.Equal(t, 2, result.AlertsRaised)
	assert.Equal(t, "fReshCred001", result.NewCredential)
}

func TestIngest_DetachmentRotatesEachSample(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, trackerObj, _, _, _ := GetMockTrackerWithMemorySqliteDialector(t, false, false, false)
	defer ctrl.Finish()

	shipment := activeShipment(t, trackerObj, uuid.NewString())

	first, err := trackerObj.Pipeline.Ingest(&models.TelemetrySample{
		DeviceID:       uuid.NewString(),
		ShipmentID:     shipment.ID,
		DeviceAttached: boolPtr(false),
		Timestamp:      time.Now(),
	})
	require.NoError(t, err)
	require.NotEmpty(t, first.NewCredential)

	second, err := trackerObj.Pipeline.Ingest(&models.TelemetrySample{
		DeviceID:       uuid.NewString(),
		ShipmentID:     shipment.ID,
		DeviceAttached: boolPtr(false),
		Timestamp:      time.Now(),
	})
	require.NoError(t, err)
	require.NotEmpty(t, second.NewCredential)
	assert.NotEqual(t, first.NewCredential, second.NewCredential)

	// initial credential plus one per detached sample
	var secrets []models.SecretID
	err = trackerObj.Db.Conn.Where("shipment_id = ?", shipment.ID).Find(&secrets).Error
	require.NoError(t, err)
	assert.Len(t, secrets, 3)
}

func TestIngest_WeightBaselineThenAlert(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, trackerObj, _, _, _ := GetMockTrackerWithMemorySqliteDialector(t, false, false, false)
	defer ctrl.Finish()

	shipment := activeShipment(t, trackerObj, uuid.NewString())

	result, err := trackerObj.Pipeline.Ingest(&models.TelemetrySample{
		DeviceID:   uuid.NewString(),
		ShipmentID: shipment.ID,
		Weight:     f64(500),
		Timestamp:  time.Now(),
	})
	require.NoError(t, err)
	assert.Equal(t, 0, result.AlertsRaised)

	result, err = trackerObj.Pipeline.Ingest(&models.TelemetrySample{
		DeviceID:   uuid.NewString(),
		ShipmentID: shipment.ID,
		Weight:     f64(479),
		Timestamp:  time.Now(),
	})
	require.NoError(t, err)
	assert.Equal(t, 1, result.AlertsRaised)

	alerts, err := trackerObj.Store.GetShipmentAlerts(shipment.ID)
	require.NoError(t, err)
	require.Len(t, alerts, 1)
	assert.Equal(t, models.AlertTypeWeightChange, alerts[0].Type)
	assert.Equal(t, models.AlertSeverityHigh, alerts[0].Severity)

	// the baseline never moved
	refetched, err := trackerObj.Store.GetShipment(shipment.ID)
	require.NoError(t, err)
	require.NotNil(t, refetched.BaseWeight)
	assert.Equal(t, 500.0, *refetched.BaseWeight)
	require.NotNil(t, refetched.CurrentWeight)
	assert.Equal(t, 479.0, *refetched.CurrentWeight)
}

func TestIngest_LocationUpdatesTrackingAndCheckpoints(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, trackerObj, _, _, _ := GetMockTrackerWithMemorySqliteDialector(t, false, false, false)
	defer ctrl.Finish()

	shipment, err := trackerObj.Store.CreateShipment(&ShipmentInput{
		OwnerID:     uuid.NewString(),
		Route:       []geo.Point{{Lat: 0, Lng: 0}, {Lat: 0, Lng: 1}},
		Checkpoints: []geo.Point{{Lat: 0, Lng: 0.5}},
	})
	require.NoError(t, err)
	_, err = trackerObj.Store.UpdateStatus(shipment.ID, models.ShipmentStatusActive)
	require.NoError(t, err)

	result, err := trackerObj.Pipeline.Ingest(&models.TelemetrySample{
		DeviceID:   uuid.NewString(),
		ShipmentID: shipment.ID,
		Location:   &geo.Point{Lat: 0.0005, Lng: 0.5},
		Timestamp:  time.Now(),
	})
	require.NoError(t, err)
	assert.Equal(t, 50, result.Progress)

	var points []models.TrackingPoint
	err = trackerObj.Db.Conn.Where("shipment_id = ?", shipment.ID).Find(&points).Error
	require.NoError(t, err)
	assert.Len(t, points, 1)

	var checkpoint models.Checkpoint
	err = trackerObj.Db.Conn.Where("shipment_id = ?", shipment.ID).First(&checkpoint).Error
	require.NoError(t, err)
	assert.True(t, checkpoint.Crossed)
}
