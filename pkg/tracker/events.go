package tracker

import (
	"encoding/json"
	"time"

	"chemtrack.xyz/shipment-telemetry-service/pkg/geo"
	"chemtrack.xyz/shipment-telemetry-service/pkg/models"
)

const (
	EventTrackingUpdate  = "tracking-update"
	EventNewAlert        = "new-alert"
	EventSecretIDRotated = "secret-id-rotated"
	EventNewSecretID     = "new-secret-id"
	EventDeviceStatus    = "device-status"
)

type SensorSnapshot struct {
	Weight         *float64 `json:"weight,omitempty"`
	SealIntact     bool     `json:"seal_intact"`
	DeviceAttached bool     `json:"device_attached"`
	BatteryLevel   *float64 `json:"battery_level,omitempty"`
}

type TrackingUpdatePayload struct {
	ShipmentID string         `json:"shipment_id"`
	Location   *geo.Point     `json:"location,omitempty"`
	Sensors    SensorSnapshot `json:"sensors"`
	Progress   int            `json:"progress"`
	Timestamp  time.Time      `json:"timestamp"`
}

type NewAlertPayload struct {
	AlertID    uint                 `json:"alert_id"`
	ShipmentID string               `json:"shipment_id"`
	Type       models.AlertType     `json:"type"`
	Severity   models.AlertSeverity `json:"severity"`
	Message    string               `json:"message"`
	Location   *geo.Point           `json:"location,omitempty"`
	Details    json.RawMessage      `json:"details,omitempty"`
	Timestamp  time.Time            `json:"timestamp"`
}

func NewAlertPayloadFrom(alert *models.Alert) NewAlertPayload {
	payload := NewAlertPayload{
		AlertID:    alert.ID,
		ShipmentID: alert.ShipmentID,
		Type:       alert.Type,
		Severity:   alert.Severity,
		Message:    alert.Message,
		Location:   alert.Location(),
		Timestamp:  alert.Timestamp,
	}
	if alert.Details != "" {
		payload.Details = json.RawMessage(alert.Details)
	}
	return payload
}

// SecretRotatedPayload announces that a rotation happened. It deliberately
// never carries the new credential; only the owner group gets that, via
// NewSecretPayload.
type SecretRotatedPayload struct {
	ShipmentID string `json:"shipment_id"`
	Reason     string `json:"reason"`
}

type NewSecretPayload struct {
	ShipmentID string `json:"shipment_id"`
	Credential string `json:"credential"`
}

type DeviceStatusPayload struct {
	ShipmentID      string `json:"shipment_id"`
	DeviceConnected bool   `json:"device_connected"`
}
