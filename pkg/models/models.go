package models

import (
	"time"

	"chemtrack.xyz/shipment-telemetry-service/pkg/geo"
)

type ShipmentStatus string

const (
	ShipmentStatusCreated   ShipmentStatus = "created"
	ShipmentStatusActive    ShipmentStatus = "active"
	ShipmentStatusCompleted ShipmentStatus = "completed"
	ShipmentStatusCancelled ShipmentStatus = "cancelled"
)

// Terminal reports whether no further status transition is allowed.
func (s ShipmentStatus) Terminal() bool {
	return s == ShipmentStatusCompleted || s == ShipmentStatusCancelled
}

type AlertType string

const (
	AlertTypeRouteDeviation AlertType = "route_deviation"
	AlertTypeWeightChange   AlertType = "weight_change"
	AlertTypeSealTamper     AlertType = "seal_tamper"
	AlertTypeDeviceDetached AlertType = "device_detached"
	AlertTypeLowBattery     AlertType = "low_battery"
)

type AlertSeverity string

const (
	AlertSeverityLow      AlertSeverity = "low"
	AlertSeverityMedium   AlertSeverity = "medium"
	AlertSeverityHigh     AlertSeverity = "high"
	AlertSeverityCritical AlertSeverity = "critical"
)

type SealStatus string

const (
	SealStatusIntact   SealStatus = "intact"
	SealStatusTampered SealStatus = "tampered"
)

type Route []geo.Point

type Shipment struct {
	ID              string         `gorm:"primaryKey"`
	OwnerID         string         `gorm:"index"`
	Status          ShipmentStatus `gorm:"type:varchar(20);check:status IN ('created','active','completed','cancelled')"`
	Route           Route          `gorm:"serializer:json"`
	BaseWeight      *float64
	CurrentWeight   *float64
	LastLat         *float64
	LastLng         *float64
	SealIntact      bool
	DeviceAttached  bool
	BatteryLevel    *float64
	CurrentSecretID string `gorm:"index"`
	AlertCount      int
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// LastLocation returns the last reported location, or nil before the first
// located sample.
func (s *Shipment) LastLocation() *geo.Point {
	if s.LastLat == nil || s.LastLng == nil {
		return nil
	}
	return &geo.Point{Lat: *s.LastLat, Lng: *s.LastLng}
}

// SecretID is one entry of a shipment's credential rotation history. Rows are
// append-only; the shipment's CurrentSecretID always equals the newest row.
type SecretID struct {
	ID         uint   `gorm:"primaryKey"`
	ShipmentID string `gorm:"index"`
	Credential string `gorm:"index"`
	CreatedAt  time.Time
}

type Alert struct {
	ID         uint   `gorm:"primaryKey"`
	ShipmentID string `gorm:"index"`
	Timestamp  time.Time
	Type       AlertType     `gorm:"type:varchar(20);check:type IN ('route_deviation','weight_change','seal_tamper','device_detached','low_battery')"`
	Severity   AlertSeverity `gorm:"type:varchar(10);check:severity IN ('low','medium','high','critical')"`
	Message    string
	Lat        *float64
	Lng        *float64
	Details    string
	Resolved   bool
}

func (a *Alert) Location() *geo.Point {
	if a.Lat == nil || a.Lng == nil {
		return nil
	}
	return &geo.Point{Lat: *a.Lat, Lng: *a.Lng}
}

type TrackingPoint struct {
	ID         uint   `gorm:"primaryKey"`
	ShipmentID string `gorm:"index"`
	Lat        float64
	Lng        float64
	Timestamp  time.Time
}

// Checkpoint is an ordered waypoint on the planned route, used for progress
// auditing only.
type Checkpoint struct {
	ID         uint   `gorm:"primaryKey"`
	ShipmentID string `gorm:"index"`
	Seq        int
	Lat        float64
	Lng        float64
	Crossed    bool
	CrossedAt  *time.Time
}

// TelemetrySample is one reported device snapshot. It is never persisted
// verbatim; the pipeline folds it into the shipment state. Every sensor field
// is independently optional.
type TelemetrySample struct {
	DeviceID       string
	ShipmentID     string
	Location       *geo.Point
	Weight         *float64
	SealStatus     *SealStatus
	DeviceAttached *bool
	BatteryLevel   *float64
	Timestamp      time.Time
}
