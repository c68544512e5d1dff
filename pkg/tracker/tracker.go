package tracker

import (
	"chemtrack.xyz/shipment-telemetry-service/pkg/bus"
	"chemtrack.xyz/shipment-telemetry-service/pkg/db"
	"chemtrack.xyz/shipment-telemetry-service/pkg/geo"
	"chemtrack.xyz/shipment-telemetry-service/pkg/metrics"
	"chemtrack.xyz/shipment-telemetry-service/pkg/models"
)

type IStore interface {
	CreateShipment(input *ShipmentInput) (*models.Shipment, error)
	GetShipment(shipmentID string) (*models.Shipment, error)
	UpdateShipment(shipmentID string, delta *StateDelta) (*models.Shipment, error)
	UpdateStatus(shipmentID string, status models.ShipmentStatus) (*models.Shipment, error)
	AppendTrackingPoint(shipmentID string, point *models.TrackingPoint) error
	RotateCredential(shipmentID string) (*models.SecretID, error)
	ResolveCredential(credential string) (string, error)
	CreateAlerts(shipmentID string, alerts []models.Alert) ([]models.Alert, error)
	GetShipmentAlerts(shipmentID string) ([]models.Alert, error)
	ResolveAlert(alertID uint) error
	CrossCheckpoints(shipmentID string, location geo.Point) ([]models.Checkpoint, error)
}

type IDetector interface {
	Evaluate(shipment *models.Shipment, sample *models.TelemetrySample) *Evaluation
}

type IRotator interface {
	Rotate(shipmentID string) (*models.SecretID, error)
}

type IPipeline interface {
	Ingest(sample *models.TelemetrySample) (*IngestResult, error)
}

type Tracker struct {
	Db      db.DB
	Bus     *bus.Bus
	Metrics *metrics.Metrics
	Rules   Rules
	Locks   ShipmentLocks

	Store    IStore
	Detector IDetector
	Rotator  IRotator
	Pipeline IPipeline
}

type ServiceOpts struct {
	Store    IStore
	Detector IDetector
	Rotator  IRotator
	Pipeline IPipeline
}

func (t *Tracker) WithServices(opts ServiceOpts) *Tracker {
	if opts.Store != nil {
		t.Store = opts.Store
	}
	if opts.Detector != nil {
		t.Detector = opts.Detector
	}
	if opts.Rotator != nil {
		t.Rotator = opts.Rotator
	}
	if opts.Pipeline != nil {
		t.Pipeline = opts.Pipeline
	}
	return t
}

// rules falls back to the defaults when the tracker was constructed without
// an explicit rule set.
func (t *Tracker) rules() Rules {
	if t.Rules == (Rules{}) {
		return DefaultRules()
	}
	return t.Rules
}
