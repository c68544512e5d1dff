package tracker

import (
	"time"

	"chemtrack.xyz/shipment-telemetry-service/pkg/bus"
	"chemtrack.xyz/shipment-telemetry-service/pkg/common"
	"chemtrack.xyz/shipment-telemetry-service/pkg/models"
	"go.uber.org/zap"
)

type IngestResult struct {
	AlertsRaised  int
	Progress      int
	NewCredential string
}

// ingest runs one sample through Validate -> Update -> Detect -> Rotate? ->
// Publish. The whole sequence holds the shipment lock, so concurrent samples
// for the same shipment serialize end to end; publishing only enqueues and
// never blocks on subscriber I/O.
func (t *Tracker) ingest(sample *models.TelemetrySample) (*IngestResult, error) {
	logger := common.GetLoggerWith(
		common.LoggerNameTrackerCore,
		zap.String(common.LoggerFieldCategory, common.LoggerCategoryPipeline),
	)

	started := time.Now()
	if sample.Timestamp.IsZero() {
		sample.Timestamp = started
	}

	unlock := t.Locks.Acquire(sample.ShipmentID)
	defer unlock()

	shipment, err := t.Store.GetShipment(sample.ShipmentID)
	if err != nil {
		return nil, err
	}

	if shipment.Status.Terminal() {
		// accepted for logging only: no state change, no alerts, no events
		logger.Info("Sample for terminal shipment dropped",
			zap.String("shipment_id", shipment.ID),
			zap.String("status", string(shipment.Status)),
			zap.String("device_id", sample.DeviceID))
		return &IngestResult{Progress: computeProgress(shipment.Route, shipment.LastLocation())}, nil
	}

	eval := t.Detector.Evaluate(shipment, sample)

	updated, err := t.Store.UpdateShipment(shipment.ID, &eval.Delta)
	if err != nil {
		return nil, err
	}

	if eval.Delta.Location != nil {
		if err := t.Store.AppendTrackingPoint(shipment.ID, &models.TrackingPoint{
			Lat:       eval.Delta.Location.Lat,
			Lng:       eval.Delta.Location.Lng,
			Timestamp: sample.Timestamp,
		}); err != nil {
			return nil, err
		}
		if _, err := t.Store.CrossCheckpoints(shipment.ID, *eval.Delta.Location); err != nil {
			// checkpoint auditing is auxiliary, never fails a sample
			logger.Warn("Checkpoint crossing check failed",
				zap.String("shipment_id", shipment.ID), zap.Error(err))
		}
	}

	alerts := eval.Alerts
	if len(alerts) > 0 {
		if alerts, err = t.Store.CreateAlerts(shipment.ID, alerts); err != nil {
			return nil, err
		}
		for _, alert := range alerts {
			t.Metrics.IncAlert(string(alert.Type))
		}
	}

	var secret *models.SecretID
	if eval.RotationReason != "" {
		// at most one rotation per sample; failure here fails the sample and
		// leaves the credential state untouched
		if secret, err = t.Rotator.Rotate(shipment.ID); err != nil {
			return nil, err
		}
	}

	t.publish(updated, sample, eval, alerts, secret)

	t.Metrics.IncSamples()
	t.Metrics.ObserveIngest(time.Since(started))

	result := &IngestResult{AlertsRaised: len(alerts), Progress: eval.Progress}
	if secret != nil {
		result.NewCredential = secret.Credential
	}
	return result, nil
}

func (t *Tracker) publish(shipment *models.Shipment, sample *models.TelemetrySample, eval *Evaluation, alerts []models.Alert, secret *models.SecretID) {
	if t.Bus == nil {
		return
	}

	shipmentGroup := bus.ShipmentGroup(shipment.ID)
	ownerGroup := bus.OwnerGroup(shipment.OwnerID)

	for i := range alerts {
		payload := NewAlertPayloadFrom(&alerts[i])
		t.Bus.Publish(shipmentGroup, EventNewAlert, payload)
		t.Bus.Publish(ownerGroup, EventNewAlert, payload)
		t.Bus.Publish(bus.AdminGroup, EventNewAlert, payload)
	}

	if secret != nil {
		t.Bus.Publish(shipmentGroup, EventSecretIDRotated, SecretRotatedPayload{
			ShipmentID: shipment.ID,
			Reason:     eval.RotationReason,
		})
		// the credential value itself goes to the owner group only
		t.Bus.Publish(ownerGroup, EventNewSecretID, NewSecretPayload{
			ShipmentID: shipment.ID,
			Credential: secret.Credential,
		})
	}

	if eval.DeviceStatusChanged && sample.DeviceAttached != nil {
		t.Bus.Publish(shipmentGroup, EventDeviceStatus, DeviceStatusPayload{
			ShipmentID:      shipment.ID,
			DeviceConnected: *sample.DeviceAttached,
		})
	}

	t.Bus.Publish(shipmentGroup, EventTrackingUpdate, TrackingUpdatePayload{
		ShipmentID: shipment.ID,
		Location:   shipment.LastLocation(),
		Sensors: SensorSnapshot{
			Weight:         shipment.CurrentWeight,
			SealIntact:     shipment.SealIntact,
			DeviceAttached: shipment.DeviceAttached,
			BatteryLevel:   shipment.BatteryLevel,
		},
		Progress:  eval.Progress,
		Timestamp: sample.Timestamp,
	})
}

type IPipelineImpl struct {
	tracker *Tracker
}

func (ip *IPipelineImpl) Ingest(sample *models.TelemetrySample) (*IngestResult, error) {
	return ip.tracker.ingest(sample)
}

func (t *Tracker) GetIPipeline() IPipeline {
	return &IPipelineImpl{tracker: t}
}
