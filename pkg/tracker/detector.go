package tracker

import (
	"encoding/json"
	"fmt"
	"math"
	"time"

	"chemtrack.xyz/shipment-telemetry-service/pkg/common"
	"chemtrack.xyz/shipment-telemetry-service/pkg/geo"
	"chemtrack.xyz/shipment-telemetry-service/pkg/models"
	"go.uber.org/zap"
)

const (
	RotationReasonSealTamper     = "seal_tamper"
	RotationReasonDeviceDetached = "device_detached"
)

// Evaluation is the outcome of running every detection rule against one
// sample: the state to fold into the shipment, the alerts to raise, and
// whether the access credential must rotate.
type Evaluation struct {
	Delta               StateDelta
	Alerts              []models.Alert
	RotationReason      string
	Progress            int
	DeviceStatusChanged bool
}

func (t *Tracker) evaluate(shipment *models.Shipment, sample *models.TelemetrySample) *Evaluation {
	logger := common.GetLoggerWith(
		common.LoggerNameTrackerCore,
		zap.String(common.LoggerFieldCategory, common.LoggerCategoryDetector),
	)

	rules := t.rules()
	eval := &Evaluation{}

	now := sample.Timestamp
	if now.IsZero() {
		now = time.Now()
	}

	// a malformed coordinate rejects only the geofence check; the sample's
	// location is treated as absent and every other rule still runs
	var location *geo.Point
	if sample.Location != nil {
		if err := geo.Validate(*sample.Location); err != nil {
			logger.Warn("Ignoring malformed sample location",
				zap.String("shipment_id", shipment.ID),
				zap.Float64("lat", sample.Location.Lat),
				zap.Float64("lng", sample.Location.Lng))
		} else {
			location = sample.Location
			eval.Delta.Location = location
		}
	}

	if sample.Weight != nil {
		eval.Delta.CurrentWeight = sample.Weight
		if shipment.BaseWeight == nil {
			// base weight is set exactly once, by the first weighed sample
			eval.Delta.BaseWeight = sample.Weight
		}
	}
	if sample.SealStatus != nil {
		intact := *sample.SealStatus == models.SealStatusIntact
		eval.Delta.SealIntact = &intact
	}
	if sample.DeviceAttached != nil {
		eval.Delta.DeviceAttached = sample.DeviceAttached
		eval.DeviceStatusChanged = *sample.DeviceAttached != shipment.DeviceAttached
	}
	if sample.BatteryLevel != nil {
		eval.Delta.BatteryLevel = sample.BatteryLevel
	}

	addAlert := func(alertType models.AlertType, severity models.AlertSeverity, message, details string) {
		alert := models.Alert{
			ShipmentID: shipment.ID,
			Timestamp:  now,
			Type:       alertType,
			Severity:   severity,
			Message:    message,
			Details:    details,
		}
		if location != nil {
			alert.Lat = &location.Lat
			alert.Lng = &location.Lng
		}
		logger.Info("Alert found", zap.Reflect("alert", alert))
		eval.Alerts = append(eval.Alerts, alert)
	}

	// rule 1: route deviation
	if location != nil && len(shipment.Route) >= 2 {
		deviation, err := geo.DistanceToPolyline(*location, shipment.Route)
		if err != nil {
			logger.Warn("Geofence check skipped", zap.String("shipment_id", shipment.ID), zap.Error(err))
		} else if deviation > rules.RouteDeviationMeters {
			addAlert(models.AlertTypeRouteDeviation, models.AlertSeverityMedium,
				fmt.Sprintf("Shipment deviated %.0f meters from planned route", deviation),
				detailsJSON(map[string]any{"deviation_meters": int(math.Round(deviation))}))
		}
	}

	// rule 2: weight change against the immutable base weight
	if shipment.BaseWeight != nil && sample.Weight != nil && *shipment.BaseWeight > 0 {
		base := *shipment.BaseWeight
		change := math.Abs(*sample.Weight-base) / base
		if change > rules.WeightChangeRatio {
			severity := models.AlertSeverityHigh
			if change > rules.WeightCriticalRatio {
				severity = models.AlertSeverityCritical
			}
			addAlert(models.AlertTypeWeightChange, severity,
				fmt.Sprintf("Weight %.1fkg differs from base %.1fkg by %.1f%%", *sample.Weight, base, change*100),
				detailsJSON(map[string]any{"weight": *sample.Weight, "base_weight": base}))
		}
	}

	// rule 3: seal tamper
	if sample.SealStatus != nil && *sample.SealStatus == models.SealStatusTampered {
		addAlert(models.AlertTypeSealTamper, models.AlertSeverityCritical,
			"Seal tamper reported by device", "")
		eval.RotationReason = RotationReasonSealTamper
	}

	// rule 4: device detached; seal tamper keeps rotation priority within the
	// same sample, at most one rotation per sample
	if sample.DeviceAttached != nil && !*sample.DeviceAttached {
		addAlert(models.AlertTypeDeviceDetached, models.AlertSeverityCritical,
			"Tracking device detached from shipment", "")
		if eval.RotationReason == "" {
			eval.RotationReason = RotationReasonDeviceDetached
		}
	}

	// rule 5: low battery
	if sample.BatteryLevel != nil && *sample.BatteryLevel < rules.LowBatteryLevel {
		addAlert(models.AlertTypeLowBattery, models.AlertSeverityLow,
			fmt.Sprintf("Battery %.0f%% below threshold %.0f%%", *sample.BatteryLevel, rules.LowBatteryLevel), "")
	}

	current := location
	if current == nil {
		current = shipment.LastLocation()
	}
	eval.Progress = computeProgress(shipment.Route, current)

	return eval
}

func detailsJSON(details map[string]any) string {
	data, err := json.Marshal(details)
	if err != nil {
		return ""
	}
	return string(data)
}

// computeProgress approximates trip progress as straight-line
// start-to-current distance over start-to-end distance. It deliberately
// ignores the route shape; display only, never used by the detection rules.
func computeProgress(route models.Route, current *geo.Point) int {
	if len(route) < 2 || current == nil {
		return 0
	}
	start := route[0]
	end := route[len(route)-1]

	total, err := geo.Distance(start, end)
	if err != nil || total < 1 {
		return 0
	}
	covered, err := geo.Distance(start, *current)
	if err != nil {
		return 0
	}

	progress := int(math.Round(100 * covered / total))
	if progress > 100 {
		progress = 100
	}
	return progress
}

type IDetectorImpl struct {
	tracker *Tracker
}

func (id *IDetectorImpl) Evaluate(shipment *models.Shipment, sample *models.TelemetrySample) *Evaluation {
	return id.tracker.evaluate(shipment, sample)
}

func (t *Tracker) GetIDetector() IDetector {
	return &IDetectorImpl{tracker: t}
}
