package tracker

import (
	"errors"
	"fmt"
	"time"

	"chemtrack.xyz/shipment-telemetry-service/pkg/common"
	"chemtrack.xyz/shipment-telemetry-service/pkg/geo"
	"chemtrack.xyz/shipment-telemetry-service/pkg/models"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type ShipmentInput struct {
	OwnerID     string
	Route       []geo.Point
	Checkpoints []geo.Point
}

// StateDelta is an atomic partial update of a shipment's telemetry state.
// Nil fields keep their previous value.
type StateDelta struct {
	BaseWeight     *float64
	CurrentWeight  *float64
	Location       *geo.Point
	SealIntact     *bool
	DeviceAttached *bool
	BatteryLevel   *float64
}

func (d *StateDelta) Empty() bool {
	return d == nil || (d.BaseWeight == nil && d.CurrentWeight == nil && d.Location == nil &&
		d.SealIntact == nil && d.DeviceAttached == nil && d.BatteryLevel == nil)
}

func (t *Tracker) storeLogger() *zap.Logger {
	return common.GetLoggerWith(
		common.LoggerNameTrackerCore,
		zap.String(common.LoggerFieldCategory, common.LoggerCategoryStore),
	)
}

func (t *Tracker) createShipment(input *ShipmentInput) (*models.Shipment, error) {
	logger := t.storeLogger()

	for _, p := range input.Route {
		if err := geo.Validate(p); err != nil {
			return nil, fmt.Errorf("route point (%v, %v): %w", p.Lat, p.Lng, err)
		}
	}
	for _, p := range input.Checkpoints {
		if err := geo.Validate(p); err != nil {
			return nil, fmt.Errorf("checkpoint (%v, %v): %w", p.Lat, p.Lng, err)
		}
	}

	rules := t.rules()
	route := geo.SimplifyToLimit(input.Route, rules.RouteEpsilonMeters, rules.RouteMaxPoints)

	credential, err := newCredential()
	if err != nil {
		return nil, err
	}

	shipment := models.Shipment{
		ID:              uuid.NewString(),
		OwnerID:         input.OwnerID,
		Status:          models.ShipmentStatusCreated,
		Route:           route,
		SealIntact:      true,
		DeviceAttached:  true,
		CurrentSecretID: credential,
	}

	err = t.Db.Conn.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&shipment).Error; err != nil {
			return err
		}
		if err := tx.Create(&models.SecretID{
			ShipmentID: shipment.ID,
			Credential: credential,
			CreatedAt:  time.Now(),
		}).Error; err != nil {
			return err
		}
		for i, p := range input.Checkpoints {
			if err := tx.Create(&models.Checkpoint{
				ShipmentID: shipment.ID,
				Seq:        i + 1,
				Lat:        p.Lat,
				Lng:        p.Lng,
			}).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Info("Created shipment",
		zap.String("shipment_id", shipment.ID),
		zap.String("owner_id", shipment.OwnerID),
		zap.Int("route_points", len(route)))
	return &shipment, nil
}

func (t *Tracker) getShipment(shipmentID string) (*models.Shipment, error) {
	var shipment models.Shipment
	err := t.Db.Conn.First(&shipment, "id = ?", shipmentID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("shipment %s: %w", shipmentID, ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return &shipment, nil
}

func (t *Tracker) updateShipment(shipmentID string, delta *StateDelta) (*models.Shipment, error) {
	if delta.Empty() {
		// nothing to fold in, still stamp the update time
		delta = &StateDelta{}
	}

	fields := map[string]any{"updated_at": time.Now()}
	if delta.BaseWeight != nil {
		fields["base_weight"] = *delta.BaseWeight
	}
	if delta.CurrentWeight != nil {
		fields["current_weight"] = *delta.CurrentWeight
	}
	if delta.Location != nil {
		fields["last_lat"] = delta.Location.Lat
		fields["last_lng"] = delta.Location.Lng
	}
	if delta.SealIntact != nil {
		fields["seal_intact"] = *delta.SealIntact
	}
	if delta.DeviceAttached != nil {
		fields["device_attached"] = *delta.DeviceAttached
	}
	if delta.BatteryLevel != nil {
		fields["battery_level"] = *delta.BatteryLevel
	}

	result := t.Db.Conn.Model(&models.Shipment{}).Where("id = ?", shipmentID).Updates(fields)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, fmt.Errorf("shipment %s: %w", shipmentID, ErrNotFound)
	}
	return t.getShipment(shipmentID)
}

func transitionAllowed(from, to models.ShipmentStatus) bool {
	if from == models.ShipmentStatusCreated {
		return to == models.ShipmentStatusActive
	}
	if from == models.ShipmentStatusActive {
		return to == models.ShipmentStatusCompleted || to == models.ShipmentStatusCancelled
	}
	return false
}

func (t *Tracker) updateStatus(shipmentID string, status models.ShipmentStatus) (*models.Shipment, error) {
	logger := t.storeLogger()

	shipment, err := t.getShipment(shipmentID)
	if err != nil {
		return nil, err
	}
	if shipment.Status.Terminal() {
		return nil, fmt.Errorf("shipment %s is %s: %w", shipmentID, shipment.Status, ErrInvalidState)
	}
	if !transitionAllowed(shipment.Status, status) {
		return nil, fmt.Errorf("%s -> %s: %w", shipment.Status, status, ErrInvalidTransition)
	}

	result := t.Db.Conn.Model(&models.Shipment{}).Where("id = ?", shipmentID).
		Updates(map[string]any{"status": status, "updated_at": time.Now()})
	if result.Error != nil {
		return nil, result.Error
	}

	logger.Info("Shipment status changed",
		zap.String("shipment_id", shipmentID),
		zap.String("from", string(shipment.Status)),
		zap.String("to", string(status)))
	shipment.Status = status
	return shipment, nil
}

func (t *Tracker) appendTrackingPoint(shipmentID string, point *models.TrackingPoint) error {
	capacity := t.rules().TrackingHistoryCap

	return t.Db.Conn.Transaction(func(tx *gorm.DB) error {
		point.ShipmentID = shipmentID
		if err := tx.Create(point).Error; err != nil {
			return err
		}

		var count int64
		if err := tx.Model(&models.TrackingPoint{}).Where("shipment_id = ?", shipmentID).Count(&count).Error; err != nil {
			return err
		}
		if count <= int64(capacity) {
			return nil
		}

		// evict oldest entries beyond capacity, FIFO
		oldest := tx.Model(&models.TrackingPoint{}).Select("id").
			Where("shipment_id = ?", shipmentID).
			Order("id asc").
			Limit(int(count - int64(capacity)))
		return tx.Where("id IN (?)", oldest).Delete(&models.TrackingPoint{}).Error
	})
}

func (t *Tracker) rotateCredential(shipmentID string) (*models.SecretID, error) {
	credential, err := newCredential()
	if err != nil {
		return nil, err
	}

	secret := models.SecretID{
		ShipmentID: shipmentID,
		Credential: credential,
		CreatedAt:  time.Now(),
	}

	// history append and current-pointer swap commit together or not at all
	err = t.Db.Conn.Transaction(func(tx *gorm.DB) error {
		var shipment models.Shipment
		if err := tx.First(&shipment, "id = ?", shipmentID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("shipment %s: %w", shipmentID, ErrNotFound)
			}
			return err
		}
		if err := tx.Create(&secret).Error; err != nil {
			return err
		}
		return tx.Model(&models.Shipment{}).Where("id = ?", shipmentID).
			Updates(map[string]any{"current_secret_id": credential, "updated_at": time.Now()}).Error
	})
	if err != nil {
		return nil, err
	}
	return &secret, nil
}

func (t *Tracker) resolveCredential(credential string) (string, error) {
	var shipment models.Shipment
	err := t.Db.Conn.Select("id").First(&shipment, "current_secret_id = ?", credential).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", fmt.Errorf("credential: %w", ErrNotFound)
	}
	if err != nil {
		return "", err
	}
	return shipment.ID, nil
}

func (t *Tracker) createAlerts(shipmentID string, alerts []models.Alert) ([]models.Alert, error) {
	logger := t.storeLogger()

	err := t.Db.Conn.Transaction(func(tx *gorm.DB) error {
		for i := range alerts {
			alerts[i].ShipmentID = shipmentID
			if err := tx.Create(&alerts[i]).Error; err != nil {
				return err
			}
		}
		return tx.Model(&models.Shipment{}).Where("id = ?", shipmentID).
			Update("alert_count", gorm.Expr("alert_count + ?", len(alerts))).Error
	})
	if err != nil {
		return nil, err
	}

	for _, alert := range alerts {
		logger.Info("Alert saved", zap.Reflect("alert", alert))
	}
	return alerts, nil
}

func (t *Tracker) getShipmentAlerts(shipmentID string) ([]models.Alert, error) {
	var alerts []models.Alert
	err := t.Db.Conn.
		Where("shipment_id = ?", shipmentID).
		Order("timestamp desc").
		Find(&alerts).Error
	return alerts, err
}

func (t *Tracker) resolveAlert(alertID uint) error {
	var alert models.Alert
	err := t.Db.Conn.First(&alert, "id = ?", alertID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("alert %d: %w", alertID, ErrNotFound)
	}
	if err != nil {
		return err
	}
	if alert.Resolved {
		return nil
	}
	return t.Db.Conn.Model(&alert).Update("resolved", true).Error
}

func (t *Tracker) crossCheckpoints(shipmentID string, location geo.Point) ([]models.Checkpoint, error) {
	var pending []models.Checkpoint
	err := t.Db.Conn.
		Where("shipment_id = ? AND crossed = ?", shipmentID, false).
		Order("seq asc").
		Find(&pending).Error
	if err != nil {
		return nil, err
	}

	radius := t.rules().CheckpointRadiusMeters
	now := time.Now()

	var crossed []models.Checkpoint
	for _, cp := range pending {
		d, err := geo.Distance(location, geo.Point{Lat: cp.Lat, Lng: cp.Lng})
		if err != nil {
			return nil, err
		}
		if d > radius {
			continue
		}
		cp.Crossed = true
		cp.CrossedAt = &now
		if err := t.Db.Conn.Model(&models.Checkpoint{}).Where("id = ?", cp.ID).
			Updates(map[string]any{"crossed": true, "crossed_at": now}).Error; err != nil {
			return nil, err
		}
		crossed = append(crossed, cp)
	}
	return crossed, nil
}

type IStoreImpl struct {
	tracker *Tracker
}

func (is *IStoreImpl) CreateShipment(input *ShipmentInput) (*models.Shipment, error) {
	return is.tracker.createShipment(input)
}

func (is *IStoreImpl) GetShipment(shipmentID string) (*models.Shipment, error) {
	return is.tracker.getShipment(shipmentID)
}

func (is *IStoreImpl) UpdateShipment(shipmentID string, delta *StateDelta) (*models.Shipment, error) {
	return is.tracker.updateShipment(shipmentID, delta)
}

func (is *IStoreImpl) UpdateStatus(shipmentID string, status models.ShipmentStatus) (*models.Shipment, error) {
	return is.tracker.updateStatus(shipmentID, status)
}

func (is *IStoreImpl) AppendTrackingPoint(shipmentID string, point *models.TrackingPoint) error {
	return is.tracker.appendTrackingPoint(shipmentID, point)
}

func (is *IStoreImpl) RotateCredential(shipmentID string) (*models.SecretID, error) {
	return is.tracker.rotateCredential(shipmentID)
}

func (is *IStoreImpl) ResolveCredential(credential string) (string, error) {
	return is.tracker.resolveCredential(credential)
}

func (is *IStoreImpl) CreateAlerts(shipmentID string, alerts []models.Alert) ([]models.Alert, error) {
	return is.tracker.createAlerts(shipmentID, alerts)
}

func (is *IStoreImpl) GetShipmentAlerts(shipmentID string) ([]models.Alert, error) {
	return is.tracker.getShipmentAlerts(shipmentID)
}

func (is *IStoreImpl) ResolveAlert(alertID uint) error {
	return is.tracker.resolveAlert(alertID)
}

func (is *IStoreImpl) CrossCheckpoints(shipmentID string, location geo.Point) ([]models.Checkpoint, error) {
	return is.tracker.crossCheckpoints(shipmentID, location)
}

func (t *Tracker) GetIStore() IStore {
	return &IStoreImpl{tracker: t}
}
