package tracker

import (
	"crypto/rand"
	"fmt"

	"chemtrack.xyz/shipment-telemetry-service/pkg/common"
	"chemtrack.xyz/shipment-telemetry-service/pkg/models"
	"go.uber.org/zap"
)

const (
	credentialLength  = 12
	credentialCharset = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"
)

// newCredential returns a fresh opaque access token. 12 random alphanumerics
// give ~71 bits of entropy, collision-resistant at operational scale.
func newCredential() (string, error) {
	buf := make([]byte, credentialLength)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("entropy source: %w", err)
	}

	token := make([]byte, credentialLength)
	for i, b := range buf {
		token[i] = credentialCharset[int(b)%len(credentialCharset)]
	}
	return string(token), nil
}

// rotate swaps the shipment's credential. The prior credential stops
// resolving the instant the store transaction commits; there is no grace
// period.
func (t *Tracker) rotate(shipmentID string) (*models.SecretID, error) {
	logger := common.GetLoggerWith(
		common.LoggerNameTrackerCore,
		zap.String(common.LoggerFieldCategory, common.LoggerCategoryRotator),
	)

	secret, err := t.Store.RotateCredential(shipmentID)
	if err != nil {
		return nil, err
	}

	logger.Info("Rotated credential", zap.String("shipment_id", shipmentID))
	t.Metrics.IncRotations()
	return secret, nil
}

type IRotatorImpl struct {
	tracker *Tracker
}

func (ir *IRotatorImpl) Rotate(shipmentID string) (*models.SecretID, error) {
	return ir.tracker.rotate(shipmentID)
}

func (t *Tracker) GetIRotator() IRotator {
	return &IRotatorImpl{tracker: t}
}
