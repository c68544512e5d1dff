package tracker_test

import (
	. "chemtrack.xyz/shipment-telemetry-service/pkg/tracker"
	"testing"

	"chemtrack.xyz/shipment-telemetry-service/pkg/common"
	_ "chemtrack.xyz/shipment-telemetry-service/pkg/testing"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRotate(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, trackerObj, _, _, _ := GetMockTrackerWithMemorySqliteDialector(t, false, false, false)
	defer ctrl.Finish()

	shipment := makeShipment(t, trackerObj, uuid.NewString())
	oldCredential := shipment.CurrentSecretID

	secret, err := trackerObj.Rotator.Rotate(shipment.ID)
	require.NoError(t, err)
	assert.NotEqual(t, oldCredential, secret.Credential)

	refetched, err := trackerObj.Store.GetShipment(shipment.ID)
	require.NoError(t, err)
	assert.Equal(t, secret.Credential, refetched.CurrentSecretID)

	_, err = trackerObj.Rotator.Rotate(uuid.NewString())
	assert.ErrorIs(t, err, ErrNotFound)
}
