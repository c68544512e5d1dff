package tracker_test

import (
	. "chemtrack.xyz/shipment-telemetry-service/pkg/tracker"
	"bufio"
	"encoding/json"
	"io"
	"testing"

	"chemtrack.xyz/shipment-telemetry-service/pkg/bus"
	"chemtrack.xyz/shipment-telemetry-service/pkg/db"
	"chemtrack.xyz/shipment-telemetry-service/pkg/geo"
	"chemtrack.xyz/shipment-telemetry-service/pkg/models"
	"chemtrack.xyz/shipment-telemetry-service/pkg/tracker/mocks"
	"go.uber.org/mock/gomock"
)

func GetMockTrackerWithMemorySqliteDialector(t *testing.T, useMockStore, useMockDetector, useMockRotator bool) (
	*gomock.Controller,
	*Tracker,
	*mocks.MockIStore,
	*mocks.MockIDetector,
	*mocks.MockIRotator,
) {
	ctrl := gomock.NewController(t)

	mockIStore := mocks.NewMockIStore(ctrl)
	mockIDetector := mocks.NewMockIDetector(ctrl)
	mockIRotator := mocks.NewMockIRotator(ctrl)
	dialector := db.UseMemorySqliteDialector()
	dbInstance := db.GetInstance(dialector) // ensure migrations
	trackerInstance := &Tracker{
		Db:  *dbInstance,
		Bus: bus.NewBus(nil),
	}

	storeService := trackerInstance.GetIStore()
	if useMockStore {
		storeService = mockIStore
	}

	detectorService := trackerInstance.GetIDetector()
	if useMockDetector {
		detectorService = mockIDetector
	}

	rotatorService := trackerInstance.GetIRotator()
	if useMockRotator {
		rotatorService = mockIRotator
	}

	trackerInstance.WithServices(ServiceOpts{
		Store:    storeService,
		Detector: detectorService,
		Rotator:  rotatorService,
		Pipeline: trackerInstance.GetIPipeline(),
	})

	return ctrl, trackerInstance, mockIStore, mockIDetector, mockIRotator
}

func f64(v float64) *float64 { return &v }

func boolPtr(v bool) *bool { return &v }

func sealPtr(s models.SealStatus) *models.SealStatus { return &s }

func ParseLogs(r io.Reader) []any {
	scanner := bufio.NewScanner(r)
	var logs []any

	for scanner.Scan() {
		line := scanner.Text()
		var j any
		if err := json.Unmarshal([]byte(line), &j); err == nil {
			logs = append(logs, j)
		}
	}
	return logs
}

func makeShipment(t *testing.T, tracker *Tracker, ownerID string) *models.Shipment {
	t.Helper()

	shipment, err := tracker.Store.CreateShipment(&ShipmentInput{
		OwnerID: ownerID,
		Route: []geo.Point{
			{Lat: 0, Lng: 0},
			{Lat: 0, Lng: 0.5},
			{Lat: 0, Lng: 1},
		},
	})
	if err != nil {
		t.Fatal("failed to create shipment:", err)
	}
	return shipment
}
