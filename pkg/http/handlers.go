package http

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"chemtrack.xyz/shipment-telemetry-service/pkg/common"
	"chemtrack.xyz/shipment-telemetry-service/pkg/geo"
	"chemtrack.xyz/shipment-telemetry-service/pkg/models"
	"chemtrack.xyz/shipment-telemetry-service/pkg/tracker"

	"github.com/gin-gonic/gin"

	z "github.com/Oudwins/zog"
	"github.com/Oudwins/zog/zhttp"
)

func validateOwnerID(ownerID *string) z.ZogIssueList {
	var ownerIdValidator = z.String().Min(1).Required()
	return ownerIdValidator.Validate(ownerID)
}

type CreateShipmentRequest struct {
	OwnerID     string      `json:"owner_id"`
	Route       []geo.Point `json:"route"`
	Checkpoints []geo.Point `json:"checkpoints"`
}

func (rs *RestfulServer) CreateShipment(c *gin.Context) {
	var req CreateShipmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := validateOwnerID(&req.OwnerID); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err})
		return
	}
	if len(req.Route) < 2 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "route requires at least 2 points"})
		return
	}

	shipment, err := rs.Tracker.Store.CreateShipment(&tracker.ShipmentInput{
		OwnerID:     req.OwnerID,
		Route:       req.Route,
		Checkpoints: req.Checkpoints,
	})
	if err != nil {
		if errors.Is(err, geo.ErrInvalidCoordinate) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, shipment)
}

func (rs *RestfulServer) GetShipment(c *gin.Context) {
	shipmentID := c.Param("shipment_id")

	shipment, err := rs.Tracker.Store.GetShipment(shipmentID)
	if err != nil {
		if errors.Is(err, tracker.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, shipment)
}

type TelemetryRequest struct {
	DeviceID       string     `json:"device_id"`
	Location       *geo.Point `json:"location"`
	Weight         *float64   `json:"weight"`
	SealStatus     *string    `json:"seal_status"`
	DeviceAttached *bool      `json:"device_attached"`
	BatteryLevel   *float64   `json:"battery_level"`
	Timestamp      time.Time  `json:"timestamp"`
}

type TelemetryResponse struct {
	AlertsRaised  int    `json:"alerts_raised"`
	Progress      int    `json:"progress"`
	NewCredential string `json:"new_credential,omitempty"`
}

func (rs *RestfulServer) PostTelemetry(c *gin.Context) {
	shipmentID := c.Param("shipment_id")

	if !rs.CheckShipmentLimiter(shipmentID) {
		c.Status(http.StatusTooManyRequests)
		return
	}

	var req TelemetryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// sensor fields are all optional; validate only what is present
	if req.BatteryLevel != nil {
		var batteryValidator = z.Float64().GTE(0).LTE(100).Required()
		if err := batteryValidator.Validate(req.BatteryLevel); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err})
			return
		}
	}
	if req.Weight != nil {
		var weightValidator = z.Float64().GTE(0).Required()
		if err := weightValidator.Validate(req.Weight); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err})
			return
		}
	}

	var sealStatus *models.SealStatus
	if req.SealStatus != nil {
		s := models.SealStatus(*req.SealStatus)
		if s != models.SealStatusIntact && s != models.SealStatusTampered {
			c.JSON(http.StatusBadRequest, gin.H{"error": "seal_status must be intact or tampered"})
			return
		}
		sealStatus = &s
	}

	result, err := rs.Tracker.Pipeline.Ingest(&models.TelemetrySample{
		DeviceID:       req.DeviceID,
		ShipmentID:     shipmentID,
		Location:       req.Location,
		Weight:         req.Weight,
		SealStatus:     sealStatus,
		DeviceAttached: req.DeviceAttached,
		BatteryLevel:   req.BatteryLevel,
		Timestamp:      req.Timestamp,
	})
	if err != nil {
		if errors.Is(err, tracker.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, TelemetryResponse{
		AlertsRaised:  result.AlertsRaised,
		Progress:      result.Progress,
		NewCredential: result.NewCredential,
	})
}

type AlertResponse struct {
	AlertID    uint       `json:"alert_id"`
	ShipmentID string     `json:"shipment_id"`
	Type       string     `json:"type"`
	Severity   string     `json:"severity"`
	Message    string     `json:"message"`
	Location   *geo.Point `json:"location,omitempty"`
	Details    string     `json:"details,omitempty"`
	Resolved   bool       `json:"resolved"`
	Timestamp  time.Time  `json:"timestamp"`
}

func (rs *RestfulServer) GetAlerts(c *gin.Context) {
	shipmentID := c.Param("shipment_id")

	alerts, err := rs.Tracker.Store.GetShipmentAlerts(shipmentID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, common.Mapper(alerts, func(a models.Alert) AlertResponse {
		return AlertResponse{
			AlertID:    a.ID,
			ShipmentID: a.ShipmentID,
			Type:       string(a.Type),
			Severity:   string(a.Severity),
			Message:    a.Message,
			Location:   a.Location(),
			Details:    a.Details,
			Resolved:   a.Resolved,
			Timestamp:  a.Timestamp,
		}
	}))
}

type StatusRequest struct {
	Status string `json:"status"`
}

var statusRequestSchema = z.Struct(z.Shape{
	"Status": z.String().Min(1).Required(),
})

func (rs *RestfulServer) UpdateStatus(c *gin.Context) {
	shipmentID := c.Param("shipment_id")

	var req StatusRequest
	if err := statusRequestSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err})
		return
	}

	status := models.ShipmentStatus(req.Status)
	switch status {
	case models.ShipmentStatusActive, models.ShipmentStatusCompleted, models.ShipmentStatusCancelled:
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown status " + req.Status})
		return
	}

	shipment, err := rs.Tracker.Store.UpdateStatus(shipmentID, status)
	if err != nil {
		if errors.Is(err, tracker.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		if errors.Is(err, tracker.ErrInvalidTransition) || errors.Is(err, tracker.ErrInvalidState) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, shipment)
}

type LimiterRequest struct {
	Rate  float64 `json:"rate"`
	Burst int     `json:"burst"`
}

var limiterRequestSchema = z.Struct(z.Shape{
	"rate":  z.Float64().Required(),
	"burst": z.Int().Required(),
})

func (rs *RestfulServer) PostLimiter(c *gin.Context) {
	shipmentID := c.Param("shipment_id")

	var req LimiterRequest
	if err := limiterRequestSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err})
		return
	}

	rs.SetLimiter(shipmentID, req.Rate, req.Burst)

	c.Status(http.StatusOK)
}

func (rs *RestfulServer) ResolveAlert(c *gin.Context) {
	alertID, err := strconv.ParseUint(c.Param("alert_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "alert_id must be numeric"})
		return
	}

	if err := rs.Tracker.Store.ResolveAlert(uint(alertID)); err != nil {
		if errors.Is(err, tracker.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.Status(http.StatusOK)
}

func (rs *RestfulServer) LookupCredential(c *gin.Context) {
	credential := c.Param("credential")

	shipmentID, err := rs.Tracker.Store.ResolveCredential(credential)
	if err != nil {
		if errors.Is(err, tracker.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"shipment_id": shipmentID})
}

func (rs *RestfulServer) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
