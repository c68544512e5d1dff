package http

import (
	"chemtrack.xyz/shipment-telemetry-service/pkg/tracker"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/time/rate"
)

type RestfulServer struct {
	Server           *gin.Engine
	Tracker          *tracker.Tracker
	RateLimiterStore *tracker.RateLimiterStore
}

func (rs *RestfulServer) GetLimiter(shipmentID string) *rate.Limiter {
	if rs.RateLimiterStore == nil {
		return nil
	} else {
		return rs.RateLimiterStore.GetLimiter(shipmentID)
	}
}

func (rs *RestfulServer) CheckShipmentLimiter(shipmentID string) bool {
	limiter := rs.GetLimiter(shipmentID)
	if limiter == nil {
		return true
	}
	return limiter.Allow()
}

func (rs *RestfulServer) SetLimiter(shipmentID string, shipmentRate float64, shipmentBurst int) {
	if rs.RateLimiterStore == nil {
		return
	}
	rs.RateLimiterStore.SetLimiter(shipmentID, rate.Limit(shipmentRate), shipmentBurst)
}

func (rs *RestfulServer) Setup() {
	rs.Server.GET("/healthz", rs.HealthCheck)
	rs.Server.GET("/metrics", gin.WrapH(promhttp.Handler()))

	shipments := rs.Server.Group("/shipments")
	{
		shipments.POST("", rs.CreateShipment)
		shipments.GET("/:shipment_id", rs.GetShipment)
		shipments.POST("/:shipment_id/telemetry", rs.PostTelemetry)
		shipments.GET("/:shipment_id/alerts", rs.GetAlerts)
		shipments.POST("/:shipment_id/status", rs.UpdateStatus)
		shipments.POST("/:shipment_id/limiter", rs.PostLimiter)
	}

	rs.Server.POST("/alerts/:alert_id/resolve", rs.ResolveAlert)
	rs.Server.GET("/credentials/:credential", rs.LookupCredential)

	stream := rs.Server.Group("/stream")
	{
		stream.GET("/shipments/:shipment_id", rs.StreamShipment)
		stream.GET("/owners/:owner_id", rs.StreamOwner)
		stream.GET("/admin", rs.StreamAdmin)
	}
}
