package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"chemtrack.xyz/shipment-telemetry-service/pkg/bus"
	"chemtrack.xyz/shipment-telemetry-service/pkg/common"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

func (rs *RestfulServer) StreamShipment(c *gin.Context) {
	rs.streamGroup(c, bus.ShipmentGroup(c.Param("shipment_id")))
}

func (rs *RestfulServer) StreamOwner(c *gin.Context) {
	rs.streamGroup(c, bus.OwnerGroup(c.Param("owner_id")))
}

func (rs *RestfulServer) StreamAdmin(c *gin.Context) {
	rs.streamGroup(c, bus.AdminGroup)
}

// streamGroup joins the group for the lifetime of the request and relays bus
// events as server-sent events. Leaving happens on client disconnect; events
// the client misses while its buffer is full are simply not replayed.
func (rs *RestfulServer) streamGroup(c *gin.Context, group string) {
	logger := common.GetLoggerWith(common.LoggerNameRestfulServer)

	if rs.Tracker.Bus == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "event stream is not enabled"})
		return
	}

	subscriberID := uuid.New().String()
	sub := rs.Tracker.Bus.Join(subscriberID, group)
	defer rs.Tracker.Bus.Leave(subscriberID, group)

	c.Writer.Header().Set("Content-Type", "text/event-stream")
	c.Writer.Header().Set("Cache-Control", "no-cache")
	c.Writer.Header().Set("Connection", "keep-alive")

	fmt.Fprintf(c.Writer, "event: ready\ndata: {\"group\":%q}\n\n", group)
	c.Writer.Flush()

	logger.Info("Stream subscriber joined",
		zap.String("group", group), zap.String("subscriber_id", subscriberID))

	for {
		select {
		case <-c.Request.Context().Done():
			logger.Info("Stream subscriber left",
				zap.String("group", group), zap.String("subscriber_id", subscriberID))
			return
		case event := <-sub.C:
			payload, err := json.Marshal(event.Payload)
			if err != nil {
				logger.Warn("Skipping unserializable event",
					zap.String("group", group), zap.String("event", event.Type), zap.Error(err))
				continue
			}
			fmt.Fprintf(c.Writer, "event: %s\ndata: %s\n\n", event.Type, payload)
			c.Writer.Flush()
		}
	}
}
