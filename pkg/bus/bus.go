package bus

import (
	"sync"
	"time"

	"chemtrack.xyz/shipment-telemetry-service/pkg/common"
	"chemtrack.xyz/shipment-telemetry-service/pkg/metrics"
	"go.uber.org/zap"
)

// AdminGroup is the single global group for operator dashboards.
const AdminGroup = "admin"

const subscriberBufferSize = 32

func ShipmentGroup(shipmentID string) string {
	return "shipment:" + shipmentID
}

func OwnerGroup(ownerID string) string {
	return "owner:" + ownerID
}

type Event struct {
	Group       string    `json:"group"`
	Type        string    `json:"type"`
	Payload     any       `json:"payload"`
	PublishedAt time.Time `json:"published_at"`
}

type Subscriber struct {
	ID    string
	Group string
	C     chan Event
}

// Bus fans out events to subscriber groups. Delivery is best-effort: a
// subscriber whose buffer is full misses the event, and the publisher never
// blocks. For a single publisher, delivery within one group is FIFO.
type Bus struct {
	mu      sync.Mutex
	groups  map[string]map[string]*Subscriber
	Metrics *metrics.Metrics
}

func NewBus(m *metrics.Metrics) *Bus {
	return &Bus{
		groups:  make(map[string]map[string]*Subscriber),
		Metrics: m,
	}
}

func (b *Bus) Join(subscriberID, group string) *Subscriber {
	sub := &Subscriber{
		ID:    subscriberID,
		Group: group,
		C:     make(chan Event, subscriberBufferSize),
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	members, exists := b.groups[group]
	if !exists {
		members = make(map[string]*Subscriber)
		b.groups[group] = members
	}
	members[subscriberID] = sub
	return sub
}

// Leave removes the subscriber from the group. The channel is not closed: an
// in-flight publish may still hold a reference to it, and readers terminate
// on their own context instead.
func (b *Bus) Leave(subscriberID, group string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	members, exists := b.groups[group]
	if !exists {
		return
	}
	delete(members, subscriberID)
	if len(members) == 0 {
		delete(b.groups, group)
	}
}

func (b *Bus) GroupSize(group string) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.groups[group])
}

func (b *Bus) Publish(group, eventType string, payload any) {
	event := Event{
		Group:       group,
		Type:        eventType,
		Payload:     payload,
		PublishedAt: time.Now(),
	}

	b.mu.Lock()
	subscribers := make([]*Subscriber, 0, len(b.groups[group]))
	for _, sub := range b.groups[group] {
		subscribers = append(subscribers, sub)
	}
	b.mu.Unlock()

	b.Metrics.IncEvent(eventType)

	logger := common.GetLoggerWith(
		common.LoggerNameEventBus,
		zap.String(common.LoggerFieldCategory, common.LoggerCategoryBus),
	)

	for _, sub := range subscribers {
		select {
		case sub.C <- event:
		default:
			// full buffer counts as a per-subscriber delivery failure
			logger.Warn("Dropped event for slow subscriber",
				zap.String("group", group),
				zap.String("event", eventType),
				zap.String("subscriber_id", sub.ID))
			b.Metrics.IncDrop()
		}
	}
}
