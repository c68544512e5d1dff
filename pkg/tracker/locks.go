package tracker

import "sync"

// ShipmentLocks serializes the ingest sequence per shipment: shipment_id -> mutex.
// Samples for different shipments never block each other. The zero value is
// ready to use.
type ShipmentLocks struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// Acquire locks the shipment and returns the matching unlock func.
func (s *ShipmentLocks) Acquire(shipmentID string) func() {
	s.mu.Lock()
	if s.locks == nil {
		s.locks = make(map[string]*sync.Mutex)
	}
	lock, exists := s.locks[shipmentID]
	if !exists {
		lock = &sync.Mutex{}
		s.locks[shipmentID] = lock
	}
	s.mu.Unlock()

	lock.Lock()
	return lock.Unlock
}
