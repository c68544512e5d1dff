package tracker

import (
	"sync"

	"golang.org/x/time/rate"
)

// RateLimiterStore manages per-shipment rate limiters: shipment_id -> rate limiter
type RateLimiterStore struct {
	limiters     map[string]*rate.Limiter
	mu           sync.Mutex
	defaultRate  rate.Limit
	defaultBurst int
}

func NewRateLimiterStore(defaultRate rate.Limit, defaultBurst int) *RateLimiterStore {
	return &RateLimiterStore{
		limiters:     make(map[string]*rate.Limiter),
		defaultRate:  defaultRate,
		defaultBurst: defaultBurst,
	}
}

func (s *RateLimiterStore) GetLimiter(shipmentID string) *rate.Limiter {
	s.mu.Lock()
	defer s.mu.Unlock()

	limiter, exists := s.limiters[shipmentID]
	if !exists {
		limiter = rate.NewLimiter(s.defaultRate, s.defaultBurst)
		s.limiters[shipmentID] = limiter
	}
	return limiter
}

func (s *RateLimiterStore) SetLimiter(shipmentID string, shipmentRate rate.Limit, shipmentBurst int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.limiters[shipmentID] = rate.NewLimiter(shipmentRate, shipmentBurst)
}
