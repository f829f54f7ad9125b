package session

import (
	"errors"
	"sync"
	"time"

	"fulfillment/internal/core/domain/model/courier"
	"fulfillment/internal/core/domain/model/kernel"
)

var (
	// ErrPushInFlight is returned when a push is already running for the
	// order. Concurrent attempts are rejected, never queued.
	ErrPushInFlight = errors.New("a push is already in flight for this order")

	// ErrNoPendingResolution is returned when a resume is attempted for an
	// order without a pending city resolution.
	ErrNoPendingResolution = errors.New("no pending city resolution for this order")
)

// PendingPush is the state parked between a push attempt that failed on an
// unsupported city and the operator's city selection. It holds everything
// needed to resume the push without re-collecting the order.
type PendingPush struct {
	OrderID       kernel.UUID
	Provider      courier.Provider
	RequestedCity string
	StartedAt     time.Time
}

// PushSessions serializes push attempts per order and parks pushes that are
// waiting on a city resolution.
//
// Concurrency rules:
//   - at most one push may be in flight per order; a second attempt fails
//     fast with ErrPushInFlight
//   - the in-flight mark is cleared on every outcome, success or failure
//   - a parked push resumes exactly once: TakePending removes the state as
//     it returns it
//
// State is process-local and lost on restart; the shipment journal covers
// the durable half of the one-time-push guard.
type PushSessions struct {
	mu       sync.Mutex
	inFlight map[string]struct{}
	pending  map[string]PendingPush
}

// NewPushSessions creates an empty session registry.
func NewPushSessions() *PushSessions {
	return &PushSessions{
		inFlight: make(map[string]struct{}),
		pending:  make(map[string]PendingPush),
	}
}

// Begin marks a push as in flight for the order. Returns ErrPushInFlight if
// one is already running. Callers must pair every successful Begin with an
// End, regardless of the push outcome.
func (s *PushSessions) Begin(orderID kernel.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := orderID.String()
	if _, busy := s.inFlight[key]; busy {
		return ErrPushInFlight
	}
	s.inFlight[key] = struct{}{}
	return nil
}

// End clears the in-flight mark for the order.
func (s *PushSessions) End(orderID kernel.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.inFlight, orderID.String())
}

// InFlight reports whether a push is currently running for the order.
func (s *PushSessions) InFlight(orderID kernel.UUID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, busy := s.inFlight[orderID.String()]
	return busy
}

// Park stores the pending city resolution for an order whose push stopped on
// an unsupported city. A newer park for the same order replaces the older
// one.
func (s *PushSessions) Park(state PendingPush) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pending[state.OrderID.String()] = state
}

// TakePending returns and removes the pending resolution for the order.
// Removal on read guarantees the parked push resumes at most once; a second
// resume attempt gets ErrNoPendingResolution.
func (s *PushSessions) TakePending(orderID kernel.UUID) (PendingPush, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := orderID.String()
	state, ok := s.pending[key]
	if !ok {
		return PendingPush{}, ErrNoPendingResolution
	}
	delete(s.pending, key)
	return state, nil
}

// PeekPending returns the pending resolution without consuming it, for
// status displays.
func (s *PushSessions) PeekPending(orderID kernel.UUID) (PendingPush, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	state, ok := s.pending[orderID.String()]
	return state, ok
}

// DropPending discards a parked push, e.g. when the operator abandons the
// resolution.
func (s *PushSessions) DropPending(orderID kernel.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.pending, orderID.String())
}
