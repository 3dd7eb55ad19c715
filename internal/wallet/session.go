package wallet

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"go.uber.org/zap"

	"github.com/degenerous-dao/potentials-staking/internal/domain"
	"github.com/degenerous-dao/potentials-staking/internal/logger"
	"github.com/degenerous-dao/potentials-staking/internal/providers/ethereum"
)

// EventType identifies a session change
type EventType string

const (
	// EventConnected is published after an account is connected or switched
	EventConnected EventType = "connected"

	// EventReset is published after the session is cleared. Subscribers drop every
	// value derived from the previous account.
	EventReset EventType = "reset"
)

// State is a snapshot of the session
type State struct {
	Connected bool   `json:"connected"`
	Address   string `json:"address"`
	Username  string `json:"username"`
}

// Event is delivered to subscribers after each session change
type Event struct {
	Type  EventType
	State State
}

// Listener receives session events
type Listener func(Event)

// Session holds the connected account, its display name and signer.
// All mutations go through Connect and Disconnect.
type Session struct {
	mu       sync.RWMutex
	address  string
	username string
	signer   ethereum.Signer

	listenersMu sync.Mutex
	listeners   map[uint64]Listener
	nextID      uint64
}

// NewSession creates a disconnected session
func NewSession() *Session {
	return &Session{listeners: make(map[uint64]Listener)}
}

// Connect asks connector for an account and publishes it
func (s *Session) Connect(ctx context.Context, connector Connector) (State, error) {
	account, err := connector.Connect(ctx)
	if err != nil {
		return State{}, fmt.Errorf("failed to connect wallet: %w", err)
	}

	address := account.Signer.Address().Hex()

	s.mu.Lock()
	s.address = address
	s.username = domain.ShortAddress(address)
	s.signer = account.Signer
	state := s.snapshot()
	s.mu.Unlock()

	logger.InfoCtx(ctx, "Wallet connected", zap.String("address", address), zap.String("connector", account.Source))
	s.publish(Event{Type: EventConnected, State: state})

	return state, nil
}

// Disconnect clears the session and publishes EventReset
func (s *Session) Disconnect() {
	s.mu.Lock()
	s.address = ""
	s.username = ""
	s.signer = nil
	state := s.snapshot()
	s.mu.Unlock()

	logger.Info("Wallet session reset")
	s.publish(Event{Type: EventReset, State: state})
}

// State returns the current snapshot
func (s *Session) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshot()
}

// Signer returns the connected signer or domain.ErrWalletNotConnected
func (s *Session) Signer() (ethereum.Signer, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.signer == nil {
		return nil, domain.ErrWalletNotConnected
	}
	return s.signer, nil
}

// Subscribe registers fn for future events and returns a func that removes it
func (s *Session) Subscribe(fn Listener) func() {
	s.listenersMu.Lock()
	id := s.nextID
	s.nextID++
	s.listeners[id] = fn
	s.listenersMu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			s.listenersMu.Lock()
			delete(s.listeners, id)
			s.listenersMu.Unlock()
		})
	}
}

// snapshot must be called with mu held
func (s *Session) snapshot() State {
	return State{
		Connected: s.signer != nil,
		Address:   s.address,
		Username:  s.username,
	}
}

// publish calls listeners in subscription order outside of any lock
func (s *Session) publish(event Event) {
	s.listenersMu.Lock()
	ids := make([]uint64, 0, len(s.listeners))
	for id := range s.listeners {
		ids = append(ids, id)
	}
	listeners := make([]Listener, 0, len(ids))
	slices.Sort(ids)
	for _, id := range ids {
		listeners = append(listeners, s.listeners[id])
	}
	s.listenersMu.Unlock()

	for _, fn := range listeners {
		fn(event)
	}
}
