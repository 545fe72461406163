// Package session holds per-conversation state: the last unambiguously
// resolved subject or professor, used to answer elliptical follow-up
// questions ("what is their email"). State is scoped per session ID rather
// than process-wide, so concurrent conversations never corrupt each other.
// Idle sessions are evicted by a background cleanup loop.
package session

import (
	"sync"
	"time"

	"github.com/omarmubaidin/htu-infobot-go/internal/dataset"
	"github.com/omarmubaidin/htu-infobot-go/internal/resolve"
)

// State is the context state machine position.
type State string

const (
	// Empty means no entity is held; follow-ups fall through to a
	// generic unresolved response.
	Empty State = "empty"
	// HoldingSubject means the last resolution was a single subject.
	HoldingSubject State = "holding_subject"
	// HoldingProfessor means the last resolution was a single professor.
	HoldingProfessor State = "holding_professor"
)

// Context is one conversation's remembered state. Subject and Professor
// are mutually exclusive; holding one clears the other.
type Context struct {
	Subject    *resolve.SubjectMatch
	Professor  *dataset.Professor
	QueryCount int
}

// State reports the state machine position for this context.
func (c Context) State() State {
	switch {
	case c.Professor != nil:
		return HoldingProfessor
	case c.Subject != nil:
		return HoldingSubject
	}
	return Empty
}

type entry struct {
	ctx      Context
	lastSeen time.Time
}

// StoreConfig configures a session Store.
type StoreConfig struct {
	IdleTTL       time.Duration // Evict sessions idle longer than this
	CleanupPeriod time.Duration // How often the eviction loop runs
}

// Store keeps session contexts keyed by session ID. Safe for concurrent
// use. Call Stop to terminate the cleanup goroutine.
type Store struct {
	mu      sync.RWMutex
	entries map[string]*entry
	config  StoreConfig
	stopCh  chan struct{}
	now     func() time.Time // Overridable for tests
}

// NewStore creates a session store and starts its cleanup loop.
func NewStore(cfg StoreConfig) *Store {
	if cfg.IdleTTL <= 0 {
		cfg.IdleTTL = 30 * time.Minute
	}
	if cfg.CleanupPeriod <= 0 {
		cfg.CleanupPeriod = 5 * time.Minute
	}
	s := &Store{
		entries: make(map[string]*entry),
		config:  cfg,
		stopCh:  make(chan struct{}),
		now:     time.Now,
	}
	go s.cleanupLoop()
	return s
}

// Get returns a snapshot of the session's context. An unknown session ID
// yields the empty context.
func (s *Store) Get(id string) Context {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if e, ok := s.entries[id]; ok {
		return e.ctx
	}
	return Context{}
}

// Bump counts one query against the session and refreshes its idle timer.
// Called once per chat turn, before resolution.
func (s *Store) Bump(id string) {
	if id == "" {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	e := s.ensure(id)
	e.ctx.QueryCount++
	e.lastSeen = s.now()
}

// HoldSubject records a single unambiguous subject resolution,
// clearing any held professor.
func (s *Store) HoldSubject(id string, m resolve.SubjectMatch) {
	if id == "" {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	e := s.ensure(id)
	e.ctx.Subject = &m
	e.ctx.Professor = nil
	e.lastSeen = s.now()
}

// HoldProfessor records a single unambiguous professor resolution,
// clearing any held subject.
func (s *Store) HoldProfessor(id string, p dataset.Professor) {
	if id == "" {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	e := s.ensure(id)
	e.ctx.Professor = &p
	e.ctx.Subject = nil
	e.lastSeen = s.now()
}

// Clear drops the held entity after an ambiguous or failed resolution,
// so a stale entity can never answer an unrelated follow-up.
// The query counter survives.
func (s *Store) Clear(id string) {
	if id == "" {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if e, ok := s.entries[id]; ok {
		e.ctx.Subject = nil
		e.ctx.Professor = nil
		e.lastSeen = s.now()
	}
}

// Len returns the number of live sessions.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

// Stop terminates the cleanup loop.
func (s *Store) Stop() {
	close(s.stopCh)
}

// ensure returns the entry for id, creating it if needed.
// Must be called with mu held for writing.
func (s *Store) ensure(id string) *entry {
	e, ok := s.entries[id]
	if !ok {
		e = &entry{lastSeen: s.now()}
		s.entries[id] = e
	}
	return e
}

func (s *Store) cleanupLoop() {
	ticker := time.NewTicker(s.config.CleanupPeriod)
	defer ticker.Stop()
	for {
		select {
		case <-s.stopCh:
			return
		case <-ticker.C:
			s.evictIdle()
		}
	}
}

func (s *Store) evictIdle() {
	cutoff := s.now().Add(-s.config.IdleTTL)
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, e := range s.entries {
		if e.lastSeen.Before(cutoff) {
			delete(s.entries, id)
		}
	}
}
