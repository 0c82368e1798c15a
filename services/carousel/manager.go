package carousel

import (
	"sync"
	"time"

	"ard/models"

	"github.com/google/uuid"
)

// Manager tracks one live Scheduler per feed session. Re-requesting the feed
// creates a fresh session; sessions idle past the TTL are stopped and dropped
// so their slot timers never leak.
type Manager struct {
	mu       sync.Mutex
	sessions map[string]*session
	cfg      Config
	ttl      time.Duration

	stop     chan struct{}
	stopOnce sync.Once
}

type session struct {
	scheduler *Scheduler
	lastSeen  time.Time
}

// NewManager creates a session manager and starts its janitor.
func NewManager(cfg Config, idleTTL time.Duration) *Manager {
	if idleTTL <= 0 {
		idleTTL = 30 * time.Minute
	}
	m := &Manager{
		sessions: make(map[string]*session),
		cfg:      cfg,
		ttl:      idleTTL,
		stop:     make(chan struct{}),
	}
	go m.janitor()
	return m
}

// Close stops the janitor and every live session. Safe to call more than
// once; the manager must not be used afterwards.
func (m *Manager) Close() {
	m.stopOnce.Do(func() { close(m.stop) })

	m.mu.Lock()
	remaining := make([]*Scheduler, 0, len(m.sessions))
	for id, sess := range m.sessions {
		remaining = append(remaining, sess.scheduler)
		delete(m.sessions, id)
	}
	m.mu.Unlock()

	for _, sched := range remaining {
		sched.Stop()
	}
}

// Create chunks nothing itself; it receives the already-chunked feed and
// returns the new session's id and scheduler.
func (m *Manager) Create(groups [][]models.Ad) (string, *Scheduler) {
	sched := NewScheduler(groups, m.cfg)
	id := uuid.New().String()

	m.mu.Lock()
	m.sessions[id] = &session{scheduler: sched, lastSeen: time.Now()}
	m.mu.Unlock()
	return id, sched
}

// Get returns the scheduler for a session, refreshing its idle clock.
func (m *Manager) Get(id string) (*Scheduler, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	sess, ok := m.sessions[id]
	if !ok {
		return nil, false
	}
	sess.lastSeen = time.Now()
	return sess.scheduler, true
}

// Drop stops a session's timers and forgets it.
func (m *Manager) Drop(id string) {
	m.mu.Lock()
	sess, ok := m.sessions[id]
	delete(m.sessions, id)
	m.mu.Unlock()
	if ok {
		sess.scheduler.Stop()
	}
}

func (m *Manager) janitor() {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-m.stop:
			return
		case <-ticker.C:
		}

		cutoff := time.Now().Add(-m.ttl)
		var stale []*Scheduler

		m.mu.Lock()
		for id, sess := range m.sessions {
			if sess.lastSeen.Before(cutoff) {
				stale = append(stale, sess.scheduler)
				delete(m.sessions, id)
			}
		}
		m.mu.Unlock()

		for _, sched := range stale {
			sched.Stop()
		}
	}
}
