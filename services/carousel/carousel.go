// Package carousel rotates the chunked feed. Each fixed-size group of ranked
// ads is one slot with its own timer, drawn from a randomized period range so
// the grid doesn't pulse in unison. Slot timers are cooperative and
// cancellable: replacing the feed is always Stop-then-new, never a mutation
// of a live scheduler, so no orphaned timer can fire against a stale grid.
package carousel

import (
	"math/rand"
	"sync"
	"time"

	"ard/models"
)

// Config bounds the randomized rotation period.
type Config struct {
	MinPeriod time.Duration
	MaxPeriod time.Duration
}

type slot struct {
	mu     sync.Mutex
	ads    []models.Ad
	index  int
	paused bool
}

// advance moves the slot to the next member unless paused. A slot with zero
// or one member never advances.
func (s *slot) advance() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.paused || len(s.ads) <= 1 {
		return
	}
	s.index = (s.index + 1) % len(s.ads)
}

// Scheduler owns the rotation state for one rendering of the feed.
type Scheduler struct {
	slots []*slot
	cfg   Config

	stop     chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
}

// NewScheduler builds a scheduler over the chunked feed and starts one
// rotation goroutine per multi-member slot.
func NewScheduler(groups [][]models.Ad, cfg Config) *Scheduler {
	if cfg.MinPeriod <= 0 {
		cfg.MinPeriod = 3 * time.Second
	}
	if cfg.MaxPeriod < cfg.MinPeriod {
		cfg.MaxPeriod = cfg.MinPeriod
	}

	s := &Scheduler{cfg: cfg, stop: make(chan struct{})}
	for _, group := range groups {
		s.slots = append(s.slots, &slot{ads: group})
	}

	for _, sl := range s.slots {
		if len(sl.ads) <= 1 {
			continue
		}
		s.wg.Add(1)
		go s.rotate(sl)
	}
	return s
}

// rotate advances one slot forever, redrawing the period after every tick.
func (s *Scheduler) rotate(sl *slot) {
	defer s.wg.Done()
	timer := time.NewTimer(s.period())
	defer timer.Stop()

	for {
		select {
		case <-timer.C:
			sl.advance()
			timer.Reset(s.period())
		case <-s.stop:
			return
		}
	}
}

// period draws one randomized rotation period.
func (s *Scheduler) period() time.Duration {
	span := s.cfg.MaxPeriod - s.cfg.MinPeriod
	if span <= 0 {
		return s.cfg.MinPeriod
	}
	return s.cfg.MinPeriod + time.Duration(rand.Int63n(int64(span)))
}

// Stop cancels every slot timer and waits for the rotation goroutines to
// drain. Safe to call more than once.
func (s *Scheduler) Stop() {
	s.stopOnce.Do(func() { close(s.stop) })
	s.wg.Wait()
}

// Pause halts advancement for one slot without touching its index.
func (s *Scheduler) Pause(i int) bool {
	return s.setPaused(i, true)
}

// Resume lets a paused slot advance again, index unchanged.
func (s *Scheduler) Resume(i int) bool {
	return s.setPaused(i, false)
}

func (s *Scheduler) setPaused(i int, paused bool) bool {
	if i < 0 || i >= len(s.slots) {
		return false
	}
	sl := s.slots[i]
	sl.mu.Lock()
	sl.paused = paused
	sl.mu.Unlock()
	return true
}

// Current returns the ad a slot is showing right now. Selecting it is a pure
// read; rotation state is unaffected.
func (s *Scheduler) Current(i int) (models.Ad, bool) {
	if i < 0 || i >= len(s.slots) {
		return models.Ad{}, false
	}
	sl := s.slots[i]
	sl.mu.Lock()
	defer sl.mu.Unlock()
	if len(sl.ads) == 0 {
		return models.Ad{}, false
	}
	return sl.ads[sl.index], true
}

// States snapshots every slot's rotation state for the presentation layer.
func (s *Scheduler) States() []models.SlotState {
	states := make([]models.SlotState, 0, len(s.slots))
	for i, sl := range s.slots {
		sl.mu.Lock()
		states = append(states, models.SlotState{
			Slot:         i,
			CurrentIndex: sl.index,
			Size:         len(sl.ads),
			Paused:       sl.paused,
		})
		sl.mu.Unlock()
	}
	return states
}

// Len reports the number of slots.
func (s *Scheduler) Len() int {
	return len(s.slots)
}
