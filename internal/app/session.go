package app

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/five82/bedboard/internal/config"
	"github.com/five82/bedboard/internal/housing"
	"github.com/five82/bedboard/internal/state"
)

// minRefreshGap is the shortest allowed spacing between two fetches.
const minRefreshGap = time.Second

// freshnessTick is how often the elapsed counter advances.
const freshnessTick = time.Second

// Session owns the fetch lifecycle: the rate limiter, the poll timer, the
// freshness ticker and the sequence guard. It writes results into a Store.
// A Session can be started once.
type Session struct {
	fetcher housing.RoomFetcher
	store   *state.Store
	logger  *zap.Logger

	now          func() time.Time
	intervalUnit time.Duration
	tickEvery    time.Duration

	mu           sync.Mutex
	limiter      *rate.Limiter
	seq          uint64
	interval     int
	runCtx       context.Context
	cancel       context.CancelFunc
	freshRunning bool
	stopped      bool

	resched chan struct{}
	wg      sync.WaitGroup
}

// NewSession builds an idle session polling every intervalMinutes, clamped
// to the configured bounds. Zero or less uses the default interval.
func NewSession(fetcher housing.RoomFetcher, store *state.Store, logger *zap.Logger, intervalMinutes int) *Session {
	if logger == nil {
		logger = zap.NewNop()
	}
	if intervalMinutes <= 0 {
		intervalMinutes = config.DefaultIntervalMinutes
	}
	interval := config.ClampInterval(intervalMinutes)
	store.SetInterval(interval)
	return &Session{
		fetcher:      fetcher,
		store:        store,
		logger:       logger,
		now:          time.Now,
		intervalUnit: time.Minute,
		tickEvery:    freshnessTick,
		limiter:      rate.NewLimiter(rate.Every(minRefreshGap), 1),
		interval:     interval,
		resched:      make(chan struct{}, 1),
	}
}

// Interval returns the polling interval in minutes.
func (s *Session) Interval() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.interval
}

// TickEvery returns the freshness ticker period. The UI polls the store at
// the same rate so the elapsed counter it shows never lags a tick.
func (s *Session) TickEvery() time.Duration {
	return s.tickEvery
}

// SetInterval clamps and applies a new polling interval, returning the value
// in effect. On a running session a changed interval triggers an immediate
// fetch and re-arms the poll timer with the new period.
func (s *Session) SetInterval(minutes int) int {
	minutes = config.ClampInterval(minutes)

	s.mu.Lock()
	changed := minutes != s.interval
	s.interval = minutes
	running := s.cancel != nil
	s.mu.Unlock()

	s.store.SetInterval(minutes)
	if changed && running {
		select {
		case s.resched <- struct{}{}:
		default:
		}
	}
	return minutes
}

// Refresh fetches the feed once and records the outcome in the store. It
// returns false without touching the network when the previous admitted
// call was less than a second ago. Results of a call that has been
// overtaken by a newer one are dropped, as are results of a call whose
// context was cancelled.
func (s *Session) Refresh(ctx context.Context) bool {
	s.mu.Lock()
	if !s.limiter.AllowN(s.now(), 1) {
		s.mu.Unlock()
		s.logger.Debug("refresh coalesced")
		return false
	}
	s.seq++
	seq := s.seq
	s.mu.Unlock()

	started := time.Now()
	rooms, err := s.fetcher.FetchRooms(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	if ctx.Err() != nil {
		s.logger.Debug("fetch abandoned", zap.Uint64("seq", seq), zap.Error(ctx.Err()))
		return true
	}
	if seq != s.seq {
		s.logger.Debug("stale fetch discarded", zap.Uint64("seq", seq), zap.Uint64("latest", s.seq))
		return true
	}

	now := s.now()
	if err != nil {
		s.store.Fail(err, now)
		s.logger.Warn("fetch failed", zap.Uint64("seq", seq), zap.Error(err))
		return true
	}

	if s.store.Replace(rooms, now) {
		s.startFreshnessLocked()
	}
	s.logger.Info("fetch complete",
		zap.Uint64("seq", seq),
		zap.Int("rooms", len(rooms)),
		zap.Duration("took", time.Since(started)),
	)
	return true
}

// Start fetches immediately, then keeps polling at the current interval until
// ctx is cancelled or Stop is called. It returns immediately.
func (s *Session) Start(ctx context.Context) {
	s.mu.Lock()
	if s.cancel != nil {
		s.mu.Unlock()
		return
	}
	runCtx, cancel := context.WithCancel(ctx)
	s.runCtx = runCtx
	s.cancel = cancel
	s.wg.Add(1)
	s.mu.Unlock()

	go s.pollLoop(runCtx)
}

// Stop cancels all timers and in-flight session fetches and waits for the
// session goroutines to exit.
func (s *Session) Stop() {
	s.mu.Lock()
	if s.cancel == nil {
		s.mu.Unlock()
		return
	}
	s.stopped = true
	s.cancel()
	s.mu.Unlock()

	s.wg.Wait()
}

func (s *Session) pollLoop(ctx context.Context) {
	defer s.wg.Done()
	for {
		s.Refresh(ctx)

		timer := time.NewTimer(s.period())
		select {
		case <-ctx.Done():
			timer.Stop()
			return
		case <-s.resched:
			timer.Stop()
			s.logger.Debug("poll timer re-armed", zap.Int("interval_minutes", s.Interval()))
		case <-timer.C:
		}
	}
}

func (s *Session) period() time.Duration {
	return time.Duration(s.Interval()) * s.intervalUnit
}

// startFreshnessLocked launches the elapsed-time ticker the first time an
// anchor exists on a running session. s.mu must be held.
func (s *Session) startFreshnessLocked() {
	if s.freshRunning || s.stopped || s.runCtx == nil || s.runCtx.Err() != nil {
		return
	}
	s.freshRunning = true
	ctx := s.runCtx
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		ticker := time.NewTicker(s.tickEvery)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				s.store.Tick(s.now())
			}
		}
	}()
}
