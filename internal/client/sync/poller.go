// Package sync implements the two state-synchronization patterns every
// LanXpert screen is built on: interval polling that replaces a collection
// wholesale, and optimistic mutations reconciled against the server's
// response.
package sync

import (
	"context"
	stdsync "sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/lanxpert/lanxpert-cli/internal/logging"
)

// FetchFunc runs one poll tick for the given target (e.g. a chat id; screens
// polling a static collection pass ""). The fetch replaces the screen's
// collection itself; the poller only schedules it.
type FetchFunc func(ctx context.Context, target string) error

// Poller is a cancellable repeating fetch bound to a target key.
//
// Guarantees:
//   - the first fetch fires immediately on Start;
//   - at most one tick is in flight at a time (a tick that would overlap the
//     previous one is skipped);
//   - Retarget tears the previous loop down before starting the new one, so
//     two loops never run for different targets;
//   - consecutive failures back off exponentially (ticks are skipped until
//     interval*2^n has passed, capped), and a single success resets it.
type Poller struct {
	interval   time.Duration
	maxBackoff time.Duration
	fetch      FetchFunc
	log        logging.Logger

	mu       stdsync.Mutex
	gen      uint64 // bumped by every Start/Stop; stale loops notice and die
	sched    *gocron.Scheduler
	cancel   context.CancelFunc
	target   string
	inFlight bool
	failures int
	deferred time.Time // ticks before this instant are skipped
}

type PollerOption func(*Poller)

// WithMaxBackoff caps the failure backoff. Defaults to 16x the interval.
func WithMaxBackoff(d time.Duration) PollerOption {
	return func(p *Poller) { p.maxBackoff = d }
}

func WithPollerLogger(l logging.Logger) PollerOption {
	return func(p *Poller) { p.log = l }
}

func NewPoller(interval time.Duration, fetch FetchFunc, opts ...PollerOption) *Poller {
	p := &Poller{
		interval:   interval,
		maxBackoff: 16 * interval,
		fetch:      fetch,
		log:        logging.Nop{},
	}
	for _, o := range opts {
		o(p)
	}
	return p
}

// Start begins polling the given target, fetching once immediately. Any
// previous loop is stopped first. The loop also stops when ctx is cancelled.
func (p *Poller) Start(ctx context.Context, target string) {
	tickCtx, cancel := context.WithCancel(ctx)

	p.mu.Lock()
	prevSched, prevCancel := p.sched, p.cancel
	p.gen++
	gen := p.gen
	p.cancel = cancel
	p.target = target
	p.failures = 0
	p.deferred = time.Time{}

	s := gocron.NewScheduler(time.UTC)
	// SingletonMode backstops the in-flight guard at the scheduler level.
	_, err := s.Every(p.interval).StartImmediately().SingletonMode().Do(func() {
		p.tick(tickCtx, target)
	})
	if err != nil {
		p.sched = nil
		p.cancel = nil
		p.target = ""
		p.mu.Unlock()
		cancel()
		teardown(prevSched, prevCancel)
		p.log.Error(ctx, "scheduling poll job", "target", target, "err", err)
		return
	}
	p.sched = s
	p.mu.Unlock()

	// The previous loop must be fully down before the new one starts.
	teardown(prevSched, prevCancel)
	s.StartAsync()

	go func() {
		<-tickCtx.Done()
		p.stopGen(gen)
	}()

	p.log.Debug(ctx, "poller started", "target", target, "interval", p.interval)
}

// Retarget switches the poller to a new target key. The old loop is fully
// torn down before the new one starts.
func (p *Poller) Retarget(ctx context.Context, target string) {
	p.Start(ctx, target)
}

// Stop halts the polling loop. Safe to call repeatedly and on a never
// started poller.
func (p *Poller) Stop() {
	p.mu.Lock()
	p.gen++
	sched, cancel := p.sched, p.cancel
	p.sched = nil
	p.cancel = nil
	p.target = ""
	p.mu.Unlock()

	teardown(sched, cancel)
}

// stopGen stops the loop only if it is still the one started as generation
// gen; a loop replaced by a later Start leaves its successor alone.
func (p *Poller) stopGen(gen uint64) {
	p.mu.Lock()
	if p.gen != gen {
		p.mu.Unlock()
		return
	}
	sched, cancel := p.sched, p.cancel
	p.sched = nil
	p.cancel = nil
	p.target = ""
	p.mu.Unlock()

	teardown(sched, cancel)
}

// Active reports whether a polling loop is currently running.
func (p *Poller) Active() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.sched != nil
}

// Target returns the key the poller is currently bound to ("" when stopped).
func (p *Poller) Target() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.target
}

func (p *Poller) tick(ctx context.Context, target string) {
	if ctx.Err() != nil {
		return
	}

	p.mu.Lock()
	if p.inFlight || time.Now().Before(p.deferred) {
		p.mu.Unlock()
		return
	}
	p.inFlight = true
	p.mu.Unlock()

	err := p.fetch(ctx, target)

	p.mu.Lock()
	p.inFlight = false
	if err != nil {
		p.failures++
		backoff := p.interval << uint(p.failures)
		if backoff > p.maxBackoff {
			backoff = p.maxBackoff
		}
		p.deferred = time.Now().Add(backoff)
		failures := p.failures
		p.mu.Unlock()
		// A failed tick is silent for the user; the next eligible tick retries.
		p.log.Warn(ctx, "poll tick failed", "target", target, "failures", failures, "err", err)
		return
	}
	p.failures = 0
	p.deferred = time.Time{}
	p.mu.Unlock()
}

func teardown(sched *gocron.Scheduler, cancel context.CancelFunc) {
	if cancel != nil {
		cancel()
	}
	if sched != nil {
		sched.Stop()
	}
}
