package catalog

import (
	"context"
	"sync"
	"time"

	"unitrade/internal/domain/entity"
)

// Source fetches the full result sequence for a query. The pager never pages
// through the source; it fetches once per settled query and slices locally.
type Source func(ctx context.Context, p Params) ([]*entity.Listing, error)

const (
	DefaultChunkSize   = 12
	DefaultSettleDelay = 400 * time.Millisecond
	DefaultLoadDelay   = 800 * time.Millisecond
)

type Phase int

const (
	PhaseIdle Phase = iota
	PhaseSettling
	PhaseLoadingMore
	PhaseFailed
)

// State is a point-in-time copy of the pager's observable state.
type State struct {
	Phase     Phase
	All       []*entity.Listing
	Visible   []*entity.Listing
	Exhausted bool
	Err       error
}

type PagerOptions struct {
	ChunkSize   int
	SettleDelay time.Duration
	LoadDelay   time.Duration

	// OnChange is invoked outside the pager's lock after every state
	// transition.
	OnChange func(State)
}

// Pager maintains a materialized result sequence and a visible prefix of it.
// Query changes are debounced: each change restarts the settle timer, and
// only the last query inside the window is fetched. Results from a
// superseded fetch are identified by generation and discarded. LoadMore
// grows the visible prefix by one chunk after a fixed delay.
//
// The visible sequence is always a prefix of the full sequence, and its
// length only resets when a new query settles.
type Pager struct {
	mu     sync.Mutex
	source Source
	opts   PagerOptions

	ctx    context.Context
	cancel context.CancelFunc

	params  Params
	all     []*entity.Listing
	visible int
	phase   Phase
	err     error

	// gen identifies the current settle cycle; async completions carrying a
	// stale gen are dropped.
	gen uint64

	settleTimer *time.Timer
	loadTimer   *time.Timer
	closed      bool
}

func NewPager(source Source, opts PagerOptions) *Pager {
	if opts.ChunkSize <= 0 {
		opts.ChunkSize = DefaultChunkSize
	}
	if opts.SettleDelay <= 0 {
		opts.SettleDelay = DefaultSettleDelay
	}
	if opts.LoadDelay <= 0 {
		opts.LoadDelay = DefaultLoadDelay
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &Pager{
		source: source,
		opts:   opts,
		ctx:    ctx,
		cancel: cancel,
	}
}

// SetQuery schedules a new query. Any pending settle or load-more timer is
// cancelled; the query commits only after the settle delay elapses with no
// further changes.
func (p *Pager) SetQuery(params Params) {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return
	}
	p.params = params
	p.gen++
	gen := p.gen
	p.phase = PhaseSettling
	p.err = nil
	if p.settleTimer != nil {
		p.settleTimer.Stop()
	}
	if p.loadTimer != nil {
		p.loadTimer.Stop()
		p.loadTimer = nil
	}
	p.settleTimer = time.AfterFunc(p.opts.SettleDelay, func() {
		p.settle(gen, params)
	})
	st := p.snapshotLocked()
	p.mu.Unlock()
	p.notify(st)
}

func (p *Pager) settle(gen uint64, params Params) {
	results, err := p.source(p.ctx, params)

	p.mu.Lock()
	if p.closed || gen != p.gen {
		// A newer query superseded this cycle while the fetch was in
		// flight; its results are stale.
		p.mu.Unlock()
		return
	}
	if err != nil {
		p.phase = PhaseFailed
		p.err = err
	} else {
		p.all = results
		p.visible = min(p.opts.ChunkSize, len(results))
		p.phase = PhaseIdle
		p.err = nil
	}
	st := p.snapshotLocked()
	p.mu.Unlock()
	p.notify(st)
}

// LoadMore requests the next chunk. It reports whether a load was actually
// started: nothing happens while settling, loading, failed, or exhausted.
func (p *Pager) LoadMore() bool {
	p.mu.Lock()
	if p.closed || p.phase != PhaseIdle || p.err != nil || p.visible >= len(p.all) {
		p.mu.Unlock()
		return false
	}
	p.phase = PhaseLoadingMore
	gen := p.gen
	p.loadTimer = time.AfterFunc(p.opts.LoadDelay, func() {
		p.finishLoad(gen)
	})
	st := p.snapshotLocked()
	p.mu.Unlock()
	p.notify(st)
	return true
}

func (p *Pager) finishLoad(gen uint64) {
	p.mu.Lock()
	if p.closed || gen != p.gen || p.phase != PhaseLoadingMore {
		p.mu.Unlock()
		return
	}
	p.visible = min(p.visible+p.opts.ChunkSize, len(p.all))
	p.phase = PhaseIdle
	st := p.snapshotLocked()
	p.mu.Unlock()
	p.notify(st)
}

// State returns a copy of the current state.
func (p *Pager) State() State {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.snapshotLocked()
}

// Close cancels the in-flight fetch and any pending timers. The pager
// ignores all calls afterwards.
func (p *Pager) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return
	}
	p.closed = true
	p.cancel()
	if p.settleTimer != nil {
		p.settleTimer.Stop()
	}
	if p.loadTimer != nil {
		p.loadTimer.Stop()
	}
}

func (p *Pager) snapshotLocked() State {
	all := make([]*entity.Listing, len(p.all))
	copy(all, p.all)
	return State{
		Phase:     p.phase,
		All:       all,
		Visible:   all[:p.visible],
		Exhausted: p.visible == len(p.all),
		Err:       p.err,
	}
}

func (p *Pager) notify(st State) {
	if p.opts.OnChange != nil {
		p.opts.OnChange(st)
	}
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
