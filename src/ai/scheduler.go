package ai

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/notnil/chess"

	"chessmind/src/logx"
	"chessmind/src/rules"
)

// Result is a completed move request. Move is nil when the position had
// no legal moves. Generation echoes the tag the request was dispatched
// with.
type Result struct {
	Move       *chess.Move
	Generation uint64
}

// Scheduler decouples move selection from the caller's interactive
// loop. A request is dispatched on its own goroutine, paced by an
// optional artificial delay (so the opponent does not appear to reply
// instantly), and delivered on the Results channel.
//
// Each request carries a generation tag. When the game state advances
// (a new game, a different position) the caller bumps the generation
// with Advance; a result whose tag no longer matches the current
// generation is discarded at delivery instead of being applied to a
// state it was not computed for.
type Scheduler struct {
	sel     *Selector
	delay   time.Duration
	log     logx.Logger
	gen     atomic.Uint64
	results chan Result
	wg      sync.WaitGroup
}

// NewScheduler wraps sel. The delay is a UX pacing parameter only;
// zero is valid and is what tests use.
func NewScheduler(sel *Selector, delay time.Duration, log logx.Logger) *Scheduler {
	if log == nil {
		log = logx.Nop()
	}
	return &Scheduler{
		sel:     sel,
		delay:   delay,
		log:     log,
		results: make(chan Result, 4),
	}
}

// Results delivers completed requests. Stale results never appear here.
func (s *Scheduler) Results() <-chan Result {
	return s.results
}

// Generation returns the current generation tag.
func (s *Scheduler) Generation() uint64 {
	return s.gen.Load()
}

// Advance moves to the next generation and returns it. Call it whenever
// the underlying game state changes out from under in-flight requests.
func (s *Scheduler) Advance() uint64 {
	return s.gen.Add(1)
}

// RequestMove dispatches an asynchronous move selection for the given
// position and difficulty, tagged with generation. The position is
// snapshotted before dispatch, so the caller may keep using its own
// copy; exactly one traversal runs per snapshot.
func (s *Scheduler) RequestMove(pos *rules.Position, d Difficulty, generation uint64) {
	snapshot := pos.Clone()
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		if s.delay > 0 {
			time.Sleep(s.delay)
		}
		if stale := s.gen.Load(); stale != generation {
			s.log.Debugf("dropping request for generation %d before search (current %d)", generation, stale)
			return
		}
		mv := s.sel.SelectMove(snapshot, d)
		if current := s.gen.Load(); current != generation {
			s.log.Debugf("discarding stale result for generation %d (current %d)", generation, current)
			return
		}
		select {
		case s.results <- Result{Move: mv, Generation: generation}:
		default:
			s.log.Warnf("result channel full, dropping move for generation %d", generation)
		}
	}()
}

// Wait blocks until all dispatched requests have finished. Discarded
// requests count as finished.
func (s *Scheduler) Wait() {
	s.wg.Wait()
}
