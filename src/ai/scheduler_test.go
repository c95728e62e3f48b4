package ai

import (
	"testing"
	"time"

	"chessmind/src/rules"
)

func testScheduler(seed int64) *Scheduler {
	// Zero pacing delay: the delay is UX only and never gates
	// correctness.
	return NewScheduler(seededSelector(seed), 0, nil)
}

func TestSchedulerDeliversTaggedResult(t *testing.T) {
	sched := testScheduler(1)
	pos := rules.StartingPosition()
	moves := pos.LegalMoves()

	gen := sched.Generation()
	sched.RequestMove(pos, Easy, gen)
	sched.Wait()

	select {
	case res := <-sched.Results():
		if res.Generation != gen {
			t.Fatalf("result tagged with generation %d, want %d", res.Generation, gen)
		}
		if res.Move == nil {
			t.Fatalf("expected a move for a live position")
		}
		if !moveInList(res.Move, moves) {
			t.Fatalf("delivered move %s is not legal", res.Move)
		}
	default:
		t.Fatalf("no result delivered after Wait")
	}
}

func TestSchedulerDiscardsStaleResult(t *testing.T) {
	sched := testScheduler(1)
	pos := rules.StartingPosition()

	gen := sched.Generation()
	sched.Advance() // the game moved on before the request resolves
	sched.RequestMove(pos, Hard, gen)
	sched.Wait()

	select {
	case res := <-sched.Results():
		t.Fatalf("stale result for generation %d was delivered (current %d)", res.Generation, sched.Generation())
	default:
	}
}

func TestSchedulerDeliversNilMoveOnTerminalPosition(t *testing.T) {
	sched := testScheduler(1)
	mated := mustPosition(t, "R5k1/5ppp/8/8/8/8/5PPP/6K1 b - - 1 1")

	gen := sched.Generation()
	sched.RequestMove(mated, Medium, gen)
	sched.Wait()

	select {
	case res := <-sched.Results():
		if res.Move != nil {
			t.Fatalf("expected nil move for a terminal position, got %s", res.Move)
		}
	default:
		t.Fatalf("terminal result must still be delivered")
	}
}

func TestSchedulerDoesNotTouchTheCallersPosition(t *testing.T) {
	sched := testScheduler(9)
	pos := rules.StartingPosition()
	before := pos.FEN()

	sched.RequestMove(pos, Hard, sched.Generation())

	// The caller keeps using its own position while the search runs on
	// a snapshot.
	if got := pos.FEN(); got != before {
		t.Fatalf("request mutated the caller's position")
	}
	sched.Wait()
	if got := pos.FEN(); got != before {
		t.Fatalf("completed search mutated the caller's position")
	}
}

func TestSchedulerAdvanceIsMonotonic(t *testing.T) {
	sched := testScheduler(1)
	g0 := sched.Generation()
	g1 := sched.Advance()
	g2 := sched.Advance()
	if !(g0 < g1 && g1 < g2) {
		t.Fatalf("generations are not monotonic: %d %d %d", g0, g1, g2)
	}
	if sched.Generation() != g2 {
		t.Fatalf("Generation does not reflect the last Advance")
	}
}

func TestSchedulerPacingDelayIsHonored(t *testing.T) {
	const delay = 30 * time.Millisecond
	sched := NewScheduler(seededSelector(1), delay, nil)
	pos := rules.StartingPosition()

	start := time.Now()
	sched.RequestMove(pos, Easy, sched.Generation())
	sched.Wait()
	if elapsed := time.Since(start); elapsed < delay {
		t.Fatalf("request finished in %v, before the %v pacing delay", elapsed, delay)
	}
}
