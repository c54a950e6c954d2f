package duck

import (
	"math/rand"
	"reflect"
	"testing"

	"github.com/vovakirdan/duck-arcade/internal/core"
)

func TestNewWorldNotStarted(t *testing.T) {
	w := NewWorld()

	if w.Phase() != core.PhaseNotStarted {
		t.Errorf("Phase = %v, expected not-started", w.Phase())
	}

	before := w.Snapshot()
	result := w.Step()
	if !reflect.DeepEqual(before, w.Snapshot()) {
		t.Error("Step outside the running phase should not change the world")
	}
	if len(result.Events) != 0 {
		t.Errorf("Events = %v, expected none", result.Events)
	}
}

func TestStartInitializesSession(t *testing.T) {
	w := NewWorld()
	w.Start()

	state := w.State()
	if state.Phase != core.PhaseRunning {
		t.Errorf("Phase = %v, expected running", state.Phase)
	}
	if state.Score != 0 || state.Lives != StartLives || state.Level != StartLevel {
		t.Errorf("State = %+v, expected score 0, lives %d, level %d", state, StartLives, StartLevel)
	}
	if w.Actor != (Actor{X: SpawnX, Y: SpawnY, Grounded: true}) {
		t.Errorf("Actor = %+v, expected grounded at spawn", w.Actor)
	}
	if len(w.Hostiles) != 3 || len(w.Collectibles) != 4 {
		t.Errorf("rosters = %d hostiles, %d collectibles, expected 3 and 4", len(w.Hostiles), len(w.Collectibles))
	}
}

func TestKeyDownIgnoredUnlessRunning(t *testing.T) {
	w := NewWorld()

	if w.OnKeyDown(core.KeySpace) {
		t.Error("OnKeyDown should not request preventDefault before start")
	}
	if w.Input.Jump {
		t.Error("key-down before start should be ignored")
	}

	w.Start()
	if !w.OnKeyDown(core.KeySpace) {
		t.Error("OnKeyDown(Space) should request preventDefault while running")
	}
	if w.OnKeyDown(core.KeyArrowLeft) {
		t.Error("OnKeyDown(ArrowLeft) should not request preventDefault")
	}
	if !w.Input.Jump || !w.Input.Left {
		t.Errorf("Input = %+v, expected jump and left held", w.Input)
	}
}

func TestKeyUpProcessedWhenOver(t *testing.T) {
	w := NewWorld()
	w.Start()
	w.OnKeyDown(core.KeyD)
	w.Session.Phase = core.PhaseOver

	w.OnKeyUp(core.KeyD)
	if w.Input.Right {
		t.Error("key-up should clear the flag even after game over")
	}

	w.OnKeyDown(core.KeyD)
	if w.Input.Right {
		t.Error("key-down after game over should be ignored")
	}
}

func TestRestartIsFullReset(t *testing.T) {
	w := NewWorld()
	w.Start()
	first := w.Snapshot()

	w.Restart()
	if !reflect.DeepEqual(first, w.Snapshot()) {
		t.Errorf("Restart() right after Start() differs:\n got %+v\nwant %+v", w.Snapshot(), first)
	}

	// Play until something changes, then restart
	w.OnKeyDown(core.KeyArrowRight)
	for i := 0; i < 300 && w.Phase() == core.PhaseRunning; i++ {
		w.Step()
	}
	w.Restart()
	if !reflect.DeepEqual(first, w.Snapshot()) {
		t.Errorf("Restart() after play differs:\n got %+v\nwant %+v", w.Snapshot(), first)
	}
}

func TestRestartFromOver(t *testing.T) {
	w := NewWorld()
	w.Start()
	w.Session.Lives = 1
	w.apply([]core.Event{{Kind: core.EventDamage, EntityID: 1}})
	if w.Phase() != core.PhaseOver {
		t.Fatalf("Phase = %v, expected over", w.Phase())
	}

	tick := w.Tick()
	w.Step()
	if w.Tick() != tick {
		t.Error("no tick processing should happen after game over")
	}

	w.Restart()
	if w.Phase() != core.PhaseRunning || w.Session.Lives != StartLives {
		t.Errorf("after Restart: phase %v lives %d, expected running with %d", w.Phase(), w.Session.Lives, StartLives)
	}
}

func TestHostileCollisionLagsOneTick(t *testing.T) {
	w := NewWorld()
	w.Start()

	// Hostile 1 sits at x=300 moving right; the actor is just past its right edge.
	w.Actor = Actor{X: 331, Y: 460, Grounded: true}

	result := w.Step()
	if len(result.Events) != 0 {
		t.Fatalf("tick 1 events = %v, expected none against the pre-move position", result.Events)
	}
	if w.Hostiles[0].X != 302 {
		t.Fatalf("hostile X = %f, expected 302", w.Hostiles[0].X)
	}

	// Now overlapping after the hostile's move; detected on the following tick.
	result = w.Step()
	if len(result.Events) != 1 || result.Events[0].Kind != core.EventDamage {
		t.Errorf("tick 2 events = %v, expected one damage", result.Events)
	}
}

func TestCollectibleStaysCollected(t *testing.T) {
	w := NewWorld()
	w.Start()

	// Coin 1 at (200,400): stand the actor over it
	w.Actor = Actor{X: 190, Y: 390}
	result := w.Step()

	collected := false
	for _, ev := range result.Events {
		if ev.Kind == core.EventCollect && ev.EntityID == 1 {
			collected = true
		}
	}
	if !collected {
		t.Fatalf("events = %v, expected coin 1 collected", result.Events)
	}
	score := w.Session.Score

	for i := 0; i < 120; i++ {
		w.Step()
		if !w.Collectibles[0].Collected {
			t.Fatalf("coin 1 reverted to uncollected at tick %d", i)
		}
	}
	if w.Session.Score < score {
		t.Errorf("Score decreased from %d to %d", score, w.Session.Score)
	}
}

func TestScoreAndLivesChangeOnlyThroughEvents(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	keys := []core.KeyCode{core.KeyArrowLeft, core.KeyArrowRight, core.KeySpace}

	w := NewWorld()
	w.Start()

	for tick := 0; tick < 3000 && w.Phase() == core.PhaseRunning; tick++ {
		k := keys[rng.Intn(len(keys))]
		if rng.Intn(2) == 0 {
			w.OnKeyDown(k)
		} else {
			w.OnKeyUp(k)
		}

		before := w.State()
		result := w.Step()
		after := result.State

		kills, collects, damages := 0, 0, 0
		for _, ev := range result.Events {
			switch ev.Kind {
			case core.EventKill:
				kills++
			case core.EventCollect:
				collects++
			case core.EventDamage:
				damages++
			}
		}

		if after.Score != before.Score+kills*KillPoints+collects*CollectPoints {
			t.Fatalf("tick %d: score %d -> %d with %d kills and %d collects", tick, before.Score, after.Score, kills, collects)
		}
		if after.Lives != max(0, before.Lives-damages) {
			t.Fatalf("tick %d: lives %d -> %d with %d damages", tick, before.Lives, after.Lives, damages)
		}

		if w.Actor.X < 0 || w.Actor.X > ArenaWidth-ActorSize {
			t.Fatalf("tick %d: actor X = %f out of bounds", tick, w.Actor.X)
		}
		if w.Actor.Y < 0 || w.Actor.Y > ArenaHeight-ActorSize {
			t.Fatalf("tick %d: actor Y = %f out of bounds", tick, w.Actor.Y)
		}
	}
}

func TestWalkingIntoHostileOnLastLife(t *testing.T) {
	w := NewWorld()
	w.Start()
	w.Session.Lives = 1
	w.OnKeyDown(core.KeyArrowRight)

	var events []core.Event
	for i := 0; i < 300 && w.Phase() == core.PhaseRunning; i++ {
		events = append(events, w.Step().Events...)
	}

	if w.Phase() != core.PhaseOver {
		t.Fatalf("Phase = %v after walking into hostile 1, expected over", w.Phase())
	}
	expected := []core.Event{
		{Kind: core.EventDamage, EntityID: 1},
		{Kind: core.EventGameOver},
	}
	if !reflect.DeepEqual(events, expected) {
		t.Errorf("events = %v, expected %v", events, expected)
	}
	if w.Session.Lives != 0 {
		t.Errorf("Lives = %d, expected 0", w.Session.Lives)
	}
}

func TestDeterminism(t *testing.T) {
	run := func() Snapshot {
		w := NewWorld()
		w.Start()
		for i := 0; i < 600; i++ {
			switch i % 90 {
			case 0:
				w.OnKeyDown(core.KeyD)
			case 30:
				w.OnKeyDown(core.KeyW)
			case 35:
				w.OnKeyUp(core.KeyW)
			case 60:
				w.OnKeyUp(core.KeyD)
				w.OnKeyDown(core.KeyA)
			case 89:
				w.OnKeyUp(core.KeyA)
			}
			w.Step()
		}
		return w.Snapshot()
	}

	a, b := run(), run()
	if !reflect.DeepEqual(a, b) {
		t.Errorf("identical inputs produced different snapshots:\n%+v\n%+v", a, b)
	}
}
