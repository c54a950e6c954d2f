package script

import (
	"math"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/vovakirdan/duck-arcade/internal/core"
	"github.com/vovakirdan/duck-arcade/internal/games/duck"
)

func TestParse(t *testing.T) {
	data := []byte(`
ticks: 120
events:
  - tick: 0
    down: ArrowRight
  - tick: 30
    up: ArrowRight
  - tick: 30
    down: Space
`)
	s, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}
	if s.Ticks != 120 {
		t.Errorf("Ticks = %d, expected 120", s.Ticks)
	}
	expected := []KeyEvent{
		{Tick: 0, Down: core.KeyArrowRight},
		{Tick: 30, Up: core.KeyArrowRight},
		{Tick: 30, Down: core.KeySpace},
	}
	if !reflect.DeepEqual(s.Events, expected) {
		t.Errorf("Events = %+v, expected %+v", s.Events, expected)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		script  Script
		wantErr bool
	}{
		{"empty", Script{}, false},
		{"negative ticks", Script{Ticks: -1}, true},
		{"negative event tick", Script{Ticks: 10, Events: []KeyEvent{{Tick: -1, Down: core.KeyA}}}, true},
		{"neither down nor up", Script{Ticks: 10, Events: []KeyEvent{{Tick: 1}}}, true},
		{"both down and up", Script{Ticks: 10, Events: []KeyEvent{{Tick: 1, Down: core.KeyA, Up: core.KeyA}}}, true},
		{"unknown key", Script{Ticks: 10, Events: []KeyEvent{{Tick: 1, Down: "KeyZ"}}}, true},
		{"valid", Script{Ticks: 10, Events: []KeyEvent{{Tick: 1, Down: core.KeyW}, {Tick: 2, Up: core.KeyW}}}, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.script.Validate()
			if (err != nil) != tc.wantErr {
				t.Errorf("Validate() = %v, wantErr %v", err, tc.wantErr)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()

	good := filepath.Join(dir, "walk.yaml")
	if err := os.WriteFile(good, []byte("ticks: 5\nevents:\n  - tick: 0\n    down: KeyD\n"), 0o600); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}
	s, err := Load(good)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if s.Ticks != 5 || len(s.Events) != 1 {
		t.Errorf("Load() = %+v", s)
	}

	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("Load() of a missing file should fail")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("ticks: 5\nevents:\n  - tick: 0\n    down: Escape\n"), 0o600); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}
	if _, err := Load(bad); err == nil {
		t.Error("Load() with an unknown key should fail")
	}
}

func TestPlayMovement(t *testing.T) {
	tests := []struct {
		name   string
		script Script
		wantX  float64
	}{
		{
			name:   "no input",
			script: Script{Ticks: 10},
			wantX:  duck.SpawnX,
		},
		{
			name:   "hold right",
			script: Script{Ticks: 10, Events: []KeyEvent{{Tick: 0, Down: core.KeyArrowRight}}},
			wantX:  duck.SpawnX + 10*duck.MoveSpeed,
		},
		{
			name: "press and release",
			script: Script{Ticks: 10, Events: []KeyEvent{
				{Tick: 0, Down: core.KeyD},
				{Tick: 5, Up: core.KeyD},
			}},
			wantX: duck.SpawnX + 5*duck.MoveSpeed,
		},
		{
			name: "events sorted by tick",
			script: Script{Ticks: 10, Events: []KeyEvent{
				{Tick: 5, Up: core.KeyA},
				{Tick: 0, Down: core.KeyA},
			}},
			wantX: duck.SpawnX - 5*duck.MoveSpeed,
		},
		{
			name: "same tick keeps file order",
			script: Script{Ticks: 10, Events: []KeyEvent{
				{Tick: 0, Down: core.KeyArrowRight},
				{Tick: 0, Up: core.KeyArrowRight},
			}},
			wantX: duck.SpawnX,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			snap := Play(duck.NewWorld(), tc.script)
			if snap.Actor.X != tc.wantX {
				t.Errorf("Actor.X = %v, expected %v", snap.Actor.X, tc.wantX)
			}
			if snap.Tick != uint64(tc.script.Ticks) {
				t.Errorf("Tick = %d, expected %d", snap.Tick, tc.script.Ticks)
			}
		})
	}
}

func TestPlayJump(t *testing.T) {
	snap := Play(duck.NewWorld(), Script{Ticks: 1, Events: []KeyEvent{{Tick: 0, Down: core.KeySpace}}})

	if math.Abs(snap.Actor.VY-(duck.JumpImpulse+duck.Gravity)) > 1e-9 {
		t.Errorf("Actor.VY = %v, expected %v", snap.Actor.VY, duck.JumpImpulse+duck.Gravity)
	}
	if snap.Actor.Grounded {
		t.Error("actor should be airborne after jumping")
	}
}

func TestPlayStopsOnlyAtGameOver(t *testing.T) {
	scripts := map[string]Script{
		"idle":       {Ticks: 3000},
		"hold right": {Ticks: 3000, Events: []KeyEvent{{Tick: 0, Down: core.KeyArrowRight}}},
		"hold left and jump": {Ticks: 3000, Events: []KeyEvent{
			{Tick: 0, Down: core.KeyArrowLeft},
			{Tick: 0, Down: core.KeySpace},
		}},
	}

	for name, s := range scripts {
		t.Run(name, func(t *testing.T) {
			snap := Play(duck.NewWorld(), s)

			over := snap.Phase == core.PhaseOver
			early := snap.Tick < uint64(s.Ticks)
			if over != early {
				t.Errorf("Phase = %v at tick %d of %d", snap.Phase, snap.Tick, s.Ticks)
			}
			if over && snap.Lives != 0 {
				t.Errorf("Lives = %d at game over, expected 0", snap.Lives)
			}
		})
	}
}

func TestPlayIsDeterministic(t *testing.T) {
	s := Script{Ticks: 600, Events: []KeyEvent{
		{Tick: 0, Down: core.KeyArrowRight},
		{Tick: 40, Down: core.KeySpace},
		{Tick: 45, Up: core.KeySpace},
		{Tick: 200, Up: core.KeyArrowRight},
		{Tick: 200, Down: core.KeyArrowLeft},
	}}

	first := Play(duck.NewWorld(), s)
	second := Play(duck.NewWorld(), s)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("Play() differs between runs:\n%+v\n%+v", first, second)
	}

	// Replaying on a used world restarts it
	w := duck.NewWorld()
	Play(w, Script{Ticks: 50, Events: []KeyEvent{{Tick: 0, Down: core.KeyA}}})
	if again := Play(w, s); !reflect.DeepEqual(again, first) {
		t.Error("Play() on a used world should match a fresh run")
	}
}
