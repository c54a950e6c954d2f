// Package script replays a timeline of key presses against a world
// without a terminal. Runs are deterministic, so a script always produces
// the same final snapshot.
package script

import (
	"errors"
	"fmt"
	"os"
	"slices"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/duck-arcade/internal/core"
	"github.com/vovakirdan/duck-arcade/internal/games/duck"
)

// KeyEvent presses or releases one key before the given tick is simulated.
// Exactly one of Down and Up is set.
type KeyEvent struct {
	Tick int          `yaml:"tick"`
	Down core.KeyCode `yaml:"down,omitempty"`
	Up   core.KeyCode `yaml:"up,omitempty"`
}

// Script is a key timeline and the number of ticks to simulate.
type Script struct {
	Ticks  int        `yaml:"ticks"`
	Events []KeyEvent `yaml:"events"`
}

// Load reads and validates a script file.
func Load(path string) (Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Script{}, fmt.Errorf("script: failed to read %s: %w", path, err)
	}
	s, err := Parse(data)
	if err != nil {
		return Script{}, fmt.Errorf("script: %s: %w", path, err)
	}
	return s, nil
}

// Parse decodes and validates a YAML script.
func Parse(data []byte) (Script, error) {
	var s Script
	if err := yaml.Unmarshal(data, &s); err != nil {
		return Script{}, err
	}
	if err := s.Validate(); err != nil {
		return Script{}, err
	}
	return s, nil
}

// Validate reports the first malformed event.
func (s Script) Validate() error {
	if s.Ticks < 0 {
		return errors.New("ticks must not be negative")
	}
	for i, ev := range s.Events {
		if ev.Tick < 0 {
			return fmt.Errorf("event %d: tick must not be negative", i)
		}
		if (ev.Down == "") == (ev.Up == "") {
			return fmt.Errorf("event %d: exactly one of down and up must be set", i)
		}
		code := ev.Down + ev.Up
		if core.ActionFor(code) == core.ActionNone {
			return fmt.Errorf("event %d: unknown key %q", i, code)
		}
	}
	return nil
}

// Play starts w and simulates up to s.Ticks ticks. Before tick i is stepped,
// events with Tick == i are forwarded in file order. Play stops early when
// the session ends and returns the final snapshot.
func Play(w *duck.World, s Script) duck.Snapshot {
	events := slices.Clone(s.Events)
	slices.SortStableFunc(events, func(a, b KeyEvent) int {
		return a.Tick - b.Tick
	})

	w.Start()
	next := 0
	for tick := 0; tick < s.Ticks; tick++ {
		for next < len(events) && events[next].Tick <= tick {
			ev := events[next]
			if ev.Down != "" {
				w.OnKeyDown(ev.Down)
			} else {
				w.OnKeyUp(ev.Up)
			}
			next++
		}

		w.Step()
		if w.Phase() != core.PhaseRunning {
			break
		}
	}
	return w.Snapshot()
}
