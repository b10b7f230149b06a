package main

import (
	"fmt"

	"github.com/younwookim/pollo/internal/application/replay"
	"github.com/younwookim/pollo/internal/application/system"
	"github.com/younwookim/pollo/internal/application/world"
	"github.com/younwookim/pollo/internal/domain/entity"
	"github.com/younwookim/pollo/internal/infrastructure/config"
)

// ReplayResult summarises a headless replay run
type ReplayResult struct {
	Level   string
	Seed    int64
	Frames  int
	Ticks   uint64
	Outcome world.Outcome
}

// RunReplay loads a recording and plays it back without a window.
func RunReplay(loader *config.Loader, cfg *config.GameConfig, filename string) (ReplayResult, error) {
	data, err := replay.LoadReplay(filename)
	if err != nil {
		return ReplayResult{}, err
	}
	return Replay(loader, cfg, *data)
}

// Replay rebuilds the recorded session from its seed and feeds the
// recorded inputs until they run out or the session ends.
func Replay(loader *config.Loader, cfg *config.GameConfig, data replay.ReplayData) (ReplayResult, error) {
	lvl, err := loader.LoadLevel(data.Level)
	if err != nil {
		return ReplayResult{}, fmt.Errorf("failed to load level %q: %w", data.Level, err)
	}

	w, err := world.Build(cfg, lvl, data.Seed, &entity.NopSink{}, world.Callbacks{})
	if err != nil {
		return ReplayResult{}, err
	}

	r := replay.NewReplayer(data)
	for !w.GameOver() {
		in, ok := r.GetInput()
		if !ok {
			break
		}
		w.Step(system.InputState{
			Left:  in.Left,
			Right: in.Right,
			Jump:  in.Jump,
			Throw: in.Throw,
		})
	}

	return ReplayResult{
		Level:   data.Level,
		Seed:    data.Seed,
		Frames:  r.CurrentFrame(),
		Ticks:   w.Ticks(),
		Outcome: w.Outcome(),
	}, nil
}
