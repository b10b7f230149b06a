package world

import (
	"fmt"
	"math/rand"

	"github.com/younwookim/pollo/internal/application/system"
	"github.com/younwookim/pollo/internal/domain/entity"
	"github.com/younwookim/pollo/internal/infrastructure/config"
)

// Build creates a fresh world for a level. Equal seeds build equal
// levels, so a session can be replayed from its seed and inputs.
func Build(cfg *config.GameConfig, lvl *config.LevelConfig, seed int64, sound entity.SoundSink, cb Callbacks) (*World, error) {
	rng := rand.New(rand.NewSource(seed))
	level, err := system.BuildLevel(lvl, cfg.Entities, rng)
	if err != nil {
		return nil, fmt.Errorf("failed to build level %s: %w", lvl.ID, err)
	}
	return New(cfg, level, system.NewCharacter(cfg.Entities), sound, cb), nil
}
