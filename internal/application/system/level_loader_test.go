package system

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/pollo/internal/domain/entity"
	"github.com/younwookim/pollo/internal/infrastructure/config"
)

const configDir = "../../../cmd/game/configs"

func loadTestConfigs(t *testing.T, level string) (*config.LevelConfig, *config.EntitiesConfig) {
	t.Helper()
	loader := config.NewLoader(configDir)
	ents, err := loader.LoadEntities()
	require.NoError(t, err)
	lvl, err := loader.LoadLevel(level)
	require.NoError(t, err)
	return lvl, ents
}

func TestBuildLevel(t *testing.T) {
	tests := []struct {
		name        string
		enemies     int
		backgrounds int
		endX        float64
	}{
		{"level1", 4, 5 * 4, 2160},
		{"level2", 10, 8 * 4, 4320},
		{"level3", 15, 12 * 4, 7200},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lvl, ents := loadTestConfigs(t, tt.name)

			level, err := BuildLevel(lvl, ents, testRNG())
			require.NoError(t, err)

			assert.Len(t, level.Enemies, tt.enemies)
			assert.Len(t, level.Backgrounds, tt.backgrounds)
			assert.Equal(t, tt.endX, level.EndX)
			require.NotNil(t, level.Endboss)
			assert.Equal(t, tt.endX, level.Endboss.X)
			assert.NotZero(t, level.CountCollectibles(entity.KindBottle))
			assert.NotZero(t, level.CountCollectibles(entity.KindCoin))

			for _, e := range level.Enemies {
				assert.GreaterOrEqual(t, e.X, 400.0)
				assert.Greater(t, e.Speed, 0.0)
				assert.True(t, e.Walking)
			}
			for _, c := range level.Collectibles {
				assert.NotEmpty(t, c.Anim.Frame())
			}
		})
	}
}

func TestBuildLevel_Deterministic(t *testing.T) {
	lvl, ents := loadTestConfigs(t, "level2")

	a, err := BuildLevel(lvl, ents, rand.New(rand.NewSource(7)))
	require.NoError(t, err)
	b, err := BuildLevel(lvl, ents, rand.New(rand.NewSource(7)))
	require.NoError(t, err)

	require.Len(t, b.Enemies, len(a.Enemies))
	for i := range a.Enemies {
		assert.Equal(t, a.Enemies[i].X, b.Enemies[i].X)
		assert.Equal(t, a.Enemies[i].Speed, b.Enemies[i].Speed)
	}
	for i := range a.Collectibles {
		assert.Equal(t, a.Collectibles[i].X, b.Collectibles[i].X)
		assert.Equal(t, a.Collectibles[i].Y, b.Collectibles[i].Y)
	}
}

func TestBuildLevel_Backgrounds(t *testing.T) {
	lvl, ents := loadTestConfigs(t, "level1")

	level, err := BuildLevel(lvl, ents, testRNG())
	require.NoError(t, err)

	first := level.Backgrounds[0]
	assert.Equal(t, -720.0, first.X)
	assert.Equal(t, ents.Background.Air, first.Anim.Frame())

	// group -1 uses the second variant, group 0 the first
	assert.Equal(t, ents.Background.Layers[0][1], level.Backgrounds[1].Anim.Frame())
	assert.Equal(t, ents.Background.Layers[0][0], level.Backgrounds[5].Anim.Frame())
	assert.Equal(t, 0.0, level.Backgrounds[5].X)
}

func TestBuildLevel_Placed(t *testing.T) {
	lvl, ents := loadTestConfigs(t, "training")

	level, err := BuildLevel(lvl, ents, testRNG())
	require.NoError(t, err)

	assert.Equal(t, "Training Ground", level.Name)
	assert.Len(t, level.Enemies, 2)
	assert.Len(t, level.Clouds, 2)
	assert.Equal(t, 4, level.CountCollectibles(entity.KindBottle))
	assert.Equal(t, 2, level.CountCollectibles(entity.KindCoin))

	for _, c := range level.Collectibles {
		if c.Kind == entity.KindBottle {
			assert.Equal(t, 340.0, c.Y)
		}
	}
}

func TestBuildLevel_UnknownType(t *testing.T) {
	_, ents := loadTestConfigs(t, "level1")

	tests := []struct {
		name string
		lvl  *config.LevelConfig
	}{
		{"enemy", &config.LevelConfig{Enemies: []config.SpawnGroupConfig{{Type: "dragon", Count: 1}}}},
		{"pickup", &config.LevelConfig{Pickups: []config.SpawnGroupConfig{{Type: "gem", Count: 1}}}},
		{"placed", &config.LevelConfig{Placed: []config.PlacementConfig{{Kind: "dragon"}}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := BuildLevel(tt.lvl, ents, testRNG())
			assert.Error(t, err)
		})
	}
}

func TestNewCharacter(t *testing.T) {
	_, ents := loadTestConfigs(t, "level1")

	c := NewCharacter(ents)
	assert.Equal(t, 100.0, c.X)
	assert.Equal(t, 10.0, c.Speed)
	assert.Equal(t, 100, c.Energy)
	assert.Len(t, c.Anims.Idle, 10)
	assert.Equal(t, entity.Rect{X: 115, Y: 230, W: 115, H: 180}, c.Hitbox())
}
