package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/pollo/internal/application/replay"
	"github.com/younwookim/pollo/internal/application/world"
	"github.com/younwookim/pollo/internal/infrastructure/config"
)

func loadTestConfig(t *testing.T) (*config.Loader, *config.GameConfig) {
	t.Helper()
	loader := config.NewLoader("configs")
	cfg, err := loader.LoadAll()
	require.NoError(t, err)
	return loader, cfg
}

// walkAndThrow walks right and throws every 30 frames
func walkAndThrow(frames int) replay.ReplayData {
	data := replay.CreateTestReplayData(frames, "level1")
	for i := range data.Frames {
		data.Frames[i].R = true
		data.Frames[i].T = i%30 == 0
		data.Frames[i].J = i%45 == 0
	}
	return data
}

func TestReplay_Idle(t *testing.T) {
	loader, cfg := loadTestConfig(t)

	res, err := Replay(loader, cfg, replay.CreateTestReplayData(120, "level1"))
	require.NoError(t, err)

	assert.Equal(t, 120, res.Frames)
	assert.Equal(t, uint64(120), res.Ticks)
	assert.Equal(t, world.OutcomeNone, res.Outcome, "two seconds of idling cannot end a session")
}

func TestReplay_Deterministic(t *testing.T) {
	loader, cfg := loadTestConfig(t)
	data := walkAndThrow(600)

	first, err := Replay(loader, cfg, data)
	require.NoError(t, err)
	second, err := Replay(loader, cfg, data)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestReplay_UnknownLevel(t *testing.T) {
	loader, cfg := loadTestConfig(t)

	_, err := Replay(loader, cfg, replay.CreateTestReplayData(10, "nowhere"))
	assert.ErrorIs(t, err, config.ErrUnknownLevel)
}

func TestRunReplay_FromFile(t *testing.T) {
	loader, cfg := loadTestConfig(t)
	data := walkAndThrow(90)

	path := filepath.Join(t.TempDir(), "run.json")
	raw, err := json.Marshal(data)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, raw, 0o644))

	res, err := RunReplay(loader, cfg, path)
	require.NoError(t, err)

	want, err := Replay(loader, cfg, data)
	require.NoError(t, err)
	assert.Equal(t, want, res)
	assert.Equal(t, "level1", res.Level)
}

func TestRunReplay_MissingFile(t *testing.T) {
	loader, cfg := loadTestConfig(t)

	_, err := RunReplay(loader, cfg, filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}
