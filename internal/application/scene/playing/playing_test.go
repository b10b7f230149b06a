package playing

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/pollo/internal/application/replay"
	"github.com/younwookim/pollo/internal/application/scene"
	"github.com/younwookim/pollo/internal/application/state"
	"github.com/younwookim/pollo/internal/application/system"
	"github.com/younwookim/pollo/internal/application/world"
	"github.com/younwookim/pollo/internal/domain/entity"
	"github.com/younwookim/pollo/internal/infrastructure/config"
)

const configDir = "../../../../cmd/game/configs"

// stubScene is returned by the fake director
type stubScene struct{ name string }

func (s *stubScene) Update(float64) (scene.Scene, error) { return nil, nil }
func (s *stubScene) Draw(*ebiten.Image)                  {}
func (s *stubScene) OnEnter()                            {}
func (s *stubScene) OnExit()                             {}

// fakeDirector records the requested transitions
type fakeDirector struct {
	results []scene.Result
	played  []string
}

func (d *fakeDirector) Title() scene.Scene { return &stubScene{name: "title"} }

func (d *fakeDirector) Play(level string) (scene.Scene, error) {
	d.played = append(d.played, level)
	return &stubScene{name: "play"}, nil
}

func (d *fakeDirector) Result(r scene.Result) scene.Scene {
	d.results = append(d.results, r)
	return &stubScene{name: "result"}
}

// keys is a controllable keyboard
type keys struct {
	held map[ebiten.Key]bool
	just map[ebiten.Key]bool
}

func newKeys() *keys {
	return &keys{held: map[ebiten.Key]bool{}, just: map[ebiten.Key]bool{}}
}

func (k *keys) pressed(key ebiten.Key) bool     { return k.held[key] }
func (k *keys) justPressed(key ebiten.Key) bool { return k.just[key] }

func newTestPlaying(t *testing.T, recordPath string) (*Playing, *fakeDirector, *keys) {
	t.Helper()
	loader := config.NewLoader(configDir)
	cfg, err := loader.LoadAll()
	require.NoError(t, err)
	lvl, err := loader.LoadLevel("level1")
	require.NoError(t, err)

	k := newKeys()
	d := &fakeDirector{}
	p, err := New(d, cfg, lvl, Options{
		Sound:      &entity.NopSink{},
		Input:      system.NewInputSystemWith(k.pressed),
		Seed:       42,
		RecordPath: recordPath,
	})
	require.NoError(t, err)
	p.justPressed = k.justPressed
	return p, d, k
}

func TestPlaying_ImplementsScene(t *testing.T) {
	// Compile-time check that Playing implements scene.Scene
	var _ scene.Scene = (*Playing)(nil)
}

func TestPlaying_Update_StepsWorld(t *testing.T) {
	p, _, k := newTestPlaying(t, "")
	k.held[ebiten.KeyArrowRight] = true

	next, err := p.Update(1.0 / 60.0)

	assert.NoError(t, err)
	assert.Nil(t, next, "Should return nil when continuing to play")
	assert.Equal(t, uint64(1), p.World().Ticks())
	assert.Equal(t, 110.0, p.World().Character.X)
}

func TestPlaying_Pause(t *testing.T) {
	p, _, k := newTestPlaying(t, "")

	k.just[ebiten.KeyEscape] = true
	_, _ = p.Update(1.0 / 60.0)
	assert.Equal(t, state.StatePaused, p.State())

	k.just[ebiten.KeyEscape] = false
	for i := 0; i < 5; i++ {
		_, _ = p.Update(1.0 / 60.0)
	}
	assert.Equal(t, uint64(0), p.World().Ticks(), "paused world does not advance")

	k.just[ebiten.KeyEscape] = true
	_, _ = p.Update(1.0 / 60.0)
	assert.Equal(t, state.StatePlaying, p.State())
}

func TestPlaying_Mute(t *testing.T) {
	p, _, k := newTestPlaying(t, "")

	k.just[ebiten.KeyM] = true
	_, _ = p.Update(1.0 / 60.0)
	assert.True(t, p.sound.Muted())

	_, _ = p.Update(1.0 / 60.0)
	assert.False(t, p.sound.Muted())
}

func TestPlaying_LostGoesToResult(t *testing.T) {
	p, d, _ := newTestPlaying(t, "")
	p.World().Character.Hit(0, 100)

	next, err := p.Update(1.0 / 60.0)

	require.NoError(t, err)
	require.NotNil(t, next)
	assert.Equal(t, state.StateLost, p.State())
	require.Len(t, d.results, 1)
	assert.Equal(t, world.OutcomeLost, d.results[0].Outcome)
	assert.Equal(t, "level1", d.results[0].Level)
	assert.Equal(t, "level2", d.results[0].Next)
}

func TestPlaying_WithRecorder(t *testing.T) {
	path := filepath.Join(t.TempDir(), "replay.json")
	p, _, k := newTestPlaying(t, path)
	require.NotNil(t, p.recorder)

	k.held[ebiten.KeyArrowRight] = true
	_, err := p.Update(1.0 / 60.0)
	require.NoError(t, err)
	k.held[ebiten.KeyD] = true
	_, err = p.Update(1.0 / 60.0)
	require.NoError(t, err)

	assert.Equal(t, 2, p.recorder.FrameCount())

	p.OnExit()
	_, err = os.Stat(path)
	require.NoError(t, err)

	data, err := replay.LoadReplay(path)
	require.NoError(t, err)
	assert.Equal(t, int64(42), data.Seed)
	assert.Equal(t, "level1", data.Level)
	require.Len(t, data.Frames, 2)
	assert.True(t, data.Frames[1].T)
	assert.True(t, p.World().GameOver(), "leaving the scene stops the world")
}

func TestRecorder_StopAndIsRecording(t *testing.T) {
	r := NewRecorder(12345, "test")

	assert.True(t, r.IsRecording())

	r.Stop()

	assert.False(t, r.IsRecording())
}

func TestRecorder_DoesNotRecordWhenStopped(t *testing.T) {
	r := NewRecorder(12345, "test")
	r.Stop()

	r.RecordFrame(system.InputState{Left: true})

	assert.Equal(t, 0, r.FrameCount())
}

func TestRecorder_SaveEmpty(t *testing.T) {
	r := NewRecorder(1, "test")
	assert.Error(t, r.Save(filepath.Join(t.TempDir(), "empty.json")))
}
