package sound

import (
	"bytes"
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2/audio"

	"github.com/younwookim/pollo/internal/domain/entity"
)

// player is the part of *audio.Player the sink drives.
type player interface {
	Play()
	Pause()
	Rewind() error
	IsPlaying() bool
	SetVolume(volume float64)
}

// Sink plays synthesised sounds through an ebiten audio context.
// It implements entity.SoundSink and must be used from the game goroutine.
type Sink struct {
	players map[entity.Sound]player
	muted   bool
}

// NewSink renders every sound and creates one player per sound.
func NewSink(ctx *audio.Context, volume float64) (*Sink, error) {
	players := make(map[entity.Sound]player, len(entity.Sounds))
	for _, s := range entity.Sounds {
		pcm := Render(s, ctx.SampleRate())
		if !Looping(s) {
			p := ctx.NewPlayerFromBytes(pcm)
			p.SetVolume(volume)
			players[s] = p
			continue
		}
		loop := audio.NewInfiniteLoop(bytes.NewReader(pcm), int64(len(pcm)))
		p, err := ctx.NewPlayer(loop)
		if err != nil {
			return nil, fmt.Errorf("failed to create player for %s: %w", s, err)
		}
		p.SetVolume(volume)
		players[s] = p
	}
	return newSink(players), nil
}

func newSink(players map[entity.Sound]player) *Sink {
	return &Sink{players: players}
}

// PlayOne starts s unless it is already playing or the sink is muted.
// One-shot sounds restart from the beginning.
func (k *Sink) PlayOne(s entity.Sound) {
	if k.muted {
		return
	}
	p, ok := k.players[s]
	if !ok || p.IsPlaying() {
		return
	}
	if !Looping(s) {
		if err := p.Rewind(); err != nil {
			log.Printf("sound: rewind %s: %v", s, err)
			return
		}
	}
	p.Play()
}

// StopOne pauses s. Looping sounds resume where they stopped.
func (k *Sink) StopOne(s entity.Sound) {
	if p, ok := k.players[s]; ok && p.IsPlaying() {
		p.Pause()
	}
}

// StopAll pauses every sound
func (k *Sink) StopAll() {
	for _, p := range k.players {
		if p.IsPlaying() {
			p.Pause()
		}
	}
}

// SetMuted toggles playback. Muting stops everything that is playing.
func (k *Sink) SetMuted(muted bool) {
	k.muted = muted
	if muted {
		k.StopAll()
	}
}

// Muted reports whether playback is dropped
func (k *Sink) Muted() bool {
	return k.muted
}

var _ entity.SoundSink = (*Sink)(nil)
