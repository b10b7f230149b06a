// Package sound synthesises the game's sound effects and music and plays
// them through ebiten's audio context.
package sound

import (
	"encoding/binary"
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/younwookim/pollo/internal/domain/entity"
)

// SampleRate is the playback rate of every rendered sound.
const SampleRate = 44100

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

type oscillator struct {
	freq     float64
	slide    float64 // frequency change per second
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
	rng      *rand.Rand
}

// NewOscillator creates a streamer producing duration of one wave.
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return newSlide(freq, 0, duration, wave, rate)
}

// newSlide is an oscillator whose frequency moves linearly by slide Hz/s.
func newSlide(freq, slide float64, duration time.Duration, wave WaveType, rate beep.SampleRate) *oscillator {
	return &oscillator{
		freq:     freq,
		slide:    slide,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
		rng:      rand.New(rand.NewSource(int64(freq) + 1)),
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		case WaveNoise:
			val = o.rng.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		freq := o.freq + o.slide*float64(o.position)/float64(o.rate)
		o.phase += freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies a linear attack and release to a stream
type envelope struct {
	streamer beep.Streamer
	position int
	attack   int
	release  int
	total    int
}

// NewEnvelope shapes s with an attack and a release inside duration.
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		streamer: s,
		attack:   rate.N(attack),
		release:  rate.N(release),
		total:    rate.N(duration),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.total {
			return i, i > 0
		}

		vol := 1.0
		if e.position < e.attack && e.attack > 0 {
			vol = float64(e.position) / float64(e.attack)
		}
		if start := e.total - e.release; e.position >= start && e.release > 0 {
			vol = float64(e.total-e.position) / float64(e.release)
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}

	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume scales a stream linearly. math.Log2(0) is -Inf, so zero is silent.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// tone is a shaped note with short attack and release.
func tone(freq float64, d time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	edge := d / 8
	return NewEnvelope(NewOscillator(freq, d, wave, rate), d, edge, edge, rate)
}

func rest(d time.Duration, rate beep.SampleRate) beep.Streamer {
	return beep.Silence(rate.N(d))
}

// melody plays notes back to back, each lasting step. Zero is a rest.
func melody(notes []float64, step time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	parts := make([]beep.Streamer, 0, len(notes))
	for _, f := range notes {
		if f == 0 {
			parts = append(parts, rest(step, rate))
			continue
		}
		parts = append(parts, tone(f, step, wave, rate))
	}
	return beep.Seq(parts...)
}

// Looping reports whether a sound repeats until stopped.
func Looping(s entity.Sound) bool {
	switch s {
	case entity.SoundBackgroundMusic, entity.SoundLongIdle:
		return true
	}
	return false
}

// Recipe returns the streamer for one sound.
func Recipe(s entity.Sound, rate beep.SampleRate) beep.Streamer {
	ms := time.Millisecond
	switch s {
	case entity.SoundBackgroundMusic:
		bass := melody([]float64{110, 0, 110, 0, 147, 0, 131, 0, 110, 0, 110, 0, 165, 0, 147, 0}, 150*ms, WaveSquare, rate)
		lead := melody([]float64{440, 494, 523, 0, 587, 523, 494, 0, 440, 0, 392, 440, 494, 0, 440, 0}, 150*ms, WaveSine, rate)
		return newVolume(beep.Mix(newVolume(bass, 0.4), newVolume(lead, 0.3)), 0.6)
	case entity.SoundGameStart:
		return newVolume(melody([]float64{523, 659, 784, 1047}, 90*ms, WaveSquare, rate), 0.4)
	case entity.SoundLongIdle:
		snore := NewEnvelope(newSlide(90, -30, 900*ms, WaveSaw, rate), 900*ms, 300*ms, 400*ms, rate)
		return beep.Seq(newVolume(snore, 0.3), rest(700*ms, rate))
	case entity.SoundWalk:
		step := NewEnvelope(NewOscillator(0, 40*ms, WaveNoise, rate), 40*ms, 2*ms, 30*ms, rate)
		return beep.Seq(newVolume(step, 0.15), rest(120*ms, rate))
	case entity.SoundJump:
		return newVolume(NewEnvelope(newSlide(300, 1800, 180*ms, WaveSquare, rate), 180*ms, 5*ms, 60*ms, rate), 0.3)
	case entity.SoundHurt:
		return newVolume(NewEnvelope(newSlide(400, -900, 250*ms, WaveSaw, rate), 250*ms, 5*ms, 80*ms, rate), 0.4)
	case entity.SoundDead:
		return newVolume(melody([]float64{392, 370, 349, 330, 0, 262}, 200*ms, WaveSquare, rate), 0.4)
	case entity.SoundEnemyDead:
		squawk := NewEnvelope(newSlide(900, -2400, 200*ms, WaveSquare, rate), 200*ms, 2*ms, 100*ms, rate)
		return newVolume(squawk, 0.3)
	case entity.SoundEndbossAttack:
		roar := beep.Mix(
			newVolume(NewEnvelope(NewOscillator(0, 600*ms, WaveNoise, rate), 600*ms, 50*ms, 300*ms, rate), 0.3),
			newVolume(NewEnvelope(newSlide(80, -40, 600*ms, WaveSaw, rate), 600*ms, 50*ms, 300*ms, rate), 0.5),
		)
		return newVolume(roar, 0.6)
	case entity.SoundCoin:
		return newVolume(beep.Seq(tone(988, 70*ms, WaveSquare, rate), tone(1319, 180*ms, WaveSquare, rate)), 0.3)
	case entity.SoundBottleCollect:
		return newVolume(beep.Seq(tone(660, 60*ms, WaveSine, rate), tone(880, 90*ms, WaveSine, rate)), 0.4)
	case entity.SoundBottleHit:
		crash := NewEnvelope(NewOscillator(0, 300*ms, WaveNoise, rate), 300*ms, 1*ms, 250*ms, rate)
		ping := NewEnvelope(NewOscillator(2400, 120*ms, WaveSine, rate), 120*ms, 1*ms, 100*ms, rate)
		return beep.Mix(newVolume(crash, 0.4), newVolume(ping, 0.2))
	}
	return beep.Silence(0)
}

// Render synthesises s into signed 16-bit little-endian stereo PCM.
func Render(s entity.Sound, rate int) []byte {
	return encode(Recipe(s, beep.SampleRate(rate)))
}

func encode(st beep.Streamer) []byte {
	var out []byte
	buf := make([][2]float64, 512)
	for {
		n, ok := st.Stream(buf)
		for _, frame := range buf[:n] {
			for _, v := range frame {
				out = binary.LittleEndian.AppendUint16(out, uint16(toInt16(v)))
			}
		}
		if !ok || n == 0 {
			return out
		}
	}
}

func toInt16(v float64) int16 {
	if v > 1 {
		v = 1
	}
	if v < -1 {
		v = -1
	}
	return int16(v * math.MaxInt16)
}
