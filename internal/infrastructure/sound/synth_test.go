package sound

import (
	"encoding/binary"
	"testing"
	"time"

	"github.com/gopxl/beep"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/pollo/internal/domain/entity"
)

func drain(st beep.Streamer) [][2]float64 {
	var out [][2]float64
	buf := make([][2]float64, 100)
	for {
		n, ok := st.Stream(buf)
		out = append(out, buf[:n]...)
		if !ok || n == 0 {
			return out
		}
	}
}

func TestOscillator_Length(t *testing.T) {
	rate := beep.SampleRate(1000)
	for _, wave := range []WaveType{WaveSine, WaveSquare, WaveSaw, WaveNoise} {
		samples := drain(NewOscillator(100, 250*time.Millisecond, wave, rate))
		assert.Len(t, samples, 250)
		for _, s := range samples {
			assert.InDelta(t, 0, s[0], 1.0001)
			assert.Equal(t, s[0], s[1])
		}
	}
}

func TestOscillator_Square(t *testing.T) {
	rate := beep.SampleRate(1000)
	samples := drain(NewOscillator(250, 8*time.Millisecond, WaveSquare, rate))

	got := make([]float64, len(samples))
	for i, s := range samples {
		got[i] = s[0]
	}
	assert.Equal(t, []float64{1, 1, -1, -1, 1, 1, -1, -1}, got)
}

func TestEnvelope_Shape(t *testing.T) {
	rate := beep.SampleRate(1000)
	d := 100 * time.Millisecond
	samples := drain(NewEnvelope(NewOscillator(250, d, WaveSquare, rate), d, 10*time.Millisecond, 20*time.Millisecond, rate))

	require.Len(t, samples, 100)
	assert.Equal(t, 0.0, samples[0][0], "attack starts silent")
	assert.Equal(t, 1.0, abs(samples[50][0]), "sustain is full scale")
	assert.Less(t, abs(samples[99][0]), 0.1, "release fades out")
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

func TestRender_AllSounds(t *testing.T) {
	for _, s := range entity.Sounds {
		t.Run(s.String(), func(t *testing.T) {
			pcm := Render(s, 8000)
			require.NotEmpty(t, pcm)
			assert.Zero(t, len(pcm)%4, "16-bit stereo frames")
		})
	}
}

func TestRender_Duration(t *testing.T) {
	pcm := Render(entity.SoundJump, 8000)
	frames := len(pcm) / 4
	assert.Equal(t, beep.SampleRate(8000).N(180*time.Millisecond), frames)
}

func TestEncode_Clamps(t *testing.T) {
	pcm := encode(&constStreamer{v: 3, n: 2})
	require.Len(t, pcm, 8)
	assert.Equal(t, int16(32767), int16(binary.LittleEndian.Uint16(pcm[0:])))

	pcm = encode(&constStreamer{v: -3, n: 1})
	assert.Equal(t, int16(-32767), int16(binary.LittleEndian.Uint16(pcm[0:])))
}

type constStreamer struct {
	v float64
	n int
}

func (c *constStreamer) Stream(samples [][2]float64) (int, bool) {
	if c.n == 0 {
		return 0, false
	}
	i := 0
	for ; i < len(samples) && c.n > 0; i++ {
		samples[i] = [2]float64{c.v, c.v}
		c.n--
	}
	return i, true
}

func (c *constStreamer) Err() error { return nil }

func TestLooping(t *testing.T) {
	assert.True(t, Looping(entity.SoundBackgroundMusic))
	assert.True(t, Looping(entity.SoundLongIdle))
	assert.False(t, Looping(entity.SoundCoin))
}
