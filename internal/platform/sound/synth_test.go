package sound

import (
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/uffo/internal/core"
)

// drain reads s to the end and returns the number of samples and the peak.
func drain(t *testing.T, s beep.Streamer) (int, float64) {
	t.Helper()
	buf := make([][2]float64, 512)
	total, peak := 0, 0.0
	for i := 0; i < 10000; i++ {
		n, ok := s.Stream(buf)
		for _, sm := range buf[:n] {
			peak = math.Max(peak, math.Abs(sm[0]))
			require.Equal(t, sm[0], sm[1], "effects are mono")
		}
		total += n
		if !ok {
			return total, peak
		}
	}
	t.Fatal("streamer never finished")
	return 0, 0
}

func TestEffectsAreFinite(t *testing.T) {
	rate := beep.SampleRate(44100)

	tests := []struct {
		effect Effect
		length time.Duration
	}{
		{EffectJump, 120 * time.Millisecond},
		{EffectPoint, 180 * time.Millisecond},
		{EffectDie, 450 * time.Millisecond},
		{EffectMilestone, 360 * time.Millisecond},
	}

	for _, tt := range tests {
		t.Run(tt.effect.String(), func(t *testing.T) {
			s := NewEffect(tt.effect, rate)
			require.NotNil(t, s)

			n, peak := drain(t, s)
			assert.InDelta(t, rate.N(tt.length), n, 3)
			assert.Greater(t, peak, 0.0)
			assert.LessOrEqual(t, peak, 1.0)
		})
	}
}

func TestUnknownEffect(t *testing.T) {
	assert.Nil(t, NewEffect(Effect(99), beep.SampleRate(44100)))
	assert.Equal(t, "unknown", Effect(99).String())
}

func TestHumNeverEnds(t *testing.T) {
	s := NewHum(beep.SampleRate(8000))
	buf := make([][2]float64, 1024)
	for i := 0; i < 100; i++ {
		n, ok := s.Stream(buf)
		require.True(t, ok)
		require.Equal(t, len(buf), n)
	}
}

func TestEnvelope(t *testing.T) {
	assert.Equal(t, 0.0, envelope(0, 100, 10))
	assert.Equal(t, 0.5, envelope(5, 100, 10))
	assert.Equal(t, 1.0, envelope(50, 100, 10))
	assert.Equal(t, 0.1, envelope(99, 100, 10))
	assert.Equal(t, 1.0, envelope(0, 100, 0))
}

func TestEffectFor(t *testing.T) {
	tests := []struct {
		kind   core.EventKind
		effect Effect
		ok     bool
	}{
		{core.EventJump, EffectJump, true},
		{core.EventScore, EffectPoint, true},
		{core.EventCrash, EffectDie, true},
		{core.EventMilestone, EffectMilestone, true},
		{core.EventStarted, 0, false},
		{core.EventHighScore, 0, false},
	}

	for _, tt := range tests {
		e, ok := EffectFor(tt.kind)
		assert.Equal(t, tt.ok, ok, tt.kind.String())
		if ok {
			assert.Equal(t, tt.effect, e)
		}
	}
}

func TestSilentPlayer(t *testing.T) {
	var p Player = Silent{}
	p.StartMusic()
	p.Play(EffectJump)
	p.StopMusic()
	p.Close()
}
