package sound

import (
	"math"
	"time"

	"github.com/gopxl/beep"
)

// tone is a sine sweep from one frequency to another with a short linear
// attack and release.
type tone struct {
	rate      beep.SampleRate
	from, to  float64 // Hz
	amplitude float64
	length    int // Samples
	pos       int
	phase     float64
}

func newTone(rate beep.SampleRate, from, to float64, d time.Duration, amplitude float64) *tone {
	return &tone{rate: rate, from: from, to: to, amplitude: amplitude, length: rate.N(d)}
}

func (t *tone) Stream(samples [][2]float64) (n int, ok bool) {
	if t.pos >= t.length {
		return 0, false
	}
	for i := range samples {
		if t.pos >= t.length {
			return i, true
		}

		progress := float64(t.pos) / float64(t.length)
		freq := t.from + (t.to-t.from)*progress

		v := t.amplitude * envelope(t.pos, t.length, t.rate.N(5*time.Millisecond)) * math.Sin(2*math.Pi*t.phase)
		samples[i][0] = v
		samples[i][1] = v

		t.phase += freq / float64(t.rate)
		t.phase -= math.Floor(t.phase)
		t.pos++
	}
	return len(samples), true
}

func (t *tone) Err() error { return nil }

// envelope ramps the first and last ramp samples of a sound to avoid clicks.
func envelope(pos, length, ramp int) float64 {
	if ramp <= 0 {
		return 1
	}
	switch {
	case pos < ramp:
		return float64(pos) / float64(ramp)
	case length-pos < ramp:
		return float64(length-pos) / float64(ramp)
	}
	return 1
}

// NewEffect returns a finite streamer for e, or nil for unknown effects.
func NewEffect(e Effect, rate beep.SampleRate) beep.Streamer {
	switch e {
	case EffectJump:
		return newTone(rate, 440, 880, 120*time.Millisecond, 0.3)
	case EffectPoint:
		return beep.Seq(
			newTone(rate, 988, 988, 60*time.Millisecond, 0.25),
			newTone(rate, 1319, 1319, 120*time.Millisecond, 0.25),
		)
	case EffectDie:
		return newTone(rate, 330, 80, 450*time.Millisecond, 0.4)
	case EffectMilestone:
		return beep.Seq(
			newTone(rate, 523, 523, 90*time.Millisecond, 0.25),
			newTone(rate, 659, 659, 90*time.Millisecond, 0.25),
			newTone(rate, 784, 784, 180*time.Millisecond, 0.25),
		)
	default:
		return nil
	}
}

// hum is an endless low two-note drone used as background music.
type hum struct {
	rate beep.SampleRate
	pos  int
}

// NewHum returns the background music streamer. It never ends.
func NewHum(rate beep.SampleRate) beep.Streamer {
	return &hum{rate: rate}
}

func (h *hum) Stream(samples [][2]float64) (n int, ok bool) {
	bar := h.rate.N(2 * time.Second)
	for i := range samples {
		t := float64(h.pos) / float64(h.rate)
		root := 110.0
		if (h.pos/bar)%2 == 1 {
			root = 98.0
		}
		swell := 0.5 + 0.5*math.Sin(2*math.Pi*t/4)
		v := 0.06 * (0.7 + 0.3*swell) * (math.Sin(2*math.Pi*root*t) + 0.5*math.Sin(2*math.Pi*root*1.5*t))

		samples[i][0] = v
		samples[i][1] = v
		h.pos++
	}
	return len(samples), true
}

func (h *hum) Err() error { return nil }
