package sound

import (
	"errors"
	"io"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeSpeaker replaces the audio device for the duration of a test.
type fakeSpeaker struct {
	inits   int
	err     error
	outputs []beep.Streamer
}

func useFakeSpeaker(t *testing.T) *fakeSpeaker {
	t.Helper()
	f := &fakeSpeaker{}

	oldInit, oldPlay := initSpeaker, playSpeaker
	initSpeaker = func(beep.SampleRate, int) error {
		f.inits++
		return f.err
	}
	playSpeaker = func(s ...beep.Streamer) { f.outputs = append(f.outputs, s...) }
	speakerReady = false

	t.Cleanup(func() {
		initSpeaker, playSpeaker = oldInit, oldPlay
		speakerReady = false
	})
	return f
}

func quietLogger() *log.Logger {
	return log.New(io.Discard)
}

func TestOpenAgainAfterClose(t *testing.T) {
	spk := useFakeSpeaker(t)

	first := Open(quietLogger(), false)
	require.IsType(t, &BeepPlayer{}, first)
	first.StartMusic()
	first.Close()

	second := Open(quietLogger(), false)
	require.IsType(t, &BeepPlayer{}, second, "a second game still gets sound")
	defer second.Close()

	assert.Equal(t, 1, spk.inits, "the speaker is initialised once")
	require.Len(t, spk.outputs, 2)

	// The closed player's output drains so the speaker drops it.
	buf := make([][2]float64, 64)
	_, ok := spk.outputs[0].Stream(buf)
	assert.False(t, ok)

	_, ok = spk.outputs[1].Stream(buf)
	assert.True(t, ok)
}

func TestOpenFallsBackToSilent(t *testing.T) {
	spk := useFakeSpeaker(t)
	spk.err = errors.New("no audio device")

	assert.Equal(t, Silent{}, Open(quietLogger(), false))

	spk.err = nil
	assert.IsType(t, &BeepPlayer{}, Open(quietLogger(), false), "a failed init is retried")
	assert.Equal(t, 2, spk.inits)
}

func TestOpenMuted(t *testing.T) {
	spk := useFakeSpeaker(t)

	assert.Equal(t, Silent{}, Open(quietLogger(), true))
	assert.Zero(t, spk.inits)
}
