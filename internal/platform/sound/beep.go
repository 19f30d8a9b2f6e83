package sound

import (
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// The speaker can be initialised once per process, so every player after the
// first shares it.
var (
	speakerMu    sync.Mutex
	speakerReady bool

	initSpeaker = speaker.Init
	playSpeaker = speaker.Play
)

// openSpeaker initialises the speaker on first use. A failed attempt is
// retried by the next player.
func openSpeaker() error {
	speakerMu.Lock()
	defer speakerMu.Unlock()

	if speakerReady {
		return nil
	}
	if err := initSpeaker(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return err
	}
	speakerReady = true
	return nil
}

// BeepPlayer mixes effects and music into the default audio device.
type BeepPlayer struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	master      *effects.Volume
	music       *beep.Ctrl
	logger      *log.Logger
	initialized bool
	closed      bool // Read by the speaker goroutine under speaker.Lock
}

// NewBeepPlayer creates a player. Nothing is played until Init succeeds.
func NewBeepPlayer(logger *log.Logger) *BeepPlayer {
	mixer := &beep.Mixer{}
	return &BeepPlayer{
		mixer:  mixer,
		master: &effects.Volume{Streamer: mixer, Base: 2, Volume: -1},
		logger: logger,
	}
}

// Init opens the audio device with a 100ms buffer and attaches the player's
// output to it.
func (p *BeepPlayer) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}

	if err := openSpeaker(); err != nil {
		return err
	}

	speaker.Lock()
	p.closed = false
	speaker.Unlock()

	playSpeaker(p.output())
	p.initialized = true
	return nil
}

// output streams the player's mix until Close, then drains so the speaker
// drops it.
func (p *BeepPlayer) output() beep.Streamer {
	return beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		if p.closed {
			return 0, false
		}
		return p.master.Stream(samples)
	})
}

// Open returns a working BeepPlayer, or Silent when muted or when the audio
// device cannot be opened.
func Open(logger *log.Logger, mute bool) Player {
	if mute {
		logger.Debug("sound muted")
		return Silent{}
	}

	p := NewBeepPlayer(logger)
	if err := p.Init(); err != nil {
		logger.Warn("audio unavailable, continuing without sound", "error", err)
		return Silent{}
	}
	return p
}

// Play starts a one-shot effect.
func (p *BeepPlayer) Play(e Effect) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}

	s := NewEffect(e, sampleRate)
	if s == nil {
		return
	}
	speaker.Lock()
	p.mixer.Add(s)
	speaker.Unlock()
}

// StartMusic starts the background hum, or resumes it if it was stopped.
func (p *BeepPlayer) StartMusic() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}

	speaker.Lock()
	defer speaker.Unlock()

	if p.music != nil {
		p.music.Paused = false
		return
	}
	p.music = &beep.Ctrl{Streamer: NewHum(sampleRate)}
	p.mixer.Add(p.music)
}

// StopMusic pauses the background hum.
func (p *BeepPlayer) StopMusic() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.music == nil {
		return
	}
	speaker.Lock()
	p.music.Paused = true
	speaker.Unlock()
}

// Close silences everything and detaches the player. The speaker stays open
// for the next player.
func (p *BeepPlayer) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}

	speaker.Lock()
	p.mixer.Clear()
	p.closed = true
	speaker.Unlock()

	p.music = nil
	p.initialized = false
	p.logger.Debug("sound closed")
}
