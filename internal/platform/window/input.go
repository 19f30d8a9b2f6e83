package window

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/uffo/internal/core"
	"github.com/vovakirdan/uffo/internal/game"
)

type keyFunc func(ebiten.Key) bool

var (
	jumpKeys    = []ebiten.Key{ebiten.KeySpace, ebiten.KeyArrowUp, ebiten.KeyW}
	confirmKeys = []ebiten.Key{ebiten.KeyEnter}
	restartKeys = []ebiten.Key{ebiten.KeyR}
	pauseKeys   = []ebiten.Key{ebiten.KeyP, ebiten.KeyEscape}
	quitKeys    = []ebiten.Key{ebiten.KeyQ}
)

func anyKey(keys []ebiten.Key, f keyFunc) bool {
	for _, k := range keys {
		if f(k) {
			return true
		}
	}
	return false
}

// pollInput builds the frame's input. Jump follows the held key while playing;
// elsewhere only fresh presses count, so a held key cannot skip the game-over
// screen.
func pollInput(phase core.Phase, pressed, justPressed keyFunc) core.InputFrame {
	in := core.NewInputFrame()

	jump := justPressed
	if phase == core.PhasePlaying {
		jump = pressed
	}
	if anyKey(jumpKeys, jump) {
		in.Set(core.ActionJump)
	}
	if anyKey(confirmKeys, justPressed) {
		in.Set(core.ActionConfirm)
	}
	if anyKey(restartKeys, justPressed) {
		in.Set(core.ActionRestart)
	}
	if anyKey(pauseKeys, justPressed) {
		in.Set(core.ActionPause)
	}
	if anyKey(quitKeys, justPressed) {
		in.Set(core.ActionQuit)
	}
	return in
}

type palette struct {
	sky          color.RGBA
	obstacle     color.RGBA
	obstacleEdge color.RGBA
	hull         color.RGBA
	dome         color.RGBA
	text         color.RGBA
}

var (
	dayPalette = palette{
		sky:          color.RGBA{135, 206, 235, 255},
		obstacle:     color.RGBA{76, 175, 80, 255},
		obstacleEdge: color.RGBA{27, 94, 32, 255},
		hull:         color.RGBA{176, 190, 197, 255},
		dome:         color.RGBA{129, 212, 250, 220},
		text:         color.RGBA{20, 20, 40, 255},
	}
	nightPalette = palette{
		sky:          color.RGBA{13, 19, 56, 255},
		obstacle:     color.RGBA{85, 107, 47, 255},
		obstacleEdge: color.RGBA{51, 64, 28, 255},
		hull:         color.RGBA{207, 216, 220, 255},
		dome:         color.RGBA{179, 229, 252, 220},
		text:         color.RGBA{255, 241, 118, 255},
	}
	frameLights = [game.FrameCount]color.RGBA{
		{255, 82, 82, 255},
		{255, 235, 59, 255},
		{105, 240, 174, 255},
	}
)

func paletteFor(t core.Theme) palette {
	if t == core.ThemeNight {
		return nightPalette
	}
	return dayPalette
}
