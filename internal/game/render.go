package game

import (
	"fmt"

	"github.com/vovakirdan/uffo/internal/core"
)

// Glyphs used by the terminal renderer.
const (
	ObstacleChar    = '█'
	ObstacleCapTop  = '▀'
	ObstacleCapDown = '▄'
	PlayerBodyChar  = '▬'
)

// SpriteGlyphs maps the player animation frames to terminal runes.
var SpriteGlyphs = [FrameCount]rune{'◐', '◓', '◑'}

// Palette is the set of colours used for one theme.
type Palette struct {
	Sky      core.Color
	Obstacle core.Color
	Player   core.Color
	Text     core.Color
}

// PaletteFor returns the colours of a theme.
func PaletteFor(t core.Theme) Palette {
	if t == core.ThemeNight {
		return Palette{Sky: core.ColorNavy, Obstacle: core.ColorOlive, Player: core.ColorBrightWhite, Text: core.ColorBrightYellow}
	}
	return Palette{Sky: core.ColorSky, Obstacle: core.ColorGreen, Player: core.ColorBrightYellow, Text: core.ColorBlack}
}

var logo = []string{
	"╻ ╻┏━╸┏━╸┏━┓",
	"┃ ┃┣╸ ┣╸ ┃ ┃",
	"┗━┛╹  ╹  ┗━┛",
}

// Render draws the current frame into dst, scaling the world to fit.
func (s *Session) Render(dst *core.Screen) {
	pal := PaletteFor(s.theme)
	dst.ResetPen()
	dst.Fill(' ', pal.Text, pal.Sky)

	vp := core.Viewport{
		WorldW: s.cfg.Field.Width,
		WorldH: s.cfg.Field.Height,
		CellsW: dst.Width(),
		CellsH: dst.Height(),
	}

	if s.phase == core.PhaseAwaitingStart {
		s.drawTitle(dst, pal)
		return
	}

	dst.SetPen(pal.Obstacle, pal.Sky)
	for _, o := range s.field.Obstacles() {
		drawObstacle(dst, vp, o)
	}

	dst.SetPen(pal.Player, pal.Sky)
	drawPlayer(dst, vp, s.player)

	dst.SetPen(pal.Text, pal.Sky)
	dst.DrawText(2, 0, fmt.Sprintf(" Score: %d ", s.score))
	best := fmt.Sprintf(" Best: %d ", s.highScore)
	dst.DrawText(dst.Width()-len(best)-2, 0, best)

	switch {
	case s.phase == core.PhaseOver:
		drawPanel(dst, pal, "GAME OVER",
			fmt.Sprintf("Score: %d  High Score: %d", s.score, max(s.score, s.highScore)),
			"SPACE/R to restart  Q to quit")
	case s.paused:
		drawPanel(dst, pal, "PAUSED", "Press P to resume")
	}
	dst.ResetPen()
}

func drawObstacle(dst *core.Screen, vp core.Viewport, o Obstacle) {
	upper := vp.Project(o.UpperBox())
	lower := vp.Project(o.LowerBox())

	if o.UpperBox().H > 0 {
		dst.DrawRect(upper, ObstacleChar)
		dst.DrawHLine(upper.X, upper.Bottom()-1, upper.W, ObstacleCapTop)
	}
	if o.LowerBox().H > 0 {
		dst.DrawRect(lower, ObstacleChar)
		dst.DrawHLine(lower.X, lower.Y, lower.W, ObstacleCapDown)
	}
}

func drawPlayer(dst *core.Screen, vp core.Viewport, p PlayerBody) {
	r := vp.Project(p.Box())
	dst.DrawRect(r, PlayerBodyChar)
	dst.Set(r.X+r.W/2, r.Y+r.H/2, SpriteGlyphs[p.Frame()])
}

func (s *Session) drawTitle(dst *core.Screen, pal Palette) {
	dst.SetPen(pal.Player, pal.Sky)
	top := dst.Height()/2 - len(logo) - 1
	for i, line := range logo {
		dst.DrawTextCentered(top+i, line)
	}

	dst.SetPen(pal.Text, pal.Sky)
	dst.DrawTextCentered(top+len(logo)+1, "Press SPACE to start")
	if s.highScore > 0 {
		dst.DrawTextCentered(top+len(logo)+3, fmt.Sprintf("High Score: %d", s.highScore))
	}
	dst.ResetPen()
}

// drawPanel draws a boxed message in the middle of the screen.
func drawPanel(dst *core.Screen, pal Palette, title string, lines ...string) {
	boxW := len([]rune(title))
	for _, l := range lines {
		boxW = core.Max(boxW, len([]rune(l)))
	}
	boxW += 4
	boxH := len(lines) + 4
	box := core.NewRect((dst.Width()-boxW)/2, (dst.Height()-boxH)/2, boxW, boxH)

	dst.SetPen(core.ColorBrightWhite, core.ColorBlack)
	dst.DrawRect(box, ' ')
	dst.DrawBox(box)
	dst.DrawText(box.X+(boxW-len([]rune(title)))/2, box.Y+1, title)
	for i, l := range lines {
		dst.DrawText(box.X+(boxW-len([]rune(l)))/2, box.Y+3+i, l)
	}
	dst.SetPen(pal.Text, pal.Sky)
}
