// Package window hosts uffo in a desktop window using Ebitengine.
package window

import (
	"fmt"
	"image/color"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/uffo/internal/core"
	"github.com/vovakirdan/uffo/internal/game"
	"github.com/vovakirdan/uffo/internal/platform/host"
)

// Options configures the window host.
type Options struct {
	TickRate int
	Scale    float64 // Window size relative to the field
	Logger   *log.Logger
}

// Game implements ebiten.Game on top of a host.Runner.
type Game struct {
	runner *host.Runner
	opts   Options
	logger *log.Logger
	state  core.GameState
	width  int
	height int
	labels map[string]*ebiten.Image
}

// New creates the window game. The logical screen is the playfield size.
func New(runner *host.Runner, opts Options) *Game {
	if opts.TickRate <= 0 {
		opts.TickRate = 60
	}
	if opts.Scale <= 0 {
		opts.Scale = 1
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}

	field := runner.Session().Config().Field
	return &Game{
		runner: runner,
		opts:   opts,
		logger: logger,
		state:  runner.Session().State(),
		width:  int(field.Width),
		height: int(field.Height),
		labels: make(map[string]*ebiten.Image),
	}
}

// Update advances the session by one fixed step.
func (g *Game) Update() error {
	in := pollInput(g.state.Phase, ebiten.IsKeyPressed, inpututil.IsKeyJustPressed)
	if in.Has(core.ActionQuit) {
		return ebiten.Termination
	}

	res := g.runner.Frame(in, 1/float64(ebiten.TPS()))
	g.state = res.State
	return nil
}

// Layout keeps the logical screen at the playfield size; Ebitengine scales it.
func (g *Game) Layout(_, _ int) (int, int) {
	return g.width, g.height
}

// Draw renders the session.
func (g *Game) Draw(screen *ebiten.Image) {
	pal := paletteFor(g.state.Theme)
	screen.Fill(pal.sky)

	if g.state.Phase == core.PhaseAwaitingStart {
		g.drawTitle(screen, pal)
		return
	}

	session := g.runner.Session()
	for _, o := range session.Obstacles() {
		g.drawObstacle(screen, o, pal)
	}
	g.drawPlayer(screen, session.Player(), pal)

	g.drawLabel(screen, fmt.Sprintf("Score: %d", g.state.Score), 16, 12, 2, pal.text)
	best := fmt.Sprintf("Best: %d", g.state.HighScore)
	g.drawLabel(screen, best, float64(g.width)-float64(len(best))*12-16, 12, 2, pal.text)

	switch {
	case g.state.Phase == core.PhaseOver:
		g.drawPanel(screen, "GAME OVER",
			fmt.Sprintf("Score: %d  High Score: %d", g.state.Score, max(g.state.Score, g.state.HighScore)),
			"SPACE/R to restart  Q to quit")
	case g.state.Paused:
		g.drawPanel(screen, "PAUSED", "P/ESC to resume")
	}
}

// screenY converts a y-up world coordinate to a y-down pixel row.
func (g *Game) screenY(y float64) float32 {
	return float32(float64(g.height) - y)
}

func (g *Game) drawObstacle(screen *ebiten.Image, o game.Obstacle, pal palette) {
	for _, b := range []core.Box{o.UpperBox(), o.LowerBox()} {
		if b.H <= 0 {
			continue
		}
		x := float32(b.Left())
		y := g.screenY(b.Top())
		vector.DrawFilledRect(screen, x, y, float32(b.W), float32(b.H), pal.obstacle, false)
		vector.StrokeRect(screen, x, y, float32(b.W), float32(b.H), 3, pal.obstacleEdge, false)
	}
}

func (g *Game) drawPlayer(screen *ebiten.Image, p game.PlayerBody, pal palette) {
	b := p.Box()
	cx := float32(b.CX)
	cy := g.screenY(b.CY)
	w, h := float32(b.W), float32(b.H)

	// Saucer: a dome over a flat hull, with a blinking light per frame.
	vector.DrawFilledCircle(screen, cx, cy-h/6, h/2.5, pal.dome, true)
	vector.DrawFilledRect(screen, cx-w/2, cy-h/8, w, h/3, pal.hull, true)
	vector.DrawFilledCircle(screen, cx-w/3+float32(p.Frame())*w/3, cy+h/24, h/10, frameLights[p.Frame()], true)
}

func (g *Game) drawTitle(screen *ebiten.Image, pal palette) {
	cx := float64(g.width) / 2
	g.drawLabelCentered(screen, "U F F O", cx, float64(g.height)/3, 6, pal.text)
	g.drawLabelCentered(screen, "Press SPACE to start", cx, float64(g.height)/2+40, 2, pal.text)
	if g.state.HighScore > 0 {
		g.drawLabelCentered(screen, fmt.Sprintf("High Score: %d", g.state.HighScore), cx, float64(g.height)/2+90, 2, pal.text)
	}
}

func (g *Game) drawPanel(screen *ebiten.Image, title string, lines ...string) {
	const lineH = 36
	w := float32(g.width) * 0.7
	h := float32(80 + lineH*len(lines))
	x := (float32(g.width) - w) / 2
	y := (float32(g.height) - h) / 2

	vector.DrawFilledRect(screen, x, y, w, h, color.RGBA{0, 0, 0, 200}, false)
	vector.StrokeRect(screen, x, y, w, h, 2, color.White, false)

	cx := float64(g.width) / 2
	g.drawLabelCentered(screen, title, cx, float64(y)+16, 3, color.White)
	for i, l := range lines {
		g.drawLabelCentered(screen, l, cx, float64(y)+70+float64(i*lineH), 2, color.White)
	}
}

// label returns a cached image holding s rendered with the debug font.
func (g *Game) label(s string) *ebiten.Image {
	if img, ok := g.labels[s]; ok {
		return img
	}
	img := ebiten.NewImage(len(s)*6+2, 16)
	ebitenutil.DebugPrint(img, s)
	g.labels[s] = img
	return img
}

func (g *Game) drawLabel(screen *ebiten.Image, s string, x, y, scale float64, clr color.Color) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	screen.DrawImage(g.label(s), op)
}

func (g *Game) drawLabelCentered(screen *ebiten.Image, s string, cx, y, scale float64, clr color.Color) {
	w := float64(len(s)*6) * scale
	g.drawLabel(screen, s, cx-w/2, y, scale, clr)
}

// Run opens the window and blocks until it is closed.
func Run(runner *host.Runner, opts Options) error {
	g := New(runner, opts)

	ebiten.SetWindowSize(int(float64(g.width)*g.opts.Scale), int(float64(g.height)*g.opts.Scale))
	ebiten.SetWindowTitle("uffo")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(g.opts.TickRate)

	g.logger.Debug("opening window", "width", g.width, "height", g.height, "tps", g.opts.TickRate)
	if err := ebiten.RunGame(g); err != nil {
		return fmt.Errorf("window: %w", err)
	}
	return nil
}
