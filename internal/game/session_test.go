package game

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/uffo/internal/config"
	"github.com/vovakirdan/uffo/internal/core"
)

const frame = 1.0 / 60

var (
	noInput   = core.NewInputFrame()
	jumpInput = core.InputOf(core.ActionJump)
)

func newPlayingSession(t *testing.T, highScore int) *Session {
	t.Helper()
	s := NewSession(config.DefaultConfig(), 42, highScore)
	res := s.Tick(jumpInput, frame)
	require.Equal(t, core.PhasePlaying, res.State.Phase)
	return s
}

// passObstacle places an obstacle the player has already cleared without
// touching it, so the next tick scores it.
func passObstacle(s *Session) {
	s.field.SpawnAt(100, 300)
}

// crash places an obstacle the player is certain to hit.
func crash(s *Session) core.StepResult {
	s.field.SpawnAt(s.player.X(), s.player.Y()+500)
	return s.Tick(noInput, 0)
}

func countEvents(res core.StepResult, kind core.EventKind) int {
	n := 0
	for _, e := range res.Events {
		if e.Kind == kind {
			n++
		}
	}
	return n
}

func TestSessionStartsAwaiting(t *testing.T) {
	s := NewSession(config.DefaultConfig(), 1, 7)
	st := s.State()

	assert.Equal(t, core.PhaseAwaitingStart, st.Phase)
	assert.Equal(t, 0, st.Score)
	assert.Equal(t, 7, st.HighScore)
	assert.Equal(t, 200.0, st.Speed)
	assert.Equal(t, core.ThemeDay, st.Theme)
}

func TestSessionAwaitingHasNoPhysics(t *testing.T) {
	s := NewSession(config.DefaultConfig(), 1, 0)
	for i := 0; i < 10; i++ {
		res := s.Tick(noInput, 1)
		assert.Empty(t, res.Events)
	}
	assert.Equal(t, 300.0, s.Player().Y())
	assert.Zero(t, len(s.Obstacles()))
}

func TestSessionStartInput(t *testing.T) {
	for _, a := range []core.Action{core.ActionJump, core.ActionConfirm} {
		s := NewSession(config.DefaultConfig(), 1, 0)
		res := s.Tick(core.InputOf(a), frame)

		assert.Equal(t, core.PhasePlaying, res.State.Phase, a.String())
		assert.True(t, res.Has(core.EventStarted))
		assert.False(t, res.Has(core.EventJump), "the start press does not jump")
		assert.Equal(t, 0.0, s.Player().VelocityY())
	}

	s := NewSession(config.DefaultConfig(), 1, 0)
	res := s.Tick(core.InputOf(core.ActionRestart, core.ActionPause), frame)
	assert.Equal(t, core.PhaseAwaitingStart, res.State.Phase)
}

func TestSessionJumpEvent(t *testing.T) {
	s := newPlayingSession(t, 0)

	res := s.Tick(jumpInput, frame)
	assert.True(t, res.Has(core.EventJump))
	assert.Greater(t, s.Player().Y(), 300.0)

	res = s.Tick(jumpInput, frame)
	assert.False(t, res.Has(core.EventJump), "cooldown suppresses the second jump")
}

func TestSessionNegativeDtIsIgnored(t *testing.T) {
	s := newPlayingSession(t, 0)
	before := s.Snapshot()

	s.Tick(noInput, -1)

	after := s.Snapshot()
	assert.Equal(t, before.PlayerY, after.PlayerY)
	assert.Equal(t, before.SpawnTimer, after.SpawnTimer)
}

func TestSessionSpawnTimerResetsToZero(t *testing.T) {
	s := newPlayingSession(t, 0)
	s.spawnTimer = 0

	s.Tick(noInput, 0.7)
	s.Tick(noInput, 0.7)
	assert.Zero(t, len(s.Obstacles()))

	s.Tick(noInput, 0.7)
	require.Len(t, s.Obstacles(), 1)
	assert.Equal(t, 0.0, s.Snapshot().SpawnTimer, "overshoot is not carried over")

	// Spawned at the right edge, then advanced in the same tick.
	assert.InDelta(t, 800-200*0.7, s.Obstacles()[0].X, 1e-9)
	gap := s.Obstacles()[0].GapCenter
	assert.GreaterOrEqual(t, gap, 200.0)
	assert.LessOrEqual(t, gap, 400.0)
}

func TestSessionScoringIsIdempotent(t *testing.T) {
	s := newPlayingSession(t, 0)
	passObstacle(s)

	res := s.Tick(noInput, 0)
	assert.Equal(t, 1, res.State.Score)
	assert.Equal(t, 1, countEvents(res, core.EventScore))
	assert.True(t, s.Obstacles()[0].IsScored())

	for i := 0; i < 10; i++ {
		res = s.Tick(noInput, 0)
		assert.False(t, res.Has(core.EventScore))
	}
	assert.Equal(t, 1, s.State().Score)
}

func TestSessionDoesNotScoreOverlappingObstacle(t *testing.T) {
	s := newPlayingSession(t, 0)
	// Trailing edge at 200 equals the player's x: not yet passed.
	s.field.SpawnAt(160, 300)

	res := s.Tick(noInput, 0)
	assert.Equal(t, 0, res.State.Score)
	assert.Equal(t, core.PhasePlaying, res.State.Phase)
}

func TestSessionMilestoneRamp(t *testing.T) {
	s := newPlayingSession(t, 0)

	milestones := 0
	for i := 1; i <= 45; i++ {
		passObstacle(s)
		res := s.Tick(noInput, 0)
		require.Equal(t, i, res.State.Score)

		n := countEvents(res, core.EventMilestone)
		if i%15 == 0 {
			require.Equal(t, 1, n, "score %d", i)
			milestones++

			ev := res.Events[len(res.Events)-1]
			assert.Equal(t, core.EventMilestone, ev.Kind)
			assert.Equal(t, 200+50*float64(milestones), ev.Speed)
			assert.Equal(t, res.State.Theme, ev.Theme)
		} else {
			require.Zero(t, n, "score %d", i)
		}

		// Idle ticks after a milestone must not repeat it.
		idle := s.Tick(noInput, 0)
		require.False(t, idle.Has(core.EventMilestone))
	}

	st := s.State()
	assert.Equal(t, 3, milestones)
	assert.Equal(t, 350.0, st.Speed)
	assert.Equal(t, core.ThemeNight, st.Theme)
}

func TestSessionFixedPresetTogglesThemeOnly(t *testing.T) {
	cfg := config.DefaultConfig()
	config.ApplyPreset(&cfg, config.PresetFixed)
	s := NewSession(cfg, 1, 0)
	s.Tick(jumpInput, frame)

	for i := 0; i < 15; i++ {
		passObstacle(s)
		s.Tick(noInput, 0)
	}
	assert.Equal(t, 200.0, s.State().Speed)
	assert.Equal(t, core.ThemeNight, s.State().Theme)
}

func TestSessionCrash(t *testing.T) {
	s := newPlayingSession(t, 0)
	s.Tick(noInput, 0.25)

	res := crash(s)

	assert.Equal(t, core.PhaseOver, res.State.Phase)
	assert.True(t, res.State.GameOver())
	require.True(t, res.Has(core.EventCrash))
	assert.InDelta(t, 0.25, res.Events[0].Duration, 1e-9)
	assert.False(t, s.Player().Alive())

	// Over has no physics.
	y := s.Player().Y()
	s.Tick(noInput, 1)
	assert.Equal(t, y, s.Player().Y())
}

func TestSessionCrashStopsCheckingObstacles(t *testing.T) {
	s := newPlayingSession(t, 0)
	s.field.SpawnAt(s.player.X(), s.player.Y()+500)
	passObstacle(s)

	res := s.Tick(noInput, 0)
	assert.True(t, res.Has(core.EventCrash))
	assert.False(t, res.Has(core.EventScore))
	assert.Equal(t, 0, res.State.Score)
}

func TestSessionPrunedObstacleIsGone(t *testing.T) {
	s := newPlayingSession(t, 0)
	s.field.SpawnAt(-30, 300)
	s.field.SpawnAt(600, 300)

	s.Tick(noInput, 0.1)

	require.Len(t, s.Obstacles(), 1)
	assert.InDelta(t, 580.0, s.Obstacles()[0].X, 1e-9)
}

func TestSessionRestartUpdatesHighScore(t *testing.T) {
	s := newPlayingSession(t, 5)
	for i := 0; i < 10; i++ {
		passObstacle(s)
		s.Tick(noInput, 0)
	}
	crash(s)

	res := s.Tick(core.InputOf(core.ActionRestart), frame)
	require.True(t, res.Has(core.EventHighScore))
	assert.Equal(t, 10, res.Events[0].Score)
	assert.Equal(t, core.PhaseAwaitingStart, res.State.Phase)
	assert.Equal(t, 10, res.State.HighScore)
	assert.Equal(t, 0, res.State.Score)
	assert.Equal(t, 200.0, res.State.Speed)
	assert.Equal(t, core.ThemeDay, res.State.Theme)
	assert.Zero(t, len(s.Obstacles()))
	assert.True(t, s.Player().Alive())
	assert.Equal(t, 300.0, s.Player().Y())

	// A worse second round keeps the record.
	s.Tick(jumpInput, frame)
	for i := 0; i < 3; i++ {
		passObstacle(s)
		s.Tick(noInput, 0)
	}
	crash(s)
	res = s.Tick(jumpInput, frame)
	assert.False(t, res.Has(core.EventHighScore))
	assert.Equal(t, 10, res.State.HighScore)
}

func TestSessionOverIgnoresOtherInput(t *testing.T) {
	s := newPlayingSession(t, 0)
	crash(s)

	res := s.Tick(core.InputOf(core.ActionPause, core.ActionQuit, core.ActionConfirm), frame)
	assert.Equal(t, core.PhaseOver, res.State.Phase, "only jump or restart leaves game over")
	assert.Empty(t, res.Events)
}

func TestSessionPause(t *testing.T) {
	s := newPlayingSession(t, 0)
	pause := core.InputOf(core.ActionPause)

	res := s.Tick(pause, frame)
	require.True(t, res.State.Paused)

	before := s.Snapshot()
	s.Tick(jumpInput, 1)
	after := s.Snapshot()
	assert.Equal(t, before, after)

	res = s.Tick(pause, frame)
	assert.False(t, res.State.Paused)
}

func TestSessionDeterminism(t *testing.T) {
	run := func() Snapshot {
		s := NewSession(config.DefaultConfig(), 12345, 0)
		for i := 0; i < 1200; i++ {
			in := noInput
			if i%25 == 0 {
				in = jumpInput
			}
			s.Tick(in, frame)
		}
		return s.Snapshot()
	}

	first := run()
	second := run()
	assert.Equal(t, first, second)
	assert.Positive(t, first.Ticks)
}

func TestSessionSeedChangesGaps(t *testing.T) {
	gapFor := func(seed int64) float64 {
		s := NewSession(config.DefaultConfig(), seed, 0)
		s.Tick(jumpInput, frame)
		s.Tick(noInput, 2)
		require.NotEmpty(t, s.Obstacles())
		return s.Obstacles()[0].GapCenter
	}
	assert.NotEqual(t, gapFor(1), gapFor(2))
}

func TestSessionRender(t *testing.T) {
	s := NewSession(config.DefaultConfig(), 1, 12)
	scr := core.NewScreen(80, 30)

	s.Render(scr)
	assert.Contains(t, scr.String(), "Press SPACE to start")
	assert.Contains(t, scr.String(), "High Score: 12")
	assert.Equal(t, core.ColorSky, scr.GetCell(0, 29).Bg)

	s.Tick(jumpInput, frame)
	s.field.SpawnAt(600, 300)
	s.Render(scr)
	out := scr.String()
	assert.Contains(t, out, "Score: 0")
	assert.True(t, strings.ContainsRune(out, SpriteGlyphs[s.Player().Frame()]))
	assert.True(t, strings.ContainsRune(out, ObstacleChar))

	crash(s)
	s.Render(scr)
	assert.Contains(t, scr.String(), "GAME OVER")
}

func TestSessionRenderNightPalette(t *testing.T) {
	s := newPlayingSession(t, 0)
	for i := 0; i < 15; i++ {
		passObstacle(s)
		s.Tick(noInput, 0)
	}
	require.Equal(t, core.ThemeNight, s.State().Theme)

	scr := core.NewScreen(80, 30)
	s.Render(scr)
	assert.Equal(t, core.ColorNavy, scr.GetCell(0, 29).Bg)
}
