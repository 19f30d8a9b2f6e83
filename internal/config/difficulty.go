package config

// Ramp computes the scroll speed for a score under the milestone rule:
// every MilestoneEvery points the speed grows by SpeedIncrement.
type Ramp struct {
	cfg DifficultyConfig
}

// NewRamp creates a ramp from the difficulty settings.
func NewRamp(cfg DifficultyConfig) Ramp {
	return Ramp{cfg: cfg}
}

// BaseSpeed returns the speed at the start of a round.
func (r Ramp) BaseSpeed() float64 {
	return r.cfg.BaseSpeed
}

// Increment returns the speed added at each milestone.
func (r Ramp) Increment() float64 {
	return r.cfg.SpeedIncrement
}

// IsMilestone reports whether reaching score crosses a milestone.
// Zero is never a milestone.
func (r Ramp) IsMilestone(score int) bool {
	if r.cfg.MilestoneEvery <= 0 || score <= 0 {
		return false
	}
	return score%r.cfg.MilestoneEvery == 0
}

// Milestones returns how many milestones a score has passed.
func (r Ramp) Milestones(score int) int {
	if r.cfg.MilestoneEvery <= 0 || score <= 0 {
		return 0
	}
	return score / r.cfg.MilestoneEvery
}

// SpeedAt returns the scroll speed after reaching score.
func (r Ramp) SpeedAt(score int) float64 {
	return r.cfg.BaseSpeed + float64(r.Milestones(score))*r.cfg.SpeedIncrement
}
