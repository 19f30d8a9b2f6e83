package game

// Collides reports whether the player hits the obstacle.
//
// The player collides when it overlaps the column horizontally and pokes out
// of the gap, unless it sits strictly inside the gap. A player exactly flush
// with a gap edge therefore passes: neither the "outside" nor the "inside"
// term holds.
func Collides(p PlayerBody, o Obstacle) bool {
	b := p.Box()
	top, bottom := b.Top(), b.Bottom()

	horizontal := b.Right() > o.Left() && b.Left() < o.Right()
	outside := top > o.GapTop() || bottom < o.GapBottom()
	inside := top < o.GapTop() && bottom > o.GapBottom()

	return horizontal && outside && !inside
}
