package pad

// Directions is the set of directional inputs.
const Directions = InputUp | InputDown | InputLeft | InputRight

// Repeat turns held directions into presses for menu navigation. The
// first frame a direction is held fires, then it fires every Rate frames
// once it has been held for Delay frames. Changing direction starts over.
type Repeat struct {
	Delay, Rate int

	frames int
	last   Input
}

// Step takes the held input of one frame and returns the directions that
// fire.
func (r *Repeat) Step(held Input) Input {
	d := held & Directions
	if d != r.last {
		r.frames = 0
		r.last = d
	}
	if d == 0 {
		return 0
	}
	r.frames++
	if r.frames == 1 {
		return d
	}
	if r.Rate > 0 && r.frames > r.Delay && (r.frames-r.Delay)%r.Rate == 0 {
		return d
	}
	return 0
}

// Reset forgets the held direction, so the next held frame fires.
func (r *Repeat) Reset() {
	r.frames = 0
	r.last = 0
}
