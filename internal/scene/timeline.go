package scene

// Timeline is the frame driver's position in the dataset. While running it
// advances one timestep per frame and loops; while paused it only moves on
// explicit steps.
type Timeline struct {
	index  int
	length int
	paused bool
}

func NewTimeline(length int) *Timeline {
	return &Timeline{length: length}
}

func (t *Timeline) Index() int   { return t.index }
func (t *Timeline) Len() int     { return t.length }
func (t *Timeline) Paused() bool { return t.paused }

func (t *Timeline) TogglePause() { t.paused = !t.paused }

// Tick advances one step when running. It reports whether the index moved.
func (t *Timeline) Tick() bool {
	if t.paused || t.length == 0 {
		return false
	}
	t.index = (t.index + 1) % t.length
	return true
}

// StepForward moves one step ahead while paused.
func (t *Timeline) StepForward() bool {
	if !t.paused || t.length == 0 {
		return false
	}
	t.index = (t.index + 1) % t.length
	return true
}

// StepBack moves one step back while paused.
func (t *Timeline) StepBack() bool {
	if !t.paused || t.length == 0 {
		return false
	}
	t.index = (t.index - 1 + t.length) % t.length
	return true
}

// Seek jumps to i, clamped to the dataset.
func (t *Timeline) Seek(i int) {
	if t.length == 0 {
		return
	}
	t.index = max(0, min(t.length-1, i))
}
