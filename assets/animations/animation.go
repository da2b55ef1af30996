package animations

// Loop cycles a frame index through [First, Last], moving one frame every
// Delay ticks.
type Loop struct {
	Delay int
	First int
	Last  int

	elapsed int
}

func NewLoop(delay, first, last int) Loop {
	return Loop{Delay: delay, First: first, Last: last}
}

// Advance returns the frame following current after one tick.
func (l *Loop) Advance(current int) int {
	l.elapsed++
	if l.elapsed < l.Delay {
		return current
	}
	l.elapsed = 0

	next := current + 1
	if next > l.Last || next < l.First {
		next = l.First
	}
	return next
}

// Sequence plays an explicit list of frames, optionally repeating.
type Sequence struct {
	Frames []int
	Repeat bool

	index int
}

func NewSequence(frames []int, repeat bool) Sequence {
	return Sequence{Frames: frames, Repeat: repeat}
}

// Frame is the frame to show for the current step.
func (s *Sequence) Frame() int {
	if len(s.Frames) == 0 {
		return 0
	}
	return s.Frames[s.index]
}

// Advance moves to the next step. It reports false once a non-repeating
// sequence has shown its last frame.
func (s *Sequence) Advance() bool {
	if s.index+1 < len(s.Frames) {
		s.index++
		return true
	}
	if s.Repeat && len(s.Frames) > 0 {
		s.index = 0
		return true
	}
	return false
}

func (s *Sequence) Restart() {
	s.index = 0
}
