package components

import (
	"github.com/automoto/dukeengine/assets/animations"
	"github.com/yohamta/donburi"
)

type AnimationLoopData struct {
	Loop       animations.Loop
	RenderSlot int
}

var AnimationLoop = donburi.NewComponentType[AnimationLoopData]()

type AnimationSequenceData struct {
	Sequence   animations.Sequence
	RenderSlot int
}

var AnimationSequence = donburi.NewComponentType[AnimationSequenceData]()

// StartAnimationLoop cycles the sprite through [first, last] every delay
// ticks. A negative last means up to the sprite's final frame.
func StartAnimationLoop(entry *donburi.Entry, delay, first, last int) {
	sprite := Sprite.Get(entry)
	if last < 0 {
		last = sprite.NumFrames() - 1
	}
	sprite.SetFrame(0, first)
	Set(entry, AnimationLoop, AnimationLoopData{Loop: animations.NewLoop(delay, first, last)})
}

// StartAnimationSequence plays frames once in render slot 0.
func StartAnimationSequence(entry *donburi.Entry, frames []int, repeat bool) {
	seq := animations.NewSequence(frames, repeat)
	Sprite.Get(entry).SetFrame(0, seq.Frame())
	Set(entry, AnimationSequence, AnimationSequenceData{Sequence: seq})
}
