package audio

// Frame is a published magnitude spectrum. A Frame is never modified after it
// has been published; readers must treat it as read-only.
type Frame []float64

// Feed hands spectrum frames from the audio goroutine to the render loop.
//
// It holds at most one pending frame. Publish replaces a frame the consumer
// has not picked up yet, so the consumer always sees the newest snapshot and
// the producer never blocks. Feed supports exactly one producer and one
// consumer goroutine.
type Feed struct {
	ch   chan Frame
	last Frame
}

func NewFeed() *Feed {
	return &Feed{ch: make(chan Frame, 1)}
}

// Publish is called by the producer only.
func (f *Feed) Publish(fr Frame) {
	select {
	case <-f.ch:
	default:
	}
	// The slot is empty now and only this goroutine sends.
	select {
	case f.ch <- fr:
	default:
	}
}

// Latest is called by the consumer only. It returns the most recently
// published frame, or nil if nothing has been published yet.
func (f *Feed) Latest() Frame {
	select {
	case fr := <-f.ch:
		f.last = fr
	default:
	}
	return f.last
}
