package audio

import (
	"math/bits"

	"github.com/faiface/beep"
	"github.com/ktye/fft"
	"github.com/pkg/errors"
)

// Analyzer wraps a beep.Streamer and feeds every sample it forwards into an
// FFT accumulation buffer. Each time the buffer fills, the squared magnitude
// spectrum is published to the Feed.
//
// Stream is called from the speaker goroutine; the only state it shares with
// the renderer is the Feed.
type Analyzer struct {
	Source beep.Streamer

	fft     fft.FFT
	buf     []complex128
	scratch []complex128
	pos     int
	feed    *Feed
}

// NewAnalyzer returns an Analyzer with an accumulation buffer of size n.
// n must be a power of two.
func NewAnalyzer(src beep.Streamer, n int, feed *Feed) (*Analyzer, error) {
	if n < 2 || bits.OnesCount(uint(n)) != 1 {
		return nil, errors.Errorf("fft size %d is not a power of two", n)
	}
	f, err := fft.New(n)
	if err != nil {
		return nil, errors.Wrapf(err, "fft size %d", n)
	}
	return &Analyzer{
		Source:  src,
		fft:     f,
		buf:     make([]complex128, n),
		scratch: make([]complex128, n),
		feed:    feed,
	}, nil
}

// Stream forwards to Source and returns exactly what Source returned.
func (a *Analyzer) Stream(samples [][2]float64) (int, bool) {
	n, ok := a.Source.Stream(samples)
	for i := 0; i < n; i++ {
		a.Add(samples[i][0])
		a.Add(samples[i][1])
	}
	return n, ok
}

func (a *Analyzer) Err() error { return a.Source.Err() }

// Add accumulates one interleaved sample value.
func (a *Analyzer) Add(x float64) {
	a.buf[a.pos] = complex(x, 0)
	a.pos++
	if a.pos < len(a.buf) {
		return
	}
	a.pos = 0
	a.publish()
}

func (a *Analyzer) publish() {
	copy(a.scratch, a.buf)
	out := a.fft.Transform(a.scratch)
	frame := make(Frame, len(out))
	for i, c := range out {
		re, im := real(c), imag(c)
		frame[i] = re*re + im*im
	}
	if a.feed != nil {
		a.feed.Publish(frame)
	}
}
