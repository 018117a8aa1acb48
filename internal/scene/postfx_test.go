package scene

import (
	"image"
	"image/color"
	"math/rand/v2"
	"testing"
)

func noiseFrame(w, h int) *image.RGBA {
	rng := rand.New(rand.NewPCG(7, 7))
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for i := range img.Pix {
		img.Pix[i] = uint8(rng.IntN(256))
	}
	return img
}

func TestChromaticZeroOffsetIsIdentity(t *testing.T) {
	src := noiseFrame(37, 21)
	dst := image.NewRGBA(src.Bounds())
	ChromaticAberration(dst, src, 0)
	for i := range src.Pix {
		if dst.Pix[i] != src.Pix[i] {
			t.Fatalf("byte %d differs: %d != %d", i, dst.Pix[i], src.Pix[i])
		}
	}
}

func TestChromaticChannelShift(t *testing.T) {
	const w, h, off = 16, 12, 2
	src := noiseFrame(w, h)
	dst := image.NewRGBA(src.Bounds())
	ChromaticAberration(dst, src, off)

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			got := dst.RGBAAt(x, y)
			border := x < off || x >= w-off || y < off || y >= h-off
			if border {
				if got != src.RGBAAt(x, y) {
					t.Fatalf("border pixel (%d,%d) changed", x, y)
				}
				continue
			}
			want := color.RGBA{
				R: src.RGBAAt(x+off, y).R,
				G: src.RGBAAt((x-off+w)%w, y).G,
				B: src.RGBAAt(x, y+off).B,
				A: src.RGBAAt(x, y).A,
			}
			if got != want {
				t.Fatalf("pixel (%d,%d): got %v, want %v", x, y, got, want)
			}
		}
	}
}

func TestChromaticTinyFrameIsCopied(t *testing.T) {
	src := noiseFrame(3, 3)
	dst := image.NewRGBA(src.Bounds())
	ChromaticAberration(dst, src, 2)
	for i := range src.Pix {
		if dst.Pix[i] != src.Pix[i] {
			t.Fatal("frame smaller than the border should pass through")
		}
	}
}

func TestChromaticSubImage(t *testing.T) {
	full := noiseFrame(40, 40)
	src := full.SubImage(image.Rect(10, 10, 30, 25)).(*image.RGBA)
	dst := image.NewRGBA(image.Rect(0, 0, 20, 15))
	ChromaticAberration(dst, src, 2)
	if got, want := dst.RGBAAt(5, 5).R, src.RGBAAt(17, 15).R; got != want {
		t.Errorf("red: got %d, want %d", got, want)
	}
}

func TestChromaticMismatchPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic")
		}
	}()
	ChromaticAberration(image.NewRGBA(image.Rect(0, 0, 4, 4)), image.NewRGBA(image.Rect(0, 0, 5, 4)), 1)
}

func TestFlashDecaysToZero(t *testing.T) {
	f := Flash{Decay: 0.10, Shake: 5, Offset: 2}
	f.Trigger()
	for tick := 1; tick <= 10; tick++ {
		if !f.Active {
			t.Fatalf("tick %d: deactivated early", tick)
		}
		f.Step()
		if f.Intensity < 0 {
			t.Fatalf("tick %d: negative intensity %g", tick, f.Intensity)
		}
	}
	if f.Intensity != 0 || f.Active {
		t.Fatalf("after 10 ticks: intensity %g active %v", f.Intensity, f.Active)
	}
	f.Step()
	if f.Intensity != 0 || f.Active {
		t.Fatal("stepping an idle flash changed it")
	}
}

func TestFlashDrivesOffsets(t *testing.T) {
	rng := newRand()
	f := Flash{Decay: 0.10, Shake: 5, Offset: 2}
	if f.ChromaticOffset() != 0 || f.ShakeBound() != 0 {
		t.Fatal("idle flash must not distort")
	}
	if dx, dy := f.ShakeOffset(rng); dx != 0 || dy != 0 {
		t.Fatal("idle flash must not shake")
	}

	f.Trigger()
	if f.ChromaticOffset() != 2 {
		t.Errorf("offset %d, want 2", f.ChromaticOffset())
	}
	if f.ShakeBound() != 10 {
		t.Errorf("shake bound %f, want 10", f.ShakeBound())
	}
	for i := 0; i < 100; i++ {
		dx, dy := f.ShakeOffset(rng)
		if dx < -10 || dx > 10 || dy < -10 || dy > 10 {
			t.Fatalf("shake (%f, %f) out of bounds", dx, dy)
		}
	}
}
