package scene

import "image"

// rgbaFrame is a stride-aware view over an *image.RGBA addressed from (0, 0).
// Out-of-range access panics through the slice bounds check.
type rgbaFrame struct {
	pix    []uint8
	stride int
	w, h   int
}

func viewOf(img *image.RGBA) rgbaFrame {
	b := img.Bounds()
	return rgbaFrame{
		pix:    img.Pix[img.PixOffset(b.Min.X, b.Min.Y):],
		stride: img.Stride,
		w:      b.Dx(),
		h:      b.Dy(),
	}
}

func (f rgbaFrame) at(x, y int) []uint8 {
	i := y*f.stride + x*4
	return f.pix[i : i+4 : i+4]
}

// ChromaticAberration writes src into dst with the red channel sampled
// offset pixels to the right, green offset pixels to the left (wrapping
// around the row) and blue offset pixels down. Alpha is kept. Pixels within
// offset of any edge are copied unchanged so no read leaves src.
//
// dst and src must have the same size. With offset 0 dst becomes a copy of
// src.
func ChromaticAberration(dst, src *image.RGBA, offset int) {
	s, d := viewOf(src), viewOf(dst)
	if s.w != d.w || s.h != d.h {
		panic("scene: chromatic aberration on mismatched frames")
	}

	for y := 0; y < s.h; y++ {
		row := y * s.stride
		copy(d.pix[y*d.stride:y*d.stride+s.w*4], s.pix[row:row+s.w*4])
	}
	if offset <= 0 || s.w <= 2*offset || s.h <= 2*offset {
		return
	}

	for y := offset; y < s.h-offset; y++ {
		for x := offset; x < s.w-offset; x++ {
			out := d.at(x, y)
			out[0] = s.at(x+offset, y)[0]
			out[1] = s.at((x-offset+s.w)%s.w, y)[1]
			out[2] = s.at(x, y+offset)[2]
			out[3] = s.at(x, y)[3]
		}
	}
}
