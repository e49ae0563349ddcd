package stream

import (
	"encoding/binary"

	"github.com/lucasb-eyer/go-colorful"
)

// Frame is a rasterized tint: a width x height grid of RGB pixels ready to
// display on a remote target.
type Frame struct {
	width  int
	height int
	pixels []colorful.Color
}

// NewFrame creates a new Frame instance.
func NewFrame(width, height int) *Frame {
	f := new(Frame)
	f.width = width
	f.height = height
	f.pixels = make([]colorful.Color, width*height)
	return f
}

// Width returns the frame width in pixels.
func (f *Frame) Width() int {
	return f.width
}

// Height returns the frame height in pixels.
func (f *Frame) Height() int {
	return f.height
}

// At returns the pixel at x, y.
func (f *Frame) At(x, y int) colorful.Color {
	return f.pixels[y*f.width+x]
}

// Set stores the pixel at x, y.
func (f *Frame) Set(x, y int, c colorful.Color) {
	f.pixels[y*f.width+x] = c
}

// MarshalBinary converts a Frame into binary data: width and height as
// little-endian uint16, then RGB bytes row by row.
func (f *Frame) MarshalBinary() (data []byte, err error) {
	data = make([]byte, 4, len(f.pixels)*3+4)
	binary.LittleEndian.PutUint16(data, uint16(f.width))
	binary.LittleEndian.PutUint16(data[2:], uint16(f.height))
	for _, p := range f.pixels {
		r, g, b := p.Clamped().RGB255()
		data = append(data, r, g, b)
	}

	return data, nil
}
