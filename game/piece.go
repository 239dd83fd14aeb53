package game

import "image/color"

//go:generate go tool stringer -type=PieceType -trimprefix=Piece

// PieceType identifies one of the seven shapes.
type PieceType int

const (
	PieceO PieceType = iota
	PieceI
	PieceL
	PieceJ
	PieceS
	PieceZ
	PieceT
)

// PieceCount is the number of distinct piece types.
const PieceCount = 7

// Point is an integer cell coordinate. Y grows downward.
type Point struct {
	X, Y int
}

// Add returns the component-wise sum of p and q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Orientation is one rotation state of a shape: four distinct cell offsets
// from the shape's local origin.
type Orientation [4]Point

// Definition is the static description of a piece type.
type Definition struct {
	Color        color.RGBA
	Orientations [4]Orientation
	// Fixed shapes look the same in every orientation and never rotate.
	Fixed bool
}

var definitions = [PieceCount]Definition{
	PieceO: {
		Color: color.RGBA{R: 255, G: 255, B: 0, A: 255},
		Orientations: [4]Orientation{
			{{0, 0}, {1, 0}, {0, 1}, {1, 1}},
			{{0, 0}, {1, 0}, {0, 1}, {1, 1}},
			{{0, 0}, {1, 0}, {0, 1}, {1, 1}},
			{{0, 0}, {1, 0}, {0, 1}, {1, 1}},
		},
		Fixed: true,
	},
	PieceI: {
		Color: color.RGBA{R: 80, G: 80, B: 255, A: 255},
		Orientations: [4]Orientation{
			{{1, 3}, {2, 3}, {3, 3}, {4, 3}},
			{{2, 1}, {2, 2}, {2, 3}, {2, 4}},
			{{0, 3}, {1, 3}, {2, 3}, {3, 3}},
			{{2, 0}, {2, 1}, {2, 2}, {2, 3}},
		},
	},
	PieceL: {
		Color: color.RGBA{R: 255, G: 127, B: 0, A: 255},
		Orientations: [4]Orientation{
			{{2, 0}, {0, 1}, {1, 1}, {2, 1}},
			{{1, 0}, {1, 1}, {1, 2}, {2, 2}},
			{{0, 1}, {1, 1}, {2, 1}, {0, 2}},
			{{0, 0}, {1, 0}, {1, 1}, {1, 2}},
		},
	},
	PieceJ: {
		Color: color.RGBA{R: 0, G: 0, B: 255, A: 255},
		Orientations: [4]Orientation{
			{{0, 0}, {0, 1}, {1, 1}, {2, 1}},
			{{1, 0}, {2, 0}, {1, 1}, {1, 2}},
			{{0, 1}, {1, 1}, {2, 1}, {2, 2}},
			{{1, 0}, {1, 1}, {0, 2}, {1, 2}},
		},
	},
	PieceS: {
		Color: color.RGBA{R: 0, G: 255, B: 0, A: 255},
		Orientations: [4]Orientation{
			{{1, 0}, {2, 0}, {0, 1}, {1, 1}},
			{{1, 0}, {1, 1}, {2, 1}, {2, 2}},
			{{1, 1}, {2, 1}, {0, 2}, {1, 2}},
			{{0, 0}, {0, 1}, {1, 1}, {1, 2}},
		},
	},
	PieceZ: {
		Color: color.RGBA{R: 255, G: 0, B: 0, A: 255},
		Orientations: [4]Orientation{
			{{0, 0}, {1, 0}, {1, 1}, {2, 1}},
			{{2, 0}, {1, 1}, {2, 1}, {1, 2}},
			{{0, 1}, {1, 1}, {1, 2}, {2, 2}},
			{{1, 0}, {0, 1}, {1, 1}, {0, 2}},
		},
	},
	PieceT: {
		Color: color.RGBA{R: 128, G: 0, B: 128, A: 255},
		Orientations: [4]Orientation{
			{{1, 0}, {0, 1}, {1, 1}, {2, 1}},
			{{1, 0}, {1, 1}, {2, 1}, {1, 2}},
			{{0, 1}, {1, 1}, {2, 1}, {1, 2}},
			{{1, 0}, {0, 1}, {1, 1}, {1, 2}},
		},
	},
}

// Valid reports whether t names one of the seven shapes.
func (t PieceType) Valid() bool {
	return t >= 0 && t < PieceCount
}

// Definition returns a copy of the static data for t.
func (t PieceType) Definition() Definition {
	return definitions[t]
}

// Color returns the display colour of t.
func (t PieceType) Color() color.RGBA {
	return definitions[t].Color
}

// Orientation returns the offsets of t in rotation state index (taken mod 4).
func (t PieceType) Orientation(index int) Orientation {
	return definitions[t].Orientations[wrapOrientation(index)]
}

func wrapOrientation(index int) int {
	return ((index % 4) + 4) % 4
}
