package toolpath

import (
	"fmt"
	"math"
)

// Units identifies the length unit of a toolpath's coordinates.
type Units string

const (
	// UnitsMillimeters is the canonical unit every decoder converts into.
	UnitsMillimeters Units = "mm"
)

// MoveKind classifies a single segment of motion.
type MoveKind string

const (
	// MoveRapid is a positioning move at maximum traverse rate.
	MoveRapid MoveKind = "rapid"
	// MoveLinear is a straight cutting move at the programmed feed.
	MoveLinear MoveKind = "linear"
	// MoveArcCW is a clockwise arc around Center.
	MoveArcCW MoveKind = "arc_cw"
	// MoveArcCCW is a counter-clockwise arc around Center.
	MoveArcCCW MoveKind = "arc_ccw"
)

// IsArc reports whether the kind carries an arc centre.
func (k MoveKind) IsArc() bool {
	return k == MoveArcCW || k == MoveArcCCW
}

// Point is an absolute machine coordinate.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// Add returns the component-wise sum of p and o.
func (p Point) Add(o Point) Point {
	return Point{X: p.X + o.X, Y: p.Y + o.Y, Z: p.Z + o.Z}
}

func (p Point) String() string {
	return fmt.Sprintf("X%s Y%s Z%s", formatCoord(p.X), formatCoord(p.Y), formatCoord(p.Z))
}

// Move is one segment of the path, ending at To.
type Move struct {
	Kind   MoveKind `json:"kind"`
	To     Point    `json:"to"`
	Center *Point   `json:"center,omitempty"`
	Feed   float64  `json:"feed,omitempty"`
	// Line is the 1-based source line the move was decoded from, 0 if unknown.
	Line int `json:"line,omitempty"`
}

// Toolpath is the in-memory motion representation decoders populate.
// The zero value is an empty path in millimetres starting at the origin.
type Toolpath struct {
	Units Units  `json:"units"`
	Moves []Move `json:"moves"`
}

// New returns an empty toolpath.
func New() *Toolpath {
	return &Toolpath{Units: UnitsMillimeters}
}

// Append adds moves to the end of the path.
func (t *Toolpath) Append(moves ...Move) {
	t.Moves = append(t.Moves, moves...)
}

// Len returns the number of moves.
func (t *Toolpath) Len() int {
	if t == nil {
		return 0
	}
	return len(t.Moves)
}

// Bounds is an axis-aligned box around every move endpoint and the origin.
type Bounds struct {
	Min Point `json:"min"`
	Max Point `json:"max"`
}

// Size returns the extent of the box along each axis.
func (b Bounds) Size() Point {
	return Point{X: b.Max.X - b.Min.X, Y: b.Max.Y - b.Min.Y, Z: b.Max.Z - b.Min.Z}
}

// Bounds computes the extent of the path. Arcs contribute their endpoints only.
func (t *Toolpath) Bounds() Bounds {
	b := Bounds{}
	if t == nil {
		return b
	}
	for _, m := range t.Moves {
		b.Min.X = math.Min(b.Min.X, m.To.X)
		b.Min.Y = math.Min(b.Min.Y, m.To.Y)
		b.Min.Z = math.Min(b.Min.Z, m.To.Z)
		b.Max.X = math.Max(b.Max.X, m.To.X)
		b.Max.Y = math.Max(b.Max.Y, m.To.Y)
		b.Max.Z = math.Max(b.Max.Z, m.To.Z)
	}
	return b
}

// Length sums the straight-line distance between consecutive endpoints,
// starting at the origin.
func (t *Toolpath) Length() float64 {
	if t == nil {
		return 0
	}
	var (
		total float64
		prev  Point
	)
	for _, m := range t.Moves {
		dx, dy, dz := m.To.X-prev.X, m.To.Y-prev.Y, m.To.Z-prev.Z
		total += math.Sqrt(dx*dx + dy*dy + dz*dz)
		prev = m.To
	}
	return total
}

// CountByKind tallies moves per kind.
func (t *Toolpath) CountByKind() map[MoveKind]int {
	counts := make(map[MoveKind]int)
	if t == nil {
		return counts
	}
	for _, m := range t.Moves {
		counts[m.Kind]++
	}
	return counts
}
