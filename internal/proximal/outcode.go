package proximal

import (
	"strings"

	"proximal/internal/geom"
)

// Outcode is a point's zone relative to a rectangle. At most one of Left and
// Right is set, and at most one of Bottom and Top.
type Outcode uint8

const (
	Inside Outcode = 0b0000
	Left   Outcode = 0b0001
	Right  Outcode = 0b0010
	Bottom Outcode = 0b0100
	Top    Outcode = 0b1000
)

// Classify returns the outcode of p against r. Points on a boundary are
// inside on that axis.
func Classify(p geom.Point, r geom.Rect) Outcode {
	var code Outcode
	if p.X < r.MinX {
		code = Left
	} else if p.X > r.MaxX {
		code = Right
	}
	if p.Y < r.MinY {
		code |= Bottom
	} else if p.Y > r.MaxY {
		code |= Top
	}
	return code
}

func (c Outcode) Has(flag Outcode) bool { return c&flag != 0 }

func (c Outcode) String() string {
	if c == Inside {
		return "INSIDE"
	}
	var parts []string
	for _, s := range sides {
		if c.Has(s.code) {
			parts = append(parts, s.name)
		}
	}
	return strings.Join(parts, "|")
}
