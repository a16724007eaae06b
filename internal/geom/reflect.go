package geom

// Mirror reflections across the centerlines of a rectangle. Reflecting a
// rectangle across its own centerline leaves it unchanged.

func (p Point) ReflectX(about Rect) Point {
	return Point{X: about.MinX + about.MaxX - p.X, Y: p.Y}
}

func (p Point) ReflectY(about Rect) Point {
	return Point{X: p.X, Y: about.MinY + about.MaxY - p.Y}
}

func (s Segment) ReflectX(about Rect) Segment {
	return Segment{P0: s.P0.ReflectX(about), P1: s.P1.ReflectX(about)}
}

func (s Segment) ReflectY(about Rect) Segment {
	return Segment{P0: s.P0.ReflectY(about), P1: s.P1.ReflectY(about)}
}

func (r Result) ReflectX(about Rect) Result {
	return Result{Kind: r.Kind, P0: r.P0.ReflectX(about), P1: r.P1.ReflectX(about)}
}

func (r Result) ReflectY(about Rect) Result {
	return Result{Kind: r.Kind, P0: r.P0.ReflectY(about), P1: r.P1.ReflectY(about)}
}
