package utils

import (
	"math"
	"sort"

	"github.com/go-gl/mathgl/mgl32"
)

const hullEpsilon = 1e-9

type hullVec = [3]float64

type hullFace struct {
	a, b, c int
	normal  hullVec
	offset  float64
}

// ConvexHull returns the corner points of the convex hull of a point
// cloud, in input order. Degenerate clouds (fewer than four distinct
// points, or all points coplanar) fall back to the deduplicated input,
// which the physics engine still accepts as hull data.
func ConvexHull(points []mgl32.Vec3) []mgl32.Vec3 {
	unique := dedupePoints(points)
	if len(unique) < 4 {
		return unique
	}

	pts := make([]hullVec, len(unique))
	for i, p := range unique {
		pts[i] = hullVec{float64(p.X()), float64(p.Y()), float64(p.Z())}
	}

	faces, ok := initialTetrahedron(pts)
	if !ok {
		return unique
	}

	used := map[int]bool{faces[0].a: true, faces[0].b: true, faces[0].c: true, faces[1].c: true}

	for i := range pts {
		if used[i] {
			continue
		}
		faces = expandHull(faces, pts, i)
	}

	indexes := make([]int, 0, len(faces))
	seen := make(map[int]bool)
	for _, f := range faces {
		for _, idx := range [3]int{f.a, f.b, f.c} {
			if !seen[idx] {
				seen[idx] = true
				indexes = append(indexes, idx)
			}
		}
	}
	sort.Ints(indexes)

	result := make([]mgl32.Vec3, len(indexes))
	for i, idx := range indexes {
		result[i] = unique[idx]
	}
	return result
}

func dedupePoints(points []mgl32.Vec3) []mgl32.Vec3 {
	result := make([]mgl32.Vec3, 0, len(points))
	seen := make(map[mgl32.Vec3]bool, len(points))
	for _, p := range points {
		if !seen[p] {
			seen[p] = true
			result = append(result, p)
		}
	}
	return result
}

func sub(a, b hullVec) hullVec { return hullVec{a[0] - b[0], a[1] - b[1], a[2] - b[2]} }

func cross(a, b hullVec) hullVec {
	return hullVec{
		a[1]*b[2] - a[2]*b[1],
		a[2]*b[0] - a[0]*b[2],
		a[0]*b[1] - a[1]*b[0],
	}
}

func dot(a, b hullVec) float64 { return a[0]*b[0] + a[1]*b[1] + a[2]*b[2] }

func makeFace(pts []hullVec, a, b, c int) hullFace {
	n := cross(sub(pts[b], pts[a]), sub(pts[c], pts[a]))
	return hullFace{a: a, b: b, c: c, normal: n, offset: dot(n, pts[a])}
}

func (f *hullFace) distance(p hullVec) float64 {
	return dot(f.normal, p) - f.offset
}

// initialTetrahedron picks four non-coplanar extreme points and returns
// the four outward-oriented faces spanning them.
func initialTetrahedron(pts []hullVec) ([]hullFace, bool) {
	i0, i1 := 0, 0
	for i, p := range pts {
		if p[0] < pts[i0][0] {
			i0 = i
		}
		if p[0] > pts[i1][0] {
			i1 = i
		}
	}
	if i0 == i1 {
		return nil, false
	}

	// furthest from the i0-i1 line
	i2, best := -1, hullEpsilon
	dir := sub(pts[i1], pts[i0])
	for i, p := range pts {
		d := lenSq(cross(dir, sub(p, pts[i0])))
		if d > best {
			best = d
			i2 = i
		}
	}
	if i2 < 0 {
		return nil, false
	}

	// furthest from the i0-i1-i2 plane
	i3, best := -1, hullEpsilon
	n := cross(sub(pts[i1], pts[i0]), sub(pts[i2], pts[i0]))
	for i, p := range pts {
		if d := math.Abs(dot(n, sub(p, pts[i0]))); d > best {
			best = d
			i3 = i
		}
	}
	if i3 < 0 {
		return nil, false
	}

	faces := []hullFace{
		makeFace(pts, i0, i1, i2),
		makeFace(pts, i0, i2, i3),
		makeFace(pts, i0, i3, i1),
		makeFace(pts, i1, i3, i2),
	}
	center := hullVec{
		(pts[i0][0] + pts[i1][0] + pts[i2][0] + pts[i3][0]) / 4,
		(pts[i0][1] + pts[i1][1] + pts[i2][1] + pts[i3][1]) / 4,
		(pts[i0][2] + pts[i1][2] + pts[i2][2] + pts[i3][2]) / 4,
	}
	for i := range faces {
		if faces[i].distance(center) > 0 {
			f := &faces[i]
			f.b, f.c = f.c, f.b
			*f = makeFace(pts, f.a, f.b, f.c)
		}
	}
	return faces, true
}

func lenSq(v hullVec) float64 { return dot(v, v) }

// expandHull adds point p to the hull: faces that see the point are
// replaced with a fan from the horizon edges to the point.
func expandHull(faces []hullFace, pts []hullVec, p int) []hullFace {
	visible := make([]bool, len(faces))
	any := false
	for i := range faces {
		if faces[i].distance(pts[p]) > hullEpsilon {
			visible[i] = true
			any = true
		}
	}
	if !any {
		return faces
	}

	type edge struct{ a, b int }
	edges := make(map[edge]bool)
	for i, f := range faces {
		if !visible[i] {
			continue
		}
		for _, e := range [3]edge{{f.a, f.b}, {f.b, f.c}, {f.c, f.a}} {
			if edges[edge{e.b, e.a}] {
				delete(edges, edge{e.b, e.a})
			} else {
				edges[e] = true
			}
		}
	}

	next := faces[:0]
	for i, f := range faces {
		if !visible[i] {
			next = append(next, f)
		}
	}

	// deterministic horizon walk
	horizon := make([]edge, 0, len(edges))
	for e := range edges {
		horizon = append(horizon, e)
	}
	sort.Slice(horizon, func(i, j int) bool {
		if horizon[i].a != horizon[j].a {
			return horizon[i].a < horizon[j].a
		}
		return horizon[i].b < horizon[j].b
	})

	for _, e := range horizon {
		next = append(next, makeFace(pts, e.a, e.b, p))
	}
	return next
}
