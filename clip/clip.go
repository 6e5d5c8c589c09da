// Package clip implements the plane clipper (C3): slicing a B-rep by one
// oriented plane while preserving invariants I1-I6. It is the direct
// descendant of epa.PolytopeBuilder.AddPointAndRebuildFaces in the physics
// engine this module grew out of - both mutate a triangle/polygon boundary
// in three ordered passes (classify, split, reclose) using pooled scratch
// buffers instead of allocating fresh state on every call.
package clip

import (
	"github.com/akmonengine/brushgeo/arena"
	"github.com/akmonengine/brushgeo/geom"
	"github.com/go-gl/mathgl/mgl64"
)

// DefaultEpsilon is the half-width of the on-plane band used for distance
// classification: smaller values produce more splits, larger values more
// vertex merging. 0.01 world units matches both reference implementations.
const DefaultEpsilon = 0.01

// Plane is an oriented cutting plane. A point p is clipped (discarded) when
// Normal.Dot(p) - C >= +epsilon, kept when <= -epsilon, and snapped to
// on-plane otherwise. The half-space kept is the negative side; Normal
// points away from the solid's interior.
type Plane struct {
	Normal mgl64.Vec3
	C      float64
}

// Distance returns the signed distance from p to the plane.
func (p Plane) Distance(point mgl64.Vec3) float64 {
	return p.Normal.Dot(point) - p.C
}

// Result reports what kind of clipping happened, mirroring the reference
// clip_result enum so a caller can detect (and optionally log, outside this
// package) a brush whose planes define an empty solid.
type Result int

const (
	// NoChange means no vertex fell on the positive side; the B-rep is
	// byte-identical to before the call.
	NoChange Result = iota
	// TotallyClipped means every visible vertex was clipped: the brush's
	// planes define an empty solid. The B-rep's vertices are now all
	// invisible; the caller should treat the brush as producing no
	// geometry rather than signal an error.
	TotallyClipped
	// PartiallyClipped means the plane cut through the solid: a new cap
	// face was added and invariants I1-I6 hold again.
	PartiallyClipped
)

// Clip slices b by plane, classifying vertices, splitting crossing edges,
// and closing the resulting hole with a new face carrying attrs. The
// per-vertex scratch values (signed distance and occurrence counter) are
// kept in each Vertex's Distance and Occurs fields, so Clip draws nothing
// from alloc itself; a Mark/Reset pair still brackets the call, so
// repeated calls across a brush's planes never grow the allocator's
// footprint.
func Clip(b *geom.MutableBrep, plane Plane, attrs geom.FaceAttributes, alloc arena.Allocator) Result {
	mark := alloc.Mark()
	defer alloc.Reset(mark)

	result := classifyVertices(b, plane, alloc)
	if result != PartiallyClipped {
		return result
	}

	processEdges(b)
	closeFaces(b, plane, attrs)

	return PartiallyClipped
}

// classifyVertices is Phase 1: compute signed distance for each visible
// vertex, hide clipped ones, and snap near-plane distances to exactly 0.
func classifyVertices(b *geom.MutableBrep, plane Plane, alloc arena.Allocator) Result {
	countClipped := 0
	countTotal := 0

	for i := range b.Vertices {
		v := &b.Vertices[i]
		if !v.Visible {
			continue
		}

		countTotal++
		d := plane.Distance(v.Position)

		switch {
		case d >= DefaultEpsilon:
			countClipped++
			b.HideVertex(i)
			v.Distance = d
		case d >= -DefaultEpsilon:
			v.Distance = 0
		default:
			v.Distance = d
		}
	}

	if countClipped == 0 {
		return NoChange
	}
	if countClipped == countTotal {
		return TotallyClipped
	}
	return PartiallyClipped
}

// processEdges is Phase 2: hide fully-clipped edges (removing them from
// their adjacent faces, hiding any face left with no edges), and split
// mixed edges by inserting a new on-plane vertex.
func processEdges(b *geom.MutableBrep) {
	// Edges may be appended to during this loop's own vertex insertion?
	// No - Phase 2 only appends vertices, never edges; the edge count at
	// loop start is stable, so ranging by index over the pre-existing
	// edge slice is safe even though b.Vertices grows underneath it.
	edgeCount := len(b.Edges)

	for i := 0; i < edgeCount; i++ {
		e := &b.Edges[i]
		if !e.Visible {
			continue
		}

		v0 := &b.Vertices[e.V[0]]
		v1 := &b.Vertices[e.V[1]]

		switch {
		case !v0.Visible && !v1.Visible:
			b.HideEdge(i)
			for _, fi := range e.F {
				f := &b.Faces[fi]
				f.RemoveEdge(i)
				if len(f.Edges) == 0 {
					b.HideFace(fi)
				}
			}

		case v0.Visible && v1.Visible:
			// fully visible, nothing to do

		default:
			// half-split: insert a new on-plane vertex at the linear
			// interpolation parameter t = d0 / (d0 - d1). Signs are
			// opposite here (one vertex clipped, one kept), so the
			// denominator is nonzero away from epsilon and carries the
			// correct sign.
			t := v0.Distance / (v0.Distance - v1.Distance)
			pos := lerp(v0.Position, v1.Position, t)
			newIndex := b.AddVertex(pos)

			if v0.Visible {
				e.V[1] = newIndex
			} else {
				e.V[0] = newIndex
			}
		}
	}
}

func lerp(a, b mgl64.Vec3, t float64) mgl64.Vec3 {
	return a.Add(b.Sub(a).Mul(t))
}

// closeFaces is Phase 3: for every still-visible face whose loop was
// broken by Phase 2, find its two open endpoints by occurrence counting
// and connect them with a new edge bordering both the face and a new cap
// face; the cap face's normal is the clipping plane's normal.
func closeFaces(b *geom.MutableBrep, plane Plane, attrs geom.FaceAttributes) {
	newFaceIndex := len(b.Faces)
	capEdges := make([]int, 0, 4)

	for faceIndex := 0; faceIndex < newFaceIndex; faceIndex++ {
		face := &b.Faces[faceIndex]
		if !face.Visible {
			continue
		}

		for _, ei := range face.Edges {
			e := &b.Edges[ei]
			b.Vertices[e.V[0]].Occurs = 0
			b.Vertices[e.V[1]].Occurs = 0
		}
		for _, ei := range face.Edges {
			e := &b.Edges[ei]
			b.Vertices[e.V[0]].Occurs++
			b.Vertices[e.V[1]].Occurs++
		}

		endpoints := [2]int{-1, -1}
		nextSlot := 0

		for _, ei := range face.Edges {
			e := &b.Edges[ei]
			for _, vi := range e.V {
				if b.Vertices[vi].Occurs != 1 {
					continue
				}
				// A vertex that occurs once is an endpoint; mark it
				// consumed (occurs++) so it cannot be reported a second
				// time.
				b.Vertices[vi].Occurs++

				if nextSlot >= 2 {
					panic("clip: face has more than two open endpoints - non-convex or multi-plane input")
				}
				endpoints[nextSlot] = vi
				nextSlot++
			}
		}

		if endpoints[0] == -1 && endpoints[1] == -1 {
			// closed loop untouched by this clip
			continue
		}
		if endpoints[0] == -1 || endpoints[1] == -1 {
			panic("clip: face has exactly one open endpoint - broken precondition")
		}

		newEdgeIndex := b.AddEdge(endpoints[0], endpoints[1], faceIndex, newFaceIndex)
		face.Edges = append(face.Edges, newEdgeIndex)
		capEdges = append(capEdges, newEdgeIndex)
	}

	b.AddFace(capEdges, plane.Normal, attrs)
}
