// Package loopwalk reconstructs the ordered vertex loop of a compacted
// face from its unordered edge set (C5), the same "walk from a starting
// point, extending by whichever unprocessed edge touches the current
// head" shape as epa.PolytopeBuilder.findBoundaryEdges walks a polytope's
// open boundary - except here the loop is known to close completely
// rather than stop at a boundary.
package loopwalk

import (
	"math"

	"github.com/akmonengine/brushgeo/geom"
)

// Loop is the ordered, closed vertex sequence of a face: Vertices[0] ==
// Vertices[len(Vertices)-1]. Reversed reports whether the cross-product
// accumulator of the walk order points along the face's outward normal,
// in which case the caller (the mesh triangle fan) swaps the last two
// indices of each emitted triangle.
type Loop struct {
	Vertices []int
	Reversed bool
}

// Extract walks face's unordered edge set (indices into edges) into an
// ordered, closed loop over vertices, then determines its winding relative
// to face.Normal.
//
// The walk starts from the first edge's first vertex and repeatedly finds
// an unprocessed edge touching the current head, extending the loop by the
// edge's other endpoint, until every edge has been consumed - this always
// succeeds for a well-formed face (invariant I3: each vertex occurs in
// exactly two of the face's edges, so the walk can never get stuck before
// returning to the start).
func Extract(face *geom.CompactFace, edges []geom.CompactEdge, vertices []geom.CompactVertex) Loop {
	unprocessed := make([]int, len(face.Edges)-1)
	copy(unprocessed, face.Edges[1:])

	sorted := make([]int, 0, len(face.Edges)+1)
	sorted = append(sorted, edges[face.Edges[0]].V[0])
	head := edges[face.Edges[0]].V[1]
	sorted = append(sorted, head)

	for len(unprocessed) > 0 {
		for i, ei := range unprocessed {
			e := edges[ei]
			switch head {
			case e.V[0]:
				head = e.V[1]
			case e.V[1]:
				head = e.V[0]
			default:
				continue
			}
			sorted = append(sorted, head)
			unprocessed = append(unprocessed[:i], unprocessed[i+1:]...)
			break
		}
	}

	return Loop{
		Vertices: sorted,
		Reversed: isReversed(sorted, face.Normal, vertices),
	}
}

// isReversed accumulates N_acc = sum(p[i] x p[i+1]) over consecutive loop
// positions, normalizes it, and compares its sign against the face normal.
// The reference convention reverses the loop when the dot product is
// positive - this is a pinned-down convention (spec.md §9 Open Question 2),
// not a universal one, and depends on the cross-product/winding convention
// chosen elsewhere in this package staying consistent.
func isReversed(loop []int, normal [3]float64, vertices []geom.CompactVertex) bool {
	var acc [3]float64

	for i := 0; i < len(loop)-1; i++ {
		a := vertices[loop[i]].Position
		b := vertices[loop[i+1]].Position
		cross := a.Cross(b)
		acc[0] += cross[0]
		acc[1] += cross[1]
		acc[2] += cross[2]
	}

	length := math.Sqrt(acc[0]*acc[0] + acc[1]*acc[1] + acc[2]*acc[2])
	if length < 1e-12 {
		return false
	}
	acc[0] /= length
	acc[1] /= length
	acc[2] /= length

	dot := acc[0]*normal[0] + acc[1]*normal[1] + acc[2]*normal[2]
	return dot > 0
}
