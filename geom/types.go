// Package geom owns the boundary-representation (B-rep) connectivity graph:
// vertices, edges and faces linked purely by slice index, the same
// index-only adjacency style as epa.Face's point/edge bookkeeping in the
// physics engine this module is adapted from - no pointer graph, no
// lifetime cycles, because there are no back-pointers to begin with.
package geom

import "github.com/go-gl/mathgl/mgl64"

// FaceAttributes carries the texture projection data a brush face contributes
// to every face derived from it (the original face and, after clipping, the
// cap face closing the cut). Faces with an empty Texture - the seed cube's
// faces, and cap faces cut by a plane that carries no texture - are skipped
// by the mesh builder (scenario: an empty brush yields a bare cube with zero
// textured faces, hence zero mesh batches).
type FaceAttributes struct {
	Texture  string
	UAxis    mgl64.Vec3
	VAxis    mgl64.Vec3
	UOffset  float64
	VOffset  float64
	UScale   float64
	VScale   float64
}

// Vertex is a B-rep vertex. Distance and Occurs are transient scratch
// scalars, valid only during one Clip pass (Distance: signed plane distance
// from Phase 1; Occurs: the loop-closure occurrence counter from Phase 3).
type Vertex struct {
	Position mgl64.Vec3
	Distance float64
	Occurs   int
	Visible  bool
}

// Edge connects exactly two vertices and borders exactly two faces.
type Edge struct {
	V       [2]int
	F       [2]int
	Visible bool
}

// Face is an unordered, growable set of edge indices plus an outward
// normal and the texture attributes inherited from the brush plane (the
// zero value for seed faces; clipping never changes an existing face's
// attributes).
type Face struct {
	Edges   []int
	Normal  mgl64.Vec3
	Attrs   FaceAttributes
	Visible bool
}

// HasTexture reports whether this face originated from a textured brush
// plane and should be emitted by the mesh builder.
func (f *Face) HasTexture() bool {
	return f.Attrs.Texture != ""
}

// RemoveEdge deletes the first occurrence of edgeIndex from the face's edge
// set. Edge sets never contain duplicates (invariant I5), so there is at
// most one occurrence to remove.
func (f *Face) RemoveEdge(edgeIndex int) {
	for i, e := range f.Edges {
		if e == edgeIndex {
			f.Edges = append(f.Edges[:i], f.Edges[i+1:]...)
			return
		}
	}
}

// MutableBrep is the live, sparsely-mutated connectivity graph clipped one
// plane at a time. Stale slots belonging to invisible entities are left in
// place until Compact runs; the store never shrinks mid-clip, since
// shifting entries would invalidate every index referencing them.
type MutableBrep struct {
	Vertices []Vertex
	Edges    []Edge
	Faces    []Face

	VisibleVertexCount int
	VisibleEdgeCount   int
	VisibleFaceCount   int
}

// AddVertex appends a new visible vertex and returns its index.
func (b *MutableBrep) AddVertex(position mgl64.Vec3) int {
	b.Vertices = append(b.Vertices, Vertex{Position: position, Visible: true})
	b.VisibleVertexCount++
	return len(b.Vertices) - 1
}

// AddEdge appends a new visible edge and returns its index.
func (b *MutableBrep) AddEdge(v0, v1, f0, f1 int) int {
	b.Edges = append(b.Edges, Edge{V: [2]int{v0, v1}, F: [2]int{f0, f1}, Visible: true})
	b.VisibleEdgeCount++
	return len(b.Edges) - 1
}

// AddFace appends a new visible face and returns its index.
func (b *MutableBrep) AddFace(edges []int, normal mgl64.Vec3, attrs FaceAttributes) int {
	b.Faces = append(b.Faces, Face{Edges: edges, Normal: normal, Attrs: attrs, Visible: true})
	b.VisibleFaceCount++
	return len(b.Faces) - 1
}

// HideVertex marks a vertex invisible and updates the live count.
func (b *MutableBrep) HideVertex(i int) {
	if b.Vertices[i].Visible {
		b.Vertices[i].Visible = false
		b.VisibleVertexCount--
	}
}

// HideEdge marks an edge invisible and updates the live count.
func (b *MutableBrep) HideEdge(i int) {
	if b.Edges[i].Visible {
		b.Edges[i].Visible = false
		b.VisibleEdgeCount--
	}
}

// HideFace marks a face invisible and updates the live count.
func (b *MutableBrep) HideFace(i int) {
	if b.Faces[i].Visible {
		b.Faces[i].Visible = false
		b.VisibleFaceCount--
	}
}

// CompactBrep is the immutable, densely-indexed B-rep produced by the
// compactor (C4): only visible entities, indices remapped and
// monotonically increasing in source order.
type CompactBrep struct {
	Vertices []CompactVertex
	Edges    []CompactEdge
	Faces    []CompactFace
}

type CompactVertex struct {
	Position mgl64.Vec3
}

type CompactEdge struct {
	V [2]int
	F [2]int
}

type CompactFace struct {
	Edges  []int
	Normal mgl64.Vec3
	Attrs  FaceAttributes
}

func (f *CompactFace) HasTexture() bool {
	return f.Attrs.Texture != ""
}
