package geom

import "github.com/go-gl/mathgl/mgl64"

// DefaultSeedHalfExtent is the half-size of the seed cube clipping starts
// from. It must exceed any brush's own extent so every plane clips the
// cube strictly inside its interior; 10_000 world units matches both
// reference implementations' WORLD_SIZE constant.
const DefaultSeedHalfExtent = 10_000.0

// NewSeed returns a fully-wired axis-aligned cube B-rep centered on the
// origin with the given half-extent: 8 vertices, 12 edges, 6 faces, vertex
// order front-bottom-left/front-top-left/front-top-right/front-bottom-right
// then the back four in the same planar order. The wiring (which edges
// belong to which faces, which faces border which edges) is reproduced
// verbatim from the reference cube builder so a single-plane cut test can
// assert exact indices.
func NewSeed(halfExtent float64) *MutableBrep {
	w := halfExtent
	min := mgl64.Vec3{-w, -w, -w}
	max := mgl64.Vec3{w, w, w}

	b := &MutableBrep{}

	b.Vertices = []Vertex{
		{Position: mgl64.Vec3{min.X(), min.Y(), min.Z()}, Visible: true}, // 0 front bottom left
		{Position: mgl64.Vec3{min.X(), max.Y(), min.Z()}, Visible: true}, // 1 front top left
		{Position: mgl64.Vec3{max.X(), max.Y(), min.Z()}, Visible: true}, // 2 front top right
		{Position: mgl64.Vec3{max.X(), min.Y(), min.Z()}, Visible: true}, // 3 front bottom right
		{Position: mgl64.Vec3{min.X(), min.Y(), max.Z()}, Visible: true}, // 4 back bottom left
		{Position: mgl64.Vec3{min.X(), max.Y(), max.Z()}, Visible: true}, // 5 back top left
		{Position: mgl64.Vec3{max.X(), max.Y(), max.Z()}, Visible: true}, // 6 back top right
		{Position: mgl64.Vec3{max.X(), min.Y(), max.Z()}, Visible: true}, // 7 back bottom right
	}
	b.VisibleVertexCount = 8

	b.Edges = []Edge{
		{V: [2]int{0, 3}, F: [2]int{0, 5}, Visible: true}, // 0 front-bottom
		{V: [2]int{1, 2}, F: [2]int{0, 4}, Visible: true}, // 1 front-top
		{V: [2]int{0, 1}, F: [2]int{0, 2}, Visible: true}, // 2 front-left
		{V: [2]int{2, 3}, F: [2]int{0, 3}, Visible: true}, // 3 front-right
		{V: [2]int{4, 7}, F: [2]int{1, 5}, Visible: true}, // 4 back-bottom
		{V: [2]int{5, 6}, F: [2]int{1, 4}, Visible: true}, // 5 back-top
		{V: [2]int{4, 5}, F: [2]int{1, 2}, Visible: true}, // 6 back-left
		{V: [2]int{6, 7}, F: [2]int{1, 3}, Visible: true}, // 7 back-right
		{V: [2]int{0, 4}, F: [2]int{5, 2}, Visible: true}, // 8 side-bottom-left
		{V: [2]int{1, 5}, F: [2]int{4, 2}, Visible: true}, // 9 side-top-left
		{V: [2]int{3, 7}, F: [2]int{5, 3}, Visible: true}, // 10 side-bottom-right
		{V: [2]int{2, 6}, F: [2]int{4, 3}, Visible: true}, // 11 side-top-right
	}
	b.VisibleEdgeCount = 12

	b.Faces = []Face{
		{Edges: []int{0, 1, 2, 3}, Normal: mgl64.Vec3{0, 0, -1}, Visible: true},    // 0 front
		{Edges: []int{4, 5, 6, 7}, Normal: mgl64.Vec3{0, 0, 1}, Visible: true},     // 1 back
		{Edges: []int{2, 6, 8, 9}, Normal: mgl64.Vec3{-1, 0, 0}, Visible: true},    // 2 left
		{Edges: []int{3, 7, 10, 11}, Normal: mgl64.Vec3{1, 0, 0}, Visible: true},   // 3 right
		{Edges: []int{1, 5, 9, 11}, Normal: mgl64.Vec3{0, 1, 0}, Visible: true},    // 4 top
		{Edges: []int{0, 4, 8, 10}, Normal: mgl64.Vec3{0, -1, 0}, Visible: true},   // 5 bottom
	}
	b.VisibleFaceCount = 6

	return b
}
