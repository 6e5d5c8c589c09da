// Package meshbuild tessellates a compacted B-rep into per-texture
// triangle meshes (C6): for every textured face, the ordered loop from
// loopwalk is fanned from its first vertex, attributes are emitted per
// loop vertex, and the triangle indices are appended to whichever batch
// matches the face's texture identifier.
package meshbuild

// Vec3 is a plain 3-component float triple, used for mesh stream values so
// this package has no dependency on the B-rep's own vector type beyond what
// Build needs to read from it.
type Vec3 [3]float64

// Batch holds one texture's worth of triangle-mesh data: four parallel
// per-vertex attribute streams plus 16-bit triangle indices. Index type is
// 16-bit per spec; callers are responsible for keeping any one batch under
// 65535 vertices (this package does not split batches automatically).
type Batch struct {
	Texture string

	Positions []Vec3
	Normals   []Vec3
	Tangents  [][4]float64
	UVs       [][2]float64

	Indices []uint16
}

// VertexCount returns the number of vertices currently in the batch.
func (b *Batch) VertexCount() int {
	return len(b.Positions)
}

// addVertex appends one vertex's attributes and returns its index within
// the batch.
func (b *Batch) addVertex(position, normal Vec3, tangent [4]float64, uv [2]float64) uint16 {
	b.Positions = append(b.Positions, position)
	b.Normals = append(b.Normals, normal)
	b.Tangents = append(b.Tangents, tangent)
	b.UVs = append(b.UVs, uv)
	return uint16(len(b.Positions) - 1)
}

// Model is the list of per-texture batches produced by Build, one per
// distinct texture identifier seen across every face of every brush fed
// in, in first-seen order (insertion order, not sorted, to keep output
// deterministic for identical input without imposing an arbitrary
// lexicographic requirement on texture names).
type Model struct {
	order   []string
	batches map[string]*Batch
}

// NewModel returns an empty Model ready to accumulate batches across
// multiple brushes sharing the same texture-batching map (spec §2: "Models
// from multiple brushes share the same batching map").
func NewModel() *Model {
	return &Model{batches: make(map[string]*Batch)}
}

// Batches returns the accumulated batches in first-seen order.
func (m *Model) Batches() []*Batch {
	out := make([]*Batch, len(m.order))
	for i, tex := range m.order {
		out[i] = m.batches[tex]
	}
	return out
}

// batchFor returns the batch for texture, creating it (and recording
// insertion order) on first use.
func (m *Model) batchFor(texture string) *Batch {
	if b, ok := m.batches[texture]; ok {
		return b
	}
	b := &Batch{Texture: texture}
	m.batches[texture] = b
	m.order = append(m.order, texture)
	return b
}
