package geom

import "github.com/akmonengine/brushgeo/arena"

// Compact rewrites the sparse mutable B-rep into a dense one holding only
// visible entities, with every index-reference remapped. Output order is
// monotonically increasing in source index, which is what gives identical
// inputs bit-identical output order (P6).
//
// The two-pass shape mirrors the reference compactor exactly: first copy
// visible entities in source order while filling the three remap tables,
// then rewrite edge vertex/face indices and face edge indices through
// those tables (face indices on edges can only be fixed up once every
// face has been placed, since a face's new index isn't known until the
// face pass runs).
func Compact(b *MutableBrep, alloc arena.Allocator) *CompactBrep {
	mark := alloc.Mark()
	defer alloc.Reset(mark)

	vertexMap := alloc.IntSlice(len(b.Vertices))
	edgeMap := alloc.IntSlice(len(b.Edges))
	faceMap := alloc.IntSlice(len(b.Faces))

	out := &CompactBrep{
		Vertices: make([]CompactVertex, 0, b.VisibleVertexCount),
		Edges:    make([]CompactEdge, 0, b.VisibleEdgeCount),
		Faces:    make([]CompactFace, 0, b.VisibleFaceCount),
	}

	for i, v := range b.Vertices {
		if !v.Visible {
			continue
		}
		vertexMap[i] = len(out.Vertices)
		out.Vertices = append(out.Vertices, CompactVertex{Position: v.Position})
	}

	for i, e := range b.Edges {
		if !e.Visible {
			continue
		}
		edgeMap[i] = len(out.Edges)
		out.Edges = append(out.Edges, CompactEdge{
			V: [2]int{vertexMap[e.V[0]], vertexMap[e.V[1]]},
			F: e.F, // face indices fixed up below, once faceMap is complete
		})
	}

	for i, f := range b.Faces {
		if !f.Visible {
			continue
		}
		faceMap[i] = len(out.Faces)
		edges := make([]int, len(f.Edges))
		for j, e := range f.Edges {
			edges[j] = edgeMap[e]
		}
		out.Faces = append(out.Faces, CompactFace{
			Edges:  edges,
			Normal: f.Normal,
			Attrs:  f.Attrs,
		})
	}

	for i := range out.Edges {
		out.Edges[i].F[0] = faceMap[out.Edges[i].F[0]]
		out.Edges[i].F[1] = faceMap[out.Edges[i].F[1]]
	}

	return out
}
