package meshbuild

import (
	"math"

	"github.com/akmonengine/brushgeo/geom"
	"github.com/akmonengine/brushgeo/loopwalk"
	"github.com/go-gl/mathgl/mgl64"
)

// Build tessellates one compacted brep into triangles, appending them to
// dst's batches (creating new batches on first use of a texture). Faces
// with no texture (seed-cube faces, and caps cut by untextured planes) are
// skipped - they bound the solid but are not rendered.
//
// Positions are emitted rounded to the nearest world-unit integer; UVs are
// computed from the unrounded position. This mirrors tb_model.cpp exactly,
// rounding error and all: the reference carries a standing "I still see
// edges in the render" comment at this exact step, which this port
// preserves rather than silently correcting, since fixing it would diverge
// from the grounding source's tested behavior.
func Build(dst *Model, brep *geom.CompactBrep) {
	for _, face := range brep.Faces {
		if !face.HasTexture() {
			continue
		}

		loop := loopwalk.Extract(&face, brep.Edges, brep.Vertices)
		emitFace(dst, &face, loop, brep.Vertices)
	}
}

// emitFace appends one vertex per loop position (loop's closing repeat of
// vertex 0 excluded) and fans triangles from the first emitted index.
func emitFace(dst *Model, face *geom.CompactFace, loop loopwalk.Loop, vertices []geom.CompactVertex) {
	batch := dst.batchFor(face.Attrs.Texture)

	// Vertices[len-1] duplicates Vertices[0] to close the loop; drop it
	// before emitting mesh vertices, since the fan must not repeat vertex 0.
	ring := loop.Vertices[:len(loop.Vertices)-1]
	if len(ring) < 3 {
		return
	}

	meshIndices := make([]uint16, len(ring))
	for i, vi := range ring {
		meshIndices[i] = emitVertex(batch, face, vertices[vi].Position)
	}

	for i := 1; i < len(ring)-1; i++ {
		a, b, c := meshIndices[0], meshIndices[i], meshIndices[i+1]
		if loop.Reversed {
			b, c = c, b
		}
		batch.Indices = append(batch.Indices, a, b, c)
	}
}

func emitVertex(batch *Batch, face *geom.CompactFace, position mgl64.Vec3) uint16 {
	attrs := face.Attrs

	u := position.Dot(attrs.UAxis)*attrs.UScale + attrs.UOffset
	v := position.Dot(attrs.VAxis)*attrs.VScale + attrs.VOffset

	rounded := Vec3{
		roundToInt(position.X()),
		roundToInt(position.Y()),
		roundToInt(position.Z()),
	}
	normal := Vec3{face.Normal.X(), face.Normal.Y(), face.Normal.Z()}
	tangent := [4]float64{attrs.UAxis.X(), attrs.UAxis.Y(), attrs.UAxis.Z(), 0.0}

	return batch.addVertex(rounded, normal, tangent, [2]float64{u, v})
}

// roundToInt mirrors the reference's round_to_int: round to the nearest
// whole number, held as a float rather than cast to an integer type, since
// the mesh position stream is float throughout.
func roundToInt(value float64) float64 {
	return math.Round(value)
}
