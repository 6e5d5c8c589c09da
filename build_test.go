package brushgeo

import (
	"testing"

	"github.com/akmonengine/brushgeo/arena"
	"github.com/akmonengine/brushgeo/clip"
	"github.com/akmonengine/brushgeo/geom"
	"github.com/go-gl/mathgl/mgl64"
)

func tetrahedronBrush() Brush {
	return Brush{Faces: []BrushFace{
		{Plane: clip.Plane{Normal: mgl64.Vec3{0, 0, -1}, C: 0}},
		{Plane: clip.Plane{Normal: mgl64.Vec3{0, -1, 0}, C: 0}},
		{Plane: clip.Plane{Normal: mgl64.Vec3{-1, 0, 0}, C: 0}},
		{Plane: clip.Plane{Normal: mgl64.Vec3{1, 1, 1}, C: 1}, Attrs: geom.FaceAttributes{Texture: "slope"}},
	}}
}

func TestBuildGeometryTetrahedron(t *testing.T) {
	out := BuildGeometry(tetrahedronBrush(), arena.HeapAllocator{})

	if got, want := len(out.Vertices), 4; got != want {
		t.Fatalf("vertices = %d, want %d", got, want)
	}
	if got, want := len(out.Edges), 6; got != want {
		t.Fatalf("edges = %d, want %d", got, want)
	}
	if got, want := len(out.Faces), 4; got != want {
		t.Fatalf("faces = %d, want %d", got, want)
	}

	centroid := mgl64.Vec3{0.25, 0.25, 0.25}
	for fi, f := range out.Faces {
		toCentroid := centroid.Sub(vertexPosition(out, f.Edges[0]))
		if f.Normal.Dot(toCentroid) >= 0 {
			t.Errorf("face %d normal %v does not point away from centroid", fi, f.Normal)
		}
	}
}

// vertexPosition returns the position of the first vertex referenced by
// edgeIndex, a convenience for spot-checking a face's outward orientation.
func vertexPosition(brep *geom.CompactBrep, edgeIndex int) mgl64.Vec3 {
	return brep.Vertices[brep.Edges[edgeIndex].V[0]].Position
}

func TestBuildGeometryUnitCubeBySixPlanes(t *testing.T) {
	half := 0.5
	axes := []mgl64.Vec3{
		{1, 0, 0}, {-1, 0, 0},
		{0, 1, 0}, {0, -1, 0},
		{0, 0, 1}, {0, 0, -1},
	}
	faces := make([]BrushFace, len(axes))
	for i, n := range axes {
		faces[i] = BrushFace{Plane: clip.Plane{Normal: n, C: half}}
	}
	brush := Brush{Faces: faces}

	out := BuildGeometry(brush, arena.HeapAllocator{})

	if got, want := len(out.Vertices), 8; got != want {
		t.Fatalf("vertices = %d, want %d", got, want)
	}
	if got, want := len(out.Edges), 12; got != want {
		t.Fatalf("edges = %d, want %d", got, want)
	}
	if got, want := len(out.Faces), 6; got != want {
		t.Fatalf("faces = %d, want %d", got, want)
	}

	// Split vertices come from interpolating by t = d0/(d0-d1), so they land
	// within floating-point rounding of each plane rather than bit-exactly on it.
	for _, v := range out.Vertices {
		for axis := 0; axis < 3; axis++ {
			if absf(absf(v.Position[axis])-half) > 1e-9 {
				t.Errorf("vertex %v not at +-0.5 on axis %d", v.Position, axis)
			}
		}
	}
}

func TestBuildGeometryDeterministic(t *testing.T) {
	brush := tetrahedronBrush()

	a := BuildGeometry(brush, arena.HeapAllocator{})
	b := BuildGeometry(brush, arena.HeapAllocator{})

	if len(a.Vertices) != len(b.Vertices) || len(a.Edges) != len(b.Edges) || len(a.Faces) != len(b.Faces) {
		t.Fatalf("topology differs between runs")
	}
	for i := range a.Vertices {
		if a.Vertices[i].Position != b.Vertices[i].Position {
			t.Errorf("vertex %d differs: %v vs %v", i, a.Vertices[i].Position, b.Vertices[i].Position)
		}
	}
}

func TestBuildModelMergesBatchesAcrossBrushes(t *testing.T) {
	entity := Entity{Brushes: []Brush{tetrahedronBrush(), tetrahedronBrush()}}
	model := BuildModel(entity, Options{Workers: 2})

	batches := model.Batches()
	if len(batches) != 1 {
		t.Fatalf("batches = %d, want 1 (both brushes share the \"slope\" texture)", len(batches))
	}
	if batches[0].VertexCount() != 6 {
		t.Fatalf("merged vertex count = %d, want 6 (3 per brush's single textured face)", batches[0].VertexCount())
	}
}

func absf(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
