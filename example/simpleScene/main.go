package main

import (
	"fmt"

	"github.com/akmonengine/brushgeo"
	"github.com/akmonengine/brushgeo/arena"
	"github.com/akmonengine/brushgeo/clip"
	"github.com/akmonengine/brushgeo/geom"
	"github.com/go-gl/mathgl/mgl64"
)

// unitCube returns the six outward-facing planes of an axis-aligned cube of
// the given half-extent, each textured with the same material - a minimal
// brush any BuildGeometry caller can clip the seed against.
func unitCube(halfExtent float64, texture string) brushgeo.Brush {
	axes := []mgl64.Vec3{
		{1, 0, 0}, {-1, 0, 0},
		{0, 1, 0}, {0, -1, 0},
		{0, 0, 1}, {0, 0, -1},
	}

	faces := make([]brushgeo.BrushFace, len(axes))
	for i, n := range axes {
		faces[i] = brushgeo.BrushFace{
			Plane: clip.Plane{Normal: n, C: halfExtent},
			Attrs: geom.FaceAttributes{
				Texture: texture,
				UAxis:   mgl64.Vec3{1, 0, 0},
				VAxis:   mgl64.Vec3{0, 1, 0},
				UScale:  1.0 / 32.0,
				VScale:  1.0 / 32.0,
			},
		}
	}

	return brushgeo.Brush{Faces: faces}
}

func main() {
	entity := brushgeo.Entity{
		Name: "demo_room",
		Brushes: []brushgeo.Brush{
			unitCube(64, "wall.brick"),
			unitCube(16, "floor.tile"),
		},
	}

	model := brushgeo.BuildModel(entity, brushgeo.Options{Workers: 2})

	for _, batch := range model.Batches() {
		fmt.Printf("texture=%-12s vertices=%d triangles=%d\n",
			batch.Texture, batch.VertexCount(), len(batch.Indices)/3)
	}

	alloc := arena.New()
	brep := brushgeo.BuildGeometry(entity.Brushes[0], alloc)
	fmt.Printf("single brush: %d vertices, %d faces\n", len(brep.Vertices), len(brep.Faces))
}
