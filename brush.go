package brushgeo

import (
	"github.com/akmonengine/brushgeo/clip"
	"github.com/akmonengine/brushgeo/geom"
)

// BrushFace is one bounding plane of a brush, carrying both the half-space
// it cuts and the texture projection the resulting cap face should use.
type BrushFace struct {
	Plane clip.Plane
	Attrs geom.FaceAttributes
}

// Brush is a convex solid defined purely as the intersection of its faces'
// half-spaces. A brush with zero faces clips nothing and yields the bare
// seed cube unchanged.
type Brush struct {
	Faces []BrushFace
}

// Entity is a named group of brushes tessellated into one shared Model -
// the mesh batches of every brush in an entity are merged by texture, so
// two brushes using the same texture land in the same batch.
type Entity struct {
	Name    string
	Brushes []Brush
}
