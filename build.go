package brushgeo

import (
	"github.com/akmonengine/brushgeo/arena"
	"github.com/akmonengine/brushgeo/clip"
	"github.com/akmonengine/brushgeo/geom"
	"github.com/akmonengine/brushgeo/meshbuild"
)

// DefaultWorkers is used when Options.Workers is left at zero.
const DefaultWorkers = 1

// Options controls the resources the pipeline's driving functions use.
// NewAllocator, when set, is called once per brush processed in parallel so
// concurrent clips never share a scratch buffer; leave it nil to get a
// fresh arena.Arena per brush.
type Options struct {
	Workers      int
	NewAllocator func() arena.Allocator
}

func (o Options) workers() int {
	if o.Workers < 1 {
		return DefaultWorkers
	}
	return o.Workers
}

func (o Options) newAllocator() arena.Allocator {
	if o.NewAllocator != nil {
		return o.NewAllocator()
	}
	return arena.New()
}

// BuildGeometry clips a fresh seed cube by every face of brush in order,
// then compacts the result. A brush with no faces returns the bare seed
// cube; a brush whose planes clip away every vertex returns an empty
// CompactBrep. alloc scopes every scratch allocation Clip and Compact make; its
// Mark/Reset pair is never straddled across this call's return, so callers
// may safely reuse the same allocator across sequential BuildGeometry
// calls.
func BuildGeometry(brush Brush, alloc arena.Allocator) *geom.CompactBrep {
	b := geom.NewSeed(geom.DefaultSeedHalfExtent)

	for _, face := range brush.Faces {
		result := clip.Clip(b, face.Plane, face.Attrs, alloc)
		if result == clip.TotallyClipped {
			return &geom.CompactBrep{}
		}
	}

	return geom.Compact(b, alloc)
}

// BuildModel clips and compacts every brush of entity, then tessellates
// each into the batches of one shared Model, which it returns. Brushes are
// independent of one another, so they are clipped across opts.workers()
// goroutines; the geom.Compact results are then tessellated sequentially
// into that Model so that batch order stays
// deterministic (P6) regardless of how clipping was scheduled.
func BuildModel(entity Entity, opts Options) *meshbuild.Model {
	breps := make([]*geom.CompactBrep, len(entity.Brushes))

	indices := make([]int, len(entity.Brushes))
	for i := range indices {
		indices[i] = i
	}
	task(opts.workers(), indices, func(i int) {
		alloc := opts.newAllocator()
		breps[i] = BuildGeometry(entity.Brushes[i], alloc)
	})

	model := meshbuild.NewModel()
	for _, brep := range breps {
		meshbuild.Build(model, brep)
	}
	return model
}

// BuildMeshes tessellates a caller-supplied slice of already-compacted
// breps into one shared Model, merging batches by texture across brep
// boundaries (the multi-brush sharing spec.md calls for). It takes no
// allocator: meshbuild.Build only ever appends to heap-backed batch
// slices, it has no scratch state to scope.
func BuildMeshes(breps []*geom.CompactBrep) *meshbuild.Model {
	model := meshbuild.NewModel()
	for _, brep := range breps {
		meshbuild.Build(model, brep)
	}
	return model
}
