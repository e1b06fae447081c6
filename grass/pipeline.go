package grass

import (
	"sort"

	"github.com/xbcsmith/antares/vmath"
)

type (
	ClusterID      uint32
	BladeID        uint32
	MeshHandle     uint64
	MaterialHandle uint64
)

// CameraState is the view position the pipeline measures distances from.
type CameraState struct {
	Position vmath.Vec3
}

// BladeRef is one grass blade, positioned relative to its cluster.
type BladeRef struct {
	BladeID     BladeID
	LocalOffset vmath.Vec3
	Scale       float32
	RotationY   float32
	Mesh        MeshHandle
	Material    MaterialHandle
}

// Cluster is a spatial grouping of blades sharing a world position.
type Cluster struct {
	ID            ClusterID
	WorldPosition vmath.Vec3
	Blades        []BladeRef
}

// Visibility is the per-cluster cull result.
type Visibility map[ClusterID]bool

// Cull marks each cluster visible iff its distance from the camera is at most
// the cull distance. Blades inherit their cluster's visibility.
func Cull(cam CameraState, clusters []Cluster, cfg RenderConfig) Visibility {
	vis := make(Visibility, len(clusters))
	for _, c := range clusters {
		vis[c.ID] = vmath.Distance(cam.Position, c.WorldPosition) <= cfg.CullDistance
	}
	return vis
}

// LODBlade is a blade that survived culling and LOD selection, with its
// resolved world position and band index.
type LODBlade struct {
	Cluster   ClusterID
	Blade     BladeID
	Position  vmath.Vec3
	Scale     float32
	RotationY float32
	LOD       uint32
	Mesh      MeshHandle
	Material  MaterialHandle
}

// LODView is the ordered result of LOD assignment: clusters ascending by id,
// blades in their in-cluster order.
type LODView struct {
	Blades []LODBlade
}

// AssignLOD computes each visible blade's distance and picks the smallest
// band that contains it; on a tie with a band edge the lower band wins.
// Blades beyond the last band are dropped. The returned view is ordered by
// cluster id, then by in-cluster blade index.
func AssignLOD(cam CameraState, clusters []Cluster, vis Visibility, cfg RenderConfig) LODView {
	ordered := make([]Cluster, len(clusters))
	copy(ordered, clusters)
	sort.SliceStable(ordered, func(i, j int) bool { return ordered[i].ID < ordered[j].ID })

	view := LODView{}
	for _, c := range ordered {
		if !vis[c.ID] {
			continue
		}
		for _, b := range c.Blades {
			world := vmath.Add(c.WorldPosition, b.LocalOffset)
			d := vmath.Distance(cam.Position, world)
			lod, ok := bandFor(d, cfg.LODBands)
			if !ok {
				continue
			}
			view.Blades = append(view.Blades, LODBlade{
				Cluster:   c.ID,
				Blade:     b.BladeID,
				Position:  world,
				Scale:     b.Scale,
				RotationY: b.RotationY,
				LOD:       lod,
				Mesh:      b.Mesh,
				Material:  b.Material,
			})
		}
	}
	return view
}

func bandFor(d float32, bands []float32) (uint32, bool) {
	for k, limit := range bands {
		if d <= limit {
			return uint32(k), true
		}
	}
	return 0, false
}

// Instance is one renderable blade within a batch.
type Instance struct {
	Position  vmath.Vec3
	Scale     float32
	RotationY float32
	LOD       uint32
}

// Batch is a group of instances sharing mesh and material, capped at the
// configured batch size.
type Batch struct {
	Mesh      MeshHandle
	Material  MaterialHandle
	Instances []Instance
}

// BuildBatches groups the view's blades by (mesh, material) in first-
// appearance order and splits each group into chunks of at most the batch
// cap, preserving blade order within each group. When batching is disabled an
// empty slice is returned; the view itself remains usable by callers.
func BuildBatches(view LODView, cfg InstanceConfig) []Batch {
	if !cfg.Enabled {
		return []Batch{}
	}

	type groupKey struct {
		mesh     MeshHandle
		material MaterialHandle
	}
	order := []groupKey{}
	groups := make(map[groupKey][]Instance)
	for _, b := range view.Blades {
		key := groupKey{mesh: b.Mesh, material: b.Material}
		if _, seen := groups[key]; !seen {
			order = append(order, key)
		}
		groups[key] = append(groups[key], Instance{
			Position:  b.Position,
			Scale:     b.Scale,
			RotationY: b.RotationY,
			LOD:       b.LOD,
		})
	}

	chunk := int(cfg.MaxInstancesPerBatch)
	var batches []Batch
	for _, key := range order {
		instances := groups[key]
		for start := 0; start < len(instances); start += chunk {
			end := start + chunk
			if end > len(instances) {
				end = len(instances)
			}
			batches = append(batches, Batch{
				Mesh:      key.mesh,
				Material:  key.material,
				Instances: instances[start:end],
			})
		}
	}
	if batches == nil {
		return []Batch{}
	}
	return batches
}
