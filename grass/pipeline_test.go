package grass

import (
	"testing"

	"github.com/xbcsmith/antares/vmath"
)

func mustRenderConfig(t *testing.T, cull float32, bands []float32) RenderConfig {
	t.Helper()
	cfg, err := NewRenderConfig(cull, bands)
	if err != nil {
		t.Fatalf("render config: %v", err)
	}
	return cfg
}

func mustInstanceConfig(t *testing.T, enabled bool, max uint32) InstanceConfig {
	t.Helper()
	cfg, err := NewInstanceConfig(enabled, max)
	if err != nil {
		t.Fatalf("instance config: %v", err)
	}
	return cfg
}

func TestConfigValidation(t *testing.T) {
	if _, err := NewRenderConfig(0, []float32{10}); err == nil {
		t.Fatal("zero cull distance must fail")
	}
	if _, err := NewRenderConfig(100, nil); err == nil {
		t.Fatal("empty bands must fail")
	}
	if _, err := NewRenderConfig(100, []float32{10, 10}); err == nil {
		t.Fatal("non-increasing bands must fail")
	}
	if _, err := NewRenderConfig(100, []float32{20, 10}); err == nil {
		t.Fatal("decreasing bands must fail")
	}
	if _, err := NewInstanceConfig(true, 0); err == nil {
		t.Fatal("zero batch cap must fail")
	}
}

func TestCullByDistance(t *testing.T) {
	cfg := mustRenderConfig(t, 50, []float32{25, 50})
	clusters := []Cluster{
		{ID: 0, WorldPosition: vmath.Vec3{X: 10}},
		{ID: 1, WorldPosition: vmath.Vec3{X: 50}},
		{ID: 2, WorldPosition: vmath.Vec3{X: 51}},
	}
	vis := Cull(CameraState{}, clusters, cfg)
	if !vis[0] || !vis[1] {
		t.Fatalf("clusters at and inside the cull distance must be visible: %v", vis)
	}
	if vis[2] {
		t.Fatal("cluster beyond the cull distance must be culled")
	}
}

func TestAssignLODBandsAndTies(t *testing.T) {
	cfg := mustRenderConfig(t, 100, []float32{10, 20, 30})
	clusters := []Cluster{{
		ID: 0,
		Blades: []BladeRef{
			{BladeID: 0, LocalOffset: vmath.Vec3{X: 5}},
			{BladeID: 1, LocalOffset: vmath.Vec3{X: 10}}, // tie with band 0 edge
			{BladeID: 2, LocalOffset: vmath.Vec3{X: 15}},
			{BladeID: 3, LocalOffset: vmath.Vec3{X: 30}}, // tie with last band edge
			{BladeID: 4, LocalOffset: vmath.Vec3{X: 31}}, // beyond all bands
		},
	}}
	vis := Cull(CameraState{}, clusters, cfg)
	view := AssignLOD(CameraState{}, clusters, vis, cfg)

	if len(view.Blades) != 4 {
		t.Fatalf("blades = %d, want 4 (one dropped beyond bands)", len(view.Blades))
	}
	wantLODs := []uint32{0, 0, 1, 2}
	for i, b := range view.Blades {
		if b.LOD != wantLODs[i] {
			t.Fatalf("blade %d lod = %d, want %d", b.Blade, b.LOD, wantLODs[i])
		}
	}
}

func TestInvisibleClusterBladesNotBatched(t *testing.T) {
	cfg := mustRenderConfig(t, 10, []float32{100})
	clusters := []Cluster{
		{ID: 0, WorldPosition: vmath.Vec3{X: 5}, Blades: []BladeRef{{BladeID: 0}}},
		{ID: 1, WorldPosition: vmath.Vec3{X: 500}, Blades: []BladeRef{{BladeID: 1}}},
	}
	vis := Cull(CameraState{}, clusters, cfg)
	view := AssignLOD(CameraState{}, clusters, vis, cfg)
	if len(view.Blades) != 1 || view.Blades[0].Cluster != 0 {
		t.Fatalf("view = %+v, want only cluster 0's blade", view.Blades)
	}
}

func TestViewOrderedByClusterID(t *testing.T) {
	cfg := mustRenderConfig(t, 1000, []float32{1000})
	clusters := []Cluster{
		{ID: 7, Blades: []BladeRef{{BladeID: 70}, {BladeID: 71}}},
		{ID: 2, Blades: []BladeRef{{BladeID: 20}}},
		{ID: 5, Blades: []BladeRef{{BladeID: 50}}},
	}
	vis := Cull(CameraState{}, clusters, cfg)
	view := AssignLOD(CameraState{}, clusters, vis, cfg)

	wantOrder := []BladeID{20, 50, 70, 71}
	if len(view.Blades) != len(wantOrder) {
		t.Fatalf("blades = %d, want %d", len(view.Blades), len(wantOrder))
	}
	for i, b := range view.Blades {
		if b.Blade != wantOrder[i] {
			t.Fatalf("blade[%d] = %d, want %d", i, b.Blade, wantOrder[i])
		}
	}
}

func TestBatchingLargeScene(t *testing.T) {
	// 400 clusters of 8 blades, one (mesh, material) pair, everything visible
	// and inside band 0: 3200 instances split as 1024+1024+1024+128.
	cfg := mustRenderConfig(t, 10000, []float32{10000})
	icfg := mustInstanceConfig(t, true, 1024)

	clusters := make([]Cluster, 400)
	for i := range clusters {
		blades := make([]BladeRef, 8)
		for j := range blades {
			blades[j] = BladeRef{
				BladeID:     BladeID(j),
				LocalOffset: vmath.Vec3{X: float32(j)},
				Mesh:        1,
				Material:    1,
			}
		}
		clusters[i] = Cluster{
			ID:            ClusterID(i),
			WorldPosition: vmath.Vec3{Z: float32(i % 50)},
			Blades:        blades,
		}
	}

	vis := Cull(CameraState{}, clusters, cfg)
	view := AssignLOD(CameraState{}, clusters, vis, cfg)
	batches := BuildBatches(view, icfg)

	wantSizes := []int{1024, 1024, 1024, 128}
	if len(batches) != len(wantSizes) {
		t.Fatalf("batches = %d, want %d", len(batches), len(wantSizes))
	}
	total := 0
	for i, b := range batches {
		if len(b.Instances) != wantSizes[i] {
			t.Fatalf("batch %d size = %d, want %d", i, len(b.Instances), wantSizes[i])
		}
		total += len(b.Instances)
	}
	if total != 3200 {
		t.Fatalf("total instances = %d, want 3200", total)
	}
}

func TestBatchGroupingFirstAppearanceOrder(t *testing.T) {
	cfg := mustRenderConfig(t, 1000, []float32{1000})
	icfg := mustInstanceConfig(t, true, 10)
	clusters := []Cluster{
		{ID: 0, Blades: []BladeRef{
			{BladeID: 0, Mesh: 2, Material: 9},
			{BladeID: 1, Mesh: 1, Material: 9},
			{BladeID: 2, Mesh: 2, Material: 9},
		}},
	}
	vis := Cull(CameraState{}, clusters, cfg)
	view := AssignLOD(CameraState{}, clusters, vis, cfg)
	batches := BuildBatches(view, icfg)

	if len(batches) != 2 {
		t.Fatalf("batches = %d, want 2 groups", len(batches))
	}
	if batches[0].Mesh != 2 || batches[1].Mesh != 1 {
		t.Fatalf("group order = [%d, %d], want first-appearance [2, 1]", batches[0].Mesh, batches[1].Mesh)
	}
	if len(batches[0].Instances) != 2 || len(batches[1].Instances) != 1 {
		t.Fatalf("group sizes = [%d, %d]", len(batches[0].Instances), len(batches[1].Instances))
	}
}

func TestDisabledBatchingReturnsEmpty(t *testing.T) {
	cfg := mustRenderConfig(t, 1000, []float32{1000})
	icfg := mustInstanceConfig(t, false, 64)
	clusters := []Cluster{{ID: 0, Blades: []BladeRef{{BladeID: 0}}}}

	vis := Cull(CameraState{}, clusters, cfg)
	view := AssignLOD(CameraState{}, clusters, vis, cfg)
	if len(view.Blades) != 1 {
		t.Fatal("culling and LOD must still run when batching is disabled")
	}
	batches := BuildBatches(view, icfg)
	if batches == nil || len(batches) != 0 {
		t.Fatalf("batches = %v, want empty non-nil slice", batches)
	}
}

func TestDeterministicOutput(t *testing.T) {
	cfg := mustRenderConfig(t, 100, []float32{25, 50, 100})
	icfg := mustInstanceConfig(t, true, 7)
	clusters := []Cluster{
		{ID: 3, WorldPosition: vmath.Vec3{X: 20}, Blades: []BladeRef{
			{BladeID: 0, LocalOffset: vmath.Vec3{Y: 4}, Mesh: 1, Material: 1},
			{BladeID: 1, LocalOffset: vmath.Vec3{Y: 40}, Mesh: 1, Material: 2},
		}},
		{ID: 1, WorldPosition: vmath.Vec3{X: 60}, Blades: []BladeRef{
			{BladeID: 0, Mesh: 1, Material: 1},
		}},
	}

	run := func() []Batch {
		vis := Cull(CameraState{}, clusters, cfg)
		view := AssignLOD(CameraState{}, clusters, vis, cfg)
		return BuildBatches(view, icfg)
	}
	first := run()
	for i := 0; i < 10; i++ {
		again := run()
		if len(again) != len(first) {
			t.Fatalf("run %d: batch count changed", i)
		}
		for j := range again {
			if again[j].Mesh != first[j].Mesh || again[j].Material != first[j].Material {
				t.Fatalf("run %d: batch %d key changed", i, j)
			}
			if len(again[j].Instances) != len(first[j].Instances) {
				t.Fatalf("run %d: batch %d size changed", i, j)
			}
			for k := range again[j].Instances {
				if again[j].Instances[k] != first[j].Instances[k] {
					t.Fatalf("run %d: batch %d instance %d changed", i, j, k)
				}
			}
		}
	}
}
