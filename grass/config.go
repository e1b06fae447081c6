// Package grass is the algorithmic core of the grass renderer: distance
// culling, level-of-detail assignment, and instance batching over a flattened
// cluster view. All three operations are pure and deterministic; the renderer
// consumes their output.
package grass

import "fmt"

// ConfigError reports an invalid configuration at construction time.
type ConfigError struct {
	Field string
	Msg   string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("grass config: %s: %s", e.Field, e.Msg)
}

// RenderConfig controls culling and LOD selection. Construct it with
// NewRenderConfig so the invariants hold.
type RenderConfig struct {
	CullDistance float32
	LODBands     []float32
}

// NewRenderConfig validates that the cull distance is positive and the LOD
// bands are positive and strictly increasing.
func NewRenderConfig(cullDistance float32, lodBands []float32) (RenderConfig, error) {
	if cullDistance <= 0 {
		return RenderConfig{}, &ConfigError{Field: "cull_distance", Msg: "must be positive"}
	}
	if len(lodBands) == 0 {
		return RenderConfig{}, &ConfigError{Field: "lod_bands", Msg: "at least one band is required"}
	}
	prev := float32(0)
	for i, band := range lodBands {
		if band <= prev {
			return RenderConfig{}, &ConfigError{
				Field: "lod_bands",
				Msg:   fmt.Sprintf("band %d (%g) must be greater than %g", i, band, prev),
			}
		}
		prev = band
	}
	bands := make([]float32, len(lodBands))
	copy(bands, lodBands)
	return RenderConfig{CullDistance: cullDistance, LODBands: bands}, nil
}

// InstanceConfig controls batching. Construct it with NewInstanceConfig.
type InstanceConfig struct {
	Enabled              bool
	MaxInstancesPerBatch uint32
}

// NewInstanceConfig validates that the batch cap is at least one.
func NewInstanceConfig(enabled bool, maxInstancesPerBatch uint32) (InstanceConfig, error) {
	if maxInstancesPerBatch == 0 {
		return InstanceConfig{}, &ConfigError{Field: "max_instances_per_batch", Msg: "must be at least 1"}
	}
	return InstanceConfig{Enabled: enabled, MaxInstancesPerBatch: maxInstancesPerBatch}, nil
}
