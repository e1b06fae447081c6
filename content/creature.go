package content

// CreatureDefinition is the visual definition of a creature: one or more
// meshes with a transform apiece. MeshTransforms must match Meshes in length.
type CreatureDefinition struct {
	ID             CreatureID       `ron:"id" json:"id"`
	Name           string           `ron:"name" json:"name"`
	Meshes         []MeshDefinition `ron:"meshes" json:"meshes"`
	MeshTransforms []MeshTransform  `ron:"mesh_transforms" json:"mesh_transforms"`
	Scale          float32          `ron:"scale,default" json:"scale,omitempty"`
	ColorTint      *[4]float32      `ron:"color_tint" json:"color_tint,omitempty"`
}

// MeshTransform positions one mesh relative to the creature origin.
type MeshTransform struct {
	Offset   [3]float32 `ron:"offset" json:"offset"`
	Rotation [3]float32 `ron:"rotation,default" json:"rotation,omitempty"`
	Scale    float32    `ron:"scale,default" json:"scale,omitempty"`
}

// MeshDefinition is raw geometry. Indices length must be a multiple of three;
// Normals and UVs, when present, must match Vertices in length. LODLevels and
// LODDistances must match each other in length.
type MeshDefinition struct {
	Name         string       `ron:"name,default" json:"name,omitempty"`
	Vertices     [][3]float32 `ron:"vertices" json:"vertices"`
	Indices      []uint32     `ron:"indices" json:"indices"`
	Normals      [][3]float32 `ron:"normals,default" json:"normals,omitempty"`
	UVs          [][2]float32 `ron:"uvs,default" json:"uvs,omitempty"`
	BaseColor    [4]float32   `ron:"base_color" json:"base_color"`
	LODLevels    []uint32     `ron:"lod_levels,default" json:"lod_levels,omitempty"`
	LODDistances []float32    `ron:"lod_distances,default" json:"lod_distances,omitempty"`
	Material     string       `ron:"material,default" json:"material,omitempty"`
	TexturePath  string       `ron:"texture_path,default" json:"texture_path,omitempty"`
}

// Manifest is the optional campaign.ron descriptor.
type Manifest struct {
	ID          string `ron:"id" json:"id"`
	Name        string `ron:"name" json:"name"`
	Version     string `ron:"version,default" json:"version,omitempty"`
	Author      string `ron:"author,default" json:"author,omitempty"`
	Description string `ron:"description,default" json:"description,omitempty"`
	StartingMap *MapID `ron:"starting_map" json:"starting_map,omitempty"`
}
