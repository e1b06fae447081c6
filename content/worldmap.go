package content

// Map is a rectangular tile grid. Tiles is row-major with exactly
// Width*Height entries; Events places event definitions at coordinates; Npcs
// places characters.
type Map struct {
	ID        MapID                `ron:"id" json:"id"`
	Name      string               `ron:"name" json:"name"`
	Width     uint32               `ron:"width" json:"width" jsonschema:"minimum=1"`
	Height    uint32               `ron:"height" json:"height" jsonschema:"minimum=1"`
	Tiles     []Tile               `ron:"tiles" json:"tiles"`
	EventDefs []EventDef           `ron:"event_defs,default" json:"event_defs,omitempty"`
	Events    map[Position]EventID `ron:"events,default" json:"-"`
	Npcs      []NpcPlacement       `ron:"npcs,default" json:"npcs,omitempty"`
}

// TileAt returns the tile at (x, y), or nil when out of bounds.
func (m *Map) TileAt(x, y int32) *Tile {
	if m == nil || !m.InBounds(Position{X: x, Y: y}) {
		return nil
	}
	idx := int(y)*int(m.Width) + int(x)
	if idx >= len(m.Tiles) {
		return nil
	}
	return &m.Tiles[idx]
}

// InBounds reports whether p lies inside the grid.
func (m *Map) InBounds(p Position) bool {
	if m == nil {
		return false
	}
	return p.X >= 0 && p.Y >= 0 && uint32(p.X) < m.Width && uint32(p.Y) < m.Height
}

// Tile is one grid cell. Visited is runtime exploration state and always
// loads as false.
type Tile struct {
	Terrain string `ron:"terrain" json:"terrain"`
	Wall    bool   `ron:"wall,default" json:"wall,omitempty"`
	Blocked bool   `ron:"blocked,default" json:"blocked,omitempty"`
	Dark    bool   `ron:"dark,default" json:"dark,omitempty"`
	Visited bool   `ron:"-" json:"-"`
}

// EventDef declares a triggerable map event. Data is free-form and
// interpreted by the event kind's handler.
type EventDef struct {
	ID   EventID           `ron:"id" json:"id"`
	Kind string            `ron:"kind" json:"kind"`
	Data map[string]string `ron:"data,default" json:"data,omitempty"`
}

// NpcPlacement puts an NPC at a map coordinate.
type NpcPlacement struct {
	NpcID    NpcID    `ron:"npc_id" json:"npc_id"`
	Position Position `ron:"position" json:"position"`
}
