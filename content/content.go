// Package content defines the value types that campaign data files decode
// into: identifiers, dice, positions, and the entity definitions (classes,
// races, items, spells, conditions, monsters, maps, quests, dialogues,
// creatures). Values are immutable after parsing; all mutation happens in the
// runtime systems that consume them.
package content

import (
	"math/rand"

	"github.com/xbcsmith/antares/ron"
)

// Position is a tile coordinate. Maps address tiles row-major with (0, 0) in
// the top-left corner.
type Position struct {
	X int32 `ron:"x" json:"x"`
	Y int32 `ron:"y" json:"y"`
}

// MarshalRON renders positions in the compact tuple form `(x, y)` used
// throughout map files.
func (p Position) MarshalRON() (ron.Value, error) {
	return ron.Tuple{Items: []ron.Value{ron.Int(p.X), ron.Int(p.Y)}}, nil
}

// UnmarshalRON accepts both `(x, y)` and `(x: 1, y: 2)`.
func (p *Position) UnmarshalRON(v ron.Value) error {
	switch t := v.(type) {
	case ron.Tuple:
		if t.Name != "" || len(t.Items) != 2 {
			return &ron.SchemaError{Msg: "position must be a pair (x, y)"}
		}
		x, okX := t.Items[0].(ron.Int)
		y, okY := t.Items[1].(ron.Int)
		if !okX || !okY {
			return &ron.SchemaError{Msg: "position coordinates must be integers"}
		}
		p.X = int32(x)
		p.Y = int32(y)
		return nil
	case ron.Struct:
		var plain struct {
			X int32 `ron:"x"`
			Y int32 `ron:"y"`
		}
		if err := ron.Decode(t, &plain); err != nil {
			return err
		}
		p.X = plain.X
		p.Y = plain.Y
		return nil
	}
	return &ron.SchemaError{Msg: "position must be a pair (x, y)"}
}

// Dice is a dice expression such as 2d6: Count rolls of a Sides-sided die.
// Zero counts or sides are rejected by validation, not by the type itself.
type Dice struct {
	Count uint16 `ron:"count" json:"count" jsonschema:"minimum=1"`
	Sides uint16 `ron:"sides" json:"sides" jsonschema:"minimum=1"`
}

// Average is the deterministic expected value with integer truncation:
// count * (sides + 1) / 2. 1d4 averages 2, 2d6 averages 7.
func (d Dice) Average() int {
	return int(d.Count) * (int(d.Sides) + 1) / 2
}

// Roll samples the expression with the supplied source.
func (d Dice) Roll(rng *rand.Rand) int {
	if d.Sides == 0 {
		return 0
	}
	total := 0
	for i := 0; i < int(d.Count); i++ {
		total += rng.Intn(int(d.Sides)) + 1
	}
	return total
}
