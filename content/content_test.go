package content

import (
	"math/rand"
	"testing"

	"github.com/xbcsmith/antares/ron"
)

func TestDiceAverage(t *testing.T) {
	cases := []struct {
		dice Dice
		want int
	}{
		{Dice{Count: 1, Sides: 4}, 2},
		{Dice{Count: 1, Sides: 6}, 3},
		{Dice{Count: 2, Sides: 6}, 7},
		{Dice{Count: 3, Sides: 8}, 13},
		{Dice{Count: 1, Sides: 1}, 1},
	}
	for _, tc := range cases {
		if got := tc.dice.Average(); got != tc.want {
			t.Fatalf("%dd%d average = %d, want %d", tc.dice.Count, tc.dice.Sides, got, tc.want)
		}
	}
}

func TestDiceRollBounds(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	d := Dice{Count: 2, Sides: 6}
	for i := 0; i < 100; i++ {
		got := d.Roll(rng)
		if got < 2 || got > 12 {
			t.Fatalf("2d6 rolled %d, outside [2, 12]", got)
		}
	}
}

func TestSpellDecode(t *testing.T) {
	src := `Spell(
        id: 0x0101,
        name: "Cure Wounds",
        school: Cleric,
        required_level: 1,
        sp_cost: 2,
        context: Anytime,
        target: SingleCharacter,
        damage: None,
    )`
	var s Spell
	if err := ron.Unmarshal([]byte(src), &s); err != nil {
		t.Fatalf("unmarshal spell: %v", err)
	}
	if s.ID != 0x0101 {
		t.Fatalf("id = %#x, want 0x0101", uint32(s.ID))
	}
	if s.School != SchoolCleric {
		t.Fatalf("school = %q, want cleric", s.School)
	}
	if s.Context != ContextAnytime || s.Target != TargetSingleCharacter {
		t.Fatalf("context/target = %q/%q", s.Context, s.Target)
	}
	if s.Damage != nil {
		t.Fatalf("damage should be nil")
	}
}

func TestSpellRejectsUnknownSchool(t *testing.T) {
	src := `Spell(id: 1, name: "X", school: Necromancy, required_level: 1, sp_cost: 1, context: Anytime, target: Self, damage: None)`
	var s Spell
	if err := ron.Unmarshal([]byte(src), &s); err == nil {
		t.Fatal("expected unknown school to be rejected")
	}
}

func TestConditionEffectVariants(t *testing.T) {
	src := `Condition(
        id: "poison",
        name: "Poison",
        effects: [
            DamageOverTime(damage: (count: 1, sides: 4), element: "poison"),
            AttributeModifier(attribute: "strength", value: -2),
        ],
    )`
	var c Condition
	if err := ron.Unmarshal([]byte(src), &c); err != nil {
		t.Fatalf("unmarshal condition: %v", err)
	}
	if len(c.Effects) != 2 {
		t.Fatalf("effects = %d, want 2", len(c.Effects))
	}
	dot, ok := c.Effects[0].(DamageOverTime)
	if !ok {
		t.Fatalf("effects[0] = %T, want DamageOverTime", c.Effects[0])
	}
	if dot.Element != "poison" || dot.Damage.Average() != 2 {
		t.Fatalf("dot = %+v", dot)
	}
	mod, ok := c.Effects[1].(AttributeModifier)
	if !ok || mod.Value != -2 {
		t.Fatalf("effects[1] = %+v", c.Effects[1])
	}
}

func TestAttributeModifierMaxValue(t *testing.T) {
	src := `Condition(
        id: "max_strength_value",
        name: "Max Strength",
        effects: [AttributeModifier(attribute: "strength", value: 32767)],
    )`
	var c Condition
	if err := ron.Unmarshal([]byte(src), &c); err != nil {
		t.Fatalf("unmarshal condition: %v", err)
	}
	mod := c.Effects[0].(AttributeModifier)
	if mod.Value != 32767 {
		t.Fatalf("value = %d, want 32767", mod.Value)
	}
}

func TestAttributeModifierOverflowRejected(t *testing.T) {
	src := `Condition(
        id: "too_strong",
        name: "Too Strong",
        effects: [AttributeModifier(attribute: "strength", value: 32768)],
    )`
	var c Condition
	if err := ron.Unmarshal([]byte(src), &c); err == nil {
		t.Fatal("expected int16 overflow to be rejected")
	}
}

func TestConditionRoundTrip(t *testing.T) {
	in := Condition{
		ID:   "regeneration",
		Name: "Regeneration",
		Effects: EffectList{
			HealOverTime{Amount: Dice{Count: 1, Sides: 4}},
			AttributeModifier{Attribute: "vitality", Value: 1},
		},
	}
	data, err := ron.Marshal(in)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var out Condition
	if err := ron.Unmarshal(data, &out); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(out.Effects) != 2 {
		t.Fatalf("effects = %d, want 2", len(out.Effects))
	}
	if out.Effects[0] != in.Effects[0] || out.Effects[1] != in.Effects[1] {
		t.Fatalf("round trip mismatch: %+v", out.Effects)
	}
}

func TestMapPositionsAndBounds(t *testing.T) {
	src := `Map(
        id: "cellar",
        name: "Cellar",
        width: 2,
        height: 2,
        tiles: [
            (terrain: "stone"),
            (terrain: "stone", wall: true),
            (terrain: "dirt"),
            (terrain: "dirt", dark: true),
        ],
        event_defs: [(id: 1, kind: "stairs_up")],
        events: {(1, 1): 1},
        npcs: [(npc_id: "keeper", position: (0, 1))],
    )`
	var m Map
	if err := ron.Unmarshal([]byte(src), &m); err != nil {
		t.Fatalf("unmarshal map: %v", err)
	}
	if got := m.Events[Position{X: 1, Y: 1}]; got != 1 {
		t.Fatalf("event at (1,1) = %d, want 1", got)
	}
	if !m.InBounds(Position{X: 1, Y: 1}) || m.InBounds(Position{X: 2, Y: 0}) {
		t.Fatal("bounds check wrong")
	}
	tile := m.TileAt(1, 0)
	if tile == nil || !tile.Wall {
		t.Fatalf("tile at (1,0) = %+v", tile)
	}
	if tile.Visited {
		t.Fatal("visited must default to false")
	}
}

func TestDialogueTerminalSentinel(t *testing.T) {
	src := `DialogueTree(
        id: "greeting",
        root: 0,
        nodes: {
            0: (text: "Hello.", choices: [(text: "Bye.", target: 0xFFFF)]),
        },
    )`
	var d DialogueTree
	if err := ron.Unmarshal([]byte(src), &d); err != nil {
		t.Fatalf("unmarshal dialogue: %v", err)
	}
	if d.Nodes[0].Choices[0].Target != TerminalNode {
		t.Fatalf("target = %d, want terminal sentinel", d.Nodes[0].Choices[0].Target)
	}
}
