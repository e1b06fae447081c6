package ron

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type testWeapon struct {
	Name     string `ron:"name"`
	Damage   [2]int `ron:"damage"`
	Value    uint32 `ron:"value"`
	Cursed   bool   `ron:"cursed,default"`
	Material string
}

type testLoadout struct {
	Owner   string         `ron:"owner"`
	Weapons []testWeapon   `ron:"weapons"`
	Notes   *string        `ron:"notes"`
	Slots   map[string]int `ron:"slots,default"`
}

func TestUnmarshalStruct(t *testing.T) {
	src := `(
        owner: "Kara",
        weapons: [
            (name: "Dagger", damage: (1, 4), value: 12, material: "iron"),
        ],
        notes: Some("keep sharp"),
    )`
	var got testLoadout
	require.NoError(t, Unmarshal([]byte(src), &got))

	require.Equal(t, "Kara", got.Owner)
	require.Len(t, got.Weapons, 1)
	require.Equal(t, [2]int{1, 4}, got.Weapons[0].Damage)
	require.Equal(t, "iron", got.Weapons[0].Material)
	require.False(t, got.Weapons[0].Cursed)
	require.NotNil(t, got.Notes)
	require.Equal(t, "keep sharp", *got.Notes)
	require.Nil(t, got.Slots)
}

func TestUnmarshalNoneOption(t *testing.T) {
	var got testLoadout
	src := `(owner: "Bren", weapons: [], notes: None)`
	require.NoError(t, Unmarshal([]byte(src), &got))
	require.Nil(t, got.Notes)
}

func TestUnmarshalRejectsUnknownField(t *testing.T) {
	var got testWeapon
	err := Unmarshal([]byte(`(name: "Axe", damage: (2, 6), value: 5, material: "steel", rarity: 3)`), &got)
	var schema *SchemaError
	require.ErrorAs(t, err, &schema)
	require.Contains(t, schema.Path, "rarity")
}

func TestUnmarshalRejectsMissingField(t *testing.T) {
	var got testWeapon
	err := Unmarshal([]byte(`(name: "Axe")`), &got)
	var schema *SchemaError
	require.ErrorAs(t, err, &schema)
	require.Contains(t, schema.Error(), "missing field")
}

func TestUnmarshalOverflow(t *testing.T) {
	var small struct {
		V uint8 `ron:"v"`
	}
	err := Unmarshal([]byte(`(v: 300)`), &small)
	var schema *SchemaError
	require.ErrorAs(t, err, &schema)

	err = Unmarshal([]byte(`(v: -1)`), &small)
	require.ErrorAs(t, err, &schema)
}

func TestUnmarshalPositionalStruct(t *testing.T) {
	var pos struct {
		X int32 `ron:"x"`
		Y int32 `ron:"y"`
	}
	require.NoError(t, Unmarshal([]byte("(12, -3)"), &pos))
	require.Equal(t, int32(12), pos.X)
	require.Equal(t, int32(-3), pos.Y)
}

func TestMarshalRoundTrip(t *testing.T) {
	note := "heirloom"
	in := testLoadout{
		Owner: "Kara",
		Weapons: []testWeapon{
			{Name: "Dagger", Damage: [2]int{1, 4}, Value: 12, Material: "iron"},
			{Name: "Maul", Damage: [2]int{2, 6}, Value: 90, Cursed: true, Material: "oak"},
		},
		Notes: &note,
		Slots: map[string]int{"belt": 1, "back": 2},
	}
	data, err := Marshal(in)
	require.NoError(t, err)

	var out testLoadout
	require.NoError(t, Unmarshal(data, &out))
	require.Equal(t, in, out)
}

func TestMarshalDeterministic(t *testing.T) {
	in := map[string]int{"c": 3, "a": 1, "b": 2}
	first, err := Marshal(in)
	require.NoError(t, err)
	for i := 0; i < 20; i++ {
		again, err := Marshal(in)
		require.NoError(t, err)
		require.Equal(t, string(first), string(again))
	}
	require.Equal(t, "{\n    \"a\": 1,\n    \"b\": 2,\n    \"c\": 3,\n}\n", string(first))
}

func TestFormatCanonicalizes(t *testing.T) {
	src := "S(b:2,a:1,list:[1,2,3,],)"
	out, err := Format([]byte(src))
	require.NoError(t, err)
	require.Equal(t, "S(\n    b: 2,\n    a: 1,\n    list: [1, 2, 3],\n)\n", string(out))

	// Formatting is idempotent.
	again, err := Format(out)
	require.NoError(t, err)
	require.Equal(t, string(out), string(again))
}

func TestFormatFloats(t *testing.T) {
	out, err := Format([]byte("(radius: 3.0, falloff: 0.25)"))
	require.NoError(t, err)
	require.Contains(t, string(out), "radius: 3.0")
	require.Contains(t, string(out), "falloff: 0.25")
}
