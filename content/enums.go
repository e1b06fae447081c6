package content

import (
	"fmt"

	"github.com/xbcsmith/antares/ron"
)

// SpellSchool categorises spells and gates which classes may cast them.
type SpellSchool string

const (
	SchoolCleric   SpellSchool = "cleric"
	SchoolSorcerer SpellSchool = "sorcerer"
)

// KnownSchools returns every school the engine understands, in a fixed order.
func KnownSchools() []SpellSchool {
	return []SpellSchool{SchoolCleric, SchoolSorcerer}
}

// SpellContext restricts when a spell may be cast.
type SpellContext string

const (
	ContextAnytime       SpellContext = "anytime"
	ContextCombatOnly    SpellContext = "combat_only"
	ContextNonCombatOnly SpellContext = "non_combat_only"
)

// SpellTarget describes what a spell affects.
type SpellTarget string

const (
	TargetSelf            SpellTarget = "self"
	TargetSingleCharacter SpellTarget = "single_character"
	TargetGroup           SpellTarget = "group"
	TargetArea            SpellTarget = "area"
)

// ItemKind partitions items for equipping and validation rules.
type ItemKind string

const (
	ItemWeapon     ItemKind = "weapon"
	ItemArmor      ItemKind = "armor"
	ItemConsumable ItemKind = "consumable"
	ItemQuest      ItemKind = "quest"
)

// Data files spell enums as bare variants (`Cleric`, `Anytime`); in Go the
// values are lowercase strings so they read naturally in logs and findings.
var (
	schoolVariants = variantTable[SpellSchool]{
		"Cleric":   SchoolCleric,
		"Sorcerer": SchoolSorcerer,
	}
	contextVariants = variantTable[SpellContext]{
		"Anytime":       ContextAnytime,
		"CombatOnly":    ContextCombatOnly,
		"NonCombatOnly": ContextNonCombatOnly,
	}
	targetVariants = variantTable[SpellTarget]{
		"Self":            TargetSelf,
		"SingleCharacter": TargetSingleCharacter,
		"Group":           TargetGroup,
		"Area":            TargetArea,
	}
	itemKindVariants = variantTable[ItemKind]{
		"Weapon":     ItemWeapon,
		"Armor":      ItemArmor,
		"Consumable": ItemConsumable,
		"Quest":      ItemQuest,
	}
)

type variantTable[T ~string] map[string]T

func (vt variantTable[T]) decode(v ron.Value, what string) (T, error) {
	e, ok := v.(ron.Enum)
	if !ok {
		var zero T
		return zero, &ron.SchemaError{Msg: fmt.Sprintf("%s must be a bare variant", what)}
	}
	val, ok := vt[string(e)]
	if !ok {
		var zero T
		return zero, &ron.SchemaError{Msg: fmt.Sprintf("unknown %s %q", what, string(e))}
	}
	return val, nil
}

func (vt variantTable[T]) encode(val T, what string) (ron.Value, error) {
	for name, v := range vt {
		if v == val {
			return ron.Enum(name), nil
		}
	}
	return nil, &ron.SchemaError{Msg: fmt.Sprintf("unknown %s %q", what, string(val))}
}

func (s SpellSchool) MarshalRON() (ron.Value, error) { return schoolVariants.encode(s, "spell school") }
func (s *SpellSchool) UnmarshalRON(v ron.Value) error {
	val, err := schoolVariants.decode(v, "spell school")
	if err != nil {
		return err
	}
	*s = val
	return nil
}

func (c SpellContext) MarshalRON() (ron.Value, error) {
	return contextVariants.encode(c, "spell context")
}
func (c *SpellContext) UnmarshalRON(v ron.Value) error {
	val, err := contextVariants.decode(v, "spell context")
	if err != nil {
		return err
	}
	*c = val
	return nil
}

func (t SpellTarget) MarshalRON() (ron.Value, error) { return targetVariants.encode(t, "spell target") }
func (t *SpellTarget) UnmarshalRON(v ron.Value) error {
	val, err := targetVariants.decode(v, "spell target")
	if err != nil {
		return err
	}
	*t = val
	return nil
}

func (k ItemKind) MarshalRON() (ron.Value, error) { return itemKindVariants.encode(k, "item kind") }
func (k *ItemKind) UnmarshalRON(v ron.Value) error {
	val, err := itemKindVariants.decode(v, "item kind")
	if err != nil {
		return err
	}
	*k = val
	return nil
}
