package content

import (
	"fmt"

	"github.com/xbcsmith/antares/ron"
)

// Condition is a named, possibly-empty bundle of effects applied to a
// character over time. Duration is owned by the caller's effect timer, not by
// the condition itself.
type Condition struct {
	ID          ConditionID `ron:"id" json:"id"`
	Name        string      `ron:"name" json:"name"`
	Description string      `ron:"description,default" json:"description,omitempty"`
	Effects     EffectList  `ron:"effects,default" json:"effects,omitempty"`
}

// Effect is one component of a condition. The concrete types below are the
// only implementations.
type Effect interface {
	effectVariant() string
}

// DamageOverTime deals elemental damage each tick.
type DamageOverTime struct {
	Damage  Dice   `ron:"damage" json:"damage"`
	Element string `ron:"element" json:"element"`
}

// HealOverTime restores hit points each tick.
type HealOverTime struct {
	Amount Dice `ron:"amount" json:"amount"`
}

// AttributeModifier adjusts a named attribute while the condition is applied.
// The full int16 range is legal; 32767 is a valid maximum.
type AttributeModifier struct {
	Attribute string `ron:"attribute" json:"attribute"`
	Value     int16  `ron:"value" json:"value"`
}

func (DamageOverTime) effectVariant() string    { return "DamageOverTime" }
func (HealOverTime) effectVariant() string      { return "HealOverTime" }
func (AttributeModifier) effectVariant() string { return "AttributeModifier" }

// EffectList decodes the tagged-variant form used in condition files:
// DamageOverTime(damage: (count: 1, sides: 4), element: "poison").
type EffectList []Effect

func (l EffectList) MarshalRON() (ron.Value, error) {
	out := make(ron.List, len(l))
	for i, e := range l {
		inner, err := ron.ToValue(e)
		if err != nil {
			return nil, err
		}
		s, ok := inner.(ron.Struct)
		if !ok {
			return nil, &ron.SchemaError{Msg: "effect must encode as a struct"}
		}
		s.Name = e.effectVariant()
		out[i] = s
	}
	return out, nil
}

func (l *EffectList) UnmarshalRON(v ron.Value) error {
	list, ok := v.(ron.List)
	if !ok {
		return &ron.SchemaError{Msg: "effects must be a list"}
	}
	out := make(EffectList, 0, len(list))
	for i, item := range list {
		s, ok := item.(ron.Struct)
		if !ok {
			return &ron.SchemaError{Path: fmt.Sprintf("effects[%d]", i), Msg: "effect must be a tagged variant"}
		}
		var (
			eff Effect
			err error
		)
		switch s.Name {
		case "DamageOverTime":
			var dot DamageOverTime
			err = ron.Decode(anonymous(s), &dot)
			eff = dot
		case "HealOverTime":
			var hot HealOverTime
			err = ron.Decode(anonymous(s), &hot)
			eff = hot
		case "AttributeModifier":
			var mod AttributeModifier
			err = ron.Decode(anonymous(s), &mod)
			eff = mod
		default:
			return &ron.SchemaError{Path: fmt.Sprintf("effects[%d]", i), Msg: fmt.Sprintf("unknown effect variant %q", s.Name)}
		}
		if err != nil {
			return err
		}
		out = append(out, eff)
	}
	*l = out
	return nil
}

// anonymous strips the variant tag so the payload decodes as a plain struct.
func anonymous(s ron.Struct) ron.Struct {
	s.Name = ""
	return s
}
