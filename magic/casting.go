package magic

import (
	"math"
	"math/rand"

	"github.com/xbcsmith/antares/content"
)

// CanClassCastSchool reports whether the class may cast from the school.
func CanClassCastSchool(class *content.Class, school content.SpellSchool) bool {
	return class.CanCastSchool(school)
}

// RequiredLevel returns the minimum character level for the spell.
func RequiredLevel(spell *content.Spell) uint32 {
	if spell == nil {
		return 0
	}
	return spell.RequiredLevel
}

// SpellPointsForLevel computes a class's spell-point pool at the given level:
// base + per_level * (level - 1), saturating at the uint32 maximum.
func SpellPointsForLevel(class *content.Class, level uint32) uint32 {
	if class == nil || level == 0 {
		return 0
	}
	total := uint64(class.SpellPointsBase) + uint64(class.SpellPointsPerLevel)*uint64(level-1)
	if total > math.MaxUint32 {
		return math.MaxUint32
	}
	return uint32(total)
}

// CanCastSpell checks every casting precondition and returns nil or the
// first applicable *SpellError. It never mutates the character. Check order:
// class, level, spell points, context, silence.
func CanCastSpell(ch *Character, spell *content.Spell, mode GameMode) error {
	if !CanClassCastSchool(ch.Class, spell.School) {
		return &SpellError{Code: WrongClass, Spell: spell.Name}
	}
	if ch.Level < spell.RequiredLevel {
		return &SpellError{Code: InsufficientLevel, Spell: spell.Name, Required: spell.RequiredLevel, Actual: ch.Level}
	}
	if ch.SP.Current < spell.SPCost {
		return &SpellError{Code: InsufficientSpellPoints, Spell: spell.Name, Required: spell.SPCost, Actual: ch.SP.Current}
	}
	switch spell.Context {
	case content.ContextCombatOnly:
		if mode != Combat {
			return &SpellError{Code: WrongContext, Spell: spell.Name}
		}
	case content.ContextNonCombatOnly:
		if mode != Exploration {
			return &SpellError{Code: WrongContext, Spell: spell.Name}
		}
	}
	if ch.Silenced && !spell.Silent {
		return &SpellError{Code: Silenced, Spell: spell.Name}
	}
	return nil
}

// CastResult reports the outcome of CastSpell.
type CastResult struct {
	Success bool
	Message string
}

// CastSpell deducts the spell's SP cost from the character. Preconditions are
// assumed checked by CanCastSpell; as a last guard, a cast with insufficient
// SP fails and leaves SP unchanged.
func CastSpell(ch *Character, spell *content.Spell) CastResult {
	if ch.SP.Current < spell.SPCost {
		return CastResult{Success: false, Message: "not enough spell points"}
	}
	ch.SP.Current -= spell.SPCost
	return CastResult{Success: true, Message: spell.Name + " cast"}
}

// Roller samples dice expressions. Implementations inject randomness; a nil
// roller means deterministic mode, which uses the dice average.
type Roller interface {
	Roll(d content.Dice) int
}

// RandomRoller samples dice with a seeded source.
type RandomRoller struct {
	Rng *rand.Rand
}

func (r RandomRoller) Roll(d content.Dice) int { return d.Roll(r.Rng) }

// ApplyConditionTick evaluates one tick of a condition and returns the
// aggregate delta. Damage subtracts HP, healing adds HP, and attribute
// modifiers accumulate by name. Duration bookkeeping belongs to the caller.
func ApplyConditionTick(cond *content.Condition, roller Roller) CharacterDelta {
	delta := CharacterDelta{}
	if cond == nil {
		return delta
	}
	sample := func(d content.Dice) int {
		if roller == nil {
			return d.Average()
		}
		return roller.Roll(d)
	}
	for _, eff := range cond.Effects {
		switch e := eff.(type) {
		case content.DamageOverTime:
			delta.HP -= sample(e.Damage)
		case content.HealOverTime:
			delta.HP += sample(e.Amount)
		case content.AttributeModifier:
			if delta.Attributes == nil {
				delta.Attributes = make(map[string]int16)
			}
			delta.Attributes[e.Attribute] += e.Value
		}
	}
	return delta
}
