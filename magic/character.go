// Package magic is the casting rules engine: class/school gating, spell-point
// accounting, cast validation with an explicit error taxonomy, and condition
// tick application. Everything is pure except CastSpell, which deducts spell
// points on success.
package magic

import (
	"fmt"

	"github.com/xbcsmith/antares/content"
)

// AttributePair is a current/maximum pair for pools like HP and SP.
type AttributePair struct {
	Current uint32
	Max     uint32
}

// Character is the runtime view of a party member that the casting rules
// need. It is owned by the caller; the engine mutates only SP.Current.
type Character struct {
	Name     string
	Class    *content.Class
	Level    uint32
	HP       AttributePair
	SP       AttributePair
	Silenced bool
}

// GameMode is the current play context.
type GameMode uint8

const (
	Exploration GameMode = iota
	Combat
)

func (m GameMode) String() string {
	switch m {
	case Exploration:
		return "exploration"
	case Combat:
		return "combat"
	}
	return fmt.Sprintf("mode(%d)", uint8(m))
}

// CharacterDelta aggregates the outcome of one condition tick. Positive HP
// heals, negative HP damages; Attributes holds transient modifiers by name.
type CharacterDelta struct {
	HP         int
	SP         int
	Attributes map[string]int16
}

// ApplyTo folds the delta into a character, clamping pools to [0, max].
func (d CharacterDelta) ApplyTo(ch *Character) {
	if ch == nil {
		return
	}
	ch.HP.Current = applyDelta(ch.HP.Current, ch.HP.Max, d.HP)
	ch.SP.Current = applyDelta(ch.SP.Current, ch.SP.Max, d.SP)
}

func applyDelta(current, max uint32, delta int) uint32 {
	v := int64(current) + int64(delta)
	if v < 0 {
		return 0
	}
	if v > int64(max) {
		return max
	}
	return uint32(v)
}
