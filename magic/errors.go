package magic

import "fmt"

// SpellErrorCode enumerates the reasons a cast can be refused.
type SpellErrorCode uint8

const (
	WrongClass SpellErrorCode = iota
	InsufficientLevel
	InsufficientSpellPoints
	WrongContext
	Silenced
)

func (c SpellErrorCode) String() string {
	switch c {
	case WrongClass:
		return "wrong_class"
	case InsufficientLevel:
		return "insufficient_level"
	case InsufficientSpellPoints:
		return "insufficient_spell_points"
	case WrongContext:
		return "wrong_context"
	case Silenced:
		return "silenced"
	}
	return fmt.Sprintf("spell_error(%d)", uint8(c))
}

// SpellError explains a refused cast. Required and Actual carry the level or
// spell-point figures for the codes that have them.
type SpellError struct {
	Code     SpellErrorCode
	Spell    string
	Required uint32
	Actual   uint32
}

func (e *SpellError) Error() string {
	switch e.Code {
	case WrongClass:
		return fmt.Sprintf("cannot cast %q: class cannot cast this school", e.Spell)
	case InsufficientLevel:
		return fmt.Sprintf("cannot cast %q: requires level %d, character is level %d", e.Spell, e.Required, e.Actual)
	case InsufficientSpellPoints:
		return fmt.Sprintf("cannot cast %q: costs %d SP, only %d available", e.Spell, e.Required, e.Actual)
	case WrongContext:
		return fmt.Sprintf("cannot cast %q in this context", e.Spell)
	case Silenced:
		return fmt.Sprintf("cannot cast %q while silenced", e.Spell)
	}
	return fmt.Sprintf("cannot cast %q", e.Spell)
}
