package content

// Class is a playable character class. SpellSchools is the set of schools the
// class may cast from; classes with no schools are pure martials.
type Class struct {
	ID                  ClassID       `ron:"id" json:"id"`
	Name                string        `ron:"name" json:"name"`
	Description         string        `ron:"description,default" json:"description,omitempty"`
	HitDice             Dice          `ron:"hit_dice" json:"hit_dice"`
	SpellSchools        []SpellSchool `ron:"spell_schools,default" json:"spell_schools,omitempty"`
	SpellPointsBase     uint32        `ron:"spell_points_base,default" json:"spell_points_base"`
	SpellPointsPerLevel uint32        `ron:"spell_points_per_level,default" json:"spell_points_per_level"`
	StartingSpells      []SpellID     `ron:"starting_spells,default" json:"starting_spells,omitempty"`
	XPTable             []uint32      `ron:"xp_table,default" json:"xp_table,omitempty"`
	Proficiencies       []string      `ron:"proficiencies,default" json:"proficiencies,omitempty"`
}

// CanCastSchool reports whether the class is allowed to cast from school.
func (c *Class) CanCastSchool(school SpellSchool) bool {
	if c == nil {
		return false
	}
	for _, s := range c.SpellSchools {
		if s == school {
			return true
		}
	}
	return false
}

// Race is a playable race. Modifiers maps attribute names to additive
// adjustments; the full int16 range is legal.
type Race struct {
	ID          RaceID           `ron:"id" json:"id"`
	Name        string           `ron:"name" json:"name"`
	Description string           `ron:"description,default" json:"description,omitempty"`
	Modifiers   map[string]int16 `ron:"modifiers,default" json:"modifiers,omitempty"`
}
