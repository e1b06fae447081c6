package content

// Item is anything a character can carry. Damage is only meaningful for
// weapons and ArmorBonus for armor; validation flags weapons without damage.
type Item struct {
	ID         ItemID   `ron:"id" json:"id"`
	Name       string   `ron:"name" json:"name"`
	Kind       ItemKind `ron:"kind" json:"kind"`
	Damage     *Dice    `ron:"damage" json:"damage,omitempty"`
	ArmorBonus uint16   `ron:"armor_bonus,default" json:"armor_bonus,omitempty"`
	Cost       uint32   `ron:"cost,default" json:"cost"`
	Tags       []string `ron:"tags,default" json:"tags,omitempty"`
}

// Spell is a castable spell definition. IDs are numeric and campaign-unique;
// the tutorial content uses the 0x0100 block for cleric spells.
type Spell struct {
	ID            SpellID      `ron:"id" json:"id"`
	Name          string       `ron:"name" json:"name"`
	School        SpellSchool  `ron:"school" json:"school"`
	RequiredLevel uint32       `ron:"required_level" json:"required_level" jsonschema:"minimum=1"`
	SPCost        uint32       `ron:"sp_cost" json:"sp_cost"`
	Context       SpellContext `ron:"context" json:"context"`
	Target        SpellTarget  `ron:"target" json:"target"`
	Description   string       `ron:"description,default" json:"description,omitempty"`
	Damage        *Dice        `ron:"damage" json:"damage,omitempty"`
	Silent        bool         `ron:"silent,default" json:"silent,omitempty"`
}

// Monster is a combat encounter definition.
type Monster struct {
	ID         MonsterID `ron:"id" json:"id"`
	Name       string    `ron:"name" json:"name"`
	Level      uint32    `ron:"level" json:"level"`
	HP         uint32    `ron:"hp" json:"hp"`
	AC         uint16    `ron:"ac,default" json:"ac"`
	Attacks    []Dice    `ron:"attacks,default" json:"attacks,omitempty"`
	Loot       []ItemID  `ron:"loot,default" json:"loot,omitempty"`
	Undead     bool      `ron:"undead,default" json:"undead,omitempty"`
	Experience uint32    `ron:"experience,default" json:"experience"`
}
