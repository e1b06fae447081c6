package content

// String identifiers are stable, human-authored, and unique within their
// kind. Numeric identifiers (spells, creatures) come from the original data
// files and are likewise unique within kind.
type (
	ClassID     string
	RaceID      string
	ItemID      string
	MonsterID   string
	ConditionID string
	QuestID     string
	DialogueID  string
	MapID       string
	NpcID       string

	SpellID    uint32
	CreatureID uint32
	NodeID     uint16
	EventID    uint16
)

// TerminalNode is the sentinel a dialogue choice targets to end the
// conversation. It never appears as a key in a node map.
const TerminalNode NodeID = 0xFFFF
