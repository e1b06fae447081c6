// Package contentdb loads a campaign directory into an indexed, read-only
// database. Loading either returns a fully populated database or a LoadError;
// referential problems are collected as findings and surfaced by Validate.
package contentdb

import (
	"sort"

	"github.com/xbcsmith/antares/content"
	"github.com/xbcsmith/antares/validate"
)

// Database is the in-memory content store for one campaign. It is populated
// once by LoadCampaign and read-only afterwards; replacing a campaign means
// building a new Database and swapping it at the caller's boundary.
type Database struct {
	classes    map[content.ClassID]*content.Class
	races      map[content.RaceID]*content.Race
	items      map[content.ItemID]*content.Item
	spells     map[content.SpellID]*content.Spell
	conditions map[content.ConditionID]*content.Condition
	monsters   map[content.MonsterID]*content.Monster
	maps       map[content.MapID]*content.Map
	quests     map[content.QuestID]*content.Quest
	dialogues  map[content.DialogueID]*content.DialogueTree
	creatures  map[content.CreatureID]*content.CreatureDefinition
	npcs       map[content.NpcID]*content.Npc
	manifest   *content.Manifest

	// Findings recorded during load (duplicate ids). Surfaced via Validate.
	loadFindings []validate.Finding
}

// New returns an empty database.
func New() *Database {
	return &Database{
		classes:    make(map[content.ClassID]*content.Class),
		races:      make(map[content.RaceID]*content.Race),
		items:      make(map[content.ItemID]*content.Item),
		spells:     make(map[content.SpellID]*content.Spell),
		conditions: make(map[content.ConditionID]*content.Condition),
		monsters:   make(map[content.MonsterID]*content.Monster),
		maps:       make(map[content.MapID]*content.Map),
		quests:     make(map[content.QuestID]*content.Quest),
		dialogues:  make(map[content.DialogueID]*content.DialogueTree),
		creatures:  make(map[content.CreatureID]*content.CreatureDefinition),
		npcs:       make(map[content.NpcID]*content.Npc),
	}
}

// Stats is a per-kind count snapshot.
type Stats struct {
	Classes    int `json:"classes"`
	Races      int `json:"races"`
	Items      int `json:"items"`
	Spells     int `json:"spells"`
	Conditions int `json:"conditions"`
	Monsters   int `json:"monsters"`
	Maps       int `json:"maps"`
	Quests     int `json:"quests"`
	Dialogues  int `json:"dialogues"`
	Creatures  int `json:"creatures"`
	Npcs       int `json:"npcs"`
}

// Stats returns the per-kind entity counts.
func (db *Database) Stats() Stats {
	return Stats{
		Classes:    len(db.classes),
		Races:      len(db.races),
		Items:      len(db.items),
		Spells:     len(db.spells),
		Conditions: len(db.conditions),
		Monsters:   len(db.monsters),
		Maps:       len(db.maps),
		Quests:     len(db.quests),
		Dialogues:  len(db.dialogues),
		Creatures:  len(db.creatures),
		Npcs:       len(db.npcs),
	}
}

// Validate runs the full validator with default balance bands.
func (db *Database) Validate() validate.Report {
	return db.ValidateWith(validate.DefaultBands())
}

// ValidateWith runs the full validator with custom balance bands.
func (db *Database) ValidateWith(bands validate.Bands) validate.Report {
	return validate.New(db, bands).ValidateAll()
}

// LoadFindings returns the findings recorded while loading, currently
// duplicate-id reports.
func (db *Database) LoadFindings() []validate.Finding {
	return db.loadFindings
}

// Manifest returns the campaign manifest, or nil when campaign.ron is absent.
func (db *Database) Manifest() *content.Manifest { return db.manifest }

func (db *Database) GetClass(id content.ClassID) (*content.Class, bool) {
	c, ok := db.classes[id]
	return c, ok
}

func (db *Database) GetRace(id content.RaceID) (*content.Race, bool) {
	r, ok := db.races[id]
	return r, ok
}

func (db *Database) GetItem(id content.ItemID) (*content.Item, bool) {
	i, ok := db.items[id]
	return i, ok
}

func (db *Database) GetSpell(id content.SpellID) (*content.Spell, bool) {
	s, ok := db.spells[id]
	return s, ok
}

func (db *Database) GetCondition(id content.ConditionID) (*content.Condition, bool) {
	c, ok := db.conditions[id]
	return c, ok
}

func (db *Database) GetMonster(id content.MonsterID) (*content.Monster, bool) {
	m, ok := db.monsters[id]
	return m, ok
}

func (db *Database) GetMap(id content.MapID) (*content.Map, bool) {
	m, ok := db.maps[id]
	return m, ok
}

func (db *Database) GetQuest(id content.QuestID) (*content.Quest, bool) {
	q, ok := db.quests[id]
	return q, ok
}

func (db *Database) GetDialogue(id content.DialogueID) (*content.DialogueTree, bool) {
	d, ok := db.dialogues[id]
	return d, ok
}

func (db *Database) GetCreature(id content.CreatureID) (*content.CreatureDefinition, bool) {
	c, ok := db.creatures[id]
	return c, ok
}

func (db *Database) GetNpc(id content.NpcID) (*content.Npc, bool) {
	n, ok := db.npcs[id]
	return n, ok
}

// All* accessors return id-sorted slices so iteration order is deterministic.

func (db *Database) AllClasses() []*content.Class {
	return sortedValues(db.classes, func(c *content.Class) content.ClassID { return c.ID })
}

func (db *Database) AllRaces() []*content.Race {
	return sortedValues(db.races, func(r *content.Race) content.RaceID { return r.ID })
}

func (db *Database) AllItems() []*content.Item {
	return sortedValues(db.items, func(i *content.Item) content.ItemID { return i.ID })
}

func (db *Database) AllSpells() []*content.Spell {
	return sortedValues(db.spells, func(s *content.Spell) content.SpellID { return s.ID })
}

func (db *Database) AllConditions() []*content.Condition {
	return sortedValues(db.conditions, func(c *content.Condition) content.ConditionID { return c.ID })
}

func (db *Database) AllMonsters() []*content.Monster {
	return sortedValues(db.monsters, func(m *content.Monster) content.MonsterID { return m.ID })
}

func (db *Database) AllMaps() []*content.Map {
	return sortedValues(db.maps, func(m *content.Map) content.MapID { return m.ID })
}

func (db *Database) AllQuests() []*content.Quest {
	return sortedValues(db.quests, func(q *content.Quest) content.QuestID { return q.ID })
}

func (db *Database) AllDialogues() []*content.DialogueTree {
	return sortedValues(db.dialogues, func(d *content.DialogueTree) content.DialogueID { return d.ID })
}

func (db *Database) AllCreatures() []*content.CreatureDefinition {
	return sortedValues(db.creatures, func(c *content.CreatureDefinition) content.CreatureID { return c.ID })
}

func (db *Database) AllNpcs() []*content.Npc {
	return sortedValues(db.npcs, func(n *content.Npc) content.NpcID { return n.ID })
}

func sortedValues[K comparable, ID ~string | ~uint32, V any](m map[K]*V, key func(*V) ID) []*V {
	out := make([]*V, 0, len(m))
	for _, v := range m {
		out = append(out, v)
	}
	sort.Slice(out, func(i, j int) bool { return key(out[i]) < key(out[j]) })
	return out
}
