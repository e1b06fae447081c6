package contentdb

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/xbcsmith/antares/content"
	"github.com/xbcsmith/antares/ron"
	"github.com/xbcsmith/antares/validate"
)

// LoadErrorKind classifies load failures.
type LoadErrorKind uint8

const (
	// LoadIo is a filesystem failure.
	LoadIo LoadErrorKind = iota
	// LoadSyntax is malformed text, with Line and Col set.
	LoadSyntax
	// LoadSchema is well-formed text of the wrong shape.
	LoadSchema
	// LoadMissing is a required file that does not exist.
	LoadMissing
)

func (k LoadErrorKind) String() string {
	switch k {
	case LoadIo:
		return "io"
	case LoadSyntax:
		return "syntax"
	case LoadSchema:
		return "schema"
	case LoadMissing:
		return "missing"
	}
	return fmt.Sprintf("load_error(%d)", uint8(k))
}

// LoadError is a fatal campaign loading failure.
type LoadError struct {
	Kind LoadErrorKind
	Path string
	Line int
	Col  int
	Err  error
}

func (e *LoadError) Error() string {
	switch e.Kind {
	case LoadSyntax:
		return fmt.Sprintf("%s:%d:%d: %v", e.Path, e.Line, e.Col, e.Err)
	case LoadMissing:
		return fmt.Sprintf("%s: required file is missing", e.Path)
	default:
		return fmt.Sprintf("%s: %v", e.Path, e.Err)
	}
}

func (e *LoadError) Unwrap() error { return e.Err }

// Campaign files in load order. Later kinds may reference earlier ones, so
// classes load before spells and maps before quests.
var loadOrder = []string{
	"classes.ron",
	"races.ron",
	"items.ron",
	"spells.ron",
	"conditions.ron",
	"monsters.ron",
	// maps/*.ron load here
	"quests.ron",
	"dialogues.ron",
	"creatures.ron",
	"npcs.ron",
}

var requiredFiles = map[string]bool{
	"classes.ron": true,
	"items.ron":   true,
	"spells.ron":  true,
}

// LoadCampaign reads a campaign directory into a new database. Missing
// optional files load as empty; a missing required file, unreadable file, or
// malformed file aborts with a *LoadError. Duplicate ids within a file do not
// abort: the first occurrence wins and the duplicate is recorded as a finding
// surfaced by Validate.
func LoadCampaign(dir string) (*Database, error) {
	db := New()

	if err := loadKind(db, dir, "classes.ron", insertClass); err != nil {
		return nil, err
	}
	if err := loadKind(db, dir, "races.ron", insertRace); err != nil {
		return nil, err
	}
	if err := loadKind(db, dir, "items.ron", insertItem); err != nil {
		return nil, err
	}
	if err := loadKind(db, dir, "spells.ron", insertSpell); err != nil {
		return nil, err
	}
	if err := loadKind(db, dir, "conditions.ron", insertCondition); err != nil {
		return nil, err
	}
	if err := loadKind(db, dir, "monsters.ron", insertMonster); err != nil {
		return nil, err
	}
	if err := loadMaps(db, dir); err != nil {
		return nil, err
	}
	if err := loadKind(db, dir, "quests.ron", insertQuest); err != nil {
		return nil, err
	}
	if err := loadKind(db, dir, "dialogues.ron", insertDialogue); err != nil {
		return nil, err
	}
	if err := loadKind(db, dir, "creatures.ron", insertCreature); err != nil {
		return nil, err
	}
	if err := loadKind(db, dir, "npcs.ron", insertNpc); err != nil {
		return nil, err
	}
	if err := loadManifest(db, dir); err != nil {
		return nil, err
	}
	return db, nil
}

// loadKind reads one list file and inserts each entry. insert reports the
// entity's kind and id when the id is already taken.
func loadKind[T any](db *Database, dir, name string, insert func(*Database, *T) (string, string, bool)) error {
	path := filepath.Join(dir, name)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			if requiredFiles[name] {
				return &LoadError{Kind: LoadMissing, Path: path, Err: err}
			}
			return nil
		}
		return &LoadError{Kind: LoadIo, Path: path, Err: err}
	}

	var entries []T
	if err := ron.Unmarshal(data, &entries); err != nil {
		return wrapDecodeError(path, err)
	}
	for i := range entries {
		if kind, id, dup := insert(db, &entries[i]); dup {
			db.loadFindings = append(db.loadFindings, validate.Finding{
				Severity: validate.Error,
				Kind:     "duplicate",
				Location: fmt.Sprintf("%s %q", kind, id),
				Message:  fmt.Sprintf("duplicate %s id %q, first definition wins", kind, id),
			})
		}
	}
	return nil
}

func loadMaps(db *Database, dir string) error {
	mapsDir := filepath.Join(dir, "maps")
	entries, err := os.ReadDir(mapsDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return &LoadError{Kind: LoadIo, Path: mapsDir, Err: err}
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".ron" {
			continue
		}
		names = append(names, entry.Name())
	}
	sort.Strings(names)

	for _, name := range names {
		path := filepath.Join(mapsDir, name)
		data, err := os.ReadFile(path)
		if err != nil {
			return &LoadError{Kind: LoadIo, Path: path, Err: err}
		}
		var m content.Map
		if err := ron.Unmarshal(data, &m); err != nil {
			return wrapDecodeError(path, err)
		}
		if _, taken := db.maps[m.ID]; taken {
			db.loadFindings = append(db.loadFindings, validate.Finding{
				Severity: validate.Error,
				Kind:     "duplicate",
				Location: fmt.Sprintf("map %q", m.ID),
				Message:  fmt.Sprintf("duplicate map id %q, first definition wins", m.ID),
			})
			continue
		}
		db.maps[m.ID] = &m
	}
	return nil
}

func loadManifest(db *Database, dir string) error {
	path := filepath.Join(dir, "campaign.ron")
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return &LoadError{Kind: LoadIo, Path: path, Err: err}
	}
	var man content.Manifest
	if err := ron.Unmarshal(data, &man); err != nil {
		return wrapDecodeError(path, err)
	}
	db.manifest = &man
	return nil
}

func wrapDecodeError(path string, err error) error {
	var syn *ron.SyntaxError
	if errors.As(err, &syn) {
		return &LoadError{Kind: LoadSyntax, Path: path, Line: syn.Line, Col: syn.Col, Err: err}
	}
	return &LoadError{Kind: LoadSchema, Path: path, Err: err}
}

func insertClass(db *Database, c *content.Class) (string, string, bool) {
	if _, taken := db.classes[c.ID]; taken {
		return "class", string(c.ID), true
	}
	db.classes[c.ID] = c
	return "", "", false
}

func insertRace(db *Database, r *content.Race) (string, string, bool) {
	if _, taken := db.races[r.ID]; taken {
		return "race", string(r.ID), true
	}
	db.races[r.ID] = r
	return "", "", false
}

func insertItem(db *Database, i *content.Item) (string, string, bool) {
	if _, taken := db.items[i.ID]; taken {
		return "item", string(i.ID), true
	}
	db.items[i.ID] = i
	return "", "", false
}

func insertSpell(db *Database, s *content.Spell) (string, string, bool) {
	if _, taken := db.spells[s.ID]; taken {
		return "spell", fmt.Sprintf("%#06x", uint32(s.ID)), true
	}
	db.spells[s.ID] = s
	return "", "", false
}

func insertCondition(db *Database, c *content.Condition) (string, string, bool) {
	if _, taken := db.conditions[c.ID]; taken {
		return "condition", string(c.ID), true
	}
	db.conditions[c.ID] = c
	return "", "", false
}

func insertMonster(db *Database, m *content.Monster) (string, string, bool) {
	if _, taken := db.monsters[m.ID]; taken {
		return "monster", string(m.ID), true
	}
	db.monsters[m.ID] = m
	return "", "", false
}

func insertQuest(db *Database, q *content.Quest) (string, string, bool) {
	if _, taken := db.quests[q.ID]; taken {
		return "quest", string(q.ID), true
	}
	db.quests[q.ID] = q
	return "", "", false
}

func insertDialogue(db *Database, d *content.DialogueTree) (string, string, bool) {
	if _, taken := db.dialogues[d.ID]; taken {
		return "dialogue", string(d.ID), true
	}
	db.dialogues[d.ID] = d
	return "", "", false
}

func insertCreature(db *Database, c *content.CreatureDefinition) (string, string, bool) {
	if _, taken := db.creatures[c.ID]; taken {
		return "creature", fmt.Sprintf("%d", uint32(c.ID)), true
	}
	db.creatures[c.ID] = c
	return "", "", false
}

func insertNpc(db *Database, n *content.Npc) (string, string, bool) {
	if _, taken := db.npcs[n.ID]; taken {
		return "npc", string(n.ID), true
	}
	db.npcs[n.ID] = n
	return "", "", false
}
