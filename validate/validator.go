package validate

import (
	"fmt"
	"sort"

	"github.com/xbcsmith/antares/content"
)

// Source is the read view of a loaded campaign that the validator consumes.
// *contentdb.Database satisfies it.
type Source interface {
	AllClasses() []*content.Class
	AllRaces() []*content.Race
	AllItems() []*content.Item
	AllSpells() []*content.Spell
	AllConditions() []*content.Condition
	AllMonsters() []*content.Monster
	AllMaps() []*content.Map
	AllQuests() []*content.Quest
	AllDialogues() []*content.DialogueTree
	AllCreatures() []*content.CreatureDefinition
	AllNpcs() []*content.Npc
	Manifest() *content.Manifest
	LoadFindings() []Finding
}

// Bands are the balance heuristics checked at Warning severity.
type Bands struct {
	WeaponAvgMin       int
	WeaponAvgMax       int
	MonsterHPPerLvlMin float64
	MonsterHPPerLvlMax float64
}

// DefaultBands returns the stock balance bands: weapon average damage in
// [1, 30], monster HP per level in [2, 25].
func DefaultBands() Bands {
	return Bands{
		WeaponAvgMin:       1,
		WeaponAvgMax:       30,
		MonsterHPPerLvlMin: 2,
		MonsterHPPerLvlMax: 25,
	}
}

// Validator runs every check over a Source.
type Validator struct {
	src   Source
	bands Bands
}

// New builds a validator with the given balance bands.
func New(src Source, bands Bands) *Validator {
	return &Validator{src: src, bands: bands}
}

// ValidateAll runs every check and returns the complete report. It never
// stops at the first problem.
func (v *Validator) ValidateAll() Report {
	var report Report
	report = append(report, v.src.LoadFindings()...)
	report = append(report, v.checkClasses()...)
	report = append(report, v.checkItems()...)
	report = append(report, v.checkSpells()...)
	report = append(report, v.checkConditions()...)
	report = append(report, v.checkMonsters()...)
	report = append(report, v.checkMaps()...)
	report = append(report, v.checkQuests()...)
	report = append(report, v.checkDialogues()...)
	report = append(report, v.checkCreatures()...)
	report = append(report, v.checkManifest()...)
	return report
}

func (v *Validator) checkClasses() []Finding {
	var out []Finding
	known := make(map[content.SpellSchool]struct{})
	for _, s := range content.KnownSchools() {
		known[s] = struct{}{}
	}
	spells := v.spellIndex()

	for _, class := range v.src.AllClasses() {
		loc := fmt.Sprintf("class %q", class.ID)
		if class.HitDice.Count == 0 || class.HitDice.Sides == 0 {
			out = append(out, errorf("dice", loc, "hit dice must have count and sides of at least 1"))
		}
		for _, school := range class.SpellSchools {
			if _, ok := known[school]; !ok {
				out = append(out, errorf("cross_ref", loc, "unknown spell school %q", school))
			}
		}
		for _, id := range class.StartingSpells {
			spell, ok := spells[id]
			if !ok {
				out = append(out, errorf("cross_ref", loc, "starting spell %#06x does not exist", uint32(id)))
				continue
			}
			if !class.CanCastSchool(spell.School) {
				out = append(out, errorf("school_compat", loc,
					"starting spell %q belongs to school %q the class cannot cast", spell.Name, spell.School))
			}
		}
	}
	return out
}

func (v *Validator) checkItems() []Finding {
	var out []Finding
	for _, item := range v.src.AllItems() {
		loc := fmt.Sprintf("item %q", item.ID)
		if item.Kind == content.ItemWeapon {
			if item.Damage == nil {
				out = append(out, warningf("balance", loc, "weapon has no damage dice"))
				continue
			}
			if item.Damage.Count == 0 || item.Damage.Sides == 0 {
				out = append(out, errorf("dice", loc, "damage dice must have count and sides of at least 1"))
				continue
			}
			avg := item.Damage.Average()
			if avg < v.bands.WeaponAvgMin || avg > v.bands.WeaponAvgMax {
				out = append(out, warningf("balance", loc,
					"average damage %d outside band [%d, %d]", avg, v.bands.WeaponAvgMin, v.bands.WeaponAvgMax))
			}
		}
	}
	return out
}

func (v *Validator) checkSpells() []Finding {
	var out []Finding
	known := make(map[content.SpellSchool]struct{})
	for _, s := range content.KnownSchools() {
		known[s] = struct{}{}
	}
	for _, spell := range v.src.AllSpells() {
		loc := fmt.Sprintf("spell %q", spell.Name)
		if _, ok := known[spell.School]; !ok {
			out = append(out, errorf("cross_ref", loc, "unknown spell school %q", spell.School))
		}
		if spell.RequiredLevel == 0 {
			out = append(out, errorf("bounds", loc, "required level must be at least 1"))
		}
		if spell.Damage != nil && (spell.Damage.Count == 0 || spell.Damage.Sides == 0) {
			out = append(out, errorf("dice", loc, "damage dice must have count and sides of at least 1"))
		}
	}
	return out
}

func (v *Validator) checkConditions() []Finding {
	var out []Finding
	for _, cond := range v.src.AllConditions() {
		loc := fmt.Sprintf("condition %q", cond.ID)
		for i, eff := range cond.Effects {
			switch e := eff.(type) {
			case content.DamageOverTime:
				if e.Damage.Count == 0 || e.Damage.Sides == 0 {
					out = append(out, errorf("dice", loc, "effect %d damage dice must have count and sides of at least 1", i))
				}
			case content.HealOverTime:
				if e.Amount.Count == 0 || e.Amount.Sides == 0 {
					out = append(out, errorf("dice", loc, "effect %d heal dice must have count and sides of at least 1", i))
				}
			}
		}
	}
	return out
}

func (v *Validator) checkMonsters() []Finding {
	var out []Finding
	items := v.itemIndex()
	for _, m := range v.src.AllMonsters() {
		loc := fmt.Sprintf("monster %q", m.ID)
		for _, id := range m.Loot {
			if _, ok := items[id]; !ok {
				out = append(out, errorf("cross_ref", loc, "loot item %q does not exist", id))
			}
		}
		for i, atk := range m.Attacks {
			if atk.Count == 0 || atk.Sides == 0 {
				out = append(out, errorf("dice", loc, "attack %d dice must have count and sides of at least 1", i))
			}
		}
		if m.Level > 0 {
			perLevel := float64(m.HP) / float64(m.Level)
			if perLevel < v.bands.MonsterHPPerLvlMin || perLevel > v.bands.MonsterHPPerLvlMax {
				out = append(out, warningf("balance", loc,
					"HP per level %.1f outside band [%.0f, %.0f]", perLevel, v.bands.MonsterHPPerLvlMin, v.bands.MonsterHPPerLvlMax))
			}
		}
	}
	return out
}

func (v *Validator) checkMaps() []Finding {
	var out []Finding
	npcs := make(map[content.NpcID]struct{})
	for _, npc := range v.src.AllNpcs() {
		npcs[npc.ID] = struct{}{}
	}
	for _, m := range v.src.AllMaps() {
		loc := fmt.Sprintf("map %q", m.ID)
		want := int(m.Width) * int(m.Height)
		if len(m.Tiles) != want {
			out = append(out, errorf("bounds", loc, "tiles length %d, want width*height = %d", len(m.Tiles), want))
		}

		defs := make(map[content.EventID]struct{}, len(m.EventDefs))
		for _, def := range m.EventDefs {
			defs[def.ID] = struct{}{}
		}
		for pos, id := range m.Events {
			if !m.InBounds(pos) {
				out = append(out, errorf("bounds", loc, "event at (%d, %d) outside %dx%d map", pos.X, pos.Y, m.Width, m.Height))
			}
			if _, ok := defs[id]; !ok {
				out = append(out, errorf("cross_ref", loc, "event id %d at (%d, %d) has no definition", id, pos.X, pos.Y))
			}
		}
		for _, p := range m.Npcs {
			if !m.InBounds(p.Position) {
				out = append(out, errorf("bounds", loc,
					"npc %q placed at (%d, %d) outside %dx%d map", p.NpcID, p.Position.X, p.Position.Y, m.Width, m.Height))
			}
			if _, ok := npcs[p.NpcID]; !ok {
				out = append(out, errorf("cross_ref", loc, "npc %q does not exist", p.NpcID))
			}
		}
	}
	return out
}

func (v *Validator) checkQuests() []Finding {
	var out []Finding
	items := v.itemIndex()
	dialogues := make(map[content.DialogueID]struct{})
	for _, d := range v.src.AllDialogues() {
		dialogues[d.ID] = struct{}{}
	}
	maps := make(map[content.MapID]struct{})
	for _, m := range v.src.AllMaps() {
		maps[m.ID] = struct{}{}
	}

	for _, q := range v.src.AllQuests() {
		loc := fmt.Sprintf("quest %q", q.ID)
		if len(q.Steps) == 0 {
			out = append(out, warningf("structure", loc, "quest has no steps"))
		}
		for i, step := range q.Steps {
			if step.Dialogue != nil {
				if _, ok := dialogues[*step.Dialogue]; !ok {
					out = append(out, errorf("cross_ref", loc, "step %d references missing dialogue %q", i, *step.Dialogue))
				}
			}
			if step.Map != nil {
				if _, ok := maps[*step.Map]; !ok {
					out = append(out, errorf("cross_ref", loc, "step %d references missing map %q", i, *step.Map))
				}
			}
			if step.Item != nil {
				if _, ok := items[*step.Item]; !ok {
					out = append(out, errorf("cross_ref", loc, "step %d references missing item %q", i, *step.Item))
				}
			}
		}
		for _, id := range q.Rewards {
			if _, ok := items[id]; !ok {
				out = append(out, errorf("cross_ref", loc, "reward item %q does not exist", id))
			}
		}
	}
	return out
}

// checkDialogues verifies that the root and every choice target resolve, then
// walks the tree from the root. Dangling targets are Errors; nodes that exist
// but cannot be reached are Warnings.
func (v *Validator) checkDialogues() []Finding {
	var out []Finding
	for _, d := range v.src.AllDialogues() {
		loc := fmt.Sprintf("dialogue %q", d.ID)
		if _, ok := d.Nodes[d.Root]; !ok {
			out = append(out, errorf("cross_ref", loc, "root node %d does not exist", d.Root))
			continue
		}

		reached := map[content.NodeID]struct{}{d.Root: {}}
		queue := []content.NodeID{d.Root}
		for len(queue) > 0 {
			id := queue[0]
			queue = queue[1:]
			for _, choice := range d.Nodes[id].Choices {
				if choice.Target == content.TerminalNode {
					continue
				}
				if _, ok := d.Nodes[choice.Target]; !ok {
					out = append(out, errorf("cross_ref", loc, "node %d choice targets missing node %d", id, choice.Target))
					continue
				}
				if _, seen := reached[choice.Target]; !seen {
					reached[choice.Target] = struct{}{}
					queue = append(queue, choice.Target)
				}
			}
		}

		if len(reached) < len(d.Nodes) {
			unreachable := make([]content.NodeID, 0, len(d.Nodes)-len(reached))
			for id := range d.Nodes {
				if _, ok := reached[id]; !ok {
					unreachable = append(unreachable, id)
				}
			}
			sortNodeIDs(unreachable)
			for _, id := range unreachable {
				out = append(out, warningf("reachability", loc, "node %d is unreachable from root", id))
			}
		}
	}
	return out
}

func (v *Validator) checkCreatures() []Finding {
	var out []Finding
	for _, c := range v.src.AllCreatures() {
		loc := fmt.Sprintf("creature %q", c.Name)
		if len(c.MeshTransforms) != len(c.Meshes) {
			out = append(out, errorf("structure", loc,
				"mesh_transforms length %d does not match meshes length %d", len(c.MeshTransforms), len(c.Meshes)))
		}
		for i, mesh := range c.Meshes {
			mloc := fmt.Sprintf("%s mesh %d", loc, i)
			if len(mesh.Indices)%3 != 0 {
				out = append(out, errorf("structure", mloc, "index count %d is not a multiple of 3", len(mesh.Indices)))
			}
			for _, idx := range mesh.Indices {
				if int(idx) >= len(mesh.Vertices) {
					out = append(out, errorf("bounds", mloc, "index %d exceeds vertex count %d", idx, len(mesh.Vertices)))
					break
				}
			}
			if len(mesh.Normals) > 0 && len(mesh.Normals) != len(mesh.Vertices) {
				out = append(out, errorf("structure", mloc, "normal count %d does not match vertex count %d", len(mesh.Normals), len(mesh.Vertices)))
			}
			if len(mesh.UVs) > 0 && len(mesh.UVs) != len(mesh.Vertices) {
				out = append(out, errorf("structure", mloc, "uv count %d does not match vertex count %d", len(mesh.UVs), len(mesh.Vertices)))
			}
			if len(mesh.LODLevels) != len(mesh.LODDistances) {
				out = append(out, errorf("structure", mloc,
					"lod_levels length %d does not match lod_distances length %d", len(mesh.LODLevels), len(mesh.LODDistances)))
			}
		}
	}
	return out
}

func (v *Validator) checkManifest() []Finding {
	man := v.src.Manifest()
	if man == nil || man.StartingMap == nil {
		return nil
	}
	for _, m := range v.src.AllMaps() {
		if m.ID == *man.StartingMap {
			return nil
		}
	}
	return []Finding{errorf("cross_ref", "campaign manifest", "starting map %q does not exist", *man.StartingMap)}
}

func (v *Validator) spellIndex() map[content.SpellID]*content.Spell {
	out := make(map[content.SpellID]*content.Spell)
	for _, s := range v.src.AllSpells() {
		out[s.ID] = s
	}
	return out
}

func (v *Validator) itemIndex() map[content.ItemID]struct{} {
	out := make(map[content.ItemID]struct{})
	for _, item := range v.src.AllItems() {
		out[item.ID] = struct{}{}
	}
	return out
}

func sortNodeIDs(ids []content.NodeID) {
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
}
