package loader

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeContent(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, body := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	return dir
}

const minimalRooms = `{
  "title": "Tiny Dungeon",
  "intro": "In you go.",
  "starting_room": "cell",
  "rooms": [
    {
      "id": "cell", "name": "Cell", "description": "A cell.",
      "exits": {"north": "yard"},
      "locked_exits": {"north": "bent_key"},
      "items": ["bent_key"],
      "chest": {"state": "locked", "key_required": "bent_key", "loot_tier": "common"}
    },
    {
      "id": "yard", "name": "Yard", "description": "A yard.",
      "exits": {"south": "cell"},
      "enemy_id": "rat",
      "has_fountain": true,
      "fountain_effects": ["heal", "curse"]
    }
  ]
}`

const minimalItems = `{
  "items": [
    {"id": "bent_key", "name": "Bent Key", "category": "key"},
    {"id": "crust", "name": "Bread Crust", "category": "consumable", "value": 1, "effect_type": "heal", "effect_value": 5}
  ]
}`

const minimalEnemies = `{
  "enemies": [
    {"id": "rat", "name": "Rat", "hp": 8, "attack": 2, "xp_reward": 5, "gold_reward": 1,
     "drop_table": [{"item_id": "crust", "chance": 0.5}]}
  ]
}`

func TestLoadJSON(t *testing.T) {
	dir := writeContent(t, map[string]string{
		"rooms.json":   minimalRooms,
		"items.json":   minimalItems,
		"enemies.json": minimalEnemies,
	})

	defs, err := Load(dir)
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if defs.Game.Title != "Tiny Dungeon" || defs.Game.Start != "cell" {
		t.Errorf("game = %+v", defs.Game)
	}
	if len(defs.Rooms) != 2 || len(defs.Items) != 2 || len(defs.Enemies) != 1 {
		t.Fatalf("counts: %d rooms, %d items, %d enemies", len(defs.Rooms), len(defs.Items), len(defs.Enemies))
	}

	cell := defs.Rooms["cell"]
	if cell.Chest == nil || cell.Chest.KeyRequired != "bent_key" {
		t.Errorf("chest = %+v", cell.Chest)
	}
	if cell.LockedExits["north"] != "bent_key" {
		t.Errorf("locks = %v", cell.LockedExits)
	}

	// Omitted max_hp defaults to hp, omitted defense to 1.
	rat := defs.Enemies["rat"]
	if rat.MaxHP != 8 {
		t.Errorf("rat MaxHP = %d, want 8", rat.MaxHP)
	}
	if rat.Defense != 1 {
		t.Errorf("rat Defense = %d, want 1", rat.Defense)
	}
}

func TestLoadDefaultTitle(t *testing.T) {
	rooms := strings.Replace(minimalRooms, `"title": "Tiny Dungeon",`, "", 1)
	dir := writeContent(t, map[string]string{
		"rooms.json":   rooms,
		"items.json":   minimalItems,
		"enemies.json": minimalEnemies,
	})

	defs, err := Load(dir)
	if err != nil {
		t.Fatal(err)
	}
	if defs.Game.Title != "Dungeon Crawlr" {
		t.Errorf("title = %q", defs.Game.Title)
	}
}

func TestLoadMissingFile(t *testing.T) {
	dir := writeContent(t, map[string]string{"rooms.json": minimalRooms})
	if _, err := Load(dir); err == nil {
		t.Fatal("loaded without items.json")
	}
}

func TestLoadBadJSON(t *testing.T) {
	dir := writeContent(t, map[string]string{
		"rooms.json":   "{broken",
		"items.json":   minimalItems,
		"enemies.json": minimalEnemies,
	})
	_, err := Load(dir)
	if err == nil {
		t.Fatal("loaded broken JSON")
	}
	if !strings.Contains(err.Error(), "rooms.json") {
		t.Errorf("err = %v, want file name", err)
	}
}

func TestValidationAggregatesErrors(t *testing.T) {
	rooms := `{
  "starting_room": "nowhere",
  "rooms": [
    {"id": "cell", "name": "Cell", "description": "A cell.",
     "exits": {"north": "void"},
     "locked_exits": {"west": "ghost_key"},
     "items": ["phantom"],
     "enemy_id": "dragon",
     "fountain_effects": ["polka"],
     "has_fountain": true}
  ]
}`
	dir := writeContent(t, map[string]string{
		"rooms.json":   rooms,
		"items.json":   `{"items": []}`,
		"enemies.json": `{"enemies": []}`,
	})

	_, err := Load(dir)
	if err == nil {
		t.Fatal("validation passed")
	}
	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("err type %T: %v", err, err)
	}

	wantSubstrings := []string{
		`starting room "nowhere"`,
		`points to undefined room "void"`,
		`locks direction "west" which has no exit`,
		`lock requires undefined item "ghost_key"`,
		`contains undefined item "phantom"`,
		`spawns undefined enemy "dragon"`,
		`unknown effect "polka"`,
	}
	all := err.Error()
	for _, want := range wantSubstrings {
		if !strings.Contains(all, want) {
			t.Errorf("missing %q in:\n%s", want, all)
		}
	}
}

func TestValidationDropTable(t *testing.T) {
	enemies := `{
  "enemies": [
    {"id": "rat", "name": "Rat", "hp": 8,
     "drop_table": [{"item_id": "bent_key", "chance": 1.5}]}
  ]
}`
	dir := writeContent(t, map[string]string{
		"rooms.json":   minimalRooms,
		"items.json":   minimalItems,
		"enemies.json": enemies,
	})

	_, err := Load(dir)
	if err == nil {
		t.Fatal("accepted drop chance above 1")
	}
	if !strings.Contains(err.Error(), "outside [0,1]") {
		t.Errorf("err = %v", err)
	}
}

const luaDungeon = `
Game{
    title = "Lua Dungeon",
    starting_room = "den",
    intro = "Flickering torches.",
}

Room "den" {
    name = "Den",
    description = "A den.",
    exits = { east = "pit" },
    items = { "bone" },
}

Room "pit" {
    name = "Pit",
    description = "A pit.",
    exits = { west = "den" },
    enemy = "bat",
    chest = { state = "trapped", trap_damage = 12 },
}

Item "bone" {
    name = "Old Bone",
    category = "weapon",
    value = 2,
    damage = 1,
}

Enemy "bat" {
    name = "Bat",
    hp = 6,
    attack = 2,
    xp_reward = 4,
    gold_reward = 1,
    drops = {
        { item = "bone", chance = 0.25 },
    },
}
`

func TestLoadLua(t *testing.T) {
	dir := writeContent(t, map[string]string{"dungeon.lua": luaDungeon})

	defs, err := Load(dir)
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if defs.Game.Title != "Lua Dungeon" || defs.Game.Start != "den" {
		t.Errorf("game = %+v", defs.Game)
	}
	pit := defs.Rooms["pit"]
	if pit.EnemyID != "bat" {
		t.Errorf("pit enemy = %q", pit.EnemyID)
	}
	if pit.Chest == nil || pit.Chest.TrapDamage != 12 {
		t.Errorf("pit chest = %+v", pit.Chest)
	}
	if defs.Items["bone"].Damage != 1 {
		t.Errorf("bone = %+v", defs.Items["bone"])
	}
	bat := defs.Enemies["bat"]
	if bat.MaxHP != 6 || bat.Defense != 1 {
		t.Errorf("bat defaults = %+v", bat)
	}
	if len(bat.DropTable) != 1 || bat.DropTable[0].ItemID != "bone" || bat.DropTable[0].Chance != 0.25 {
		t.Errorf("bat drops = %+v", bat.DropTable)
	}
}

func TestLuaDuplicateID(t *testing.T) {
	dupe := luaDungeon + `
Room "den" {
    name = "Second Den",
    description = "Another den.",
}
`
	dir := writeContent(t, map[string]string{"dungeon.lua": dupe})
	if _, err := Load(dir); err == nil {
		t.Fatal("accepted duplicate room id")
	}
}

func TestLuaSandboxBlocksIO(t *testing.T) {
	hostile := `os.execute("true")`
	dir := writeContent(t, map[string]string{"dungeon.lua": hostile})
	if _, err := Load(dir); err == nil {
		t.Fatal("sandbox let os.execute through")
	}
}

func TestLuaBrokenScript(t *testing.T) {
	dir := writeContent(t, map[string]string{"dungeon.lua": "Room 'den' {{{{"})
	if _, err := Load(dir); err == nil {
		t.Fatal("accepted unparseable Lua")
	}
}
