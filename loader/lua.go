package loader

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	lua "github.com/yuin/gopher-lua"

	"github.com/kariannharris-star/Dungeon-crawlr/engine/state"
	"github.com/kariannharris-star/Dungeon-crawlr/types"
)

// collector accumulates Lua definitions during file execution.
type collector struct {
	game    *lua.LTable
	rooms   []rawDef
	items   []rawDef
	enemies []rawDef
}

// rawDef holds a definition table before compilation.
type rawDef struct {
	id    string
	table *lua.LTable
}

// loadLua reads all .lua files from dir, compiles them into dungeon
// definitions, validates references, and returns the immutable Defs. The
// Lua VM is discarded after loading.
func loadLua(dir string) (*state.Defs, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading content directory %s: %w", dir, err)
	}
	var luaFiles []string
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), ".lua") {
			luaFiles = append(luaFiles, e.Name())
		}
	}
	sort.Strings(luaFiles)

	L := lua.NewState(lua.Options{SkipOpenLibs: true})
	defer L.Close()
	openSafeLibs(L)
	sandbox(L)

	coll := &collector{}
	registerAPI(L, coll)

	for _, f := range luaFiles {
		if err := L.DoFile(filepath.Join(dir, f)); err != nil {
			return nil, fmt.Errorf("executing %s: %w", f, err)
		}
	}

	defs, err := compile(coll)
	if err != nil {
		return nil, fmt.Errorf("compiling dungeon data: %w", err)
	}
	if err := validate(defs); err != nil {
		return nil, err
	}
	return defs, nil
}

// openSafeLibs opens only the safe subset of Lua standard libraries.
func openSafeLibs(L *lua.LState) {
	lua.OpenBase(L)
	lua.OpenTable(L)
	lua.OpenString(L)
	lua.OpenMath(L)
}

// sandbox removes dangerous globals and functions.
func sandbox(L *lua.LState) {
	dangerous := []string{
		"dofile", "loadfile", "load", "loadstring",
		"rawset", "rawget", "rawequal",
		"collectgarbage",
	}
	for _, name := range dangerous {
		L.SetGlobal(name, lua.LNil)
	}
	// Remove math.randomseed to preserve determinism.
	if mathTbl := L.GetGlobal("math"); mathTbl != lua.LNil {
		if tbl, ok := mathTbl.(*lua.LTable); ok {
			tbl.RawSetString("randomseed", lua.LNil)
		}
	}
}

// registerAPI registers the Lua constructors as globals. Room, Item, and
// Enemy are curried: Room("id") returns a function that takes a table.
func registerAPI(L *lua.LState, coll *collector) {
	L.SetGlobal("Game", L.NewFunction(func(L *lua.LState) int {
		coll.game = L.CheckTable(1)
		return 0
	}))
	L.SetGlobal("Room", curried(L, &coll.rooms))
	L.SetGlobal("Item", curried(L, &coll.items))
	L.SetGlobal("Enemy", curried(L, &coll.enemies))
}

func curried(L *lua.LState, dst *[]rawDef) *lua.LFunction {
	return L.NewFunction(func(L *lua.LState) int {
		id := L.CheckString(1)
		L.Push(L.NewFunction(func(L *lua.LState) int {
			*dst = append(*dst, rawDef{id: id, table: L.CheckTable(1)})
			return 0
		}))
		return 1
	})
}

// compile converts the collected Lua tables into typed definitions.
func compile(coll *collector) (*state.Defs, error) {
	defs := &state.Defs{
		Rooms:   make(map[string]types.RoomDef, len(coll.rooms)),
		Items:   make(map[string]types.ItemDef, len(coll.items)),
		Enemies: make(map[string]types.EnemyDef, len(coll.enemies)),
	}

	if coll.game != nil {
		defs.Game = types.GameDef{
			Title:   getString(coll.game, "title"),
			Author:  getString(coll.game, "author"),
			Version: getString(coll.game, "version"),
			Start:   getString(coll.game, "starting_room"),
			Intro:   getString(coll.game, "intro"),
		}
	}
	if defs.Game.Title == "" {
		defs.Game.Title = "Dungeon Crawlr"
	}

	for _, raw := range coll.rooms {
		if _, dup := defs.Rooms[raw.id]; dup {
			return nil, fmt.Errorf("duplicate room id %q", raw.id)
		}
		defs.Rooms[raw.id] = compileRoom(raw)
	}
	for _, raw := range coll.items {
		if _, dup := defs.Items[raw.id]; dup {
			return nil, fmt.Errorf("duplicate item id %q", raw.id)
		}
		defs.Items[raw.id] = compileItem(raw)
	}
	for _, raw := range coll.enemies {
		if _, dup := defs.Enemies[raw.id]; dup {
			return nil, fmt.Errorf("duplicate enemy id %q", raw.id)
		}
		enemy := compileEnemy(raw)
		applyEnemyDefaults(&enemy)
		defs.Enemies[raw.id] = enemy
	}
	return defs, nil
}

func compileRoom(raw rawDef) types.RoomDef {
	tbl := raw.table
	room := types.RoomDef{
		ID:               raw.id,
		Name:             getString(tbl, "name"),
		Description:      getString(tbl, "description"),
		ShortDescription: getString(tbl, "short_description"),
		Exits:            tableToStringMap(getTable(tbl, "exits")),
		LockedExits:      tableToStringMap(getTable(tbl, "locked_exits")),
		Items:            tableToStringList(getTable(tbl, "items")),
		EnemyID:          getString(tbl, "enemy"),
		IsShop:           getBool(tbl, "is_shop", false),
		ShopInventory:    tableToStringList(getTable(tbl, "shop_inventory")),
		HasFountain:      getBool(tbl, "has_fountain", false),
		FountainEffects:  tableToStringList(getTable(tbl, "fountain_effects")),
		IsTavern:         getBool(tbl, "is_tavern", false),
	}
	if chestTbl := getTable(tbl, "chest"); chestTbl != nil {
		room.Chest = &types.ChestDef{
			State:       types.ChestState(getString(chestTbl, "state")),
			KeyRequired: getString(chestTbl, "key_required"),
			TrapDamage:  getInt(chestTbl, "trap_damage"),
			FixedLoot:   tableToStringList(getTable(chestTbl, "fixed_loot")),
			LootTier:    getString(chestTbl, "loot_tier"),
		}
	}
	return room
}

func compileItem(raw rawDef) types.ItemDef {
	tbl := raw.table
	return types.ItemDef{
		ID:           raw.id,
		Name:         getString(tbl, "name"),
		Description:  getString(tbl, "description"),
		Category:     types.ItemCategory(getString(tbl, "category")),
		Value:        getInt(tbl, "value"),
		Weight:       getInt(tbl, "weight"),
		Stackable:    getBool(tbl, "stackable", false),
		Damage:       getInt(tbl, "damage"),
		DefenseBonus: getInt(tbl, "defense_bonus"),
		EffectType:   types.EffectType(getString(tbl, "effect_type")),
		EffectValue:  getInt(tbl, "effect_value"),
	}
}

func compileEnemy(raw rawDef) types.EnemyDef {
	tbl := raw.table
	enemy := types.EnemyDef{
		ID:          raw.id,
		Name:        getString(tbl, "name"),
		HP:          getInt(tbl, "hp"),
		MaxHP:       getInt(tbl, "max_hp"),
		Attack:      getInt(tbl, "attack"),
		Defense:     getInt(tbl, "defense"),
		XPReward:    getInt(tbl, "xp_reward"),
		GoldReward:  getInt(tbl, "gold_reward"),
		Description: getString(tbl, "description"),
	}
	if drops := getTable(tbl, "drops"); drops != nil {
		drops.ForEach(func(_, v lua.LValue) {
			entry, ok := v.(*lua.LTable)
			if !ok {
				return
			}
			enemy.DropTable = append(enemy.DropTable, types.DropEntry{
				ItemID: getString(entry, "item"),
				Chance: getNumber(entry, "chance"),
			})
		})
	}
	return enemy
}

// getString returns a string field from a Lua table, or "" if missing.
func getString(tbl *lua.LTable, key string) string {
	if s, ok := tbl.RawGetString(key).(lua.LString); ok {
		return string(s)
	}
	return ""
}

// getBool returns a bool field from a Lua table, or the default if missing.
func getBool(tbl *lua.LTable, key string, def bool) bool {
	if b, ok := tbl.RawGetString(key).(lua.LBool); ok {
		return bool(b)
	}
	return def
}

// getNumber returns a numeric field from a Lua table, or 0 if missing.
func getNumber(tbl *lua.LTable, key string) float64 {
	if n, ok := tbl.RawGetString(key).(lua.LNumber); ok {
		return float64(n)
	}
	return 0
}

func getInt(tbl *lua.LTable, key string) int {
	return int(getNumber(tbl, key))
}

// getTable returns a table field from a Lua table, or nil if missing.
func getTable(tbl *lua.LTable, key string) *lua.LTable {
	if t, ok := tbl.RawGetString(key).(*lua.LTable); ok {
		return t
	}
	return nil
}

func tableToStringMap(tbl *lua.LTable) map[string]string {
	if tbl == nil {
		return nil
	}
	m := map[string]string{}
	tbl.ForEach(func(k, v lua.LValue) {
		ks, kok := k.(lua.LString)
		vs, vok := v.(lua.LString)
		if kok && vok {
			m[string(ks)] = string(vs)
		}
	})
	return m
}

func tableToStringList(tbl *lua.LTable) []string {
	if tbl == nil {
		return nil
	}
	var out []string
	for i := 1; i <= tbl.MaxN(); i++ {
		if s, ok := tbl.RawGetInt(i).(lua.LString); ok {
			out = append(out, string(s))
		}
	}
	return out
}
