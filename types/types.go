// Package types defines the shared data structures for the Dungeon Crawlr
// engine. This package contains only type definitions — no logic, no methods.
package types

// ItemCategory tags an ItemDef with its variant. Category-specific fields
// (Damage, DefenseBonus, EffectType/EffectValue) are only meaningful for the
// matching category.
type ItemCategory string

const (
	CategoryWeapon     ItemCategory = "weapon"
	CategoryArmor      ItemCategory = "armor"
	CategoryConsumable ItemCategory = "consumable"
	CategoryKey        ItemCategory = "key"
	CategoryQuest      ItemCategory = "quest"
	CategoryCurrency   ItemCategory = "currency"
	CategoryMisc       ItemCategory = "misc"
)

// EffectType identifies what a consumable does when used. Effects are
// dispatched through a handler table, never string-compared inline.
type EffectType string

const (
	EffectHeal      EffectType = "heal"
	EffectDamage    EffectType = "damage"
	EffectLifesteal EffectType = "lifesteal"
	EffectCure      EffectType = "cure"
	EffectTeleport  EffectType = "teleport"
	EffectRecall    EffectType = "recall"
	EffectTimestop  EffectType = "timestop"
	EffectChaos     EffectType = "chaos"
)

// ItemDef is a static, read-only item definition.
type ItemDef struct {
	ID          string       `json:"id" validate:"required"`
	Name        string       `json:"name" validate:"required"`
	Description string       `json:"description"`
	Category    ItemCategory `json:"category" validate:"required,oneof=weapon armor consumable key quest currency misc"`
	Value       int          `json:"value" validate:"min=0"`
	Weight      int          `json:"weight" validate:"min=0"`
	Stackable   bool         `json:"stackable"`

	// weapon
	Damage int `json:"damage,omitempty" validate:"min=0"`
	// armor
	DefenseBonus int `json:"defense_bonus,omitempty" validate:"min=0"`
	// consumable
	EffectType  EffectType `json:"effect_type,omitempty"`
	EffectValue int        `json:"effect_value,omitempty" validate:"min=0"`
}

// ChestState classifies how a chest behaves when opened.
type ChestState string

const (
	ChestUnlocked ChestState = "unlocked"
	ChestLocked   ChestState = "locked"
	ChestTrapped  ChestState = "trapped"
	ChestMimic    ChestState = "mimic"
)

// ChestDef describes a room's chest. Opened is the only field that mutates
// during play; opening is one-shot per session.
type ChestDef struct {
	State       ChestState `json:"state" validate:"omitempty,oneof=unlocked locked trapped mimic"`
	Opened      bool       `json:"opened"`
	KeyRequired string     `json:"key_required,omitempty"`
	TrapDamage  int        `json:"trap_damage,omitempty" validate:"min=0"`
	FixedLoot   []string   `json:"fixed_loot,omitempty"`
	LootTier    string     `json:"loot_tier,omitempty" validate:"omitempty,oneof=common uncommon rare"`
}

// RoomDef is the authored definition of a dungeon room.
// Invariant: every LockedExits key is also an Exits key.
type RoomDef struct {
	ID               string            `json:"id" validate:"required"`
	Name             string            `json:"name" validate:"required"`
	Description      string            `json:"description" validate:"required"`
	ShortDescription string            `json:"short_description"`
	Exits            map[string]string `json:"exits"`
	LockedExits      map[string]string `json:"locked_exits,omitempty"`
	Items            []string          `json:"items,omitempty"`
	EnemyID          string            `json:"enemy_id,omitempty"`
	Chest            *ChestDef         `json:"chest,omitempty"`

	IsShop        bool     `json:"is_shop,omitempty"`
	ShopInventory []string `json:"shop_inventory,omitempty"`

	HasFountain     bool     `json:"has_fountain,omitempty"`
	FountainEffects []string `json:"fountain_effects,omitempty"`

	IsTavern bool `json:"is_tavern,omitempty"`
}

// DropEntry is one row of an enemy's drop table. Each entry is rolled
// independently against Chance when the enemy dies.
type DropEntry struct {
	ItemID string  `json:"item_id" validate:"required"`
	Chance float64 `json:"chance" validate:"min=0,max=1"`
}

// EnemyDef is the spawn template an Enemy instance is copied from.
type EnemyDef struct {
	ID          string      `json:"id" validate:"required"`
	Name        string      `json:"name" validate:"required"`
	HP          int         `json:"hp" validate:"min=1"`
	MaxHP       int         `json:"max_hp" validate:"min=1"`
	Attack      int         `json:"attack" validate:"min=0"`
	Defense     int         `json:"defense" validate:"min=0"`
	XPReward    int         `json:"xp_reward" validate:"min=0"`
	GoldReward  int         `json:"gold_reward" validate:"min=0"`
	DropTable   []DropEntry `json:"drop_table,omitempty" validate:"dive"`
	Description string      `json:"description"`
}

// GameDef holds dungeon metadata.
type GameDef struct {
	Title   string `json:"title"`
	Author  string `json:"author,omitempty"`
	Version string `json:"version,omitempty"`
	Start   string `json:"starting_room" validate:"required"`
	Intro   string `json:"intro,omitempty"`
}

// Command is the resolved form of one line of player input.
type Command struct {
	Verb string
	Args []string
}

// Result is the output of a single game step.
type Result struct {
	Output []string
	Quit   bool   // session should end (quit confirmed, or terminal state acknowledged)
	Save   string // non-empty: player asked to save under this slot name
}
