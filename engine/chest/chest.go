// Package chest implements opening room chests: locked, trapped, and mimic
// variants, fixed loot, and tiered random loot tables.
package chest

import (
	"fmt"
	"strings"

	"github.com/kariannharris-star/Dungeon-crawlr/engine/rng"
	"github.com/kariannharris-star/Dungeon-crawlr/engine/state"
	"github.com/kariannharris-star/Dungeon-crawlr/types"
)

const mimicEnemyID = "mimic"

type lootEntry struct {
	ItemID string
	Weight int
}

// lootTables holds the tiered random loot rolled alongside a chest's fixed
// loot. Entries prefixed "gold_" pay out a tier-dependent gold amount
// instead of an inventory item.
var lootTables = map[string][]lootEntry{
	"common": {
		{ItemID: "health_potion", Weight: 40},
		{ItemID: "gold_small", Weight: 40},
		{ItemID: "short_sword", Weight: 20},
	},
	"uncommon": {
		{ItemID: "greater_health_potion", Weight: 25},
		{ItemID: "leather_armor", Weight: 20},
		{ItemID: "spell_scroll", Weight: 25},
		{ItemID: "gold_medium", Weight: 30},
	},
	"rare": {
		{ItemID: "iron_sword", Weight: 30},
		{ItemID: "iron_shield", Weight: 25},
		{ItemID: "gold_large", Weight: 30},
		{ItemID: "antidote", Weight: 15},
	},
}

var goldRanges = map[string][2]int{
	"common":   {5, 15},
	"uncommon": {15, 30},
	"rare":     {30, 60},
}

// Open attempts to open the chest in the current room. Locked chests need
// the key in the inventory (not consumed). Trapped chests fire before the
// loot but can never kill — HP floors at 1. A mimic chest starts combat
// instead of yielding loot and counts as opened so it only springs once.
func Open(s *state.State, defs *state.Defs, r *rng.RNG) (bool, string) {
	room := s.CurrentRoom()
	if room == nil || room.Chest == nil {
		return false, "There is no chest here."
	}
	chest := room.Chest

	if chest.Opened {
		return false, "The chest has already been opened."
	}

	if chest.State == types.ChestLocked && chest.KeyRequired != "" {
		if !s.Player.HasItem(chest.KeyRequired) {
			return false, fmt.Sprintf("The chest is locked. You need %s.", defs.ItemName(chest.KeyRequired))
		}
	}

	trapMessage := ""
	if chest.State == types.ChestTrapped {
		dmg := chest.TrapDamage
		if dmg == 0 {
			dmg = 10
		}
		s.Player.HP -= dmg
		if s.Player.HP < 1 {
			s.Player.HP = 1
		}
		trapMessage = fmt.Sprintf("The chest was trapped! You take %d damage. ", dmg)
	}

	if chest.State == types.ChestMimic {
		chest.Opened = true
		def, ok := defs.Enemies[mimicEnemyID]
		if ok {
			mimic := state.NewEnemy(def)
			s.Enemies[s.CurrentRoomID] = mimic
			s.StartCombat(mimic)
			return false, "The chest springs to life! It's a MIMIC!"
		}
		return false, "The chest rattles violently, then falls still."
	}

	var obtained []string

	for _, itemID := range chest.FixedLoot {
		if !s.Player.CanAddItem() {
			break
		}
		s.Player.AddItem(itemID)
		obtained = append(obtained, defs.ItemName(itemID))
	}

	if table, ok := lootTables[chest.LootTier]; ok {
		rolled := rollLoot(table, r)
		if rolled != "" && s.Player.CanAddItem() {
			if strings.HasPrefix(rolled, "gold_") {
				gold := rollGold(chest.LootTier, r)
				s.Player.AddGold(gold)
				obtained = append(obtained, fmt.Sprintf("%d gold", gold))
			} else {
				s.Player.AddItem(rolled)
				obtained = append(obtained, defs.ItemName(rolled))
			}
		}
	}

	chest.Opened = true

	if len(obtained) > 0 {
		return true, trapMessage + "You open the chest. You found: " + strings.Join(obtained, ", ") + "!"
	}
	return true, trapMessage + "You open the chest, but it's empty."
}

func rollLoot(table []lootEntry, r *rng.RNG) string {
	weights := make([]int, len(table))
	for i, e := range table {
		weights[i] = e.Weight
	}
	idx := r.WeightedSelect(weights)
	if idx < 0 {
		return ""
	}
	return table[idx].ItemID
}

func rollGold(tier string, r *rng.RNG) int {
	bounds, ok := goldRanges[tier]
	if !ok {
		bounds = [2]int{5, 15}
	}
	return r.Range(bounds[0], bounds[1])
}
