package loader

import (
	"fmt"
	"strings"

	"github.com/kariannharris-star/Dungeon-crawlr/engine/state"
)

// ValidationError collects all validation errors and warnings.
type ValidationError struct {
	Errors   []string
	Warnings []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed with %d error(s):\n  %s",
		len(e.Errors), strings.Join(e.Errors, "\n  "))
}

var validLootTiers = map[string]bool{
	"common":   true,
	"uncommon": true,
	"rare":     true,
}

var validFountainEffects = map[string]bool{
	"heal":              true,
	"major_heal":        true,
	"full_heal":         true,
	"damage":            true,
	"major_damage":      true,
	"buff_attack":       true,
	"buff_attack_large": true,
	"buff_defense":      true,
	"gold":              true,
	"gold_large":        true,
	"gold_massive":      true,
	"level_up":          true,
	"curse":             true,
	"curse_or_blessing": true,
	"random_weapon":     true,
	"random_armor":      true,
	"random":            true,
}

// validate checks the compiled defs for referential integrity and
// consistency. All problems are reported at once.
func validate(defs *state.Defs) error {
	ve := &ValidationError{}

	structValidate(defs, ve)

	if defs.Game.Start == "" {
		ve.Errors = append(ve.Errors, "starting_room is required")
	} else if _, ok := defs.Rooms[defs.Game.Start]; !ok {
		ve.Errors = append(ve.Errors, fmt.Sprintf(
			"starting room %q not found in defined rooms", defs.Game.Start))
	}

	for roomID, room := range defs.Rooms {
		for dir, target := range room.Exits {
			if _, ok := defs.Rooms[target]; !ok {
				ve.Errors = append(ve.Errors, fmt.Sprintf(
					"room %q exit %q points to undefined room %q", roomID, dir, target))
			}
		}
		for dir, keyID := range room.LockedExits {
			if _, ok := room.Exits[dir]; !ok {
				ve.Errors = append(ve.Errors, fmt.Sprintf(
					"room %q locks direction %q which has no exit", roomID, dir))
			}
			if _, ok := defs.Items[keyID]; !ok {
				ve.Errors = append(ve.Errors, fmt.Sprintf(
					"room %q lock requires undefined item %q", roomID, keyID))
			}
		}
		for _, itemID := range room.Items {
			if _, ok := defs.Items[itemID]; !ok {
				ve.Errors = append(ve.Errors, fmt.Sprintf(
					"room %q contains undefined item %q", roomID, itemID))
			}
		}
		for _, itemID := range room.ShopInventory {
			if _, ok := defs.Items[itemID]; !ok {
				ve.Errors = append(ve.Errors, fmt.Sprintf(
					"room %q shop sells undefined item %q", roomID, itemID))
			}
		}
		if room.EnemyID != "" {
			if _, ok := defs.Enemies[room.EnemyID]; !ok {
				ve.Errors = append(ve.Errors, fmt.Sprintf(
					"room %q spawns undefined enemy %q", roomID, room.EnemyID))
			}
		}
		for _, effect := range room.FountainEffects {
			if !validFountainEffects[effect] {
				ve.Errors = append(ve.Errors, fmt.Sprintf(
					"room %q fountain has unknown effect %q", roomID, effect))
			}
		}
		if room.Chest != nil {
			validateChest(roomID, room.Chest.KeyRequired, room.Chest.FixedLoot, room.Chest.LootTier, defs, ve)
		}
	}

	for enemyID, enemy := range defs.Enemies {
		for _, drop := range enemy.DropTable {
			if _, ok := defs.Items[drop.ItemID]; !ok {
				ve.Errors = append(ve.Errors, fmt.Sprintf(
					"enemy %q drops undefined item %q", enemyID, drop.ItemID))
			}
			if drop.Chance < 0 || drop.Chance > 1 {
				ve.Errors = append(ve.Errors, fmt.Sprintf(
					"enemy %q drop %q has chance %v outside [0,1]", enemyID, drop.ItemID, drop.Chance))
			}
		}
		if enemy.HP > enemy.MaxHP {
			ve.Warnings = append(ve.Warnings, fmt.Sprintf(
				"enemy %q spawns with HP above its max", enemyID))
		}
	}

	if len(ve.Errors) > 0 {
		return ve
	}
	return nil
}

func validateChest(roomID, keyRequired string, fixedLoot []string, lootTier string, defs *state.Defs, ve *ValidationError) {
	if keyRequired != "" {
		if _, ok := defs.Items[keyRequired]; !ok {
			ve.Errors = append(ve.Errors, fmt.Sprintf(
				"room %q chest requires undefined key %q", roomID, keyRequired))
		}
	}
	for _, itemID := range fixedLoot {
		if _, ok := defs.Items[itemID]; !ok {
			ve.Errors = append(ve.Errors, fmt.Sprintf(
				"room %q chest holds undefined item %q", roomID, itemID))
		}
	}
	if lootTier != "" && !validLootTiers[lootTier] {
		ve.Errors = append(ve.Errors, fmt.Sprintf(
			"room %q chest has unknown loot tier %q", roomID, lootTier))
	}
}
