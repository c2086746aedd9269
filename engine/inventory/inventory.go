// Package inventory implements item pickup, drop, use, and equip. All
// operations return an explicit ok flag plus a player-facing message; user
// mistakes are never Go errors.
package inventory

import (
	"fmt"
	"strings"

	"github.com/kariannharris-star/Dungeon-crawlr/engine/state"
	"github.com/kariannharris-star/Dungeon-crawlr/types"
)

// Take picks the named item up from the current room floor.
func Take(s *state.State, defs *state.Defs, name string) (bool, string) {
	room := s.CurrentRoom()
	if room == nil {
		return false, "Invalid game state."
	}

	itemID, ok := state.FindItem(defs, room.Items, name)
	if !ok {
		return false, fmt.Sprintf("There is no '%s' here.", name)
	}
	if !s.Player.CanAddItem() {
		return false, "Your inventory is full."
	}

	room.RemoveItem(itemID)
	s.Player.AddItem(itemID)
	return true, fmt.Sprintf("You picked up %s.", defs.ItemName(itemID))
}

// TakeAll sweeps the room floor into the inventory until capacity runs out,
// reporting anything left behind.
func TakeAll(s *state.State, defs *state.Defs) (bool, string) {
	room := s.CurrentRoom()
	if room == nil {
		return false, "Invalid game state."
	}
	if len(room.Items) == 0 {
		return false, "There's nothing here to pick up."
	}

	var taken, left []string
	for _, itemID := range append([]string{}, room.Items...) {
		if !s.Player.CanAddItem() {
			left = append(left, defs.ItemName(itemID))
			continue
		}
		room.RemoveItem(itemID)
		s.Player.AddItem(itemID)
		taken = append(taken, defs.ItemName(itemID))
	}

	if len(taken) == 0 {
		return false, "Your inventory is full."
	}
	msg := fmt.Sprintf("You picked up: %s.", strings.Join(taken, ", "))
	if len(left) > 0 {
		msg += fmt.Sprintf(" (Inventory full, couldn't take: %s)", strings.Join(left, ", "))
	}
	return true, msg
}

// Drop moves the named item from the inventory onto the room floor.
// Equipped items must be unequipped first.
func Drop(s *state.State, defs *state.Defs, name string) (bool, string) {
	room := s.CurrentRoom()
	if room == nil {
		return false, "Invalid game state."
	}

	itemID, ok := state.FindItem(defs, s.Player.Inventory, name)
	if !ok {
		return false, fmt.Sprintf("You don't have '%s' in your inventory.", name)
	}
	if s.Player.IsEquipped(itemID) {
		return false, "You must unequip that item first."
	}

	s.Player.RemoveItem(itemID)
	room.AddItem(itemID)
	return true, fmt.Sprintf("You dropped %s.", defs.ItemName(itemID))
}

// Equip places a weapon or armor item in its slot, displacing (but not
// removing) whatever was there.
func Equip(s *state.State, defs *state.Defs, name string) (bool, string) {
	itemID, ok := state.FindItem(defs, s.Player.Inventory, name)
	if !ok {
		return false, fmt.Sprintf("You don't have '%s' in your inventory.", name)
	}
	item, _ := defs.Item(itemID)

	switch item.Category {
	case types.CategoryWeapon:
		old := s.Player.EquippedWeapon
		s.Player.EquippedWeapon = itemID
		return true, equipMessage(defs, item.Name, old)
	case types.CategoryArmor:
		old := s.Player.EquippedArmor
		s.Player.EquippedArmor = itemID
		return true, equipMessage(defs, item.Name, old)
	default:
		return false, fmt.Sprintf("You can't equip %s.", item.Name)
	}
}

func equipMessage(defs *state.Defs, name, oldID string) string {
	msg := fmt.Sprintf("You equipped %s.", name)
	if oldID != "" {
		msg += fmt.Sprintf(" (Unequipped %s)", defs.ItemName(oldID))
	}
	return msg
}

// Unequip clears the slot holding the named item.
func Unequip(s *state.State, defs *state.Defs, name string) (bool, string) {
	itemID, ok := state.FindItem(defs, s.Player.Inventory, name)
	if !ok {
		return false, fmt.Sprintf("You don't have '%s' in your inventory.", name)
	}
	switch itemID {
	case s.Player.EquippedWeapon:
		s.Player.EquippedWeapon = ""
	case s.Player.EquippedArmor:
		s.Player.EquippedArmor = ""
	default:
		return false, fmt.Sprintf("%s isn't equipped.", defs.ItemName(itemID))
	}
	return true, fmt.Sprintf("You unequipped %s.", defs.ItemName(itemID))
}

// WeaponDamage returns the damage bonus of the equipped weapon, if any.
func WeaponDamage(s *state.State, defs *state.Defs) int {
	if s.Player.EquippedWeapon == "" {
		return 0
	}
	item, _ := defs.Item(s.Player.EquippedWeapon)
	return item.Damage
}

// ArmorBonus returns the defense bonus of the equipped armor, if any.
func ArmorBonus(s *state.State, defs *state.Defs) int {
	if s.Player.EquippedArmor == "" {
		return 0
	}
	item, _ := defs.Item(s.Player.EquippedArmor)
	return item.DefenseBonus
}

