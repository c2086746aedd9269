// Package shop implements buying from and selling to shop rooms.
package shop

import (
	"fmt"
	"strings"

	"github.com/kariannharris-star/Dungeon-crawlr/engine/state"
	"github.com/kariannharris-star/Dungeon-crawlr/types"
)

// InShop reports whether the player is standing in a shop room.
func InShop(s *state.State) bool {
	room := s.CurrentRoom()
	return room != nil && room.IsShop
}

// Inventory lists what the current shop sells, one line per item with its
// price. Shop stock never depletes.
func Inventory(s *state.State, defs *state.Defs) []string {
	room := s.CurrentRoom()
	if room == nil || !room.IsShop {
		return nil
	}
	lines := make([]string, 0, len(room.ShopInventory))
	for _, id := range room.ShopInventory {
		item, ok := defs.Item(id)
		if !ok {
			continue
		}
		lines = append(lines, fmt.Sprintf("  %s - %d gold", item.Name, item.Value))
	}
	return lines
}

// Buy purchases a named item from the current shop.
func Buy(s *state.State, defs *state.Defs, name string) (bool, string) {
	room := s.CurrentRoom()
	if room == nil || !room.IsShop {
		return false, "There's no shop here."
	}

	itemID, found := state.FindItem(defs, room.ShopInventory, name)
	if !found {
		return false, fmt.Sprintf("The shop doesn't sell '%s'.", name)
	}

	item, _ := defs.Item(itemID)
	if s.Player.Gold < item.Value {
		return false, fmt.Sprintf("You can't afford %s. It costs %d gold and you have %d.", item.Name, item.Value, s.Player.Gold)
	}
	if !s.Player.CanAddItem() {
		return false, "Your inventory is full!"
	}

	s.Player.Gold -= item.Value
	s.Player.AddItem(itemID)
	return true, fmt.Sprintf("You bought %s for %d gold.", item.Name, item.Value)
}

// Sell sells a named inventory item for half its value, rounded down.
// Equipped, quest, and worthless items are refused.
func Sell(s *state.State, defs *state.Defs, name string) (bool, string) {
	room := s.CurrentRoom()
	if room == nil || !room.IsShop {
		return false, "There's no shop here."
	}

	itemID, found := state.FindItem(defs, s.Player.Inventory, name)
	if !found {
		return false, fmt.Sprintf("You don't have '%s' to sell.", name)
	}

	if s.Player.IsEquipped(itemID) {
		return false, "You can't sell equipped items. Unequip first."
	}

	item, _ := defs.Item(itemID)
	if item.Category == types.CategoryQuest {
		return false, "You can't sell quest items."
	}

	price := item.Value / 2
	if price <= 0 {
		return false, fmt.Sprintf("%s has no value to the shopkeeper.", item.Name)
	}

	s.Player.RemoveItem(itemID)
	s.Player.AddGold(price)
	return true, fmt.Sprintf("You sold %s for %d gold.", item.Name, price)
}

// Describe renders the shop greeting and stock for the look/shop commands.
func Describe(s *state.State, defs *state.Defs) string {
	lines := Inventory(s, defs)
	if lines == nil {
		return "There's no shop here."
	}
	out := []string{"The shopkeeper nods at you. For sale:"}
	out = append(out, lines...)
	out = append(out, fmt.Sprintf("You have %d gold.", s.Player.Gold))
	return strings.Join(out, "\n")
}
