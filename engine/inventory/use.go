package inventory

import (
	"fmt"

	"github.com/kariannharris-star/Dungeon-crawlr/engine/rng"
	"github.com/kariannharris-star/Dungeon-crawlr/engine/state"
	"github.com/kariannharris-star/Dungeon-crawlr/types"
)

// effectFunc applies one consumable effect. consumed reports whether the
// item should be removed from the inventory.
type effectFunc func(s *state.State, defs *state.Defs, item types.ItemDef, r *rng.RNG) (ok bool, consumed bool, msg string)

// effectHandlers dispatches consumable effects by type. Unknown types fall
// through to a no-op "you used it" so content can carry flavor consumables.
var effectHandlers = map[types.EffectType]effectFunc{
	types.EffectHeal:      effectHeal,
	types.EffectDamage:    effectDamage,
	types.EffectLifesteal: effectLifesteal,
	types.EffectCure:      effectCure,
	types.EffectTeleport:  effectTeleport,
	types.EffectRecall:    effectRecall,
	types.EffectTimestop:  effectTimestop,
	types.EffectChaos:     effectChaos,
}

// Use consumes the named item and applies its effect. Combat-only effects
// (damage, lifesteal) fail without a live target and leave the item intact.
// Combat-ending effects (teleport, recall, timestop, chaos teleport) clear
// combat as a side effect; the caller decides whether a retaliation follows.
func Use(s *state.State, defs *state.Defs, name string, r *rng.RNG) (bool, string) {
	itemID, found := state.FindItem(defs, s.Player.Inventory, name)
	if !found {
		return false, fmt.Sprintf("You don't have '%s' in your inventory.", name)
	}
	item, _ := defs.Item(itemID)
	if item.Category != types.CategoryConsumable {
		return false, fmt.Sprintf("You can't use %s like that.", item.Name)
	}

	handler, known := effectHandlers[item.EffectType]
	if !known {
		s.Player.RemoveItem(itemID)
		return true, fmt.Sprintf("You used %s.", item.Name)
	}

	ok, consumed, msg := handler(s, defs, item, r)
	if consumed {
		s.Player.RemoveItem(itemID)
	}
	return ok, msg
}

func effectHeal(s *state.State, defs *state.Defs, item types.ItemDef, r *rng.RNG) (bool, bool, string) {
	healed := s.Player.Heal(item.EffectValue)
	return true, true, fmt.Sprintf("You used %s and restored %d HP.", item.Name, healed)
}

func effectDamage(s *state.State, defs *state.Defs, item types.ItemDef, r *rng.RNG) (bool, bool, string) {
	if !s.InCombat || s.CurrentEnemy == nil {
		return false, false, "You can only use this in combat."
	}
	dealt := s.CurrentEnemy.TakeDamage(item.EffectValue)
	return true, true, fmt.Sprintf("You used %s and dealt %d damage to %s!", item.Name, dealt, s.CurrentEnemy.Name)
}

func effectLifesteal(s *state.State, defs *state.Defs, item types.ItemDef, r *rng.RNG) (bool, bool, string) {
	if !s.InCombat || s.CurrentEnemy == nil {
		return false, false, "You can only use this in combat."
	}
	dealt := s.CurrentEnemy.TakeDamage(item.EffectValue)
	healed := s.Player.Heal(dealt)
	return true, true, fmt.Sprintf("You used %s: %s loses %d HP and you drain %d!", item.Name, s.CurrentEnemy.Name, dealt, healed)
}

func effectCure(s *state.State, defs *state.Defs, item types.ItemDef, r *rng.RNG) (bool, bool, string) {
	return true, true, fmt.Sprintf("You used %s and feel refreshed.", item.Name)
}

func effectTeleport(s *state.State, defs *state.Defs, item types.ItemDef, r *rng.RNG) (bool, bool, string) {
	visited := s.VisitedRooms()
	target := visited[r.Intn(len(visited))]
	s.EndCombat()
	s.MoveTo(target)
	room := s.CurrentRoom()
	return true, true, fmt.Sprintf("Reality folds around you. You find yourself in %s!", room.Name)
}

func effectRecall(s *state.State, defs *state.Defs, item types.ItemDef, r *rng.RNG) (bool, bool, string) {
	s.EndCombat()
	s.MoveTo(s.World.Start)
	room := s.CurrentRoom()
	return true, true, fmt.Sprintf("A familiar pull drags you back to %s.", room.Name)
}

func effectTimestop(s *state.State, defs *state.Defs, item types.ItemDef, r *rng.RNG) (bool, bool, string) {
	s.EndCombat()
	return true, true, "Time shudders to a halt. When it resumes, the fight is over."
}

// chaos re-dispatches uniformly into a fixed subset of effects.
func effectChaos(s *state.State, defs *state.Defs, item types.ItemDef, r *rng.RNG) (bool, bool, string) {
	switch r.Intn(4) {
	case 0:
		healed := s.Player.Heal(r.Range(20, 50))
		return true, true, fmt.Sprintf("Chaos surges through you as healing light! (+%d HP)", healed)
	case 1:
		_, _, msg := effectTeleport(s, defs, item, r)
		return true, true, "Chaos takes hold! " + msg
	case 2:
		gold := r.Range(20, 100)
		s.Player.AddGold(gold)
		return true, true, fmt.Sprintf("Chaos rains coins around you! (+%d gold)", gold)
	default:
		buff := r.Range(1, 3)
		s.Player.Attack += buff
		return true, true, fmt.Sprintf("Chaos hardens your sword arm! (+%d Attack permanently)", buff)
	}
}
