// Package fountain implements magical fountains. Each fountain works once
// per session; the draw picks one effect from the room's authored list.
package fountain

import (
	"fmt"
	"sort"

	"github.com/kariannharris-star/Dungeon-crawlr/engine/rng"
	"github.com/kariannharris-star/Dungeon-crawlr/engine/state"
	"github.com/kariannharris-star/Dungeon-crawlr/types"
)

type effectFunc func(s *state.State, defs *state.Defs, r *rng.RNG) string

var effectHandlers map[string]effectFunc

// init breaks the initialization cycle through the "random" effect, which
// re-dispatches into the table.
func init() {
	effectHandlers = map[string]effectFunc{
		"heal":              heal,
		"major_heal":        majorHeal,
		"full_heal":         fullHeal,
		"damage":            damage,
		"major_damage":      majorDamage,
		"buff_attack":       buffAttack,
		"buff_attack_large": buffAttackLarge,
		"buff_defense":      buffDefense,
		"gold":              gold,
		"gold_large":        goldLarge,
		"gold_massive":      goldMassive,
		"level_up":          levelUp,
		"curse":             curse,
		"curse_or_blessing": curseOrBlessing,
		"random_weapon":     randomWeapon,
		"random_armor":      randomArmor,
		"random":            randomEffect,
	}
}

// Drink draws from the fountain in the current room. The fountain is spent
// whether the effect was good or bad.
func Drink(s *state.State, defs *state.Defs, r *rng.RNG) (bool, string) {
	room := s.CurrentRoom()
	if room == nil || !room.HasFountain {
		return false, "There's no fountain here."
	}
	if s.UsedFountains[room.ID] {
		return false, "The fountain's magic has been depleted. The water is now ordinary."
	}
	s.UsedFountains[room.ID] = true

	effects := room.FountainEffects
	if len(effects) == 0 {
		effects = []string{"heal"}
	}
	return true, apply(s, defs, effects[r.Intn(len(effects))], r)
}

func apply(s *state.State, defs *state.Defs, effect string, r *rng.RNG) string {
	handler, ok := effectHandlers[effect]
	if !ok {
		return "The water has no effect..."
	}
	return handler(s, defs, r)
}

func heal(s *state.State, defs *state.Defs, r *rng.RNG) string {
	healed := s.Player.Heal(r.Range(30, 60))
	return fmt.Sprintf("The water fills you with warmth. You feel restored! (+%d HP)", healed)
}

func majorHeal(s *state.State, defs *state.Defs, r *rng.RNG) string {
	healed := s.Player.Heal(s.Player.MaxHP)
	return fmt.Sprintf("Divine energy surges through you! Your wounds close completely! (+%d HP)", healed)
}

func fullHeal(s *state.State, defs *state.Defs, r *rng.RNG) string {
	s.Player.MaxHP += 20
	s.Player.HP = s.Player.MaxHP
	return "The starlight water transforms you! Full heal and +20 max HP!"
}

func damage(s *state.State, defs *state.Defs, r *rng.RNG) string {
	dmg := r.Range(10, 25)
	s.Player.HP -= dmg
	if s.Player.HP < 1 {
		s.Player.HP = 1
	}
	return fmt.Sprintf("The water burns like acid! (-%d HP) You barely survive...", dmg)
}

func majorDamage(s *state.State, defs *state.Defs, r *rng.RNG) string {
	dmg := r.Range(30, 50)
	s.Player.HP -= dmg
	if s.Player.HP < 1 {
		s.Player.HP = 1
	}
	return fmt.Sprintf("The blood fountain demands sacrifice! (-%d HP)", dmg)
}

func buffAttack(s *state.State, defs *state.Defs, r *rng.RNG) string {
	buff := r.Range(2, 5)
	s.Player.Attack += buff
	return fmt.Sprintf("Power flows into your arms! (+%d Attack permanently!)", buff)
}

func buffAttackLarge(s *state.State, defs *state.Defs, r *rng.RNG) string {
	buff := r.Range(5, 10)
	s.Player.Attack += buff
	return fmt.Sprintf("Unholy strength surges through you! (+%d Attack permanently!)", buff)
}

func buffDefense(s *state.State, defs *state.Defs, r *rng.RNG) string {
	buff := r.Range(1, 3)
	s.Player.Defense += buff
	return fmt.Sprintf("Your skin hardens like stone! (+%d Defense permanently!)", buff)
}

func gold(s *state.State, defs *state.Defs, r *rng.RNG) string {
	amount := r.Range(25, 75)
	s.Player.AddGold(amount)
	return fmt.Sprintf("Gold coins materialize in your hands! (+%d gold!)", amount)
}

func goldLarge(s *state.State, defs *state.Defs, r *rng.RNG) string {
	amount := r.Range(75, 150)
	s.Player.AddGold(amount)
	return fmt.Sprintf("A fortune appears before you! (+%d gold!)", amount)
}

func goldMassive(s *state.State, defs *state.Defs, r *rng.RNG) string {
	amount := r.Range(200, 500)
	s.Player.AddGold(amount)
	return fmt.Sprintf("Treasure beyond imagining materializes! (+%d gold!)", amount)
}

func levelUp(s *state.State, defs *state.Defs, r *rng.RNG) string {
	s.Player.LevelUp()
	return fmt.Sprintf("The fountain grants you wisdom! You gained a level! (Now level %d)", s.Player.Level)
}

func curse(s *state.State, defs *state.Defs, r *rng.RNG) string {
	switch r.Intn(3) {
	case 0:
		loss := r.Range(1, 3)
		s.Player.Attack -= loss
		if s.Player.Attack < 1 {
			s.Player.Attack = 1
		}
		return fmt.Sprintf("A curse weakens you! (-%d Attack permanently...)", loss)
	case 1:
		loss := r.Range(1, 2)
		s.Player.Defense -= loss
		if s.Player.Defense < 0 {
			s.Player.Defense = 0
		}
		return fmt.Sprintf("A curse weakens you! (-%d Defense permanently...)", loss)
	default:
		loss := r.Range(10, 20)
		s.Player.MaxHP -= loss
		if s.Player.MaxHP < 20 {
			s.Player.MaxHP = 20
		}
		if s.Player.HP > s.Player.MaxHP {
			s.Player.HP = s.Player.MaxHP
		}
		return fmt.Sprintf("A curse weakens you! (-%d Max HP permanently...)", loss)
	}
}

func curseOrBlessing(s *state.State, defs *state.Defs, r *rng.RNG) string {
	if r.Chance(0.7) {
		s.Player.Attack += 5
		s.Player.Defense += 3
		s.Player.MaxHP += 25
		s.Player.HP = s.Player.MaxHP
		return "The stars bless you! +5 ATK, +3 DEF, +25 Max HP, full heal!"
	}
	s.Player.Attack -= 3
	if s.Player.Attack < 1 {
		s.Player.Attack = 1
	}
	s.Player.Defense -= 2
	if s.Player.Defense < 0 {
		s.Player.Defense = 0
	}
	return "The stars curse you! -3 ATK, -2 DEF..."
}

func randomWeapon(s *state.State, defs *state.Defs, r *rng.RNG) string {
	id := randomItemOfCategory(defs, types.CategoryWeapon, r)
	if id == "" {
		return "The water shimmers, but nothing appears."
	}
	if !s.Player.CanAddItem() {
		return "A weapon appears but you can't carry it... (inventory full)"
	}
	s.Player.AddItem(id)
	return fmt.Sprintf("A weapon materializes in your hands: %s!", defs.ItemName(id))
}

func randomArmor(s *state.State, defs *state.Defs, r *rng.RNG) string {
	id := randomItemOfCategory(defs, types.CategoryArmor, r)
	if id == "" {
		return "The water shimmers, but nothing appears."
	}
	if !s.Player.CanAddItem() {
		return "Armor appears but you can't carry it... (inventory full)"
	}
	s.Player.AddItem(id)
	return fmt.Sprintf("Armor materializes before you: %s!", defs.ItemName(id))
}

// randomItemOfCategory draws from the loaded item definitions rather than a
// hardcoded list, so custom dungeons get their own gear in the pool. The
// candidates are sorted for deterministic replay.
func randomItemOfCategory(defs *state.Defs, cat types.ItemCategory, r *rng.RNG) string {
	var ids []string
	for id, item := range defs.Items {
		if item.Category == cat {
			ids = append(ids, id)
		}
	}
	if len(ids) == 0 {
		return ""
	}
	sort.Strings(ids)
	return ids[r.Intn(len(ids))]
}

func randomEffect(s *state.State, defs *state.Defs, r *rng.RNG) string {
	pool := []string{"heal", "damage", "buff_attack", "buff_defense", "gold", "curse"}
	return apply(s, defs, pool[r.Intn(len(pool))], r)
}
