package engine

import (
	"fmt"
	"strings"

	"github.com/kariannharris-star/Dungeon-crawlr/engine/inventory"
	"github.com/kariannharris-star/Dungeon-crawlr/engine/state"
)

const (
	critChance     = 0.10
	critMultiplier = 1.5
	fleeChance     = 0.50
)

// playerAttack executes the player's swing against the current enemy.
// Returns whether the enemy was defeated.
func (e *Engine) playerAttack() (bool, string) {
	if !e.State.InCombat || e.State.CurrentEnemy == nil {
		return false, "You're not in combat."
	}
	enemy := e.State.CurrentEnemy

	damage := e.State.Player.Attack + inventory.WeaponDamage(e.State, e.Defs)
	crit := e.RNG.Chance(critChance)
	if crit {
		damage = int(float64(damage) * critMultiplier)
	}
	actual := enemy.TakeDamage(damage)

	msg := fmt.Sprintf("You attack the %s for %d damage!", enemy.Name, actual)
	if crit {
		msg += " CRITICAL HIT!"
	}
	if !enemy.IsAlive() {
		return true, msg + fmt.Sprintf(" The %s has been defeated!", enemy.Name)
	}
	return false, msg
}

// enemyAttack executes the enemy's counterattack. A dead enemy never
// retaliates. Returns whether the player died.
func (e *Engine) enemyAttack() (bool, string) {
	if !e.State.InCombat || e.State.CurrentEnemy == nil {
		return false, ""
	}
	enemy := e.State.CurrentEnemy
	if !enemy.IsAlive() {
		return false, ""
	}

	player := e.State.Player
	actual := enemy.Attack - player.Defense - inventory.ArmorBonus(e.State, e.Defs)
	if actual < 1 {
		actual = 1
	}
	player.HP -= actual
	if player.HP < 0 {
		player.HP = 0
	}

	msg := fmt.Sprintf("The %s attacks you for %d damage!", enemy.Name, actual)
	if !player.IsAlive() {
		return true, msg + " You have been slain!"
	}
	return false, msg
}

// attemptFlee rolls the escape chance. A failed attempt gives the enemy a
// free attack.
func (e *Engine) attemptFlee() (bool, string) {
	if !e.State.InCombat {
		return false, "You're not in combat."
	}
	if e.RNG.Chance(fleeChance) {
		e.State.EndCombat()
		return true, "You successfully flee from combat!"
	}
	_, attackMsg := e.enemyAttack()
	return false, "You failed to escape! " + attackMsg
}

// processVictory awards XP, gold, and drops, ends combat, and hands over the
// boss's amulet when the final boss falls. Drops that don't fit in the
// inventory are forfeited silently.
func (e *Engine) processVictory() string {
	enemy := e.State.CurrentEnemy
	if enemy == nil {
		return ""
	}
	player := e.State.Player

	leveled := player.GainXP(enemy.XPReward)
	player.AddGold(enemy.GoldReward)

	var dropNames []string
	for _, itemID := range enemy.Drops(e.RNG) {
		if player.CanAddItem() {
			player.AddItem(itemID)
			dropNames = append(dropNames, e.Defs.ItemName(itemID))
		}
	}

	msg := fmt.Sprintf("You gained %d XP and %d gold.", enemy.XPReward, enemy.GoldReward)
	if leveled {
		msg += fmt.Sprintf(" LEVEL UP! You are now level %d!", player.Level)
	}
	if len(dropNames) > 0 {
		msg += fmt.Sprintf(" The enemy dropped: %s.", strings.Join(dropNames, ", "))
	}

	e.State.EndCombat()

	if enemy.ID == state.FinalBoss && !player.HasItem(state.WinItem) && player.CanAddItem() {
		player.AddItem(state.WinItem)
		msg += " You obtained the Warlord's Amulet!"
	}
	return msg
}

// combatRound runs one full exchange for the given combat action. The
// enemy counterattacks after any action that neither kills it nor ends
// combat (a fled escape, teleport, recall, or timestop skips retaliation).
func (e *Engine) combatRound(verb string, args []string) []string {
	var out []string

	switch verb {
	case "attack":
		defeated, msg := e.playerAttack()
		out = append(out, msg)
		if defeated {
			out = append(out, e.processVictory())
			return out
		}
		died, enemyMsg := e.enemyAttack()
		out = append(out, enemyMsg)
		if died {
			e.State.GameOver = true
		}
		return out

	case "flee":
		fled, msg := e.attemptFlee()
		out = append(out, msg)
		if !fled && !e.State.Player.IsAlive() {
			e.State.GameOver = true
		}
		return out

	case "use":
		if len(args) == 0 {
			return []string{"Use what?"}
		}
		ok, msg := inventory.Use(e.State, e.Defs, strings.Join(args, " "), e.RNG)
		out = append(out, msg)
		if !ok {
			return out
		}
		if e.State.CurrentEnemy != nil && !e.State.CurrentEnemy.IsAlive() {
			out = append(out, e.processVictory())
			return out
		}
		if e.State.InCombat && e.State.CurrentEnemy != nil {
			died, enemyMsg := e.enemyAttack()
			out = append(out, enemyMsg)
			if died {
				e.State.GameOver = true
			}
		}
		return out
	}

	return []string{"Invalid combat action. Use: attack, use <item>, or flee"}
}
