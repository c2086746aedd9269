// Package gambling implements the tavern dice games: high/low, skull dice,
// and death or glory. All payouts are stated as gross winnings; the net
// change to the purse is winnings minus the stake.
package gambling

import (
	"fmt"
	"strings"

	"github.com/kariannharris-star/Dungeon-crawlr/engine/rng"
	"github.com/kariannharris-star/Dungeon-crawlr/engine/state"
)

// InTavern reports whether the current room hosts the dice games.
func InTavern(s *state.State) bool {
	room := s.CurrentRoom()
	return room != nil && room.IsTavern
}

// HighLow bets on 2d6: low (2-6), high (8-12), or seven (exactly 7).
// High/low pay 2x, seven pays 4x.
func HighLow(s *state.State, bet int, choice string, r *rng.RNG) (bool, string) {
	if bet <= 0 {
		return false, "You need to bet at least 1 gold."
	}
	if s.Player.Gold < bet {
		return false, fmt.Sprintf("You don't have enough gold. You have %dg.", s.Player.Gold)
	}

	switch choice {
	case "high", "low", "seven":
	case "7":
		choice = "seven"
	default:
		return false, "Choose 'high' (8-12), 'low' (2-6), or 'seven' (exactly 7)."
	}

	d1, d2 := r.Roll(6), r.Roll(6)
	total := d1 + d2

	result := "seven"
	switch {
	case total <= 6:
		result = "low"
	case total >= 8:
		result = "high"
	}

	diceStr := fmt.Sprintf("[%d] [%d]", d1, d2)

	if choice != result {
		s.Player.Gold -= bet
		return false, fmt.Sprintf("\n  The dice tumble across the table...\n  %s = %d\n\n  %s. You bet %s.\n  You lose %d gold. Better luck next time.",
			diceStr, total, strings.ToUpper(result), choice, bet)
	}

	multiplier := 2
	cheer := fmt.Sprintf("%s! You called it!", strings.ToUpper(result))
	if choice == "seven" {
		multiplier = 4
		cheer = "LUCKY SEVEN! The crowd erupts!"
	}
	winnings := bet * multiplier
	s.Player.AddGold(winnings - bet)
	return true, fmt.Sprintf("\n  The dice tumble across the table...\n  %s = %d\n\n  %s\n  You win %d gold! (+%d net)",
		diceStr, total, cheer, winnings, winnings-bet)
}

// SkullDice rolls 3d6. A pair pays 1.5x (floored), three of a kind 5x, and
// triple sixes 10x.
func SkullDice(s *state.State, bet int, r *rng.RNG) (bool, string) {
	if bet <= 0 {
		return false, "You need to bet at least 1 gold."
	}
	if s.Player.Gold < bet {
		return false, fmt.Sprintf("You don't have enough gold. You have %dg.", s.Player.Gold)
	}

	d1, d2, d3 := r.Roll(6), r.Roll(6), r.Roll(6)
	diceStr := fmt.Sprintf("[%d] [%d] [%d]", d1, d2, d3)

	switch {
	case d1 == 6 && d2 == 6 && d3 == 6:
		winnings := bet * 10
		s.Player.AddGold(winnings - bet)
		return true, fmt.Sprintf("\n  The skull dice clatter ominously...\n  %s\n\n  TRIPLE SKULLS! The tavern goes silent in awe!\n  You win %d gold! (+%d net)",
			diceStr, winnings, winnings-bet)
	case d1 == d2 && d2 == d3:
		winnings := bet * 5
		s.Player.AddGold(winnings - bet)
		return true, fmt.Sprintf("\n  The skull dice clatter ominously...\n  %s\n\n  THREE OF A KIND! Impressive!\n  You win %d gold! (+%d net)",
			diceStr, winnings, winnings-bet)
	case d1 == d2 || d2 == d3 || d1 == d3:
		winnings := bet * 3 / 2
		s.Player.AddGold(winnings - bet)
		return true, fmt.Sprintf("\n  The skull dice clatter ominously...\n  %s\n\n  A pair! Not bad.\n  You win %d gold! (+%d net)",
			diceStr, winnings, winnings-bet)
	default:
		s.Player.Gold -= bet
		return false, fmt.Sprintf("\n  The skull dice clatter ominously...\n  %s\n\n  Nothing. The bones weren't with you tonight.\n  You lose %d gold.",
			diceStr, bet)
	}
}

// DeathOrGlory rolls 1d20 with triple stakes on the extremes: a 1 loses 3x
// the bet, 2-10 loses the bet, 11-19 wins the bet, 20 wins 3x. The player
// must be able to cover the triple loss before playing.
func DeathOrGlory(s *state.State, bet int, r *rng.RNG) (bool, string) {
	if bet <= 0 {
		return false, "You need to bet at least 1 gold."
	}
	maxLoss := bet * 3
	if s.Player.Gold < maxLoss {
		return false, fmt.Sprintf("Death or Glory requires %dg available (3x your bet). You have %dg.", maxLoss, s.Player.Gold)
	}

	roll := r.Roll(20)

	switch {
	case roll == 1:
		s.Player.Gold -= maxLoss
		return false, fmt.Sprintf("\n  You blow on the d20 for luck...\n  [%d]\n\n  DEATH! The dice gods are cruel!\n  You lose %d gold (3x your bet)!", roll, maxLoss)
	case roll <= 10:
		s.Player.Gold -= bet
		return false, fmt.Sprintf("\n  You blow on the d20 for luck...\n  [%d]\n\n  Not enough. You needed 11+.\n  You lose %d gold.", roll, bet)
	case roll < 20:
		s.Player.AddGold(bet)
		return true, fmt.Sprintf("\n  You blow on the d20 for luck...\n  [%d]\n\n  Victory! The dice favor you!\n  You win %d gold!", roll, bet)
	default:
		s.Player.AddGold(maxLoss)
		return true, fmt.Sprintf("\n  You blow on the d20 for luck...\n  [%d]\n\n  GLORY! A NATURAL 20! The tavern ERUPTS!\n  You win %d gold (3x your bet)!", roll, maxLoss)
	}
}

// Menu lists the tavern games for the gamble command with no arguments.
func Menu(s *state.State) string {
	return "The tavern games:\n" +
		"  gamble highlow <bet> <high|low|seven>  - 2d6, bet the total (2x, seven 4x)\n" +
		"  gamble skulls <bet>                    - 3d6, pairs and trips pay (1.5x/5x/10x)\n" +
		"  gamble glory <bet>                     - 1d20, triple stakes on 1 and 20\n" +
		fmt.Sprintf("You have %d gold.", s.Player.Gold)
}
