// Package engine is the game core: it owns the session state and advances
// it one parsed command at a time. Front ends feed raw input to Step and
// print the lines of the Result; the engine never touches the terminal or
// the filesystem.
package engine

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/kariannharris-star/Dungeon-crawlr/engine/chest"
	"github.com/kariannharris-star/Dungeon-crawlr/engine/fountain"
	"github.com/kariannharris-star/Dungeon-crawlr/engine/gambling"
	"github.com/kariannharris-star/Dungeon-crawlr/engine/inventory"
	"github.com/kariannharris-star/Dungeon-crawlr/engine/parser"
	"github.com/kariannharris-star/Dungeon-crawlr/engine/rng"
	"github.com/kariannharris-star/Dungeon-crawlr/engine/shop"
	"github.com/kariannharris-star/Dungeon-crawlr/engine/state"
	"github.com/kariannharris-star/Dungeon-crawlr/types"
)

// DefaultSaveSlot is used when the save command names no slot.
const DefaultSaveSlot = "quicksave"

// Engine drives one game session.
type Engine struct {
	Defs  *state.Defs
	State *state.State
	RNG   *rng.RNG

	// pendingQuit is set after a quit command; the next input either
	// confirms (y) or cancels.
	pendingQuit bool
}

// New starts a fresh session. The seed fixes the whole session's dice.
func New(defs *state.Defs, playerName string, seed int64) *Engine {
	return &Engine{
		Defs:  defs,
		State: state.NewState(defs, playerName),
		RNG:   rng.New(seed),
	}
}

// Resume wraps a restored session.
func Resume(defs *state.Defs, s *state.State, r *rng.RNG) *Engine {
	return &Engine{Defs: defs, State: s, RNG: r}
}

// Intro returns the opening lines of a session: title, greeting, and the
// starting room.
func (e *Engine) Intro() []string {
	var out []string
	if e.Defs.Game.Title != "" {
		out = append(out, e.Defs.Game.Title)
	}
	if e.Defs.Game.Intro != "" {
		out = append(out, e.Defs.Game.Intro)
	}
	out = append(out, fmt.Sprintf("Welcome, %s! Your adventure begins...", e.State.Player.Name))
	out = append(out, "")
	out = append(out, e.renderRoom()...)
	if enemy := e.State.RoomEnemy(); enemy != nil && enemy.IsAlive() {
		e.State.StartCombat(enemy)
		out = append(out, fmt.Sprintf("You engage the %s in combat!", enemy.Name), e.combatStatus())
	}
	return out
}

// InCombat reports whether the session is in combat mode, for prompts.
func (e *Engine) InCombat() bool {
	return e.State.InCombat
}

// Step advances the game by one line of player input.
func (e *Engine) Step(input string) types.Result {
	if e.pendingQuit {
		e.pendingQuit = false
		confirm := strings.ToLower(strings.TrimSpace(input))
		if confirm == "y" || confirm == "yes" {
			return types.Result{Output: []string{"Farewell, adventurer!"}, Quit: true}
		}
		return types.Result{Output: []string{"Quit cancelled."}}
	}

	if e.State.GameOver || e.State.GameWon {
		return types.Result{Quit: true}
	}

	cmd := parser.Parse(input)
	if cmd.Verb == "" {
		return types.Result{}
	}
	e.State.TurnCount++

	if e.State.InCombat {
		return e.stepCombat(cmd)
	}
	res := e.stepExploration(cmd)
	// The amulet can also turn up outside combat (chest loot, floor
	// pickup); the win fires no matter how it was obtained.
	if !e.State.InCombat && e.State.CheckVictory() {
		res.Output = append(res.Output, e.victoryScreen()...)
	}
	return res
}

func (e *Engine) stepCombat(cmd types.Command) types.Result {
	switch cmd.Verb {
	case "attack", "flee", "use":
		out := e.combatRound(cmd.Verb, cmd.Args)
		if e.State.GameOver {
			out = append(out, e.gameOverScreen()...)
			return types.Result{Output: out}
		}
		if e.State.CheckVictory() {
			out = append(out, e.victoryScreen()...)
			return types.Result{Output: out}
		}
		if e.State.InCombat {
			out = append(out, e.combatStatus())
		}
		return types.Result{Output: out}
	case "inventory":
		return types.Result{Output: e.renderInventory()}
	case "stats":
		return types.Result{Output: e.renderStats()}
	case "help":
		return types.Result{Output: e.helpLines()}
	case "quit":
		e.pendingQuit = true
		return types.Result{Output: []string{"Are you sure you want to quit? (y/n)"}}
	default:
		return types.Result{Output: []string{"In combat! Use: attack, use <item>, flee, inventory, stats"}}
	}
}

func (e *Engine) stepExploration(cmd types.Command) types.Result {
	switch cmd.Verb {
	case "move":
		return e.doMove(cmd.Args)

	case "look":
		return e.doLook(cmd.Args)

	case "examine":
		return e.doLook(cmd.Args)

	case "take":
		if len(cmd.Args) == 0 {
			return types.Result{Output: []string{"Take what? Try 'take <item>' or 'take all'."}}
		}
		name := parser.ItemName(cmd.Args)
		if name == "all" {
			_, msg := inventory.TakeAll(e.State, e.Defs)
			return types.Result{Output: []string{msg}}
		}
		_, msg := inventory.Take(e.State, e.Defs, name)
		return types.Result{Output: []string{msg}}

	case "drop":
		if len(cmd.Args) == 0 {
			return types.Result{Output: []string{"Drop what?"}}
		}
		_, msg := inventory.Drop(e.State, e.Defs, parser.ItemName(cmd.Args))
		return types.Result{Output: []string{msg}}

	case "use":
		if len(cmd.Args) == 0 {
			return types.Result{Output: []string{"Use what?"}}
		}
		_, msg := inventory.Use(e.State, e.Defs, parser.ItemName(cmd.Args), e.RNG)
		out := []string{msg}
		// a teleport into an occupied room engages its enemy
		if e.State.InCombat && e.State.CurrentEnemy != nil {
			out = append(out, fmt.Sprintf("You engage the %s in combat!", e.State.CurrentEnemy.Name), e.combatStatus())
		}
		return types.Result{Output: out}

	case "equip":
		if len(cmd.Args) == 0 {
			return types.Result{Output: []string{"Equip what?"}}
		}
		_, msg := inventory.Equip(e.State, e.Defs, parser.ItemName(cmd.Args))
		return types.Result{Output: []string{msg}}

	case "unequip":
		if len(cmd.Args) == 0 {
			return types.Result{Output: []string{"Unequip what?"}}
		}
		_, msg := inventory.Unequip(e.State, e.Defs, parser.ItemName(cmd.Args))
		return types.Result{Output: []string{msg}}

	case "open":
		if len(cmd.Args) == 0 || !strings.Contains(strings.Join(cmd.Args, " "), "chest") {
			return types.Result{Output: []string{"Open what? Try 'open chest'."}}
		}
		_, msg := chest.Open(e.State, e.Defs, e.RNG)
		out := []string{msg}
		if e.State.InCombat {
			out = append(out, e.combatStatus())
		}
		return types.Result{Output: out}

	case "inventory":
		return types.Result{Output: e.renderInventory()}

	case "stats":
		return types.Result{Output: e.renderStats()}

	case "map":
		return types.Result{Output: e.renderMap()}

	case "shop":
		return types.Result{Output: strings.Split(shop.Describe(e.State, e.Defs), "\n")}

	case "buy":
		if len(cmd.Args) == 0 {
			return types.Result{Output: []string{"Buy what?"}}
		}
		_, msg := shop.Buy(e.State, e.Defs, parser.ItemName(cmd.Args))
		return types.Result{Output: []string{msg}}

	case "sell":
		if len(cmd.Args) == 0 {
			return types.Result{Output: []string{"Sell what?"}}
		}
		_, msg := shop.Sell(e.State, e.Defs, parser.ItemName(cmd.Args))
		return types.Result{Output: []string{msg}}

	case "drink":
		_, msg := fountain.Drink(e.State, e.Defs, e.RNG)
		return types.Result{Output: []string{msg}}

	case "gamble":
		return e.doGamble(cmd.Args)

	case "attack":
		enemy := e.State.RoomEnemy()
		if enemy == nil || !enemy.IsAlive() {
			return types.Result{Output: []string{"There's nothing to attack here."}}
		}
		e.State.StartCombat(enemy)
		return types.Result{Output: []string{
			fmt.Sprintf("You engage the %s in combat!", enemy.Name),
			e.combatStatus(),
		}}

	case "save":
		slot := DefaultSaveSlot
		if len(cmd.Args) > 0 {
			slot = cmd.Args[0]
		}
		return types.Result{Save: slot}

	case "help":
		return types.Result{Output: e.helpLines()}

	case "quit":
		e.pendingQuit = true
		return types.Result{Output: []string{"Are you sure you want to quit? (y/n)"}}

	default:
		return types.Result{Output: []string{"I don't understand that command. Type 'help' for a list of commands."}}
	}
}

func (e *Engine) doMove(args []string) types.Result {
	if len(args) == 0 {
		return types.Result{Output: []string{"Move where? Specify a direction (north, south, east, west, up, down)."}}
	}
	direction := parser.NormalizeDirection(args[0])
	if !parser.ValidDirection(direction) {
		return types.Result{Output: []string{fmt.Sprintf("'%s' is not a valid direction.", args[0])}}
	}

	ok, msg := e.State.TryMove(direction)
	var out []string
	if msg != "" {
		out = append(out, msg)
	}
	if !ok {
		return types.Result{Output: out}
	}

	out = append(out, e.renderRoom()...)
	if e.State.InCombat && e.State.CurrentEnemy != nil {
		out = append(out, fmt.Sprintf("You engage the %s in combat!", e.State.CurrentEnemy.Name), e.combatStatus())
	}
	return types.Result{Output: out}
}

func (e *Engine) doLook(args []string) types.Result {
	room := e.State.CurrentRoom()
	if len(args) == 0 {
		return types.Result{Output: e.renderRoom()}
	}

	target := strings.ToLower(strings.Join(args, " "))
	for _, itemID := range room.Items {
		item, ok := e.Defs.Item(itemID)
		if ok && strings.Contains(strings.ToLower(item.Name), target) {
			desc := item.Description
			if desc == "" {
				desc = "Nothing special."
			}
			return types.Result{Output: []string{desc}}
		}
	}
	if enemy := e.State.RoomEnemy(); enemy != nil && strings.Contains(strings.ToLower(enemy.Name), target) {
		return types.Result{Output: []string{enemy.Description}}
	}
	return types.Result{Output: []string{fmt.Sprintf("You don't see '%s' here.", strings.Join(args, " "))}}
}

func (e *Engine) doGamble(args []string) types.Result {
	if !gambling.InTavern(e.State) {
		return types.Result{Output: []string{"There's nowhere to gamble here. Find a tavern."}}
	}
	if len(args) == 0 {
		return types.Result{Output: strings.Split(gambling.Menu(e.State), "\n")}
	}

	game := args[0]
	if len(args) < 2 {
		return types.Result{Output: []string{"How much? Try 'gamble " + game + " <bet>'."}}
	}
	bet, err := strconv.Atoi(args[1])
	if err != nil {
		return types.Result{Output: []string{fmt.Sprintf("'%s' is not a valid bet.", args[1])}}
	}

	var msg string
	switch game {
	case "highlow":
		if len(args) < 3 {
			return types.Result{Output: []string{"Call it: 'gamble highlow <bet> <high|low|seven>'."}}
		}
		_, msg = gambling.HighLow(e.State, bet, args[2], e.RNG)
	case "skulls":
		_, msg = gambling.SkullDice(e.State, bet, e.RNG)
	case "glory":
		_, msg = gambling.DeathOrGlory(e.State, bet, e.RNG)
	default:
		return types.Result{Output: strings.Split(gambling.Menu(e.State), "\n")}
	}
	return types.Result{Output: strings.Split(msg, "\n")}
}

func (e *Engine) renderRoom() []string {
	room := e.State.CurrentRoom()
	if room == nil {
		return []string{"You are nowhere. This shouldn't happen."}
	}

	out := []string{"=== " + room.Name + " ===", room.CurrentDescription()}

	if len(room.Items) > 0 {
		names := make([]string, 0, len(room.Items))
		for _, id := range room.Items {
			names = append(names, e.Defs.ItemName(id))
		}
		out = append(out, "You see: "+strings.Join(names, ", "))
	}

	if room.Chest != nil && !room.Chest.Opened {
		out = append(out, "There is a chest here.")
	}
	if room.IsShop {
		out = append(out, "A shopkeeper waits behind the counter. (try 'shop')")
	}
	if room.HasFountain && !e.State.UsedFountains[room.ID] {
		out = append(out, "A magical fountain bubbles here. (try 'drink')")
	}
	if room.IsTavern {
		out = append(out, "Dice clatter on the tavern tables. (try 'gamble')")
	}

	if enemy := e.State.RoomEnemy(); enemy != nil && enemy.IsAlive() {
		out = append(out, fmt.Sprintf("A %s blocks your way!", enemy.Name))
	}

	exits := make([]string, 0, len(room.Exits))
	for direction := range room.Exits {
		if room.IsExitLocked(direction) {
			exits = append(exits, direction+" (locked)")
		} else {
			exits = append(exits, direction)
		}
	}
	sort.Strings(exits)
	if len(exits) > 0 {
		out = append(out, "Exits: "+strings.Join(exits, ", "))
	} else {
		out = append(out, "There are no exits. How did you get here?")
	}
	return out
}

func (e *Engine) renderInventory() []string {
	p := e.State.Player
	out := []string{fmt.Sprintf("Inventory (%d/%d):", len(p.Inventory), p.MaxInventory)}
	if len(p.Inventory) == 0 {
		out = append(out, "  (empty)")
		return out
	}
	for _, id := range p.Inventory {
		line := "  " + e.Defs.ItemName(id)
		if p.IsEquipped(id) {
			line += " (equipped)"
		}
		out = append(out, line)
	}
	return out
}

func (e *Engine) renderStats() []string {
	p := e.State.Player
	weapon := inventory.WeaponDamage(e.State, e.Defs)
	armor := inventory.ArmorBonus(e.State, e.Defs)
	return []string{
		fmt.Sprintf("%s - Level %d", p.Name, p.Level),
		fmt.Sprintf("  HP: %d/%d", p.HP, p.MaxHP),
		fmt.Sprintf("  Attack: %d (+%d weapon)", p.Attack, weapon),
		fmt.Sprintf("  Defense: %d (+%d armor)", p.Defense, armor),
		fmt.Sprintf("  XP: %d/%d", p.XP, p.XPToNext),
		fmt.Sprintf("  Gold: %d", p.Gold),
	}
}

// renderMap lists discovered rooms and their connections. The map is built
// from visited state, so unexplored areas stay hidden.
func (e *Engine) renderMap() []string {
	out := []string{"=== Discovered Map ==="}
	for _, roomID := range e.State.VisitedRooms() {
		room := e.State.World.Room(roomID)
		marker := "  "
		if roomID == e.State.CurrentRoomID {
			marker = "* "
		}
		exits := make([]string, 0, len(room.Exits))
		for direction := range room.Exits {
			exits = append(exits, direction)
		}
		sort.Strings(exits)
		out = append(out, fmt.Sprintf("%s%s (%s)", marker, room.Name, strings.Join(exits, ", ")))
	}
	out = append(out, "* you are here")
	return out
}

func (e *Engine) combatStatus() string {
	p := e.State.Player
	enemy := e.State.CurrentEnemy
	if enemy == nil {
		return ""
	}
	return fmt.Sprintf("[%s: %d/%d HP | %s: %d/%d HP]", p.Name, p.HP, p.MaxHP, enemy.Name, enemy.HP, enemy.MaxHP)
}

func (e *Engine) helpLines() []string {
	return []string{
		"Commands:",
		"  move <direction>   - travel north, south, east, west, up, down (or just 'n', 's'...)",
		"  look [target]      - describe the room, or something in it",
		"  take <item>|all    - pick up loot",
		"  drop <item>        - leave something behind",
		"  use <item>         - drink a potion, read a scroll",
		"  equip/unequip <item> - ready a weapon or armor",
		"  open chest         - open the chest in the room",
		"  inventory, stats, map",
		"  shop, buy <item>, sell <item>  - in shop rooms",
		"  drink              - at magical fountains",
		"  gamble             - at the tavern",
		"  attack             - pick a fight / swing in combat",
		"  flee               - run from combat (50/50)",
		"  save [slot]        - save the game",
		"  quit               - leave the dungeon",
	}
}

func (e *Engine) gameOverScreen() []string {
	p := e.State.Player
	return []string{
		"",
		"=== GAME OVER ===",
		fmt.Sprintf("%s fell in the dungeon at level %d with %d gold.", p.Name, p.Level, p.Gold),
	}
}

func (e *Engine) victoryScreen() []string {
	p := e.State.Player
	return []string{
		"",
		"=== VICTORY ===",
		"The Warlord's Amulet hums in your pack. The dungeon is conquered!",
		fmt.Sprintf("%s triumphed at level %d with %d gold, in %d turns.", p.Name, p.Level, p.Gold, e.State.TurnCount),
	}
}
