// Package cli provides the plain terminal front end: prompt, input loop,
// and save-file handling for the dungeon engine.
package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/kariannharris-star/Dungeon-crawlr/engine"
	"github.com/kariannharris-star/Dungeon-crawlr/engine/save"
	"github.com/kariannharris-star/Dungeon-crawlr/engine/state"
	"github.com/kariannharris-star/Dungeon-crawlr/types"
)

var (
	styleCombatPrompt = lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Bold(true)
	styleSystem       = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)

// CLI handles terminal interaction with the player.
type CLI struct {
	Engine    *engine.Engine
	Defs      *state.Defs
	In        io.Reader
	Out       io.Writer
	EchoInput bool // echo each input line after the prompt (for script playback)
	Color     bool // style the prompt and system lines (interactive terminals)
}

// New creates a CLI wired to the given engine.
func New(eng *engine.Engine, defs *state.Defs) *CLI {
	return &CLI{
		Engine: eng,
		Defs:   defs,
		In:     os.Stdin,
		Out:    os.Stdout,
	}
}

// Run starts the game loop: intro, then prompt → input → step → output
// until the engine reports quit or input runs dry.
func (c *CLI) Run() {
	for _, line := range c.Engine.Intro() {
		c.printLine(line)
	}

	scanner := bufio.NewScanner(c.In)
	for {
		c.print(c.prompt())
		if !scanner.Scan() {
			c.printLine("")
			return
		}
		input := strings.TrimSpace(scanner.Text())
		// Skip comment lines (for script files).
		if strings.HasPrefix(input, "#") {
			continue
		}
		if c.EchoInput && input != "" {
			c.printLine(input)
		}

		// Meta-commands start with '/'.
		if strings.HasPrefix(input, "/") {
			if c.handleMeta(input) {
				return
			}
			continue
		}

		result := c.Engine.Step(input)
		c.printResult(result)
		if result.Save != "" {
			c.cmdSave(result.Save)
		}
		if result.Quit {
			return
		}
	}
}

func (c *CLI) prompt() string {
	if c.Engine.InCombat() {
		if c.Color {
			return styleCombatPrompt.Render("(combat) >") + " "
		}
		return "(combat) > "
	}
	return "> "
}

// handleMeta dispatches meta-commands. Returns true if the game should exit.
func (c *CLI) handleMeta(input string) bool {
	parts := strings.Fields(input)
	cmd := parts[0]
	var arg string
	if len(parts) > 1 {
		arg = parts[1]
	}

	switch cmd {
	case "/quit", "/exit":
		c.printSystem("Goodbye.")
		return true

	case "/save":
		if arg == "" {
			arg = engine.DefaultSaveSlot
		}
		c.cmdSave(arg)

	case "/load":
		if arg == "" {
			arg = engine.DefaultSaveSlot
		}
		c.cmdLoad(arg)

	case "/slots":
		c.cmdSlots()

	case "/info":
		if arg == "" {
			arg = engine.DefaultSaveSlot
		}
		c.cmdInfo(arg)

	case "/help":
		c.printResult(c.Engine.Step("help"))
		c.printSystem("Meta: /save [slot], /load [slot], /info [slot], /slots, /quit")

	default:
		c.printSystem(fmt.Sprintf("Unknown command: %s. Type /help for available commands.", cmd))
	}

	return false
}

func (c *CLI) cmdSave(slot string) {
	if err := save.WriteSlot(slot, c.Engine.State, c.Defs, c.Engine.RNG); err != nil {
		c.printSystem(fmt.Sprintf("Save failed: %v", err))
		return
	}
	c.printSystem(fmt.Sprintf("Game saved to %s.", slot))
}

func (c *CLI) cmdLoad(slot string) {
	s, r, err := save.ReadSlot(slot, c.Defs)
	if err != nil {
		c.printSystem(fmt.Sprintf("Load failed: %v", err))
		return
	}
	c.Engine = engine.Resume(c.Defs, s, r)
	c.printSystem(fmt.Sprintf("Game loaded from %s (turn %d).", slot, s.TurnCount))
	c.printResult(c.Engine.Step("look"))
}

func (c *CLI) cmdInfo(slot string) {
	sd, err := save.PeekSlot(slot)
	if err != nil {
		c.printSystem(fmt.Sprintf("Could not read %s: %v", slot, err))
		return
	}
	roomName := sd.CurrentRoom
	if room, ok := c.Defs.Rooms[sd.CurrentRoom]; ok {
		roomName = room.Name
	}
	c.printSystem(fmt.Sprintf("%s: %s, level %d, %s, %d gold, turn %d",
		slot, sd.Player.Name, sd.Player.Level, roomName, sd.Player.Gold, sd.Turn))
}

func (c *CLI) cmdSlots() {
	slots, err := save.ListSlots()
	if err != nil {
		c.printSystem(fmt.Sprintf("Could not list saves: %v", err))
		return
	}
	if len(slots) == 0 {
		c.printSystem("No saved games.")
		return
	}
	c.printSystem("Saved games: " + strings.Join(slots, ", "))
}

func (c *CLI) printResult(result types.Result) {
	for _, line := range result.Output {
		c.printLine(line)
	}
}

func (c *CLI) printLine(text string) {
	fmt.Fprintln(c.Out, text)
}

func (c *CLI) print(text string) {
	fmt.Fprint(c.Out, text)
}

func (c *CLI) printSystem(text string) {
	line := fmt.Sprintf("[%s]", text)
	if c.Color {
		line = styleSystem.Render(line)
	}
	fmt.Fprintln(c.Out, line)
}
