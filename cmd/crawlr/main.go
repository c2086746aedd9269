// Crawlr is a turn-based text dungeon crawler.
// Usage: crawlr [--version] [--plain] [--name <hero>] [--seed <n>] [--load <slot>] [--script <file>] <content_directory>
package main

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/kariannharris-star/Dungeon-crawlr/cli"
	"github.com/kariannharris-star/Dungeon-crawlr/engine"
	"github.com/kariannharris-star/Dungeon-crawlr/engine/save"
	"github.com/kariannharris-star/Dungeon-crawlr/loader"
	"github.com/kariannharris-star/Dungeon-crawlr/tui"
)

// Set via -ldflags at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	plain := false
	playerName := "Adventurer"
	seed := time.Now().UnixNano()
	var contentDir string
	var scriptFile string
	var loadSlot string

	args := os.Args[1:]
	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "--version":
			fmt.Printf("crawlr %s (commit %s, built %s)\n", version, commit, date)
			return
		case "--plain":
			plain = true
		case "--name":
			playerName = requireArg(args, &i)
		case "--seed":
			n, err := strconv.ParseInt(requireArg(args, &i), 10, 64)
			if err != nil {
				fmt.Fprintf(os.Stderr, "--seed requires an integer\n")
				os.Exit(1)
			}
			seed = n
		case "--load":
			loadSlot = requireArg(args, &i)
		case "--script":
			scriptFile = requireArg(args, &i)
		default:
			if contentDir == "" {
				contentDir = args[i]
			}
		}
	}

	if contentDir == "" {
		fmt.Fprintf(os.Stderr, "Usage: crawlr [--version] [--plain] [--name <hero>] [--seed <n>] [--load <slot>] [--script <file>] <content_directory>\n")
		os.Exit(1)
	}

	defs, err := loader.Load(contentDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading dungeon: %v\n", err)
		os.Exit(1)
	}

	var eng *engine.Engine
	if loadSlot != "" {
		s, r, err := save.ReadSlot(loadSlot, defs)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading save: %v\n", err)
			os.Exit(1)
		}
		eng = engine.Resume(defs, s, r)
	} else {
		eng = engine.New(defs, playerName, seed)
	}

	// Script mode: read commands from file, force plain, echo commands.
	if scriptFile != "" {
		f, err := os.Open(scriptFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening script: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		c := cli.New(eng, defs)
		c.In = f
		c.EchoInput = true
		c.Run()
		return
	}

	// Use plain CLI if --plain flag or stdout is not a terminal.
	if plain || !isTerminal() {
		c := cli.New(eng, defs)
		c.Color = isTerminal()
		c.Run()
		return
	}

	if err := tui.Run(eng, defs); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func requireArg(args []string, i *int) string {
	if *i+1 >= len(args) {
		fmt.Fprintf(os.Stderr, "%s requires a value\n", args[*i])
		os.Exit(1)
	}
	*i++
	return args[*i]
}

// isTerminal returns true if stdout is a terminal (not piped/redirected).
func isTerminal() bool {
	fi, err := os.Stdout.Stat()
	if err != nil {
		return false
	}
	return fi.Mode()&os.ModeCharDevice != 0
}
