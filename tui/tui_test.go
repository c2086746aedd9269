package tui

import (
	"strings"
	"testing"

	"github.com/kariannharris-star/Dungeon-crawlr/engine"
	"github.com/kariannharris-star/Dungeon-crawlr/engine/state"
	"github.com/kariannharris-star/Dungeon-crawlr/types"
)

// testDefs returns minimal dungeon definitions for TUI testing.
func testDefs() *state.Defs {
	return &state.Defs{
		Game: types.GameDef{
			Title: "Test Dungeon",
			Start: "hall",
			Intro: "Welcome to the test.",
		},
		Rooms: map[string]types.RoomDef{
			"hall": {
				ID:          "hall",
				Name:        "Grand Hall",
				Description: "A grand hall.",
				Exits:       map[string]string{"north": "garden"},
				Items:       []string{"rusty_key"},
			},
			"garden": {
				ID:          "garden",
				Name:        "Garden",
				Description: "A peaceful garden.",
				Exits:       map[string]string{"south": "hall"},
			},
		},
		Items: map[string]types.ItemDef{
			"rusty_key": {
				ID:       "rusty_key",
				Name:     "rusty key",
				Category: types.CategoryKey,
			},
		},
		Enemies: map[string]types.EnemyDef{},
	}
}

func TestClassifyLine(t *testing.T) {
	tests := []struct {
		line string
		want lineKind
	}{
		{"=== Grand Hall ===", kindHeader},
		{"You see: rusty key, old book", kindYouSee},
		{"Exits: north, south", kindExits},
		{"You attack the Goblin for 9 damage!", kindCombat},
		{"The Goblin attacks you for 3 damage!", kindCombat},
		{"You engage the Goblin in combat!", kindCombat},
		{"A Goblin blocks your way!", kindCombat},
		{"[Hero: 88/100 HP | Goblin: 11/20 HP]", kindCombat},
		{"You gained 25 XP and 10 gold.", kindReward},
		{"You don't see 'dragon' here.", kindError},
		{"You can't afford Iron Sword. It costs 120 gold and you have 3.", kindError},
		{"There's no shop here.", kindError},
		{"A grand hall with stone walls.", kindRoomDesc},
		{"", kindRoomDesc},
	}
	for _, tt := range tests {
		got := classifyLine(tt.line)
		if got != tt.want {
			t.Errorf("classifyLine(%q) = %v, want %v", tt.line, got, tt.want)
		}
	}
}

func TestWordWrap(t *testing.T) {
	tests := []struct {
		text  string
		width int
		want  string
	}{
		{"short", 80, "short"},
		{"hello world", 5, "hello\nworld"},
		{"The great hall stretches before you with its vaulted ceiling.", 30,
			"The great hall stretches\nbefore you with its vaulted\nceiling."},
		{"", 80, ""},
		{"a b c d e", 3, "a b\nc d\ne"},
	}
	for _, tt := range tests {
		got := wordWrap(tt.text, tt.width)
		if got != tt.want {
			t.Errorf("wordWrap(%q, %d) =\n  %q\nwant:\n  %q", tt.text, tt.width, got, tt.want)
		}
	}
}

func TestInputLogRecall(t *testing.T) {
	l := newInputLog(5)
	l.record("look")
	l.record("go north")
	l.record("take key")

	for _, want := range []string{"take key", "go north", "look", "look"} {
		got, ok := l.older()
		if !ok || got != want {
			t.Errorf("older() = %q (ok=%v), want %q", got, ok, want)
		}
	}

	// Forward again, then off the newest end back to live input.
	if got, ok := l.newer(); !ok || got != "go north" {
		t.Errorf("newer() = %q (ok=%v), want 'go north'", got, ok)
	}
	if got, ok := l.newer(); !ok || got != "take key" {
		t.Errorf("newer() = %q (ok=%v), want 'take key'", got, ok)
	}
	if _, ok := l.newer(); ok {
		t.Error("newer() past the newest entry should report live input")
	}
}

func TestInputLogEmpty(t *testing.T) {
	l := newInputLog(5)
	if _, ok := l.older(); ok {
		t.Error("older() on an empty log should fail")
	}
	if _, ok := l.newer(); ok {
		t.Error("newer() on an empty log should fail")
	}
}

func TestInputLogEviction(t *testing.T) {
	l := newInputLog(2)
	l.record("a")
	l.record("b")
	l.record("c") // evicts "a"

	for _, want := range []string{"c", "b", "b"} {
		got, _ := l.older()
		if got != want {
			t.Errorf("older() = %q, want %q", got, want)
		}
	}
}

func TestInputLogSkipsRepeats(t *testing.T) {
	l := newInputLog(5)
	l.record("look")
	l.record("look")
	l.record("look")

	if len(l.lines) != 1 {
		t.Errorf("recorded %d lines, want 1", len(l.lines))
	}
}

func TestInputLogRecordResetsRecall(t *testing.T) {
	l := newInputLog(5)
	l.record("look")
	l.record("map")
	l.older()
	l.older()
	l.record("stats")

	if got, ok := l.older(); !ok || got != "stats" {
		t.Errorf("older() after record = %q (ok=%v), want 'stats'", got, ok)
	}
}

func TestHandleMeta_Quit(t *testing.T) {
	defs := testDefs()
	m := New(engine.New(defs, "Hero", 1), defs)

	if _, quit := m.handleMeta("/quit"); !quit {
		t.Error("expected quit=true for /quit")
	}
	if _, quit := m.handleMeta("/exit"); !quit {
		t.Error("expected quit=true for /exit")
	}
}

func TestHandleMeta_SaveAndLoad(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	defs := testDefs()
	m := New(engine.New(defs, "Hero", 1), defs)

	output, quit := m.handleMeta("/save test")
	if quit {
		t.Error("save should not quit")
	}
	if len(output) == 0 || !strings.Contains(output[0], "Game saved") {
		t.Errorf("expected save confirmation, got %v", output)
	}

	output, _ = m.handleMeta("/load test")
	if len(output) == 0 || !strings.Contains(output[0], "Game loaded") {
		t.Errorf("expected load confirmation, got %v", output)
	}
}

func TestHandleMeta_LoadNonexistent(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	defs := testDefs()
	m := New(engine.New(defs, "Hero", 1), defs)

	output, quit := m.handleMeta("/load nonexistent")
	if quit {
		t.Error("load should not quit")
	}
	if len(output) == 0 || !strings.Contains(output[0], "Load failed") {
		t.Errorf("expected load failure, got %v", output)
	}
}

func TestHandleMeta_Help(t *testing.T) {
	defs := testDefs()
	m := New(engine.New(defs, "Hero", 1), defs)

	output, quit := m.handleMeta("/help")
	if quit {
		t.Error("help should not quit")
	}

	joined := strings.Join(output, "\n")
	for _, expected := range []string{"/save", "/load", "/quit", "look", "inventory"} {
		if !strings.Contains(joined, expected) {
			t.Errorf("expected %q in help output", expected)
		}
	}
}

func TestHandleMeta_Unknown(t *testing.T) {
	defs := testDefs()
	m := New(engine.New(defs, "Hero", 1), defs)

	output, quit := m.handleMeta("/bogus")
	if quit {
		t.Error("unknown command should not quit")
	}
	if len(output) == 0 || !strings.Contains(output[0], "Unknown command") {
		t.Errorf("expected unknown command message, got %v", output)
	}
}
