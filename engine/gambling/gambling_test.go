package gambling

import (
	"strings"
	"testing"

	"github.com/kariannharris-star/Dungeon-crawlr/engine/rng"
	"github.com/kariannharris-star/Dungeon-crawlr/engine/state"
	"github.com/kariannharris-star/Dungeon-crawlr/types"
)

func testState() (*state.State, *state.Defs) {
	defs := &state.Defs{
		Game: types.GameDef{Start: "tavern"},
		Rooms: map[string]types.RoomDef{
			"tavern": {
				ID: "tavern", Name: "Tavern", Description: "Dice and ale.",
				Exits:    map[string]string{"north": "street"},
				IsTavern: true,
			},
			"street": {
				ID: "street", Name: "Street", Description: "Outside.",
				Exits: map[string]string{"south": "tavern"},
			},
		},
		Items:   map[string]types.ItemDef{},
		Enemies: map[string]types.EnemyDef{},
	}
	return state.NewState(defs, "Hero"), defs
}

func TestInTavern(t *testing.T) {
	s, _ := testState()
	if !InTavern(s) {
		t.Error("InTavern false in tavern")
	}
	s.MoveTo("street")
	if InTavern(s) {
		t.Error("InTavern true outside")
	}
}

func TestHighLowBetValidation(t *testing.T) {
	s, _ := testState()
	r := rng.New(1)
	s.Player.Gold = 50

	if ok, _ := HighLow(s, 0, "high", r); ok {
		t.Error("accepted zero bet")
	}
	if ok, _ := HighLow(s, -5, "high", r); ok {
		t.Error("accepted negative bet")
	}
	if ok, _ := HighLow(s, 100, "high", r); ok {
		t.Error("accepted bet above purse")
	}
	if ok, msg := HighLow(s, 10, "sideways", r); ok || !strings.Contains(msg, "Choose") {
		t.Errorf("accepted bad choice: %q", msg)
	}
	if s.Player.Gold != 50 {
		t.Errorf("gold = %d after rejected bets, want 50", s.Player.Gold)
	}
}

func TestHighLowPayouts(t *testing.T) {
	// Net change is +bet on a 2x win, +3x bet on seven, -bet on a loss.
	for seed := int64(1); seed <= 40; seed++ {
		s, _ := testState()
		s.Player.Gold = 100
		r := rng.New(seed)

		won, msg := HighLow(s, 10, "high", r)
		net := s.Player.Gold - 100
		if won && net != 10 {
			t.Errorf("seed %d: won high, net = %d, want +10\n%s", seed, net, msg)
		}
		if !won && net != -10 {
			t.Errorf("seed %d: lost high, net = %d, want -10", seed, net)
		}
	}
}

func TestHighLowSevenPays4x(t *testing.T) {
	// Find a seed that rolls a seven, then assert the 4x payout.
	for seed := int64(1); seed <= 200; seed++ {
		probe := rng.New(seed)
		if probe.Roll(6)+probe.Roll(6) != 7 {
			continue
		}
		s, _ := testState()
		s.Player.Gold = 100
		won, msg := HighLow(s, 10, "7", rng.New(seed))
		if !won {
			t.Fatalf("seed %d rolled seven but bet lost: %s", seed, msg)
		}
		if got := s.Player.Gold; got != 130 {
			t.Errorf("gold = %d, want 130 (net +3x bet)", got)
		}
		if !strings.Contains(msg, "LUCKY SEVEN") {
			t.Errorf("msg = %q", msg)
		}
		return
	}
	t.Fatal("no seed in range rolled a seven")
}

func TestSkullDicePayouts(t *testing.T) {
	// Each outcome leaves the purse at exactly one of the four net results.
	for seed := int64(1); seed <= 60; seed++ {
		s, _ := testState()
		s.Player.Gold = 100
		r := rng.New(seed)

		SkullDice(s, 10, r)
		net := s.Player.Gold - 100
		switch net {
		case 90, 40, 5, -10:
		default:
			t.Errorf("seed %d: net = %d, want one of +90/+40/+5/-10", seed, net)
		}
	}
}

func TestSkullDiceBetValidation(t *testing.T) {
	s, _ := testState()
	r := rng.New(1)
	s.Player.Gold = 5
	if ok, _ := SkullDice(s, 10, r); ok {
		t.Error("accepted bet above purse")
	}
	if ok, _ := SkullDice(s, 0, r); ok {
		t.Error("accepted zero bet")
	}
}

func TestDeathOrGloryRequiresTripleStakes(t *testing.T) {
	s, _ := testState()
	r := rng.New(1)
	s.Player.Gold = 25

	ok, msg := DeathOrGlory(s, 10, r)
	if ok {
		t.Fatal("played without covering the triple loss")
	}
	if !strings.Contains(msg, "3x your bet") {
		t.Errorf("msg = %q", msg)
	}
	if s.Player.Gold != 25 {
		t.Error("gold changed on refused game")
	}
}

func TestDeathOrGloryOutcomes(t *testing.T) {
	for seed := int64(1); seed <= 60; seed++ {
		s, _ := testState()
		s.Player.Gold = 100
		r := rng.New(seed)

		DeathOrGlory(s, 10, r)
		net := s.Player.Gold - 100
		switch net {
		case -30, -10, 10, 30:
		default:
			t.Errorf("seed %d: net = %d, want one of -30/-10/+10/+30", seed, net)
		}
	}
}

func TestMenuShowsGold(t *testing.T) {
	s, _ := testState()
	s.Player.Gold = 42
	menu := Menu(s)
	if !strings.Contains(menu, "You have 42 gold.") {
		t.Errorf("menu = %q", menu)
	}
	for _, game := range []string{"highlow", "skulls", "glory"} {
		if !strings.Contains(menu, game) {
			t.Errorf("menu missing %q", game)
		}
	}
}
