package save

import (
	"strings"
	"testing"

	"github.com/kariannharris-star/Dungeon-crawlr/engine/rng"
	"github.com/kariannharris-star/Dungeon-crawlr/engine/state"
	"github.com/kariannharris-star/Dungeon-crawlr/types"
)

func testDefs() *state.Defs {
	return &state.Defs{
		Game: types.GameDef{Start: "hall", Title: "Save Test"},
		Rooms: map[string]types.RoomDef{
			"hall": {
				ID: "hall", Name: "Hall", Description: "A hall.",
				Exits:       map[string]string{"north": "vault"},
				LockedExits: map[string]string{"north": "brass_key"},
				Items:       []string{"brass_key"},
				Chest:       &types.ChestDef{State: types.ChestUnlocked},
			},
			"vault": {
				ID: "vault", Name: "Vault", Description: "A vault.",
				Exits:           map[string]string{"south": "hall"},
				EnemyID:         "slime",
				HasFountain:     true,
				FountainEffects: []string{"heal"},
			},
		},
		Items: map[string]types.ItemDef{
			"brass_key": {ID: "brass_key", Name: "Brass Key", Category: types.CategoryKey},
		},
		Enemies: map[string]types.EnemyDef{
			"slime": {ID: "slime", Name: "Slime", HP: 10, MaxHP: 10, Attack: 3, Defense: 1},
			"mimic": {ID: "mimic", Name: "Mimic", HP: 12, MaxHP: 12, Attack: 4, Defense: 1},
		},
	}
}

// playSession advances a fresh session into a distinctive mid-game state.
func playSession(defs *state.Defs) (*state.State, *rng.RNG) {
	s := state.NewState(defs, "Hero")
	r := rng.New(7)
	r.Roll(6)
	r.Roll(6)

	s.Player.AddItem("brass_key")
	s.Player.Gold = 77
	s.Player.HP = 42
	s.TurnCount = 12
	s.CurrentRoom().Chest.Opened = true
	s.CurrentRoom().RemoveItem("brass_key")
	s.TryMove("north") // unlocks, engages slime
	s.EndCombat()
	s.Enemies["vault"].HP = 4
	s.UsedFountains["vault"] = true
	return s, r
}

func TestRoundTrip(t *testing.T) {
	defs := testDefs()
	s, r := playSession(defs)

	data, err := Save(s, defs, r)
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	sd, err := Load(data)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	restored, restoredRNG, err := Restore(defs, sd)
	if err != nil {
		t.Fatalf("restore: %v", err)
	}

	if restored.Player.Name != "Hero" || restored.Player.Gold != 77 || restored.Player.HP != 42 {
		t.Errorf("player = %+v", restored.Player)
	}
	if !restored.Player.HasItem("brass_key") {
		t.Error("inventory lost")
	}
	if restored.CurrentRoomID != "vault" {
		t.Errorf("room = %q, want vault", restored.CurrentRoomID)
	}
	if restored.TurnCount != 12 {
		t.Errorf("turns = %d, want 12", restored.TurnCount)
	}
	if !restored.World.Room("hall").Chest.Opened {
		t.Error("chest state lost")
	}
	if restored.World.Room("hall").HasItem("brass_key") {
		t.Error("taken floor item respawned")
	}
	if restored.World.Room("hall").IsExitLocked("north") {
		t.Error("unlocked exit re-locked")
	}
	if got := restored.Enemies["vault"].HP; got != 4 {
		t.Errorf("enemy HP = %d, want 4", got)
	}
	if !restored.UsedFountains["vault"] {
		t.Error("fountain state lost")
	}
	if !restored.World.Room("vault").Visited {
		t.Error("visited flag lost")
	}

	// The restored RNG continues the original dice stream.
	if restoredRNG.Position() != r.Position() {
		t.Fatalf("rng position = %d, want %d", restoredRNG.Position(), r.Position())
	}
	for i := 0; i < 10; i++ {
		if got, want := restoredRNG.Roll(6), r.Roll(6); got != want {
			t.Fatalf("rng draw %d: %d != %d", i, got, want)
		}
	}

	// Combat never survives a save.
	if restored.InCombat || restored.CurrentEnemy != nil {
		t.Error("combat state persisted")
	}
}

func TestLoadRejectsBadVersion(t *testing.T) {
	_, err := Load([]byte(`{"version":"2.0"}`))
	if err == nil {
		t.Fatal("accepted a 2.0 save")
	}
	if !strings.Contains(err.Error(), "incompatible") {
		t.Errorf("err = %v", err)
	}

	if _, err := Load([]byte(`{"version":"1.3"}`)); err != nil {
		t.Errorf("rejected a 1.x save: %v", err)
	}
}

func TestLoadRejectsGarbage(t *testing.T) {
	if _, err := Load([]byte("not json at all")); err == nil {
		t.Fatal("accepted garbage")
	}
}

func TestLoadNormalizesNils(t *testing.T) {
	sd, err := Load([]byte(`{"version":"1.0"}`))
	if err != nil {
		t.Fatal(err)
	}
	if sd.Rooms == nil || sd.Enemies == nil || sd.UsedFountains == nil || sd.Player.Inventory == nil {
		t.Error("nil maps survived load")
	}
}

func TestRestoreUnknownRoom(t *testing.T) {
	defs := testDefs()
	sd := &SaveData{Version: Version, CurrentRoom: "atlantis"}
	if _, _, err := Restore(defs, sd); err == nil {
		t.Fatal("restored into an unknown room")
	}

	sd = &SaveData{
		Version:     Version,
		CurrentRoom: "hall",
		Rooms:       map[string]RoomState{"atlantis": {}},
	}
	if _, _, err := Restore(defs, sd); err == nil {
		t.Fatal("restored a save naming an unknown room")
	}
}

func TestRoundTripSpawnedEnemy(t *testing.T) {
	defs := testDefs()
	s := state.NewState(defs, "Hero")
	r := rng.New(3)

	// A mimic lives in a room whose definition has no enemy; restore must
	// rebuild it from its recorded id rather than reject the save.
	mimic := state.NewEnemy(defs.Enemies["mimic"])
	mimic.HP = 9
	s.Enemies["hall"] = mimic

	data, err := Save(s, defs, r)
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	sd, err := Load(data)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	restored, _, err := Restore(defs, sd)
	if err != nil {
		t.Fatalf("restore: %v", err)
	}
	got := restored.Enemies["hall"]
	if got == nil {
		t.Fatal("spawned enemy lost on restore")
	}
	if got.ID != "mimic" || got.HP != 9 || got.Defeated {
		t.Errorf("restored enemy = %+v", got)
	}

	// Same path with the mimic dead: the latch survives too.
	mimic.HP = 0
	mimic.Defeated = true
	data, err = Save(s, defs, r)
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	sd, err = Load(data)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	restored, _, err = Restore(defs, sd)
	if err != nil {
		t.Fatalf("restore: %v", err)
	}
	if got := restored.Enemies["hall"]; got == nil || !got.Defeated || got.HP != 0 {
		t.Errorf("restored dead enemy = %+v", got)
	}
}

func TestRestoreUnknownEnemy(t *testing.T) {
	defs := testDefs()
	sd := &SaveData{
		Version:     Version,
		CurrentRoom: "hall",
		Enemies:     map[string]EnemyState{"hall": {ID: "dragon", HP: 5}},
	}
	if _, _, err := Restore(defs, sd); err == nil {
		t.Fatal("restored a save naming an undefined enemy")
	}
}

func TestSlotFiles(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	defs := testDefs()
	s, r := playSession(defs)

	if err := WriteSlot("trip", s, defs, r); err != nil {
		t.Fatalf("write slot: %v", err)
	}

	slots, err := ListSlots()
	if err != nil {
		t.Fatalf("list slots: %v", err)
	}
	if len(slots) != 1 || slots[0] != "trip" {
		t.Fatalf("slots = %v", slots)
	}

	restored, _, err := ReadSlot("trip", defs)
	if err != nil {
		t.Fatalf("read slot: %v", err)
	}
	if restored.Player.Gold != 77 {
		t.Errorf("gold = %d, want 77", restored.Player.Gold)
	}
}

func TestPeekSlot(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	defs := testDefs()
	s, r := playSession(defs)
	s.Player.Level = 3

	if err := WriteSlot("peek", s, defs, r); err != nil {
		t.Fatal(err)
	}

	sd, err := PeekSlot("peek")
	if err != nil {
		t.Fatalf("peek: %v", err)
	}
	if sd.Player.Name != "Hero" || sd.Player.Level != 3 || sd.CurrentRoom != "vault" {
		t.Errorf("peeked data = %+v", sd)
	}

	if _, err := PeekSlot("missing"); err == nil {
		t.Error("peeked a nonexistent slot")
	}
}

func TestSlotNameValidation(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	for _, bad := range []string{"", "../escape", "sl ot", "a/b", "dot.dot"} {
		if _, err := SlotPath(bad); err == nil {
			t.Errorf("SlotPath(%q) accepted", bad)
		}
	}
	for _, good := range []string{"quicksave", "Slot-2", "a_b_c", "042"} {
		if _, err := SlotPath(good); err != nil {
			t.Errorf("SlotPath(%q) rejected: %v", good, err)
		}
	}
}
