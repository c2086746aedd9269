// Package save implements JSON serialization and deserialization of game
// state, plus the slot files under the player's save directory.
package save

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/kariannharris-star/Dungeon-crawlr/engine/rng"
	"github.com/kariannharris-star/Dungeon-crawlr/engine/state"
)

// Version tags the save format. Loads accept any 1.x save.
const Version = "1.0"

// RoomState is the per-room mutable state worth persisting. Static room
// data (descriptions, exits) is rebuilt from the dungeon definitions.
type RoomState struct {
	Visited     bool              `json:"visited"`
	Items       []string          `json:"items"`
	LockedExits map[string]string `json:"locked_exits,omitempty"`
	ChestOpened bool              `json:"chest_opened,omitempty"`
}

// EnemyState is the surviving state of a spawned enemy. ID records which
// definition it came from so enemies spawned at runtime (mimics) can be
// rebuilt on restore.
type EnemyState struct {
	ID       string `json:"id"`
	HP       int    `json:"hp"`
	Defeated bool   `json:"defeated"`
}

// SaveData is the JSON-serializable save format.
type SaveData struct {
	Version       string                `json:"version"`
	Game          string                `json:"game"`
	Turn          int                   `json:"turn"`
	Player        state.Player          `json:"player"`
	CurrentRoom   string                `json:"current_room"`
	Rooms         map[string]RoomState  `json:"rooms"`
	Enemies       map[string]EnemyState `json:"enemies"`
	GameWon       bool                  `json:"game_won"`
	UsedFountains map[string]bool       `json:"used_fountains"`
	RNGSeed       int64                 `json:"rng_seed"`
	RNGPos        int64                 `json:"rng_pos"`
}

// Save serializes a session to JSON bytes. Saving is only meaningful
// outside combat; combat state is deliberately not captured.
func Save(s *state.State, defs *state.Defs, r *rng.RNG) ([]byte, error) {
	data := SaveData{
		Version:       Version,
		Game:          defs.Game.Title,
		Turn:          s.TurnCount,
		Player:        *s.Player,
		CurrentRoom:   s.CurrentRoomID,
		Rooms:         make(map[string]RoomState, len(s.World.Rooms)),
		Enemies:       make(map[string]EnemyState, len(s.Enemies)),
		GameWon:       s.GameWon,
		UsedFountains: s.UsedFountains,
		RNGSeed:       r.Seed(),
		RNGPos:        r.Position(),
	}
	for id, room := range s.World.Rooms {
		rs := RoomState{
			Visited:     room.Visited,
			Items:       append([]string{}, room.Items...),
			LockedExits: room.LockedExits,
		}
		if room.Chest != nil {
			rs.ChestOpened = room.Chest.Opened
		}
		data.Rooms[id] = rs
	}
	for roomID, enemy := range s.Enemies {
		data.Enemies[roomID] = EnemyState{ID: enemy.ID, HP: enemy.HP, Defeated: enemy.Defeated}
	}
	return json.MarshalIndent(data, "", "  ")
}

// Load deserializes JSON bytes into SaveData and rejects incompatible
// versions.
func Load(data []byte) (*SaveData, error) {
	var sd SaveData
	if err := json.Unmarshal(data, &sd); err != nil {
		return nil, fmt.Errorf("invalid save file: %w", err)
	}
	if !strings.HasPrefix(sd.Version, "1.") {
		return nil, fmt.Errorf("incompatible save file version: %q", sd.Version)
	}
	// Ensure maps and slices are never nil after load.
	if sd.Rooms == nil {
		sd.Rooms = map[string]RoomState{}
	}
	if sd.Enemies == nil {
		sd.Enemies = map[string]EnemyState{}
	}
	if sd.UsedFountains == nil {
		sd.UsedFountains = map[string]bool{}
	}
	if sd.Player.Inventory == nil {
		sd.Player.Inventory = []string{}
	}
	return &sd, nil
}

// Restore builds a fresh session from definitions and overlays the save on
// it. All-or-nothing: on error the returned state is nil and nothing is
// partially applied.
func Restore(defs *state.Defs, sd *SaveData) (*state.State, *rng.RNG, error) {
	if _, ok := defs.Rooms[sd.CurrentRoom]; !ok {
		return nil, nil, fmt.Errorf("save references unknown room %q", sd.CurrentRoom)
	}

	s := state.NewState(defs, sd.Player.Name)
	player := sd.Player
	s.Player = &player
	s.CurrentRoomID = sd.CurrentRoom
	s.GameWon = sd.GameWon
	s.UsedFountains = sd.UsedFountains
	s.TurnCount = sd.Turn

	for id, rs := range sd.Rooms {
		room := s.World.Room(id)
		if room == nil {
			return nil, nil, fmt.Errorf("save references unknown room %q", id)
		}
		room.Visited = rs.Visited
		room.Items = append([]string{}, rs.Items...)
		if rs.LockedExits != nil {
			room.LockedExits = rs.LockedExits
		} else {
			room.LockedExits = map[string]string{}
		}
		if room.Chest != nil {
			room.Chest.Opened = rs.ChestOpened
		}
	}

	for roomID, es := range sd.Enemies {
		enemy, ok := s.Enemies[roomID]
		if !ok {
			// Mimics spawn into rooms with no enemy template; rebuild
			// the instance from its recorded definition.
			def, found := defs.Enemies[es.ID]
			if !found {
				return nil, nil, fmt.Errorf("save references unknown enemy %q in room %q", es.ID, roomID)
			}
			enemy = state.NewEnemy(def)
			s.Enemies[roomID] = enemy
		}
		enemy.HP = es.HP
		enemy.Defeated = es.Defeated
	}

	return s, rng.Restore(sd.RNGSeed, sd.RNGPos), nil
}

// Dir returns the save directory, creating it if needed.
func Dir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}
	dir := filepath.Join(home, ".crawlr", "saves")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create save directory: %w", err)
	}
	return dir, nil
}

// SlotPath maps a slot name to its file path. Slot names are restricted to
// a safe character set so they can't escape the save directory.
func SlotPath(slot string) (string, error) {
	for _, r := range slot {
		ok := r == '-' || r == '_' ||
			(r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9')
		if !ok {
			return "", fmt.Errorf("invalid save slot name %q", slot)
		}
	}
	if slot == "" {
		return "", fmt.Errorf("empty save slot name")
	}
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, slot+".json"), nil
}

// WriteSlot saves a session under the named slot.
func WriteSlot(slot string, s *state.State, defs *state.Defs, r *rng.RNG) error {
	path, err := SlotPath(slot)
	if err != nil {
		return err
	}
	data, err := Save(s, defs, r)
	if err != nil {
		return fmt.Errorf("serialize save: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write save file: %w", err)
	}
	return nil
}

// ReadSlot restores a session from the named slot.
func ReadSlot(slot string, defs *state.Defs) (*state.State, *rng.RNG, error) {
	path, err := SlotPath(slot)
	if err != nil {
		return nil, nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("read save file: %w", err)
	}
	sd, err := Load(data)
	if err != nil {
		return nil, nil, err
	}
	return Restore(defs, sd)
}

// PeekSlot reads a slot's save data without building a session from it,
// for listing and info displays.
func PeekSlot(slot string) (*SaveData, error) {
	path, err := SlotPath(slot)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read save file: %w", err)
	}
	return Load(data)
}

// ListSlots returns the available save slot names, sorted.
func ListSlots() ([]string, error) {
	dir, err := Dir()
	if err != nil {
		return nil, err
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read save directory: %w", err)
	}
	var slots []string
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, ".json") {
			continue
		}
		slots = append(slots, strings.TrimSuffix(name, ".json"))
	}
	sort.Strings(slots)
	return slots, nil
}
