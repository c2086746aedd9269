// Package state manages the mutable session state: the player, the runtime
// world, per-room enemy instances, and the exploration/combat mode flags.
// Exactly one command mutates it at a time; no locking is needed.
package state

import (
	"sort"
	"strings"

	"github.com/kariannharris-star/Dungeon-crawlr/engine/world"
	"github.com/kariannharris-star/Dungeon-crawlr/types"
)

// FinalBoss is the enemy whose defeat yields the win-condition item.
const FinalBoss = "dungeon_warlord"

// WinItem is the item id that triggers global victory when held.
const WinItem = "warlord_amulet"

// Defs holds the immutable content tables loaded at startup.
type Defs struct {
	Game    types.GameDef
	Rooms   map[string]types.RoomDef
	Items   map[string]types.ItemDef
	Enemies map[string]types.EnemyDef
}

// Item returns the item definition for an id.
func (d *Defs) Item(id string) (types.ItemDef, bool) {
	item, ok := d.Items[id]
	return item, ok
}

// ItemName returns the display name for an item id, falling back to the id.
func (d *Defs) ItemName(id string) string {
	if item, ok := d.Items[id]; ok {
		return item.Name
	}
	return id
}

// State is the complete mutable game state for one session.
type State struct {
	Player        *Player
	World         *world.World
	CurrentRoomID string

	// Enemies maps room id → spawned instance. Instances persist after
	// defeat (Defeated latch) so saves record them.
	Enemies map[string]*Enemy

	InCombat     bool
	CurrentEnemy *Enemy
	EnemyRoomID  string

	GameWon  bool
	GameOver bool

	// UsedFountains tracks fountain rooms already drunk from this session.
	// Reset by NewState, never implicitly.
	UsedFountains map[string]bool

	TurnCount int
}

// NewState creates a fresh session: new player, new world copy, enemies
// spawned from their room templates, starting room marked visited.
func NewState(defs *Defs, playerName string) *State {
	s := &State{
		Player:        NewPlayer(playerName),
		World:         world.New(defs.Rooms, defs.Game.Start),
		CurrentRoomID: defs.Game.Start,
		Enemies:       map[string]*Enemy{},
		UsedFountains: map[string]bool{},
	}
	for roomID, room := range s.World.Rooms {
		if room.EnemyID == "" {
			continue
		}
		if def, ok := defs.Enemies[room.EnemyID]; ok {
			s.Enemies[roomID] = NewEnemy(def)
		}
	}
	if start := s.CurrentRoom(); start != nil {
		start.MarkVisited()
	}
	return s
}

// CurrentRoom returns the room the player occupies.
func (s *State) CurrentRoom() *world.Room {
	return s.World.Room(s.CurrentRoomID)
}

// RoomEnemy returns the enemy instance spawned in the current room, or nil.
func (s *State) RoomEnemy() *Enemy {
	return s.Enemies[s.CurrentRoomID]
}

// StartCombat enters combat mode against the given enemy.
func (s *State) StartCombat(e *Enemy) {
	s.InCombat = true
	s.CurrentEnemy = e
	s.EnemyRoomID = s.CurrentRoomID
}

// EndCombat leaves combat mode.
func (s *State) EndCombat() {
	s.InCombat = false
	s.CurrentEnemy = nil
	s.EnemyRoomID = ""
}

// MoveTo places the player in a room, marks it visited, and engages its
// enemy if one is alive.
func (s *State) MoveTo(roomID string) bool {
	room := s.World.Room(roomID)
	if room == nil {
		return false
	}
	s.CurrentRoomID = roomID
	room.MarkVisited()
	if enemy := s.RoomEnemy(); enemy != nil && enemy.IsAlive() {
		s.StartCombat(enemy)
	}
	return true
}

// TryMove attempts to leave the current room in a direction, handling locked
// exits. Unlocking requires the key in inventory but does not consume it;
// the lock is removed permanently for the session.
func (s *State) TryMove(direction string) (bool, string) {
	room := s.CurrentRoom()
	if room == nil {
		return false, "You are nowhere."
	}
	if !room.HasExit(direction) {
		return false, "There is no exit to the " + direction + "."
	}
	if room.IsExitLocked(direction) {
		key := room.RequiredKey(direction)
		if !s.Player.HasItem(key) {
			return false, "The way " + direction + " is locked. You need a key."
		}
		room.UnlockExit(direction)
		target, _ := room.ExitTarget(direction)
		s.MoveTo(target)
		return true, "You use the " + key + " to unlock the door and proceed " + direction + "."
	}
	target, _ := room.ExitTarget(direction)
	s.MoveTo(target)
	return true, ""
}

// VisitedRooms returns the ids of all visited rooms, sorted for
// deterministic selection (teleport effects draw from this list).
func (s *State) VisitedRooms() []string {
	var ids []string
	for id, room := range s.World.Rooms {
		if room.Visited {
			ids = append(ids, id)
		}
	}
	sort.Strings(ids)
	return ids
}

// CheckVictory latches GameWon once the player holds the win-condition item.
func (s *State) CheckVictory() bool {
	if s.Player.HasItem(WinItem) {
		s.GameWon = true
	}
	return s.GameWon
}

// FindItem scans an ordered id list for a case-insensitive name match.
// An exact name match anywhere in the list wins over a substring match;
// among equals the first in list order wins. Returns ("", false) if nothing
// matches.
func FindItem(defs *Defs, ids []string, name string) (string, bool) {
	if name == "" {
		return "", false
	}
	needle := strings.ToLower(name)
	substring := ""
	for _, id := range ids {
		display := strings.ToLower(defs.ItemName(id))
		if display == needle {
			return id, true
		}
		if substring == "" && strings.Contains(display, needle) {
			substring = id
		}
	}
	if substring != "" {
		return substring, true
	}
	return "", false
}
