// Package world holds the runtime room graph: directional exits, lock state,
// floor items, and chests. The graph itself is static — only lock state and
// room contents change during a session.
package world

import "github.com/kariannharris-star/Dungeon-crawlr/types"

// Chest is the mutable runtime copy of a room's chest.
type Chest struct {
	State       types.ChestState
	Opened      bool
	KeyRequired string
	TrapDamage  int
	FixedLoot   []string
	LootTier    string
}

// Room is the mutable runtime state of one dungeon room, built from its
// RoomDef at new-game time.
type Room struct {
	ID               string
	Name             string
	Description      string
	ShortDescription string
	Exits            map[string]string
	LockedExits      map[string]string
	Items            []string
	EnemyID          string
	Chest            *Chest
	Visited          bool

	IsShop        bool
	ShopInventory []string

	HasFountain     bool
	FountainEffects []string

	IsTavern bool
}

// World is the set of rooms making up the dungeon.
type World struct {
	Rooms map[string]*Room
	Start string
}

// New builds a fresh runtime world from room definitions. Every mutable
// field is deep-copied so definitions stay pristine across sessions.
func New(defs map[string]types.RoomDef, start string) *World {
	w := &World{
		Rooms: make(map[string]*Room, len(defs)),
		Start: start,
	}
	for id, def := range defs {
		w.Rooms[id] = newRoom(def)
	}
	return w
}

func newRoom(def types.RoomDef) *Room {
	r := &Room{
		ID:               def.ID,
		Name:             def.Name,
		Description:      def.Description,
		ShortDescription: def.ShortDescription,
		Exits:            copyStringMap(def.Exits),
		LockedExits:      copyStringMap(def.LockedExits),
		Items:            append([]string{}, def.Items...),
		EnemyID:          def.EnemyID,
		IsShop:           def.IsShop,
		ShopInventory:    append([]string{}, def.ShopInventory...),
		HasFountain:      def.HasFountain,
		FountainEffects:  append([]string{}, def.FountainEffects...),
		IsTavern:         def.IsTavern,
	}
	if def.Chest != nil {
		c := Chest{
			State:       def.Chest.State,
			Opened:      def.Chest.Opened,
			KeyRequired: def.Chest.KeyRequired,
			TrapDamage:  def.Chest.TrapDamage,
			FixedLoot:   append([]string{}, def.Chest.FixedLoot...),
			LootTier:    def.Chest.LootTier,
		}
		if c.State == "" {
			c.State = types.ChestUnlocked
		}
		r.Chest = &c
	}
	return r
}

func copyStringMap(m map[string]string) map[string]string {
	out := make(map[string]string, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

// Room returns the room with the given id, or nil.
func (w *World) Room(id string) *Room {
	return w.Rooms[id]
}

// StartingRoom returns the room the player begins in.
func (w *World) StartingRoom() *Room {
	return w.Rooms[w.Start]
}

// ExitTarget returns the destination room id for a direction.
func (r *Room) ExitTarget(direction string) (string, bool) {
	target, ok := r.Exits[direction]
	return target, ok
}

// HasExit reports whether an exit exists in the given direction.
func (r *Room) HasExit(direction string) bool {
	_, ok := r.Exits[direction]
	return ok
}

// IsExitLocked reports whether the exit in the given direction is locked.
func (r *Room) IsExitLocked(direction string) bool {
	_, ok := r.LockedExits[direction]
	return ok
}

// RequiredKey returns the item id needed to unlock an exit.
func (r *Room) RequiredKey(direction string) string {
	return r.LockedExits[direction]
}

// UnlockExit removes the lock entry for a direction — permanent for the
// session. Returns true if the exit was locked.
func (r *Room) UnlockExit(direction string) bool {
	if _, ok := r.LockedExits[direction]; ok {
		delete(r.LockedExits, direction)
		return true
	}
	return false
}

// AddItem appends an item to the room floor.
func (r *Room) AddItem(itemID string) {
	r.Items = append(r.Items, itemID)
}

// RemoveItem deletes the first matching item id from the floor.
// Returns false if the item is not present.
func (r *Room) RemoveItem(itemID string) bool {
	for i, id := range r.Items {
		if id == itemID {
			r.Items = append(r.Items[:i], r.Items[i+1:]...)
			return true
		}
	}
	return false
}

// HasItem reports whether the item lies on the room floor.
func (r *Room) HasItem(itemID string) bool {
	for _, id := range r.Items {
		if id == itemID {
			return true
		}
	}
	return false
}

// CurrentDescription returns the long description on first visit, the short
// form thereafter.
func (r *Room) CurrentDescription() string {
	if r.Visited && r.ShortDescription != "" {
		return r.ShortDescription
	}
	return r.Description
}

// MarkVisited latches the visited flag.
func (r *Room) MarkVisited() {
	r.Visited = true
}
