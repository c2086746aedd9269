package state

// Starting stats for a fresh character.
const (
	startHP             = 100
	startAttack         = 10
	startDefense        = 2
	startXPToNext       = 50
	DefaultInventoryCap = 10
)

// Player is the player's mutable stat block and inventory.
type Player struct {
	Name           string   `json:"name"`
	HP             int      `json:"hp"`
	MaxHP          int      `json:"max_hp"`
	Attack         int      `json:"attack"`
	Defense        int      `json:"defense"`
	Level          int      `json:"level"`
	XP             int      `json:"xp"`
	XPToNext       int      `json:"xp_to_next"`
	Gold           int      `json:"gold"`
	Inventory      []string `json:"inventory"`
	EquippedWeapon string   `json:"equipped_weapon,omitempty"`
	EquippedArmor  string   `json:"equipped_armor,omitempty"`
	MaxInventory   int      `json:"max_inventory"`
}

// NewPlayer creates a level-1 character with the given name.
func NewPlayer(name string) *Player {
	return &Player{
		Name:         name,
		HP:           startHP,
		MaxHP:        startHP,
		Attack:       startAttack,
		Defense:      startDefense,
		Level:        1,
		XPToNext:     startXPToNext,
		Inventory:    []string{},
		MaxInventory: DefaultInventoryCap,
	}
}

// IsAlive reports whether the player still stands.
func (p *Player) IsAlive() bool {
	return p.HP > 0
}

// TakeDamage applies raw damage reduced by defense, floored at 1.
// HP clamps at 0. Returns the actual damage taken.
func (p *Player) TakeDamage(damage int) int {
	actual := damage - p.Defense
	if actual < 1 {
		actual = 1
	}
	p.HP -= actual
	if p.HP < 0 {
		p.HP = 0
	}
	return actual
}

// Heal restores HP up to MaxHP. Returns the actual amount healed.
func (p *Player) Heal(amount int) int {
	old := p.HP
	p.HP += amount
	if p.HP > p.MaxHP {
		p.HP = p.MaxHP
	}
	return p.HP - old
}

// GainXP accumulates experience and processes at most one level-up per call,
// carrying remainder XP toward the next threshold. Returns whether a level-up
// occurred.
func (p *Player) GainXP(amount int) bool {
	p.XP += amount
	if p.XP >= p.XPToNext {
		p.LevelUp()
		return true
	}
	return false
}

// LevelUp advances the character one level: XP carries the remainder, the
// next threshold grows by half, and stats improve with a full heal.
func (p *Player) LevelUp() {
	p.Level++
	p.XP -= p.XPToNext
	if p.XP < 0 {
		p.XP = 0
	}
	p.XPToNext = p.XPToNext * 3 / 2
	p.MaxHP += 10
	p.HP = p.MaxHP
	p.Attack += 2
	p.Defense++
}

// AddGold credits gold to the player.
func (p *Player) AddGold(amount int) {
	p.Gold += amount
}

// CanAddItem reports whether the inventory has room for one more item.
func (p *Player) CanAddItem() bool {
	return len(p.Inventory) < p.MaxInventory
}

// AddItem appends an item to the inventory. Returns false if at capacity.
func (p *Player) AddItem(itemID string) bool {
	if !p.CanAddItem() {
		return false
	}
	p.Inventory = append(p.Inventory, itemID)
	return true
}

// RemoveItem deletes the first matching item id from the inventory.
// Returns false if not found.
func (p *Player) RemoveItem(itemID string) bool {
	for i, id := range p.Inventory {
		if id == itemID {
			p.Inventory = append(p.Inventory[:i], p.Inventory[i+1:]...)
			return true
		}
	}
	return false
}

// HasItem reports whether the player carries the given item.
func (p *Player) HasItem(itemID string) bool {
	for _, id := range p.Inventory {
		if id == itemID {
			return true
		}
	}
	return false
}

// IsEquipped reports whether the item occupies the weapon or armor slot.
func (p *Player) IsEquipped(itemID string) bool {
	return itemID != "" && (itemID == p.EquippedWeapon || itemID == p.EquippedArmor)
}
