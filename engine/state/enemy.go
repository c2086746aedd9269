package state

import (
	"github.com/kariannharris-star/Dungeon-crawlr/engine/rng"
	"github.com/kariannharris-star/Dungeon-crawlr/types"
)

// Enemy is a per-room combat instance copied from its spawn template.
// Defeated is a one-way latch: a defeated enemy never respawns within a
// session.
type Enemy struct {
	ID          string            `json:"id"`
	Name        string            `json:"name"`
	HP          int               `json:"hp"`
	MaxHP       int               `json:"max_hp"`
	Attack      int               `json:"attack"`
	Defense     int               `json:"defense"`
	XPReward    int               `json:"xp_reward"`
	GoldReward  int               `json:"gold_reward"`
	DropTable   []types.DropEntry `json:"drop_table,omitempty"`
	Description string            `json:"description,omitempty"`
	Defeated    bool              `json:"defeated"`
}

// NewEnemy instantiates an enemy from its template.
func NewEnemy(def types.EnemyDef) *Enemy {
	return &Enemy{
		ID:          def.ID,
		Name:        def.Name,
		HP:          def.HP,
		MaxHP:       def.MaxHP,
		Attack:      def.Attack,
		Defense:     def.Defense,
		XPReward:    def.XPReward,
		GoldReward:  def.GoldReward,
		DropTable:   append([]types.DropEntry{}, def.DropTable...),
		Description: def.Description,
	}
}

// IsAlive reports whether the enemy can still fight.
func (e *Enemy) IsAlive() bool {
	return e.HP > 0 && !e.Defeated
}

// TakeDamage applies raw damage reduced by defense, floored at 1. HP clamps
// at 0 and reaching 0 latches Defeated. Returns the actual damage dealt.
func (e *Enemy) TakeDamage(damage int) int {
	actual := damage - e.Defense
	if actual < 1 {
		actual = 1
	}
	e.HP -= actual
	if e.HP <= 0 {
		e.HP = 0
		e.Defeated = true
	}
	return actual
}

// Drops rolls every drop-table entry independently against its chance and
// returns the item ids that hit, in table order.
func (e *Enemy) Drops(r *rng.RNG) []string {
	var drops []string
	for _, entry := range e.DropTable {
		if r.Chance(entry.Chance) {
			drops = append(drops, entry.ItemID)
		}
	}
	return drops
}
