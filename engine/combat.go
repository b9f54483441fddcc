package engine

import (
	"fmt"
	"strings"

	"github.com/nathoo/questmud/engine/events"
	"github.com/nathoo/questmud/types"
)

// fleeChance is the probability that a flee attempt succeeds.
const fleeChance = 0.7

// Damage computes damage: max(1, attack - defense).
func Damage(attack, defense int) int {
	return max(1, attack-defense)
}

// StartCombat begins a fight with a fresh copy of m. The room keeps its own
// monster, so every encounter starts at full health.
func (e *Engine) StartCombat(m types.Monster) {
	fresh := m
	e.State.Player.Monster = &fresh
	e.emit(events.New(events.Encounter, "monster", m.Key, "room", e.State.Player.Location))
	e.log.Info("encounter", "monster", m.Key, "room", e.State.Player.Location)
}

// Attack resolves one combat round. The player strikes first; a surviving
// monster strikes back. A blow that would kill the player leaves them at
// 1 HP and ends the fight instead.
func (e *Engine) Attack() string {
	p := &e.State.Player
	m := p.Monster
	if m == nil {
		return "You are not in combat."
	}

	dmg := Damage(e.attackStat(), m.Defense)
	m.HP -= dmg
	e.emit(events.New(events.Hit, "attacker", "player", "target", m.Key, "damage", dmg))
	out := []string{fmt.Sprintf("You hit the %s for %d damage!", m.Name, dmg)}

	if m.HP <= 0 {
		p.Exp += m.ExpReward
		p.Gold += m.GoldReward
		p.Monster = nil
		e.emit(events.New(events.Victory, "monster", m.Key, "exp", m.ExpReward, "gold", m.GoldReward))
		out = append(out,
			fmt.Sprintf("You defeated the %s!", m.Name),
			fmt.Sprintf("You gained %d exp and %d gold.", m.ExpReward, m.GoldReward),
		)
		if p.Exp >= p.ExpNeeded {
			e.levelUp()
			out = append(out, fmt.Sprintf("Level up! You are now level %d.", p.Level))
		}
		return strings.Join(out, "\n")
	}

	counter := Damage(m.Attack, e.defenseStat())
	p.HP -= counter
	e.emit(events.New(events.Hit, "attacker", m.Key, "target", "player", "damage", counter))
	out = append(out, fmt.Sprintf("The %s hits you for %d damage!", m.Name, counter))

	if p.HP <= 0 {
		p.HP = 1
		p.Monster = nil
		e.emit(events.New(events.Survived, "monster", m.Key))
		out = append(out, "A deadly blow! You barely survive and stagger out of the fight.")
	}
	return strings.Join(out, "\n")
}

// Flee tries to escape the current fight. A failed attempt changes nothing.
func (e *Engine) Flee() string {
	p := &e.State.Player
	if p.Monster == nil {
		return "You are not in combat."
	}
	if e.RNG.Float64() < fleeChance {
		e.emit(events.New(events.Fled, "monster", p.Monster.Key))
		p.Monster = nil
		return "You escaped successfully!"
	}
	e.emit(events.New(events.FleeFailed, "monster", p.Monster.Key))
	return "You failed to escape!"
}

// levelUp applies a single level gain, carrying surplus experience over.
func (e *Engine) levelUp() {
	p := &e.State.Player
	p.Level++
	p.Exp -= p.ExpNeeded
	p.ExpNeeded = p.ExpNeeded * 3 / 2
	p.MaxHP += 20
	p.HP = p.MaxHP
	p.Attack += 3
	p.Defense += 2
	e.emit(events.New(events.LevelUp, "level", p.Level))
	e.log.Info("level up", "level", p.Level, "max_hp", p.MaxHP)
}

func (e *Engine) attackStat() int {
	p := &e.State.Player
	if e.Rules.EquipmentBonuses && p.Weapon != nil {
		return p.Attack + p.Weapon.AttackBonus
	}
	return p.Attack
}

func (e *Engine) defenseStat() int {
	p := &e.State.Player
	if e.Rules.EquipmentBonuses && p.Armor != nil {
		return p.Defense + p.Armor.DefenseBonus
	}
	return p.Defense
}
