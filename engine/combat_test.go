package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nathoo/questmud/engine/events"
	"github.com/nathoo/questmud/types"
)

func TestDamage(t *testing.T) {
	tests := []struct {
		attack, defense, want int
	}{
		{10, 2, 8},
		{8, 5, 3},
		{5, 5, 1},
		{1, 20, 1},
		{0, 0, 1},
		{-3, 4, 1},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Damage(tt.attack, tt.defense), "Damage(%d, %d)", tt.attack, tt.defense)
	}
}

func TestDamage_NeverBelowOne(t *testing.T) {
	for atk := -5; atk <= 50; atk++ {
		for def := -5; def <= 50; def++ {
			if d := Damage(atk, def); d < 1 {
				t.Fatalf("Damage(%d, %d) = %d", atk, def, d)
			}
		}
	}
}

func fight(e *Engine, key string) {
	m, _ := e.Defs.Monster(key)
	e.StartCombat(m)
}

func TestStartCombat_FreshCopy(t *testing.T) {
	e := newTestEngine()
	fight(e, "goblin")

	e.State.Player.Monster.HP = 3
	m, _ := e.Defs.Monster("goblin")
	assert.Equal(t, 30, m.HP)

	evts := e.DrainEvents()
	require.Len(t, evts, 1)
	assert.Equal(t, events.Encounter, evts[0].Type)
}

func TestAttack_NotInCombat(t *testing.T) {
	e := newTestEngine()
	before := e.State.Player

	assert.Equal(t, "You are not in combat.", e.Attack())
	assert.Equal(t, before, e.State.Player)
}

func TestAttack_Exchange(t *testing.T) {
	e := newTestEngine()
	fight(e, "goblin")

	text := e.Attack()
	assert.Equal(t, "You hit the Goblin for 8 damage!\nThe Goblin hits you for 3 damage!", text)
	assert.Equal(t, 22, e.State.Player.Monster.HP)
	assert.Equal(t, 97, e.State.Player.HP)
}

func TestAttack_VictoryHasNoRetaliation(t *testing.T) {
	e := newTestEngine()
	fight(e, "goblin")
	e.State.Player.Monster.HP = 8

	text := e.Attack()
	assert.Contains(t, text, "You defeated the Goblin!")
	assert.Equal(t, 100, e.State.Player.HP)
	assert.Equal(t, 20, e.State.Player.Exp)
	assert.Equal(t, 15, e.State.Player.Gold)
	assert.Nil(t, e.State.Player.Monster)
	assert.Equal(t, []string{events.Encounter, events.Hit, events.Victory}, events.Types(e.DrainEvents()))
}

func TestAttack_NearDeathClamp(t *testing.T) {
	e := newTestEngine()
	fight(e, "dragon")
	e.State.Player.HP = 10

	text := e.Attack()
	assert.Contains(t, text, "barely survive")
	assert.Equal(t, 1, e.State.Player.HP)
	assert.Nil(t, e.State.Player.Monster)
	assert.Contains(t, events.Types(e.DrainEvents()), events.Survived)
}

func TestAttack_PlayerNeverBelowOne(t *testing.T) {
	for hp := 1; hp <= 40; hp++ {
		e := newTestEngine()
		fight(e, "dragon")
		e.State.Player.HP = hp

		e.Attack()
		assert.GreaterOrEqual(t, e.State.Player.HP, 1, "start hp %d", hp)
	}
}

func TestAttack_LevelUp(t *testing.T) {
	e := newTestEngine()
	m, _ := e.Defs.Monster("goblin")
	m.HP = 1
	m.ExpReward = 100
	e.StartCombat(m)
	e.State.Player.HP = 50

	text := e.Attack()
	assert.Contains(t, text, "Level up! You are now level 2.")

	p := e.State.Player
	assert.Equal(t, 2, p.Level)
	assert.Equal(t, 0, p.Exp)
	assert.Equal(t, 150, p.ExpNeeded)
	assert.Equal(t, 120, p.MaxHP)
	assert.Equal(t, 120, p.HP)
	assert.Equal(t, 13, p.Attack)
	assert.Equal(t, 7, p.Defense)
}

func TestAttack_OneLevelPerKill(t *testing.T) {
	e := newTestEngine()
	m, _ := e.Defs.Monster("goblin")
	m.HP = 1
	m.ExpReward = 400
	e.StartCombat(m)

	e.Attack()

	p := e.State.Player
	assert.Equal(t, 2, p.Level)
	assert.Equal(t, 300, p.Exp, "surplus carries over")
	assert.Equal(t, 150, p.ExpNeeded)
}

func TestAttack_EquipmentBonuses(t *testing.T) {
	sword := &types.Item{Name: "Rusty Sword", Kind: types.Weapon, AttackBonus: 5}
	armor := &types.Item{Name: "Leather Armor", Kind: types.Armor, DefenseBonus: 3}

	plain := newTestEngine()
	plain.State.Player.Weapon = sword
	plain.State.Player.Armor = armor
	fight(plain, "goblin")
	assert.Equal(t, "You hit the Goblin for 8 damage!\nThe Goblin hits you for 3 damage!", plain.Attack())

	bonus := newTestEngine(WithRules(Rules{EquipmentBonuses: true}))
	bonus.State.Player.Weapon = sword
	bonus.State.Player.Armor = armor
	fight(bonus, "goblin")
	assert.Equal(t, "You hit the Goblin for 13 damage!\nThe Goblin hits you for 1 damage!", bonus.Attack())
}

func TestFlee_Success(t *testing.T) {
	e := newTestEngine(WithSource(fixedSource{f: 0.69}))
	fight(e, "goblin")

	assert.Equal(t, "You escaped successfully!", e.Flee())
	assert.Nil(t, e.State.Player.Monster)
	assert.Equal(t, 100, e.State.Player.HP)
}

func TestFlee_Failure(t *testing.T) {
	e := newTestEngine(WithSource(fixedSource{f: fleeChance}))
	fight(e, "goblin")
	e.DrainEvents()

	assert.Equal(t, "You failed to escape!", e.Flee())
	require.NotNil(t, e.State.Player.Monster)
	assert.Equal(t, 30, e.State.Player.Monster.HP)
	assert.Equal(t, 100, e.State.Player.HP)
	assert.Equal(t, []string{events.FleeFailed}, events.Types(e.DrainEvents()))
}

func TestFlee_NotInCombat(t *testing.T) {
	e := newTestEngine()
	assert.Equal(t, "You are not in combat.", e.Flee())
}
