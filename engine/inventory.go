package engine

import (
	"fmt"

	"github.com/nathoo/questmud/engine/events"
	"github.com/nathoo/questmud/engine/state"
	"github.com/nathoo/questmud/types"
)

// PickUp moves item from the current room into the player's inventory.
// Items not lying in the room are refused.
func (e *Engine) PickUp(item *types.Item) string {
	room := e.CurrentRoom()
	var ok bool
	room.Items, ok = state.RemoveItem(room.Items, item)
	if !ok {
		return "You don't see that here."
	}
	p := &e.State.Player
	p.Inventory = append(p.Inventory, item)
	e.emit(events.New(events.PickedUp, "item", item.Key, "room", room.ID))
	return fmt.Sprintf("You picked up the %s!", item.Name)
}

// Use applies item from the inventory. Potions heal (capped at max HP) and
// are consumed; weapons and armor are equipped and stay in the inventory.
func (e *Engine) Use(item *types.Item) string {
	if !state.HasItem(e.State, item) {
		return "You don't have that."
	}
	p := &e.State.Player

	switch item.Kind {
	case types.Potion:
		if item.HealAmount <= 0 {
			break
		}
		before := p.HP
		p.HP = min(p.MaxHP, p.HP+item.HealAmount)
		p.Inventory, _ = state.RemoveItem(p.Inventory, item)
		healed := p.HP - before
		e.emit(events.New(events.Consumed, "item", item.Key, "healed", healed))
		return fmt.Sprintf("You drink the %s and recover %d HP.", item.Name, healed)
	case types.Weapon:
		p.Weapon = item
		e.emit(events.New(events.Equipped, "item", item.Key, "slot", "weapon"))
		return fmt.Sprintf("You equip the %s.", item.Name)
	case types.Armor:
		p.Armor = item
		e.emit(events.New(events.Equipped, "item", item.Key, "slot", "armor"))
		return fmt.Sprintf("You put on the %s.", item.Name)
	case types.Treasure:
	}
	return fmt.Sprintf("You can't use the %s.", item.Name)
}
