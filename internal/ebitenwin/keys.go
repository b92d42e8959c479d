package ebitenwin

import (
	"github.com/gogpu/ngon"
	"github.com/hajimehoshi/ebiten/v2"
)

// boundKeys lists every key with an action, polled once per tick.
var boundKeys = []ebiten.Key{
	ebiten.KeyArrowUp,
	ebiten.KeyArrowRight,
	ebiten.KeyEqual,
	ebiten.KeyArrowDown,
}

// ActionForKey maps an ebiten key to a side-count action. The bindings
// match the gogpu window: Up, Right and = add a side, Down removes one.
func ActionForKey(key ebiten.Key) ngon.Action {
	switch key {
	case ebiten.KeyArrowUp, ebiten.KeyArrowRight, ebiten.KeyEqual:
		return ngon.ActionIncrease
	case ebiten.KeyArrowDown:
		return ngon.ActionDecrease
	default:
		return ngon.ActionNone
	}
}
