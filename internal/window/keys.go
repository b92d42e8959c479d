package window

import (
	"github.com/gogpu/gpucontext"
	"github.com/gogpu/ngon"
)

// ActionForKey maps a gogpu key code to a side-count action.
// Up, Right and '=' ('+' with shift) add a side; Down removes one.
// Modifiers are ignored so that shift+'=' behaves like '+'.
func ActionForKey(key gpucontext.Key) ngon.Action {
	switch key {
	case gpucontext.KeyUp, gpucontext.KeyRight, gpucontext.KeyEqual:
		return ngon.ActionIncrease
	case gpucontext.KeyDown:
		return ngon.ActionDecrease
	default:
		return ngon.ActionNone
	}
}
