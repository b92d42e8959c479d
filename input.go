package ngon

// Action is an abstract input signal. Window backends translate their
// platform key codes into Actions.
type Action int

const (
	// ActionNone is ignored.
	ActionNone Action = iota
	// ActionIncrease adds one side.
	ActionIncrease
	// ActionDecrease removes one side, never going below MinSides.
	ActionDecrease
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionIncrease:
		return "increase"
	case ActionDecrease:
		return "decrease"
	default:
		return "none"
	}
}

// Counter holds the current side count.
// Out-of-range transitions are silently clamped to [MinSides, max].
type Counter struct {
	sides int
	max   int
}

// NewCounter creates a counter starting at initial with an upper bound
// of maxSides. A bound outside [MinSides, MaxSides] is replaced by MaxSides.
func NewCounter(initial, maxSides int) *Counter {
	if maxSides < MinSides || maxSides > MaxSides {
		maxSides = MaxSides
	}
	c := &Counter{max: maxSides}
	c.sides = c.clamp(initial)
	return c
}

// Sides returns the current side count.
func (c *Counter) Sides() int {
	return c.sides
}

// Max returns the upper bound on the side count.
func (c *Counter) Max() int {
	return c.max
}

// Increase adds one side. Reports whether the count changed.
func (c *Counter) Increase() bool {
	return c.Set(c.sides + 1)
}

// Decrease removes one side, floored at MinSides.
// Reports whether the count changed.
func (c *Counter) Decrease() bool {
	return c.Set(c.sides - 1)
}

// Set moves the counter to n, clamped to its bounds.
// Reports whether the count changed.
func (c *Counter) Set(n int) bool {
	n = c.clamp(n)
	if n == c.sides {
		return false
	}
	c.sides = n
	return true
}

func (c *Counter) clamp(n int) int {
	switch {
	case n < MinSides:
		return MinSides
	case n > c.max:
		return c.max
	default:
		return n
	}
}

// Controller is the input handler: it applies Actions to a Counter and
// regenerates the mesh whenever the side count changes.
//
// Controller is NOT safe for concurrent use. It is meant to be driven from
// the window event loop.
type Controller struct {
	counter  *Counter
	opts     []Option
	mesh     Mesh
	onChange func(Mesh)
}

// NewController creates a controller for counter. onChange, if non-nil, is
// called with the regenerated mesh after every effective transition; window
// backends use it to request a redraw. opts are passed to Generate.
func NewController(counter *Counter, onChange func(Mesh), opts ...Option) *Controller {
	if counter == nil {
		counter = NewCounter(DefaultSides, MaxSides)
	}
	return &Controller{
		counter:  counter,
		opts:     opts,
		mesh:     Generate(counter.Sides(), opts...),
		onChange: onChange,
	}
}

// Sides returns the current side count.
func (c *Controller) Sides() int {
	return c.counter.Sides()
}

// Mesh returns the mesh for the current side count.
func (c *Controller) Mesh() Mesh {
	return c.mesh
}

// OnChange replaces the change callback.
func (c *Controller) OnChange(fn func(Mesh)) {
	c.onChange = fn
}

// Handle applies a single action. Reports whether the side count changed.
func (c *Controller) Handle(a Action) bool {
	var changed bool
	switch a {
	case ActionIncrease:
		changed = c.counter.Increase()
	case ActionDecrease:
		changed = c.counter.Decrease()
	default:
		return false
	}
	if !changed {
		Logger().Debug("ngon: side count unchanged", "action", a, "sides", c.counter.Sides())
		return false
	}

	c.mesh = Generate(c.counter.Sides(), c.opts...)
	Logger().Info("ngon: sides changed", "sides", c.counter.Sides())
	if c.onChange != nil {
		c.onChange(c.mesh)
	}
	return true
}
