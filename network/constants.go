// Package network: bounded, named physical constants for the simulation.
package network

// Constant is one tunable physical value bounded to [min, max], carrying the
// default it was constructed with.
//
// Min is allowed to exceed Max: an inverted range flips the direction of
// fraction interpolation, which lets a UI slider's "more" end map to a
// smaller raw value (MaxVelocity uses this).
type Constant struct {
	value, def, min, max float64
}

// NewConstant builds a Constant with the given initial (and default) value
// and bounds. The value must lie between the bounds in either orientation;
// ErrOutOfRange otherwise.
func NewConstant(value, min, max float64) (Constant, error) {
	lo, hi := min, max
	if lo > hi {
		lo, hi = hi, lo
	}
	if value < lo || value > hi {
		return Constant{}, ErrOutOfRange
	}

	return Constant{value: value, def: value, min: min, max: max}, nil
}

// mustConstant backs DefaultConstants, whose literals are known good.
func mustConstant(value, min, max float64) Constant {
	c, err := NewConstant(value, min, max)
	if err != nil {
		panic(err)
	}
	return c
}

// Value returns the current value.
func (c *Constant) Value() float64 { return c.value }

// Default returns the construction-time value.
func (c *Constant) Default() float64 { return c.def }

// Min returns the minimum bound (may exceed Max, see type doc).
func (c *Constant) Min() float64 { return c.min }

// Max returns the maximum bound.
func (c *Constant) Max() float64 { return c.max }

// AsFraction returns how far the current value sits between Min and Max,
// in [0, 1].
func (c *Constant) AsFraction() float64 {
	return (c.value - c.min) / (c.max - c.min)
}

// SetFraction sets the value by interpolating between Min and Max.
// f must be in [0, 1]; ErrBadFraction otherwise.
func (c *Constant) SetFraction(f float64) error {
	if f < 0 || f > 1 {
		return ErrBadFraction
	}
	c.value = c.min + f*(c.max-c.min)

	return nil
}

// Reset restores the default value.
func (c *Constant) Reset() { c.value = c.def }

// Constants is the strongly-typed record of every simulation constant. Each
// field carries its own default and bounds and may be tuned live between
// steps.
type Constants struct {
	// Gravity scales the inverse-square pair force; negative repels.
	Gravity Constant

	// Compaction pulls every node toward the origin.
	Compaction Constant

	// Drag opposes velocity.
	Drag Constant

	// Spring scales the spring force on adjacent pairs.
	Spring Constant

	// EdgeScale multiplies spring rest lengths globally.
	EdgeScale Constant

	// MaxVelocity clamps node speed after each step. The range is
	// inverted so a larger slider fraction means a tighter clamp.
	MaxVelocity Constant

	// TimeStep is the integration step dT.
	TimeStep Constant
}

// DefaultConstants returns the tuned defaults and ranges of the simulation.
func DefaultConstants() Constants {
	return Constants{
		Gravity:     mustConstant(-0.1, 0.0, -1.0),
		Compaction:  mustConstant(0.001, 0.0, 0.01),
		Drag:        mustConstant(1.0, 0.0, 2.0),
		Spring:      mustConstant(0.25, 0.0, 2.0),
		EdgeScale:   mustConstant(1.0, 0.5, 2.0),
		MaxVelocity: mustConstant(0.2, 10.0, 0.1),
		TimeStep:    mustConstant(1.0, 0.1, 4.0),
	}
}

// Constants exposes the live constants record for reading and tuning.
func (nw *Network) Constants() *Constants { return &nw.consts }
