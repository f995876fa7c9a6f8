package engine

// Character is the runner's vertical state. Y is the sprite's top edge in
// world units, growing downward.
type Character struct {
	Y       float64
	VY      float64
	Jumping bool
}

// Grounded reports whether the character can jump.
func (c Character) Grounded() bool {
	return !c.Jumping
}

// Jump applies impulse if the character is grounded. Mid-air jumps are ignored.
func (c *Character) Jump(impulse float64) bool {
	if c.Jumping {
		return false
	}
	c.VY = impulse
	c.Jumping = true
	return true
}

// step integrates one tick: gravity, then position, then the ground clamp.
// groundTop is the Y at which the sprite rests on the ground.
func (c *Character) step(gravity, groundTop float64) {
	c.VY += gravity
	c.Y += c.VY

	if c.Y > groundTop {
		c.Y = groundTop
		c.VY = 0
		c.Jumping = false
	}
}
