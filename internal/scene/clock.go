package scene

// Clock is the simulation time base. It only moves forward, by a fixed step
// per tick.
type Clock struct {
	T      float64
	AngleX float64
	AngleY float64
	AngleZ float64

	Step  float64
	RateX float64
	RateY float64
	RateZ float64
}

func (c *Clock) Advance() {
	c.T += c.Step
	c.AngleX += c.RateX
	c.AngleY += c.RateY
	c.AngleZ += c.RateZ
}
