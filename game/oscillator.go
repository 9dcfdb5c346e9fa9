package game

import "fmt"

// Oscillator ping-pongs an angle (degrees) between Min and Max.
type Oscillator struct {
	Angle float32
	Dir   float32 // +1 or -1
	Min   float32
	Max   float32
	Step  float32
}

// NewSwing returns a ±30° swing at rest, first moving in dir.
func NewSwing(dir float32) Oscillator {
	return Oscillator{Dir: dir, Min: SwingMin, Max: SwingMax, Step: SwingStep}
}

// Advance turns around at the bounds, then takes one step. The result never
// leaves [Min, Max].
func (o Oscillator) Advance() Oscillator {
	if o.Min > o.Max {
		panic(fmt.Sprintf("game: oscillator bounds inverted (%v > %v)", o.Min, o.Max))
	}
	if o.Angle <= o.Min {
		o.Dir = 1
	} else if o.Angle >= o.Max {
		o.Dir = -1
	}
	o.Angle += o.Dir * o.Step
	if o.Angle < o.Min {
		o.Angle = o.Min
	} else if o.Angle > o.Max {
		o.Angle = o.Max
	}
	return o
}
