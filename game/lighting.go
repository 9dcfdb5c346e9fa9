package game

import "escape-demo/math"

// Point-light falloff coefficients, from short range (index 0) to long
// range (index 10).
var (
	linearFalloff    = [MaxAttenuation + 1]float32{0.7, 0.35, 0.22, 0.14, 0.09, 0.07, 0.027, 0.022, 0.014, 0.007, 0.0014}
	quadraticFalloff = [MaxAttenuation + 1]float32{1.8, 0.44, 0.20, 0.07, 0.032, 0.017, 0.0075, 0.0028, 0.0019, 0.0007, 0.0002}
)

const shininess = 65

// Lighting is the resolved point-light setup for one frame.
type Lighting struct {
	Position  math.Vec3
	Ambient   float32
	Diffuse   float32
	Specular  float32
	Constant  float32
	Linear    float32
	Quadratic float32
	Shininess float32

	// LampIntensity tints the torch head mesh itself.
	LampIntensity float32
}

// Falloff returns the linear and quadratic coefficients for index, clamped
// into the table.
func Falloff(index int) (linear, quadratic float32) {
	if index < MinAttenuation {
		index = MinAttenuation
	} else if index > MaxAttenuation {
		index = MaxAttenuation
	}
	return linearFalloff[index], quadraticFalloff[index]
}

func resolveLighting(s Snapshot) Lighting {
	l := Lighting{
		Position:      s.Torch.Position,
		Ambient:       0.1,
		Constant:      1,
		Shininess:     shininess,
		LampIntensity: 0.3,
	}
	index := s.AttenIndex
	if s.FullBright {
		l.Ambient = 1
		index = MaxAttenuation
	}
	l.Linear, l.Quadratic = Falloff(index)
	if s.TorchLit {
		l.Diffuse = 0.8
		l.Specular = 1
		l.LampIntensity = 1
	}
	return l
}
