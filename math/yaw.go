package math

import "math"

// DirectionEpsilon is the shortest vector that still has a usable direction.
const DirectionEpsilon = 1e-6

// Radians converts degrees to radians.
func Radians(deg float32) float32 {
	return deg * math.Pi / 180
}

// Degrees converts radians to degrees.
func Degrees(rad float32) float32 {
	return rad * 180 / math.Pi
}

// SignedYawAngle returns the rotation about +Y, in radians, that carries ref
// onto dir: the unsigned angle between them, negated when ref×dir points
// down. ok is false when dir is too short to have a direction, in which case
// the caller keeps whatever angle it had.
func SignedYawAngle(ref, dir Vec3) (angle float32, ok bool) {
	length := dir.Length()
	if length <= DirectionEpsilon {
		return 0, false
	}
	dir = dir.Mul(1 / length)

	cos := float64(ref.Dot(dir))
	// acos is undefined just outside [-1, 1]; rounding can land there
	if cos > 1 {
		cos = 1
	} else if cos < -1 {
		cos = -1
	}
	angle = float32(math.Acos(cos))
	if ref.Cross(dir).Y < 0 {
		angle = -angle
	}
	return angle, true
}
