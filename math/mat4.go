package math

import "math"

// Mat4 is stored column-major, m[col][row], which is the layout OpenGL
// expects when the array is uploaded untransposed.
//
// a.Mul(b) yields the transform that applies a first, then b. The chaining
// helpers (Translate, RotateX, ...) compose the other way round, in the
// order a scene graph is usually written: m.Translate(p).Scale(s) scales a
// vertex first and then moves it to p.
type Mat4 [4][4]float32

func Mat4Identity() Mat4 {
	return Mat4{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	}
}

func (m Mat4) Mul(other Mat4) Mat4 {
	var result Mat4
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			for k := 0; k < 4; k++ {
				result[i][j] += m[i][k] * other[k][j]
			}
		}
	}
	return result
}

// MulPoint transforms a position (w = 1) and divides by the resulting w.
func (m Mat4) MulPoint(p Vec3) Vec3 {
	x := m[0][0]*p.X + m[1][0]*p.Y + m[2][0]*p.Z + m[3][0]
	y := m[0][1]*p.X + m[1][1]*p.Y + m[2][1]*p.Z + m[3][1]
	z := m[0][2]*p.X + m[1][2]*p.Y + m[2][2]*p.Z + m[3][2]
	w := m[0][3]*p.X + m[1][3]*p.Y + m[2][3]*p.Z + m[3][3]
	if w != 0 && w != 1 {
		return Vec3{x / w, y / w, z / w}
	}
	return Vec3{x, y, z}
}

func Mat4Translation(translation Vec3) Mat4 {
	m := Mat4Identity()
	m[3][0] = translation.X
	m[3][1] = translation.Y
	m[3][2] = translation.Z
	return m
}

func Mat4Scale(scale Vec3) Mat4 {
	m := Mat4Identity()
	m[0][0] = scale.X
	m[1][1] = scale.Y
	m[2][2] = scale.Z
	return m
}

func Mat4RotationX(angle float32) Mat4 {
	c := float32(math.Cos(float64(angle)))
	s := float32(math.Sin(float64(angle)))
	return Mat4{
		{1, 0, 0, 0},
		{0, c, s, 0},
		{0, -s, c, 0},
		{0, 0, 0, 1},
	}
}

func Mat4RotationY(angle float32) Mat4 {
	c := float32(math.Cos(float64(angle)))
	s := float32(math.Sin(float64(angle)))
	return Mat4{
		{c, 0, -s, 0},
		{0, 1, 0, 0},
		{s, 0, c, 0},
		{0, 0, 0, 1},
	}
}

// Translate appends a translation, applied before everything already in m.
func (m Mat4) Translate(v Vec3) Mat4 {
	return Mat4Translation(v).Mul(m)
}

// RotateX appends a rotation about +X (radians).
func (m Mat4) RotateX(angle float32) Mat4 {
	return Mat4RotationX(angle).Mul(m)
}

// RotateY appends a rotation about +Y (radians).
func (m Mat4) RotateY(angle float32) Mat4 {
	return Mat4RotationY(angle).Mul(m)
}

// ScaleBy appends a non-uniform scale.
func (m Mat4) ScaleBy(v Vec3) Mat4 {
	return Mat4Scale(v).Mul(m)
}

func Mat4Perspective(fovY, aspect, near, far float32) Mat4 {
	tanHalfFovy := float32(math.Tan(float64(fovY) / 2))

	var m Mat4
	m[0][0] = 1 / (aspect * tanHalfFovy)
	m[1][1] = 1 / tanHalfFovy
	m[2][2] = -(far + near) / (far - near)
	m[2][3] = -1
	m[3][2] = -(2 * far * near) / (far - near)
	return m
}

func Mat4Orthographic(left, right, bottom, top, near, far float32) Mat4 {
	m := Mat4Identity()
	m[0][0] = 2 / (right - left)
	m[1][1] = 2 / (top - bottom)
	m[2][2] = -2 / (far - near)
	m[3][0] = -(right + left) / (right - left)
	m[3][1] = -(top + bottom) / (top - bottom)
	m[3][2] = -(far + near) / (far - near)
	return m
}

func Mat4LookAt(eye, target, up Vec3) Mat4 {
	zAxis := eye.Sub(target).Normalize()
	xAxis := up.Cross(zAxis).Normalize()
	yAxis := zAxis.Cross(xAxis)

	return Mat4{
		{xAxis.X, yAxis.X, zAxis.X, 0},
		{xAxis.Y, yAxis.Y, zAxis.Y, 0},
		{xAxis.Z, yAxis.Z, zAxis.Z, 0},
		{-xAxis.Dot(eye), -yAxis.Dot(eye), -zAxis.Dot(eye), 1},
	}
}
