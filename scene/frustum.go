package scene

import "escape-demo/math"

// Plane is the half-space Normal·p + D >= 0.
type Plane struct {
	Normal math.Vec3
	D      float32
}

// DistanceTo is positive on the inside of the plane.
func (p Plane) DistanceTo(pt math.Vec3) float32 {
	return p.Normal.Dot(pt) + p.D
}

// Frustum holds the six clip planes: left, right, bottom, top, near, far.
type Frustum [6]Plane

// FrustumFromViewProjection extracts the clip planes of vp, where vp is
// view.Mul(projection). Planes are normalized so distances are in world
// units.
func FrustumFromViewProjection(vp math.Mat4) Frustum {
	row := func(r int) [4]float32 {
		return [4]float32{vp[0][r], vp[1][r], vp[2][r], vp[3][r]}
	}
	r0, r1, r2, r3 := row(0), row(1), row(2), row(3)

	var f Frustum
	for i, pair := range [3][4]float32{r0, r1, r2} {
		f[2*i] = plane(r3, pair, 1)
		f[2*i+1] = plane(r3, pair, -1)
	}
	return f
}

func plane(w, axis [4]float32, sign float32) Plane {
	n := math.Vec3{X: w[0] + sign*axis[0], Y: w[1] + sign*axis[1], Z: w[2] + sign*axis[2]}
	d := w[3] + sign*axis[3]
	l := n.Length()
	if l == 0 {
		return Plane{}
	}
	return Plane{Normal: n.Mul(1 / l), D: d / l}
}

// AABB is an axis-aligned bounding box.
type AABB struct {
	Min, Max math.Vec3
}

// CubeBounds is the world-space box around a unit cube placed by model.
func CubeBounds(model math.Mat4) AABB {
	var box AABB
	for i := 0; i < 8; i++ {
		c := math.Vec3{X: -0.5, Y: -0.5, Z: -0.5}
		if i&1 != 0 {
			c.X = 0.5
		}
		if i&2 != 0 {
			c.Y = 0.5
		}
		if i&4 != 0 {
			c.Z = 0.5
		}
		p := model.MulPoint(c)
		if i == 0 {
			box = AABB{Min: p, Max: p}
			continue
		}
		box.Min = math.Vec3{X: min(box.Min.X, p.X), Y: min(box.Min.Y, p.Y), Z: min(box.Min.Z, p.Z)}
		box.Max = math.Vec3{X: max(box.Max.X, p.X), Y: max(box.Max.Y, p.Y), Z: max(box.Max.Z, p.Z)}
	}
	return box
}

// Intersects is false only when the box lies wholly outside some plane.
func (box AABB) Intersects(f *Frustum) bool {
	for _, p := range f {
		// corner furthest along the plane normal
		v := box.Max
		if p.Normal.X < 0 {
			v.X = box.Min.X
		}
		if p.Normal.Y < 0 {
			v.Y = box.Min.Y
		}
		if p.Normal.Z < 0 {
			v.Z = box.Min.Z
		}
		if p.DistanceTo(v) < 0 {
			return false
		}
	}
	return true
}
