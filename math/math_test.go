package math

import (
	"math"
	"testing"
)

func TestVec3Operations(t *testing.T) {
	v1 := NewVec3(1, 2, 3)
	v2 := NewVec3(4, 5, 6)

	// Addition
	result := v1.Add(v2)
	expected := NewVec3(5, 7, 9)
	if result != expected {
		t.Errorf("Add: expected %v, got %v", expected, result)
	}

	// Subtraction
	result = v2.Sub(v1)
	expected = NewVec3(3, 3, 3)
	if result != expected {
		t.Errorf("Sub: expected %v, got %v", expected, result)
	}

	// Dot product
	dot := v1.Dot(v2)
	expectedDot := float32(32) // 1*4 + 2*5 + 3*6
	if dot != expectedDot {
		t.Errorf("Dot: expected %v, got %v", expectedDot, dot)
	}

	// Front x Right = Up
	cross := Vec3Front.Cross(Vec3Right)
	if cross != Vec3Up {
		t.Errorf("Cross: expected %v, got %v", Vec3Up, cross)
	}

	if p := NewVec3(1, 7, -2).Planar(); p != NewVec3(1, 0, -2) {
		t.Errorf("Planar: expected (1,0,-2), got %v", p)
	}
}

func TestVec3Normalize(t *testing.T) {
	v := NewVec3(3, 0, 0)
	normalized := v.Normalize()
	expected := NewVec3(1, 0, 0)

	if normalized != expected {
		t.Errorf("Normalize: expected %v, got %v", expected, normalized)
	}

	if z := Vec3Zero.Normalize(); z != Vec3Zero {
		t.Errorf("Normalize: expected zero vector to stay zero, got %v", z)
	}
}

func TestSignedYawAngle(t *testing.T) {
	cases := []struct {
		name string
		dir  Vec3
		want float32
	}{
		{"right", Vec3Right, math.Pi / 2},
		{"left", NewVec3(-1, 0, 0), -math.Pi / 2},
		{"ahead", Vec3Front, 0},
		{"behind", Vec3Back, math.Pi},
		{"unnormalised", NewVec3(5, 0, 5), math.Pi / 4},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, ok := SignedYawAngle(Vec3Front, c.dir)
			if !ok {
				t.Fatalf("SignedYawAngle(%v): unexpected !ok", c.dir)
			}
			if math.Abs(float64(got-c.want)) > 1e-5 {
				t.Errorf("SignedYawAngle(%v): expected %v, got %v", c.dir, c.want, got)
			}
		})
	}
}

func TestSignedYawAngleDegenerate(t *testing.T) {
	if _, ok := SignedYawAngle(Vec3Front, Vec3Zero); ok {
		t.Error("SignedYawAngle: expected !ok for zero direction")
	}
}

func TestSignedYawAngleRotatesReference(t *testing.T) {
	// Rotating the reference by the returned angle must land on the direction.
	for _, dir := range []Vec3{{1, 0, 1}, {-2, 0, 1}, {0.3, 0, -4}, {-1, 0, -1}} {
		angle, _ := SignedYawAngle(Vec3Front, dir)
		got := Mat4RotationY(angle).MulPoint(Vec3Front)
		if !got.ApproxEqual(dir.Normalize(), 1e-5) {
			t.Errorf("RotationY(%v)·front: expected %v, got %v", angle, dir.Normalize(), got)
		}
	}
}

func TestMat4Identity(t *testing.T) {
	m := Mat4Identity()

	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			expected := float32(0)
			if i == j {
				expected = 1
			}
			if m[i][j] != expected {
				t.Errorf("Identity: expected [%d][%d] = %v, got %v", i, j, expected, m[i][j])
			}
		}
	}
}

func TestMat4Translation(t *testing.T) {
	translation := NewVec3(1, 2, 3)
	m := Mat4Translation(translation)

	if m[3][0] != 1 || m[3][1] != 2 || m[3][2] != 3 {
		t.Errorf("Translation: expected (1,2,3), got (%v,%v,%v)", m[3][0], m[3][1], m[3][2])
	}

	result := m.MulPoint(Vec3Zero)
	if result != translation {
		t.Errorf("Translation: expected %v, got %v", translation, result)
	}
}

func TestMat4Chaining(t *testing.T) {
	// Scale first, then move: the unit corner (1,1,1) lands at p + s.
	m := Mat4Identity().Translate(NewVec3(10, 0, 0)).ScaleBy(NewVec3(2, 3, 4))
	got := m.MulPoint(NewVec3(1, 1, 1))
	want := NewVec3(12, 3, 4)
	if !got.ApproxEqual(want, 1e-5) {
		t.Errorf("Chaining: expected %v, got %v", want, got)
	}

	// Rotate about Y after moving: (0,0,1) offset turns into (1,0,0).
	m = Mat4Identity().RotateY(math.Pi / 2).Translate(Vec3Front)
	got = m.MulPoint(Vec3Zero)
	if !got.ApproxEqual(Vec3Right, 1e-5) {
		t.Errorf("Chaining: expected %v, got %v", Vec3Right, got)
	}
}

func TestMat4LookAt(t *testing.T) {
	eye := NewVec3(0, 0, 5)
	m := Mat4LookAt(eye, Vec3Zero, Vec3Up)

	// The view matrix should transform the eye position to origin
	result := m.MulPoint(eye)
	if !result.ApproxEqual(Vec3Zero, 0.001) {
		t.Errorf("LookAt: expected eye to transform to origin, got %v", result)
	}
}

func TestMat4Orthographic(t *testing.T) {
	m := Mat4Orthographic(-2, 2, -2, 2, -100, 100)
	got := m.MulPoint(NewVec3(2, -2, 0))
	if !got.ApproxEqual(NewVec3(1, -1, 0), 1e-6) {
		t.Errorf("Orthographic: expected (1,-1,0), got %v", got)
	}
}

func BenchmarkMat4Mul(b *testing.B) {
	m1 := Mat4Identity()
	m2 := Mat4Identity()

	for i := 0; i < b.N; i++ {
		_ = m1.Mul(m2)
	}
}
