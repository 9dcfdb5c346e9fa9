package scene

import (
	"image"
	"image/color"
	"path/filepath"
	"testing"

	"github.com/qmuntal/gltf"

	"escape-demo/core"
	"escape-demo/game"
	"escape-demo/math"
)

const eps = 1e-4

func TestCreateCube(t *testing.T) {
	m := CreateCube(2)
	if len(m.Vertices) != 24 || len(m.Indices) != 36 {
		t.Fatalf("expected 24 vertices and 36 indices, got %d and %d", len(m.Vertices), len(m.Indices))
	}
	for i := 0; i < len(m.Indices); i += 3 {
		a := m.Vertices[m.Indices[i]]
		b := m.Vertices[m.Indices[i+1]]
		c := m.Vertices[m.Indices[i+2]]
		n := b.Position.Sub(a.Position).Cross(c.Position.Sub(a.Position))
		if n.Dot(a.Normal) <= 0 {
			t.Errorf("triangle %d: winding disagrees with normal %v", i/3, a.Normal)
		}
		// every corner sits on the face its normal points to
		if d := a.Position.Dot(a.Normal); d < 1-eps || d > 1+eps {
			t.Errorf("triangle %d: vertex %v not on face %v", i/3, a.Position, a.Normal)
		}
	}
}

func TestFPSCameraStartsLookingDownZ(t *testing.T) {
	c := NewFPSCamera(StartPosition)
	if !c.Forward().ApproxEqual(math.Vec3Back, eps) {
		t.Errorf("Forward: expected %v, got %v", math.Vec3Back, c.Forward())
	}
	c.Move(game.MoveForward, 1)
	want := math.NewVec3(0, 1, 3-WalkSpeed)
	if !c.Position().ApproxEqual(want, eps) {
		t.Errorf("Move forward: expected %v, got %v", want, c.Position())
	}
	c.Move(game.MoveRight, 1)
	want = want.Add(math.NewVec3(WalkSpeed, 0, 0))
	if !c.Position().ApproxEqual(want, eps) {
		t.Errorf("Move right: expected %v, got %v", want, c.Position())
	}
}

func TestFPSCameraSprint(t *testing.T) {
	c := NewFPSCamera(StartPosition)
	c.SetSprinting(true)
	c.Move(game.MoveBackward, 1)
	want := math.NewVec3(0, 1, 3+2*WalkSpeed)
	if !c.Position().ApproxEqual(want, eps) {
		t.Errorf("sprint: expected %v, got %v", want, c.Position())
	}
}

func TestFPSCameraWalksLevelWhileLookingUp(t *testing.T) {
	c := NewFPSCamera(StartPosition)
	c.Look(0, 400)
	c.Move(game.MoveForward, 1)
	if c.Position().Y != EyeHeight {
		t.Errorf("expected to stay at eye height, got %v", c.Position().Y)
	}
}

func TestFPSCameraJumpLands(t *testing.T) {
	c := NewFPSCamera(StartPosition)
	c.Move(game.MoveJump, 0)
	if !c.Airborne() {
		t.Fatal("expected to be airborne after jumping")
	}
	peak := c.Position().Y
	for i := 0; i < 600 && c.Airborne(); i++ {
		c.Update(1.0 / 60)
		if c.Position().Y > peak {
			peak = c.Position().Y
		}
	}
	if c.Airborne() {
		t.Fatal("expected to land")
	}
	if peak <= EyeHeight {
		t.Errorf("expected to rise above %v, peaked at %v", EyeHeight, peak)
	}
	if c.Position().Y != EyeHeight {
		t.Errorf("expected to land at %v, got %v", EyeHeight, c.Position().Y)
	}
}

func TestFPSCameraPitchClamp(t *testing.T) {
	c := NewFPSCamera(StartPosition)
	c.Look(0, 5000)
	if c.Pitch != maxPitch {
		t.Errorf("expected pitch clamped to %v, got %v", maxPitch, c.Pitch)
	}
	c.Look(0, -10000)
	if c.Pitch != -maxPitch {
		t.Errorf("expected pitch clamped to %v, got %v", -maxPitch, c.Pitch)
	}
}

func TestFPSCameraReset(t *testing.T) {
	c := NewFPSCamera(StartPosition)
	c.Sensitivity = 0.3
	c.Look(200, 100)
	c.Move(game.MoveLeft, 2)
	c.LookAtSky()
	c.Reset()
	if c.Position() != StartPosition || c.Yaw != -90 || c.Pitch != 0 {
		t.Errorf("expected start pose, got %v yaw %v pitch %v", c.Position(), c.Yaw, c.Pitch)
	}
	if c.Sensitivity != 0.3 {
		t.Errorf("expected sensitivity to survive reset, got %v", c.Sensitivity)
	}
}

func TestFromImageFlipsRows(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 1, 2))
	img.Set(0, 0, color.RGBA{R: 255, A: 255})
	img.Set(0, 1, color.RGBA{B: 255, A: 255})

	tex := FromImage("flip", img)
	if tex.Width != 1 || tex.Height != 2 {
		t.Fatalf("expected 1x2, got %dx%d", tex.Width, tex.Height)
	}
	// the image's bottom (blue) row comes first
	if tex.Pixels[2] != 255 || tex.Pixels[4] != 255 {
		t.Errorf("expected blue then red, got %v", tex.Pixels)
	}
}

func TestLoadLibraryFallsBack(t *testing.T) {
	specs := []MaterialSpec{
		{Name: "grass", DiffuseFile: "missing.png", Fallback: core.ColorGreen},
		{Name: "lamp", Fallback: core.ColorWhite, Unlit: true},
	}
	lib, errs := LoadLibrary(t.TempDir(), specs)
	if len(errs) != 1 {
		t.Errorf("expected one load error, got %v", errs)
	}
	grass := lib.Get("grass")
	if got := grass.Diffuse.Pixels; got[0] != 0 || got[1] != 255 || got[2] != 0 {
		t.Errorf("expected green fallback, got %v", got)
	}
	if !lib.Get("lamp").Unlit {
		t.Error("expected lamp to stay unlit")
	}
	if m := lib.Get("nope"); m.Name != "default" {
		t.Errorf("expected default material for unknown name, got %q", m.Name)
	}
	if n := len(lib.Textures()); n != 6 {
		t.Errorf("expected 6 textures, got %d", n)
	}
}

func TestLibraryMissSharesUploadedFallback(t *testing.T) {
	lib, _ := LoadLibrary(t.TempDir(), []MaterialSpec{{Name: "red", Fallback: core.ColorRed}})
	a, b := lib.Get("nope"), lib.Get("other")
	if a != b {
		t.Error("expected every miss to return the same material")
	}
	if len(lib) != 1 {
		t.Errorf("expected a miss to leave the library alone, got %d entries", len(lib))
	}
	// the fallback's textures are in the upload list, so it never draws unbound
	var found int
	for _, tex := range lib.Textures() {
		if tex == a.Diffuse || tex == a.Specular {
			found++
		}
	}
	if found != 2 {
		t.Errorf("expected fallback textures in the upload list, found %d", found)
	}
}

func TestExportGLB(t *testing.T) {
	lib, _ := LoadLibrary(t.TempDir(), []MaterialSpec{
		{Name: "red", Fallback: core.ColorRed},
		{Name: "blue", Fallback: core.ColorBlue},
	})
	items := []Item{
		{Name: "a", Model: math.Mat4Identity(), Material: "red"},
		{Name: "b", Model: math.Mat4Translation(math.NewVec3(1, 2, 3)), Material: "red"},
		{Model: math.Mat4Identity(), Material: "blue"},
	}
	path := filepath.Join(t.TempDir(), "frame.glb")
	if err := ExportGLB(path, items, lib); err != nil {
		t.Fatalf("ExportGLB: %v", err)
	}

	doc, err := gltf.Open(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	if len(doc.Nodes) != 3 {
		t.Errorf("expected 3 nodes, got %d", len(doc.Nodes))
	}
	if len(doc.Meshes) != 2 || len(doc.Materials) != 2 {
		t.Errorf("expected one mesh and material per colour, got %d meshes %d materials", len(doc.Meshes), len(doc.Materials))
	}
	if doc.Nodes[2].Name != "item_2" {
		t.Errorf("expected generated name item_2, got %q", doc.Nodes[2].Name)
	}
	if tr := doc.Nodes[1].Matrix; tr[12] != 1 || tr[13] != 2 || tr[14] != 3 {
		t.Errorf("expected translation in the last column, got %v", tr)
	}
	red := doc.Materials[0].PBRMetallicRoughness.BaseColorFactorOrDefault()
	if red[0] != 1 || red[2] != 0 {
		t.Errorf("expected red base colour, got %v", red)
	}
}

func TestFrustumCulling(t *testing.T) {
	cam := NewFPSCamera(math.Vec3Zero)
	f := FrustumFromViewProjection(cam.ViewMatrix().Mul(cam.Projection(1, false)))

	cases := []struct {
		name string
		at   math.Vec3
		want bool
	}{
		{"ahead", math.NewVec3(0, 0, -5), true},
		{"behind", math.NewVec3(0, 0, 5), false},
		{"far right", math.NewVec3(100, 0, -5), false},
		{"beyond far plane", math.NewVec3(0, 0, -400), false},
		{"straddles near plane", math.NewVec3(0, 0, 0), true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			box := CubeBounds(math.Mat4Translation(tc.at))
			if got := box.Intersects(&f); got != tc.want {
				t.Errorf("expected %v, got %v", tc.want, got)
			}
		})
	}
}

func TestCubeBoundsFollowsScale(t *testing.T) {
	box := CubeBounds(math.Mat4Identity().Translate(math.NewVec3(1, 0, 0)).ScaleBy(math.NewVec3(2, 4, 6)))
	want := AABB{Min: math.NewVec3(0, -2, -3), Max: math.NewVec3(2, 2, 3)}
	if !box.Min.ApproxEqual(want.Min, eps) || !box.Max.ApproxEqual(want.Max, eps) {
		t.Errorf("expected %+v, got %+v", want, box)
	}
}
