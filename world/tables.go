package world

import "escape-demo/math"

func v(x, y, z float32) math.Vec3 { return math.Vec3{X: x, Y: y, Z: z} }

// Static props are placed with absolute offsets around the world origin.
var (
	Ground = Rig{Name: "ground", Parts: []Part{
		{Name: "grass", Offset: v(0, -0.01, 0), Scale: v(40, 0.001, 40), Material: MatGrass, Centered: true},
	}}

	Portal = Rig{Name: "portal", Parts: []Part{
		{Name: "top", Offset: v(0, 1.75, -10), Scale: v(1, 0.25, 0.5), Material: MatObsidian},
		{Name: "bottom", Offset: v(0, 0, -10), Scale: v(1, 0.25, 0.5), Material: MatObsidian},
		{Name: "left", Offset: v(-0.75, 0, -10), Scale: v(0.5, 2, 0.5), Material: MatObsidian},
		{Name: "right", Offset: v(0.75, 0, -10), Scale: v(0.5, 2, 0.5), Material: MatObsidian},
		{Name: "pane", Offset: v(0, 0, -10), Scale: v(1, 1.8, 0.01), Material: MatPortal},
	}}

	Anvil = Rig{Name: "anvil", Parts: []Part{
		{Name: "top", Offset: v(0, 0.335, 0), Scale: v(0.5, 0.2, 0.3), Material: MatMetal},
		{Name: "body", Offset: v(0, 0.135, 0), Scale: v(0.2, 0.2, 0.15), Material: MatMetal},
		{Name: "waist", Offset: v(0, 0.11, 0), Scale: v(0.35, 0.025, 0.35), Material: MatMetal},
		{Name: "base", Offset: v(0, 0, 0), Scale: v(0.45, 0.11, 0.45), Material: MatMetal},
	}}

	Chest = Rig{Name: "chest", Parts: []Part{
		{Name: "lid", Offset: v(2, 0.375, 2), Scale: v(0.5, 0.125, 0.5), Material: MatChest, Tilt: 15},
		{Name: "base", Offset: v(2, 0, 2), Scale: v(0.5, 0.375, 0.5), Material: MatChest},
		{Name: "lock", Offset: v(2, 0.45, 1.72), Scale: v(0.1, 0.05, 0.15), Material: MatMetal, Tilt: 105},
	}}

	Tree = Rig{Name: "tree", Parts: []Part{
		{Name: "trunk", Offset: v(0, 0, -1), Scale: v(0.4, 2, 0.4), Material: MatWood},
		{Name: "crown", Offset: v(0, 1.5, -1), Scale: v(0.75, 1, 0.75), Material: MatLeaves},
		{Name: "foliage", Offset: v(0, 1, -1), Scale: v(1, 1, 1), Material: MatLeaves},
	}}

	Axes = Rig{Name: "axes", Parts: []Part{
		{Name: "x", Scale: v(100, 0.02, 0.02), Material: MatRed, Centered: true},
		{Name: "y", Scale: v(0.02, 100, 0.02), Material: MatGreen, Centered: true},
		{Name: "z", Scale: v(0.02, 0.02, 100), Material: MatBlue, Centered: true},
	}}
)

// Characters are placed relative to their own origin.
var (
	Wolf = Rig{Name: "wolf", Parts: []Part{
		{Name: "chest", Offset: v(0, 0, 0), Scale: v(0.25, 0.25, 0.2), Material: MatWolf},
		{Name: "back", Offset: v(0, 0.02, -0.25), Scale: v(0.2, 0.2, 0.4), Material: MatWolf},
		{Name: "leg-fl", Offset: v(-0.05, -0.3, 0), Scale: v(0.08, 0.3, 0.08), Material: MatWolf},
		{Name: "leg-fr", Offset: v(0.05, -0.3, 0), Scale: v(0.08, 0.3, 0.08), Material: MatWolf},
		{Name: "leg-bl", Offset: v(-0.05, -0.3, -0.3), Scale: v(0.08, 0.33, 0.08), Material: MatWolf},
		{Name: "leg-br", Offset: v(0.05, -0.3, -0.3), Scale: v(0.08, 0.33, 0.08), Material: MatWolf},
		{Name: "tail", Offset: v(0, 0.05, -0.45), Scale: v(0.1, 0.1, 0.2), Material: MatWolf, Swing: Tail},
		{Name: "ear-l", Offset: v(-0.06, 0.21, 0.13), Scale: v(0.08, 0.08, 0.03), Material: MatWolf},
		{Name: "ear-r", Offset: v(0.06, 0.21, 0.13), Scale: v(0.08, 0.08, 0.03), Material: MatWolf},
		{Name: "head", Offset: v(0, 0.01, 0.15), Scale: v(0.22, 0.22, 0.15), Material: MatWolf},
		{Name: "face", Offset: v(0, 0.01, 0.23), Scale: v(0.22, 0.22, 0.01), Material: MatWolfFace},
	}}

	// Sheep legs hang down from the hip, hence the negative height.
	Sheep = Rig{Name: "sheep", Parts: []Part{
		{Name: "head", Offset: v(0, 0, 0), Scale: v(0.25, 0.25, 0.25), Material: MatSheep},
		{Name: "face", Offset: v(0, 0.02, 0.125), Scale: v(0.2, 0.2, 0.05), Material: MatSheepFace},
		{Name: "body", Offset: v(0, -0.25, -0.35), Scale: v(0.4, 0.4, 0.7), Material: MatSheep},
		{Name: "leg-fl", Offset: v(-0.08, -0.25, -0.15), Scale: v(0.1, -0.3, 0.1), Material: MatSheep, Swing: LegsA},
		{Name: "leg-fr", Offset: v(0.08, -0.25, -0.15), Scale: v(0.1, -0.3, 0.1), Material: MatSheep, Swing: LegsB},
		{Name: "leg-bl", Offset: v(-0.08, -0.25, -0.55), Scale: v(0.1, -0.3, 0.1), Material: MatSheep, Swing: LegsB},
		{Name: "leg-br", Offset: v(0.08, -0.25, -0.55), Scale: v(0.1, -0.3, 0.1), Material: MatSheep, Swing: LegsA},
		{Name: "thigh-fr", Offset: v(0.08, -0.15, -0.15), Scale: v(0.15, -0.2, 0.12), Material: MatSheep, Swing: LegsB},
		{Name: "thigh-fl", Offset: v(-0.08, -0.15, -0.15), Scale: v(0.15, -0.2, 0.12), Material: MatSheep, Swing: LegsA},
		{Name: "thigh-br", Offset: v(0.08, -0.15, -0.55), Scale: v(0.15, -0.2, 0.12), Material: MatSheep, Swing: LegsA},
		{Name: "thigh-bl", Offset: v(-0.08, -0.15, -0.55), Scale: v(0.15, -0.2, 0.12), Material: MatSheep, Swing: LegsB},
	}}

	Torch = Rig{Name: "torch", Parts: []Part{
		{Name: "handle", Offset: v(0, -0.2, 0), Scale: v(0.05, 0.2, 0.05), Material: MatWood},
		{Name: "lamp", Offset: v(0, 0, 0), Scale: v(0.05, 0.05, 0.05), Material: MatLamp},
	}}
)

// Props lists the static rigs always drawn.
var Props = []Rig{Ground, Portal, Anvil, Chest, Tree}
