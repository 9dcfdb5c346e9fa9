package world

import (
	"escape-demo/core"
	"escape-demo/scene"
)

const (
	MatGrass     = "grass"
	MatObsidian  = "obsidian"
	MatPortal    = "portal"
	MatMetal     = "metal"
	MatChest     = "chest"
	MatWood      = "wood"
	MatLeaves    = "leaves"
	MatWolf      = "wolf"
	MatWolfFace  = "wolf-face"
	MatSheep     = "sheep"
	MatSheepFace = "sheep-face"
	MatRed       = "red"
	MatGreen     = "green"
	MatBlue      = "blue"
	MatLamp      = "lamp"
)

// Materials names the texture files under the asset directory. The fallback
// colours roughly match each texture so the scene stays readable without
// assets.
var Materials = []scene.MaterialSpec{
	{Name: MatGrass, DiffuseFile: "grass.jpg", SpecularFile: "grass_specular.jpg", Fallback: core.Color{R: 0.3, G: 0.6, B: 0.2, A: 1}},
	{Name: MatObsidian, DiffuseFile: "obsidian.png", SpecularFile: "grass_specular.jpg", Fallback: core.Color{R: 0.15, G: 0.1, B: 0.25, A: 1}},
	{Name: MatPortal, DiffuseFile: "nether_portal.jpg", SpecularFile: "nether_portal_specular.png", Fallback: core.Color{R: 0.5, G: 0.1, B: 0.8, A: 1}},
	{Name: MatMetal, DiffuseFile: "metal.png", SpecularFile: "metal_specular.jpg", Fallback: core.Gray(0.55)},
	{Name: MatChest, DiffuseFile: "minecraft_chest.png", SpecularFile: "tree_leaves_specular.png", Fallback: core.Color{R: 0.6, G: 0.4, B: 0.2, A: 1}},
	{Name: MatWood, DiffuseFile: "wood2.jpg", SpecularFile: "wood2_specular.jpg", Fallback: core.Color{R: 0.45, G: 0.3, B: 0.15, A: 1}},
	{Name: MatLeaves, DiffuseFile: "tree_leaves.jpg", SpecularFile: "tree_leaves_specular.png", Fallback: core.Color{R: 0.2, G: 0.5, B: 0.15, A: 1}},
	{Name: MatWolf, DiffuseFile: "white.jpg", SpecularFile: "grass_specular.jpg", Fallback: core.Gray(0.9)},
	{Name: MatWolfFace, DiffuseFile: "sven.png", SpecularFile: "sven_specular.png", Fallback: core.Gray(0.75)},
	{Name: MatSheep, DiffuseFile: "red_dark.jpg", SpecularFile: "red_dark_specular.jpg", Fallback: core.Color{R: 0.45, G: 0.05, B: 0.05, A: 1}},
	{Name: MatSheepFace, DiffuseFile: "water_sheep.png", SpecularFile: "grass_specular.jpg", Fallback: core.Color{R: 0.2, G: 0.4, B: 0.9, A: 1}},
	{Name: MatRed, DiffuseFile: "red.jpg", SpecularFile: "red_specular.jpg", Fallback: core.ColorRed},
	{Name: MatGreen, DiffuseFile: "green.jpg", SpecularFile: "green_specular.jpg", Fallback: core.ColorGreen},
	{Name: MatBlue, DiffuseFile: "blue.jpg", SpecularFile: "blue_specular.jpg", Fallback: core.ColorBlue},
	{Name: MatLamp, DiffuseFile: "white.jpg", Fallback: core.ColorWhite, Unlit: true},
}
