package scene

import (
	"fmt"
	"path/filepath"

	"escape-demo/core"
)

// Material is a diffuse/specular texture pair for the Phong shader.
// Unlit materials (the torch lamp) skip lighting and use Tint scaled by the
// lamp intensity instead.
type Material struct {
	Name     string
	Diffuse  *Texture
	Specular *Texture
	Tint     core.Color
	Unlit    bool
}

// MaterialSpec names the texture files for one material, relative to the
// asset directory. Fallback colours the material when a file is missing.
type MaterialSpec struct {
	Name         string
	DiffuseFile  string
	SpecularFile string
	Fallback     core.Color
	Unlit        bool
}

// Library maps material names to loaded materials.
type Library map[string]*Material

// LoadLibrary loads every spec from dir. A texture that cannot be read is
// replaced by a solid fallback and reported in the returned error list; the
// library itself is always complete.
func LoadLibrary(dir string, specs []MaterialSpec) (Library, []error) {
	lib := make(Library, len(specs))
	var errs []error
	for _, s := range specs {
		m := &Material{Name: s.Name, Tint: s.Fallback, Unlit: s.Unlit}

		m.Diffuse = loadOr(dir, s.DiffuseFile, s.Name+"/diffuse", s.Fallback, &errs)
		// no specular map means a dull surface
		m.Specular = loadOr(dir, s.SpecularFile, s.Name+"/specular", core.Gray(0.1), &errs)
		lib[s.Name] = m
	}
	return lib, errs
}

func loadOr(dir, file, name string, fallback core.Color, errs *[]error) *Texture {
	if file != "" {
		tex, err := LoadTexture(filepath.Join(dir, file))
		if err == nil {
			return tex
		}
		*errs = append(*errs, fmt.Errorf("material %s: %w", name, err))
	}
	return NewSolidTexture(name, fallback.RGBA8())
}

// fallback is shared by every library and drawn for unknown names.
var fallback = DefaultMaterial()

// Get returns the named material, or the shared plain white one. A miss
// leaves the library unchanged.
func (l Library) Get(name string) *Material {
	if m, ok := l[name]; ok {
		return m
	}
	return fallback
}

// Textures lists every texture in the library plus the fallback's, for GPU
// upload.
func (l Library) Textures() []*Texture {
	out := make([]*Texture, 0, 2*len(l)+2)
	for _, m := range l {
		out = append(out, m.Diffuse, m.Specular)
	}
	return append(out, fallback.Diffuse, fallback.Specular)
}

// DefaultMaterial returns a plain white matte material.
func DefaultMaterial() *Material {
	return &Material{
		Name:     "default",
		Diffuse:  NewSolidTexture("default/diffuse", core.ColorWhite.RGBA8()),
		Specular: NewSolidTexture("default/specular", core.Gray(0.1).RGBA8()),
		Tint:     core.ColorWhite,
	}
}
