package opengl

import (
	"fmt"
	"log"
	"strings"
	"unsafe"

	gl "github.com/go-gl/gl/v4.1-core/gl"

	"escape-demo/core"
	"escape-demo/game"
	"escape-demo/math"
	"escape-demo/scene"
)

// GPUMesh holds the OpenGL buffer objects for an uploaded mesh.
type GPUMesh struct {
	VAO        uint32
	VBO        uint32
	EBO        uint32
	IndexCount int32
}

// Frame is the per-frame camera and light setup.
type Frame struct {
	View       math.Mat4
	Projection math.Mat4
	ViewPos    math.Vec3
	Light      game.Lighting
	Sky        core.Color
}

type litProgram struct {
	id                                 uint32
	model, view, projection            int32
	viewPos                            int32
	lightPos, ambient, diffuse, spec   int32
	constant, linear, quadratic, shine int32
}

type lampProgram struct {
	id                      uint32
	model, view, projection int32
	intensity               int32
}

// Renderer draws textured cubes lit by a single point light.
type Renderer struct {
	lit       litProgram
	lamp      lampProgram
	cube      *scene.Mesh
	gpuMeshes map[*scene.Mesh]*GPUMesh

	// Culling skips items whose bounds fall outside the view frustum.
	Culling bool
	drawn   int
	culled  int
}

// NewRenderer initialises OpenGL.
// Must be called after the GLFW window context is made current.
func NewRenderer() (*Renderer, error) {
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}
	log.Printf("[GL] version %s", gl.GoStr(gl.GetString(gl.VERSION)))

	litID, err := newProgram(litVertSrc, litFragSrc)
	if err != nil {
		return nil, fmt.Errorf("lit shader: %w", err)
	}
	lampID, err := newProgram(litVertSrc, lampFragSrc)
	if err != nil {
		gl.DeleteProgram(litID)
		return nil, fmt.Errorf("lamp shader: %w", err)
	}

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)

	r := &Renderer{
		lit:       bindLit(litID),
		lamp:      bindLamp(lampID),
		cube:      scene.CreateCube(1),
		gpuMeshes: make(map[*scene.Mesh]*GPUMesh),
		Culling:   true,
	}

	gl.UseProgram(litID)
	gl.Uniform1i(uniform(litID, "material.diffuse"), 0)
	gl.Uniform1i(uniform(litID, "material.specular"), 1)
	gl.UseProgram(lampID)
	gl.Uniform1i(uniform(lampID, "tex"), 0)
	gl.UseProgram(0)
	return r, nil
}

func uniform(prog uint32, name string) int32 {
	return gl.GetUniformLocation(prog, gl.Str(name+"\x00"))
}

func bindLit(id uint32) litProgram {
	return litProgram{
		id:         id,
		model:      uniform(id, "model"),
		view:       uniform(id, "view"),
		projection: uniform(id, "projection"),
		viewPos:    uniform(id, "viewPos"),
		lightPos:   uniform(id, "light.position"),
		ambient:    uniform(id, "light.ambient"),
		diffuse:    uniform(id, "light.diffuse"),
		spec:       uniform(id, "light.specular"),
		constant:   uniform(id, "light.constant"),
		linear:     uniform(id, "light.linear"),
		quadratic:  uniform(id, "light.quadratic"),
		shine:      uniform(id, "material.shininess"),
	}
}

func bindLamp(id uint32) lampProgram {
	return lampProgram{
		id:         id,
		model:      uniform(id, "model"),
		view:       uniform(id, "view"),
		projection: uniform(id, "projection"),
		intensity:  uniform(id, "intensity"),
	}
}

// SetViewport resizes the OpenGL viewport.
func (r *Renderer) SetViewport(width, height int) {
	gl.Viewport(0, 0, int32(width), int32(height))
}

// UploadLibrary sends every material texture to the GPU. Textures that fail
// are logged and left unbound.
func (r *Renderer) UploadLibrary(lib scene.Library) {
	for _, tex := range lib.Textures() {
		if tex.GLID != 0 {
			continue
		}
		if err := UploadTexture(tex); err != nil {
			log.Printf("[GL] %v", err)
		}
	}
}

// Draw clears the screen and draws every visible item as a unit cube.
func (r *Renderer) Draw(f Frame, items []scene.Item, lib scene.Library) {
	gl.ClearColor(f.Sky.R, f.Sky.G, f.Sky.B, f.Sky.A)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	items = r.cull(f, items)

	gpu := r.ensureUploaded(r.cube)
	if gpu == nil {
		return
	}
	gl.BindVertexArray(gpu.VAO)
	defer gl.BindVertexArray(0)

	r.useLit(f)
	for _, it := range items {
		m := lib.Get(it.Material)
		if m.Unlit {
			continue
		}
		bindTexture(0, m.Diffuse)
		bindTexture(1, m.Specular)
		setMat4(r.lit.model, it.Model)
		gl.DrawElements(gl.TRIANGLES, gpu.IndexCount, gl.UNSIGNED_INT, nil)
	}

	// unlit pass
	r.useLamp(f)
	for _, it := range items {
		m := lib.Get(it.Material)
		if !m.Unlit {
			continue
		}
		bindTexture(0, m.Diffuse)
		setMat4(r.lamp.model, it.Model)
		gl.DrawElements(gl.TRIANGLES, gpu.IndexCount, gl.UNSIGNED_INT, nil)
	}
}

func (r *Renderer) cull(f Frame, items []scene.Item) []scene.Item {
	r.drawn, r.culled = len(items), 0
	if !r.Culling {
		return items
	}
	frustum := scene.FrustumFromViewProjection(f.View.Mul(f.Projection))
	visible := make([]scene.Item, 0, len(items))
	for _, it := range items {
		if scene.CubeBounds(it.Model).Intersects(&frustum) {
			visible = append(visible, it)
		}
	}
	r.drawn, r.culled = len(visible), len(items)-len(visible)
	return visible
}

// DrawStats reports how many items the last Draw rendered and skipped.
func (r *Renderer) DrawStats() (drawn, culled int) {
	return r.drawn, r.culled
}

func (r *Renderer) useLit(f Frame) {
	p := r.lit
	l := f.Light
	gl.UseProgram(p.id)
	setMat4(p.view, f.View)
	setMat4(p.projection, f.Projection)
	gl.Uniform3f(p.viewPos, f.ViewPos.X, f.ViewPos.Y, f.ViewPos.Z)
	gl.Uniform3f(p.lightPos, l.Position.X, l.Position.Y, l.Position.Z)
	gl.Uniform3f(p.ambient, l.Ambient, l.Ambient, l.Ambient)
	gl.Uniform3f(p.diffuse, l.Diffuse, l.Diffuse, l.Diffuse)
	gl.Uniform3f(p.spec, l.Specular, l.Specular, l.Specular)
	gl.Uniform1f(p.constant, l.Constant)
	gl.Uniform1f(p.linear, l.Linear)
	gl.Uniform1f(p.quadratic, l.Quadratic)
	gl.Uniform1f(p.shine, l.Shininess)
}

func (r *Renderer) useLamp(f Frame) {
	p := r.lamp
	gl.UseProgram(p.id)
	setMat4(p.view, f.View)
	setMat4(p.projection, f.Projection)
	gl.Uniform1f(p.intensity, f.Light.LampIntensity)
}

// Mat4 is [4][4]float32 stored column-major, pass directly (transpose=false).
func setMat4(loc int32, m math.Mat4) {
	gl.UniformMatrix4fv(loc, 1, false, (*float32)(unsafe.Pointer(&m[0][0])))
}

// ReleaseMesh frees GPU buffers for the given mesh.
func (r *Renderer) ReleaseMesh(mesh *scene.Mesh) {
	if gpu, ok := r.gpuMeshes[mesh]; ok {
		gl.DeleteVertexArrays(1, &gpu.VAO)
		gl.DeleteBuffers(1, &gpu.VBO)
		gl.DeleteBuffers(1, &gpu.EBO)
		delete(r.gpuMeshes, mesh)
		mesh.GPUData = nil
	}
}

// Destroy releases all GPU resources.
func (r *Renderer) Destroy(lib scene.Library) {
	for mesh := range r.gpuMeshes {
		r.ReleaseMesh(mesh)
	}
	for _, tex := range lib.Textures() {
		DeleteTexture(tex)
	}
	gl.DeleteProgram(r.lit.id)
	gl.DeleteProgram(r.lamp.id)
}

// ensureUploaded uploads vertex/index data if not already done.
func (r *Renderer) ensureUploaded(mesh *scene.Mesh) *GPUMesh {
	if gpu, ok := r.gpuMeshes[mesh]; ok {
		return gpu
	}
	if len(mesh.Vertices) == 0 || len(mesh.Indices) == 0 {
		return nil
	}

	stride := int32(unsafe.Sizeof(core.Vertex{}))
	gpu := &GPUMesh{IndexCount: int32(len(mesh.Indices))}

	gl.GenVertexArrays(1, &gpu.VAO)
	gl.GenBuffers(1, &gpu.VBO)
	gl.BindVertexArray(gpu.VAO)

	gl.BindBuffer(gl.ARRAY_BUFFER, gpu.VBO)
	gl.BufferData(gl.ARRAY_BUFFER,
		len(mesh.Vertices)*int(stride),
		gl.Ptr(mesh.Vertices),
		gl.STATIC_DRAW)

	var v core.Vertex
	posOff := int(unsafe.Offsetof(v.Position))
	normOff := int(unsafe.Offsetof(v.Normal))
	uvOff := int(unsafe.Offsetof(v.UV))

	// location 0: Position (vec3)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, stride, gl.PtrOffset(posOff))

	// location 1: Normal (vec3)
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointer(1, 3, gl.FLOAT, false, stride, gl.PtrOffset(normOff))

	// location 2: UV (vec2)
	gl.EnableVertexAttribArray(2)
	gl.VertexAttribPointer(2, 2, gl.FLOAT, false, stride, gl.PtrOffset(uvOff))

	gl.GenBuffers(1, &gpu.EBO)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, gpu.EBO)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER,
		len(mesh.Indices)*4,
		gl.Ptr(mesh.Indices),
		gl.STATIC_DRAW)

	gl.BindVertexArray(0)

	r.gpuMeshes[mesh] = gpu
	mesh.GPUData = gpu
	return gpu
}

// ── shader helpers ────────────────────────────────────────────────────────────

func newProgram(vertSrc, fragSrc string) (uint32, error) {
	vert, err := compileShader(vertSrc, gl.VERTEX_SHADER)
	if err != nil {
		return 0, fmt.Errorf("vertex: %w", err)
	}
	frag, err := compileShader(fragSrc, gl.FRAGMENT_SHADER)
	if err != nil {
		gl.DeleteShader(vert)
		return 0, fmt.Errorf("fragment: %w", err)
	}

	prog := gl.CreateProgram()
	gl.AttachShader(prog, vert)
	gl.AttachShader(prog, frag)
	gl.LinkProgram(prog)
	gl.DeleteShader(vert)
	gl.DeleteShader(frag)

	var status int32
	gl.GetProgramiv(prog, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetProgramiv(prog, gl.INFO_LOG_LENGTH, &logLen)
		msg := strings.Repeat("\x00", int(logLen+1))
		gl.GetProgramInfoLog(prog, logLen, nil, gl.Str(msg))
		gl.DeleteProgram(prog)
		return 0, fmt.Errorf("link failed: %v", msg)
	}
	return prog, nil
}

func compileShader(src string, shaderType uint32) (uint32, error) {
	shader := gl.CreateShader(shaderType)
	csrc, free := gl.Strs(src)
	gl.ShaderSource(shader, 1, csrc, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLen)
		msg := strings.Repeat("\x00", int(logLen+1))
		gl.GetShaderInfoLog(shader, logLen, nil, gl.Str(msg))
		gl.DeleteShader(shader)
		return 0, fmt.Errorf("compile failed: %v", msg)
	}
	return shader, nil
}
