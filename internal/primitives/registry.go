package primitives

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Primitive type names accepted by Draw.
const (
	Cube     = "cube"
	Sphere   = "sphere"
	Cylinder = "cylinder"
	Plane    = "plane"
)

const (
	sphereRings    = 16
	sphereSlices   = 16
	cylinderSlices = 16
)

// cached holds the mesh for a primitive type and the offset that centers it.
type cached struct {
	mesh   rl.Mesh
	offset rl.Matrix
}

// Registry maps primitive type names to unit meshes drawn with one lit material.
// GPU resources are created on first use, after the window/OpenGL context exists.
type Registry struct {
	cache  map[string]cached
	mtl    rl.Material
	locs   uniformLocs
	loaded bool
	light  Lighting
	view   rl.Vector3
}

// NewRegistry returns an empty registry. Nothing touches the GPU until Draw.
func NewRegistry() *Registry {
	return &Registry{cache: make(map[string]cached), light: DefaultLighting()}
}

// SetView sets the camera position and lights for this frame. Call once per frame
// before drawing.
func (r *Registry) SetView(viewPos rl.Vector3, light Lighting) {
	r.view = viewPos
	r.light = light
}

func (r *Registry) ensureMaterial() {
	if r.loaded {
		return
	}
	r.loaded = true
	r.mtl = rl.LoadMaterialDefault()
	shader := rl.LoadShaderFromMemory(litVS, litFS)
	if rl.IsShaderValid(shader) {
		r.mtl.Shader = shader
		r.locs = lookupUniforms(shader)
	}
}

// ensure creates the unit mesh for primType. Meshes are 1 unit on each axis and
// centered on the origin; raylib's cylinder sits on Y=0, so it is shifted down by half.
func (r *Registry) ensure(primType string) (cached, bool) {
	if c, ok := r.cache[primType]; ok {
		return c, true
	}
	c := cached{offset: rl.MatrixIdentity()}
	switch primType {
	case Cube:
		c.mesh = rl.GenMeshCube(1, 1, 1)
	case Sphere:
		c.mesh = rl.GenMeshSphere(0.5, sphereRings, sphereSlices)
	case Cylinder:
		c.mesh = rl.GenMeshCylinder(0.5, 1, cylinderSlices)
		c.offset = rl.MatrixTranslate(0, -0.5, 0)
	case Plane:
		c.mesh = rl.GenMeshPlane(1, 1, 1, 1)
	default:
		return cached{}, false
	}
	r.cache[primType] = c
	return c, true
}

// Draw draws a unit primitive scaled by scale and centered at position.
// Must be called between BeginMode3D and EndMode3D. Unknown types are skipped.
func (r *Registry) Draw(primType string, position, scale rl.Vector3, color rl.Color) {
	m := rl.MatrixMultiply(
		rl.MatrixScale(orOne(scale.X), orOne(scale.Y), orOne(scale.Z)),
		rl.MatrixTranslate(position.X, position.Y, position.Z),
	)
	r.DrawTransform(primType, m, color, false)
}

// DrawTransform draws a unit primitive with an arbitrary model transform. Emissive
// parts ignore lighting and render at full color.
func (r *Registry) DrawTransform(primType string, transform rl.Matrix, color rl.Color, emissive bool) {
	r.ensureMaterial()
	c, ok := r.ensure(primType)
	if !ok {
		return
	}
	if albedo := r.mtl.GetMap(rl.MapAlbedo); albedo != nil {
		albedo.Color = color
	}
	r.applyUniforms(emissive)
	rl.DrawMesh(c.mesh, r.mtl, rl.MatrixMultiply(c.offset, transform))
}

// Unload releases meshes and the shared material.
func (r *Registry) Unload() {
	for k, c := range r.cache {
		rl.UnloadMesh(&c.mesh)
		delete(r.cache, k)
	}
	if r.loaded {
		rl.UnloadMaterial(r.mtl)
		r.loaded = false
	}
}

func orOne(v float32) float32 {
	if v == 0 {
		return 1
	}
	return v
}
