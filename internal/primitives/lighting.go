package primitives

import (
	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Lighting is the per-frame light rig: an ambient term, one spot light and one short
// range point glow. A zero intensity switches a light off.
type Lighting struct {
	Ambient rl.Color

	SpotPosition  rl.Vector3
	SpotTarget    rl.Vector3
	SpotColor     rl.Color
	SpotIntensity float32
	SpotAngle     float32 // cone half-angle, radians
	SpotPenumbra  float32 // 0..1, share of the cone that fades out
	SpotDistance  float32
	SpotDecay     float32

	GlowPosition  rl.Vector3
	GlowColor     rl.Color
	GlowIntensity float32
	GlowRange     float32
}

// DefaultLighting is ambient only.
func DefaultLighting() Lighting {
	return Lighting{Ambient: rl.NewColor(0x40, 0x40, 0x40, 0xff)}
}

type uniformLocs struct {
	viewPos      int32
	ambient      int32
	emissive     int32
	spotPos      int32
	spotDir      int32
	spotColor    int32
	spotCosOuter int32
	spotCosInner int32
	spotDistance int32
	spotDecay    int32
	glowPos      int32
	glowColor    int32
	glowRange    int32
}

func lookupUniforms(s rl.Shader) uniformLocs {
	return uniformLocs{
		viewPos:      rl.GetShaderLocation(s, "viewPos"),
		ambient:      rl.GetShaderLocation(s, "ambient"),
		emissive:     rl.GetShaderLocation(s, "emissive"),
		spotPos:      rl.GetShaderLocation(s, "spotPos"),
		spotDir:      rl.GetShaderLocation(s, "spotDir"),
		spotColor:    rl.GetShaderLocation(s, "spotColor"),
		spotCosOuter: rl.GetShaderLocation(s, "spotCosOuter"),
		spotCosInner: rl.GetShaderLocation(s, "spotCosInner"),
		spotDistance: rl.GetShaderLocation(s, "spotDistance"),
		spotDecay:    rl.GetShaderLocation(s, "spotDecay"),
		glowPos:      rl.GetShaderLocation(s, "glowPos"),
		glowColor:    rl.GetShaderLocation(s, "glowColor"),
		glowRange:    rl.GetShaderLocation(s, "glowRange"),
	}
}

// spotCones returns the cosines of the outer cone and of the inner, unfaded cone.
func spotCones(angle, penumbra float32) (outer, inner float32) {
	return math32.Cos(angle), math32.Cos(angle * (1 - penumbra))
}

// scaled converts a color to linear-ish floats multiplied by intensity.
func scaled(c rl.Color, intensity float32) [3]float32 {
	return [3]float32{
		float32(c.R) / 255 * intensity,
		float32(c.G) / 255 * intensity,
		float32(c.B) / 255 * intensity,
	}
}

// applyUniforms uploads the frame's lights (cgo-safe: local arrays).
func (r *Registry) applyUniforms(emissive bool) {
	s := r.mtl.Shader
	if !rl.IsShaderValid(s) {
		return
	}
	l := r.light
	set3 := func(loc int32, v [3]float32) {
		if loc >= 0 {
			rl.SetShaderValueV(s, loc, v[:], rl.ShaderUniformVec3, 1)
		}
	}
	set1 := func(loc int32, v float32) {
		if loc >= 0 {
			rl.SetShaderValue(s, loc, []float32{v}, rl.ShaderUniformFloat)
		}
	}

	set3(r.locs.viewPos, [3]float32{r.view.X, r.view.Y, r.view.Z})
	set3(r.locs.ambient, scaled(l.Ambient, 1))
	var e float32
	if emissive {
		e = 1
	}
	set1(r.locs.emissive, e)

	dir := rl.Vector3Normalize(rl.Vector3Subtract(l.SpotTarget, l.SpotPosition))
	outer, inner := spotCones(l.SpotAngle, l.SpotPenumbra)
	set3(r.locs.spotPos, [3]float32{l.SpotPosition.X, l.SpotPosition.Y, l.SpotPosition.Z})
	set3(r.locs.spotDir, [3]float32{dir.X, dir.Y, dir.Z})
	set3(r.locs.spotColor, scaled(l.SpotColor, l.SpotIntensity))
	set1(r.locs.spotCosOuter, outer)
	set1(r.locs.spotCosInner, inner)
	set1(r.locs.spotDistance, l.SpotDistance)
	set1(r.locs.spotDecay, l.SpotDecay)

	set3(r.locs.glowPos, [3]float32{l.GlowPosition.X, l.GlowPosition.Y, l.GlowPosition.Z})
	set3(r.locs.glowColor, scaled(l.GlowColor, l.GlowIntensity))
	set1(r.locs.glowRange, l.GlowRange)
}

const (
	litVS = `#version 330
in vec3 vertexPosition;
in vec2 vertexTexCoord;
in vec3 vertexNormal;
uniform mat4 matProjection;
uniform mat4 matView;
uniform mat4 matModel;
out vec3 fragPosition;
out vec3 fragNormal;
void main() {
  vec4 worldPos = matModel * vec4(vertexPosition, 1.0);
  fragPosition = worldPos.xyz;
  fragNormal = mat3(matModel) * vertexNormal;
  gl_Position = matProjection * matView * worldPos;
}
`
	// litFS: ambient + spot (smooth cone edge, distance cutoff with decay) + point glow.
	litFS = `#version 330
in vec3 fragPosition;
in vec3 fragNormal;
uniform vec4 colDiffuse;
uniform vec3 viewPos;
uniform vec3 ambient;
uniform float emissive;
uniform vec3 spotPos;
uniform vec3 spotDir;
uniform vec3 spotColor;
uniform float spotCosOuter;
uniform float spotCosInner;
uniform float spotDistance;
uniform float spotDecay;
uniform vec3 glowPos;
uniform vec3 glowColor;
uniform float glowRange;
out vec4 finalColor;

float falloff(float d, float range, float decay) {
  if (range <= 0.0) return 1.0;
  return pow(clamp(1.0 - d / range, 0.0, 1.0), decay);
}

void main() {
  vec4 tint = colDiffuse;
  if (emissive > 0.5) {
    finalColor = tint;
    return;
  }
  vec3 N = normalize(fragNormal);
  vec3 V = normalize(viewPos - fragPosition);

  vec3 toSpot = spotPos - fragPosition;
  float dSpot = length(toSpot);
  vec3 L = toSpot / max(dSpot, 0.0001);
  float cone = smoothstep(spotCosOuter, spotCosInner, dot(-L, normalize(spotDir)));
  float NdotL = max(dot(N, L), 0.0);
  vec3 H = normalize(L + V);
  float spec = pow(max(dot(N, H), 0.0), 32.0) * 0.25 * (NdotL > 0.0 ? 1.0 : 0.0);
  vec3 spot = spotColor * cone * falloff(dSpot, spotDistance, spotDecay) * (tint.rgb * NdotL + spec);

  vec3 toGlow = glowPos - fragPosition;
  float dGlow = length(toGlow);
  float NdotG = max(dot(N, toGlow / max(dGlow, 0.0001)), 0.0);
  vec3 glow = glowColor * falloff(dGlow, glowRange, 2.0) * tint.rgb * NdotG;

  finalColor = vec4(ambient * tint.rgb + spot + glow, tint.a);
}
`
)
