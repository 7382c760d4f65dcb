package motion

import "github.com/chewxy/math32"

// AngleDiff returns the shortest signed angle from current to target, in (-π, π].
// Going through atan2 keeps the result continuous across the ±π seam.
func AngleDiff(current, target float32) float32 {
	d := target - current
	return math32.Atan2(math32.Sin(d), math32.Cos(d))
}

// SmoothAngle steps current toward target by the shortest difference scaled by gain*dt.
// The step is bounded by gain*dt*π; callers keep gain*dt below 1 to avoid overshoot.
func SmoothAngle(current, target, gain, dt float32) float32 {
	return current + AngleDiff(current, target)*gain*dt
}

// RotateY rotates the XZ offset (x, z) by yaw radians about +Y (right-handed, same
// convention as rlgl's Rotatef about the Y axis).
func RotateY(x, z, yaw float32) (float32, float32) {
	s, c := math32.Sincos(yaw)
	return x*c + z*s, -x*s + z*c
}

// Lerp moves a toward b by t.
func Lerp(a, b, t float32) float32 {
	return a + (b-a)*t
}
