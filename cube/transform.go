package cube

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// Transform is the per-frame render output of a Model.
type Transform struct {
	RotationX   float64
	RotationY   float64
	Scale       float64
	FloatOffset float64 // screen pixels, positive is down
}

// Matrix builds the model matrix rotate-X, rotate-Y, scale, then translate,
// in that order. unit converts the float offset from pixels to world units;
// world Y points up so the offset is negated.
func (t Transform) Matrix(unit float32) mgl32.Mat4 {
	rx := mgl32.HomogRotate3DX(mgl32.DegToRad(float32(t.RotationX)))
	ry := mgl32.HomogRotate3DY(mgl32.DegToRad(float32(t.RotationY)))
	s := float32(t.Scale)
	scale := mgl32.Scale3D(s, s, s)
	lift := mgl32.Translate3D(0, -float32(t.FloatOffset)*unit, 0)
	return rx.Mul4(ry).Mul4(scale).Mul4(lift)
}

// Apply transforms a point in model space.
func (t Transform) Apply(p mgl32.Vec3, unit float32) mgl32.Vec3 {
	return mgl32.TransformCoordinate(p, t.Matrix(unit))
}

func (t Transform) String() string {
	return fmt.Sprintf("rotX=%.1f rotY=%.1f scale=%.1f float=%.2f",
		t.RotationX, t.RotationY, t.Scale, t.FloatOffset)
}
