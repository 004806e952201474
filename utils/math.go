package utils

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Blender is Z-up, Defold is Y-up. Column-major basis change matrix,
// same one the Blender-side dump script uses.
var axisConvert = mgl32.Mat4{
	1, 0, 0, 0,
	0, 0, -1, 0,
	0, 1, 0, 0,
	0, 0, 0, 1,
}

func AxisConvert() mgl32.Mat4 { return axisConvert }

// AxisConvert3 is the rotation part only, for transforming directions
// and collision geometry.
func AxisConvert3() mgl32.Mat3 { return axisConvert.Mat3() }

// BlenderToDefold re-expresses a Blender world matrix in Defold's basis:
// C * M * C^-1.
func BlenderToDefold(m mgl32.Mat4) mgl32.Mat4 {
	return axisConvert.Mul4(m).Mul4(axisConvert.Inv())
}

// DecomposeTRS splits an affine matrix into translation, rotation and
// non-uniform scale. Shear is folded into scale. A mirrored matrix
// (negative determinant) negates the X scale.
func DecomposeTRS(m mgl32.Mat4) (pos mgl32.Vec3, rot mgl32.Quat, scale mgl32.Vec3) {
	pos = mgl32.Vec3{m.At(0, 3), m.At(1, 3), m.At(2, 3)}

	cols := [3]mgl32.Vec3{
		{m.At(0, 0), m.At(1, 0), m.At(2, 0)},
		{m.At(0, 1), m.At(1, 1), m.At(2, 1)},
		{m.At(0, 2), m.At(1, 2), m.At(2, 2)},
	}

	scale = mgl32.Vec3{cols[0].Len(), cols[1].Len(), cols[2].Len()}
	if m.Mat3().Det() < 0 {
		scale[0] = -scale[0]
	}

	for i := 0; i < 3; i++ {
		if scale[i] == 0 {
			return pos, mgl32.QuatIdent(), scale
		}
		cols[i] = cols[i].Mul(1.0 / scale[i])
	}

	rotMat := mgl32.Mat4{
		cols[0][0], cols[0][1], cols[0][2], 0,
		cols[1][0], cols[1][1], cols[1][2], 0,
		cols[2][0], cols[2][1], cols[2][2], 0,
		0, 0, 0, 1,
	}
	rot = mgl32.Mat4ToQuat(rotMat).Normalize()

	return pos, rot, scale
}
