package geo

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// RotationY90 returns the matrix that tilts the SEZ axes onto the
// polar-aligned frame at the given geodetic latitude (radians).
func RotationY90(lat float64) *mat.Dense {
	s, c := math.Sin(lat), math.Cos(lat)
	return mat.NewDense(3, 3, []float64{
		s, 0, c,
		0, 1, 0,
		-c, 0, s,
	})
}

// RotationZ returns the rotation about the polar axis by the given
// longitude (radians).
func RotationZ(lon float64) *mat.Dense {
	s, c := math.Sin(lon), math.Cos(lon)
	return mat.NewDense(3, 3, []float64{
		c, -s, 0,
		s, c, 0,
		0, 0, 1,
	})
}

// mulVec33 multiplies a 3x3 matrix with a 3-vector. No dimension check.
func mulVec33(m mat.Matrix, v []float64) []float64 {
	var out mat.VecDense
	out.MulVec(m, mat.NewVecDense(3, v))
	return []float64{out.AtVec(0), out.AtVec(1), out.AtVec(2)}
}
