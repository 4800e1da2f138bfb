package geo

import (
	"math"

	"github.com/geoframe/sez2ecef/pkg/core"
)

// GeodeticToECEF returns the ECEF position (km) of a point given by geodetic
// latitude, longitude and height above the ellipsoid.
func GeodeticToECEF(pos core.GeodeticPosition, ell core.Ellipsoid) core.ECEFVector {
	lat := pos.LatDeg * math.Pi / 180
	lon := pos.LonDeg * math.Pi / 180
	return origin(lat, lon, pos.HAEKm, ell)
}

func origin(lat, lon, hae float64, ell core.Ellipsoid) core.ECEFVector {
	e2 := ell.EccentricitySquared()
	sin := math.Sin(lat)
	den := math.Sqrt(1 - e2*(sin*sin))

	// prime vertical and meridional-adjusted radii
	n := ell.EquatorialRadiusKm / den
	m := (ell.EquatorialRadiusKm * (1 - e2)) / den

	return core.ECEFVector{
		XKm: (n + hae) * math.Cos(lat) * math.Cos(lon),
		YKm: (n + hae) * math.Cos(lat) * math.Sin(lon),
		ZKm: (m + hae) * math.Sin(lat),
	}
}

// SEZToECEF rotates sez from the observer's topocentric frame into ECEF
// orientation and translates it by the observer's ECEF position.
//
// Inputs are used as given: out of range angles are accepted and NaN or Inf
// propagate to the result.
func SEZToECEF(observer core.GeodeticPosition, sez core.SEZVector, ell core.Ellipsoid) core.ECEFVector {
	lat := observer.LatDeg * math.Pi / 180
	lon := observer.LonDeg * math.Pi / 180

	o := origin(lat, lon, observer.HAEKm, ell)

	// Rz · (Ry90 · v)
	v := mulVec33(RotationY90(lat), []float64{sez.SouthKm, sez.EastKm, sez.ZenithKm})
	v = mulVec33(RotationZ(lon), v)

	return core.ECEFVector{
		XKm: v[0] + o.XKm,
		YKm: v[1] + o.YKm,
		ZKm: v[2] + o.ZKm,
	}
}

// Converter applies SEZToECEF with a fixed ellipsoid and, when Strict is
// set, rejects observer positions that fail Validate.
type Converter struct {
	Ellipsoid core.Ellipsoid
	Strict    bool
}

// NewConverter returns a Converter on the WGS-84 ellipsoid.
func NewConverter(strict bool) Converter {
	return Converter{Ellipsoid: core.WGS84(), Strict: strict}
}

// Convert transforms sez seen from observer into ECEF. A non-strict
// Converter never returns an error.
func (c Converter) Convert(observer core.GeodeticPosition, sez core.SEZVector) (core.ECEFVector, error) {
	if c.Strict {
		if err := Validate(observer, sez); err != nil {
			return core.ECEFVector{}, err
		}
	}
	ell := c.Ellipsoid
	if ell == (core.Ellipsoid{}) {
		ell = core.WGS84()
	}
	return SEZToECEF(observer, sez, ell), nil
}
