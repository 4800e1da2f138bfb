package geo

import (
	"math"

	"github.com/geoframe/sez2ecef/pkg/core"
	"github.com/wroge/wgs84"
)

// ReferenceOrigin computes the observer's ECEF position with the wgs84
// package (EPSG:4326 to EPSG:4978), which uses the defining WGS-84 radius
// and flattening rather than a rounded eccentricity.
func ReferenceOrigin(pos core.GeodeticPosition) core.ECEFVector {
	epsg := wgs84.EPSG()
	f := epsg.Transform(4326, 4978)
	x, y, z := f(pos.LonDeg, pos.LatDeg, pos.HAEKm*1000)
	return core.ECEFVector{XKm: x / 1000, YKm: y / 1000, ZKm: z / 1000}
}

// OriginDeviationKm is the distance between GeodeticToECEF on ell and
// ReferenceOrigin for the same position.
func OriginDeviationKm(pos core.GeodeticPosition, ell core.Ellipsoid) float64 {
	d := GeodeticToECEF(pos, ell).Sub(ReferenceOrigin(pos))
	return math.Sqrt(d.XKm*d.XKm + d.YKm*d.YKm + d.ZKm*d.ZKm)
}
