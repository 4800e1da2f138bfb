// pkg/core/position.go
package core

// GeodeticPosition is an observer location on the reference ellipsoid.
// Angles are not range checked.
type GeodeticPosition struct {
	LatDeg float64 `json:"lat_deg"`
	LonDeg float64 `json:"lon_deg"`
	HAEKm  float64 `json:"hae_km"` // height above ellipsoid
}

// SEZVector is a vector in the observer's South-East-Zenith frame.
type SEZVector struct {
	SouthKm  float64 `json:"s_km"`
	EastKm   float64 `json:"e_km"`
	ZenithKm float64 `json:"z_km"`
}

// ECEFVector is a vector in the Earth-Centered, Earth-Fixed frame.
type ECEFVector struct {
	XKm float64 `json:"x_km"`
	YKm float64 `json:"y_km"`
	ZKm float64 `json:"z_km"`
}

// Add returns v + o.
func (v ECEFVector) Add(o ECEFVector) ECEFVector {
	return ECEFVector{XKm: v.XKm + o.XKm, YKm: v.YKm + o.YKm, ZKm: v.ZKm + o.ZKm}
}

// Sub returns v - o.
func (v ECEFVector) Sub(o ECEFVector) ECEFVector {
	return ECEFVector{XKm: v.XKm - o.XKm, YKm: v.YKm - o.YKm, ZKm: v.ZKm - o.ZKm}
}

// Ellipsoid describes the reference ellipsoid by its equatorial radius
// and first eccentricity.
type Ellipsoid struct {
	EquatorialRadiusKm float64
	Eccentricity       float64
}

// WGS84 returns the ellipsoid every conversion uses unless told otherwise.
func WGS84() Ellipsoid {
	return Ellipsoid{
		EquatorialRadiusKm: 6378.137,
		Eccentricity:       0.081819221456,
	}
}

// EccentricitySquared returns e².
func (e Ellipsoid) EccentricitySquared() float64 {
	return e.Eccentricity * e.Eccentricity
}
