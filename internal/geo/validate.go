package geo

import (
	"errors"
	"fmt"
	"math"

	"github.com/geoframe/sez2ecef/pkg/core"
)

var (
	// ErrLatitudeRange is returned in strict mode for latitudes outside [-90, 90]
	ErrLatitudeRange = errors.New("latitude out of range")
	// ErrLongitudeRange is returned in strict mode for longitudes outside [-180, 360]
	ErrLongitudeRange = errors.New("longitude out of range")
	// ErrNonFinite is returned in strict mode when any input is NaN or Inf
	ErrNonFinite = errors.New("non-finite input")
)

// Validate checks observer and sez the way a strict Converter does.
// SEZToECEF itself never calls it.
func Validate(observer core.GeodeticPosition, sez core.SEZVector) error {
	inputs := []float64{observer.LatDeg, observer.LonDeg, observer.HAEKm, sez.SouthKm, sez.EastKm, sez.ZenithKm}
	for i, v := range inputs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: %s=%v", ErrNonFinite, ArgNames[i], v)
		}
	}
	if observer.LatDeg < -90 || observer.LatDeg > 90 {
		return fmt.Errorf("%w: %v", ErrLatitudeRange, observer.LatDeg)
	}
	if observer.LonDeg < -180 || observer.LonDeg > 360 {
		return fmt.Errorf("%w: %v", ErrLongitudeRange, observer.LonDeg)
	}
	return nil
}
