// Package geo converts topocentric SEZ vectors into the ECEF frame.
package geo

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/geoframe/sez2ecef/pkg/core"
)

// ArgNames lists the positional inputs in the order ParseArgs expects them.
var ArgNames = []string{"o_lat_deg", "o_lon_deg", "o_hae_km", "s_km", "e_km", "z_km"}

// ErrInvalidArgument is returned when an input cannot be read as a number
var ErrInvalidArgument = errors.New("invalid argument provided")

// ErrArgumentCount is returned when ParseArgs gets anything but six inputs
var ErrArgumentCount = errors.New("wrong number of arguments")

// ParseArgs reads the observer position and the SEZ vector from six decimal
// strings, in ArgNames order.
func ParseArgs(args []string) (core.GeodeticPosition, core.SEZVector, error) {
	if len(args) != len(ArgNames) {
		return core.GeodeticPosition{}, core.SEZVector{}, fmt.Errorf("%w: got %d, want %d", ErrArgumentCount, len(args), len(ArgNames))
	}

	vals := make([]float64, len(args))
	for i, arg := range args {
		v, err := strconv.ParseFloat(strings.TrimSpace(arg), 64)
		if err != nil {
			return core.GeodeticPosition{}, core.SEZVector{}, fmt.Errorf("%w: %s=%q", ErrInvalidArgument, ArgNames[i], arg)
		}
		vals[i] = v
	}

	pos := core.GeodeticPosition{LatDeg: vals[0], LonDeg: vals[1], HAEKm: vals[2]}
	sez := core.SEZVector{SouthKm: vals[3], EastKm: vals[4], ZenithKm: vals[5]}
	return pos, sez, nil
}
