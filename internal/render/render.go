// Package render writes ECEF results in the formats the CLI supports.
package render

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/geoframe/sez2ecef/pkg/core"
	geom "github.com/peterstace/simplefeatures/geom"
)

// Format selects how Render prints a vector.
type Format string

const (
	// FormatPlain prints x, y and z on their own lines
	FormatPlain Format = "plain"
	// FormatJSON prints a single JSON object
	FormatJSON Format = "json"
	// FormatWKT prints a WKT POINT Z
	FormatWKT Format = "wkt"
)

// ErrUnknownFormat is returned for a format name Render does not know
var ErrUnknownFormat = errors.New("unknown output format")

// ParseFormat maps a config value onto a Format. Empty means plain.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case "", FormatPlain:
		return FormatPlain, nil
	case FormatJSON, FormatWKT:
		return f, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
	}
}

// Render writes v to w in the given format.
func Render(w io.Writer, format Format, v core.ECEFVector) error {
	switch format {
	case FormatPlain, "":
		return plain(w, v)
	case FormatJSON:
		return json.NewEncoder(w).Encode(jsonVector{
			XKm: jsonFloat(v.XKm),
			YKm: jsonFloat(v.YKm),
			ZKm: jsonFloat(v.ZKm),
		})
	case FormatWKT:
		pt, err := Point(v)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, pt.AsText())
		return err
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, string(format))
	}
}

func plain(w io.Writer, v core.ECEFVector) error {
	for _, c := range []float64{v.XKm, v.YKm, v.ZKm} {
		if _, err := fmt.Fprintln(w, FormatFloat(c)); err != nil {
			return err
		}
	}
	return nil
}

// FormatFloat returns the shortest decimal that reads back as f.
func FormatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}

// jsonFloat encodes NaN and ±Inf as null, which encoding/json rejects.
type jsonFloat float64

func (f jsonFloat) MarshalJSON() ([]byte, error) {
	if math.IsNaN(float64(f)) || math.IsInf(float64(f), 0) {
		return []byte("null"), nil
	}
	return json.Marshal(float64(f))
}

type jsonVector struct {
	XKm jsonFloat `json:"x_km"`
	YKm jsonFloat `json:"y_km"`
	ZKm jsonFloat `json:"z_km"`
}

// Point wraps v as an XYZ point geometry, coordinates in kilometres.
// Non-finite coordinates have no WKT form and are rejected.
func Point(v core.ECEFVector) (geom.Point, error) {
	pt, err := geom.NewPoint(
		geom.Coordinates{
			XY:   geom.XY{X: v.XKm, Y: v.YKm},
			Z:    v.ZKm,
			Type: geom.DimXYZ,
		},
	)
	if err != nil {
		return geom.Point{}, fmt.Errorf("cannot build WKT point: %w", err)
	}
	return pt, nil
}
