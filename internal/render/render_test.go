package render

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"
	"testing"

	"github.com/geoframe/sez2ecef/pkg/core"
	geom "github.com/peterstace/simplefeatures/geom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var sample = core.ECEFVector{XKm: -2615.663955884338, YKm: -4530.462867118275, ZKm: 3638.4978281156473}

func TestRender_Plain(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, FormatPlain, sample))

	assert.Equal(t, "-2615.663955884338\n-4530.462867118275\n3638.4978281156473\n", buf.String())
}

func TestRender_PlainRoundTrips(t *testing.T) {
	var buf bytes.Buffer
	v := core.ECEFVector{XKm: 1.0 / 3, YKm: -0, ZKm: 1e-7}
	require.NoError(t, Render(&buf, "", v))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	for i, want := range []float64{v.XKm, v.YKm, v.ZKm} {
		got, err := strconv.ParseFloat(lines[i], 64)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
}

func TestRender_JSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, FormatJSON, sample))

	var got core.ECEFVector
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, sample, got)
	assert.Contains(t, buf.String(), `"x_km"`)
}

func TestRender_WKT(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, FormatWKT, sample))

	text := strings.TrimSpace(buf.String())
	assert.True(t, strings.HasPrefix(text, "POINT Z"), text)

	g, err := geom.UnmarshalWKT(text)
	require.NoError(t, err)
	assert.Equal(t, geom.TypePoint, g.Type())
	assert.Equal(t, geom.DimXYZ, g.CoordinatesType())
	assert.Equal(t, text, g.AsText())
}

func TestRender_NonFinite(t *testing.T) {
	v := core.ECEFVector{XKm: math.NaN(), YKm: 1, ZKm: math.Inf(-1)}

	t.Run("plain", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, Render(&buf, FormatPlain, v))
		assert.Equal(t, "NaN\n1\n-Inf\n", buf.String())
	})

	t.Run("json", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, Render(&buf, FormatJSON, v))
		assert.JSONEq(t, `{"x_km":null,"y_km":1,"z_km":null}`, buf.String())
	})

	t.Run("wkt", func(t *testing.T) {
		var buf bytes.Buffer
		err := Render(&buf, FormatWKT, v)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "WKT point")
		assert.Empty(t, buf.String())
	})
}

func TestPoint(t *testing.T) {
	pt, err := Point(sample)
	require.NoError(t, err)
	coords, ok := pt.Coordinates()
	require.True(t, ok)
	assert.Equal(t, geom.DimXYZ, coords.Type)
	assert.Equal(t, sample.XKm, coords.X)
	assert.Equal(t, sample.YKm, coords.Y)
	assert.Equal(t, sample.ZKm, coords.Z)

	_, err = Point(core.ECEFVector{XKm: math.NaN()})
	assert.Error(t, err)
}

func TestRender_UnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	err := Render(&buf, Format("csv"), sample)
	assert.ErrorIs(t, err, ErrUnknownFormat)
	assert.Empty(t, buf.String())
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input   string
		want    Format
		wantErr bool
	}{
		{"", FormatPlain, false},
		{"plain", FormatPlain, false},
		{"JSON", FormatJSON, false},
		{" wkt ", FormatWKT, false},
		{"xml", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseFormat(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrUnknownFormat)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
