package geo

import (
	"errors"
	"strings"
	"testing"

	"github.com/geoframe/sez2ecef/pkg/core"
)

func TestParseArgs_Valid(t *testing.T) {
	pos, sez, err := ParseArgs([]string{"35.0", "-120.0", "0.1", "0", "0", "1.0"})

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := core.GeodeticPosition{LatDeg: 35, LonDeg: -120, HAEKm: 0.1}
	if pos != want {
		t.Errorf("expected position %+v, got %+v", want, pos)
	}
	if sez != (core.SEZVector{ZenithKm: 1}) {
		t.Errorf("expected sez {0 0 1}, got %+v", sez)
	}
}

func TestParseArgs_ScientificAndWhitespace(t *testing.T) {
	pos, sez, err := ParseArgs([]string{" 1e1", "2.5E+1 ", "-3e-2", "1", "-2", "3"})

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if pos.LatDeg != 10 || pos.LonDeg != 25 || pos.HAEKm != -0.03 {
		t.Errorf("unexpected position %+v", pos)
	}
	if sez.SouthKm != 1 || sez.EastKm != -2 || sez.ZenithKm != 3 {
		t.Errorf("unexpected sez %+v", sez)
	}
}

func TestParseArgs_NaNAndInfAccepted(t *testing.T) {
	_, _, err := ParseArgs([]string{"NaN", "Inf", "-Inf", "0", "0", "0"})
	if err != nil {
		t.Fatalf("expected NaN/Inf to parse, got %v", err)
	}
}

func TestParseArgs_InvalidNumber(t *testing.T) {
	tests := []struct {
		name string
		args []string
		arg  string
	}{
		{"latitude", []string{"abc", "0", "0", "0", "0", "0"}, "o_lat_deg"},
		{"height", []string{"0", "0", "1km", "0", "0", "0"}, "o_hae_km"},
		{"zenith", []string{"0", "0", "0", "0", "0", ""}, "z_km"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := ParseArgs(tt.args)
			if !errors.Is(err, ErrInvalidArgument) {
				t.Fatalf("expected ErrInvalidArgument, got %v", err)
			}
			if got := err.Error(); !strings.Contains(got, tt.arg) {
				t.Errorf("expected error to name %s, got %q", tt.arg, got)
			}
		})
	}
}

func TestParseArgs_WrongCount(t *testing.T) {
	for _, n := range []int{0, 5, 7} {
		args := make([]string, n)
		for i := range args {
			args[i] = "1"
		}
		_, _, err := ParseArgs(args)
		if !errors.Is(err, ErrArgumentCount) {
			t.Errorf("%d args: expected ErrArgumentCount, got %v", n, err)
		}
	}
}
