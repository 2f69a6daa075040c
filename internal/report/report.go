// Package report renders a computed motion result in display units.
package report

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"strings"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/bft-labs/motioncalc/internal/domain"
)

// Format selects the output encoding.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatTOML Format = "toml"
)

// ErrOutOfRange is returned by Render when a displayed value is not finite,
// for example when a·t overflows.
var ErrOutOfRange = errors.New("result out of range")

// Formats lists the supported formats.
var Formats = []Format{FormatText, FormatJSON, FormatTOML}

// ParseFormat returns the Format named by s (case-insensitive).
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Formats {
		if f == known {
			return f, nil
		}
	}
	return "", fmt.Errorf("unknown output format %q (want text, json or toml)", s)
}

// Summary is the structured form of a result, in display units rounded to
// two decimals.
type Summary struct {
	VelocityKmh       float64 `json:"velocity_kmh" toml:"velocity_kmh"`
	DistanceKm        float64 `json:"distance_km" toml:"distance_km"`
	RemainingFuelKg   float64 `json:"remaining_fuel_kg" toml:"remaining_fuel_kg"`
	OmittedDistanceKm float64 `json:"omitted_distance_km" toml:"omitted_distance_km"`
}

// NewSummary converts r to display units.
func NewSummary(r domain.Result) Summary {
	return Summary{
		VelocityKmh:       round2(r.Velocity.Kmh()),
		DistanceKm:        round2(r.Distance.Km()),
		RemainingFuelKg:   round2(float64(r.RemainingFuel)),
		OmittedDistanceKm: round2(r.OmittedDistance.Km()),
	}
}

// Render writes r to w in the given format. Nothing is written when a
// value the format displays is not finite.
func Render(w io.Writer, f Format, r domain.Result) error {
	switch f {
	case FormatText, "":
		if err := checkFinite(displayed(r)[:3]); err != nil {
			return err
		}
		return renderText(w, r)
	case FormatJSON:
		if err := checkFinite(displayed(r)); err != nil {
			return err
		}
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(NewSummary(r))
	case FormatTOML:
		if err := checkFinite(displayed(r)); err != nil {
			return err
		}
		return toml.NewEncoder(w).Encode(NewSummary(r))
	default:
		return fmt.Errorf("unknown output format %q", f)
	}
}

type value struct {
	name string
	x    float64
}

// displayed lists r in display units; the text format shows the first three.
func displayed(r domain.Result) []value {
	return []value{
		{"velocity_kmh", r.Velocity.Kmh()},
		{"distance_km", r.Distance.Km()},
		{"remaining_fuel_kg", float64(r.RemainingFuel)},
		{"omitted_distance_km", r.OmittedDistance.Km()},
	}
}

func checkFinite(values []value) error {
	for _, v := range values {
		if !domain.IsNumber(v.x) {
			return fmt.Errorf("%w: %s is %v", ErrOutOfRange, v.name, v.x)
		}
	}
	return nil
}

func renderText(w io.Writer, r domain.Result) error {
	_, err := fmt.Fprintf(w,
		"Corrected New Velocity: %.2f km/h\nCorrected New Distance: %.2f km\nCorrected Remaining Fuel: %.2f kg\n",
		unsignedZero(r.Velocity.Kmh()), unsignedZero(r.Distance.Km()), unsignedZero(float64(r.RemainingFuel)))
	return err
}

// Values this large have no fractional hundredths to round, and x*100 may overflow.
const roundLimit = 1e15

func round2(x float64) float64 {
	if !domain.IsNumber(x) || math.Abs(x) >= roundLimit {
		return unsignedZero(x)
	}
	return unsignedZero(math.Round(x*100) / 100)
}

// unsignedZero maps -0 to 0 so it prints as 0.00.
func unsignedZero(x float64) float64 {
	if x == 0 {
		return 0
	}
	return x
}
