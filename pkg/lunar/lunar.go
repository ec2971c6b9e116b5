// Package lunar computes the moon's illuminated fraction and phase name
// for an arbitrary instant. It exists as a fallback for forecast providers
// that don't report a lunar phase, and backs the moon-phase command.
package lunar

import (
	"time"

	"github.com/soniakeys/meeus/v3/base"
	"github.com/soniakeys/meeus/v3/julian"
	"github.com/soniakeys/meeus/v3/moonillum"
)

// Phase describes the moon's appearance at a given instant.
type Phase struct {
	// Illumination is the illuminated fraction of the disk, 0 to 1.
	Illumination float64
	// Waxing is true while the illuminated fraction is increasing.
	Waxing bool
	// Name is the conventional 8-phase name, e.g. "waxing gibbous".
	Name string
}

// illuminatedFraction evaluates the lower-precision illuminated fraction
// series at t. The result is good to a few thousandths, plenty for naming
// a phase.
func illuminatedFraction(t time.Time) float64 {
	T := base.J2000Century(julian.TimeToJD(t.UTC()))
	return base.Illuminated(moonillum.PhaseAngle3(T))
}

// Calculate returns the moon phase at t.
func Calculate(t time.Time) Phase {
	frac := illuminatedFraction(t)

	// The illuminated-fraction series has no sign for waxing vs waning,
	// so sample it a few hours later and compare.
	waxing := illuminatedFraction(t.Add(6*time.Hour)) > frac

	return Phase{
		Illumination: frac,
		Waxing:       waxing,
		Name:         phaseName(frac, waxing),
	}
}

func phaseName(frac float64, waxing bool) string {
	switch {
	case frac < 0.03:
		return "new moon"
	case frac > 0.97:
		return "full moon"
	case frac > 0.47 && frac < 0.53:
		if waxing {
			return "first quarter"
		}
		return "last quarter"
	case frac < 0.5:
		if waxing {
			return "waxing crescent"
		}
		return "waning crescent"
	default:
		if waxing {
			return "waxing gibbous"
		}
		return "waning gibbous"
	}
}
