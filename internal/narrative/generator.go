// Package narrative defines the contract for the natural-language
// justification attached to an analysis result. The decision engine only
// depends on the Generator interface and the deterministic fallback; the
// actual text-generation provider lives in a subpackage.
package narrative

import (
	"context"
	"errors"
	"fmt"
)

// ErrEmptyCompletion is returned when the provider responds without any
// usable content.
var ErrEmptyCompletion = errors.New("provider returned empty completion")

// Summary carries the already-computed figures a generator may phrase. It is
// built entirely from local analysis values; generators must not need anything
// else.
type Summary struct {
	TotalDays        int
	DurationCategory string
	Recommended      string

	RentTotal   float64
	RentDaily   float64
	BuyTotal    float64
	BuyDaily    float64
	DriverTotal float64
	DriverDaily float64

	DistanceKm      *float64
	OriginOffice    *string
	VehicleType     *string
	RequiresOffroad bool
}

// Generator produces a short human-readable justification for the recommended
// option. Implementations may fail; callers substitute Fallback and never
// propagate the error.
type Generator interface {
	// Name identifies the provider for logging and health reporting.
	Name() string

	// Generate returns the justification text for the given summary.
	Generate(ctx context.Context, s Summary) (string, error)
}

// Fallback returns the deterministic justification used when generation
// fails. Built purely from local values so it never needs network access.
func Fallback(s Summary) string {
	if s.VehicleType != nil {
		return fmt.Sprintf(
			"Based on the %d-day analysis with a %s vehicle, %s is recommended due to optimal cost-effectiveness and practical considerations for Dubai conditions.",
			s.TotalDays, *s.VehicleType, s.Recommended)
	}
	return fmt.Sprintf(
		"Based on the %d-day analysis, %s is recommended due to optimal cost-effectiveness and practical considerations for Dubai conditions.",
		s.TotalDays, s.Recommended)
}
