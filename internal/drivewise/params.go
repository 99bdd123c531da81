package drivewise

import (
	"fmt"

	"github.com/drivewise/drivewise/internal/api/models"
)

// Trip duration limits. Anything outside this range is rejected at the boundary.
const (
	MinTotalDays = 1
	MaxTotalDays = 3650
)

// Validation messages surfaced to API clients.
const (
	MsgTotalDaysTooSmall = "Total days must be at least 1"
	MsgTotalDaysTooLarge = "Total days cannot exceed 3650 (10 years)"
)

// TripParameters is the normalized, fully-resolved input for one analysis.
// Optional context fields keep pointer types so "absent" stays distinguishable
// from zero; the vehicle-type rate row is resolved exactly once here so cost
// functions never consult the table themselves.
type TripParameters struct {
	TotalDays       int
	DistanceKm      *float64
	OriginOffice    *OriginOffice
	SiteStayDays    *int
	VehicleType     *VehicleType
	RequiresOffroad bool

	// Rates is the price-table row resolved from VehicleType (standard when
	// no vehicle type was supplied).
	Rates RateRow
}

// ValidationError represents validation errors.
type ValidationError struct {
	Errors []models.FieldError
}

func (e *ValidationError) Error() string {
	return "validation failed"
}

// NormalizeParams validates raw analysis input and produces a TripParameters
// value, or a ValidationError describing every rejected field. It has no side
// effects.
func NormalizeParams(table *PriceTable, input *models.AnalyzeRequest) (*TripParameters, error) {
	var fieldErrors []models.FieldError

	if input.TotalDays == nil || *input.TotalDays < MinTotalDays {
		fieldErrors = append(fieldErrors, models.FieldError{
			Field:   "total_days",
			Message: MsgTotalDaysTooSmall,
		})
	} else if *input.TotalDays > MaxTotalDays {
		fieldErrors = append(fieldErrors, models.FieldError{
			Field:   "total_days",
			Message: MsgTotalDaysTooLarge,
		})
	}

	// The source of these numbers never enforced non-negativity; we reject
	// negatives here so they cannot flow into the cost arithmetic.
	if input.DistanceKm != nil && *input.DistanceKm < 0 {
		fieldErrors = append(fieldErrors, models.FieldError{
			Field:   "distance_km",
			Message: "must be non-negative",
		})
	}
	if input.SiteStayDays != nil && *input.SiteStayDays < 0 {
		fieldErrors = append(fieldErrors, models.FieldError{
			Field:   "site_stay_days",
			Message: "must be non-negative",
		})
	}

	var origin *OriginOffice
	if input.OriginOffice != nil {
		o, err := parseOriginOffice(*input.OriginOffice)
		if err != nil {
			fieldErrors = append(fieldErrors, models.FieldError{
				Field:   "origin_office",
				Message: err.Error(),
			})
		} else {
			origin = &o
		}
	}

	var vehicle *VehicleType
	if input.VehicleType != nil {
		v, err := parseVehicleType(*input.VehicleType)
		if err != nil {
			fieldErrors = append(fieldErrors, models.FieldError{
				Field:   "vehicle_type",
				Message: err.Error(),
			})
		} else {
			vehicle = &v
		}
	}

	if len(fieldErrors) > 0 {
		return nil, &ValidationError{Errors: fieldErrors}
	}

	params := &TripParameters{
		TotalDays:    *input.TotalDays,
		DistanceKm:   input.DistanceKm,
		OriginOffice: origin,
		SiteStayDays: input.SiteStayDays,
		VehicleType:  vehicle,
		Rates:        table.Row(resolveVehicle(vehicle)),
	}
	if input.RequiresOffroad != nil {
		params.RequiresOffroad = *input.RequiresOffroad
	}
	return params, nil
}

func resolveVehicle(v *VehicleType) VehicleType {
	if v == nil {
		return VehicleStandard
	}
	return *v
}

func parseOriginOffice(s string) (OriginOffice, error) {
	switch OriginOffice(s) {
	case OriginDubai, OriginMuscat:
		return OriginOffice(s), nil
	default:
		return "", fmt.Errorf("must be one of %q, %q", OriginDubai, OriginMuscat)
	}
}

// parseVehicleType accepts the canonical names plus the tool form's legacy
// values ("normal", "4x4").
func parseVehicleType(s string) (VehicleType, error) {
	switch s {
	case string(VehicleStandard), "normal":
		return VehicleStandard, nil
	case string(VehicleRugged), "4x4":
		return VehicleRugged, nil
	default:
		return "", fmt.Errorf("must be one of %q, %q", VehicleStandard, VehicleRugged)
	}
}
