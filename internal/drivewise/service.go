// Package drivewise implements the car-acquisition decision engine: the
// deterministic cost model, the multi-criteria suitability ranking, and the
// orchestration of the narrative justification.
package drivewise

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/drivewise/drivewise/internal/api/models"
	"github.com/drivewise/drivewise/internal/narrative"
)

// ServiceConfig holds configuration for the analysis service.
type ServiceConfig struct {
	// PriceTable is the regional rate table. Defaults to DefaultPriceTable.
	PriceTable *PriceTable

	// Narrator phrases the justification for the top-ranked option.
	Narrator narrative.Generator

	// Logger for service operations.
	Logger zerolog.Logger
}

// Service runs the analysis pipeline. Stateless across requests; the price
// table is read-only, so the service is safe for concurrent use.
type Service struct {
	table    *PriceTable
	narrator narrative.Generator
	logger   zerolog.Logger
}

// NewService creates a new analysis service.
func NewService(cfg ServiceConfig) *Service {
	table := cfg.PriceTable
	if table == nil {
		table = DefaultPriceTable()
	}
	return &Service{
		table:    table,
		narrator: cfg.Narrator,
		logger:   cfg.Logger,
	}
}

// Analyze runs the full pipeline: normalize, cost, score, rank, narrate.
// The narrative call is the only I/O-bound step; its failures are replaced by
// the deterministic fallback and never surfaced to the caller.
func (s *Service) Analyze(ctx context.Context, input *models.AnalyzeRequest) (*models.AnalysisResult, error) {
	params, err := NormalizeParams(s.table, input)
	if err != nil {
		return nil, err
	}

	costs := CalculateCosts(s.table, params)
	options := BuildOptions(costs, params)
	best := PickBest(options)
	confidence := ConfidenceScore(options)

	summary := buildSummary(params, costs, best)
	reasoning := s.narrate(ctx, summary)

	result := &models.AnalysisResult{
		RecommendedOption: best.OptionType,
		ConfidenceScore:   confidence,
		Options:           options,
		Reasoning:         reasoning,
		DurationCategory:  DurationCategoryFor(params.TotalDays),
		TotalDays:         params.TotalDays,
		Location:          locationLabel(params.OriginOffice),
		DistanceKm:        params.DistanceKm,
		SiteStayDays:      params.SiteStayDays,
	}
	if params.OriginOffice != nil {
		origin := string(*params.OriginOffice)
		result.OriginOffice = &origin
	}
	return result, nil
}

// narrate asks the generator for a justification and falls back to the
// deterministic sentence on any failure or empty response.
func (s *Service) narrate(ctx context.Context, summary narrative.Summary) string {
	text, err := s.narrator.Generate(ctx, summary)
	if err != nil || text == "" {
		s.logger.Warn().
			Err(err).
			Str("provider", s.narrator.Name()).
			Str("recommended", summary.Recommended).
			Msg("narrative generation failed, using fallback")
		return narrative.Fallback(summary)
	}
	return text
}

func buildSummary(p *TripParameters, costs Costs, best models.RecommendationOption) narrative.Summary {
	summary := narrative.Summary{
		TotalDays:        p.TotalDays,
		DurationCategory: string(DurationCategoryFor(p.TotalDays)),
		Recommended:      string(best.OptionType),
		RentTotal:        costs.Rent.TotalCost,
		RentDaily:        costs.Rent.DailyCost,
		BuyTotal:         costs.Buy.TotalCost,
		BuyDaily:         costs.Buy.DailyCost,
		DriverTotal:      costs.Driver.TotalCost,
		DriverDaily:      costs.Driver.DailyCost,
		DistanceKm:       p.DistanceKm,
		RequiresOffroad:  p.RequiresOffroad,
	}
	if p.OriginOffice != nil {
		origin := string(*p.OriginOffice)
		summary.OriginOffice = &origin
	}
	if p.VehicleType != nil {
		vehicle := string(*p.VehicleType)
		summary.VehicleType = &vehicle
	}
	return summary
}

// locationLabel renders the human-readable location for the result: the
// origin-to-site corridor when an origin office is known, otherwise the
// default market.
func locationLabel(origin *OriginOffice) string {
	switch {
	case origin == nil:
		return "Dubai"
	case *origin == OriginMuscat:
		return "Muscat to Fujairah"
	default:
		return "Dubai to Fujairah"
	}
}
