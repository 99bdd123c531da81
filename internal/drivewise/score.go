package drivewise

import (
	"math"
	"sort"

	"github.com/drivewise/drivewise/internal/api/models"
)

// Duration bucket boundaries in days.
const (
	shortTermMaxDays  = 7
	mediumTermMaxDays = 90
)

// Score bounds applied when vehicle-type context is in play.
const (
	scoreUpperBound = 10
	scoreLowerBound = 1
)

// longDistanceKm is the one-way distance above which the distance modifiers kick in.
const longDistanceKm = 200

// Base suitability scores per duration bucket.
var baseScores = map[models.OptionType]map[models.DurationCategory]float64{
	models.OptionRent:   {models.DurationShortTerm: 9.0, models.DurationMediumTerm: 7.0, models.DurationLongTerm: 4.0},
	models.OptionBuy:    {models.DurationShortTerm: 2.0, models.DurationMediumTerm: 6.0, models.DurationLongTerm: 8.5},
	models.OptionDriver: {models.DurationShortTerm: 7.5, models.DurationMediumTerm: 6.5, models.DurationLongTerm: 5.0},
}

// DurationCategoryFor buckets a trip length into short/medium/long term.
func DurationCategoryFor(totalDays int) models.DurationCategory {
	switch {
	case totalDays <= shortTermMaxDays:
		return models.DurationShortTerm
	case totalDays <= mediumTermMaxDays:
		return models.DurationMediumTerm
	default:
		return models.DurationLongTerm
	}
}

// BuildOptions converts the three cost breakdowns plus trip context into
// scored recommendation options, in stable order: rent, buy, driver.
func BuildOptions(costs Costs, p *TripParameters) []models.RecommendationOption {
	category := DurationCategoryFor(p.TotalDays)
	rugged := p.VehicleType != nil && *p.VehicleType == VehicleRugged

	return []models.RecommendationOption{
		{
			OptionType:       models.OptionRent,
			CostBreakdown:    costs.Rent,
			Pros:             prosFor(models.OptionRent, rugged),
			Cons:             consFor(models.OptionRent, rugged),
			SuitabilityScore: scoreOption(models.OptionRent, category, p),
		},
		{
			OptionType:       models.OptionBuy,
			CostBreakdown:    costs.Buy,
			Pros:             prosFor(models.OptionBuy, rugged),
			Cons:             consFor(models.OptionBuy, rugged),
			SuitabilityScore: scoreOption(models.OptionBuy, category, p),
		},
		{
			OptionType:       models.OptionDriver,
			CostBreakdown:    costs.Driver,
			Pros:             prosFor(models.OptionDriver, rugged),
			Cons:             consFor(models.OptionDriver, rugged),
			SuitabilityScore: scoreOption(models.OptionDriver, category, p),
		},
	}
}

// scoreOption looks up the base score for the duration bucket and applies the
// additive context modifiers. The modifiers are independent, so application
// order does not matter. Scores are clamped to [1, 10] only when vehicle-type
// context was supplied; without it the raw sums are reported as-is.
func scoreOption(opt models.OptionType, category models.DurationCategory, p *TripParameters) float64 {
	score := baseScores[opt][category]

	// Long distances favor rentals and professional drivers over ownership.
	if p.DistanceKm != nil && *p.DistanceKm > longDistanceKm {
		switch opt {
		case models.OptionRent:
			score += 1.0
		case models.OptionBuy:
			score -= 0.5
		case models.OptionDriver:
			score += 1.5
		}
	}

	// Cross-border trips from Muscat complicate ownership and favor drivers
	// who handle the border crossing routinely.
	if p.OriginOffice != nil && *p.OriginOffice == OriginMuscat {
		switch opt {
		case models.OptionRent:
			score += 0.5
		case models.OptionBuy:
			score -= 1.0
		case models.OptionDriver:
			score += 2.0
		}
	}

	if p.VehicleType != nil {
		if *p.VehicleType == VehicleRugged {
			switch opt {
			case models.OptionRent:
				score += 1.5
			case models.OptionBuy:
				if p.RequiresOffroad {
					score -= 1.0
				}
			case models.OptionDriver:
				if p.RequiresOffroad {
					score += 2.0
				}
			}
		}

		switch opt {
		case models.OptionRent, models.OptionDriver:
			score = math.Min(score, scoreUpperBound)
		case models.OptionBuy:
			score = math.Max(score, scoreLowerBound)
		}
	}

	return score
}

// PickBest returns the option with the strictly greatest suitability score.
// On equal scores the earlier option wins, keeping the rent > buy > driver
// encounter-order tie-break deterministic.
func PickBest(options []models.RecommendationOption) models.RecommendationOption {
	best := options[0]
	for _, opt := range options[1:] {
		if opt.SuitabilityScore > best.SuitabilityScore {
			best = opt
		}
	}
	return best
}

// ConfidenceScore derives a decisiveness measure from the gap between the top
// score and the runner-up, clamped to [0, 0.95].
func ConfidenceScore(options []models.RecommendationOption) float64 {
	scores := make([]float64, len(options))
	for i, opt := range options {
		scores[i] = opt.SuitabilityScore
	}
	sort.Sort(sort.Reverse(sort.Float64Slice(scores)))

	confidence := (scores[0]-scores[1])/10 + 0.6
	return math.Max(0, math.Min(0.95, confidence))
}

func prosFor(opt models.OptionType, rugged bool) []string {
	var pros []string
	switch opt {
	case models.OptionRent:
		pros = []string{
			"No upfront investment required",
			"Maintenance and insurance included",
			"Flexibility to change car models",
			"No depreciation concerns",
			"24/7 roadside assistance typically included",
		}
		if rugged {
			pros = append(pros, "4x4 models available from major rental fleets")
		}
	case models.OptionBuy:
		pros = []string{
			"Asset ownership and potential resale value",
			"No daily rental fees",
			"Complete freedom and flexibility",
			"Customization options",
			"Long-term cost efficiency",
		}
	case models.OptionDriver:
		pros = []string{
			"No driving stress in Dubai traffic",
			"Professional local knowledge",
			"Productivity during commute",
			"No parking concerns",
			"Safety and convenience",
		}
		if rugged {
			pros = append(pros, "Drivers experienced with off-road site access")
		}
	}
	return pros
}

func consFor(opt models.OptionType, rugged bool) []string {
	var cons []string
	switch opt {
	case models.OptionRent:
		cons = []string{
			"Higher daily costs for long-term use",
			"No asset ownership",
			"Mileage restrictions may apply",
			"Availability issues during peak seasons",
		}
		if rugged {
			cons = append(cons, "4x4 rentals carry premium daily rates")
		}
	case models.OptionBuy:
		cons = []string{
			"High upfront investment",
			"Depreciation in Dubai's harsh climate",
			"Maintenance and repair responsibilities",
			"Insurance and registration costs",
			"Parking and storage requirements",
		}
		if rugged {
			cons = append(cons, "Higher purchase and running costs for 4x4 models")
		}
	case models.OptionDriver:
		cons = []string{
			"Highest daily cost",
			"Less privacy and flexibility",
			"Dependency on driver availability",
			"Language barriers possible",
		}
	}
	return cons
}
