package models

// AnalyzeRequest is the request body for POST /v1/tools/drivewise:analyze.
// All fields except total_days are optional context; pointers distinguish
// absent fields from zero values.
type AnalyzeRequest struct {
	TotalDays       *int     `json:"total_days"`
	DistanceKm      *float64 `json:"distance_km,omitempty"`
	OriginOffice    *string  `json:"origin_office,omitempty"`
	SiteStayDays    *int     `json:"site_stay_days,omitempty"`
	VehicleType     *string  `json:"vehicle_type,omitempty"`
	RequiresOffroad *bool    `json:"requires_offroad,omitempty"`
}

// OptionType identifies a car acquisition strategy.
type OptionType string

const (
	OptionRent   OptionType = "rent"
	OptionBuy    OptionType = "buy"
	OptionDriver OptionType = "driver"
)

// DurationCategory is the coarse trip-length bucket that drives base scores.
type DurationCategory string

const (
	DurationShortTerm  DurationCategory = "short_term"
	DurationMediumTerm DurationCategory = "medium_term"
	DurationLongTerm   DurationCategory = "long_term"
)

// CostBreakdown itemizes the projected costs for one acquisition strategy.
// Components that do not apply to a strategy are omitted from the JSON output
// rather than reported as zero, so renderers can skip them.
type CostBreakdown struct {
	DailyCost    float64  `json:"daily_cost"`
	TotalCost    float64  `json:"total_cost"`
	Depreciation *float64 `json:"depreciation,omitempty"`
	Maintenance  *float64 `json:"maintenance,omitempty"`
	Fuel         *float64 `json:"fuel,omitempty"`
	Insurance    *float64 `json:"insurance,omitempty"`
	Registration *float64 `json:"registration,omitempty"`
	DriverSalary *float64 `json:"driver_salary,omitempty"`
	Tolls        *float64 `json:"tolls,omitempty"`
	Parking      *float64 `json:"parking,omitempty"`
}

// RecommendationOption is one scored acquisition strategy.
type RecommendationOption struct {
	OptionType       OptionType    `json:"option_type"`
	CostBreakdown    CostBreakdown `json:"cost_breakdown"`
	Pros             []string      `json:"pros"`
	Cons             []string      `json:"cons"`
	SuitabilityScore float64       `json:"suitability_score"`
}

// AnalysisResult is the response body for POST /v1/tools/drivewise:analyze.
// Options are always reported in stable order: rent, buy, driver.
type AnalysisResult struct {
	RecommendedOption OptionType             `json:"recommended_option"`
	ConfidenceScore   float64                `json:"confidence_score"`
	Options           []RecommendationOption `json:"options"`
	Reasoning         string                 `json:"reasoning"`
	DurationCategory  DurationCategory       `json:"duration_category"`
	TotalDays         int                    `json:"total_days"`
	Location          string                 `json:"location"`
	DistanceKm        *float64               `json:"distance_km,omitempty"`
	OriginOffice      *string                `json:"origin_office,omitempty"`
	SiteStayDays      *int                   `json:"site_stay_days,omitempty"`
}
