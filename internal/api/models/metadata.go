package models

// Enums lists the enum values accepted and produced by the analysis API.
// These back the tool form's select inputs.
type Enums struct {
	OriginOffices      []string           `json:"origin_offices"`
	VehicleTypes       []string           `json:"vehicle_types"`
	OptionTypes        []OptionType       `json:"option_types"`
	DurationCategories []DurationCategory `json:"duration_categories"`
}

// RateRowView is the read-only wire representation of one price-table row.
// All monetary values are AED.
type RateRowView struct {
	RentalPerDay       float64 `json:"rental_per_day"`
	PurchasePrice      float64 `json:"purchase_price"`
	DriverPerDay       float64 `json:"driver_per_day"`
	FuelPerDay         float64 `json:"fuel_per_day"`
	InsuranceAnnual    float64 `json:"insurance_annual"`
	RegistrationAnnual float64 `json:"registration_annual"`
	MaintenanceAnnual  float64 `json:"maintenance_annual"`
	DepreciationAnnual float64 `json:"depreciation_rate_annual"`
	TollsPerDay        float64 `json:"tolls_per_day"`
	ParkingPerDay      float64 `json:"parking_per_day"`
	FuelPricePerLiter  float64 `json:"fuel_price_per_liter"`
	FuelEfficiencyKmL  float64 `json:"fuel_efficiency_km_per_liter"`
}

// PriceTableView is the read-only wire representation of the regional price table.
type PriceTableView struct {
	Currency        string             `json:"currency"`
	Standard        RateRowView        `json:"standard"`
	Rugged          RateRowView        `json:"rugged"`
	HotelPerNight   float64            `json:"hotel_per_night"`
	OfficeDistances map[string]float64 `json:"office_distances_km"`
}
