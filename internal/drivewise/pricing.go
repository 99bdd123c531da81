package drivewise

// VehicleType selects which price-table row applies to an analysis.
type VehicleType string

const (
	VehicleStandard VehicleType = "standard"
	VehicleRugged   VehicleType = "rugged"
)

// OriginOffice is a symbolic trip origin. It selects a fixed distance to the
// Fujairah site and, for Muscat, a cross-border score modifier.
type OriginOffice string

const (
	OriginDubai  OriginOffice = "dubai"
	OriginMuscat OriginOffice = "muscat"
)

// RateRow holds the per-day and per-annum AED rates for one vehicle class.
type RateRow struct {
	RentalPerDay       float64
	PurchasePrice      float64
	DriverPerDay       float64
	FuelPerDay         float64
	InsuranceAnnual    float64
	RegistrationAnnual float64
	MaintenanceAnnual  float64
	DepreciationAnnual float64
	TollsPerDay        float64
	ParkingPerDay      float64
	FuelPricePerLiter  float64
	FuelEfficiencyKmL  float64
}

// PriceTable is the fixed regional price table (2024 Dubai market estimates,
// AED). It is constructed once at startup and never mutated; rugged rates are
// never below their standard counterparts.
type PriceTable struct {
	Standard      RateRow
	Rugged        RateRow
	HotelPerNight float64

	// OfficeDistancesKm are the predefined one-way distances from each origin
	// office to the Fujairah site.
	OfficeDistancesKm map[OriginOffice]float64
}

// DefaultPriceTable returns the process-wide price table.
func DefaultPriceTable() *PriceTable {
	return &PriceTable{
		Standard: RateRow{
			RentalPerDay:       120,
			PurchasePrice:      75000,
			DriverPerDay:       200,
			FuelPerDay:         25,
			InsuranceAnnual:    2500,
			RegistrationAnnual: 500,
			MaintenanceAnnual:  3000,
			DepreciationAnnual: 0.20,
			TollsPerDay:        8,
			ParkingPerDay:      15,
			FuelPricePerLiter:  2.5,
			FuelEfficiencyKmL:  12,
		},
		Rugged: RateRow{
			RentalPerDay:       180,
			PurchasePrice:      110000,
			DriverPerDay:       250,
			FuelPerDay:         35,
			InsuranceAnnual:    3800,
			RegistrationAnnual: 650,
			MaintenanceAnnual:  4500,
			DepreciationAnnual: 0.22,
			TollsPerDay:        8,
			ParkingPerDay:      15,
			FuelPricePerLiter:  2.5,
			FuelEfficiencyKmL:  9,
		},
		HotelPerNight: 300,
		OfficeDistancesKm: map[OriginOffice]float64{
			OriginDubai:  120,
			OriginMuscat: 340,
		},
	}
}

// Row returns the rate row for the given vehicle type. An unset vehicle type
// resolves to the standard row.
func (t *PriceTable) Row(v VehicleType) RateRow {
	if v == VehicleRugged {
		return t.Rugged
	}
	return t.Standard
}
