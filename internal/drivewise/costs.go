package drivewise

import "github.com/drivewise/drivewise/internal/api/models"

// Costs holds the cost breakdowns for all three acquisition strategies.
type Costs struct {
	Rent   models.CostBreakdown
	Buy    models.CostBreakdown
	Driver models.CostBreakdown
}

// CalculateCosts computes the per-option cost breakdowns from normalized trip
// parameters. Pure function of its inputs; TotalDays >= 1 is guaranteed by the
// normalizer so the per-day divisions are safe.
func CalculateCosts(table *PriceTable, p *TripParameters) Costs {
	return Costs{
		Rent:   rentCosts(table, p),
		Buy:    buyCosts(table, p),
		Driver: driverCosts(table, p),
	}
}

// dailyFuelCost is the flat daily fuel constant, plus the amortized round-trip
// fuel for the supplied distance when one is given.
func dailyFuelCost(p *TripParameters) float64 {
	fuel := p.Rates.FuelPerDay
	if p.DistanceKm != nil {
		costPerKm := p.Rates.FuelPricePerLiter / p.Rates.FuelEfficiencyKmL
		roundTrip := *p.DistanceKm * 2 * costPerKm
		fuel += roundTrip / float64(p.TotalDays)
	}
	return fuel
}

// accommodationCost is the lump-sum hotel cost for extra on-site nights.
func accommodationCost(table *PriceTable, p *TripParameters) float64 {
	if p.SiteStayDays != nil && *p.SiteStayDays > 0 {
		return table.HotelPerNight * float64(*p.SiteStayDays)
	}
	return 0
}

func rentCosts(table *PriceTable, p *TripParameters) models.CostBreakdown {
	days := float64(p.TotalDays)
	dailyFuel := dailyFuelCost(p)

	dailyCost := p.Rates.RentalPerDay + dailyFuel + p.Rates.TollsPerDay + p.Rates.ParkingPerDay
	totalCost := dailyCost*days + accommodationCost(table, p)

	// The reported daily cost amortizes the accommodation lump sum over the
	// trip. Intentional smoothing, kept for parity with the original model.
	return models.CostBreakdown{
		DailyCost: totalCost / days,
		TotalCost: totalCost,
		Fuel:      ptr(dailyFuel * days),
		Tolls:     ptr(p.Rates.TollsPerDay * days),
		Parking:   ptr(p.Rates.ParkingPerDay * days),
	}
}

func buyCosts(table *PriceTable, p *TripParameters) models.CostBreakdown {
	days := float64(p.TotalDays)

	// Annual ownership costs are pro-rated to the trip period; the purchase
	// price itself is charged in full.
	periodFactor := days / 365
	insurance := p.Rates.InsuranceAnnual * periodFactor
	registration := p.Rates.RegistrationAnnual * periodFactor
	maintenance := p.Rates.MaintenanceAnnual * periodFactor
	depreciation := p.Rates.PurchasePrice * p.Rates.DepreciationAnnual * periodFactor

	fuel := dailyFuelCost(p) * days
	tolls := p.Rates.TollsPerDay * days
	parking := p.Rates.ParkingPerDay * days

	totalCost := p.Rates.PurchasePrice + insurance + registration + maintenance +
		depreciation + fuel + tolls + parking + accommodationCost(table, p)

	return models.CostBreakdown{
		DailyCost:    totalCost / days,
		TotalCost:    totalCost,
		Depreciation: ptr(depreciation),
		Maintenance:  ptr(maintenance),
		Fuel:         ptr(fuel),
		Insurance:    ptr(insurance),
		Registration: ptr(registration),
		Tolls:        ptr(tolls),
		Parking:      ptr(parking),
	}
}

func driverCosts(table *PriceTable, p *TripParameters) models.CostBreakdown {
	days := float64(p.TotalDays)

	totalCost := p.Rates.DriverPerDay*days + accommodationCost(table, p)

	return models.CostBreakdown{
		DailyCost:    totalCost / days,
		TotalCost:    totalCost,
		DriverSalary: ptr(p.Rates.DriverPerDay * days),
	}
}

func ptr(f float64) *float64 {
	return &f
}
