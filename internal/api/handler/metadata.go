package handler

import (
	"net/http"

	"github.com/drivewise/drivewise/internal/api/models"
	"github.com/drivewise/drivewise/internal/api/response"
	"github.com/drivewise/drivewise/internal/drivewise"
)

// MetadataHandler handles metadata endpoints.
type MetadataHandler struct {
	table *drivewise.PriceTable
}

// NewMetadataHandler creates a new MetadataHandler.
func NewMetadataHandler(table *drivewise.PriceTable) *MetadataHandler {
	return &MetadataHandler{table: table}
}

// GetEnums handles GET /v1/metadata/enums - enum values used by the API.
func (h *MetadataHandler) GetEnums(w http.ResponseWriter, r *http.Request) {
	enums := models.Enums{
		OriginOffices: []string{
			string(drivewise.OriginDubai),
			string(drivewise.OriginMuscat),
		},
		VehicleTypes: []string{
			string(drivewise.VehicleStandard),
			string(drivewise.VehicleRugged),
		},
		OptionTypes: []models.OptionType{
			models.OptionRent,
			models.OptionBuy,
			models.OptionDriver,
		},
		DurationCategories: []models.DurationCategory{
			models.DurationShortTerm,
			models.DurationMediumTerm,
			models.DurationLongTerm,
		},
	}
	response.JSON(w, r, http.StatusOK, enums)
}

// GetPrices handles GET /v1/metadata/prices - the regional price table.
func (h *MetadataHandler) GetPrices(w http.ResponseWriter, r *http.Request) {
	distances := make(map[string]float64, len(h.table.OfficeDistancesKm))
	for office, km := range h.table.OfficeDistancesKm {
		distances[string(office)] = km
	}

	view := models.PriceTableView{
		Currency:        "AED",
		Standard:        toRateRowView(h.table.Standard),
		Rugged:          toRateRowView(h.table.Rugged),
		HotelPerNight:   h.table.HotelPerNight,
		OfficeDistances: distances,
	}
	response.JSON(w, r, http.StatusOK, view)
}

func toRateRowView(row drivewise.RateRow) models.RateRowView {
	return models.RateRowView{
		RentalPerDay:       row.RentalPerDay,
		PurchasePrice:      row.PurchasePrice,
		DriverPerDay:       row.DriverPerDay,
		FuelPerDay:         row.FuelPerDay,
		InsuranceAnnual:    row.InsuranceAnnual,
		RegistrationAnnual: row.RegistrationAnnual,
		MaintenanceAnnual:  row.MaintenanceAnnual,
		DepreciationAnnual: row.DepreciationAnnual,
		TollsPerDay:        row.TollsPerDay,
		ParkingPerDay:      row.ParkingPerDay,
		FuelPricePerLiter:  row.FuelPricePerLiter,
		FuelEfficiencyKmL:  row.FuelEfficiencyKmL,
	}
}
