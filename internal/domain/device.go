package domain

type DeviceStatus string

const (
	DeviceStatusAvailable      DeviceStatus = "VERFUEGBAR"
	DeviceStatusRented         DeviceStatus = "VERMIETET"
	DeviceStatusMaintenance    DeviceStatus = "WARTUNG"
	DeviceStatusDecommissioned DeviceStatus = "AUSGEMUSTERT"
)

type LocationKind string

const (
	LocationYard     LocationKind = "MIETPARK"
	LocationCustomer LocationKind = "KUNDE"
)

// Device is a piece of rentable equipment (Gerät). Wire field names are the
// German ones the frontend depends on.
type Device struct {
	ID              int32        `json:"id"`
	Name            string       `json:"name"`
	Category        *string      `json:"kategorie"`
	Model           *string      `json:"modell"`
	SerialNumber    *string      `json:"seriennummer"`
	Status          DeviceStatus `json:"status"`
	LocationKind    LocationKind `json:"standort_typ"`
	HourMeter       float64      `json:"stundenzaehler"`
	PurchasePrice   *float64     `json:"anschaffungspreis"`
	PurchaseDate    *string      `json:"anschaffungsdatum"`
	YearBuilt       *int32       `json:"baujahr"`
	ListRateValue   *float64     `json:"mietpreis_wert"`
	ListRateUnit    *RateUnit    `json:"mietpreis_einheit"`
	RentedInCountry *string      `json:"vermietet_in"`
	CompanyID       int32        `json:"firma_id"`
	YardID          *int32       `json:"mietpark_id"`
}
