package domain

type RentalStatus string

const (
	RentalStatusReserved  RentalStatus = "RESERVIERT"
	RentalStatusOpen      RentalStatus = "OFFEN"
	RentalStatusClosed    RentalStatus = "GESCHLOSSEN"
	RentalStatusCancelled RentalStatus = "STORNIERT"
)

// BillableStatuses is the canonical (permissive) set of rental statuses the
// billing report accepts. Restrictive deployments inject a smaller set.
var BillableStatuses = []RentalStatus{
	RentalStatusReserved,
	RentalStatusOpen,
	RentalStatusClosed,
	RentalStatusCancelled,
}

// UtilizationStatuses are the statuses that count toward fleet utilization.
// Cancelled rentals never do.
var UtilizationStatuses = []RentalStatus{
	RentalStatusOpen,
	RentalStatusClosed,
	RentalStatusReserved,
}

type RateUnit string

const (
	RateUnitDaily   RateUnit = "TAEGLICH"
	RateUnitWeekly  RateUnit = "WOECHENTLICH"
	RateUnitMonthly RateUnit = "MONATLICH"
)

type PositionType string

const (
	PositionTypeAssembly       PositionType = "MONTAGE"
	PositionTypeSparePart      PositionType = "ERSATZTEIL"
	PositionTypeServiceFlatFee PositionType = "SERVICEPAUSCHALE"
	PositionTypeInsurance      PositionType = "VERSICHERUNG"
	PositionTypeOther          PositionType = "SONSTIGES"
)

// Rental (Vermietung) is a time-bounded lease of one device to one customer.
// Dates are civil dates in yyyy-mm-dd form. A nil End means the rental is
// open-ended and treated as running through today for all calculations.
type Rental struct {
	ID         int32        `json:"id"`
	DeviceID   int32        `json:"geraet_id"`
	CustomerID int32        `json:"kunde_id"`
	Start      string       `json:"von"`
	End        *string      `json:"bis"`
	RateValue  float64      `json:"satz_wert"`
	RateUnit   RateUnit     `json:"satz_einheit"`
	Status     RentalStatus `json:"status"`
}

// RentalPosition is a billable line item under exactly one rental. Revenue
// contribution is Quantity*UnitPrice; cost contribution is InternalCost flat,
// not multiplied by quantity.
type RentalPosition struct {
	ID           int32        `json:"id"`
	RentalID     int32        `json:"vermietung_id"`
	Type         PositionType `json:"typ"`
	Quantity     float64      `json:"menge"`
	UnitPrice    float64      `json:"vk_einzelpreis"`
	InternalCost float64      `json:"kosten_intern"`
}
