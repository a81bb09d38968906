package domain

// Report payloads. The German field names are the wire contract the frontend
// depends on and must not change.

type UtilizationItem struct {
	DeviceID           int32   `json:"geraet_id"`
	TotalDays          int     `json:"tage_gesamt"`
	RentedDays         int     `json:"tage_vermietet"`
	UtilizationPercent float64 `json:"auslastung_prozent"`
}

type UtilizationReport struct {
	Items                   []UtilizationItem `json:"items"`
	FleetUtilizationPercent float64           `json:"flotte_auslastung_prozent"`
}

type BillingReport struct {
	RentalID       int32   `json:"vermietung_id"`
	RentalDays     int     `json:"mietdauer_tage"`
	RentTotal      float64 `json:"miete_summe"`
	PositionsTotal float64 `json:"positionen_summe"`
	Revenue        float64 `json:"einnahmen"`
	CostTotal      float64 `json:"kosten_summe"`
	Margin         float64 `json:"marge"`
}

type DeviceFinanceReport struct {
	DeviceID           int32   `json:"geraet_id"`
	RentalCount        int     `json:"anzahl_vermietungen"`
	Revenue            float64 `json:"einnahmen"`
	Cost               float64 `json:"kosten"`
	Margin             float64 `json:"marge"`
	TotalDays          int     `json:"tage_gesamt"`
	RentedDays         int     `json:"tage_vermietet"`
	UtilizationPercent float64 `json:"auslastung_prozent"`
}
