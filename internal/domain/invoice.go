package domain

// Invoice (Rechnung) references a rental. Document generation is out of
// scope; only the number/date/paid bookkeeping lives here.
type Invoice struct {
	ID       int32  `json:"id"`
	RentalID int32  `json:"vermietung_id"`
	Number   string `json:"nummer"`
	Date     string `json:"datum"`
	Paid     bool   `json:"bezahlt"`
}
