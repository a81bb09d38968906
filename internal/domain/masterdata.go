package domain

// Company (Firma) owns devices.
type Company struct {
	ID      int32   `json:"id"`
	Name    string  `json:"name"`
	VATID   *string `json:"ust_id"`
	Address *string `json:"adresse"`
}

// Yard (Mietpark) is a storage location for devices not out with a customer.
type Yard struct {
	ID      int32   `json:"id"`
	Name    string  `json:"name"`
	Address *string `json:"adresse"`
}

// Customer (Kunde) rents devices.
type Customer struct {
	ID      int32   `json:"id"`
	Name    string  `json:"name"`
	Address *string `json:"adresse"`
	VATID   *string `json:"ust_id"`
}
