package domain

import "time"

// Maintenance (Wartung) is a dated service record for one device.
type Maintenance struct {
	ID          int32   `json:"id"`
	DeviceID    int32   `json:"geraet_id"`
	Date        string  `json:"datum"`
	Description *string `json:"beschreibung"`
	Cost        float64 `json:"kosten"`
}

// MeterReading (Zählerstand) is a point-in-time hour-meter snapshot.
type MeterReading struct {
	ID       int32     `json:"id"`
	DeviceID int32     `json:"geraet_id"`
	ReadAt   time.Time `json:"zeitpunkt"`
	Hours    float64   `json:"stunden"`
}
