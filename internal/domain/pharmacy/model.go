package pharmacy

import "time"

// OrderItem is one line of a medicine order. Price is the unit price at the
// time of ordering.
type OrderItem struct {
	Name     string  `json:"name"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
}

// MedicineOrder is a patient's order against a pharmacy. TotalPrice is a
// snapshot computed at ordering time and never recomputed afterwards.
type MedicineOrder struct {
	ID           int64       `json:"id"`
	PatientName  string      `json:"patientName"`
	PharmacyName string      `json:"pharmacyName"`
	Items        []OrderItem `json:"items"`
	TotalPrice   float64     `json:"totalPrice"`
	CreatedAt    time.Time   `json:"createdAt"`
}
