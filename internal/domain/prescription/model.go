package prescription

import "time"

// Prescription is a doctor's medication record for a patient. Rows are
// immutable after insert; corrections are new prescriptions.
type Prescription struct {
	ID              int64     `json:"id"`
	DoctorName      string    `json:"doctorName"`
	PatientUsername string    `json:"patientUsername"`
	Medicines       []string  `json:"medicines"`
	Notes           string    `json:"notes"`
	CreatedAt       time.Time `json:"createdAt"`
}
