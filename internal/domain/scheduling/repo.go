package scheduling

import "context"

type Repository interface {
	Create(ctx context.Context, a *Appointment) error
	GetByID(ctx context.Context, id int64) (*Appointment, error)
	UpdateStatus(ctx context.Context, id int64, status string) error
	// ActiveTimesForDoctorDate returns the times of the doctor's non-rejected
	// appointments on the given date, for conflict checking.
	ActiveTimesForDoctorDate(ctx context.Context, doctorName, date string) ([]string, error)
	ListByPatient(ctx context.Context, patientName string) ([]*Appointment, error)
	ListByDoctor(ctx context.Context, doctorName string) ([]*Appointment, error)
	ListAll(ctx context.Context) ([]*Appointment, error)
}
