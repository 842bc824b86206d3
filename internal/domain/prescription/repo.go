package prescription

import "context"

type Repository interface {
	Create(ctx context.Context, p *Prescription) error
	ListByDoctor(ctx context.Context, doctorName string) ([]*Prescription, error)
	ListByPatient(ctx context.Context, patientUsername string) ([]*Prescription, error)
}
