package pharmacy

import "context"

type Repository interface {
	Create(ctx context.Context, o *MedicineOrder) error
	ListByPatient(ctx context.Context, patientName string) ([]*MedicineOrder, error)
	ListByPharmacy(ctx context.Context, pharmacyName string) ([]*MedicineOrder, error)
}
