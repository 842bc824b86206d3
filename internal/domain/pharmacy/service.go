package pharmacy

import (
	"context"
	"strings"

	"github.com/carebook/carebook/internal/platform/apperr"
	"github.com/carebook/carebook/internal/platform/auth"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

type OrderInput struct {
	PharmacyName string      `json:"pharmacyName"`
	Items        []OrderItem `json:"items"`
}

// PlaceOrder records a patient's medicine order. Every line needs a name, a
// quantity of at least one and a non-negative price; the total is computed
// here once and stored as a snapshot.
func (s *Service) PlaceOrder(ctx context.Context, actor *auth.Identity, in OrderInput) (*MedicineOrder, error) {
	if err := auth.Allow(actor, auth.RolePatient); err != nil {
		return nil, err
	}

	pharmacy := strings.TrimSpace(in.PharmacyName)
	if pharmacy == "" {
		return nil, apperr.New(apperr.Validation, "pharmacyName is required")
	}
	if len(in.Items) == 0 {
		return nil, apperr.New(apperr.Validation, "Cannot place an empty order.")
	}

	var total float64
	for i, item := range in.Items {
		if strings.TrimSpace(item.Name) == "" {
			return nil, apperr.New(apperr.Validation, "item %d: name is required", i+1)
		}
		if item.Quantity < 1 {
			return nil, apperr.New(apperr.Validation, "item %d: quantity must be at least 1", i+1)
		}
		if item.Price < 0 {
			return nil, apperr.New(apperr.Validation, "item %d: price must not be negative", i+1)
		}
		total += float64(item.Quantity) * item.Price
	}

	patientName := actor.Name
	if patientName == "" {
		patientName = actor.Username
	}

	o := &MedicineOrder{
		PatientName:  patientName,
		PharmacyName: pharmacy,
		Items:        in.Items,
		TotalPrice:   total,
	}
	if err := s.repo.Create(ctx, o); err != nil {
		return nil, err
	}
	return o, nil
}

// ListFor returns orders visible to the caller: patients their own orders,
// pharmacies the orders placed against them.
func (s *Service) ListFor(ctx context.Context, actor *auth.Identity) ([]*MedicineOrder, error) {
	if err := auth.Allow(actor, auth.RolePatient, auth.RolePharmacy); err != nil {
		return nil, err
	}
	if actor.Role == auth.RolePharmacy {
		return s.repo.ListByPharmacy(ctx, actor.Name)
	}
	return s.repo.ListByPatient(ctx, actor.Name)
}
