package prescription

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

type CreateInput struct {
	PatientUsername string   `json:"patientUsername"`
	Medicines       []string `json:"medicines"`
	Notes           string   `json:"notes"`
}

// Create records a prescription under the calling doctor's name. The
// medicines list may be empty (a visit with advice only) and its order is
// preserved as given.
func (s *Service) Create(ctx context.Context, actor *auth.Identity, in CreateInput) (*Prescription, error) {
	if err := auth.Allow(actor, auth.RoleDoctor); err != nil {
		return nil, err
	}

	patient := strings.TrimSpace(in.PatientUsername)
	if patient == "" {
		return nil, apperr.New(apperr.Validation, "patientUsername is required")
	}

	medicines := in.Medicines
	if medicines == nil {
		medicines = []string{}
	}
	for _, m := range medicines {
		if strings.TrimSpace(m) == "" {
			return nil, apperr.New(apperr.Validation, "medicine names must not be blank")
		}
	}

	p := &Prescription{
		DoctorName:      actor.Name,
		PatientUsername: patient,
		Medicines:       medicines,
		Notes:           in.Notes,
	}
	if err := s.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// ListFor returns prescriptions visible to the caller: doctors the ones they
// wrote, patients the ones keyed to their username.
func (s *Service) ListFor(ctx context.Context, actor *auth.Identity) ([]*Prescription, error) {
	if err := auth.Allow(actor, auth.RoleDoctor, auth.RolePatient); err != nil {
		return nil, err
	}
	if actor.Role == auth.RoleDoctor {
		return s.repo.ListByDoctor(ctx, actor.Name)
	}
	return s.repo.ListByPatient(ctx, actor.Username)
}
