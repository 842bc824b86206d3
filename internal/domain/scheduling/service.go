package scheduling

import (
	"context"
	"strings"

	"github.com/carebook/carebook/internal/platform/apperr"
	"github.com/carebook/carebook/internal/platform/auth"
	"github.com/carebook/carebook/internal/platform/db"
)

type Service struct {
	repo Repository
	tx   db.TxRunner
}

func NewService(repo Repository, tx db.TxRunner) *Service {
	return &Service{repo: repo, tx: tx}
}

// BookInput is a booking request. PatientName is optional and defaults to the
// caller's display name.
type BookInput struct {
	PatientName string `json:"patientName"`
	DoctorName  string `json:"doctorName"`
	Date        string `json:"date"`
	Time        string `json:"time"`
}

// Book creates a Pending appointment for a patient. The conflict check and
// the insert run in one serializable transaction so two concurrent bookings
// for overlapping slots cannot both commit; the loser gets a conflict error.
func (s *Service) Book(ctx context.Context, actor *auth.Identity, in BookInput) (*Appointment, error) {
	if err := auth.Allow(actor, auth.RolePatient); err != nil {
		return nil, err
	}

	patientName := strings.TrimSpace(in.PatientName)
	if patientName == "" {
		patientName = actor.Name
	}
	if patientName == "" {
		patientName = actor.Username
	}

	doctorName := strings.TrimSpace(in.DoctorName)
	if doctorName == "" || strings.TrimSpace(in.Date) == "" || strings.TrimSpace(in.Time) == "" {
		return nil, apperr.New(apperr.Validation, "doctorName, date and time are required")
	}
	if _, err := parseDate(in.Date); err != nil {
		return nil, apperr.New(apperr.Validation, "invalid date %q (want YYYY-MM-DD)", in.Date)
	}
	if _, err := parseClock(in.Time); err != nil {
		return nil, apperr.New(apperr.Validation, "invalid time %q (want HH:MM)", in.Time)
	}

	appt := &Appointment{
		PatientName: patientName,
		DoctorName:  doctorName,
		Date:        strings.TrimSpace(in.Date),
		Time:        strings.TrimSpace(in.Time),
		Status:      StatusPending,
	}

	err := s.tx.Serializable(ctx, func(ctx context.Context) error {
		taken, err := s.repo.ActiveTimesForDoctorDate(ctx, appt.DoctorName, appt.Date)
		if err != nil {
			return err
		}
		if err := CheckConflict(appt.Time, taken); err != nil {
			return err
		}
		return s.repo.Create(ctx, appt)
	})
	if err != nil {
		return nil, err
	}
	return appt, nil
}

// Decide sets a pending appointment to Accepted or Rejected. Only the doctor
// the appointment names may decide it; matching is by display name. An admin
// may use the same operation as an override, but only to reject.
func (s *Service) Decide(ctx context.Context, actor *auth.Identity, id int64, status string) (*Appointment, error) {
	if err := auth.Allow(actor, auth.RoleDoctor, auth.RoleAdmin); err != nil {
		return nil, err
	}
	if !decisionStatuses[status] {
		return nil, apperr.New(apperr.Validation, "invalid status %q (want Accepted or Rejected)", status)
	}

	appt, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if actor.Role == auth.RoleAdmin {
		if status != StatusRejected {
			return nil, apperr.New(apperr.AccessDenied,
				"Access denied: admin override can only reject appointments")
		}
	} else {
		if appt.DoctorName != actor.Name {
			return nil, apperr.New(apperr.AccessDenied,
				"Access denied: appointment is assigned to another doctor")
		}
		if appt.Status != StatusPending {
			return nil, apperr.New(apperr.Conflict, "appointment is already %s", appt.Status)
		}
	}

	if err := s.repo.UpdateStatus(ctx, id, status); err != nil {
		return nil, err
	}
	appt.Status = status
	return appt, nil
}

// Cancel is the admin force-reject. It works from any state and is idempotent
// on already rejected appointments.
func (s *Service) Cancel(ctx context.Context, actor *auth.Identity, id int64) (*Appointment, error) {
	if err := auth.Allow(actor, auth.RoleAdmin); err != nil {
		return nil, err
	}

	appt, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if appt.Status != StatusRejected {
		if err := s.repo.UpdateStatus(ctx, id, StatusRejected); err != nil {
			return nil, err
		}
		appt.Status = StatusRejected
	}
	return appt, nil
}

// ListFor returns the appointments the caller may see: patients their own,
// doctors the ones assigned to them. Other roles use the admin listing.
func (s *Service) ListFor(ctx context.Context, actor *auth.Identity) ([]*Appointment, error) {
	if err := auth.Allow(actor, auth.RolePatient, auth.RoleDoctor); err != nil {
		return nil, err
	}
	if actor.Role == auth.RoleDoctor {
		return s.repo.ListByDoctor(ctx, actor.Name)
	}
	return s.repo.ListByPatient(ctx, actor.Name)
}

// ListAll returns every appointment, admin only, newest dates first.
func (s *Service) ListAll(ctx context.Context, actor *auth.Identity) ([]*Appointment, error) {
	if err := auth.Allow(actor, auth.RoleAdmin); err != nil {
		return nil, err
	}
	return s.repo.ListAll(ctx)
}
