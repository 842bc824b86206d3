package scheduling

import (
	"strings"
	"time"

	"github.com/carebook/carebook/internal/platform/apperr"
)

// Appointment statuses. New bookings start Pending; the assigned doctor moves
// them to Accepted or Rejected exactly once. Rejected is also the terminal
// state for admin cancellations.
const (
	StatusPending  = "Pending"
	StatusAccepted = "Accepted"
	StatusRejected = "Rejected"
)

// decisionStatuses are the statuses a doctor may set on a pending appointment.
var decisionStatuses = map[string]bool{
	StatusAccepted: true,
	StatusRejected: true,
}

// MinSlotGap is the minimum spacing between two appointments of the same
// doctor on the same day. A gap of exactly MinSlotGap is allowed.
const MinSlotGap = 25 * time.Minute

type Appointment struct {
	ID          int64     `json:"id"`
	PatientName string    `json:"patientName"`
	DoctorName  string    `json:"doctorName"`
	Date        string    `json:"date"`
	Time        string    `json:"time"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
}

const (
	dateLayout  = "2006-01-02"
	clockLayout = "15:04"
)

func parseDate(s string) (time.Time, error) {
	return time.Parse(dateLayout, strings.TrimSpace(s))
}

func parseClock(s string) (time.Time, error) {
	return time.Parse(clockLayout, strings.TrimSpace(s))
}

// CheckConflict compares a requested time against the times of the doctor's
// existing non-rejected appointments on the same date. Two times closer than
// MinSlotGap conflict; a spacing of exactly MinSlotGap does not. Times are
// same-day wall-clock values, there is no cross-midnight handling.
//
// A malformed requested time is a validation error. A malformed stored time
// is surfaced as a persistence error rather than silently skipped.
func CheckConflict(requestedTime string, existing []string) error {
	req, err := parseClock(requestedTime)
	if err != nil {
		return apperr.New(apperr.Validation, "invalid time %q (want HH:MM)", requestedTime)
	}

	for _, t := range existing {
		other, err := parseClock(t)
		if err != nil {
			return apperr.Wrap(apperr.Persistence, err, "stored appointment has malformed time %q", t)
		}

		gap := req.Sub(other)
		if gap < 0 {
			gap = -gap
		}
		if gap < MinSlotGap {
			return apperr.New(apperr.Conflict, "Time slot conflict (25 min gap required)")
		}
	}

	return nil
}
