package scheduling

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/carebook/carebook/internal/platform/apperr"
	"github.com/carebook/carebook/internal/platform/db"
)

type repoPG struct{ pool *pgxpool.Pool }

func NewRepoPG(pool *pgxpool.Pool) Repository { return &repoPG{pool: pool} }

func (r *repoPG) conn(ctx context.Context) db.Querier {
	if q := db.QuerierFromContext(ctx); q != nil {
		return q
	}
	return r.pool
}

// Dates and times live in the database as DATE/TIME columns but cross the
// repository boundary as strings, so SELECTs format them back.
const apptCols = `id, patient_name, doctor_name,
	to_char(date, 'YYYY-MM-DD'), to_char(time, 'HH24:MI'), status, created_at`

func scanAppointment(row pgx.Row) (*Appointment, error) {
	var a Appointment
	err := row.Scan(&a.ID, &a.PatientName, &a.DoctorName, &a.Date, &a.Time, &a.Status, &a.CreatedAt)
	return &a, err
}

func (r *repoPG) Create(ctx context.Context, a *Appointment) error {
	err := r.conn(ctx).QueryRow(ctx, `
		INSERT INTO appointments (patient_name, doctor_name, date, time, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at`,
		a.PatientName, a.DoctorName, a.Date, a.Time, a.Status,
	).Scan(&a.ID, &a.CreatedAt)
	if err != nil {
		return apperr.Wrap(apperr.Persistence, err, "insert appointment")
	}
	return nil
}

func (r *repoPG) GetByID(ctx context.Context, id int64) (*Appointment, error) {
	a, err := scanAppointment(r.conn(ctx).QueryRow(ctx,
		`SELECT `+apptCols+` FROM appointments WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperr.New(apperr.NotFound, "appointment not found")
	}
	if err != nil {
		return nil, apperr.Wrap(apperr.Persistence, err, "get appointment %d", id)
	}
	return a, nil
}

func (r *repoPG) UpdateStatus(ctx context.Context, id int64, status string) error {
	tag, err := r.conn(ctx).Exec(ctx,
		`UPDATE appointments SET status = $2 WHERE id = $1`, id, status)
	if err != nil {
		return apperr.Wrap(apperr.Persistence, err, "update appointment %d status", id)
	}
	if tag.RowsAffected() == 0 {
		return apperr.New(apperr.NotFound, "appointment not found")
	}
	return nil
}

func (r *repoPG) ActiveTimesForDoctorDate(ctx context.Context, doctorName, date string) ([]string, error) {
	rows, err := r.conn(ctx).Query(ctx, `
		SELECT to_char(time, 'HH24:MI')
		FROM appointments
		WHERE doctor_name = $1 AND date = $2 AND status <> $3`,
		doctorName, date, StatusRejected)
	if err != nil {
		return nil, apperr.Wrap(apperr.Persistence, err, "query doctor times")
	}
	defer rows.Close()

	var times []string
	for rows.Next() {
		var t string
		if err := rows.Scan(&t); err != nil {
			return nil, apperr.Wrap(apperr.Persistence, err, "scan appointment time")
		}
		times = append(times, t)
	}
	if err := rows.Err(); err != nil {
		return nil, apperr.Wrap(apperr.Persistence, err, "iterate doctor times")
	}
	return times, nil
}

func (r *repoPG) ListByPatient(ctx context.Context, patientName string) ([]*Appointment, error) {
	return r.list(ctx, `SELECT `+apptCols+` FROM appointments
		WHERE patient_name = $1 ORDER BY date ASC, time ASC`, patientName)
}

func (r *repoPG) ListByDoctor(ctx context.Context, doctorName string) ([]*Appointment, error) {
	return r.list(ctx, `SELECT `+apptCols+` FROM appointments
		WHERE doctor_name = $1 ORDER BY date ASC, time ASC`, doctorName)
}

func (r *repoPG) ListAll(ctx context.Context) ([]*Appointment, error) {
	return r.list(ctx, `SELECT `+apptCols+` FROM appointments
		ORDER BY date DESC, time ASC`)
}

func (r *repoPG) list(ctx context.Context, query string, args ...interface{}) ([]*Appointment, error) {
	rows, err := r.conn(ctx).Query(ctx, query, args...)
	if err != nil {
		return nil, apperr.Wrap(apperr.Persistence, err, "query appointments")
	}
	defer rows.Close()

	var items []*Appointment
	for rows.Next() {
		a, err := scanAppointment(rows)
		if err != nil {
			return nil, apperr.Wrap(apperr.Persistence, err, "scan appointment")
		}
		items = append(items, a)
	}
	if err := rows.Err(); err != nil {
		return nil, apperr.Wrap(apperr.Persistence, err, "iterate appointments")
	}
	return items, nil
}
