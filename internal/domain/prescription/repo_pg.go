package prescription

import (
	"context"

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

const rxCols = `id, doctor_name, patient_username, medicines, notes, created_at`

func scanPrescription(row pgx.Row) (*Prescription, error) {
	var p Prescription
	err := row.Scan(&p.ID, &p.DoctorName, &p.PatientUsername, &p.Medicines, &p.Notes, &p.CreatedAt)
	return &p, err
}

func (r *repoPG) Create(ctx context.Context, p *Prescription) error {
	// Medicines is a JSONB column; an empty list must land as [] not null.
	if p.Medicines == nil {
		p.Medicines = []string{}
	}
	err := r.conn(ctx).QueryRow(ctx, `
		INSERT INTO prescriptions (doctor_name, patient_username, medicines, notes)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at`,
		p.DoctorName, p.PatientUsername, p.Medicines, p.Notes,
	).Scan(&p.ID, &p.CreatedAt)
	if err != nil {
		return apperr.Wrap(apperr.Persistence, err, "insert prescription")
	}
	return nil
}

func (r *repoPG) ListByDoctor(ctx context.Context, doctorName string) ([]*Prescription, error) {
	return r.list(ctx, `SELECT `+rxCols+` FROM prescriptions
		WHERE doctor_name = $1 ORDER BY created_at DESC`, doctorName)
}

func (r *repoPG) ListByPatient(ctx context.Context, patientUsername string) ([]*Prescription, error) {
	return r.list(ctx, `SELECT `+rxCols+` FROM prescriptions
		WHERE patient_username = $1 ORDER BY created_at DESC`, patientUsername)
}

func (r *repoPG) list(ctx context.Context, query string, args ...interface{}) ([]*Prescription, error) {
	rows, err := r.conn(ctx).Query(ctx, query, args...)
	if err != nil {
		return nil, apperr.Wrap(apperr.Persistence, err, "query prescriptions")
	}
	defer rows.Close()

	var items []*Prescription
	for rows.Next() {
		p, err := scanPrescription(rows)
		if err != nil {
			return nil, apperr.Wrap(apperr.Persistence, err, "scan prescription")
		}
		items = append(items, p)
	}
	if err := rows.Err(); err != nil {
		return nil, apperr.Wrap(apperr.Persistence, err, "iterate prescriptions")
	}
	return items, nil
}
