package pharmacy

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

const orderCols = `id, patient_name, pharmacy_name, items, total_price, created_at`

func scanOrder(row pgx.Row) (*MedicineOrder, error) {
	var o MedicineOrder
	err := row.Scan(&o.ID, &o.PatientName, &o.PharmacyName, &o.Items, &o.TotalPrice, &o.CreatedAt)
	return &o, err
}

func (r *repoPG) Create(ctx context.Context, o *MedicineOrder) error {
	err := r.conn(ctx).QueryRow(ctx, `
		INSERT INTO medicine_orders (patient_name, pharmacy_name, items, total_price)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at`,
		o.PatientName, o.PharmacyName, o.Items, o.TotalPrice,
	).Scan(&o.ID, &o.CreatedAt)
	if err != nil {
		return apperr.Wrap(apperr.Persistence, err, "insert medicine order")
	}
	return nil
}

func (r *repoPG) ListByPatient(ctx context.Context, patientName string) ([]*MedicineOrder, error) {
	return r.list(ctx, `SELECT `+orderCols+` FROM medicine_orders
		WHERE patient_name = $1 ORDER BY created_at DESC`, patientName)
}

func (r *repoPG) ListByPharmacy(ctx context.Context, pharmacyName string) ([]*MedicineOrder, error) {
	return r.list(ctx, `SELECT `+orderCols+` FROM medicine_orders
		WHERE pharmacy_name = $1 ORDER BY created_at DESC`, pharmacyName)
}

func (r *repoPG) list(ctx context.Context, query string, args ...interface{}) ([]*MedicineOrder, error) {
	rows, err := r.conn(ctx).Query(ctx, query, args...)
	if err != nil {
		return nil, apperr.Wrap(apperr.Persistence, err, "query medicine orders")
	}
	defer rows.Close()

	var items []*MedicineOrder
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, apperr.Wrap(apperr.Persistence, err, "scan medicine order")
		}
		items = append(items, o)
	}
	if err := rows.Err(); err != nil {
		return nil, apperr.Wrap(apperr.Persistence, err, "iterate medicine orders")
	}
	return items, nil
}
