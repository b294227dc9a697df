package doctor

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type doctorRepoPG struct{ pool *pgxpool.Pool }

func NewRepoPG(pool *pgxpool.Pool) Repository {
	return &doctorRepoPG{pool: pool}
}

const doctorCols = `id, name, email, phone, specialization, license_number, hospital, created_by, created_at`

// Newest first.
const listQuery = `SELECT ` + doctorCols + ` FROM doctors ORDER BY created_at DESC`

func scanRow(row pgx.Row) (*Doctor, error) {
	var d Doctor
	err := row.Scan(&d.ID, &d.Name, &d.Email, &d.Phone, &d.Specialization,
		&d.LicenseNumber, &d.Hospital, &d.CreatedBy, &d.CreatedAt)
	return &d, err
}

func (r *doctorRepoPG) Create(ctx context.Context, d *Doctor) error {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO doctors (name, email, phone, specialization, license_number, hospital, created_by)
		VALUES ($1,$2,$3,$4,$5,$6,$7)
		RETURNING `+doctorCols,
		d.Name, d.Email, d.Phone, d.Specialization, d.LicenseNumber, d.Hospital, d.CreatedBy)
	created, err := scanRow(row)
	if err != nil {
		return err
	}
	*d = *created
	return nil
}

func (r *doctorRepoPG) List(ctx context.Context) ([]*Doctor, error) {
	rows, err := r.pool.Query(ctx, listQuery)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []*Doctor
	for rows.Next() {
		d, err := scanRow(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, d)
	}
	return items, rows.Err()
}

func (r *doctorRepoPG) GetByID(ctx context.Context, id int64) (*Doctor, error) {
	return scanRow(r.pool.QueryRow(ctx, `SELECT `+doctorCols+` FROM doctors WHERE id = $1`, id))
}

func (r *doctorRepoPG) UpdateOwned(ctx context.Context, d *Doctor) error {
	row := r.pool.QueryRow(ctx, `
		UPDATE doctors
		SET name = $1, email = $2, phone = $3, specialization = $4, license_number = $5, hospital = $6
		WHERE id = $7 AND created_by = $8
		RETURNING `+doctorCols,
		d.Name, d.Email, d.Phone, d.Specialization, d.LicenseNumber, d.Hospital, d.ID, d.CreatedBy)
	updated, err := scanRow(row)
	if err != nil {
		return err
	}
	*d = *updated
	return nil
}

func (r *doctorRepoPG) DeleteOwned(ctx context.Context, id, creatorID int64) (bool, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM doctors WHERE id = $1 AND created_by = $2`, id, creatorID)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}
