package patient

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type patientRepoPG struct{ pool *pgxpool.Pool }

func NewRepoPG(pool *pgxpool.Pool) Repository {
	return &patientRepoPG{pool: pool}
}

const patientCols = `id, name, email, phone, date_of_birth, address, medical_history, created_by, created_at`

// Newest first.
const listByOwnerQuery = `
	SELECT ` + patientCols + ` FROM patients
	WHERE created_by = $1
	ORDER BY created_at DESC`

func scanRow(row pgx.Row) (*Patient, error) {
	var p Patient
	err := row.Scan(&p.ID, &p.Name, &p.Email, &p.Phone, &p.DateOfBirth,
		&p.Address, &p.MedicalHistory, &p.CreatedBy, &p.CreatedAt)
	return &p, err
}

func (r *patientRepoPG) Create(ctx context.Context, p *Patient) error {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO patients (name, email, phone, date_of_birth, address, medical_history, created_by)
		VALUES ($1,$2,$3,$4,$5,$6,$7)
		RETURNING `+patientCols,
		p.Name, p.Email, p.Phone, p.DateOfBirth, p.Address, p.MedicalHistory, p.CreatedBy)
	created, err := scanRow(row)
	if err != nil {
		return err
	}
	*p = *created
	return nil
}

func (r *patientRepoPG) ListByOwner(ctx context.Context, ownerID int64) ([]*Patient, error) {
	rows, err := r.pool.Query(ctx, listByOwnerQuery, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []*Patient
	for rows.Next() {
		p, err := scanRow(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, p)
	}
	return items, rows.Err()
}

func (r *patientRepoPG) GetOwned(ctx context.Context, id, ownerID int64) (*Patient, error) {
	return scanRow(r.pool.QueryRow(ctx, `
		SELECT `+patientCols+` FROM patients
		WHERE id = $1 AND created_by = $2`, id, ownerID))
}

func (r *patientRepoPG) UpdateOwned(ctx context.Context, p *Patient) error {
	row := r.pool.QueryRow(ctx, `
		UPDATE patients
		SET name = $1, email = $2, phone = $3, date_of_birth = $4, address = $5, medical_history = $6
		WHERE id = $7 AND created_by = $8
		RETURNING `+patientCols,
		p.Name, p.Email, p.Phone, p.DateOfBirth, p.Address, p.MedicalHistory, p.ID, p.CreatedBy)
	updated, err := scanRow(row)
	if err != nil {
		return err
	}
	*p = *updated
	return nil
}

func (r *patientRepoPG) DeleteOwned(ctx context.Context, id, ownerID int64) (bool, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM patients WHERE id = $1 AND created_by = $2`, id, ownerID)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}
