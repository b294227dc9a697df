package mapping

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type mappingRepoPG struct{ pool *pgxpool.Pool }

func NewRepoPG(pool *pgxpool.Pool) Repository {
	return &mappingRepoPG{pool: pool}
}

const mappingCols = `id, patient_id, doctor_id, notes, created_by, assigned_at`

// Both listings return the most recent assignments first.
const listDetailedQuery = `
	SELECT pdm.id, pdm.patient_id, pdm.doctor_id, pdm.notes, pdm.created_by, pdm.assigned_at,
		p.name, p.email,
		d.name, d.email, d.specialization
	FROM patient_doctor_mappings pdm
	JOIN patients p ON pdm.patient_id = p.id
	JOIN doctors d ON pdm.doctor_id = d.id
	ORDER BY pdm.assigned_at DESC`

const listByPatientQuery = `
	SELECT pdm.id, pdm.patient_id, pdm.doctor_id, pdm.notes, pdm.created_by, pdm.assigned_at,
		d.name, d.email, d.phone, d.specialization, d.license_number, d.hospital
	FROM patient_doctor_mappings pdm
	JOIN doctors d ON pdm.doctor_id = d.id
	WHERE pdm.patient_id = $1
	ORDER BY pdm.assigned_at DESC`

func (r *mappingRepoPG) PatientOwned(ctx context.Context, patientID, ownerID int64) (bool, error) {
	var id int64
	err := r.pool.QueryRow(ctx,
		`SELECT id FROM patients WHERE id = $1 AND created_by = $2`, patientID, ownerID).Scan(&id)
	if errors.Is(err, pgx.ErrNoRows) {
		return false, nil
	}
	return err == nil, err
}

func (r *mappingRepoPG) DoctorExists(ctx context.Context, doctorID int64) (bool, error) {
	var id int64
	err := r.pool.QueryRow(ctx, `SELECT id FROM doctors WHERE id = $1`, doctorID).Scan(&id)
	if errors.Is(err, pgx.ErrNoRows) {
		return false, nil
	}
	return err == nil, err
}

func (r *mappingRepoPG) PairExists(ctx context.Context, patientID, doctorID int64) (bool, error) {
	var id int64
	err := r.pool.QueryRow(ctx,
		`SELECT id FROM patient_doctor_mappings WHERE patient_id = $1 AND doctor_id = $2`,
		patientID, doctorID).Scan(&id)
	if errors.Is(err, pgx.ErrNoRows) {
		return false, nil
	}
	return err == nil, err
}

func (r *mappingRepoPG) Create(ctx context.Context, m *Mapping) error {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO patient_doctor_mappings (patient_id, doctor_id, notes, created_by)
		VALUES ($1,$2,$3,$4)
		RETURNING `+mappingCols,
		m.PatientID, m.DoctorID, m.Notes, m.CreatedBy)

	var created Mapping
	err := row.Scan(&created.ID, &created.PatientID, &created.DoctorID,
		&created.Notes, &created.CreatedBy, &created.AssignedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return ErrDuplicatePair
		}
		return err
	}
	*m = created
	return nil
}

func (r *mappingRepoPG) ListDetailed(ctx context.Context) ([]*Detail, error) {
	rows, err := r.pool.Query(ctx, listDetailedQuery)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []*Detail
	for rows.Next() {
		var dt Detail
		if err := rows.Scan(&dt.ID, &dt.PatientID, &dt.DoctorID, &dt.Notes, &dt.CreatedBy, &dt.AssignedAt,
			&dt.PatientName, &dt.PatientEmail,
			&dt.DoctorName, &dt.DoctorEmail, &dt.Specialization); err != nil {
			return nil, err
		}
		items = append(items, &dt)
	}
	return items, rows.Err()
}

func (r *mappingRepoPG) ListByPatient(ctx context.Context, patientID int64) ([]*PatientDoctor, error) {
	rows, err := r.pool.Query(ctx, listByPatientQuery, patientID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []*PatientDoctor
	for rows.Next() {
		var pd PatientDoctor
		if err := rows.Scan(&pd.ID, &pd.PatientID, &pd.DoctorID, &pd.Notes, &pd.CreatedBy, &pd.AssignedAt,
			&pd.DoctorName, &pd.DoctorEmail, &pd.DoctorPhone,
			&pd.Specialization, &pd.LicenseNumber, &pd.Hospital); err != nil {
			return nil, err
		}
		items = append(items, &pd)
	}
	return items, rows.Err()
}

func (r *mappingRepoPG) DeleteOwned(ctx context.Context, id, ownerID int64) (bool, error) {
	// Ownership of a mapping follows the referenced patient.
	tag, err := r.pool.Exec(ctx, `
		DELETE FROM patient_doctor_mappings pdm
		USING patients p
		WHERE pdm.id = $1 AND pdm.patient_id = p.id AND p.created_by = $2`, id, ownerID)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}
