package postgres

import (
	"context"
	"database/sql"

	"petcare-companion/internal/domain/health"
)

const healthColumns = `id, pet_id, type, title, notes, veterinarian, date, created_at`

type HealthRepo struct {
	db *sql.DB
}

func NewHealthRepo(db *sql.DB) *HealthRepo {
	return &HealthRepo{db: db}
}

func (r *HealthRepo) ListByPet(ctx context.Context, petID int64) ([]health.HealthRecord, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+healthColumns+`
		FROM health_records
		WHERE pet_id = $1
		ORDER BY id ASC
	`, petID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]health.HealthRecord, 0)
	for rows.Next() {
		rec, err := scanHealthRecord(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

func (r *HealthRepo) Create(ctx context.Context, in health.InsertHealthRecord) (health.HealthRecord, error) {
	row := r.db.QueryRowContext(ctx, `
		INSERT INTO health_records (pet_id, type, title, notes, veterinarian, date)
		VALUES ($1,$2,$3,$4,$5,$6)
		RETURNING `+healthColumns+`
	`,
		in.PetID,
		in.Type,
		in.Title,
		toNullString(in.Notes),
		toNullString(in.Veterinarian),
		in.Date,
	)
	return scanHealthRecord(row)
}

func scanHealthRecord(row scanner) (health.HealthRecord, error) {
	var (
		rec          health.HealthRecord
		notes        sql.NullString
		veterinarian sql.NullString
	)
	if err := row.Scan(
		&rec.ID,
		&rec.PetID,
		&rec.Type,
		&rec.Title,
		&notes,
		&veterinarian,
		&rec.Date,
		&rec.CreatedAt,
	); err != nil {
		return health.HealthRecord{}, err
	}

	rec.Notes = fromNullString(notes)
	rec.Veterinarian = fromNullString(veterinarian)
	return rec, nil
}
