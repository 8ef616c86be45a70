package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"petcare-companion/internal/domain/pets"
)

const petColumns = `id, name, species, breed, age, weight, photo_url, health_status, next_checkup, created_at`

type PetsRepo struct {
	db *sql.DB
}

func NewPetsRepo(db *sql.DB) *PetsRepo {
	return &PetsRepo{db: db}
}

func (r *PetsRepo) List(ctx context.Context) ([]pets.Pet, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+petColumns+`
		FROM pets
		ORDER BY id ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]pets.Pet, 0)
	for rows.Next() {
		p, err := scanPet(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *PetsRepo) GetByID(ctx context.Context, id int64) (pets.Pet, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT `+petColumns+`
		FROM pets
		WHERE id = $1
	`, id)

	p, err := scanPet(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return pets.Pet{}, pets.ErrNotFound
		}
		return pets.Pet{}, err
	}
	return p, nil
}

func (r *PetsRepo) Create(ctx context.Context, in pets.InsertPet) (pets.Pet, error) {
	row := r.db.QueryRowContext(ctx, `
		INSERT INTO pets (name, species, breed, age, weight, photo_url, health_status, next_checkup)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
		RETURNING `+petColumns+`
	`,
		in.Name,
		in.Species,
		in.Breed,
		in.Age,
		in.Weight,
		toNullString(in.PhotoURL),
		string(in.HealthStatus),
		toNullTime(in.NextCheckup),
	)
	return scanPet(row)
}

func (r *PetsRepo) Update(ctx context.Context, id int64, in pets.UpdatePet) (pets.Pet, error) {
	var b updateBuilder
	if in.Name != nil {
		b.set("name", *in.Name)
	}
	if in.Species != nil {
		b.set("species", *in.Species)
	}
	if in.Breed != nil {
		b.set("breed", *in.Breed)
	}
	if in.Age != nil {
		b.set("age", *in.Age)
	}
	if in.Weight != nil {
		b.set("weight", *in.Weight)
	}
	if in.PhotoURL != nil {
		b.set("photo_url", *in.PhotoURL)
	}
	if in.HealthStatus != nil {
		b.set("health_status", string(*in.HealthStatus))
	}
	if in.NextCheckup != nil {
		b.set("next_checkup", *in.NextCheckup)
	}

	if len(b.sets) == 0 {
		return r.GetByID(ctx, id)
	}

	b.args = append(b.args, id)
	query := fmt.Sprintf(`
		UPDATE pets
		SET %s
		WHERE id = $%d
		RETURNING `+petColumns,
		strings.Join(b.sets, ", "), len(b.args))

	p, err := scanPet(r.db.QueryRowContext(ctx, query, b.args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return pets.Pet{}, pets.ErrNotFound
		}
		return pets.Pet{}, err
	}
	return p, nil
}

func (r *PetsRepo) Delete(ctx context.Context, id int64) (bool, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM pets WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanPet(row scanner) (pets.Pet, error) {
	var (
		p            pets.Pet
		photoURL     sql.NullString
		healthStatus string
		nextCheckup  sql.NullTime
	)
	if err := row.Scan(
		&p.ID,
		&p.Name,
		&p.Species,
		&p.Breed,
		&p.Age,
		&p.Weight,
		&photoURL,
		&healthStatus,
		&nextCheckup,
		&p.CreatedAt,
	); err != nil {
		return pets.Pet{}, err
	}

	p.PhotoURL = fromNullString(photoURL)
	p.HealthStatus = pets.HealthStatus(healthStatus)
	p.NextCheckup = fromNullTime(nextCheckup)
	return p, nil
}
