package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"petcare-companion/internal/domain/activities"
)

const activityColumns = `id, pet_id, type, title, description, completed, scheduled_date, completed_date, created_at`

type ActivitiesRepo struct {
	db *sql.DB
}

func NewActivitiesRepo(db *sql.DB) *ActivitiesRepo {
	return &ActivitiesRepo{db: db}
}

func (r *ActivitiesRepo) List(ctx context.Context, filter activities.ListFilter) ([]activities.CareActivity, error) {
	query := `
		SELECT ` + activityColumns + `
		FROM care_activities
	`
	args := []any{}
	if filter.PetID != nil {
		query += ` WHERE pet_id = $1`
		args = append(args, *filter.PetID)
	}
	query += ` ORDER BY id ASC`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]activities.CareActivity, 0)
	for rows.Next() {
		a, err := scanActivity(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

func (r *ActivitiesRepo) GetByID(ctx context.Context, id int64) (activities.CareActivity, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT `+activityColumns+`
		FROM care_activities
		WHERE id = $1
	`, id)

	a, err := scanActivity(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return activities.CareActivity{}, activities.ErrNotFound
		}
		return activities.CareActivity{}, err
	}
	return a, nil
}

func (r *ActivitiesRepo) Create(ctx context.Context, in activities.InsertCareActivity) (activities.CareActivity, error) {
	row := r.db.QueryRowContext(ctx, `
		INSERT INTO care_activities (pet_id, type, title, description, completed, scheduled_date)
		VALUES ($1,$2,$3,$4,$5,$6)
		RETURNING `+activityColumns+`
	`,
		in.PetID,
		in.Type,
		in.Title,
		toNullString(in.Description),
		in.Completed,
		in.ScheduledDate,
	)
	return scanActivity(row)
}

func (r *ActivitiesRepo) Update(ctx context.Context, id int64, in activities.UpdateCareActivity) (activities.CareActivity, error) {
	var b updateBuilder
	if in.PetID != nil {
		b.set("pet_id", *in.PetID)
	}
	if in.Type != nil {
		b.set("type", *in.Type)
	}
	if in.Title != nil {
		b.set("title", *in.Title)
	}
	if in.Description != nil {
		b.set("description", *in.Description)
	}
	if in.Completed != nil {
		b.set("completed", *in.Completed)
	}
	if in.CompletedDate != nil {
		b.set("completed_date", *in.CompletedDate)
	}
	if in.ScheduledDate != nil {
		b.set("scheduled_date", *in.ScheduledDate)
	}

	if len(b.sets) == 0 {
		return r.GetByID(ctx, id)
	}

	b.args = append(b.args, id)
	query := fmt.Sprintf(`
		UPDATE care_activities
		SET %s
		WHERE id = $%d
		RETURNING `+activityColumns,
		strings.Join(b.sets, ", "), len(b.args))

	a, err := scanActivity(r.db.QueryRowContext(ctx, query, b.args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return activities.CareActivity{}, activities.ErrNotFound
		}
		return activities.CareActivity{}, err
	}
	return a, nil
}

func (r *ActivitiesRepo) Delete(ctx context.Context, id int64) (bool, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM care_activities WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func scanActivity(row scanner) (activities.CareActivity, error) {
	var (
		a             activities.CareActivity
		description   sql.NullString
		completedDate sql.NullTime
	)
	if err := row.Scan(
		&a.ID,
		&a.PetID,
		&a.Type,
		&a.Title,
		&description,
		&a.Completed,
		&a.ScheduledDate,
		&completedDate,
		&a.CreatedAt,
	); err != nil {
		return activities.CareActivity{}, err
	}

	a.Description = fromNullString(description)
	a.CompletedDate = fromNullTime(completedDate)
	return a, nil
}
